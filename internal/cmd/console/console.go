package console

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/arenaworks/console/internal/console"
	"github.com/arenaworks/console/internal/platform/otel"
)

const (
	defaultHTTPAddr   = ":8082"
	defaultAPIBaseURL = "http://localhost:8000"
)

// Config holds the console command configuration.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	AdminKey   string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr:   envOrDefault(lookup, []string{"ARENA_CONSOLE_ADDR"}, defaultHTTPAddr),
		APIBaseURL: envOrDefault(lookup, []string{"ARENA_API_URL"}, defaultAPIBaseURL),
		AdminKey:   envOrDefault(lookup, []string{"ARENA_ADMIN_KEY"}, ""),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "competition API base URL")
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "backend admin key")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the console server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "console")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := console.NewServer(ctx, console.Config{
		HTTPAddr:   cfg.HTTPAddr,
		APIBaseURL: cfg.APIBaseURL,
		AdminKey:   cfg.AdminKey,
	})
	if err != nil {
		return fmt.Errorf("init console server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve console: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
