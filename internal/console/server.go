package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/arenaworks/console/internal/arena/client"
	"github.com/arenaworks/console/internal/arena/credential"
	"github.com/arenaworks/console/internal/console/storage"
	consolesqlite "github.com/arenaworks/console/internal/console/storage/sqlite"
	"github.com/arenaworks/console/internal/platform/config"
	"github.com/arenaworks/console/internal/platform/timeouts"
)

// consoleServerEnv captures startup defaults for the console process.
type consoleServerEnv struct {
	DBPath string `env:"ARENA_CONSOLE_DB_PATH"`
}

func loadConsoleServerEnv() consoleServerEnv {
	var cfg consoleServerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "console.db")
	}
	return cfg
}

// Config defines the inputs for the console operator process.
//
// The console is a control plane over the Arena backend admin API; these
// values select the backend and the admin credential source.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	// AdminKey supplies the backend credential directly. When empty the key
	// is loaded from storage or prompted for on first use.
	AdminKey string
}

// Server hosts the console dashboard over the backend admin API.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *consolesqlite.Store
}

// NewServer builds a configured console server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, errors.New("api base url is required")
	}

	env := loadConsoleServerEnv()
	store, err := openConsoleStore(env.DBPath)
	if err != nil {
		return nil, err
	}

	credentials := buildCredentials(cfg.AdminKey, store)
	api := client.NewClient(cfg.APIBaseURL, credentials, nil)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(api),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close console store: %v", err)
		}
	}
}

func openConsoleStore(path string) (*consolesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := consolesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open console sqlite store: %w", err)
	}
	return store, nil
}

// buildCredentials selects the admin credential chain: an explicit key wins,
// otherwise the stored key is reused and a first-run prompt fills the store.
func buildCredentials(adminKey string, store storage.CredentialStore) credential.Provider {
	if strings.TrimSpace(adminKey) != "" {
		return credential.Static(adminKey)
	}
	fallback := &credential.Prompt{In: os.Stdin, Out: os.Stderr}
	if store == nil {
		return fallback
	}
	return credential.Stored{
		Store:    credentialStoreAdapter{store: store},
		Fallback: fallback,
	}
}

// credentialStoreAdapter maps the storage not-found sentinel onto the
// credential package's "no key yet" convention.
type credentialStoreAdapter struct {
	store storage.CredentialStore
}

func (a credentialStoreAdapter) GetAdminKey(ctx context.Context) (string, error) {
	key, err := a.store.GetAdminKey(ctx)
	if errors.Is(err, consolesqlite.ErrNotFound) {
		return "", nil
	}
	return key, err
}

func (a credentialStoreAdapter) PutAdminKey(ctx context.Context, key string) error {
	return a.store.PutAdminKey(ctx, key)
}
