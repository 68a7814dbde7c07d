package console

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	_, err := NewServer(context.Background(), Config{APIBaseURL: "http://localhost:8000"})
	if err == nil || !strings.Contains(err.Error(), "http address") {
		t.Fatalf("err = %v, want http address error", err)
	}
}

func TestNewServerRequiresAPIBaseURL(t *testing.T) {
	_, err := NewServer(context.Background(), Config{HTTPAddr: ":0"})
	if err == nil || !strings.Contains(err.Error(), "api base url") {
		t.Fatalf("err = %v, want api base url error", err)
	}
}

func TestServerServesAndShutsDown(t *testing.T) {
	t.Setenv("ARENA_CONSOLE_DB_PATH", filepath.Join(t.TempDir(), "console.db"))

	server, err := NewServer(context.Background(), Config{
		HTTPAddr:   "127.0.0.1:0",
		APIBaseURL: "http://localhost:8000",
		AdminKey:   "test-key",
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
