// Package credential supplies the opaque Arena admin key attached to every
// privileged backend request.
//
// The key is modeled as an injected provider rather than ambient process
// state so tests can substitute credentials freely and no package reads the
// key from hidden storage. The key is never validated locally; a bad key
// surfaces as an authorization failure from the API client.
package credential

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Provider supplies the admin credential for privileged requests.
type Provider interface {
	Get(ctx context.Context) (string, error)
}

// ErrEmpty indicates no credential could be obtained.
var ErrEmpty = errors.New("admin credential is empty")

// Static is a fixed credential, used for env-supplied keys and tests.
type Static string

// Get returns the fixed credential.
func (s Static) Get(context.Context) (string, error) {
	key := strings.TrimSpace(string(s))
	if key == "" {
		return "", ErrEmpty
	}
	return key, nil
}

// Prompt obtains the credential interactively on first use and caches it for
// the remainder of the process, so subsequent calls never re-prompt.
type Prompt struct {
	// In is the operator input stream, typically os.Stdin.
	In io.Reader
	// Out receives the prompt text, typically os.Stderr.
	Out io.Writer

	once sync.Once
	key  string
	err  error
}

// Get reads the credential from In on the first call and returns the cached
// value afterwards.
func (p *Prompt) Get(ctx context.Context) (string, error) {
	if p == nil {
		return "", ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.once.Do(func() {
		if p.In == nil {
			p.err = ErrEmpty
			return
		}
		if p.Out != nil {
			fmt.Fprint(p.Out, "Admin key: ")
		}
		line, err := bufio.NewReader(p.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			p.err = fmt.Errorf("read admin key: %w", err)
			return
		}
		key := strings.TrimSpace(line)
		if key == "" {
			p.err = ErrEmpty
			return
		}
		p.key = key
	})

	return p.key, p.err
}

// Store persists a credential so it survives process restarts.
type Store interface {
	GetAdminKey(ctx context.Context) (string, error)
	PutAdminKey(ctx context.Context, key string) error
}

// Stored wraps a fallback provider with persistent storage: a previously
// saved key is reused without consulting the fallback, and a freshly obtained
// key is saved for the next process.
type Stored struct {
	Store    Store
	Fallback Provider
}

// Get returns the stored credential, falling back to the wrapped provider
// and persisting its result.
func (s Stored) Get(ctx context.Context) (string, error) {
	if s.Store == nil {
		if s.Fallback == nil {
			return "", ErrEmpty
		}
		return s.Fallback.Get(ctx)
	}

	key, err := s.Store.GetAdminKey(ctx)
	if err != nil {
		return "", fmt.Errorf("load admin key: %w", err)
	}
	if key != "" {
		return key, nil
	}

	if s.Fallback == nil {
		return "", ErrEmpty
	}
	key, err = s.Fallback.Get(ctx)
	if err != nil {
		return "", err
	}
	if err := s.Store.PutAdminKey(ctx, key); err != nil {
		return "", fmt.Errorf("save admin key: %w", err)
	}
	return key, nil
}
