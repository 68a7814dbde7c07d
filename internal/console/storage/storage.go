// Package storage defines the persistence interfaces for the console.
package storage

import "context"

// CredentialStore persists the operator's admin key across restarts.
type CredentialStore interface {
	GetAdminKey(ctx context.Context) (string, error)
	PutAdminKey(ctx context.Context, key string) error
}

// Store is a composite interface for console storage concerns.
type Store interface {
	CredentialStore
	Close() error
}
