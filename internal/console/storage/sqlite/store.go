// Package sqlite provides the SQLite-backed console store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arenaworks/console/internal/console/storage"
	"github.com/arenaworks/console/internal/console/storage/sqlite/migrations"
	"github.com/arenaworks/console/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// adminKeyName is the credential row key for the backend admin key.
const adminKeyName = "admin_key"

// ErrNotFound reports that no value is stored under the requested name.
var ErrNotFound = errors.New("not found")

// Store implements console storage interfaces on SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetAdminKey returns the persisted admin key, or ErrNotFound.
func (s *Store) GetAdminKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT value FROM admin_credentials WHERE name = ?", adminKeyName,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get admin key: %w", err)
	}
	return value, nil
}

// PutAdminKey persists the admin key, replacing any previous value.
func (s *Store) PutAdminKey(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("admin key is required")
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO admin_credentials (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		adminKeyName, key, time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put admin key: %w", err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
