// Package sqlite persists storage slots in a single SQLite table, giving the
// portal a durable localStorage analogue.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/workforce-portal/internal/persistence"
	_ "modernc.org/sqlite"
)

// Store implements persistence.SlotStore on top of SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to the SQLite database identified by dsn.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// The portal is single-threaded; one connection keeps SQLite happy with
	// concurrent-looking access from database/sql's pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Migrate creates the slots table when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create slots table: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value held by the named slot.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	query := `SELECT value FROM slots WHERE name = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", persistence.ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read slot %q: %w", name, err)
	}
	return value, nil
}

// Set stores the value in the named slot, replacing any previous value.
func (s *Store) Set(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO slots (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, name, value, s.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the named slot. Deleting an absent slot is a no-op.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}

var _ persistence.SlotStore = (*Store)(nil)
