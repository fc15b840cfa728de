package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql
)

//go:embed sqlite_schema.sql
var sqliteSchema string

// SQLiteMedium stores slots as rows of a single-file SQLite database.
type SQLiteMedium struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at path and ensures the
// slots table exists.
func OpenSQLite(path string) (*SQLiteMedium, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.OpenSQLite: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage.OpenSQLite: exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.OpenSQLite: exec schema: %w", err)
	}

	return &SQLiteMedium{db: db}, nil
}

// Get returns the value stored under key.
func (m *SQLiteMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage.SQLiteMedium.Get: %w", err)
	}
	return []byte(value), true, nil
}

// Set inserts or overwrites the row for key.
func (m *SQLiteMedium) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`

	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := m.db.ExecContext(ctx, q, key, string(value), updatedAt); err != nil {
		return fmt.Errorf("storage.SQLiteMedium.Set: %w", err)
	}
	return nil
}

// Remove deletes the row for key. Removing a missing key is not an error.
func (m *SQLiteMedium) Remove(ctx context.Context, key string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage.SQLiteMedium.Remove: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (m *SQLiteMedium) Close() error {
	return m.db.Close()
}
