package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/torquehub/migrations"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting it instead of *pgxpool.Pool lets integration tests pass a
// transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresMedium stores slots as rows of the slots table.
type PostgresMedium struct {
	db    db
	close func()
}

// NewPostgresMedium wraps an existing connection. The slots table must exist
// (see package migrations). Close on the returned medium does nothing; the
// caller owns db.
func NewPostgresMedium(db db) *PostgresMedium {
	return &PostgresMedium{db: db, close: func() {}}
}

// OpenPostgres connects to databaseURL, applies pending migrations and returns
// a medium that owns the pool.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresMedium, error) {
	// New does not open connections immediately; Ping does.
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage.OpenPostgres: ping: %w", err)
	}
	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresMedium{db: pool, close: pool.Close}, nil
}

// migrate applies the embedded goose migrations through a database/sql view
// of the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("storage.OpenPostgres: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("storage.OpenPostgres: run migrations: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (m *PostgresMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM slots WHERE key = @key`

	var value string
	err := m.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage.PostgresMedium.Get: %w", err)
	}
	return []byte(value), true, nil
}

// Set inserts or overwrites the row for key.
func (m *PostgresMedium) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO slots (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"key":   key,
		"value": string(value),
	}
	if _, err := m.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("storage.PostgresMedium.Set: %w", err)
	}
	return nil
}

// Remove deletes the row for key. Removing a missing key is not an error.
func (m *PostgresMedium) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM slots WHERE key = @key`

	if _, err := m.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("storage.PostgresMedium.Remove: %w", err)
	}
	return nil
}

// Close releases the pool when the medium owns one.
func (m *PostgresMedium) Close() error {
	m.close()
	return nil
}
