package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Driver names a Medium implementation.
type Driver string

const (
	DriverNone     Driver = "none"
	DriverMemory   Driver = "memory"
	DriverBadger   Driver = "badger"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ParseDriver validates a driver name. Matching is case-insensitive.
func ParseDriver(s string) (Driver, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DriverNone, DriverMemory, DriverBadger, DriverSQLite, DriverPostgres:
		return d, nil
	}
	return "", fmt.Errorf("unknown storage driver %q (want none, memory, badger, sqlite or postgres)", s)
}

// Open returns the Medium for driver. location is a directory for badger, a
// file path for sqlite and a connection string for postgres; memory and none
// ignore it. DriverNone yields a nil Medium, i.e. storage unavailable.
func Open(ctx context.Context, driver Driver, location string) (Medium, error) {
	switch driver {
	case DriverNone:
		return nil, nil
	case DriverMemory:
		return NewMemoryMedium(), nil
	case DriverBadger:
		m, err := OpenBadger(location)
		if err != nil {
			return nil, err
		}
		return m, nil
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			return nil, fmt.Errorf("storage.Open: %w", err)
		}
		m, err := OpenSQLite(location)
		if err != nil {
			return nil, err
		}
		return m, nil
	case DriverPostgres:
		m, err := OpenPostgres(ctx, location)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("storage.Open: unknown driver %q", driver)
}
