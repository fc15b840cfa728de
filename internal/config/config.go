// Package config loads and validates application configuration from
// environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pkordes/torquehub/internal/storage"
)

// defaultMaxBodyBytes caps request bodies at 1 MiB.
const defaultMaxBodyBytes = 1 << 20

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	CORSOrigins []string

	// StorageDriver selects the durable medium behind the collection store.
	// Defaults to badger. "none" runs with storage unavailable.
	StorageDriver storage.Driver

	// StoragePath is the badger directory or sqlite file. Defaults to "data/torquehub".
	StoragePath string

	// DatabaseURL is the Postgres connection string.
	// Required only when StorageDriver is postgres.
	DatabaseURL string

	// MaxBodyBytes limits request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// StorageLocation returns the location argument for storage.Open.
func (c Config) StorageLocation() string {
	if c.StorageDriver == storage.DriverPostgres {
		return c.DatabaseURL
	}
	return c.StoragePath
}

// Load reads configuration from environment variables and returns a Config.
// The file named by ENV_FILE (default ".env") is loaded first when it exists;
// variables already set in the environment take precedence over it.
// Returns an error listing every missing or invalid variable.
func Load() (Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoragePath: getEnv("STORAGE_PATH", "data/torquehub"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var missing, invalid []string

	driver, err := storage.ParseDriver(getEnv("STORAGE_DRIVER", string(storage.DriverBadger)))
	if err != nil {
		invalid = append(invalid, "STORAGE_DRIVER: "+err.Error())
	}
	cfg.StorageDriver = driver

	if cfg.StorageDriver == storage.DriverPostgres && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.MaxBodyBytes, err = parsePositiveInt("MAX_BODY_BYTES", defaultMaxBodyBytes)
	if err != nil {
		invalid = append(invalid, err.Error())
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; ")))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadEnvFile applies path with godotenv. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveInt(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: want a positive integer, got %q", key, raw)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
