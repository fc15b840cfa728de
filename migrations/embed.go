// Package migrations embeds the SQL migration files for the postgres slot
// store so they can be applied with the goose programmatic API at startup and
// in integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
