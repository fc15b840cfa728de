// Package middleware provides the HTTP middleware shared by every TorqueHub route.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// preflightMaxAge is how long browsers may cache a preflight result.
const preflightMaxAge = 10 * time.Minute

// NewCORSHandler returns a middleware that applies CORS headers for the given
// origins. Each origin is scheme + host with no trailing slash; "*" allows any.
// The API only reads and creates, so only GET and POST are allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         int(preflightMaxAge.Seconds()),
	})
	return c.Handler
}
