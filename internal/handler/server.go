// Package handler implements the JSON HTTP surface of the TorqueHub API.
// All handlers are methods on Server. Methods are split into files by
// resource (builds.go, meetups.go, ...) and share the Server's dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/torquehub/internal/domain"
)

// BuildCatalog defines the build operations the handlers depend on.
// Declared here, in the consumer package, so tests can inject a mock.
type BuildCatalog interface {
	List() []domain.Build
	Filter(f domain.CategoryFilter) []domain.Build
	Create(ctx context.Context, in domain.BuildInput) (domain.Build, error)
	NextInput(created domain.Build) domain.BuildInput
}

// MeetupBoard defines the meetup operations the handlers depend on.
type MeetupBoard interface {
	List() []domain.Meetup
	Create(ctx context.Context, in domain.MeetupInput) (domain.Meetup, error)
}

// Server holds the handler dependencies.
type Server struct {
	builds  BuildCatalog
	meetups MeetupBoard
	log     *slog.Logger
	now     func() time.Time
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(builds BuildCatalog, meetups MeetupBoard, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{builds: builds, meetups: meetups, log: log, now: time.Now}
}

// Routes returns a router serving every endpoint. Mount it under the
// application router, which carries the shared middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/builds", s.ListBuilds)
	r.Post("/builds", s.CreateBuild)

	r.Get("/meetups", s.ListMeetups)
	r.Post("/meetups", s.CreateMeetup)

	r.Get("/summary", s.GetSummary)

	return r
}
