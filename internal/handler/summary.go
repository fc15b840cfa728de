package handler

import (
	"net/http"

	"github.com/pkordes/torquehub/internal/feed"
)

// GetSummary handles GET /summary: the landing-page stats and garage feed.
func (s *Server) GetSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, feed.NewSummary(s.builds.List(), s.meetups.List(), s.now()))
}
