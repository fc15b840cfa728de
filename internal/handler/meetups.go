package handler

import (
	"net/http"

	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/feed"
)

// ListMeetups handles GET /meetups.
func (s *Server) ListMeetups(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, feed.NewMeetupFeed(s.meetups.List(), s.now()))
}

// CreateMeetup handles POST /meetups.
func (s *Server) CreateMeetup(w http.ResponseWriter, r *http.Request) {
	var in domain.MeetupInput
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := s.meetups.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, feed.NewMeetupCard(created, s.now()))
}
