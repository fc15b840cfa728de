package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/feed"
)

// CreateBuildResponse is the body of a successful POST /builds: the new card
// plus the blank form to show next, which keeps the submitted category.
type CreateBuildResponse struct {
	Build feed.BuildCard    `json:"build"`
	Next  domain.BuildInput `json:"next"`
}

// ListBuilds handles GET /builds.
// Supports ?category=all|car|bike|project (default all).
func (s *Server) ListBuilds(w http.ResponseWriter, r *http.Request) {
	var category string
	if err := runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &category); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	filter, err := domain.ParseCategoryFilter(category)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(unwrapMessage(err)))
		return
	}

	writeJSON(w, http.StatusOK, feed.NewBuildFeed(filter, s.builds.Filter(filter), s.now()))
}

// CreateBuild handles POST /builds.
func (s *Server) CreateBuild(w http.ResponseWriter, r *http.Request) {
	var in domain.BuildInput
	if !decodeBody(w, r, &in) {
		return
	}

	created, err := s.builds.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateBuildResponse{
		Build: feed.NewBuildCard(created, s.now()),
		Next:  s.builds.NextInput(created),
	})
}
