package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/handler"
)

// mockBuildCatalog is a test double for handler.BuildCatalog.
// Set only the method fields your test needs.
type mockBuildCatalog struct {
	list      func() []domain.Build
	filter    func(f domain.CategoryFilter) []domain.Build
	create    func(ctx context.Context, in domain.BuildInput) (domain.Build, error)
	nextInput func(created domain.Build) domain.BuildInput
}

func (m *mockBuildCatalog) List() []domain.Build { return m.list() }
func (m *mockBuildCatalog) Filter(f domain.CategoryFilter) []domain.Build {
	return m.filter(f)
}
func (m *mockBuildCatalog) Create(ctx context.Context, in domain.BuildInput) (domain.Build, error) {
	return m.create(ctx, in)
}
func (m *mockBuildCatalog) NextInput(created domain.Build) domain.BuildInput {
	return m.nextInput(created)
}

// mockMeetupBoard is a test double for handler.MeetupBoard.
type mockMeetupBoard struct {
	list   func() []domain.Meetup
	create func(ctx context.Context, in domain.MeetupInput) (domain.Meetup, error)
}

func (m *mockMeetupBoard) List() []domain.Meetup { return m.list() }
func (m *mockMeetupBoard) Create(ctx context.Context, in domain.MeetupInput) (domain.Meetup, error) {
	return m.create(ctx, in)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.BuildCatalog = (*mockBuildCatalog)(nil)
	_ handler.MeetupBoard  = (*mockMeetupBoard)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks the way main.go does.
func newHTTPHandler(builds handler.BuildCatalog, meetups handler.MeetupBoard) http.Handler {
	return handler.NewServer(builds, meetups, nil).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
