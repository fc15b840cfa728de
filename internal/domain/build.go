// Package domain contains the core data types for the TorqueHub backend.
// This package has no dependencies on storage or transport and is imported by
// every other internal package (storage, service, feed, handler).
package domain

// Default values applied to a build when the submitter leaves the field empty.
const (
	DefaultBuildImageURL = "https://images.unsplash.com/photo-1511396275275-1ce31c26e4c4?auto=format&fit=crop&w=1400&q=80"
	DefaultBuildOwner    = "Anonymous Gearhead"
)

// Build represents one vehicle or project entry in the catalog.
// Mods and Socials hold newline-delimited entries exactly as the user typed
// them; they are split for display only (see package lines).
type Build struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Platform  string        `json:"platform"`
	Year      string        `json:"year"`
	Category  BuildCategory `json:"category"`
	ImageURL  string        `json:"imageUrl"`
	Location  string        `json:"location"`
	Specs     string        `json:"specs"`
	Mods      string        `json:"mods"`
	Owner     string        `json:"owner"`
	Socials   string        `json:"socials"`
	Notes     string        `json:"notes"`
	CreatedAt int64         `json:"createdAt"` // milliseconds since the Unix epoch
}

// BuildInput is the user-submitted form for a new build.
// It carries every Build field except the ones assigned at creation (ID, CreatedAt).
type BuildInput struct {
	Title    string        `json:"title" validate:"required"`
	Platform string        `json:"platform" validate:"required"`
	Year     string        `json:"year"`
	Category BuildCategory `json:"category" validate:"omitempty,oneof=car bike project"`
	ImageURL string        `json:"imageUrl"`
	Location string        `json:"location"`
	Specs    string        `json:"specs"`
	Mods     string        `json:"mods"`
	Owner    string        `json:"owner"`
	Socials  string        `json:"socials"`
	Notes    string        `json:"notes"`
}
