package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkordes/torquehub/internal/datefmt"
	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/storage"
)

// BuildCatalog holds the build collection, newest first.
// It is safe for concurrent use.
type BuildCatalog struct {
	builds *collection[domain.Build]
	opts   options
}

// NewBuildCatalog returns a catalog populated with SeedBuilds.
// Call Hydrate before serving to replace the seed with stored data.
func NewBuildCatalog(slots *storage.Slots, log *slog.Logger, opts ...Option) *BuildCatalog {
	o := defaultOptions(opts)
	return &BuildCatalog{
		builds: newCollection(SeedBuilds(o.now()), slots, BuildsKey, log),
		opts:   o,
	}
}

// Hydrate replaces the collection with the stored one, if a valid one exists.
// It reports whether stored data was used. Seed data is not written back.
func (c *BuildCatalog) Hydrate(ctx context.Context) bool {
	return c.builds.hydrate(ctx)
}

// List returns every build, newest first.
func (c *BuildCatalog) List() []domain.Build {
	return c.builds.snapshot()
}

// Filter returns the builds matching f in collection order.
// FilterAll returns the same sequence as List.
func (c *BuildCatalog) Filter(f domain.CategoryFilter) []domain.Build {
	all := c.builds.snapshot()
	if f == domain.FilterAll {
		return all
	}

	out := make([]domain.Build, 0, len(all))
	for _, b := range all {
		if f.Matches(b.Category) {
			out = append(out, b)
		}
	}
	return out
}

// Create validates in, fills defaults, prepends the new build and persists the
// collection. Title and platform are trimmed and must be non-empty; an empty
// category means car. A rejected input returns an error wrapping
// domain.ErrValidation and leaves the catalog and storage untouched.
func (c *BuildCatalog) Create(ctx context.Context, in domain.BuildInput) (domain.Build, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Platform = strings.TrimSpace(in.Platform)
	if err := validateInput(in); err != nil {
		return domain.Build{}, err
	}

	category := in.Category
	if category == "" {
		category = domain.CategoryCar
	}

	b := domain.Build{
		ID:        c.opts.newID(),
		Title:     in.Title,
		Platform:  in.Platform,
		Year:      in.Year,
		Category:  category,
		ImageURL:  orDefault(in.ImageURL, domain.DefaultBuildImageURL),
		Location:  in.Location,
		Specs:     in.Specs,
		Mods:      in.Mods,
		Owner:     orDefault(in.Owner, domain.DefaultBuildOwner),
		Socials:   in.Socials,
		Notes:     in.Notes,
		CreatedAt: datefmt.Millis(c.opts.now()),
	}

	c.builds.prepend(ctx, b)
	return b, nil
}

// NextInput returns the blank form shown after created was submitted.
// Only the category is carried over.
func (c *BuildCatalog) NextInput(created domain.Build) domain.BuildInput {
	return domain.BuildInput{Category: created.Category}
}

// Len returns the number of builds.
func (c *BuildCatalog) Len() int {
	return c.builds.len()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
