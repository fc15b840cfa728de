package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkordes/torquehub/internal/datefmt"
	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/storage"
)

// MeetupBoard holds the meetup collection, newest first.
// It is safe for concurrent use.
type MeetupBoard struct {
	meetups *collection[domain.Meetup]
	opts    options
}

// NewMeetupBoard returns a board populated with SeedMeetups.
func NewMeetupBoard(slots *storage.Slots, log *slog.Logger, opts ...Option) *MeetupBoard {
	o := defaultOptions(opts)
	return &MeetupBoard{
		meetups: newCollection(SeedMeetups(o.now()), slots, MeetupsKey, log),
		opts:    o,
	}
}

// Hydrate replaces the collection with the stored one, if a valid one exists.
func (b *MeetupBoard) Hydrate(ctx context.Context) bool {
	return b.meetups.hydrate(ctx)
}

// List returns every meetup, newest first.
func (b *MeetupBoard) List() []domain.Meetup {
	return b.meetups.snapshot()
}

// Create validates in, prepends the new meetup and persists the collection.
// Name and location are stored trimmed; every other field is kept as submitted.
func (b *MeetupBoard) Create(ctx context.Context, in domain.MeetupInput) (domain.Meetup, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if err := validateInput(in); err != nil {
		return domain.Meetup{}, err
	}

	m := domain.Meetup{
		ID:        b.opts.newID(),
		Name:      in.Name,
		Date:      in.Date,
		Time:      in.Time,
		Location:  in.Location,
		Vibe:      in.Vibe,
		Details:   in.Details,
		Organizer: in.Organizer,
		Link:      in.Link,
		CreatedAt: datefmt.Millis(b.opts.now()),
	}

	b.meetups.prepend(ctx, m)
	return m, nil
}

// Len returns the number of meetups.
func (b *MeetupBoard) Len() int {
	return b.meetups.len()
}
