// Package service owns the two in-memory collections (builds and meetups),
// validates submissions, and mirrors every change to durable storage.
// Collections are explicit values handed to whichever component renders them;
// they change only through Create.
package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/pkordes/torquehub/internal/ids"
	"github.com/pkordes/torquehub/internal/storage"
)

// Storage slot keys, one per collection.
const (
	BuildsKey  = "torquehub-builds"
	MeetupsKey = "torquehub-meetups"
)

// Option customises a BuildCatalog or MeetupBoard.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID ids.Generator
}

func defaultOptions(opts []Option) options {
	o := options{now: time.Now, newID: ids.New}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now for createdAt stamps and seed ages.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces ids.New.
func WithIDGenerator(g ids.Generator) Option {
	return func(o *options) { o.newID = g }
}

// collection is an ordered, newest-first list of records mirrored to one
// storage slot. All access goes through mu; saves happen while holding it so
// the slot always ends up with the latest state.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	slots *storage.Slots
	key   string
	log   *slog.Logger
}

func newCollection[T any](seed []T, slots *storage.Slots, key string, log *slog.Logger) *collection[T] {
	if log == nil {
		log = slog.Default()
	}
	return &collection[T]{items: seed, slots: slots, key: key, log: log}
}

// hydrate replaces the seed with the stored collection when one exists.
func (c *collection[T]) hydrate(ctx context.Context) bool {
	stored, ok := storage.Load[T](ctx, c.slots, c.key)
	if !ok {
		c.log.InfoContext(ctx, "using seed data", "key", c.key, "storage_available", c.slots.Available())
		return false
	}

	c.mu.Lock()
	c.items = stored
	c.mu.Unlock()

	c.log.InfoContext(ctx, "hydrated from storage", "key", c.key, "count", len(stored))
	return true
}

// snapshot returns a copy of the items, never nil.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// prepend puts item first and persists the whole collection. A failed write
// is logged; the in-memory state keeps the new item.
func (c *collection[T]) prepend(ctx context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = slices.Insert(c.items, 0, item)
	if err := storage.Save(ctx, c.slots, c.key, c.items); err != nil {
		c.log.WarnContext(ctx, "persist collection failed", "key", c.key, "error", err)
	}
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
