// Package storage persists whole collections of records in named durable slots.
//
// A slot holds one JSON array. Reads either yield a complete collection or
// report it absent; a slot whose text is not a valid array is cleared on read
// so the caller falls back to its seed data. Writes overwrite the full slot.
// There is no locking across processes: the last writer wins.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// ErrCorrupt describes a stored value that is not a JSON array of records.
var ErrCorrupt = errors.New("corrupt slot")

// Medium is a durable key -> text store with string keys.
// Get reports found=false, with a nil error, when the key holds no value.
type Medium interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Slots is the collection store. A Slots without a Medium models an
// environment where durable storage is unavailable: every Load is absent and
// every Save is a no-op. The zero value and a nil *Slots behave the same way.
type Slots struct {
	medium Medium
	log    *slog.Logger
}

// NewSlots wraps m. A nil m is allowed. A nil logger falls back to slog.Default().
func NewSlots(m Medium, log *slog.Logger) *Slots {
	if log == nil {
		log = slog.Default()
	}
	return &Slots{medium: m, log: log}
}

// Available reports whether a durable medium is attached.
func (s *Slots) Available() bool {
	return s != nil && s.medium != nil
}

func (s *Slots) logger() *slog.Logger {
	if s.log == nil {
		return slog.Default()
	}
	return s.log
}

// Load reads the collection stored under key.
//
// It returns (records, true) for a valid stored array, including an empty one,
// and (nil, false) when the slot is empty, storage is unavailable, the medium
// fails, or the stored value is corrupt. A corrupt slot is removed first so
// later loads also report absent.
func Load[T any](ctx context.Context, s *Slots, key string) ([]T, bool) {
	if !s.Available() {
		return nil, false
	}

	data, found, err := s.medium.Get(ctx, key)
	if err != nil {
		s.logger().WarnContext(ctx, "storage read failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	records, err := decode[T](data)
	if err != nil {
		s.logger().WarnContext(ctx, "clearing corrupt storage slot", "key", key, "error", err)
		if err := s.medium.Remove(ctx, key); err != nil {
			s.logger().WarnContext(ctx, "storage remove failed", "key", key, "error", err)
		}
		return nil, false
	}
	return records, true
}

// Save serialises records as a JSON array and overwrites the slot under key.
// A nil slice is written as "[]". Save is a no-op when storage is unavailable.
func Save[T any](ctx context.Context, s *Slots, key string, records []T) error {
	if !s.Available() {
		return nil
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage.Save: marshal %q: %w", key, err)
	}
	if err := s.medium.Set(ctx, key, data); err != nil {
		return fmt.Errorf("storage.Save: %q: %w", key, err)
	}
	return nil
}

// decode parses data as a JSON array whose elements decode into T.
// null, objects, scalars and malformed text are all ErrCorrupt.
func decode[T any](data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an array", ErrCorrupt)
	}

	records := make([]T, 0, len(raw))
	for i, elem := range raw {
		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrCorrupt, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
