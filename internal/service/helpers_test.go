package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pkordes/torquehub/internal/service"
	"github.com/pkordes/torquehub/internal/storage"
)

// recordingMedium wraps a MemoryMedium and counts writes.
// failSet makes every Set fail.
type recordingMedium struct {
	*storage.MemoryMedium

	mu      sync.Mutex
	sets    int
	failSet bool
}

func newRecordingMedium() *recordingMedium {
	return &recordingMedium{MemoryMedium: storage.NewMemoryMedium()}
}

func (m *recordingMedium) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.sets++
	fail := m.failSet
	m.mu.Unlock()

	if fail {
		return errors.New("quota exceeded")
	}
	return m.MemoryMedium.Set(ctx, key, value)
}

func (m *recordingMedium) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

// compile-time check: recordingMedium must satisfy storage.Medium.
var _ storage.Medium = (*recordingMedium)(nil)

// ---- helpers ---------------------------------------------------------------

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs returns a generator yielding "test-1", "test-2", ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("test-%d", n)
	}
}

func testOptions() []service.Option {
	return []service.Option{
		service.WithClock(fixedClock),
		service.WithIDGenerator(sequentialIDs()),
	}
}
