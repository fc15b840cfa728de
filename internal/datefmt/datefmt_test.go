package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/torquehub/internal/datefmt"
)

func TestFriendly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-21", "Jun 21, 2024"},
		{"2024-06-15", "Jun 15, 2024"},
		{"2024-01-02T22:30:00Z", "Jan 2, 2024"},
		{"2024-12-31T23:59", "Dec 31, 2024"},
		{"06/21/2024", "Jun 21, 2024"},
		{"June 21, 2024", "Jun 21, 2024"},
		{" 2024-06-21 ", "Jun 21, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, datefmt.Friendly(tt.in))
		})
	}
}

func TestFriendly_Unparsable_EchoesInput(t *testing.T) {
	for _, in := range []string{"next friday", "", "2024-13-45", "soon™"} {
		assert.Equal(t, in, datefmt.Friendly(in))
	}
}

func TestDays_CeilingRounding(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	ms := datefmt.Millis(now)

	assert.Equal(t, 0, datefmt.Days(ms, now), "same instant")
	assert.Equal(t, 0, datefmt.Days(ms-int64(time.Hour/time.Millisecond), now), "an hour ago")
	assert.Equal(t, 0, datefmt.Days(ms-int64(23*time.Hour/time.Millisecond), now), "23 hours ago")
	assert.Equal(t, -1, datefmt.Days(ms-int64(24*time.Hour/time.Millisecond), now), "exactly one day ago")
	assert.Equal(t, -1, datefmt.Days(ms-int64(36*time.Hour/time.Millisecond), now), "a day and a half ago")
	assert.Equal(t, 1, datefmt.Days(ms+int64(time.Hour/time.Millisecond), now), "an hour ahead")
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	day := int64(24 * time.Hour / time.Millisecond)
	ms := datefmt.Millis(now)

	tests := []struct {
		name      string
		createdAt int64
		want      string
	}{
		{"now", ms, "today"},
		{"earlier today", ms - day/2, "today"},
		{"yesterday", ms - day, "yesterday"},
		{"twelve days", ms - 12*day, "12 days ago"},
		{"tomorrow", ms + day/2, "tomorrow"},
		{"future", ms + 3*day, "in 3 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datefmt.RelativeAge(tt.createdAt, now))
		})
	}
}

func TestRelativeAge_RecomputedFromNow(t *testing.T) {
	created := time.Date(2024, 6, 21, 9, 0, 0, 0, time.UTC)
	ms := datefmt.Millis(created)

	assert.Equal(t, "today", datefmt.RelativeAge(ms, created.Add(time.Hour)))
	assert.Equal(t, "2 days ago", datefmt.RelativeAge(ms, created.Add(50*time.Hour)))
}
