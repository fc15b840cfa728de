// Package datefmt renders stored dates and timestamps for display.
//
// Nothing here is cached: callers pass the current time explicitly so that
// relative text is recomputed on every render.
package datefmt

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// friendlyLayout is the short US form, e.g. "Jun 21, 2024".
const friendlyLayout = "Jan 2, 2006"

const millisPerDay = 24 * 60 * 60 * 1000

// inputLayouts are tried in order by Friendly.
var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Friendly formats a calendar-date string as "Jun 21, 2024".
// Date-only input keeps its calendar day regardless of time zone.
// Input that does not parse is returned unchanged.
func Friendly(date string) string {
	s := strings.TrimSpace(date)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(friendlyLayout)
		}
	}
	return date
}

// Millis converts t to milliseconds since the Unix epoch, the unit of every
// stored createdAt value.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// Days returns the whole-day offset of createdAt (ms) from now, rounded up.
// A record created earlier today yields 0, one created yesterday yields -1.
func Days(createdAt int64, now time.Time) int {
	diff := float64(createdAt - Millis(now))
	d := math.Ceil(diff / millisPerDay)
	if d == 0 {
		return 0 // normalise -0
	}
	return int(d)
}

// RelativeAge expresses createdAt relative to now in days:
// "today", "yesterday", "tomorrow", "3 days ago" or "in 3 days".
func RelativeAge(createdAt int64, now time.Time) string {
	days := Days(createdAt, now)
	switch {
	case days == 0:
		return "today"
	case days == -1:
		return "yesterday"
	case days == 1:
		return "tomorrow"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
