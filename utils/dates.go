package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts a calendar date ("2006-01-02") or an RFC3339 timestamp
// and returns it truncated to midnight UTC. Booking intervals are calendar
// dates; times of day never participate in overlap checks.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}
