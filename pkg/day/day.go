// Package day maps calendar dates to the canonical record keys used by the
// diary store.
package day

import (
	"fmt"
	"time"
)

const (
	// Layout is the canonical record key format.
	Layout = "2006-01-02"

	// readLayout is permissive so "2025-7-1" is accepted on input.
	readLayout = "2006-1-2"

	// monthLayout is used for calendar navigation flags.
	monthLayout = "2006-1"
)

// Format returns the zero-padded YYYY-MM-DD key for t in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse returns local midnight for the given key.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(readLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", key, Layout, err)
	}
	return t, nil
}

// Valid reports whether key is a canonical record key.
func Valid(key string) bool {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return false
	}
	return Format(t) == key
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Trailing returns the n calendar days ending with today, oldest first.
func Trailing(today time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	base := Midnight(today)
	out := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, base.AddDate(0, 0, -i))
	}
	return out
}

// ShortLabel renders the MM-DD axis label used by the trend chart.
func ShortLabel(t time.Time) string {
	return Format(t)[5:]
}

// ParseMonth parses "2025-11" style month selectors.
func ParseMonth(v string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, v)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q want format %q: %w", v, "2006-01", err)
	}
	return t.Year(), t.Month(), nil
}
