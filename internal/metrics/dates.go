// Package metrics implements the derived-metrics engine: check-in streaks,
// rolling mood/energy/sleep averages, trigger-frequency histograms,
// milestone threshold evaluation and goal progress projection.
//
// Every function is a pure computation over a snapshot the caller has
// already fetched. Nothing here touches the database or blocks.
package metrics

import (
	"time"

	"github.com/anchorhq/anchor/internal/model"
)

// Day truncates t to its calendar day in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
// Comparison is by day string, never by timestamp.
func SameDay(a, b time.Time) bool {
	return a.Format(model.DateLayout) == b.Format(model.DateLayout)
}

// DaysBetween returns the whole number of calendar days from a to b
// (negative if b is before a). Days are normalized to UTC midnights so
// DST transitions never shift the count.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
