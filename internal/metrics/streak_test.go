package metrics_test

import (
	"testing"
	"time"

	"github.com/anchorhq/anchor/internal/metrics"
)

var today = time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

// days builds a date list from day offsets relative to today
// (0 = today, 1 = yesterday, ...), most-recent-first.
func days(offsets ...int) []time.Time {
	out := make([]time.Time, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, today.AddDate(0, 0, -o))
	}
	return out
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"single today", days(0), 1},
		{"unbroken week", days(0, 1, 2, 3, 4, 5, 6), 7},
		{"gap after two days", days(0, 1, 3), 2},
		{"no check-in today", days(1, 2, 3), 0},
		{"gap then long history", days(0, 2, 3, 4, 5), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.Streak(today, tt.dates)
			if got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreak_IgnoresTimeOfDay(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC),
	}
	if got := metrics.Streak(today, dates); got != 2 {
		t.Errorf("Streak() = %d, want 2 (day equality, not timestamp)", got)
	}
}

func TestStreak_ShortWindowUndercounts(t *testing.T) {
	// A 3-entry window of a longer true streak ends the count at the
	// window edge.
	if got := metrics.Streak(today, days(0, 1, 2)); got != 3 {
		t.Errorf("Streak() = %d, want 3", got)
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"single", days(3), 1},
		{"run in the past beats current", days(0, 5, 6, 7, 8), 4},
		{"current run is longest", days(0, 1, 2, 9), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.LongestRun(tt.dates); got != tt.want {
				t.Errorf("LongestRun() = %d, want %d", got, tt.want)
			}
		})
	}
}
