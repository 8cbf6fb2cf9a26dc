package metrics

import (
	"time"
)

// Streak counts consecutive calendar days with a check-in, starting at
// today and walking backward. dates must be ordered most-recent-first
// with at most one entry per calendar day; the count stops at the first
// gap. An empty list returns 0.
//
// The list is usually a bounded window of the true history. A window
// shorter than the real streak ends the count at the window edge, a
// silent undercount. Callers should fetch at least as many days as the
// longest streak they care about (the progress service fetches 731).
func Streak(today time.Time, dates []time.Time) int {
	streak := 0
	for i, d := range dates {
		expected := Day(today).AddDate(0, 0, -i)
		if !SameDay(d, expected) {
			break
		}
		streak++
	}
	return streak
}

// LongestRun returns the longest consecutive-day run anywhere in dates
// (most-recent-first, deduplicated by day), not just the one ending
// today. Shown alongside the current streak on the progress screen.
func LongestRun(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if DaysBetween(dates[i], dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
