package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/anchorhq/anchor/internal/model"
)

// GoalProgress projects a goal's completion percentage in [0, 100].
// Completed goals are 100. A goal without a target date has no defined
// timeline, so progress is 0 rather than an error. Otherwise progress is
// elapsed/total time, clamped. A target date at or before creation is a
// malformed goal: if today has reached the creation date the deadline is
// already here, so the projection is 100 and the non-positive total is
// never used as a divisor.
func GoalProgress(today time.Time, goal model.Goal) int {
	if goal.IsCompleted {
		return 100
	}
	if goal.TargetDate == nil {
		return 0
	}

	elapsed := DaysBetween(goal.CreatedAt, today)
	total := DaysBetween(goal.CreatedAt, *goal.TargetDate)

	if total <= 0 {
		if elapsed >= 0 {
			return 100
		}
		return 0
	}

	pct := float64(elapsed) / float64(total) * 100
	return int(math.Round(math.Min(100, math.Max(0, pct))))
}

// DaysUntilTarget returns ceil((target - today) in days): 0 when the
// target is today, negative when it has passed.
func DaysUntilTarget(today, target time.Time) int {
	return DaysBetween(today, target)
}

// TargetLabel renders the days-until-target as display text. A goal
// without a target date has no label.
func TargetLabel(today time.Time, target *time.Time) string {
	if target == nil {
		return ""
	}

	days := DaysUntilTarget(today, *target)
	switch {
	case days < 0:
		return fmt.Sprintf("%d %s overdue", -days, dayWordLower(-days))
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d %s left", days, dayWordLower(days))
	}
}

func dayWordLower(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
