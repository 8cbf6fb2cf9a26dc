package metrics_test

import (
	"testing"
	"time"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
)

func datedGoal(createdOffset int, targetOffset *int) model.Goal {
	g := model.Goal{CreatedAt: today.AddDate(0, 0, createdOffset)}
	if targetOffset != nil {
		target := today.AddDate(0, 0, *targetOffset)
		g.TargetDate = &target
	}
	return g
}

func offset(n int) *int { return &n }

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal model.Goal
		want int
	}{
		{"completed is always 100", model.Goal{IsCompleted: true}, 100},
		{"no target date", datedGoal(-5, nil), 0},
		{"halfway", datedGoal(-5, offset(5)), 50},
		{"past target clamps to 100", datedGoal(-15, offset(-5)), 100},
		{"not started", datedGoal(0, offset(10)), 0},
		{"degenerate target at creation", datedGoal(0, offset(0)), 100},
		{"target before creation", datedGoal(-2, offset(-4)), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.GoalProgress(today, tt.goal); got != tt.want {
				t.Errorf("GoalProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargetLabel(t *testing.T) {
	tests := []struct {
		name   string
		target *time.Time
		want   string
	}{
		{"no target", nil, ""},
		{"due today", timePtr(today), "Due today"},
		{"one day left", timePtr(today.AddDate(0, 0, 1)), "1 day left"},
		{"many days left", timePtr(today.AddDate(0, 0, 14)), "14 days left"},
		{"one day overdue", timePtr(today.AddDate(0, 0, -1)), "1 day overdue"},
		{"overdue", timePtr(today.AddDate(0, 0, -3)), "3 days overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.TargetLabel(today, tt.target); got != tt.want {
				t.Errorf("TargetLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
