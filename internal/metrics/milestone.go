package metrics

import (
	"fmt"
	"time"

	"github.com/anchorhq/anchor/internal/model"
)

// Threshold tables are fixed, not user-configurable.
var (
	daysCleanThresholds = []int{1, 7, 30, 60, 90, 180, 365, 730}
	checkInThresholds   = []int{7, 30, 50, 100}
)

// Counters is the snapshot the milestone evaluator runs against.
type Counters struct {
	DaysClean        int
	HasRecoveryStart bool
	CheckIns         int
}

// DaysClean returns floor((today - start) in days) and whether a start
// date was set at all. Without a recovery start date the days-clean
// table is never evaluated.
func DaysClean(today time.Time, start *time.Time) (int, bool) {
	if start == nil {
		return 0, false
	}
	days := DaysBetween(*start, today)
	if days < 0 {
		days = 0
	}
	return days, true
}

// PendingMilestones compares the counters against the threshold tables
// and returns every qualifying threshold not already present in
// existing, as unsaved Milestone records with AchievedDate = today.
// All unearned thresholds up to the counter are emitted in one pass: a
// user jumping from 0 to 40 check-ins earns both the 7 and the 30.
// Re-running with the returned records persisted yields nothing new.
func PendingMilestones(today time.Time, c Counters, existing []model.Milestone) []model.Milestone {
	earned := map[string]bool{}
	for _, m := range existing {
		earned[milestoneKey(m.Type, m.Value)] = true
	}

	var pending []model.Milestone

	if c.HasRecoveryStart {
		for _, threshold := range daysCleanThresholds {
			if c.DaysClean >= threshold && !earned[milestoneKey(model.MilestoneDaysClean, threshold)] {
				pending = append(pending, newMilestone(model.MilestoneDaysClean, threshold, today))
			}
		}
	}

	for _, threshold := range checkInThresholds {
		if c.CheckIns >= threshold && !earned[milestoneKey(model.MilestoneCheckInsCompleted, threshold)] {
			pending = append(pending, newMilestone(model.MilestoneCheckInsCompleted, threshold, today))
		}
	}

	return pending
}

func milestoneKey(milestoneType string, value int) string {
	return fmt.Sprintf("%s:%d", milestoneType, value)
}

func newMilestone(milestoneType string, value int, today time.Time) model.Milestone {
	m := model.Milestone{
		Type:         milestoneType,
		Value:        value,
		AchievedDate: today.Format(model.DateLayout),
	}

	switch milestoneType {
	case model.MilestoneDaysClean:
		m.Title = fmt.Sprintf("%d %s Clean", value, dayWord(value))
		m.Description = fmt.Sprintf("You have stayed clean for %d consecutive %s. Keep going!", value, dayWord(value))
	case model.MilestoneCheckInsCompleted:
		m.Title = fmt.Sprintf("%d Check-Ins Completed", value)
		m.Description = fmt.Sprintf("You have completed %d daily check-ins. Showing up matters.", value)
	}

	return m
}

func dayWord(n int) string {
	if n == 1 {
		return "Day"
	}
	return "Days"
}
