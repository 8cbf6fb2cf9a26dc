package metrics_test

import (
	"testing"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
)

func thresholds(ms []model.Milestone, milestoneType string) []int {
	var out []int
	for _, m := range ms {
		if m.Type == milestoneType {
			out = append(out, m.Value)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDaysClean(t *testing.T) {
	start := today.AddDate(0, 0, -35)

	days, ok := metrics.DaysClean(today, &start)
	if !ok || days != 35 {
		t.Errorf("DaysClean = %d/%v, want 35/true", days, ok)
	}

	if _, ok := metrics.DaysClean(today, nil); ok {
		t.Error("DaysClean with nil start should report not set")
	}

	future := today.AddDate(0, 0, 2)
	if days, _ := metrics.DaysClean(today, &future); days != 0 {
		t.Errorf("DaysClean with future start = %d, want 0", days)
	}
}

func TestPendingMilestones_EmitsAllQualifyingThresholds(t *testing.T) {
	c := metrics.Counters{DaysClean: 35, HasRecoveryStart: true}

	got := metrics.PendingMilestones(today, c, nil)

	want := []int{1, 7, 30}
	if !equalInts(thresholds(got, model.MilestoneDaysClean), want) {
		t.Errorf("days_clean thresholds = %v, want %v", thresholds(got, model.MilestoneDaysClean), want)
	}
	if len(got) != 3 {
		t.Errorf("emitted %d milestones, want exactly 3", len(got))
	}
}

func TestPendingMilestones_DeduplicatesAgainstExisting(t *testing.T) {
	c := metrics.Counters{DaysClean: 35, HasRecoveryStart: true}
	existing := []model.Milestone{
		{Type: model.MilestoneDaysClean, Value: 7},
	}

	got := metrics.PendingMilestones(today, c, existing)

	want := []int{1, 30}
	if !equalInts(thresholds(got, model.MilestoneDaysClean), want) {
		t.Errorf("thresholds = %v, want %v", thresholds(got, model.MilestoneDaysClean), want)
	}
}

func TestPendingMilestones_CheckInJump(t *testing.T) {
	// Jumping from 0 to 40 check-ins earns 7 and 30 in the same pass.
	c := metrics.Counters{CheckIns: 40}

	got := metrics.PendingMilestones(today, c, nil)

	want := []int{7, 30}
	if !equalInts(thresholds(got, model.MilestoneCheckInsCompleted), want) {
		t.Errorf("check-in thresholds = %v, want %v", thresholds(got, model.MilestoneCheckInsCompleted), want)
	}
}

func TestPendingMilestones_NoRecoveryStart(t *testing.T) {
	// Without a recovery start date, days-clean thresholds are never
	// evaluated, whatever the counter says.
	c := metrics.Counters{DaysClean: 365, HasRecoveryStart: false, CheckIns: 3}

	got := metrics.PendingMilestones(today, c, nil)
	if len(got) != 0 {
		t.Errorf("emitted %v, want none", got)
	}
}

func TestPendingMilestones_Idempotent(t *testing.T) {
	c := metrics.Counters{DaysClean: 90, HasRecoveryStart: true, CheckIns: 55}

	first := metrics.PendingMilestones(today, c, nil)
	second := metrics.PendingMilestones(today, c, first)

	if len(second) != 0 {
		t.Errorf("second run emitted %d milestones, want 0", len(second))
	}
}

func TestPendingMilestones_Fields(t *testing.T) {
	c := metrics.Counters{DaysClean: 1, HasRecoveryStart: true}

	got := metrics.PendingMilestones(today, c, nil)
	if len(got) != 1 {
		t.Fatalf("emitted %d, want 1", len(got))
	}

	m := got[0]
	if m.Title != "1 Day Clean" {
		t.Errorf("title = %q", m.Title)
	}
	if m.Description == "" {
		t.Error("description is empty")
	}
	if m.AchievedDate != "2026-08-31" {
		t.Errorf("achieved date = %q, want today's calendar day", m.AchievedDate)
	}
}
