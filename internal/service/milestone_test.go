package service

import (
	"errors"
	"testing"
	"time"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

var testToday = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newMilestoneFixture(daysClean int, checkIns int) (*MilestoneService, *fakeMilestoneRepo) {
	milestoneRepo := &fakeMilestoneRepo{}
	checkInRepo := &fakeCheckInRepo{}
	seedCheckIns(checkInRepo, "u1", testToday, checkIns)

	profile := &model.Profile{UserID: "u1", Name: "Sam"}
	if daysClean >= 0 {
		start := testToday.AddDate(0, 0, -daysClean)
		profile.RecoveryStartDate = &start
	}

	svc := NewMilestoneService(
		milestoneRepo,
		checkInRepo,
		&fakeProfileRepo{profile: profile},
		&fakeUserRepo{},
		nil,
	)
	return svc, milestoneRepo
}

func TestEvaluateInsertsAllQualifying(t *testing.T) {
	svc, repo := newMilestoneFixture(35, 10)

	earned, err := svc.Evaluate("u1", testToday)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	// 35 days clean unlocks 1, 7 and 30; 10 check-ins unlocks 7.
	if len(earned) != 4 {
		t.Fatalf("earned %d milestones, want 4", len(earned))
	}
	if len(repo.milestones) != 4 {
		t.Fatalf("persisted %d milestones, want 4", len(repo.milestones))
	}
	for _, m := range earned {
		if m.UserID != "u1" {
			t.Errorf("milestone %s/%d has user %q, want u1", m.Type, m.Value, m.UserID)
		}
		if m.AchievedDate != "2026-08-31" {
			t.Errorf("milestone %s/%d achieved %q, want 2026-08-31", m.Type, m.Value, m.AchievedDate)
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	svc, repo := newMilestoneFixture(35, 10)

	if _, err := svc.Evaluate("u1", testToday); err != nil {
		t.Fatalf("first Evaluate() error = %v", err)
	}
	before := len(repo.milestones)

	earned, err := svc.Evaluate("u1", testToday)
	if err != nil {
		t.Fatalf("second Evaluate() error = %v", err)
	}
	if len(earned) != 0 {
		t.Errorf("second run earned %d milestones, want 0", len(earned))
	}
	if len(repo.milestones) != before {
		t.Errorf("second run changed persisted count: %d -> %d", before, len(repo.milestones))
	}
}

func TestEvaluateNoRecoveryStart(t *testing.T) {
	svc, _ := newMilestoneFixture(-1, 3)

	earned, err := svc.Evaluate("u1", testToday)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	for _, m := range earned {
		if m.Type == model.MilestoneDaysClean {
			t.Errorf("earned days-clean milestone %d without a recovery start date", m.Value)
		}
	}
}

func TestEvaluatePartialFailure(t *testing.T) {
	svc, repo := newMilestoneFixture(8, 1)
	boom := errors.New("disk full")
	repo.failValues = map[int]error{7: boom}

	earned, err := svc.Evaluate("u1", testToday)
	if err == nil {
		t.Fatal("Evaluate() error = nil, want insert failure reported")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Evaluate() error = %v, want wrapped %v", err, boom)
	}

	// The 1-day milestone must still have landed.
	found := false
	for _, m := range earned {
		if m.Value == 7 {
			t.Errorf("failed insert %s/%d reported as earned", m.Type, m.Value)
		}
		if m.Type == model.MilestoneDaysClean && m.Value == 1 {
			found = true
		}
	}
	if !found {
		t.Error("1-day milestone missing from earned despite successful insert")
	}
}

func TestEvaluateConcurrentInsertIsBenign(t *testing.T) {
	svc, repo := newMilestoneFixture(2, 0)
	// Simulate another evaluation winning the race on the 1-day insert.
	repo.failValues = map[int]error{1: repository.ErrMilestoneExists}

	earned, err := svc.Evaluate("u1", testToday)
	if err != nil {
		t.Fatalf("Evaluate() error = %v, conflicts must not fail the run", err)
	}
	for _, m := range earned {
		if m.Type == model.MilestoneDaysClean && m.Value == 1 {
			t.Error("milestone held by a concurrent run reported as newly earned")
		}
	}
}
