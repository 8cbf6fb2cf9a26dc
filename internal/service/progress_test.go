package service

import (
	"testing"

	"github.com/anchorhq/anchor/internal/model"
)

func TestOverviewComputesStreakAndAverages(t *testing.T) {
	checkInRepo := &fakeCheckInRepo{}
	seedCheckIns(checkInRepo, "u1", testToday, 5)

	start := testToday.AddDate(0, 0, -40)
	profileRepo := &fakeProfileRepo{profile: &model.Profile{
		UserID:            "u1",
		RecoveryStartDate: &start,
	}}

	svc := NewProgressService(checkInRepo, profileRepo, 731)

	overview, err := svc.Overview("u1", testToday, 30)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if overview.Streak != 5 {
		t.Errorf("Streak = %d, want 5", overview.Streak)
	}
	if overview.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5", overview.LongestStreak)
	}
	if overview.TotalCheckIns != 5 {
		t.Errorf("TotalCheckIns = %d, want 5", overview.TotalCheckIns)
	}
	if overview.DaysClean == nil || *overview.DaysClean != 40 {
		t.Errorf("DaysClean = %v, want 40", overview.DaysClean)
	}
	if overview.Summary.AvgMood != 7.0 {
		t.Errorf("AvgMood = %v, want 7.0", overview.Summary.AvgMood)
	}
	if overview.Summary.CheckInCount != 5 {
		t.Errorf("CheckInCount = %d, want 5", overview.Summary.CheckInCount)
	}
}

func TestOverviewWithoutRecoveryStart(t *testing.T) {
	checkInRepo := &fakeCheckInRepo{}
	profileRepo := &fakeProfileRepo{profile: &model.Profile{UserID: "u1"}}

	svc := NewProgressService(checkInRepo, profileRepo, 731)

	overview, err := svc.Overview("u1", testToday, 30)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if overview.DaysClean != nil {
		t.Errorf("DaysClean = %v, want nil without a recovery start date", *overview.DaysClean)
	}
	if overview.Streak != 0 {
		t.Errorf("Streak = %d, want 0 with no check-ins", overview.Streak)
	}
	if overview.Summary.Consistency != 0 {
		t.Errorf("Consistency = %d, want 0 with no check-ins", overview.Summary.Consistency)
	}
}

func TestOverviewStreakBrokenByGap(t *testing.T) {
	checkInRepo := &fakeCheckInRepo{}
	// Check-ins today and two days ago: yesterday is missing.
	for _, offset := range []int{2, 0} {
		checkInRepo.checkins = append(checkInRepo.checkins, model.CheckIn{
			UserID:       "u1",
			Date:         testToday.AddDate(0, 0, -offset).Format(model.DateLayout),
			MoodScore:    6,
			EnergyLevel:  3,
			SleepQuality: 3,
		})
	}
	profileRepo := &fakeProfileRepo{profile: &model.Profile{UserID: "u1"}}

	svc := NewProgressService(checkInRepo, profileRepo, 731)

	overview, err := svc.Overview("u1", testToday, 30)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if overview.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after a gap", overview.Streak)
	}
}
