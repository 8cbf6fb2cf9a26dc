package metrics_test

import (
	"reflect"
	"testing"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
)

func checkin(dayOffset, mood, energy, sleep int, tags ...string) model.CheckIn {
	return model.CheckIn{
		Date:         today.AddDate(0, 0, -dayOffset).Format(model.DateLayout),
		MoodScore:    mood,
		EnergyLevel:  energy,
		SleepQuality: sleep,
		TriggerTags:  tags,
	}
}

func TestSummarize_EmptyWindow(t *testing.T) {
	s := metrics.Summarize(nil, 7)

	if s.AvgMood != 0 || s.AvgEnergy != 0 || s.AvgSleep != 0 {
		t.Errorf("averages over empty window = %v/%v/%v, want 0", s.AvgMood, s.AvgEnergy, s.AvgSleep)
	}
	if s.Consistency != 0 {
		t.Errorf("consistency = %d, want 0", s.Consistency)
	}
	if len(s.Triggers) != 0 {
		t.Errorf("triggers = %v, want empty", s.Triggers)
	}
}

func TestSummarize_Averages(t *testing.T) {
	checkins := []model.CheckIn{
		checkin(0, 8, 4, 3),
		checkin(1, 4, 2, 5),
	}

	s := metrics.Summarize(checkins, 7)

	if s.AvgMood != 6.0 {
		t.Errorf("avg mood = %v, want 6.0", s.AvgMood)
	}
	if s.AvgEnergy != 3.0 {
		t.Errorf("avg energy = %v, want 3.0", s.AvgEnergy)
	}
	if s.AvgSleep != 4.0 {
		t.Errorf("avg sleep = %v, want 4.0", s.AvgSleep)
	}
}

func TestSummarize_TriggerHistogram(t *testing.T) {
	checkins := []model.CheckIn{
		checkin(0, 5, 3, 3, "Stress"),
		checkin(1, 5, 3, 3, "Stress", "Boredom"),
	}

	s := metrics.Summarize(checkins, 7)

	want := []metrics.TriggerCount{
		{Tag: "Stress", Count: 2},
		{Tag: "Boredom", Count: 1},
	}
	if !reflect.DeepEqual(s.Triggers, want) {
		t.Errorf("triggers = %v, want %v", s.Triggers, want)
	}
}

func TestSummarize_TriggerOrderIsFirstOccurrence(t *testing.T) {
	checkins := []model.CheckIn{
		checkin(0, 5, 3, 3, "Loneliness"),
		checkin(1, 5, 3, 3, "Stress", "Stress2"),
		checkin(2, 5, 3, 3, "Stress"),
	}

	s := metrics.Summarize(checkins, 7)

	if s.Triggers[0].Tag != "Loneliness" || s.Triggers[1].Tag != "Stress" {
		t.Errorf("histogram order = %v, want first-occurrence order", s.Triggers)
	}
}

func TestSummarize_Consistency(t *testing.T) {
	checkins := []model.CheckIn{
		checkin(0, 5, 3, 3),
		checkin(1, 5, 3, 3),
		checkin(3, 5, 3, 3),
	}

	s := metrics.Summarize(checkins, 7)

	// 3/7 = 42.857..., rounds to 43.
	if s.Consistency != 43 {
		t.Errorf("consistency = %d, want 43", s.Consistency)
	}
	if s.DuplicateDays {
		t.Error("unexpected duplicate-days flag")
	}
}

func TestSummarize_DuplicateDaysNotClamped(t *testing.T) {
	// Two records on the same day violate the store invariant. The
	// ratio is reported as-is and the integrity flag is raised.
	checkins := []model.CheckIn{
		checkin(0, 5, 3, 3),
		checkin(0, 7, 3, 3),
		checkin(1, 5, 3, 3),
	}

	s := metrics.Summarize(checkins, 2)

	if !s.DuplicateDays {
		t.Error("expected duplicate-days flag")
	}
	if s.Consistency != 150 {
		t.Errorf("consistency = %d, want 150 (unclamped)", s.Consistency)
	}
}
