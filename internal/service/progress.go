package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

type ProgressService struct {
	checkInRepo      repository.CheckInRepository
	profileRepo      repository.ProfileRepository
	streakWindowDays int
}

func NewProgressService(checkInRepo repository.CheckInRepository, profileRepo repository.ProfileRepository, streakWindowDays int) *ProgressService {
	return &ProgressService{
		checkInRepo:      checkInRepo,
		profileRepo:      profileRepo,
		streakWindowDays: streakWindowDays,
	}
}

// Overview is the progress screen payload: current streak, days clean
// and the aggregate statistics for the requested window.
type Overview struct {
	Streak        int             `json:"streak"`
	LongestStreak int             `json:"longest_streak"`
	DaysClean     *int            `json:"days_clean,omitempty"`
	TotalCheckIns int             `json:"total_check_ins"`
	Summary       metrics.Summary `json:"summary"`
}

// Overview computes the derived statistics for one user over a snapshot
// of their check-in history. windowDays is typically 7, 30 or 90.
func (s *ProgressService) Overview(userID string, today time.Time, windowDays int) (*Overview, error) {
	if windowDays <= 0 {
		windowDays = 30
	}

	dates, err := s.checkInRepo.RecentDates(userID, s.streakWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in dates: %w", err)
	}

	from := today.AddDate(0, 0, -(windowDays - 1))
	window, err := s.checkInRepo.Window(userID, from, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in window: %w", err)
	}

	total, err := s.checkInRepo.Count(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}

	overview := &Overview{
		Streak:        metrics.Streak(today, dates),
		LongestStreak: metrics.LongestRun(dates),
		TotalCheckIns: total,
		Summary:       metrics.Summarize(window, windowDays),
	}

	if overview.Summary.DuplicateDays {
		// Upsert keying should make this impossible; surface it rather
		// than clamping the ratio.
		slog.Warn("duplicate check-in days detected", "user_id", userID, "window_days", windowDays)
	}

	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if days, ok := metrics.DaysClean(today, profile.RecoveryStartDate); ok {
		overview.DaysClean = &days
	}

	return overview, nil
}

// RecentDates exposes the parsed check-in days, most recent first, for
// chart rendering by the client.
func (s *ProgressService) RecentDates(userID string, limit int) ([]string, error) {
	dates, err := s.checkInRepo.RecentDates(userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(model.DateLayout))
	}
	return out, nil
}
