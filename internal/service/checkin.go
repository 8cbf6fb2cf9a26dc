package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/validation"
)

type CheckInService struct {
	repo             repository.CheckInRepository
	milestoneService *MilestoneService
}

func NewCheckInService(repo repository.CheckInRepository, milestoneService *MilestoneService) *CheckInService {
	return &CheckInService{
		repo:             repo,
		milestoneService: milestoneService,
	}
}

// CheckInInput is a check-in submission for one calendar day.
type CheckInInput struct {
	MoodScore     int
	EnergyLevel   int
	SleepQuality  int
	TriggerTags   []string
	GratitudeNote *string
	Notes         *string
}

// Submit upserts today's check-in and runs milestone evaluation. A second
// submission on the same day overwrites the first. Returns the stored
// check-in and any milestones earned by this submission; a partial
// milestone failure does not fail the check-in itself.
func (s *CheckInService) Submit(userID string, day time.Time, input CheckInInput) (*model.CheckIn, []model.Milestone, error) {
	err := validation.ValidateCheckIn(input.MoodScore, input.EnergyLevel, input.SleepQuality, input.TriggerTags)
	if err != nil {
		return nil, nil, invalid(err)
	}

	checkin := &model.CheckIn{
		UserID:        userID,
		Date:          day.Format(model.DateLayout),
		MoodScore:     input.MoodScore,
		EnergyLevel:   input.EnergyLevel,
		SleepQuality:  input.SleepQuality,
		TriggerTags:   input.TriggerTags,
		GratitudeNote: input.GratitudeNote,
		Notes:         input.Notes,
	}

	err = s.repo.Upsert(checkin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	earned, err := s.milestoneService.Evaluate(userID, day)
	if err != nil {
		// The check-in is saved; milestone persistence problems are
		// reported out-of-band and retried on the next evaluation.
		slog.Warn("milestone evaluation incomplete", "error", err, "user_id", userID)
	}

	return checkin, earned, nil
}

func (s *CheckInService) ByDay(userID string, day time.Time) (*model.CheckIn, error) {
	return s.repo.ByDay(userID, day)
}

// Window returns the check-ins of the last windowDays days, today
// included, most recent first.
func (s *CheckInService) Window(userID string, today time.Time, windowDays int) ([]model.CheckIn, error) {
	from := today.AddDate(0, 0, -(windowDays - 1))
	return s.repo.Window(userID, from, today)
}

func (s *CheckInService) Count(userID string) (int, error) {
	return s.repo.Count(userID)
}
