package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

type MilestoneService struct {
	repo         repository.MilestoneRepository
	checkInRepo  repository.CheckInRepository
	profileRepo  repository.ProfileRepository
	emailService *EmailService
	userRepo     repository.UserRepository
}

func NewMilestoneService(
	repo repository.MilestoneRepository,
	checkInRepo repository.CheckInRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	emailService *EmailService,
) *MilestoneService {
	return &MilestoneService{
		repo:         repo,
		checkInRepo:  checkInRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

func (s *MilestoneService) Milestones(userID string) ([]model.Milestone, error) {
	return s.repo.Milestones(userID)
}

// Evaluate builds the counters snapshot, runs the threshold tables and
// persists every newly earned milestone. Each insert is independent: a
// failure on one record does not roll back earlier successes, and the
// returned slice holds exactly the records that were persisted. Failures
// are joined into the returned error. Running Evaluate twice with no new
// data inserts nothing the second time.
func (s *MilestoneService) Evaluate(userID string, today time.Time) ([]model.Milestone, error) {
	counters, err := s.counters(userID, today)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Milestones(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}

	pending := metrics.PendingMilestones(today, counters, existing)

	var inserted []model.Milestone
	var insertErrs []error
	for _, m := range pending {
		m.UserID = userID
		err := s.repo.Insert(&m)
		if errors.Is(err, repository.ErrMilestoneExists) {
			// Another evaluation got there first. Not a failure.
			continue
		}
		if err != nil {
			insertErrs = append(insertErrs, fmt.Errorf("insert %s/%d: %w", m.Type, m.Value, err))
			continue
		}
		inserted = append(inserted, m)
	}

	s.notify(userID, inserted)

	return inserted, errors.Join(insertErrs...)
}

func (s *MilestoneService) counters(userID string, today time.Time) (metrics.Counters, error) {
	var counters metrics.Counters

	checkIns, err := s.checkInRepo.Count(userID)
	if err != nil {
		return counters, fmt.Errorf("failed to count check-ins: %w", err)
	}
	counters.CheckIns = checkIns

	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		return counters, fmt.Errorf("failed to load profile: %w", err)
	}
	counters.DaysClean, counters.HasRecoveryStart = metrics.DaysClean(today, profile.RecoveryStartDate)

	return counters, nil
}

// notify sends one congratulation email per earned milestone. Email is
// best effort and never fails the evaluation.
func (s *MilestoneService) notify(userID string, earned []model.Milestone) {
	if len(earned) == 0 || s.emailService == nil {
		return
	}

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		slog.Warn("failed to load user for milestone email", "error", err, "user_id", userID)
		return
	}

	name := "there"
	if profile, err := s.profileRepo.ByUserID(userID); err == nil && profile.Name != "" {
		name = profile.Name
	}

	for _, m := range earned {
		err := s.emailService.SendMilestoneEmail(user.Email, name, m.Title, m.Description)
		if err != nil {
			slog.Warn("failed to send milestone email", "error", err, "user_id", userID, "milestone", m.Title)
		}
	}
}
