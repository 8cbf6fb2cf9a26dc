package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalInput carries the user-editable goal fields.
type GoalInput struct {
	Title       string
	Description *string
	Category    string
	TargetDate  *time.Time
	Priority    int
}

// GoalView is a goal plus its projected progress.
type GoalView struct {
	model.Goal
	Progress    int    `json:"progress_pct"`
	TargetLabel string `json:"target_label,omitempty"`
}

func (s *GoalService) view(today time.Time, goal model.Goal) GoalView {
	return GoalView{
		Goal:        goal,
		Progress:    metrics.GoalProgress(today, goal),
		TargetLabel: metrics.TargetLabel(today, goal.TargetDate),
	}
}

func (s *GoalService) Create(userID string, input GoalInput) (*GoalView, error) {
	err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TargetDate:  input.TargetDate,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	view := s.view(now, *goal)
	return &view, nil
}

func (s *GoalService) ByID(userID, goalID string) (*GoalView, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}
	view := s.view(time.Now(), *goal)
	return &view, nil
}

func (s *GoalService) Goals(userID, sortBy string) ([]GoalView, error) {
	goals, err := s.repo.Goals(userID, sortBy)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, s.view(now, *goal))
	}

	return views, nil
}

func (s *GoalService) Update(userID, goalID string, input GoalInput) (*GoalView, error) {
	err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.Category = input.Category
	goal.TargetDate = input.TargetDate
	goal.Priority = input.Priority

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	view := s.view(time.Now(), *goal)
	return &view, nil
}

// SetCompleted toggles goal completion. Completing sets completed_date
// to the current day; un-completing clears it, keeping the invariant
// that completed_date is set iff is_completed.
func (s *GoalService) SetCompleted(userID, goalID string, completed bool) (*GoalView, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal.IsCompleted = completed
	if completed {
		day := metrics.Day(now)
		goal.CompletedDate = &day
	} else {
		goal.CompletedDate = nil
	}

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	view := s.view(now, *goal)
	return &view, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	// Verify ownership
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, goalID)
}

func (s *GoalService) CountCompleted(userID string) (int, error) {
	return s.repo.CountCompleted(userID)
}

func (s *GoalService) validate(input *GoalInput) error {
	input.Title = strings.TrimSpace(input.Title)

	err := validation.ValidateGoalTitle(input.Title)
	if err != nil {
		return invalid(err)
	}

	if input.Priority == 0 {
		input.Priority = 3
	}
	err = validation.ValidatePriority(input.Priority)
	if err != nil {
		return invalid(err)
	}

	if input.Category == "" {
		input.Category = model.GoalCategoryPersonal
	}

	return nil
}
