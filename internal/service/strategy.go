package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

type StrategyService struct {
	repo repository.StrategyRepository
}

func NewStrategyService(repo repository.StrategyRepository) *StrategyService {
	return &StrategyService{repo: repo}
}

// StrategyInput carries the user-editable coping strategy fields.
type StrategyInput struct {
	Title       string
	Category    string
	Description string
}

func (s *StrategyService) Create(userID string, input StrategyInput) (*model.Strategy, error) {
	err := validateStrategy(&input)
	if err != nil {
		return nil, err
	}

	strategy := &model.Strategy{
		UserID:      userID,
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
	}

	err = s.repo.Create(strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	return strategy, nil
}

func (s *StrategyService) Strategies(userID string) ([]*model.Strategy, error) {
	return s.repo.Strategies(userID)
}

func (s *StrategyService) Update(userID, strategyID string, input StrategyInput) (*model.Strategy, error) {
	err := validateStrategy(&input)
	if err != nil {
		return nil, err
	}

	strategy, err := s.repo.ByID(userID, strategyID)
	if err != nil {
		return nil, err
	}

	strategy.Title = input.Title
	strategy.Category = input.Category
	strategy.Description = input.Description

	err = s.repo.Update(strategy)
	if err != nil {
		return nil, err
	}

	return strategy, nil
}

func (s *StrategyService) SetFavorite(userID, strategyID string, favorite bool) error {
	return s.repo.SetFavorite(userID, strategyID, favorite)
}

func (s *StrategyService) Delete(userID, strategyID string) error {
	return s.repo.Delete(userID, strategyID)
}

func validateStrategy(input *StrategyInput) error {
	input.Title = strings.TrimSpace(input.Title)

	if input.Title == "" {
		return invalid(errors.New("title is required"))
	}
	if len(input.Title) > 200 {
		return invalid(errors.New("title is too long (max 200 characters)"))
	}
	if input.Category == "" {
		input.Category = model.StrategyCategoryGrounding
	}

	return nil
}
