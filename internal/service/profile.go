package service

import (
	"strings"
	"time"

	"github.com/anchorhq/anchor/internal/metrics"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/validation"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(userID)
}

func (s *ProfileService) Create(profile *model.Profile) error {
	return s.profileRepo.Create(profile)
}

func (s *ProfileService) UpdateName(userID, name string) error {
	name = strings.TrimSpace(name)

	err := validation.ValidateName(name)
	if err != nil {
		return err
	}

	return s.profileRepo.UpdateName(userID, name)
}

// UpdateRecoveryStartDate sets or clears the recovery start date.
// The date is truncated to midnight so day math stays stable.
func (s *ProfileService) UpdateRecoveryStartDate(userID string, startDate *time.Time) error {
	if startDate != nil {
		day := metrics.Day(*startDate)
		startDate = &day
	}
	return s.profileRepo.UpdateRecoveryStartDate(userID, startDate)
}
