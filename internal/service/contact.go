package service

import (
	"fmt"
	"strings"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
	"github.com/anchorhq/anchor/internal/validation"
)

type ContactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// ContactInput carries the user-editable emergency contact fields.
type ContactInput struct {
	Name         string
	Relationship string
	Phone        string
	Notes        *string
	IsSponsor    bool
}

func (s *ContactService) Create(userID string, input ContactInput) (*model.Contact, error) {
	err := validateContact(&input)
	if err != nil {
		return nil, err
	}

	contact := &model.Contact{
		UserID:       userID,
		Name:         input.Name,
		Relationship: input.Relationship,
		Phone:        input.Phone,
		Notes:        input.Notes,
		IsSponsor:    input.IsSponsor,
	}

	err = s.repo.Create(contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (s *ContactService) Contacts(userID string) ([]*model.Contact, error) {
	return s.repo.Contacts(userID)
}

func (s *ContactService) Update(userID, contactID string, input ContactInput) (*model.Contact, error) {
	err := validateContact(&input)
	if err != nil {
		return nil, err
	}

	contact, err := s.repo.ByID(userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = input.Name
	contact.Relationship = input.Relationship
	contact.Phone = input.Phone
	contact.Notes = input.Notes
	contact.IsSponsor = input.IsSponsor

	err = s.repo.Update(contact)
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *ContactService) Delete(userID, contactID string) error {
	return s.repo.Delete(userID, contactID)
}

func validateContact(input *ContactInput) error {
	input.Name = strings.TrimSpace(input.Name)

	err := validation.ValidateName(input.Name)
	if err != nil {
		return invalid(err)
	}

	return invalid(validation.ValidatePhone(input.Phone))
}
