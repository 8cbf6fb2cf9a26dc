package validation

import (
	"errors"
	"strings"
)

// ValidateGoalTitle validates a goal title
func ValidateGoalTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidatePriority validates a goal priority
func ValidatePriority(priority int) error {
	if priority < 1 || priority > 5 {
		return errors.New("priority must be between 1 and 5")
	}
	return nil
}
