package validation

import (
	"errors"
	"strings"
)

// ValidatePhone validates an emergency contact phone number.
// Accepts digits, spaces, and the usual separators; no strict E.164.
func ValidatePhone(phone string) error {
	trimmed := strings.TrimSpace(phone)

	if trimmed == "" {
		return errors.New("phone number is required")
	}

	if len(trimmed) > 30 {
		return errors.New("phone number is too long (max 30 characters)")
	}

	digits := 0
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')' || r == '.':
		default:
			return errors.New("phone number contains invalid characters")
		}
	}

	if digits < 3 {
		return errors.New("phone number is too short")
	}

	return nil
}
