package validation

import (
	"errors"
	"fmt"
)

var (
	ErrMoodScoreRange    = errors.New("mood score must be between 1 and 10")
	ErrEnergyLevelRange  = errors.New("energy level must be between 1 and 5")
	ErrSleepQualityRange = errors.New("sleep quality must be between 1 and 5")
)

const maxTriggerTags = 20

// ValidateCheckIn validates the score ranges of a check-in submission.
func ValidateCheckIn(mood, energy, sleep int, triggerTags []string) error {
	if mood < 1 || mood > 10 {
		return ErrMoodScoreRange
	}
	if energy < 1 || energy > 5 {
		return ErrEnergyLevelRange
	}
	if sleep < 1 || sleep > 5 {
		return ErrSleepQualityRange
	}
	if len(triggerTags) > maxTriggerTags {
		return fmt.Errorf("too many trigger tags (max %d)", maxTriggerTags)
	}
	for _, tag := range triggerTags {
		if tag == "" {
			return errors.New("trigger tags must not be empty")
		}
		if len(tag) > 50 {
			return errors.New("trigger tag is too long (max 50 characters)")
		}
	}
	return nil
}
