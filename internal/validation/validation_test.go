package validation

import (
	"testing"
)

func TestValidateCheckIn(t *testing.T) {
	tests := []struct {
		name    string
		mood    int
		energy  int
		sleep   int
		tags    []string
		wantErr bool
	}{
		{"valid", 5, 3, 3, []string{"Stress"}, false},
		{"bounds", 1, 1, 1, nil, false},
		{"upper bounds", 10, 5, 5, nil, false},
		{"mood too low", 0, 3, 3, nil, true},
		{"mood too high", 11, 3, 3, nil, true},
		{"energy out of range", 5, 6, 3, nil, true},
		{"sleep out of range", 5, 3, 0, nil, true},
		{"empty tag", 5, 3, 3, []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckIn(tt.mood, tt.energy, tt.sleep, tt.tags)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCheckIn() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"+1 (555) 123-4567", false},
		{"911", false},
		{"", true},
		{"555-HELP", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoalTitle(t *testing.T) {
	if err := ValidateGoalTitle("  "); err == nil {
		t.Error("blank title should be rejected")
	}
	if err := ValidateGoalTitle("Attend 90 meetings in 90 days"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range []int{1, 3, 5} {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("priority %d: unexpected error %v", p, err)
		}
	}
	for _, p := range []int{0, 6, -1} {
		if err := ValidatePriority(p); err == nil {
			t.Errorf("priority %d should be rejected", p)
		}
	}
}
