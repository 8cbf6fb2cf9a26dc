package model

import "time"

// Profile carries the user's display name and recovery settings. A nil
// RecoveryStartDate means days-clean milestones are never evaluated.
type Profile struct {
	ID                string     `db:"id" json:"id"`
	UserID            string     `db:"user_id" json:"-"`
	Name              string     `db:"name" json:"name"`
	RecoveryStartDate *time.Time `db:"recovery_start_date" json:"recovery_start_date,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}
