package model

import (
	"time"
)

const (
	MilestoneDaysClean         = "days_clean"
	MilestoneMeetingsAttended  = "meetings_attended"
	MilestoneCheckInsCompleted = "check_ins_completed"
	MilestoneGoalsAchieved     = "goals_achieved"
)

// Milestone is an automatically unlocked achievement tied to a counter
// crossing a fixed threshold. Immutable once created; at most one exists
// per (user, type, value), enforced by a unique index in the store.
type Milestone struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"-"`
	Type         string    `db:"milestone_type" json:"milestone_type"`
	Value        int       `db:"milestone_value" json:"milestone_value"`
	AchievedDate string    `db:"achieved_date" json:"achieved_date"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
