package model

import (
	"time"
)

const (
	GoalCategoryHealth        = "health"
	GoalCategoryRelationships = "relationships"
	GoalCategoryCareer        = "career"
	GoalCategoryPersonal      = "personal"
	GoalCategoryRecovery      = "recovery"
)

// Goal is a user-defined, optionally dated objective with a manual
// completion toggle. CompletedDate is set if and only if IsCompleted is
// true.
type Goal struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	Title         string     `db:"title" json:"title"`
	Description   *string    `db:"description" json:"description,omitempty"`
	Category      string     `db:"category" json:"category"`
	TargetDate    *time.Time `db:"target_date" json:"target_date,omitempty"`
	IsCompleted   bool       `db:"is_completed" json:"is_completed"`
	CompletedDate *time.Time `db:"completed_date" json:"completed_date,omitempty"`
	Priority      int        `db:"priority" json:"priority"` // 1-5
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
