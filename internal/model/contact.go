package model

import "time"

// Contact is an emergency contact the user can reach out to in a crisis.
type Contact struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"-"`
	Name         string    `db:"name" json:"name"`
	Relationship string    `db:"relationship" json:"relationship"`
	Phone        string    `db:"phone" json:"phone"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	IsSponsor    bool      `db:"is_sponsor" json:"is_sponsor"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
