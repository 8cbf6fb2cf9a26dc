package model

import "time"

const (
	StrategyCategoryGrounding   = "grounding"
	StrategyCategoryPhysical    = "physical"
	StrategyCategorySocial      = "social"
	StrategyCategoryMindfulness = "mindfulness"
	StrategyCategoryDistraction = "distraction"
)

// Strategy is a user-authored coping strategy.
type Strategy struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	IsFavorite  bool      `db:"is_favorite" json:"is_favorite"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// LibraryStrategy is a curated coping strategy loaded from the markdown
// content directory.
type LibraryStrategy struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags,omitempty"`
	HTMLContent string   `json:"html_content"`
}
