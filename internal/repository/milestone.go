package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/anchorhq/anchor/internal/model"
)

var (
	// ErrMilestoneExists reports an insert that hit the unique index on
	// (user_id, milestone_type, milestone_value). The evaluator treats
	// it as "already earned", not a failure.
	ErrMilestoneExists = errors.New("milestone already exists")
)

type MilestoneRepository interface {
	Milestones(userID string) ([]model.Milestone, error)
	// Insert persists a milestone unless one with the same
	// (type, value) already exists for the user. The uniqueness check
	// lives in the store, so two concurrent evaluations cannot
	// double-insert.
	Insert(milestone *model.Milestone) error
}

type milestoneRepository struct {
	db *sqlx.DB
}

func NewMilestoneRepository(db *sqlx.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Milestones(userID string) ([]model.Milestone, error) {
	var milestones []model.Milestone
	query := `SELECT * FROM milestones WHERE user_id = $1 ORDER BY achieved_date DESC, milestone_value DESC`

	err := r.db.Select(&milestones, query, userID)
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

func (r *milestoneRepository) Insert(milestone *model.Milestone) error {
	if milestone.ID == "" {
		milestone.ID = uuid.New().String()
	}
	if milestone.CreatedAt.IsZero() {
		milestone.CreatedAt = time.Now()
	}

	query := `INSERT INTO milestones (id, user_id, milestone_type, milestone_value, achieved_date, title, description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (user_id, milestone_type, milestone_value) DO NOTHING`

	result, err := r.db.Exec(query,
		milestone.ID,
		milestone.UserID,
		milestone.Type,
		milestone.Value,
		milestone.AchievedDate,
		milestone.Title,
		milestone.Description,
		milestone.CreatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMilestoneExists
	}

	return nil
}
