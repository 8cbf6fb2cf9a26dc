package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/anchorhq/anchor/internal/model"
)

var (
	ErrStrategyNotFound = errors.New("strategy not found")
)

type StrategyRepository interface {
	Create(strategy *model.Strategy) error
	ByID(userID, strategyID string) (*model.Strategy, error)
	Strategies(userID string) ([]*model.Strategy, error)
	Update(strategy *model.Strategy) error
	SetFavorite(userID, strategyID string, favorite bool) error
	Delete(userID, strategyID string) error
}

type strategyRepository struct {
	db *sqlx.DB
}

func NewStrategyRepository(db *sqlx.DB) StrategyRepository {
	return &strategyRepository{db: db}
}

func (r *strategyRepository) Create(strategy *model.Strategy) error {
	if strategy.ID == "" {
		strategy.ID = uuid.New().String()
	}
	now := time.Now()
	if strategy.CreatedAt.IsZero() {
		strategy.CreatedAt = now
	}
	strategy.UpdatedAt = now

	query := `INSERT INTO strategies (id, user_id, title, category, description, is_favorite, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		strategy.ID,
		strategy.UserID,
		strategy.Title,
		strategy.Category,
		strategy.Description,
		strategy.IsFavorite,
		strategy.CreatedAt,
		strategy.UpdatedAt,
	)

	return err
}

func (r *strategyRepository) ByID(userID, strategyID string) (*model.Strategy, error) {
	strategy := &model.Strategy{}
	query := `SELECT * FROM strategies WHERE id = $1 AND user_id = $2`

	err := r.db.Get(strategy, query, strategyID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrStrategyNotFound
	}

	return strategy, err
}

func (r *strategyRepository) Strategies(userID string) ([]*model.Strategy, error) {
	var strategies []*model.Strategy
	query := `SELECT * FROM strategies WHERE user_id = $1 ORDER BY is_favorite DESC, updated_at DESC`

	err := r.db.Select(&strategies, query, userID)
	if err != nil {
		return nil, err
	}

	return strategies, nil
}

func (r *strategyRepository) Update(strategy *model.Strategy) error {
	query := `UPDATE strategies
	          SET title = $1, category = $2, description = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		strategy.Title,
		strategy.Category,
		strategy.Description,
		time.Now(),
		strategy.ID,
		strategy.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStrategyNotFound
	}

	return nil
}

func (r *strategyRepository) SetFavorite(userID, strategyID string, favorite bool) error {
	query := `UPDATE strategies SET is_favorite = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, favorite, time.Now(), strategyID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStrategyNotFound
	}

	return nil
}

func (r *strategyRepository) Delete(userID, strategyID string) error {
	query := `DELETE FROM strategies WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, strategyID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStrategyNotFound
	}

	return nil
}
