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
	ErrCheckInNotFound = errors.New("check-in not found")
)

type CheckInRepository interface {
	// Upsert writes the check-in for its calendar day, replacing an
	// earlier one for the same user and day.
	Upsert(checkin *model.CheckIn) error
	ByDay(userID string, day time.Time) (*model.CheckIn, error)
	Window(userID string, from, to time.Time) ([]model.CheckIn, error)
	// RecentDates returns distinct check-in days, most recent first.
	RecentDates(userID string, limit int) ([]time.Time, error)
	Count(userID string) (int, error)
}

type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Upsert(checkin *model.CheckIn) error {
	if checkin.ID == "" {
		checkin.ID = uuid.New().String()
	}
	now := time.Now()
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = now
	}
	checkin.UpdatedAt = now

	query := `INSERT INTO check_ins (id, user_id, checkin_date, mood_score, energy_level, sleep_quality, trigger_tags, gratitude_note, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (user_id, checkin_date) DO UPDATE SET
	              mood_score = excluded.mood_score,
	              energy_level = excluded.energy_level,
	              sleep_quality = excluded.sleep_quality,
	              trigger_tags = excluded.trigger_tags,
	              gratitude_note = excluded.gratitude_note,
	              notes = excluded.notes,
	              updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		checkin.ID,
		checkin.UserID,
		checkin.Date,
		checkin.MoodScore,
		checkin.EnergyLevel,
		checkin.SleepQuality,
		checkin.TriggerTags,
		checkin.GratitudeNote,
		checkin.Notes,
		checkin.CreatedAt,
		checkin.UpdatedAt,
	)

	return err
}

func (r *checkInRepository) ByDay(userID string, day time.Time) (*model.CheckIn, error) {
	checkin := &model.CheckIn{}
	query := `SELECT * FROM check_ins WHERE user_id = $1 AND checkin_date = $2`

	err := r.db.Get(checkin, query, userID, day.Format(model.DateLayout))
	if err == sql.ErrNoRows {
		return nil, ErrCheckInNotFound
	}

	return checkin, err
}

func (r *checkInRepository) Window(userID string, from, to time.Time) ([]model.CheckIn, error) {
	var checkins []model.CheckIn
	query := `SELECT * FROM check_ins
	          WHERE user_id = $1 AND checkin_date >= $2 AND checkin_date <= $3
	          ORDER BY checkin_date DESC`

	err := r.db.Select(&checkins, query, userID, from.Format(model.DateLayout), to.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}

	return checkins, nil
}

func (r *checkInRepository) RecentDates(userID string, limit int) ([]time.Time, error) {
	var days []string
	query := `SELECT checkin_date FROM check_ins WHERE user_id = $1 ORDER BY checkin_date DESC LIMIT $2`

	err := r.db.Select(&days, query, userID, limit)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		d, err := time.Parse(model.DateLayout, day)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, nil
}

func (r *checkInRepository) Count(userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM check_ins WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}
