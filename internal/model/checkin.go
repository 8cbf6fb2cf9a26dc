package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-day format used everywhere a
// check-in, milestone or goal date is compared. Comparisons are by day,
// never by timestamp.
const DateLayout = "2006-01-02"

// StringList stores a list of tags as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// CheckIn is a user's daily self-report. At most one exists per user per
// calendar day; a later submission for the same day overwrites the earlier
// one (upsert keyed on user+date). Date is the calendar-day string in
// DateLayout; day equality is string equality.
type CheckIn struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	Date          string     `db:"checkin_date" json:"date"`
	MoodScore     int        `db:"mood_score" json:"mood_score"`       // 1-10
	EnergyLevel   int        `db:"energy_level" json:"energy_level"`   // 1-5
	SleepQuality  int        `db:"sleep_quality" json:"sleep_quality"` // 1-5
	TriggerTags   StringList `db:"trigger_tags" json:"trigger_tags"`
	GratitudeNote *string    `db:"gratitude_note" json:"gratitude_note,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
