package metrics

import (
	"math"

	"github.com/anchorhq/anchor/internal/model"
)

// TriggerCount is one bucket of the trigger-frequency histogram.
type TriggerCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary aggregates the check-ins inside one date window.
type Summary struct {
	WindowDays   int            `json:"window_days"`
	CheckInCount int            `json:"check_in_count"`
	AvgMood      float64        `json:"avg_mood"`
	AvgEnergy    float64        `json:"avg_energy"`
	AvgSleep     float64        `json:"avg_sleep"`
	Consistency  int            `json:"consistency_pct"`
	Triggers     []TriggerCount `json:"triggers"`

	// DuplicateDays flags more than one check-in on the same calendar
	// day inside the window. The store's upsert keying should make that
	// impossible; when it happens the consistency percentage can exceed
	// 100 and is reported as-is, not clamped.
	DuplicateDays bool `json:"duplicate_days,omitempty"`
}

// Summarize computes rolling averages, the trigger histogram and the
// check-in consistency ratio over the supplied window. Averages over an
// empty window are 0, not an error. The histogram preserves the
// insertion order of each tag's first occurrence; sorting by frequency
// is left to the caller.
func Summarize(checkins []model.CheckIn, windowDays int) Summary {
	s := Summary{WindowDays: windowDays, CheckInCount: len(checkins)}

	var moodSum, energySum, sleepSum int
	order := []string{}
	counts := map[string]int{}
	days := map[string]int{}

	for _, c := range checkins {
		moodSum += c.MoodScore
		energySum += c.EnergyLevel
		sleepSum += c.SleepQuality

		for _, tag := range c.TriggerTags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}

		days[c.Date]++
		if days[c.Date] > 1 {
			s.DuplicateDays = true
		}
	}

	if n := len(checkins); n > 0 {
		s.AvgMood = float64(moodSum) / float64(n)
		s.AvgEnergy = float64(energySum) / float64(n)
		s.AvgSleep = float64(sleepSum) / float64(n)
	}

	if windowDays > 0 {
		s.Consistency = int(math.Round(float64(len(checkins)) / float64(windowDays) * 100))
	}

	for _, tag := range order {
		s.Triggers = append(s.Triggers, TriggerCount{Tag: tag, Count: counts[tag]})
	}

	return s
}
