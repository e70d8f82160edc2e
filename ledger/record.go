package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dc "github.com/automoto/showdown/shared/duelconfig"
)

// DateLayout is the calendar date format stored in last_play_date.
const DateLayout = "2006-01-02"

// ErrCorrupt classifies ledger data that exists but cannot be used.
var ErrCorrupt = errors.New("ledger data is corrupt")

// Daily is the per-calendar-day sub-record.
type Daily struct {
	LastPlayDate string `json:"last_play_date"`
	DailyWins    int    `json:"daily_wins"`
	DailyShots   int    `json:"daily_shots"`
}

// Record is the full persisted ledger.
type Record struct {
	Achievements map[dc.AchievementID]bool `json:"achievements"`
	Daily        Daily                     `json:"daily_achievements"`
}

// DefaultRecord returns a ledger with every flag locked, zero counters and
// today's date.
func DefaultRecord(today time.Time) Record {
	r := Record{
		Achievements: make(map[dc.AchievementID]bool, len(dc.AchievementIDs)),
		Daily:        Daily{LastPlayDate: today.Format(DateLayout)},
	}
	for _, id := range dc.AchievementIDs {
		r.Achievements[id] = false
	}
	return r
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	c := r
	c.Achievements = make(map[dc.AchievementID]bool, len(r.Achievements))
	for id, ok := range r.Achievements {
		c.Achievements[id] = ok
	}
	return c
}

// Equal reports whether two records hold the same flags and daily values.
func (r Record) Equal(o Record) bool {
	if r.Daily != o.Daily || len(r.Achievements) != len(o.Achievements) {
		return false
	}
	for id, ok := range r.Achievements {
		if other, found := o.Achievements[id]; !found || other != ok {
			return false
		}
	}
	return true
}

// Encode renders the record as a single JSON line.
func Encode(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a stored record. Data that is not JSON, or that lacks either
// section, is reported as ErrCorrupt.
func Decode(data []byte) (Record, error) {
	var raw struct {
		Achievements map[dc.AchievementID]bool `json:"achievements"`
		Daily        *Daily                    `json:"daily_achievements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw.Achievements == nil || raw.Daily == nil {
		return Record{}, fmt.Errorf("%w: missing section", ErrCorrupt)
	}
	return Record{Achievements: raw.Achievements, Daily: *raw.Daily}, nil
}

// normalize drops unknown ids, adds missing ones as locked and clamps
// negative counters. It reports whether anything changed.
func (r *Record) normalize() bool {
	changed := false
	for id := range r.Achievements {
		if !id.Known() {
			delete(r.Achievements, id)
			changed = true
		}
	}
	for _, id := range dc.AchievementIDs {
		if _, ok := r.Achievements[id]; !ok {
			r.Achievements[id] = false
			changed = true
		}
	}
	if r.Daily.DailyWins < 0 {
		r.Daily.DailyWins = 0
		changed = true
	}
	if r.Daily.DailyShots < 0 {
		r.Daily.DailyShots = 0
		changed = true
	}
	return changed
}

// DailyResetDue reports whether the daily sub-record must be cleared. It is
// due when the stored date is missing, unparsable or earlier than today. A
// stored date after today counts as the same day.
func DailyResetDue(stored string, today time.Time) bool {
	if _, err := time.Parse(DateLayout, stored); err != nil {
		return true
	}
	return stored < today.Format(DateLayout)
}

// ApplyDailyReset clears the daily counters and flags when a reset is due,
// then stamps today. It reports whether the record changed.
func ApplyDailyReset(r *Record, today time.Time) bool {
	changed := false
	if DailyResetDue(r.Daily.LastPlayDate, today) {
		if r.Daily.DailyWins != 0 || r.Daily.DailyShots != 0 {
			changed = true
		}
		r.Daily.DailyWins = 0
		r.Daily.DailyShots = 0
		for _, id := range dc.AchievementIDs {
			if id.IsDaily() && r.Achievements[id] {
				r.Achievements[id] = false
				changed = true
			}
		}
	}

	date := today.Format(DateLayout)
	if r.Daily.LastPlayDate != date {
		r.Daily.LastPlayDate = date
		changed = true
	}
	return changed
}
