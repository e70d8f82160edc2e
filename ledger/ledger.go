// Package ledger persists achievement flags and the daily counters. The
// whole record is written on every mutation.
package ledger

import (
	"fmt"
	"time"

	dc "github.com/automoto/showdown/shared/duelconfig"
)

// LoadStatus tells how Open obtained the record.
type LoadStatus int

const (
	Loaded  LoadStatus = iota // read and parsed
	Missing                   // nothing stored yet, default written
	Corrupt                   // unreadable or invalid, default written
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	}
	return "unknown"
}

// LoadResult describes what Open found. Cause is set for Corrupt.
type LoadResult struct {
	Status LoadStatus
	Cause  error
}

// Ledger is the in-memory record bound to its store.
type Ledger struct {
	store   Store
	rec     Record
	onError func(error)
}

// Open loads the ledger from store and applies the daily reset for today.
// Any load fault is recovered by writing a default record; the result says
// which path was taken. The returned ledger is always usable.
func Open(store Store, today time.Time, onError func(error)) (*Ledger, LoadResult) {
	l := &Ledger{store: store, onError: onError}

	data, err := store.LoadItem(ItemKey)
	switch {
	case err != nil:
		l.rec = DefaultRecord(today)
		l.save()
		return l, LoadResult{Status: Corrupt, Cause: fmt.Errorf("%w: read: %v", ErrCorrupt, err)}
	case len(data) == 0:
		l.rec = DefaultRecord(today)
		l.save()
		return l, LoadResult{Status: Missing}
	}

	rec, err := Decode(data)
	if err != nil {
		l.rec = DefaultRecord(today)
		l.save()
		return l, LoadResult{Status: Corrupt, Cause: err}
	}

	l.rec = rec
	changed := l.rec.normalize()
	if ApplyDailyReset(&l.rec, today) {
		changed = true
	}
	if changed {
		l.save()
	}
	return l, LoadResult{Status: Loaded}
}

// Record returns a copy of the current record.
func (l *Ledger) Record() Record { return l.rec.Clone() }

// Unlocked reports whether id is unlocked.
func (l *Ledger) Unlocked(id dc.AchievementID) bool { return l.rec.Achievements[id] }

// Unlock sets id and persists. It returns false, without writing, when the
// flag was already set or the id is unknown.
func (l *Ledger) Unlock(id dc.AchievementID) bool {
	if !id.Known() || l.rec.Achievements[id] {
		return false
	}
	l.rec.Achievements[id] = true
	l.save()
	return true
}

// AddDailyWin increments today's win counter, persists and returns it.
func (l *Ledger) AddDailyWin() int {
	l.rec.Daily.DailyWins++
	l.save()
	return l.rec.Daily.DailyWins
}

// AddDailyShot increments today's shot counter, persists and returns it.
func (l *Ledger) AddDailyShot() int {
	l.rec.Daily.DailyShots++
	l.save()
	return l.rec.Daily.DailyShots
}

func (l *Ledger) DailyWins() int       { return l.rec.Daily.DailyWins }
func (l *Ledger) DailyShots() int      { return l.rec.Daily.DailyShots }
func (l *Ledger) LastPlayDate() string { return l.rec.Daily.LastPlayDate }

// Reset replaces the record with the default for today and persists it.
func (l *Ledger) Reset(today time.Time) error {
	l.rec = DefaultRecord(today)
	return l.Save()
}

// Save writes the full record.
func (l *Ledger) Save() error {
	data, err := Encode(l.rec)
	if err != nil {
		return err
	}
	if err := l.store.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// save writes the record and reports failures to the error hook. The
// in-memory record stays authoritative either way.
func (l *Ledger) save() {
	if err := l.Save(); err != nil && l.onError != nil {
		l.onError(err)
	}
}
