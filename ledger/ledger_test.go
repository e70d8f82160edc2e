package ledger

import (
	"errors"
	"strings"
	"testing"
	"time"

	dc "github.com/automoto/showdown/shared/duelconfig"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestOpenMissingWritesDefault(t *testing.T) {
	store := NewMemoryStore()

	l, res := Open(store, day(t, "2026-10-16"), nil)
	if res.Status != Missing {
		t.Fatalf("status = %v, want missing", res.Status)
	}
	if store.Writes != 1 {
		t.Fatalf("writes = %d, want 1", store.Writes)
	}

	rec := l.Record()
	for _, id := range dc.AchievementIDs {
		ok, found := rec.Achievements[id]
		if !found || ok {
			t.Fatalf("%s should be present and locked", id)
		}
	}
	if rec.Daily != (Daily{LastPlayDate: "2026-10-16"}) {
		t.Fatalf("daily = %+v", rec.Daily)
	}

	data := string(store.Items[ItemKey])
	if !strings.HasSuffix(data, "\n") || strings.Count(data, "\n") != 1 {
		t.Fatalf("ledger should be one JSON line, got %q", data)
	}
}

func TestOpenCorruptRecovers(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{achievements:"},
		{"missing daily", `{"achievements":{"first_blood":true}}`},
		{"wrong types", `{"achievements":[],"daily_achievements":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.Items[ItemKey] = []byte(tt.data)

			l, res := Open(store, day(t, "2026-10-16"), nil)
			if res.Status != Corrupt || !errors.Is(res.Cause, ErrCorrupt) {
				t.Fatalf("result = %+v, want corrupt", res)
			}
			if l.Unlocked(dc.FirstBlood) {
				t.Fatalf("corrupt data must not leak into the default ledger")
			}
			if store.Writes != 1 {
				t.Fatalf("writes = %d, want 1", store.Writes)
			}
		})
	}
}

func TestOpenReadErrorRecovers(t *testing.T) {
	store := NewMemoryStore()
	store.LoadErr = errors.New("permission denied")

	l, res := Open(store, day(t, "2026-10-16"), nil)
	if res.Status != Corrupt || !errors.Is(res.Cause, ErrCorrupt) {
		t.Fatalf("result = %+v, want corrupt", res)
	}
	if l.LastPlayDate() != "2026-10-16" {
		t.Fatalf("default ledger should carry today's date")
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	l, _ := Open(store, day(t, "2026-10-16"), nil)
	before := store.Writes

	if !l.Unlock(dc.FirstBlood) {
		t.Fatalf("first unlock should report a change")
	}
	if l.Unlock(dc.FirstBlood) {
		t.Fatalf("second unlock should be a no-op")
	}
	if got := store.Writes - before; got != 1 {
		t.Fatalf("writes = %d, want 1", got)
	}
	if l.Unlock(dc.AchievementID("bogus")) {
		t.Fatalf("unknown ids must not unlock")
	}
}

func TestRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	today := day(t, "2026-10-16")

	l, _ := Open(store, today, nil)
	l.Unlock(dc.Round5)
	l.Unlock(dc.DailyWin)
	l.AddDailyWin()
	l.AddDailyShot()
	l.AddDailyShot()
	want := l.Record()

	again, res := Open(store, today, nil)
	if res.Status != Loaded {
		t.Fatalf("status = %v, want loaded", res.Status)
	}
	if !again.Record().Equal(want) {
		t.Fatalf("reloaded %+v, want %+v", again.Record(), want)
	}
}

func TestDailyResetDue(t *testing.T) {
	today := day(t, "2026-10-16")
	tests := []struct {
		stored string
		want   bool
	}{
		{"2026-10-16", false},
		{"2026-10-17", false}, // clock moved back
		{"2026-10-15", true},
		{"2025-12-31", true},
		{"", true},
		{"16/10/2026", true},
	}
	for _, tt := range tests {
		if got := DailyResetDue(tt.stored, today); got != tt.want {
			t.Errorf("DailyResetDue(%q) = %v, want %v", tt.stored, got, tt.want)
		}
	}
}

func TestApplyDailyReset(t *testing.T) {
	rec := DefaultRecord(day(t, "2026-10-15"))
	rec.Achievements[dc.DailyWin] = true
	rec.Achievements[dc.Daily10Shots] = true
	rec.Achievements[dc.FirstBlood] = true
	rec.Daily.DailyWins = 3
	rec.Daily.DailyShots = 12

	same := rec.Clone()
	if ApplyDailyReset(&same, day(t, "2026-10-15")) {
		t.Fatalf("same-day replay should not change the record")
	}
	if same.Daily.DailyWins != 3 || !same.Achievements[dc.DailyWin] {
		t.Fatalf("same-day replay reset counters")
	}

	if !ApplyDailyReset(&rec, day(t, "2026-10-16")) {
		t.Fatalf("new day should change the record")
	}
	if rec.Daily != (Daily{LastPlayDate: "2026-10-16"}) {
		t.Fatalf("daily = %+v, want zeroed and stamped", rec.Daily)
	}
	for _, id := range dc.AchievementIDs {
		if id.IsDaily() && rec.Achievements[id] {
			t.Fatalf("%s should be locked on a new day", id)
		}
	}
	if !rec.Achievements[dc.FirstBlood] {
		t.Fatalf("permanent achievements must survive the daily reset")
	}
}

func TestOpenAppliesDailyReset(t *testing.T) {
	store := NewMemoryStore()
	l, _ := Open(store, day(t, "2026-10-15"), nil)
	l.AddDailyWin()
	l.Unlock(dc.DailyWin)
	l.Unlock(dc.NoMiss)

	next, res := Open(store, day(t, "2026-10-16"), nil)
	if res.Status != Loaded {
		t.Fatalf("status = %v", res.Status)
	}
	if next.DailyWins() != 0 || next.Unlocked(dc.DailyWin) {
		t.Fatalf("daily state should reset on a new day")
	}
	if !next.Unlocked(dc.NoMiss) {
		t.Fatalf("no_miss should persist")
	}
	if next.LastPlayDate() != "2026-10-16" {
		t.Fatalf("date = %s", next.LastPlayDate())
	}
}

func TestOpenNormalizesUnknownIDs(t *testing.T) {
	store := NewMemoryStore()
	store.Items[ItemKey] = []byte(`{"achievements":{"first_blood":true,"retired":true},` +
		`"daily_achievements":{"last_play_date":"2026-10-16","daily_wins":-2,"daily_shots":4}}`)

	l, _ := Open(store, day(t, "2026-10-16"), nil)
	rec := l.Record()
	if _, ok := rec.Achievements["retired"]; ok {
		t.Fatalf("unknown ids should be dropped")
	}
	if len(rec.Achievements) != len(dc.AchievementIDs) || !rec.Achievements[dc.FirstBlood] {
		t.Fatalf("achievements = %v", rec.Achievements)
	}
	if rec.Daily.DailyWins != 0 || rec.Daily.DailyShots != 4 {
		t.Fatalf("daily = %+v", rec.Daily)
	}
	if store.Writes != 1 {
		t.Fatalf("normalized record should be written back once, got %d", store.Writes)
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	store := NewMemoryStore()
	var errs []error
	l, _ := Open(store, day(t, "2026-10-16"), func(err error) { errs = append(errs, err) })

	store.SaveErr = errors.New("disk full")
	if !l.Unlock(dc.PvPWinner) {
		t.Fatalf("unlock should succeed in memory")
	}
	if !l.Unlocked(dc.PvPWinner) {
		t.Fatalf("in-memory flag lost after failed save")
	}
	if len(errs) != 1 {
		t.Fatalf("errors reported = %d, want 1", len(errs))
	}
}
