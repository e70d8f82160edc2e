package systems

import (
	"log"
	"time"

	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/ledger"
)

var _ core.AchievementLedger = (*ledger.Ledger)(nil)

// InitLedger opens the achievement ledger in the per-user gdata storage. If
// the storage cannot be opened the game keeps an in-memory ledger for this
// run.
func InitLedger(appName string, today time.Time) *ledger.Ledger {
	var store ledger.Store
	m, err := ledger.OpenGData(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = ledger.NewMemoryStore()
	} else {
		store = m
	}

	l, res := ledger.Open(store, today, func(err error) {
		log.Printf("Warning: Could not save achievements: %v", err)
	})
	switch res.Status {
	case ledger.Missing:
		log.Printf("No achievement ledger yet, created a new one")
	case ledger.Corrupt:
		log.Printf("Warning: Achievement ledger was unusable and has been reset: %v", res.Cause)
	}
	return l
}
