package ledger

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// ItemKey is the gdata item holding the ledger.
const ItemKey = "achievements"

// DefaultAppName is the gdata application name used by the game.
const DefaultAppName = "showdown"

// Store persists whole items by key. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenGData opens the per-user gdata storage for appName.
func OpenGData(appName string) (*gdata.Manager, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return m, nil
}

// MemoryStore is an in-memory Store. It counts successful saves.
type MemoryStore struct {
	Items  map[string][]byte
	Writes int

	// LoadErr and SaveErr, when set, are returned by every call.
	LoadErr error
	SaveErr error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Items: map[string][]byte{}}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	data, ok := s.Items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Items[key] = append([]byte(nil), data...)
	s.Writes++
	return nil
}
