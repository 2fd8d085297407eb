// Package memory provides in-process preference storage.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
)

// PreferenceStore keeps preferences in a map. It backs tests, previews
// and sessions where persistent storage is unavailable.
type PreferenceStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ port.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore creates an empty store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{values: make(map[string]string)}
}

// Get implements port.PreferenceStore.
func (s *PreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements port.PreferenceStore.
func (s *PreferenceStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
