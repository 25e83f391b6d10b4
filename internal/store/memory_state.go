package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes/models"
)

// memoryStateStore keeps the bundle in process memory. It survives an
// in-process recreation of the screen but not the process itself.
type memoryStateStore struct {
	mu    sync.RWMutex
	saved *models.Snapshot
}

// NewMemoryStateStore returns an empty in-memory [StateStore].
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{}
}

func (s *memoryStateStore) Save(_ context.Context, snapshot models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := snapshot.Clone()
	s.saved = &saved
	return nil
}

func (s *memoryStateStore) Load(_ context.Context) (models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.saved == nil {
		return models.Snapshot{}, ErrNoSavedState
	}
	return s.saved.Clone(), nil
}

func (s *memoryStateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = nil
	return nil
}

func (s *memoryStateStore) Close() error {
	return nil
}
