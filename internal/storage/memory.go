package storage

import (
	"context"
	"sync"

	"campusclubs-backend/internal/domain"
)

// MemoryStore is an in-memory SnapshotStore for tests.
type MemoryStore struct {
	mu    sync.Mutex
	snap  *domain.Snapshot
	saves int
}

// NewMemoryStore seeds the store with the given snapshot, or the default
// seed snapshot when nil.
func NewMemoryStore(snap *domain.Snapshot) *MemoryStore {
	if snap == nil {
		snap = SeedSnapshot()
	}
	return &MemoryStore{snap: snap.Clone()}
}

func (m *MemoryStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap.Clone()
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
