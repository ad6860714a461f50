// Package snapshot implements the repositories over one in-memory snapshot
// that is persisted wholesale through a storage.SnapshotStore.
package snapshot

import (
	"context"
	"fmt"
	"sync"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/repository"
	"campusclubs-backend/internal/storage"
)

// Store bundles the repositories, all sharing the same snapshot state.
type Store struct {
	state *state
	repository.UserRepository
	repository.CredentialRepository
	repository.ClubRepository
	repository.MembershipRepository
	repository.JoinRequestRepository
	repository.EventRepository
	repository.CustomRoleRepository
}

func NewStore(ctx context.Context, backend storage.SnapshotStore) (*Store, error) {
	snap, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	st := &state{backend: backend, snap: snap}
	return &Store{
		state:                 st,
		UserRepository:        &userRepository{st},
		CredentialRepository:  &credentialRepository{st},
		ClubRepository:        &clubRepository{st},
		MembershipRepository:  &membershipRepository{st},
		JoinRequestRepository: &joinRequestRepository{st},
		EventRepository:       &eventRepository{st},
		CustomRoleRepository:  &customRoleRepository{st},
	}, nil
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Store) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	s.state.view(func(cur *domain.Snapshot) {
		snap = cur.Clone()
	})
	return snap, nil
}

// state guards the live snapshot. Every mutation clones the snapshot, applies
// the change to the clone, persists it, then swaps the pointer, so the update
// is one atomic replace from any reader's point of view and a failed
// precondition or save leaves the live snapshot untouched.
type state struct {
	mu      sync.RWMutex
	backend storage.SnapshotStore
	snap    *domain.Snapshot
}

func (s *state) update(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	s.snap = next
	return nil
}

func (s *state) view(fn func(snap *domain.Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}
