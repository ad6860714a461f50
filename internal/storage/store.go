// Package storage persists the application snapshot as a single JSON blob.
package storage

import (
	"context"

	"campusclubs-backend/internal/domain"
)

// SnapshotStore loads and saves the complete snapshot. Load returns the
// last-saved snapshot, or the deterministic seed snapshot when nothing has
// been saved yet. Save replaces the persisted snapshot as a whole; last
// write wins.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}
