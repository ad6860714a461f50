package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository/snapshot"
	"campusclubs-backend/internal/storage"
)

func init() {
	logger.Initialize("error", "text")
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinRequestDecision(ctx context.Context, email, name, clubName string, status domain.JoinRequestStatus, message string) error {
	args := m.Called(ctx, email, name, clubName, status, message)
	return args.Error(0)
}

func (m *MockEmailService) SendAccountCreated(ctx context.Context, email, name string, role domain.UserRole) error {
	args := m.Called(ctx, email, name, role)
	return args.Error(0)
}

// newTestStore builds a repository store over the default seed snapshot held
// in memory.
func newTestStore(t *testing.T) *snapshot.Store {
	t.Helper()
	store, err := snapshot.NewStore(context.Background(), storage.NewMemoryStore(nil))
	require.NoError(t, err)
	return store
}

// faultyBackend wraps a MemoryStore and refuses saves while failSaves is set.
type faultyBackend struct {
	*storage.MemoryStore
	failSaves bool
}

func (b *faultyBackend) Save(ctx context.Context, snap *domain.Snapshot) error {
	if b.failSaves {
		return assert.AnError
	}
	return b.MemoryStore.Save(ctx, snap)
}

func newFaultyStore(t *testing.T) (*snapshot.Store, *faultyBackend) {
	t.Helper()
	backend := &faultyBackend{MemoryStore: storage.NewMemoryStore(nil)}
	store, err := snapshot.NewStore(context.Background(), backend)
	require.NoError(t, err)
	return store, backend
}
