package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/storage"
)

func init() {
	logger.Initialize("error", "text")
}

func TestFileStore_SeedsWhenMissing(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "snapshot.json")
	fs := storage.NewFileStore(path, "")

	snap, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Users, 6)
	assert.Len(t, snap.Clubs, 3)

	// The seed is persisted, so the next load reads the file.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	fs := storage.NewFileStore(path, "")

	snap := storage.SeedSnapshot()
	snap.Users[0].Name = "Renamed Admin"
	require.NoError(t, fs.Save(ctx, snap))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", got.Users[0].Name)
	assert.Equal(t, "abc123", got.Credentials["admin@college.edu"])
	assert.Len(t, got.JoinRequests, 2)
}

func TestFileStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fs := storage.NewFileStore(path, "")
	_, err := fs.Load(ctx)
	assert.Error(t, err)
}

func TestFileStore_Backup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	backupDir := filepath.Join(dir, "backups")
	fs := storage.NewFileStore(path, backupDir)

	t.Run("Nothing To Back Up", func(t *testing.T) {
		target, err := fs.Backup(ctx)
		require.NoError(t, err)
		assert.Empty(t, target)
	})

	t.Run("Copies The Snapshot", func(t *testing.T) {
		require.NoError(t, fs.Save(ctx, storage.SeedSnapshot()))

		target, err := fs.Backup(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, target)
		assert.Equal(t, backupDir, filepath.Dir(target))

		original, err := os.ReadFile(path)
		require.NoError(t, err)
		copied, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, original, copied)
	})
}
