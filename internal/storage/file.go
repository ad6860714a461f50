package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
)

// FileStore keeps the snapshot in one pretty-printed JSON file. Writes go to
// a temp file in the same directory followed by a rename, so a crashed save
// never leaves a torn snapshot behind.
type FileStore struct {
	path      string
	backupDir string
}

func NewFileStore(path, backupDir string) *FileStore {
	return &FileStore{path: path, backupDir: backupDir}
}

func (f *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		logger.Info("No snapshot file found, seeding initial data", "path", f.path)
		seed := SeedSnapshot()
		if err := f.Save(ctx, seed); err != nil {
			return nil, fmt.Errorf("failed to persist seed snapshot: %w", err)
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	if snap.Credentials == nil {
		snap.Credentials = map[string]string{}
	}
	return &snap, nil
}

func (f *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Backup copies the current snapshot file into the backup directory with a
// timestamped name and returns the backup path. Missing snapshot files are
// not an error; there is simply nothing to back up yet.
func (f *FileStore) Backup(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot for backup: %w", err)
	}

	dir := f.backupDir
	if dir == "" {
		dir = filepath.Dir(f.path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("snapshot-%s.json", time.Now().UTC().Format("20060102T150405"))
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return target, nil
}
