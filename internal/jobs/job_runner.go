package jobs

import (
	"context"

	"campusclubs-backend/internal/config"
	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
)

// SnapshotBackupper copies the current snapshot file to the backup directory.
type SnapshotBackupper interface {
	Backup(ctx context.Context) (string, error)
}

// SnapshotSource yields a consistent copy of the persisted object graph.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	backupper SnapshotBackupper
	source    SnapshotSource
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(backupper SnapshotBackupper, source SnapshotSource, cfg *config.Config) *JobRunner {
	return &JobRunner{
		backupper: backupper,
		source:    source,
		config:    cfg,
	}
}

// Config exposes the configuration for schedule registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.BackupSnapshot()
	jr.AuditSnapshot()
}
