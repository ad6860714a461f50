package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"campusclubs-backend/internal/config"
	"campusclubs-backend/internal/jobs"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository/snapshot"
	"campusclubs-backend/internal/scheduler"
	"campusclubs-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'backup-snapshot', 'audit-snapshot', 'all-nightly')")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Campus Clubs Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Repositories
	fileStore := storage.NewFileStore(cfg.Snapshot.Path, cfg.Snapshot.BackupDir)
	store, err := snapshot.NewStore(context.Background(), fileStore)
	if err != nil {
		logger.Error("Failed to load snapshot", "error", err, "path", cfg.Snapshot.Path)
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	logger.Info("Snapshot loaded", "path", cfg.Snapshot.Path)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(fileStore, store, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "backup-snapshot":
		jobRunner.BackupSnapshot()
	case "audit-snapshot":
		jobRunner.AuditSnapshot()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - backup-snapshot\n")
		fmt.Printf("  - audit-snapshot\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
