package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "campusclubs-backend/internal/api/http"
	"campusclubs-backend/internal/config"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository/snapshot"
	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
	"campusclubs-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env overrides before the config reads the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Campus Clubs Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Snapshot configuration", "path", cfg.Snapshot.Path, "backup_dir", cfg.Snapshot.BackupDir)

	ctx := context.Background()

	// Initialize Repositories
	fileStore := storage.NewFileStore(cfg.Snapshot.Path, cfg.Snapshot.BackupDir)
	store, err := snapshot.NewStore(ctx, fileStore)
	if err != nil {
		logger.Error("Failed to load snapshot", "error", err, "path", cfg.Snapshot.Path)
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	logger.Info("Snapshot loaded", "path", cfg.Snapshot.Path)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenExpiry)*time.Minute,
	)
	verifier, err := security.NewVerifier(cfg.Auth.CredentialScheme)
	if err != nil {
		logger.Error("Failed to initialize credential verifier", "error", err)
		log.Fatalf("Failed to initialize credential verifier: %v", err)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		logger.Info("Email notifications enabled", "from", cfg.Email.FromEmail)
		emailSvc = service.NewSendGridEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Email notifications disabled")
		emailSvc = service.NewDisabledEmailService()
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, store.CredentialRepository, verifier, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.ClubRepository, store.MembershipRepository)
	clubSvc := service.NewClubService(store.ClubRepository, store.UserRepository)
	membershipSvc := service.NewMembershipService(
		store.JoinRequestRepository,
		store.MembershipRepository,
		store.UserRepository,
		store.ClubRepository,
		store.CustomRoleRepository,
		emailSvc,
	)
	eventSvc := service.NewEventService(store.EventRepository, store.ClubRepository, store.UserRepository)
	adminSvc := service.NewAdminService(store.UserRepository, verifier, store, emailSvc)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:        authSvc,
		Users:       userSvc,
		Clubs:       clubSvc,
		Memberships: membershipSvc,
		Events:      eventSvc,
		Admin:       adminSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
