package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository"
	"campusclubs-backend/internal/security"
)

// SnapshotSource hands out a copy of the full snapshot; used for exports.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

type adminService struct {
	userRepo repository.UserRepository
	verifier security.Verifier
	source   SnapshotSource
	emailSvc EmailService
}

func NewAdminService(
	userRepo repository.UserRepository,
	verifier security.Verifier,
	source SnapshotSource,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		userRepo: userRepo,
		verifier: verifier,
		source:   source,
		emailSvc: emailSvc,
	}
}

func (s *adminService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Role != domain.UserRoleCoordinator && input.Role != domain.UserRoleStudent {
		return nil, fmt.Errorf("%w: accounts may only be provisioned as coordinator or student", domain.ErrInvalidRole)
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(input.Name))
	}

	user := &domain.User{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
		RegNo:      input.RegNo,
		Phone:      input.Phone,
		Avatar:     avatar,
	}
	secret, err := s.verifier.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	// Account and credential land in one write.
	if err := s.userRepo.CreateWithCredential(ctx, user, secret); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.emailSvc.SendAccountCreated(ctx, user.Email, user.Name, user.Role)

	logger.Info("User account provisioned", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *adminService) ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	if role == "" {
		return s.userRepo.List(ctx)
	}
	return s.userRepo.ListByRole(ctx, role)
}

func (s *adminService) ExportData(ctx context.Context) (*ExportDocument, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	doc := &ExportDocument{
		ExportDate: time.Now().UTC().Format("2006-01-02"),
		Clubs:      snap.Clubs,
		Events:     snap.Events,
		Members:    snap.ClubMemberships,
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, ExportUser{
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			Department: u.Department,
			RegNo:      u.RegNo,
		})
	}
	return doc, nil
}
