package service

import (
	"context"
	"fmt"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository"
	"campusclubs-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	credRepo repository.CredentialRepository
	verifier security.Verifier
	tokens   security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	credRepo repository.CredentialRepository,
	verifier security.Verifier,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo: userRepo,
		credRepo: credRepo,
		verifier: verifier,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	stored, err := s.credRepo.Get(ctx, email)
	if err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}
	if err := s.verifier.Verify(stored, password); err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}
