package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
)

func newAuthService(t *testing.T) (service.AuthService, security.TokenManager) {
	t.Helper()
	store := newTestStore(t)
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour, 24*time.Hour)
	verifier, err := security.NewVerifier("plain")
	require.NoError(t, err)
	return service.NewAuthService(store.UserRepository, store.CredentialRepository, verifier, tokens), tokens
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		svc, tokens := newAuthService(t)

		user, access, refresh, err := svc.Login(ctx, "mike@college.edu", "abc123")
		require.NoError(t, err)
		assert.Equal(t, domain.UserID("4"), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, domain.UserID("4"), claims.UserID)
		assert.Equal(t, domain.UserRoleStudent, claims.Role)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, _, _, err := svc.Login(ctx, "mike@college.edu", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, _, _, err := svc.Login(ctx, "nobody@college.edu", "abc123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Refresh Token", func(t *testing.T) {
		svc, tokens := newAuthService(t)

		_, _, refresh, err := svc.Login(ctx, "mike@college.edu", "abc123")
		require.NoError(t, err)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Access Token Is Not A Refresh Token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, access, _, err := svc.Login(ctx, "mike@college.edu", "abc123")
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, _, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
