package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/repository/snapshot"
	"campusclubs-backend/internal/security"
	"campusclubs-backend/internal/service"
)

func newAdminService(t *testing.T) (service.AdminService, *snapshot.Store, *MockEmailService) {
	t.Helper()
	store := newTestStore(t)
	emailSvc := new(MockEmailService)
	verifier, err := security.NewVerifier("plain")
	require.NoError(t, err)
	svc := service.NewAdminService(store.UserRepository, verifier, store, emailSvc)
	return svc, store, emailSvc
}

func TestAdminService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Provisions Student Account", func(t *testing.T) {
		svc, store, emailSvc := newAdminService(t)
		emailSvc.On("SendAccountCreated", mock.Anything, "emma@college.edu", "Emma Watson", domain.UserRoleStudent).Return(nil)

		user, err := svc.CreateUser(ctx, service.CreateUserInput{
			Role:       domain.UserRoleStudent,
			Name:       "Emma Watson",
			Email:      "emma@college.edu",
			Password:   "secret99",
			RegNo:      "STU004",
			Department: "Physics",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Contains(t, user.Avatar, "ui-avatars.com")
		assert.Contains(t, user.Avatar, "Emma+Watson")

		stored, err := store.CredentialRepository.Get(ctx, "emma@college.edu")
		require.NoError(t, err)
		assert.Equal(t, "secret99", stored)

		emailSvc.AssertExpectations(t)
	})

	t.Run("Keeps Supplied Avatar", func(t *testing.T) {
		svc, _, emailSvc := newAdminService(t)
		emailSvc.On("SendAccountCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		user, err := svc.CreateUser(ctx, service.CreateUserInput{
			Role:     domain.UserRoleCoordinator,
			Name:     "Pat Lee",
			Email:    "pat@college.edu",
			Password: "secret99",
			Avatar:   "https://example.com/pat.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/pat.png", user.Avatar)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		svc, _, _ := newAdminService(t)

		_, err := svc.CreateUser(ctx, service.CreateUserInput{
			Role:     domain.UserRoleStudent,
			Name:     "Mike Clone",
			Email:    "mike@college.edu",
			Password: "secret99",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("Admin Accounts Cannot Be Provisioned", func(t *testing.T) {
		svc, _, _ := newAdminService(t)

		_, err := svc.CreateUser(ctx, service.CreateUserInput{
			Role:     domain.UserRoleAdmin,
			Name:     "Second Admin",
			Email:    "admin2@college.edu",
			Password: "secret99",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("Email Failure Does Not Fail Provisioning", func(t *testing.T) {
		svc, _, emailSvc := newAdminService(t)
		emailSvc.On("SendAccountCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.CreateUser(ctx, service.CreateUserInput{
			Role:     domain.UserRoleStudent,
			Name:     "Sam Quiet",
			Email:    "sam@college.edu",
			Password: "secret99",
		})
		assert.NoError(t, err)
	})

	t.Run("Failed Persist Leaves No Account Behind", func(t *testing.T) {
		store, backend := newFaultyStore(t)
		emailSvc := new(MockEmailService)
		emailSvc.On("SendAccountCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		verifier, err := security.NewVerifier("plain")
		require.NoError(t, err)
		svc := service.NewAdminService(store.UserRepository, verifier, store, emailSvc)

		input := service.CreateUserInput{
			Role:     domain.UserRoleStudent,
			Name:     "Emma Watson",
			Email:    "emma@college.edu",
			Password: "secret99",
		}

		backend.failSaves = true
		_, err = svc.CreateUser(ctx, input)
		require.Error(t, err)

		// Neither the account nor the credential landed.
		_, err = store.UserRepository.GetByEmail(ctx, "emma@college.edu")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.CredentialRepository.Get(ctx, "emma@college.edu")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// Provisioning succeeds once the backend recovers.
		backend.failSaves = false
		user, err := svc.CreateUser(ctx, input)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)

		stored, err := store.CredentialRepository.Get(ctx, "emma@college.edu")
		require.NoError(t, err)
		assert.Equal(t, "secret99", stored)
	})
}

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAdminService(t)

	all, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	coordinators, err := svc.ListUsers(ctx, domain.UserRoleCoordinator)
	require.NoError(t, err)
	assert.Len(t, coordinators, 2)
}

func TestAdminService_ExportData(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAdminService(t)

	doc, err := svc.ExportData(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, doc.ExportDate)
	assert.Len(t, doc.Clubs, 3)
	assert.Len(t, doc.Events, 3)
	assert.Len(t, doc.Members, 4)
	require.Len(t, doc.Users, 6)

	// Credentials and contact details never leave the system.
	for _, u := range doc.Users {
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
	}
}
