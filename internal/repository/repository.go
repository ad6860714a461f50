package repository

import (
	"context"

	"campusclubs-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// CreateWithCredential persists the account and its login secret as one
	// atomic write; neither survives if the other cannot be stored.
	CreateWithCredential(ctx context.Context, user *domain.User, secret string) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// CredentialRepository is the email → secret map backing login. Secrets are
// opaque here; hashing and verification live behind security.Verifier.
// Writes go through UserRepository.CreateWithCredential so an account and
// its secret are stored together.
type CredentialRepository interface {
	Get(ctx context.Context, email string) (string, error)
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id domain.ClubID) (*domain.Club, error)
	GetByCoordinator(ctx context.Context, coordinatorID domain.UserID) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
}

type MembershipRepository interface {
	// Add fails with domain.ErrDuplicateMembership when a membership for the
	// same (user, club) pair already exists.
	Add(ctx context.Context, m *domain.ClubMembership) error
	Get(ctx context.Context, userID domain.UserID, clubID domain.ClubID) (*domain.ClubMembership, error)
	// UpdateRole replaces only the role field of the matching membership.
	UpdateRole(ctx context.Context, userID domain.UserID, clubID domain.ClubID, role string) (*domain.ClubMembership, error)
	// Remove deletes by composite key; removing a missing pair is a no-op.
	Remove(ctx context.Context, userID domain.UserID, clubID domain.ClubID) error
	ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.ClubMembership, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.ClubMembership, error)
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id domain.RequestID) (*domain.JoinRequest, error)
	GetPending(ctx context.Context, userID domain.UserID, clubID domain.ClubID) (*domain.JoinRequest, error)
	// Resolve persists the resolved request and, when membership is non-nil,
	// the membership it creates, as one atomic write. Fails with
	// domain.ErrDuplicateMembership before anything is persisted when the
	// (user, club) pair already holds a membership.
	Resolve(ctx context.Context, req *domain.JoinRequest, membership *domain.ClubMembership) error
	ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.JoinRequest, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.JoinRequest, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id domain.EventID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	List(ctx context.Context) ([]domain.Event, error)
	ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
}

type CustomRoleRepository interface {
	Create(ctx context.Context, role *domain.CustomRole) error
	ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.CustomRole, error)
}
