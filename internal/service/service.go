package service

import (
	"context"

	"campusclubs-backend/internal/domain"
)

// MembershipService owns the club membership lifecycle: join requests, their
// resolution, role assignment and member removal, plus the derived queries
// the dashboards render.
type MembershipService interface {
	SubmitJoinRequest(ctx context.Context, userID domain.UserID, clubID domain.ClubID, message string) (*domain.JoinRequest, error)
	ResolveJoinRequest(ctx context.Context, requestID domain.RequestID, decision domain.JoinRequestStatus, responseMessage, assignedRole string) (*domain.JoinRequest, *domain.ClubMembership, error)
	GetJoinRequest(ctx context.Context, requestID domain.RequestID) (*domain.JoinRequest, error)
	UpdateMemberRole(ctx context.Context, userID domain.UserID, clubID domain.ClubID, newRole string) (*domain.ClubMembership, error)
	RemoveMember(ctx context.Context, userID domain.UserID, clubID domain.ClubID) error

	ListClubMembers(ctx context.Context, clubID domain.ClubID) ([]domain.User, []domain.ClubMembership, error)
	ListUserClubs(ctx context.Context, userID domain.UserID) ([]domain.Club, []domain.ClubMembership, error)
	ListPendingRequests(ctx context.Context, clubID domain.ClubID) ([]domain.JoinRequest, error)
	ListUserRequests(ctx context.Context, userID domain.UserID) ([]domain.JoinRequest, error)

	CreateCustomRole(ctx context.Context, clubID domain.ClubID, name, description string) (*domain.CustomRole, error)
	ListCustomRoles(ctx context.Context, clubID domain.ClubID) ([]domain.CustomRole, error)
}

type ClubService interface {
	CreateClub(ctx context.Context, createdBy domain.UserID, club *domain.Club) error
	GetClub(ctx context.Context, id domain.ClubID) (*domain.Club, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
	UpdateClub(ctx context.Context, club *domain.Club) error
}

type EventService interface {
	ProposeEvent(ctx context.Context, proposedBy domain.UserID, event *domain.Event) error
	CreateEvent(ctx context.Context, coordinatorID domain.UserID, event *domain.Event) error
	ResolveEvent(ctx context.Context, eventID domain.EventID, decision domain.EventStatus) (*domain.Event, error)
	RegisterForEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*domain.Event, error)
	UnregisterFromEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID domain.EventID) (*domain.Event, error)
	ListClubEvents(ctx context.Context, clubID domain.ClubID) ([]domain.Event, error)
	ListPendingEvents(ctx context.Context) ([]domain.Event, error)
	ListRegisteredEvents(ctx context.Context, userID domain.UserID) ([]domain.Event, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID domain.UserID) (*domain.User, []domain.Club, []domain.ClubMembership, error)
	UpdateProfile(ctx context.Context, userID domain.UserID, name, phone, department, avatar string) (*domain.User, error)
}

// CreateUserInput carries an admin-provisioned account.
type CreateUserInput struct {
	Role       domain.UserRole
	Name       string
	Email      string
	Password   string
	RegNo      string
	Department string
	Phone      string
	Avatar     string
}

// ExportDocument mirrors the JSON document the admin dashboard downloads.
type ExportDocument struct {
	ExportDate string                  `json:"exportDate"`
	Clubs      []domain.Club           `json:"clubs"`
	Events     []domain.Event          `json:"events"`
	Members    []domain.ClubMembership `json:"members"`
	Users      []ExportUser            `json:"users"`
}

// ExportUser is the reduced user record included in exports; credentials and
// contact details are deliberately left out.
type ExportUser struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       domain.UserRole `json:"role"`
	Department string          `json:"department,omitempty"`
	RegNo      string          `json:"regNo,omitempty"`
}

type AdminService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// ListUsers returns every account, or only those holding the given role.
	ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	ExportData(ctx context.Context) (*ExportDocument, error)
}

type EmailService interface {
	SendJoinRequestDecision(ctx context.Context, email, name, clubName string, status domain.JoinRequestStatus, message string) error
	SendAccountCreated(ctx context.Context, email, name string, role domain.UserRole) error
}
