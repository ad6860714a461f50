package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository"
)

type membershipService struct {
	reqRepo    repository.JoinRequestRepository
	memberRepo repository.MembershipRepository
	userRepo   repository.UserRepository
	clubRepo   repository.ClubRepository
	roleRepo   repository.CustomRoleRepository
	emailSvc   EmailService
}

func NewMembershipService(
	reqRepo repository.JoinRequestRepository,
	memberRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
	roleRepo repository.CustomRoleRepository,
	emailSvc EmailService,
) MembershipService {
	return &membershipService{
		reqRepo:    reqRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		clubRepo:   clubRepo,
		roleRepo:   roleRepo,
		emailSvc:   emailSvc,
	}
}

func (s *membershipService) SubmitJoinRequest(ctx context.Context, userID domain.UserID, clubID domain.ClubID, message string) (*domain.JoinRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	if _, err := s.memberRepo.Get(ctx, userID, clubID); err == nil {
		return nil, domain.ErrDuplicateMembership
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if _, err := s.reqRepo.GetPending(ctx, userID, clubID); err == nil {
		return nil, domain.ErrDuplicateRequest
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}

	req := &domain.JoinRequest{
		UserID:      userID,
		ClubID:      clubID,
		Status:      domain.JoinRequestStatusPending,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
		Message:     message,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	logger.Info("Join request submitted", "request_id", req.ID, "user_id", userID, "club_id", clubID)
	return req, nil
}

func (s *membershipService) ResolveJoinRequest(ctx context.Context, requestID domain.RequestID, decision domain.JoinRequestStatus, responseMessage, assignedRole string) (*domain.JoinRequest, *domain.ClubMembership, error) {
	if decision != domain.JoinRequestStatusApproved && decision != domain.JoinRequestStatusRejected {
		return nil, nil, fmt.Errorf("invalid decision %q", decision)
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if req.Status != domain.JoinRequestStatusPending {
		return nil, nil, domain.ErrInvalidTransition
	}

	var membership *domain.ClubMembership
	if decision == domain.JoinRequestStatusApproved {
		role := assignedRole
		if role == "" {
			role = domain.RoleMember
		}
		membership = &domain.ClubMembership{
			UserID:   req.UserID,
			ClubID:   req.ClubID,
			JoinedAt: time.Now().UTC().Format(time.RFC3339),
			Role:     role,
		}
		req.AssignedRole = role
	}

	req.Status = decision
	req.ResponseMessage = responseMessage
	req.RespondedAt = time.Now().UTC().Format(time.RFC3339)
	// Request update and membership land in one write; a failed persist
	// leaves the request pending and resolvable again.
	if err := s.reqRepo.Resolve(ctx, req, membership); err != nil {
		return nil, nil, fmt.Errorf("failed to resolve join request: %w", err)
	}

	s.notifyDecision(ctx, req)

	logger.Info("Join request resolved", "request_id", req.ID, "decision", decision)
	return req, membership, nil
}

// notifyDecision emails the requester about the outcome. Delivery failures
// are logged, never surfaced; the resolution already happened.
func (s *membershipService) notifyDecision(ctx context.Context, req *domain.JoinRequest) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Warn("Skipping decision email, requester not found", "user_id", req.UserID)
		return
	}
	club, err := s.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		logger.Warn("Skipping decision email, club not found", "club_id", req.ClubID)
		return
	}
	_ = s.emailSvc.SendJoinRequestDecision(ctx, user.Email, user.Name, club.Name, req.Status, req.ResponseMessage)
}

func (s *membershipService) GetJoinRequest(ctx context.Context, requestID domain.RequestID) (*domain.JoinRequest, error) {
	return s.reqRepo.GetByID(ctx, requestID)
}

func (s *membershipService) UpdateMemberRole(ctx context.Context, userID domain.UserID, clubID domain.ClubID, newRole string) (*domain.ClubMembership, error) {
	m, err := s.memberRepo.UpdateRole(ctx, userID, clubID, newRole)
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	logger.Info("Member role updated", "user_id", userID, "club_id", clubID, "role", newRole)
	return m, nil
}

func (s *membershipService) RemoveMember(ctx context.Context, userID domain.UserID, clubID domain.ClubID) error {
	if err := s.memberRepo.Remove(ctx, userID, clubID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	logger.Info("Member removed", "user_id", userID, "club_id", clubID)
	return nil
}

func (s *membershipService) ListClubMembers(ctx context.Context, clubID domain.ClubID) ([]domain.User, []domain.ClubMembership, error) {
	memberships, err := s.memberRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}

	var users []domain.User
	var matched []domain.ClubMembership
	for _, m := range memberships {
		user, err := s.userRepo.GetByID(ctx, m.UserID)
		if err != nil {
			// Dangling reference; the audit job reports these.
			continue
		}
		users = append(users, *user)
		matched = append(matched, m)
	}
	return users, matched, nil
}

func (s *membershipService) ListUserClubs(ctx context.Context, userID domain.UserID) ([]domain.Club, []domain.ClubMembership, error) {
	memberships, err := s.memberRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var clubs []domain.Club
	var matched []domain.ClubMembership
	for _, m := range memberships {
		club, err := s.clubRepo.GetByID(ctx, m.ClubID)
		if err != nil {
			continue
		}
		clubs = append(clubs, *club)
		matched = append(matched, m)
	}
	return clubs, matched, nil
}

func (s *membershipService) ListPendingRequests(ctx context.Context, clubID domain.ClubID) ([]domain.JoinRequest, error) {
	reqs, err := s.reqRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	var pending []domain.JoinRequest
	for _, req := range reqs {
		if req.Status == domain.JoinRequestStatusPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (s *membershipService) ListUserRequests(ctx context.Context, userID domain.UserID) ([]domain.JoinRequest, error) {
	return s.reqRepo.ListByUser(ctx, userID)
}

func (s *membershipService) CreateCustomRole(ctx context.Context, clubID domain.ClubID, name, description string) (*domain.CustomRole, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	role := &domain.CustomRole{
		ClubID:      clubID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create custom role: %w", err)
	}
	return role, nil
}

func (s *membershipService) ListCustomRoles(ctx context.Context, clubID domain.ClubID) ([]domain.CustomRole, error) {
	return s.roleRepo.ListByClub(ctx, clubID)
}
