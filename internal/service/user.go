package service

import (
	"context"
	"fmt"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	clubRepo   repository.ClubRepository
	memberRepo repository.MembershipRepository
}

func NewUserService(userRepo repository.UserRepository, clubRepo repository.ClubRepository, memberRepo repository.MembershipRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		clubRepo:   clubRepo,
		memberRepo: memberRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID domain.UserID) (*domain.User, []domain.Club, []domain.ClubMembership, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	memberships, err := s.memberRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
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
	return user, clubs, matched, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID domain.UserID, name, phone, department, avatar string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if department != "" {
		user.Department = department
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
