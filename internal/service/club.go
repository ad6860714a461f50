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

type clubService struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

func NewClubService(clubRepo repository.ClubRepository, userRepo repository.UserRepository) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		userRepo: userRepo,
	}
}

func (s *clubService) CreateClub(ctx context.Context, createdBy domain.UserID, club *domain.Club) error {
	if err := s.checkCoordinator(ctx, club.CoordinatorID, ""); err != nil {
		return err
	}

	club.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	club.CreatedBy = createdBy
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}

	logger.Info("Club created", "club_id", club.ID, "coordinator_id", club.CoordinatorID)
	return nil
}

func (s *clubService) GetClub(ctx context.Context, id domain.ClubID) (*domain.Club, error) {
	return s.clubRepo.GetByID(ctx, id)
}

func (s *clubService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.List(ctx)
}

func (s *clubService) UpdateClub(ctx context.Context, club *domain.Club) error {
	current, err := s.clubRepo.GetByID(ctx, club.ID)
	if err != nil {
		return fmt.Errorf("failed to get club: %w", err)
	}

	if club.CoordinatorID != current.CoordinatorID {
		if err := s.checkCoordinator(ctx, club.CoordinatorID, club.ID); err != nil {
			return err
		}
	}

	// Creation metadata is immutable.
	club.CreatedAt = current.CreatedAt
	club.CreatedBy = current.CreatedBy
	return s.clubRepo.Update(ctx, club)
}

// checkCoordinator verifies the user exists, holds the coordinator role and
// does not already manage another club. Coordinator to club is one-to-one.
func (s *clubService) checkCoordinator(ctx context.Context, coordinatorID domain.UserID, exceptClub domain.ClubID) error {
	coordinator, err := s.userRepo.GetByID(ctx, coordinatorID)
	if err != nil {
		return fmt.Errorf("failed to get coordinator: %w", err)
	}
	if coordinator.Role != domain.UserRoleCoordinator {
		return fmt.Errorf("%w: %s is not a coordinator", domain.ErrInvalidRole, coordinatorID)
	}

	existing, err := s.clubRepo.GetByCoordinator(ctx, coordinatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check coordinator assignment: %w", err)
	}
	if existing.ID != exceptClub {
		return domain.ErrCoordinatorTaken
	}
	return nil
}
