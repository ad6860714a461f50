package service

import (
	"context"
	"fmt"

	"campusclubs-backend/internal/domain"
	"campusclubs-backend/internal/logger"
	"campusclubs-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
	clubRepo  repository.ClubRepository
	userRepo  repository.UserRepository
}

func NewEventService(eventRepo repository.EventRepository, clubRepo repository.ClubRepository, userRepo repository.UserRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
		userRepo:  userRepo,
	}
}

// ProposeEvent records a student-proposed event awaiting coordinator review.
func (s *eventService) ProposeEvent(ctx context.Context, proposedBy domain.UserID, event *domain.Event) error {
	if _, err := s.clubRepo.GetByID(ctx, event.ClubID); err != nil {
		return fmt.Errorf("failed to get club: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, proposedBy); err != nil {
		return fmt.Errorf("failed to get proposer: %w", err)
	}

	event.Status = domain.EventStatusProposed
	event.ProposedBy = proposedBy
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event proposed", "event_id", event.ID, "club_id", event.ClubID, "proposed_by", proposedBy)
	return nil
}

// CreateEvent lets the club's coordinator publish an event directly.
func (s *eventService) CreateEvent(ctx context.Context, coordinatorID domain.UserID, event *domain.Event) error {
	club, err := s.clubRepo.GetByID(ctx, event.ClubID)
	if err != nil {
		return fmt.Errorf("failed to get club: %w", err)
	}
	if club.CoordinatorID != coordinatorID {
		return domain.ErrForbidden
	}

	event.Status = domain.EventStatusApproved
	event.ProposedBy = ""
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event created", "event_id", event.ID, "club_id", event.ClubID)
	return nil
}

func (s *eventService) ResolveEvent(ctx context.Context, eventID domain.EventID, decision domain.EventStatus) (*domain.Event, error) {
	if decision != domain.EventStatusApproved && decision != domain.EventStatusRejected {
		return nil, fmt.Errorf("invalid decision %q", decision)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.Status != domain.EventStatusProposed {
		return nil, domain.ErrInvalidTransition
	}

	event.Status = decision
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	logger.Info("Event resolved", "event_id", eventID, "decision", decision)
	return event, nil
}

func (s *eventService) RegisterForEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	// Registration is a set; a second register is a no-op.
	if event.Registered(userID) {
		return event, nil
	}

	event.RegisteredUsers = append(event.RegisteredUsers, userID)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) UnregisterFromEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if !event.Registered(userID) {
		return event, nil
	}

	kept := event.RegisteredUsers[:0]
	for _, id := range event.RegisteredUsers {
		if id != userID {
			kept = append(kept, id)
		}
	}
	event.RegisteredUsers = kept
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID domain.EventID) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) ListClubEvents(ctx context.Context, clubID domain.ClubID) ([]domain.Event, error) {
	return s.eventRepo.ListByClub(ctx, clubID)
}

func (s *eventService) ListPendingEvents(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.ListByStatus(ctx, domain.EventStatusProposed)
}

func (s *eventService) ListRegisteredEvents(ctx context.Context, userID domain.UserID) ([]domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	for _, e := range events {
		if e.Registered(userID) {
			out = append(out, e)
		}
	}
	return out, nil
}
