package snapshot

import (
	"context"

	"github.com/google/uuid"

	"campusclubs-backend/internal/domain"
)

type eventRepository struct {
	state *state
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = domain.EventID(uuid.NewString())
	}
	if event.RegisteredUsers == nil {
		event.RegisteredUsers = []domain.UserID{}
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = append(snap.Events, *event)
		return nil
	})
}

func (r *eventRepository) GetByID(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	var found *domain.Event
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.Events {
			if snap.Events[i].ID == id {
				e := snap.Events[i]
				e.RegisteredUsers = append([]domain.UserID(nil), e.RegisteredUsers...)
				found = &e
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Events {
			if snap.Events[i].ID == event.ID {
				snap.Events[i] = *event
				snap.Events[i].RegisteredUsers = append([]domain.UserID(nil), event.RegisteredUsers...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	r.state.view(func(snap *domain.Snapshot) {
		for _, e := range snap.Events {
			e.RegisteredUsers = append([]domain.UserID(nil), e.RegisteredUsers...)
			out = append(out, e)
		}
	})
	return out, nil
}

func (r *eventRepository) ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.Event, error) {
	var out []domain.Event
	r.state.view(func(snap *domain.Snapshot) {
		for _, e := range snap.Events {
			if e.ClubID == clubID {
				e.RegisteredUsers = append([]domain.UserID(nil), e.RegisteredUsers...)
				out = append(out, e)
			}
		}
	})
	return out, nil
}

func (r *eventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	var out []domain.Event
	r.state.view(func(snap *domain.Snapshot) {
		for _, e := range snap.Events {
			if e.Status == status {
				e.RegisteredUsers = append([]domain.UserID(nil), e.RegisteredUsers...)
				out = append(out, e)
			}
		}
	})
	return out, nil
}
