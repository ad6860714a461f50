package snapshot

import (
	"context"

	"github.com/google/uuid"

	"campusclubs-backend/internal/domain"
)

type clubRepository struct {
	state *state
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	if club.ID == "" {
		club.ID = domain.ClubID(uuid.NewString())
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		snap.Clubs = append(snap.Clubs, *club)
		return nil
	})
}

func (r *clubRepository) GetByID(ctx context.Context, id domain.ClubID) (*domain.Club, error) {
	var found *domain.Club
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.Clubs {
			if snap.Clubs[i].ID == id {
				c := snap.Clubs[i]
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *clubRepository) GetByCoordinator(ctx context.Context, coordinatorID domain.UserID) (*domain.Club, error) {
	var found *domain.Club
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.Clubs {
			if snap.Clubs[i].CoordinatorID == coordinatorID {
				c := snap.Clubs[i]
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	var clubs []domain.Club
	r.state.view(func(snap *domain.Snapshot) {
		clubs = append(clubs, snap.Clubs...)
	})
	return clubs, nil
}

func (r *clubRepository) Update(ctx context.Context, club *domain.Club) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Clubs {
			if snap.Clubs[i].ID == club.ID {
				snap.Clubs[i] = *club
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
