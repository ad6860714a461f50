package snapshot

import (
	"context"

	"campusclubs-backend/internal/domain"
)

type membershipRepository struct {
	state *state
}

func (r *membershipRepository) Add(ctx context.Context, m *domain.ClubMembership) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for _, existing := range snap.ClubMemberships {
			if existing.UserID == m.UserID && existing.ClubID == m.ClubID {
				return domain.ErrDuplicateMembership
			}
		}
		snap.ClubMemberships = append(snap.ClubMemberships, *m)
		return nil
	})
}

func (r *membershipRepository) Get(ctx context.Context, userID domain.UserID, clubID domain.ClubID) (*domain.ClubMembership, error) {
	var found *domain.ClubMembership
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.ClubMemberships {
			if snap.ClubMemberships[i].UserID == userID && snap.ClubMemberships[i].ClubID == clubID {
				m := snap.ClubMemberships[i]
				found = &m
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *membershipRepository) UpdateRole(ctx context.Context, userID domain.UserID, clubID domain.ClubID, role string) (*domain.ClubMembership, error) {
	var updated domain.ClubMembership
	err := r.state.update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.ClubMemberships {
			if snap.ClubMemberships[i].UserID == userID && snap.ClubMemberships[i].ClubID == clubID {
				snap.ClubMemberships[i].Role = role
				updated = snap.ClubMemberships[i]
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *membershipRepository) Remove(ctx context.Context, userID domain.UserID, clubID domain.ClubID) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		kept := snap.ClubMemberships[:0]
		for _, m := range snap.ClubMemberships {
			if m.UserID == userID && m.ClubID == clubID {
				continue
			}
			kept = append(kept, m)
		}
		snap.ClubMemberships = kept
		return nil
	})
}

func (r *membershipRepository) ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.ClubMembership, error) {
	var out []domain.ClubMembership
	r.state.view(func(snap *domain.Snapshot) {
		for _, m := range snap.ClubMemberships {
			if m.ClubID == clubID {
				out = append(out, m)
			}
		}
	})
	return out, nil
}

func (r *membershipRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.ClubMembership, error) {
	var out []domain.ClubMembership
	r.state.view(func(snap *domain.Snapshot) {
		for _, m := range snap.ClubMemberships {
			if m.UserID == userID {
				out = append(out, m)
			}
		}
	})
	return out, nil
}
