package snapshot

import (
	"context"

	"github.com/google/uuid"

	"campusclubs-backend/internal/domain"
)

type joinRequestRepository struct {
	state *state
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	if req.ID == "" {
		req.ID = domain.RequestID(uuid.NewString())
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		snap.JoinRequests = append(snap.JoinRequests, *req)
		return nil
	})
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id domain.RequestID) (*domain.JoinRequest, error) {
	var found *domain.JoinRequest
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.JoinRequests {
			if snap.JoinRequests[i].ID == id {
				req := snap.JoinRequests[i]
				found = &req
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *joinRequestRepository) GetPending(ctx context.Context, userID domain.UserID, clubID domain.ClubID) (*domain.JoinRequest, error) {
	var found *domain.JoinRequest
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.JoinRequests {
			req := snap.JoinRequests[i]
			if req.UserID == userID && req.ClubID == clubID && req.Status == domain.JoinRequestStatusPending {
				found = &req
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *joinRequestRepository) Resolve(ctx context.Context, req *domain.JoinRequest, membership *domain.ClubMembership) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		if membership != nil {
			for _, m := range snap.ClubMemberships {
				if m.UserID == membership.UserID && m.ClubID == membership.ClubID {
					return domain.ErrDuplicateMembership
				}
			}
		}
		for i := range snap.JoinRequests {
			if snap.JoinRequests[i].ID == req.ID {
				snap.JoinRequests[i] = *req
				if membership != nil {
					snap.ClubMemberships = append(snap.ClubMemberships, *membership)
				}
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *joinRequestRepository) ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.JoinRequest, error) {
	var out []domain.JoinRequest
	r.state.view(func(snap *domain.Snapshot) {
		for _, req := range snap.JoinRequests {
			if req.ClubID == clubID {
				out = append(out, req)
			}
		}
	})
	return out, nil
}

func (r *joinRequestRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.JoinRequest, error) {
	var out []domain.JoinRequest
	r.state.view(func(snap *domain.Snapshot) {
		for _, req := range snap.JoinRequests {
			if req.UserID == userID {
				out = append(out, req)
			}
		}
	})
	return out, nil
}
