package snapshot

import (
	"context"

	"github.com/google/uuid"

	"campusclubs-backend/internal/domain"
)

type customRoleRepository struct {
	state *state
}

func (r *customRoleRepository) Create(ctx context.Context, role *domain.CustomRole) error {
	if role.ID == "" {
		role.ID = domain.RoleID(uuid.NewString())
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		snap.CustomRoles = append(snap.CustomRoles, *role)
		return nil
	})
}

func (r *customRoleRepository) ListByClub(ctx context.Context, clubID domain.ClubID) ([]domain.CustomRole, error) {
	var out []domain.CustomRole
	r.state.view(func(snap *domain.Snapshot) {
		for _, role := range snap.CustomRoles {
			if role.ClubID == clubID {
				out = append(out, role)
			}
		}
	})
	return out, nil
}
