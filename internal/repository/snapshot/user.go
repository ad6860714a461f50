package snapshot

import (
	"context"

	"github.com/google/uuid"

	"campusclubs-backend/internal/domain"
)

type userRepository struct {
	state *state
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = domain.UserID(uuid.NewString())
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == user.Email {
				return domain.ErrDuplicateEmail
			}
		}
		snap.Users = append(snap.Users, *user)
		return nil
	})
}

func (r *userRepository) CreateWithCredential(ctx context.Context, user *domain.User, secret string) error {
	if user.ID == "" {
		user.ID = domain.UserID(uuid.NewString())
	}
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == user.Email {
				return domain.ErrDuplicateEmail
			}
		}
		snap.Users = append(snap.Users, *user)
		if snap.Credentials == nil {
			snap.Credentials = map[string]string{}
		}
		snap.Credentials[user.Email] = secret
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var found *domain.User
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				u := snap.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var found *domain.User
	r.state.view(func(snap *domain.Snapshot) {
		for i := range snap.Users {
			if snap.Users[i].Email == email {
				u := snap.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	r.state.view(func(snap *domain.Snapshot) {
		users = append(users, snap.Users...)
	})
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var users []domain.User
	r.state.view(func(snap *domain.Snapshot) {
		for _, u := range snap.Users {
			if u.Role == role {
				users = append(users, u)
			}
		}
	})
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.state.update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == user.ID {
				snap.Users[i] = *user
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
