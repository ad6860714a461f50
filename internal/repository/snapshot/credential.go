package snapshot

import (
	"context"

	"campusclubs-backend/internal/domain"
)

type credentialRepository struct {
	state *state
}

func (r *credentialRepository) Get(ctx context.Context, email string) (string, error) {
	var secret string
	var ok bool
	r.state.view(func(snap *domain.Snapshot) {
		secret, ok = snap.Credentials[email]
	})
	if !ok {
		return "", domain.ErrNotFound
	}
	return secret, nil
}
