package security

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campusclubs-backend/internal/domain"
)

// Verifier abstracts how stored credentials are produced and checked, so the
// legacy plaintext credential map can coexist with hashed secrets and be
// swapped for a real auth provider without touching the services.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(stored, supplied string) error
}

// NewVerifier returns the verifier for the configured scheme: "bcrypt"
// (default) or "plain" for snapshots that must stay readable by the legacy app.
func NewVerifier(scheme string) (Verifier, error) {
	switch scheme {
	case "", "bcrypt":
		return BcryptVerifier{}, nil
	case "plain":
		return PlainVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", scheme)
	}
}

// PlainVerifier stores secrets verbatim, matching the original credential map.
type PlainVerifier struct{}

func (PlainVerifier) Hash(secret string) (string, error) {
	return secret, nil
}

func (PlainVerifier) Verify(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier hashes new secrets with bcrypt. Seed snapshots carry
// plaintext entries, so anything without a bcrypt prefix is compared as
// legacy plaintext.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, supplied string) error {
	if strings.HasPrefix(stored, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
			return domain.ErrInvalidCredentials
		}
		return nil
	}
	return PlainVerifier{}.Verify(stored, supplied)
}
