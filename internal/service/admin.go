package service

import (
	"fmt"

	"github.com/msomdec/practice-demos/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AdminGuard checks bearer keys against a bcrypt hash of the admin key.
type AdminGuard struct {
	hash []byte
}

// NewAdminGuard creates an AdminGuard from a bcrypt hash. An empty hash
// disables every admin operation.
func NewAdminGuard(hash string) (*AdminGuard, error) {
	if hash == "" {
		return &AdminGuard{}, nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("%w: admin key hash is not a bcrypt hash", domain.ErrInvalidInput)
	}
	return &AdminGuard{hash: []byte(hash)}, nil
}

// Enabled reports whether an admin key is configured.
func (g *AdminGuard) Enabled() bool {
	return len(g.hash) > 0
}

// Verify returns nil when key matches the configured admin key.
func (g *AdminGuard) Verify(key string) error {
	if !g.Enabled() || key == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(key)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// HashAdminKey produces the hash to configure for key.
func HashAdminKey(key string, cost int) (string, error) {
	if len(key) < 16 {
		return "", fmt.Errorf("%w: admin key must be at least 16 characters", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("hash admin key: %w", err)
	}
	return string(hash), nil
}
