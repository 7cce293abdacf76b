package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kbukum/authzkit/errors"
)

// KeyHasher hashes and verifies admin API keys with bcrypt. Only the hash
// is ever stored in configuration.
type KeyHasher struct {
	cost int
}

// KeyOption configures the hasher.
type KeyOption func(*KeyHasher)

// WithCost sets the bcrypt cost parameter (range 4-31).
func WithCost(cost int) KeyOption {
	return func(h *KeyHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewKeyHasher creates a bcrypt-based key hasher.
func NewKeyHasher(opts ...KeyOption) *KeyHasher {
	h := &KeyHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the bcrypt hash of a key.
func (h *KeyHasher) Hash(key string) (string, error) {
	if len(key) < 8 {
		return "", fmt.Errorf("auth: key must be at least 8 characters")
	}
	if len(key) > 72 {
		return "", fmt.Errorf("auth: key must be at most 72 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash key: %w", err)
	}
	return string(hash), nil
}

// Verify checks a key against its stored hash. Returns an UNAUTHORIZED
// application error on mismatch.
func (h *KeyHasher) Verify(key, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return errors.Unauthorized("invalid admin key")
	}
	return nil
}
