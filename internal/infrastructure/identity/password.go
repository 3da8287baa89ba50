// Package identity implements password hashing and the two session
// backends (stateless signed cookie and database-backed) behind the
// session Manager interface.
package identity

import (
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a PasswordHasher backed by bcrypt at the default
// cost.
func NewBcryptHasher() accounts.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the salted one-way hash of the password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash.
func (h *bcryptHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
