package accounts

import (
	"context"
)

// AuthService defines registration and credential verification.
type AuthService interface {
	// Register creates a user with a hashed password, resolving or creating
	// the couple it joins. It returns the created user.
	Register(ctx context.Context, reg *Registration) (*User, error)

	// Login verifies the username and password and returns the user.
	Login(ctx context.Context, username, password string) (*User, error)
}

// ProfileService defines access to the caller's own profile.
type ProfileService interface {
	// Get returns the profile of the given user.
	Get(ctx context.Context, userID string) (*User, error)

	// Update applies a partial profile update and returns the updated user.
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)
}

// CoupleService defines couple listing for the registration flow.
type CoupleService interface {
	// List returns every couple. It is reachable without authentication so
	// a second partner can pick the couple to join.
	List(ctx context.Context) ([]*Couple, error)
}

// MaintenanceService defines the startup cleanup routine.
type MaintenanceService interface {
	// RemoveOrphanCouples deletes every couple with zero users and returns
	// the number of couples removed. Safe to run repeatedly.
	RemoveOrphanCouples(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	CountByCoupleID(ctx context.Context, coupleID string) (int64, error)
}

// CoupleRepository defines the interface for couple persistence operations.
type CoupleRepository interface {
	Create(ctx context.Context, couple *Couple) error
	GetByID(ctx context.Context, coupleID string) (*Couple, error)
	List(ctx context.Context) ([]*Couple, error)

	// DeleteOrphans removes couples without any user and reports how many
	// rows were deleted.
	DeleteOrphans(ctx context.Context) (int64, error)
}

// PasswordHasher defines one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
