// Package app implements the domain service interfaces on top of the
// repositories and the password hasher.
package app

import (
	"context"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// authService implements the AuthService interface for registration and login
type authService struct {
	userRepo   accounts.UserRepository
	coupleRepo accounts.CoupleRepository
	hasher     accounts.PasswordHasher
	logger     logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo accounts.UserRepository,
	coupleRepo accounts.CoupleRepository,
	hasher accounts.PasswordHasher,
	logger logger.Logger,
) (accounts.AuthService, error) {
	return &authService{
		userRepo:   userRepo,
		coupleRepo: coupleRepo,
		hasher:     hasher,
		logger:     logger,
	}, nil
}

// Register creates a user with a hashed password, resolving or creating the
// couple it joins. The couple row is created before the user row; a crash in
// between leaves an orphan couple that the startup sweep removes.
func (s *authService) Register(ctx context.Context, reg *accounts.Registration) (*accounts.User, error) {
	if reg.Username == "" || reg.Password == "" {
		return nil, apperr.BadRequest("Username and password are required")
	}

	if _, err := s.userRepo.GetByUsername(ctx, reg.Username); err == nil {
		return nil, apperr.Conflict("User already exists")
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	couple, err := s.resolveCouple(ctx, reg)
	if err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:           uuid.New().String(),
		Username:     reg.Username,
		PasswordHash: passwordHash,
		CoupleID:     couple.ID,
		Name:         reg.Name,
		Email:        reg.Email,
		AvatarURL:    reg.AvatarURL,
		Description:  reg.Description,
		Skills:       reg.Skills,
		About:        reg.About,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Registered user ", user.Username, " in couple ", couple.ID)
	return user, nil
}

// resolveCouple joins the requested couple after checking its capacity, or
// creates a fresh one.
func (s *authService) resolveCouple(ctx context.Context, reg *accounts.Registration) (*accounts.Couple, error) {
	if reg.CoupleID != "" {
		couple, err := s.coupleRepo.GetByID(ctx, reg.CoupleID)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return nil, apperr.BadRequest("Couple not found")
			}
			return nil, err
		}

		count, err := s.userRepo.CountByCoupleID(ctx, couple.ID)
		if err != nil {
			return nil, err
		}
		if count >= accounts.MaxCoupleMembers {
			return nil, apperr.Conflict("This couple already has 2 registered users")
		}

		return couple, nil
	}

	name := reg.CoupleName
	if name == "" {
		name = fmt.Sprintf("%s's couple", reg.Username)
	}

	couple := &accounts.Couple{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.coupleRepo.Create(ctx, couple); err != nil {
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}

	return couple, nil
}

// Login verifies the username and password and returns the user. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*accounts.User, error) {
	if username == "" || password == "" {
		return nil, apperr.BadRequest("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Unauthorized("Invalid username or password")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	return user, nil
}

// coupleService implements the CoupleService interface
type coupleService struct {
	coupleRepo accounts.CoupleRepository
	logger     logger.Logger
}

// NewCoupleService creates a new coupleService instance
func NewCoupleService(coupleRepo accounts.CoupleRepository, logger logger.Logger) (accounts.CoupleService, error) {
	return &coupleService{
		coupleRepo: coupleRepo,
		logger:     logger,
	}, nil
}

// List returns every couple for the registration flow.
func (s *coupleService) List(ctx context.Context) ([]*accounts.Couple, error) {
	return s.coupleRepo.List(ctx)
}
