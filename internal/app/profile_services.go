package app

import (
	"context"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	userRepo accounts.UserRepository
	logger   logger.Logger
}

// NewProfileService creates a new profileService instance
func NewProfileService(userRepo accounts.UserRepository, logger logger.Logger) (accounts.ProfileService, error) {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Get returns the profile of the given user.
func (s *profileService) Get(ctx context.Context, userID string) (*accounts.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Update applies a partial profile update. Absent fields, including the
// skills and about lists, keep their stored values.
func (s *profileService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Description != nil {
		user.Description = *update.Description
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.About != nil {
		user.About = update.About
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
