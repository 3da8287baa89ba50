package app

import (
	"context"
	"fmt"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// wishlistService implements the WishlistService interface
type wishlistService struct {
	wishlistRepo wishlist.WishlistRepository
	userRepo     accounts.UserRepository
	logger       logger.Logger
}

// NewWishlistService creates a new wishlistService instance
func NewWishlistService(
	wishlistRepo wishlist.WishlistRepository,
	userRepo accounts.UserRepository,
	logger logger.Logger,
) (wishlist.WishlistService, error) {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
		logger:       logger,
	}, nil
}

// List returns the couple's wishes annotated with creator names.
func (s *wishlistService) List(ctx context.Context, coupleID string) ([]*wishlist.WishWithCreator, error) {
	items, err := s.wishlistRepo.ListByCoupleID(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	names := newCreatorNameResolver(s.userRepo)
	annotated := make([]*wishlist.WishWithCreator, len(items))
	for i, item := range items {
		annotated[i] = &wishlist.WishWithCreator{
			WishlistItem:  *item,
			CreatedByName: names.resolve(ctx, item.CreatedBy),
		}
	}

	return annotated, nil
}

// Create stamps the couple and creator from the session, defaults the
// priority to "medium" and persists the wish.
func (s *wishlistService) Create(ctx context.Context, coupleID, userID string, input *wishlist.WishInput) (*wishlist.WishlistItem, error) {
	if input.Title == "" {
		return nil, apperr.BadRequest("Title is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = wishlist.DefaultPriority
	}

	item := &wishlist.WishlistItem{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   time.Now(),
		CoupleID:    coupleID,
		CreatedBy:   userID,
	}

	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create wishlist item: %w", err)
	}

	return item, nil
}

// Update applies the provided fields to a wish of the caller's couple.
func (s *wishlistService) Update(ctx context.Context, coupleID, wishID string, update *wishlist.WishUpdate) (*wishlist.WishlistItem, error) {
	item, err := s.wishlistRepo.GetByID(ctx, wishID, coupleID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Priority != nil {
		item.Priority = *update.Priority
	}
	if update.Completed != nil {
		item.Completed = *update.Completed
	}

	if err := s.wishlistRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update wishlist item: %w", err)
	}

	return item, nil
}

// Delete hard-deletes a wish of the caller's couple.
func (s *wishlistService) Delete(ctx context.Context, coupleID, wishID string) error {
	return s.wishlistRepo.DeleteByID(ctx, wishID, coupleID)
}
