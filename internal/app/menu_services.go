package app

import (
	"context"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// menuService implements the MenuService interface
type menuService struct {
	menuRepo meals.MenuRepository
	dishRepo meals.DishRepository
	userRepo accounts.UserRepository
	logger   logger.Logger
}

// NewMenuService creates a new menuService instance
func NewMenuService(
	menuRepo meals.MenuRepository,
	dishRepo meals.DishRepository,
	userRepo accounts.UserRepository,
	logger logger.Logger,
) (meals.MenuService, error) {
	return &menuService{
		menuRepo: menuRepo,
		dishRepo: dishRepo,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// List returns the couple's menu annotated with creator names.
func (s *menuService) List(ctx context.Context, coupleID string) ([]*meals.MenuItemWithCreator, error) {
	items, err := s.menuRepo.ListByCoupleID(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	names := newCreatorNameResolver(s.userRepo)
	annotated := make([]*meals.MenuItemWithCreator, len(items))
	for i, item := range items {
		annotated[i] = &meals.MenuItemWithCreator{
			MenuItem:      *item,
			CreatedByName: names.resolve(ctx, item.CreatedBy),
		}
	}

	return annotated, nil
}

// Create plans a dish for a day/meal slot. The referenced dish must exist.
func (s *menuService) Create(ctx context.Context, coupleID, userID string, input *meals.MenuInput) (*meals.MenuItem, error) {
	if input.DishID == "" || input.DayOfWeek == "" || input.MealType == "" {
		return nil, apperr.BadRequest("Dish, day of week and meal type are required")
	}

	if _, err := s.dishRepo.GetByID(ctx, input.DishID); err != nil {
		return nil, err
	}

	item := &meals.MenuItem{
		ID:        uuid.New().String(),
		DishID:    input.DishID,
		DayOfWeek: input.DayOfWeek,
		MealType:  input.MealType,
		CoupleID:  coupleID,
		CreatedBy: userID,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return item, nil
}

// Update applies the provided fields to a menu item of the caller's couple.
// It targets the stored schema fields (dish, day, meal type).
func (s *menuService) Update(ctx context.Context, coupleID, menuID string, update *meals.MenuUpdate) (*meals.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, menuID, coupleID)
	if err != nil {
		return nil, err
	}

	if update.DishID != nil {
		if _, err := s.dishRepo.GetByID(ctx, *update.DishID); err != nil {
			return nil, err
		}
		item.DishID = *update.DishID
	}
	if update.DayOfWeek != nil {
		item.DayOfWeek = *update.DayOfWeek
	}
	if update.MealType != nil {
		item.MealType = *update.MealType
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return item, nil
}

// Delete hard-deletes a menu item of the caller's couple.
func (s *menuService) Delete(ctx context.Context, coupleID, menuID string) error {
	return s.menuRepo.DeleteByID(ctx, menuID, coupleID)
}
