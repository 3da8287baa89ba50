package app

import (
	"context"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// dishService implements the DishService interface
type dishService struct {
	dishRepo meals.DishRepository
	logger   logger.Logger
}

// NewDishService creates a new dishService instance
func NewDishService(dishRepo meals.DishRepository, logger logger.Logger) (meals.DishService, error) {
	return &dishService{
		dishRepo: dishRepo,
		logger:   logger,
	}, nil
}

// List returns the global dish catalog.
func (s *dishService) List(ctx context.Context) ([]*meals.Dish, error) {
	return s.dishRepo.List(ctx)
}

// Create adds a dish to the catalog. Duplicates are permitted.
func (s *dishService) Create(ctx context.Context, input *meals.DishInput) (*meals.Dish, error) {
	if input.Name == "" || input.Category == "" {
		return nil, apperr.BadRequest("Name and category are required")
	}

	dish := &meals.Dish{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Category:  input.Category,
		ImageURL:  input.ImageURL,
		RecipeURL: input.RecipeURL,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	return dish, nil
}
