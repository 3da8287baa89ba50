package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence/models"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDishRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDishRepository creates a new GORM-based DishRepository implementation
func NewGormDishRepository(db *gorm.DB, logger logger.Logger) (meals.DishRepository, error) {
	return &gormDishRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDishRepository) Create(ctx context.Context, dish *meals.Dish) error {
	model := &models.DishModel{}
	model.FromDomain(dish)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dish: %w", err)
	}

	r.logger.Info("Created dish with id ", dish.ID)
	return nil
}

func (r *gormDishRepository) List(ctx context.Context) ([]*meals.Dish, error) {
	var modelList []*models.DishModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch dishes: %w", err)
	}

	domainList := make([]*meals.Dish, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDishRepository) GetByID(ctx context.Context, dishID string) (*meals.Dish, error) {
	var model models.DishModel
	if err := r.db.WithContext(ctx).Where("id = ?", dishID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("dish not found")
		}
		return nil, fmt.Errorf("failed to fetch dish: %w", err)
	}
	return model.ToDomain(), nil
}
