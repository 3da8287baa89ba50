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

type gormMenuRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMenuRepository creates a new GORM-based MenuRepository implementation
func NewGormMenuRepository(db *gorm.DB, logger logger.Logger) (meals.MenuRepository, error) {
	return &gormMenuRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMenuRepository) Create(ctx context.Context, item *meals.MenuItem) error {
	model := &models.MenuItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Info("Created menu item with id ", item.ID)
	return nil
}

func (r *gormMenuRepository) ListByCoupleID(ctx context.Context, coupleID string) ([]*meals.MenuItem, error) {
	var modelList []*models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}

	domainList := make([]*meals.MenuItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMenuRepository) GetByID(ctx context.Context, menuID, coupleID string) (*meals.MenuItem, error) {
	var model models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", menuID, coupleID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, fmt.Errorf("failed to fetch menu item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMenuRepository) Update(ctx context.Context, item *meals.MenuItem) error {
	model := &models.MenuItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	r.logger.Info("Updated menu item with id ", item.ID)
	return nil
}

func (r *gormMenuRepository) DeleteByID(ctx context.Context, menuID, coupleID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", menuID, coupleID).
		Delete(&models.MenuItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("menu item not found")
	}

	r.logger.Info("Deleted menu item with id ", menuID)
	return nil
}
