package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence/models"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormWishlistRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWishlistRepository creates a new GORM-based WishlistRepository implementation
func NewGormWishlistRepository(db *gorm.DB, logger logger.Logger) (wishlist.WishlistRepository, error) {
	return &gormWishlistRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWishlistRepository) Create(ctx context.Context, item *wishlist.WishlistItem) error {
	model := &models.WishlistItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}

	r.logger.Info("Created wishlist item with id ", item.ID)
	return nil
}

func (r *gormWishlistRepository) ListByCoupleID(ctx context.Context, coupleID string) ([]*wishlist.WishlistItem, error) {
	var modelList []*models.WishlistItemModel
	if err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist items: %w", err)
	}

	domainList := make([]*wishlist.WishlistItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormWishlistRepository) GetByID(ctx context.Context, wishID, coupleID string) (*wishlist.WishlistItem, error) {
	var model models.WishlistItemModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", wishID, coupleID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("wishlist item not found")
		}
		return nil, fmt.Errorf("failed to fetch wishlist item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormWishlistRepository) Update(ctx context.Context, item *wishlist.WishlistItem) error {
	model := &models.WishlistItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update wishlist item: %w", err)
	}

	r.logger.Info("Updated wishlist item with id ", item.ID)
	return nil
}

func (r *gormWishlistRepository) DeleteByID(ctx context.Context, wishID, coupleID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", wishID, coupleID).
		Delete(&models.WishlistItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("wishlist item not found")
	}

	r.logger.Info("Deleted wishlist item with id ", wishID)
	return nil
}
