package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence/models"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCoupleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCoupleRepository creates a new GORM-based CoupleRepository implementation
func NewGormCoupleRepository(db *gorm.DB, logger logger.Logger) (accounts.CoupleRepository, error) {
	return &gormCoupleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCoupleRepository) Create(ctx context.Context, couple *accounts.Couple) error {
	model := &models.CoupleModel{}
	model.FromDomain(couple)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create couple: %w", err)
	}

	r.logger.Info("Created couple with id ", couple.ID)
	return nil
}

func (r *gormCoupleRepository) GetByID(ctx context.Context, coupleID string) (*accounts.Couple, error) {
	var model models.CoupleModel
	if err := r.db.WithContext(ctx).Where("id = ?", coupleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("couple not found")
		}
		return nil, fmt.Errorf("failed to fetch couple: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCoupleRepository) List(ctx context.Context) ([]*accounts.Couple, error) {
	var modelList []*models.CoupleModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch couples: %w", err)
	}

	domainList := make([]*accounts.Couple, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCoupleRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id NOT IN (?)", r.db.Model(&models.UserModel{}).
			Select("couple_id").Where("couple_id IS NOT NULL")).
		Delete(&models.CoupleModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete orphan couples: %w", result.Error)
	}

	return result.RowsAffected, nil
}
