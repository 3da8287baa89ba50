package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence/models"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTodoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTodoRepository creates a new GORM-based TodoRepository implementation
func NewGormTodoRepository(db *gorm.DB, logger logger.Logger) (todos.TodoRepository, error) {
	return &gormTodoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTodoRepository) Create(ctx context.Context, item *todos.TodoItem) error {
	model := &models.TodoItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create todo item: %w", err)
	}

	r.logger.Info("Created todo item with id ", item.ID)
	return nil
}

func (r *gormTodoRepository) ListByCoupleID(ctx context.Context, coupleID string) ([]*todos.TodoItem, error) {
	var modelList []*models.TodoItemModel
	if err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch todo items: %w", err)
	}

	domainList := make([]*todos.TodoItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTodoRepository) GetByID(ctx context.Context, todoID, coupleID string) (*todos.TodoItem, error) {
	var model models.TodoItemModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", todoID, coupleID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("todo item not found")
		}
		return nil, fmt.Errorf("failed to fetch todo item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTodoRepository) Update(ctx context.Context, item *todos.TodoItem) error {
	model := &models.TodoItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update todo item: %w", err)
	}

	r.logger.Info("Updated todo item with id ", item.ID)
	return nil
}

func (r *gormTodoRepository) DeleteByID(ctx context.Context, todoID, coupleID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", todoID, coupleID).
		Delete(&models.TodoItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete todo item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("todo item not found")
	}

	r.logger.Info("Deleted todo item with id ", todoID)
	return nil
}
