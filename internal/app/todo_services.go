package app

import (
	"context"
	"fmt"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/google/uuid"
)

// todoService implements the TodoService interface
type todoService struct {
	todoRepo todos.TodoRepository
	userRepo accounts.UserRepository
	logger   logger.Logger
}

// NewTodoService creates a new todoService instance
func NewTodoService(
	todoRepo todos.TodoRepository,
	userRepo accounts.UserRepository,
	logger logger.Logger,
) (todos.TodoService, error) {
	return &todoService{
		todoRepo: todoRepo,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// List returns the couple's to-do items annotated with creator names.
func (s *todoService) List(ctx context.Context, coupleID string) ([]*todos.TodoWithCreator, error) {
	items, err := s.todoRepo.ListByCoupleID(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	names := newCreatorNameResolver(s.userRepo)
	annotated := make([]*todos.TodoWithCreator, len(items))
	for i, item := range items {
		annotated[i] = &todos.TodoWithCreator{
			TodoItem:      *item,
			CreatedByName: names.resolve(ctx, item.CreatedBy),
		}
	}

	return annotated, nil
}

// Create stamps the couple and creator from the session and persists the item.
func (s *todoService) Create(ctx context.Context, coupleID, userID string, input *todos.TodoInput) (*todos.TodoItem, error) {
	if input.Title == "" {
		return nil, apperr.BadRequest("Title is required")
	}

	item := &todos.TodoItem{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		CreatedAt:   time.Now(),
		CoupleID:    coupleID,
		CreatedBy:   userID,
	}

	if err := s.todoRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create todo item: %w", err)
	}

	return item, nil
}

// Update applies the provided fields to an item of the caller's couple.
func (s *todoService) Update(ctx context.Context, coupleID, todoID string, update *todos.TodoUpdate) (*todos.TodoItem, error) {
	item, err := s.todoRepo.GetByID(ctx, todoID, coupleID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Completed != nil {
		item.Completed = *update.Completed
	}

	if err := s.todoRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update todo item: %w", err)
	}

	return item, nil
}

// Delete hard-deletes an item of the caller's couple.
func (s *todoService) Delete(ctx context.Context, coupleID, todoID string) error {
	return s.todoRepo.DeleteByID(ctx, todoID, coupleID)
}
