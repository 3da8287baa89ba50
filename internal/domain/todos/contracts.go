package todos

import "context"

// TodoService defines couple-scoped CRUD over to-do items. Every operation
// is restricted to the given couple; an item belonging to another couple is
// reported as not found.
type TodoService interface {
	List(ctx context.Context, coupleID string) ([]*TodoWithCreator, error)
	Create(ctx context.Context, coupleID, userID string, input *TodoInput) (*TodoItem, error)
	Update(ctx context.Context, coupleID, todoID string, update *TodoUpdate) (*TodoItem, error)
	Delete(ctx context.Context, coupleID, todoID string) error
}

// TodoRepository defines the interface for to-do persistence operations.
// Lookups take the owning couple ID so that out-of-scope rows surface as
// not found.
type TodoRepository interface {
	Create(ctx context.Context, item *TodoItem) error
	ListByCoupleID(ctx context.Context, coupleID string) ([]*TodoItem, error)
	GetByID(ctx context.Context, todoID, coupleID string) (*TodoItem, error)
	Update(ctx context.Context, item *TodoItem) error
	DeleteByID(ctx context.Context, todoID, coupleID string) error
}
