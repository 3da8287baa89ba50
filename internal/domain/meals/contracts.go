package meals

import "context"

// DishService defines the global dish catalog operations.
type DishService interface {
	List(ctx context.Context) ([]*Dish, error)
	Create(ctx context.Context, input *DishInput) (*Dish, error)
}

// MenuService defines couple-scoped CRUD over weekly menu items.
type MenuService interface {
	List(ctx context.Context, coupleID string) ([]*MenuItemWithCreator, error)
	Create(ctx context.Context, coupleID, userID string, input *MenuInput) (*MenuItem, error)
	Update(ctx context.Context, coupleID, menuID string, update *MenuUpdate) (*MenuItem, error)
	Delete(ctx context.Context, coupleID, menuID string) error
}

// DishRepository defines the interface for dish persistence operations.
type DishRepository interface {
	Create(ctx context.Context, dish *Dish) error
	List(ctx context.Context) ([]*Dish, error)
	GetByID(ctx context.Context, dishID string) (*Dish, error)
}

// MenuRepository defines the interface for menu persistence operations,
// scoped by the owning couple ID.
type MenuRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	ListByCoupleID(ctx context.Context, coupleID string) ([]*MenuItem, error)
	GetByID(ctx context.Context, menuID, coupleID string) (*MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
	DeleteByID(ctx context.Context, menuID, coupleID string) error
}
