package wishlist

import "context"

// WishlistService defines couple-scoped CRUD over wishlist items.
type WishlistService interface {
	List(ctx context.Context, coupleID string) ([]*WishWithCreator, error)
	Create(ctx context.Context, coupleID, userID string, input *WishInput) (*WishlistItem, error)
	Update(ctx context.Context, coupleID, wishID string, update *WishUpdate) (*WishlistItem, error)
	Delete(ctx context.Context, coupleID, wishID string) error
}

// WishlistRepository defines the interface for wishlist persistence
// operations, scoped by the owning couple ID.
type WishlistRepository interface {
	Create(ctx context.Context, item *WishlistItem) error
	ListByCoupleID(ctx context.Context, coupleID string) ([]*WishlistItem, error)
	GetByID(ctx context.Context, wishID, coupleID string) (*WishlistItem, error)
	Update(ctx context.Context, item *WishlistItem) error
	DeleteByID(ctx context.Context, wishID, coupleID string) error
}
