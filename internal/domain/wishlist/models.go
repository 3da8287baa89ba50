// Package wishlist defines the couple-scoped wishlist entities and contracts.
package wishlist

import "time"

// DefaultPriority is applied when a wish is created without a priority.
const DefaultPriority = "medium"

// WishlistItem is a shared wish owned by exactly one couple. Priority is a
// free-form string ("low", "medium", "high" in the frontend).
type WishlistItem struct {
	ID          string
	Title       string
	Description string
	Priority    string
	Completed   bool
	CreatedAt   time.Time
	CoupleID    string
	CreatedBy   string
}

// WishWithCreator is a list row annotated with the creator's display name.
type WishWithCreator struct {
	WishlistItem
	CreatedByName string
}

// WishInput carries the fields of a create call.
type WishInput struct {
	Title       string
	Description string
	Priority    string
}

// WishUpdate carries a partial update; nil fields keep their stored value.
type WishUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	Completed   *bool
}
