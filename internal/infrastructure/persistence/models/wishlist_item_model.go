package models

import (
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
)

// WishlistItemModel is the GORM database model for wishlist items (infrastructure concern)
type WishlistItemModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(20);not null"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	CoupleID    string    `gorm:"not null;index;type:uuid"`
	CreatedBy   string    `gorm:"not null;type:uuid"`
}

// TableName specifies the table name for GORM
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ToDomain converts GORM model to domain entity
func (m *WishlistItemModel) ToDomain() *wishlist.WishlistItem {
	return &wishlist.WishlistItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
		CoupleID:    m.CoupleID,
		CreatedBy:   m.CreatedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WishlistItemModel) FromDomain(w *wishlist.WishlistItem) {
	m.ID = w.ID
	m.Title = w.Title
	m.Description = w.Description
	m.Priority = w.Priority
	m.Completed = w.Completed
	m.CreatedAt = w.CreatedAt
	m.CoupleID = w.CoupleID
	m.CreatedBy = w.CreatedBy
}
