package models

import (
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
)

// MenuItemModel is the GORM database model for menu items (infrastructure concern)
type MenuItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	DishID    string `gorm:"not null;index;type:uuid"`
	DayOfWeek string `gorm:"type:varchar(20);not null"`
	MealType  string `gorm:"type:varchar(20);not null"`
	CoupleID  string `gorm:"not null;index;type:uuid"`
	CreatedBy string `gorm:"not null;type:uuid"`
}

// TableName specifies the table name for GORM
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToDomain converts GORM model to domain entity
func (m *MenuItemModel) ToDomain() *meals.MenuItem {
	return &meals.MenuItem{
		ID:        m.ID,
		DishID:    m.DishID,
		DayOfWeek: m.DayOfWeek,
		MealType:  m.MealType,
		CoupleID:  m.CoupleID,
		CreatedBy: m.CreatedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MenuItemModel) FromDomain(item *meals.MenuItem) {
	m.ID = item.ID
	m.DishID = item.DishID
	m.DayOfWeek = item.DayOfWeek
	m.MealType = item.MealType
	m.CoupleID = item.CoupleID
	m.CreatedBy = item.CreatedBy
}
