package models

import (
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
)

// DishModel is the GORM database model for dishes (infrastructure concern)
type DishModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"type:varchar(120);not null"`
	Category  string `gorm:"type:varchar(80);not null"`
	ImageURL  string `gorm:"type:varchar(500)"`
	RecipeURL string `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (DishModel) TableName() string {
	return "dishes"
}

// ToDomain converts GORM model to domain entity
func (m *DishModel) ToDomain() *meals.Dish {
	return &meals.Dish{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		ImageURL:  m.ImageURL,
		RecipeURL: m.RecipeURL,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DishModel) FromDomain(d *meals.Dish) {
	m.ID = d.ID
	m.Name = d.Name
	m.Category = d.Category
	m.ImageURL = d.ImageURL
	m.RecipeURL = d.RecipeURL
}
