package persistence

import (
	"fmt"

	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every application table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CoupleModel{},
		&models.UserModel{},
		&models.DishModel{},
		&models.TodoItemModel{},
		&models.WishlistItemModel{},
		&models.MenuItemModel{},
		&models.SessionModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
