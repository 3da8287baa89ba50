// Package meals defines the global dish catalog and the couple-scoped
// weekly menu entities and contracts.
package meals

// Dish is a catalog entry visible to every authenticated user. Dishes are
// not couple-scoped and duplicates are permitted.
type Dish struct {
	ID        string
	Name      string
	Category  string
	ImageURL  string
	RecipeURL string
}

// MenuItem plans a dish for one day/meal slot of a couple's week.
type MenuItem struct {
	ID        string
	DishID    string
	DayOfWeek string
	MealType  string
	CoupleID  string
	CreatedBy string
}

// MenuItemWithCreator is a list row annotated with the creator's display name.
type MenuItemWithCreator struct {
	MenuItem
	CreatedByName string
}

// DishInput carries the fields of a dish create call.
type DishInput struct {
	Name      string
	Category  string
	ImageURL  string
	RecipeURL string
}

// MenuInput carries the fields of a menu create call.
type MenuInput struct {
	DishID    string
	DayOfWeek string
	MealType  string
}

// MenuUpdate carries a partial update over the stored menu fields; nil
// fields keep their stored value.
type MenuUpdate struct {
	DishID    *string
	DayOfWeek *string
	MealType  *string
}
