//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealFixture struct {
	ctx         *persistence.TestContext
	dishService meals.DishService
	menuService meals.MenuService
	user        *accounts.User
}

func setupMealFixture(t *testing.T) *mealFixture {
	t.Helper()

	ctx := persistence.SetupTestDB(t)
	log := testutil.SetupTestLogger(t)

	authService, err := NewAuthService(ctx.UserRepo, ctx.CoupleRepo, identity.NewBcryptHasher(), log)
	require.NoError(t, err)

	dishService, err := NewDishService(ctx.DishRepo, log)
	require.NoError(t, err)

	menuService, err := NewMenuService(ctx.MenuRepo, ctx.DishRepo, ctx.UserRepo, log)
	require.NoError(t, err)

	user, err := authService.Register(context.Background(), &accounts.Registration{
		Username: "anna", Password: "secret", Name: "Anna",
	})
	require.NoError(t, err)

	return &mealFixture{ctx: ctx, dishService: dishService, menuService: menuService, user: user}
}

func TestDishService_CreateAndList(t *testing.T) {
	f := setupMealFixture(t)
	ctx := context.Background()

	created, err := f.dishService.Create(ctx, &meals.DishInput{
		Name:      "Borscht",
		Category:  "soup",
		RecipeURL: "https://example.com/borscht",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	dishes, err := f.dishService.List(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Borscht", dishes[0].Name)
}

func TestDishService_Create_MissingCategoryPersistsNothing(t *testing.T) {
	f := setupMealFixture(t)
	ctx := context.Background()

	_, err := f.dishService.Create(ctx, &meals.DishInput{Name: "Borscht"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	dishes, err := f.dishService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

// Duplicates are permitted, there is no uniqueness constraint on dish names.
func TestDishService_Create_AllowsDuplicates(t *testing.T) {
	f := setupMealFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.dishService.Create(ctx, &meals.DishInput{Name: "Borscht", Category: "soup"})
		require.NoError(t, err)
	}

	dishes, err := f.dishService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
}

func TestMenuService_CreateRequiresExistingDish(t *testing.T) {
	f := setupMealFixture(t)

	_, err := f.menuService.Create(context.Background(), f.user.CoupleID, f.user.ID, &meals.MenuInput{
		DishID:    "no-such-dish",
		DayOfWeek: "monday",
		MealType:  "dinner",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestMenuService_CreateRequiresAllFields(t *testing.T) {
	f := setupMealFixture(t)

	_, err := f.menuService.Create(context.Background(), f.user.CoupleID, f.user.ID, &meals.MenuInput{
		DayOfWeek: "monday",
		MealType:  "dinner",
	})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestMenuService_CreateUpdateDelete(t *testing.T) {
	f := setupMealFixture(t)
	ctx := context.Background()

	dish, err := f.dishService.Create(ctx, &meals.DishInput{Name: "Borscht", Category: "soup"})
	require.NoError(t, err)

	created, err := f.menuService.Create(ctx, f.user.CoupleID, f.user.ID, &meals.MenuInput{
		DishID:    dish.ID,
		DayOfWeek: "monday",
		MealType:  "dinner",
	})
	require.NoError(t, err)

	day := "tuesday"
	updated, err := f.menuService.Update(ctx, f.user.CoupleID, created.ID, &meals.MenuUpdate{DayOfWeek: &day})
	require.NoError(t, err)
	assert.Equal(t, "tuesday", updated.DayOfWeek)
	assert.Equal(t, dish.ID, updated.DishID)
	assert.Equal(t, "dinner", updated.MealType)

	items, err := f.menuService.List(ctx, f.user.CoupleID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Anna", items[0].CreatedByName)

	require.NoError(t, f.menuService.Delete(ctx, f.user.CoupleID, created.ID))

	items, err = f.menuService.List(ctx, f.user.CoupleID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuService_UpdateRejectsUnknownDish(t *testing.T) {
	f := setupMealFixture(t)
	ctx := context.Background()

	dish, err := f.dishService.Create(ctx, &meals.DishInput{Name: "Borscht", Category: "soup"})
	require.NoError(t, err)

	created, err := f.menuService.Create(ctx, f.user.CoupleID, f.user.ID, &meals.MenuInput{
		DishID:    dish.ID,
		DayOfWeek: "monday",
		MealType:  "dinner",
	})
	require.NoError(t, err)

	bogus := "no-such-dish"
	_, err = f.menuService.Update(ctx, f.user.CoupleID, created.ID, &meals.MenuUpdate{DishID: &bogus})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
