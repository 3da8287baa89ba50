//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wishlistFixture struct {
	ctx             *persistence.TestContext
	wishlistService wishlist.WishlistService
	user            *accounts.User
}

func setupWishlistFixture(t *testing.T) *wishlistFixture {
	t.Helper()

	ctx := persistence.SetupTestDB(t)
	log := testutil.SetupTestLogger(t)

	authService, err := NewAuthService(ctx.UserRepo, ctx.CoupleRepo, identity.NewBcryptHasher(), log)
	require.NoError(t, err)

	wishlistService, err := NewWishlistService(ctx.WishlistRepo, ctx.UserRepo, log)
	require.NoError(t, err)

	user, err := authService.Register(context.Background(), &accounts.Registration{
		Username: "anna", Password: "secret", Name: "Anna",
	})
	require.NoError(t, err)

	return &wishlistFixture{ctx: ctx, wishlistService: wishlistService, user: user}
}

func TestWishlistService_Create_DefaultsPriority(t *testing.T) {
	f := setupWishlistFixture(t)

	created, err := f.wishlistService.Create(context.Background(), f.user.CoupleID, f.user.ID, &wishlist.WishInput{
		Title: "New bicycle",
	})
	require.NoError(t, err)
	assert.Equal(t, wishlist.DefaultPriority, created.Priority)
}

func TestWishlistService_Create_KeepsExplicitPriority(t *testing.T) {
	f := setupWishlistFixture(t)

	created, err := f.wishlistService.Create(context.Background(), f.user.CoupleID, f.user.ID, &wishlist.WishInput{
		Title:    "Weekend trip",
		Priority: "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "high", created.Priority)
}

func TestWishlistService_Create_MissingTitle(t *testing.T) {
	f := setupWishlistFixture(t)

	_, err := f.wishlistService.Create(context.Background(), f.user.CoupleID, f.user.ID, &wishlist.WishInput{
		Priority: "low",
	})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestWishlistService_UpdateAndList(t *testing.T) {
	f := setupWishlistFixture(t)
	ctx := context.Background()

	created, err := f.wishlistService.Create(ctx, f.user.CoupleID, f.user.ID, &wishlist.WishInput{
		Title: "New bicycle",
	})
	require.NoError(t, err)

	priority := "low"
	updated, err := f.wishlistService.Update(ctx, f.user.CoupleID, created.ID, &wishlist.WishUpdate{
		Priority: &priority,
	})
	require.NoError(t, err)
	assert.Equal(t, "low", updated.Priority)
	assert.Equal(t, "New bicycle", updated.Title)

	items, err := f.wishlistService.List(ctx, f.user.CoupleID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Anna", items[0].CreatedByName)
}

func TestWishlistService_Delete_NotFoundTwice(t *testing.T) {
	f := setupWishlistFixture(t)
	ctx := context.Background()

	created, err := f.wishlistService.Create(ctx, f.user.CoupleID, f.user.ID, &wishlist.WishInput{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, f.wishlistService.Delete(ctx, f.user.CoupleID, created.ID))
	err = f.wishlistService.Delete(ctx, f.user.CoupleID, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
