//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence"
	"github.com/TikhonFedorov/couple-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	ctx            *persistence.TestContext
	profileService accounts.ProfileService
	user           *accounts.User
}

func setupProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	ctx := persistence.SetupTestDB(t)
	log := testutil.SetupTestLogger(t)

	authService, err := NewAuthService(ctx.UserRepo, ctx.CoupleRepo, identity.NewBcryptHasher(), log)
	require.NoError(t, err)

	profileService, err := NewProfileService(ctx.UserRepo, log)
	require.NoError(t, err)

	user, err := authService.Register(context.Background(), &accounts.Registration{
		Username:    "anna",
		Password:    "secret",
		Name:        "Anna",
		Email:       "anna@example.com",
		Description: "original description",
		Skills:      []string{"Excel", "UX"},
		About:       []string{"loves hiking", "reads, a lot"},
	})
	require.NoError(t, err)

	return &profileFixture{ctx: ctx, profileService: profileService, user: user}
}

// Skills are comma-joined and about entries pipe-joined in storage; both
// must survive unchanged, including a comma inside an about entry.
func TestProfileService_ListFieldsRoundTrip(t *testing.T) {
	f := setupProfileFixture(t)

	profile, err := f.profileService.Get(context.Background(), f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Excel", "UX"}, profile.Skills)
	assert.Equal(t, []string{"loves hiking", "reads, a lot"}, profile.About)
}

func TestProfileService_PartialUpdatePreservesOmittedFields(t *testing.T) {
	f := setupProfileFixture(t)
	ctx := context.Background()

	name := "Anna K"
	_, err := f.profileService.Update(ctx, f.user.ID, &accounts.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	profile, err := f.profileService.Get(ctx, f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Anna K", profile.Name)
	assert.Equal(t, "anna@example.com", profile.Email)
	assert.Equal(t, "original description", profile.Description)
	assert.Equal(t, []string{"Excel", "UX"}, profile.Skills)
	assert.Equal(t, []string{"loves hiking", "reads, a lot"}, profile.About)
}

func TestProfileService_UpdateReplacesLists(t *testing.T) {
	f := setupProfileFixture(t)
	ctx := context.Background()

	_, err := f.profileService.Update(ctx, f.user.ID, &accounts.ProfileUpdate{
		Skills: []string{"Go"},
	})
	require.NoError(t, err)

	profile, err := f.profileService.Get(ctx, f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, profile.Skills)
	assert.Equal(t, []string{"loves hiking", "reads, a lot"}, profile.About)
}

func TestProfileService_UpdateCanClearListExplicitly(t *testing.T) {
	f := setupProfileFixture(t)
	ctx := context.Background()

	_, err := f.profileService.Update(ctx, f.user.ID, &accounts.ProfileUpdate{
		Skills: []string{},
	})
	require.NoError(t, err)

	profile, err := f.profileService.Get(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
}
