//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_RemoveOrphanCouples(t *testing.T) {
	ctx := persistence.SetupTestDB(t)
	log := testutil.SetupTestLogger(t)

	authService, err := NewAuthService(ctx.UserRepo, ctx.CoupleRepo, identity.NewBcryptHasher(), log)
	require.NoError(t, err)

	maintenanceService, err := NewMaintenanceService(ctx.CoupleRepo, log)
	require.NoError(t, err)

	// One populated couple, one orphan
	user, err := authService.Register(context.Background(), &accounts.Registration{
		Username: "anna", Password: "secret",
	})
	require.NoError(t, err)

	orphan := &accounts.Couple{ID: uuid.New().String(), Name: "abandoned"}
	require.NoError(t, ctx.CoupleRepo.Create(context.Background(), orphan))

	removed, err := maintenanceService.RemoveOrphanCouples(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = ctx.CoupleRepo.GetByID(context.Background(), orphan.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// The populated couple survives
	_, err = ctx.CoupleRepo.GetByID(context.Background(), user.CoupleID)
	require.NoError(t, err)

	// Safe to run again
	removed, err = maintenanceService.RemoveOrphanCouples(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}
