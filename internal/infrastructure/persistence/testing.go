//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/domain/sessions"
	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"
	"github.com/TikhonFedorov/couple-app/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and every repository.
type TestContext struct {
	DB           *gorm.DB
	UserRepo     accounts.UserRepository
	CoupleRepo   accounts.CoupleRepository
	TodoRepo     todos.TodoRepository
	WishlistRepo wishlist.WishlistRepository
	DishRepo     meals.DishRepository
	MenuRepo     meals.MenuRepository
	SessionRepo  sessions.SessionRepository
}

// SetupTestDB initializes an in-memory SQLite database with the full schema
// and repositories. Cleanup is automatic when the connection closes.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	coupleRepo, err := NewGormCoupleRepository(db, log)
	require.NoError(t, err)
	todoRepo, err := NewGormTodoRepository(db, log)
	require.NoError(t, err)
	wishlistRepo, err := NewGormWishlistRepository(db, log)
	require.NoError(t, err)
	dishRepo, err := NewGormDishRepository(db, log)
	require.NoError(t, err)
	menuRepo, err := NewGormMenuRepository(db, log)
	require.NoError(t, err)
	sessionRepo, err := NewGormSessionRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:           db,
		UserRepo:     userRepo,
		CoupleRepo:   coupleRepo,
		TodoRepo:     todoRepo,
		WishlistRepo: wishlistRepo,
		DishRepo:     dishRepo,
		MenuRepo:     menuRepo,
		SessionRepo:  sessionRepo,
	}
}
