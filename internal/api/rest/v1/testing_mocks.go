//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, reg *accounts.Registration) (*accounts.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*accounts.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockCoupleService is a mock implementation of CoupleService
type MockCoupleService struct {
	mock.Mock
}

func (m *MockCoupleService) List(ctx context.Context) ([]*accounts.Couple, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Couple), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockTodoService is a mock implementation of TodoService
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) List(ctx context.Context, coupleID string) ([]*todos.TodoWithCreator, error) {
	args := m.Called(ctx, coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todos.TodoWithCreator), args.Error(1)
}

func (m *MockTodoService) Create(ctx context.Context, coupleID, userID string, input *todos.TodoInput) (*todos.TodoItem, error) {
	args := m.Called(ctx, coupleID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todos.TodoItem), args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, coupleID, todoID string, update *todos.TodoUpdate) (*todos.TodoItem, error) {
	args := m.Called(ctx, coupleID, todoID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todos.TodoItem), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, coupleID, todoID string) error {
	args := m.Called(ctx, coupleID, todoID)
	return args.Error(0)
}

// MockWishlistService is a mock implementation of WishlistService
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) List(ctx context.Context, coupleID string) ([]*wishlist.WishWithCreator, error) {
	args := m.Called(ctx, coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*wishlist.WishWithCreator), args.Error(1)
}

func (m *MockWishlistService) Create(ctx context.Context, coupleID, userID string, input *wishlist.WishInput) (*wishlist.WishlistItem, error) {
	args := m.Called(ctx, coupleID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Update(ctx context.Context, coupleID, wishID string, update *wishlist.WishUpdate) (*wishlist.WishlistItem, error) {
	args := m.Called(ctx, coupleID, wishID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Delete(ctx context.Context, coupleID, wishID string) error {
	args := m.Called(ctx, coupleID, wishID)
	return args.Error(0)
}

// MockMenuService is a mock implementation of MenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) List(ctx context.Context, coupleID string) ([]*meals.MenuItemWithCreator, error) {
	args := m.Called(ctx, coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*meals.MenuItemWithCreator), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, coupleID, userID string, input *meals.MenuInput) (*meals.MenuItem, error) {
	args := m.Called(ctx, coupleID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meals.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, coupleID, menuID string, update *meals.MenuUpdate) (*meals.MenuItem, error) {
	args := m.Called(ctx, coupleID, menuID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meals.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, coupleID, menuID string) error {
	args := m.Called(ctx, coupleID, menuID)
	return args.Error(0)
}

// MockDishService is a mock implementation of DishService
type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) List(ctx context.Context) ([]*meals.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*meals.Dish), args.Error(1)
}

func (m *MockDishService) Create(ctx context.Context, input *meals.DishInput) (*meals.Dish, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meals.Dish), args.Error(1)
}

// MockSessionManager is a mock implementation of identity.Manager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Issue(c *gin.Context, userID string) error {
	args := m.Called(c, userID)
	return args.Error(0)
}

func (m *MockSessionManager) Resolve(c *gin.Context) (string, error) {
	args := m.Called(c)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Clear(c *gin.Context) error {
	args := m.Called(c)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of accounts.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *accounts.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*accounts.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *accounts.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountByCoupleID(ctx context.Context, coupleID string) (int64, error) {
	args := m.Called(ctx, coupleID)
	return args.Get(0).(int64), args.Error(1)
}
