package v1

import (
	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"

	"github.com/gin-gonic/gin"
)

// BasePath is the URL prefix of the JSON API.
const BasePath = "/api"

// SetupRoutes sets up all the API routes.
func SetupRoutes(r *gin.Engine,
	sessionManager identity.Manager,
	userRepo accounts.UserRepository,
	authService accounts.AuthService,
	coupleService accounts.CoupleService,
	profileService accounts.ProfileService,
	todoService todos.TodoService,
	wishlistService wishlist.WishlistService,
	menuService meals.MenuService,
	dishService meals.DishService) {

	api := r.Group(BasePath)

	// Public routes
	authHandler := NewAuthHandler(authService, coupleService, sessionManager)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/couples", authHandler.ListCouples)

	// Authenticated routes
	authed := api.Group("", RequireAuth(sessionManager, userRepo))
	authed.POST("/logout", authHandler.Logout)

	profileHandler := NewProfileHandler(profileService)
	authed.GET("/profile", profileHandler.Get)
	authed.PUT("/profile", profileHandler.Update)

	todoHandler := NewTodoHandler(todoService)
	authed.GET("/todos", todoHandler.List)
	authed.POST("/todos", todoHandler.Create)
	authed.PUT("/todos/:id", todoHandler.Update)
	authed.DELETE("/todos/:id", todoHandler.Delete)

	wishlistHandler := NewWishlistHandler(wishlistService)
	authed.GET("/wishlist", wishlistHandler.List)
	authed.POST("/wishlist", wishlistHandler.Create)
	authed.PUT("/wishlist/:id", wishlistHandler.Update)
	authed.DELETE("/wishlist/:id", wishlistHandler.Delete)

	menuHandler := NewMenuHandler(menuService)
	authed.GET("/menu", menuHandler.List)
	authed.POST("/menu", menuHandler.Create)
	authed.PUT("/menu/:id", menuHandler.Update)
	authed.DELETE("/menu/:id", menuHandler.Delete)

	dishHandler := NewDishHandler(dishService)
	authed.GET("/dishes", dishHandler.List)
	authed.POST("/dishes", dishHandler.Create)
}
