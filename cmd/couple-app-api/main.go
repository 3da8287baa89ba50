// cmd/couple-app-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/TikhonFedorov/couple-app/internal/api/rest/v1"
	"github.com/TikhonFedorov/couple-app/internal/app"
	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/persistence"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"
	"github.com/TikhonFedorov/couple-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Remove couples left behind by interrupted registrations before
	// accepting requests
	if _, err := deps.services.maintenance.RemoveOrphanCouples(context.Background()); err != nil {
		return fmt.Errorf("failed to remove orphan couples: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services       *appServices
	sessionManager identity.Manager
	userRepo       accounts.UserRepository
}

type appServices struct {
	auth        accounts.AuthService
	couple      accounts.CoupleService
	profile     accounts.ProfileService
	maintenance accounts.MaintenanceService
	todo        todos.TodoService
	wishlist    wishlist.WishlistService
	menu        meals.MenuService
	dish        meals.DishService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	coupleRepo, err := persistence.NewGormCoupleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create couple repository: %w", err)
	}

	todoRepo, err := persistence.NewGormTodoRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo repository: %w", err)
	}

	wishlistRepo, err := persistence.NewGormWishlistRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist repository: %w", err)
	}

	dishRepo, err := persistence.NewGormDishRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dish repository: %w", err)
	}

	menuRepo, err := persistence.NewGormMenuRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	// Initialize session handling
	sessionManager, err := identity.NewSessionManager(cfg.Session, sessionRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(userRepo, coupleRepo, todoRepo, wishlistRepo, dishRepo, menuRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:       services,
		sessionManager: sessionManager,
		userRepo:       userRepo,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo accounts.UserRepository,
	coupleRepo accounts.CoupleRepository,
	todoRepo todos.TodoRepository,
	wishlistRepo wishlist.WishlistRepository,
	dishRepo meals.DishRepository,
	menuRepo meals.MenuRepository,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, coupleRepo, identity.NewBcryptHasher(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	coupleService, err := app.NewCoupleService(coupleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create couple service: %w", err)
	}

	profileService, err := app.NewProfileService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	maintenanceService, err := app.NewMaintenanceService(coupleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	todoService, err := app.NewTodoService(todoRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	wishlistService, err := app.NewWishlistService(wishlistRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist service: %w", err)
	}

	menuService, err := app.NewMenuService(menuRepo, dishRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}

	dishService, err := app.NewDishService(dishRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dish service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:        authService,
		couple:      coupleService,
		profile:     profileService,
		maintenance: maintenanceService,
		todo:        todoService,
		wishlist:    wishlistService,
		menu:        menuService,
		dish:        dishService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(v1.NewCORSMiddleware(cfg.CORS.AllowedOrigins))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.sessionManager,
		deps.userRepo,
		deps.services.auth,
		deps.services.couple,
		deps.services.profile,
		deps.services.todo,
		deps.services.wishlist,
		deps.services.menu,
		deps.services.dish,
	)

	// Serve the single-page frontend for everything else
	v1.SetupStaticFallback(r, cfg.Server.StaticDir)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
