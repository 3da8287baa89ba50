package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// DishHandler defines the interface for handling dish catalog operations
type DishHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
}

// dishHandler struct holds the services
type dishHandler struct {
	dishService meals.DishService
}

// NewDishHandler creates a new DishHandler
func NewDishHandler(dishService meals.DishService) DishHandler {
	return &dishHandler{dishService: dishService}
}

// List returns the global dish catalog.
func (handler *dishHandler) List(ctx *gin.Context) {
	dishes, err := handler.dishService.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := []DishResponse{}
	for _, dish := range dishes {
		listResponse = append(listResponse, DishResponse{
			ID:        dish.ID,
			Name:      dish.Name,
			Category:  dish.Category,
			ImageURL:  dish.ImageURL,
			RecipeURL: dish.RecipeURL,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create adds a dish to the catalog.
func (handler *dishHandler) Create(ctx *gin.Context) {
	var req DishCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	dish, err := handler.dishService.Create(ctx, &meals.DishInput{
		Name:      req.Name,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		RecipeURL: req.RecipeURL,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, DishResponse{
		ID:        dish.ID,
		Name:      dish.Name,
		Category:  dish.Category,
		ImageURL:  dish.ImageURL,
		RecipeURL: dish.RecipeURL,
	})
}
