package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/meals"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// MenuHandler defines the interface for handling weekly menu operations
type MenuHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// menuHandler struct holds the services
type menuHandler struct {
	menuService meals.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService meals.MenuService) MenuHandler {
	return &menuHandler{menuService: menuService}
}

// List returns the caller couple's weekly menu.
func (handler *menuHandler) List(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)

	items, err := handler.menuService.List(ctx, coupleID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := []MenuListResponse{}
	for _, item := range items {
		listResponse = append(listResponse, MenuListResponse{
			MenuResponse: MenuResponse{
				ID:        item.ID,
				DishID:    item.DishID,
				DayOfWeek: item.DayOfWeek,
				MealType:  item.MealType,
			},
			CreatedByName: item.CreatedByName,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create plans a dish for a day/meal slot of the caller's couple.
func (handler *menuHandler) Create(ctx *gin.Context) {
	userID, coupleID := callerIdentity(ctx)

	var req MenuCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.menuService.Create(ctx, coupleID, userID, &meals.MenuInput{
		DishID:    req.DishID,
		DayOfWeek: req.DayOfWeek,
		MealType:  req.MealType,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, MenuResponse{
		ID:        item.ID,
		DishID:    item.DishID,
		DayOfWeek: item.DayOfWeek,
		MealType:  item.MealType,
	})
}

// Update applies a partial update to one of the couple's menu items.
func (handler *menuHandler) Update(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	menuID := ctx.Param("id")

	var req MenuUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.menuService.Update(ctx, coupleID, menuID, &meals.MenuUpdate{
		DishID:    req.DishID,
		DayOfWeek: req.DayOfWeek,
		MealType:  req.MealType,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MenuResponse{
		ID:        item.ID,
		DishID:    item.DishID,
		DayOfWeek: item.DayOfWeek,
		MealType:  item.MealType,
	})
}

// Delete removes one of the couple's menu items.
func (handler *menuHandler) Delete(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	menuID := ctx.Param("id")

	if err := handler.menuService.Delete(ctx, coupleID, menuID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Menu item deleted"})
}
