package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/wishlist"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// WishlistHandler defines the interface for handling wishlist operations
type WishlistHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// wishlistHandler struct holds the services
type wishlistHandler struct {
	wishlistService wishlist.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService wishlist.WishlistService) WishlistHandler {
	return &wishlistHandler{wishlistService: wishlistService}
}

// List returns the caller couple's wishes.
func (handler *wishlistHandler) List(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)

	items, err := handler.wishlistService.List(ctx, coupleID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := []WishListResponse{}
	for _, item := range items {
		listResponse = append(listResponse, WishListResponse{
			WishResponse: WishResponse{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				Priority:    item.Priority,
				Completed:   item.Completed,
			},
			CreatedByName: item.CreatedByName,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create adds a wish for the caller's couple.
func (handler *wishlistHandler) Create(ctx *gin.Context) {
	userID, coupleID := callerIdentity(ctx)

	var req WishCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.wishlistService.Create(ctx, coupleID, userID, &wishlist.WishInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, WishResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Priority:    item.Priority,
		Completed:   item.Completed,
	})
}

// Update applies a partial update to one of the couple's wishes.
func (handler *wishlistHandler) Update(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	wishID := ctx.Param("id")

	var req WishUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.wishlistService.Update(ctx, coupleID, wishID, &wishlist.WishUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WishResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Priority:    item.Priority,
		Completed:   item.Completed,
	})
}

// Delete removes one of the couple's wishes.
func (handler *wishlistHandler) Delete(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	wishID := ctx.Param("id")

	if err := handler.wishlistService.Delete(ctx, coupleID, wishID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Wish deleted"})
}
