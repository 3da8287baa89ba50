package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ProfileHandler defines the interface for handling profile operations
type ProfileHandler interface {
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// profileHandler struct holds the services
type profileHandler struct {
	profileService accounts.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService accounts.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

// Get returns the caller's own profile.
func (handler *profileHandler) Get(ctx *gin.Context) {
	userID, _ := callerIdentity(ctx)

	user, err := handler.profileService.Get(ctx, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ProfileResponse{
		Username:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		Description: user.Description,
		Skills:      nonNil(user.Skills),
		About:       nonNil(user.About),
	})
}

// Update applies a partial profile update. Absent fields keep their stored
// value, including skills and about.
func (handler *profileHandler) Update(ctx *gin.Context) {
	userID, _ := callerIdentity(ctx)

	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	_, err := handler.profileService.Update(ctx, userID, &accounts.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		AvatarURL:   req.AvatarURL,
		Description: req.Description,
		Skills:      req.Skills,
		About:       req.About,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Profile updated"})
}
