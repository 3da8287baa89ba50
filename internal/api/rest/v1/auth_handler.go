package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling auth-related operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	ListCouples(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService    accounts.AuthService
	coupleService  accounts.CoupleService
	sessionManager identity.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService accounts.AuthService, coupleService accounts.CoupleService, sessionManager identity.Manager) AuthHandler {
	return &authHandler{
		authService:    authService,
		coupleService:  coupleService,
		sessionManager: sessionManager,
	}
}

// Register creates an account and logs the new user in.
func (handler *authHandler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	user, err := handler.authService.Register(ctx, &accounts.Registration{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		Email:       req.Email,
		AvatarURL:   req.AvatarURL,
		Description: req.Description,
		Skills:      req.Skills,
		About:       req.About,
		CoupleID:    req.CoupleID,
		CoupleName:  req.CoupleName,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.sessionManager.Issue(ctx, user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{Message: "Registration successful", UserID: user.ID})
}

// Login verifies credentials and issues the session cookie.
func (handler *authHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	user, err := handler.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.sessionManager.Issue(ctx, user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{Message: "Login successful", UserID: user.ID})
}

// Logout destroys the caller's session.
func (handler *authHandler) Logout(ctx *gin.Context) {
	if err := handler.sessionManager.Clear(ctx); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// ListCouples lists every couple so a second partner can pick one to join.
func (handler *authHandler) ListCouples(ctx *gin.Context) {
	couples, err := handler.coupleService.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := []CoupleResponse{}
	for _, couple := range couples {
		listResponse = append(listResponse, CoupleResponse{ID: couple.ID, Name: couple.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
