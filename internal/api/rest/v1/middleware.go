package v1

import (
	"net/http"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
	"github.com/TikhonFedorov/couple-app/internal/infrastructure/identity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Keys under which the auth middleware stores the caller's identity in the
// request context.
const (
	ContextUserID   = "user_id"
	ContextCoupleID = "couple_id"
)

// RequireAuth resolves the session cookie and loads the caller's account.
// Requests without a valid session are rejected with 401 before the handler
// runs. The user lookup also pins the couple ID for couple-scoped handlers.
func RequireAuth(sessionManager identity.Manager, userRepo accounts.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := sessionManager.Resolve(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		user, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		ctx.Set(ContextUserID, user.ID)
		ctx.Set(ContextCoupleID, user.CoupleID)
		ctx.Next()
	}
}

// callerIdentity reads the identity stored by RequireAuth.
func callerIdentity(ctx *gin.Context) (userID, coupleID string) {
	return ctx.GetString(ContextUserID), ctx.GetString(ContextCoupleID)
}

// NewCORSMiddleware builds the CORS layer for the configured frontend
// origins. Credentials are allowed so the session cookie travels with
// cross-origin requests, and preflight OPTIONS requests are answered
// with 200.
func NewCORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:              allowedOrigins,
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:             []string{"Content-Length", "Content-Type"},
		AllowCredentials:          true,
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}
