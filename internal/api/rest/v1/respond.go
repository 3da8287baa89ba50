// Package v1 implements the JSON API under /api. Handlers translate HTTP
// requests into service calls and domain errors into error bodies.
package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// respondError writes the JSON error body for a failed service call. Domain
// errors keep their message; anything else becomes an opaque 500.
func respondError(ctx *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	ctx.JSON(status, ErrorResponse{Error: message})
}

// nonNil guards list fields so the JSON encoder emits [] instead of null.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
