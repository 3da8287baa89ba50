package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupStaticFallback serves the single-page frontend for every route the
// API does not own. Paths that resolve to a file under staticDir are served
// directly; anything else gets index.html so client-side routing works.
// Unknown /api paths stay JSON errors instead of falling back to HTML.
func SetupStaticFallback(r *gin.Engine, staticDir string) {
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, BasePath+"/") || ctx.Request.URL.Path == BasePath {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+ctx.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			ctx.File(requested)
			return
		}

		ctx.File(filepath.Join(staticDir, "index.html"))
	})
}
