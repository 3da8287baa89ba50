package identity

import (
	"fmt"
	"net/http"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/sessions"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Manager issues, resolves and destroys the session carried by the auth
// cookie. Resolve returns the authenticated user ID; failures are reported
// as unauthorized by the callers.
type Manager interface {
	Issue(c *gin.Context, userID string) error
	Resolve(c *gin.Context) (string, error)
	Clear(c *gin.Context) error
}

// cookieOptions are the attributes shared by both backends.
type cookieOptions struct {
	name     string
	maxAge   int
	secure   bool
	sameSite http.SameSite
}

func newCookieOptions(settings config.SessionSettings) cookieOptions {
	return cookieOptions{
		name:     settings.CookieName,
		maxAge:   settings.LifetimeHours * 3600,
		secure:   settings.CookieSecure,
		sameSite: parseSameSite(settings.CookieSameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (o cookieOptions) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(o.sameSite)
	c.SetCookie(o.name, value, maxAge, "/", "", o.secure, true)
}

// NewSessionManager creates the session manager selected by the settings.
// The database backend needs a session repository; the cookie backend
// ignores it.
func NewSessionManager(settings config.SessionSettings, sessionRepo sessions.SessionRepository) (Manager, error) {
	lifetime := time.Duration(settings.LifetimeHours) * time.Hour

	switch settings.Backend {
	case config.SessionBackendCookie:
		return newCookieSessionManager(settings, lifetime), nil
	case config.SessionBackendDatabase:
		if sessionRepo == nil {
			return nil, fmt.Errorf("session repository is required for the database session backend")
		}
		return newDatabaseSessionManager(settings, lifetime, sessionRepo), nil
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", settings.Backend)
	}
}
