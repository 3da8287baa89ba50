package identity

import (
	"fmt"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// cookieSessionManager is the stateless backend: the cookie value is a
// signed token carrying the user ID and expiry, nothing is stored
// server-side and logout simply drops the cookie.
type cookieSessionManager struct {
	jwtManager *JWTManager
	opts       cookieOptions
}

func newCookieSessionManager(settings config.SessionSettings, lifetime time.Duration) Manager {
	return &cookieSessionManager{
		jwtManager: NewJWTManager(settings.SecretKey, lifetime),
		opts:       newCookieOptions(settings),
	}
}

func (m *cookieSessionManager) Issue(c *gin.Context, userID string) error {
	token, err := m.jwtManager.Generate(userID)
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}

	m.opts.set(c, token, m.opts.maxAge)
	return nil
}

func (m *cookieSessionManager) Resolve(c *gin.Context) (string, error) {
	token, err := c.Cookie(m.opts.name)
	if err != nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	claims, err := m.jwtManager.Validate(token)
	if err != nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	return claims.UserID, nil
}

func (m *cookieSessionManager) Clear(c *gin.Context) error {
	m.opts.set(c, "", -1)
	return nil
}
