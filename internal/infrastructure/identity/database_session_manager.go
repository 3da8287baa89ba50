package identity

import (
	"fmt"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/sessions"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// databaseSessionManager is the server-side backend: the cookie carries an
// opaque token resolved against the sessions table, and logout deletes the
// row so the token is dead immediately.
type databaseSessionManager struct {
	sessionRepo sessions.SessionRepository
	opts        cookieOptions
	lifetime    time.Duration
}

func newDatabaseSessionManager(settings config.SessionSettings, lifetime time.Duration, sessionRepo sessions.SessionRepository) Manager {
	return &databaseSessionManager{
		sessionRepo: sessionRepo,
		opts:        newCookieOptions(settings),
		lifetime:    lifetime,
	}
}

func (m *databaseSessionManager) Issue(c *gin.Context, userID string) error {
	// Logins are infrequent, so expired rows are pruned here instead of in
	// a background job.
	_, _ = m.sessionRepo.DeleteExpired(c.Request.Context())

	now := time.Now()
	session := &sessions.Session{
		ID:        uuid.New().String(),
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.lifetime),
	}

	if err := m.sessionRepo.Create(c.Request.Context(), session); err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}

	m.opts.set(c, session.Token, m.opts.maxAge)
	return nil
}

func (m *databaseSessionManager) Resolve(c *gin.Context) (string, error) {
	token, err := c.Cookie(m.opts.name)
	if err != nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	session, err := m.sessionRepo.GetByToken(c.Request.Context(), token)
	if err != nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	if session.Expired(time.Now()) {
		_ = m.sessionRepo.DeleteByToken(c.Request.Context(), token)
		return "", apperr.Unauthorized("Authentication required")
	}

	return session.UserID, nil
}

func (m *databaseSessionManager) Clear(c *gin.Context) error {
	token, err := c.Cookie(m.opts.name)
	if err == nil {
		if err := m.sessionRepo.DeleteByToken(c.Request.Context(), token); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}

	m.opts.set(c, "", -1)
	return nil
}
