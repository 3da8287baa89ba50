//go:build unit
// +build unit

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/sessions"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"
	"github.com/TikhonFedorov/couple-app/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessionRepository is a mock implementation of sessions.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *sessions.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*sessions.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func cookieSettings() config.SessionSettings {
	return config.SessionSettings{
		Backend:        config.SessionBackendCookie,
		SecretKey:      "test-secret",
		CookieName:     "session",
		CookieSameSite: "lax",
		LifetimeHours:  1,
	}
}

func databaseSettings() config.SessionSettings {
	return config.SessionSettings{
		Backend:        config.SessionBackendDatabase,
		CookieName:     "session",
		CookieSameSite: "lax",
		LifetimeHours:  1,
	}
}

// issuedCookie extracts the session cookie written by Issue.
func issuedCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestNewSessionManager_SelectsBackend(t *testing.T) {
	manager, err := NewSessionManager(cookieSettings(), nil)
	require.NoError(t, err)
	assert.IsType(t, &cookieSessionManager{}, manager)

	manager, err = NewSessionManager(databaseSettings(), new(MockSessionRepository))
	require.NoError(t, err)
	assert.IsType(t, &databaseSessionManager{}, manager)
}

func TestNewSessionManager_DatabaseBackendRequiresRepo(t *testing.T) {
	_, err := NewSessionManager(databaseSettings(), nil)
	assert.Error(t, err)
}

func TestNewSessionManager_UnknownBackend(t *testing.T) {
	settings := cookieSettings()
	settings.Backend = "redis"

	_, err := NewSessionManager(settings, nil)
	assert.Error(t, err)
}

func TestCookieSessionManager_IssueAndResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := NewSessionManager(cookieSettings(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/login", nil)

	require.NoError(t, manager.Issue(c, "user-1"))
	cookie := issuedCookie(t, w, "session")
	assert.True(t, cookie.HttpOnly)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/api/profile", nil)
	c2.Request.AddCookie(cookie)

	userID, err := manager.Resolve(c2)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestCookieSessionManager_ResolveWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := NewSessionManager(cookieSettings(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/profile", nil)

	_, err = manager.Resolve(c)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestCookieSessionManager_ResolveTamperedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := NewSessionManager(cookieSettings(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/profile", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session", Value: "tampered"})

	_, err = manager.Resolve(c)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestCookieSessionManager_ClearDropsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager, err := NewSessionManager(cookieSettings(), nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/logout", nil)

	require.NoError(t, manager.Clear(c))

	cookie := issuedCookie(t, w, "session")
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}

func TestDatabaseSessionManager_IssueAndResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockSessionRepository)
	manager, err := NewSessionManager(databaseSettings(), mockRepo)
	require.NoError(t, err)

	mockRepo.On("DeleteExpired", mock.Anything).Return(int64(0), nil)

	var stored *sessions.Session
	mockRepo.
		On("Create", mock.Anything, mock.AnythingOfType("*sessions.Session")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*sessions.Session)
		}).
		Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/login", nil)

	require.NoError(t, manager.Issue(c, "user-1"))
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)

	cookie := issuedCookie(t, w, "session")
	assert.Equal(t, stored.Token, cookie.Value)

	mockRepo.On("GetByToken", mock.Anything, stored.Token).Return(stored, nil)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/api/profile", nil)
	c2.Request.AddCookie(cookie)

	userID, err := manager.Resolve(c2)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestDatabaseSessionManager_ResolveExpiredSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockSessionRepository)
	manager, err := NewSessionManager(databaseSettings(), mockRepo)
	require.NoError(t, err)

	expired := &sessions.Session{
		ID:        "session-1",
		Token:     "token-1",
		UserID:    "user-1",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	mockRepo.On("GetByToken", mock.Anything, "token-1").Return(expired, nil)
	mockRepo.On("DeleteByToken", mock.Anything, "token-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/profile", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session", Value: "token-1"})

	_, err = manager.Resolve(c)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	mockRepo.AssertCalled(t, "DeleteByToken", mock.Anything, "token-1")
}

func TestDatabaseSessionManager_ClearDeletesRow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockSessionRepository)
	manager, err := NewSessionManager(databaseSettings(), mockRepo)
	require.NoError(t, err)

	mockRepo.On("DeleteByToken", mock.Anything, "token-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session", Value: "token-1"})

	require.NoError(t, manager.Clear(c))
	mockRepo.AssertExpectations(t)

	cookie := issuedCookie(t, w, "session")
	assert.Empty(t, cookie.Value)
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("strict"))
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("lax"))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite(""))
}
