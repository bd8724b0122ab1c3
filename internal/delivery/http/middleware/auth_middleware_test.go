package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cookbook/config"
	"cookbook/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAuthMiddleware builds the middleware around a real token service.
// Access and refresh secrets are deliberately identical so a refresh token
// passes signature verification and exercises the token-type check.
func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-shared-secret"
	cfg.SecretKey.Refresh = "test-shared-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc, cfg), cfg
}

// invokeAuthenticate runs the middleware chain against a request carrying the
// given Authorization header and reports whether the next handler was reached.
func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	var gotUserID uuid.UUID
	next := func(c echo.Context) error {
		nextCalled = true
		gotUserID, _ = GetUserID(c)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextCalled, gotUserID
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, nextCalled, _ := invokeAuthenticate(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_NotBearerScheme(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, nextCalled, _ := invokeAuthenticate(t, m, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MalformedToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, nextCalled, _ := invokeAuthenticate(t, m, "Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_WrongSecret(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	otherCfg.SecretKey.Refresh = "a-different-secret"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	rec, nextCalled, _ := invokeAuthenticate(t, m, "Bearer "+accessToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	m, cfg := newTestAuthMiddleware(t)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Signature verifies (shared secret) but the type claim is "refresh".
	rec, nextCalled, _ := invokeAuthenticate(t, m, "Bearer "+refreshToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_ValidAccessToken(t *testing.T) {
	m, cfg := newTestAuthMiddleware(t)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID)
	require.NoError(t, err)

	rec, nextCalled, gotUserID := invokeAuthenticate(t, m, "Bearer "+accessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, gotUserID)
}
