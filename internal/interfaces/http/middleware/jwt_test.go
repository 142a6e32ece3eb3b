package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notaventas/backend/internal/infrastructure/auth"
	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "middleware-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "notaventas-test",
	})
}

func newTestEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw)
	engine.GET("/protegido", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"usuario": GetJWTUsername(c), "es_admin": GetJWTIsAdmin(c)})
	})
	return engine
}

func issueTokens(t *testing.T, jwtService *auth.JWTService, isAdmin bool) *auth.TokenPair {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "vendedor1",
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)
	return pair
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := testJWTService()

	t.Run("accepts bearer token", func(t *testing.T) {
		engine := newTestEngine(JWTAuthMiddleware(jwtService))
		pair := issueTokens(t, jwtService, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "vendedor1")
	})

	t.Run("accepts token from cookie", func(t *testing.T) {
		engine := newTestEngine(JWTAuthMiddleware(jwtService))
		pair := issueTokens(t, jwtService, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		engine := newTestEngine(JWTAuthMiddleware(jwtService))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		engine := newTestEngine(JWTAuthMiddleware(jwtService))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer no-es-un-token")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects refresh token on protected route", func(t *testing.T) {
		engine := newTestEngine(JWTAuthMiddleware(jwtService))
		pair := issueTokens(t, jwtService, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects blacklisted token", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		cfg := DefaultJWTConfig(jwtService)
		cfg.TokenBlacklist = blacklist
		engine := newTestEngine(JWTAuthMiddlewareWithConfig(cfg))

		pair := issueTokens(t, jwtService, false)
		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_REVOKED")
	})

	t.Run("skips configured paths", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		cfg := DefaultJWTConfig(jwtService)
		cfg.SkipPaths = []string{"/abierto"}
		engine.Use(JWTAuthMiddlewareWithConfig(cfg))
		engine.GET("/abierto", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abierto", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService := testJWTService()

	newAdminEngine := func() *gin.Engine {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(JWTAuthMiddleware(jwtService), RequireAdmin())
		engine.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })
		return engine
	}

	t.Run("allows admin", func(t *testing.T) {
		engine := newAdminEngine()
		pair := issueTokens(t, jwtService, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects non-admin", func(t *testing.T) {
		engine := newAdminEngine()
		pair := issueTokens(t, jwtService, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
