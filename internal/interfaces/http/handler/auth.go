package handler

import (
	"net/http"
	"strings"

	identityapp "github.com/notaventas/backend/internal/application/identity"
	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/notaventas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refresh_token"

// AuthHandler handles login, refresh, logout and password changes. Tokens
// travel both in the JSON body (for API clients) and as cookies (for the
// SPA).
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	cookies     config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, cookies config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/cambiar-clave", h.ChangePassword)
		authGroup.POST("/verificar-clave", h.VerifyPassword)
		authGroup.GET("/perfil", h.Profile)
	}
}

// Login authenticates a user and sets the token cookies
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setTokenCookies(c, session)
	h.Success(c, session)
}

// Refresh rotates the token pair. The refresh token comes from the cookie
// or, failing that, the request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshTokenCookie)
	if refreshToken == "" {
		var req identityapp.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		h.Unauthorized(c, "Missing refresh token")
		return
	}

	session, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearTokenCookies(c)
		h.HandleError(c, err)
		return
	}

	h.setTokenCookies(c, session)
	h.Success(c, session)
}

// Logout revokes the session and clears the token cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken, err := middleware.ExtractToken(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	refreshToken, _ := c.Cookie(refreshTokenCookie)

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		h.HandleError(c, err)
		return
	}

	h.clearTokenCookies(c)
	h.Success(c, gin.H{"mensaje": "Sesión cerrada"})
}

// ChangePassword changes the caller's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.clearTokenCookies(c)
	h.Success(c, gin.H{"mensaje": "Clave actualizada"})
}

// VerifyPassword re-confirms the caller's password before a sensitive
// action such as deleting records
func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.authService.VerifyPassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"valida": true})
}

// Profile returns the claims of the authenticated user
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, gin.H{
		"id":       claims.UserID,
		"usuario":  claims.Username,
		"es_admin": claims.IsAdmin,
	})
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, session *identityapp.LoginResponse) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.AccessTokenCookie, session.AccessToken,
		cookieMaxAge(session.AccessTokenExpiresAt), h.cookies.Path, h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(refreshTokenCookie, session.RefreshToken,
		cookieMaxAge(session.RefreshTokenExpiresAt), h.cookies.Path, h.cookies.Domain, h.cookies.Secure, true)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.AccessTokenCookie, "", -1, h.cookies.Path, h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, h.cookies.Path, h.cookies.Domain, h.cookies.Secure, true)
}

func (h *AuthHandler) sameSite() http.SameSite {
	switch strings.ToLower(h.cookies.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
