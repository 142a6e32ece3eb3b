package handler

import (
	identityapp "github.com/notaventas/backend/internal/application/identity"
	"github.com/notaventas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles back-office account administration. All routes are
// admin-only.
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user administration routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/usuarios", middleware.RequireAdmin())
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.POST("/:id/otorgar-admin", h.GrantAdmin)
		users.POST("/:id/revocar-admin", h.RevokeAdmin)
		users.POST("/:id/activar", h.Activate)
		users.POST("/:id/desactivar", h.Deactivate)
		users.POST("/:id/restablecer-clave", h.ResetPassword)
		users.DELETE("/:id", h.Delete)
	}
}

// Create creates a new account
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.CreatedBy = actingUser(c)

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// List returns accounts with pagination and filters
func (h *UserHandler) List(c *gin.Context) {
	var filter identityapp.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns an account by ID
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Update updates an account's profile
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identityapp.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.UpdatedBy = actingUser(c)

	user, err := h.userService.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// GrantAdmin gives an account administrative privileges
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GrantAdmin(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// RevokeAdmin removes administrative privileges
func (h *UserHandler) RevokeAdmin(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.RevokeAdmin(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Activate re-enables a deactivated account
func (h *UserHandler) Activate(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.Activate(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Deactivate disables an account and revokes its sessions
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ResetPassword sets a new password without the old one
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identityapp.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"mensaje": "Clave restablecida"})
}

// Delete removes an account
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
