package handler

import (
	partnerapp "github.com/notaventas/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clientes")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.GetByID)
		clients.GET("/por-rut/:rut", h.GetByRUT)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req partnerapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.CreatedBy = actingUser(c)

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// List returns clients with pagination and filters
func (h *ClientHandler) List(c *gin.Context) {
	var filter partnerapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// GetByRUT returns a client by RUT, accepting any spelling of the RUT
func (h *ClientHandler) GetByRUT(c *gin.Context) {
	client, err := h.clientService.GetByRUT(c.Request.Context(), c.Param("rut"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Update updates a client
func (h *ClientHandler) Update(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req partnerapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.UpdatedBy = actingUser(c)

	client, err := h.clientService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete removes a client. Clients referenced by sales notes cannot be
// deleted and yield a conflict.
func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), clientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
