package handler

import (
	procurementapp "github.com/notaventas/backend/internal/application/procurement"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles raw-material purchase order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *procurementapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *procurementapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers material order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/materias-primas")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.POST("/:id/enviar", h.Send)
		orders.POST("/:id/recibir", h.MarkReceived)
		orders.POST("/:id/anular", h.Cancel)
		orders.DELETE("/:id", h.Delete)
	}
}

// Create creates a pending order for a supplier
func (h *OrderHandler) Create(c *gin.Context) {
	var req procurementapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.CreatedBy = actingUser(c)

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List returns orders with pagination and filters
func (h *OrderHandler) List(c *gin.Context) {
	var filter procurementapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns an order by ID
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Update replaces the items and notes of a pending order
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req procurementapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.UpdatedBy = actingUser(c)

	order, err := h.orderService.Update(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Send marks a pending order as sent to the supplier
func (h *OrderHandler) Send(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Send(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// MarkReceived marks a sent order as received
func (h *OrderHandler) MarkReceived(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.MarkReceived(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel cancels an order that has not been received
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
