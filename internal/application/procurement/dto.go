package procurement

import (
	"time"

	"github.com/notaventas/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one requested line of a material order
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"id_producto" binding:"required"`
	Quantity  decimal.Decimal `json:"cantidad" binding:"required"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// CreateOrderRequest represents a request to create a material order
type CreateOrderRequest struct {
	Number     string             `json:"numero" binding:"required,min=1,max=50"`
	SupplierID uuid.UUID          `json:"id_proveedor" binding:"required"`
	OrderDate  string             `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Notes      string             `json:"notas"`
	Items      []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	CreatedBy  *uuid.UUID         `json:"-"`
}

// UpdateOrderRequest updates a pending order's lines and notes
type UpdateOrderRequest struct {
	Notes     *string            `json:"notas"`
	Items     []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	UpdatedBy *uuid.UUID         `json:"-"`
}

// OrderItemResponse is one line of an order in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"id_producto"`
	Quantity  decimal.Decimal `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents a material order in API responses
type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	Number     string              `json:"numero"`
	SupplierID uuid.UUID           `json:"id_proveedor"`
	OrderDate  string              `json:"fecha"`
	Status     string              `json:"estado"`
	Notes      string              `json:"notas"`
	Items      []OrderItemResponse `json:"items"`
	Total      decimal.Decimal     `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Version    int                 `json:"version"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"estado" binding:"omitempty,oneof=Pendiente Enviada Recibida Anulada"`
	SupplierID string `form:"id_proveedor" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// orderDateLayout is the wire format for order dates
const orderDateLayout = "2006-01-02"

// ToOrderResponse maps a domain order to its response DTO
func ToOrderResponse(order *procurement.MaterialOrder) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		}
	}

	return OrderResponse{
		ID:         order.ID,
		Number:     order.Number,
		SupplierID: order.SupplierID,
		OrderDate:  order.OrderDate.Format(orderDateLayout),
		Status:     string(order.Status),
		Notes:      order.Notes,
		Items:      items,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
		Version:    order.Version,
	}
}

// ToOrderResponses maps a slice of domain orders to response DTOs
func ToOrderResponses(orders []procurement.MaterialOrder) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
