package partner

import (
	"time"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	BusinessName string     `json:"razon_social" binding:"required,min=1,max=300"`
	RUT          string     `json:"rut" binding:"omitempty,rut"`
	Address      string     `json:"direccion" binding:"required,min=1,max=200"`
	Commune      string     `json:"comuna" binding:"required,min=1,max=50"`
	ContactName  string     `json:"nombre_contacto" binding:"max=200"`
	Email        string     `json:"email" binding:"omitempty,email,max=50"`
	Phone        string     `json:"telefono" binding:"max=20"`
	Activity     string     `json:"giro" binding:"max=1000"`
	CreatedBy    *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	BusinessName *string    `json:"razon_social" binding:"omitempty,min=1,max=300"`
	RUT          *string    `json:"rut" binding:"omitempty,rut"`
	Address      *string    `json:"direccion" binding:"omitempty,min=1,max=200"`
	Commune      *string    `json:"comuna" binding:"omitempty,min=1,max=50"`
	ContactName  *string    `json:"nombre_contacto" binding:"omitempty,max=200"`
	Email        *string    `json:"email" binding:"omitempty,email,max=50"`
	Phone        *string    `json:"telefono" binding:"omitempty,max=20"`
	Activity     *string    `json:"giro" binding:"omitempty,max=1000"`
	UpdatedBy    *uuid.UUID `json:"-"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"razon_social"`
	RUT          string    `json:"rut"`
	ContactName  string    `json:"nombre_contacto"`
	Email        string    `json:"email"`
	Address      string    `json:"direccion"`
	Commune      string    `json:"comuna"`
	Phone        string    `json:"telefono"`
	Activity     string    `json:"giro"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ClientListFilter represents filter options for client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Commune  string `form:"comuna"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse maps a domain client to its response DTO
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:           client.ID,
		BusinessName: client.BusinessName,
		RUT:          client.RUT,
		ContactName:  client.ContactName,
		Email:        client.Email,
		Address:      client.Address,
		Commune:      client.Commune,
		Phone:        client.Phone,
		Activity:     client.Activity,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
		Version:      client.Version,
	}
}

// ToClientResponses maps a slice of domain clients to response DTOs
func ToClientResponses(clients []partner.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	BusinessName string     `json:"razon_social" binding:"required,min=1,max=300"`
	RUT          string     `json:"rut" binding:"omitempty,rut"`
	Address      string     `json:"direccion" binding:"required,min=1,max=200"`
	Commune      string     `json:"comuna" binding:"required,min=1,max=50"`
	ContactName  string     `json:"nombre_contacto" binding:"max=200"`
	Email        string     `json:"email" binding:"omitempty,email,max=50"`
	Phone        string     `json:"telefono" binding:"max=20"`
	Activity     string     `json:"giro" binding:"max=1000"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	BusinessName *string    `json:"razon_social" binding:"omitempty,min=1,max=300"`
	RUT          *string    `json:"rut" binding:"omitempty,rut"`
	Address      *string    `json:"direccion" binding:"omitempty,min=1,max=200"`
	Commune      *string    `json:"comuna" binding:"omitempty,min=1,max=50"`
	ContactName  *string    `json:"nombre_contacto" binding:"omitempty,max=200"`
	Email        *string    `json:"email" binding:"omitempty,email,max=50"`
	Phone        *string    `json:"telefono" binding:"omitempty,max=20"`
	Activity     *string    `json:"giro" binding:"omitempty,max=1000"`
	UpdatedBy    *uuid.UUID `json:"-"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"razon_social"`
	RUT          string    `json:"rut"`
	Status       string    `json:"estado"`
	ContactName  string    `json:"nombre_contacto"`
	Email        string    `json:"email"`
	Address      string    `json:"direccion"`
	Commune      string    `json:"comuna"`
	Phone        string    `json:"telefono"`
	Activity     string    `json:"giro"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"estado" binding:"omitempty,oneof=Activo Inactivo"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse maps a domain supplier to its response DTO
func ToSupplierResponse(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           supplier.ID,
		BusinessName: supplier.BusinessName,
		RUT:          supplier.RUT,
		Status:       string(supplier.Status),
		ContactName:  supplier.ContactName,
		Email:        supplier.Email,
		Address:      supplier.Address,
		Commune:      supplier.Commune,
		Phone:        supplier.Phone,
		Activity:     supplier.Activity,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
		Version:      supplier.Version,
	}
}

// ToSupplierResponses maps a slice of domain suppliers to response DTOs
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
