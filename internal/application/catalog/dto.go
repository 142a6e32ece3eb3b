package catalog

import (
	"time"

	"github.com/notaventas/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Code          string           `json:"codigo" binding:"required,min=1,max=20"`
	Name          string           `json:"nombre" binding:"required,min=1,max=200"`
	Description   string           `json:"descripcion" binding:"max=1000"`
	SalePrice     *decimal.Decimal `json:"precio_venta"`
	PurchasePrice *decimal.Decimal `json:"precio_compra"`
	Stock         *int             `json:"stock"`
	Category      string           `json:"categoria" binding:"max=100"`
	Class1        string           `json:"clase1" binding:"max=100"`
	Class2        string           `json:"clase2" binding:"max=100"`
	Class3        string           `json:"clase3" binding:"max=100"`
	Unit          string           `json:"unidad" binding:"max=50"`
	SupplierID    *uuid.UUID       `json:"id_proveedor"`
	CreatedBy     *uuid.UUID       `json:"-"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"nombre" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"descripcion" binding:"omitempty,max=1000"`
	SalePrice     *decimal.Decimal `json:"precio_venta"`
	PurchasePrice *decimal.Decimal `json:"precio_compra"`
	Stock         *int             `json:"stock"`
	Category      *string          `json:"categoria" binding:"omitempty,max=100"`
	Class1        *string          `json:"clase1" binding:"omitempty,max=100"`
	Class2        *string          `json:"clase2" binding:"omitempty,max=100"`
	Class3        *string          `json:"clase3" binding:"omitempty,max=100"`
	Unit          *string          `json:"unidad" binding:"omitempty,max=50"`
	SupplierID    *uuid.UUID       `json:"id_proveedor"`
	UpdatedBy     *uuid.UUID       `json:"-"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nombre"`
	Description   string          `json:"descripcion"`
	SalePrice     decimal.Decimal `json:"precio_venta"`
	PurchasePrice decimal.Decimal `json:"precio_compra"`
	Stock         int             `json:"stock"`
	Category      string          `json:"categoria"`
	Class1        string          `json:"clase1"`
	Class2        string          `json:"clase2"`
	Class3        string          `json:"clase3"`
	Unit          string          `json:"unidad"`
	Status        string          `json:"estado"`
	SupplierID    *uuid.UUID      `json:"id_proveedor"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"estado" binding:"omitempty,oneof=Activo Inactivo"`
	Category   string `form:"categoria"`
	SupplierID string `form:"id_proveedor" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse maps a domain product to its response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Code:          product.Code,
		Name:          product.Name,
		Description:   product.Description,
		SalePrice:     product.SalePrice,
		PurchasePrice: product.PurchasePrice,
		Stock:         product.Stock,
		Category:      product.Category,
		Class1:        product.Class1,
		Class2:        product.Class2,
		Class3:        product.Class3,
		Unit:          product.Unit,
		Status:        string(product.Status),
		SupplierID:    product.SupplierID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
		Version:       product.Version,
	}
}

// ToProductResponses maps a slice of domain products to response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
