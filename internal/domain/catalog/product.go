package catalog

import (
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "Activo"
	ProductStatusInactive ProductStatus = "Inactivo"
)

// Product is the aggregate root for catalog items. The code is the natural
// key: unique, immutable after creation, and the handle used by imports
// and purchase orders to resolve products.
type Product struct {
	shared.AuditedAggregateRoot
	Code          string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:varchar(1000)"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(10,6)"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,6)"`
	Stock         int             `gorm:"not null;default:0"`
	Category      string          `gorm:"type:varchar(100)"`
	Class1        string          `gorm:"type:varchar(100)"`
	Class2        string          `gorm:"type:varchar(100)"`
	Class3        string          `gorm:"type:varchar(100)"`
	Unit          string          `gorm:"type:varchar(50)"`
	Status        ProductStatus   `gorm:"type:varchar(20);not null;default:'Activo'"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "productos"
}

// NewProduct creates a new product with its natural code
func NewProduct(code, name string, createdBy uuid.UUID) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	return &Product{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 name,
		SalePrice:            decimal.Zero,
		PurchasePrice:        decimal.Zero,
		Status:               ProductStatusActive,
	}, nil
}

// Update updates name and description
func (p *Product) Update(name, description string, updatedBy uuid.UUID) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}

	p.Name = name
	p.Description = description
	if updatedBy != uuid.Nil {
		p.SetUpdatedBy(updatedBy)
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets sale and purchase prices
func (p *Product) SetPrices(sale, purchase decimal.Decimal) error {
	if sale.IsNegative() || purchase.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.SalePrice = sale
	p.PurchasePrice = purchase
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetStock replaces the stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetClassification sets category, classes and measurement unit
func (p *Product) SetClassification(category, class1, class2, class3, unit string) {
	p.Category = category
	p.Class1 = class1
	p.Class2 = class2
	p.Class3 = class3
	p.Unit = unit
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AssignSupplier links the product to its supplier
func (p *Product) AssignSupplier(supplierID *uuid.UUID) {
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Activate marks the product as active
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsActive reports whether the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 20 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 20 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
