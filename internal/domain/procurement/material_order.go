package procurement

import (
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a raw-material order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pendiente"
	OrderStatusSent      OrderStatus = "Enviada"
	OrderStatusReceived  OrderStatus = "Recibida"
	OrderStatusCancelled OrderStatus = "Anulada"
)

// MaterialOrder is a purchase order for raw materials sent to a supplier
type MaterialOrder struct {
	shared.AuditedAggregateRoot
	Number     string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	SupplierID uuid.UUID   `gorm:"type:uuid;not null;index"`
	OrderDate  time.Time   `gorm:"not null"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	Notes      string      `gorm:"type:text"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MaterialOrder) TableName() string {
	return "ordenes_materia_prima"
}

// OrderItem is a line of a material order
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,6);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "ordenes_materia_prima_items"
}

// Subtotal returns quantity * unit price for the line
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// NewMaterialOrder creates a pending order for a supplier
func NewMaterialOrder(number string, supplierID uuid.UUID, orderDate time.Time, createdBy uuid.UUID) (*MaterialOrder, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be nil")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &MaterialOrder{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		Number:               number,
		SupplierID:           supplierID,
		OrderDate:            orderDate,
		Status:               OrderStatusPending,
		Items:                []OrderItem{},
	}, nil
}

// AddItem appends a product line; repeated products accumulate quantity
func (o *MaterialOrder) AddItem(productID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("ORDER_NOT_EDITABLE", "Only pending orders can be modified")
	}
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be nil")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items[idx].Quantity = o.Items[idx].Quantity.Add(quantity)
			o.Items[idx].UnitPrice = unitPrice
			o.Items[idx].UpdatedAt = time.Now()
			o.touch()
			return nil
		}
	}

	o.Items = append(o.Items, OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	})
	o.touch()
	return nil
}

// RemoveItem deletes a product line
func (o *MaterialOrder) RemoveItem(productID uuid.UUID) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("ORDER_NOT_EDITABLE", "Only pending orders can be modified")
	}
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Total returns the order total across all lines
func (o *MaterialOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Send marks the order as sent to the supplier
func (o *MaterialOrder) Send() error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Only pending orders can be sent")
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot send an order without items")
	}
	o.Status = OrderStatusSent
	o.touch()
	return nil
}

// MarkReceived records that the materials arrived
func (o *MaterialOrder) MarkReceived() error {
	if o.Status != OrderStatusSent {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Only sent orders can be received")
	}
	o.Status = OrderStatusReceived
	o.touch()
	return nil
}

// SetNotes replaces the free-form notes text
func (o *MaterialOrder) SetNotes(notes string) {
	o.Notes = notes
	o.touch()
}

// Cancel voids the order
func (o *MaterialOrder) Cancel() error {
	if o.Status == OrderStatusReceived {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Received orders cannot be cancelled")
	}
	o.Status = OrderStatusCancelled
	o.touch()
	return nil
}

func (o *MaterialOrder) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
