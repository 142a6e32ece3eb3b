package partner

import (
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "Activo"
	SupplierStatusInactive SupplierStatus = "Inactivo"
)

// Supplier represents a raw-material supplier in the partner context
type Supplier struct {
	shared.AuditedAggregateRoot
	BusinessName string         `gorm:"type:varchar(300);not null"`
	RUT          string         `gorm:"type:varchar(30);uniqueIndex;default:null"`
	Status       SupplierStatus `gorm:"type:varchar(20);not null;default:'Activo'"`
	ContactName  string         `gorm:"type:varchar(200)"`
	Email        string         `gorm:"type:varchar(50)"`
	Address      string         `gorm:"type:varchar(200);not null"`
	Commune      string         `gorm:"type:varchar(50);not null"`
	Phone        string         `gorm:"type:varchar(20)"`
	Activity     string         `gorm:"type:varchar(1000)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "proveedores"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(businessName, rut, address, commune string, createdBy uuid.UUID) (*Supplier, error) {
	if err := validateBusinessName(businessName); err != nil {
		return nil, err
	}
	if err := validateAddress(address, commune); err != nil {
		return nil, err
	}

	normalizedRUT := ""
	if rut != "" {
		parsed, err := valueobject.ParseRUT(rut)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_RUT", "Supplier RUT is not valid: "+rut)
		}
		normalizedRUT = parsed.String()
	}

	return &Supplier{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		BusinessName:         businessName,
		RUT:                  normalizedRUT,
		Status:               SupplierStatusActive,
		Address:              address,
		Commune:              commune,
	}, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(businessName, address, commune string, updatedBy uuid.UUID) error {
	if err := validateBusinessName(businessName); err != nil {
		return err
	}
	if err := validateAddress(address, commune); err != nil {
		return err
	}

	s.BusinessName = businessName
	s.Address = address
	s.Commune = commune
	if updatedBy != uuid.Nil {
		s.SetUpdatedBy(updatedBy)
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(contactName, email, phone string) error {
	if contactName != "" && len(contactName) > 200 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 200 characters")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	s.ContactName = contactName
	s.Email = email
	s.Phone = phone
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetActivity sets the supplier's commercial activity description
func (s *Supplier) SetActivity(activity string) error {
	if len(activity) > 1000 {
		return shared.NewDomainError("INVALID_ACTIVITY", "Activity cannot exceed 1000 characters")
	}
	s.Activity = activity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Activate marks the supplier as active
func (s *Supplier) Activate() error {
	if s.Status == SupplierStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Supplier is already active")
	}
	s.Status = SupplierStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Deactivate marks the supplier as inactive
func (s *Supplier) Deactivate() error {
	if s.Status == SupplierStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Supplier is already inactive")
	}
	s.Status = SupplierStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsActive reports whether the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
