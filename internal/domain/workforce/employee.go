package workforce

import (
	"regexp"
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// EmployeeStatus represents the status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Activo"
	EmployeeStatusInactive EmployeeStatus = "Inactivo"
)

// Employee represents a member of the company's personnel
type Employee struct {
	shared.AuditedAggregateRoot
	FirstName string         `gorm:"type:varchar(200);not null"`
	LastName  string         `gorm:"type:varchar(200);not null"`
	RUT       string         `gorm:"type:varchar(30);uniqueIndex;default:null"`
	Email     string         `gorm:"type:varchar(50)"`
	Address   string         `gorm:"type:varchar(200)"`
	Commune   string         `gorm:"type:varchar(50)"`
	Phone     string         `gorm:"type:varchar(20)"`
	Position  string         `gorm:"type:varchar(1000)"` // cargo
	Status    EmployeeStatus `gorm:"type:varchar(20);not null;default:'Activo'"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "personal"
}

// NewEmployee creates a new employee. The RUT may be empty; when present it
// is normalized and validated.
func NewEmployee(firstName, lastName, rut string, createdBy uuid.UUID) (*Employee, error) {
	if err := validateName(firstName, "First name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return nil, err
	}

	normalizedRUT := ""
	if rut != "" {
		parsed, err := valueobject.ParseRUT(rut)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_RUT", "Employee RUT is not valid: "+rut)
		}
		normalizedRUT = parsed.String()
	}

	return &Employee{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		FirstName:            firstName,
		LastName:             lastName,
		RUT:                  normalizedRUT,
		Status:               EmployeeStatusActive,
	}, nil
}

// FullName returns "first last" for display
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Update updates the employee's identifying information
func (e *Employee) Update(firstName, lastName, position string, updatedBy uuid.UUID) error {
	if err := validateName(firstName, "First name"); err != nil {
		return err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return err
	}
	if len(position) > 1000 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 1000 characters")
	}

	e.FirstName = firstName
	e.LastName = lastName
	e.Position = position
	if updatedBy != uuid.Nil {
		e.SetUpdatedBy(updatedBy)
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetContact sets the employee's contact information
func (e *Employee) SetContact(email, address, commune, phone string) error {
	if email != "" {
		emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
		if len(email) > 50 || !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if len(address) > 200 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 200 characters")
	}
	if len(commune) > 50 {
		return shared.NewDomainError("INVALID_COMMUNE", "Commune cannot exceed 50 characters")
	}
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}

	e.Email = email
	e.Address = address
	e.Commune = commune
	e.Phone = phone
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Deactivate marks the employee as inactive
func (e *Employee) Deactivate() error {
	if e.Status == EmployeeStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Employee is already inactive")
	}
	e.Status = EmployeeStatusInactive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Activate marks the employee as active
func (e *Employee) Activate() error {
	if e.Status == EmployeeStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Employee is already active")
	}
	e.Status = EmployeeStatusActive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// IsActive reports whether the employee is active
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

func validateName(name, label string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", label+" cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", label+" cannot exceed 200 characters")
	}
	return nil
}
