package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Client represents a business client in the partner context.
// It is the aggregate root for client-related operations. Clients are
// identified by their RUT when one is provided; the RUT is unique across
// the system and is the natural key used when notes reference clients.
type Client struct {
	shared.AuditedAggregateRoot
	BusinessName string `gorm:"type:varchar(300);not null"` // razón social
	RUT          string `gorm:"type:varchar(30);uniqueIndex;default:null"`
	ContactName  string `gorm:"type:varchar(200)"`
	Email        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:varchar(200);not null"`
	Commune      string `gorm:"type:varchar(50);not null"`
	Phone        string `gorm:"type:varchar(20)"`
	Activity     string `gorm:"type:varchar(1000)"` // giro
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clientes"
}

// NewClient creates a new client with required fields. The RUT may be empty
// for clients managed without a tax identifier; when present it is
// normalized and validated.
func NewClient(businessName, rut, address, commune string, createdBy uuid.UUID) (*Client, error) {
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
			return nil, shared.NewDomainError("INVALID_RUT", "Client RUT is not valid: "+rut)
		}
		normalizedRUT = parsed.String()
	}

	client := &Client{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		BusinessName:         businessName,
		RUT:                  normalizedRUT,
		Address:              address,
		Commune:              commune,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's basic information
func (c *Client) Update(businessName, address, commune string, updatedBy uuid.UUID) error {
	if err := validateBusinessName(businessName); err != nil {
		return err
	}
	if err := validateAddress(address, commune); err != nil {
		return err
	}

	c.BusinessName = businessName
	c.Address = address
	c.Commune = commune
	c.stampUpdate(updatedBy)

	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(contactName, email, phone string) error {
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

	c.ContactName = contactName
	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetActivity sets the client's commercial activity description (giro)
func (c *Client) SetActivity(activity string) error {
	if len(activity) > 1000 {
		return shared.NewDomainError("INVALID_ACTIVITY", "Activity cannot exceed 1000 characters")
	}
	c.Activity = activity
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetRUT sets or replaces the client's RUT after validation
func (c *Client) SetRUT(rut string) error {
	if rut == "" {
		c.RUT = ""
		c.UpdatedAt = time.Now()
		c.IncrementVersion()
		return nil
	}
	parsed, err := valueobject.ParseRUT(rut)
	if err != nil {
		return shared.NewDomainError("INVALID_RUT", "Client RUT is not valid: "+rut)
	}
	c.RUT = parsed.String()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// HasRUT reports whether the client carries a tax identifier
func (c *Client) HasRUT() bool {
	return c.RUT != ""
}

func (c *Client) stampUpdate(updatedBy uuid.UUID) {
	if updatedBy != uuid.Nil {
		c.SetUpdatedBy(updatedBy)
	}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewClientUpdatedEvent(c))
}

// Validation functions

func validateBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if len(name) > 300 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 300 characters")
	}
	return nil
}

func validateAddress(address, commune string) error {
	if strings.TrimSpace(address) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	if len(address) > 200 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 200 characters")
	}
	if strings.TrimSpace(commune) == "" {
		return shared.NewDomainError("INVALID_COMMUNE", "Commune cannot be empty")
	}
	if len(commune) > 50 {
		return shared.NewDomainError("INVALID_COMMUNE", "Commune cannot exceed 50 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 50 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 50 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
