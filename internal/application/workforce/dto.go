package workforce

import (
	"time"

	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/google/uuid"
)

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to create a new employee
type CreateEmployeeRequest struct {
	FirstName string     `json:"nombre" binding:"required,min=1,max=200"`
	LastName  string     `json:"apellido" binding:"required,min=1,max=200"`
	RUT       string     `json:"rut" binding:"omitempty,rut"`
	Email     string     `json:"email" binding:"omitempty,email,max=50"`
	Address   string     `json:"direccion" binding:"max=200"`
	Commune   string     `json:"comuna" binding:"max=50"`
	Phone     string     `json:"telefono" binding:"max=20"`
	Position  string     `json:"cargo" binding:"max=1000"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	FirstName *string    `json:"nombre" binding:"omitempty,min=1,max=200"`
	LastName  *string    `json:"apellido" binding:"omitempty,min=1,max=200"`
	Email     *string    `json:"email" binding:"omitempty,email,max=50"`
	Address   *string    `json:"direccion" binding:"omitempty,max=200"`
	Commune   *string    `json:"comuna" binding:"omitempty,max=50"`
	Phone     *string    `json:"telefono" binding:"omitempty,max=20"`
	Position  *string    `json:"cargo" binding:"omitempty,max=1000"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	RUT       string    `json:"rut"`
	Email     string    `json:"email"`
	Address   string    `json:"direccion"`
	Commune   string    `json:"comuna"`
	Phone     string    `json:"telefono"`
	Position  string    `json:"cargo"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// EmployeeListFilter represents filter options for the employee list
type EmployeeListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"estado" binding:"omitempty,oneof=Activo Inactivo"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToEmployeeResponse maps a domain employee to its response DTO
func ToEmployeeResponse(employee *workforce.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		RUT:       employee.RUT,
		Email:     employee.Email,
		Address:   employee.Address,
		Commune:   employee.Commune,
		Phone:     employee.Phone,
		Position:  employee.Position,
		Status:    string(employee.Status),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
		Version:   employee.Version,
	}
}

// ToEmployeeResponses maps a slice of domain employees to response DTOs
func ToEmployeeResponses(employees []workforce.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

// =============================================================================
// Attendance DTOs
// =============================================================================

// AssignSaturdaysRequest carries the full desired set of worked Saturdays
// for one employee. The stored set is reconciled to match it exactly.
type AssignSaturdaysRequest struct {
	Dates []string `json:"sabados" binding:"required,dive,datetime=2006-01-02"`
}

// AssignSaturdaysResponse reports the outcome of a reconciliation
type AssignSaturdaysResponse struct {
	EmployeeID uuid.UUID `json:"id_personal"`
	Created    int       `json:"creados"`
	Removed    int       `json:"eliminados"`
	Dates      []string  `json:"sabados"`
}

// WorkedSaturdaysResponse lists the dates linked to one employee
type WorkedSaturdaysResponse struct {
	EmployeeID uuid.UUID `json:"id_personal"`
	Dates      []string  `json:"sabados"`
}

// HistoricalSummaryFilter bounds the historical aggregation window
type HistoricalSummaryFilter struct {
	WindowDays int    `form:"dias" binding:"omitempty,min=1"`
	From       string `form:"desde" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"hasta" binding:"omitempty,datetime=2006-01-02"`
}

// MonthlySummaryEntry is one (month, employee) bucket of the historical
// summary. Dates are formatted dd-mm-yyyy, months as yyyy-mm.
type MonthlySummaryEntry struct {
	Month      string    `json:"mes"`
	EmployeeID uuid.UUID `json:"id_personal"`
	FirstName  string    `json:"nombre"`
	LastName   string    `json:"apellido"`
	Dates      []string  `json:"sabados"`
	Count      int       `json:"cantidad"`
}
