package workforce

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/google/uuid"
)

// EmployeeService handles personnel business operations
type EmployeeService struct {
	employeeRepo workforce.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo workforce.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	if req.RUT != "" {
		parsed, err := valueobject.ParseRUT(req.RUT)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_RUT", "Employee RUT is not valid: "+req.RUT)
		}
		exists, err := s.employeeRepo.ExistsByRUT(ctx, parsed.String())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this RUT already exists")
		}
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	employee, err := workforce.NewEmployee(req.FirstName, req.LastName, req.RUT, createdBy)
	if err != nil {
		return nil, err
	}

	if req.Position != "" {
		if err := employee.Update(req.FirstName, req.LastName, req.Position, createdBy); err != nil {
			return nil, err
		}
	}
	if req.Email != "" || req.Address != "" || req.Commune != "" || req.Phone != "" {
		if err := employee.SetContact(req.Email, req.Address, req.Commune, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, filter EmployeeListFilter) (*shared.Paginated[EmployeeResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	employees, err := s.employeeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.employeeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToEmployeeResponses(employees), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates an employee
func (s *EmployeeService) Update(ctx context.Context, employeeID uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updatedBy := uuid.Nil
	if req.UpdatedBy != nil {
		updatedBy = *req.UpdatedBy
	}

	if req.FirstName != nil || req.LastName != nil || req.Position != nil {
		firstName := employee.FirstName
		lastName := employee.LastName
		position := employee.Position

		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if req.Position != nil {
			position = *req.Position
		}

		if err := employee.Update(firstName, lastName, position, updatedBy); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Address != nil || req.Commune != nil || req.Phone != nil {
		email := employee.Email
		address := employee.Address
		commune := employee.Commune
		phone := employee.Phone

		if req.Email != nil {
			email = *req.Email
		}
		if req.Address != nil {
			address = *req.Address
		}
		if req.Commune != nil {
			commune = *req.Commune
		}
		if req.Phone != nil {
			phone = *req.Phone
		}

		if err := employee.SetContact(email, address, commune, phone); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Activate marks an employee as active
func (s *EmployeeService) Activate(ctx context.Context, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := employee.Activate(); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Deactivate marks an employee as inactive
func (s *EmployeeService) Deactivate(ctx context.Context, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := employee.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete deletes an employee. Attendance associations are removed with the
// employee via the schema's cascade rule.
func (s *EmployeeService) Delete(ctx context.Context, employeeID uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, employeeID)
}
