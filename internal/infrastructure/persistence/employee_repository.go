package persistence

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/notaventas/backend/internal/domain/workforce"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var employeeSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"first_name": true,
	"last_name":  true,
	"rut":        true,
	"status":     true,
}

// GormEmployeeRepository implements workforce.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByRUT finds an employee by its normalized tax identifier
func (r *GormEmployeeRepository) FindByRUT(ctx context.Context, rut string) (*workforce.Employee, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_RUT", "RUT cannot be empty")
	}

	var employee workforce.Employee
	if err := r.db.WithContext(ctx).Where("rut = ?", normalized).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// ExistsByRUT checks whether an employee with the RUT exists
func (r *GormEmployeeRepository) ExistsByRUT(ctx context.Context, rut string) (bool, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Where("rut = ?", normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := applyFilter(
		r.db.WithContext(ctx).Model(&workforce.Employee{}),
		filter,
		[]string{"first_name", "last_name", "rut"},
		employeeSortFields,
		"last_name ASC, first_name ASC",
	)
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete removes an employee. Attendance links cascade at the database level.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&workforce.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(
		r.db.WithContext(ctx).Model(&workforce.Employee{}),
		filter,
		[]string{"first_name", "last_name", "rut"},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ workforce.EmployeeRepository = (*GormEmployeeRepository)(nil)
