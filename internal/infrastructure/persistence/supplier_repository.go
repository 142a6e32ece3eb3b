package persistence

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var supplierSortFields = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"business_name": true,
	"rut":           true,
	"status":        true,
}

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByRUT finds a supplier by its normalized tax identifier
func (r *GormSupplierRepository) FindByRUT(ctx context.Context, rut string) (*partner.Supplier, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_RUT", "RUT cannot be empty")
	}

	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).Where("rut = ?", normalized).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// ExistsByRUT checks whether a supplier with the RUT exists
func (r *GormSupplierRepository) ExistsByRUT(ctx context.Context, rut string) (bool, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Supplier{}).
		Where("rut = ?", normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	query := applyFilter(
		r.db.WithContext(ctx).Model(&partner.Supplier{}),
		filter,
		[]string{"business_name", "rut", "contact_name"},
		supplierSortFields,
		"business_name ASC",
	)
	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(
		r.db.WithContext(ctx).Model(&partner.Supplier{}),
		filter,
		[]string{"business_name", "rut", "contact_name"},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
