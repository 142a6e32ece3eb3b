package persistence

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/sales"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var clientSortFields = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"business_name": true,
	"rut":           true,
	"commune":       true,
}

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var client partner.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByRUT finds a client by its tax identifier. The lookup normalizes the
// input so that dotted or lowercase forms match the stored canonical RUT.
func (r *GormClientRepository) FindByRUT(ctx context.Context, rut string) (*partner.Client, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_RUT", "RUT cannot be empty")
	}

	var client partner.Client
	if err := r.db.WithContext(ctx).Where("rut = ?", normalized).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// ExistsByRUT checks whether a client with the RUT exists
func (r *GormClientRepository) ExistsByRUT(ctx context.Context, rut string) (bool, error) {
	normalized := valueobject.NormalizeRUT(rut)
	if normalized == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Client{}).
		Where("rut = ?", normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	var clients []partner.Client
	query := applyFilter(
		r.db.WithContext(ctx).Model(&partner.Client{}),
		filter,
		[]string{"business_name", "rut", "contact_name", "email"},
		clientSortFields,
		"business_name ASC",
	)
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete removes a client. Clients referenced by sales notes are protected
// at the service layer via CountNotes.
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(
		r.db.WithContext(ctx).Model(&partner.Client{}),
		filter,
		[]string{"business_name", "rut", "contact_name", "email"},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountNotes counts the sales notes that reference the client
func (r *GormClientRepository) CountNotes(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Note{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ partner.ClientRepository = (*GormClientRepository)(nil)
