package persistence

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/billing"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var invoiceSortFields = map[string]bool{
	"created_at": true,
	"issued_at":  true,
	"file_name":  true,
}

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice document by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.InvoiceDocument, error) {
	var doc billing.InvoiceDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByNote returns all invoice documents linked to a sales note
func (r *GormInvoiceRepository) FindByNote(ctx context.Context, noteID uuid.UUID) ([]*billing.InvoiceDocument, error) {
	var docs []*billing.InvoiceDocument
	if err := r.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("issued_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByStorageKey finds an invoice document by its object storage key
func (r *GormInvoiceRepository) FindByStorageKey(ctx context.Context, key string) (*billing.InvoiceDocument, error) {
	var doc billing.InvoiceDocument
	if err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll finds all invoice documents matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.InvoiceDocument, error) {
	var docs []billing.InvoiceDocument
	query := applyFilter(
		r.db.WithContext(ctx).Model(&billing.InvoiceDocument{}),
		filter,
		[]string{"file_name"},
		invoiceSortFields,
		"issued_at DESC",
	)
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save creates or updates an invoice document
func (r *GormInvoiceRepository) Save(ctx context.Context, doc *billing.InvoiceDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// Delete removes an invoice document row. The stored object is removed by
// the application layer.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.InvoiceDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts invoice documents matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(
		r.db.WithContext(ctx).Model(&billing.InvoiceDocument{}),
		filter,
		[]string{"file_name"},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
