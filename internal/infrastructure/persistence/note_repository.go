package persistence

import (
	"context"
	"errors"

	"github.com/notaventas/backend/internal/domain/sales"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var noteSortFields = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"number":        true,
	"dispatch_date": true,
}

// GormNoteRepository implements sales.NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// FindByID finds a note by its ID
func (r *GormNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Note, error) {
	var note sales.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindByNumber finds a note by its folio number
func (r *GormNoteRepository) FindByNumber(ctx context.Context, number int) (*sales.Note, error) {
	var note sales.Note
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// ExistsByNumber checks whether a note with the folio number exists
func (r *GormNoteRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Note{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all notes matching the filter
func (r *GormNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Note, error) {
	var notes []sales.Note
	query := applyFilter(
		r.db.WithContext(ctx).Model(&sales.Note{}),
		filter,
		nil,
		noteSortFields,
		"number DESC",
	)
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Save creates or updates a note
func (r *GormNoteRepository) Save(ctx context.Context, note *sales.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes a note
func (r *GormNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts notes matching the filter
func (r *GormNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(r.db.WithContext(ctx).Model(&sales.Note{}), filter, nil)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ sales.NoteRepository = (*GormNoteRepository)(nil)
