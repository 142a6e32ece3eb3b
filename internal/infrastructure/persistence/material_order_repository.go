package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/notaventas/backend/internal/domain/procurement"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var materialOrderSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"number":     true,
	"order_date": true,
	"status":     true,
}

// GormMaterialOrderRepository implements procurement.MaterialOrderRepository
// using GORM. Saving an order reconciles its item set: rows no longer on the
// aggregate are deleted, the rest are upserted.
type GormMaterialOrderRepository struct {
	db *gorm.DB
}

// NewGormMaterialOrderRepository creates a new GormMaterialOrderRepository
func NewGormMaterialOrderRepository(db *gorm.DB) *GormMaterialOrderRepository {
	return &GormMaterialOrderRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormMaterialOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.MaterialOrder, error) {
	var order procurement.MaterialOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByNumber finds an order with its items by order number
func (r *GormMaterialOrderRepository) FindByNumber(ctx context.Context, number string) (*procurement.MaterialOrder, error) {
	var order procurement.MaterialOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("number = ?", strings.TrimSpace(number)).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindBySupplier returns all orders for a supplier, newest first
func (r *GormMaterialOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*procurement.MaterialOrder, error) {
	var orders []*procurement.MaterialOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("supplier_id = ?", supplierID).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ExistsByNumber checks whether an order with the number exists
func (r *GormMaterialOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&procurement.MaterialOrder{}).
		Where("number = ?", strings.TrimSpace(number)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all orders matching the filter
func (r *GormMaterialOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.MaterialOrder, error) {
	var orders []procurement.MaterialOrder
	query := applyFilter(
		r.db.WithContext(ctx).Model(&procurement.MaterialOrder{}).Preload("Items"),
		filter,
		[]string{"number"},
		materialOrderSortFields,
		"order_date DESC",
	)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists the order and reconciles its item rows in one transaction
func (r *GormMaterialOrderRepository) Save(ctx context.Context, order *procurement.MaterialOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}

		keepIDs := make([]uuid.UUID, len(order.Items))
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			keepIDs[i] = order.Items[i].ID
		}

		// drop rows removed from the aggregate
		query := tx.Where("order_id = ?", order.ID)
		if len(keepIDs) > 0 {
			query = query.Where("id NOT IN ?", keepIDs)
		}
		if err := query.Delete(&procurement.OrderItem{}).Error; err != nil {
			return err
		}

		for i := range order.Items {
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an order; its items cascade at the database level
func (r *GormMaterialOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.MaterialOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts orders matching the filter
func (r *GormMaterialOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(
		r.db.WithContext(ctx).Model(&procurement.MaterialOrder{}),
		filter,
		[]string{"number"},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ procurement.MaterialOrderRepository = (*GormMaterialOrderRepository)(nil)
