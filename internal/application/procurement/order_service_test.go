package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/procurement"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMaterialOrderRepository is a mock implementation of procurement.MaterialOrderRepository
type MockMaterialOrderRepository struct {
	mock.Mock
}

func (m *MockMaterialOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.MaterialOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.MaterialOrder), args.Error(1)
}

func (m *MockMaterialOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.MaterialOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.MaterialOrder), args.Error(1)
}

func (m *MockMaterialOrderRepository) Save(ctx context.Context, order *procurement.MaterialOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockMaterialOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialOrderRepository) FindByNumber(ctx context.Context, number string) (*procurement.MaterialOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.MaterialOrder), args.Error(1)
}

func (m *MockMaterialOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*procurement.MaterialOrder, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.MaterialOrder), args.Error(1)
}

func (m *MockMaterialOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) FindByRUT(ctx context.Context, rut string) (*partner.Supplier, error) {
	args := m.Called(ctx, rut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByRUT(ctx context.Context, rut string) (bool, error) {
	args := m.Called(ctx, rut)
	return args.Bool(0), args.Error(1)
}

func newTestSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("Molinos del Sur SpA", "76543210-5", "Camino Melipilla 1200", "Maipú", uuid.New())
	require.NoError(t, err)
	return supplier
}

func newTestOrder(t *testing.T, number string, supplierID uuid.UUID) *procurement.MaterialOrder {
	t.Helper()
	order, err := procurement.NewMaterialOrder(number, supplierID, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), uuid.New())
	require.NoError(t, err)
	return order
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending order with items", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewOrderService(orderRepo, supplierRepo)

		supplier := newTestSupplier(t)
		productID := uuid.New()

		orderRepo.On("ExistsByNumber", ctx, "OC-2026-014").Return(false, nil)
		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*procurement.MaterialOrder")).Return(nil)

		response, err := service.Create(ctx, CreateOrderRequest{
			Number:     "OC-2026-014",
			SupplierID: supplier.ID,
			OrderDate:  "2026-08-10",
			Notes:      "Entregar antes del viernes",
			Items: []OrderItemRequest{
				{ProductID: productID, Quantity: decimal.NewFromInt(25), UnitPrice: decimal.NewFromInt(1200)},
				{ProductID: uuid.New(), Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(890)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "OC-2026-014", response.Number)
		assert.Equal(t, string(procurement.OrderStatusPending), response.Status)
		assert.Len(t, response.Items, 2)
		assert.Equal(t, "Entregar antes del viernes", response.Notes)
		assert.True(t, response.Total.Equal(decimal.NewFromInt(38900)), "total = %s", response.Total)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate order number", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewOrderService(orderRepo, supplierRepo)

		orderRepo.On("ExistsByNumber", ctx, "OC-2026-001").Return(true, nil)

		_, err := service.Create(ctx, CreateOrderRequest{Number: "OC-2026-001", SupplierID: uuid.New()})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		supplierRepo.AssertNotCalled(t, "FindByID")
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects inactive supplier", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewOrderService(orderRepo, supplierRepo)

		supplier := newTestSupplier(t)
		require.NoError(t, supplier.Deactivate())

		orderRepo.On("ExistsByNumber", ctx, "OC-2026-015").Return(false, nil)
		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)

		_, err := service.Create(ctx, CreateOrderRequest{Number: "OC-2026-015", SupplierID: supplier.ID})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SUPPLIER_INACTIVE", domainErr.Code)
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed order date", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		supplierRepo := new(MockSupplierRepository)
		service := NewOrderService(orderRepo, supplierRepo)

		supplier := newTestSupplier(t)

		orderRepo.On("ExistsByNumber", ctx, "OC-2026-016").Return(false, nil)
		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)

		_, err := service.Create(ctx, CreateOrderRequest{
			Number:     "OC-2026-016",
			SupplierID: supplier.ID,
			OrderDate:  "10-08-2026",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces items on a pending order", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		order := newTestOrder(t, "OC-2026-020", uuid.New())
		require.NoError(t, order.AddItem(uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100)))

		newProduct := uuid.New()
		newNotes := "Cantidades corregidas"

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		response, err := service.Update(ctx, order.ID, UpdateOrderRequest{
			Notes: &newNotes,
			Items: []OrderItemRequest{
				{ProductID: newProduct, Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(150)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Cantidades corregidas", response.Notes)
		require.Len(t, response.Items, 1)
		assert.Equal(t, newProduct, response.Items[0].ProductID)
		assert.True(t, response.Total.Equal(decimal.NewFromInt(1200)), "total = %s", response.Total)
		orderRepo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		orderID := uuid.New()
		orderRepo.On("FindByID", ctx, orderID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, orderID, UpdateOrderRequest{})

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestOrderService_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("send then receive", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		order := newTestOrder(t, "OC-2026-030", uuid.New())
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		sent, err := service.Send(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, string(procurement.OrderStatusSent), sent.Status)

		received, err := service.MarkReceived(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, string(procurement.OrderStatusReceived), received.Status)
	})

	t.Run("cannot receive a pending order", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		order := newTestOrder(t, "OC-2026-031", uuid.New())
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.MarkReceived(ctx, order.ID)

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save")
	})

	t.Run("cancel a sent order", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		order := newTestOrder(t, "OC-2026-032", uuid.New())
		require.NoError(t, order.Send())

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		cancelled, err := service.Cancel(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, string(procurement.OrderStatusCancelled), cancelled.Status)
	})

	t.Run("cannot cancel a received order", func(t *testing.T) {
		orderRepo := new(MockMaterialOrderRepository)
		service := NewOrderService(orderRepo, new(MockSupplierRepository))

		order := newTestOrder(t, "OC-2026-033", uuid.New())
		require.NoError(t, order.Send())
		require.NoError(t, order.MarkReceived())

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.Cancel(ctx, order.ID)

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save")
	})
}
