package procurement

import (
	"context"
	"time"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/procurement"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles raw-material purchase order operations
type OrderService struct {
	orderRepo    procurement.MaterialOrderRepository
	supplierRepo partner.SupplierRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo procurement.MaterialOrderRepository, supplierRepo partner.SupplierRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
	}
}

// Create creates a pending material order for a supplier
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	exists, err := s.orderRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsActive() {
		return nil, shared.NewDomainError("SUPPLIER_INACTIVE", "Cannot order from an inactive supplier")
	}

	var orderDate time.Time
	if req.OrderDate != "" {
		orderDate, err = time.Parse(orderDateLayout, req.OrderDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Invalid order date: "+req.OrderDate)
		}
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	order, err := procurement.NewMaterialOrder(req.Number, req.SupplierID, orderDate, createdBy)
	if err != nil {
		return nil, err
	}

	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}
	for _, item := range req.Items {
		if err := order.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "order_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
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
	if filter.SupplierID != "" {
		domainFilter.Filters["supplier_id"] = filter.SupplierID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListBySupplier retrieves every order placed with a supplier
func (s *OrderService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses, nil
}

// Update updates a pending order's notes and rebuilds its lines
func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Notes != nil {
		order.SetNotes(*req.Notes)
	}

	if req.Items != nil {
		for _, existing := range append([]procurement.OrderItem(nil), order.Items...) {
			if err := order.RemoveItem(existing.ProductID); err != nil {
				return nil, err
			}
		}
		for _, item := range req.Items {
			if err := order.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Send marks an order as sent to its supplier
func (s *OrderService) Send(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(order *procurement.MaterialOrder) error {
		return order.Send()
	})
}

// MarkReceived records that the materials arrived
func (s *OrderService) MarkReceived(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(order *procurement.MaterialOrder) error {
		return order.MarkReceived()
	})
}

// Cancel voids an order
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(order *procurement.MaterialOrder) error {
		return order.Cancel()
	})
}

func (s *OrderService) transition(ctx context.Context, orderID uuid.UUID, fn func(*procurement.MaterialOrder) error) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := fn(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete deletes an order
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}

	return s.orderRepo.Delete(ctx, orderID)
}
