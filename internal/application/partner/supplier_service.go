package partner

import (
	"context"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	if req.RUT != "" {
		parsed, err := valueobject.ParseRUT(req.RUT)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_RUT", "Supplier RUT is not valid: "+req.RUT)
		}
		exists, err := s.supplierRepo.ExistsByRUT(ctx, parsed.String())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this RUT already exists")
		}
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	supplier, err := partner.NewSupplier(req.BusinessName, req.RUT, req.Address, req.Commune, createdBy)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Email != "" || req.Phone != "" {
		if err := supplier.SetContact(req.ContactName, req.Email, req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Activity != "" {
		if err := supplier.SetActivity(req.Activity); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (*shared.Paginated[SupplierResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "business_name"
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

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToSupplierResponses(suppliers), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	updatedBy := uuid.Nil
	if req.UpdatedBy != nil {
		updatedBy = *req.UpdatedBy
	}

	if req.BusinessName != nil || req.Address != nil || req.Commune != nil {
		businessName := supplier.BusinessName
		address := supplier.Address
		commune := supplier.Commune

		if req.BusinessName != nil {
			businessName = *req.BusinessName
		}
		if req.Address != nil {
			address = *req.Address
		}
		if req.Commune != nil {
			commune = *req.Commune
		}

		if err := supplier.Update(businessName, address, commune, updatedBy); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Email != nil || req.Phone != nil {
		contactName := supplier.ContactName
		email := supplier.Email
		phone := supplier.Phone

		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}

		if err := supplier.SetContact(contactName, email, phone); err != nil {
			return nil, err
		}
	}

	if req.Activity != nil {
		if err := supplier.SetActivity(*req.Activity); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Activate marks a supplier as active
func (s *SupplierService) Activate(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if err := supplier.Activate(); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Deactivate marks a supplier as inactive
func (s *SupplierService) Deactivate(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if err := supplier.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}

	return s.supplierRepo.Delete(ctx, supplierID)
}
