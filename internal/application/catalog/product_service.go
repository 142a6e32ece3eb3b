package catalog

import (
	"context"

	"github.com/notaventas/backend/internal/domain/catalog"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	product, err := catalog.NewProduct(req.Code, req.Name, createdBy)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description, createdBy); err != nil {
			return nil, err
		}
	}
	if req.SalePrice != nil || req.PurchasePrice != nil {
		sale := product.SalePrice
		purchase := product.PurchasePrice
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if err := product.SetPrices(sale, purchase); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.Category != "" || req.Class1 != "" || req.Class2 != "" || req.Class3 != "" || req.Unit != "" {
		product.SetClassification(req.Category, req.Class1, req.Class2, req.Class3, req.Unit)
	}
	if req.SupplierID != nil {
		product.AssignSupplier(req.SupplierID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its natural code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "code"
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
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.SupplierID != "" {
		domainFilter.Filters["supplier_id"] = filter.SupplierID
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	updatedBy := uuid.Nil
	if req.UpdatedBy != nil {
		updatedBy = *req.UpdatedBy
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description, updatedBy); err != nil {
			return nil, err
		}
	}

	if req.SalePrice != nil || req.PurchasePrice != nil {
		sale := product.SalePrice
		purchase := product.PurchasePrice
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if err := product.SetPrices(sale, purchase); err != nil {
			return nil, err
		}
	}

	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if req.Category != nil || req.Class1 != nil || req.Class2 != nil || req.Class3 != nil || req.Unit != nil {
		category := product.Category
		class1 := product.Class1
		class2 := product.Class2
		class3 := product.Class3
		unit := product.Unit

		if req.Category != nil {
			category = *req.Category
		}
		if req.Class1 != nil {
			class1 = *req.Class1
		}
		if req.Class2 != nil {
			class2 = *req.Class2
		}
		if req.Class3 != nil {
			class3 = *req.Class3
		}
		if req.Unit != nil {
			unit = *req.Unit
		}

		product.SetClassification(category, class1, class2, class3, unit)
	}

	if req.SupplierID != nil {
		product.AssignSupplier(req.SupplierID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Activate marks a product as active
func (s *ProductService) Activate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Activate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Deactivate marks a product as inactive
func (s *ProductService) Deactivate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	return s.productRepo.Delete(ctx, productID)
}
