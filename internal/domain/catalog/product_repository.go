package catalog

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindByCode finds a product by its natural code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// ExistsByCode checks whether a product with the code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
