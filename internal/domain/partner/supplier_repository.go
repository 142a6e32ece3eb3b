package partner

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
)

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]

	// FindByRUT finds a supplier by its normalized RUT
	FindByRUT(ctx context.Context, rut string) (*Supplier, error)

	// ExistsByRUT checks whether a supplier with the RUT exists
	ExistsByRUT(ctx context.Context, rut string) (bool, error)
}
