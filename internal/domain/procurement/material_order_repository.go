package procurement

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaterialOrderRepository defines persistence for material orders
type MaterialOrderRepository interface {
	shared.Repository[MaterialOrder]
	FindByNumber(ctx context.Context, number string) (*MaterialOrder, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*MaterialOrder, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
