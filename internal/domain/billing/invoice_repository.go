package billing

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines persistence for invoice documents
type InvoiceRepository interface {
	shared.Repository[InvoiceDocument]
	FindByNote(ctx context.Context, noteID uuid.UUID) ([]*InvoiceDocument, error)
	FindByStorageKey(ctx context.Context, key string) (*InvoiceDocument, error)
}
