package partner

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the persistence interface for clients
type ClientRepository interface {
	shared.Repository[Client]

	// FindByRUT finds a client by its normalized RUT
	FindByRUT(ctx context.Context, rut string) (*Client, error)

	// ExistsByRUT checks whether a client with the RUT exists
	ExistsByRUT(ctx context.Context, rut string) (bool, error)

	// CountNotes returns the number of notes referencing the client.
	// Deletion is blocked while the count is non-zero.
	CountNotes(ctx context.Context, clientID uuid.UUID) (int64, error)
}
