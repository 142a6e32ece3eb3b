package sales

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
)

// NoteRepository defines the persistence interface for notes
type NoteRepository interface {
	shared.Repository[Note]

	// FindByNumber finds a note by its business number
	FindByNumber(ctx context.Context, number int) (*Note, error)

	// ExistsByNumber checks whether a note with the number exists
	ExistsByNumber(ctx context.Context, number int) (bool, error)
}
