package identity

import (
	"context"

	"github.com/notaventas/backend/internal/domain/shared"
)

// UserRepository defines persistence for user accounts
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
