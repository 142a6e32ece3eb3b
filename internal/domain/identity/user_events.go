package identity

import (
	"github.com/notaventas/backend/internal/domain/shared"
)

const (
	EventUserCreated = "identity.user.created"
)

// UserCreatedEvent is emitted when a new account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string
}

// NewUserCreatedEvent creates a new user created event
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserCreated, user.ID, "User"),
		Username:        user.Username,
	}
}
