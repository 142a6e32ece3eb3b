package partner

import (
	"github.com/notaventas/backend/internal/domain/shared"
)

// Event types for the client aggregate
const (
	EventClientCreated = "partner.client.created"
	EventClientUpdated = "partner.client.updated"
)

// ClientCreatedEvent is published when a new client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	BusinessName string `json:"business_name"`
	RUT          string `json:"rut,omitempty"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventClientCreated, client.ID, "Client"),
		BusinessName:    client.BusinessName,
		RUT:             client.RUT,
	}
}

// ClientUpdatedEvent is published when a client is updated
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	BusinessName string `json:"business_name"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(client *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventClientUpdated, client.ID, "Client"),
		BusinessName:    client.BusinessName,
	}
}
