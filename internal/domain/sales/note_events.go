package sales

import (
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the note aggregate
const (
	EventNoteCreated = "sales.note.created"
)

// NoteCreatedEvent is published when a new note is created
type NoteCreatedEvent struct {
	shared.BaseDomainEvent
	Number   int       `json:"number"`
	ClientID uuid.UUID `json:"client_id"`
}

// NewNoteCreatedEvent creates a new NoteCreatedEvent
func NewNoteCreatedEvent(note *Note) *NoteCreatedEvent {
	return &NoteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventNoteCreated, note.ID, "Note"),
		Number:          note.Number,
		ClientID:        note.ClientID,
	}
}
