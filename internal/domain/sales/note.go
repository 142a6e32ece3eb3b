package sales

import (
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestStatus tracks whether a note's invoice has been requested
type RequestStatus string

const (
	RequestStatusRequested    RequestStatus = "Solicitado"
	RequestStatusNotRequested RequestStatus = "No Solicitado"
)

// DeliveryMode distinguishes dispatched notes from client pickups
type DeliveryMode string

const (
	DeliveryModeDispatch DeliveryMode = "Despacho"
	DeliveryModePickup   DeliveryMode = "Retira"
)

// Note represents a sales/dispatch note. Every note references exactly one
// client; the client must exist (or be created through the resolver) at
// note creation time, and clients cannot be deleted while notes reference
// them.
type Note struct {
	shared.AuditedAggregateRoot
	Number        int           `gorm:"uniqueIndex;not null"`
	ClientID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	DispatchDate  time.Time     `gorm:"not null"`
	RequestStatus RequestStatus `gorm:"type:varchar(30);not null;default:'No Solicitado'"`
	Observation   string        `gorm:"type:varchar(1000)"`
	DeliveryMode  DeliveryMode  `gorm:"type:varchar(50)"`
	ScheduleFrom  string        `gorm:"type:varchar(50)"`
	ScheduleTo    string        `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Note) TableName() string {
	return "notas"
}

// NewNote creates a new note referencing an existing client
func NewNote(number int, clientID uuid.UUID, dispatchDate time.Time, createdBy uuid.UUID) (*Note, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Note number must be positive")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Note requires a client")
	}
	if dispatchDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DISPATCH_DATE", "Dispatch date is required")
	}

	note := &Note{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(createdBy),
		Number:               number,
		ClientID:             clientID,
		DispatchDate:         dispatchDate,
		RequestStatus:        RequestStatusNotRequested,
	}

	note.AddDomainEvent(NewNoteCreatedEvent(note))

	return note, nil
}

// SetDelivery sets the delivery mode and time window
func (n *Note) SetDelivery(mode DeliveryMode, from, to string) error {
	switch mode {
	case DeliveryModeDispatch, DeliveryModePickup, "":
	default:
		return shared.NewDomainError("INVALID_DELIVERY", "Delivery mode must be Despacho or Retira")
	}
	if len(from) > 50 || len(to) > 50 {
		return shared.NewDomainError("INVALID_SCHEDULE", "Schedule cannot exceed 50 characters")
	}

	n.DeliveryMode = mode
	n.ScheduleFrom = from
	n.ScheduleTo = to
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// SetObservation sets the free-form observation text
func (n *Note) SetObservation(observation string) error {
	if len(observation) > 1000 {
		return shared.NewDomainError("INVALID_OBSERVATION", "Observation cannot exceed 1000 characters")
	}
	n.Observation = observation
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
	return nil
}

// SetRequestStatus moves the invoice-request status
func (n *Note) SetRequestStatus(status RequestStatus, updatedBy uuid.UUID) error {
	switch status {
	case RequestStatusRequested, RequestStatusNotRequested:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be Solicitado or No Solicitado")
	}

	n.RequestStatus = status
	if updatedBy != uuid.Nil {
		n.SetUpdatedBy(updatedBy)
	}
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	return nil
}

// Reschedule changes the dispatch date
func (n *Note) Reschedule(dispatchDate time.Time, updatedBy uuid.UUID) error {
	if dispatchDate.IsZero() {
		return shared.NewDomainError("INVALID_DISPATCH_DATE", "Dispatch date is required")
	}
	n.DispatchDate = dispatchDate
	if updatedBy != uuid.Nil {
		n.SetUpdatedBy(updatedBy)
	}
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
	return nil
}

// IsRequested reports whether the invoice has been requested for this note
func (n *Note) IsRequested() bool {
	return n.RequestStatus == RequestStatusRequested
}
