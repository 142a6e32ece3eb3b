package sales

import (
	"time"

	appartner "github.com/notaventas/backend/internal/application/partner"
	"github.com/notaventas/backend/internal/domain/sales"
	"github.com/google/uuid"
)

// CreateNoteRequest represents a request to create a sales note. The client
// is referenced either directly by id_cliente or through rut_cliente; with
// guardar_cliente set, an unknown RUT creates the client on the fly.
type CreateNoteRequest struct {
	Number       int        `json:"numero" binding:"required,min=1"`
	ClientID     *uuid.UUID `json:"id_cliente"`
	ClientRUT    string     `json:"rut_cliente" binding:"omitempty,rut"`
	SaveClient   bool       `json:"guardar_cliente"`
	BusinessName string     `json:"razon_social" binding:"max=300"`
	Address      string     `json:"direccion" binding:"max=200"`
	Commune      string     `json:"comuna" binding:"max=50"`
	Phone        string     `json:"telefono" binding:"max=20"`
	DispatchDate string     `json:"fecha_despacho" binding:"required,datetime=2006-01-02"`
	Observation  string     `json:"observacion" binding:"max=1000"`
	DeliveryMode string     `json:"modo_entrega" binding:"omitempty,oneof=Despacho Retira"`
	ScheduleFrom string     `json:"horario_desde" binding:"max=50"`
	ScheduleTo   string     `json:"horario_hasta" binding:"max=50"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// UpdateNoteRequest represents a request to update a note
type UpdateNoteRequest struct {
	DispatchDate  *string    `json:"fecha_despacho" binding:"omitempty,datetime=2006-01-02"`
	Observation   *string    `json:"observacion" binding:"omitempty,max=1000"`
	DeliveryMode  *string    `json:"modo_entrega" binding:"omitempty,oneof=Despacho Retira"`
	ScheduleFrom  *string    `json:"horario_desde" binding:"omitempty,max=50"`
	ScheduleTo    *string    `json:"horario_hasta" binding:"omitempty,max=50"`
	RequestStatus *string    `json:"estado_solicitud" binding:"omitempty,oneof=Solicitado 'No Solicitado'"`
	UpdatedBy     *uuid.UUID `json:"-"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Number        int                         `json:"numero"`
	ClientID      uuid.UUID                   `json:"id_cliente"`
	Client        *appartner.ClientResponse   `json:"cliente,omitempty"`
	DispatchDate  string                      `json:"fecha_despacho"`
	RequestStatus string                      `json:"estado_solicitud"`
	Observation   string                      `json:"observacion"`
	DeliveryMode  string                      `json:"modo_entrega"`
	ScheduleFrom  string                      `json:"horario_desde"`
	ScheduleTo    string                      `json:"horario_hasta"`
	ClientCreated bool                        `json:"cliente_creado,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	Version       int                         `json:"version"`
}

// NoteListFilter represents filter options for the note list
type NoteListFilter struct {
	Search        string `form:"search"`
	ClientID      string `form:"id_cliente" binding:"omitempty,uuid"`
	RequestStatus string `form:"estado_solicitud" binding:"omitempty,oneof=Solicitado 'No Solicitado'"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ValidateNumberResponse reports whether a note number is free
type ValidateNumberResponse struct {
	Number    int  `json:"numero"`
	Available bool `json:"disponible"`
}

// NotePDF is a rendered dispatch note ready to stream to the caller
type NotePDF struct {
	FileName string
	Data     []byte
}

// dateLayout is the wire format for note dates
const dateLayout = "2006-01-02"

// ToNoteResponse maps a domain note to its response DTO
func ToNoteResponse(note *sales.Note) NoteResponse {
	return NoteResponse{
		ID:            note.ID,
		Number:        note.Number,
		ClientID:      note.ClientID,
		DispatchDate:  note.DispatchDate.Format(dateLayout),
		RequestStatus: string(note.RequestStatus),
		Observation:   note.Observation,
		DeliveryMode:  string(note.DeliveryMode),
		ScheduleFrom:  note.ScheduleFrom,
		ScheduleTo:    note.ScheduleTo,
		CreatedAt:     note.CreatedAt,
		UpdatedAt:     note.UpdatedAt,
		Version:       note.Version,
	}
}

// ToNoteResponses maps a slice of domain notes to response DTOs
func ToNoteResponses(notes []sales.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = ToNoteResponse(&notes[i])
	}
	return responses
}
