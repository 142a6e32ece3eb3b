package sales

import (
	"context"
	"fmt"
	"time"

	appartner "github.com/notaventas/backend/internal/application/partner"
	"github.com/notaventas/backend/internal/domain/sales"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// ClientResolver resolves the client side of note creation. It is
// implemented by the partner ClientService.
type ClientResolver interface {
	ResolveOrCreate(ctx context.Context, input appartner.ResolveOrCreateInput) (*appartner.ClientResponse, bool, error)
	GetByID(ctx context.Context, clientID uuid.UUID) (*appartner.ClientResponse, error)
}

// Ensure the partner service satisfies the resolver contract
var _ ClientResolver = (*appartner.ClientService)(nil)

// NoteService handles sales-note business operations
type NoteService struct {
	noteRepo sales.NoteRepository
	clients  ClientResolver
	renderer printing.PDFRenderer
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo sales.NoteRepository, clients ClientResolver, renderer printing.PDFRenderer) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		clients:  clients,
		renderer: renderer,
	}
}

// Create creates a new note. The note number must be free and the client
// must resolve: by ID, or by RUT against existing clients, or by RUT plus
// guardar_cliente which creates the client from the request fields.
func (s *NoteService) Create(ctx context.Context, req CreateNoteRequest) (*NoteResponse, error) {
	exists, err := s.noteRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Note with this number already exists")
	}

	client, clientCreated, err := s.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	dispatchDate, err := time.Parse(dateLayout, req.DispatchDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DISPATCH_DATE", "Invalid dispatch date: "+req.DispatchDate)
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	note, err := sales.NewNote(req.Number, client.ID, dispatchDate, createdBy)
	if err != nil {
		return nil, err
	}

	if req.DeliveryMode != "" || req.ScheduleFrom != "" || req.ScheduleTo != "" {
		if err := note.SetDelivery(sales.DeliveryMode(req.DeliveryMode), req.ScheduleFrom, req.ScheduleTo); err != nil {
			return nil, err
		}
	}
	if req.Observation != "" {
		if err := note.SetObservation(req.Observation); err != nil {
			return nil, err
		}
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	response := ToNoteResponse(note)
	response.Client = client
	response.ClientCreated = clientCreated
	return &response, nil
}

// resolveClient resolves the client a new note should reference
func (s *NoteService) resolveClient(ctx context.Context, req CreateNoteRequest) (*appartner.ClientResponse, bool, error) {
	if req.ClientID != nil {
		client, err := s.clients.GetByID(ctx, *req.ClientID)
		if err != nil {
			return nil, false, err
		}
		return client, false, nil
	}

	if req.ClientRUT == "" {
		return nil, false, shared.NewDomainError("INVALID_CLIENT", "Note requires id_cliente or rut_cliente")
	}

	return s.clients.ResolveOrCreate(ctx, appartner.ResolveOrCreateInput{
		RUT:          req.ClientRUT,
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Commune:      req.Commune,
		Phone:        req.Phone,
		AllowCreate:  req.SaveClient,
		ActingUser:   req.CreatedBy,
	})
}

// GetByID retrieves a note by ID
func (s *NoteService) GetByID(ctx context.Context, noteID uuid.UUID) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	response := ToNoteResponse(note)
	if client, err := s.clients.GetByID(ctx, note.ClientID); err == nil {
		response.Client = client
	}
	return &response, nil
}

// GetByNumber retrieves a note by its business number
func (s *NoteService) GetByNumber(ctx context.Context, number int) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	response := ToNoteResponse(note)
	return &response, nil
}

// ValidateNumber reports whether a note number is still free
func (s *NoteService) ValidateNumber(ctx context.Context, number int) (*ValidateNumberResponse, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Note number must be positive")
	}

	exists, err := s.noteRepo.ExistsByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return &ValidateNumberResponse{Number: number, Available: !exists}, nil
}

// List retrieves notes with filtering and pagination
func (s *NoteService) List(ctx context.Context, filter NoteListFilter) (*shared.Paginated[NoteResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "number"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}
	if filter.RequestStatus != "" {
		domainFilter.Filters["request_status"] = filter.RequestStatus
	}

	notes, err := s.noteRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.noteRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToNoteResponses(notes), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a note
func (s *NoteService) Update(ctx context.Context, noteID uuid.UUID, req UpdateNoteRequest) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	updatedBy := uuid.Nil
	if req.UpdatedBy != nil {
		updatedBy = *req.UpdatedBy
	}

	if req.DispatchDate != nil {
		dispatchDate, err := time.Parse(dateLayout, *req.DispatchDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DISPATCH_DATE", "Invalid dispatch date: "+*req.DispatchDate)
		}
		if err := note.Reschedule(dispatchDate, updatedBy); err != nil {
			return nil, err
		}
	}

	if req.DeliveryMode != nil || req.ScheduleFrom != nil || req.ScheduleTo != nil {
		mode := note.DeliveryMode
		from := note.ScheduleFrom
		to := note.ScheduleTo

		if req.DeliveryMode != nil {
			mode = sales.DeliveryMode(*req.DeliveryMode)
		}
		if req.ScheduleFrom != nil {
			from = *req.ScheduleFrom
		}
		if req.ScheduleTo != nil {
			to = *req.ScheduleTo
		}

		if err := note.SetDelivery(mode, from, to); err != nil {
			return nil, err
		}
	}

	if req.Observation != nil {
		if err := note.SetObservation(*req.Observation); err != nil {
			return nil, err
		}
	}

	if req.RequestStatus != nil {
		if err := note.SetRequestStatus(sales.RequestStatus(*req.RequestStatus), updatedBy); err != nil {
			return nil, err
		}
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	response := ToNoteResponse(note)
	return &response, nil
}

// MarkRequested moves the note's invoice-request status to Solicitado
func (s *NoteService) MarkRequested(ctx context.Context, noteID uuid.UUID, updatedBy *uuid.UUID) (*NoteResponse, error) {
	status := string(sales.RequestStatusRequested)
	return s.Update(ctx, noteID, UpdateNoteRequest{RequestStatus: &status, UpdatedBy: updatedBy})
}

// Delete deletes a note
func (s *NoteService) Delete(ctx context.Context, noteID uuid.UUID) error {
	if _, err := s.noteRepo.FindByID(ctx, noteID); err != nil {
		return err
	}

	return s.noteRepo.Delete(ctx, noteID)
}

// RenderPDF renders the note as a dispatch document PDF
func (s *NoteService) RenderPDF(ctx context.Context, noteID uuid.UUID) (*NotePDF, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("PDF_DISABLED", "PDF rendering is not enabled")
	}

	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	doc := &printing.NoteDocument{
		Number:        note.Number,
		DispatchDate:  note.DispatchDate.Format("02-01-2006"),
		DeliveryMode:  string(note.DeliveryMode),
		ScheduleFrom:  note.ScheduleFrom,
		ScheduleTo:    note.ScheduleTo,
		Observation:   note.Observation,
		RequestStatus: string(note.RequestStatus),
		GeneratedAt:   time.Now().Format("02-01-2006 15:04"),
	}

	if client, err := s.clients.GetByID(ctx, note.ClientID); err == nil {
		doc.ClientName = client.BusinessName
		doc.ClientRUT = client.RUT
		doc.ClientAddress = client.Address + ", " + client.Commune
		doc.ClientPhone = client.Phone
	}

	html, err := printing.RenderNoteHTML(doc)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: fmt.Sprintf("Nota de Venta N° %d", note.Number),
	})
	if err != nil {
		return nil, err
	}

	return &NotePDF{
		FileName: fmt.Sprintf("nota_%d.pdf", note.Number),
		Data:     result.PDFData,
	}, nil
}
