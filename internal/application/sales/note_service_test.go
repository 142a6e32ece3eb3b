package sales

import (
	"context"
	"testing"
	"time"

	appartner "github.com/notaventas/backend/internal/application/partner"
	"github.com/notaventas/backend/internal/domain/sales"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Note), args.Error(1)
}

func (m *MockNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Note, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Note), args.Error(1)
}

func (m *MockNoteRepository) Save(ctx context.Context, note *sales.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) FindByNumber(ctx context.Context, number int) (*sales.Note, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Note), args.Error(1)
}

func (m *MockNoteRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// MockClientResolver is a mock implementation of ClientResolver
type MockClientResolver struct {
	mock.Mock
}

func (m *MockClientResolver) ResolveOrCreate(ctx context.Context, input appartner.ResolveOrCreateInput) (*appartner.ClientResponse, bool, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*appartner.ClientResponse), args.Bool(1), args.Error(2)
}

func (m *MockClientResolver) GetByID(ctx context.Context, clientID uuid.UUID) (*appartner.ClientResponse, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appartner.ClientResponse), args.Error(1)
}

func clientResponse(rut string) *appartner.ClientResponse {
	return &appartner.ClientResponse{
		ID:           uuid.New(),
		BusinessName: "Comercial Los Andes Ltda",
		RUT:          rut,
		Address:      "Av. Providencia 1234",
		Commune:      "Providencia",
	}
}

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates note for existing client by RUT", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		resolver := new(MockClientResolver)
		service := NewNoteService(noteRepo, resolver, printing.NewStubRenderer())

		client := clientResponse("12345678-5")
		noteRepo.On("ExistsByNumber", ctx, 1042).Return(false, nil)
		resolver.On("ResolveOrCreate", ctx, mock.MatchedBy(func(input appartner.ResolveOrCreateInput) bool {
			return input.RUT == "12345678-5" && !input.AllowCreate
		})).Return(client, false, nil)
		noteRepo.On("Save", ctx, mock.AnythingOfType("*sales.Note")).Return(nil)

		resp, err := service.Create(ctx, CreateNoteRequest{
			Number:       1042,
			ClientRUT:    "12345678-5",
			DispatchDate: "2026-09-05",
		})

		require.NoError(t, err)
		assert.Equal(t, 1042, resp.Number)
		assert.Equal(t, client.ID, resp.ClientID)
		assert.False(t, resp.ClientCreated)
		assert.Equal(t, "No Solicitado", resp.RequestStatus)
		noteRepo.AssertExpectations(t)
	})

	t.Run("creates client on the fly with guardar_cliente", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		resolver := new(MockClientResolver)
		service := NewNoteService(noteRepo, resolver, printing.NewStubRenderer())

		client := clientResponse("20347878-K")
		noteRepo.On("ExistsByNumber", ctx, 7).Return(false, nil)
		resolver.On("ResolveOrCreate", ctx, mock.MatchedBy(func(input appartner.ResolveOrCreateInput) bool {
			return input.AllowCreate && input.BusinessName == "Cliente Nuevo SpA"
		})).Return(client, true, nil)
		noteRepo.On("Save", ctx, mock.AnythingOfType("*sales.Note")).Return(nil)

		resp, err := service.Create(ctx, CreateNoteRequest{
			Number:       7,
			ClientRUT:    "20.347.878-k",
			SaveClient:   true,
			BusinessName: "Cliente Nuevo SpA",
			Address:      "Camino Real 55",
			Commune:      "Maipú",
			DispatchDate: "2026-09-05",
		})

		require.NoError(t, err)
		assert.True(t, resp.ClientCreated)
	})

	t.Run("rejects duplicate number", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		resolver := new(MockClientResolver)
		service := NewNoteService(noteRepo, resolver, printing.NewStubRenderer())

		noteRepo.On("ExistsByNumber", ctx, 1042).Return(true, nil)

		_, err := service.Create(ctx, CreateNoteRequest{
			Number:       1042,
			ClientRUT:    "12345678-5",
			DispatchDate: "2026-09-05",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		resolver.AssertNotCalled(t, "ResolveOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("requires a client reference", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		resolver := new(MockClientResolver)
		service := NewNoteService(noteRepo, resolver, printing.NewStubRenderer())

		noteRepo.On("ExistsByNumber", ctx, 9).Return(false, nil)

		_, err := service.Create(ctx, CreateNoteRequest{
			Number:       9,
			DispatchDate: "2026-09-05",
		})

		require.Error(t, err)
		noteRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown RUT without guardar_cliente fails", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		resolver := new(MockClientResolver)
		service := NewNoteService(noteRepo, resolver, printing.NewStubRenderer())

		noteRepo.On("ExistsByNumber", ctx, 9).Return(false, nil)
		resolver.On("ResolveOrCreate", ctx, mock.Anything).Return(nil, false,
			shared.NewDomainError("INVALID_CLIENT", "No client registered with RUT 12345678-5 and creation was not requested"))

		_, err := service.Create(ctx, CreateNoteRequest{
			Number:       9,
			ClientRUT:    "12345678-5",
			DispatchDate: "2026-09-05",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CLIENT", domainErr.Code)
		assert.Contains(t, domainErr.Message, "12345678-5")
		noteRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestNoteService_ValidateNumber(t *testing.T) {
	ctx := context.Background()

	noteRepo := new(MockNoteRepository)
	service := NewNoteService(noteRepo, new(MockClientResolver), printing.NewStubRenderer())

	noteRepo.On("ExistsByNumber", ctx, 1042).Return(true, nil)
	noteRepo.On("ExistsByNumber", ctx, 1043).Return(false, nil)

	taken, err := service.ValidateNumber(ctx, 1042)
	require.NoError(t, err)
	assert.False(t, taken.Available)

	free, err := service.ValidateNumber(ctx, 1043)
	require.NoError(t, err)
	assert.True(t, free.Available)

	_, err = service.ValidateNumber(ctx, 0)
	require.Error(t, err)
}

func TestNoteService_RenderPDF(t *testing.T) {
	ctx := context.Background()

	noteRepo := new(MockNoteRepository)
	resolver := new(MockClientResolver)
	renderer := printing.NewStubRenderer()
	service := NewNoteService(noteRepo, resolver, renderer)

	client := clientResponse("12345678-5")
	note, err := sales.NewNote(1042, client.ID, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), uuid.New())
	require.NoError(t, err)

	noteRepo.On("FindByID", ctx, note.ID).Return(note, nil)
	resolver.On("GetByID", ctx, client.ID).Return(client, nil)

	pdf, err := service.RenderPDF(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "nota_1042.pdf", pdf.FileName)
	assert.NotEmpty(t, pdf.Data)
	assert.Contains(t, renderer.LastRequest.HTML, "Comercial Los Andes Ltda")
	assert.Contains(t, renderer.LastRequest.HTML, "05-09-2026")
}

func TestNoteService_RenderPDFDisabled(t *testing.T) {
	service := NewNoteService(new(MockNoteRepository), new(MockClientResolver), nil)

	_, err := service.RenderPDF(context.Background(), uuid.New())
	require.Error(t, err)
}
