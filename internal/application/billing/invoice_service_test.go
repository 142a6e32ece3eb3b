package billing

import (
	"context"
	"testing"

	"github.com/notaventas/backend/internal/domain/billing"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/notaventas/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The S3 adapter and its in-memory stand-in both satisfy ObjectStorage.
var (
	_ ObjectStorage = (*storage.S3ObjectStorage)(nil)
	_ ObjectStorage = (*storage.InMemoryObjectStorage)(nil)
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.InvoiceDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.InvoiceDocument), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.InvoiceDocument, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.InvoiceDocument), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, doc *billing.InvoiceDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNote(ctx context.Context, noteID uuid.UUID) ([]*billing.InvoiceDocument, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.InvoiceDocument), args.Error(1)
}

func (m *MockInvoiceRepository) FindByStorageKey(ctx context.Context, key string) (*billing.InvoiceDocument, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.InvoiceDocument), args.Error(1)
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4\ncontenido\n")
}

func TestInvoiceService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores object and metadata", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		store := storage.NewInMemoryObjectStorage()
		service := NewInvoiceService(repo, store, 0, nil)

		var savedKey string
		repo.On("Save", ctx, mock.AnythingOfType("*billing.InvoiceDocument")).Run(func(args mock.Arguments) {
			savedKey = args.Get(1).(*billing.InvoiceDocument).StorageKey
		}).Return(nil)

		noteID := uuid.New()
		resp, err := service.Upload(ctx, UploadInvoiceRequest{
			FileName:    "factura 1042.pdf",
			ContentType: "application/pdf",
			Data:        pdfBytes(),
			NoteID:      &noteID,
		})

		require.NoError(t, err)
		assert.Equal(t, "factura 1042.pdf", resp.FileName)
		assert.Equal(t, int64(len(pdfBytes())), resp.SizeBytes)
		require.NotNil(t, resp.NoteID)
		assert.Equal(t, noteID, *resp.NoteID)

		data, ok := store.Get(savedKey)
		require.True(t, ok)
		assert.Equal(t, pdfBytes(), data)
	})

	t.Run("rejects non-PDF uploads", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		store := storage.NewInMemoryObjectStorage()
		service := NewInvoiceService(repo, store, 0, nil)

		_, err := service.Upload(ctx, UploadInvoiceRequest{
			FileName:    "factura.png",
			ContentType: "image/png",
			Data:        []byte("not a pdf"),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("removes object when metadata save fails", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		store := storage.NewInMemoryObjectStorage()
		service := NewInvoiceService(repo, store, 0, nil)

		var savedKey string
		repo.On("Save", ctx, mock.AnythingOfType("*billing.InvoiceDocument")).Run(func(args mock.Arguments) {
			savedKey = args.Get(1).(*billing.InvoiceDocument).StorageKey
		}).Return(shared.NewDomainError("DB_DOWN", "database unavailable"))

		_, err := service.Upload(ctx, UploadInvoiceRequest{
			FileName:    "factura.pdf",
			ContentType: "application/pdf",
			Data:        pdfBytes(),
		})

		require.Error(t, err)
		exists, err := store.ObjectExists(ctx, savedKey)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestInvoiceService_DownloadURL(t *testing.T) {
	ctx := context.Background()

	repo := new(MockInvoiceRepository)
	store := storage.NewInMemoryObjectStorage()
	service := NewInvoiceService(repo, store, 0, nil)

	doc, err := billing.NewInvoiceDocument("facturas/2026/08/factura_x.pdf", "factura.pdf", "application/pdf", 10, uuid.New())
	require.NoError(t, err)
	require.NoError(t, store.Upload(ctx, doc.StorageKey, pdfBytes(), doc.ContentType))

	repo.On("FindByID", ctx, doc.ID).Return(doc, nil)

	resp, err := service.DownloadURL(ctx, doc.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.URL)
	assert.Equal(t, "factura.pdf", resp.FileName)
	assert.False(t, resp.ExpiresAt.IsZero())
}

func TestInvoiceService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(MockInvoiceRepository)
	store := storage.NewInMemoryObjectStorage()
	service := NewInvoiceService(repo, store, 0, nil)

	doc, err := billing.NewInvoiceDocument("facturas/2026/08/factura_y.pdf", "factura.pdf", "application/pdf", 10, uuid.New())
	require.NoError(t, err)
	require.NoError(t, store.Upload(ctx, doc.StorageKey, pdfBytes(), doc.ContentType))

	repo.On("FindByID", ctx, doc.ID).Return(doc, nil)
	repo.On("Delete", ctx, doc.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, doc.ID))

	exists, err := store.ObjectExists(ctx, doc.StorageKey)
	require.NoError(t, err)
	assert.False(t, exists)
}
