package billing

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/billing"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxInvoiceSize caps uploads at 20 MiB
const maxInvoiceSize = 20 << 20

// ObjectStorage is the blob capability the invoice service needs. It is
// implemented by the S3 storage adapter.
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// InvoiceService handles invoice document operations: upload to object
// storage, metadata persistence and presigned downloads.
type InvoiceService struct {
	invoiceRepo   billing.InvoiceRepository
	storage       ObjectStorage
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, storage ObjectStorage, presignExpiry time.Duration, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &InvoiceService{
		invoiceRepo:   invoiceRepo,
		storage:       storage,
		presignExpiry: presignExpiry,
		logger:        logger,
	}
}

// Upload stores an invoice PDF and its metadata. The object is written
// first; a metadata failure removes the orphaned object best-effort.
func (s *InvoiceService) Upload(ctx context.Context, req UploadInvoiceRequest) (*InvoiceResponse, error) {
	if req.ContentType != "application/pdf" {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Invoice documents must be PDF files")
	}
	if len(req.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Uploaded file is empty")
	}
	if len(req.Data) > maxInvoiceSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "Invoice file exceeds the maximum allowed size")
	}

	storageKey := buildStorageKey(req.FileName)

	uploadedBy := uuid.Nil
	if req.UploadedBy != nil {
		uploadedBy = *req.UploadedBy
	}

	doc, err := billing.NewInvoiceDocument(storageKey, req.FileName, req.ContentType, int64(len(req.Data)), uploadedBy)
	if err != nil {
		return nil, err
	}
	if req.NoteID != nil {
		if err := doc.AttachToNote(*req.NoteID); err != nil {
			return nil, err
		}
	}

	if err := s.storage.Upload(ctx, storageKey, req.Data, req.ContentType); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, doc); err != nil {
		if cleanupErr := s.storage.DeleteObject(ctx, storageKey); cleanupErr != nil {
			s.logger.Warn("failed to remove orphaned invoice object",
				zap.String("storage_key", storageKey),
				zap.Error(cleanupErr))
		}
		return nil, err
	}

	s.logger.Info("invoice uploaded",
		zap.String("storage_key", storageKey),
		zap.Int64("size_bytes", doc.SizeBytes))

	response := ToInvoiceResponse(doc)
	return &response, nil
}

// GetByID retrieves invoice metadata by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	doc, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(doc)
	return &response, nil
}

// List retrieves invoice documents with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) (*shared.Paginated[InvoiceResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "issued_at"
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
	if filter.NoteID != "" {
		domainFilter.Filters["note_id"] = filter.NoteID
	}

	docs, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToInvoiceResponses(docs), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByNote retrieves the invoices attached to a note, newest first
func (s *InvoiceService) ListByNote(ctx context.Context, noteID uuid.UUID) ([]InvoiceResponse, error) {
	docs, err := s.invoiceRepo.FindByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(docs))
	for i, doc := range docs {
		responses[i] = ToInvoiceResponse(doc)
	}
	return responses, nil
}

// DownloadURL issues a presigned link for an invoice object
func (s *InvoiceService) DownloadURL(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDownloadResponse, error) {
	doc, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, doc.StorageKey, s.presignExpiry)
	if err != nil {
		return nil, err
	}

	return &InvoiceDownloadResponse{
		ID:        doc.ID,
		FileName:  doc.FileName,
		URL:       url,
		ExpiresAt: expiresAt,
	}, nil
}

// Delete removes invoice metadata and best-effort deletes the stored object
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	doc, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.Delete(ctx, invoiceID); err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("failed to delete invoice object",
			zap.String("storage_key", doc.StorageKey),
			zap.Error(err))
	}

	return nil
}

// buildStorageKey derives a collision-free object key from the file name
func buildStorageKey(fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		base = "factura"
	}
	now := time.Now().UTC()
	return fmt.Sprintf("facturas/%04d/%02d/%s_%s.pdf", now.Year(), int(now.Month()), base, uuid.NewString())
}
