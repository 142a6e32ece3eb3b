package billing

import (
	"time"

	"github.com/notaventas/backend/internal/domain/billing"
	"github.com/google/uuid"
)

// UploadInvoiceRequest carries an invoice PDF upload
type UploadInvoiceRequest struct {
	FileName    string
	ContentType string
	Data        []byte
	NoteID      *uuid.UUID
	UploadedBy  *uuid.UUID
}

// InvoiceResponse represents an invoice document in API responses
type InvoiceResponse struct {
	ID          uuid.UUID  `json:"id"`
	NoteID      *uuid.UUID `json:"id_nota"`
	FileName    string     `json:"nombre_archivo"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"tamano_bytes"`
	IssuedAt    time.Time  `json:"emitida_en"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InvoiceDownloadResponse carries a presigned download link
type InvoiceDownloadResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"nombre_archivo"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expira_en"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	NoteID   string `form:"id_nota" binding:"omitempty,uuid"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInvoiceResponse maps a domain invoice document to its response DTO
func ToInvoiceResponse(doc *billing.InvoiceDocument) InvoiceResponse {
	return InvoiceResponse{
		ID:          doc.ID,
		NoteID:      doc.NoteID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		IssuedAt:    doc.IssuedAt,
		CreatedAt:   doc.CreatedAt,
	}
}

// ToInvoiceResponses maps a slice of invoice documents to response DTOs
func ToInvoiceResponses(docs []billing.InvoiceDocument) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(docs))
	for i := range docs {
		responses[i] = ToInvoiceResponse(&docs[i])
	}
	return responses
}
