package billing

import (
	"strings"
	"time"

	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceDocument is the metadata row for an invoice PDF held in object
// storage. The binary itself lives under StorageKey; deleting the document
// removes the row and best-effort deletes the object.
type InvoiceDocument struct {
	shared.AuditedAggregateRoot
	NoteID      *uuid.UUID `gorm:"type:uuid;index"`
	StorageKey  string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	FileName    string     `gorm:"type:varchar(300);not null"`
	ContentType string     `gorm:"type:varchar(100);not null"`
	SizeBytes   int64      `gorm:"not null"`
	IssuedAt    time.Time
}

// TableName returns the table name for GORM
func (InvoiceDocument) TableName() string {
	return "facturas"
}

// NewInvoiceDocument creates invoice metadata for an uploaded PDF
func NewInvoiceDocument(storageKey, fileName, contentType string, sizeBytes int64, uploadedBy uuid.UUID) (*InvoiceDocument, error) {
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if contentType != "application/pdf" {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Invoice documents must be PDF files")
	}
	if sizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "File size must be positive")
	}

	return &InvoiceDocument{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(uploadedBy),
		StorageKey:           storageKey,
		FileName:             fileName,
		ContentType:          contentType,
		SizeBytes:            sizeBytes,
		IssuedAt:             time.Now(),
	}, nil
}

// AttachToNote links the invoice to a sales note
func (d *InvoiceDocument) AttachToNote(noteID uuid.UUID) error {
	if noteID == uuid.Nil {
		return shared.NewDomainError("INVALID_NOTE", "Note ID cannot be nil")
	}
	d.NoteID = &noteID
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}
