package handler

import (
	"io"

	billingapp "github.com/notaventas/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice PDF uploads and downloads
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/facturas")
	{
		invoices.POST("", h.Upload)
		invoices.GET("", h.List)
		invoices.GET("/por-nota/:id", h.ListByNote)
		invoices.GET("/:id", h.GetByID)
		invoices.GET("/:id/descarga", h.DownloadURL)
		invoices.DELETE("/:id", h.Delete)
	}
}

// Upload stores an invoice PDF sent as multipart form data. The file goes
// in the "archivo" field; "id_nota" optionally links the invoice to a note.
func (h *InvoiceHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		h.BadRequest(c, "Missing file field 'archivo'")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}

	req := billingapp.UploadInvoiceRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		UploadedBy:  actingUser(c),
	}

	if noteIDStr := c.PostForm("id_nota"); noteIDStr != "" {
		noteID, err := uuid.Parse(noteIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid note ID")
			return
		}
		req.NoteID = &noteID
	}

	invoice, err := h.invoiceService.Upload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// List returns invoices with pagination and filters
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListByNote returns the invoices attached to a sales note
func (h *InvoiceHandler) ListByNote(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	invoices, err := h.invoiceService.ListByNote(c.Request.Context(), noteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// GetByID returns invoice metadata by ID
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoiceID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// DownloadURL returns a short-lived presigned URL for the invoice PDF
func (h *InvoiceHandler) DownloadURL(c *gin.Context) {
	invoiceID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	download, err := h.invoiceService.DownloadURL(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, download)
}

// Delete removes an invoice and its stored object
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoiceID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
