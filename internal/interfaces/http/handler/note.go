package handler

import (
	"net/http"
	"strconv"

	salesapp "github.com/notaventas/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
)

// NoteHandler handles sales note API endpoints
type NoteHandler struct {
	BaseHandler
	noteService *salesapp.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *salesapp.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// RegisterRoutes registers sales note routes
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notas")
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/validar-numero/:numero", h.ValidateNumber)
		notes.GET("/por-numero/:numero", h.GetByNumber)
		notes.GET("/:id", h.GetByID)
		notes.PUT("/:id", h.Update)
		notes.POST("/:id/solicitar", h.MarkRequested)
		notes.GET("/:id/pdf", h.RenderPDF)
		notes.DELETE("/:id", h.Delete)
	}
}

// Create creates a sales note, resolving or creating its client by RUT
func (h *NoteHandler) Create(c *gin.Context) {
	var req salesapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.CreatedBy = actingUser(c)

	note, err := h.noteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, note)
}

// List returns notes with pagination and filters
func (h *NoteHandler) List(c *gin.Context) {
	var filter salesapp.NoteListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.noteService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ValidateNumber reports whether a note number is still available
func (h *NoteHandler) ValidateNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("numero"))
	if err != nil {
		h.BadRequest(c, "Invalid note number")
		return
	}

	result, err := h.noteService.ValidateNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByNumber returns a note by its business number
func (h *NoteHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("numero"))
	if err != nil {
		h.BadRequest(c, "Invalid note number")
		return
	}

	note, err := h.noteService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// GetByID returns a note by ID
func (h *NoteHandler) GetByID(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), noteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// Update updates a note
func (h *NoteHandler) Update(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	var req salesapp.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.UpdatedBy = actingUser(c)

	note, err := h.noteService.Update(c.Request.Context(), noteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// MarkRequested marks the note's invoice as requested
func (h *NoteHandler) MarkRequested(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	note, err := h.noteService.MarkRequested(c.Request.Context(), noteID, actingUser(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// RenderPDF renders the dispatch document for a note and streams it back
func (h *NoteHandler) RenderPDF(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	pdf, err := h.noteService.RenderPDF(c.Request.Context(), noteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf.Data)
}

// Delete removes a note
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), noteID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
