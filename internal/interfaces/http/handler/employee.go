package handler

import (
	workforceapp "github.com/notaventas/backend/internal/application/workforce"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles personnel endpoints, including Saturday
// attendance assignment and the historical report.
type EmployeeHandler struct {
	BaseHandler
	employeeService   *workforceapp.EmployeeService
	attendanceService *workforceapp.AttendanceService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(
	employeeService *workforceapp.EmployeeService,
	attendanceService *workforceapp.AttendanceService,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// RegisterRoutes registers personnel routes
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	personnel := rg.Group("/personal")
	{
		personnel.POST("", h.Create)
		personnel.GET("", h.List)
		personnel.GET("/historico-sabados", h.HistoricalSummary)
		personnel.GET("/:id", h.GetByID)
		personnel.PUT("/:id", h.Update)
		personnel.POST("/:id/activar", h.Activate)
		personnel.POST("/:id/desactivar", h.Deactivate)
		personnel.DELETE("/:id", h.Delete)
		personnel.GET("/:id/sabados-trabajados", h.WorkedSaturdays)
		personnel.POST("/:id/asignar-sabados", h.AssignSaturdays)
	}
}

// Create creates a new employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req workforceapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.CreatedBy = actingUser(c)

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, employee)
}

// List returns employees with pagination and filters
func (h *EmployeeHandler) List(c *gin.Context) {
	var filter workforceapp.EmployeeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns an employee by ID
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Update updates an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req workforceapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	req.UpdatedBy = actingUser(c)

	employee, err := h.employeeService.Update(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Activate marks an employee as active
func (h *EmployeeHandler) Activate(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.Activate(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Deactivate marks an employee as inactive
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.Deactivate(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Delete removes an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), employeeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// WorkedSaturdays returns the Saturdays an employee has worked, oldest first
func (h *EmployeeHandler) WorkedSaturdays(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	worked, err := h.attendanceService.WorkedSaturdays(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, worked)
}

// AssignSaturdays replaces an employee's worked-Saturday set with exactly
// the dates in the request.
func (h *EmployeeHandler) AssignSaturdays(c *gin.Context) {
	employeeID, ok := pathUUID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req workforceapp.AssignSaturdaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.attendanceService.AssignSaturdays(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// HistoricalSummary returns worked Saturdays bucketed by month and
// employee over the requested window.
func (h *EmployeeHandler) HistoricalSummary(c *gin.Context) {
	var filter workforceapp.HistoricalSummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entries, err := h.attendanceService.HistoricalSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}
