package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	onboardingapp "github.com/hrms/backend/internal/application/onboarding"
	"github.com/hrms/backend/internal/domain/shared"
)

// OnboardingHandler handles onboarding checklist API endpoints
type OnboardingHandler struct {
	BaseHandler
	onboardingService *onboardingapp.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler
func NewOnboardingHandler(onboardingService *onboardingapp.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// ChecklistTaskRequest represents one task in a checklist
type ChecklistTaskRequest struct {
	Name          string     `json:"name" binding:"required,max=200" example:"Set up workstation"`
	Type          string     `json:"type" binding:"required,oneof=documentation it_setup training introduction compliance equipment other" example:"it_setup"`
	SequenceOrder int        `json:"sequence_order" binding:"min=0" example:"1"`
	Mandatory     bool       `json:"mandatory" example:"true"`
	DueDate       *time.Time `json:"due_date"`
	AssignedTo    *uuid.UUID `json:"assigned_to"`
}

// CreateChecklistRequest represents a request to create an onboarding checklist
type CreateChecklistRequest struct {
	EmployeeID   uuid.UUID `json:"employee_id" binding:"required"`
	Name         string    `json:"name" binding:"required,max=200" example:"Engineering onboarding"`
	StartDate    time.Time `json:"start_date" binding:"required" example:"2026-09-01T00:00:00Z"`
	DurationDays int       `json:"duration_days" binding:"min=0" example:"30"`

	HRContactID *uuid.UUID `json:"hr_contact_id"`
	ManagerID   *uuid.UUID `json:"manager_id"`
	BuddyID     *uuid.UUID `json:"buddy_id"`

	Tasks []ChecklistTaskRequest `json:"tasks"` // Empty applies the default template
}

// CompleteTaskRequest carries completion notes
type CompleteTaskRequest struct {
	Notes string `json:"notes" binding:"max=1000" example:"Laptop issued, accounts created"`
}

// MarkOverdueResponse reports how many checklists were flagged
type MarkOverdueResponse struct {
	Marked int `json:"marked" example:"2"`
}

// CreateChecklist godoc
// @ID           createOnboardingChecklist
//
//	@Summary		Create onboarding checklist
//	@Description	Create an onboarding checklist for a new employee, with custom tasks or the default template
//	@Tags			onboarding
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		CreateChecklistRequest	true	"Checklist data"
//	@Success		201			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists [post]
func (h *OnboardingHandler) CreateChecklist(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tasks := make([]onboardingapp.TaskInput, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, onboardingapp.TaskInput{
			Name:          t.Name,
			Type:          t.Type,
			SequenceOrder: t.SequenceOrder,
			Mandatory:     t.Mandatory,
			DueDate:       t.DueDate,
			AssignedTo:    t.AssignedTo,
		})
	}

	input := onboardingapp.CreateChecklistInput{
		CompanyID:    companyID,
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		HRContactID:  req.HRContactID,
		ManagerID:    req.ManagerID,
		BuddyID:      req.BuddyID,
		Tasks:        tasks,
	}

	checklist, err := h.onboardingService.CreateChecklist(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, checklist)
}

// AddTask godoc
// @ID           addOnboardingTask
//
//	@Summary		Add checklist task
//	@Description	Append a task to an in-progress checklist
//	@Tags			onboarding
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Checklist ID"	format(uuid)
//	@Param			request		body		ChecklistTaskRequest	true	"Task data"
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id}/tasks [post]
func (h *OnboardingHandler) AddTask(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	var req ChecklistTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := onboardingapp.TaskInput{
		Name:          req.Name,
		Type:          req.Type,
		SequenceOrder: req.SequenceOrder,
		Mandatory:     req.Mandatory,
		DueDate:       req.DueDate,
		AssignedTo:    req.AssignedTo,
	}

	checklist, err := h.onboardingService.AddTask(c.Request.Context(), companyID, checklistID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// StartTask godoc
// @ID           startOnboardingTask
//
//	@Summary		Start checklist task
//	@Description	Mark a pending task as in progress
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Checklist ID"	format(uuid)
//	@Param			task_id		path		string	true	"Task ID"		format(uuid)
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id}/tasks/{task_id}/start [post]
func (h *OnboardingHandler) StartTask(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	checklist, err := h.onboardingService.StartTask(c.Request.Context(), companyID, checklistID, taskID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// CompleteTask godoc
// @ID           completeOnboardingTask
//
//	@Summary		Complete checklist task
//	@Description	Mark a task as done; the checklist completes when all mandatory tasks are done
//	@Tags			onboarding
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Checklist ID"	format(uuid)
//	@Param			task_id		path		string				true	"Task ID"		format(uuid)
//	@Param			request		body		CompleteTaskRequest	false	"Completion notes"
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id}/tasks/{task_id}/complete [post]
func (h *OnboardingHandler) CompleteTask(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	completedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	checklist, err := h.onboardingService.CompleteTask(c.Request.Context(), companyID, checklistID, taskID, completedBy, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// SkipTask godoc
// @ID           skipOnboardingTask
//
//	@Summary		Skip checklist task
//	@Description	Skip an optional task; mandatory tasks cannot be skipped
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Checklist ID"	format(uuid)
//	@Param			task_id		path		string	true	"Task ID"		format(uuid)
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id}/tasks/{task_id}/skip [post]
func (h *OnboardingHandler) SkipTask(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	checklist, err := h.onboardingService.SkipTask(c.Request.Context(), companyID, checklistID, taskID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// CancelChecklist godoc
// @ID           cancelOnboardingChecklist
//
//	@Summary		Cancel onboarding checklist
//	@Description	Cancel an in-progress checklist
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Checklist ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id} [delete]
func (h *OnboardingHandler) CancelChecklist(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	if err := h.onboardingService.CancelChecklist(c.Request.Context(), companyID, checklistID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetChecklist godoc
// @ID           getOnboardingChecklist
//
//	@Summary		Get onboarding checklist
//	@Description	Retrieve a checklist with its tasks
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Checklist ID"	format(uuid)
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/{id} [get]
func (h *OnboardingHandler) GetChecklist(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	checklistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checklist ID format")
		return
	}

	checklist, err := h.onboardingService.GetChecklist(c.Request.Context(), companyID, checklistID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// GetByEmployee godoc
// @ID           getEmployeeOnboarding
//
//	@Summary		Get employee onboarding
//	@Description	Retrieve the onboarding checklist of an employee
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/employees/{employee_id} [get]
func (h *OnboardingHandler) GetByEmployee(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	checklist, err := h.onboardingService.GetByEmployee(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, checklist)
}

// ListChecklists godoc
// @ID           listOnboardingChecklists
//
//	@Summary		List onboarding checklists
//	@Description	Retrieve a paginated list of checklists with an optional status filter
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			status		query		string	false	"Checklist status"	Enums(in_progress, completed, overdue, cancelled)
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			page_size	query		int		false	"Page size"			default(20)
//	@Success		200			{object}	APIResponse[[]onboardingapp.ChecklistDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists [get]
func (h *OnboardingHandler) ListChecklists(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.onboardingService.ListChecklists(c.Request.Context(), companyID, c.Query("status"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Checklists, result.Total, result.Page, result.PageSize)
}

// MarkOverdue godoc
// @ID           markOverdueChecklists
//
//	@Summary		Mark overdue checklists
//	@Description	Flag in-progress checklists past their expected completion date
//	@Tags			onboarding
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[MarkOverdueResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/onboarding/checklists/mark-overdue [post]
func (h *OnboardingHandler) MarkOverdue(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	marked, err := h.onboardingService.MarkOverdueChecklists(c.Request.Context(), companyID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, MarkOverdueResponse{Marked: marked})
}
