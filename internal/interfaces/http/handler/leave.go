package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	leaveapp "github.com/hrms/backend/internal/application/leave"
	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveHandler handles leave request and balance API endpoints
type LeaveHandler struct {
	BaseHandler
	leaveService *leaveapp.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler
func NewLeaveHandler(leaveService *leaveapp.LeaveService) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

// SubmitLeaveRequest represents a request to submit a leave application
// @Description	Request body for submitting a leave request
type SubmitLeaveRequest struct {
	EmployeeID      uuid.UUID       `json:"employee_id" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=vacation sick personal maternity paternity bereavement unpaid" example:"vacation"`
	StartDate       time.Time       `json:"start_date" binding:"required" example:"2026-10-05T00:00:00Z"`
	EndDate         time.Time       `json:"end_date" binding:"required" example:"2026-10-09T00:00:00Z"`
	Days            decimal.Decimal `json:"days" example:"5"` // Derived from the range when zero
	HalfDayStart    bool            `json:"half_day_start" example:"false"`
	HalfDayEnd      bool            `json:"half_day_end" example:"false"`
	Reason          string          `json:"reason" binding:"max=500" example:"Family trip"`
	AttachmentURL   string          `json:"attachment_url" binding:"max=500"`
	CoverEmployeeID *uuid.UUID      `json:"cover_employee_id"`
}

// DecideLeaveRequest represents an approval or rejection decision
type DecideLeaveRequest struct {
	Note string `json:"note" binding:"max=500" example:"Approved, enjoy"`
}

// Submit godoc
// @ID           submitLeaveRequest
//
//	@Summary		Submit a leave request
//	@Description	Submit a leave request validated against policy and balance; small requests may auto-approve
//	@Tags			leave
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			request		body		SubmitLeaveRequest	true	"Leave request"
//	@Success		201			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := leaveapp.SubmitRequestInput{
		CompanyID:       companyID,
		EmployeeID:      req.EmployeeID,
		Type:            req.Type,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Days:            req.Days,
		HalfDayStart:    req.HalfDayStart,
		HalfDayEnd:      req.HalfDayEnd,
		Reason:          req.Reason,
		AttachmentURL:   req.AttachmentURL,
		CoverEmployeeID: req.CoverEmployeeID,
	}

	request, err := h.leaveService.Submit(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, request)
}

// GetRequest godoc
// @ID           getLeaveRequest
//
//	@Summary		Get leave request
//	@Description	Retrieve a leave request by ID
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Leave request ID"	format(uuid)
//	@Success		200			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests/{id} [get]
func (h *LeaveHandler) GetRequest(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid leave request ID format")
		return
	}

	request, err := h.leaveService.GetRequest(c.Request.Context(), companyID, requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// ListByEmployee godoc
// @ID           listEmployeeLeaveRequests
//
//	@Summary		List employee leave requests
//	@Description	Retrieve a paginated list of an employee's leave requests
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			status		query		string	false	"Request status"	Enums(pending, approved, rejected, cancelled, withdrawn)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/employees/{employee_id}/requests [get]
func (h *LeaveHandler) ListByEmployee(c *gin.Context) {
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

	filter := leaveFilterFromQuery(c)

	result, err := h.leaveService.ListByEmployee(c.Request.Context(), companyID, employeeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// ListPendingForApprover godoc
// @ID           listPendingLeaveApprovals
//
//	@Summary		List pending leave approvals
//	@Description	Retrieve pending leave requests from an approver's direct reports
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/approvals [get]
func (h *LeaveHandler) ListPendingForApprover(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	filter := leaveFilterFromQuery(c)

	result, err := h.leaveService.ListPendingForApprover(c.Request.Context(), companyID, approverID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// Approve godoc
// @ID           approveLeaveRequest
//
//	@Summary		Approve a leave request
//	@Description	Approve a pending leave request and consume the reserved balance
//	@Tags			leave
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Leave request ID"	format(uuid)
//	@Param			request		body		DecideLeaveRequest	false	"Decision note"
//	@Success		200			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests/{id}/approve [post]
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, h.leaveService.Approve)
}

// Reject godoc
// @ID           rejectLeaveRequest
//
//	@Summary		Reject a leave request
//	@Description	Reject a pending leave request and release the reserved balance
//	@Tags			leave
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Leave request ID"	format(uuid)
//	@Param			request		body		DecideLeaveRequest	false	"Decision note"
//	@Success		200			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests/{id}/reject [post]
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, h.leaveService.Reject)
}

// Withdraw godoc
// @ID           withdrawLeaveRequest
//
//	@Summary		Withdraw a leave request
//	@Description	Withdraw one's own pending leave request
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Leave request ID"	format(uuid)
//	@Param			employee_id	query		string	true	"Employee ID"		format(uuid)
//	@Success		200			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests/{id}/withdraw [post]
func (h *LeaveHandler) Withdraw(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid leave request ID format")
		return
	}

	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	request, err := h.leaveService.Withdraw(c.Request.Context(), companyID, requestID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// Cancel godoc
// @ID           cancelLeaveRequest
//
//	@Summary		Cancel a leave request
//	@Description	Cancel an approved leave request and restore the balance
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Leave request ID"	format(uuid)
//	@Success		200			{object}	APIResponse[leaveapp.LeaveRequestDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/requests/{id}/cancel [post]
func (h *LeaveHandler) Cancel(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid leave request ID format")
		return
	}

	request, err := h.leaveService.Cancel(c.Request.Context(), companyID, requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// GetBalances godoc
// @ID           getLeaveBalances
//
//	@Summary		Get leave balances
//	@Description	Retrieve an employee's leave balances for a year
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			year		query		int		false	"Year (defaults to current year)"
//	@Success		200			{object}	APIResponse[[]leaveapp.LeaveBalanceDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/employees/{employee_id}/balances [get]
func (h *LeaveHandler) GetBalances(c *gin.Context) {
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

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			h.BadRequest(c, "Invalid year")
			return
		}
	}

	balances, err := h.leaveService.GetBalances(c.Request.Context(), companyID, employeeID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balances)
}

// AllocateBalances godoc
// @ID           allocateLeaveBalances
//
//	@Summary		Allocate yearly leave balances
//	@Description	Allocate leave balances for an employee from the active policies of a year
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path	string	true	"Employee ID"	format(uuid)
//	@Param			year		query	int		false	"Year (defaults to current year)"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/employees/{employee_id}/balances/allocate [post]
func (h *LeaveHandler) AllocateBalances(c *gin.Context) {
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

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			h.BadRequest(c, "Invalid year")
			return
		}
	}

	if err := h.leaveService.AllocateYearlyBalances(c.Request.Context(), companyID, employeeID, year); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CarryForwardResponse reports how many balances a carry-forward run touched
type CarryForwardResponse struct {
	EmployeesProcessed int `json:"employees_processed" example:"42"`
}

// CarryForward godoc
// @ID           carryForwardLeaveBalances
//
//	@Summary		Carry forward leave balances
//	@Description	Carry unused allowances into the next year per policy limits
//	@Tags			leave
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			from_year	query		int		true	"Year to carry balances from"
//	@Success		200			{object}	APIResponse[CarryForwardResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/balances/carry-forward [post]
func (h *LeaveHandler) CarryForward(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	fromYear, err := strconv.Atoi(c.Query("from_year"))
	if err != nil {
		h.BadRequest(c, "Invalid from_year")
		return
	}

	processed, err := h.leaveService.CarryForwardBalances(c.Request.Context(), companyID, fromYear)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, CarryForwardResponse{EmployeesProcessed: processed})
}

// decide runs an approve or reject decision with the shared plumbing
func (h *LeaveHandler) decide(c *gin.Context, fn func(ctx context.Context, input leaveapp.DecideRequestInput) (*leaveapp.LeaveRequestDTO, error)) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid leave request ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	input := leaveapp.DecideRequestInput{
		CompanyID:  companyID,
		RequestID:  requestID,
		ApproverID: approverID,
		Note:       req.Note,
	}

	request, err := fn(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, request)
}

// leaveFilterFromQuery builds a shared filter from the request query
func leaveFilterFromQuery(c *gin.Context) shared.Filter {
	page, pageSize := parsePagination(c)
	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		Filters:  map[string]interface{}{},
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if leaveType := c.Query("type"); leaveType != "" {
		filter.Filters["type"] = leaveType
	}
	return filter
}
