package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	payrollapp "github.com/hrms/backend/internal/application/payroll"
	"github.com/hrms/backend/internal/domain/shared"
)

// PayrollHandler handles payroll run and payslip API endpoints
type PayrollHandler struct {
	BaseHandler
	payrollService *payrollapp.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService *payrollapp.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// CreatePayrollRunRequest represents a request to create a payroll run
type CreatePayrollRunRequest struct {
	Type        string    `json:"type" binding:"required,oneof=regular bonus off_cycle" example:"regular"`
	PeriodStart time.Time `json:"period_start" binding:"required" example:"2026-08-01T00:00:00Z"`
	PeriodEnd   time.Time `json:"period_end" binding:"required" example:"2026-08-31T00:00:00Z"`
	PayDate     time.Time `json:"pay_date" binding:"required" example:"2026-09-05T00:00:00Z"`
}

// MarkPaidRequest records the disbursement of an approved run
type MarkPaidRequest struct {
	PaymentDate time.Time `json:"payment_date" binding:"required" example:"2026-09-05T00:00:00Z"`
	Reference   string    `json:"reference" binding:"max=100" example:"BATCH-2026-09-001"`
}

// CreateRun godoc
// @ID           createPayrollRun
//
//	@Summary		Create payroll run
//	@Description	Create a draft payroll run for a pay period
//	@Tags			payroll
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		CreatePayrollRunRequest	true	"Run data"
//	@Success		201			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs [post]
func (h *PayrollHandler) CreateRun(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := payrollapp.CreateRunInput{
		CompanyID:   companyID,
		Type:        req.Type,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		PayDate:     req.PayDate,
	}

	run, err := h.payrollService.CreateRun(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, run)
}

// Process godoc
// @ID           processPayrollRun
//
//	@Summary		Process payroll run
//	@Description	Compute payslips for every active employee with a salary structure
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Run ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.ProcessResultDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id}/process [post]
func (h *PayrollHandler) Process(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	processorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	result, err := h.payrollService.Process(c.Request.Context(), companyID, runID, processorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Approve godoc
// @ID           approvePayrollRun
//
//	@Summary		Approve payroll run
//	@Description	Approve a processed payroll run, locking its payslips
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Run ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id}/approve [post]
func (h *PayrollHandler) Approve(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	run, err := h.payrollService.Approve(c.Request.Context(), companyID, runID, approverID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, run)
}

// MarkPaid godoc
// @ID           markPayrollRunPaid
//
//	@Summary		Mark payroll run paid
//	@Description	Record the disbursement of an approved payroll run
//	@Tags			payroll
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			id			path		string			true	"Run ID"	format(uuid)
//	@Param			request		body		MarkPaidRequest	true	"Payment details"
//	@Success		200			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id}/pay [post]
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	run, err := h.payrollService.MarkPaid(c.Request.Context(), companyID, runID, req.PaymentDate, req.Reference)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, run)
}

// Reopen godoc
// @ID           reopenPayrollRun
//
//	@Summary		Reopen payroll run
//	@Description	Send a processed run back to draft for correction
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Run ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id}/reopen [post]
func (h *PayrollHandler) Reopen(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	run, err := h.payrollService.Reopen(c.Request.Context(), companyID, runID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, run)
}

// Cancel godoc
// @ID           cancelPayrollRun
//
//	@Summary		Cancel payroll run
//	@Description	Cancel a payroll run that has not been paid
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Run ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id}/cancel [post]
func (h *PayrollHandler) Cancel(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	run, err := h.payrollService.Cancel(c.Request.Context(), companyID, runID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, run)
}

// GetRun godoc
// @ID           getPayrollRun
//
//	@Summary		Get payroll run
//	@Description	Retrieve a payroll run with its payslips
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Run ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs/{id} [get]
func (h *PayrollHandler) GetRun(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid run ID format")
		return
	}

	run, err := h.payrollService.GetRun(c.Request.Context(), companyID, runID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, run)
}

// ListRuns godoc
// @ID           listPayrollRuns
//
//	@Summary		List payroll runs
//	@Description	Retrieve a paginated list of payroll runs
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			status		query		string	false	"Run status"	Enums(draft, processing, pending_approval, approved, paid, cancelled)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]payrollapp.PayrollRunDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/runs [get]
func (h *PayrollHandler) ListRuns(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.payrollService.ListRuns(c.Request.Context(), companyID, c.Query("status"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Runs, result.Total, result.Page, result.PageSize)
}

// GetPayslip godoc
// @ID           getPayslip
//
//	@Summary		Get payslip
//	@Description	Retrieve a payslip with its component lines
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Payslip ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.PayslipDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/payslips/{id} [get]
func (h *PayrollHandler) GetPayslip(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	payslipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payslip ID format")
		return
	}

	payslip, err := h.payrollService.GetPayslip(c.Request.Context(), companyID, payslipID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payslip)
}

// ListEmployeePayslips godoc
// @ID           listEmployeePayslips
//
//	@Summary		List employee payslips
//	@Description	Retrieve a paginated list of an employee's payslips
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]payrollapp.PayslipDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/employees/{employee_id}/payslips [get]
func (h *PayrollHandler) ListEmployeePayslips(c *gin.Context) {
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

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	payslips, total, err := h.payrollService.ListEmployeePayslips(c.Request.Context(), companyID, employeeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payslips, total, page, pageSize)
}
