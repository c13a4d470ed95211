package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	expenseapp "github.com/hrms/backend/internal/application/expense"
	"github.com/hrms/backend/internal/domain/shared"
)

// ExpenseHandler handles expense claim API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *expenseapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *expenseapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpenseRequest represents a request to create an expense claim
type CreateExpenseRequest struct {
	EmployeeID     uuid.UUID       `json:"employee_id" binding:"required"`
	Category       string          `json:"category" binding:"required,oneof=travel meals accommodation office_supplies training communication medical other" example:"travel"`
	Title          string          `json:"title" binding:"required,max=200" example:"Client site visit"`
	Description    string          `json:"description" binding:"max=1000"`
	Amount         decimal.Decimal `json:"amount" binding:"required" example:"182.40"`
	Currency       string          `json:"currency" binding:"omitempty,len=3" example:"USD"`
	ExpenseDate    time.Time       `json:"expense_date" binding:"required" example:"2026-08-20T00:00:00Z"`
	ClientBillable bool            `json:"client_billable" example:"false"`
}

// UpdateExpenseRequest represents a request to edit a draft claim
type UpdateExpenseRequest struct {
	Category    string          `json:"category" binding:"required,oneof=travel meals accommodation office_supplies training communication medical other"`
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=1000"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	ExpenseDate time.Time       `json:"expense_date" binding:"required"`
}

// AttachReceiptRequest carries receipt details for a claim
type AttachReceiptRequest struct {
	URL        string `json:"url" binding:"required,max=500" example:"https://files.example.com/receipts/r-991.pdf"`
	Number     string `json:"number" binding:"max=100" example:"INV-2291"`
	VendorName string `json:"vendor_name" binding:"max=200" example:"Metro Cabs"`
}

// RejectExpenseRequest carries the rejection reason
type RejectExpenseRequest struct {
	Reason string `json:"reason" binding:"required,max=500" example:"Receipt does not match the claimed amount"`
}

// ReimburseExpenseRequest records a reimbursement payment
type ReimburseExpenseRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required" example:"182.40"`
	Currency  string          `json:"currency" binding:"omitempty,len=3" example:"USD"`
	Reference string          `json:"reference" binding:"max=100" example:"PAY-2026-08-114"`
}

// Create godoc
// @ID           createExpense
//
//	@Summary		Create expense claim
//	@Description	Create a draft expense claim for an employee
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		CreateExpenseRequest	true	"Claim data"
//	@Success		201			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := expenseapp.CreateExpenseInput{
		CompanyID:      companyID,
		EmployeeID:     req.EmployeeID,
		Category:       req.Category,
		Title:          req.Title,
		Description:    req.Description,
		Amount:         req.Amount,
		Currency:       req.Currency,
		ExpenseDate:    req.ExpenseDate,
		ClientBillable: req.ClientBillable,
	}

	claim, err := h.expenseService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, claim)
}

// Update godoc
// @ID           updateExpense
//
//	@Summary		Update expense claim
//	@Description	Edit a claim that is still in draft
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Expense ID"	format(uuid)
//	@Param			request		body		UpdateExpenseRequest	true	"Claim data"
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := expenseapp.UpdateExpenseInput{
		CompanyID:   companyID,
		ID:          expenseID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		ExpenseDate: req.ExpenseDate,
	}

	claim, err := h.expenseService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// AttachReceipt godoc
// @ID           attachExpenseReceipt
//
//	@Summary		Attach receipt
//	@Description	Attach a receipt to a draft expense claim
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Expense ID"	format(uuid)
//	@Param			request		body		AttachReceiptRequest	true	"Receipt details"
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/receipt [put]
func (h *ExpenseHandler) AttachReceipt(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req AttachReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := expenseapp.ReceiptInput{
		CompanyID:  companyID,
		ID:         expenseID,
		URL:        req.URL,
		Number:     req.Number,
		VendorName: req.VendorName,
	}

	claim, err := h.expenseService.AttachReceipt(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Submit godoc
// @ID           submitExpense
//
//	@Summary		Submit expense claim
//	@Description	Submit a draft claim for approval; receipt rules apply above the threshold
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Expense ID"	format(uuid)
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/submit [post]
func (h *ExpenseHandler) Submit(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	claim, err := h.expenseService.Submit(c.Request.Context(), companyID, expenseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Approve godoc
// @ID           approveExpense
//
//	@Summary		Approve expense claim
//	@Description	Approve a submitted claim
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Expense ID"	format(uuid)
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/approve [post]
func (h *ExpenseHandler) Approve(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	claim, err := h.expenseService.Approve(c.Request.Context(), companyID, expenseID, approverID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Reject godoc
// @ID           rejectExpense
//
//	@Summary		Reject expense claim
//	@Description	Reject a submitted claim with a reason
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Expense ID"	format(uuid)
//	@Param			request		body		RejectExpenseRequest	true	"Rejection reason"
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/reject [post]
func (h *ExpenseHandler) Reject(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req RejectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	claim, err := h.expenseService.Reject(c.Request.Context(), companyID, expenseID, approverID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Reimburse godoc
// @ID           reimburseExpense
//
//	@Summary		Reimburse expense claim
//	@Description	Record the reimbursement payment for an approved claim
//	@Tags			expenses
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Expense ID"	format(uuid)
//	@Param			request		body		ReimburseExpenseRequest	true	"Payment details"
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/reimburse [post]
func (h *ExpenseHandler) Reimburse(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req ReimburseExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	claim, err := h.expenseService.Reimburse(c.Request.Context(), companyID, expenseID, req.Amount, req.Currency, req.Reference)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Cancel godoc
// @ID           cancelExpense
//
//	@Summary		Cancel expense claim
//	@Description	Cancel a claim that has not been reimbursed
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Expense ID"	format(uuid)
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/cancel [post]
func (h *ExpenseHandler) Cancel(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	claim, err := h.expenseService.Cancel(c.Request.Context(), companyID, expenseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// Get godoc
// @ID           getExpense
//
//	@Summary		Get expense claim
//	@Description	Retrieve an expense claim by ID
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Expense ID"	format(uuid)
//	@Success		200			{object}	APIResponse[expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	claim, err := h.expenseService.Get(c.Request.Context(), companyID, expenseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claim)
}

// ListByEmployee godoc
// @ID           listEmployeeExpenses
//
//	@Summary		List employee expenses
//	@Description	Retrieve a paginated list of an employee's expense claims
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/employees/{employee_id} [get]
func (h *ExpenseHandler) ListByEmployee(c *gin.Context) {
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

	result, err := h.expenseService.ListByEmployee(c.Request.Context(), companyID, employeeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Expenses, result.Total, result.Page, result.PageSize)
}

// ListByStatus godoc
// @ID           listExpensesByStatus
//
//	@Summary		List expenses by status
//	@Description	Retrieve a paginated list of expense claims filtered by status
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			status		query		string	false	"Claim status"	Enums(draft, submitted, approved, rejected, reimbursed, cancelled)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]expenseapp.ExpenseDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses [get]
func (h *ExpenseHandler) ListByStatus(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.expenseService.ListByStatus(c.Request.Context(), companyID, c.Query("status"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Expenses, result.Total, result.Page, result.PageSize)
}

// StatusCounts godoc
// @ID           getExpenseStatusCounts
//
//	@Summary		Expense status counts
//	@Description	Retrieve the number of expense claims per status
//	@Tags			expenses
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[map[string]int64]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/stats/status [get]
func (h *ExpenseHandler) StatusCounts(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	counts, err := h.expenseService.StatusCounts(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, counts)
}
