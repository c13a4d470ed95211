package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	payrollapp "github.com/hrms/backend/internal/application/payroll"
)

// SalaryHandler handles salary structure API endpoints
type SalaryHandler struct {
	BaseHandler
	salaryService *payrollapp.SalaryService
}

// NewSalaryHandler creates a new SalaryHandler
func NewSalaryHandler(salaryService *payrollapp.SalaryService) *SalaryHandler {
	return &SalaryHandler{
		salaryService: salaryService,
	}
}

// AssignSalaryStructureRequest represents a request to assign a salary structure
type AssignSalaryStructureRequest struct {
	EmployeeID    uuid.UUID `json:"employee_id" binding:"required"`
	Name          string    `json:"name" binding:"required,max=100" example:"Senior Engineer Band"`
	EffectiveFrom time.Time `json:"effective_from" binding:"required" example:"2026-09-01T00:00:00Z"`

	BasicSalary        decimal.Decimal `json:"basic_salary" binding:"required" example:"50000"`
	HRA                decimal.Decimal `json:"hra" example:"20000"`
	TransportAllowance decimal.Decimal `json:"transport_allowance" example:"3000"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance" example:"2500"`
	SpecialAllowance   decimal.Decimal `json:"special_allowance" example:"5000"`
	PerformanceBonus   decimal.Decimal `json:"performance_bonus" example:"0"`
	AnnualBonus        decimal.Decimal `json:"annual_bonus" example:"0"`

	PFEmployee      decimal.Decimal `json:"pf_employee" example:"6000"`
	PFEmployer      decimal.Decimal `json:"pf_employer" example:"6000"`
	ESIEmployee     decimal.Decimal `json:"esi_employee" example:"0"`
	ESIEmployer     decimal.Decimal `json:"esi_employer" example:"0"`
	ProfessionalTax decimal.Decimal `json:"professional_tax" example:"200"`
}

// ReviseSalaryRequest updates the basic salary of an active structure
type ReviseSalaryRequest struct {
	BasicSalary decimal.Decimal `json:"basic_salary" binding:"required" example:"55000"`
}

// Assign godoc
// @ID           assignSalaryStructure
//
//	@Summary		Assign salary structure
//	@Description	Assign a new salary structure to an employee, superseding any active one
//	@Tags			payroll
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string							false	"Company ID (optional for dev)"
//	@Param			request		body		AssignSalaryStructureRequest	true	"Structure data"
//	@Success		201			{object}	APIResponse[payrollapp.SalaryStructureDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/salary-structures [post]
func (h *SalaryHandler) Assign(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req AssignSalaryStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := payrollapp.AssignStructureInput{
		CompanyID:          companyID,
		EmployeeID:         req.EmployeeID,
		Name:               req.Name,
		EffectiveFrom:      req.EffectiveFrom,
		BasicSalary:        req.BasicSalary,
		HRA:                req.HRA,
		TransportAllowance: req.TransportAllowance,
		MedicalAllowance:   req.MedicalAllowance,
		SpecialAllowance:   req.SpecialAllowance,
		PerformanceBonus:   req.PerformanceBonus,
		AnnualBonus:        req.AnnualBonus,
		PFEmployee:         req.PFEmployee,
		PFEmployer:         req.PFEmployer,
		ESIEmployee:        req.ESIEmployee,
		ESIEmployer:        req.ESIEmployer,
		ProfessionalTax:    req.ProfessionalTax,
	}

	structure, err := h.salaryService.Assign(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, structure)
}

// GetActive godoc
// @ID           getActiveSalaryStructure
//
//	@Summary		Get active salary structure
//	@Description	Retrieve an employee's currently active salary structure
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[payrollapp.SalaryStructureDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/employees/{employee_id}/salary-structure [get]
func (h *SalaryHandler) GetActive(c *gin.Context) {
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

	structure, err := h.salaryService.GetActive(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, structure)
}

// GetHistory godoc
// @ID           getSalaryHistory
//
//	@Summary		Get salary history
//	@Description	Retrieve all salary structures ever assigned to an employee
//	@Tags			payroll
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[[]payrollapp.SalaryStructureDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/employees/{employee_id}/salary-history [get]
func (h *SalaryHandler) GetHistory(c *gin.Context) {
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

	history, err := h.salaryService.GetHistory(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}

// Revise godoc
// @ID           reviseSalaryStructure
//
//	@Summary		Revise salary structure
//	@Description	Update the basic salary of an active structure in place
//	@Tags			payroll
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Structure ID"	format(uuid)
//	@Param			request		body		ReviseSalaryRequest	true	"New basic salary"
//	@Success		200			{object}	APIResponse[payrollapp.SalaryStructureDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/payroll/salary-structures/{id}/revise [post]
func (h *SalaryHandler) Revise(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	structureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid structure ID format")
		return
	}

	var req ReviseSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	structure, err := h.salaryService.Revise(c.Request.Context(), companyID, structureID, req.BasicSalary)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, structure)
}
