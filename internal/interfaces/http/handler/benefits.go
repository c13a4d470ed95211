package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	benefitsapp "github.com/hrms/backend/internal/application/benefits"
	"github.com/hrms/backend/internal/domain/shared"
)

// BenefitsHandler handles benefit plan and enrollment API endpoints
type BenefitsHandler struct {
	BaseHandler
	benefitsService *benefitsapp.BenefitsService
}

// NewBenefitsHandler creates a new BenefitsHandler
func NewBenefitsHandler(benefitsService *benefitsapp.BenefitsService) *BenefitsHandler {
	return &BenefitsHandler{
		benefitsService: benefitsService,
	}
}

// CreateBenefitPlanRequest represents a request to create a benefit plan
type CreateBenefitPlanRequest struct {
	Name          string    `json:"name" binding:"required,max=200" example:"Group Health 2026"`
	Code          string    `json:"code" binding:"required,max=50" example:"GH-2026"`
	Type          string    `json:"type" binding:"required,oneof=health dental vision life_insurance disability retirement wellness other" example:"health"`
	Description   string    `json:"description" binding:"max=1000"`
	PlanYear      int       `json:"plan_year" binding:"required,min=2000" example:"2026"`
	CoverageStart time.Time `json:"coverage_start" binding:"required" example:"2026-01-01T00:00:00Z"`

	ProviderName    string `json:"provider_name" binding:"max=200" example:"Acme Insurance"`
	ProviderContact string `json:"provider_contact" binding:"max=200"`
	PolicyNumber    string `json:"policy_number" binding:"max=100"`
	GroupNumber     string `json:"group_number" binding:"max=100"`

	EmployerAmount decimal.Decimal `json:"employer_amount" example:"350"`
	EmployeeAmount decimal.Decimal `json:"employee_amount" example:"150"`
	AnnualPremium  decimal.Decimal `json:"annual_premium" example:"6000"`
	Currency       string          `json:"currency" binding:"omitempty,len=3" example:"USD"`

	WaitingPeriodDays int  `json:"waiting_period_days" binding:"min=0" example:"30"`
	MinHoursPerWeek   int  `json:"min_hours_per_week" binding:"min=0" example:"20"`
	IsMandatory       bool `json:"is_mandatory"`
	AllowsDependents  bool `json:"allows_dependents" example:"true"`
	MaxDependents     int  `json:"max_dependents" binding:"min=0" example:"4"`
}

// ExpirePlanRequest closes a plan's coverage window
type ExpirePlanRequest struct {
	CoverageEnd time.Time `json:"coverage_end" binding:"required" example:"2026-12-31T00:00:00Z"`
}

// EnrollDependentRequest represents one covered dependent
type EnrollDependentRequest struct {
	FullName     string    `json:"full_name" binding:"required,max=200" example:"Jamie Doe"`
	Relationship string    `json:"relationship" binding:"required,oneof=spouse child parent other" example:"child"`
	DateOfBirth  time.Time `json:"date_of_birth" binding:"required" example:"2018-03-14T00:00:00Z"`
}

// EnrollRequest represents a request to enroll an employee in a plan
type EnrollRequest struct {
	EmployeeID    uuid.UUID                `json:"employee_id" binding:"required"`
	PlanID        uuid.UUID                `json:"plan_id" binding:"required"`
	EffectiveDate time.Time                `json:"effective_date" binding:"required" example:"2026-02-01T00:00:00Z"`
	Coverage      string                   `json:"coverage" binding:"required,oneof=employee_only employee_spouse employee_children family" example:"family"`
	Dependents    []EnrollDependentRequest `json:"dependents"`
}

// DeclineEnrollmentRequest carries the decline reason
type DeclineEnrollmentRequest struct {
	Reason string `json:"reason" binding:"required,max=500" example:"Waiting period not served"`
}

// TerminateEnrollmentRequest sets the coverage end date
type TerminateEnrollmentRequest struct {
	TerminationDate time.Time `json:"termination_date" binding:"required" example:"2026-10-31T00:00:00Z"`
}

// CreatePlan godoc
// @ID           createBenefitPlan
//
//	@Summary		Create benefit plan
//	@Description	Create a benefit plan with provider and contribution details
//	@Tags			benefits
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		CreateBenefitPlanRequest	true	"Plan data"
//	@Success		201			{object}	APIResponse[benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans [post]
func (h *BenefitsHandler) CreatePlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateBenefitPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := benefitsapp.CreatePlanInput{
		CompanyID:         companyID,
		Name:              req.Name,
		Code:              req.Code,
		Type:              req.Type,
		Description:       req.Description,
		PlanYear:          req.PlanYear,
		CoverageStart:     req.CoverageStart,
		ProviderName:      req.ProviderName,
		ProviderContact:   req.ProviderContact,
		PolicyNumber:      req.PolicyNumber,
		GroupNumber:       req.GroupNumber,
		EmployerAmount:    req.EmployerAmount,
		EmployeeAmount:    req.EmployeeAmount,
		AnnualPremium:     req.AnnualPremium,
		Currency:          req.Currency,
		WaitingPeriodDays: req.WaitingPeriodDays,
		MinHoursPerWeek:   req.MinHoursPerWeek,
		IsMandatory:       req.IsMandatory,
		AllowsDependents:  req.AllowsDependents,
		MaxDependents:     req.MaxDependents,
	}

	plan, err := h.benefitsService.CreatePlan(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, plan)
}

// GetPlan godoc
// @ID           getBenefitPlan
//
//	@Summary		Get benefit plan
//	@Description	Retrieve a benefit plan by ID
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Plan ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans/{id} [get]
func (h *BenefitsHandler) GetPlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.benefitsService.GetPlan(c.Request.Context(), companyID, planID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// ListPlans godoc
// @ID           listBenefitPlans
//
//	@Summary		List benefit plans
//	@Description	Retrieve a paginated list of benefit plans
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans [get]
func (h *BenefitsHandler) ListPlans(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.benefitsService.ListPlans(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Plans, result.Total, result.Page, result.PageSize)
}

// SuspendPlan godoc
// @ID           suspendBenefitPlan
//
//	@Summary		Suspend benefit plan
//	@Description	Suspend an active plan, blocking new enrollments
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Plan ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans/{id}/suspend [post]
func (h *BenefitsHandler) SuspendPlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.benefitsService.SuspendPlan(c.Request.Context(), companyID, planID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// ReactivatePlan godoc
// @ID           reactivateBenefitPlan
//
//	@Summary		Reactivate benefit plan
//	@Description	Reactivate a suspended plan
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Plan ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans/{id}/reactivate [post]
func (h *BenefitsHandler) ReactivatePlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.benefitsService.ReactivatePlan(c.Request.Context(), companyID, planID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// ExpirePlan godoc
// @ID           expireBenefitPlan
//
//	@Summary		Expire benefit plan
//	@Description	Close a plan's coverage window, terminating its enrollments
//	@Tags			benefits
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Plan ID"	format(uuid)
//	@Param			request		body		ExpirePlanRequest	true	"Coverage end"
//	@Success		200			{object}	APIResponse[benefitsapp.PlanDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/plans/{id}/expire [post]
func (h *BenefitsHandler) ExpirePlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	var req ExpirePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.benefitsService.ExpirePlan(c.Request.Context(), companyID, planID, req.CoverageEnd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// Enroll godoc
// @ID           enrollInBenefitPlan
//
//	@Summary		Enroll in benefit plan
//	@Description	Enroll an employee in a plan with optional dependents
//	@Tags			benefits
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			request		body		EnrollRequest	true	"Enrollment data"
//	@Success		201			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments [post]
func (h *BenefitsHandler) Enroll(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dependents := make([]benefitsapp.DependentInput, 0, len(req.Dependents))
	for _, d := range req.Dependents {
		dependents = append(dependents, benefitsapp.DependentInput{
			FullName:     d.FullName,
			Relationship: d.Relationship,
			DateOfBirth:  d.DateOfBirth,
		})
	}

	input := benefitsapp.EnrollInput{
		CompanyID:     companyID,
		EmployeeID:    req.EmployeeID,
		PlanID:        req.PlanID,
		EffectiveDate: req.EffectiveDate,
		Coverage:      req.Coverage,
		Dependents:    dependents,
	}

	enrollment, err := h.benefitsService.Enroll(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, enrollment)
}

// ApproveEnrollment godoc
// @ID           approveEnrollment
//
//	@Summary		Approve enrollment
//	@Description	Approve a pending enrollment, activating coverage
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Enrollment ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id}/approve [post]
func (h *BenefitsHandler) ApproveEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	enrollment, err := h.benefitsService.ApproveEnrollment(c.Request.Context(), companyID, enrollmentID, approverID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// DeclineEnrollment godoc
// @ID           declineEnrollment
//
//	@Summary		Decline enrollment
//	@Description	Decline a pending enrollment with a reason
//	@Tags			benefits
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Enrollment ID"	format(uuid)
//	@Param			request		body		DeclineEnrollmentRequest	true	"Decline reason"
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id}/decline [post]
func (h *BenefitsHandler) DeclineEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req DeclineEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	enrollment, err := h.benefitsService.DeclineEnrollment(c.Request.Context(), companyID, enrollmentID, approverID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// SuspendEnrollment godoc
// @ID           suspendEnrollment
//
//	@Summary		Suspend enrollment
//	@Description	Suspend active coverage, for example during unpaid leave
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Enrollment ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id}/suspend [post]
func (h *BenefitsHandler) SuspendEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.benefitsService.SuspendEnrollment(c.Request.Context(), companyID, enrollmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// ResumeEnrollment godoc
// @ID           resumeEnrollment
//
//	@Summary		Resume enrollment
//	@Description	Resume suspended coverage
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Enrollment ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id}/resume [post]
func (h *BenefitsHandler) ResumeEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.benefitsService.ResumeEnrollment(c.Request.Context(), companyID, enrollmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// TerminateEnrollment godoc
// @ID           terminateEnrollment
//
//	@Summary		Terminate enrollment
//	@Description	End coverage as of a date
//	@Tags			benefits
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Enrollment ID"	format(uuid)
//	@Param			request		body		TerminateEnrollmentRequest	true	"Termination date"
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id}/terminate [post]
func (h *BenefitsHandler) TerminateEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	var req TerminateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	enrollment, err := h.benefitsService.TerminateEnrollment(c.Request.Context(), companyID, enrollmentID, req.TerminationDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// GetEnrollment godoc
// @ID           getEnrollment
//
//	@Summary		Get enrollment
//	@Description	Retrieve an enrollment with its dependents
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Enrollment ID"	format(uuid)
//	@Success		200			{object}	APIResponse[benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/enrollments/{id} [get]
func (h *BenefitsHandler) GetEnrollment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.benefitsService.GetEnrollment(c.Request.Context(), companyID, enrollmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// ListEmployeeEnrollments godoc
// @ID           listEmployeeEnrollments
//
//	@Summary		List employee enrollments
//	@Description	Retrieve all enrollments of an employee
//	@Tags			benefits
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[[]benefitsapp.EnrollmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/benefits/employees/{employee_id}/enrollments [get]
func (h *BenefitsHandler) ListEmployeeEnrollments(c *gin.Context) {
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

	enrollments, err := h.benefitsService.ListEmployeeEnrollments(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollments)
}
