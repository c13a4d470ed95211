package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	complianceapp "github.com/hrms/backend/internal/application/compliance"
	"github.com/hrms/backend/internal/domain/shared"
)

// ComplianceHandler handles compliance requirement and assessment API endpoints
type ComplianceHandler struct {
	BaseHandler
	complianceService *complianceapp.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler
func NewComplianceHandler(complianceService *complianceapp.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
	}
}

// CreateRequirementRequest represents a request to register a compliance requirement
type CreateRequirementRequest struct {
	Name          string    `json:"name" binding:"required,max=200" example:"Working time records"`
	Code          string    `json:"code" binding:"required,max=50" example:"LAB-WT-01"`
	Type          string    `json:"type" binding:"required,oneof=labor_law tax_filing data_protection health_safety statutory_benefits equal_opportunity other" example:"labor_law"`
	Description   string    `json:"description" binding:"max=1000"`
	EffectiveDate time.Time `json:"effective_date" binding:"required" example:"2026-01-01T00:00:00Z"`

	RegulatingAuthority string `json:"regulating_authority" binding:"max=200" example:"Department of Labor"`
	RegulationReference string `json:"regulation_reference" binding:"max=200"`
	Jurisdiction        string `json:"jurisdiction" binding:"max=100" example:"federal"`

	RiskLevel             string     `json:"risk_level" binding:"required,oneof=low medium high critical" example:"high"`
	ReviewFrequencyMonths int        `json:"review_frequency_months" binding:"min=0" example:"12"`
	FirstReviewDate       *time.Time `json:"first_review_date"`
}

// RecordAssessmentRequest represents a request to record an assessment
type RecordAssessmentRequest struct {
	Name string `json:"name" binding:"required,max=200" example:"Q3 internal audit"`

	AssessmentDate time.Time `json:"assessment_date" binding:"required" example:"2026-08-15T00:00:00Z"`
	PeriodStart    time.Time `json:"period_start" binding:"required" example:"2026-04-01T00:00:00Z"`
	PeriodEnd      time.Time `json:"period_end" binding:"required" example:"2026-06-30T00:00:00Z"`

	Status          string          `json:"status" binding:"required,oneof=compliant partially_compliant non_compliant not_assessed" example:"partially_compliant"`
	Score           decimal.Decimal `json:"score" example:"72.5"`
	Findings        string          `json:"findings" binding:"max=2000"`
	ExternalAuditor string          `json:"external_auditor" binding:"max=200"`
}

// SetActionPlanRequest carries a remediation plan
type SetActionPlanRequest struct {
	Plan       string    `json:"plan" binding:"required,max=2000" example:"Digitize shift records for frontline staff"`
	TargetDate time.Time `json:"target_date" binding:"required" example:"2026-10-31T00:00:00Z"`
}

// CompleteActionsRequest records remediation completion
type CompleteActionsRequest struct {
	CompletedAt time.Time `json:"completed_at" binding:"required" example:"2026-10-20T00:00:00Z"`
}

// CreateRequirement godoc
// @ID           createComplianceRequirement
//
//	@Summary		Create compliance requirement
//	@Description	Register a regulatory requirement the company must track
//	@Tags			compliance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		CreateRequirementRequest	true	"Requirement data"
//	@Success		201			{object}	APIResponse[complianceapp.RequirementDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements [post]
func (h *ComplianceHandler) CreateRequirement(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := complianceapp.CreateRequirementInput{
		CompanyID:             companyID,
		Name:                  req.Name,
		Code:                  req.Code,
		Type:                  req.Type,
		Description:           req.Description,
		EffectiveDate:         req.EffectiveDate,
		RegulatingAuthority:   req.RegulatingAuthority,
		RegulationReference:   req.RegulationReference,
		Jurisdiction:          req.Jurisdiction,
		RiskLevel:             req.RiskLevel,
		ReviewFrequencyMonths: req.ReviewFrequencyMonths,
		FirstReviewDate:       req.FirstReviewDate,
	}

	requirement, err := h.complianceService.CreateRequirement(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, requirement)
}

// GetRequirement godoc
// @ID           getComplianceRequirement
//
//	@Summary		Get compliance requirement
//	@Description	Retrieve a requirement by ID
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Requirement ID"	format(uuid)
//	@Success		200			{object}	APIResponse[complianceapp.RequirementDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/{id} [get]
func (h *ComplianceHandler) GetRequirement(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid requirement ID format")
		return
	}

	requirement, err := h.complianceService.GetRequirement(c.Request.Context(), companyID, requirementID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requirement)
}

// ListRequirements godoc
// @ID           listComplianceRequirements
//
//	@Summary		List compliance requirements
//	@Description	Retrieve a paginated list of requirements
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]complianceapp.RequirementDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements [get]
func (h *ComplianceHandler) ListRequirements(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize, Search: c.Query("search")}

	result, err := h.complianceService.ListRequirements(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Requirements, result.Total, result.Page, result.PageSize)
}

// SupersedeRequirement godoc
// @ID           supersedeComplianceRequirement
//
//	@Summary		Supersede requirement
//	@Description	Mark a requirement as replaced by newer regulation
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Requirement ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/{id}/supersede [post]
func (h *ComplianceHandler) SupersedeRequirement(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid requirement ID format")
		return
	}

	if err := h.complianceService.SupersedeRequirement(c.Request.Context(), companyID, requirementID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// DeactivateRequirement godoc
// @ID           deactivateComplianceRequirement
//
//	@Summary		Deactivate requirement
//	@Description	Stop tracking a non-mandatory requirement
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Requirement ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/{id}/deactivate [post]
func (h *ComplianceHandler) DeactivateRequirement(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid requirement ID format")
		return
	}

	if err := h.complianceService.DeactivateRequirement(c.Request.Context(), companyID, requirementID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RecordAssessment godoc
// @ID           recordComplianceAssessment
//
//	@Summary		Record compliance assessment
//	@Description	Record the outcome of assessing a requirement over a period
//	@Tags			compliance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Requirement ID"	format(uuid)
//	@Param			request		body		RecordAssessmentRequest	true	"Assessment data"
//	@Success		201			{object}	APIResponse[complianceapp.AssessmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/{id}/assessments [post]
func (h *ComplianceHandler) RecordAssessment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid requirement ID format")
		return
	}

	conductedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req RecordAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := complianceapp.RecordAssessmentInput{
		CompanyID:       companyID,
		RequirementID:   requirementID,
		ConductedBy:     conductedBy,
		Name:            req.Name,
		AssessmentDate:  req.AssessmentDate,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		Status:          req.Status,
		Score:           req.Score,
		Findings:        req.Findings,
		ExternalAuditor: req.ExternalAuditor,
	}

	assessment, err := h.complianceService.RecordAssessment(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, assessment)
}

// SetActionPlan godoc
// @ID           setAssessmentActionPlan
//
//	@Summary		Set remediation plan
//	@Description	Attach a remediation plan and target date to an assessment
//	@Tags			compliance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Assessment ID"	format(uuid)
//	@Param			request		body		SetActionPlanRequest	true	"Remediation plan"
//	@Success		200			{object}	APIResponse[complianceapp.AssessmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/assessments/{id}/action-plan [put]
func (h *ComplianceHandler) SetActionPlan(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid assessment ID format")
		return
	}

	var req SetActionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assessment, err := h.complianceService.SetActionPlan(c.Request.Context(), companyID, assessmentID, req.Plan, req.TargetDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, assessment)
}

// CompleteActions godoc
// @ID           completeAssessmentActions
//
//	@Summary		Complete remediation actions
//	@Description	Mark an assessment's remediation actions as done
//	@Tags			compliance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Assessment ID"	format(uuid)
//	@Param			request		body		CompleteActionsRequest	true	"Completion date"
//	@Success		200			{object}	APIResponse[complianceapp.AssessmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/assessments/{id}/complete-actions [post]
func (h *ComplianceHandler) CompleteActions(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid assessment ID format")
		return
	}

	var req CompleteActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assessment, err := h.complianceService.CompleteActions(c.Request.Context(), companyID, assessmentID, req.CompletedAt)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, assessment)
}

// GetAssessment godoc
// @ID           getComplianceAssessment
//
//	@Summary		Get compliance assessment
//	@Description	Retrieve an assessment by ID
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Assessment ID"	format(uuid)
//	@Success		200			{object}	APIResponse[complianceapp.AssessmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/assessments/{id} [get]
func (h *ComplianceHandler) GetAssessment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid assessment ID format")
		return
	}

	assessment, err := h.complianceService.GetAssessment(c.Request.Context(), companyID, assessmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, assessment)
}

// ListAssessments godoc
// @ID           listComplianceAssessments
//
//	@Summary		List compliance assessments
//	@Description	Retrieve a paginated list of assessments for a requirement
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Requirement ID"	format(uuid)
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			page_size	query		int		false	"Page size"			default(20)
//	@Success		200			{object}	APIResponse[[]complianceapp.AssessmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/{id}/assessments [get]
func (h *ComplianceHandler) ListAssessments(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid requirement ID format")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.complianceService.ListAssessments(c.Request.Context(), companyID, requirementID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Assessments, result.Total, result.Page, result.PageSize)
}

// Overview godoc
// @ID           getComplianceOverview
//
//	@Summary		Compliance overview
//	@Description	Retrieve the company's compliance posture: status counts, review backlog, overdue actions
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[complianceapp.ComplianceOverviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/overview [get]
func (h *ComplianceHandler) Overview(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	overview, err := h.complianceService.Overview(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, overview)
}

// ListReviewDue godoc
// @ID           listReviewDueRequirements
//
//	@Summary		List requirements due for review
//	@Description	Retrieve active requirements whose next review date has passed
//	@Tags			compliance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]complianceapp.RequirementDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/compliance/requirements/review-due [get]
func (h *ComplianceHandler) ListReviewDue(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	requirements, err := h.complianceService.ListReviewDue(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requirements)
}
