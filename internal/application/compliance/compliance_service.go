package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/compliance"
	"github.com/hrms/backend/internal/domain/shared"
)

// ComplianceService tracks regulatory requirements and their assessments
type ComplianceService struct {
	requirementRepo compliance.RequirementRepository
	assessmentRepo  compliance.AssessmentRepository
	eventPublisher  shared.EventPublisher
	logger          *zap.Logger
}

// NewComplianceService creates a new compliance service
func NewComplianceService(
	requirementRepo compliance.RequirementRepository,
	assessmentRepo compliance.AssessmentRepository,
	logger *zap.Logger,
) *ComplianceService {
	return &ComplianceService{
		requirementRepo: requirementRepo,
		assessmentRepo:  assessmentRepo,
		logger:          logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ComplianceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateRequirementInput contains input for registering a requirement
type CreateRequirementInput struct {
	CompanyID     uuid.UUID
	Name          string
	Code          string
	Type          string
	Description   string
	EffectiveDate time.Time

	RegulatingAuthority string
	RegulationReference string
	Jurisdiction        string

	RiskLevel             string
	ReviewFrequencyMonths int
	FirstReviewDate       *time.Time
}

// RecordAssessmentInput contains input for recording an assessment
type RecordAssessmentInput struct {
	CompanyID     uuid.UUID
	RequirementID uuid.UUID
	ConductedBy   uuid.UUID
	Name          string

	AssessmentDate time.Time
	PeriodStart    time.Time
	PeriodEnd      time.Time

	Status          string
	Score           decimal.Decimal
	Findings        string
	ExternalAuditor string
}

// RequirementDTO represents a compliance requirement
type RequirementDTO struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Code                string     `json:"code"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	RegulatingAuthority string     `json:"regulating_authority,omitempty"`
	RegulationReference string     `json:"regulation_reference,omitempty"`
	Jurisdiction        string     `json:"jurisdiction,omitempty"`
	EffectiveDate       string     `json:"effective_date"`
	NextReviewDate      *time.Time `json:"next_review_date,omitempty"`
	RiskLevel           string     `json:"risk_level"`
	IsMandatory         bool       `json:"is_mandatory"`
	Status              string     `json:"status"`
	ReviewDue           bool       `json:"review_due"`
}

// AssessmentDTO represents a compliance assessment
type AssessmentDTO struct {
	ID              uuid.UUID  `json:"id"`
	RequirementID   uuid.UUID  `json:"requirement_id"`
	Name            string     `json:"name"`
	AssessmentDate  string     `json:"assessment_date"`
	PeriodStart     string     `json:"period_start"`
	PeriodEnd       string     `json:"period_end"`
	OverallStatus   string     `json:"overall_status"`
	Score           string     `json:"score"`
	Findings        string     `json:"findings,omitempty"`
	ConductedBy     uuid.UUID  `json:"conducted_by"`
	ExternalAuditor string     `json:"external_auditor,omitempty"`
	ActionsRequired bool       `json:"actions_required"`
	ActionPlan      string     `json:"action_plan,omitempty"`
	TargetDate      *time.Time `json:"target_completion_date,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Overdue         bool       `json:"overdue"`
}

// RequirementListResult represents a paginated requirement list
type RequirementListResult struct {
	Requirements []RequirementDTO `json:"requirements"`
	Total        int64            `json:"total"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
	TotalPages   int              `json:"total_pages"`
}

// AssessmentListResult represents a paginated assessment list
type AssessmentListResult struct {
	Assessments []AssessmentDTO `json:"assessments"`
	Total       int64           `json:"total"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalPages  int             `json:"total_pages"`
}

// ComplianceOverviewDTO summarizes the company's compliance posture
type ComplianceOverviewDTO struct {
	ActiveRequirements int                  `json:"active_requirements"`
	ReviewsDue         int                  `json:"reviews_due"`
	OverdueActions     int                  `json:"overdue_actions"`
	AssessmentCounts   map[string]int64     `json:"assessment_counts"`
	RequirementStates  map[uuid.UUID]string `json:"requirement_states"`
	HighRiskGaps       []RequirementDTO     `json:"high_risk_gaps"`
}

// CreateRequirement registers a regulatory requirement
func (s *ComplianceService) CreateRequirement(ctx context.Context, input CreateRequirementInput) (*RequirementDTO, error) {
	exists, err := s.requirementRepo.ExistsByCode(ctx, input.CompanyID, input.Code)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check requirement code")
	}
	if exists {
		return nil, shared.NewDomainError("CODE_EXISTS", "A requirement with this code already exists")
	}

	requirement, err := compliance.NewRequirement(input.CompanyID, input.Name, input.Code,
		compliance.ComplianceType(input.Type), input.Description, input.EffectiveDate)
	if err != nil {
		return nil, err
	}
	requirement.SetAuthority(input.RegulatingAuthority, input.RegulationReference, input.Jurisdiction)

	if input.RiskLevel != "" {
		if err := requirement.SetRiskLevel(compliance.RiskLevel(input.RiskLevel)); err != nil {
			return nil, err
		}
	}
	if input.ReviewFrequencyMonths > 0 {
		firstReview := input.EffectiveDate.AddDate(0, input.ReviewFrequencyMonths, 0)
		if input.FirstReviewDate != nil {
			firstReview = *input.FirstReviewDate
		}
		if err := requirement.SetReviewCycle(input.ReviewFrequencyMonths, firstReview); err != nil {
			return nil, err
		}
	}

	if err := s.requirementRepo.Save(ctx, requirement); err != nil {
		s.logger.Error("Failed to save requirement", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save requirement")
	}

	s.logger.Info("Compliance requirement registered",
		zap.String("requirement_id", requirement.ID.String()),
		zap.String("code", requirement.Code))

	return toRequirementDTO(requirement), nil
}

// GetRequirement retrieves a requirement by ID
func (s *ComplianceService) GetRequirement(ctx context.Context, companyID, requirementID uuid.UUID) (*RequirementDTO, error) {
	requirement, err := s.findRequirement(ctx, companyID, requirementID)
	if err != nil {
		return nil, err
	}
	return toRequirementDTO(requirement), nil
}

// ListRequirements retrieves requirements
func (s *ComplianceService) ListRequirements(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*RequirementListResult, error) {
	page, err := s.requirementRepo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list requirements")
	}

	dtos := make([]RequirementDTO, len(page.Items))
	for i, r := range page.Items {
		dtos[i] = *toRequirementDTO(r)
	}
	return &RequirementListResult{
		Requirements: dtos,
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
	}, nil
}

// SupersedeRequirement replaces a requirement with a newer one
func (s *ComplianceService) SupersedeRequirement(ctx context.Context, companyID, requirementID uuid.UUID) error {
	requirement, err := s.findRequirement(ctx, companyID, requirementID)
	if err != nil {
		return err
	}
	if err := requirement.Supersede(); err != nil {
		return err
	}
	if err := s.requirementRepo.Save(ctx, requirement); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save requirement")
	}
	return nil
}

// DeactivateRequirement retires a requirement
func (s *ComplianceService) DeactivateRequirement(ctx context.Context, companyID, requirementID uuid.UUID) error {
	requirement, err := s.findRequirement(ctx, companyID, requirementID)
	if err != nil {
		return err
	}
	if err := requirement.Deactivate(); err != nil {
		return err
	}
	if err := s.requirementRepo.Save(ctx, requirement); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save requirement")
	}
	return nil
}

// RecordAssessment records an evaluation of a requirement. When a review
// cycle is configured the next review date advances one cycle.
func (s *ComplianceService) RecordAssessment(ctx context.Context, input RecordAssessmentInput) (*AssessmentDTO, error) {
	requirement, err := s.findRequirement(ctx, input.CompanyID, input.RequirementID)
	if err != nil {
		return nil, err
	}

	assessment, err := compliance.NewAssessment(input.CompanyID, input.RequirementID, input.ConductedBy,
		input.Name, input.AssessmentDate, input.PeriodStart, input.PeriodEnd,
		compliance.AssessmentStatus(input.Status), input.Score)
	if err != nil {
		return nil, err
	}
	assessment.Findings = input.Findings
	assessment.ExternalAuditor = input.ExternalAuditor

	if err := s.assessmentRepo.Save(ctx, assessment); err != nil {
		s.logger.Error("Failed to save assessment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save assessment")
	}

	if requirement.IsReviewDue(input.AssessmentDate) {
		if err := requirement.AdvanceReviewDate(); err == nil {
			_ = s.requirementRepo.Save(ctx, requirement)
		}
	}

	if assessment.ActionsRequired {
		s.logger.Warn("Non-compliance recorded",
			zap.String("requirement_code", requirement.Code),
			zap.String("status", string(assessment.OverallStatus)),
			zap.String("score", assessment.Score.String()))
	}
	s.publishDomainEvents(ctx, assessment)

	return toAssessmentDTO(assessment), nil
}

// StatutoryFilingCode identifies the standing payroll remittance requirement
const StatutoryFilingCode = "PAYROLL_STATUTORY"

// RecordPayrollFiling records an under-review assessment against the payroll
// statutory remittance requirement when a payroll run is approved. The
// requirement is registered on first use.
func (s *ComplianceService) RecordPayrollFiling(ctx context.Context, companyID uuid.UUID, runNumber string, approvedBy uuid.UUID, periodStart, periodEnd time.Time) error {
	requirement, err := s.requirementRepo.FindByCode(ctx, companyID, StatutoryFilingCode)
	if err != nil {
		if err != shared.ErrNotFound {
			s.logger.Error("Failed to find statutory filing requirement", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to find compliance requirement")
		}
		requirement, err = compliance.NewRequirement(companyID,
			"Payroll Statutory Remittance", StatutoryFilingCode, compliance.TypeTaxCompliance,
			"Remittance of provident fund, insurance and income tax withheld from payroll",
			periodStart)
		if err != nil {
			return err
		}
		if err := s.requirementRepo.Save(ctx, requirement); err != nil {
			s.logger.Error("Failed to register statutory filing requirement", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to save compliance requirement")
		}
	}

	assessment, err := compliance.NewAssessment(companyID, requirement.ID, approvedBy,
		"Payroll filing "+runNumber, time.Now(), periodStart, periodEnd,
		compliance.AssessmentUnderReview, decimal.Zero)
	if err != nil {
		return err
	}

	if err := s.assessmentRepo.Save(ctx, assessment); err != nil {
		s.logger.Error("Failed to save payroll filing assessment", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save assessment")
	}

	s.logger.Info("Payroll filing recorded for review",
		zap.String("run_number", runNumber),
		zap.String("requirement_code", requirement.Code))
	return nil
}

// SetActionPlan records the corrective plan for a failed assessment
func (s *ComplianceService) SetActionPlan(ctx context.Context, companyID, assessmentID uuid.UUID, plan string, targetDate time.Time) (*AssessmentDTO, error) {
	assessment, err := s.findAssessment(ctx, companyID, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := assessment.SetActionPlan(plan, targetDate); err != nil {
		return nil, err
	}
	if err := s.assessmentRepo.Save(ctx, assessment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save assessment")
	}
	return toAssessmentDTO(assessment), nil
}

// CompleteActions closes out corrective work on an assessment
func (s *ComplianceService) CompleteActions(ctx context.Context, companyID, assessmentID uuid.UUID, completedAt time.Time) (*AssessmentDTO, error) {
	assessment, err := s.findAssessment(ctx, companyID, assessmentID)
	if err != nil {
		return nil, err
	}
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	if err := assessment.CompleteActions(completedAt); err != nil {
		return nil, err
	}
	if err := s.assessmentRepo.Save(ctx, assessment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save assessment")
	}
	return toAssessmentDTO(assessment), nil
}

// GetAssessment retrieves an assessment by ID
func (s *ComplianceService) GetAssessment(ctx context.Context, companyID, assessmentID uuid.UUID) (*AssessmentDTO, error) {
	assessment, err := s.findAssessment(ctx, companyID, assessmentID)
	if err != nil {
		return nil, err
	}
	return toAssessmentDTO(assessment), nil
}

// ListAssessments retrieves assessments of one requirement
func (s *ComplianceService) ListAssessments(ctx context.Context, companyID, requirementID uuid.UUID, filter shared.Filter) (*AssessmentListResult, error) {
	page, err := s.assessmentRepo.FindByRequirement(ctx, companyID, requirementID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assessments")
	}

	dtos := make([]AssessmentDTO, len(page.Items))
	for i, a := range page.Items {
		dtos[i] = *toAssessmentDTO(a)
	}
	return &AssessmentListResult{
		Assessments: dtos,
		Total:       page.Total,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages,
	}, nil
}

// Overview summarizes the company's compliance posture from the latest
// assessment of each active requirement
func (s *ComplianceService) Overview(ctx context.Context, companyID uuid.UUID) (*ComplianceOverviewDTO, error) {
	now := time.Now()

	active, err := s.requirementRepo.FindActive(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load requirements")
	}
	latest, err := s.assessmentRepo.FindLatestByRequirement(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load assessments")
	}
	overdue, err := s.assessmentRepo.FindOverdueActions(ctx, companyID, now)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load overdue actions")
	}
	counts, err := s.assessmentRepo.CountByStatus(ctx, companyID)
	if err != nil {
		counts = map[compliance.AssessmentStatus]int64{}
	}

	overview := &ComplianceOverviewDTO{
		ActiveRequirements: len(active),
		OverdueActions:     len(overdue),
		AssessmentCounts:   make(map[string]int64, len(counts)),
		RequirementStates:  make(map[uuid.UUID]string, len(active)),
	}
	for status, n := range counts {
		overview.AssessmentCounts[string(status)] = n
	}

	for _, requirement := range active {
		if requirement.IsReviewDue(now) {
			overview.ReviewsDue++
		}

		state := "not_assessed"
		if a, ok := latest[requirement.ID]; ok {
			state = string(a.OverallStatus)
		}
		overview.RequirementStates[requirement.ID] = state

		highRisk := requirement.RiskLevel == compliance.RiskHigh || requirement.RiskLevel == compliance.RiskCritical
		if highRisk && state != string(compliance.AssessmentCompliant) {
			overview.HighRiskGaps = append(overview.HighRiskGaps, *toRequirementDTO(requirement))
		}
	}
	return overview, nil
}

// ListReviewDue lists active requirements whose review has come due
func (s *ComplianceService) ListReviewDue(ctx context.Context, companyID uuid.UUID) ([]RequirementDTO, error) {
	requirements, err := s.requirementRepo.FindReviewDue(ctx, companyID, time.Now())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list due reviews")
	}

	dtos := make([]RequirementDTO, len(requirements))
	for i, r := range requirements {
		dtos[i] = *toRequirementDTO(r)
	}
	return dtos, nil
}

// ReviewDueCount returns the number of active requirements due for review
func (s *ComplianceService) ReviewDueCount(ctx context.Context, companyID uuid.UUID) (int, error) {
	requirements, err := s.requirementRepo.FindReviewDue(ctx, companyID, time.Now())
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to count due reviews")
	}
	return len(requirements), nil
}

func (s *ComplianceService) findRequirement(ctx context.Context, companyID, id uuid.UUID) (*compliance.Requirement, error) {
	requirement, err := s.requirementRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("REQUIREMENT_NOT_FOUND", "Requirement not found")
		}
		s.logger.Error("Failed to find requirement", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find requirement")
	}
	return requirement, nil
}

func (s *ComplianceService) findAssessment(ctx context.Context, companyID, id uuid.UUID) (*compliance.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ASSESSMENT_NOT_FOUND", "Assessment not found")
		}
		s.logger.Error("Failed to find assessment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find assessment")
	}
	return assessment, nil
}

// publishDomainEvents publishes pending domain events from the assessment aggregate
func (s *ComplianceService) publishDomainEvents(ctx context.Context, assessment *compliance.Assessment) {
	if s.eventPublisher == nil {
		return
	}
	events := assessment.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	assessment.ClearDomainEvents()
}

// toRequirementDTO converts a domain Requirement to its DTO
func toRequirementDTO(r *compliance.Requirement) *RequirementDTO {
	return &RequirementDTO{
		ID:                  r.ID,
		Name:                r.Name,
		Code:                r.Code,
		Type:                string(r.Type),
		Description:         r.Description,
		RegulatingAuthority: r.RegulatingAuthority,
		RegulationReference: r.RegulationReference,
		Jurisdiction:        r.Jurisdiction,
		EffectiveDate:       r.EffectiveDate.Format("2006-01-02"),
		NextReviewDate:      r.NextReviewDate,
		RiskLevel:           string(r.RiskLevel),
		IsMandatory:         r.IsMandatory,
		Status:              string(r.Status),
		ReviewDue:           r.IsReviewDue(time.Now()),
	}
}

// toAssessmentDTO converts a domain Assessment to its DTO
func toAssessmentDTO(a *compliance.Assessment) *AssessmentDTO {
	return &AssessmentDTO{
		ID:              a.ID,
		RequirementID:   a.RequirementID,
		Name:            a.Name,
		AssessmentDate:  a.AssessmentDate.Format("2006-01-02"),
		PeriodStart:     a.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       a.PeriodEnd.Format("2006-01-02"),
		OverallStatus:   string(a.OverallStatus),
		Score:           a.Score.String(),
		Findings:        a.Findings,
		ConductedBy:     a.ConductedBy,
		ExternalAuditor: a.ExternalAuditor,
		ActionsRequired: a.ActionsRequired,
		ActionPlan:      a.ActionPlan,
		TargetDate:      a.TargetCompletionDate,
		CompletedAt:     a.CompletedAt,
		Overdue:         a.IsOverdue(time.Now()),
	}
}
