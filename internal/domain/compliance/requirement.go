package compliance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// ComplianceType classifies a regulatory requirement
type ComplianceType string

const (
	TypeLaborLaw         ComplianceType = "labor_law"
	TypeTaxCompliance    ComplianceType = "tax_compliance"
	TypeSafetyRegulation ComplianceType = "safety_regulation"
	TypeEqualOpportunity ComplianceType = "equal_opportunity"
	TypeDataProtection   ComplianceType = "data_protection"
	TypeIndustrySpecific ComplianceType = "industry_specific"
)

// IsValid checks if the type is a valid ComplianceType
func (t ComplianceType) IsValid() bool {
	switch t {
	case TypeLaborLaw, TypeTaxCompliance, TypeSafetyRegulation,
		TypeEqualOpportunity, TypeDataProtection, TypeIndustrySpecific:
		return true
	}
	return false
}

// RiskLevel grades the exposure of non-compliance
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid checks if the level is a valid RiskLevel
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// RequirementStatus represents the lifecycle of a requirement
type RequirementStatus string

const (
	RequirementStatusDraft      RequirementStatus = "draft"
	RequirementStatusActive     RequirementStatus = "active"
	RequirementStatusInactive   RequirementStatus = "inactive"
	RequirementStatusSuperseded RequirementStatus = "superseded"
)

// IsValid checks if the status is a valid RequirementStatus
func (s RequirementStatus) IsValid() bool {
	switch s {
	case RequirementStatusDraft, RequirementStatusActive,
		RequirementStatusInactive, RequirementStatusSuperseded:
		return true
	}
	return false
}

// Requirement is one regulatory obligation the company tracks
type Requirement struct {
	shared.TenantAggregateRoot
	Name        string
	Code        string
	Type        ComplianceType
	Description string

	RegulatingAuthority string
	RegulationReference string
	Jurisdiction        string // federal, state, local, international

	EffectiveDate         time.Time
	ExpiryDate            *time.Time
	ReviewFrequencyMonths int
	NextReviewDate        *time.Time

	RiskLevel   RiskLevel
	IsMandatory bool
	Status      RequirementStatus
}

// TableName returns the table name for GORM
func (Requirement) TableName() string {
	return "compliance_requirements"
}

// NewRequirement registers a regulatory requirement
func NewRequirement(companyID uuid.UUID, name, code string, complianceType ComplianceType, description string, effectiveDate time.Time) (*Requirement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Requirement name is required")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Requirement code is required")
	}
	if !complianceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid compliance type")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Requirement description is required")
	}
	if effectiveDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Effective date is required")
	}

	return &Requirement{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Code:                code,
		Type:                complianceType,
		Description:         strings.TrimSpace(description),
		EffectiveDate:       effectiveDate,
		RiskLevel:           RiskMedium,
		IsMandatory:         true,
		Status:              RequirementStatusActive,
	}, nil
}

// SetAuthority records the regulatory source
func (r *Requirement) SetAuthority(authority, reference, jurisdiction string) {
	r.RegulatingAuthority = authority
	r.RegulationReference = reference
	r.Jurisdiction = jurisdiction
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetRiskLevel grades the requirement
func (r *Requirement) SetRiskLevel(level RiskLevel) error {
	if !level.IsValid() {
		return shared.NewDomainError("INVALID_RISK", "Invalid risk level")
	}
	r.RiskLevel = level
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// SetReviewCycle schedules recurring reviews
func (r *Requirement) SetReviewCycle(frequencyMonths int, firstReview time.Time) error {
	if frequencyMonths <= 0 {
		return shared.NewDomainError("INVALID_FREQUENCY", "Review frequency must be positive")
	}
	r.ReviewFrequencyMonths = frequencyMonths
	r.NextReviewDate = &firstReview
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// AdvanceReviewDate pushes the next review one cycle forward
func (r *Requirement) AdvanceReviewDate() error {
	if r.ReviewFrequencyMonths <= 0 || r.NextReviewDate == nil {
		return shared.NewDomainError("INVALID_STATE", "Requirement has no review cycle")
	}
	next := r.NextReviewDate.AddDate(0, r.ReviewFrequencyMonths, 0)
	r.NextReviewDate = &next
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// IsReviewDue reports whether a scheduled review has come due
func (r *Requirement) IsReviewDue(asOf time.Time) bool {
	return r.Status == RequirementStatusActive && r.NextReviewDate != nil && !asOf.Before(*r.NextReviewDate)
}

// Supersede replaces the requirement with a newer one
func (r *Requirement) Supersede() error {
	if r.Status != RequirementStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active requirements can be superseded")
	}
	r.Status = RequirementStatusSuperseded
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Deactivate retires the requirement
func (r *Requirement) Deactivate() error {
	if r.Status != RequirementStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active requirements can be deactivated")
	}
	r.Status = RequirementStatusInactive
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// AssessmentStatus is the outcome of a compliance assessment
type AssessmentStatus string

const (
	AssessmentCompliant          AssessmentStatus = "compliant"
	AssessmentNonCompliant       AssessmentStatus = "non_compliant"
	AssessmentPartiallyCompliant AssessmentStatus = "partially_compliant"
	AssessmentUnderReview        AssessmentStatus = "under_review"
)

// IsValid checks if the status is a valid AssessmentStatus
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentCompliant, AssessmentNonCompliant,
		AssessmentPartiallyCompliant, AssessmentUnderReview:
		return true
	}
	return false
}

// Assessment is one evaluation of a requirement over a period
type Assessment struct {
	shared.TenantAggregateRoot
	RequirementID uuid.UUID
	Name          string

	AssessmentDate time.Time
	PeriodStart    time.Time
	PeriodEnd      time.Time

	OverallStatus AssessmentStatus
	Score         decimal.Decimal // Percent 0-100
	Findings      string

	ConductedBy     uuid.UUID
	ExternalAuditor string

	ActionsRequired      bool
	ActionPlan           string
	TargetCompletionDate *time.Time
	CompletedAt          *time.Time
}

// TableName returns the table name for GORM
func (Assessment) TableName() string {
	return "compliance_assessments"
}

// NewAssessment records an evaluation of a requirement
func NewAssessment(companyID, requirementID, conductedBy uuid.UUID, name string, assessmentDate, periodStart, periodEnd time.Time, status AssessmentStatus, score decimal.Decimal) (*Assessment, error) {
	if requirementID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUIREMENT", "Requirement ID is required")
	}
	if conductedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSESSOR", "Assessor is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Assessment name is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot be before period start")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid assessment status")
	}
	if score.IsNegative() || score.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_SCORE", "Score must be between 0 and 100")
	}

	assessment := &Assessment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		RequirementID:       requirementID,
		Name:                name,
		AssessmentDate:      assessmentDate,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		OverallStatus:       status,
		Score:               score,
		ConductedBy:         conductedBy,
	}

	if status == AssessmentNonCompliant || status == AssessmentPartiallyCompliant {
		assessment.ActionsRequired = true
		assessment.AddDomainEvent(NewNonComplianceFoundEvent(assessment))
	}

	return assessment, nil
}

// SetActionPlan records the corrective plan for a failed assessment
func (a *Assessment) SetActionPlan(plan string, targetDate time.Time) error {
	if !a.ActionsRequired {
		return shared.NewDomainError("INVALID_STATE", "Assessment requires no corrective action")
	}
	if strings.TrimSpace(plan) == "" {
		return shared.NewDomainError("INVALID_PLAN", "Action plan is required")
	}
	a.ActionPlan = strings.TrimSpace(plan)
	a.TargetCompletionDate = &targetDate
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// CompleteActions closes out the corrective work
func (a *Assessment) CompleteActions(completedAt time.Time) error {
	if !a.ActionsRequired {
		return shared.NewDomainError("INVALID_STATE", "Assessment requires no corrective action")
	}
	if a.CompletedAt != nil {
		return shared.NewDomainError("INVALID_STATE", "Corrective actions are already completed")
	}
	a.CompletedAt = &completedAt
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// IsOverdue reports whether corrective work has passed its target date
func (a *Assessment) IsOverdue(asOf time.Time) bool {
	return a.ActionsRequired && a.CompletedAt == nil &&
		a.TargetCompletionDate != nil && asOf.After(*a.TargetCompletionDate)
}
