package benefits

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// BenefitType classifies a benefit plan
type BenefitType string

const (
	BenefitTypeHealthInsurance     BenefitType = "health_insurance"
	BenefitTypeDentalInsurance     BenefitType = "dental_insurance"
	BenefitTypeVisionInsurance     BenefitType = "vision_insurance"
	BenefitTypeLifeInsurance       BenefitType = "life_insurance"
	BenefitTypeDisabilityInsurance BenefitType = "disability_insurance"
	BenefitTypePension             BenefitType = "pension"
	BenefitTypeCommuter            BenefitType = "commuter_benefits"
	BenefitTypeGymMembership       BenefitType = "gym_membership"
	BenefitTypeEducationAssistance BenefitType = "education_assistance"
	BenefitTypeStockOptions        BenefitType = "stock_options"
	BenefitTypeMealAllowance       BenefitType = "meal_allowance"
)

// IsValid checks if the type is a valid BenefitType
func (t BenefitType) IsValid() bool {
	switch t {
	case BenefitTypeHealthInsurance, BenefitTypeDentalInsurance, BenefitTypeVisionInsurance,
		BenefitTypeLifeInsurance, BenefitTypeDisabilityInsurance, BenefitTypePension,
		BenefitTypeCommuter, BenefitTypeGymMembership, BenefitTypeEducationAssistance,
		BenefitTypeStockOptions, BenefitTypeMealAllowance:
		return true
	}
	return false
}

// PlanStatus represents the availability of a benefit plan
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusInactive  PlanStatus = "inactive"
	PlanStatusSuspended PlanStatus = "suspended"
	PlanStatusExpired   PlanStatus = "expired"
)

// IsValid checks if the status is a valid PlanStatus
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusActive, PlanStatusInactive, PlanStatusSuspended, PlanStatusExpired:
		return true
	}
	return false
}

// Provider holds the external provider details
type Provider struct {
	Name         string
	Contact      string
	PolicyNumber string
	GroupNumber  string
}

// Contribution splits the premium between employer and employee, per month
type Contribution struct {
	EmployerAmount valueobject.Money
	EmployeeAmount valueobject.Money
	AnnualPremium  valueobject.Money
}

// BenefitPlan is a benefit offered to employees for one plan year
type BenefitPlan struct {
	shared.TenantAggregateRoot
	Name        string
	Code        string
	Type        BenefitType
	Description string
	Provider    Provider `gorm:"embedded;embeddedPrefix:provider_"`

	CoverageStart time.Time
	CoverageEnd   *time.Time
	PlanYear      int

	Contribution      Contribution `gorm:"embedded"`
	WaitingPeriodDays int
	MinHoursPerWeek   int
	AnnualMaximum     valueobject.Money
	DeductibleAmount  valueobject.Money

	Status           PlanStatus
	IsMandatory      bool
	AllowsDependents bool
	MaxDependents    int
}

// TableName returns the table name for GORM
func (BenefitPlan) TableName() string {
	return "benefit_plans"
}

// NewBenefitPlan creates an active plan for a plan year
func NewBenefitPlan(companyID uuid.UUID, name, code string, benefitType BenefitType, planYear int, coverageStart time.Time) (*BenefitPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Plan name is required")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Plan code is required")
	}
	if !benefitType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid benefit type")
	}
	if planYear < 2000 || planYear > 2200 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Plan year out of range")
	}
	if coverageStart.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Coverage start date is required")
	}

	return &BenefitPlan{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Code:                code,
		Type:                benefitType,
		PlanYear:            planYear,
		CoverageStart:       coverageStart,
		Status:              PlanStatusActive,
		AllowsDependents:    true,
	}, nil
}

// SetProvider records the external provider
func (p *BenefitPlan) SetProvider(provider Provider) {
	p.Provider = provider
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetContribution sets the monthly premium split
func (p *BenefitPlan) SetContribution(c Contribution) error {
	if c.EmployerAmount.IsNegative() || c.EmployeeAmount.IsNegative() || c.AnnualPremium.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Contributions cannot be negative")
	}
	p.Contribution = c
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetEligibility configures the waiting period and hours requirement
func (p *BenefitPlan) SetEligibility(waitingPeriodDays, minHoursPerWeek int) error {
	if waitingPeriodDays < 0 || minHoursPerWeek < 0 {
		return shared.NewDomainError("INVALID_ELIGIBILITY", "Eligibility values cannot be negative")
	}
	p.WaitingPeriodDays = waitingPeriodDays
	p.MinHoursPerWeek = minHoursPerWeek
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetDependentRules configures dependent coverage
func (p *BenefitPlan) SetDependentRules(allows bool, maxDependents int) error {
	if maxDependents < 0 {
		return shared.NewDomainError("INVALID_DEPENDENTS", "Max dependents cannot be negative")
	}
	p.AllowsDependents = allows
	if !allows {
		maxDependents = 0
	}
	p.MaxDependents = maxDependents
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Suspend pauses new enrollments
func (p *BenefitPlan) Suspend() error {
	if p.Status != PlanStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active plans can be suspended")
	}
	p.Status = PlanStatusSuspended
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Reactivate resumes a suspended plan
func (p *BenefitPlan) Reactivate() error {
	if p.Status != PlanStatusSuspended && p.Status != PlanStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Plan cannot be reactivated in current state")
	}
	p.Status = PlanStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Expire closes the plan at the end of coverage
func (p *BenefitPlan) Expire(coverageEnd time.Time) error {
	if p.Status == PlanStatusExpired {
		return shared.NewDomainError("INVALID_STATE", "Plan is already expired")
	}
	if coverageEnd.Before(p.CoverageStart) {
		return shared.NewDomainError("INVALID_DATE", "Coverage end cannot be before coverage start")
	}
	p.Status = PlanStatusExpired
	p.CoverageEnd = &coverageEnd
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsOpenForEnrollment reports whether new enrollments are accepted
func (p *BenefitPlan) IsOpenForEnrollment() bool {
	return p.Status == PlanStatusActive
}

// EligibleAfter returns the first date an employee hired on hireDate can enroll
func (p *BenefitPlan) EligibleAfter(hireDate time.Time) time.Time {
	eligible := hireDate.AddDate(0, 0, p.WaitingPeriodDays)
	if eligible.Before(p.CoverageStart) {
		return p.CoverageStart
	}
	return eligible
}
