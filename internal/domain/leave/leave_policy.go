package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// AccrualFrequency is how often leave accrues under a policy
type AccrualFrequency string

const (
	AccrualYearly    AccrualFrequency = "yearly"
	AccrualMonthly   AccrualFrequency = "monthly"
	AccrualQuarterly AccrualFrequency = "quarterly"
)

// LeavePolicy defines company rules for one leave type
type LeavePolicy struct {
	shared.TenantAggregateRoot
	Type                 LeaveType
	DaysPerYear          decimal.Decimal
	MinServiceMonths     int // Months of service before the policy applies
	MaxConsecutiveDays   int // 0 means unlimited
	MinNoticeDays        int // Advance notice required, in days
	Accrual              AccrualFrequency
	AllowCarryForward    bool
	MaxCarryForwardDays  decimal.Decimal
	AutoApproveThreshold decimal.Decimal // Requests at or under this many days auto-approve; zero disables
	RequiresAttachment   bool            // e.g. medical certificate for sick leave
	EffectiveFrom        time.Time
	EffectiveTo          *time.Time
	IsActive             bool
}

// TableName returns the table name for GORM
func (LeavePolicy) TableName() string {
	return "leave_policies"
}

// NewLeavePolicy creates a policy for a leave type
func NewLeavePolicy(companyID uuid.UUID, leaveType LeaveType, daysPerYear decimal.Decimal, effectiveFrom time.Time) (*LeavePolicy, error) {
	if !leaveType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", "Invalid leave type")
	}
	if daysPerYear.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DAYS", "Days per year cannot be negative")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_DATE", "Effective date is required")
	}

	return &LeavePolicy{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Type:                leaveType,
		DaysPerYear:         daysPerYear,
		Accrual:             AccrualYearly,
		EffectiveFrom:       effectiveFrom,
		IsActive:            true,
	}, nil
}

// SetRules updates the policy constraints
func (p *LeavePolicy) SetRules(minServiceMonths, maxConsecutiveDays, minNoticeDays int) error {
	if minServiceMonths < 0 || maxConsecutiveDays < 0 || minNoticeDays < 0 {
		return shared.NewDomainError("INVALID_RULES", "Policy rules cannot be negative")
	}
	p.MinServiceMonths = minServiceMonths
	p.MaxConsecutiveDays = maxConsecutiveDays
	p.MinNoticeDays = minNoticeDays
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetCarryForward configures carry-forward behavior
func (p *LeavePolicy) SetCarryForward(allow bool, maxDays decimal.Decimal) error {
	if allow && maxDays.IsNegative() {
		return shared.NewDomainError("INVALID_DAYS", "Max carry forward cannot be negative")
	}
	p.AllowCarryForward = allow
	if !allow {
		maxDays = decimal.Zero
	}
	p.MaxCarryForwardDays = maxDays
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetAutoApprove sets the auto-approval threshold in days
func (p *LeavePolicy) SetAutoApprove(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return shared.NewDomainError("INVALID_THRESHOLD", "Auto-approve threshold cannot be negative")
	}
	p.AutoApproveThreshold = threshold
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetRequiresAttachment toggles the supporting-document requirement
func (p *LeavePolicy) SetRequiresAttachment(required bool) {
	p.RequiresAttachment = required
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate ends the policy
func (p *LeavePolicy) Deactivate(effectiveTo time.Time) error {
	if !p.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Policy is already inactive")
	}
	p.IsActive = false
	p.EffectiveTo = &effectiveTo
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsEffective reports whether the policy applies on a date
func (p *LeavePolicy) IsEffective(date time.Time) bool {
	if !p.IsActive && (p.EffectiveTo == nil || date.After(*p.EffectiveTo)) {
		return false
	}
	if date.Before(p.EffectiveFrom) {
		return false
	}
	if p.EffectiveTo != nil && date.After(*p.EffectiveTo) {
		return false
	}
	return true
}

// ValidateRequest checks a prospective request against the policy.
// serviceMonths is the employee's months of service, noticeDays the days
// between submission and the leave start.
func (p *LeavePolicy) ValidateRequest(days decimal.Decimal, serviceMonths, noticeDays int) error {
	if serviceMonths < p.MinServiceMonths {
		return shared.NewDomainError("SERVICE_TOO_SHORT", "Employee has not completed the minimum service period for this leave type")
	}
	if p.MaxConsecutiveDays > 0 && days.GreaterThan(decimal.NewFromInt(int64(p.MaxConsecutiveDays))) {
		return shared.NewDomainError("EXCEEDS_MAX_CONSECUTIVE", "Request exceeds the maximum consecutive days allowed")
	}
	if noticeDays < p.MinNoticeDays {
		return shared.NewDomainError("INSUFFICIENT_NOTICE", "Request does not meet the minimum advance notice")
	}
	return nil
}

// ShouldAutoApprove reports whether the request qualifies for auto-approval
func (p *LeavePolicy) ShouldAutoApprove(days decimal.Decimal) bool {
	return p.AutoApproveThreshold.IsPositive() && days.LessThanOrEqual(p.AutoApproveThreshold)
}

// CarryForwardAmount caps leftover days by the policy's carry-forward limit
func (p *LeavePolicy) CarryForwardAmount(leftover decimal.Decimal) decimal.Decimal {
	if !p.AllowCarryForward || leftover.IsNegative() {
		return decimal.Zero
	}
	if leftover.GreaterThan(p.MaxCarryForwardDays) {
		return p.MaxCarryForwardDays
	}
	return leftover
}
