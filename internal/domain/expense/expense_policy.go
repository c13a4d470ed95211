package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// ExpensePolicy defines company rules for one expense category
type ExpensePolicy struct {
	shared.TenantAggregateRoot
	Name     string
	Category Category

	MaxPerExpense        valueobject.Money // Zero disables the limit
	MaxPerMonth          valueobject.Money // Zero disables the limit
	RequiresReceipt      bool
	ReceiptRequiredAbove valueobject.Money

	RequiresApproval bool
	AutoApproveBelow valueobject.Money // Zero disables auto-approval

	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	IsActive      bool
}

// TableName returns the table name for GORM
func (ExpensePolicy) TableName() string {
	return "expense_policies"
}

// NewExpensePolicy creates a policy for an expense category
func NewExpensePolicy(companyID uuid.UUID, name string, category Category, effectiveFrom time.Time) (*ExpensePolicy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Policy name is required")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Invalid expense category")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_DATE", "Effective date is required")
	}

	return &ExpensePolicy{
		TenantAggregateRoot:  shared.NewTenantAggregateRoot(companyID),
		Name:                 name,
		Category:             category,
		RequiresReceipt:      true,
		ReceiptRequiredAbove: valueobject.NewMoneyUSDFromFloat(25),
		RequiresApproval:     true,
		EffectiveFrom:        effectiveFrom,
		IsActive:             true,
	}, nil
}

// SetLimits sets the per-expense and per-month caps
func (p *ExpensePolicy) SetLimits(maxPerExpense, maxPerMonth valueobject.Money) error {
	if maxPerExpense.IsNegative() || maxPerMonth.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Policy limits cannot be negative")
	}
	p.MaxPerExpense = maxPerExpense
	p.MaxPerMonth = maxPerMonth
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetReceiptRule configures when receipts are required
func (p *ExpensePolicy) SetReceiptRule(requires bool, requiredAbove valueobject.Money) error {
	if requiredAbove.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Receipt threshold cannot be negative")
	}
	p.RequiresReceipt = requires
	p.ReceiptRequiredAbove = requiredAbove
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetAutoApprove sets the auto-approval threshold
func (p *ExpensePolicy) SetAutoApprove(below valueobject.Money) error {
	if below.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Auto-approve threshold cannot be negative")
	}
	p.AutoApproveBelow = below
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate ends the policy
func (p *ExpensePolicy) Deactivate(effectiveTo time.Time) error {
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
func (p *ExpensePolicy) IsEffective(date time.Time) bool {
	if !p.IsActive {
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

// ReceiptRequired reports whether a claim of the given amount needs a receipt
func (p *ExpensePolicy) ReceiptRequired(amount valueobject.Money) bool {
	if !p.RequiresReceipt {
		return false
	}
	if p.ReceiptRequiredAbove.IsZero() {
		return true
	}
	above, err := amount.GreaterThan(p.ReceiptRequiredAbove)
	if err != nil {
		return true
	}
	return above
}

// ValidateAmount checks a claim amount against the per-expense cap.
// monthToDate is the employee's already-claimed total for the month.
func (p *ExpensePolicy) ValidateAmount(amount, monthToDate valueobject.Money) error {
	if !p.MaxPerExpense.IsZero() {
		exceeds, err := amount.GreaterThan(p.MaxPerExpense)
		if err != nil {
			return shared.NewDomainError("CURRENCY_MISMATCH", "Claim currency does not match the policy")
		}
		if exceeds {
			return shared.NewDomainError("EXCEEDS_LIMIT", "Claim exceeds the per-expense limit for this category")
		}
	}
	if !p.MaxPerMonth.IsZero() {
		total, err := monthToDate.Add(amount)
		if err != nil {
			return shared.NewDomainError("CURRENCY_MISMATCH", "Claim currency does not match the policy")
		}
		exceeds, err := total.GreaterThan(p.MaxPerMonth)
		if err != nil {
			return shared.NewDomainError("CURRENCY_MISMATCH", "Claim currency does not match the policy")
		}
		if exceeds {
			return shared.NewDomainError("EXCEEDS_LIMIT", "Claim exceeds the monthly limit for this category")
		}
	}
	return nil
}

// ShouldAutoApprove reports whether a claim qualifies for auto-approval
func (p *ExpensePolicy) ShouldAutoApprove(amount valueobject.Money) bool {
	if !p.RequiresApproval {
		return true
	}
	if p.AutoApproveBelow.IsZero() {
		return false
	}
	below, err := amount.LessThan(p.AutoApproveBelow)
	if err != nil {
		return false
	}
	return below
}
