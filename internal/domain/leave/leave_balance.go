package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveBalance tracks an employee's allowance for one leave type and year.
// Available = Allocated + CarriedForward - Used - Pending.
type LeaveBalance struct {
	shared.TenantAggregateRoot
	EmployeeID     uuid.UUID
	Type           LeaveType
	Year           int
	Allocated      decimal.Decimal
	CarriedForward decimal.Decimal
	Used           decimal.Decimal
	Pending        decimal.Decimal
}

// TableName returns the table name for GORM
func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// NewLeaveBalance allocates a yearly balance for an employee
func NewLeaveBalance(companyID, employeeID uuid.UUID, leaveType LeaveType, year int, allocated decimal.Decimal) (*LeaveBalance, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if !leaveType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", "Invalid leave type")
	}
	if year < 2000 || year > 2200 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year out of range")
	}
	if allocated.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ALLOCATION", "Allocation cannot be negative")
	}

	return &LeaveBalance{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		Type:                leaveType,
		Year:                year,
		Allocated:           allocated,
		CarriedForward:      decimal.Zero,
		Used:                decimal.Zero,
		Pending:             decimal.Zero,
	}, nil
}

// Available returns the days still available to request
func (b *LeaveBalance) Available() decimal.Decimal {
	return b.Allocated.Add(b.CarriedForward).Sub(b.Used).Sub(b.Pending)
}

// Reserve moves days into pending when a request is submitted
func (b *LeaveBalance) Reserve(days decimal.Decimal) error {
	if !days.IsPositive() {
		return shared.NewDomainError("INVALID_DAYS", "Days must be positive")
	}
	if days.GreaterThan(b.Available()) {
		return shared.ErrInsufficientBalance
	}

	b.Pending = b.Pending.Add(days)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Release returns pending days when a request is rejected, withdrawn or cancelled
func (b *LeaveBalance) Release(days decimal.Decimal) error {
	if !days.IsPositive() {
		return shared.NewDomainError("INVALID_DAYS", "Days must be positive")
	}
	if days.GreaterThan(b.Pending) {
		return shared.NewDomainError("INVALID_DAYS", "Cannot release more than pending days")
	}

	b.Pending = b.Pending.Sub(days)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Consume converts pending days into used days on approval
func (b *LeaveBalance) Consume(days decimal.Decimal) error {
	if !days.IsPositive() {
		return shared.NewDomainError("INVALID_DAYS", "Days must be positive")
	}
	if days.GreaterThan(b.Pending) {
		return shared.NewDomainError("INVALID_DAYS", "Cannot consume more than pending days")
	}

	b.Pending = b.Pending.Sub(days)
	b.Used = b.Used.Add(days)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Refund returns used days when approved leave is cancelled before it starts
func (b *LeaveBalance) Refund(days decimal.Decimal) error {
	if !days.IsPositive() {
		return shared.NewDomainError("INVALID_DAYS", "Days must be positive")
	}
	if days.GreaterThan(b.Used) {
		return shared.NewDomainError("INVALID_DAYS", "Cannot refund more than used days")
	}

	b.Used = b.Used.Sub(days)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetCarriedForward records days carried over from the previous year
func (b *LeaveBalance) SetCarriedForward(days decimal.Decimal) error {
	if days.IsNegative() {
		return shared.NewDomainError("INVALID_DAYS", "Carried forward days cannot be negative")
	}
	b.CarriedForward = days
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// Adjust changes the yearly allocation (e.g. policy change or correction)
func (b *LeaveBalance) Adjust(allocated decimal.Decimal) error {
	if allocated.IsNegative() {
		return shared.NewDomainError("INVALID_ALLOCATION", "Allocation cannot be negative")
	}
	if allocated.LessThan(b.Used.Add(b.Pending)) {
		return shared.NewDomainError("INVALID_ALLOCATION", "Allocation cannot drop below used and pending days")
	}
	b.Allocated = allocated
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}
