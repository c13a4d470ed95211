package expense

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeExpense = "Expense"

// Event type constants
const (
	EventTypeExpenseSubmitted  = "ExpenseSubmitted"
	EventTypeExpenseApproved   = "ExpenseApproved"
	EventTypeExpenseRejected   = "ExpenseRejected"
	EventTypeExpenseReimbursed = "ExpenseReimbursed"
)

// ExpenseSubmittedEvent is published when a claim is submitted
type ExpenseSubmittedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Number     string    `json:"number"`
	Category   Category  `json:"category"`
	Amount     string    `json:"amount"`
}

// NewExpenseSubmittedEvent creates a new ExpenseSubmittedEvent
func NewExpenseSubmittedEvent(e *Expense) *ExpenseSubmittedEvent {
	return &ExpenseSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseSubmitted, AggregateTypeExpense, e.ID, e.TenantID),
		EmployeeID:      e.EmployeeID,
		Number:          e.Number,
		Category:        e.Category,
		Amount:          e.Amount.String(),
	}
}

// ExpenseApprovedEvent is published when a claim is approved
type ExpenseApprovedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Number     string    `json:"number"`
	Amount     string    `json:"amount"`
}

// NewExpenseApprovedEvent creates a new ExpenseApprovedEvent
func NewExpenseApprovedEvent(e *Expense) *ExpenseApprovedEvent {
	return &ExpenseApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseApproved, AggregateTypeExpense, e.ID, e.TenantID),
		EmployeeID:      e.EmployeeID,
		Number:          e.Number,
		Amount:          e.Amount.String(),
	}
}

// ExpenseRejectedEvent is published when a claim is rejected
type ExpenseRejectedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Number     string    `json:"number"`
	Reason     string    `json:"reason"`
}

// NewExpenseRejectedEvent creates a new ExpenseRejectedEvent
func NewExpenseRejectedEvent(e *Expense) *ExpenseRejectedEvent {
	return &ExpenseRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRejected, AggregateTypeExpense, e.ID, e.TenantID),
		EmployeeID:      e.EmployeeID,
		Number:          e.Number,
		Reason:          e.RejectionReason,
	}
}

// ExpenseReimbursedEvent is published when a claim is paid out
type ExpenseReimbursedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Number     string    `json:"number"`
	Amount     string    `json:"amount"`
	Reference  string    `json:"reference"`
}

// NewExpenseReimbursedEvent creates a new ExpenseReimbursedEvent
func NewExpenseReimbursedEvent(e *Expense) *ExpenseReimbursedEvent {
	return &ExpenseReimbursedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseReimbursed, AggregateTypeExpense, e.ID, e.TenantID),
		EmployeeID:      e.EmployeeID,
		Number:          e.Number,
		Amount:          e.ReimbursedAmount.String(),
		Reference:       e.ReimbursementReference,
	}
}
