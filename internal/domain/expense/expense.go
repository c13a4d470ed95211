package expense

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// Category classifies an expense claim
type Category string

const (
	CategoryTravel         Category = "travel"
	CategoryMeals          Category = "meals"
	CategoryAccommodation  Category = "accommodation"
	CategoryTransport      Category = "transport"
	CategoryOfficeSupplies Category = "office_supplies"
	CategorySoftware       Category = "software"
	CategoryTraining       Category = "training"
	CategoryMedical        Category = "medical"
	CategoryOther          Category = "other"
)

// IsValid checks if the category is a valid Category
func (c Category) IsValid() bool {
	switch c {
	case CategoryTravel, CategoryMeals, CategoryAccommodation, CategoryTransport,
		CategoryOfficeSupplies, CategorySoftware, CategoryTraining, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Status represents the workflow state of an expense claim
type Status string

const (
	StatusDraft      Status = "draft"
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusReimbursed Status = "reimbursed"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected,
		StatusReimbursed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if the claim is in a terminal state
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusReimbursed || s == StatusCancelled
}

// Receipt holds the supporting document details for a claim
type Receipt struct {
	URL        string
	Number     string
	VendorName string
}

// IsAttached reports whether a receipt document is present
func (r Receipt) IsAttached() bool {
	return r.URL != ""
}

// Expense is an employee expense claim.
// draft -> submitted -> approved -> reimbursed; rejected and cancelled are terminal.
type Expense struct {
	shared.TenantAggregateRoot
	EmployeeID  uuid.UUID
	Number      string
	Category    Category
	Title       string
	Description string
	Amount      valueobject.Money
	ExpenseDate time.Time
	Receipt     Receipt `gorm:"embedded;embeddedPrefix:receipt_"`

	Status          Status
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID
	RejectionReason string

	ReimbursedAt           *time.Time
	ReimbursedAmount       valueobject.Money
	ReimbursementReference string

	ClientBillable bool
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// GenerateExpenseNumber builds an expense number like EXP-202406-0001
func GenerateExpenseNumber(expenseDate time.Time, sequence int) string {
	return fmt.Sprintf("EXP-%s-%04d", expenseDate.Format("200601"), sequence)
}

// NewExpense creates a draft expense claim
func NewExpense(companyID, employeeID uuid.UUID, number string, category Category, title string, amount valueobject.Money, expenseDate time.Time) (*Expense, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Expense number is required")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Invalid expense category")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title is required")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot exceed 200 characters")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if expenseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}
	if expenseDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date cannot be in the future")
	}

	return &Expense{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		Number:              strings.TrimSpace(number),
		Category:            category,
		Title:               title,
		Amount:              amount,
		ExpenseDate:         expenseDate,
		Status:              StatusDraft,
	}, nil
}

// Update edits a draft claim
func (e *Expense) Update(category Category, title, description string, amount valueobject.Money, expenseDate time.Time) error {
	if e.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft expenses can be edited")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Invalid expense category")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Expense title is required")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	e.Category = category
	e.Title = title
	e.Description = strings.TrimSpace(description)
	e.Amount = amount
	e.ExpenseDate = expenseDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// AttachReceipt stores the receipt details
func (e *Expense) AttachReceipt(url, number, vendorName string) error {
	if e.Status != StatusDraft && e.Status != StatusSubmitted {
		return shared.NewDomainError("INVALID_STATE", "Receipts can only be attached before approval")
	}
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_URL", "Receipt URL cannot exceed 500 characters")
	}
	e.Receipt = Receipt{URL: url, Number: number, VendorName: vendorName}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// SetClientBillable flags the claim as billable to a client
func (e *Expense) SetClientBillable(billable bool) {
	e.ClientBillable = billable
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Submit sends a draft for approval. requireReceipt enforces the policy's
// receipt rule for this amount.
func (e *Expense) Submit(requireReceipt bool) error {
	if e.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft expenses can be submitted")
	}
	if requireReceipt && !e.Receipt.IsAttached() {
		return shared.NewDomainError("RECEIPT_REQUIRED", "A receipt is required for this expense")
	}

	now := time.Now()
	e.Status = StatusSubmitted
	e.SubmittedAt = &now
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseSubmittedEvent(e))

	return nil
}

// Approve approves a submitted claim. Employees cannot approve their own claims,
// which is checked at the service layer against the approver's employee record.
func (e *Expense) Approve(approverID uuid.UUID) error {
	if e.Status != StatusSubmitted {
		return shared.NewDomainError("INVALID_STATE", "Only submitted expenses can be approved")
	}

	now := time.Now()
	e.Status = StatusApproved
	e.ApprovedBy = &approverID
	e.ApprovedAt = &now
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseApprovedEvent(e))

	return nil
}

// Reject rejects a submitted claim with a reason
func (e *Expense) Reject(approverID uuid.UUID, reason string) error {
	if e.Status != StatusSubmitted {
		return shared.NewDomainError("INVALID_STATE", "Only submitted expenses can be rejected")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	e.Status = StatusRejected
	e.ApprovedBy = &approverID
	e.RejectionReason = strings.TrimSpace(reason)
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseRejectedEvent(e))

	return nil
}

// Reimburse pays out an approved claim. Partial reimbursement is allowed
// but cannot exceed the claimed amount.
func (e *Expense) Reimburse(amount valueobject.Money, reference string) error {
	if e.Status != StatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Only approved expenses can be reimbursed")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Reimbursement amount must be positive")
	}
	exceeds, err := amount.GreaterThan(e.Amount)
	if err != nil {
		return shared.NewDomainError("CURRENCY_MISMATCH", "Reimbursement currency must match the claim")
	}
	if exceeds {
		return shared.NewDomainError("INVALID_AMOUNT", "Reimbursement cannot exceed the claimed amount")
	}

	now := time.Now()
	e.Status = StatusReimbursed
	e.ReimbursedAt = &now
	e.ReimbursedAmount = amount
	e.ReimbursementReference = reference
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseReimbursedEvent(e))

	return nil
}

// Cancel cancels a draft or submitted claim
func (e *Expense) Cancel() error {
	if e.Status != StatusDraft && e.Status != StatusSubmitted {
		return shared.NewDomainError("INVALID_STATE", "Expense cannot be cancelled in current state")
	}
	e.Status = StatusCancelled
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}
