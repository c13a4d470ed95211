package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
)

// ExpenseService handles expense claim submission, approval and reimbursement
type ExpenseService struct {
	expenseRepo    expense.ExpenseRepository
	policyRepo     expense.ExpensePolicyRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo expense.ExpenseRepository,
	policyRepo expense.ExpensePolicyRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ExpenseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateExpenseInput contains input for creating an expense claim
type CreateExpenseInput struct {
	CompanyID      uuid.UUID
	EmployeeID     uuid.UUID
	Category       string
	Title          string
	Description    string
	Amount         decimal.Decimal
	Currency       string
	ExpenseDate    time.Time
	ClientBillable bool
}

// UpdateExpenseInput contains input for editing a draft claim
type UpdateExpenseInput struct {
	CompanyID   uuid.UUID
	ID          uuid.UUID
	Category    string
	Title       string
	Description string
	Amount      decimal.Decimal
	Currency    string
	ExpenseDate time.Time
}

// ReceiptInput contains receipt details to attach
type ReceiptInput struct {
	CompanyID  uuid.UUID
	ID         uuid.UUID
	URL        string
	Number     string
	VendorName string
}

// ExpenseDTO represents an expense claim
type ExpenseDTO struct {
	ID                     uuid.UUID  `json:"id"`
	EmployeeID             uuid.UUID  `json:"employee_id"`
	Number                 string     `json:"number"`
	Category               string     `json:"category"`
	Title                  string     `json:"title"`
	Description            string     `json:"description,omitempty"`
	Amount                 string     `json:"amount"`
	Currency               string     `json:"currency"`
	ExpenseDate            string     `json:"expense_date"`
	ReceiptURL             string     `json:"receipt_url,omitempty"`
	ReceiptNumber          string     `json:"receipt_number,omitempty"`
	VendorName             string     `json:"vendor_name,omitempty"`
	Status                 string     `json:"status"`
	SubmittedAt            *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`
	ApprovedBy             *uuid.UUID `json:"approved_by,omitempty"`
	RejectionReason        string     `json:"rejection_reason,omitempty"`
	ReimbursedAt           *time.Time `json:"reimbursed_at,omitempty"`
	ReimbursedAmount       string     `json:"reimbursed_amount,omitempty"`
	ReimbursementReference string     `json:"reimbursement_reference,omitempty"`
	ClientBillable         bool       `json:"client_billable"`
	CreatedAt              time.Time  `json:"created_at"`
}

// ExpenseListResult represents a paginated claim list
type ExpenseListResult struct {
	Expenses   []ExpenseDTO `json:"expenses"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Create creates a draft expense claim
func (s *ExpenseService) Create(ctx context.Context, input CreateExpenseInput) (*ExpenseDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if !employee.Status.IsWorking() {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_WORKING", "Employee is not in a working status")
	}

	amount, err := s.toMoney(input.Amount, input.Currency)
	if err != nil {
		return nil, err
	}

	seq, err := s.expenseRepo.NextSequence(ctx, input.CompanyID, input.ExpenseDate)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate expense number")
	}
	number := expense.GenerateExpenseNumber(input.ExpenseDate, seq)

	claim, err := expense.NewExpense(input.CompanyID, input.EmployeeID, number,
		expense.Category(input.Category), input.Title, amount, input.ExpenseDate)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := claim.Update(claim.Category, claim.Title, input.Description, claim.Amount, claim.ExpenseDate); err != nil {
			return nil, err
		}
	}
	if input.ClientBillable {
		claim.SetClientBillable(true)
	}

	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		s.logger.Error("Failed to create expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create expense")
	}

	s.logger.Info("Expense created",
		zap.String("expense_id", claim.ID.String()),
		zap.String("number", claim.Number))

	return toExpenseDTO(claim), nil
}

// Update edits a draft claim
func (s *ExpenseService) Update(ctx context.Context, input UpdateExpenseInput) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	amount, err := s.toMoney(input.Amount, input.Currency)
	if err != nil {
		return nil, err
	}

	if err := claim.Update(expense.Category(input.Category), input.Title, input.Description, amount, input.ExpenseDate); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update expense")
	}
	return toExpenseDTO(claim), nil
}

// AttachReceipt stores receipt details on the claim
func (s *ExpenseService) AttachReceipt(ctx context.Context, input ReceiptInput) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}
	if err := claim.AttachReceipt(input.URL, input.Number, input.VendorName); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}
	return toExpenseDTO(claim), nil
}

// Submit sends a draft for approval. Policy limits and the receipt rule are
// enforced here; claims under the auto-approve threshold are approved at once.
func (s *ExpenseService) Submit(ctx context.Context, companyID, expenseID uuid.UUID) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policyRepo.FindEffective(ctx, companyID, claim.Category, claim.ExpenseDate)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load expense policy")
	}

	requireReceipt := false
	if policy != nil {
		monthToDate, err := s.expenseRepo.MonthToDateTotal(ctx, companyID, claim.EmployeeID, claim.Category, claim.ExpenseDate)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute monthly total")
		}
		if err := policy.ValidateAmount(claim.Amount, monthToDate); err != nil {
			return nil, err
		}
		requireReceipt = policy.ReceiptRequired(claim.Amount)
	}

	if err := claim.Submit(requireReceipt); err != nil {
		return nil, err
	}

	if policy != nil && policy.ShouldAutoApprove(claim.Amount) {
		if err := claim.Approve(uuid.Nil); err != nil {
			return nil, err
		}
	}

	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		s.logger.Error("Failed to submit expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit expense")
	}

	s.publishDomainEvents(ctx, claim)

	s.logger.Info("Expense submitted",
		zap.String("expense_id", claim.ID.String()),
		zap.String("status", string(claim.Status)))

	return toExpenseDTO(claim), nil
}

// Approve approves a submitted claim
func (s *ExpenseService) Approve(ctx context.Context, companyID, expenseID, approverID uuid.UUID) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if claim.EmployeeID == approverID {
		return nil, shared.NewDomainError("SELF_APPROVAL", "Employees cannot approve their own expenses")
	}

	if err := claim.Approve(approverID); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}

	s.publishDomainEvents(ctx, claim)

	return toExpenseDTO(claim), nil
}

// Reject rejects a submitted claim
func (s *ExpenseService) Reject(ctx context.Context, companyID, expenseID, approverID uuid.UUID, reason string) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if err := claim.Reject(approverID, reason); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}

	s.publishDomainEvents(ctx, claim)

	return toExpenseDTO(claim), nil
}

// Reimburse pays out an approved claim
func (s *ExpenseService) Reimburse(ctx context.Context, companyID, expenseID uuid.UUID, amount decimal.Decimal, currency, reference string) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}

	money, err := s.toMoney(amount, currency)
	if err != nil {
		return nil, err
	}
	if err := claim.Reimburse(money, reference); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}

	s.publishDomainEvents(ctx, claim)

	s.logger.Info("Expense reimbursed",
		zap.String("expense_id", claim.ID.String()),
		zap.String("reference", reference))

	return toExpenseDTO(claim), nil
}

// Cancel cancels a draft or submitted claim
func (s *ExpenseService) Cancel(ctx context.Context, companyID, expenseID uuid.UUID) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if err := claim.Cancel(); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, claim); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}
	return toExpenseDTO(claim), nil
}

// Get retrieves a claim by ID
func (s *ExpenseService) Get(ctx context.Context, companyID, expenseID uuid.UUID) (*ExpenseDTO, error) {
	claim, err := s.findExpense(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	return toExpenseDTO(claim), nil
}

// ListByEmployee retrieves an employee's claims, newest first
func (s *ExpenseService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*ExpenseListResult, error) {
	page, err := s.expenseRepo.FindByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list expenses")
	}
	return toExpenseListResult(page), nil
}

// ListByStatus retrieves claims in a given status
func (s *ExpenseService) ListByStatus(ctx context.Context, companyID uuid.UUID, status string, filter shared.Filter) (*ExpenseListResult, error) {
	var page *shared.Paginated[*expense.Expense]
	var err error
	if status != "" {
		page, err = s.expenseRepo.FindByStatus(ctx, companyID, expense.Status(status), filter)
	} else {
		page, err = s.expenseRepo.FindAll(ctx, companyID, filter)
	}
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list expenses")
	}
	return toExpenseListResult(page), nil
}

// StatusCounts returns claim counts per status
func (s *ExpenseService) StatusCounts(ctx context.Context, companyID uuid.UUID) (map[string]int64, error) {
	counts, err := s.expenseRepo.CountByStatus(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to count expenses")
	}
	result := make(map[string]int64, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return result, nil
}

func (s *ExpenseService) toMoney(amount decimal.Decimal, currency string) (valueobject.Money, error) {
	cur := valueobject.Currency(currency)
	if cur == "" {
		cur = valueobject.DefaultCurrency
	}
	return valueobject.NewMoney(amount, cur)
}

func (s *ExpenseService) findExpense(ctx context.Context, companyID, id uuid.UUID) (*expense.Expense, error) {
	claim, err := s.expenseRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EXPENSE_NOT_FOUND", "Expense not found")
		}
		s.logger.Error("Failed to find expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find expense")
	}
	return claim, nil
}

// publishDomainEvents publishes pending domain events from the claim aggregate
func (s *ExpenseService) publishDomainEvents(ctx context.Context, claim *expense.Expense) {
	if s.eventPublisher == nil {
		return
	}
	events := claim.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	claim.ClearDomainEvents()
}

func toExpenseListResult(page *shared.Paginated[*expense.Expense]) *ExpenseListResult {
	dtos := make([]ExpenseDTO, len(page.Items))
	for i, claim := range page.Items {
		dtos[i] = *toExpenseDTO(claim)
	}
	return &ExpenseListResult{
		Expenses:   dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// toExpenseDTO converts a domain Expense to its DTO
func toExpenseDTO(e *expense.Expense) *ExpenseDTO {
	dto := &ExpenseDTO{
		ID:                     e.ID,
		EmployeeID:             e.EmployeeID,
		Number:                 e.Number,
		Category:               string(e.Category),
		Title:                  e.Title,
		Description:            e.Description,
		Amount:                 e.Amount.Amount().String(),
		Currency:               string(e.Amount.Currency()),
		ExpenseDate:            e.ExpenseDate.Format("2006-01-02"),
		ReceiptURL:             e.Receipt.URL,
		ReceiptNumber:          e.Receipt.Number,
		VendorName:             e.Receipt.VendorName,
		Status:                 string(e.Status),
		SubmittedAt:            e.SubmittedAt,
		ApprovedAt:             e.ApprovedAt,
		ApprovedBy:             e.ApprovedBy,
		RejectionReason:        e.RejectionReason,
		ReimbursedAt:           e.ReimbursedAt,
		ReimbursementReference: e.ReimbursementReference,
		ClientBillable:         e.ClientBillable,
		CreatedAt:              e.CreatedAt,
	}
	if !e.ReimbursedAmount.IsZero() {
		dto.ReimbursedAmount = e.ReimbursedAmount.Amount().String()
	}
	return dto
}
