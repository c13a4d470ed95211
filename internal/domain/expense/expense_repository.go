package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// ExpenseRepository defines the persistence interface for expense claims
type ExpenseRepository interface {
	// FindByID finds a claim by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Expense, error)

	// FindByNumber finds a claim by its expense number
	FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*Expense, error)

	// FindAll finds claims with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Expense], error)

	// FindByEmployee finds an employee's claims, newest first
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Expense], error)

	// FindByStatus finds claims in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status Status, filter shared.Filter) (*shared.Paginated[*Expense], error)

	// MonthToDateTotal sums an employee's non-rejected claims in a category
	// for the month containing the date
	MonthToDateTotal(ctx context.Context, companyID, employeeID uuid.UUID, category Category, date time.Time) (valueobject.Money, error)

	// Save creates or updates a claim
	Save(ctx context.Context, expense *Expense) error

	// Count counts claims matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts claims per status
	CountByStatus(ctx context.Context, companyID uuid.UUID) (map[Status]int64, error)

	// NextSequence returns the next expense sequence for a month
	NextSequence(ctx context.Context, companyID uuid.UUID, date time.Time) (int, error)
}

// ExpensePolicyRepository defines the persistence interface for expense policies
type ExpensePolicyRepository interface {
	// FindByID finds a policy by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*ExpensePolicy, error)

	// FindByCategory finds the active policy for a category
	FindByCategory(ctx context.Context, companyID uuid.UUID, category Category) (*ExpensePolicy, error)

	// FindEffective finds the policy for a category effective on a date
	FindEffective(ctx context.Context, companyID uuid.UUID, category Category, date time.Time) (*ExpensePolicy, error)

	// FindAll finds all policies for the company
	FindAll(ctx context.Context, companyID uuid.UUID) ([]*ExpensePolicy, error)

	// Save creates or updates a policy
	Save(ctx context.Context, policy *ExpensePolicy) error

	// Delete deletes a policy
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
