package benefits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// BenefitPlanRepository defines the persistence interface for benefit plans
type BenefitPlanRepository interface {
	// FindByID finds a plan by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*BenefitPlan, error)

	// FindByCode finds a plan by its code
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*BenefitPlan, error)

	// FindAll finds plans with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*BenefitPlan], error)

	// FindActive finds plans open for enrollment
	FindActive(ctx context.Context, companyID uuid.UUID) ([]*BenefitPlan, error)

	// FindByYear finds plans for a plan year
	FindByYear(ctx context.Context, companyID uuid.UUID, planYear int) ([]*BenefitPlan, error)

	// Save creates or updates a plan
	Save(ctx context.Context, plan *BenefitPlan) error

	// ExistsByCode checks whether a plan code is taken
	ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error)
}

// EnrollmentRepository defines the persistence interface for benefit enrollments
type EnrollmentRepository interface {
	// FindByID finds an enrollment by ID, dependents included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Enrollment, error)

	// FindByEmployee finds an employee's enrollments
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*Enrollment, error)

	// FindByPlan finds enrollments in a plan
	FindByPlan(ctx context.Context, companyID, planID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Enrollment], error)

	// FindActiveByEmployeeAndPlan finds a non-terminal enrollment for the pair
	FindActiveByEmployeeAndPlan(ctx context.Context, companyID, employeeID, planID uuid.UUID) (*Enrollment, error)

	// FindActiveOn finds enrollments in force on a date, for payroll deductions
	FindActiveOn(ctx context.Context, companyID uuid.UUID, date time.Time) ([]*Enrollment, error)

	// Save creates or updates an enrollment
	Save(ctx context.Context, enrollment *Enrollment) error

	// CountByPlan counts non-terminal enrollments per plan
	CountByPlan(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]int64, error)
}
