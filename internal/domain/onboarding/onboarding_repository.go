package onboarding

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// ChecklistRepository defines the persistence interface for onboarding checklists
type ChecklistRepository interface {
	// FindByID finds a checklist by ID, tasks included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Checklist, error)

	// FindByEmployee finds the checklist for an employee
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*Checklist, error)

	// FindAll finds checklists with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Checklist], error)

	// FindByStatus finds checklists in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status ChecklistStatus, filter shared.Filter) (*shared.Paginated[*Checklist], error)

	// FindOverdueCandidates finds open checklists past their expected completion date
	FindOverdueCandidates(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Checklist, error)

	// Save creates or updates a checklist with its tasks
	Save(ctx context.Context, checklist *Checklist) error

	// Count counts checklists matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
}
