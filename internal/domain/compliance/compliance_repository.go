package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// RequirementRepository defines the persistence interface for requirements
type RequirementRepository interface {
	// FindByID finds a requirement by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Requirement, error)

	// FindByCode finds a requirement by its code
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Requirement, error)

	// FindAll finds requirements with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Requirement], error)

	// FindActive finds active requirements
	FindActive(ctx context.Context, companyID uuid.UUID) ([]*Requirement, error)

	// FindReviewDue finds active requirements whose next review has come due
	FindReviewDue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Requirement, error)

	// Save creates or updates a requirement
	Save(ctx context.Context, requirement *Requirement) error

	// ExistsByCode checks whether a code is taken
	ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error)
}

// AssessmentRepository defines the persistence interface for assessments
type AssessmentRepository interface {
	// FindByID finds an assessment by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Assessment, error)

	// FindByRequirement finds assessments of a requirement, newest first
	FindByRequirement(ctx context.Context, companyID, requirementID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Assessment], error)

	// FindAll finds assessments with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Assessment], error)

	// FindLatestByRequirement finds the most recent assessment per requirement
	FindLatestByRequirement(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]*Assessment, error)

	// FindOverdueActions finds assessments with corrective work past its target date
	FindOverdueActions(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Assessment, error)

	// Save creates or updates an assessment
	Save(ctx context.Context, assessment *Assessment) error

	// CountByStatus counts assessments per outcome
	CountByStatus(ctx context.Context, companyID uuid.UUID) (map[AssessmentStatus]int64, error)
}
