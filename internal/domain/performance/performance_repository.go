package performance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// ReviewRepository defines the persistence interface for performance reviews
type ReviewRepository interface {
	// FindByID finds a review by ID, goals included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Review, error)

	// FindAll finds reviews with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Review], error)

	// FindByEmployee finds an employee's reviews, newest first
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Review], error)

	// FindByReviewer finds reviews assigned to a reviewer
	FindByReviewer(ctx context.Context, companyID, reviewerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Review], error)

	// FindByStatus finds reviews in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status ReviewStatus, filter shared.Filter) (*shared.Paginated[*Review], error)

	// FindOverdue finds open reviews past their due date
	FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Review, error)

	// FindOverlapping finds non-cancelled reviews for an employee whose
	// period overlaps [start, end]
	FindOverlapping(ctx context.Context, companyID, employeeID uuid.UUID, start, end time.Time) ([]*Review, error)

	// Save creates or updates a review with its goals
	Save(ctx context.Context, review *Review) error

	// Count counts reviews matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
}
