package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// DocumentRepository defines the persistence interface for documents
type DocumentRepository interface {
	// FindByID finds a document by ID, acknowledgments included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Document, error)

	// FindAll finds documents with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Document], error)

	// FindByEmployee finds documents scoped to one employee
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Document], error)

	// FindCompanyWide finds documents not scoped to any employee
	FindCompanyWide(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Document], error)

	// FindByCategory finds documents in a category
	FindByCategory(ctx context.Context, companyID uuid.UUID, category Category, filter shared.Filter) (*shared.Paginated[*Document], error)

	// FindExpiring finds active documents expiring before the date
	FindExpiring(ctx context.Context, companyID uuid.UUID, before time.Time) ([]*Document, error)

	// FindExpired finds active documents already past expiry
	FindExpired(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Document, error)

	// FindPendingAcknowledgment finds active documents an employee still has to acknowledge
	FindPendingAcknowledgment(ctx context.Context, companyID, employeeID uuid.UUID) ([]*Document, error)

	// Save creates or updates a document
	Save(ctx context.Context, document *Document) error

	// Delete deletes a document record
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	// Count counts documents matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
}
