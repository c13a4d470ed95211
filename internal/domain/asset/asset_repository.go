package asset

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// AssetRepository defines the persistence interface for assets
type AssetRepository interface {
	// FindByID finds an asset by ID, assignments and maintenance included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Asset, error)

	// FindByTag finds an asset by its tag
	FindByTag(ctx context.Context, companyID uuid.UUID, tag string) (*Asset, error)

	// FindAll finds assets with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Asset], error)

	// FindByStatus finds assets in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status Status, filter shared.Filter) (*shared.Paginated[*Asset], error)

	// FindByType finds assets of one type
	FindByType(ctx context.Context, companyID uuid.UUID, assetType Type, filter shared.Filter) (*shared.Paginated[*Asset], error)

	// FindAssignedToEmployee finds assets currently held by an employee
	FindAssignedToEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*Asset, error)

	// FindWarrantyExpiring finds assets whose warranty ends within the window
	FindWarrantyExpiring(ctx context.Context, companyID uuid.UUID, before time.Time) ([]*Asset, error)

	// FindMaintenanceDue finds assets with a next maintenance date in the past
	FindMaintenanceDue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*Asset, error)

	// Save creates or updates an asset
	Save(ctx context.Context, asset *Asset) error

	// Count counts assets matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts assets per status
	CountByStatus(ctx context.Context, companyID uuid.UUID) (map[Status]int64, error)

	// ExistsByTag checks whether a tag is taken
	ExistsByTag(ctx context.Context, companyID uuid.UUID, tag string) (bool, error)
}
