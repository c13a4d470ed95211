package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindByID finds a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindByCode finds a company by its unique code
	FindByCode(ctx context.Context, code string) (*Company, error)

	// FindAll finds all companies matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, error)

	// FindByStatus finds companies by status
	FindByStatus(ctx context.Context, status CompanyStatus, filter shared.Filter) ([]Company, error)

	// FindActive finds all active companies
	FindActive(ctx context.Context, filter shared.Filter) ([]Company, error)

	// FindTrialExpiring finds companies whose trial is expiring within the given days
	FindTrialExpiring(ctx context.Context, withinDays int) ([]Company, error)

	// FindSubscriptionExpiring finds companies whose subscription is expiring within the given days
	FindSubscriptionExpiring(ctx context.Context, withinDays int) ([]Company, error)

	// FindByIDs finds multiple companies by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Company, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// Delete deletes a company
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts companies matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts companies by status
	CountByStatus(ctx context.Context, status CompanyStatus) (int64, error)

	// ExistsByCode checks if a company with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
