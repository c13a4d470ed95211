package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	var company identity.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByCode finds a company by its unique code
func (r *GormCompanyRepository) FindByCode(ctx context.Context, code string) (*identity.Company, error) {
	var company identity.Company
	if err := r.db.WithContext(ctx).
		First(&company, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindAll finds all companies matching the filter
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Company, error) {
	var companies []identity.Company
	query := r.db.WithContext(ctx).Model(&identity.Company{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByStatus finds companies by status
func (r *GormCompanyRepository) FindByStatus(ctx context.Context, status identity.CompanyStatus, filter shared.Filter) ([]identity.Company, error) {
	var companies []identity.Company
	query := r.db.WithContext(ctx).Model(&identity.Company{}).Where("status = ?", status)
	query = r.applyFilter(query, filter)

	if err := query.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindActive finds all active companies
func (r *GormCompanyRepository) FindActive(ctx context.Context, filter shared.Filter) ([]identity.Company, error) {
	return r.FindByStatus(ctx, identity.CompanyStatusActive, filter)
}

// FindTrialExpiring finds trial companies whose trial ends within the given days
func (r *GormCompanyRepository) FindTrialExpiring(ctx context.Context, withinDays int) ([]identity.Company, error) {
	var companies []identity.Company
	deadline := time.Now().AddDate(0, 0, withinDays)

	if err := r.db.WithContext(ctx).
		Where("status = ? AND trial_ends_at IS NOT NULL AND trial_ends_at <= ?",
			identity.CompanyStatusTrial, deadline).
		Order("trial_ends_at ASC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindSubscriptionExpiring finds companies whose subscription ends within the given days
func (r *GormCompanyRepository) FindSubscriptionExpiring(ctx context.Context, withinDays int) ([]identity.Company, error) {
	var companies []identity.Company
	deadline := time.Now().AddDate(0, 0, withinDays)

	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?",
			identity.CompanyStatusActive, deadline).
		Order("expires_at ASC").
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByIDs finds multiple companies by their IDs
func (r *GormCompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Company, error) {
	if len(ids) == 0 {
		return []identity.Company{}, nil
	}

	var companies []identity.Company
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete deletes a company
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts companies matching the filter
func (r *GormCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&identity.Company{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts companies by status
func (r *GormCompanyRepository) CountByStatus(ctx context.Context, status identity.CompanyStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Company{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a company with the given code exists
func (r *GormCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Company{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormCompanyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(ValidateSortField(filter.OrderBy, CompanySortFields, "code") + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCompanyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ? OR legal_name ILIKE ? OR contact_email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "plan":
			query = query.Where("plan = ?", value)
		case "industry":
			query = query.Where("industry = ?", value)
		case "size_band":
			query = query.Where("size_band = ?", value)
		case "created_after":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "created_before":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ identity.CompanyRepository = (*GormCompanyRepository)(nil)
