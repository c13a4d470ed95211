package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/benefits"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBenefitPlanRepository implements BenefitPlanRepository using GORM
type GormBenefitPlanRepository struct {
	db *gorm.DB
}

// NewGormBenefitPlanRepository creates a new GormBenefitPlanRepository
func NewGormBenefitPlanRepository(db *gorm.DB) *GormBenefitPlanRepository {
	return &GormBenefitPlanRepository{db: db}
}

// FindByID finds a plan by ID
func (r *GormBenefitPlanRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*benefits.BenefitPlan, error) {
	var plan benefits.BenefitPlan
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindByCode finds a plan by its code
func (r *GormBenefitPlanRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*benefits.BenefitPlan, error) {
	var plan benefits.BenefitPlan
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindAll finds plans with filters
func (r *GormBenefitPlanRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*benefits.BenefitPlan], error) {
	query := r.db.WithContext(ctx).Model(&benefits.BenefitPlan{}).Where("tenant_id = ?", companyID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR provider_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "plan_year":
			query = query.Where("plan_year = ?", value)
		case "is_mandatory":
			query = query.Where("is_mandatory = ?", value)
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pageQuery := query.Session(&gorm.Session{})
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		pageQuery = pageQuery.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		pageQuery = pageQuery.Order(ValidateSortField(filter.OrderBy, CommonSortFields, "created_at") + " " + orderDir)
	} else {
		pageQuery = pageQuery.Order("plan_year DESC, code ASC")
	}

	var plans []*benefits.BenefitPlan
	if err := pageQuery.Find(&plans).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(plans, total, page, pageSize)
	return &result, nil
}

// FindActive finds plans open for enrollment
func (r *GormBenefitPlanRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]*benefits.BenefitPlan, error) {
	var plans []*benefits.BenefitPlan
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND (coverage_end IS NULL OR coverage_end >= ?)",
			companyID, benefits.PlanStatusActive, time.Now()).
		Order("code ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindByYear finds plans for a plan year
func (r *GormBenefitPlanRepository) FindByYear(ctx context.Context, companyID uuid.UUID, planYear int) ([]*benefits.BenefitPlan, error) {
	var plans []*benefits.BenefitPlan
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND plan_year = ?", companyID, planYear).
		Order("code ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a plan
func (r *GormBenefitPlanRepository) Save(ctx context.Context, plan *benefits.BenefitPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// ExistsByCode checks whether a plan code is taken
func (r *GormBenefitPlanRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&benefits.BenefitPlan{}).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormBenefitPlanRepository implements BenefitPlanRepository
var _ benefits.BenefitPlanRepository = (*GormBenefitPlanRepository)(nil)
