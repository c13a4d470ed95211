package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/compliance"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRequirementRepository implements RequirementRepository using GORM
type GormRequirementRepository struct {
	db *gorm.DB
}

// NewGormRequirementRepository creates a new GormRequirementRepository
func NewGormRequirementRepository(db *gorm.DB) *GormRequirementRepository {
	return &GormRequirementRepository{db: db}
}

// FindByID finds a requirement by ID
func (r *GormRequirementRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*compliance.Requirement, error) {
	var requirement compliance.Requirement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&requirement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &requirement, nil
}

// FindByCode finds a requirement by its code
func (r *GormRequirementRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*compliance.Requirement, error) {
	var requirement compliance.Requirement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		First(&requirement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &requirement, nil
}

// FindAll finds requirements with filters
func (r *GormRequirementRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Requirement], error) {
	query := r.db.WithContext(ctx).Model(&compliance.Requirement{}).Where("tenant_id = ?", companyID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR regulating_authority ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "risk_level":
			query = query.Where("risk_level = ?", value)
		case "jurisdiction":
			query = query.Where("jurisdiction = ?", value)
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
		pageQuery = pageQuery.Order("code ASC")
	}

	var requirements []*compliance.Requirement
	if err := pageQuery.Find(&requirements).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(requirements, total, page, pageSize)
	return &result, nil
}

// FindActive finds active requirements
func (r *GormRequirementRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]*compliance.Requirement, error) {
	var requirements []*compliance.Requirement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", companyID, compliance.RequirementStatusActive).
		Order("code ASC").
		Find(&requirements).Error; err != nil {
		return nil, err
	}
	return requirements, nil
}

// FindReviewDue finds active requirements whose next review has come due
func (r *GormRequirementRepository) FindReviewDue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*compliance.Requirement, error) {
	var requirements []*compliance.Requirement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND next_review_date IS NOT NULL AND next_review_date <= ?",
			companyID, compliance.RequirementStatusActive, asOf).
		Order("next_review_date ASC").
		Find(&requirements).Error; err != nil {
		return nil, err
	}
	return requirements, nil
}

// Save creates or updates a requirement
func (r *GormRequirementRepository) Save(ctx context.Context, requirement *compliance.Requirement) error {
	return r.db.WithContext(ctx).Save(requirement).Error
}

// ExistsByCode checks whether a code is taken
func (r *GormRequirementRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&compliance.Requirement{}).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormRequirementRepository implements RequirementRepository
var _ compliance.RequirementRepository = (*GormRequirementRepository)(nil)

// GormAssessmentRepository implements AssessmentRepository using GORM
type GormAssessmentRepository struct {
	db *gorm.DB
}

// NewGormAssessmentRepository creates a new GormAssessmentRepository
func NewGormAssessmentRepository(db *gorm.DB) *GormAssessmentRepository {
	return &GormAssessmentRepository{db: db}
}

// FindByID finds an assessment by ID
func (r *GormAssessmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*compliance.Assessment, error) {
	var assessment compliance.Assessment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

// FindByRequirement finds assessments of a requirement, newest first
func (r *GormAssessmentRepository) FindByRequirement(ctx context.Context, companyID, requirementID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Assessment], error) {
	query := r.db.WithContext(ctx).Model(&compliance.Assessment{}).
		Where("tenant_id = ? AND requirement_id = ?", companyID, requirementID)
	return r.findPage(query, filter)
}

// FindAll finds assessments with filters
func (r *GormAssessmentRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Assessment], error) {
	query := r.db.WithContext(ctx).Model(&compliance.Assessment{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindLatestByRequirement finds the most recent assessment per requirement
func (r *GormAssessmentRepository) FindLatestByRequirement(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]*compliance.Assessment, error) {
	var assessments []*compliance.Assessment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", companyID).
		Where("NOT EXISTS (SELECT 1 FROM compliance_assessments newer WHERE newer.requirement_id = compliance_assessments.requirement_id AND newer.tenant_id = compliance_assessments.tenant_id AND newer.assessment_date > compliance_assessments.assessment_date)").
		Find(&assessments).Error; err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]*compliance.Assessment, len(assessments))
	for _, assessment := range assessments {
		latest[assessment.RequirementID] = assessment
	}
	return latest, nil
}

// FindOverdueActions finds assessments with corrective work past its target date
func (r *GormAssessmentRepository) FindOverdueActions(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*compliance.Assessment, error) {
	var assessments []*compliance.Assessment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND actions_required = ? AND completed_at IS NULL AND target_completion_date IS NOT NULL AND target_completion_date < ?",
			companyID, true, asOf).
		Order("target_completion_date ASC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

// Save creates or updates an assessment
func (r *GormAssessmentRepository) Save(ctx context.Context, assessment *compliance.Assessment) error {
	return r.db.WithContext(ctx).Save(assessment).Error
}

// CountByStatus counts assessments per outcome
func (r *GormAssessmentRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[compliance.AssessmentStatus]int64, error) {
	type row struct {
		OverallStatus compliance.AssessmentStatus
		Total         int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&compliance.Assessment{}).
		Select("overall_status, COUNT(*) as total").
		Where("tenant_id = ?", companyID).
		Group("overall_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[compliance.AssessmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.OverallStatus] = row.Total
	}
	return counts, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormAssessmentRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*compliance.Assessment], error) {
	for key, value := range filter.Filters {
		switch key {
		case "overall_status":
			query = query.Where("overall_status = ?", value)
		case "actions_required":
			query = query.Where("actions_required = ?", value)
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
		pageQuery = pageQuery.Order("assessment_date DESC")
	}

	var assessments []*compliance.Assessment
	if err := pageQuery.Find(&assessments).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(assessments, total, page, pageSize)
	return &result, nil
}

// Ensure GormAssessmentRepository implements AssessmentRepository
var _ compliance.AssessmentRepository = (*GormAssessmentRepository)(nil)
