package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/onboarding"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormChecklistRepository implements ChecklistRepository using GORM
type GormChecklistRepository struct {
	db *gorm.DB
}

// NewGormChecklistRepository creates a new GormChecklistRepository
func NewGormChecklistRepository(db *gorm.DB) *GormChecklistRepository {
	return &GormChecklistRepository{db: db}
}

// FindByID finds a checklist by ID, tasks included
func (r *GormChecklistRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*onboarding.Checklist, error) {
	var checklist onboarding.Checklist
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&checklist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &checklist, nil
}

// FindByEmployee finds the checklist for an employee
func (r *GormChecklistRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*onboarding.Checklist, error) {
	var checklist onboarding.Checklist
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID).
		Order("created_at DESC").
		First(&checklist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &checklist, nil
}

// FindAll finds checklists with filters
func (r *GormChecklistRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*onboarding.Checklist], error) {
	query := r.db.WithContext(ctx).Model(&onboarding.Checklist{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByStatus finds checklists in a given status
func (r *GormChecklistRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status onboarding.ChecklistStatus, filter shared.Filter) (*shared.Paginated[*onboarding.Checklist], error) {
	query := r.db.WithContext(ctx).Model(&onboarding.Checklist{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// FindOverdueCandidates finds open checklists past their expected completion date
func (r *GormChecklistRepository) FindOverdueCandidates(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*onboarding.Checklist, error) {
	var checklists []*onboarding.Checklist
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("tenant_id = ? AND status IN ? AND expected_completion_date < ?",
			companyID,
			[]onboarding.ChecklistStatus{onboarding.ChecklistStatusNotStarted, onboarding.ChecklistStatusInProgress},
			asOf).
		Find(&checklists).Error; err != nil {
		return nil, err
	}
	return checklists, nil
}

// Save creates or updates a checklist with its tasks
func (r *GormChecklistRepository) Save(ctx context.Context, checklist *onboarding.Checklist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Save(checklist).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(checklist.Tasks))
		for i, task := range checklist.Tasks {
			currentIDs[i] = task.ID
		}

		staleQuery := tx.Where("checklist_id = ?", checklist.ID)
		if len(currentIDs) > 0 {
			staleQuery = staleQuery.Where("id NOT IN ?", currentIDs)
		}
		if err := staleQuery.Delete(&onboarding.Task{}).Error; err != nil {
			return err
		}

		for i := range checklist.Tasks {
			checklist.Tasks[i].ChecklistID = checklist.ID
			if err := tx.Save(&checklist.Tasks[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count counts checklists matching the filter
func (r *GormChecklistRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&onboarding.Checklist{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormChecklistRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*onboarding.Checklist], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var checklists []*onboarding.Checklist
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter).Preload("Tasks")
	if err := pageQuery.Find(&checklists).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(checklists, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormChecklistRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, CommonSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("start_date DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormChecklistRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "manager_id":
			query = query.Where("manager_id = ?", value)
		case "hr_contact_id":
			query = query.Where("hr_contact_id = ?", value)
		}
	}

	return query
}

// Ensure GormChecklistRepository implements ChecklistRepository
var _ onboarding.ChecklistRepository = (*GormChecklistRepository)(nil)
