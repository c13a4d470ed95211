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

// GormEnrollmentRepository implements EnrollmentRepository using GORM
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// FindByID finds an enrollment by ID, dependents included
func (r *GormEnrollmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*benefits.Enrollment, error) {
	var enrollment benefits.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Dependents").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// FindByEmployee finds an employee's enrollments
func (r *GormEnrollmentRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*benefits.Enrollment, error) {
	var enrollments []*benefits.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Dependents").
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID).
		Order("enrollment_date DESC").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// FindByPlan finds enrollments in a plan
func (r *GormEnrollmentRepository) FindByPlan(ctx context.Context, companyID, planID uuid.UUID, filter shared.Filter) (*shared.Paginated[*benefits.Enrollment], error) {
	query := r.db.WithContext(ctx).Model(&benefits.Enrollment{}).
		Where("tenant_id = ? AND plan_id = ?", companyID, planID)

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "coverage":
			query = query.Where("coverage = ?", value)
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pageQuery := query.Session(&gorm.Session{}).Preload("Dependents")
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
		pageQuery = pageQuery.Order("enrollment_date DESC")
	}

	var enrollments []*benefits.Enrollment
	if err := pageQuery.Find(&enrollments).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(enrollments, total, page, pageSize)
	return &result, nil
}

// FindActiveByEmployeeAndPlan finds a non-terminal enrollment for the pair
func (r *GormEnrollmentRepository) FindActiveByEmployeeAndPlan(ctx context.Context, companyID, employeeID, planID uuid.UUID) (*benefits.Enrollment, error) {
	var enrollment benefits.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Dependents").
		Where("tenant_id = ? AND employee_id = ? AND plan_id = ? AND status IN ?",
			companyID, employeeID, planID, openEnrollmentStatuses()).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// FindActiveOn finds enrollments in force on a date, for payroll deductions
func (r *GormEnrollmentRepository) FindActiveOn(ctx context.Context, companyID uuid.UUID, date time.Time) ([]*benefits.Enrollment, error) {
	var enrollments []*benefits.Enrollment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND effective_date <= ? AND (termination_date IS NULL OR termination_date >= ?)",
			companyID, benefits.EnrollmentStatusEnrolled, date, date).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Save creates or updates an enrollment with its dependents
func (r *GormEnrollmentRepository) Save(ctx context.Context, enrollment *benefits.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Dependents").Save(enrollment).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(enrollment.Dependents))
		for i, dependent := range enrollment.Dependents {
			currentIDs[i] = dependent.ID
		}

		staleQuery := tx.Where("enrollment_id = ?", enrollment.ID)
		if len(currentIDs) > 0 {
			staleQuery = staleQuery.Where("id NOT IN ?", currentIDs)
		}
		if err := staleQuery.Delete(&benefits.Dependent{}).Error; err != nil {
			return err
		}

		for i := range enrollment.Dependents {
			enrollment.Dependents[i].EnrollmentID = enrollment.ID
			if err := tx.Save(&enrollment.Dependents[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// CountByPlan counts non-terminal enrollments per plan
func (r *GormEnrollmentRepository) CountByPlan(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		PlanID uuid.UUID
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&benefits.Enrollment{}).
		Select("plan_id, COUNT(*) as total").
		Where("tenant_id = ? AND status IN ?", companyID, openEnrollmentStatuses()).
		Group("plan_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.PlanID] = row.Total
	}
	return counts, nil
}

// openEnrollmentStatuses lists the statuses that still bind employee and plan
func openEnrollmentStatuses() []benefits.EnrollmentStatus {
	return []benefits.EnrollmentStatus{
		benefits.EnrollmentStatusPending,
		benefits.EnrollmentStatusEnrolled,
		benefits.EnrollmentStatusSuspended,
	}
}

// Ensure GormEnrollmentRepository implements EnrollmentRepository
var _ benefits.EnrollmentRepository = (*GormEnrollmentRepository)(nil)
