package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormEmployeeRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds an employee by ID within a company
func (r *GormEmployeeRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByCode finds an employee by code within a company
func (r *GormEmployeeRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByUserID finds the employee linked to a user account
func (r *GormEmployeeRepository) FindByUserID(ctx context.Context, companyID, userID uuid.UUID) (*workforce.Employee, error) {
	var employee workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", companyID, userID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll finds employees matching the filter within a company
func (r *GormEmployeeRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workforce.Employee{}).Where("tenant_id = ?", companyID),
		filter,
	)

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByStatus finds employees by status
func (r *GormEmployeeRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status workforce.EmployeeStatus, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workforce.Employee{}).
			Where("tenant_id = ? AND status = ?", companyID, status),
		filter,
	)

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByDepartment finds employees in a department
func (r *GormEmployeeRepository) FindByDepartment(ctx context.Context, companyID, departmentID uuid.UUID, filter shared.Filter) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workforce.Employee{}).
			Where("tenant_id = ? AND department_id = ?", companyID, departmentID),
		filter,
	)

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByManager finds the direct reports of a manager
func (r *GormEmployeeRepository) FindByManager(ctx context.Context, companyID, managerID uuid.UUID) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND manager_id = ?", companyID, managerID).
		Order("code ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindActive finds all employees in a working status
func (r *GormEmployeeRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]workforce.Employee, error) {
	var employees []workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ?", companyID, workingStatuses()).
		Order("code ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByIDs finds multiple employees by their IDs
func (r *GormEmployeeRepository) FindByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]workforce.Employee, error) {
	if len(ids) == 0 {
		return []workforce.Employee{}, nil
	}

	var employees []workforce.Employee
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", companyID, ids).
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// SaveWithEvents saves the employee and writes domain events to the outbox
// within the same transaction
func (r *GormEmployeeRepository) SaveWithEvents(ctx context.Context, employee *workforce.Employee, events []shared.DomainEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(employee).Error; err != nil {
			return err
		}

		// Save events to outbox within the same transaction
		if r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}

		return nil
	})
}

// Delete deletes an employee record
func (r *GormEmployeeRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&workforce.Employee{}, "tenant_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&workforce.Employee{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts employees by status
func (r *GormEmployeeRepository) CountByStatus(ctx context.Context, companyID uuid.UUID, status workforce.EmployeeStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Where("tenant_id = ? AND status = ?", companyID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByDepartment counts employees per department
func (r *GormEmployeeRepository) CountByDepartment(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		DepartmentID uuid.UUID
		Total        int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Select("department_id, COUNT(*) as total").
		Where("tenant_id = ? AND department_id IS NOT NULL AND status IN ?", companyID, workingStatuses()).
		Group("department_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}
	return counts, nil
}

// ExistsByCode checks if an employee code is taken within a company
func (r *GormEmployeeRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextSequence returns the next employee sequence number for code generation
func (r *GormEmployeeRepository) NextSequence(ctx context.Context, companyID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workforce.Employee{}).
		Where("tenant_id = ?", companyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// workingStatuses lists the statuses that count as employed
func workingStatuses() []workforce.EmployeeStatus {
	return []workforce.EmployeeStatus{
		workforce.EmployeeStatusProbation,
		workforce.EmployeeStatusActive,
		workforce.EmployeeStatusOnLeave,
		workforce.EmployeeStatusNoticePeriod,
	}
}

// applyFilter applies filter options to the query
func (r *GormEmployeeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering against the sort field whitelist
	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, EmployeeSortFields, "code")
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(sortField + " " + orderDir)
	} else {
		query = query.Order("code ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormEmployeeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR work_email ILIKE ? OR job_title ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "employment_type":
			query = query.Where("employment_type = ?", value)
		case "department_id":
			query = query.Where("department_id = ?", value)
		case "manager_id":
			query = query.Where("manager_id = ?", value)
		case "shift_id":
			query = query.Where("shift_id = ?", value)
		case "job_level":
			query = query.Where("job_level = ?", value)
		case "work_location":
			query = query.Where("work_location = ?", value)
		case "hired_after":
			if t, ok := value.(time.Time); ok {
				query = query.Where("hire_date >= ?", t)
			}
		case "hired_before":
			if t, ok := value.(time.Time); ok {
				query = query.Where("hire_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ workforce.EmployeeRepository = (*GormEmployeeRepository)(nil)
