package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAttendanceDayRepository implements AttendanceDayRepository using GORM
type GormAttendanceDayRepository struct {
	db *gorm.DB
}

// NewGormAttendanceDayRepository creates a new GormAttendanceDayRepository
func NewGormAttendanceDayRepository(db *gorm.DB) *GormAttendanceDayRepository {
	return &GormAttendanceDayRepository{db: db}
}

// FindByID finds a day record by ID
func (r *GormAttendanceDayRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	if err := r.db.WithContext(ctx).
		Preload("Punches").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// FindByEmployeeAndDate finds the unique day record for an employee and date
func (r *GormAttendanceDayRepository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	if err := r.db.WithContext(ctx).
		Preload("Punches").
		Where("tenant_id = ? AND employee_id = ? AND date = ?", companyID, employeeID, dateOnly(date)).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// FindByEmployeeRange finds day records for an employee within a date range
func (r *GormAttendanceDayRepository) FindByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	var days []attendance.AttendanceDay
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&attendance.AttendanceDay{}).
			Where("tenant_id = ? AND employee_id = ? AND date BETWEEN ? AND ?",
				companyID, employeeID, dateOnly(from), dateOnly(to)),
		filter,
	)

	if err := query.Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// FindByDate finds all day records for a date, optionally limited to a department
func (r *GormAttendanceDayRepository) FindByDate(ctx context.Context, companyID uuid.UUID, date time.Time, departmentID *uuid.UUID, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	query := r.db.WithContext(ctx).Model(&attendance.AttendanceDay{}).
		Where("attendance_days.tenant_id = ? AND attendance_days.date = ?", companyID, dateOnly(date))

	if departmentID != nil {
		query = query.
			Joins("JOIN employees e ON e.id = attendance_days.employee_id").
			Where("e.department_id = ?", *departmentID)
	}

	var days []attendance.AttendanceDay
	if err := r.applyFilter(query, filter).Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// FindPendingApproval finds adjusted records awaiting approval
func (r *GormAttendanceDayRepository) FindPendingApproval(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	var days []attendance.AttendanceDay
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&attendance.AttendanceDay{}).
			Where("tenant_id = ? AND needs_approval = ? AND approved_by IS NULL", companyID, true),
		filter,
	)

	if err := query.Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// Save creates or updates a day record and its punches
func (r *GormAttendanceDayRepository) Save(ctx context.Context, day *attendance.AttendanceDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Punches").Save(day).Error; err != nil {
			return err
		}

		// Punches are append-only audit records
		for i := range day.Punches {
			day.Punches[i].AttendanceDayID = day.ID
			if err := tx.Save(&day.Punches[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count counts day records matching the filter
func (r *GormAttendanceDayRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&attendance.AttendanceDay{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByEmployeeRange counts records for an employee within a range
func (r *GormAttendanceDayRepository) CountByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&attendance.AttendanceDay{}).
		Where("tenant_id = ? AND employee_id = ? AND date BETWEEN ? AND ?",
			companyID, employeeID, dateOnly(from), dateOnly(to)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// statisticsRow is the scan target for the aggregated counters
type statisticsRow struct {
	PresentDays   int64
	AbsentDays    int64
	LateDays      int64
	HalfDays      int64
	LeaveDays     int64
	HolidayDays   int64
	WeekendDays   int64
	TotalHours    float64
	OvertimeHours float64
}

const statisticsSelect = `
	COUNT(*) FILTER (WHERE status = 'present') as present_days,
	COUNT(*) FILTER (WHERE status = 'absent') as absent_days,
	COUNT(*) FILTER (WHERE status = 'late') as late_days,
	COUNT(*) FILTER (WHERE status = 'half_day') as half_days,
	COUNT(*) FILTER (WHERE status = 'on_leave') as leave_days,
	COUNT(*) FILTER (WHERE status = 'holiday') as holiday_days,
	COUNT(*) FILTER (WHERE status = 'weekend') as weekend_days,
	COALESCE(SUM(total_hours), 0) as total_hours,
	COALESCE(SUM(overtime_hours), 0) as overtime_hours`

// Statistics aggregates attendance counters for an employee over a range
func (r *GormAttendanceDayRepository) Statistics(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (*attendance.DayStatistics, error) {
	var row statisticsRow
	if err := r.db.WithContext(ctx).
		Model(&attendance.AttendanceDay{}).
		Select(statisticsSelect).
		Where("tenant_id = ? AND employee_id = ? AND date BETWEEN ? AND ?",
			companyID, employeeID, dateOnly(from), dateOnly(to)).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.toStatistics(), nil
}

// StatisticsForCompany aggregates counters across all employees for a date
func (r *GormAttendanceDayRepository) StatisticsForCompany(ctx context.Context, companyID uuid.UUID, date time.Time) (*attendance.DayStatistics, error) {
	var row statisticsRow
	if err := r.db.WithContext(ctx).
		Model(&attendance.AttendanceDay{}).
		Select(statisticsSelect).
		Where("tenant_id = ? AND date = ?", companyID, dateOnly(date)).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.toStatistics(), nil
}

// EmployeeIDsWithRecord lists employees that already have a record on a date
func (r *GormAttendanceDayRepository) EmployeeIDsWithRecord(ctx context.Context, companyID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&attendance.AttendanceDay{}).
		Where("tenant_id = ? AND date = ?", companyID, dateOnly(date)).
		Pluck("employee_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (row statisticsRow) toStatistics() *attendance.DayStatistics {
	return &attendance.DayStatistics{
		PresentDays:   row.PresentDays,
		AbsentDays:    row.AbsentDays,
		LateDays:      row.LateDays,
		HalfDays:      row.HalfDays,
		LeaveDays:     row.LeaveDays,
		HolidayDays:   row.HolidayDays,
		WeekendDays:   row.WeekendDays,
		TotalHours:    row.TotalHours,
		OvertimeHours: row.OvertimeHours,
	}
}

// dateOnly truncates a timestamp to midnight
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// applyFilter applies filter options to the query
func (r *GormAttendanceDayRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(ValidateSortField(filter.OrderBy, AttendanceDaySortFields, "date") + " " + orderDir)
	} else {
		query = query.Order("date DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAttendanceDayRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "is_late":
			query = query.Where("is_late = ?", value)
		case "is_adjusted":
			query = query.Where("is_adjusted = ?", value)
		case "date_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("date >= ?", dateOnly(t))
			}
		case "date_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("date <= ?", dateOnly(t))
			}
		}
	}

	return query
}

// Ensure GormAttendanceDayRepository implements AttendanceDayRepository
var _ attendance.AttendanceDayRepository = (*GormAttendanceDayRepository)(nil)
