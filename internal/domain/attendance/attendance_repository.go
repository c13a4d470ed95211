package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// DayStatistics aggregates attendance counters over a date range
type DayStatistics struct {
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

// WorkedDays returns days the employee attended
func (s DayStatistics) WorkedDays() int64 {
	return s.PresentDays + s.LateDays + s.HalfDays
}

// PunctualityPercent returns the share of attended days that were on time
func (s DayStatistics) PunctualityPercent() float64 {
	worked := s.WorkedDays()
	if worked == 0 {
		return 0
	}
	return float64(worked-s.LateDays) / float64(worked) * 100
}

// AttendanceDayRepository defines the interface for attendance persistence
type AttendanceDayRepository interface {
	// FindByID finds a day record by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*AttendanceDay, error)

	// FindByEmployeeAndDate finds the unique day record for an employee and date
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*AttendanceDay, error)

	// FindByEmployeeRange finds day records for an employee within a date range
	FindByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time, filter shared.Filter) ([]AttendanceDay, error)

	// FindByDate finds all day records for a date, optionally limited to a department
	FindByDate(ctx context.Context, companyID uuid.UUID, date time.Time, departmentID *uuid.UUID, filter shared.Filter) ([]AttendanceDay, error)

	// FindPendingApproval finds adjusted records awaiting approval
	FindPendingApproval(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]AttendanceDay, error)

	// Save creates or updates a day record
	Save(ctx context.Context, day *AttendanceDay) error

	// Count counts day records matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByEmployeeRange counts records for an employee within a range
	CountByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (int64, error)

	// Statistics aggregates attendance counters for an employee over a range
	Statistics(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (*DayStatistics, error)

	// StatisticsForCompany aggregates counters across all employees for a date
	StatisticsForCompany(ctx context.Context, companyID uuid.UUID, date time.Time) (*DayStatistics, error)

	// EmployeeIDsWithRecord lists employees that already have a record on a date
	EmployeeIDsWithRecord(ctx context.Context, companyID uuid.UUID, date time.Time) ([]uuid.UUID, error)
}

// ShiftRepository defines the interface for shift persistence
type ShiftRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Shift, error)
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Shift, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Shift, error)
	FindActive(ctx context.Context, companyID uuid.UUID) ([]Shift, error)
	Save(ctx context.Context, shift *Shift) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error)
}
