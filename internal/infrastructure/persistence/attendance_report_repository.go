package persistence

import (
	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAttendanceReportRepository implements AttendanceReportRepository using GORM
type GormAttendanceReportRepository struct {
	db *gorm.DB
}

// NewGormAttendanceReportRepository creates a new GormAttendanceReportRepository
func NewGormAttendanceReportRepository(db *gorm.DB) *GormAttendanceReportRepository {
	return &GormAttendanceReportRepository{db: db}
}

// GetAttendanceSummary returns aggregated attendance statistics for the period
func (r *GormAttendanceReportRepository) GetAttendanceSummary(filter report.AttendanceReportFilter) (*report.AttendanceSummary, error) {
	type summaryResult struct {
		WorkingDays   int64
		PresentCount  int64
		AbsentCount   int64
		LateCount     int64
		HalfDayCount  int64
		OnLeaveCount  int64
		TotalHours    decimal.Decimal
		OvertimeHours decimal.Decimal
	}

	var result summaryResult

	query := r.db.Table("attendance_days ad").
		Select(`
			COUNT(DISTINCT ad.date) FILTER (WHERE ad.status NOT IN ('weekend', 'holiday')) as working_days,
			COUNT(*) FILTER (WHERE ad.status = 'present') as present_count,
			COUNT(*) FILTER (WHERE ad.status = 'absent') as absent_count,
			COUNT(*) FILTER (WHERE ad.status = 'late') as late_count,
			COUNT(*) FILTER (WHERE ad.status = 'half_day') as half_day_count,
			COUNT(*) FILTER (WHERE ad.status = 'on_leave') as on_leave_count,
			COALESCE(SUM(ad.total_hours), 0) as total_hours,
			COALESCE(SUM(ad.overtime_hours), 0) as overtime_hours
		`).
		Where("ad.tenant_id = ?", filter.CompanyID).
		Where("ad.date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	query = r.applyScope(query, filter)

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	attended := result.PresentCount + result.LateCount + result.HalfDayCount
	expected := attended + result.AbsentCount

	var attendanceRate, punctualityRate decimal.Decimal
	if expected > 0 {
		attendanceRate = decimal.NewFromInt(attended).
			Div(decimal.NewFromInt(expected)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	if attended > 0 {
		punctualityRate = decimal.NewFromInt(attended - result.LateCount).
			Div(decimal.NewFromInt(attended)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return &report.AttendanceSummary{
		PeriodStart:        filter.StartDate,
		PeriodEnd:          filter.EndDate,
		WorkingDays:        result.WorkingDays,
		PresentCount:       result.PresentCount,
		AbsentCount:        result.AbsentCount,
		LateCount:          result.LateCount,
		OnLeaveCount:       result.OnLeaveCount,
		AttendanceRate:     attendanceRate,
		PunctualityRate:    punctualityRate,
		TotalHoursWorked:   result.TotalHours,
		TotalOvertimeHours: result.OvertimeHours,
	}, nil
}

// GetDailyAttendanceTrend returns per-day attendance counts
func (r *GormAttendanceReportRepository) GetDailyAttendanceTrend(filter report.AttendanceReportFilter) ([]report.DailyAttendanceTrend, error) {
	var results []report.DailyAttendanceTrend

	query := r.db.Table("attendance_days ad").
		Select(`
			ad.date,
			COUNT(*) FILTER (WHERE ad.status IN ('present', 'half_day')) as present_count,
			COUNT(*) FILTER (WHERE ad.status = 'absent') as absent_count,
			COUNT(*) FILTER (WHERE ad.status = 'late') as late_count,
			COUNT(*) FILTER (WHERE ad.status = 'on_leave') as on_leave_count,
			COALESCE(AVG(ad.total_hours) FILTER (WHERE ad.total_hours > 0), 0) as avg_hours
		`).
		Where("ad.tenant_id = ?", filter.CompanyID).
		Where("ad.date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("ad.date").
		Order("ad.date ASC")

	query = r.applyScope(query, filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	for i := range results {
		results[i].AvgHours = results[i].AvgHours.Round(2)
	}

	return results, nil
}

// GetAbsenteeismRanking returns the top N employees by days absent
func (r *GormAttendanceReportRepository) GetAbsenteeismRanking(filter report.AttendanceReportFilter) ([]report.AbsenteeismRanking, error) {
	type rankingResult struct {
		EmployeeID   uuid.UUID
		EmployeeCode string
		EmployeeName string
		AbsentDays   int64
		LateDays     int64
	}

	topN := filter.TopN
	if topN <= 0 {
		topN = 10
	}

	var results []rankingResult

	query := r.db.Table("attendance_days ad").
		Select(`
			ad.employee_id,
			e.code as employee_code,
			CONCAT(e.first_name, ' ', e.last_name) as employee_name,
			COUNT(*) FILTER (WHERE ad.status = 'absent') as absent_days,
			COUNT(*) FILTER (WHERE ad.status = 'late') as late_days
		`).
		Joins("JOIN employees e ON e.id = ad.employee_id").
		Where("ad.tenant_id = ?", filter.CompanyID).
		Where("ad.date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("ad.employee_id, e.code, e.first_name, e.last_name").
		Having("COUNT(*) FILTER (WHERE ad.status = 'absent') > 0").
		Order("absent_days DESC, late_days DESC").
		Limit(topN)

	if filter.DepartmentID != nil {
		query = query.Where("e.department_id = ?", *filter.DepartmentID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	rankings := make([]report.AbsenteeismRanking, len(results))
	for i, row := range results {
		rankings[i] = report.AbsenteeismRanking{
			Rank:         i + 1,
			EmployeeID:   row.EmployeeID,
			EmployeeCode: row.EmployeeCode,
			EmployeeName: row.EmployeeName,
			AbsentDays:   row.AbsentDays,
			LateDays:     row.LateDays,
		}
	}

	return rankings, nil
}

// GetLeaveUtilization returns leave consumption per leave type for a year
func (r *GormAttendanceReportRepository) GetLeaveUtilization(companyID uuid.UUID, year int) ([]report.LeaveUtilization, error) {
	type utilizationResult struct {
		LeaveType      string
		Allocated      decimal.Decimal
		Used           decimal.Decimal
		Pending        decimal.Decimal
		CarriedForward decimal.Decimal
	}

	var results []utilizationResult

	err := r.db.Table("leave_balances lb").
		Select(`
			lb.type as leave_type,
			COALESCE(SUM(lb.allocated), 0) as allocated,
			COALESCE(SUM(lb.used), 0) as used,
			COALESCE(SUM(lb.pending), 0) as pending,
			COALESCE(SUM(lb.carried_forward), 0) as carried_forward
		`).
		Where("lb.tenant_id = ? AND lb.year = ?", companyID, year).
		Group("lb.type").
		Order("lb.type ASC").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	utilization := make([]report.LeaveUtilization, len(results))
	for i, row := range results {
		var pct decimal.Decimal
		entitled := row.Allocated.Add(row.CarriedForward)
		if entitled.IsPositive() {
			pct = row.Used.Div(entitled).Mul(decimal.NewFromInt(100)).Round(2)
		}
		utilization[i] = report.LeaveUtilization{
			LeaveType:      row.LeaveType,
			Allocated:      row.Allocated,
			Used:           row.Used,
			Pending:        row.Pending,
			CarriedOver:    row.CarriedForward,
			UtilizationPct: pct,
		}
	}

	return utilization, nil
}

// applyScope narrows the query to a department or a single employee
func (r *GormAttendanceReportRepository) applyScope(query *gorm.DB, filter report.AttendanceReportFilter) *gorm.DB {
	if filter.EmployeeID != nil {
		query = query.Where("ad.employee_id = ?", *filter.EmployeeID)
	}
	if filter.DepartmentID != nil {
		query = query.Joins("JOIN employees emp ON emp.id = ad.employee_id").
			Where("emp.department_id = ?", *filter.DepartmentID)
	}
	return query
}

// Ensure GormAttendanceReportRepository implements AttendanceReportRepository
var _ report.AttendanceReportRepository = (*GormAttendanceReportRepository)(nil)
