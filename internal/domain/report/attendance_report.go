package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttendanceSummary is a read model for attendance statistics over a period
type AttendanceSummary struct {
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	WorkingDays       int64           `json:"working_days"`
	PresentCount      int64           `json:"present_count"`
	AbsentCount       int64           `json:"absent_count"`
	LateCount         int64           `json:"late_count"`
	OnLeaveCount      int64           `json:"on_leave_count"`
	AttendanceRate    decimal.Decimal `json:"attendance_rate"`    // Percentage
	PunctualityRate   decimal.Decimal `json:"punctuality_rate"`   // Percentage
	TotalHoursWorked  decimal.Decimal `json:"total_hours_worked"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
}

// DailyAttendanceTrend represents per-day attendance counts
type DailyAttendanceTrend struct {
	Date         time.Time       `json:"date"`
	PresentCount int64           `json:"present_count"`
	AbsentCount  int64           `json:"absent_count"`
	LateCount    int64           `json:"late_count"`
	OnLeaveCount int64           `json:"on_leave_count"`
	AvgHours     decimal.Decimal `json:"avg_hours"`
}

// AbsenteeismRanking ranks employees by days absent
type AbsenteeismRanking struct {
	Rank         int       `json:"rank"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	EmployeeName string    `json:"employee_name"`
	AbsentDays   int64     `json:"absent_days"`
	LateDays     int64     `json:"late_days"`
}

// LeaveUtilization summarizes leave consumption per leave type
type LeaveUtilization struct {
	LeaveType     string          `json:"leave_type"`
	Allocated     decimal.Decimal `json:"allocated"`
	Used          decimal.Decimal `json:"used"`
	Pending       decimal.Decimal `json:"pending"`
	CarriedOver   decimal.Decimal `json:"carried_over"`
	UtilizationPct decimal.Decimal `json:"utilization_pct"` // Used / Allocated * 100
}

// AttendanceReportFilter defines filtering options for attendance reports
type AttendanceReportFilter struct {
	CompanyID    uuid.UUID  `json:"-"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	EmployeeID   *uuid.UUID `json:"employee_id,omitempty"`
	TopN         int        `json:"top_n,omitempty"` // For rankings
}

// AttendanceReportRepository defines the interface for attendance report queries
type AttendanceReportRepository interface {
	// GetAttendanceSummary returns aggregated attendance statistics
	GetAttendanceSummary(filter AttendanceReportFilter) (*AttendanceSummary, error)

	// GetDailyAttendanceTrend returns per-day attendance counts
	GetDailyAttendanceTrend(filter AttendanceReportFilter) ([]DailyAttendanceTrend, error)

	// GetAbsenteeismRanking returns top N employees by days absent
	GetAbsenteeismRanking(filter AttendanceReportFilter) ([]AbsenteeismRanking, error)

	// GetLeaveUtilization returns leave consumption per leave type for a year
	GetLeaveUtilization(companyID uuid.UUID, year int) ([]LeaveUtilization, error)
}
