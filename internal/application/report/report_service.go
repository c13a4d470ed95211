package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/report"
)

// ReportService provides application-level report operations
type ReportService struct {
	workforceRepo  report.WorkforceReportRepository
	attendanceRepo report.AttendanceReportRepository
	payrollRepo    report.PayrollReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	workforceRepo report.WorkforceReportRepository,
	attendanceRepo report.AttendanceReportRepository,
	payrollRepo report.PayrollReportRepository,
) *ReportService {
	return &ReportService{
		workforceRepo:  workforceRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
	}
}

// ===================== Workforce Report Operations =====================

// HeadcountSummaryResponse represents the headcount summary response
type HeadcountSummaryResponse struct {
	AsOf            time.Time `json:"as_of"`
	TotalEmployees  int64     `json:"total_employees"`
	ActiveEmployees int64     `json:"active_employees"`
	OnLeave         int64     `json:"on_leave"`
	OnProbation     int64     `json:"on_probation"`
	NewHires        int64     `json:"new_hires"`
	Exits           int64     `json:"exits"`
	AttritionRate   float64   `json:"attrition_rate"`
	AverageTenure   float64   `json:"average_tenure"`
}

// DepartmentHeadcountResponse represents headcount per department
type DepartmentHeadcountResponse struct {
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Headcount      int64   `json:"headcount"`
	NewHires       int64   `json:"new_hires"`
	Exits          int64   `json:"exits"`
	AvgSalary      float64 `json:"avg_salary"`
}

// HeadcountTrendResponse represents monthly headcount trend data
type HeadcountTrendResponse struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Headcount     int64   `json:"headcount"`
	Hires         int64   `json:"hires"`
	Exits         int64   `json:"exits"`
	AttritionRate float64 `json:"attrition_rate"`
}

// TenureDistributionResponse represents one tenure bucket
type TenureDistributionResponse struct {
	Bucket    string `json:"bucket"`
	Headcount int64  `json:"headcount"`
}

// WorkforceReportFilter defines the request filter for workforce reports
type WorkforceReportFilter struct {
	StartDate    time.Time  `form:"start_date" binding:"required"`
	EndDate      time.Time  `form:"end_date" binding:"required"`
	DepartmentID *uuid.UUID `form:"department_id"`
	LocationID   *uuid.UUID `form:"location_id"`
}

// GetHeadcountSummary returns the workforce composition for the period
func (s *ReportService) GetHeadcountSummary(ctx context.Context, companyID uuid.UUID, filter WorkforceReportFilter) (*HeadcountSummaryResponse, error) {
	domainFilter := report.WorkforceReportFilter{
		CompanyID:    companyID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		DepartmentID: filter.DepartmentID,
		LocationID:   filter.LocationID,
	}

	summary, err := s.workforceRepo.GetHeadcountSummary(domainFilter)
	if err != nil {
		return nil, err
	}

	return &HeadcountSummaryResponse{
		AsOf:            summary.AsOf,
		TotalEmployees:  summary.TotalEmployees,
		ActiveEmployees: summary.ActiveEmployees,
		OnLeave:         summary.OnLeave,
		OnProbation:     summary.OnProbation,
		NewHires:        summary.NewHires,
		Exits:           summary.Exits,
		AttritionRate:   toFloat64(summary.AttritionRate),
		AverageTenure:   toFloat64(summary.AverageTenure),
	}, nil
}

// GetDepartmentHeadcount returns headcount grouped by department
func (s *ReportService) GetDepartmentHeadcount(ctx context.Context, companyID uuid.UUID, filter WorkforceReportFilter) ([]DepartmentHeadcountResponse, error) {
	domainFilter := report.WorkforceReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	rows, err := s.workforceRepo.GetDepartmentHeadcount(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]DepartmentHeadcountResponse, len(rows))
	for i, row := range rows {
		result[i] = DepartmentHeadcountResponse{
			DepartmentID:   row.DepartmentID.String(),
			DepartmentName: row.DepartmentName,
			Headcount:      row.Headcount,
			NewHires:       row.NewHires,
			Exits:          row.Exits,
			AvgSalary:      toFloat64(row.AvgSalary),
		}
	}
	return result, nil
}

// GetHeadcountTrend returns the month-by-month headcount trend
func (s *ReportService) GetHeadcountTrend(ctx context.Context, companyID uuid.UUID, filter WorkforceReportFilter) ([]HeadcountTrendResponse, error) {
	domainFilter := report.WorkforceReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	trends, err := s.workforceRepo.GetMonthlyHeadcountTrend(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]HeadcountTrendResponse, len(trends))
	for i, t := range trends {
		result[i] = HeadcountTrendResponse{
			Year:          t.Year,
			Month:         t.Month,
			Headcount:     t.Headcount,
			Hires:         t.Hires,
			Exits:         t.Exits,
			AttritionRate: toFloat64(t.AttritionRate),
		}
	}
	return result, nil
}

// GetTenureDistribution returns employees bucketed by years of service
func (s *ReportService) GetTenureDistribution(ctx context.Context, companyID uuid.UUID, filter WorkforceReportFilter) ([]TenureDistributionResponse, error) {
	domainFilter := report.WorkforceReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	buckets, err := s.workforceRepo.GetTenureDistribution(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]TenureDistributionResponse, len(buckets))
	for i, b := range buckets {
		result[i] = TenureDistributionResponse{Bucket: b.Bucket, Headcount: b.Headcount}
	}
	return result, nil
}

// ===================== Attendance Report Operations =====================

// AttendanceSummaryResponse represents the attendance summary response
type AttendanceSummaryResponse struct {
	PeriodStart        time.Time `json:"period_start"`
	PeriodEnd          time.Time `json:"period_end"`
	WorkingDays        int64     `json:"working_days"`
	PresentCount       int64     `json:"present_count"`
	AbsentCount        int64     `json:"absent_count"`
	LateCount          int64     `json:"late_count"`
	OnLeaveCount       int64     `json:"on_leave_count"`
	AttendanceRate     float64   `json:"attendance_rate"`
	PunctualityRate    float64   `json:"punctuality_rate"`
	TotalHoursWorked   float64   `json:"total_hours_worked"`
	TotalOvertimeHours float64   `json:"total_overtime_hours"`
}

// DailyAttendanceTrendResponse represents per-day attendance counts
type DailyAttendanceTrendResponse struct {
	Date         time.Time `json:"date"`
	PresentCount int64     `json:"present_count"`
	AbsentCount  int64     `json:"absent_count"`
	LateCount    int64     `json:"late_count"`
	OnLeaveCount int64     `json:"on_leave_count"`
	AvgHours     float64   `json:"avg_hours"`
}

// AbsenteeismRankingResponse represents employee absenteeism ranking
type AbsenteeismRankingResponse struct {
	Rank         int    `json:"rank"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	AbsentDays   int64  `json:"absent_days"`
	LateDays     int64  `json:"late_days"`
}

// LeaveUtilizationResponse represents leave consumption per type
type LeaveUtilizationResponse struct {
	LeaveType      string  `json:"leave_type"`
	Allocated      float64 `json:"allocated"`
	Used           float64 `json:"used"`
	Pending        float64 `json:"pending"`
	CarriedOver    float64 `json:"carried_over"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// AttendanceReportFilter defines the request filter for attendance reports
type AttendanceReportFilter struct {
	StartDate    time.Time  `form:"start_date" binding:"required"`
	EndDate      time.Time  `form:"end_date" binding:"required"`
	DepartmentID *uuid.UUID `form:"department_id"`
	EmployeeID   *uuid.UUID `form:"employee_id"`
	TopN         int        `form:"top_n"`
}

// GetAttendanceSummary returns attendance statistics for the period
func (s *ReportService) GetAttendanceSummary(ctx context.Context, companyID uuid.UUID, filter AttendanceReportFilter) (*AttendanceSummaryResponse, error) {
	domainFilter := report.AttendanceReportFilter{
		CompanyID:    companyID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		DepartmentID: filter.DepartmentID,
		EmployeeID:   filter.EmployeeID,
	}

	summary, err := s.attendanceRepo.GetAttendanceSummary(domainFilter)
	if err != nil {
		return nil, err
	}

	return &AttendanceSummaryResponse{
		PeriodStart:        summary.PeriodStart,
		PeriodEnd:          summary.PeriodEnd,
		WorkingDays:        summary.WorkingDays,
		PresentCount:       summary.PresentCount,
		AbsentCount:        summary.AbsentCount,
		LateCount:          summary.LateCount,
		OnLeaveCount:       summary.OnLeaveCount,
		AttendanceRate:     toFloat64(summary.AttendanceRate),
		PunctualityRate:    toFloat64(summary.PunctualityRate),
		TotalHoursWorked:   toFloat64(summary.TotalHoursWorked),
		TotalOvertimeHours: toFloat64(summary.TotalOvertimeHours),
	}, nil
}

// GetDailyAttendanceTrend returns per-day attendance counts
func (s *ReportService) GetDailyAttendanceTrend(ctx context.Context, companyID uuid.UUID, filter AttendanceReportFilter) ([]DailyAttendanceTrendResponse, error) {
	domainFilter := report.AttendanceReportFilter{
		CompanyID:    companyID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		DepartmentID: filter.DepartmentID,
	}

	trends, err := s.attendanceRepo.GetDailyAttendanceTrend(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]DailyAttendanceTrendResponse, len(trends))
	for i, t := range trends {
		result[i] = DailyAttendanceTrendResponse{
			Date:         t.Date,
			PresentCount: t.PresentCount,
			AbsentCount:  t.AbsentCount,
			LateCount:    t.LateCount,
			OnLeaveCount: t.OnLeaveCount,
			AvgHours:     toFloat64(t.AvgHours),
		}
	}
	return result, nil
}

// GetAbsenteeismRanking returns top N employees by days absent
func (s *ReportService) GetAbsenteeismRanking(ctx context.Context, companyID uuid.UUID, filter AttendanceReportFilter) ([]AbsenteeismRankingResponse, error) {
	topN := filter.TopN
	if topN <= 0 {
		topN = 10
	}
	domainFilter := report.AttendanceReportFilter{
		CompanyID:    companyID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		DepartmentID: filter.DepartmentID,
		TopN:         topN,
	}

	rankings, err := s.attendanceRepo.GetAbsenteeismRanking(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]AbsenteeismRankingResponse, len(rankings))
	for i, r := range rankings {
		result[i] = AbsenteeismRankingResponse{
			Rank:         r.Rank,
			EmployeeID:   r.EmployeeID.String(),
			EmployeeCode: r.EmployeeCode,
			EmployeeName: r.EmployeeName,
			AbsentDays:   r.AbsentDays,
			LateDays:     r.LateDays,
		}
	}
	return result, nil
}

// GetLeaveUtilization returns leave consumption per leave type for a year
func (s *ReportService) GetLeaveUtilization(ctx context.Context, companyID uuid.UUID, year int) ([]LeaveUtilizationResponse, error) {
	rows, err := s.attendanceRepo.GetLeaveUtilization(companyID, year)
	if err != nil {
		return nil, err
	}

	result := make([]LeaveUtilizationResponse, len(rows))
	for i, row := range rows {
		result[i] = LeaveUtilizationResponse{
			LeaveType:      row.LeaveType,
			Allocated:      toFloat64(row.Allocated),
			Used:           toFloat64(row.Used),
			Pending:        toFloat64(row.Pending),
			CarriedOver:    toFloat64(row.CarriedOver),
			UtilizationPct: toFloat64(row.UtilizationPct),
		}
	}
	return result, nil
}

// ===================== Payroll Report Operations =====================

// PayrollCostSummaryResponse represents the payroll spend summary response
type PayrollCostSummaryResponse struct {
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	RunsProcessed   int64     `json:"runs_processed"`
	EmployeesPaid   int64     `json:"employees_paid"`
	TotalGross      float64   `json:"total_gross"`
	TotalDeductions float64   `json:"total_deductions"`
	TotalNet        float64   `json:"total_net"`
	TotalTax        float64   `json:"total_tax"`
	TotalOvertime   float64   `json:"total_overtime"`
	AvgNetPay       float64   `json:"avg_net_pay"`
}

// MonthlyPayrollTrendResponse represents monthly payroll spend
type MonthlyPayrollTrendResponse struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	EmployeesPaid int64   `json:"employees_paid"`
	TotalGross    float64 `json:"total_gross"`
	TotalNet      float64 `json:"total_net"`
	TotalTax      float64 `json:"total_tax"`
}

// DepartmentPayrollCostResponse represents payroll spend per department
type DepartmentPayrollCostResponse struct {
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	EmployeesPaid  int64   `json:"employees_paid"`
	TotalGross     float64 `json:"total_gross"`
	TotalNet       float64 `json:"total_net"`
	ShareOfTotal   float64 `json:"share_of_total"`
}

// ExpenseBreakdownResponse represents reimbursed claims per category
type ExpenseBreakdownResponse struct {
	Category    string  `json:"category"`
	ClaimCount  int64   `json:"claim_count"`
	TotalAmount float64 `json:"total_amount"`
	AvgAmount   float64 `json:"avg_amount"`
}

// PayrollReportFilter defines the request filter for payroll reports
type PayrollReportFilter struct {
	StartDate    time.Time  `form:"start_date" binding:"required"`
	EndDate      time.Time  `form:"end_date" binding:"required"`
	DepartmentID *uuid.UUID `form:"department_id"`
}

// GetPayrollCostSummary returns aggregated payroll spend for the period
func (s *ReportService) GetPayrollCostSummary(ctx context.Context, companyID uuid.UUID, filter PayrollReportFilter) (*PayrollCostSummaryResponse, error) {
	domainFilter := report.PayrollReportFilter{
		CompanyID:    companyID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		DepartmentID: filter.DepartmentID,
	}

	summary, err := s.payrollRepo.GetPayrollCostSummary(domainFilter)
	if err != nil {
		return nil, err
	}

	return &PayrollCostSummaryResponse{
		PeriodStart:     summary.PeriodStart,
		PeriodEnd:       summary.PeriodEnd,
		RunsProcessed:   summary.RunsProcessed,
		EmployeesPaid:   summary.EmployeesPaid,
		TotalGross:      toFloat64(summary.TotalGross),
		TotalDeductions: toFloat64(summary.TotalDeductions),
		TotalNet:        toFloat64(summary.TotalNet),
		TotalTax:        toFloat64(summary.TotalTax),
		TotalOvertime:   toFloat64(summary.TotalOvertime),
		AvgNetPay:       toFloat64(summary.AvgNetPay),
	}, nil
}

// GetMonthlyPayrollTrend returns month-by-month payroll spend
func (s *ReportService) GetMonthlyPayrollTrend(ctx context.Context, companyID uuid.UUID, filter PayrollReportFilter) ([]MonthlyPayrollTrendResponse, error) {
	domainFilter := report.PayrollReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	trends, err := s.payrollRepo.GetMonthlyPayrollTrend(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]MonthlyPayrollTrendResponse, len(trends))
	for i, t := range trends {
		result[i] = MonthlyPayrollTrendResponse{
			Year:          t.Year,
			Month:         t.Month,
			EmployeesPaid: t.EmployeesPaid,
			TotalGross:    toFloat64(t.TotalGross),
			TotalNet:      toFloat64(t.TotalNet),
			TotalTax:      toFloat64(t.TotalTax),
		}
	}
	return result, nil
}

// GetDepartmentPayrollCost returns payroll spend grouped by department
func (s *ReportService) GetDepartmentPayrollCost(ctx context.Context, companyID uuid.UUID, filter PayrollReportFilter) ([]DepartmentPayrollCostResponse, error) {
	domainFilter := report.PayrollReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	rows, err := s.payrollRepo.GetDepartmentPayrollCost(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]DepartmentPayrollCostResponse, len(rows))
	for i, row := range rows {
		result[i] = DepartmentPayrollCostResponse{
			DepartmentID:   row.DepartmentID.String(),
			DepartmentName: row.DepartmentName,
			EmployeesPaid:  row.EmployeesPaid,
			TotalGross:     toFloat64(row.TotalGross),
			TotalNet:       toFloat64(row.TotalNet),
			ShareOfTotal:   toFloat64(row.ShareOfTotal),
		}
	}
	return result, nil
}

// GetExpenseBreakdown returns reimbursed expense claims per category
func (s *ReportService) GetExpenseBreakdown(ctx context.Context, companyID uuid.UUID, filter PayrollReportFilter) ([]ExpenseBreakdownResponse, error) {
	domainFilter := report.PayrollReportFilter{
		CompanyID: companyID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	rows, err := s.payrollRepo.GetExpenseBreakdown(domainFilter)
	if err != nil {
		return nil, err
	}

	result := make([]ExpenseBreakdownResponse, len(rows))
	for i, row := range rows {
		result[i] = ExpenseBreakdownResponse{
			Category:    row.Category,
			ClaimCount:  row.ClaimCount,
			TotalAmount: toFloat64(row.TotalAmount),
			AvgAmount:   toFloat64(row.AvgAmount),
		}
	}
	return result, nil
}

// toFloat64 converts a decimal to float64 for JSON responses
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
