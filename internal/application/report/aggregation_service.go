package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/report"
	"github.com/hrms/backend/internal/infrastructure/scheduler"
)

// ReportCacheRepository defines the interface for storing cached report data
type ReportCacheRepository interface {
	// Headcount Summary
	SaveHeadcountSummaryCache(ctx context.Context, cache *HeadcountSummaryCacheModel) error
	GetHeadcountSummaryCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) (*HeadcountSummaryCacheModel, error)

	// Attendance Summary
	SaveAttendanceSummaryCache(ctx context.Context, cache *AttendanceSummaryCacheModel) error
	GetAttendanceSummaryCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) (*AttendanceSummaryCacheModel, error)

	// Daily Attendance
	SaveAttendanceDailyCache(ctx context.Context, caches []*AttendanceDailyCacheModel) error
	GetAttendanceDailyCache(ctx context.Context, companyID uuid.UUID, startDate, endDate time.Time) ([]*AttendanceDailyCacheModel, error)

	// Monthly Payroll
	SavePayrollMonthlyCache(ctx context.Context, cache *PayrollMonthlyCacheModel) error
	GetPayrollMonthlyCache(ctx context.Context, companyID uuid.UUID, year, month int) (*PayrollMonthlyCacheModel, error)

	// Department Cost
	SaveDepartmentCostCache(ctx context.Context, caches []*DepartmentCostCacheModel) error
	GetDepartmentCostCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) ([]*DepartmentCostCacheModel, error)

	// Leave Utilization
	SaveLeaveUtilizationCache(ctx context.Context, caches []*LeaveUtilizationCacheModel) error
	GetLeaveUtilizationCache(ctx context.Context, companyID uuid.UUID, year int) ([]*LeaveUtilizationCacheModel, error)

	// Metadata
	UpdateCacheMetadata(ctx context.Context, companyID uuid.UUID, reportType string, periodStart, periodEnd time.Time) error
	InvalidateCache(ctx context.Context, companyID uuid.UUID, reportType string) error
}

// Cache models for storing pre-computed data
type HeadcountSummaryCacheModel struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID        uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	PeriodStart     time.Time       `gorm:"column:period_start;not null"`
	PeriodEnd       time.Time       `gorm:"column:period_end;not null"`
	TotalEmployees  int64           `gorm:"column:total_employees;default:0"`
	ActiveEmployees int64           `gorm:"column:active_employees;default:0"`
	OnLeave         int64           `gorm:"column:on_leave;default:0"`
	OnProbation     int64           `gorm:"column:on_probation;default:0"`
	NewHires        int64           `gorm:"column:new_hires;default:0"`
	Exits           int64           `gorm:"column:exits;default:0"`
	AttritionRate   decimal.Decimal `gorm:"column:attrition_rate;type:decimal(10,4);default:0"`
	AverageTenure   decimal.Decimal `gorm:"column:average_tenure;type:decimal(10,4);default:0"`
	ComputedAt      time.Time       `gorm:"column:computed_at"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (HeadcountSummaryCacheModel) TableName() string {
	return "report_headcount_summary_cache"
}

type AttendanceSummaryCacheModel struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID           uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	PeriodStart        time.Time       `gorm:"column:period_start;not null"`
	PeriodEnd          time.Time       `gorm:"column:period_end;not null"`
	WorkingDays        int64           `gorm:"column:working_days;default:0"`
	PresentCount       int64           `gorm:"column:present_count;default:0"`
	AbsentCount        int64           `gorm:"column:absent_count;default:0"`
	LateCount          int64           `gorm:"column:late_count;default:0"`
	OnLeaveCount       int64           `gorm:"column:on_leave_count;default:0"`
	AttendanceRate     decimal.Decimal `gorm:"column:attendance_rate;type:decimal(10,4);default:0"`
	PunctualityRate    decimal.Decimal `gorm:"column:punctuality_rate;type:decimal(10,4);default:0"`
	TotalHoursWorked   decimal.Decimal `gorm:"column:total_hours_worked;type:decimal(20,4);default:0"`
	TotalOvertimeHours decimal.Decimal `gorm:"column:total_overtime_hours;type:decimal(20,4);default:0"`
	ComputedAt         time.Time       `gorm:"column:computed_at"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
}

func (AttendanceSummaryCacheModel) TableName() string {
	return "report_attendance_summary_cache"
}

type AttendanceDailyCacheModel struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID     uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	Date         time.Time       `gorm:"column:date;type:date;not null"`
	PresentCount int64           `gorm:"column:present_count;default:0"`
	AbsentCount  int64           `gorm:"column:absent_count;default:0"`
	LateCount    int64           `gorm:"column:late_count;default:0"`
	OnLeaveCount int64           `gorm:"column:on_leave_count;default:0"`
	AvgHours     decimal.Decimal `gorm:"column:avg_hours;type:decimal(10,4);default:0"`
	ComputedAt   time.Time       `gorm:"column:computed_at"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (AttendanceDailyCacheModel) TableName() string {
	return "report_attendance_daily_cache"
}

type PayrollMonthlyCacheModel struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID        uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	Year            int             `gorm:"column:year;not null"`
	Month           int             `gorm:"column:month;not null"`
	RunsProcessed   int64           `gorm:"column:runs_processed;default:0"`
	EmployeesPaid   int64           `gorm:"column:employees_paid;default:0"`
	TotalGross      decimal.Decimal `gorm:"column:total_gross;type:decimal(20,4);default:0"`
	TotalDeductions decimal.Decimal `gorm:"column:total_deductions;type:decimal(20,4);default:0"`
	TotalNet        decimal.Decimal `gorm:"column:total_net;type:decimal(20,4);default:0"`
	TotalTax        decimal.Decimal `gorm:"column:total_tax;type:decimal(20,4);default:0"`
	TotalOvertime   decimal.Decimal `gorm:"column:total_overtime;type:decimal(20,4);default:0"`
	AvgNetPay       decimal.Decimal `gorm:"column:avg_net_pay;type:decimal(20,4);default:0"`
	ComputedAt      time.Time       `gorm:"column:computed_at"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (PayrollMonthlyCacheModel) TableName() string {
	return "report_payroll_monthly_cache"
}

type DepartmentCostCacheModel struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	PeriodStart    time.Time       `gorm:"column:period_start;type:date;not null"`
	PeriodEnd      time.Time       `gorm:"column:period_end;type:date;not null"`
	DepartmentID   uuid.UUID       `gorm:"column:department_id;type:uuid;not null"`
	DepartmentName string          `gorm:"column:department_name;size:255;not null"`
	EmployeesPaid  int64           `gorm:"column:employees_paid;default:0"`
	TotalGross     decimal.Decimal `gorm:"column:total_gross;type:decimal(20,4);default:0"`
	TotalNet       decimal.Decimal `gorm:"column:total_net;type:decimal(20,4);default:0"`
	ShareOfTotal   decimal.Decimal `gorm:"column:share_of_total;type:decimal(10,4);default:0"`
	ComputedAt     time.Time       `gorm:"column:computed_at"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (DepartmentCostCacheModel) TableName() string {
	return "report_department_cost_cache"
}

type LeaveUtilizationCacheModel struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"column:tenant_id;type:uuid;not null"`
	Year           int             `gorm:"column:year;not null"`
	LeaveType      string          `gorm:"column:leave_type;size:50;not null"`
	Allocated      decimal.Decimal `gorm:"column:allocated;type:decimal(10,2);default:0"`
	Used           decimal.Decimal `gorm:"column:used;type:decimal(10,2);default:0"`
	Pending        decimal.Decimal `gorm:"column:pending;type:decimal(10,2);default:0"`
	CarriedOver    decimal.Decimal `gorm:"column:carried_over;type:decimal(10,2);default:0"`
	UtilizationPct decimal.Decimal `gorm:"column:utilization_pct;type:decimal(10,4);default:0"`
	ComputedAt     time.Time       `gorm:"column:computed_at"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (LeaveUtilizationCacheModel) TableName() string {
	return "report_leave_utilization_cache"
}

// ReportAggregationService computes and caches report data
type ReportAggregationService struct {
	workforceRepo  report.WorkforceReportRepository
	attendanceRepo report.AttendanceReportRepository
	payrollRepo    report.PayrollReportRepository
	cacheRepo      ReportCacheRepository
	logger         *zap.Logger
}

// NewReportAggregationService creates a new aggregation service
func NewReportAggregationService(
	workforceRepo report.WorkforceReportRepository,
	attendanceRepo report.AttendanceReportRepository,
	payrollRepo report.PayrollReportRepository,
	cacheRepo ReportCacheRepository,
	logger *zap.Logger,
) *ReportAggregationService {
	return &ReportAggregationService{
		workforceRepo:  workforceRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

// Execute implements scheduler.JobExecutor
func (s *ReportAggregationService) Execute(ctx context.Context, job *scheduler.Job) error {
	if job.TenantID == nil {
		return scheduler.ErrInvalidReportType
	}
	return s.RefreshReport(ctx, *job.TenantID, job.ReportType, job.PeriodStart, job.PeriodEnd)
}

// RefreshReport recomputes the cache for a single report type
func (s *ReportAggregationService) RefreshReport(ctx context.Context, companyID uuid.UUID, reportType scheduler.ReportType, periodStart, periodEnd time.Time) error {
	switch reportType {
	case scheduler.ReportTypeHeadcountSummary:
		return s.computeHeadcountSummary(ctx, companyID, periodStart, periodEnd)
	case scheduler.ReportTypeAttendanceSummary:
		return s.computeAttendanceSummary(ctx, companyID, periodStart, periodEnd)
	case scheduler.ReportTypeAttendanceDailyTrend:
		return s.computeAttendanceDailyTrend(ctx, companyID, periodStart, periodEnd)
	case scheduler.ReportTypePayrollMonthly:
		return s.computePayrollMonthly(ctx, companyID, periodStart, periodEnd)
	case scheduler.ReportTypeDepartmentCost:
		return s.computeDepartmentCost(ctx, companyID, periodStart, periodEnd)
	case scheduler.ReportTypeLeaveUtilization:
		return s.computeLeaveUtilization(ctx, companyID, periodEnd.Year())
	default:
		return scheduler.ErrInvalidReportType
	}
}

// RefreshAllReports recomputes every report cache for a company over the period
func (s *ReportAggregationService) RefreshAllReports(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	for _, rt := range scheduler.AllReportTypes() {
		if err := s.RefreshReport(ctx, companyID, rt, periodStart, periodEnd); err != nil {
			return err
		}
	}
	return nil
}

// computeHeadcountSummary computes and caches the workforce composition
func (s *ReportAggregationService) computeHeadcountSummary(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	filter := report.WorkforceReportFilter{
		CompanyID: companyID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	}

	summary, err := s.workforceRepo.GetHeadcountSummary(filter)
	if err != nil {
		return err
	}

	now := time.Now()
	cache := &HeadcountSummaryCacheModel{
		ID:              uuid.New(),
		TenantID:        companyID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		TotalEmployees:  summary.TotalEmployees,
		ActiveEmployees: summary.ActiveEmployees,
		OnLeave:         summary.OnLeave,
		OnProbation:     summary.OnProbation,
		NewHires:        summary.NewHires,
		Exits:           summary.Exits,
		AttritionRate:   summary.AttritionRate,
		AverageTenure:   summary.AverageTenure,
		ComputedAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.cacheRepo.SaveHeadcountSummaryCache(ctx, cache); err != nil {
		return err
	}

	s.logger.Info("Headcount summary computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Time("period_start", periodStart),
		zap.Time("period_end", periodEnd),
	)

	return nil
}

// computeAttendanceSummary computes and caches attendance statistics
func (s *ReportAggregationService) computeAttendanceSummary(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	filter := report.AttendanceReportFilter{
		CompanyID: companyID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	}

	summary, err := s.attendanceRepo.GetAttendanceSummary(filter)
	if err != nil {
		return err
	}

	now := time.Now()
	cache := &AttendanceSummaryCacheModel{
		ID:                 uuid.New(),
		TenantID:           companyID,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		WorkingDays:        summary.WorkingDays,
		PresentCount:       summary.PresentCount,
		AbsentCount:        summary.AbsentCount,
		LateCount:          summary.LateCount,
		OnLeaveCount:       summary.OnLeaveCount,
		AttendanceRate:     summary.AttendanceRate,
		PunctualityRate:    summary.PunctualityRate,
		TotalHoursWorked:   summary.TotalHoursWorked,
		TotalOvertimeHours: summary.TotalOvertimeHours,
		ComputedAt:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.cacheRepo.SaveAttendanceSummaryCache(ctx, cache); err != nil {
		return err
	}

	s.logger.Info("Attendance summary computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Time("period_start", periodStart),
		zap.Time("period_end", periodEnd),
	)

	return nil
}

// computeAttendanceDailyTrend computes and caches the daily attendance trend
func (s *ReportAggregationService) computeAttendanceDailyTrend(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	filter := report.AttendanceReportFilter{
		CompanyID: companyID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	}

	trends, err := s.attendanceRepo.GetDailyAttendanceTrend(filter)
	if err != nil {
		return err
	}

	now := time.Now()
	caches := make([]*AttendanceDailyCacheModel, len(trends))
	for i, trend := range trends {
		caches[i] = &AttendanceDailyCacheModel{
			ID:           uuid.New(),
			TenantID:     companyID,
			Date:         trend.Date,
			PresentCount: trend.PresentCount,
			AbsentCount:  trend.AbsentCount,
			LateCount:    trend.LateCount,
			OnLeaveCount: trend.OnLeaveCount,
			AvgHours:     trend.AvgHours,
			ComputedAt:   now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	if err := s.cacheRepo.SaveAttendanceDailyCache(ctx, caches); err != nil {
		return err
	}

	s.logger.Info("Daily attendance trend computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Int("days", len(caches)),
	)

	return nil
}

// computePayrollMonthly computes and caches the monthly payroll spend
func (s *ReportAggregationService) computePayrollMonthly(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	filter := report.PayrollReportFilter{
		CompanyID: companyID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	}

	summary, err := s.payrollRepo.GetPayrollCostSummary(filter)
	if err != nil {
		return err
	}

	now := time.Now()
	cache := &PayrollMonthlyCacheModel{
		ID:              uuid.New(),
		TenantID:        companyID,
		Year:            periodStart.Year(),
		Month:           int(periodStart.Month()),
		RunsProcessed:   summary.RunsProcessed,
		EmployeesPaid:   summary.EmployeesPaid,
		TotalGross:      summary.TotalGross,
		TotalDeductions: summary.TotalDeductions,
		TotalNet:        summary.TotalNet,
		TotalTax:        summary.TotalTax,
		TotalOvertime:   summary.TotalOvertime,
		AvgNetPay:       summary.AvgNetPay,
		ComputedAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.cacheRepo.SavePayrollMonthlyCache(ctx, cache); err != nil {
		return err
	}

	s.logger.Info("Monthly payroll spend computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Int("year", cache.Year),
		zap.Int("month", cache.Month),
	)

	return nil
}

// computeDepartmentCost computes and caches payroll spend per department
func (s *ReportAggregationService) computeDepartmentCost(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) error {
	filter := report.PayrollReportFilter{
		CompanyID: companyID,
		StartDate: periodStart,
		EndDate:   periodEnd,
	}

	rows, err := s.payrollRepo.GetDepartmentPayrollCost(filter)
	if err != nil {
		return err
	}

	now := time.Now()
	caches := make([]*DepartmentCostCacheModel, len(rows))
	for i, row := range rows {
		caches[i] = &DepartmentCostCacheModel{
			ID:             uuid.New(),
			TenantID:       companyID,
			PeriodStart:    periodStart,
			PeriodEnd:      periodEnd,
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			EmployeesPaid:  row.EmployeesPaid,
			TotalGross:     row.TotalGross,
			TotalNet:       row.TotalNet,
			ShareOfTotal:   row.ShareOfTotal,
			ComputedAt:     now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	if err := s.cacheRepo.SaveDepartmentCostCache(ctx, caches); err != nil {
		return err
	}

	s.logger.Info("Department payroll cost computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Int("departments", len(caches)),
	)

	return nil
}

// computeLeaveUtilization computes and caches per-type leave consumption
func (s *ReportAggregationService) computeLeaveUtilization(ctx context.Context, companyID uuid.UUID, year int) error {
	rows, err := s.attendanceRepo.GetLeaveUtilization(companyID, year)
	if err != nil {
		return err
	}

	now := time.Now()
	caches := make([]*LeaveUtilizationCacheModel, len(rows))
	for i, row := range rows {
		caches[i] = &LeaveUtilizationCacheModel{
			ID:             uuid.New(),
			TenantID:       companyID,
			Year:           year,
			LeaveType:      row.LeaveType,
			Allocated:      row.Allocated,
			Used:           row.Used,
			Pending:        row.Pending,
			CarriedOver:    row.CarriedOver,
			UtilizationPct: row.UtilizationPct,
			ComputedAt:     now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	if err := s.cacheRepo.SaveLeaveUtilizationCache(ctx, caches); err != nil {
		return err
	}

	s.logger.Info("Leave utilization computed and cached",
		zap.String("company_id", companyID.String()),
		zap.Int("year", year),
		zap.Int("leave_types", len(caches)),
	)

	return nil
}
