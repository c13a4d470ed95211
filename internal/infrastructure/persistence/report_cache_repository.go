package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appreport "github.com/hrms/backend/internal/application/report"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/infrastructure/scheduler"
)

// ReportCacheMetadataModel tracks when each cached report was last computed
type ReportCacheMetadataModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;uniqueIndex:idx_report_cache_meta"`
	ReportType  string    `gorm:"column:report_type;size:50;not null;uniqueIndex:idx_report_cache_meta"`
	PeriodStart time.Time `gorm:"column:period_start"`
	PeriodEnd   time.Time `gorm:"column:period_end"`
	ComputedAt  time.Time `gorm:"column:computed_at"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (ReportCacheMetadataModel) TableName() string {
	return "report_cache_metadata"
}

// GormReportCacheRepository implements ReportCacheRepository using GORM
type GormReportCacheRepository struct {
	db *gorm.DB
}

// NewGormReportCacheRepository creates a new GormReportCacheRepository
func NewGormReportCacheRepository(db *gorm.DB) *GormReportCacheRepository {
	return &GormReportCacheRepository{db: db}
}

// SaveHeadcountSummaryCache upserts the headcount summary for a period
func (r *GormReportCacheRepository) SaveHeadcountSummaryCache(ctx context.Context, cache *appreport.HeadcountSummaryCacheModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "period_start"}, {Name: "period_end"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_employees",
			"active_employees",
			"on_leave",
			"on_probation",
			"new_hires",
			"exits",
			"attrition_rate",
			"average_tenure",
			"computed_at",
			"updated_at",
		}),
	}).Create(cache).Error
}

// GetHeadcountSummaryCache reads the cached headcount summary for a period
func (r *GormReportCacheRepository) GetHeadcountSummaryCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) (*appreport.HeadcountSummaryCacheModel, error) {
	var cache appreport.HeadcountSummaryCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND period_start = ? AND period_end = ?", companyID, periodStart, periodEnd).
		First(&cache).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cache, nil
}

// SaveAttendanceSummaryCache upserts the attendance summary for a period
func (r *GormReportCacheRepository) SaveAttendanceSummaryCache(ctx context.Context, cache *appreport.AttendanceSummaryCacheModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "period_start"}, {Name: "period_end"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"working_days",
			"present_count",
			"absent_count",
			"late_count",
			"on_leave_count",
			"attendance_rate",
			"punctuality_rate",
			"total_hours_worked",
			"total_overtime_hours",
			"computed_at",
			"updated_at",
		}),
	}).Create(cache).Error
}

// GetAttendanceSummaryCache reads the cached attendance summary for a period
func (r *GormReportCacheRepository) GetAttendanceSummaryCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) (*appreport.AttendanceSummaryCacheModel, error) {
	var cache appreport.AttendanceSummaryCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND period_start = ? AND period_end = ?", companyID, periodStart, periodEnd).
		First(&cache).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cache, nil
}

// SaveAttendanceDailyCache replaces the daily attendance rows covered by the batch
func (r *GormReportCacheRepository) SaveAttendanceDailyCache(ctx context.Context, caches []*appreport.AttendanceDailyCacheModel) error {
	if len(caches) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dates := make([]time.Time, len(caches))
		for i, cache := range caches {
			dates[i] = cache.Date
		}

		if err := tx.
			Where("tenant_id = ? AND date IN ?", caches[0].TenantID, dates).
			Delete(&appreport.AttendanceDailyCacheModel{}).Error; err != nil {
			return err
		}

		return tx.CreateInBatches(caches, 100).Error
	})
}

// GetAttendanceDailyCache reads cached daily attendance rows for a date range
func (r *GormReportCacheRepository) GetAttendanceDailyCache(ctx context.Context, companyID uuid.UUID, startDate, endDate time.Time) ([]*appreport.AttendanceDailyCacheModel, error) {
	var caches []*appreport.AttendanceDailyCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date BETWEEN ? AND ?", companyID, startDate, endDate).
		Order("date ASC").
		Find(&caches).Error; err != nil {
		return nil, err
	}
	return caches, nil
}

// SavePayrollMonthlyCache upserts the payroll summary for a month
func (r *GormReportCacheRepository) SavePayrollMonthlyCache(ctx context.Context, cache *appreport.PayrollMonthlyCacheModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"runs_processed",
			"employees_paid",
			"total_gross",
			"total_deductions",
			"total_net",
			"total_tax",
			"total_overtime",
			"avg_net_pay",
			"computed_at",
			"updated_at",
		}),
	}).Create(cache).Error
}

// GetPayrollMonthlyCache reads the cached payroll summary for a month
func (r *GormReportCacheRepository) GetPayrollMonthlyCache(ctx context.Context, companyID uuid.UUID, year, month int) (*appreport.PayrollMonthlyCacheModel, error) {
	var cache appreport.PayrollMonthlyCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND year = ? AND month = ?", companyID, year, month).
		First(&cache).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cache, nil
}

// SaveDepartmentCostCache replaces the department cost rows for the batch period
func (r *GormReportCacheRepository) SaveDepartmentCostCache(ctx context.Context, caches []*appreport.DepartmentCostCacheModel) error {
	if len(caches) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ? AND period_start = ? AND period_end = ?",
				caches[0].TenantID, caches[0].PeriodStart, caches[0].PeriodEnd).
			Delete(&appreport.DepartmentCostCacheModel{}).Error; err != nil {
			return err
		}

		return tx.CreateInBatches(caches, 100).Error
	})
}

// GetDepartmentCostCache reads cached department cost rows for a period
func (r *GormReportCacheRepository) GetDepartmentCostCache(ctx context.Context, companyID uuid.UUID, periodStart, periodEnd time.Time) ([]*appreport.DepartmentCostCacheModel, error) {
	var caches []*appreport.DepartmentCostCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND period_start = ? AND period_end = ?", companyID, periodStart, periodEnd).
		Order("total_gross DESC").
		Find(&caches).Error; err != nil {
		return nil, err
	}
	return caches, nil
}

// SaveLeaveUtilizationCache replaces the leave utilization rows for the batch year
func (r *GormReportCacheRepository) SaveLeaveUtilizationCache(ctx context.Context, caches []*appreport.LeaveUtilizationCacheModel) error {
	if len(caches) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ? AND year = ?", caches[0].TenantID, caches[0].Year).
			Delete(&appreport.LeaveUtilizationCacheModel{}).Error; err != nil {
			return err
		}

		return tx.CreateInBatches(caches, 100).Error
	})
}

// GetLeaveUtilizationCache reads cached leave utilization rows for a year
func (r *GormReportCacheRepository) GetLeaveUtilizationCache(ctx context.Context, companyID uuid.UUID, year int) ([]*appreport.LeaveUtilizationCacheModel, error) {
	var caches []*appreport.LeaveUtilizationCacheModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND year = ?", companyID, year).
		Order("leave_type ASC").
		Find(&caches).Error; err != nil {
		return nil, err
	}
	return caches, nil
}

// UpdateCacheMetadata records when a report type was last computed
func (r *GormReportCacheRepository) UpdateCacheMetadata(ctx context.Context, companyID uuid.UUID, reportType string, periodStart, periodEnd time.Time) error {
	now := time.Now()
	metadata := &ReportCacheMetadataModel{
		ID:          uuid.New(),
		TenantID:    companyID,
		ReportType:  reportType,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ComputedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "report_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"period_start",
			"period_end",
			"computed_at",
			"updated_at",
		}),
	}).Create(metadata).Error
}

// InvalidateCache drops all cached rows for a report type
func (r *GormReportCacheRepository) InvalidateCache(ctx context.Context, companyID uuid.UUID, reportType string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := tx.Where("tenant_id = ?", companyID)

		var err error
		switch scheduler.ReportType(reportType) {
		case scheduler.ReportTypeHeadcountSummary:
			err = scope.Delete(&appreport.HeadcountSummaryCacheModel{}).Error
		case scheduler.ReportTypeAttendanceSummary:
			err = scope.Delete(&appreport.AttendanceSummaryCacheModel{}).Error
		case scheduler.ReportTypeAttendanceDailyTrend:
			err = scope.Delete(&appreport.AttendanceDailyCacheModel{}).Error
		case scheduler.ReportTypePayrollMonthly:
			err = scope.Delete(&appreport.PayrollMonthlyCacheModel{}).Error
		case scheduler.ReportTypeDepartmentCost:
			err = scope.Delete(&appreport.DepartmentCostCacheModel{}).Error
		case scheduler.ReportTypeLeaveUtilization:
			err = scope.Delete(&appreport.LeaveUtilizationCacheModel{}).Error
		default:
			return shared.NewDomainError("UNKNOWN_REPORT_TYPE", "Unknown report type: "+reportType)
		}
		if err != nil {
			return err
		}

		return tx.
			Where("tenant_id = ? AND report_type = ?", companyID, reportType).
			Delete(&ReportCacheMetadataModel{}).Error
	})
}

// Ensure GormReportCacheRepository implements ReportCacheRepository
var _ appreport.ReportCacheRepository = (*GormReportCacheRepository)(nil)
