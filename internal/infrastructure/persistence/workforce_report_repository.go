package persistence

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/report"
	"github.com/hrms/backend/internal/domain/workforce"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWorkforceReportRepository implements WorkforceReportRepository using GORM
type GormWorkforceReportRepository struct {
	db *gorm.DB
}

// NewGormWorkforceReportRepository creates a new GormWorkforceReportRepository
func NewGormWorkforceReportRepository(db *gorm.DB) *GormWorkforceReportRepository {
	return &GormWorkforceReportRepository{db: db}
}

// GetHeadcountSummary returns the workforce composition for the period
func (r *GormWorkforceReportRepository) GetHeadcountSummary(filter report.WorkforceReportFilter) (*report.HeadcountSummary, error) {
	type summaryResult struct {
		TotalEmployees  int64
		ActiveEmployees int64
		OnLeave         int64
		OnProbation     int64
		NewHires        int64
		Exits           int64
		AvgTenureDays   decimal.Decimal
	}

	var result summaryResult

	query := r.db.Table("employees e").
		Select(`
			COUNT(*) FILTER (WHERE e.status IN ('probation', 'active', 'on_leave', 'notice_period')) as total_employees,
			COUNT(*) FILTER (WHERE e.status = 'active') as active_employees,
			COUNT(*) FILTER (WHERE e.status = 'on_leave') as on_leave,
			COUNT(*) FILTER (WHERE e.status = 'probation') as on_probation,
			COUNT(*) FILTER (WHERE e.hire_date BETWEEN ? AND ?) as new_hires,
			COUNT(*) FILTER (WHERE e.termination_date BETWEEN ? AND ?) as exits,
			COALESCE(AVG(EXTRACT(EPOCH FROM (COALESCE(e.termination_date, NOW()) - e.hire_date)) / 86400)
				FILTER (WHERE e.status IN ('probation', 'active', 'on_leave', 'notice_period')), 0) as avg_tenure_days
		`, filter.StartDate, filter.EndDate, filter.StartDate, filter.EndDate).
		Where("e.tenant_id = ?", filter.CompanyID)

	if filter.DepartmentID != nil {
		query = query.Where("e.department_id = ?", *filter.DepartmentID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	var attritionRate decimal.Decimal
	if result.TotalEmployees > 0 {
		attritionRate = decimal.NewFromInt(result.Exits).
			Div(decimal.NewFromInt(result.TotalEmployees)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	avgTenure := result.AvgTenureDays.Div(decimal.NewFromFloat(365.25)).Round(2)

	return &report.HeadcountSummary{
		AsOf:            filter.EndDate,
		TotalEmployees:  result.TotalEmployees,
		ActiveEmployees: result.ActiveEmployees,
		OnLeave:         result.OnLeave,
		OnProbation:     result.OnProbation,
		NewHires:        result.NewHires,
		Exits:           result.Exits,
		AttritionRate:   attritionRate,
		AverageTenure:   avgTenure,
	}, nil
}

// GetDepartmentHeadcount returns headcount grouped by department
func (r *GormWorkforceReportRepository) GetDepartmentHeadcount(filter report.WorkforceReportFilter) ([]report.DepartmentHeadcount, error) {
	type departmentResult struct {
		DepartmentID   uuid.UUID
		DepartmentName string
		Headcount      int64
		NewHires       int64
		Exits          int64
		AvgSalary      decimal.Decimal
	}

	var results []departmentResult

	err := r.db.Table("employees e").
		Select(`
			e.department_id,
			COALESCE(d.name, '') as department_name,
			COUNT(*) FILTER (WHERE e.status IN ('probation', 'active', 'on_leave', 'notice_period')) as headcount,
			COUNT(*) FILTER (WHERE e.hire_date BETWEEN ? AND ?) as new_hires,
			COUNT(*) FILTER (WHERE e.termination_date BETWEEN ? AND ?) as exits,
			COALESCE(AVG(e.base_salary) FILTER (WHERE e.status IN ('probation', 'active', 'on_leave', 'notice_period')), 0) as avg_salary
		`, filter.StartDate, filter.EndDate, filter.StartDate, filter.EndDate).
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Where("e.tenant_id = ?", filter.CompanyID).
		Where("e.department_id IS NOT NULL").
		Group("e.department_id, d.name").
		Order("headcount DESC").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	headcounts := make([]report.DepartmentHeadcount, len(results))
	for i, row := range results {
		headcounts[i] = report.DepartmentHeadcount{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			Headcount:      row.Headcount,
			NewHires:       row.NewHires,
			Exits:          row.Exits,
			AvgSalary:      row.AvgSalary.Round(2),
		}
	}

	return headcounts, nil
}

// GetMonthlyHeadcountTrend returns the month-by-month headcount trend.
// Headcount is reconstructed from the starting headcount plus the running
// net of hires and exits in each month.
func (r *GormWorkforceReportRepository) GetMonthlyHeadcountTrend(filter report.WorkforceReportFilter) ([]report.MonthlyHeadcountTrend, error) {
	type monthResult struct {
		Year  int
		Month int
		Total int64
	}

	baseQuery := func() *gorm.DB {
		query := r.db.Table("employees e").Where("e.tenant_id = ?", filter.CompanyID)
		if filter.DepartmentID != nil {
			query = query.Where("e.department_id = ?", *filter.DepartmentID)
		}
		return query
	}

	var startingHeadcount int64
	if err := baseQuery().
		Where("e.hire_date < ? AND (e.termination_date IS NULL OR e.termination_date >= ?)",
			filter.StartDate, filter.StartDate).
		Count(&startingHeadcount).Error; err != nil {
		return nil, err
	}

	var hires []monthResult
	if err := baseQuery().
		Select("EXTRACT(YEAR FROM e.hire_date)::int as year, EXTRACT(MONTH FROM e.hire_date)::int as month, COUNT(*) as total").
		Where("e.hire_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("year, month").
		Scan(&hires).Error; err != nil {
		return nil, err
	}

	var exits []monthResult
	if err := baseQuery().
		Select("EXTRACT(YEAR FROM e.termination_date)::int as year, EXTRACT(MONTH FROM e.termination_date)::int as month, COUNT(*) as total").
		Where("e.termination_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("year, month").
		Scan(&exits).Error; err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month int
	}
	hiresByMonth := make(map[monthKey]int64, len(hires))
	for _, row := range hires {
		hiresByMonth[monthKey{row.Year, row.Month}] = row.Total
	}
	exitsByMonth := make(map[monthKey]int64, len(exits))
	for _, row := range exits {
		exitsByMonth[monthKey{row.Year, row.Month}] = row.Total
	}

	var keys []monthKey
	cursor := time.Date(filter.StartDate.Year(), filter.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(filter.EndDate.Year(), filter.EndDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		keys = append(keys, monthKey{cursor.Year(), int(cursor.Month())})
		cursor = cursor.AddDate(0, 1, 0)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	trends := make([]report.MonthlyHeadcountTrend, 0, len(keys))
	headcount := startingHeadcount
	for _, key := range keys {
		monthHires := hiresByMonth[key]
		monthExits := exitsByMonth[key]
		headcount += monthHires - monthExits

		var attritionRate decimal.Decimal
		if headcount > 0 {
			attritionRate = decimal.NewFromInt(monthExits).
				Div(decimal.NewFromInt(headcount)).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}

		trends = append(trends, report.MonthlyHeadcountTrend{
			Year:          key.year,
			Month:         key.month,
			Headcount:     headcount,
			Hires:         monthHires,
			Exits:         monthExits,
			AttritionRate: attritionRate,
		})
	}

	return trends, nil
}

// GetTenureDistribution returns employees bucketed by years of service
func (r *GormWorkforceReportRepository) GetTenureDistribution(filter report.WorkforceReportFilter) ([]report.TenureDistribution, error) {
	type bucketResult struct {
		Bucket    string
		Headcount int64
	}

	var results []bucketResult

	query := r.db.Table("employees e").
		Select(`
			CASE
				WHEN EXTRACT(EPOCH FROM (NOW() - e.hire_date)) / 31557600 < 1 THEN '0-1'
				WHEN EXTRACT(EPOCH FROM (NOW() - e.hire_date)) / 31557600 < 3 THEN '1-3'
				WHEN EXTRACT(EPOCH FROM (NOW() - e.hire_date)) / 31557600 < 5 THEN '3-5'
				ELSE '5+'
			END as bucket,
			COUNT(*) as headcount
		`).
		Where("e.tenant_id = ?", filter.CompanyID).
		Where("e.status IN ?", []workforce.EmployeeStatus{
			workforce.EmployeeStatusProbation,
			workforce.EmployeeStatusActive,
			workforce.EmployeeStatusOnLeave,
			workforce.EmployeeStatusNoticePeriod,
		}).
		Group("bucket")

	if filter.DepartmentID != nil {
		query = query.Where("e.department_id = ?", *filter.DepartmentID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	// Fixed bucket order regardless of which buckets came back
	order := []string{"0-1", "1-3", "3-5", "5+"}
	byBucket := make(map[string]int64, len(results))
	for _, row := range results {
		byBucket[row.Bucket] = row.Headcount
	}

	distribution := make([]report.TenureDistribution, 0, len(order))
	for _, bucket := range order {
		distribution = append(distribution, report.TenureDistribution{
			Bucket:    bucket,
			Headcount: byBucket[bucket],
		})
	}

	return distribution, nil
}

// Ensure GormWorkforceReportRepository implements WorkforceReportRepository
var _ report.WorkforceReportRepository = (*GormWorkforceReportRepository)(nil)
