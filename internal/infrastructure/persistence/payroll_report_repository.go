package persistence

import (
	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPayrollReportRepository implements PayrollReportRepository using GORM
type GormPayrollReportRepository struct {
	db *gorm.DB
}

// NewGormPayrollReportRepository creates a new GormPayrollReportRepository
func NewGormPayrollReportRepository(db *gorm.DB) *GormPayrollReportRepository {
	return &GormPayrollReportRepository{db: db}
}

// settledRunStatuses are the run statuses that count toward payroll spend
func settledRunStatuses() []payroll.RunStatus {
	return []payroll.RunStatus{payroll.RunStatusApproved, payroll.RunStatusPaid}
}

// GetPayrollCostSummary returns aggregated payroll spend for the period
func (r *GormPayrollReportRepository) GetPayrollCostSummary(filter report.PayrollReportFilter) (*report.PayrollCostSummary, error) {
	type summaryResult struct {
		RunsProcessed   int64
		EmployeesPaid   int64
		TotalGross      decimal.Decimal
		TotalDeductions decimal.Decimal
		TotalNet        decimal.Decimal
		TotalTax        decimal.Decimal
	}

	var result summaryResult

	query := r.payslipQuery(filter).
		Select(`
			COUNT(DISTINCT pr.id) as runs_processed,
			COUNT(DISTINCT ps.employee_id) as employees_paid,
			COALESCE(SUM(ps.gross_pay), 0) as total_gross,
			COALESCE(SUM(ps.total_deductions), 0) as total_deductions,
			COALESCE(SUM(ps.net_pay), 0) as total_net,
			COALESCE(SUM(ps.tax_deducted), 0) as total_tax
		`)

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	type overtimeResult struct {
		TotalOvertime decimal.Decimal
	}
	var overtime overtimeResult
	overtimeQuery := r.db.Table("payslip_components pc").
		Select("COALESCE(SUM(pc.amount), 0) as total_overtime").
		Joins("JOIN payslips ps ON ps.id = pc.payslip_id").
		Joins("JOIN payroll_runs pr ON pr.id = ps.payroll_run_id").
		Where("pr.tenant_id = ?", filter.CompanyID).
		Where("pr.status IN ?", settledRunStatuses()).
		Where("pr.pay_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("pc.code = ?", payroll.ComponentOvertime)
	if filter.DepartmentID != nil {
		overtimeQuery = overtimeQuery.
			Joins("JOIN employees e ON e.id = ps.employee_id").
			Where("e.department_id = ?", *filter.DepartmentID)
	}
	if err := overtimeQuery.Scan(&overtime).Error; err != nil {
		return nil, err
	}

	var avgNetPay decimal.Decimal
	if result.EmployeesPaid > 0 {
		avgNetPay = result.TotalNet.Div(decimal.NewFromInt(result.EmployeesPaid)).Round(2)
	}

	return &report.PayrollCostSummary{
		PeriodStart:     filter.StartDate,
		PeriodEnd:       filter.EndDate,
		RunsProcessed:   result.RunsProcessed,
		EmployeesPaid:   result.EmployeesPaid,
		TotalGross:      result.TotalGross,
		TotalDeductions: result.TotalDeductions,
		TotalNet:        result.TotalNet,
		TotalTax:        result.TotalTax,
		TotalOvertime:   overtime.TotalOvertime,
		AvgNetPay:       avgNetPay,
	}, nil
}

// GetMonthlyPayrollTrend returns month-by-month payroll spend
func (r *GormPayrollReportRepository) GetMonthlyPayrollTrend(filter report.PayrollReportFilter) ([]report.MonthlyPayrollTrend, error) {
	type monthResult struct {
		Year          int
		Month         int
		EmployeesPaid int64
		TotalGross    decimal.Decimal
		TotalNet      decimal.Decimal
		TotalTax      decimal.Decimal
	}

	var results []monthResult

	err := r.payslipQuery(filter).
		Select(`
			EXTRACT(YEAR FROM pr.pay_date)::int as year,
			EXTRACT(MONTH FROM pr.pay_date)::int as month,
			COUNT(DISTINCT ps.employee_id) as employees_paid,
			COALESCE(SUM(ps.gross_pay), 0) as total_gross,
			COALESCE(SUM(ps.net_pay), 0) as total_net,
			COALESCE(SUM(ps.tax_deducted), 0) as total_tax
		`).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	trends := make([]report.MonthlyPayrollTrend, len(results))
	for i, row := range results {
		trends[i] = report.MonthlyPayrollTrend{
			Year:          row.Year,
			Month:         row.Month,
			EmployeesPaid: row.EmployeesPaid,
			TotalGross:    row.TotalGross,
			TotalNet:      row.TotalNet,
			TotalTax:      row.TotalTax,
		}
	}

	return trends, nil
}

// GetDepartmentPayrollCost returns payroll spend grouped by department
func (r *GormPayrollReportRepository) GetDepartmentPayrollCost(filter report.PayrollReportFilter) ([]report.DepartmentPayrollCost, error) {
	type departmentResult struct {
		DepartmentID   uuid.UUID
		DepartmentName string
		EmployeesPaid  int64
		TotalGross     decimal.Decimal
		TotalNet       decimal.Decimal
	}

	var results []departmentResult

	err := r.db.Table("payslips ps").
		Select(`
			e.department_id,
			COALESCE(d.name, '') as department_name,
			COUNT(DISTINCT ps.employee_id) as employees_paid,
			COALESCE(SUM(ps.gross_pay), 0) as total_gross,
			COALESCE(SUM(ps.net_pay), 0) as total_net
		`).
		Joins("JOIN payroll_runs pr ON pr.id = ps.payroll_run_id").
		Joins("JOIN employees e ON e.id = ps.employee_id").
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Where("pr.tenant_id = ?", filter.CompanyID).
		Where("pr.status IN ?", settledRunStatuses()).
		Where("pr.pay_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Where("e.department_id IS NOT NULL").
		Group("e.department_id, d.name").
		Order("total_gross DESC").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, row := range results {
		grandTotal = grandTotal.Add(row.TotalGross)
	}

	costs := make([]report.DepartmentPayrollCost, len(results))
	for i, row := range results {
		var share decimal.Decimal
		if grandTotal.IsPositive() {
			share = row.TotalGross.Div(grandTotal).Mul(decimal.NewFromInt(100)).Round(2)
		}
		costs[i] = report.DepartmentPayrollCost{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			EmployeesPaid:  row.EmployeesPaid,
			TotalGross:     row.TotalGross,
			TotalNet:       row.TotalNet,
			ShareOfTotal:   share,
		}
	}

	return costs, nil
}

// GetExpenseBreakdown returns reimbursed expense claims per category
func (r *GormPayrollReportRepository) GetExpenseBreakdown(filter report.PayrollReportFilter) ([]report.ExpenseBreakdown, error) {
	type categoryResult struct {
		Category    string
		ClaimCount  int64
		TotalAmount decimal.Decimal
	}

	var results []categoryResult

	query := r.db.Table("expenses ex").
		Select(`
			ex.category,
			COUNT(*) as claim_count,
			COALESCE(SUM(ex.amount), 0) as total_amount
		`).
		Where("ex.tenant_id = ?", filter.CompanyID).
		Where("ex.status = ?", expense.StatusReimbursed).
		Where("ex.expense_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("ex.category").
		Order("total_amount DESC")

	if filter.DepartmentID != nil {
		query = query.Joins("JOIN employees e ON e.id = ex.employee_id").
			Where("e.department_id = ?", *filter.DepartmentID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	breakdown := make([]report.ExpenseBreakdown, len(results))
	for i, row := range results {
		var avg decimal.Decimal
		if row.ClaimCount > 0 {
			avg = row.TotalAmount.Div(decimal.NewFromInt(row.ClaimCount)).Round(2)
		}
		breakdown[i] = report.ExpenseBreakdown{
			Category:    row.Category,
			ClaimCount:  row.ClaimCount,
			TotalAmount: row.TotalAmount,
			AvgAmount:   avg,
		}
	}

	return breakdown, nil
}

// payslipQuery builds the payslip-to-run join shared by the summary queries
func (r *GormPayrollReportRepository) payslipQuery(filter report.PayrollReportFilter) *gorm.DB {
	query := r.db.Table("payslips ps").
		Joins("JOIN payroll_runs pr ON pr.id = ps.payroll_run_id").
		Where("pr.tenant_id = ?", filter.CompanyID).
		Where("pr.status IN ?", settledRunStatuses()).
		Where("pr.pay_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	if filter.DepartmentID != nil {
		query = query.Joins("JOIN employees e ON e.id = ps.employee_id").
			Where("e.department_id = ?", *filter.DepartmentID)
	}

	return query
}

// Ensure GormPayrollReportRepository implements PayrollReportRepository
var _ report.PayrollReportRepository = (*GormPayrollReportRepository)(nil)
