package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollCostSummary is a read model for payroll spend over a period
type PayrollCostSummary struct {
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	RunsProcessed   int64           `json:"runs_processed"`
	EmployeesPaid   int64           `json:"employees_paid"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	TotalOvertime   decimal.Decimal `json:"total_overtime"`
	AvgNetPay       decimal.Decimal `json:"avg_net_pay"`
}

// MonthlyPayrollTrend represents month-by-month payroll spend
type MonthlyPayrollTrend struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	EmployeesPaid int64           `json:"employees_paid"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalNet      decimal.Decimal `json:"total_net"`
	TotalTax      decimal.Decimal `json:"total_tax"`
}

// DepartmentPayrollCost represents payroll spend grouped by department
type DepartmentPayrollCost struct {
	DepartmentID   uuid.UUID       `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	EmployeesPaid  int64           `json:"employees_paid"`
	TotalGross     decimal.Decimal `json:"total_gross"`
	TotalNet       decimal.Decimal `json:"total_net"`
	ShareOfTotal   decimal.Decimal `json:"share_of_total"` // Percentage
}

// ExpenseBreakdown summarizes reimbursed expense claims per category
type ExpenseBreakdown struct {
	Category    string          `json:"category"`
	ClaimCount  int64           `json:"claim_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AvgAmount   decimal.Decimal `json:"avg_amount"`
}

// PayrollReportFilter defines filtering options for payroll reports
type PayrollReportFilter struct {
	CompanyID    uuid.UUID  `json:"-"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// PayrollReportRepository defines the interface for payroll report queries
type PayrollReportRepository interface {
	// GetPayrollCostSummary returns aggregated payroll spend for the period
	GetPayrollCostSummary(filter PayrollReportFilter) (*PayrollCostSummary, error)

	// GetMonthlyPayrollTrend returns month-by-month payroll spend
	GetMonthlyPayrollTrend(filter PayrollReportFilter) ([]MonthlyPayrollTrend, error)

	// GetDepartmentPayrollCost returns payroll spend grouped by department
	GetDepartmentPayrollCost(filter PayrollReportFilter) ([]DepartmentPayrollCost, error)

	// GetExpenseBreakdown returns reimbursed expense claims per category
	GetExpenseBreakdown(filter PayrollReportFilter) ([]ExpenseBreakdown, error)
}
