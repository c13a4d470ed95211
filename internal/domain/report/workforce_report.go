package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HeadcountSummary is a read model for workforce size and composition
type HeadcountSummary struct {
	AsOf            time.Time       `json:"as_of"`
	TotalEmployees  int64           `json:"total_employees"`
	ActiveEmployees int64           `json:"active_employees"`
	OnLeave         int64           `json:"on_leave"`
	OnProbation     int64           `json:"on_probation"`
	NewHires        int64           `json:"new_hires"` // Hired within the period
	Exits           int64           `json:"exits"`     // Terminated within the period
	AttritionRate   decimal.Decimal `json:"attrition_rate"`  // Percentage
	AverageTenure   decimal.Decimal `json:"average_tenure"`  // Years
}

// DepartmentHeadcount represents headcount grouped by department
type DepartmentHeadcount struct {
	DepartmentID   uuid.UUID       `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	Headcount      int64           `json:"headcount"`
	NewHires       int64           `json:"new_hires"`
	Exits          int64           `json:"exits"`
	AvgSalary      decimal.Decimal `json:"avg_salary"`
}

// MonthlyHeadcountTrend represents monthly hires, exits and net headcount
type MonthlyHeadcountTrend struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Headcount     int64           `json:"headcount"`
	Hires         int64           `json:"hires"`
	Exits         int64           `json:"exits"`
	AttritionRate decimal.Decimal `json:"attrition_rate"`
}

// TenureDistribution buckets employees by years of service
type TenureDistribution struct {
	Bucket    string `json:"bucket"` // e.g. "0-1", "1-3", "3-5", "5+"
	Headcount int64  `json:"headcount"`
}

// WorkforceReportFilter defines filtering options for workforce reports
type WorkforceReportFilter struct {
	CompanyID    uuid.UUID  `json:"-"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
}

// WorkforceReportRepository defines the interface for workforce report queries
type WorkforceReportRepository interface {
	// GetHeadcountSummary returns the workforce composition for the period
	GetHeadcountSummary(filter WorkforceReportFilter) (*HeadcountSummary, error)

	// GetDepartmentHeadcount returns headcount grouped by department
	GetDepartmentHeadcount(filter WorkforceReportFilter) ([]DepartmentHeadcount, error)

	// GetMonthlyHeadcountTrend returns the month-by-month headcount trend
	GetMonthlyHeadcountTrend(filter WorkforceReportFilter) ([]MonthlyHeadcountTrend, error)

	// GetTenureDistribution returns employees bucketed by years of service
	GetTenureDistribution(filter WorkforceReportFilter) ([]TenureDistribution, error)
}
