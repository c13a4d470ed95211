package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// PayrollRunRepository defines the persistence interface for payroll runs
type PayrollRunRepository interface {
	// FindByID finds a run by ID, payslips included
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*PayrollRun, error)

	// FindByNumber finds a run by its run number
	FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*PayrollRun, error)

	// FindAll finds runs with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*PayrollRun], error)

	// FindByStatus finds runs in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status RunStatus, filter shared.Filter) (*shared.Paginated[*PayrollRun], error)

	// FindOverlapping finds non-cancelled regular runs whose period overlaps [start, end]
	FindOverlapping(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*PayrollRun, error)

	// FindPayslipsByEmployee finds an employee's payslips, newest first
	FindPayslipsByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Payslip], error)

	// FindPayslip finds one payslip by ID
	FindPayslip(ctx context.Context, companyID, payslipID uuid.UUID) (*Payslip, error)

	// Save creates or updates a run and its payslips
	Save(ctx context.Context, run *PayrollRun) error

	// Count counts runs matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// NextSequence returns the next run sequence for a period month
	NextSequence(ctx context.Context, companyID uuid.UUID, periodStart time.Time) (int, error)
}

// SalaryStructureRepository defines the persistence interface for salary structures
type SalaryStructureRepository interface {
	// FindByID finds a structure by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*SalaryStructure, error)

	// FindActiveByEmployee finds the active structure for an employee
	FindActiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*SalaryStructure, error)

	// FindEffectiveByEmployee finds the structure effective for an employee on a date
	FindEffectiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*SalaryStructure, error)

	// FindHistoryByEmployee finds all structures for an employee, newest first
	FindHistoryByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*SalaryStructure, error)

	// FindActive finds all active structures for the company
	FindActive(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*SalaryStructure], error)

	// Save creates or updates a structure
	Save(ctx context.Context, structure *SalaryStructure) error
}
