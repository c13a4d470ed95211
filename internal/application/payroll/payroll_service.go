package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// PayrollService orchestrates payroll runs: creation, processing,
// approval and disbursement
type PayrollService struct {
	runRepo        payroll.PayrollRunRepository
	structureRepo  payroll.SalaryStructureRepository
	employeeRepo   workforce.EmployeeRepository
	attendanceRepo attendance.AttendanceDayRepository
	shiftRepo      attendance.ShiftRepository
	leaveRepo      leave.LeaveRequestRepository
	deptRepo       identity.DepartmentRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	runRepo payroll.PayrollRunRepository,
	structureRepo payroll.SalaryStructureRepository,
	employeeRepo workforce.EmployeeRepository,
	attendanceRepo attendance.AttendanceDayRepository,
	shiftRepo attendance.ShiftRepository,
	leaveRepo leave.LeaveRequestRepository,
	deptRepo identity.DepartmentRepository,
	logger *zap.Logger,
) *PayrollService {
	return &PayrollService{
		runRepo:        runRepo,
		structureRepo:  structureRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		leaveRepo:      leaveRepo,
		deptRepo:       deptRepo,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PayrollService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateRunInput contains input for creating a payroll run
type CreateRunInput struct {
	CompanyID   uuid.UUID
	Type        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time
}

// PayslipComponentDTO is one earning or deduction line
type PayslipComponentDTO struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	IsTaxable bool   `json:"is_taxable"`
}

// PayslipDTO represents one employee's payslip
type PayslipDTO struct {
	ID               uuid.UUID             `json:"id"`
	PayrollRunID     uuid.UUID             `json:"payroll_run_id"`
	EmployeeID       uuid.UUID             `json:"employee_id"`
	EmployeeName     string                `json:"employee_name"`
	EmployeeCode     string                `json:"employee_code"`
	Department       string                `json:"department,omitempty"`
	Designation      string                `json:"designation,omitempty"`
	BaseSalary       string                `json:"base_salary"`
	DaysWorked       string                `json:"days_worked"`
	DaysAbsent       string                `json:"days_absent"`
	OvertimeHours    string                `json:"overtime_hours"`
	GrossPay         string                `json:"gross_pay"`
	TotalDeductions  string                `json:"total_deductions"`
	NetPay           string                `json:"net_pay"`
	TaxableIncome    string                `json:"taxable_income"`
	TaxDeducted      string                `json:"tax_deducted"`
	Components       []PayslipComponentDTO `json:"components,omitempty"`
	IsPaid           bool                  `json:"is_paid"`
	PaymentDate      *time.Time            `json:"payment_date,omitempty"`
	PaymentReference string                `json:"payment_reference,omitempty"`
}

// PayrollRunDTO represents a payroll run
type PayrollRunDTO struct {
	ID              uuid.UUID    `json:"id"`
	Number          string       `json:"number"`
	Type            string       `json:"type"`
	Status          string       `json:"status"`
	PeriodStart     string       `json:"period_start"`
	PeriodEnd       string       `json:"period_end"`
	PayDate         string       `json:"pay_date"`
	TotalEmployees  int          `json:"total_employees"`
	TotalGrossPay   string       `json:"total_gross_pay"`
	TotalDeductions string       `json:"total_deductions"`
	TotalNetPay     string       `json:"total_net_pay"`
	Payslips        []PayslipDTO `json:"payslips,omitempty"`
	ProcessedAt     *time.Time   `json:"processed_at,omitempty"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty"`
	PaidAt          *time.Time   `json:"paid_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// PayrollRunListResult represents a paginated run list
type PayrollRunListResult struct {
	Runs       []PayrollRunDTO `json:"runs"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ProcessResultDTO summarizes a processing pass
type ProcessResultDTO struct {
	Run      PayrollRunDTO `json:"run"`
	Skipped  int           `json:"skipped"`
	SkipList []string      `json:"skip_list,omitempty"` // Employee codes without a salary structure
}

// CreateRun creates a draft payroll run for a period. Regular runs cannot
// overlap an existing non-cancelled regular run.
func (s *PayrollService) CreateRun(ctx context.Context, input CreateRunInput) (*PayrollRunDTO, error) {
	runType := payroll.RunType(input.Type)

	if runType == payroll.RunTypeRegular {
		overlapping, err := s.runRepo.FindOverlapping(ctx, input.CompanyID, input.PeriodStart, input.PeriodEnd)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check overlapping runs")
		}
		if len(overlapping) > 0 {
			return nil, shared.NewDomainError("OVERLAPPING_RUN", "A payroll run already covers this period")
		}
	}

	seq, err := s.runRepo.NextSequence(ctx, input.CompanyID, input.PeriodStart)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate run number")
	}
	number := payroll.GenerateRunNumber(input.PeriodStart, seq)

	run, err := payroll.NewPayrollRun(input.CompanyID, number, runType, input.PeriodStart, input.PeriodEnd, input.PayDate)
	if err != nil {
		return nil, err
	}

	if err := s.runRepo.Save(ctx, run); err != nil {
		s.logger.Error("Failed to create payroll run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create payroll run")
	}

	s.publishDomainEvents(ctx, run)

	s.logger.Info("Payroll run created",
		zap.String("run_id", run.ID.String()),
		zap.String("number", run.Number))

	return toRunDTO(run, false), nil
}

// Process computes payslips for every working employee in the run's period.
// Employees without an effective salary structure are skipped and reported.
func (s *PayrollService) Process(ctx context.Context, companyID, runID, processorID uuid.UUID) (*ProcessResultDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}

	if err := run.StartProcessing(processorID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.FindActive(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load employees")
	}
	if len(employees) == 0 {
		return nil, shared.NewDomainError("NO_EMPLOYEES", "Company has no working employees")
	}

	unpaidDays, err := s.unpaidLeaveDays(ctx, companyID, run.PeriodStart, run.PeriodEnd)
	if err != nil {
		return nil, err
	}

	deptNames := map[uuid.UUID]string{}
	shiftCache := map[uuid.UUID]*attendance.Shift{}

	var skipped []string
	for i := range employees {
		emp := &employees[i]

		structure, err := s.structureRepo.FindEffectiveByEmployee(ctx, companyID, emp.ID, run.PeriodEnd)
		if err != nil {
			if err == shared.ErrNotFound {
				s.logger.Warn("Employee skipped, no effective salary structure",
					zap.String("employee_code", emp.Code))
				skipped = append(skipped, emp.Code)
				continue
			}
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load salary structure")
		}

		stats, err := s.attendanceRepo.Statistics(ctx, companyID, emp.ID, run.PeriodStart, run.PeriodEnd)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load attendance statistics")
		}

		slip, err := s.buildPayslip(ctx, emp, structure, stats, run, unpaidDays[emp.ID], deptNames, shiftCache)
		if err != nil {
			return nil, err
		}
		if err := run.AddPayslip(slip); err != nil {
			return nil, err
		}
	}

	if err := run.CompleteProcessing(); err != nil {
		return nil, err
	}

	if err := s.runRepo.Save(ctx, run); err != nil {
		s.logger.Error("Failed to save processed run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payroll run")
	}

	s.publishDomainEvents(ctx, run)

	s.logger.Info("Payroll run processed",
		zap.String("run_id", run.ID.String()),
		zap.Int("payslips", run.TotalEmployees),
		zap.Int("skipped", len(skipped)))

	return &ProcessResultDTO{
		Run:      *toRunDTO(run, true),
		Skipped:  len(skipped),
		SkipList: skipped,
	}, nil
}

// buildPayslip computes one employee's payslip from the salary structure,
// attendance statistics and unpaid leave taken in the period
func (s *PayrollService) buildPayslip(
	ctx context.Context,
	emp *workforce.Employee,
	structure *payroll.SalaryStructure,
	stats *attendance.DayStatistics,
	run *payroll.PayrollRun,
	unpaidLeaveDays decimal.Decimal,
	deptNames map[uuid.UUID]string,
	shiftCache map[uuid.UUID]*attendance.Shift,
) (*payroll.Payslip, error) {
	slip := &payroll.Payslip{
		BaseEntity:    shared.NewBaseEntity(),
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Personal.FullName(),
		EmployeeCode:  emp.Code,
		Designation:   emp.JobTitle,
		BaseSalary:    structure.BasicSalary,
		DaysWorked:    decimal.NewFromInt(stats.WorkedDays()),
		DaysAbsent:    decimal.NewFromInt(stats.AbsentDays),
		OvertimeHours: decimal.NewFromFloat(stats.OvertimeHours),
	}
	slip.Department = s.departmentName(ctx, emp.TenantID, emp.DepartmentID, deptNames)

	// Basic salary is prorated by days worked over the period's working days.
	// Employees with no attendance records in the period keep full basic.
	proratedBasic := structure.BasicSalary
	workingDays := decimal.NewFromInt(stats.WorkedDays() + stats.AbsentDays)
	if workingDays.IsPositive() {
		proratedBasic = structure.BasicSalary.Mul(slip.DaysWorked).Div(workingDays).Round(2)
	}

	earnings := []struct {
		code, name string
		amount     decimal.Decimal
		taxable    bool
	}{
		{payroll.ComponentBasicSalary, "Basic Salary", proratedBasic, true},
		{payroll.ComponentHRA, "House Rent Allowance", structure.HRA, true},
		{payroll.ComponentTransportAllowance, "Transport Allowance", structure.TransportAllowance, false},
		{payroll.ComponentMedicalAllowance, "Medical Allowance", structure.MedicalAllowance, false},
		{payroll.ComponentSpecialAllowance, "Special Allowance", structure.SpecialAllowance, true},
		{payroll.ComponentPerformanceBonus, "Performance Bonus", structure.PerformanceBonus, true},
	}
	for _, e := range earnings {
		if !e.amount.IsPositive() {
			continue
		}
		if err := slip.AddComponent(payroll.ComponentKindEarning, e.code, e.name, e.amount, e.taxable); err != nil {
			return nil, err
		}
	}

	periodDays := decimal.NewFromInt(int64(run.PeriodEnd.Sub(run.PeriodStart).Hours()/24) + 1)

	if emp.Compensation.OvertimeEligible && stats.OvertimeHours > 0 {
		multiplier := s.overtimeMultiplier(ctx, emp, shiftCache)
		hourlyRate := structure.BasicSalary.Div(periodDays.Mul(decimal.NewFromInt(8)))
		otPay := hourlyRate.Mul(multiplier).Mul(decimal.NewFromFloat(stats.OvertimeHours)).Round(2)
		if otPay.IsPositive() {
			if err := slip.AddComponent(payroll.ComponentKindEarning, payroll.ComponentOvertime, "Overtime", otPay, true); err != nil {
				return nil, err
			}
		}
	}

	if unpaidLeaveDays.IsPositive() {
		perDay := structure.GrossSalary().Div(periodDays)
		deduction := perDay.Mul(unpaidLeaveDays).Round(2)
		if err := slip.AddComponent(payroll.ComponentKindDeduction, payroll.ComponentUnpaidLeave, "Unpaid Leave", deduction, false); err != nil {
			return nil, err
		}
	}

	deductions := []struct {
		code, name string
		amount     decimal.Decimal
	}{
		{payroll.ComponentPF, "Provident Fund", structure.PFEmployee},
		{payroll.ComponentESI, "Employee State Insurance", structure.ESIEmployee},
		{payroll.ComponentProfessionalTax, "Professional Tax", structure.ProfessionalTax},
	}
	for _, d := range deductions {
		if !d.amount.IsPositive() {
			continue
		}
		if err := slip.AddComponent(payroll.ComponentKindDeduction, d.code, d.name, d.amount, false); err != nil {
			return nil, err
		}
	}

	tax := computeMonthlyIncomeTax(slip.TaxableIncome)
	if tax.IsPositive() {
		if err := slip.AddComponent(payroll.ComponentKindDeduction, payroll.ComponentIncomeTax, "Income Tax", tax, false); err != nil {
			return nil, err
		}
	}

	return slip, nil
}

// overtimeMultiplier resolves the pay multiplier from the employee's shift
func (s *PayrollService) overtimeMultiplier(ctx context.Context, emp *workforce.Employee, cache map[uuid.UUID]*attendance.Shift) decimal.Decimal {
	defaultMultiplier := decimal.NewFromFloat(1.5)
	if emp.ShiftID == nil {
		return defaultMultiplier
	}
	shift, ok := cache[*emp.ShiftID]
	if !ok {
		loaded, err := s.shiftRepo.FindByID(ctx, emp.TenantID, *emp.ShiftID)
		if err != nil {
			return defaultMultiplier
		}
		cache[*emp.ShiftID] = loaded
		shift = loaded
	}
	if shift == nil || !shift.OvertimeMultiplier.IsPositive() {
		return defaultMultiplier
	}
	return shift.OvertimeMultiplier
}

// departmentName resolves and caches the department display name
func (s *PayrollService) departmentName(ctx context.Context, companyID uuid.UUID, deptID *uuid.UUID, cache map[uuid.UUID]string) string {
	if deptID == nil {
		return ""
	}
	if name, ok := cache[*deptID]; ok {
		return name
	}
	dept, err := s.deptRepo.FindByID(ctx, *deptID)
	if err != nil {
		cache[*deptID] = ""
		return ""
	}
	cache[*deptID] = dept.Name
	return dept.Name
}

// unpaidLeaveDays sums approved unpaid leave per employee within the period
func (s *PayrollService) unpaidLeaveDays(ctx context.Context, companyID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	requests, err := s.leaveRepo.FindApprovedInRange(ctx, companyID, start, end)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load approved leave")
	}

	days := map[uuid.UUID]decimal.Decimal{}
	for _, r := range requests {
		if r.Type != leave.LeaveTypeUnpaid {
			continue
		}
		count := 0
		for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
			if d.Before(start) || d.After(end) {
				continue
			}
			count++
		}
		if count > 0 {
			days[r.EmployeeID] = days[r.EmployeeID].Add(decimal.NewFromInt(int64(count)))
		}
	}
	return days, nil
}

// Approve approves a processed run
func (s *PayrollService) Approve(ctx context.Context, companyID, runID, approverID uuid.UUID) (*PayrollRunDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	if err := run.Approve(approverID); err != nil {
		return nil, err
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payroll run")
	}

	s.publishDomainEvents(ctx, run)

	s.logger.Info("Payroll run approved",
		zap.String("run_id", runID.String()),
		zap.String("approver_id", approverID.String()))

	return toRunDTO(run, false), nil
}

// MarkPaid records disbursement of an approved run
func (s *PayrollService) MarkPaid(ctx context.Context, companyID, runID uuid.UUID, paymentDate time.Time, reference string) (*PayrollRunDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	if err := run.MarkPaid(paymentDate, reference); err != nil {
		return nil, err
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payroll run")
	}

	s.publishDomainEvents(ctx, run)

	s.logger.Info("Payroll run paid",
		zap.String("run_id", runID.String()),
		zap.String("reference", reference))

	return toRunDTO(run, false), nil
}

// Reopen sends a processed run back to draft for corrections
func (s *PayrollService) Reopen(ctx context.Context, companyID, runID uuid.UUID) (*PayrollRunDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	if err := run.ReopenForProcessing(); err != nil {
		return nil, err
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payroll run")
	}
	return toRunDTO(run, false), nil
}

// Cancel cancels a run that has not been approved or paid
func (s *PayrollService) Cancel(ctx context.Context, companyID, runID uuid.UUID) (*PayrollRunDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	if err := run.Cancel(); err != nil {
		return nil, err
	}
	if err := s.runRepo.Save(ctx, run); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payroll run")
	}
	return toRunDTO(run, false), nil
}

// GetRun retrieves a run with its payslips
func (s *PayrollService) GetRun(ctx context.Context, companyID, runID uuid.UUID) (*PayrollRunDTO, error) {
	run, err := s.findRun(ctx, companyID, runID)
	if err != nil {
		return nil, err
	}
	return toRunDTO(run, true), nil
}

// ListRuns retrieves runs, optionally filtered by status
func (s *PayrollService) ListRuns(ctx context.Context, companyID uuid.UUID, status string, filter shared.Filter) (*PayrollRunListResult, error) {
	var page *shared.Paginated[*payroll.PayrollRun]
	var err error
	if status != "" {
		page, err = s.runRepo.FindByStatus(ctx, companyID, payroll.RunStatus(status), filter)
	} else {
		page, err = s.runRepo.FindAll(ctx, companyID, filter)
	}
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list payroll runs")
	}

	dtos := make([]PayrollRunDTO, len(page.Items))
	for i, run := range page.Items {
		dtos[i] = *toRunDTO(run, false)
	}
	return &PayrollRunListResult{
		Runs:       dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// GetPayslip retrieves one payslip with its components
func (s *PayrollService) GetPayslip(ctx context.Context, companyID, payslipID uuid.UUID) (*PayslipDTO, error) {
	slip, err := s.runRepo.FindPayslip(ctx, companyID, payslipID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("PAYSLIP_NOT_FOUND", "Payslip not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find payslip")
	}
	return toPayslipDTO(slip, true), nil
}

// ListEmployeePayslips retrieves an employee's payslips, newest first
func (s *PayrollService) ListEmployeePayslips(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) ([]PayslipDTO, int64, error) {
	page, err := s.runRepo.FindPayslipsByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return nil, 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to list payslips")
	}

	dtos := make([]PayslipDTO, len(page.Items))
	for i, slip := range page.Items {
		dtos[i] = *toPayslipDTO(slip, false)
	}
	return dtos, page.Total, nil
}

func (s *PayrollService) findRun(ctx context.Context, companyID, id uuid.UUID) (*payroll.PayrollRun, error) {
	run, err := s.runRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("RUN_NOT_FOUND", "Payroll run not found")
		}
		s.logger.Error("Failed to find payroll run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find payroll run")
	}
	return run, nil
}

// publishDomainEvents publishes pending domain events from the run aggregate
func (s *PayrollService) publishDomainEvents(ctx context.Context, run *payroll.PayrollRun) {
	if s.eventPublisher == nil {
		return
	}
	events := run.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	run.ClearDomainEvents()
}

// Annual tax brackets applied to annualized taxable income
var taxBrackets = []struct {
	upTo decimal.Decimal // Zero means no upper bound
	rate decimal.Decimal
}{
	{decimal.NewFromInt(250000), decimal.Zero},
	{decimal.NewFromInt(500000), decimal.NewFromFloat(0.05)},
	{decimal.NewFromInt(1000000), decimal.NewFromFloat(0.20)},
	{decimal.Zero, decimal.NewFromFloat(0.30)},
}

// computeMonthlyIncomeTax annualizes the monthly taxable income, applies the
// progressive brackets and returns the monthly withholding
func computeMonthlyIncomeTax(taxableMonthly decimal.Decimal) decimal.Decimal {
	if !taxableMonthly.IsPositive() {
		return decimal.Zero
	}

	annual := taxableMonthly.Mul(decimal.NewFromInt(12))
	tax := decimal.Zero
	lower := decimal.Zero

	for _, bracket := range taxBrackets {
		if bracket.upTo.IsZero() {
			if annual.GreaterThan(lower) {
				tax = tax.Add(annual.Sub(lower).Mul(bracket.rate))
			}
			break
		}
		if annual.LessThanOrEqual(lower) {
			break
		}
		slab := decimal.Min(annual, bracket.upTo).Sub(lower)
		if slab.IsPositive() {
			tax = tax.Add(slab.Mul(bracket.rate))
		}
		lower = bracket.upTo
	}

	return tax.Div(decimal.NewFromInt(12)).Round(2)
}

func toRunDTO(run *payroll.PayrollRun, includePayslips bool) *PayrollRunDTO {
	dto := &PayrollRunDTO{
		ID:              run.ID,
		Number:          run.Number,
		Type:            string(run.Type),
		Status:          string(run.Status),
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		PayDate:         run.PayDate.Format("2006-01-02"),
		TotalEmployees:  run.TotalEmployees,
		TotalGrossPay:   run.TotalGrossPay.String(),
		TotalDeductions: run.TotalDeductions.String(),
		TotalNetPay:     run.TotalNetPay.String(),
		ProcessedAt:     run.ProcessedAt,
		ApprovedAt:      run.ApprovedAt,
		PaidAt:          run.PaidAt,
		CreatedAt:       run.CreatedAt,
	}
	if includePayslips {
		dto.Payslips = make([]PayslipDTO, len(run.Payslips))
		for i, slip := range run.Payslips {
			dto.Payslips[i] = *toPayslipDTO(slip, false)
		}
	}
	return dto
}

// toPayslipDTO converts a domain Payslip to its DTO
func toPayslipDTO(slip *payroll.Payslip, includeComponents bool) *PayslipDTO {
	dto := &PayslipDTO{
		ID:               slip.ID,
		PayrollRunID:     slip.PayrollRunID,
		EmployeeID:       slip.EmployeeID,
		EmployeeName:     slip.EmployeeName,
		EmployeeCode:     slip.EmployeeCode,
		Department:       slip.Department,
		Designation:      slip.Designation,
		BaseSalary:       slip.BaseSalary.String(),
		DaysWorked:       slip.DaysWorked.String(),
		DaysAbsent:       slip.DaysAbsent.String(),
		OvertimeHours:    slip.OvertimeHours.String(),
		GrossPay:         slip.GrossPay.String(),
		TotalDeductions:  slip.TotalDeductions.String(),
		NetPay:           slip.NetPay.String(),
		TaxableIncome:    slip.TaxableIncome.String(),
		TaxDeducted:      slip.TaxDeducted.String(),
		IsPaid:           slip.IsPaid,
		PaymentDate:      slip.PaymentDate,
		PaymentReference: slip.PaymentReference,
	}
	if includeComponents {
		dto.Components = make([]PayslipComponentDTO, len(slip.Components))
		for i, c := range slip.Components {
			dto.Components[i] = PayslipComponentDTO{
				Kind:      string(c.Kind),
				Code:      c.Code,
				Name:      c.Name,
				Amount:    c.Amount.String(),
				IsTaxable: c.IsTaxable,
			}
		}
	}
	return dto
}
