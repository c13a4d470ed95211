package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// RunStatus represents the lifecycle state of a payroll run
type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusProcessing RunStatus = "processing"
	RunStatusProcessed  RunStatus = "processed"
	RunStatusApproved   RunStatus = "approved"
	RunStatusPaid       RunStatus = "paid"
	RunStatusCancelled  RunStatus = "cancelled"
)

// IsValid checks if the status is a valid RunStatus
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusDraft, RunStatusProcessing, RunStatusProcessed,
		RunStatusApproved, RunStatusPaid, RunStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of RunStatus
func (s RunStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the run is in a terminal state
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusPaid || s == RunStatusCancelled
}

// RunType represents the kind of payroll run
type RunType string

const (
	RunTypeRegular         RunType = "regular"
	RunTypeBonus           RunType = "bonus"
	RunTypeFinalSettlement RunType = "final_settlement"
	RunTypeAdvance         RunType = "advance"
)

// IsValid checks if the type is a valid RunType
func (t RunType) IsValid() bool {
	switch t {
	case RunTypeRegular, RunTypeBonus, RunTypeFinalSettlement, RunTypeAdvance:
		return true
	}
	return false
}

// ComponentKind distinguishes earnings from deductions on a payslip
type ComponentKind string

const (
	ComponentKindEarning   ComponentKind = "earning"
	ComponentKindDeduction ComponentKind = "deduction"
)

// Component codes
const (
	ComponentBasicSalary        = "basic_salary"
	ComponentHRA                = "hra"
	ComponentTransportAllowance = "transport_allowance"
	ComponentMedicalAllowance   = "medical_allowance"
	ComponentSpecialAllowance   = "special_allowance"
	ComponentPerformanceBonus   = "performance_bonus"
	ComponentOvertime           = "overtime"
	ComponentCommission         = "commission"
	ComponentPF                 = "pf"
	ComponentESI                = "esi"
	ComponentIncomeTax          = "income_tax"
	ComponentProfessionalTax    = "professional_tax"
	ComponentLoanEMI            = "loan_emi"
	ComponentAdvanceDeduction   = "advance_deduction"
	ComponentUnpaidLeave        = "unpaid_leave"
)

// PayslipComponent is one earning or deduction line on a payslip
type PayslipComponent struct {
	shared.BaseEntity
	PayslipID uuid.UUID
	Kind      ComponentKind
	Code      string
	Name      string
	Amount    decimal.Decimal
	IsTaxable bool
}

// TableName returns the table name for GORM
func (PayslipComponent) TableName() string {
	return "payslip_components"
}

// Payslip is one employee's pay within a payroll run.
// Employee name, code and department are snapshotted at processing time.
type Payslip struct {
	shared.BaseEntity
	PayrollRunID uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	EmployeeCode string
	Department   string
	Designation  string

	BaseSalary    decimal.Decimal
	DaysWorked    decimal.Decimal
	DaysAbsent    decimal.Decimal
	OvertimeHours decimal.Decimal

	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	TaxableIncome   decimal.Decimal
	TaxDeducted     decimal.Decimal

	Components []PayslipComponent

	IsPaid           bool
	PaymentDate      *time.Time
	PaymentReference string
}

// TableName returns the table name for GORM
func (Payslip) TableName() string {
	return "payslips"
}

// AddComponent appends a line and keeps the payslip totals consistent
func (p *Payslip) AddComponent(kind ComponentKind, code, name string, amount decimal.Decimal, taxable bool) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Component amount cannot be negative")
	}
	if strings.TrimSpace(code) == "" || strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_COMPONENT", "Component code and name are required")
	}

	p.Components = append(p.Components, PayslipComponent{
		BaseEntity: shared.NewBaseEntity(),
		PayslipID:  p.ID,
		Kind:       kind,
		Code:       code,
		Name:       name,
		Amount:     amount,
		IsTaxable:  taxable,
	})
	p.recompute()
	return nil
}

func (p *Payslip) recompute() {
	gross := decimal.Zero
	deductions := decimal.Zero
	taxable := decimal.Zero
	tax := decimal.Zero
	for _, c := range p.Components {
		switch c.Kind {
		case ComponentKindEarning:
			gross = gross.Add(c.Amount)
			if c.IsTaxable {
				taxable = taxable.Add(c.Amount)
			}
		case ComponentKindDeduction:
			deductions = deductions.Add(c.Amount)
			if c.Code == ComponentIncomeTax {
				tax = tax.Add(c.Amount)
			}
		}
	}
	p.GrossPay = gross
	p.TotalDeductions = deductions
	p.NetPay = gross.Sub(deductions)
	p.TaxableIncome = taxable
	p.TaxDeducted = tax
	p.UpdatedAt = time.Now()
}

// MarkPaid records the payment against the payslip
func (p *Payslip) MarkPaid(paymentDate time.Time, reference string) {
	p.IsPaid = true
	p.PaymentDate = &paymentDate
	p.PaymentReference = reference
	p.UpdatedAt = time.Now()
}

// PayrollRun is the aggregate root for one pay cycle.
// draft -> processing -> processed -> approved -> paid; cancellable until approved.
type PayrollRun struct {
	shared.TenantAggregateRoot
	Number      string
	Type        RunType
	Status      RunStatus
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time

	TotalEmployees  int
	TotalGrossPay   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal

	Payslips []*Payslip

	ProcessedAt *time.Time
	ProcessedBy *uuid.UUID
	ApprovedAt  *time.Time
	ApprovedBy  *uuid.UUID
	PaidAt      *time.Time
}

// TableName returns the table name for GORM
func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// GenerateRunNumber builds a run number like PAY-202406-0001
func GenerateRunNumber(periodStart time.Time, sequence int) string {
	return fmt.Sprintf("PAY-%s-%04d", periodStart.Format("200601"), sequence)
}

// NewPayrollRun creates a draft run for a pay period
func NewPayrollRun(companyID uuid.UUID, number string, runType RunType, periodStart, periodEnd, payDate time.Time) (*PayrollRun, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Run number is required")
	}
	if !runType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid payroll run type")
	}
	if periodStart.IsZero() || periodEnd.IsZero() || payDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period and pay date are required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot be before period start")
	}
	if payDate.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Pay date cannot be before the period start")
	}

	run := &PayrollRun{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Number:              strings.TrimSpace(number),
		Type:                runType,
		Status:              RunStatusDraft,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		PayDate:             payDate,
	}

	run.AddDomainEvent(NewPayrollRunCreatedEvent(run))

	return run, nil
}

// StartProcessing moves the draft into processing
func (r *PayrollRun) StartProcessing(processorID uuid.UUID) error {
	if r.Status != RunStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft runs can start processing")
	}
	r.Status = RunStatusProcessing
	r.ProcessedBy = &processorID
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// AddPayslip attaches a computed payslip while the run is processing
func (r *PayrollRun) AddPayslip(slip *Payslip) error {
	if r.Status != RunStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", "Payslips can only be added while processing")
	}
	if slip == nil || slip.EmployeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_PAYSLIP", "Payslip employee is required")
	}
	for _, existing := range r.Payslips {
		if existing.EmployeeID == slip.EmployeeID {
			return shared.NewDomainError("DUPLICATE_PAYSLIP", "Employee already has a payslip in this run")
		}
	}

	slip.PayrollRunID = r.ID
	r.Payslips = append(r.Payslips, slip)
	r.UpdatedAt = time.Now()
	return nil
}

// CompleteProcessing finalizes the computed payslips and totals
func (r *PayrollRun) CompleteProcessing() error {
	if r.Status != RunStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", "Only processing runs can be completed")
	}
	if len(r.Payslips) == 0 {
		return shared.NewDomainError("EMPTY_RUN", "Payroll run has no payslips")
	}

	gross := decimal.Zero
	deductions := decimal.Zero
	net := decimal.Zero
	for _, slip := range r.Payslips {
		gross = gross.Add(slip.GrossPay)
		deductions = deductions.Add(slip.TotalDeductions)
		net = net.Add(slip.NetPay)
	}

	now := time.Now()
	r.TotalEmployees = len(r.Payslips)
	r.TotalGrossPay = gross
	r.TotalDeductions = deductions
	r.TotalNetPay = net
	r.Status = RunStatusProcessed
	r.ProcessedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewPayrollProcessedEvent(r))

	return nil
}

// ReopenForProcessing sends a processed run back to draft for corrections
func (r *PayrollRun) ReopenForProcessing() error {
	if r.Status != RunStatusProcessed {
		return shared.NewDomainError("INVALID_STATE", "Only processed runs can be reopened")
	}
	r.Status = RunStatusDraft
	r.Payslips = nil
	r.TotalEmployees = 0
	r.TotalGrossPay = decimal.Zero
	r.TotalDeductions = decimal.Zero
	r.TotalNetPay = decimal.Zero
	r.ProcessedAt = nil
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Approve approves a processed run. The processor cannot approve their own run.
func (r *PayrollRun) Approve(approverID uuid.UUID) error {
	if r.Status != RunStatusProcessed {
		return shared.NewDomainError("INVALID_STATE", "Only processed runs can be approved")
	}
	if r.ProcessedBy != nil && *r.ProcessedBy == approverID {
		return shared.NewDomainError("SELF_APPROVAL", "Payroll cannot be approved by the user who processed it")
	}

	now := time.Now()
	r.Status = RunStatusApproved
	r.ApprovedBy = &approverID
	r.ApprovedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewPayrollApprovedEvent(r))

	return nil
}

// MarkPaid records disbursement of an approved run
func (r *PayrollRun) MarkPaid(paymentDate time.Time, reference string) error {
	if r.Status != RunStatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Only approved runs can be marked paid")
	}

	for _, slip := range r.Payslips {
		slip.MarkPaid(paymentDate, reference)
	}

	now := time.Now()
	r.Status = RunStatusPaid
	r.PaidAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewPayrollPaidEvent(r))

	return nil
}

// Cancel cancels a run that has not been approved or paid
func (r *PayrollRun) Cancel() error {
	switch r.Status {
	case RunStatusDraft, RunStatusProcessing, RunStatusProcessed:
	default:
		return shared.NewDomainError("INVALID_STATE", "Run cannot be cancelled in current state")
	}
	r.Status = RunStatusCancelled
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// PayslipFor returns the payslip for an employee, if present
func (r *PayrollRun) PayslipFor(employeeID uuid.UUID) *Payslip {
	for _, slip := range r.Payslips {
		if slip.EmployeeID == employeeID {
			return slip
		}
	}
	return nil
}

// OverlapsPeriod reports whether another period overlaps this run's period
func (r *PayrollRun) OverlapsPeriod(start, end time.Time) bool {
	return !r.PeriodEnd.Before(start) && !end.Before(r.PeriodStart)
}
