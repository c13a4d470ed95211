package payroll

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypePayrollRun = "PayrollRun"

// Event type constants
const (
	EventTypePayrollRunCreated = "PayrollRunCreated"
	EventTypePayrollProcessed  = "PayrollProcessed"
	EventTypePayrollApproved   = "PayrollApproved"
	EventTypePayrollPaid       = "PayrollPaid"
)

// PayrollRunCreatedEvent is published when a run is created
type PayrollRunCreatedEvent struct {
	shared.BaseDomainEvent
	Number      string  `json:"number"`
	RunType     RunType `json:"run_type"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
}

// NewPayrollRunCreatedEvent creates a new PayrollRunCreatedEvent
func NewPayrollRunCreatedEvent(run *PayrollRun) *PayrollRunCreatedEvent {
	return &PayrollRunCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePayrollRunCreated, AggregateTypePayrollRun, run.ID, run.TenantID),
		Number:          run.Number,
		RunType:         run.Type,
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
	}
}

// PayrollProcessedEvent is published when processing completes
type PayrollProcessedEvent struct {
	shared.BaseDomainEvent
	Number         string `json:"number"`
	TotalEmployees int    `json:"total_employees"`
	TotalNetPay    string `json:"total_net_pay"`
}

// NewPayrollProcessedEvent creates a new PayrollProcessedEvent
func NewPayrollProcessedEvent(run *PayrollRun) *PayrollProcessedEvent {
	return &PayrollProcessedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePayrollProcessed, AggregateTypePayrollRun, run.ID, run.TenantID),
		Number:          run.Number,
		TotalEmployees:  run.TotalEmployees,
		TotalNetPay:     run.TotalNetPay.String(),
	}
}

// PayrollApprovedEvent is published when a run is approved
type PayrollApprovedEvent struct {
	shared.BaseDomainEvent
	Number         string    `json:"number"`
	TotalEmployees int       `json:"total_employees"`
	TotalGrossPay  string    `json:"total_gross_pay"`
	TotalNetPay    string    `json:"total_net_pay"`
	PeriodStart    string    `json:"period_start"`
	PeriodEnd      string    `json:"period_end"`
	ApprovedBy     uuid.UUID `json:"approved_by"`
}

// NewPayrollApprovedEvent creates a new PayrollApprovedEvent
func NewPayrollApprovedEvent(run *PayrollRun) *PayrollApprovedEvent {
	event := &PayrollApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePayrollApproved, AggregateTypePayrollRun, run.ID, run.TenantID),
		Number:          run.Number,
		TotalEmployees:  run.TotalEmployees,
		TotalGrossPay:   run.TotalGrossPay.String(),
		TotalNetPay:     run.TotalNetPay.String(),
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
	}
	if run.ApprovedBy != nil {
		event.ApprovedBy = *run.ApprovedBy
	}
	return event
}

// PayrollPaidEvent is published when a run is disbursed
type PayrollPaidEvent struct {
	shared.BaseDomainEvent
	Number      string `json:"number"`
	TotalNetPay string `json:"total_net_pay"`
	PayDate     string `json:"pay_date"`
}

// NewPayrollPaidEvent creates a new PayrollPaidEvent
func NewPayrollPaidEvent(run *PayrollRun) *PayrollPaidEvent {
	return &PayrollPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePayrollPaid, AggregateTypePayrollRun, run.ID, run.TenantID),
		Number:          run.Number,
		TotalNetPay:     run.TotalNetPay.String(),
		PayDate:         run.PayDate.Format("2006-01-02"),
	}
}
