package benefits

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeEnrollment = "BenefitEnrollment"

// Event type constants
const (
	EventTypeEnrollmentApproved = "BenefitEnrollmentApproved"
)

// EnrollmentApprovedEvent is published when an enrollment is confirmed
type EnrollmentApprovedEvent struct {
	shared.BaseDomainEvent
	EmployeeID       uuid.UUID     `json:"employee_id"`
	PlanID           uuid.UUID     `json:"plan_id"`
	Coverage         CoverageLevel `json:"coverage"`
	PayrollDeduction string        `json:"payroll_deduction"`
}

// NewEnrollmentApprovedEvent creates a new EnrollmentApprovedEvent
func NewEnrollmentApprovedEvent(e *Enrollment) *EnrollmentApprovedEvent {
	return &EnrollmentApprovedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeEnrollmentApproved, AggregateTypeEnrollment, e.ID, e.TenantID),
		EmployeeID:       e.EmployeeID,
		PlanID:           e.PlanID,
		Coverage:         e.Coverage,
		PayrollDeduction: e.PayrollDeduction.String(),
	}
}
