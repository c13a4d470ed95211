package benefits

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// EnrollmentStatus represents an employee's enrollment state in a plan
type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending_enrollment"
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusDeclined  EnrollmentStatus = "declined"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
	EnrollmentStatusSuspended EnrollmentStatus = "suspended"
)

// IsValid checks if the status is a valid EnrollmentStatus
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusEnrolled, EnrollmentStatusDeclined,
		EnrollmentStatusCancelled, EnrollmentStatusSuspended:
		return true
	}
	return false
}

// String returns the string representation of EnrollmentStatus
func (s EnrollmentStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the enrollment is in a terminal state
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentStatusDeclined || s == EnrollmentStatusCancelled
}

// CoverageLevel selects who the enrollment covers
type CoverageLevel string

const (
	CoverageEmployeeOnly   CoverageLevel = "employee_only"
	CoverageEmployeeSpouse CoverageLevel = "employee_spouse"
	CoverageFamily         CoverageLevel = "family"
)

// IsValid checks if the level is a valid CoverageLevel
func (c CoverageLevel) IsValid() bool {
	switch c {
	case CoverageEmployeeOnly, CoverageEmployeeSpouse, CoverageFamily:
		return true
	}
	return false
}

// Dependent is a covered family member on an enrollment
type Dependent struct {
	shared.BaseEntity
	EnrollmentID uuid.UUID
	FullName     string
	Relationship string // spouse, child, parent
	DateOfBirth  time.Time
}

// TableName returns the table name for GORM
func (Dependent) TableName() string {
	return "benefit_dependents"
}

// Enrollment links an employee to a benefit plan
type Enrollment struct {
	shared.TenantAggregateRoot
	EmployeeID uuid.UUID
	PlanID     uuid.UUID

	EnrollmentDate  time.Time
	EffectiveDate   time.Time
	TerminationDate *time.Time
	Status          EnrollmentStatus
	Coverage        CoverageLevel

	EmployeePremium    valueobject.Money
	EmployerPremium    valueobject.Money
	PayrollDeduction   valueobject.Money
	DeductionFrequency string

	Dependents []Dependent

	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectionReason string
}

// TableName returns the table name for GORM
func (Enrollment) TableName() string {
	return "benefit_enrollments"
}

// NewEnrollment starts a pending enrollment in a plan
func NewEnrollment(companyID, employeeID, planID uuid.UUID, effectiveDate time.Time, coverage CoverageLevel) (*Enrollment, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan ID is required")
	}
	if effectiveDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Effective date is required")
	}
	if !coverage.IsValid() {
		return nil, shared.NewDomainError("INVALID_COVERAGE", "Invalid coverage level")
	}

	return &Enrollment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		PlanID:              planID,
		EnrollmentDate:      time.Now(),
		EffectiveDate:       effectiveDate,
		Status:              EnrollmentStatusPending,
		Coverage:            coverage,
		DeductionFrequency:  "monthly",
	}, nil
}

// SetPremiums records the premium split and payroll deduction
func (e *Enrollment) SetPremiums(employeePremium, employerPremium, payrollDeduction valueobject.Money) error {
	if employeePremium.IsNegative() || employerPremium.IsNegative() || payrollDeduction.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Premiums cannot be negative")
	}
	e.EmployeePremium = employeePremium
	e.EmployerPremium = employerPremium
	e.PayrollDeduction = payrollDeduction
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// AddDependent adds a covered dependent before the enrollment is closed.
// maxDependents of zero means no limit.
func (e *Enrollment) AddDependent(fullName, relationship string, dateOfBirth time.Time, maxDependents int) error {
	if e.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Enrollment is closed")
	}
	if e.Coverage == CoverageEmployeeOnly {
		return shared.NewDomainError("INVALID_COVERAGE", "Employee-only coverage does not include dependents")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_DEPENDENT", "Dependent name is required")
	}
	if maxDependents > 0 && len(e.Dependents) >= maxDependents {
		return shared.NewDomainError("MAX_DEPENDENTS", "Plan dependent limit reached")
	}

	e.Dependents = append(e.Dependents, Dependent{
		BaseEntity:   shared.NewBaseEntity(),
		EnrollmentID: e.ID,
		FullName:     fullName,
		Relationship: relationship,
		DateOfBirth:  dateOfBirth,
	})
	e.UpdatedAt = time.Now()
	return nil
}

// Approve confirms a pending enrollment
func (e *Enrollment) Approve(approverID uuid.UUID) error {
	if e.Status != EnrollmentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending enrollments can be approved")
	}

	now := time.Now()
	e.Status = EnrollmentStatusEnrolled
	e.ApprovedBy = &approverID
	e.ApprovedAt = &now
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewEnrollmentApprovedEvent(e))

	return nil
}

// Decline rejects a pending enrollment
func (e *Enrollment) Decline(approverID uuid.UUID, reason string) error {
	if e.Status != EnrollmentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending enrollments can be declined")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "Decline reason is required")
	}
	e.Status = EnrollmentStatusDeclined
	e.ApprovedBy = &approverID
	e.RejectionReason = strings.TrimSpace(reason)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Suspend pauses an active enrollment, e.g. during unpaid leave
func (e *Enrollment) Suspend() error {
	if e.Status != EnrollmentStatusEnrolled {
		return shared.NewDomainError("INVALID_STATE", "Only active enrollments can be suspended")
	}
	e.Status = EnrollmentStatusSuspended
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Resume reactivates a suspended enrollment
func (e *Enrollment) Resume() error {
	if e.Status != EnrollmentStatusSuspended {
		return shared.NewDomainError("INVALID_STATE", "Only suspended enrollments can be resumed")
	}
	e.Status = EnrollmentStatusEnrolled
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Terminate ends coverage, e.g. on employee exit
func (e *Enrollment) Terminate(terminationDate time.Time) error {
	if e.Status != EnrollmentStatusEnrolled && e.Status != EnrollmentStatusSuspended {
		return shared.NewDomainError("INVALID_STATE", "Enrollment cannot be terminated in current state")
	}
	if terminationDate.Before(e.EffectiveDate) {
		return shared.NewDomainError("INVALID_DATE", "Termination cannot be before the effective date")
	}
	e.Status = EnrollmentStatusCancelled
	e.TerminationDate = &terminationDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// IsActiveOn reports whether coverage is in force on a date
func (e *Enrollment) IsActiveOn(date time.Time) bool {
	if e.Status != EnrollmentStatusEnrolled {
		return false
	}
	if date.Before(e.EffectiveDate) {
		return false
	}
	if e.TerminationDate != nil && date.After(*e.TerminationDate) {
		return false
	}
	return true
}
