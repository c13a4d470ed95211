package workforce

import (
	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeEmployee = "Employee"

// Event type constants
const (
	EventTypeEmployeeHired               = "EmployeeHired"
	EventTypeEmployeeStatusChanged       = "EmployeeStatusChanged"
	EventTypeEmployeeTerminated          = "EmployeeTerminated"
	EventTypeEmployeeDepartmentChanged   = "EmployeeDepartmentChanged"
	EventTypeEmployeeCompensationChanged = "EmployeeCompensationChanged"
)

// EmployeeHiredEvent is published when a new employee is hired
type EmployeeHiredEvent struct {
	shared.BaseDomainEvent
	Code           string         `json:"code"`
	FullName       string         `json:"full_name"`
	EmploymentType EmploymentType `json:"employment_type"`
	HireDate       string         `json:"hire_date"`
}

// NewEmployeeHiredEvent creates a new EmployeeHiredEvent
func NewEmployeeHiredEvent(employee *Employee) *EmployeeHiredEvent {
	return &EmployeeHiredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeHired, AggregateTypeEmployee, employee.ID, employee.TenantID),
		Code:            employee.Code,
		FullName:        employee.Personal.FullName(),
		EmploymentType:  employee.EmploymentType,
		HireDate:        employee.HireDate.Format("2006-01-02"),
	}
}

// EmployeeStatusChangedEvent is published when an employee's status changes
type EmployeeStatusChangedEvent struct {
	shared.BaseDomainEvent
	Code      string         `json:"code"`
	OldStatus EmployeeStatus `json:"old_status"`
	NewStatus EmployeeStatus `json:"new_status"`
}

// NewEmployeeStatusChangedEvent creates a new EmployeeStatusChangedEvent
func NewEmployeeStatusChangedEvent(employee *Employee, oldStatus, newStatus EmployeeStatus) *EmployeeStatusChangedEvent {
	return &EmployeeStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeStatusChanged, AggregateTypeEmployee, employee.ID, employee.TenantID),
		Code:            employee.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// EmployeeTerminatedEvent is published when an employee is terminated
type EmployeeTerminatedEvent struct {
	shared.BaseDomainEvent
	Code            string         `json:"code"`
	OldStatus       EmployeeStatus `json:"old_status"`
	TerminationDate string         `json:"termination_date"`
	LastWorkingDate string         `json:"last_working_date"`
}

// NewEmployeeTerminatedEvent creates a new EmployeeTerminatedEvent
func NewEmployeeTerminatedEvent(employee *Employee, oldStatus EmployeeStatus) *EmployeeTerminatedEvent {
	event := &EmployeeTerminatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeTerminated, AggregateTypeEmployee, employee.ID, employee.TenantID),
		Code:            employee.Code,
		OldStatus:       oldStatus,
	}
	if employee.TerminationDate != nil {
		event.TerminationDate = employee.TerminationDate.Format("2006-01-02")
	}
	if employee.LastWorkingDate != nil {
		event.LastWorkingDate = employee.LastWorkingDate.Format("2006-01-02")
	}
	return event
}

// EmployeeDepartmentChangedEvent is published when an employee changes department
type EmployeeDepartmentChangedEvent struct {
	shared.BaseDomainEvent
	Code         string  `json:"code"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// NewEmployeeDepartmentChangedEvent creates a new EmployeeDepartmentChangedEvent
func NewEmployeeDepartmentChangedEvent(employee *Employee) *EmployeeDepartmentChangedEvent {
	event := &EmployeeDepartmentChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeDepartmentChanged, AggregateTypeEmployee, employee.ID, employee.TenantID),
		Code:            employee.Code,
	}
	if employee.DepartmentID != nil {
		id := employee.DepartmentID.String()
		event.DepartmentID = &id
	}
	return event
}

// EmployeeCompensationChangedEvent is published when pay terms change
type EmployeeCompensationChangedEvent struct {
	shared.BaseDomainEvent
	Code       string `json:"code"`
	BaseSalary string `json:"base_salary"`
	Currency   string `json:"currency"`
}

// NewEmployeeCompensationChangedEvent creates a new EmployeeCompensationChangedEvent
func NewEmployeeCompensationChangedEvent(employee *Employee) *EmployeeCompensationChangedEvent {
	return &EmployeeCompensationChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEmployeeCompensationChanged, AggregateTypeEmployee, employee.ID, employee.TenantID),
		Code:            employee.Code,
		BaseSalary:      employee.Compensation.BaseSalary.Amount().String(),
		Currency:        string(employee.Compensation.BaseSalary.Currency()),
	}
}
