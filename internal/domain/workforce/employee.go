package workforce

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// EmploymentType represents the type of employment contract
type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeTemporary  EmploymentType = "temporary"
	EmploymentTypeIntern     EmploymentType = "intern"
	EmploymentTypeConsultant EmploymentType = "consultant"
)

// IsValid checks if the type is a valid EmploymentType
func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract,
		EmploymentTypeTemporary, EmploymentTypeIntern, EmploymentTypeConsultant:
		return true
	}
	return false
}

// String returns the string representation of EmploymentType
func (t EmploymentType) String() string {
	return string(t)
}

// EmployeeStatus represents the lifecycle status of an employee
type EmployeeStatus string

const (
	EmployeeStatusProbation    EmployeeStatus = "probation"
	EmployeeStatusActive       EmployeeStatus = "active"
	EmployeeStatusOnLeave      EmployeeStatus = "on_leave"
	EmployeeStatusNoticePeriod EmployeeStatus = "notice_period"
	EmployeeStatusTerminated   EmployeeStatus = "terminated"
	EmployeeStatusInactive     EmployeeStatus = "inactive"
)

// IsValid checks if the status is a valid EmployeeStatus
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusProbation, EmployeeStatusActive, EmployeeStatusOnLeave,
		EmployeeStatusNoticePeriod, EmployeeStatusTerminated, EmployeeStatusInactive:
		return true
	}
	return false
}

// String returns the string representation of EmployeeStatus
func (s EmployeeStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the status is terminal
func (s EmployeeStatus) IsTerminal() bool {
	return s == EmployeeStatusTerminated
}

// IsWorking returns true if the employee is expected to attend work
func (s EmployeeStatus) IsWorking() bool {
	return s == EmployeeStatusProbation || s == EmployeeStatusActive || s == EmployeeStatusNoticePeriod
}

// Gender as recorded in the employee profile
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUndisclosed Gender = "undisclosed"
)

// MaritalStatus as recorded in the employee profile
type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
)

// PersonalInfo groups the personal details of an employee
type PersonalInfo struct {
	FirstName     string        `json:"first_name"`
	MiddleName    string        `json:"middle_name,omitempty"`
	LastName      string        `json:"last_name"`
	DateOfBirth   *time.Time    `json:"date_of_birth,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
	Nationality   string        `json:"nationality,omitempty"`
}

// FullName returns the concatenated display name
func (p PersonalInfo) FullName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ContactInfo groups contact details including the emergency contact
type ContactInfo struct {
	PersonalEmail        string `json:"personal_email,omitempty"`
	WorkEmail            string `json:"work_email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	EmergencyName        string `json:"emergency_name,omitempty"`
	EmergencyPhone       string `json:"emergency_phone,omitempty"`
	EmergencyRelation    string `json:"emergency_relation,omitempty"`
}

// Compensation groups the pay terms of an employee
type Compensation struct {
	BaseSalary       valueobject.Money `json:"base_salary"`
	PayFrequency     string            `json:"pay_frequency"` // Mirrors the company payroll frequency
	OvertimeEligible bool              `json:"overtime_eligible"`
}

// LeaveEntitlement is the yearly leave allowance recorded on the employee
type LeaveEntitlement struct {
	VacationDaysPerYear decimal.Decimal `json:"vacation_days_per_year"`
	SickDaysPerYear     decimal.Decimal `json:"sick_days_per_year"`
}

// BankDetails holds payout references for payroll
type BankDetails struct {
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
	TaxReference  string `json:"tax_reference,omitempty"`
}

// Employee represents an employee record within a company
// It is the aggregate root for workforce operations
type Employee struct {
	shared.TenantAggregateRoot
	Code             string // Unique within company, e.g. EMP20240001
	UserID           *uuid.UUID
	DepartmentID     *uuid.UUID
	ManagerID        *uuid.UUID
	ShiftID          *uuid.UUID
	Personal         PersonalInfo `gorm:"embedded"`
	Contact          ContactInfo  `gorm:"embedded"`
	Address          valueobject.Address
	EmploymentType   EmploymentType
	Status           EmployeeStatus
	JobTitle         string
	JobLevel         string
	WorkLocation     string
	HireDate         time.Time
	ProbationEndDate *time.Time
	ConfirmationDate *time.Time
	NoticeStartDate  *time.Time
	TerminationDate  *time.Time
	LastWorkingDate  *time.Time
	TerminationNote  string
	Compensation     Compensation     `gorm:"embedded"`
	Entitlement      LeaveEntitlement `gorm:"embedded"`
	Bank             BankDetails      `gorm:"embedded"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// GenerateEmployeeCode builds an employee code from hire year and a sequence number
func GenerateEmployeeCode(hireDate time.Time, sequence int) string {
	return fmt.Sprintf("EMP%d%04d", hireDate.Year(), sequence)
}

// NewEmployee hires a new employee into probation status
func NewEmployee(companyID uuid.UUID, code string, personal PersonalInfo, employmentType EmploymentType, hireDate time.Time) (*Employee, error) {
	if err := validateEmployeeCode(code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(personal.FirstName) == "" || strings.TrimSpace(personal.LastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	if !employmentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_EMPLOYMENT_TYPE", "Invalid employment type")
	}
	if hireDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_HIRE_DATE", "Hire date is required")
	}

	employee := &Employee{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Code:                strings.ToUpper(strings.TrimSpace(code)),
		Personal:            personal,
		EmploymentType:      employmentType,
		Status:              EmployeeStatusProbation,
		HireDate:            hireDate,
	}

	probationEnd := hireDate.AddDate(0, 3, 0)
	employee.ProbationEndDate = &probationEnd

	employee.AddDomainEvent(NewEmployeeHiredEvent(employee))

	return employee, nil
}

// LinkUser links the employee to a login user account
func (e *Employee) LinkUser(userID uuid.UUID) error {
	if e.UserID != nil && *e.UserID == userID {
		return nil
	}
	e.UserID = &userID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// AssignDepartment moves the employee to a department
func (e *Employee) AssignDepartment(departmentID *uuid.UUID) {
	e.DepartmentID = departmentID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeDepartmentChangedEvent(e))
}

// AssignManager sets the employee's reporting manager
func (e *Employee) AssignManager(managerID *uuid.UUID) error {
	if managerID != nil && *managerID == e.ID {
		return shared.NewDomainError("INVALID_MANAGER", "Employee cannot be their own manager")
	}
	e.ManagerID = managerID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// AssignShift sets the employee's working shift
func (e *Employee) AssignShift(shiftID *uuid.UUID) {
	e.ShiftID = shiftID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetJob sets the employee's job title, level and location
func (e *Employee) SetJob(title, level, location string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_JOB_TITLE", "Job title cannot be empty")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_JOB_TITLE", "Job title cannot exceed 100 characters")
	}

	e.JobTitle = strings.TrimSpace(title)
	e.JobLevel = strings.TrimSpace(level)
	e.WorkLocation = strings.TrimSpace(location)
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// UpdatePersonal updates the employee's personal details
func (e *Employee) UpdatePersonal(personal PersonalInfo) error {
	if strings.TrimSpace(personal.FirstName) == "" || strings.TrimSpace(personal.LastName) == "" {
		return shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	e.Personal = personal
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// UpdateContact updates contact and emergency contact details
func (e *Employee) UpdateContact(contact ContactInfo) {
	e.Contact = contact
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetAddress sets the employee's home address
func (e *Employee) SetAddress(address valueobject.Address) {
	e.Address = address
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetCompensation sets the pay terms
func (e *Employee) SetCompensation(comp Compensation) error {
	if comp.BaseSalary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Base salary cannot be negative")
	}
	e.Compensation = comp
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeCompensationChangedEvent(e))

	return nil
}

// SetEntitlement sets the yearly leave entitlements
func (e *Employee) SetEntitlement(entitlement LeaveEntitlement) error {
	if entitlement.VacationDaysPerYear.IsNegative() || entitlement.SickDaysPerYear.IsNegative() {
		return shared.NewDomainError("INVALID_ENTITLEMENT", "Leave entitlement cannot be negative")
	}
	e.Entitlement = entitlement
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// SetBankDetails sets the payout references
func (e *Employee) SetBankDetails(bank BankDetails) {
	e.Bank = bank
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Confirm converts a probation employee into an active one
func (e *Employee) Confirm(confirmationDate time.Time) error {
	if e.Status != EmployeeStatusProbation {
		return shared.NewDomainError("INVALID_STATE", "Only probation employees can be confirmed")
	}
	if confirmationDate.Before(e.HireDate) {
		return shared.NewDomainError("INVALID_CONFIRMATION_DATE", "Confirmation date cannot be before hire date")
	}

	e.Status = EmployeeStatusActive
	e.ConfirmationDate = &confirmationDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeStatusChangedEvent(e, EmployeeStatusProbation, EmployeeStatusActive))

	return nil
}

// PlaceOnLeave marks the employee as on extended leave
func (e *Employee) PlaceOnLeave() error {
	if !e.Status.IsWorking() {
		return shared.NewDomainError("INVALID_STATE", "Only working employees can be placed on leave")
	}

	oldStatus := e.Status
	e.Status = EmployeeStatusOnLeave
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeStatusChangedEvent(e, oldStatus, EmployeeStatusOnLeave))

	return nil
}

// ReturnFromLeave brings an on-leave employee back to active status
func (e *Employee) ReturnFromLeave() error {
	if e.Status != EmployeeStatusOnLeave {
		return shared.NewDomainError("INVALID_STATE", "Employee is not on leave")
	}

	e.Status = EmployeeStatusActive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeStatusChangedEvent(e, EmployeeStatusOnLeave, EmployeeStatusActive))

	return nil
}

// StartNotice puts the employee on notice period
func (e *Employee) StartNotice(noticeStart time.Time) error {
	if !e.Status.IsWorking() && e.Status != EmployeeStatusOnLeave {
		return shared.NewDomainError("INVALID_STATE", "Employee cannot start notice in current state")
	}
	if e.Status == EmployeeStatusNoticePeriod {
		return shared.NewDomainError("INVALID_STATE", "Employee is already on notice period")
	}

	oldStatus := e.Status
	e.Status = EmployeeStatusNoticePeriod
	e.NoticeStartDate = &noticeStart
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeStatusChangedEvent(e, oldStatus, EmployeeStatusNoticePeriod))

	return nil
}

// Terminate ends the employment. Terminal, cannot be reversed.
func (e *Employee) Terminate(terminationDate, lastWorkingDate time.Time, note string) error {
	if e.Status == EmployeeStatusTerminated {
		return shared.NewDomainError("INVALID_STATE", "Employee is already terminated")
	}
	if lastWorkingDate.Before(e.HireDate) {
		return shared.NewDomainError("INVALID_TERMINATION_DATE", "Last working date cannot be before hire date")
	}

	oldStatus := e.Status
	e.Status = EmployeeStatusTerminated
	e.TerminationDate = &terminationDate
	e.LastWorkingDate = &lastWorkingDate
	e.TerminationNote = note
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeTerminatedEvent(e, oldStatus))

	return nil
}

// Deactivate marks an employee record inactive without a termination flow
func (e *Employee) Deactivate() error {
	if e.Status == EmployeeStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Employee is already inactive")
	}
	if e.Status == EmployeeStatusTerminated {
		return shared.NewDomainError("INVALID_STATE", "Terminated employees cannot be deactivated")
	}

	oldStatus := e.Status
	e.Status = EmployeeStatusInactive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEmployeeStatusChangedEvent(e, oldStatus, EmployeeStatusInactive))

	return nil
}

// IsActive returns true if the employee is in a working status
func (e *Employee) IsActive() bool {
	return e.Status.IsWorking()
}

// IsOnProbation returns true if still on probation
func (e *Employee) IsOnProbation() bool {
	return e.Status == EmployeeStatusProbation
}

// YearsOfService returns the completed years of service as of a date
func (e *Employee) YearsOfService(asOf time.Time) int {
	if asOf.Before(e.HireDate) {
		return 0
	}
	years := asOf.Year() - e.HireDate.Year()
	anniversary := e.HireDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	return years
}

func validateEmployeeCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
