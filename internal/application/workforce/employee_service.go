package workforce

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
)

// EmployeeService handles employee lifecycle operations
type EmployeeService struct {
	employeeRepo   workforce.EmployeeRepository
	companyRepo    identity.CompanyRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo workforce.EmployeeRepository,
	companyRepo identity.CompanyRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *EmployeeService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// HireEmployeeInput contains input for hiring an employee
type HireEmployeeInput struct {
	CompanyID      uuid.UUID
	Code           string // Generated from hire year and sequence when empty
	FirstName      string
	MiddleName     string
	LastName       string
	DateOfBirth    *time.Time
	Gender         string
	MaritalStatus  string
	Nationality    string
	EmploymentType string
	HireDate       time.Time
	DepartmentID   *uuid.UUID
	ManagerID      *uuid.UUID
	ShiftID        *uuid.UUID
	JobTitle       string
	JobLevel       string
	WorkLocation   string
	PersonalEmail  string
	WorkEmail      string
	Phone          string
}

// UpdateEmployeeInput contains input for updating employee details
type UpdateEmployeeInput struct {
	CompanyID         uuid.UUID
	ID                uuid.UUID
	FirstName         *string
	MiddleName        *string
	LastName          *string
	DateOfBirth       *time.Time
	Gender            *string
	MaritalStatus     *string
	Nationality       *string
	PersonalEmail     *string
	WorkEmail         *string
	Phone             *string
	EmergencyName     *string
	EmergencyPhone    *string
	EmergencyRelation *string
}

// CompensationInput contains input for setting employee compensation
type CompensationInput struct {
	BaseSalary       decimal.Decimal
	Currency         string
	PayFrequency     string
	OvertimeEligible bool
}

// EntitlementInput contains input for setting the yearly leave allowance
type EntitlementInput struct {
	VacationDaysPerYear decimal.Decimal
	SickDaysPerYear     decimal.Decimal
}

// BankDetailsInput contains input for setting payout references
type BankDetailsInput struct {
	BankName      string
	AccountNumber string
	RoutingNumber string
	TaxReference  string
}

// TerminateEmployeeInput contains input for terminating an employee
type TerminateEmployeeInput struct {
	CompanyID       uuid.UUID
	ID              uuid.UUID
	TerminationDate time.Time
	LastWorkingDate time.Time
	Note            string
}

// EmployeeDTO represents employee data transfer object
type EmployeeDTO struct {
	ID               uuid.UUID  `json:"id"`
	CompanyID        uuid.UUID  `json:"company_id"`
	Code             string     `json:"code"`
	UserID           *uuid.UUID `json:"user_id,omitempty"`
	FullName         string     `json:"full_name"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	WorkEmail        string     `json:"work_email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	DepartmentID     *uuid.UUID `json:"department_id,omitempty"`
	ManagerID        *uuid.UUID `json:"manager_id,omitempty"`
	ShiftID          *uuid.UUID `json:"shift_id,omitempty"`
	EmploymentType   string     `json:"employment_type"`
	Status           string     `json:"status"`
	JobTitle         string     `json:"job_title,omitempty"`
	JobLevel         string     `json:"job_level,omitempty"`
	WorkLocation     string     `json:"work_location,omitempty"`
	HireDate         time.Time  `json:"hire_date"`
	ProbationEndDate *time.Time `json:"probation_end_date,omitempty"`
	ConfirmationDate *time.Time `json:"confirmation_date,omitempty"`
	TerminationDate  *time.Time `json:"termination_date,omitempty"`
	LastWorkingDate  *time.Time `json:"last_working_date,omitempty"`
	BaseSalary       string     `json:"base_salary,omitempty"`
	PayFrequency     string     `json:"pay_frequency,omitempty"`
	OvertimeEligible bool       `json:"overtime_eligible"`
	VacationDays     string     `json:"vacation_days_per_year,omitempty"`
	SickDays         string     `json:"sick_days_per_year,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// EmployeeFilter represents filter for querying employees
type EmployeeFilter struct {
	Page         int
	PageSize     int
	SortBy       string
	SortDir      string
	Keyword      string
	Status       string
	DepartmentID *uuid.UUID
}

// ToSharedFilter converts EmployeeFilter to shared.Filter
func (f EmployeeFilter) ToSharedFilter() shared.Filter {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  f.SortBy,
		OrderDir: f.SortDir,
		Search:   f.Keyword,
	}
}

// EmployeeListResult represents paginated employee list result
type EmployeeListResult struct {
	Employees  []EmployeeDTO `json:"employees"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// Hire creates a new employee record in probation status
func (s *EmployeeService) Hire(ctx context.Context, input HireEmployeeInput) (*EmployeeDTO, error) {
	s.logger.Info("Hiring employee",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("name", input.FirstName+" "+input.LastName))

	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find company")
	}
	if !company.IsActive() {
		return nil, shared.NewDomainError("COMPANY_INACTIVE", "Company is not active")
	}

	headcount, err := s.employeeRepo.Count(ctx, input.CompanyID, shared.DefaultFilter())
	if err != nil {
		s.logger.Error("Failed to count employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to count employees")
	}
	if !company.CanAddEmployee(int(headcount)) {
		return nil, shared.NewDomainError("EMPLOYEE_LIMIT_REACHED", "Employee limit for the current plan reached")
	}

	code := input.Code
	if code == "" {
		seq, err := s.employeeRepo.NextSequence(ctx, input.CompanyID)
		if err != nil {
			s.logger.Error("Failed to allocate employee sequence", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to allocate employee code")
		}
		code = workforce.GenerateEmployeeCode(input.HireDate, seq)
	} else {
		exists, err := s.employeeRepo.ExistsByCode(ctx, input.CompanyID, code)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check code availability")
		}
		if exists {
			return nil, shared.NewDomainError("CODE_EXISTS", "Employee code already exists")
		}
	}

	personal := workforce.PersonalInfo{
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		DateOfBirth:   input.DateOfBirth,
		Gender:        workforce.Gender(input.Gender),
		MaritalStatus: workforce.MaritalStatus(input.MaritalStatus),
		Nationality:   input.Nationality,
	}

	employee, err := workforce.NewEmployee(input.CompanyID, code, personal,
		workforce.EmploymentType(input.EmploymentType), input.HireDate)
	if err != nil {
		return nil, err
	}

	if input.DepartmentID != nil {
		employee.AssignDepartment(input.DepartmentID)
	}
	if input.ManagerID != nil {
		if err := employee.AssignManager(input.ManagerID); err != nil {
			return nil, err
		}
	}
	if input.ShiftID != nil {
		employee.AssignShift(input.ShiftID)
	}
	if input.JobTitle != "" {
		if err := employee.SetJob(input.JobTitle, input.JobLevel, input.WorkLocation); err != nil {
			return nil, err
		}
	}
	if input.PersonalEmail != "" || input.WorkEmail != "" || input.Phone != "" {
		employee.UpdateContact(workforce.ContactInfo{
			PersonalEmail: input.PersonalEmail,
			WorkEmail:     input.WorkEmail,
			Phone:         input.Phone,
		})
	}

	// Collect domain events before save
	events := employee.GetDomainEvents()
	employee.ClearDomainEvents()

	// Save with events atomically (transactional outbox pattern)
	if err := s.employeeRepo.SaveWithEvents(ctx, employee, events); err != nil {
		s.logger.Error("Failed to save employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save employee")
	}

	s.logger.Info("Employee hired",
		zap.String("employee_id", employee.ID.String()),
		zap.String("code", employee.Code))

	return toEmployeeDTO(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeDTO(employee), nil
}

// GetByCode retrieves an employee by code
func (s *EmployeeService) GetByCode(ctx context.Context, companyID uuid.UUID, code string) (*EmployeeDTO, error) {
	employee, err := s.employeeRepo.FindByCode(ctx, companyID, code)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	return toEmployeeDTO(employee), nil
}

// List retrieves a paginated list of employees
func (s *EmployeeService) List(ctx context.Context, companyID uuid.UUID, filter EmployeeFilter) (*EmployeeListResult, error) {
	sharedFilter := filter.ToSharedFilter()

	var employees []workforce.Employee
	var err error

	switch {
	case filter.DepartmentID != nil:
		employees, err = s.employeeRepo.FindByDepartment(ctx, companyID, *filter.DepartmentID, sharedFilter)
	case filter.Status != "":
		employees, err = s.employeeRepo.FindByStatus(ctx, companyID, workforce.EmployeeStatus(filter.Status), sharedFilter)
	default:
		employees, err = s.employeeRepo.FindAll(ctx, companyID, sharedFilter)
	}
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list employees")
	}

	total, err := s.employeeRepo.Count(ctx, companyID, sharedFilter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to count employees")
	}

	pageSize := sharedFilter.PageSize
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = *toEmployeeDTO(&e)
	}

	return &EmployeeListResult{
		Employees:  dtos,
		Total:      total,
		Page:       sharedFilter.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetDirectReports retrieves the direct reports of a manager
func (s *EmployeeService) GetDirectReports(ctx context.Context, companyID, managerID uuid.UUID) ([]EmployeeDTO, error) {
	reports, err := s.employeeRepo.FindByManager(ctx, companyID, managerID)
	if err != nil {
		s.logger.Error("Failed to list direct reports", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list direct reports")
	}

	dtos := make([]EmployeeDTO, len(reports))
	for i, e := range reports {
		dtos[i] = *toEmployeeDTO(&e)
	}
	return dtos, nil
}

// Update updates an employee's personal and contact details
func (s *EmployeeService) Update(ctx context.Context, input UpdateEmployeeInput) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	personal := employee.Personal
	if input.FirstName != nil {
		personal.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		personal.MiddleName = *input.MiddleName
	}
	if input.LastName != nil {
		personal.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		personal.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		personal.Gender = workforce.Gender(*input.Gender)
	}
	if input.MaritalStatus != nil {
		personal.MaritalStatus = workforce.MaritalStatus(*input.MaritalStatus)
	}
	if input.Nationality != nil {
		personal.Nationality = *input.Nationality
	}
	if err := employee.UpdatePersonal(personal); err != nil {
		return nil, err
	}

	contact := employee.Contact
	if input.PersonalEmail != nil {
		contact.PersonalEmail = *input.PersonalEmail
	}
	if input.WorkEmail != nil {
		contact.WorkEmail = *input.WorkEmail
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.EmergencyName != nil {
		contact.EmergencyName = *input.EmergencyName
	}
	if input.EmergencyPhone != nil {
		contact.EmergencyPhone = *input.EmergencyPhone
	}
	if input.EmergencyRelation != nil {
		contact.EmergencyRelation = *input.EmergencyRelation
	}
	employee.UpdateContact(contact)

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		s.logger.Error("Failed to update employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update employee")
	}

	return toEmployeeDTO(employee), nil
}

// SetJob updates the employee's position
func (s *EmployeeService) SetJob(ctx context.Context, companyID, id uuid.UUID, title, level, location string) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := employee.SetJob(title, level, location); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// AssignDepartment moves the employee to a department
func (s *EmployeeService) AssignDepartment(ctx context.Context, companyID, id uuid.UUID, departmentID *uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	employee.AssignDepartment(departmentID)
	return s.save(ctx, employee)
}

// AssignManager sets the employee's reporting manager
func (s *EmployeeService) AssignManager(ctx context.Context, companyID, id uuid.UUID, managerID *uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if managerID != nil {
		if _, err := s.findEmployee(ctx, companyID, *managerID); err != nil {
			return nil, shared.NewDomainError("MANAGER_NOT_FOUND", "Manager not found")
		}
	}
	if err := employee.AssignManager(managerID); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// AssignShift sets the employee's working shift
func (s *EmployeeService) AssignShift(ctx context.Context, companyID, id uuid.UUID, shiftID *uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	employee.AssignShift(shiftID)
	return s.save(ctx, employee)
}

// LinkUser links an employee to a login user account
func (s *EmployeeService) LinkUser(ctx context.Context, companyID, id, userID uuid.UUID) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := employee.LinkUser(userID); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// SetCompensation updates the employee's pay terms
func (s *EmployeeService) SetCompensation(ctx context.Context, companyID, id uuid.UUID, input CompensationInput) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	currency := valueobject.Currency(input.Currency)
	if input.Currency == "" {
		currency = valueobject.DefaultCurrency
	}
	salary, err := valueobject.NewMoney(input.BaseSalary, currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SALARY", err.Error())
	}

	if err := employee.SetCompensation(workforce.Compensation{
		BaseSalary:       salary,
		PayFrequency:     input.PayFrequency,
		OvertimeEligible: input.OvertimeEligible,
	}); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// SetEntitlement updates the employee's yearly leave allowance
func (s *EmployeeService) SetEntitlement(ctx context.Context, companyID, id uuid.UUID, input EntitlementInput) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := employee.SetEntitlement(workforce.LeaveEntitlement{
		VacationDaysPerYear: input.VacationDaysPerYear,
		SickDaysPerYear:     input.SickDaysPerYear,
	}); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// SetBankDetails updates the employee's payout references
func (s *EmployeeService) SetBankDetails(ctx context.Context, companyID, id uuid.UUID, input BankDetailsInput) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	employee.SetBankDetails(workforce.BankDetails{
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		RoutingNumber: input.RoutingNumber,
		TaxReference:  input.TaxReference,
	})
	return s.save(ctx, employee)
}

// Confirm completes the employee's probation
func (s *EmployeeService) Confirm(ctx context.Context, companyID, id uuid.UUID, confirmationDate time.Time) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := employee.Confirm(confirmationDate); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// StartNotice puts the employee on their notice period
func (s *EmployeeService) StartNotice(ctx context.Context, companyID, id uuid.UUID, noticeStart time.Time) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := employee.StartNotice(noticeStart); err != nil {
		return nil, err
	}
	return s.save(ctx, employee)
}

// Terminate ends the employee's employment
func (s *EmployeeService) Terminate(ctx context.Context, input TerminateEmployeeInput) (*EmployeeDTO, error) {
	employee, err := s.findEmployee(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}
	if err := employee.Terminate(input.TerminationDate, input.LastWorkingDate, input.Note); err != nil {
		return nil, err
	}

	s.logger.Info("Employee terminated",
		zap.String("employee_id", input.ID.String()),
		zap.Time("last_working_date", input.LastWorkingDate))

	return s.save(ctx, employee)
}

// HeadcountStats returns the employee counts per status and department
func (s *EmployeeService) HeadcountStats(ctx context.Context, companyID uuid.UUID) (*HeadcountStatsDTO, error) {
	stats := &HeadcountStatsDTO{ByDepartment: map[uuid.UUID]int64{}}

	counts := []struct {
		status workforce.EmployeeStatus
		target *int64
	}{
		{workforce.EmployeeStatusProbation, &stats.Probation},
		{workforce.EmployeeStatusActive, &stats.Active},
		{workforce.EmployeeStatusOnLeave, &stats.OnLeave},
		{workforce.EmployeeStatusNoticePeriod, &stats.Notice},
		{workforce.EmployeeStatusTerminated, &stats.Terminated},
	}
	for _, c := range counts {
		count, err := s.employeeRepo.CountByStatus(ctx, companyID, c.status)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to get headcount stats")
		}
		*c.target = count
		stats.Total += count
	}

	byDept, err := s.employeeRepo.CountByDepartment(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to get headcount stats")
	}
	stats.ByDepartment = byDept

	return stats, nil
}

// HeadcountStatsDTO represents headcount statistics
type HeadcountStatsDTO struct {
	Total        int64               `json:"total"`
	Probation    int64               `json:"probation"`
	Active       int64               `json:"active"`
	OnLeave      int64               `json:"on_leave"`
	Notice       int64               `json:"notice"`
	Terminated   int64               `json:"terminated"`
	ByDepartment map[uuid.UUID]int64 `json:"by_department"`
}

func (s *EmployeeService) findEmployee(ctx context.Context, companyID, id uuid.UUID) (*workforce.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		s.logger.Error("Failed to find employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	return employee, nil
}

func (s *EmployeeService) save(ctx context.Context, employee *workforce.Employee) (*EmployeeDTO, error) {
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		s.logger.Error("Failed to save employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save employee")
	}
	s.publishDomainEvents(ctx, employee)
	return toEmployeeDTO(employee), nil
}

// publishDomainEvents publishes pending domain events from the employee aggregate
func (s *EmployeeService) publishDomainEvents(ctx context.Context, employee *workforce.Employee) {
	if s.eventPublisher == nil {
		return
	}
	events := employee.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	employee.ClearDomainEvents()
}

// toEmployeeDTO converts domain Employee to EmployeeDTO
func toEmployeeDTO(e *workforce.Employee) *EmployeeDTO {
	dto := &EmployeeDTO{
		ID:               e.ID,
		CompanyID:        e.TenantID,
		Code:             e.Code,
		UserID:           e.UserID,
		FullName:         e.Personal.FullName(),
		FirstName:        e.Personal.FirstName,
		LastName:         e.Personal.LastName,
		WorkEmail:        e.Contact.WorkEmail,
		Phone:            e.Contact.Phone,
		DepartmentID:     e.DepartmentID,
		ManagerID:        e.ManagerID,
		ShiftID:          e.ShiftID,
		EmploymentType:   string(e.EmploymentType),
		Status:           string(e.Status),
		JobTitle:         e.JobTitle,
		JobLevel:         e.JobLevel,
		WorkLocation:     e.WorkLocation,
		HireDate:         e.HireDate,
		ProbationEndDate: e.ProbationEndDate,
		ConfirmationDate: e.ConfirmationDate,
		TerminationDate:  e.TerminationDate,
		LastWorkingDate:  e.LastWorkingDate,
		PayFrequency:     e.Compensation.PayFrequency,
		OvertimeEligible: e.Compensation.OvertimeEligible,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if !e.Compensation.BaseSalary.IsZero() {
		dto.BaseSalary = e.Compensation.BaseSalary.String()
	}
	if !e.Entitlement.VacationDaysPerYear.IsZero() {
		dto.VacationDays = e.Entitlement.VacationDaysPerYear.String()
	}
	if !e.Entitlement.SickDaysPerYear.IsZero() {
		dto.SickDays = e.Entitlement.SickDaysPerYear.String()
	}
	return dto
}
