package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	workforceapp "github.com/hrms/backend/internal/application/workforce"
)

// EmployeeHandler handles employee-related API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *workforceapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *workforceapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// HireEmployeeRequest represents a request to hire a new employee
// @Description	Request body for hiring a new employee
type HireEmployeeRequest struct {
	Code           string     `json:"code" binding:"max=20" example:"EMP20260001"`
	FirstName      string     `json:"first_name" binding:"required,min=1,max=100" example:"Amira"`
	MiddleName     string     `json:"middle_name" binding:"max=100" example:""`
	LastName       string     `json:"last_name" binding:"required,min=1,max=100" example:"Hassan"`
	DateOfBirth    *time.Time `json:"date_of_birth" example:"1992-04-17T00:00:00Z"`
	Gender         string     `json:"gender" binding:"max=20" example:"female"`
	MaritalStatus  string     `json:"marital_status" binding:"max=20" example:"single"`
	Nationality    string     `json:"nationality" binding:"max=100" example:"Egyptian"`
	EmploymentType string     `json:"employment_type" binding:"required,oneof=full_time part_time contract intern" example:"full_time"`
	HireDate       time.Time  `json:"hire_date" binding:"required" example:"2026-09-01T00:00:00Z"`
	DepartmentID   *uuid.UUID `json:"department_id" example:"11111111-1111-1111-1111-111111111111"`
	ManagerID      *uuid.UUID `json:"manager_id"`
	ShiftID        *uuid.UUID `json:"shift_id"`
	JobTitle       string     `json:"job_title" binding:"max=100" example:"Software Engineer"`
	JobLevel       string     `json:"job_level" binding:"max=50" example:"L3"`
	WorkLocation   string     `json:"work_location" binding:"max=100" example:"Cairo HQ"`
	PersonalEmail  string     `json:"personal_email" binding:"omitempty,email,max=200"`
	WorkEmail      string     `json:"work_email" binding:"omitempty,email,max=200" example:"amira.hassan@company.com"`
	Phone          string     `json:"phone" binding:"max=50" example:"+20100000000"`
}

// UpdateEmployeeRequest represents a request to update an employee's personal details
//
//	@Description	Request body for updating an employee
type UpdateEmployeeRequest struct {
	FirstName         *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	MiddleName        *string    `json:"middle_name" binding:"omitempty,max=100"`
	LastName          *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	Gender            *string    `json:"gender" binding:"omitempty,max=20"`
	MaritalStatus     *string    `json:"marital_status" binding:"omitempty,max=20"`
	Nationality       *string    `json:"nationality" binding:"omitempty,max=100"`
	PersonalEmail     *string    `json:"personal_email" binding:"omitempty,email,max=200"`
	WorkEmail         *string    `json:"work_email" binding:"omitempty,email,max=200"`
	Phone             *string    `json:"phone" binding:"omitempty,max=50"`
	EmergencyName     *string    `json:"emergency_name" binding:"omitempty,max=100"`
	EmergencyPhone    *string    `json:"emergency_phone" binding:"omitempty,max=50"`
	EmergencyRelation *string    `json:"emergency_relation" binding:"omitempty,max=50"`
}

// SetJobRequest represents a request to change an employee's job assignment
type SetJobRequest struct {
	JobTitle     string `json:"job_title" binding:"required,max=100" example:"Senior Software Engineer"`
	JobLevel     string `json:"job_level" binding:"max=50" example:"L4"`
	WorkLocation string `json:"work_location" binding:"max=100" example:"Cairo HQ"`
}

// AssignDepartmentRequest represents a request to move an employee to a department
type AssignDepartmentRequest struct {
	DepartmentID *uuid.UUID `json:"department_id"`
}

// AssignManagerRequest represents a request to set an employee's manager
type AssignManagerRequest struct {
	ManagerID *uuid.UUID `json:"manager_id"`
}

// AssignShiftRequest represents a request to place an employee on a shift
type AssignShiftRequest struct {
	ShiftID *uuid.UUID `json:"shift_id"`
}

// LinkUserRequest represents a request to link an employee to a login account
type LinkUserRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// SetCompensationRequest represents a request to set an employee's pay terms
type SetCompensationRequest struct {
	BaseSalary       decimal.Decimal `json:"base_salary" binding:"required" example:"85000"`
	Currency         string          `json:"currency" binding:"required,len=3" example:"USD"`
	PayFrequency     string          `json:"pay_frequency" binding:"required,oneof=weekly biweekly monthly" example:"monthly"`
	OvertimeEligible bool            `json:"overtime_eligible" example:"true"`
}

// SetEntitlementRequest represents a request to set yearly leave allowances
type SetEntitlementRequest struct {
	VacationDaysPerYear decimal.Decimal `json:"vacation_days_per_year" binding:"required" example:"21"`
	SickDaysPerYear     decimal.Decimal `json:"sick_days_per_year" binding:"required" example:"10"`
}

// SetBankDetailsRequest represents a request to set payout references
type SetBankDetailsRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=200"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
	RoutingNumber string `json:"routing_number" binding:"max=50"`
	TaxReference  string `json:"tax_reference" binding:"max=50"`
}

// ConfirmEmployeeRequest represents a request to confirm a probationary employee
type ConfirmEmployeeRequest struct {
	ConfirmationDate time.Time `json:"confirmation_date" binding:"required" example:"2026-12-01T00:00:00Z"`
}

// StartNoticeRequest represents a request to start an employee's notice period
type StartNoticeRequest struct {
	NoticeStart time.Time `json:"notice_start" binding:"required" example:"2026-10-01T00:00:00Z"`
}

// TerminateEmployeeRequest represents a request to terminate an employee
type TerminateEmployeeRequest struct {
	TerminationDate time.Time `json:"termination_date" binding:"required" example:"2026-10-31T00:00:00Z"`
	LastWorkingDate time.Time `json:"last_working_date" binding:"required" example:"2026-10-31T00:00:00Z"`
	Note            string    `json:"note" binding:"max=500"`
}

// Hire godoc
// @ID           hireEmployee
//
//	@Summary		Hire a new employee
//	@Description	Create a new employee record in probation status
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			request		body		HireEmployeeRequest	true	"Employee hire request"
//	@Success		201			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees [post]
func (h *EmployeeHandler) Hire(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req HireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.HireEmployeeInput{
		CompanyID:      companyID,
		Code:           req.Code,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		MaritalStatus:  req.MaritalStatus,
		Nationality:    req.Nationality,
		EmploymentType: req.EmploymentType,
		HireDate:       req.HireDate,
		DepartmentID:   req.DepartmentID,
		ManagerID:      req.ManagerID,
		ShiftID:        req.ShiftID,
		JobTitle:       req.JobTitle,
		JobLevel:       req.JobLevel,
		WorkLocation:   req.WorkLocation,
		PersonalEmail:  req.PersonalEmail,
		WorkEmail:      req.WorkEmail,
		Phone:          req.Phone,
	}

	employee, err := h.employeeService.Hire(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, employee)
}

// GetByID godoc
// @ID           getEmployeeById
//
//	@Summary		Get employee by ID
//	@Description	Retrieve an employee by their ID
//	@Tags			employees
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// GetByCode godoc
// @ID           getEmployeeByCode
//
//	@Summary		Get employee by code
//	@Description	Retrieve an employee by their employee code
//	@Tags			employees
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			code		path		string	true	"Employee Code"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/code/{code} [get]
func (h *EmployeeHandler) GetByCode(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Employee code is required")
		return
	}

	employee, err := h.employeeService.GetByCode(c.Request.Context(), companyID, code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// List godoc
// @ID           listEmployees
//
//	@Summary		List employees
//	@Description	Retrieve a paginated list of employees with optional filtering
//	@Tags			employees
//	@Produce		json
//	@Param			X-Tenant-ID		header		string	false	"Company ID (optional for dev)"
//	@Param			keyword			query		string	false	"Search term (code, name, email, job title)"
//	@Param			status			query		string	false	"Employee status"	Enums(probation, active, on_leave, notice_period, terminated, inactive)
//	@Param			department_id	query		string	false	"Department ID"	format(uuid)
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			page_size		query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			sort_by			query		string	false	"Sort field"	default(code)
//	@Param			sort_dir		query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success		200				{object}	APIResponse[workforceapp.EmployeeListResult]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter := workforceapp.EmployeeFilter{
		Keyword: c.Query("keyword"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
		SortDir: c.Query("sort_dir"),
	}
	filter.Page, filter.PageSize = parsePagination(c)

	if deptStr := c.Query("department_id"); deptStr != "" {
		deptID, err := uuid.Parse(deptStr)
		if err != nil {
			h.BadRequest(c, "Invalid department ID format")
			return
		}
		filter.DepartmentID = &deptID
	}

	result, err := h.employeeService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Employees, result.Total, result.Page, result.PageSize)
}

// GetDirectReports godoc
// @ID           getEmployeeDirectReports
//
//	@Summary		Get direct reports
//	@Description	Retrieve the employees reporting to a manager
//	@Tags			employees
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Manager employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[[]workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/reports [get]
func (h *EmployeeHandler) GetDirectReports(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	managerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	reports, err := h.employeeService.GetDirectReports(c.Request.Context(), companyID, managerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reports)
}

// Update godoc
// @ID           updateEmployee
//
//	@Summary		Update an employee
//	@Description	Update an employee's personal and contact details
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		UpdateEmployeeRequest	true	"Employee update request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.UpdateEmployeeInput{
		CompanyID:         companyID,
		ID:                employeeID,
		FirstName:         req.FirstName,
		MiddleName:        req.MiddleName,
		LastName:          req.LastName,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		MaritalStatus:     req.MaritalStatus,
		Nationality:       req.Nationality,
		PersonalEmail:     req.PersonalEmail,
		WorkEmail:         req.WorkEmail,
		Phone:             req.Phone,
		EmergencyName:     req.EmergencyName,
		EmergencyPhone:    req.EmergencyPhone,
		EmergencyRelation: req.EmergencyRelation,
	}

	employee, err := h.employeeService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// SetJob godoc
// @ID           setEmployeeJob
//
//	@Summary		Set employee job
//	@Description	Change an employee's job title, level, and work location
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			id			path		string			true	"Employee ID"	format(uuid)
//	@Param			request		body		SetJobRequest	true	"Job assignment request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/job [put]
func (h *EmployeeHandler) SetJob(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req SetJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.SetJob(c.Request.Context(), companyID, employeeID, req.JobTitle, req.JobLevel, req.WorkLocation)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// AssignDepartment godoc
// @ID           assignEmployeeDepartment
//
//	@Summary		Assign employee department
//	@Description	Move an employee into a department, or out of all departments
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		AssignDepartmentRequest	true	"Department assignment request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/department [put]
func (h *EmployeeHandler) AssignDepartment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req AssignDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.AssignDepartment(c.Request.Context(), companyID, employeeID, req.DepartmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// AssignManager godoc
// @ID           assignEmployeeManager
//
//	@Summary		Assign employee manager
//	@Description	Set or clear an employee's reporting manager
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		AssignManagerRequest	true	"Manager assignment request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/manager [put]
func (h *EmployeeHandler) AssignManager(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.AssignManager(c.Request.Context(), companyID, employeeID, req.ManagerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// AssignShift godoc
// @ID           assignEmployeeShift
//
//	@Summary		Assign employee shift
//	@Description	Place an employee on a work shift
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Employee ID"	format(uuid)
//	@Param			request		body		AssignShiftRequest	true	"Shift assignment request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/shift [put]
func (h *EmployeeHandler) AssignShift(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.AssignShift(c.Request.Context(), companyID, employeeID, req.ShiftID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// LinkUser godoc
// @ID           linkEmployeeUser
//
//	@Summary		Link employee to user account
//	@Description	Link an employee record to a login user for self-service access
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			id			path		string			true	"Employee ID"	format(uuid)
//	@Param			request		body		LinkUserRequest	true	"User link request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/user [put]
func (h *EmployeeHandler) LinkUser(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req LinkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.LinkUser(c.Request.Context(), companyID, employeeID, req.UserID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// SetCompensation godoc
// @ID           setEmployeeCompensation
//
//	@Summary		Set employee compensation
//	@Description	Set an employee's base salary, currency, and pay frequency
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		SetCompensationRequest	true	"Compensation request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/compensation [put]
func (h *EmployeeHandler) SetCompensation(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req SetCompensationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.CompensationInput{
		BaseSalary:       req.BaseSalary,
		Currency:         req.Currency,
		PayFrequency:     req.PayFrequency,
		OvertimeEligible: req.OvertimeEligible,
	}

	employee, err := h.employeeService.SetCompensation(c.Request.Context(), companyID, employeeID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// SetEntitlement godoc
// @ID           setEmployeeEntitlement
//
//	@Summary		Set employee leave entitlement
//	@Description	Set an employee's yearly vacation and sick day allowances
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		SetEntitlementRequest	true	"Entitlement request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/entitlement [put]
func (h *EmployeeHandler) SetEntitlement(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req SetEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.EntitlementInput{
		VacationDaysPerYear: req.VacationDaysPerYear,
		SickDaysPerYear:     req.SickDaysPerYear,
	}

	employee, err := h.employeeService.SetEntitlement(c.Request.Context(), companyID, employeeID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// SetBankDetails godoc
// @ID           setEmployeeBankDetails
//
//	@Summary		Set employee bank details
//	@Description	Set the payout references used by payroll
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		SetBankDetailsRequest	true	"Bank details request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/bank [put]
func (h *EmployeeHandler) SetBankDetails(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req SetBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.BankDetailsInput{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		RoutingNumber: req.RoutingNumber,
		TaxReference:  req.TaxReference,
	}

	employee, err := h.employeeService.SetBankDetails(c.Request.Context(), companyID, employeeID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Confirm godoc
// @ID           confirmEmployee
//
//	@Summary		Confirm a probationary employee
//	@Description	Move an employee from probation to active status
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Employee ID"	format(uuid)
//	@Param			request		body		ConfirmEmployeeRequest	true	"Confirmation request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/confirm [post]
func (h *EmployeeHandler) Confirm(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req ConfirmEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Confirm(c.Request.Context(), companyID, employeeID, req.ConfirmationDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// StartNotice godoc
// @ID           startEmployeeNotice
//
//	@Summary		Start employee notice period
//	@Description	Put an employee on their notice period before exit
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Employee ID"	format(uuid)
//	@Param			request		body		StartNoticeRequest	true	"Notice period request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/notice [post]
func (h *EmployeeHandler) StartNotice(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req StartNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.StartNotice(c.Request.Context(), companyID, employeeID, req.NoticeStart)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Terminate godoc
// @ID           terminateEmployee
//
//	@Summary		Terminate an employee
//	@Description	Terminate an employee and record the exit dates
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Employee ID"	format(uuid)
//	@Param			request		body		TerminateEmployeeRequest	true	"Termination request"
//	@Success		200			{object}	APIResponse[workforceapp.EmployeeDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/{id}/terminate [post]
func (h *EmployeeHandler) Terminate(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req TerminateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.TerminateEmployeeInput{
		CompanyID:       companyID,
		ID:              employeeID,
		TerminationDate: req.TerminationDate,
		LastWorkingDate: req.LastWorkingDate,
		Note:            req.Note,
	}

	employee, err := h.employeeService.Terminate(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// HeadcountStats godoc
// @ID           getHeadcountStats
//
//	@Summary		Get headcount statistics
//	@Description	Retrieve headcount totals by status and by department
//	@Tags			employees
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[workforceapp.HeadcountStatsDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/workforce/employees/stats/headcount [get]
func (h *EmployeeHandler) HeadcountStats(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	stats, err := h.employeeService.HeadcountStats(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
