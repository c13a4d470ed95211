package importapp

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
	csvimport "github.com/hrms/backend/internal/infrastructure/import"
)

// ConflictMode defines how to handle conflicts during import
type ConflictMode string

const (
	// ConflictModeSkip skips rows that conflict with existing data
	ConflictModeSkip ConflictMode = "skip"
	// ConflictModeUpdate updates existing records with new data
	ConflictModeUpdate ConflictMode = "update"
	// ConflictModeFail fails the import if any conflicts are found
	ConflictModeFail ConflictMode = "fail"
)

// IsValid checks if the conflict mode is valid
func (c ConflictMode) IsValid() bool {
	switch c {
	case ConflictModeSkip, ConflictModeUpdate, ConflictModeFail:
		return true
	}
	return false
}

// EmployeeImportRow represents a row from the employee CSV import
type EmployeeImportRow struct {
	Code           string `csv:"code"`
	FirstName      string `csv:"first_name"`
	LastName       string `csv:"last_name"`
	WorkEmail      string `csv:"work_email"`
	Phone          string `csv:"phone"`
	DepartmentCode string `csv:"department_code"`
	EmploymentType string `csv:"employment_type"`
	HireDate       string `csv:"hire_date"`
	JobTitle       string `csv:"job_title"`
	BaseSalary     string `csv:"base_salary"`
	Currency       string `csv:"currency"`
}

// EmployeeImportResult represents the result of an employee import operation
type EmployeeImportResult struct {
	TotalRows    int                  `json:"total_rows"`
	ImportedRows int                  `json:"imported_rows"`
	UpdatedRows  int                  `json:"updated_rows"`
	SkippedRows  int                  `json:"skipped_rows"`
	ErrorRows    int                  `json:"error_rows"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty"`
	TotalErrors  int                  `json:"total_errors,omitempty"`
}

// EmployeeImportService handles employee bulk import operations
type EmployeeImportService struct {
	employeeRepo   workforce.EmployeeRepository
	departmentRepo identity.DepartmentRepository
	eventBus       shared.EventPublisher
}

// NewEmployeeImportService creates a new EmployeeImportService
func NewEmployeeImportService(
	employeeRepo workforce.EmployeeRepository,
	departmentRepo identity.DepartmentRepository,
	eventBus shared.EventPublisher,
) *EmployeeImportService {
	return &EmployeeImportService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		eventBus:       eventBus,
	}
}

// GetValidationRules returns the validation rules for employee import
func (s *EmployeeImportService) GetValidationRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("code").String().MaxLength(50).Unique().Build(),
		csvimport.Field("first_name").Required().String().MinLength(1).MaxLength(100).Build(),
		csvimport.Field("last_name").Required().String().MinLength(1).MaxLength(100).Build(),
		csvimport.Field("work_email").Email().Build(),
		csvimport.Field("phone").String().MaxLength(50).Build(),
		csvimport.Field("department_code").String().MaxLength(50).Reference("department").Build(),
		csvimport.Field("employment_type").Required().String().Custom(validateEmploymentType).Build(),
		csvimport.Field("hire_date").Required().Date().Build(),
		csvimport.Field("job_title").String().MaxLength(100).Build(),
		csvimport.Field("base_salary").Decimal().Build(),
		csvimport.Field("currency").String().MaxLength(3).Build(),
	}
}

// validateEmploymentType validates the employment type field
func validateEmploymentType(value string) error {
	if value == "" {
		return nil // will be caught by required check
	}
	if !normalizeEmploymentType(value).IsValid() {
		return fmt.Errorf("employment_type must be one of: full_time, part_time, contract, temporary, intern, consultant")
	}
	return nil
}

// normalizeEmploymentType normalizes the employment type input
func normalizeEmploymentType(value string) workforce.EmploymentType {
	lower := strings.ToLower(strings.TrimSpace(value))
	lower = strings.ReplaceAll(lower, "-", "_")
	lower = strings.ReplaceAll(lower, " ", "_")
	switch lower {
	case "fulltime":
		return workforce.EmploymentTypeFullTime
	case "parttime":
		return workforce.EmploymentTypePartTime
	default:
		return workforce.EmploymentType(lower)
	}
}

// LookupDepartment checks whether a department code exists
func (s *EmployeeImportService) LookupDepartment(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	if code == "" {
		return true, nil // empty is valid (no department assignment)
	}
	return s.departmentRepo.ExistsByCode(ctx, companyID, code)
}

// LookupUnique checks if a value is already taken for a given field
func (s *EmployeeImportService) LookupUnique(ctx context.Context, companyID uuid.UUID, field, value string) (bool, error) {
	if value == "" {
		return false, nil // empty is not a duplicate
	}
	switch field {
	case "code":
		return s.employeeRepo.ExistsByCode(ctx, companyID, strings.ToUpper(value))
	default:
		return false, nil
	}
}

// Import imports employees from validated rows
func (s *EmployeeImportService) Import(
	ctx context.Context,
	companyID, userID uuid.UUID,
	session *csvimport.ImportSession,
	validRows []*csvimport.Row,
	conflictMode ConflictMode,
) (*EmployeeImportResult, error) {
	if session.State != csvimport.StateValidated {
		return nil, shared.NewDomainError("INVALID_STATE", "Import session must be in validated state")
	}

	if !session.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERRORS", "Cannot import session with validation errors")
	}

	session.UpdateState(csvimport.StateImporting)

	result := &EmployeeImportResult{
		TotalRows: len(validRows),
	}
	errors := csvimport.NewErrorCollection(100)

	for _, row := range validRows {
		select {
		case <-ctx.Done():
			session.UpdateState(csvimport.StateCancelled)
			return nil, ctx.Err()
		default:
		}

		err := s.importRow(ctx, companyID, userID, row, conflictMode, result, errors)
		if err != nil {
			// Critical error - stop import
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}
	}

	result.Errors = errors.Errors()
	result.IsTruncated = errors.IsTruncated()
	result.TotalErrors = errors.TotalCount()

	if result.ErrorRows > 0 {
		session.UpdateState(csvimport.StateFailed)
	} else {
		session.UpdateState(csvimport.StateCompleted)
	}

	return result, nil
}

// importRow imports a single employee row
func (s *EmployeeImportService) importRow(
	ctx context.Context,
	companyID, _ uuid.UUID,
	row *csvimport.Row,
	conflictMode ConflictMode,
	result *EmployeeImportResult,
	errors *csvimport.ErrorCollection,
) error {
	code := strings.ToUpper(strings.TrimSpace(row.Get("code")))
	firstName := strings.TrimSpace(row.Get("first_name"))
	lastName := strings.TrimSpace(row.Get("last_name"))
	workEmail := strings.TrimSpace(row.Get("work_email"))
	phone := strings.TrimSpace(row.Get("phone"))
	departmentCode := strings.TrimSpace(row.GetOrDefault("department_code", ""))
	employmentTypeStr := strings.TrimSpace(row.Get("employment_type"))
	hireDateStr := strings.TrimSpace(row.Get("hire_date"))
	jobTitle := strings.TrimSpace(row.Get("job_title"))
	baseSalaryStr := strings.TrimSpace(row.Get("base_salary"))
	currency := strings.ToUpper(strings.TrimSpace(row.GetOrDefault("currency", "USD")))
	if currency == "" {
		currency = "USD"
	}

	hireDate, err := time.Parse("2006-01-02", hireDateStr)
	if err != nil {
		errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "hire_date", csvimport.ErrCodeImportInvalidFormat,
			"hire_date must be in YYYY-MM-DD format", hireDateStr))
		result.ErrorRows++
		return nil
	}

	// Generate the next code in sequence if not provided
	if code == "" {
		seq, err := s.employeeRepo.NextSequence(ctx, companyID)
		if err != nil {
			errors.Add(csvimport.NewRowError(row.LineNumber, "code", csvimport.ErrCodeImportValidation, "failed to generate employee code"))
			result.ErrorRows++
			return nil
		}
		code = workforce.GenerateEmployeeCode(hireDate, seq)
	}

	// Check for existing employee by code
	existing, err := s.employeeRepo.FindByCode(ctx, companyID, code)
	if err != nil && err != shared.ErrNotFound {
		return fmt.Errorf("failed to check existing employee: %w", err)
	}

	if existing != nil {
		switch conflictMode {
		case ConflictModeSkip:
			result.SkippedRows++
			return nil
		case ConflictModeFail:
			errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "code", csvimport.ErrCodeImportDuplicateInDB,
				fmt.Sprintf("employee with code '%s' already exists", code), code))
			result.ErrorRows++
			return nil
		case ConflictModeUpdate:
			return s.updateExistingEmployee(ctx, companyID, existing, row, firstName, lastName, workEmail, phone, departmentCode, jobTitle, baseSalaryStr, currency, result, errors)
		}
	}

	employee, err := workforce.NewEmployee(
		companyID,
		code,
		workforce.PersonalInfo{FirstName: firstName, LastName: lastName},
		normalizeEmploymentType(employmentTypeStr),
		hireDate,
	)
	if err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportValidation, err.Error()))
		result.ErrorRows++
		return nil
	}

	if workEmail != "" || phone != "" {
		employee.UpdateContact(workforce.ContactInfo{WorkEmail: workEmail, Phone: phone})
	}

	if departmentCode != "" {
		department, err := s.departmentRepo.FindByCode(ctx, companyID, departmentCode)
		if err != nil {
			errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "department_code", csvimport.ErrCodeImportReferenceNotFound,
				fmt.Sprintf("department '%s' not found", departmentCode), departmentCode))
			result.ErrorRows++
			return nil
		}
		employee.AssignDepartment(&department.ID)
	}

	if jobTitle != "" {
		if err := employee.SetJob(jobTitle, "", ""); err != nil {
			errors.Add(csvimport.NewRowError(row.LineNumber, "job_title", csvimport.ErrCodeImportValidation, err.Error()))
			result.ErrorRows++
			return nil
		}
	}

	if baseSalaryStr != "" {
		if err := s.applyCompensation(employee, baseSalaryStr, currency); err != nil {
			errors.Add(csvimport.NewRowError(row.LineNumber, "base_salary", csvimport.ErrCodeImportValidation, err.Error()))
			result.ErrorRows++
			return nil
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportValidation, "failed to save employee: "+err.Error()))
		result.ErrorRows++
		return nil
	}

	s.publishEvents(ctx, employee, code)

	result.ImportedRows++
	return nil
}

// updateExistingEmployee updates an existing employee with import data
func (s *EmployeeImportService) updateExistingEmployee(
	ctx context.Context,
	companyID uuid.UUID,
	employee *workforce.Employee,
	row *csvimport.Row,
	firstName, lastName, workEmail, phone, departmentCode, jobTitle, baseSalaryStr, currency string,
	result *EmployeeImportResult,
	errors *csvimport.ErrorCollection,
) error {
	personal := employee.Personal
	personal.FirstName = firstName
	personal.LastName = lastName
	if err := employee.UpdatePersonal(personal); err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "first_name", csvimport.ErrCodeImportValidation, err.Error()))
		result.ErrorRows++
		return nil
	}

	if workEmail != "" || phone != "" {
		contact := employee.Contact
		if workEmail != "" {
			contact.WorkEmail = workEmail
		}
		if phone != "" {
			contact.Phone = phone
		}
		employee.UpdateContact(contact)
	}

	if departmentCode != "" {
		department, err := s.departmentRepo.FindByCode(ctx, companyID, departmentCode)
		if err != nil {
			errors.Add(csvimport.NewRowErrorWithValue(row.LineNumber, "department_code", csvimport.ErrCodeImportReferenceNotFound,
				fmt.Sprintf("department '%s' not found", departmentCode), departmentCode))
			result.ErrorRows++
			return nil
		}
		employee.AssignDepartment(&department.ID)
	}

	if jobTitle != "" {
		if err := employee.SetJob(jobTitle, employee.JobLevel, employee.WorkLocation); err != nil {
			errors.Add(csvimport.NewRowError(row.LineNumber, "job_title", csvimport.ErrCodeImportValidation, err.Error()))
			result.ErrorRows++
			return nil
		}
	}

	if baseSalaryStr != "" {
		if err := s.applyCompensation(employee, baseSalaryStr, currency); err != nil {
			errors.Add(csvimport.NewRowError(row.LineNumber, "base_salary", csvimport.ErrCodeImportValidation, err.Error()))
			result.ErrorRows++
			return nil
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		errors.Add(csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportValidation, "failed to save employee: "+err.Error()))
		result.ErrorRows++
		return nil
	}

	s.publishEvents(ctx, employee, employee.Code)

	result.UpdatedRows++
	return nil
}

// applyCompensation parses and sets the base salary on the employee
func (s *EmployeeImportService) applyCompensation(employee *workforce.Employee, baseSalaryStr, currency string) error {
	salary, err := valueobject.NewMoneyFromString(baseSalaryStr, valueobject.Currency(currency))
	if err != nil {
		return err
	}
	comp := employee.Compensation
	comp.BaseSalary = salary
	if comp.PayFrequency == "" {
		comp.PayFrequency = "monthly"
	}
	return employee.SetCompensation(comp)
}

// publishEvents publishes the employee's accumulated domain events
func (s *EmployeeImportService) publishEvents(ctx context.Context, employee *workforce.Employee, code string) {
	if s.eventBus == nil {
		return
	}
	events := employee.GetDomainEvents()
	if len(events) > 0 {
		if err := s.eventBus.Publish(ctx, events...); err != nil {
			log.Printf("WARNING: failed to publish domain events for employee %s: %v", code, err)
		}
	}
	employee.ClearDomainEvents()
}
