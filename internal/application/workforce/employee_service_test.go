package workforce

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// MockEmployeeRepository is a mock implementation of workforce.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*workforce.Employee, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*workforce.Employee, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByUserID(ctx context.Context, companyID, userID uuid.UUID) (*workforce.Employee, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status workforce.EmployeeStatus, filter shared.Filter) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID, status, filter)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByDepartment(ctx context.Context, companyID, departmentID uuid.UUID, filter shared.Filter) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID, departmentID, filter)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByManager(ctx context.Context, companyID, managerID uuid.UUID) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID, managerID)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]workforce.Employee, error) {
	args := m.Called(ctx, companyID, ids)
	return args.Get(0).([]workforce.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *workforce.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SaveWithEvents(ctx context.Context, employee *workforce.Employee, events []shared.DomainEvent) error {
	args := m.Called(ctx, employee, events)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountByStatus(ctx context.Context, companyID uuid.UUID, status workforce.EmployeeStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountByDepartment(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, companyID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) NextSequence(ctx context.Context, companyID uuid.UUID) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

// MockCompanyRepository is a mock implementation of identity.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (*identity.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByStatus(ctx context.Context, status identity.CompanyStatus, filter shared.Filter) ([]identity.Company, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindActive(ctx context.Context, filter shared.Filter) ([]identity.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindTrialExpiring(ctx context.Context, withinDays int) ([]identity.Company, error) {
	args := m.Called(ctx, withinDays)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindSubscriptionExpiring(ctx context.Context, withinDays int) ([]identity.Company, error) {
	args := m.Called(ctx, withinDays)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Company, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) CountByStatus(ctx context.Context, status identity.CompanyStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func newEmployeeService() (*EmployeeService, *MockEmployeeRepository, *MockCompanyRepository) {
	employeeRepo := new(MockEmployeeRepository)
	companyRepo := new(MockCompanyRepository)
	svc := NewEmployeeService(employeeRepo, companyRepo, zap.NewNop())
	return svc, employeeRepo, companyRepo
}

func newActiveCompany(t *testing.T) *identity.Company {
	t.Helper()
	company, err := identity.NewCompany("ACME001", "Acme Corporation")
	require.NoError(t, err)
	return company
}

func TestEmployeeService_Hire_GeneratesCodeAndSavesWithEvents(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, companyRepo := newEmployeeService()

	company := newActiveCompany(t)
	hireDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	employeeRepo.On("Count", ctx, company.ID, shared.DefaultFilter()).Return(int64(3), nil)
	employeeRepo.On("NextSequence", ctx, company.ID).Return(7, nil)

	var saved *workforce.Employee
	var savedEvents []shared.DomainEvent
	employeeRepo.On("SaveWithEvents", ctx, mock.AnythingOfType("*workforce.Employee"), mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*workforce.Employee)
			savedEvents = args.Get(2).([]shared.DomainEvent)
		}).Return(nil)

	dto, err := svc.Hire(ctx, HireEmployeeInput{
		CompanyID:      company.ID,
		FirstName:      "Asha",
		LastName:       "Verma",
		EmploymentType: string(workforce.EmploymentTypeFullTime),
		HireDate:       hireDate,
		JobTitle:       "Software Engineer",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "EMP20240007", saved.Code)
	assert.Equal(t, workforce.EmployeeStatusProbation, saved.Status)
	assert.Equal(t, "Asha Verma", dto.FullName)
	assert.Equal(t, "Software Engineer", dto.JobTitle)
	require.NotEmpty(t, savedEvents)
	assert.Equal(t, workforce.EventTypeEmployeeHired, savedEvents[0].EventType())
}

func TestEmployeeService_Hire_RejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, companyRepo := newEmployeeService()

	company := newActiveCompany(t)

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	employeeRepo.On("Count", ctx, company.ID, shared.DefaultFilter()).Return(int64(3), nil)
	employeeRepo.On("ExistsByCode", ctx, company.ID, "EMP0001").Return(true, nil)

	_, err := svc.Hire(ctx, HireEmployeeInput{
		CompanyID:      company.ID,
		Code:           "EMP0001",
		FirstName:      "Asha",
		LastName:       "Verma",
		EmploymentType: string(workforce.EmploymentTypeFullTime),
		HireDate:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "CODE_EXISTS", domainErr.Code)
	employeeRepo.AssertNotCalled(t, "SaveWithEvents", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_Hire_EnforcesPlanHeadcountLimit(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, companyRepo := newEmployeeService()

	company := newActiveCompany(t)
	company.Settings.MaxEmployees = 5

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	employeeRepo.On("Count", ctx, company.ID, shared.DefaultFilter()).Return(int64(5), nil)

	_, err := svc.Hire(ctx, HireEmployeeInput{
		CompanyID:      company.ID,
		FirstName:      "Asha",
		LastName:       "Verma",
		EmploymentType: string(workforce.EmploymentTypeFullTime),
		HireDate:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "EMPLOYEE_LIMIT_REACHED", domainErr.Code)
	employeeRepo.AssertNotCalled(t, "NextSequence", mock.Anything, mock.Anything)
}
