package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// MockPayrollRunRepository is a mock implementation of payroll.PayrollRunRepository
type MockPayrollRunRepository struct {
	mock.Mock
}

func (m *MockPayrollRunRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.PayrollRun, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.PayrollRun), args.Error(1)
}

func (m *MockPayrollRunRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*payroll.PayrollRun, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.PayrollRun), args.Error(1)
}

func (m *MockPayrollRunRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.PayrollRun], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*payroll.PayrollRun]), args.Error(1)
}

func (m *MockPayrollRunRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status payroll.RunStatus, filter shared.Filter) (*shared.Paginated[*payroll.PayrollRun], error) {
	args := m.Called(ctx, companyID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*payroll.PayrollRun]), args.Error(1)
}

func (m *MockPayrollRunRepository) FindOverlapping(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*payroll.PayrollRun, error) {
	args := m.Called(ctx, companyID, start, end)
	return args.Get(0).([]*payroll.PayrollRun), args.Error(1)
}

func (m *MockPayrollRunRepository) FindPayslipsByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.Payslip], error) {
	args := m.Called(ctx, companyID, employeeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*payroll.Payslip]), args.Error(1)
}

func (m *MockPayrollRunRepository) FindPayslip(ctx context.Context, companyID, payslipID uuid.UUID) (*payroll.Payslip, error) {
	args := m.Called(ctx, companyID, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.Payslip), args.Error(1)
}

func (m *MockPayrollRunRepository) Save(ctx context.Context, run *payroll.PayrollRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockPayrollRunRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayrollRunRepository) NextSequence(ctx context.Context, companyID uuid.UUID, periodStart time.Time) (int, error) {
	args := m.Called(ctx, companyID, periodStart)
	return args.Int(0), args.Error(1)
}

// MockSalaryStructureRepository is a mock implementation of payroll.SalaryStructureRepository
type MockSalaryStructureRepository struct {
	mock.Mock
}

func (m *MockSalaryStructureRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.SalaryStructure, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.SalaryStructure), args.Error(1)
}

func (m *MockSalaryStructureRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*payroll.SalaryStructure, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.SalaryStructure), args.Error(1)
}

func (m *MockSalaryStructureRepository) FindEffectiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*payroll.SalaryStructure, error) {
	args := m.Called(ctx, companyID, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.SalaryStructure), args.Error(1)
}

func (m *MockSalaryStructureRepository) FindHistoryByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*payroll.SalaryStructure, error) {
	args := m.Called(ctx, companyID, employeeID)
	return args.Get(0).([]*payroll.SalaryStructure), args.Error(1)
}

func (m *MockSalaryStructureRepository) FindActive(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.SalaryStructure], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*payroll.SalaryStructure]), args.Error(1)
}

func (m *MockSalaryStructureRepository) Save(ctx context.Context, structure *payroll.SalaryStructure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}

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

// MockAttendanceDayRepository is a mock implementation of attendance.AttendanceDayRepository
type MockAttendanceDayRepository struct {
	mock.Mock
}

func (m *MockAttendanceDayRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*attendance.AttendanceDay, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.AttendanceDay), args.Error(1)
}

func (m *MockAttendanceDayRepository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*attendance.AttendanceDay, error) {
	args := m.Called(ctx, companyID, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.AttendanceDay), args.Error(1)
}

func (m *MockAttendanceDayRepository) FindByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	args := m.Called(ctx, companyID, employeeID, from, to, filter)
	return args.Get(0).([]attendance.AttendanceDay), args.Error(1)
}

func (m *MockAttendanceDayRepository) FindByDate(ctx context.Context, companyID uuid.UUID, date time.Time, departmentID *uuid.UUID, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	args := m.Called(ctx, companyID, date, departmentID, filter)
	return args.Get(0).([]attendance.AttendanceDay), args.Error(1)
}

func (m *MockAttendanceDayRepository) FindPendingApproval(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]attendance.AttendanceDay, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]attendance.AttendanceDay), args.Error(1)
}

func (m *MockAttendanceDayRepository) Save(ctx context.Context, day *attendance.AttendanceDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockAttendanceDayRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceDayRepository) CountByEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, companyID, employeeID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceDayRepository) Statistics(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (*attendance.DayStatistics, error) {
	args := m.Called(ctx, companyID, employeeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.DayStatistics), args.Error(1)
}

func (m *MockAttendanceDayRepository) StatisticsForCompany(ctx context.Context, companyID uuid.UUID, date time.Time) (*attendance.DayStatistics, error) {
	args := m.Called(ctx, companyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.DayStatistics), args.Error(1)
}

func (m *MockAttendanceDayRepository) EmployeeIDsWithRecord(ctx context.Context, companyID uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockShiftRepository is a mock implementation of attendance.ShiftRepository
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*attendance.Shift, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*attendance.Shift, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]attendance.Shift, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]attendance.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]attendance.Shift, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]attendance.Shift), args.Error(1)
}

func (m *MockShiftRepository) Save(ctx context.Context, shift *attendance.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockShiftRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, companyID, code)
	return args.Bool(0), args.Error(1)
}

// MockLeaveRequestRepository is a mock implementation of leave.LeaveRequestRepository
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeaveRequest, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*leave.LeaveRequest]), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	args := m.Called(ctx, companyID, employeeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*leave.LeaveRequest]), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status leave.RequestStatus, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	args := m.Called(ctx, companyID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*leave.LeaveRequest]), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindPendingForApprover(ctx context.Context, companyID, managerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	args := m.Called(ctx, companyID, managerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*leave.LeaveRequest]), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindOverlapping(ctx context.Context, companyID, employeeID uuid.UUID, start, end time.Time) ([]*leave.LeaveRequest, error) {
	args := m.Called(ctx, companyID, employeeID, start, end)
	return args.Get(0).([]*leave.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindApprovedInRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*leave.LeaveRequest, error) {
	args := m.Called(ctx, companyID, start, end)
	return args.Get(0).([]*leave.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) Save(ctx context.Context, request *leave.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaveRequestRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[leave.RequestStatus]int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(map[leave.RequestStatus]int64), args.Error(1)
}

// MockDepartmentRepository is a mock implementation of identity.DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, dept *identity.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, dept *identity.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*identity.Department, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*identity.Department, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*identity.Department, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDescendants(ctx context.Context, dept *identity.Department) ([]*identity.Department, error) {
	args := m.Called(ctx, dept)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identity.Department, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindRootDepartments(ctx context.Context, tenantID uuid.UUID) ([]*identity.Department, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByManagerID(ctx context.Context, managerID uuid.UUID) ([]*identity.Department, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) GetAllDepartmentIDsInSubtree(ctx context.Context, departmentID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type payrollServiceMocks struct {
	runRepo        *MockPayrollRunRepository
	structureRepo  *MockSalaryStructureRepository
	employeeRepo   *MockEmployeeRepository
	attendanceRepo *MockAttendanceDayRepository
	shiftRepo      *MockShiftRepository
	leaveRepo      *MockLeaveRequestRepository
	deptRepo       *MockDepartmentRepository
}

func newPayrollService() (*PayrollService, *payrollServiceMocks) {
	mocks := &payrollServiceMocks{
		runRepo:        new(MockPayrollRunRepository),
		structureRepo:  new(MockSalaryStructureRepository),
		employeeRepo:   new(MockEmployeeRepository),
		attendanceRepo: new(MockAttendanceDayRepository),
		shiftRepo:      new(MockShiftRepository),
		leaveRepo:      new(MockLeaveRequestRepository),
		deptRepo:       new(MockDepartmentRepository),
	}
	svc := NewPayrollService(
		mocks.runRepo,
		mocks.structureRepo,
		mocks.employeeRepo,
		mocks.attendanceRepo,
		mocks.shiftRepo,
		mocks.leaveRepo,
		mocks.deptRepo,
		zap.NewNop(),
	)
	return svc, mocks
}

func newActiveEmployee(t *testing.T, companyID uuid.UUID, code, first, last string) *workforce.Employee {
	t.Helper()
	emp, err := workforce.NewEmployee(companyID, code, workforce.PersonalInfo{
		FirstName: first,
		LastName:  last,
	}, workforce.EmploymentTypeFullTime, time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	emp.Status = workforce.EmployeeStatusActive
	return emp
}

func newBasicStructure(t *testing.T, companyID, employeeID uuid.UUID, basic int64) *payroll.SalaryStructure {
	t.Helper()
	structure, err := payroll.NewSalaryStructure(companyID, employeeID, "Standard",
		decimal.NewFromInt(basic), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return structure
}

func newDraftRun(t *testing.T, companyID uuid.UUID, start, end time.Time) *payroll.PayrollRun {
	t.Helper()
	run, err := payroll.NewPayrollRun(companyID, payroll.GenerateRunNumber(start, 1),
		payroll.RunTypeRegular, start, end, end.AddDate(0, 0, 3))
	require.NoError(t, err)
	return run
}

func TestPayrollService_CreateRun_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	existing := newDraftRun(t, companyID, start, end)

	mocks.runRepo.On("FindOverlapping", ctx, companyID, start, end).
		Return([]*payroll.PayrollRun{existing}, nil)

	_, err := svc.CreateRun(ctx, CreateRunInput{
		CompanyID:   companyID,
		Type:        string(payroll.RunTypeRegular),
		PeriodStart: start,
		PeriodEnd:   end,
		PayDate:     end.AddDate(0, 0, 3),
	})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "OVERLAPPING_RUN", domainErr.Code)
	mocks.runRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPayrollService_Process_ProratesBasicByDaysWorked(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	processorID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	run := newDraftRun(t, companyID, start, end)
	emp := newActiveEmployee(t, companyID, "EMP001", "Asha", "Verma")
	structure := newBasicStructure(t, companyID, emp.ID, 30000)

	mocks.runRepo.On("FindByID", ctx, companyID, run.ID).Return(run, nil)
	mocks.employeeRepo.On("FindActive", ctx, companyID).Return([]workforce.Employee{*emp}, nil)
	mocks.leaveRepo.On("FindApprovedInRange", ctx, companyID, start, end).Return([]*leave.LeaveRequest{}, nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, emp.ID, end).Return(structure, nil)
	mocks.attendanceRepo.On("Statistics", ctx, companyID, emp.ID, start, end).
		Return(&attendance.DayStatistics{PresentDays: 10, AbsentDays: 20}, nil)
	mocks.runRepo.On("Save", ctx, run).Return(nil)

	result, err := svc.Process(ctx, companyID, run.ID, processorID)

	require.NoError(t, err)
	require.Len(t, run.Payslips, 1)
	slip := run.Payslips[0]

	// 10 of 30 working days attended, so basic pays out at a third
	assert.True(t, slip.GrossPay.Equal(decimal.NewFromInt(10000)),
		"gross should be prorated, got %s", slip.GrossPay)
	assert.True(t, slip.DaysWorked.Equal(decimal.NewFromInt(10)))
	assert.True(t, slip.DaysAbsent.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 0, result.Skipped)
}

func TestPayrollService_Process_FullAttendanceKeepsFullBasic(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	run := newDraftRun(t, companyID, start, end)
	emp := newActiveEmployee(t, companyID, "EMP001", "Asha", "Verma")
	structure := newBasicStructure(t, companyID, emp.ID, 30000)

	mocks.runRepo.On("FindByID", ctx, companyID, run.ID).Return(run, nil)
	mocks.employeeRepo.On("FindActive", ctx, companyID).Return([]workforce.Employee{*emp}, nil)
	mocks.leaveRepo.On("FindApprovedInRange", ctx, companyID, start, end).Return([]*leave.LeaveRequest{}, nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, emp.ID, end).Return(structure, nil)
	mocks.attendanceRepo.On("Statistics", ctx, companyID, emp.ID, start, end).
		Return(&attendance.DayStatistics{PresentDays: 30}, nil)
	mocks.runRepo.On("Save", ctx, run).Return(nil)

	_, err := svc.Process(ctx, companyID, run.ID, uuid.New())

	require.NoError(t, err)
	require.Len(t, run.Payslips, 1)
	assert.True(t, run.Payslips[0].GrossPay.Equal(decimal.NewFromInt(30000)))
}

func TestPayrollService_Process_TotalsEqualPayslipSums(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	run := newDraftRun(t, companyID, start, end)
	empA := newActiveEmployee(t, companyID, "EMP001", "Asha", "Verma")
	empB := newActiveEmployee(t, companyID, "EMP002", "Rohan", "Iyer")

	mocks.runRepo.On("FindByID", ctx, companyID, run.ID).Return(run, nil)
	mocks.employeeRepo.On("FindActive", ctx, companyID).Return([]workforce.Employee{*empA, *empB}, nil)
	mocks.leaveRepo.On("FindApprovedInRange", ctx, companyID, start, end).Return([]*leave.LeaveRequest{}, nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, empA.ID, end).
		Return(newBasicStructure(t, companyID, empA.ID, 30000), nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, empB.ID, end).
		Return(newBasicStructure(t, companyID, empB.ID, 45000), nil)
	mocks.attendanceRepo.On("Statistics", ctx, companyID, mock.Anything, start, end).
		Return(&attendance.DayStatistics{PresentDays: 30}, nil)
	mocks.runRepo.On("Save", ctx, run).Return(nil)

	_, err := svc.Process(ctx, companyID, run.ID, uuid.New())

	require.NoError(t, err)
	require.Len(t, run.Payslips, 2)

	gross := decimal.Zero
	deductions := decimal.Zero
	net := decimal.Zero
	for _, slip := range run.Payslips {
		gross = gross.Add(slip.GrossPay)
		deductions = deductions.Add(slip.TotalDeductions)
		net = net.Add(slip.NetPay)
	}
	assert.True(t, run.TotalGrossPay.Equal(gross))
	assert.True(t, run.TotalDeductions.Equal(deductions))
	assert.True(t, run.TotalNetPay.Equal(net))
	assert.Equal(t, 2, run.TotalEmployees)
}

func TestPayrollService_Process_ResolvesDepartmentName(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	run := newDraftRun(t, companyID, start, end)
	emp := newActiveEmployee(t, companyID, "EMP001", "Asha", "Verma")

	dept, err := identity.NewDepartment(companyID, "ENG", "Engineering")
	require.NoError(t, err)
	emp.AssignDepartment(&dept.ID)

	mocks.runRepo.On("FindByID", ctx, companyID, run.ID).Return(run, nil)
	mocks.employeeRepo.On("FindActive", ctx, companyID).Return([]workforce.Employee{*emp}, nil)
	mocks.leaveRepo.On("FindApprovedInRange", ctx, companyID, start, end).Return([]*leave.LeaveRequest{}, nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, emp.ID, end).
		Return(newBasicStructure(t, companyID, emp.ID, 30000), nil)
	mocks.attendanceRepo.On("Statistics", ctx, companyID, emp.ID, start, end).
		Return(&attendance.DayStatistics{PresentDays: 30}, nil)
	mocks.deptRepo.On("FindByID", ctx, dept.ID).Return(dept, nil)
	mocks.runRepo.On("Save", ctx, run).Return(nil)

	_, err = svc.Process(ctx, companyID, run.ID, uuid.New())

	require.NoError(t, err)
	require.Len(t, run.Payslips, 1)
	assert.Equal(t, "Engineering", run.Payslips[0].Department)
	mocks.deptRepo.AssertExpectations(t)
}

func TestPayrollService_Process_SkipsEmployeesWithoutStructure(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newPayrollService()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	run := newDraftRun(t, companyID, start, end)
	empA := newActiveEmployee(t, companyID, "EMP001", "Asha", "Verma")
	empB := newActiveEmployee(t, companyID, "EMP002", "Rohan", "Iyer")

	mocks.runRepo.On("FindByID", ctx, companyID, run.ID).Return(run, nil)
	mocks.employeeRepo.On("FindActive", ctx, companyID).Return([]workforce.Employee{*empA, *empB}, nil)
	mocks.leaveRepo.On("FindApprovedInRange", ctx, companyID, start, end).Return([]*leave.LeaveRequest{}, nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, empA.ID, end).
		Return(newBasicStructure(t, companyID, empA.ID, 30000), nil)
	mocks.structureRepo.On("FindEffectiveByEmployee", ctx, companyID, empB.ID, end).
		Return(nil, shared.ErrNotFound)
	mocks.attendanceRepo.On("Statistics", ctx, companyID, empA.ID, start, end).
		Return(&attendance.DayStatistics{PresentDays: 30}, nil)
	mocks.runRepo.On("Save", ctx, run).Return(nil)

	result, err := svc.Process(ctx, companyID, run.ID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"EMP002"}, result.SkipList)
	require.Len(t, run.Payslips, 1)
}
