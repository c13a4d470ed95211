package leave

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

	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

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

// MockLeaveBalanceRepository is a mock implementation of leave.LeaveBalanceRepository
type MockLeaveBalanceRepository struct {
	mock.Mock
}

func (m *MockLeaveBalanceRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeaveBalance, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeaveBalance), args.Error(1)
}

func (m *MockLeaveBalanceRepository) FindByEmployeeTypeYear(ctx context.Context, companyID, employeeID uuid.UUID, leaveType leave.LeaveType, year int) (*leave.LeaveBalance, error) {
	args := m.Called(ctx, companyID, employeeID, leaveType, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeaveBalance), args.Error(1)
}

func (m *MockLeaveBalanceRepository) FindByEmployeeYear(ctx context.Context, companyID, employeeID uuid.UUID, year int) ([]*leave.LeaveBalance, error) {
	args := m.Called(ctx, companyID, employeeID, year)
	return args.Get(0).([]*leave.LeaveBalance), args.Error(1)
}

func (m *MockLeaveBalanceRepository) FindByYear(ctx context.Context, companyID uuid.UUID, year int, filter shared.Filter) (*shared.Paginated[*leave.LeaveBalance], error) {
	args := m.Called(ctx, companyID, year, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*leave.LeaveBalance]), args.Error(1)
}

func (m *MockLeaveBalanceRepository) Save(ctx context.Context, balance *leave.LeaveBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockLeaveBalanceRepository) SaveAll(ctx context.Context, balances []*leave.LeaveBalance) error {
	args := m.Called(ctx, balances)
	return args.Error(0)
}

func (m *MockLeaveBalanceRepository) ExistsForEmployee(ctx context.Context, companyID, employeeID uuid.UUID, leaveType leave.LeaveType, year int) (bool, error) {
	args := m.Called(ctx, companyID, employeeID, leaveType, year)
	return args.Bool(0), args.Error(1)
}

// MockLeavePolicyRepository is a mock implementation of leave.LeavePolicyRepository
type MockLeavePolicyRepository struct {
	mock.Mock
}

func (m *MockLeavePolicyRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeavePolicy, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeavePolicy), args.Error(1)
}

func (m *MockLeavePolicyRepository) FindByType(ctx context.Context, companyID uuid.UUID, leaveType leave.LeaveType) (*leave.LeavePolicy, error) {
	args := m.Called(ctx, companyID, leaveType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeavePolicy), args.Error(1)
}

func (m *MockLeavePolicyRepository) FindEffective(ctx context.Context, companyID uuid.UUID, leaveType leave.LeaveType, date time.Time) (*leave.LeavePolicy, error) {
	args := m.Called(ctx, companyID, leaveType, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leave.LeavePolicy), args.Error(1)
}

func (m *MockLeavePolicyRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*leave.LeavePolicy, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]*leave.LeavePolicy), args.Error(1)
}

func (m *MockLeavePolicyRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]*leave.LeavePolicy, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]*leave.LeavePolicy), args.Error(1)
}

func (m *MockLeavePolicyRepository) Save(ctx context.Context, policy *leave.LeavePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockLeavePolicyRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
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

type leaveServiceMocks struct {
	requestRepo  *MockLeaveRequestRepository
	balanceRepo  *MockLeaveBalanceRepository
	policyRepo   *MockLeavePolicyRepository
	employeeRepo *MockEmployeeRepository
}

func newLeaveService() (*LeaveService, *leaveServiceMocks) {
	mocks := &leaveServiceMocks{
		requestRepo:  new(MockLeaveRequestRepository),
		balanceRepo:  new(MockLeaveBalanceRepository),
		policyRepo:   new(MockLeavePolicyRepository),
		employeeRepo: new(MockEmployeeRepository),
	}
	svc := NewLeaveService(
		mocks.requestRepo,
		mocks.balanceRepo,
		mocks.policyRepo,
		mocks.employeeRepo,
		zap.NewNop(),
	)
	return svc, mocks
}

func newWorkingEmployee(t *testing.T, companyID uuid.UUID) *workforce.Employee {
	t.Helper()
	emp, err := workforce.NewEmployee(companyID, "EMP001", workforce.PersonalInfo{
		FirstName: "Asha",
		LastName:  "Verma",
	}, workforce.EmploymentTypeFullTime, time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	emp.Status = workforce.EmployeeStatusActive
	return emp
}

func TestLeaveService_Submit_RejectsOverlappingRequest(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newLeaveService()

	emp := newWorkingEmployee(t, companyID)
	start := time.Date(2027, 7, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 7, 9, 0, 0, 0, 0, time.UTC)

	existing, err := leave.NewLeaveRequest(companyID, emp.ID, leave.LeaveTypeAnnual,
		start, end, decimal.NewFromInt(5), "Family trip")
	require.NoError(t, err)

	mocks.employeeRepo.On("FindByID", ctx, companyID, emp.ID).Return(emp, nil)
	mocks.requestRepo.On("FindOverlapping", ctx, companyID, emp.ID, start, end).
		Return([]*leave.LeaveRequest{existing}, nil)

	_, err = svc.Submit(ctx, SubmitRequestInput{
		CompanyID:  companyID,
		EmployeeID: emp.ID,
		Type:       string(leave.LeaveTypeAnnual),
		StartDate:  start,
		EndDate:    end,
		Days:       decimal.NewFromInt(5),
		Reason:     "Family trip",
	})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "OVERLAPPING_REQUEST", domainErr.Code)
	mocks.requestRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLeaveService_Submit_ReservesBalance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newLeaveService()

	emp := newWorkingEmployee(t, companyID)
	start := time.Date(2027, 7, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 7, 9, 0, 0, 0, 0, time.UTC)
	days := decimal.NewFromInt(5)

	balance, err := leave.NewLeaveBalance(companyID, emp.ID, leave.LeaveTypeAnnual, 2027, decimal.NewFromInt(20))
	require.NoError(t, err)

	mocks.employeeRepo.On("FindByID", ctx, companyID, emp.ID).Return(emp, nil)
	mocks.requestRepo.On("FindOverlapping", ctx, companyID, emp.ID, start, end).
		Return([]*leave.LeaveRequest{}, nil)
	mocks.policyRepo.On("FindEffective", ctx, companyID, leave.LeaveTypeAnnual, start).
		Return(nil, shared.ErrNotFound)
	mocks.balanceRepo.On("FindByEmployeeTypeYear", ctx, companyID, emp.ID, leave.LeaveTypeAnnual, 2027).
		Return(balance, nil)
	mocks.requestRepo.On("Save", ctx, mock.AnythingOfType("*leave.LeaveRequest")).Return(nil)
	mocks.balanceRepo.On("Save", ctx, balance).Return(nil)

	result, err := svc.Submit(ctx, SubmitRequestInput{
		CompanyID:  companyID,
		EmployeeID: emp.ID,
		Type:       string(leave.LeaveTypeAnnual),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     "Family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.RequestStatusPending), result.Status)
	assert.True(t, balance.Pending.Equal(days))
	mocks.balanceRepo.AssertExpectations(t)
}

func TestLeaveService_Submit_RejectsInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	svc, mocks := newLeaveService()

	emp := newWorkingEmployee(t, companyID)
	start := time.Date(2027, 7, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 7, 9, 0, 0, 0, 0, time.UTC)

	balance, err := leave.NewLeaveBalance(companyID, emp.ID, leave.LeaveTypeAnnual, 2027, decimal.NewFromInt(2))
	require.NoError(t, err)

	mocks.employeeRepo.On("FindByID", ctx, companyID, emp.ID).Return(emp, nil)
	mocks.requestRepo.On("FindOverlapping", ctx, companyID, emp.ID, start, end).
		Return([]*leave.LeaveRequest{}, nil)
	mocks.policyRepo.On("FindEffective", ctx, companyID, leave.LeaveTypeAnnual, start).
		Return(nil, shared.ErrNotFound)
	mocks.balanceRepo.On("FindByEmployeeTypeYear", ctx, companyID, emp.ID, leave.LeaveTypeAnnual, 2027).
		Return(balance, nil)

	_, err = svc.Submit(ctx, SubmitRequestInput{
		CompanyID:  companyID,
		EmployeeID: emp.ID,
		Type:       string(leave.LeaveTypeAnnual),
		StartDate:  start,
		EndDate:    end,
		Days:       decimal.NewFromInt(5),
		Reason:     "Family trip",
	})

	require.Error(t, err)
	assert.Equal(t, shared.ErrInsufficientBalance, err)
	mocks.requestRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
