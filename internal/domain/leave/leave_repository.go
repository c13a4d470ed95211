package leave

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveRequestRepository defines the persistence interface for leave requests
type LeaveRequestRepository interface {
	// FindByID finds a request by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*LeaveRequest, error)

	// FindAll finds requests with filters
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*LeaveRequest], error)

	// FindByEmployee finds requests for one employee, newest first
	FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*LeaveRequest], error)

	// FindByStatus finds requests in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status RequestStatus, filter shared.Filter) (*shared.Paginated[*LeaveRequest], error)

	// FindPendingForApprover finds pending requests whose employees report to the given manager
	FindPendingForApprover(ctx context.Context, companyID, managerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*LeaveRequest], error)

	// FindOverlapping finds pending or approved requests for an employee
	// whose date range overlaps [start, end]
	FindOverlapping(ctx context.Context, companyID, employeeID uuid.UUID, start, end time.Time) ([]*LeaveRequest, error)

	// FindApprovedInRange finds approved requests touching the date range,
	// across all employees of the company
	FindApprovedInRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*LeaveRequest, error)

	// Save creates or updates a request
	Save(ctx context.Context, request *LeaveRequest) error

	// Count counts requests matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts requests per status
	CountByStatus(ctx context.Context, companyID uuid.UUID) (map[RequestStatus]int64, error)
}

// LeaveBalanceRepository defines the persistence interface for leave balances
type LeaveBalanceRepository interface {
	// FindByID finds a balance by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*LeaveBalance, error)

	// FindByEmployeeTypeYear finds the balance row for one employee, type and year
	FindByEmployeeTypeYear(ctx context.Context, companyID, employeeID uuid.UUID, leaveType LeaveType, year int) (*LeaveBalance, error)

	// FindByEmployeeYear finds all balances for an employee in a year
	FindByEmployeeYear(ctx context.Context, companyID, employeeID uuid.UUID, year int) ([]*LeaveBalance, error)

	// FindByYear finds all balances in a year for the company
	FindByYear(ctx context.Context, companyID uuid.UUID, year int, filter shared.Filter) (*shared.Paginated[*LeaveBalance], error)

	// Save creates or updates a balance
	Save(ctx context.Context, balance *LeaveBalance) error

	// SaveAll persists multiple balances atomically
	SaveAll(ctx context.Context, balances []*LeaveBalance) error

	// ExistsForEmployee checks whether a balance row already exists
	ExistsForEmployee(ctx context.Context, companyID, employeeID uuid.UUID, leaveType LeaveType, year int) (bool, error)
}

// LeavePolicyRepository defines the persistence interface for leave policies
type LeavePolicyRepository interface {
	// FindByID finds a policy by ID
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*LeavePolicy, error)

	// FindByType finds the active policy for a leave type
	FindByType(ctx context.Context, companyID uuid.UUID, leaveType LeaveType) (*LeavePolicy, error)

	// FindEffective finds the policy for a leave type effective on a date
	FindEffective(ctx context.Context, companyID uuid.UUID, leaveType LeaveType, date time.Time) (*LeavePolicy, error)

	// FindAll finds all policies for the company
	FindAll(ctx context.Context, companyID uuid.UUID) ([]*LeavePolicy, error)

	// FindActive finds all active policies for the company
	FindActive(ctx context.Context, companyID uuid.UUID) ([]*LeavePolicy, error)

	// Save creates or updates a policy
	Save(ctx context.Context, policy *LeavePolicy) error

	// Delete deletes a policy
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
