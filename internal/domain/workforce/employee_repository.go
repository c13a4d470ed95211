package workforce

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by ID within a company
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Employee, error)

	// FindByCode finds an employee by code within a company
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Employee, error)

	// FindByUserID finds the employee linked to a user account
	FindByUserID(ctx context.Context, companyID, userID uuid.UUID) (*Employee, error)

	// FindAll finds employees matching the filter within a company
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Employee, error)

	// FindByStatus finds employees by status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status EmployeeStatus, filter shared.Filter) ([]Employee, error)

	// FindByDepartment finds employees in a department
	FindByDepartment(ctx context.Context, companyID, departmentID uuid.UUID, filter shared.Filter) ([]Employee, error)

	// FindByManager finds the direct reports of a manager
	FindByManager(ctx context.Context, companyID, managerID uuid.UUID) ([]Employee, error)

	// FindActive finds all employees in a working status
	FindActive(ctx context.Context, companyID uuid.UUID) ([]Employee, error)

	// FindByIDs finds multiple employees by their IDs
	FindByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]Employee, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error

	// SaveWithEvents saves the employee and persists domain events atomically
	// (transactional outbox pattern)
	SaveWithEvents(ctx context.Context, employee *Employee, events []shared.DomainEvent) error

	// Delete deletes an employee record
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	// Count counts employees matching the filter
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts employees by status
	CountByStatus(ctx context.Context, companyID uuid.UUID, status EmployeeStatus) (int64, error)

	// CountByDepartment counts employees per department
	CountByDepartment(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]int64, error)

	// ExistsByCode checks if an employee code is taken within a company
	ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error)

	// NextSequence returns the next employee sequence number for code generation
	NextSequence(ctx context.Context, companyID uuid.UUID) (int, error)
}
