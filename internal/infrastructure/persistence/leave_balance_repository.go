package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLeaveBalanceRepository implements LeaveBalanceRepository using GORM
type GormLeaveBalanceRepository struct {
	db *gorm.DB
}

// NewGormLeaveBalanceRepository creates a new GormLeaveBalanceRepository
func NewGormLeaveBalanceRepository(db *gorm.DB) *GormLeaveBalanceRepository {
	return &GormLeaveBalanceRepository{db: db}
}

// FindByID finds a balance by ID
func (r *GormLeaveBalanceRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &balance, nil
}

// FindByEmployeeTypeYear finds the balance row for one employee, type and year
func (r *GormLeaveBalanceRepository) FindByEmployeeTypeYear(ctx context.Context, companyID, employeeID uuid.UUID, leaveType leave.LeaveType, year int) (*leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND type = ? AND year = ?", companyID, employeeID, leaveType, year).
		First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &balance, nil
}

// FindByEmployeeYear finds all balances for an employee in a year
func (r *GormLeaveBalanceRepository) FindByEmployeeYear(ctx context.Context, companyID, employeeID uuid.UUID, year int) ([]*leave.LeaveBalance, error) {
	var balances []*leave.LeaveBalance
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND year = ?", companyID, employeeID, year).
		Order("type ASC").
		Find(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}

// FindByYear finds all balances in a year for the company
func (r *GormLeaveBalanceRepository) FindByYear(ctx context.Context, companyID uuid.UUID, year int, filter shared.Filter) (*shared.Paginated[*leave.LeaveBalance], error) {
	query := r.db.WithContext(ctx).Model(&leave.LeaveBalance{}).
		Where("tenant_id = ? AND year = ?", companyID, year)

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pageQuery := query.Session(&gorm.Session{})
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		pageQuery = pageQuery.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		pageQuery = pageQuery.Order(ValidateSortField(filter.OrderBy, LeaveBalanceSortFields, "year") + " " + orderDir)
	} else {
		pageQuery = pageQuery.Order("employee_id ASC, type ASC")
	}

	var balances []*leave.LeaveBalance
	if err := pageQuery.Find(&balances).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(balances, total, page, pageSize)
	return &result, nil
}

// Save creates or updates a balance
func (r *GormLeaveBalanceRepository) Save(ctx context.Context, balance *leave.LeaveBalance) error {
	return r.db.WithContext(ctx).Save(balance).Error
}

// SaveAll persists multiple balances atomically
func (r *GormLeaveBalanceRepository) SaveAll(ctx context.Context, balances []*leave.LeaveBalance) error {
	if len(balances) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, balance := range balances {
			if err := tx.Save(balance).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ExistsForEmployee checks whether a balance row already exists
func (r *GormLeaveBalanceRepository) ExistsForEmployee(ctx context.Context, companyID, employeeID uuid.UUID, leaveType leave.LeaveType, year int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&leave.LeaveBalance{}).
		Where("tenant_id = ? AND employee_id = ? AND type = ? AND year = ?", companyID, employeeID, leaveType, year).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormLeaveBalanceRepository implements LeaveBalanceRepository
var _ leave.LeaveBalanceRepository = (*GormLeaveBalanceRepository)(nil)
