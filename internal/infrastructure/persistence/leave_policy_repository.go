package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLeavePolicyRepository implements LeavePolicyRepository using GORM
type GormLeavePolicyRepository struct {
	db *gorm.DB
}

// NewGormLeavePolicyRepository creates a new GormLeavePolicyRepository
func NewGormLeavePolicyRepository(db *gorm.DB) *GormLeavePolicyRepository {
	return &GormLeavePolicyRepository{db: db}
}

// FindByID finds a policy by ID
func (r *GormLeavePolicyRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeavePolicy, error) {
	var policy leave.LeavePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// FindByType finds the active policy for a leave type
func (r *GormLeavePolicyRepository) FindByType(ctx context.Context, companyID uuid.UUID, leaveType leave.LeaveType) (*leave.LeavePolicy, error) {
	var policy leave.LeavePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND type = ? AND is_active = ?", companyID, leaveType, true).
		Order("effective_from DESC").
		First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// FindEffective finds the policy for a leave type effective on a date
func (r *GormLeavePolicyRepository) FindEffective(ctx context.Context, companyID uuid.UUID, leaveType leave.LeaveType, date time.Time) (*leave.LeavePolicy, error) {
	var policy leave.LeavePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND type = ? AND is_active = ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)",
			companyID, leaveType, true, date, date).
		Order("effective_from DESC").
		First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// FindAll finds all policies for the company
func (r *GormLeavePolicyRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*leave.LeavePolicy, error) {
	var policies []*leave.LeavePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", companyID).
		Order("type ASC, effective_from DESC").
		Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// FindActive finds all active policies for the company
func (r *GormLeavePolicyRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]*leave.LeavePolicy, error) {
	var policies []*leave.LeavePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", companyID, true).
		Order("type ASC").
		Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// Save creates or updates a policy
func (r *GormLeavePolicyRepository) Save(ctx context.Context, policy *leave.LeavePolicy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

// Delete deletes a policy
func (r *GormLeavePolicyRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&leave.LeavePolicy{}, "tenant_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormLeavePolicyRepository implements LeavePolicyRepository
var _ leave.LeavePolicyRepository = (*GormLeavePolicyRepository)(nil)
