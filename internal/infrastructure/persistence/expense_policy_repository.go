package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpensePolicyRepository implements ExpensePolicyRepository using GORM
type GormExpensePolicyRepository struct {
	db *gorm.DB
}

// NewGormExpensePolicyRepository creates a new GormExpensePolicyRepository
func NewGormExpensePolicyRepository(db *gorm.DB) *GormExpensePolicyRepository {
	return &GormExpensePolicyRepository{db: db}
}

// FindByID finds a policy by ID
func (r *GormExpensePolicyRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*expense.ExpensePolicy, error) {
	var policy expense.ExpensePolicy
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

// FindByCategory finds the active policy for a category
func (r *GormExpensePolicyRepository) FindByCategory(ctx context.Context, companyID uuid.UUID, category expense.Category) (*expense.ExpensePolicy, error) {
	var policy expense.ExpensePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND category = ? AND is_active = ?", companyID, category, true).
		Order("effective_from DESC").
		First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// FindEffective finds the policy for a category effective on a date
func (r *GormExpensePolicyRepository) FindEffective(ctx context.Context, companyID uuid.UUID, category expense.Category, date time.Time) (*expense.ExpensePolicy, error) {
	var policy expense.ExpensePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND category = ? AND is_active = ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)",
			companyID, category, true, date, date).
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
func (r *GormExpensePolicyRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]*expense.ExpensePolicy, error) {
	var policies []*expense.ExpensePolicy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", companyID).
		Order("category ASC, effective_from DESC").
		Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// Save creates or updates a policy
func (r *GormExpensePolicyRepository) Save(ctx context.Context, policy *expense.ExpensePolicy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

// Delete deletes a policy
func (r *GormExpensePolicyRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&expense.ExpensePolicy{}, "tenant_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpensePolicyRepository implements ExpensePolicyRepository
var _ expense.ExpensePolicyRepository = (*GormExpensePolicyRepository)(nil)
