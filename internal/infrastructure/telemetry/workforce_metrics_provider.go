// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWorkforceMetricsProvider implements WorkforceMetricsProvider using GORM.
// It queries the employees and leave_requests tables directly for aggregated metrics.
type GormWorkforceMetricsProvider struct {
	db *gorm.DB
}

// NewGormWorkforceMetricsProvider creates a new GormWorkforceMetricsProvider.
func NewGormWorkforceMetricsProvider(db *gorm.DB) *GormWorkforceMetricsProvider {
	return &GormWorkforceMetricsProvider{db: db}
}

// GetHeadcountByDepartment returns active employee count per department for a tenant.
func (p *GormWorkforceMetricsProvider) GetHeadcountByDepartment(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]int64, error) {
	type result struct {
		DepartmentID uuid.UUID `gorm:"column:department_id"`
		Headcount    int64     `gorm:"column:headcount"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("employees").
		Select("department_id, COUNT(*) as headcount").
		Where("tenant_id = ? AND status = ?", tenantID, "active").
		Group("department_id").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]int64, len(results))
	for _, r := range results {
		m[r.DepartmentID] = r.Headcount
	}

	return m, nil
}

// GetPendingLeaveCount returns count of leave requests awaiting approval for a tenant.
func (p *GormWorkforceMetricsProvider) GetPendingLeaveCount(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("leave_requests").
		Where("tenant_id = ? AND status = ?", tenantID, "pending").
		Count(&count).Error

	return count, err
}

// GormTenantProvider implements TenantProvider using GORM.
type GormTenantProvider struct {
	db *gorm.DB
}

// NewGormTenantProvider creates a new GormTenantProvider.
func NewGormTenantProvider(db *gorm.DB) *GormTenantProvider {
	return &GormTenantProvider{db: db}
}

// GetActiveTenantIDs returns all active tenant IDs.
func (p *GormTenantProvider) GetActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := p.db.WithContext(ctx).
		Table("companies").
		Select("id").
		Where("status = ?", "active").
		Find(&ids).Error

	return ids, err
}
