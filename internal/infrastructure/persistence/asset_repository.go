package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/asset"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by ID, assignments and maintenance included
func (r *GormAssetRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*asset.Asset, error) {
	var a asset.Asset
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("MaintenanceRecords").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByTag finds an asset by its tag
func (r *GormAssetRepository) FindByTag(ctx context.Context, companyID uuid.UUID, tag string) (*asset.Asset, error) {
	var a asset.Asset
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("MaintenanceRecords").
		Where("tenant_id = ? AND tag = ?", companyID, strings.ToUpper(tag)).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindAll finds assets with filters
func (r *GormAssetRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*asset.Asset], error) {
	query := r.db.WithContext(ctx).Model(&asset.Asset{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByStatus finds assets in a given status
func (r *GormAssetRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status asset.Status, filter shared.Filter) (*shared.Paginated[*asset.Asset], error) {
	query := r.db.WithContext(ctx).Model(&asset.Asset{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// FindByType finds assets of one type
func (r *GormAssetRepository) FindByType(ctx context.Context, companyID uuid.UUID, assetType asset.Type, filter shared.Filter) (*shared.Paginated[*asset.Asset], error) {
	query := r.db.WithContext(ctx).Model(&asset.Asset{}).
		Where("tenant_id = ? AND type = ?", companyID, assetType)
	return r.findPage(query, filter)
}

// FindAssignedToEmployee finds assets currently held by an employee
func (r *GormAssetRepository) FindAssignedToEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*asset.Asset, error) {
	var assets []*asset.Asset
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Joins("JOIN asset_assignments aa ON aa.asset_id = assets.id").
		Where("assets.tenant_id = ? AND aa.employee_id = ? AND aa.is_active = ?", companyID, employeeID, true).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindWarrantyExpiring finds assets whose warranty ends within the window
func (r *GormAssetRepository) FindWarrantyExpiring(ctx context.Context, companyID uuid.UUID, before time.Time) ([]*asset.Asset, error) {
	var assets []*asset.Asset
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND warranty_expiry IS NOT NULL AND warranty_expiry <= ? AND warranty_expiry >= ? AND status NOT IN ?",
			companyID, before, time.Now(), retiredStatuses()).
		Order("warranty_expiry ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindMaintenanceDue finds assets with a next maintenance date in the past
func (r *GormAssetRepository) FindMaintenanceDue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*asset.Asset, error) {
	var assets []*asset.Asset
	if err := r.db.WithContext(ctx).
		Preload("MaintenanceRecords").
		Where("tenant_id = ? AND status NOT IN ? AND EXISTS (SELECT 1 FROM asset_maintenance_records mr WHERE mr.asset_id = assets.id AND mr.next_maintenance_date IS NOT NULL AND mr.next_maintenance_date <= ?)",
			companyID, retiredStatuses(), asOf).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Save creates or updates an asset with its assignments and maintenance records
func (r *GormAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignments", "MaintenanceRecords").Save(a).Error; err != nil {
			return err
		}

		for i := range a.Assignments {
			a.Assignments[i].AssetID = a.ID
			if err := tx.Save(&a.Assignments[i]).Error; err != nil {
				return err
			}
		}
		for i := range a.MaintenanceRecords {
			a.MaintenanceRecords[i].AssetID = a.ID
			if err := tx.Save(&a.MaintenanceRecords[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count counts assets matching the filter
func (r *GormAssetRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&asset.Asset{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts assets per status
func (r *GormAssetRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[asset.Status]int64, error) {
	type row struct {
		Status asset.Status
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&asset.Asset{}).
		Select("status, COUNT(*) as total").
		Where("tenant_id = ?", companyID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[asset.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// ExistsByTag checks whether a tag is taken
func (r *GormAssetRepository) ExistsByTag(ctx context.Context, companyID uuid.UUID, tag string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&asset.Asset{}).
		Where("tenant_id = ? AND tag = ?", companyID, strings.ToUpper(tag)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// retiredStatuses lists statuses excluded from operational queries
func retiredStatuses() []asset.Status {
	return []asset.Status{asset.StatusRetired, asset.StatusLost, asset.StatusStolen}
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormAssetRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*asset.Asset], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var assets []*asset.Asset
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter)
	if err := pageQuery.Find(&assets).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(assets, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormAssetRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(ValidateSortField(filter.OrderBy, AssetSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("tag ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAssetRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("tag ILIKE ? OR name ILIKE ? OR serial_number ILIKE ? OR brand ILIKE ? OR model ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "condition":
			query = query.Where("condition = ?", value)
		case "location":
			query = query.Where("location = ?", value)
		case "brand":
			query = query.Where("brand = ?", value)
		}
	}

	return query
}

// Ensure GormAssetRepository implements AssetRepository
var _ asset.AssetRepository = (*GormAssetRepository)(nil)
