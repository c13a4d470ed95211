package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSalaryStructureRepository implements SalaryStructureRepository using GORM
type GormSalaryStructureRepository struct {
	db *gorm.DB
}

// NewGormSalaryStructureRepository creates a new GormSalaryStructureRepository
func NewGormSalaryStructureRepository(db *gorm.DB) *GormSalaryStructureRepository {
	return &GormSalaryStructureRepository{db: db}
}

// FindByID finds a structure by ID
func (r *GormSalaryStructureRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.SalaryStructure, error) {
	var structure payroll.SalaryStructure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &structure, nil
}

// FindActiveByEmployee finds the active structure for an employee
func (r *GormSalaryStructureRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*payroll.SalaryStructure, error) {
	var structure payroll.SalaryStructure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND is_active = ?", companyID, employeeID, true).
		Order("effective_from DESC").
		First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &structure, nil
}

// FindEffectiveByEmployee finds the structure effective for an employee on a date
func (r *GormSalaryStructureRepository) FindEffectiveByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*payroll.SalaryStructure, error) {
	var structure payroll.SalaryStructure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)",
			companyID, employeeID, date, date).
		Order("effective_from DESC").
		First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &structure, nil
}

// FindHistoryByEmployee finds all structures for an employee, newest first
func (r *GormSalaryStructureRepository) FindHistoryByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]*payroll.SalaryStructure, error) {
	var structures []*payroll.SalaryStructure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID).
		Order("effective_from DESC").
		Find(&structures).Error; err != nil {
		return nil, err
	}
	return structures, nil
}

// FindActive finds all active structures for the company
func (r *GormSalaryStructureRepository) FindActive(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.SalaryStructure], error) {
	query := r.db.WithContext(ctx).Model(&payroll.SalaryStructure{}).
		Where("tenant_id = ? AND is_active = ?", companyID, true)

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
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
		pageQuery = pageQuery.Order(ValidateSortField(filter.OrderBy, CommonSortFields, "created_at") + " " + orderDir)
	} else {
		pageQuery = pageQuery.Order("effective_from DESC")
	}

	var structures []*payroll.SalaryStructure
	if err := pageQuery.Find(&structures).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(structures, total, page, pageSize)
	return &result, nil
}

// Save creates or updates a structure
func (r *GormSalaryStructureRepository) Save(ctx context.Context, structure *payroll.SalaryStructure) error {
	return r.db.WithContext(ctx).Save(structure).Error
}

// Ensure GormSalaryStructureRepository implements SalaryStructureRepository
var _ payroll.SalaryStructureRepository = (*GormSalaryStructureRepository)(nil)
