package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShiftRepository implements ShiftRepository using GORM
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// FindByID finds a shift by ID
func (r *GormShiftRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*attendance.Shift, error) {
	var shift attendance.Shift
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

// FindByCode finds a shift by its code
func (r *GormShiftRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*attendance.Shift, error) {
	var shift attendance.Shift
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

// FindAll finds all shifts for a company
func (r *GormShiftRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]attendance.Shift, error) {
	query := r.db.WithContext(ctx).Model(&attendance.Shift{}).Where("tenant_id = ?", companyID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "is_night_shift":
			query = query.Where("is_night_shift = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("code ASC")

	var shifts []attendance.Shift
	if err := query.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// FindActive finds all active shifts for a company
func (r *GormShiftRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]attendance.Shift, error) {
	var shifts []attendance.Shift
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", companyID, true).
		Order("code ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// Save creates or updates a shift
func (r *GormShiftRepository) Save(ctx context.Context, shift *attendance.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

// Delete deletes a shift
func (r *GormShiftRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&attendance.Shift{}, "tenant_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByCode checks if a shift code is taken
func (r *GormShiftRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&attendance.Shift{}).
		Where("tenant_id = ? AND code = ?", companyID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormShiftRepository implements ShiftRepository
var _ attendance.ShiftRepository = (*GormShiftRepository)(nil)

// GormHolidayRepository implements HolidayRepository using GORM
type GormHolidayRepository struct {
	db *gorm.DB
}

// NewGormHolidayRepository creates a new GormHolidayRepository
func NewGormHolidayRepository(db *gorm.DB) *GormHolidayRepository {
	return &GormHolidayRepository{db: db}
}

// FindByID finds a holiday by ID
func (r *GormHolidayRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*attendance.Holiday, error) {
	var holiday attendance.Holiday
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&holiday).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &holiday, nil
}

// FindByYear finds holidays falling in a calendar year, recurring ones included
func (r *GormHolidayRepository) FindByYear(ctx context.Context, companyID uuid.UUID, year int) ([]attendance.Holiday, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	var holidays []attendance.Holiday
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (is_recurring = ? OR date BETWEEN ? AND ?)", companyID, true, start, end).
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

// FindByDate finds holidays on a date, matching recurring ones by month and day
func (r *GormHolidayRepository) FindByDate(ctx context.Context, companyID uuid.UUID, date time.Time) ([]attendance.Holiday, error) {
	day := dateOnly(date)

	var holidays []attendance.Holiday
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (date = ? OR (is_recurring = ? AND EXTRACT(MONTH FROM date) = ? AND EXTRACT(DAY FROM date) = ?))",
			companyID, day, true, int(day.Month()), day.Day()).
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

// FindAll finds all holidays for a company
func (r *GormHolidayRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]attendance.Holiday, error) {
	query := r.db.WithContext(ctx).Model(&attendance.Holiday{}).Where("tenant_id = ?", companyID)

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var holidays []attendance.Holiday
	if err := query.Order("date ASC").Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

// Save creates or updates a holiday
func (r *GormHolidayRepository) Save(ctx context.Context, holiday *attendance.Holiday) error {
	return r.db.WithContext(ctx).Save(holiday).Error
}

// Delete deletes a holiday
func (r *GormHolidayRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&attendance.Holiday{}, "tenant_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormHolidayRepository implements HolidayRepository
var _ attendance.HolidayRepository = (*GormHolidayRepository)(nil)
