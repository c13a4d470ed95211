package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormExpenseClaimRepository implements ExpenseRepository using GORM
type GormExpenseClaimRepository struct {
	db *gorm.DB
}

// NewGormExpenseClaimRepository creates a new GormExpenseClaimRepository
func NewGormExpenseClaimRepository(db *gorm.DB) *GormExpenseClaimRepository {
	return &GormExpenseClaimRepository{db: db}
}

// FindByID finds a claim by ID
func (r *GormExpenseClaimRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*expense.Expense, error) {
	var claim expense.Expense
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// FindByNumber finds a claim by its expense number
func (r *GormExpenseClaimRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*expense.Expense, error) {
	var claim expense.Expense
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND number = ?", companyID, number).
		First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// FindAll finds claims with filters
func (r *GormExpenseClaimRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*expense.Expense], error) {
	query := r.db.WithContext(ctx).Model(&expense.Expense{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByEmployee finds an employee's claims, newest first
func (r *GormExpenseClaimRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*expense.Expense], error) {
	query := r.db.WithContext(ctx).Model(&expense.Expense{}).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID)
	return r.findPage(query, filter)
}

// FindByStatus finds claims in a given status
func (r *GormExpenseClaimRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status expense.Status, filter shared.Filter) (*shared.Paginated[*expense.Expense], error) {
	query := r.db.WithContext(ctx).Model(&expense.Expense{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// MonthToDateTotal sums an employee's non-rejected claims in a category
// for the month containing the date
func (r *GormExpenseClaimRepository) MonthToDateTotal(ctx context.Context, companyID, employeeID uuid.UUID, category expense.Category, date time.Time) (valueobject.Money, error) {
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&expense.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("tenant_id = ? AND employee_id = ? AND category = ? AND expense_date BETWEEN ? AND ? AND status NOT IN ?",
			companyID, employeeID, category, monthStart, monthEnd,
			[]expense.Status{expense.StatusRejected, expense.StatusCancelled}).
		Scan(&total).Error
	if err != nil {
		return valueobject.Money{}, err
	}

	return valueobject.NewMoney(total, valueobject.DefaultCurrency)
}

// Save creates or updates a claim
func (r *GormExpenseClaimRepository) Save(ctx context.Context, claim *expense.Expense) error {
	return r.db.WithContext(ctx).Save(claim).Error
}

// Count counts claims matching the filter
func (r *GormExpenseClaimRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&expense.Expense{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts claims per status
func (r *GormExpenseClaimRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[expense.Status]int64, error) {
	type row struct {
		Status expense.Status
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&expense.Expense{}).
		Select("status, COUNT(*) as total").
		Where("tenant_id = ?", companyID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[expense.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// NextSequence returns the next expense sequence for a month
func (r *GormExpenseClaimRepository) NextSequence(ctx context.Context, companyID uuid.UUID, date time.Time) (int, error) {
	prefix := "EXP-" + date.Format("200601") + "-%"

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&expense.Expense{}).
		Where("tenant_id = ? AND number LIKE ?", companyID, prefix).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormExpenseClaimRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*expense.Expense], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var claims []*expense.Expense
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter)
	if err := pageQuery.Find(&claims).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(claims, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormExpenseClaimRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, ExpenseSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("expense_date DESC, number DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormExpenseClaimRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR title ILIKE ? OR receipt_vendor_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "client_billable":
			query = query.Where("client_billable = ?", value)
		case "date_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("expense_date >= ?", t)
			}
		case "date_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("expense_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormExpenseClaimRepository implements ExpenseRepository
var _ expense.ExpenseRepository = (*GormExpenseClaimRepository)(nil)
