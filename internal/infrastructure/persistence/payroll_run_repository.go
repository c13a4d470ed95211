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

// GormPayrollRunRepository implements PayrollRunRepository using GORM
type GormPayrollRunRepository struct {
	db *gorm.DB
}

// NewGormPayrollRunRepository creates a new GormPayrollRunRepository
func NewGormPayrollRunRepository(db *gorm.DB) *GormPayrollRunRepository {
	return &GormPayrollRunRepository{db: db}
}

// FindByID finds a run by ID, payslips included
func (r *GormPayrollRunRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	if err := r.db.WithContext(ctx).
		Preload("Payslips").
		Preload("Payslips.Components").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

// FindByNumber finds a run by its run number
func (r *GormPayrollRunRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	if err := r.db.WithContext(ctx).
		Preload("Payslips").
		Preload("Payslips.Components").
		Where("tenant_id = ? AND number = ?", companyID, number).
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

// FindAll finds runs with filters
func (r *GormPayrollRunRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.PayrollRun], error) {
	query := r.db.WithContext(ctx).Model(&payroll.PayrollRun{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByStatus finds runs in a given status
func (r *GormPayrollRunRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status payroll.RunStatus, filter shared.Filter) (*shared.Paginated[*payroll.PayrollRun], error) {
	query := r.db.WithContext(ctx).Model(&payroll.PayrollRun{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// FindOverlapping finds non-cancelled regular runs whose period overlaps [start, end]
func (r *GormPayrollRunRepository) FindOverlapping(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*payroll.PayrollRun, error) {
	var runs []*payroll.PayrollRun
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND type = ? AND status <> ? AND period_start <= ? AND period_end >= ?",
			companyID, payroll.RunTypeRegular, payroll.RunStatusCancelled, end, start).
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// FindPayslipsByEmployee finds an employee's payslips, newest first
func (r *GormPayrollRunRepository) FindPayslipsByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*payroll.Payslip], error) {
	query := r.db.WithContext(ctx).Model(&payroll.Payslip{}).
		Joins("JOIN payroll_runs pr ON pr.id = payslips.payroll_run_id").
		Where("pr.tenant_id = ? AND payslips.employee_id = ? AND pr.status IN ?",
			companyID, employeeID,
			[]payroll.RunStatus{payroll.RunStatusApproved, payroll.RunStatusPaid})

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pageQuery := query.Session(&gorm.Session{}).Preload("Components")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		pageQuery = pageQuery.Offset(offset).Limit(filter.PageSize)
	}
	pageQuery = pageQuery.Order("pr.pay_date DESC")

	var payslips []*payroll.Payslip
	if err := pageQuery.Find(&payslips).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(payslips, total, page, pageSize)
	return &result, nil
}

// FindPayslip finds one payslip by ID
func (r *GormPayrollRunRepository) FindPayslip(ctx context.Context, companyID, payslipID uuid.UUID) (*payroll.Payslip, error) {
	var payslip payroll.Payslip
	if err := r.db.WithContext(ctx).
		Preload("Components").
		Joins("JOIN payroll_runs pr ON pr.id = payslips.payroll_run_id").
		Where("pr.tenant_id = ? AND payslips.id = ?", companyID, payslipID).
		First(&payslip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payslip, nil
}

// Save creates or updates a run and its payslips
func (r *GormPayrollRunRepository) Save(ctx context.Context, run *payroll.PayrollRun) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Payslips").Save(run).Error; err != nil {
			return err
		}

		// Replace payslips that were removed by a reprocess
		currentIDs := make([]uuid.UUID, len(run.Payslips))
		for i, payslip := range run.Payslips {
			currentIDs[i] = payslip.ID
		}

		staleQuery := tx.Where("payroll_run_id = ?", run.ID)
		if len(currentIDs) > 0 {
			staleQuery = staleQuery.Where("id NOT IN ?", currentIDs)
		}
		var staleIDs []uuid.UUID
		if err := staleQuery.Model(&payroll.Payslip{}).Pluck("id", &staleIDs).Error; err != nil {
			return err
		}
		if len(staleIDs) > 0 {
			if err := tx.Where("payslip_id IN ?", staleIDs).Delete(&payroll.PayslipComponent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", staleIDs).Delete(&payroll.Payslip{}).Error; err != nil {
				return err
			}
		}

		for _, payslip := range run.Payslips {
			payslip.PayrollRunID = run.ID
			if err := tx.Omit("Components").Save(payslip).Error; err != nil {
				return err
			}

			if err := tx.Where("payslip_id = ?", payslip.ID).Delete(&payroll.PayslipComponent{}).Error; err != nil {
				return err
			}
			for i := range payslip.Components {
				payslip.Components[i].PayslipID = payslip.ID
				if err := tx.Save(&payslip.Components[i]).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Count counts runs matching the filter
func (r *GormPayrollRunRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&payroll.PayrollRun{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextSequence returns the next run sequence for a period month
func (r *GormPayrollRunRepository) NextSequence(ctx context.Context, companyID uuid.UUID, periodStart time.Time) (int, error) {
	prefix := "PAY-" + periodStart.Format("200601") + "-%"

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&payroll.PayrollRun{}).
		Where("tenant_id = ? AND number LIKE ?", companyID, prefix).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormPayrollRunRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*payroll.PayrollRun], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var runs []*payroll.PayrollRun
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter)
	if err := pageQuery.Find(&runs).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(runs, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormPayrollRunRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, PayrollRunSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("period_start DESC, number DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPayrollRunRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("number ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "period_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("period_end >= ?", t)
			}
		case "period_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("period_start <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormPayrollRunRepository implements PayrollRunRepository
var _ payroll.PayrollRunRepository = (*GormPayrollRunRepository)(nil)
