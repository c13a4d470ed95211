package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLeaveRequestRepository implements LeaveRequestRepository using GORM
type GormLeaveRequestRepository struct {
	db *gorm.DB
}

// NewGormLeaveRequestRepository creates a new GormLeaveRequestRepository
func NewGormLeaveRequestRepository(db *gorm.DB) *GormLeaveRequestRepository {
	return &GormLeaveRequestRepository{db: db}
}

// FindByID finds a request by ID
func (r *GormLeaveRequestRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAll finds requests with filters
func (r *GormLeaveRequestRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	query := r.db.WithContext(ctx).Model(&leave.LeaveRequest{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByEmployee finds requests for one employee, newest first
func (r *GormLeaveRequestRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	query := r.db.WithContext(ctx).Model(&leave.LeaveRequest{}).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID)
	return r.findPage(query, filter)
}

// FindByStatus finds requests in a given status
func (r *GormLeaveRequestRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status leave.RequestStatus, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	query := r.db.WithContext(ctx).Model(&leave.LeaveRequest{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// FindPendingForApprover finds pending requests whose employees report to the given manager
func (r *GormLeaveRequestRepository) FindPendingForApprover(ctx context.Context, companyID, managerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	query := r.db.WithContext(ctx).Model(&leave.LeaveRequest{}).
		Joins("JOIN employees e ON e.id = leave_requests.employee_id").
		Where("leave_requests.tenant_id = ? AND leave_requests.status = ? AND e.manager_id = ?",
			companyID, leave.RequestStatusPending, managerID)
	return r.findPage(query, filter)
}

// FindOverlapping finds pending or approved requests for an employee
// whose date range overlaps [start, end]
func (r *GormLeaveRequestRepository) FindOverlapping(ctx context.Context, companyID, employeeID uuid.UUID, start, end time.Time) ([]*leave.LeaveRequest, error) {
	var requests []*leave.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
			companyID, employeeID,
			[]leave.RequestStatus{leave.RequestStatusPending, leave.RequestStatusApproved},
			end, start).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindApprovedInRange finds approved requests touching the date range,
// across all employees of the company
func (r *GormLeaveRequestRepository) FindApprovedInRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]*leave.LeaveRequest, error) {
	var requests []*leave.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			companyID, leave.RequestStatusApproved, end, start).
		Order("start_date ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a request
func (r *GormLeaveRequestRepository) Save(ctx context.Context, request *leave.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Count counts requests matching the filter
func (r *GormLeaveRequestRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&leave.LeaveRequest{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts requests per status
func (r *GormLeaveRequestRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[leave.RequestStatus]int64, error) {
	type row struct {
		Status leave.RequestStatus
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Select("status, COUNT(*) as total").
		Where("tenant_id = ?", companyID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[leave.RequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormLeaveRequestRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*leave.LeaveRequest], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var requests []*leave.LeaveRequest
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter)
	if err := pageQuery.Find(&requests).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(requests, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormLeaveRequestRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, LeaveRequestSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormLeaveRequestRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("reason ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "approver_id":
			query = query.Where("approver_id = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("end_date >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("start_date <= ?", t)
			}
		}
	}

	return query
}

// normalizePage returns safe pagination values for result assembly
func normalizePage(filter shared.Filter) (int, int) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// Ensure GormLeaveRequestRepository implements LeaveRequestRepository
var _ leave.LeaveRequestRepository = (*GormLeaveRequestRepository)(nil)
