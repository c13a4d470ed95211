package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/performance"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by ID, goals included
func (r *GormReviewRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*performance.Review, error) {
	var review performance.Review
	if err := r.db.WithContext(ctx).
		Preload("Goals").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindAll finds reviews with filters
func (r *GormReviewRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*performance.Review], error) {
	query := r.db.WithContext(ctx).Model(&performance.Review{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByEmployee finds an employee's reviews, newest first
func (r *GormReviewRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*performance.Review], error) {
	query := r.db.WithContext(ctx).Model(&performance.Review{}).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID)
	return r.findPage(query, filter)
}

// FindByReviewer finds reviews assigned to a reviewer
func (r *GormReviewRepository) FindByReviewer(ctx context.Context, companyID, reviewerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*performance.Review], error) {
	query := r.db.WithContext(ctx).Model(&performance.Review{}).
		Where("tenant_id = ? AND reviewer_id = ?", companyID, reviewerID)
	return r.findPage(query, filter)
}

// FindByStatus finds reviews in a given status
func (r *GormReviewRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status performance.ReviewStatus, filter shared.Filter) (*shared.Paginated[*performance.Review], error) {
	query := r.db.WithContext(ctx).Model(&performance.Review{}).
		Where("tenant_id = ? AND status = ?", companyID, status)
	return r.findPage(query, filter)
}

// FindOverdue finds open reviews past their due date
func (r *GormReviewRepository) FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*performance.Review, error) {
	var reviews []*performance.Review
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status NOT IN ? AND due_date < ?",
			companyID,
			[]performance.ReviewStatus{performance.ReviewStatusCompleted, performance.ReviewStatusCancelled},
			asOf).
		Order("due_date ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindOverlapping finds non-cancelled reviews for an employee whose
// period overlaps [start, end]
func (r *GormReviewRepository) FindOverlapping(ctx context.Context, companyID, employeeID uuid.UUID, start, end time.Time) ([]*performance.Review, error) {
	var reviews []*performance.Review
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND status <> ? AND period_start <= ? AND period_end >= ?",
			companyID, employeeID, performance.ReviewStatusCancelled, end, start).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates or updates a review with its goals
func (r *GormReviewRepository) Save(ctx context.Context, review *performance.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Goals").Save(review).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(review.Goals))
		for i, goal := range review.Goals {
			currentIDs[i] = goal.ID
		}

		staleQuery := tx.Where("review_id = ?", review.ID)
		if len(currentIDs) > 0 {
			staleQuery = staleQuery.Where("id NOT IN ?", currentIDs)
		}
		if err := staleQuery.Delete(&performance.Goal{}).Error; err != nil {
			return err
		}

		for i := range review.Goals {
			review.Goals[i].ReviewID = review.ID
			if err := tx.Save(&review.Goals[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count counts reviews matching the filter
func (r *GormReviewRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&performance.Review{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormReviewRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*performance.Review], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var reviews []*performance.Review
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter).Preload("Goals")
	if err := pageQuery.Find(&reviews).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(reviews, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormReviewRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, PerformanceReviewSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("period_end DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormReviewRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "reviewer_id":
			query = query.Where("reviewer_id = ?", value)
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

// Ensure GormReviewRepository implements ReviewRepository
var _ performance.ReviewRepository = (*GormReviewRepository)(nil)
