package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/document"
	"github.com/hrms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document by ID, acknowledgments included
func (r *GormDocumentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*document.Document, error) {
	var doc document.Document
	if err := r.db.WithContext(ctx).
		Preload("Acknowledgments").
		Where("tenant_id = ? AND id = ?", companyID, id).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll finds documents with filters
func (r *GormDocumentRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*document.Document], error) {
	query := r.db.WithContext(ctx).Model(&document.Document{}).Where("tenant_id = ?", companyID)
	return r.findPage(query, filter)
}

// FindByEmployee finds documents scoped to one employee
func (r *GormDocumentRepository) FindByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*shared.Paginated[*document.Document], error) {
	query := r.db.WithContext(ctx).Model(&document.Document{}).
		Where("tenant_id = ? AND employee_id = ?", companyID, employeeID)
	return r.findPage(query, filter)
}

// FindCompanyWide finds documents not scoped to any employee
func (r *GormDocumentRepository) FindCompanyWide(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*document.Document], error) {
	query := r.db.WithContext(ctx).Model(&document.Document{}).
		Where("tenant_id = ? AND employee_id IS NULL", companyID)
	return r.findPage(query, filter)
}

// FindByCategory finds documents in a category
func (r *GormDocumentRepository) FindByCategory(ctx context.Context, companyID uuid.UUID, category document.Category, filter shared.Filter) (*shared.Paginated[*document.Document], error) {
	query := r.db.WithContext(ctx).Model(&document.Document{}).
		Where("tenant_id = ? AND category = ?", companyID, category)
	return r.findPage(query, filter)
}

// FindExpiring finds active documents expiring before the date
func (r *GormDocumentRepository) FindExpiring(ctx context.Context, companyID uuid.UUID, before time.Time) ([]*document.Document, error) {
	var docs []*document.Document
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND expiry_date IS NOT NULL AND expiry_date <= ? AND expiry_date >= ?",
			companyID, document.StatusActive, before, time.Now()).
		Order("expiry_date ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// FindExpired finds active documents already past expiry
func (r *GormDocumentRepository) FindExpired(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*document.Document, error) {
	var docs []*document.Document
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND expiry_date IS NOT NULL AND expiry_date < ?",
			companyID, document.StatusActive, asOf).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// FindPendingAcknowledgment finds active documents an employee still has to acknowledge
func (r *GormDocumentRepository) FindPendingAcknowledgment(ctx context.Context, companyID, employeeID uuid.UUID) ([]*document.Document, error) {
	var docs []*document.Document
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND requires_acknowledgment = ? AND (employee_id IS NULL OR employee_id = ?)",
			companyID, document.StatusActive, true, employeeID).
		Where("NOT EXISTS (SELECT 1 FROM document_acknowledgments da WHERE da.document_id = documents.id AND da.employee_id = ?)", employeeID).
		Order("created_at ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save creates or updates a document with its acknowledgments
func (r *GormDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Acknowledgments").Save(doc).Error; err != nil {
			return err
		}

		// Acknowledgments are append-only
		for i := range doc.Acknowledgments {
			doc.Acknowledgments[i].DocumentID = doc.ID
			if err := tx.Save(&doc.Acknowledgments[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes a document record
func (r *GormDocumentRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&document.Acknowledgment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&document.Document{}, "tenant_id = ? AND id = ?", companyID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts documents matching the filter
func (r *GormDocumentRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&document.Document{}).Where("tenant_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// findPage runs the count and page queries and assembles a paginated result
func (r *GormDocumentRepository) findPage(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*document.Document], error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(query.Session(&gorm.Session{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var docs []*document.Document
	pageQuery := r.applyFilter(query.Session(&gorm.Session{}), filter)
	if err := pageQuery.Find(&docs).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	result := shared.NewPaginated(docs, total, page, pageSize)
	return &result, nil
}

// applyFilter applies filter options to the query
func (r *GormDocumentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order(ValidateSortField(filter.OrderBy, DocumentSortFields, "created_at") + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDocumentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR number ILIKE ? OR description ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "is_confidential":
			query = query.Where("is_confidential = ?", value)
		case "requires_acknowledgment":
			query = query.Where("requires_acknowledgment = ?", value)
		case "legal_hold":
			query = query.Where("legal_hold = ?", value)
		}
	}

	return query
}

// Ensure GormDocumentRepository implements DocumentRepository
var _ document.DocumentRepository = (*GormDocumentRepository)(nil)
