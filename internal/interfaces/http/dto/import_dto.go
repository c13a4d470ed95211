package dto

import (
	"time"

	"github.com/hrms/backend/internal/domain/bulk"
	csvimport "github.com/hrms/backend/internal/infrastructure/import"
)

// EmployeeImportValidateRequest represents the request for employee import validation
type EmployeeImportValidateRequest struct {
	EntityType string `form:"entity_type" binding:"required"`
}

// EmployeeImportRequest represents the request to import employees
type EmployeeImportRequest struct {
	ValidationID string `json:"validation_id" binding:"required,uuid"`
	ConflictMode string `json:"conflict_mode" binding:"required,oneof=skip update fail"`
}

// EmployeeImportResponse represents the response from employee import
// @Description Response from employee bulk import operation
type EmployeeImportResponse struct {
	TotalRows    int                  `json:"total_rows" example:"100"`
	ImportedRows int                  `json:"imported_rows" example:"95"`
	UpdatedRows  int                  `json:"updated_rows" example:"3"`
	SkippedRows  int                  `json:"skipped_rows" example:"2"`
	ErrorRows    int                  `json:"error_rows" example:"0"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty" example:"false"`
	TotalErrors  int                  `json:"total_errors,omitempty" example:"0"`
}

// EmployeeImportValidateResponse represents the response from employee import validation
// @Description Response from employee CSV validation
type EmployeeImportValidateResponse struct {
	ValidationID string               `json:"validation_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TotalRows    int                  `json:"total_rows" example:"100"`
	ValidRows    int                  `json:"valid_rows" example:"98"`
	ErrorRows    int                  `json:"error_rows" example:"2"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	Preview      []map[string]any     `json:"preview,omitempty"`
	Warnings     []string             `json:"warnings,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty"`
	TotalErrors  int                  `json:"total_errors,omitempty"`
}

// ImportHistoryListRequest represents the query parameters for listing import histories
type ImportHistoryListRequest struct {
	EntityType  string `form:"entity_type"`
	Status      string `form:"status"`
	StartedFrom string `form:"started_from"`
	StartedTo   string `form:"started_to"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size" binding:"omitempty,max=100"`
}

// ImportHistoryResponse represents a single import history record
// @Description Import history details
type ImportHistoryResponse struct {
	ID           string                   `json:"id"`
	EntityType   string                   `json:"entity_type" example:"employees"`
	FileName     string                   `json:"file_name" example:"employees.csv"`
	FileSize     int64                    `json:"file_size" example:"10240"`
	TotalRows    int                      `json:"total_rows" example:"100"`
	SuccessRows  int                      `json:"success_rows" example:"95"`
	ErrorRows    int                      `json:"error_rows" example:"2"`
	SkippedRows  int                      `json:"skipped_rows" example:"3"`
	UpdatedRows  int                      `json:"updated_rows" example:"0"`
	ConflictMode string                   `json:"conflict_mode" example:"skip"`
	Status       string                   `json:"status" example:"completed"`
	SuccessRate  float64                  `json:"success_rate" example:"95"`
	ErrorDetails []bulk.ImportErrorDetail `json:"error_details,omitempty"`
	ImportedBy   *string                  `json:"imported_by,omitempty"`
	StartedAt    *time.Time               `json:"started_at,omitempty"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// NewImportHistoryResponse converts a domain ImportHistory to its response DTO
func NewImportHistoryResponse(h *bulk.ImportHistory) ImportHistoryResponse {
	resp := ImportHistoryResponse{
		ID:           h.ID.String(),
		EntityType:   string(h.EntityType),
		FileName:     h.FileName,
		FileSize:     h.FileSize,
		TotalRows:    h.TotalRows,
		SuccessRows:  h.SuccessRows,
		ErrorRows:    h.ErrorRows,
		SkippedRows:  h.SkippedRows,
		UpdatedRows:  h.UpdatedRows,
		ConflictMode: string(h.ConflictMode),
		Status:       string(h.Status),
		SuccessRate:  h.SuccessRate(),
		ErrorDetails: h.ErrorDetails,
		StartedAt:    h.StartedAt,
		CompletedAt:  h.CompletedAt,
		CreatedAt:    h.CreatedAt,
	}
	if h.ImportedBy != nil {
		importedBy := h.ImportedBy.String()
		resp.ImportedBy = &importedBy
	}
	return resp
}

// ImportHistoryListResponse represents a paginated list of import histories
// @Description Paginated import history list
type ImportHistoryListResponse struct {
	Items      []ImportHistoryResponse `json:"items"`
	TotalCount int64                   `json:"total_count" example:"42"`
	Page       int                     `json:"page" example:"1"`
	PageSize   int                     `json:"page_size" example:"20"`
}

// NewImportHistoryListResponse converts a domain list result to its response DTO
func NewImportHistoryListResponse(result *bulk.ImportHistoryListResult) ImportHistoryListResponse {
	items := make([]ImportHistoryResponse, len(result.Items))
	for i, h := range result.Items {
		items[i] = NewImportHistoryResponse(h)
	}
	return ImportHistoryListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
	}
}
