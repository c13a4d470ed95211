package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hrms/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"

	csvimport "github.com/hrms/backend/internal/infrastructure/import"
)

const (
	// Maximum file size for imports (10MB)
	maxImportFileSize = 10 * 1024 * 1024
)

// ImportHandler handles import-related API endpoints
type ImportHandler struct {
	BaseHandler
	processor    *csvimport.ImportProcessor
	sessionStore csvimport.SessionStore
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler() *ImportHandler {
	return &ImportHandler{
		processor:    csvimport.NewImportProcessor(),
		sessionStore: csvimport.NewInMemorySessionStore(15 * time.Minute),
	}
}

// ValidateImportRequest represents the request for import validation
type ValidateImportRequest struct {
	EntityType string `form:"entity_type" binding:"required"`
}

// ValidationResponse represents the response from import validation
// @Description Response from CSV import validation
type ValidationResponse struct {
	ValidationID string               `json:"validation_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TotalRows    int                  `json:"total_rows" example:"100"`
	ValidRows    int                  `json:"valid_rows" example:"98"`
	ErrorRows    int                  `json:"error_rows" example:"2"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	Preview      []map[string]any     `json:"preview,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty"`
	TotalErrors  int                  `json:"total_errors,omitempty"`
}

// Validate godoc
//
//	@Summary		Validate CSV file for import
//	@Description	Validates a CSV file for import without actually importing the data
//	@Tags			import
//	@ID				validateImport
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Tenant ID (optional for dev)"
//	@Param			file		formData	file	true	"CSV file to validate"
//	@Param			entity_type	formData	string	true	"Entity type"	Enums(employees, departments, shifts, holidays)
//	@Success		200			{object}	APIResponse[ValidationResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		413			{object}	ErrorResponse
//	@Failure		415			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/import/validate [post]
func (h *ImportHandler) Validate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	// Parse entity type
	entityType := c.PostForm("entity_type")
	if entityType == "" {
		h.BadRequest(c, "entity_type is required")
		return
	}

	if !csvimport.IsValidEntityType(entityType) {
		h.BadRequest(c, "invalid entity_type, must be one of: employees, departments, shifts, holidays")
		return
	}

	// Get file from form
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	// Check file size
	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	// Check content type
	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be a CSV file")
		return
	}

	// Create import session
	session := csvimport.NewImportSession(tenantID, userID, csvimport.EntityType(entityType), header.Filename, header.Size)

	// Get validation rules for entity type
	rules := h.getValidationRules(csvimport.EntityType(entityType))

	// Run validation
	result, err := h.processor.Validate(c.Request.Context(), session, file, rules)
	if err != nil {
		if err == csvimport.ErrEmptyFile {
			h.BadRequest(c, "CSV file is empty")
			return
		}
		if err == csvimport.ErrInvalidEncoding {
			h.BadRequest(c, "CSV file has invalid encoding, must be UTF-8")
			return
		}
		if err == csvimport.ErrMissingHeader {
			h.BadRequest(c, "CSV file is missing header row")
			return
		}
		h.InternalError(c, "failed to validate file: "+err.Error())
		return
	}

	// Save session for future reference
	if err := h.sessionStore.Save(session); err != nil {
		h.InternalError(c, "failed to save import session")
		return
	}

	// Build response
	response := ValidationResponse{
		ValidationID: result.ValidationID,
		TotalRows:    result.TotalRows,
		ValidRows:    result.ValidRows,
		ErrorRows:    result.ErrorRows,
		Errors:       result.Errors,
		Preview:      result.Preview,
		IsTruncated:  result.IsTruncated,
		TotalErrors:  result.TotalErrors,
	}

	h.Success(c, response)
}

// GetSession godoc
//
//	@Summary		Get import session
//	@Description	Retrieves the status and details of an import session
//	@Tags			import
//	@ID				getImportSession
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Tenant ID (optional for dev)"
//	@Param			id			path		string	true	"Session ID (UUID)"
//	@Success		200			{object}	APIResponse[csvimport.ImportSession]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/import/sessions/{id} [get]
func (h *ImportHandler) GetSession(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.sessionStore.Get(sessionID)
	if err != nil {
		h.InternalError(c, "failed to retrieve session")
		return
	}

	if session == nil {
		h.NotFound(c, "Import session not found or expired")
		return
	}

	// Verify tenant ownership to prevent cross-tenant access
	if session.TenantID != tenantID {
		h.NotFound(c, "Import session not found or expired")
		return
	}

	h.Success(c, session)
}

// getValidationRules returns validation rules for an entity type
func (h *ImportHandler) getValidationRules(entityType csvimport.EntityType) []csvimport.FieldRule {
	switch entityType {
	case csvimport.EntityEmployees:
		return h.getEmployeeRules()
	case csvimport.EntityDepartments:
		return h.getDepartmentRules()
	case csvimport.EntityShifts:
		return h.getShiftRules()
	case csvimport.EntityHolidays:
		return h.getHolidayRules()
	default:
		return []csvimport.FieldRule{}
	}
}

// getEmployeeRules returns validation rules for employees
func (h *ImportHandler) getEmployeeRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("code").String().MaxLength(50).Unique().Build(),
		csvimport.Field("first_name").Required().String().MinLength(1).MaxLength(100).Build(),
		csvimport.Field("last_name").Required().String().MinLength(1).MaxLength(100).Build(),
		csvimport.Field("work_email").Email().Build(),
		csvimport.Field("phone").String().MaxLength(50).Pattern(`^[\d\-\+\s\(\)]+$`, "phone number").Build(),
		csvimport.Field("department_code").String().MaxLength(50).Reference("department").Build(),
		csvimport.Field("employment_type").Required().String().MaxLength(20).Build(),
		csvimport.Field("hire_date").Required().Date().Build(),
		csvimport.Field("job_title").String().MaxLength(100).Build(),
		csvimport.Field("base_salary").Decimal().MinValue(decimal.Zero).Build(),
		csvimport.Field("currency").String().MaxLength(3).Build(),
	}
}

// getDepartmentRules returns validation rules for departments
func (h *ImportHandler) getDepartmentRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("code").Required().String().MinLength(1).MaxLength(50).Unique().Build(),
		csvimport.Field("name").Required().String().MinLength(1).MaxLength(200).Build(),
		csvimport.Field("description").String().MaxLength(2000).Build(),
		csvimport.Field("parent_code").String().MaxLength(50).Reference("department").Build(),
		csvimport.Field("sort_order").Int().Build(),
	}
}

// getShiftRules returns validation rules for shifts
func (h *ImportHandler) getShiftRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("code").Required().String().MinLength(1).MaxLength(50).Unique().Build(),
		csvimport.Field("name").Required().String().MinLength(1).MaxLength(200).Build(),
		csvimport.Field("start_time").Required().String().Pattern(`^\d{2}:\d{2}$`, "time of day (HH:MM)").Build(),
		csvimport.Field("end_time").Required().String().Pattern(`^\d{2}:\d{2}$`, "time of day (HH:MM)").Build(),
		csvimport.Field("break_minutes").Int().Build(),
		csvimport.Field("late_grace_minutes").Int().Build(),
		csvimport.Field("early_grace_minutes").Int().Build(),
	}
}

// getHolidayRules returns validation rules for holidays
func (h *ImportHandler) getHolidayRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("name").Required().String().MinLength(1).MaxLength(200).Build(),
		csvimport.Field("date").Required().Date().Build(),
		csvimport.Field("is_recurring").Bool().Build(),
		csvimport.Field("is_optional").Bool().Build(),
		csvimport.Field("description").String().MaxLength(2000).Build(),
	}
}
