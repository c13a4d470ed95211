package handler

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	importapp "github.com/hrms/backend/internal/application/import"
	"github.com/hrms/backend/internal/domain/bulk"
	"github.com/hrms/backend/internal/domain/shared"
	csvimport "github.com/hrms/backend/internal/infrastructure/import"
	"github.com/hrms/backend/internal/interfaces/http/dto"
)

// EmployeeImportHandler handles employee-specific import operations
type EmployeeImportHandler struct {
	BaseHandler
	importService  *importapp.EmployeeImportService
	historyService *importapp.ImportHistoryService
	sessionStore   csvimport.SessionStore
	// validRows stores validated rows for import
	validRowsStore     map[uuid.UUID][]*csvimport.Row
	validRowsStoreMu   sync.RWMutex
	validRowsStoreTTL  time.Duration
	validRowsCleanupCh chan struct{}
}

// NewEmployeeImportHandler creates a new EmployeeImportHandler
func NewEmployeeImportHandler(
	importService *importapp.EmployeeImportService,
	historyService *importapp.ImportHistoryService,
) *EmployeeImportHandler {
	h := &EmployeeImportHandler{
		importService:      importService,
		historyService:     historyService,
		sessionStore:       csvimport.NewInMemorySessionStore(15 * time.Minute),
		validRowsStore:     make(map[uuid.UUID][]*csvimport.Row),
		validRowsStoreTTL:  15 * time.Minute,
		validRowsCleanupCh: make(chan struct{}),
	}

	// Start background cleanup
	go h.cleanupValidRowsStore()

	return h
}

// cleanupValidRowsStore periodically removes expired valid rows
func (h *EmployeeImportHandler) cleanupValidRowsStore() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.validRowsStoreMu.Lock()
			// Clean up entries where session no longer exists
			for sessionID := range h.validRowsStore {
				session, _ := h.sessionStore.Get(sessionID)
				if session == nil {
					delete(h.validRowsStore, sessionID)
				}
			}
			h.validRowsStoreMu.Unlock()
		case <-h.validRowsCleanupCh:
			return
		}
	}
}

// Stop stops the background cleanup goroutine
func (h *EmployeeImportHandler) Stop() {
	close(h.validRowsCleanupCh)
}

// ValidateEmployees godoc
//
//	@Summary		Validate employee CSV file for import
//	@Description	Validates an employee CSV file for import without actually importing the data
//	@Tags			import
//	@ID				validateEmployeeImport
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			file		formData	file	true	"CSV file to validate"
//	@Success		200			{object}	APIResponse[dto.EmployeeImportValidateResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		413			{object}	ErrorResponse
//	@Failure		415			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/import/employees/validate [post]
func (h *EmployeeImportHandler) ValidateEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
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
	session := csvimport.NewImportSession(companyID, userID, csvimport.EntityEmployees, header.Filename, header.Size)

	// Get validation rules from service
	rules := h.importService.GetValidationRules()

	// Create processor with reference and uniqueness lookup
	processor := csvimport.NewImportProcessor(
		csvimport.WithReferenceLookup(func(refType, value string) (bool, error) {
			if refType == "department" {
				return h.importService.LookupDepartment(ctx, companyID, value)
			}
			return true, nil
		}),
		csvimport.WithUniqueLookup(func(entityType, field, value string) (bool, error) {
			return h.importService.LookupUnique(ctx, companyID, field, value)
		}),
	)

	// Run validation
	result, err := processor.Validate(ctx, session, file, rules)
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

	// Parse file again to collect valid rows (the validator consumed the reader)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		log.Printf("failed to seek file: %v", err)
		h.InternalError(c, "Failed to process file")
		return
	}
	parser, err := csvimport.NewCSVParser(file)
	if err == nil {
		if err := parser.ParseHeader(); err == nil {
			var validRows []*csvimport.Row
			// Build error row index for O(1) lookup
			errorRows := make(map[int]bool)
			for _, e := range result.Errors {
				errorRows[e.Row] = true
			}

			for {
				row, err := parser.ReadRow()
				if err == io.EOF {
					break
				}
				if err != nil {
					continue
				}
				if row.IsEmpty() {
					continue
				}

				if !errorRows[row.LineNumber] {
					validRows = append(validRows, row)
				}
			}

			// Store valid rows for import
			if len(validRows) > 0 {
				h.validRowsStoreMu.Lock()
				h.validRowsStore[session.ID] = validRows
				h.validRowsStoreMu.Unlock()
			}
		}
	}

	// Save session
	if err := h.sessionStore.Save(session); err != nil {
		h.InternalError(c, "failed to save import session")
		return
	}

	response := dto.EmployeeImportValidateResponse{
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

// ImportEmployees godoc
//
//	@Summary		Import employees from validated CSV
//	@Description	Imports employees from a previously validated CSV file
//	@Tags			import
//	@ID				importEmployees
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		dto.EmployeeImportRequest	true	"Import request"
//	@Success		200			{object}	APIResponse[dto.EmployeeImportResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/import/employees [post]
func (h *EmployeeImportHandler) ImportEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req dto.EmployeeImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	validationID, err := uuid.Parse(req.ValidationID)
	if err != nil {
		h.BadRequest(c, "Invalid validation_id")
		return
	}

	conflictMode := importapp.ConflictMode(req.ConflictMode)
	if !conflictMode.IsValid() {
		h.BadRequest(c, "Invalid conflict_mode, must be one of: skip, update, fail")
		return
	}

	// Get session
	session, err := h.sessionStore.Get(validationID)
	if err != nil {
		h.InternalError(c, "failed to retrieve session")
		return
	}

	if session == nil {
		h.NotFound(c, "Import session not found or expired")
		return
	}

	// Verify company ownership
	if session.TenantID != companyID {
		h.NotFound(c, "Import session not found or expired")
		return
	}

	// Verify session state
	if session.State != csvimport.StateValidated {
		h.BadRequest(c, "Session must be validated before import. Current state: "+string(session.State))
		return
	}

	// Get valid rows
	h.validRowsStoreMu.RLock()
	validRows := h.validRowsStore[validationID]
	h.validRowsStoreMu.RUnlock()

	if len(validRows) == 0 {
		h.BadRequest(c, "No valid rows found for import. Please re-validate the file.")
		return
	}

	// Record the import in history
	history, err := h.historyService.CreateHistory(
		ctx, companyID, bulk.ImportEntityEmployees,
		session.FileName, session.FileSize,
		bulk.ConflictMode(conflictMode), userID,
	)
	if err != nil {
		h.InternalError(c, "failed to create import history: "+err.Error())
		return
	}
	if err := h.historyService.StartProcessing(ctx, companyID, history.ID, len(validRows)); err != nil {
		log.Printf("WARNING: failed to mark import %s as started: %v", history.ID, err)
	}

	// Import employees
	result, err := h.importService.Import(ctx, companyID, userID, session, validRows, conflictMode)
	if err != nil {
		if failErr := h.historyService.FailImport(ctx, companyID, history.ID, nil); failErr != nil {
			log.Printf("WARNING: failed to mark import %s as failed: %v", history.ID, failErr)
		}
		if domainErr, ok := err.(*shared.DomainError); ok {
			h.Error(c, http.StatusUnprocessableEntity, domainErr.Code, domainErr.Message)
			return
		}
		h.InternalError(c, "failed to import employees: "+err.Error())
		return
	}

	if err := h.historyService.CompleteImport(
		ctx, companyID, history.ID,
		result.ImportedRows, result.ErrorRows, result.SkippedRows, result.UpdatedRows,
		result.Errors,
	); err != nil {
		log.Printf("WARNING: failed to record import %s result: %v", history.ID, err)
	}

	// Clean up valid rows
	h.validRowsStoreMu.Lock()
	delete(h.validRowsStore, validationID)
	h.validRowsStoreMu.Unlock()

	// Update session in store
	if err := h.sessionStore.Save(session); err != nil {
		log.Printf("ERROR: failed to update session %s after import: %v", session.ID, err)
	}

	response := dto.EmployeeImportResponse{
		TotalRows:    result.TotalRows,
		ImportedRows: result.ImportedRows,
		UpdatedRows:  result.UpdatedRows,
		SkippedRows:  result.SkippedRows,
		ErrorRows:    result.ErrorRows,
		Errors:       result.Errors,
		IsTruncated:  result.IsTruncated,
		TotalErrors:  result.TotalErrors,
	}

	h.Success(c, response)
}
