package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	documentapp "github.com/hrms/backend/internal/application/document"
	"github.com/hrms/backend/internal/domain/shared"
)

// DocumentHandler handles employee and company document API endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *documentapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// InitiateUploadRequest represents a request to start a document upload
type InitiateUploadRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id"` // Omit for company-wide documents
	Name       string     `json:"name" binding:"required,max=200" example:"Employment contract"`
	Type       string     `json:"type" binding:"required,oneof=contract id_proof address_proof certificate policy offer_letter payslip tax_form other" example:"contract"`
	Category   string     `json:"category" binding:"required,oneof=personal employment legal financial other" example:"employment"`
	FileName   string     `json:"file_name" binding:"required,max=255" example:"contract-2026.pdf"`
	FileSize   int64      `json:"file_size" binding:"required,min=1" example:"204800"`
	MimeType   string     `json:"mime_type" binding:"required,max=100" example:"application/pdf"`
	FileHash   string     `json:"file_hash" binding:"required,len=64" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

// SetDocumentMetadataRequest carries document metadata to set
type SetDocumentMetadataRequest struct {
	Number           string     `json:"number" binding:"max=100"`
	IssueDate        *time.Time `json:"issue_date"`
	ExpiryDate       *time.Time `json:"expiry_date"`
	IssuingAuthority string     `json:"issuing_authority" binding:"max=200"`

	Confidential         *bool `json:"confidential"`
	Mandatory            *bool `json:"mandatory"`
	RequiresAck          *bool `json:"requires_ack"`
	RetentionPeriodYears *int  `json:"retention_period_years"`
	LegalHold            *bool `json:"legal_hold"`
}

// RejectDocumentRequest carries the rejection reason
type RejectDocumentRequest struct {
	Reason string `json:"reason" binding:"required,max=500" example:"Scan is unreadable"`
}

// DownloadURLResponse carries a presigned download link
type DownloadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpireDocumentsResponse reports how many documents were expired
type ExpireDocumentsResponse struct {
	Expired int `json:"expired" example:"3"`
}

// InitiateUpload godoc
// @ID           initiateDocumentUpload
//
//	@Summary		Initiate document upload
//	@Description	Create a document record and return a presigned upload URL
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		InitiateUploadRequest	true	"Upload metadata"
//	@Success		201			{object}	APIResponse[documentapp.InitiateUploadResult]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/upload [post]
func (h *DocumentHandler) InitiateUpload(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	uploadedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := documentapp.InitiateUploadInput{
		CompanyID:  companyID,
		UploadedBy: uploadedBy,
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Type:       req.Type,
		Category:   req.Category,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		FileHash:   req.FileHash,
	}

	result, err := h.documentService.InitiateUpload(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ConfirmUpload godoc
// @ID           confirmDocumentUpload
//
//	@Summary		Confirm document upload
//	@Description	Confirm that the file was uploaded to storage and queue the document for review
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/confirm [post]
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	doc, err := h.documentService.ConfirmUpload(c.Request.Context(), companyID, documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// SetMetadata godoc
// @ID           setDocumentMetadata
//
//	@Summary		Set document metadata
//	@Description	Update a document's reference details and compliance flags
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Document ID"	format(uuid)
//	@Param			request		body		SetDocumentMetadataRequest	true	"Metadata"
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/metadata [put]
func (h *DocumentHandler) SetMetadata(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req SetDocumentMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := documentapp.MetadataInput{
		CompanyID:            companyID,
		ID:                   documentID,
		Number:               req.Number,
		IssueDate:            req.IssueDate,
		ExpiryDate:           req.ExpiryDate,
		IssuingAuthority:     req.IssuingAuthority,
		Confidential:         req.Confidential,
		Mandatory:            req.Mandatory,
		RequiresAck:          req.RequiresAck,
		RetentionPeriodYears: req.RetentionPeriodYears,
		LegalHold:            req.LegalHold,
	}

	doc, err := h.documentService.SetMetadata(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Approve godoc
// @ID           approveDocument
//
//	@Summary		Approve document
//	@Description	Approve a document under review
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/approve [post]
func (h *DocumentHandler) Approve(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	reviewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	doc, err := h.documentService.Approve(c.Request.Context(), companyID, documentID, reviewerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Reject godoc
// @ID           rejectDocument
//
//	@Summary		Reject document
//	@Description	Reject a document under review with a reason
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Document ID"	format(uuid)
//	@Param			request		body		RejectDocumentRequest	true	"Rejection reason"
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/reject [post]
func (h *DocumentHandler) Reject(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	reviewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req RejectDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.documentService.Reject(c.Request.Context(), companyID, documentID, reviewerID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Acknowledge godoc
// @ID           acknowledgeDocument
//
//	@Summary		Acknowledge document
//	@Description	Record an employee's acknowledgment of a document
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Param			employee_id	query		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/acknowledge [post]
func (h *DocumentHandler) Acknowledge(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	doc, err := h.documentService.Acknowledge(c.Request.Context(), companyID, documentID, employeeID, c.ClientIP())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// DownloadURL godoc
// @ID           getDocumentDownloadURL
//
//	@Summary		Get document download URL
//	@Description	Generate a short-lived presigned download link for a document
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Success		200			{object}	APIResponse[DownloadURLResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/download [get]
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	url, expiresAt, err := h.documentService.DownloadURL(c.Request.Context(), companyID, documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DownloadURLResponse{URL: url, ExpiresAt: expiresAt})
}

// Archive godoc
// @ID           archiveDocument
//
//	@Summary		Archive document
//	@Description	Move a document into the archive
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/archive [post]
func (h *DocumentHandler) Archive(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	doc, err := h.documentService.Archive(c.Request.Context(), companyID, documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Delete godoc
// @ID           deleteDocument
//
//	@Summary		Delete document
//	@Description	Delete a document and its stored file; legal holds block deletion
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Document ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), companyID, documentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Get godoc
// @ID           getDocument
//
//	@Summary		Get document
//	@Description	Retrieve a document by ID
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Document ID"	format(uuid)
//	@Success		200			{object}	APIResponse[documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	doc, err := h.documentService.Get(c.Request.Context(), companyID, documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// ListByEmployee godoc
// @ID           listEmployeeDocuments
//
//	@Summary		List employee documents
//	@Description	Retrieve a paginated list of an employee's documents
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/employees/{employee_id} [get]
func (h *DocumentHandler) ListByEmployee(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.documentService.ListByEmployee(c.Request.Context(), companyID, employeeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Documents, result.Total, result.Page, result.PageSize)
}

// ListCompanyWide godoc
// @ID           listCompanyDocuments
//
//	@Summary		List company documents
//	@Description	Retrieve a paginated list of company-wide documents
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents [get]
func (h *DocumentHandler) ListCompanyWide(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.documentService.ListCompanyWide(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Documents, result.Total, result.Page, result.PageSize)
}

// PendingAcknowledgments godoc
// @ID           listPendingAcknowledgments
//
//	@Summary		List pending acknowledgments
//	@Description	Retrieve the documents an employee still needs to acknowledge
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[[]documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/employees/{employee_id}/pending-acks [get]
func (h *DocumentHandler) PendingAcknowledgments(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	docs, err := h.documentService.PendingAcknowledgments(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, docs)
}

// ListExpiring godoc
// @ID           listExpiringDocuments
//
//	@Summary		List expiring documents
//	@Description	Retrieve documents that expire within the given window
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			within_days	query		int		false	"Window in days"	default(30)
//	@Success		200			{object}	APIResponse[[]documentapp.DocumentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/expiring [get]
func (h *DocumentHandler) ListExpiring(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	withinDays, err := strconv.Atoi(c.DefaultQuery("within_days", "30"))
	if err != nil || withinDays < 1 {
		withinDays = 30
	}

	docs, err := h.documentService.ListExpiring(c.Request.Context(), companyID, withinDays)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, docs)
}

// ExpireDocuments godoc
// @ID           expireDocuments
//
//	@Summary		Expire documents
//	@Description	Mark documents past their expiry date as expired
//	@Tags			documents
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[ExpireDocumentsResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/documents/expire [post]
func (h *DocumentHandler) ExpireDocuments(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	expired, err := h.documentService.ExpireDocuments(c.Request.Context(), companyID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ExpireDocumentsResponse{Expired: expired})
}
