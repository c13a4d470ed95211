package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/document"
	"github.com/hrms/backend/internal/domain/shared"
)

// AllowedContentTypes is the whitelist of content types accepted for HR
// documents. Executables and scripts are rejected; SVG is excluded because
// it can carry embedded scripts.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/tiff": true,

	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,

	"text/plain": true,
	"text/csv":   true,

	"application/zip": true,
}

// ObjectStorageService defines the object storage operations the document
// service needs. Implemented by the infrastructure layer.
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// DocumentServiceConfig holds configuration for the document service
type DocumentServiceConfig struct {
	UploadURLExpiry   time.Duration
	DownloadURLExpiry time.Duration
	MaxFileSizeBytes  int64
}

// DefaultDocumentServiceConfig returns the default configuration
func DefaultDocumentServiceConfig() DocumentServiceConfig {
	return DocumentServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
		MaxFileSizeBytes:  50 << 20, // 50 MiB
	}
}

// DocumentService handles document storage, review and acknowledgment
type DocumentService struct {
	documentRepo   document.DocumentRepository
	storageService ObjectStorageService
	eventPublisher shared.EventPublisher
	config         DocumentServiceConfig
	logger         *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo document.DocumentRepository,
	storageService ObjectStorageService,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		storageService: storageService,
		config:         DefaultDocumentServiceConfig(),
		logger:         logger,
	}
}

// SetConfig sets the service configuration
func (s *DocumentService) SetConfig(config DocumentServiceConfig) {
	s.config = config
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DocumentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// InitiateUploadInput contains input for starting a document upload
type InitiateUploadInput struct {
	CompanyID  uuid.UUID
	UploadedBy uuid.UUID
	EmployeeID *uuid.UUID // Nil for company-wide documents
	Name       string
	Type       string
	Category   string
	FileName   string
	FileSize   int64
	MimeType   string
	FileHash   string // Hex SHA-256, computed by the client
}

// InitiateUploadResult carries the presigned upload URL
type InitiateUploadResult struct {
	DocumentID uuid.UUID `json:"document_id"`
	UploadURL  string    `json:"upload_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// MetadataInput contains document metadata to set
type MetadataInput struct {
	CompanyID        uuid.UUID
	ID               uuid.UUID
	Number           string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
	IssuingAuthority string

	Confidential         *bool
	Mandatory            *bool
	RequiresAck          *bool
	RetentionPeriodYears *int
	LegalHold            *bool
}

// DocumentDTO represents a document
type DocumentDTO struct {
	ID               uuid.UUID  `json:"id"`
	EmployeeID       *uuid.UUID `json:"employee_id,omitempty"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	Category         string     `json:"category"`
	Description      string     `json:"description,omitempty"`
	FileName         string     `json:"file_name"`
	FileSize         int64      `json:"file_size"`
	MimeType         string     `json:"mime_type"`
	Number           string     `json:"number,omitempty"`
	DocVersion       string     `json:"doc_version"`
	IssueDate        *time.Time `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	IssuingAuthority string     `json:"issuing_authority,omitempty"`
	Status           string     `json:"status"`
	IsConfidential   bool       `json:"is_confidential"`
	IsMandatory      bool       `json:"is_mandatory"`
	RequiresAck      bool       `json:"requires_acknowledgment"`
	LegalHold        bool       `json:"legal_hold"`
	Acknowledged     int        `json:"acknowledged"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DocumentListResult represents a paginated document list
type DocumentListResult struct {
	Documents  []DocumentDTO `json:"documents"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// InitiateUpload creates a draft document record and returns a presigned
// upload URL
func (s *DocumentService) InitiateUpload(ctx context.Context, input InitiateUploadInput) (*InitiateUploadResult, error) {
	if !AllowedContentTypes[input.MimeType] {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type %q is not allowed for documents", input.MimeType))
	}
	if input.FileSize <= 0 || input.FileSize > s.config.MaxFileSizeBytes {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE",
			fmt.Sprintf("File size must be between 1 byte and %d bytes", s.config.MaxFileSizeBytes))
	}

	storageKey := s.generateStorageKey(input.CompanyID, input.EmployeeID, input.FileName)
	file := document.FileInfo{
		Name:     input.FileName,
		Path:     storageKey,
		Size:     input.FileSize,
		MimeType: input.MimeType,
		Hash:     input.FileHash,
	}

	doc, err := document.NewDocument(input.CompanyID, input.UploadedBy, input.Name,
		document.Type(input.Type), document.Category(input.Category), file)
	if err != nil {
		return nil, err
	}
	if input.EmployeeID != nil {
		if err := doc.AttachToEmployee(*input.EmployeeID); err != nil {
			return nil, err
		}
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}

	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, input.MimeType, s.config.UploadURLExpiry)
	if err != nil {
		_ = s.documentRepo.Delete(ctx, input.CompanyID, doc.ID)
		s.logger.Error("Failed to generate upload URL", zap.Error(err))
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	s.logger.Info("Document upload initiated",
		zap.String("document_id", doc.ID.String()),
		zap.String("name", doc.Name))

	return &InitiateUploadResult{
		DocumentID: doc.ID,
		UploadURL:  uploadURL,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload verifies the file landed in storage and submits the
// document for review
func (s *DocumentService) ConfirmUpload(ctx context.Context, companyID, documentID uuid.UUID) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storageService.ObjectExists(ctx, doc.File.Path)
	if err != nil {
		return nil, shared.NewDomainError("STORAGE_CHECK_FAILED", "Failed to verify upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "File not found in storage, upload the file first")
	}

	if err := doc.SubmitForReview(); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}
	return toDocumentDTO(doc), nil
}

// SetMetadata updates the document's identifying metadata and flags
func (s *DocumentService) SetMetadata(ctx context.Context, input MetadataInput) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	if err := doc.SetMetadata(input.Number, input.IssueDate, input.ExpiryDate, input.IssuingAuthority); err != nil {
		return nil, err
	}

	confidential := doc.IsConfidential
	mandatory := doc.IsMandatory
	requiresAck := doc.RequiresAcknowledgment
	if input.Confidential != nil {
		confidential = *input.Confidential
	}
	if input.Mandatory != nil {
		mandatory = *input.Mandatory
	}
	if input.RequiresAck != nil {
		requiresAck = *input.RequiresAck
	}
	doc.SetFlags(confidential, mandatory, requiresAck)

	if input.RetentionPeriodYears != nil || input.LegalHold != nil {
		years := doc.RetentionPeriodYears
		hold := doc.LegalHold
		if input.RetentionPeriodYears != nil {
			years = *input.RetentionPeriodYears
		}
		if input.LegalHold != nil {
			hold = *input.LegalHold
		}
		if err := doc.SetRetention(years, hold); err != nil {
			return nil, err
		}
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}
	return toDocumentDTO(doc), nil
}

// Approve activates a document under review
func (s *DocumentService) Approve(ctx context.Context, companyID, documentID, reviewerID uuid.UUID) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	if err := doc.Approve(reviewerID); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}

	s.publishDomainEvents(ctx, doc)

	return toDocumentDTO(doc), nil
}

// Reject rejects a document under review
func (s *DocumentService) Reject(ctx context.Context, companyID, documentID, reviewerID uuid.UUID, reason string) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	if err := doc.Reject(reviewerID, reason); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}
	return toDocumentDTO(doc), nil
}

// Acknowledge records an employee's confirmation of an active document
func (s *DocumentService) Acknowledge(ctx context.Context, companyID, documentID, employeeID uuid.UUID, ipAddress string) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	if err := doc.Acknowledge(employeeID, ipAddress); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}
	return toDocumentDTO(doc), nil
}

// DownloadURL returns a presigned download URL for the document file
func (s *DocumentService) DownloadURL(ctx context.Context, companyID, documentID uuid.UUID) (string, time.Time, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return "", time.Time{}, err
	}

	url, expiresAt, err := s.storageService.GenerateDownloadURL(ctx, doc.File.Path, s.config.DownloadURLExpiry)
	if err != nil {
		s.logger.Error("Failed to generate download URL", zap.Error(err))
		return "", time.Time{}, shared.NewDomainError("DOWNLOAD_URL_FAILED", "Failed to generate download URL")
	}
	return url, expiresAt, nil
}

// Archive retires a document
func (s *DocumentService) Archive(ctx context.Context, companyID, documentID uuid.UUID) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	if err := doc.Archive(); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save document")
	}
	return toDocumentDTO(doc), nil
}

// Delete removes a document record and its stored file. Documents under
// legal hold cannot be deleted.
func (s *DocumentService) Delete(ctx context.Context, companyID, documentID uuid.UUID) error {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return err
	}
	if doc.LegalHold {
		return shared.NewDomainError("LEGAL_HOLD", "Document is under legal hold")
	}

	if err := s.documentRepo.Delete(ctx, companyID, documentID); err != nil {
		s.logger.Error("Failed to delete document", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete document")
	}
	if err := s.storageService.DeleteObject(ctx, doc.File.Path); err != nil {
		s.logger.Warn("Failed to delete stored file",
			zap.String("storage_key", doc.File.Path),
			zap.Error(err))
	}
	return nil
}

// Get retrieves a document by ID
func (s *DocumentService) Get(ctx context.Context, companyID, documentID uuid.UUID) (*DocumentDTO, error) {
	doc, err := s.findDocument(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}
	return toDocumentDTO(doc), nil
}

// ListByEmployee retrieves documents scoped to one employee
func (s *DocumentService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*DocumentListResult, error) {
	page, err := s.documentRepo.FindByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list documents")
	}
	return toDocumentListResult(page), nil
}

// ListCompanyWide retrieves documents not scoped to any employee
func (s *DocumentService) ListCompanyWide(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*DocumentListResult, error) {
	page, err := s.documentRepo.FindCompanyWide(ctx, companyID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list documents")
	}
	return toDocumentListResult(page), nil
}

// PendingAcknowledgments lists active documents an employee still has to confirm
func (s *DocumentService) PendingAcknowledgments(ctx context.Context, companyID, employeeID uuid.UUID) ([]DocumentDTO, error) {
	docs, err := s.documentRepo.FindPendingAcknowledgment(ctx, companyID, employeeID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pending acknowledgments")
	}

	dtos := make([]DocumentDTO, len(docs))
	for i, doc := range docs {
		dtos[i] = *toDocumentDTO(doc)
	}
	return dtos, nil
}

// ExpireDocuments transitions active documents past their expiry date.
// Returns the number of documents expired. Run daily by the scheduler.
func (s *DocumentService) ExpireDocuments(ctx context.Context, companyID uuid.UUID, asOf time.Time) (int, error) {
	docs, err := s.documentRepo.FindExpired(ctx, companyID, asOf)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to find expired documents")
	}

	expired := 0
	for _, doc := range docs {
		if err := doc.MarkExpired(asOf); err != nil {
			continue
		}
		if err := s.documentRepo.Save(ctx, doc); err != nil {
			s.logger.Error("Failed to save expired document",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err))
			continue
		}
		s.publishDomainEvents(ctx, doc)
		expired++
	}

	if expired > 0 {
		s.logger.Info("Documents expired",
			zap.String("company_id", companyID.String()),
			zap.Int("count", expired))
	}
	return expired, nil
}

// ListExpiring lists active documents expiring within the given days
func (s *DocumentService) ListExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]DocumentDTO, error) {
	before := time.Now().AddDate(0, 0, withinDays)
	docs, err := s.documentRepo.FindExpiring(ctx, companyID, before)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list expiring documents")
	}

	dtos := make([]DocumentDTO, len(docs))
	for i, doc := range docs {
		dtos[i] = *toDocumentDTO(doc)
	}
	return dtos, nil
}

// generateStorageKey builds a collision-free object key scoped by company
func (s *DocumentService) generateStorageKey(companyID uuid.UUID, employeeID *uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	scope := "company"
	if employeeID != nil {
		scope = employeeID.String()
	}
	return fmt.Sprintf("documents/%s/%s/%s%s", companyID, scope, uuid.New(), ext)
}

func (s *DocumentService) findDocument(ctx context.Context, companyID, id uuid.UUID) (*document.Document, error) {
	doc, err := s.documentRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("DOCUMENT_NOT_FOUND", "Document not found")
		}
		s.logger.Error("Failed to find document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find document")
	}
	return doc, nil
}

// publishDomainEvents publishes pending domain events from the document aggregate
func (s *DocumentService) publishDomainEvents(ctx context.Context, doc *document.Document) {
	if s.eventPublisher == nil {
		return
	}
	events := doc.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	doc.ClearDomainEvents()
}

func toDocumentListResult(page *shared.Paginated[*document.Document]) *DocumentListResult {
	dtos := make([]DocumentDTO, len(page.Items))
	for i, doc := range page.Items {
		dtos[i] = *toDocumentDTO(doc)
	}
	return &DocumentListResult{
		Documents:  dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// toDocumentDTO converts a domain Document to its DTO
func toDocumentDTO(d *document.Document) *DocumentDTO {
	return &DocumentDTO{
		ID:               d.ID,
		EmployeeID:       d.EmployeeID,
		Name:             d.Name,
		Type:             string(d.Type),
		Category:         string(d.Category),
		Description:      d.Description,
		FileName:         d.File.Name,
		FileSize:         d.File.Size,
		MimeType:         d.File.MimeType,
		Number:           d.Number,
		DocVersion:       d.DocVersion,
		IssueDate:        d.IssueDate,
		ExpiryDate:       d.ExpiryDate,
		IssuingAuthority: d.IssuingAuthority,
		Status:           string(d.Status),
		IsConfidential:   d.IsConfidential,
		IsMandatory:      d.IsMandatory,
		RequiresAck:      d.RequiresAcknowledgment,
		LegalHold:        d.LegalHold,
		Acknowledged:     len(d.Acknowledgments),
		CreatedAt:        d.CreatedAt,
	}
}
