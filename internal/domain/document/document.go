package document

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Type classifies a stored document
type Type string

const (
	TypeContract            Type = "contract"
	TypePolicy              Type = "policy"
	TypeHandbook            Type = "handbook"
	TypeForm                Type = "form"
	TypeCertificate         Type = "certificate"
	TypeIDDocument          Type = "id_document"
	TypeResume              Type = "resume"
	TypeOfferLetter         Type = "offer_letter"
	TypeTaxDocument         Type = "tax_document"
	TypeTrainingCertificate Type = "training_certificate"
	TypeTerminationLetter   Type = "termination_letter"
	TypeOther               Type = "other"
)

// IsValid checks if the type is a valid Type
func (t Type) IsValid() bool {
	switch t {
	case TypeContract, TypePolicy, TypeHandbook, TypeForm, TypeCertificate,
		TypeIDDocument, TypeResume, TypeOfferLetter, TypeTaxDocument,
		TypeTrainingCertificate, TypeTerminationLetter, TypeOther:
		return true
	}
	return false
}

// Category groups documents by HR area
type Category string

const (
	CategoryPersonal      Category = "personal"
	CategoryEmployment    Category = "employment"
	CategoryCompliance    Category = "compliance"
	CategoryTraining      Category = "training"
	CategoryBenefits      Category = "benefits"
	CategoryPayroll       Category = "payroll"
	CategoryPerformance   Category = "performance"
	CategoryLegal         Category = "legal"
	CategoryCompanyPolicy Category = "company_policy"
	CategoryOnboarding    Category = "onboarding"
	CategoryOffboarding   Category = "offboarding"
)

// IsValid checks if the category is a valid Category
func (c Category) IsValid() bool {
	switch c {
	case CategoryPersonal, CategoryEmployment, CategoryCompliance, CategoryTraining,
		CategoryBenefits, CategoryPayroll, CategoryPerformance, CategoryLegal,
		CategoryCompanyPolicy, CategoryOnboarding, CategoryOffboarding:
		return true
	}
	return false
}

// Status represents the lifecycle state of a document
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusActive        Status = "active"
	StatusRejected      Status = "rejected"
	StatusExpired       Status = "expired"
	StatusArchived      Status = "archived"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusActive, StatusRejected,
		StatusExpired, StatusArchived:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// FileInfo describes the stored file. Hash is the hex SHA-256 of the content.
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	MimeType string
	Hash     string
}

// Acknowledgment records an employee confirming they read a document
type Acknowledgment struct {
	shared.BaseEntity
	DocumentID     uuid.UUID
	EmployeeID     uuid.UUID
	AcknowledgedAt time.Time
	IPAddress      string
}

// TableName returns the table name for GORM
func (Acknowledgment) TableName() string {
	return "document_acknowledgments"
}

// Document is a stored HR document. EmployeeID is nil for company-wide
// documents such as policies and handbooks.
type Document struct {
	shared.TenantAggregateRoot
	EmployeeID  *uuid.UUID
	Name        string
	Type        Type
	Category    Category
	Description string
	File        FileInfo `gorm:"embedded;embeddedPrefix:file_"`

	Number           string
	DocVersion       string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
	IssuingAuthority string

	Status                 Status
	IsConfidential         bool
	IsMandatory            bool
	RequiresAcknowledgment bool
	RetentionPeriodYears   int
	LegalHold              bool

	UploadedBy      uuid.UUID
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	RejectionReason string

	Acknowledgments []Acknowledgment
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "documents"
}

// NewDocument stores a draft document record
func NewDocument(companyID uuid.UUID, uploadedBy uuid.UUID, name string, docType Type, category Category, file FileInfo) (*Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Document name is required")
	}
	if len(name) > 300 {
		return nil, shared.NewDomainError("INVALID_NAME", "Document name cannot exceed 300 characters")
	}
	if !docType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid document type")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Invalid document category")
	}
	if strings.TrimSpace(file.Name) == "" || strings.TrimSpace(file.Path) == "" {
		return nil, shared.NewDomainError("INVALID_FILE", "File name and path are required")
	}
	if file.Size <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "File size must be positive")
	}
	if uploadedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UPLOADER", "Uploader is required")
	}

	return &Document{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                name,
		Type:                docType,
		Category:            category,
		File:                file,
		DocVersion:          "1.0",
		Status:              StatusDraft,
		UploadedBy:          uploadedBy,
	}, nil
}

// AttachToEmployee scopes the document to one employee
func (d *Document) AttachToEmployee(employeeID uuid.UUID) error {
	if employeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	d.EmployeeID = &employeeID
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// SetMetadata sets the document number, dates and issuing authority
func (d *Document) SetMetadata(number string, issueDate, expiryDate *time.Time, authority string) error {
	if issueDate != nil && expiryDate != nil && expiryDate.Before(*issueDate) {
		return shared.NewDomainError("INVALID_DATES", "Expiry date cannot be before the issue date")
	}
	d.Number = number
	d.IssueDate = issueDate
	d.ExpiryDate = expiryDate
	d.IssuingAuthority = authority
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// SetFlags configures confidentiality and acknowledgment requirements
func (d *Document) SetFlags(confidential, mandatory, requiresAck bool) {
	d.IsConfidential = confidential
	d.IsMandatory = mandatory
	d.RequiresAcknowledgment = requiresAck
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// SetRetention configures the compliance retention rule
func (d *Document) SetRetention(years int, legalHold bool) error {
	if years < 0 {
		return shared.NewDomainError("INVALID_RETENTION", "Retention period cannot be negative")
	}
	d.RetentionPeriodYears = years
	d.LegalHold = legalHold
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// SubmitForReview moves a draft into review
func (d *Document) SubmitForReview() error {
	if d.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft documents can be submitted for review")
	}
	d.Status = StatusPendingReview
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// Approve activates a reviewed document
func (d *Document) Approve(reviewerID uuid.UUID) error {
	if d.Status != StatusPendingReview && d.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Document cannot be approved in current state")
	}

	now := time.Now()
	d.Status = StatusActive
	d.ReviewedBy = &reviewerID
	d.ReviewedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()

	d.AddDomainEvent(NewDocumentActivatedEvent(d))

	return nil
}

// Reject rejects a document under review
func (d *Document) Reject(reviewerID uuid.UUID, reason string) error {
	if d.Status != StatusPendingReview {
		return shared.NewDomainError("INVALID_STATE", "Only documents under review can be rejected")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	d.Status = StatusRejected
	d.ReviewedBy = &reviewerID
	d.ReviewedAt = &now
	d.RejectionReason = strings.TrimSpace(reason)
	d.UpdatedAt = now
	d.IncrementVersion()
	return nil
}

// Acknowledge records an employee's confirmation. Each employee acknowledges once.
func (d *Document) Acknowledge(employeeID uuid.UUID, ipAddress string) error {
	if d.Status != StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active documents can be acknowledged")
	}
	if !d.RequiresAcknowledgment {
		return shared.NewDomainError("INVALID_STATE", "Document does not require acknowledgment")
	}
	if d.IsAcknowledgedBy(employeeID) {
		return shared.NewDomainError("ALREADY_ACKNOWLEDGED", "Employee has already acknowledged this document")
	}

	d.Acknowledgments = append(d.Acknowledgments, Acknowledgment{
		BaseEntity:     shared.NewBaseEntity(),
		DocumentID:     d.ID,
		EmployeeID:     employeeID,
		AcknowledgedAt: time.Now(),
		IPAddress:      ipAddress,
	})
	d.UpdatedAt = time.Now()
	return nil
}

// IsAcknowledgedBy reports whether an employee has acknowledged the document
func (d *Document) IsAcknowledgedBy(employeeID uuid.UUID) bool {
	for _, ack := range d.Acknowledgments {
		if ack.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// IsExpired reports whether the expiry date has passed
func (d *Document) IsExpired(asOf time.Time) bool {
	return d.ExpiryDate != nil && asOf.After(*d.ExpiryDate)
}

// MarkExpired transitions an active document past its expiry date
func (d *Document) MarkExpired(asOf time.Time) error {
	if d.Status != StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active documents can expire")
	}
	if !d.IsExpired(asOf) {
		return shared.NewDomainError("INVALID_STATE", "Document has not reached its expiry date")
	}

	d.Status = StatusExpired
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	d.AddDomainEvent(NewDocumentExpiredEvent(d))

	return nil
}

// Archive retires a document. Documents under legal hold cannot be archived.
func (d *Document) Archive() error {
	if d.LegalHold {
		return shared.NewDomainError("LEGAL_HOLD", "Document is under legal hold")
	}
	if d.Status == StatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Document is already archived")
	}
	d.Status = StatusArchived
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// VerifyIntegrity compares a computed hash against the stored one
func (d *Document) VerifyIntegrity(hash string) bool {
	return d.File.Hash != "" && strings.EqualFold(d.File.Hash, hash)
}
