package document

import (
	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeDocument = "Document"

// Event type constants
const (
	EventTypeDocumentActivated = "DocumentActivated"
	EventTypeDocumentExpired   = "DocumentExpired"
)

// DocumentActivatedEvent is published when a document becomes active
type DocumentActivatedEvent struct {
	shared.BaseDomainEvent
	Name                   string   `json:"name"`
	DocType                Type     `json:"doc_type"`
	Category               Category `json:"category"`
	RequiresAcknowledgment bool     `json:"requires_acknowledgment"`
}

// NewDocumentActivatedEvent creates a new DocumentActivatedEvent
func NewDocumentActivatedEvent(d *Document) *DocumentActivatedEvent {
	return &DocumentActivatedEvent{
		BaseDomainEvent:        shared.NewBaseDomainEvent(EventTypeDocumentActivated, AggregateTypeDocument, d.ID, d.TenantID),
		Name:                   d.Name,
		DocType:                d.Type,
		Category:               d.Category,
		RequiresAcknowledgment: d.RequiresAcknowledgment,
	}
}

// DocumentExpiredEvent is published when a document passes its expiry date
type DocumentExpiredEvent struct {
	shared.BaseDomainEvent
	Name       string `json:"name"`
	DocType    Type   `json:"doc_type"`
	ExpiryDate string `json:"expiry_date"`
}

// NewDocumentExpiredEvent creates a new DocumentExpiredEvent
func NewDocumentExpiredEvent(d *Document) *DocumentExpiredEvent {
	event := &DocumentExpiredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentExpired, AggregateTypeDocument, d.ID, d.TenantID),
		Name:            d.Name,
		DocType:         d.Type,
	}
	if d.ExpiryDate != nil {
		event.ExpiryDate = d.ExpiryDate.Format("2006-01-02")
	}
	return event
}
