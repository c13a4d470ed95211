package compliance

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeAssessment = "ComplianceAssessment"

// Event type constants
const (
	EventTypeNonComplianceFound = "NonComplianceFound"
)

// NonComplianceFoundEvent is published when an assessment fails
type NonComplianceFoundEvent struct {
	shared.BaseDomainEvent
	RequirementID uuid.UUID        `json:"requirement_id"`
	Status        AssessmentStatus `json:"status"`
	Score         string           `json:"score"`
}

// NewNonComplianceFoundEvent creates a new NonComplianceFoundEvent
func NewNonComplianceFoundEvent(a *Assessment) *NonComplianceFoundEvent {
	return &NonComplianceFoundEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeNonComplianceFound, AggregateTypeAssessment, a.ID, a.TenantID),
		RequirementID:   a.RequirementID,
		Status:          a.OverallStatus,
		Score:           a.Score.String(),
	}
}
