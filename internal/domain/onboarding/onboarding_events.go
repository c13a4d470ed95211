package onboarding

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeChecklist = "OnboardingChecklist"

// Event type constants
const (
	EventTypeOnboardingCompleted = "OnboardingCompleted"
)

// OnboardingCompletedEvent is published when all checklist tasks are done
type OnboardingCompletedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	TotalTasks int       `json:"total_tasks"`
}

// NewOnboardingCompletedEvent creates a new OnboardingCompletedEvent
func NewOnboardingCompletedEvent(c *Checklist) *OnboardingCompletedEvent {
	return &OnboardingCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOnboardingCompleted, AggregateTypeChecklist, c.ID, c.TenantID),
		EmployeeID:      c.EmployeeID,
		Name:            c.Name,
		TotalTasks:      len(c.Tasks),
	}
}
