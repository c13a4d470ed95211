package performance

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeReview = "PerformanceReview"

// Event type constants
const (
	EventTypeReviewCompleted = "PerformanceReviewCompleted"
)

// ReviewCompletedEvent is published when a review is finalized
type ReviewCompletedEvent struct {
	shared.BaseDomainEvent
	EmployeeID           uuid.UUID  `json:"employee_id"`
	ReviewType           ReviewType `json:"review_type"`
	OverallRating        string     `json:"overall_rating"`
	PromotionRecommended bool       `json:"promotion_recommended"`
}

// NewReviewCompletedEvent creates a new ReviewCompletedEvent
func NewReviewCompletedEvent(r *Review) *ReviewCompletedEvent {
	return &ReviewCompletedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeReviewCompleted, AggregateTypeReview, r.ID, r.TenantID),
		EmployeeID:           r.EmployeeID,
		ReviewType:           r.Type,
		OverallRating:        r.Final.Overall.String(),
		PromotionRecommended: r.Manager.PromotionRecommended,
	}
}
