package performance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// ReviewType classifies the review cycle
type ReviewType string

const (
	ReviewTypeQuarterly    ReviewType = "quarterly"
	ReviewTypeSemiAnnual   ReviewType = "semi_annual"
	ReviewTypeAnnual       ReviewType = "annual"
	ReviewTypeProbation    ReviewType = "probation"
	ReviewTypeProjectBased ReviewType = "project_based"
)

// IsValid checks if the type is a valid ReviewType
func (t ReviewType) IsValid() bool {
	switch t {
	case ReviewTypeQuarterly, ReviewTypeSemiAnnual, ReviewTypeAnnual,
		ReviewTypeProbation, ReviewTypeProjectBased:
		return true
	}
	return false
}

// ReviewStatus tracks the staged review workflow
type ReviewStatus string

const (
	ReviewStatusDraft          ReviewStatus = "draft"
	ReviewStatusSelfAssessment ReviewStatus = "self_assessment_pending"
	ReviewStatusManagerReview  ReviewStatus = "manager_review_pending"
	ReviewStatusFinalReview    ReviewStatus = "hr_review_pending"
	ReviewStatusCompleted      ReviewStatus = "completed"
	ReviewStatusCancelled      ReviewStatus = "cancelled"
)

// IsValid checks if the status is a valid ReviewStatus
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusDraft, ReviewStatusSelfAssessment, ReviewStatusManagerReview,
		ReviewStatusFinalReview, ReviewStatusCompleted, ReviewStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ReviewStatus
func (s ReviewStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the review is in a terminal state
func (s ReviewStatus) IsTerminal() bool {
	return s == ReviewStatusCompleted || s == ReviewStatusCancelled
}

// GoalStatus tracks progress on one review goal
type GoalStatus string

const (
	GoalStatusNotStarted        GoalStatus = "not_started"
	GoalStatusInProgress        GoalStatus = "in_progress"
	GoalStatusAchieved          GoalStatus = "achieved"
	GoalStatusPartiallyAchieved GoalStatus = "partially_achieved"
	GoalStatusNotAchieved       GoalStatus = "not_achieved"
	GoalStatusCancelled         GoalStatus = "cancelled"
)

// IsValid checks if the status is a valid GoalStatus
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusNotStarted, GoalStatusInProgress, GoalStatusAchieved,
		GoalStatusPartiallyAchieved, GoalStatusNotAchieved, GoalStatusCancelled:
		return true
	}
	return false
}

// Ratings holds the 1-5 scores given by the manager
type Ratings struct {
	Overall         decimal.Decimal
	TechnicalSkills decimal.Decimal
	Communication   decimal.Decimal
	Teamwork        decimal.Decimal
	Leadership      decimal.Decimal
	Initiative      decimal.Decimal
}

func validRating(r decimal.Decimal) bool {
	return !r.LessThan(decimal.NewFromInt(1)) && !r.GreaterThan(decimal.NewFromInt(5))
}

// SelfAssessment is the employee's own review input
type SelfAssessment struct {
	Completed    bool
	CompletedAt  *time.Time
	SelfRating   decimal.Decimal
	Achievements string
	Challenges   string
	Comments     string
}

// ManagerAssessment is the manager's review input
type ManagerAssessment struct {
	Completed             bool
	CompletedAt           *time.Time
	RecommendedRating     decimal.Decimal
	PromotionRecommended  bool
	SalaryIncreasePercent decimal.Decimal
	Strengths             string
	AreasForImprovement   string
	DevelopmentPlan       string
	Comments              string
}

// Goal is one objective measured in a review
type Goal struct {
	shared.BaseEntity
	ReviewID            uuid.UUID
	Title               string
	Description         string
	Category            string // technical, behavioral, business
	Weight              int    // Percent share of the overall review
	TargetValue         string
	MeasurementCriteria string
	TargetDate          *time.Time

	Status            GoalStatus
	ProgressPercent   int
	AchievementRating decimal.Decimal
	ActualAchievement string
}

// TableName returns the table name for GORM
func (Goal) TableName() string {
	return "performance_goals"
}

// Review is a staged performance review for one employee.
// draft -> self assessment -> manager review -> final review -> completed.
type Review struct {
	shared.TenantAggregateRoot
	EmployeeID uuid.UUID
	ReviewerID uuid.UUID
	Type       ReviewType
	Status     ReviewStatus

	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     time.Time

	Self    SelfAssessment    `gorm:"embedded;embeddedPrefix:self_"`
	Manager ManagerAssessment `gorm:"embedded;embeddedPrefix:manager_"`
	Final   Ratings           `gorm:"embedded;embeddedPrefix:final_"`

	HRComments      string
	FinalReviewedBy *uuid.UUID
	FinalReviewedAt *time.Time

	Goals []Goal
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "performance_reviews"
}

// NewReview opens a draft review for a period
func NewReview(companyID, employeeID, reviewerID uuid.UUID, reviewType ReviewType, periodStart, periodEnd, dueDate time.Time) (*Review, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if reviewerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REVIEWER", "Reviewer ID is required")
	}
	if reviewerID == employeeID {
		return nil, shared.NewDomainError("INVALID_REVIEWER", "Employee cannot review themselves")
	}
	if !reviewType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid review type")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot be before period start")
	}
	if dueDate.Before(periodEnd) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be before the period end")
	}

	return &Review{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		ReviewerID:          reviewerID,
		Type:                reviewType,
		Status:              ReviewStatusDraft,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		DueDate:             dueDate,
	}, nil
}

// AddGoal attaches a goal while the review is in draft.
// Total goal weight cannot exceed 100.
func (r *Review) AddGoal(title, description, category string, weight int, targetDate *time.Time) (*Goal, error) {
	if r.Status != ReviewStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Goals can only be added to draft reviews")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Goal title is required")
	}
	if weight <= 0 || weight > 100 {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Goal weight must be between 1 and 100")
	}
	if r.TotalGoalWeight()+weight > 100 {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Total goal weight cannot exceed 100")
	}

	goal := Goal{
		BaseEntity:  shared.NewBaseEntity(),
		ReviewID:    r.ID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    category,
		Weight:      weight,
		TargetDate:  targetDate,
		Status:      GoalStatusNotStarted,
	}
	r.Goals = append(r.Goals, goal)
	r.UpdatedAt = time.Now()
	return &r.Goals[len(r.Goals)-1], nil
}

// TotalGoalWeight sums the weights of non-cancelled goals
func (r *Review) TotalGoalWeight() int {
	total := 0
	for i := range r.Goals {
		if r.Goals[i].Status != GoalStatusCancelled {
			total += r.Goals[i].Weight
		}
	}
	return total
}

// UpdateGoalProgress records progress on one goal
func (r *Review) UpdateGoalProgress(goalID uuid.UUID, progressPercent int, status GoalStatus, actual string) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Review is closed")
	}
	if progressPercent < 0 || progressPercent > 100 {
		return shared.NewDomainError("INVALID_PROGRESS", "Progress must be between 0 and 100")
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid goal status")
	}
	for i := range r.Goals {
		if r.Goals[i].ID == goalID {
			r.Goals[i].ProgressPercent = progressPercent
			r.Goals[i].Status = status
			r.Goals[i].ActualAchievement = actual
			r.Goals[i].UpdatedAt = time.Now()
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.NewDomainError("GOAL_NOT_FOUND", "Goal not found on this review")
}

// Start opens the self-assessment stage
func (r *Review) Start() error {
	if r.Status != ReviewStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft reviews can be started")
	}
	r.Status = ReviewStatusSelfAssessment
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// SubmitSelfAssessment records the employee's input and advances to manager review
func (r *Review) SubmitSelfAssessment(selfRating decimal.Decimal, achievements, challenges, comments string) error {
	if r.Status != ReviewStatusSelfAssessment {
		return shared.NewDomainError("INVALID_STATE", "Review is not awaiting self assessment")
	}
	if !validRating(selfRating) {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	now := time.Now()
	r.Self = SelfAssessment{
		Completed:    true,
		CompletedAt:  &now,
		SelfRating:   selfRating,
		Achievements: achievements,
		Challenges:   challenges,
		Comments:     comments,
	}
	r.Status = ReviewStatusManagerReview
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// SubmitManagerReview records the manager's input and advances to final review
func (r *Review) SubmitManagerReview(assessment ManagerAssessment) error {
	if r.Status != ReviewStatusManagerReview {
		return shared.NewDomainError("INVALID_STATE", "Review is not awaiting manager review")
	}
	if !validRating(assessment.RecommendedRating) {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	if assessment.SalaryIncreasePercent.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Salary increase cannot be negative")
	}

	now := time.Now()
	assessment.Completed = true
	assessment.CompletedAt = &now
	r.Manager = assessment
	r.Status = ReviewStatusFinalReview
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// Finalize records the final ratings and completes the review
func (r *Review) Finalize(reviewedBy uuid.UUID, ratings Ratings, hrComments string) error {
	if r.Status != ReviewStatusFinalReview {
		return shared.NewDomainError("INVALID_STATE", "Review is not awaiting final review")
	}
	if !validRating(ratings.Overall) {
		return shared.NewDomainError("INVALID_RATING", "Overall rating must be between 1 and 5")
	}

	now := time.Now()
	r.Final = ratings
	r.HRComments = hrComments
	r.FinalReviewedBy = &reviewedBy
	r.FinalReviewedAt = &now
	r.Status = ReviewStatusCompleted
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReviewCompletedEvent(r))

	return nil
}

// Cancel abandons an unfinished review
func (r *Review) Cancel() error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Review is already closed")
	}
	r.Status = ReviewStatusCancelled
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// IsOverdue reports whether an open review has passed its due date
func (r *Review) IsOverdue(asOf time.Time) bool {
	return !r.Status.IsTerminal() && asOf.After(r.DueDate)
}

// WeightedGoalScore computes the weight-adjusted achievement across goals, 0-100
func (r *Review) WeightedGoalScore() int {
	totalWeight := 0
	score := 0
	for i := range r.Goals {
		g := &r.Goals[i]
		if g.Status == GoalStatusCancelled {
			continue
		}
		totalWeight += g.Weight
		score += g.Weight * g.ProgressPercent
	}
	if totalWeight == 0 {
		return 0
	}
	return score / totalWeight
}
