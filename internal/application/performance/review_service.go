package performance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/performance"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// ReviewService manages staged performance reviews
type ReviewService struct {
	reviewRepo     performance.ReviewRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo performance.ReviewRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReviewService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateReviewInput contains input for opening a review
type CreateReviewInput struct {
	CompanyID   uuid.UUID
	EmployeeID  uuid.UUID
	ReviewerID  uuid.UUID
	Type        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	DueDate     time.Time
}

// GoalInput contains input for one review goal
type GoalInput struct {
	Title               string
	Description         string
	Category            string
	Weight              int
	TargetValue         string
	MeasurementCriteria string
	TargetDate          *time.Time
}

// SelfAssessmentInput contains the employee's review input
type SelfAssessmentInput struct {
	CompanyID    uuid.UUID
	ReviewID     uuid.UUID
	EmployeeID   uuid.UUID
	SelfRating   decimal.Decimal
	Achievements string
	Challenges   string
	Comments     string
}

// ManagerReviewInput contains the manager's review input
type ManagerReviewInput struct {
	CompanyID  uuid.UUID
	ReviewID   uuid.UUID
	ReviewerID uuid.UUID

	RecommendedRating     decimal.Decimal
	PromotionRecommended  bool
	SalaryIncreasePercent decimal.Decimal
	Strengths             string
	AreasForImprovement   string
	DevelopmentPlan       string
	Comments              string
}

// FinalizeInput contains HR's final ratings
type FinalizeInput struct {
	CompanyID  uuid.UUID
	ReviewID   uuid.UUID
	ReviewedBy uuid.UUID

	Overall         decimal.Decimal
	TechnicalSkills decimal.Decimal
	Communication   decimal.Decimal
	Teamwork        decimal.Decimal
	Leadership      decimal.Decimal
	Initiative      decimal.Decimal
	HRComments      string
}

// GoalDTO represents a review goal
type GoalDTO struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Category          string     `json:"category,omitempty"`
	Weight            int        `json:"weight"`
	TargetDate        *time.Time `json:"target_date,omitempty"`
	Status            string     `json:"status"`
	ProgressPercent   int        `json:"progress_percent"`
	ActualAchievement string     `json:"actual_achievement,omitempty"`
}

// ReviewDTO represents a performance review
type ReviewDTO struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	ReviewerID  uuid.UUID `json:"reviewer_id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	DueDate     string    `json:"due_date"`
	Overdue     bool      `json:"overdue"`

	SelfCompleted    bool   `json:"self_completed"`
	SelfRating       string `json:"self_rating,omitempty"`
	ManagerCompleted bool   `json:"manager_completed"`
	ManagerRating    string `json:"manager_rating,omitempty"`
	OverallRating    string `json:"overall_rating,omitempty"`

	PromotionRecommended bool `json:"promotion_recommended"`
	WeightedGoalScore    int  `json:"weighted_goal_score"`

	Goals     []GoalDTO `json:"goals,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewListResult represents a paginated review list
type ReviewListResult struct {
	Reviews    []ReviewDTO `json:"reviews"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// CreateReview opens a draft review for an employee
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if !employee.Status.IsWorking() {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_ACTIVE", "Reviews can only be opened for active employees")
	}

	overlapping, err := s.reviewRepo.FindOverlapping(ctx, input.CompanyID, input.EmployeeID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing reviews")
	}
	for _, existing := range overlapping {
		if existing.Type == performance.ReviewType(input.Type) {
			return nil, shared.NewDomainError("OVERLAPPING_REVIEW", "A review of this type already covers the period")
		}
	}

	review, err := performance.NewReview(input.CompanyID, input.EmployeeID, input.ReviewerID,
		performance.ReviewType(input.Type), input.PeriodStart, input.PeriodEnd, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		s.logger.Error("Failed to save review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}

	s.logger.Info("Performance review created",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.String("review_id", review.ID.String()),
		zap.String("type", input.Type))

	return toReviewDTO(review, true), nil
}

// AddGoal attaches a goal to a draft review
func (s *ReviewService) AddGoal(ctx context.Context, companyID, reviewID uuid.UUID, input GoalInput) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, companyID, reviewID)
	if err != nil {
		return nil, err
	}

	goal, err := review.AddGoal(input.Title, input.Description, input.Category, input.Weight, input.TargetDate)
	if err != nil {
		return nil, err
	}
	goal.TargetValue = input.TargetValue
	goal.MeasurementCriteria = input.MeasurementCriteria

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return toReviewDTO(review, true), nil
}

// UpdateGoalProgress records progress on a goal
func (s *ReviewService) UpdateGoalProgress(ctx context.Context, companyID, reviewID, goalID uuid.UUID, progressPercent int, status, actual string) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, companyID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := review.UpdateGoalProgress(goalID, progressPercent, performance.GoalStatus(status), actual); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return toReviewDTO(review, true), nil
}

// Start opens the self-assessment stage
func (s *ReviewService) Start(ctx context.Context, companyID, reviewID uuid.UUID) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, companyID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := review.Start(); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return toReviewDTO(review, true), nil
}

// SubmitSelfAssessment records the employee's own assessment. Only the
// reviewed employee can submit it.
func (s *ReviewService) SubmitSelfAssessment(ctx context.Context, input SelfAssessmentInput) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, input.CompanyID, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if review.EmployeeID != input.EmployeeID {
		return nil, shared.NewDomainError("NOT_OWNER", "Only the reviewed employee can submit a self assessment")
	}
	if err := review.SubmitSelfAssessment(input.SelfRating, input.Achievements, input.Challenges, input.Comments); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return toReviewDTO(review, true), nil
}

// SubmitManagerReview records the manager's assessment. Only the assigned
// reviewer can submit it.
func (s *ReviewService) SubmitManagerReview(ctx context.Context, input ManagerReviewInput) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, input.CompanyID, input.ReviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != input.ReviewerID {
		return nil, shared.NewDomainError("NOT_REVIEWER", "Only the assigned reviewer can submit a manager review")
	}

	assessment := performance.ManagerAssessment{
		RecommendedRating:     input.RecommendedRating,
		PromotionRecommended:  input.PromotionRecommended,
		SalaryIncreasePercent: input.SalaryIncreasePercent,
		Strengths:             input.Strengths,
		AreasForImprovement:   input.AreasForImprovement,
		DevelopmentPlan:       input.DevelopmentPlan,
		Comments:              input.Comments,
	}
	if err := review.SubmitManagerReview(assessment); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return toReviewDTO(review, true), nil
}

// Finalize records HR's final ratings and completes the review
func (s *ReviewService) Finalize(ctx context.Context, input FinalizeInput) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, input.CompanyID, input.ReviewID)
	if err != nil {
		return nil, err
	}

	ratings := performance.Ratings{
		Overall:         input.Overall,
		TechnicalSkills: input.TechnicalSkills,
		Communication:   input.Communication,
		Teamwork:        input.Teamwork,
		Leadership:      input.Leadership,
		Initiative:      input.Initiative,
	}
	if err := review.Finalize(input.ReviewedBy, ratings, input.HRComments); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}

	s.logger.Info("Performance review finalized",
		zap.String("review_id", review.ID.String()),
		zap.String("overall_rating", ratings.Overall.String()))
	s.publishDomainEvents(ctx, review)

	return toReviewDTO(review, true), nil
}

// Cancel abandons an unfinished review
func (s *ReviewService) Cancel(ctx context.Context, companyID, reviewID uuid.UUID) error {
	review, err := s.findReview(ctx, companyID, reviewID)
	if err != nil {
		return err
	}
	if err := review.Cancel(); err != nil {
		return err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}
	return nil
}

// GetReview retrieves a review with its goals
func (s *ReviewService) GetReview(ctx context.Context, companyID, reviewID uuid.UUID) (*ReviewDTO, error) {
	review, err := s.findReview(ctx, companyID, reviewID)
	if err != nil {
		return nil, err
	}
	return toReviewDTO(review, true), nil
}

// ListByEmployee retrieves an employee's reviews
func (s *ReviewService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*ReviewListResult, error) {
	page, err := s.reviewRepo.FindByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reviews")
	}
	return toReviewListResult(page), nil
}

// ListByReviewer retrieves reviews assigned to a reviewer
func (s *ReviewService) ListByReviewer(ctx context.Context, companyID, reviewerID uuid.UUID, filter shared.Filter) (*ReviewListResult, error) {
	page, err := s.reviewRepo.FindByReviewer(ctx, companyID, reviewerID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reviews")
	}
	return toReviewListResult(page), nil
}

// ListReviews retrieves reviews, optionally by status
func (s *ReviewService) ListReviews(ctx context.Context, companyID uuid.UUID, status string, filter shared.Filter) (*ReviewListResult, error) {
	var page *shared.Paginated[*performance.Review]
	var err error
	if status != "" {
		st := performance.ReviewStatus(status)
		if !st.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid review status")
		}
		page, err = s.reviewRepo.FindByStatus(ctx, companyID, st, filter)
	} else {
		page, err = s.reviewRepo.FindAll(ctx, companyID, filter)
	}
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reviews")
	}
	return toReviewListResult(page), nil
}

// ListOverdue retrieves open reviews past their due date
func (s *ReviewService) ListOverdue(ctx context.Context, companyID uuid.UUID) ([]ReviewDTO, error) {
	reviews, err := s.reviewRepo.FindOverdue(ctx, companyID, time.Now())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list overdue reviews")
	}

	dtos := make([]ReviewDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = *toReviewDTO(r, false)
	}
	return dtos, nil
}

func (s *ReviewService) findReview(ctx context.Context, companyID, id uuid.UUID) (*performance.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("REVIEW_NOT_FOUND", "Review not found")
		}
		s.logger.Error("Failed to find review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find review")
	}
	return review, nil
}

// publishDomainEvents publishes pending domain events from the review aggregate
func (s *ReviewService) publishDomainEvents(ctx context.Context, review *performance.Review) {
	if s.eventPublisher == nil {
		return
	}
	events := review.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	review.ClearDomainEvents()
}

func toReviewListResult(page *shared.Paginated[*performance.Review]) *ReviewListResult {
	dtos := make([]ReviewDTO, len(page.Items))
	for i, r := range page.Items {
		dtos[i] = *toReviewDTO(r, false)
	}
	return &ReviewListResult{
		Reviews:    dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// toReviewDTO converts a domain Review to its DTO
func toReviewDTO(r *performance.Review, includeGoals bool) *ReviewDTO {
	dto := &ReviewDTO{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		ReviewerID:           r.ReviewerID,
		Type:                 string(r.Type),
		Status:               string(r.Status),
		PeriodStart:          r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:            r.PeriodEnd.Format("2006-01-02"),
		DueDate:              r.DueDate.Format("2006-01-02"),
		Overdue:              r.IsOverdue(time.Now()),
		SelfCompleted:        r.Self.Completed,
		ManagerCompleted:     r.Manager.Completed,
		PromotionRecommended: r.Manager.PromotionRecommended,
		WeightedGoalScore:    r.WeightedGoalScore(),
		CreatedAt:            r.CreatedAt,
	}
	if r.Self.Completed {
		dto.SelfRating = r.Self.SelfRating.String()
	}
	if r.Manager.Completed {
		dto.ManagerRating = r.Manager.RecommendedRating.String()
	}
	if r.Status == performance.ReviewStatusCompleted {
		dto.OverallRating = r.Final.Overall.String()
	}
	if includeGoals {
		dto.Goals = make([]GoalDTO, len(r.Goals))
		for i := range r.Goals {
			g := &r.Goals[i]
			dto.Goals[i] = GoalDTO{
				ID:                g.ID,
				Title:             g.Title,
				Description:       g.Description,
				Category:          g.Category,
				Weight:            g.Weight,
				TargetDate:        g.TargetDate,
				Status:            string(g.Status),
				ProgressPercent:   g.ProgressPercent,
				ActualAchievement: g.ActualAchievement,
			}
		}
	}
	return dto
}
