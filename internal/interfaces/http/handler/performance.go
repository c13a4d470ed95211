package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	performanceapp "github.com/hrms/backend/internal/application/performance"
	"github.com/hrms/backend/internal/domain/shared"
)

// PerformanceHandler handles performance review API endpoints
type PerformanceHandler struct {
	BaseHandler
	reviewService *performanceapp.ReviewService
}

// NewPerformanceHandler creates a new PerformanceHandler
func NewPerformanceHandler(reviewService *performanceapp.ReviewService) *PerformanceHandler {
	return &PerformanceHandler{
		reviewService: reviewService,
	}
}

// CreateReviewRequest represents a request to open a review
type CreateReviewRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required"`
	ReviewerID  uuid.UUID `json:"reviewer_id" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=annual half_yearly quarterly probation project" example:"annual"`
	PeriodStart time.Time `json:"period_start" binding:"required" example:"2026-01-01T00:00:00Z"`
	PeriodEnd   time.Time `json:"period_end" binding:"required" example:"2026-12-31T00:00:00Z"`
	DueDate     time.Time `json:"due_date" binding:"required" example:"2027-01-31T00:00:00Z"`
}

// AddGoalRequest represents a request to add a review goal
type AddGoalRequest struct {
	Title               string     `json:"title" binding:"required,max=200" example:"Ship the billing revamp"`
	Description         string     `json:"description" binding:"max=1000"`
	Category            string     `json:"category" binding:"max=100" example:"delivery"`
	Weight              int        `json:"weight" binding:"required,min=1,max=100" example:"40"`
	TargetValue         string     `json:"target_value" binding:"max=200"`
	MeasurementCriteria string     `json:"measurement_criteria" binding:"max=500"`
	TargetDate          *time.Time `json:"target_date"`
}

// UpdateGoalProgressRequest updates a goal's progress
type UpdateGoalProgressRequest struct {
	ProgressPercent int    `json:"progress_percent" binding:"min=0,max=100" example:"60"`
	Status          string `json:"status" binding:"required,oneof=not_started in_progress achieved partially_achieved not_achieved" example:"in_progress"`
	Actual          string `json:"actual" binding:"max=500"`
}

// SelfAssessmentRequest carries the employee's self review
type SelfAssessmentRequest struct {
	EmployeeID   uuid.UUID       `json:"employee_id" binding:"required"`
	SelfRating   decimal.Decimal `json:"self_rating" binding:"required" example:"4.2"`
	Achievements string          `json:"achievements" binding:"max=2000"`
	Challenges   string          `json:"challenges" binding:"max=2000"`
	Comments     string          `json:"comments" binding:"max=2000"`
}

// ManagerReviewRequest carries the manager's review
type ManagerReviewRequest struct {
	RecommendedRating     decimal.Decimal `json:"recommended_rating" binding:"required" example:"4.0"`
	PromotionRecommended  bool            `json:"promotion_recommended" example:"false"`
	SalaryIncreasePercent decimal.Decimal `json:"salary_increase_percent" example:"6"`
	Strengths             string          `json:"strengths" binding:"max=2000"`
	AreasForImprovement   string          `json:"areas_for_improvement" binding:"max=2000"`
	DevelopmentPlan       string          `json:"development_plan" binding:"max=2000"`
	Comments              string          `json:"comments" binding:"max=2000"`
}

// FinalizeReviewRequest carries HR's final ratings
type FinalizeReviewRequest struct {
	Overall         decimal.Decimal `json:"overall" binding:"required" example:"4.1"`
	TechnicalSkills decimal.Decimal `json:"technical_skills" example:"4.5"`
	Communication   decimal.Decimal `json:"communication" example:"3.8"`
	Teamwork        decimal.Decimal `json:"teamwork" example:"4.0"`
	Leadership      decimal.Decimal `json:"leadership" example:"3.5"`
	Initiative      decimal.Decimal `json:"initiative" example:"4.2"`
	HRComments      string          `json:"hr_comments" binding:"max=2000"`
}

// CreateReview godoc
// @ID           createPerformanceReview
//
//	@Summary		Create performance review
//	@Description	Open a draft review for an employee covering a period
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			request		body		CreateReviewRequest	true	"Review data"
//	@Success		201			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews [post]
func (h *PerformanceHandler) CreateReview(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := performanceapp.CreateReviewInput{
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		ReviewerID:  req.ReviewerID,
		Type:        req.Type,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		DueDate:     req.DueDate,
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, review)
}

// AddGoal godoc
// @ID           addReviewGoal
//
//	@Summary		Add review goal
//	@Description	Add a weighted goal to a draft review; weights cannot exceed 100 in total
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			id			path		string			true	"Review ID"	format(uuid)
//	@Param			request		body		AddGoalRequest	true	"Goal data"
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/goals [post]
func (h *PerformanceHandler) AddGoal(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	var req AddGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := performanceapp.GoalInput{
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Weight:              req.Weight,
		TargetValue:         req.TargetValue,
		MeasurementCriteria: req.MeasurementCriteria,
		TargetDate:          req.TargetDate,
	}

	review, err := h.reviewService.AddGoal(c.Request.Context(), companyID, reviewID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// UpdateGoalProgress godoc
// @ID           updateGoalProgress
//
//	@Summary		Update goal progress
//	@Description	Record the progress and achievement of a review goal
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Review ID"	format(uuid)
//	@Param			goal_id		path		string						true	"Goal ID"	format(uuid)
//	@Param			request		body		UpdateGoalProgressRequest	true	"Progress data"
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/goals/{goal_id} [put]
func (h *PerformanceHandler) UpdateGoalProgress(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	goalID, err := uuid.Parse(c.Param("goal_id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID format")
		return
	}

	var req UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.UpdateGoalProgress(c.Request.Context(), companyID, reviewID, goalID, req.ProgressPercent, req.Status, req.Actual)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// Start godoc
// @ID           startPerformanceReview
//
//	@Summary		Start performance review
//	@Description	Move a draft review into the self-assessment phase
//	@Tags			performance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Review ID"	format(uuid)
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/start [post]
func (h *PerformanceHandler) Start(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	review, err := h.reviewService.Start(c.Request.Context(), companyID, reviewID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// SubmitSelfAssessment godoc
// @ID           submitSelfAssessment
//
//	@Summary		Submit self assessment
//	@Description	Record the employee's self assessment and move the review to the manager phase
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Review ID"	format(uuid)
//	@Param			request		body		SelfAssessmentRequest	true	"Self assessment"
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/self-assessment [post]
func (h *PerformanceHandler) SubmitSelfAssessment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	var req SelfAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := performanceapp.SelfAssessmentInput{
		CompanyID:    companyID,
		ReviewID:     reviewID,
		EmployeeID:   req.EmployeeID,
		SelfRating:   req.SelfRating,
		Achievements: req.Achievements,
		Challenges:   req.Challenges,
		Comments:     req.Comments,
	}

	review, err := h.reviewService.SubmitSelfAssessment(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// SubmitManagerReview godoc
// @ID           submitManagerReview
//
//	@Summary		Submit manager review
//	@Description	Record the manager's assessment and move the review to HR finalization
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Review ID"	format(uuid)
//	@Param			request		body		ManagerReviewRequest	true	"Manager review"
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/manager-review [post]
func (h *PerformanceHandler) SubmitManagerReview(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	reviewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req ManagerReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := performanceapp.ManagerReviewInput{
		CompanyID:             companyID,
		ReviewID:              reviewID,
		ReviewerID:            reviewerID,
		RecommendedRating:     req.RecommendedRating,
		PromotionRecommended:  req.PromotionRecommended,
		SalaryIncreasePercent: req.SalaryIncreasePercent,
		Strengths:             req.Strengths,
		AreasForImprovement:   req.AreasForImprovement,
		DevelopmentPlan:       req.DevelopmentPlan,
		Comments:              req.Comments,
	}

	review, err := h.reviewService.SubmitManagerReview(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// Finalize godoc
// @ID           finalizePerformanceReview
//
//	@Summary		Finalize performance review
//	@Description	Record HR's final ratings and close the review
//	@Tags			performance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Review ID"	format(uuid)
//	@Param			request		body		FinalizeReviewRequest	true	"Final ratings"
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id}/finalize [post]
func (h *PerformanceHandler) Finalize(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	reviewedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req FinalizeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := performanceapp.FinalizeInput{
		CompanyID:       companyID,
		ReviewID:        reviewID,
		ReviewedBy:      reviewedBy,
		Overall:         req.Overall,
		TechnicalSkills: req.TechnicalSkills,
		Communication:   req.Communication,
		Teamwork:        req.Teamwork,
		Leadership:      req.Leadership,
		Initiative:      req.Initiative,
		HRComments:      req.HRComments,
	}

	review, err := h.reviewService.Finalize(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// Cancel godoc
// @ID           cancelPerformanceReview
//
//	@Summary		Cancel performance review
//	@Description	Cancel a review that has not been finalized
//	@Tags			performance
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Review ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id} [delete]
func (h *PerformanceHandler) Cancel(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	if err := h.reviewService.Cancel(c.Request.Context(), companyID, reviewID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetReview godoc
// @ID           getPerformanceReview
//
//	@Summary		Get performance review
//	@Description	Retrieve a review with its goals
//	@Tags			performance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Review ID"	format(uuid)
//	@Success		200			{object}	APIResponse[performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/{id} [get]
func (h *PerformanceHandler) GetReview(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID format")
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), companyID, reviewID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// ListReviews godoc
// @ID           listPerformanceReviews
//
//	@Summary		List performance reviews
//	@Description	Retrieve a paginated list of reviews filtered by employee, reviewer, or status
//	@Tags			performance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	query		string	false	"Employee ID"	format(uuid)
//	@Param			reviewer_id	query		string	false	"Reviewer ID"	format(uuid)
//	@Param			status		query		string	false	"Review status"	Enums(draft, self_assessment, manager_review, hr_review, completed, cancelled)
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews [get]
func (h *PerformanceHandler) ListReviews(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	var result *performanceapp.ReviewListResult
	switch {
	case c.Query("employee_id") != "":
		employeeID, parseErr := uuid.Parse(c.Query("employee_id"))
		if parseErr != nil {
			h.BadRequest(c, "Invalid employee ID format")
			return
		}
		result, err = h.reviewService.ListByEmployee(c.Request.Context(), companyID, employeeID, filter)
	case c.Query("reviewer_id") != "":
		reviewerID, parseErr := uuid.Parse(c.Query("reviewer_id"))
		if parseErr != nil {
			h.BadRequest(c, "Invalid reviewer ID format")
			return
		}
		result, err = h.reviewService.ListByReviewer(c.Request.Context(), companyID, reviewerID, filter)
	default:
		result, err = h.reviewService.ListReviews(c.Request.Context(), companyID, c.Query("status"), filter)
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Reviews, result.Total, result.Page, result.PageSize)
}

// ListOverdue godoc
// @ID           listOverdueReviews
//
//	@Summary		List overdue reviews
//	@Description	Retrieve open reviews past their due date
//	@Tags			performance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]performanceapp.ReviewDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/performance/reviews/overdue [get]
func (h *PerformanceHandler) ListOverdue(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	reviews, err := h.reviewService.ListOverdue(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reviews)
}
