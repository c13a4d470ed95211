package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	leaveapp "github.com/hrms/backend/internal/application/leave"
)

// LeavePolicyHandler handles leave policy API endpoints
type LeavePolicyHandler struct {
	BaseHandler
	policyService *leaveapp.PolicyService
}

// NewLeavePolicyHandler creates a new LeavePolicyHandler
func NewLeavePolicyHandler(policyService *leaveapp.PolicyService) *LeavePolicyHandler {
	return &LeavePolicyHandler{
		policyService: policyService,
	}
}

// CreateLeavePolicyRequest represents a request to create a leave policy
type CreateLeavePolicyRequest struct {
	Type                 string          `json:"type" binding:"required,oneof=vacation sick personal maternity paternity bereavement unpaid" example:"vacation"`
	DaysPerYear          decimal.Decimal `json:"days_per_year" binding:"required" example:"20"`
	EffectiveFrom        time.Time       `json:"effective_from" binding:"required" example:"2026-01-01T00:00:00Z"`
	MinServiceMonths     int             `json:"min_service_months" binding:"min=0" example:"3"`
	MaxConsecutiveDays   int             `json:"max_consecutive_days" binding:"min=0" example:"15"`
	MinNoticeDays        int             `json:"min_notice_days" binding:"min=0" example:"7"`
	AllowCarryForward    bool            `json:"allow_carry_forward" example:"true"`
	MaxCarryForwardDays  decimal.Decimal `json:"max_carry_forward_days" example:"5"`
	AutoApproveThreshold decimal.Decimal `json:"auto_approve_threshold" example:"1"`
	RequiresAttachment   bool            `json:"requires_attachment" example:"false"`
}

// DeactivatePolicyRequest sets the end of a policy's effective window
type DeactivatePolicyRequest struct {
	EffectiveTo time.Time `json:"effective_to" binding:"required" example:"2026-12-31T00:00:00Z"`
}

// Create godoc
// @ID           createLeavePolicy
//
//	@Summary		Create leave policy
//	@Description	Create a leave policy governing allowance and approval rules for a leave type
//	@Tags			leave-policies
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		CreateLeavePolicyRequest	true	"Policy data"
//	@Success		201			{object}	APIResponse[leaveapp.PolicyDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/policies [post]
func (h *LeavePolicyHandler) Create(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateLeavePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := leaveapp.CreatePolicyInput{
		CompanyID:            companyID,
		Type:                 req.Type,
		DaysPerYear:          req.DaysPerYear,
		EffectiveFrom:        req.EffectiveFrom,
		MinServiceMonths:     req.MinServiceMonths,
		MaxConsecutiveDays:   req.MaxConsecutiveDays,
		MinNoticeDays:        req.MinNoticeDays,
		AllowCarryForward:    req.AllowCarryForward,
		MaxCarryForwardDays:  req.MaxCarryForwardDays,
		AutoApproveThreshold: req.AutoApproveThreshold,
		RequiresAttachment:   req.RequiresAttachment,
	}

	policy, err := h.policyService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, policy)
}

// Get godoc
// @ID           getLeavePolicy
//
//	@Summary		Get leave policy
//	@Description	Retrieve a leave policy by ID
//	@Tags			leave-policies
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Policy ID"	format(uuid)
//	@Success		200			{object}	APIResponse[leaveapp.PolicyDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/policies/{id} [get]
func (h *LeavePolicyHandler) Get(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid policy ID format")
		return
	}

	policy, err := h.policyService.Get(c.Request.Context(), companyID, policyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// List godoc
// @ID           listLeavePolicies
//
//	@Summary		List leave policies
//	@Description	Retrieve all leave policies for the company
//	@Tags			leave-policies
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]leaveapp.PolicyDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/policies [get]
func (h *LeavePolicyHandler) List(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	policies, err := h.policyService.List(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policies)
}

// Deactivate godoc
// @ID           deactivateLeavePolicy
//
//	@Summary		Deactivate leave policy
//	@Description	Close a policy's effective window so it no longer applies to new requests
//	@Tags			leave-policies
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Policy ID"	format(uuid)
//	@Param			request		body		DeactivatePolicyRequest	true	"Effective end date"
//	@Success		200			{object}	APIResponse[leaveapp.PolicyDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/policies/{id}/deactivate [post]
func (h *LeavePolicyHandler) Deactivate(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid policy ID format")
		return
	}

	var req DeactivatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	policy, err := h.policyService.Deactivate(c.Request.Context(), companyID, policyID, req.EffectiveTo)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// Delete godoc
// @ID           deleteLeavePolicy
//
//	@Summary		Delete leave policy
//	@Description	Delete a leave policy that has never been applied
//	@Tags			leave-policies
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Policy ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/leave/policies/{id} [delete]
func (h *LeavePolicyHandler) Delete(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid policy ID format")
		return
	}

	if err := h.policyService.Delete(c.Request.Context(), companyID, policyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
