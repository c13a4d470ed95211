package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
)

// PolicyService handles leave policy configuration
type PolicyService struct {
	policyRepo leave.LeavePolicyRepository
	logger     *zap.Logger
}

// NewPolicyService creates a new policy service
func NewPolicyService(policyRepo leave.LeavePolicyRepository, logger *zap.Logger) *PolicyService {
	return &PolicyService{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// CreatePolicyInput contains input for creating a leave policy
type CreatePolicyInput struct {
	CompanyID            uuid.UUID
	Type                 string
	DaysPerYear          decimal.Decimal
	EffectiveFrom        time.Time
	MinServiceMonths     int
	MaxConsecutiveDays   int
	MinNoticeDays        int
	AllowCarryForward    bool
	MaxCarryForwardDays  decimal.Decimal
	AutoApproveThreshold decimal.Decimal
	RequiresAttachment   bool
}

// PolicyDTO represents a leave policy
type PolicyDTO struct {
	ID                   uuid.UUID  `json:"id"`
	Type                 string     `json:"type"`
	DaysPerYear          string     `json:"days_per_year"`
	MinServiceMonths     int        `json:"min_service_months"`
	MaxConsecutiveDays   int        `json:"max_consecutive_days"`
	MinNoticeDays        int        `json:"min_notice_days"`
	Accrual              string     `json:"accrual"`
	AllowCarryForward    bool       `json:"allow_carry_forward"`
	MaxCarryForwardDays  string     `json:"max_carry_forward_days"`
	AutoApproveThreshold string     `json:"auto_approve_threshold"`
	RequiresAttachment   bool       `json:"requires_attachment"`
	EffectiveFrom        string     `json:"effective_from"`
	EffectiveTo          *time.Time `json:"effective_to,omitempty"`
	IsActive             bool       `json:"is_active"`
}

// Create creates a leave policy. An existing active policy for the same
// type is closed as of the new policy's effective date.
func (s *PolicyService) Create(ctx context.Context, input CreatePolicyInput) (*PolicyDTO, error) {
	leaveType := leave.LeaveType(input.Type)

	policy, err := leave.NewLeavePolicy(input.CompanyID, leaveType, input.DaysPerYear, input.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	if err := policy.SetRules(input.MinServiceMonths, input.MaxConsecutiveDays, input.MinNoticeDays); err != nil {
		return nil, err
	}
	if err := policy.SetCarryForward(input.AllowCarryForward, input.MaxCarryForwardDays); err != nil {
		return nil, err
	}
	if input.AutoApproveThreshold.IsPositive() {
		if err := policy.SetAutoApprove(input.AutoApproveThreshold); err != nil {
			return nil, err
		}
	}
	policy.SetRequiresAttachment(input.RequiresAttachment)

	existing, err := s.policyRepo.FindByType(ctx, input.CompanyID, leaveType)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing policy")
	}
	if existing != nil {
		if err := existing.Deactivate(input.EffectiveFrom); err != nil {
			return nil, err
		}
		if err := s.policyRepo.Save(ctx, existing); err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to close existing policy")
		}
	}

	if err := s.policyRepo.Save(ctx, policy); err != nil {
		s.logger.Error("Failed to create leave policy", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create leave policy")
	}

	s.logger.Info("Leave policy created",
		zap.String("policy_id", policy.ID.String()),
		zap.String("type", input.Type))

	return toPolicyDTO(policy), nil
}

// Get retrieves a policy by ID
func (s *PolicyService) Get(ctx context.Context, companyID, id uuid.UUID) (*PolicyDTO, error) {
	policy, err := s.findPolicy(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toPolicyDTO(policy), nil
}

// List retrieves all policies of the company
func (s *PolicyService) List(ctx context.Context, companyID uuid.UUID) ([]PolicyDTO, error) {
	policies, err := s.policyRepo.FindAll(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list leave policies")
	}

	dtos := make([]PolicyDTO, len(policies))
	for i, p := range policies {
		dtos[i] = *toPolicyDTO(p)
	}
	return dtos, nil
}

// Deactivate ends a policy as of the given date
func (s *PolicyService) Deactivate(ctx context.Context, companyID, id uuid.UUID, effectiveTo time.Time) (*PolicyDTO, error) {
	policy, err := s.findPolicy(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Deactivate(effectiveTo); err != nil {
		return nil, err
	}
	if err := s.policyRepo.Save(ctx, policy); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate policy")
	}
	return toPolicyDTO(policy), nil
}

// Delete removes a policy. Only inactive policies can be deleted.
func (s *PolicyService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	policy, err := s.findPolicy(ctx, companyID, id)
	if err != nil {
		return err
	}
	if policy.IsActive {
		return shared.NewDomainError("POLICY_ACTIVE", "Deactivate the policy before deleting it")
	}
	if err := s.policyRepo.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("Failed to delete leave policy", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete leave policy")
	}
	return nil
}

func (s *PolicyService) findPolicy(ctx context.Context, companyID, id uuid.UUID) (*leave.LeavePolicy, error) {
	policy, err := s.policyRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("POLICY_NOT_FOUND", "Leave policy not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find leave policy")
	}
	return policy, nil
}

// toPolicyDTO converts a domain LeavePolicy to its DTO
func toPolicyDTO(p *leave.LeavePolicy) *PolicyDTO {
	return &PolicyDTO{
		ID:                   p.ID,
		Type:                 string(p.Type),
		DaysPerYear:          p.DaysPerYear.String(),
		MinServiceMonths:     p.MinServiceMonths,
		MaxConsecutiveDays:   p.MaxConsecutiveDays,
		MinNoticeDays:        p.MinNoticeDays,
		Accrual:              string(p.Accrual),
		AllowCarryForward:    p.AllowCarryForward,
		MaxCarryForwardDays:  p.MaxCarryForwardDays.String(),
		AutoApproveThreshold: p.AutoApproveThreshold.String(),
		RequiresAttachment:   p.RequiresAttachment,
		EffectiveFrom:        p.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:          p.EffectiveTo,
		IsActive:             p.IsActive,
	}
}
