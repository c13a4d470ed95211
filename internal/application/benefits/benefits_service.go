package benefits

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/benefits"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
)

// BenefitsService manages benefit plans and employee enrollments
type BenefitsService struct {
	planRepo       benefits.BenefitPlanRepository
	enrollmentRepo benefits.EnrollmentRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewBenefitsService creates a new benefits service
func NewBenefitsService(
	planRepo benefits.BenefitPlanRepository,
	enrollmentRepo benefits.EnrollmentRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *BenefitsService {
	return &BenefitsService{
		planRepo:       planRepo,
		enrollmentRepo: enrollmentRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BenefitsService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreatePlanInput contains input for creating a benefit plan
type CreatePlanInput struct {
	CompanyID     uuid.UUID
	Name          string
	Code          string
	Type          string
	Description   string
	PlanYear      int
	CoverageStart time.Time

	ProviderName    string
	ProviderContact string
	PolicyNumber    string
	GroupNumber     string

	EmployerAmount decimal.Decimal
	EmployeeAmount decimal.Decimal
	AnnualPremium  decimal.Decimal
	Currency       string

	WaitingPeriodDays int
	MinHoursPerWeek   int
	IsMandatory       bool
	AllowsDependents  bool
	MaxDependents     int
}

// EnrollInput contains input for enrolling an employee in a plan
type EnrollInput struct {
	CompanyID     uuid.UUID
	EmployeeID    uuid.UUID
	PlanID        uuid.UUID
	EffectiveDate time.Time
	Coverage      string
	Dependents    []DependentInput
}

// DependentInput contains input for one covered dependent
type DependentInput struct {
	FullName     string
	Relationship string
	DateOfBirth  time.Time
}

// PlanDTO represents a benefit plan
type PlanDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	Type          string     `json:"type"`
	Description   string     `json:"description,omitempty"`
	PlanYear      int        `json:"plan_year"`
	CoverageStart string     `json:"coverage_start"`
	CoverageEnd   *time.Time `json:"coverage_end,omitempty"`
	Status        string     `json:"status"`

	ProviderName string `json:"provider_name,omitempty"`
	PolicyNumber string `json:"policy_number,omitempty"`

	EmployerAmount string `json:"employer_amount"`
	EmployeeAmount string `json:"employee_amount"`
	AnnualPremium  string `json:"annual_premium"`

	WaitingPeriodDays int   `json:"waiting_period_days"`
	MinHoursPerWeek   int   `json:"min_hours_per_week"`
	IsMandatory       bool  `json:"is_mandatory"`
	AllowsDependents  bool  `json:"allows_dependents"`
	MaxDependents     int   `json:"max_dependents"`
	Enrolled          int64 `json:"enrolled,omitempty"`
}

// DependentDTO represents a covered dependent
type DependentDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Relationship string    `json:"relationship"`
	DateOfBirth  string    `json:"date_of_birth"`
}

// EnrollmentDTO represents a benefit enrollment
type EnrollmentDTO struct {
	ID               uuid.UUID      `json:"id"`
	EmployeeID       uuid.UUID      `json:"employee_id"`
	PlanID           uuid.UUID      `json:"plan_id"`
	EnrollmentDate   string         `json:"enrollment_date"`
	EffectiveDate    string         `json:"effective_date"`
	TerminationDate  *time.Time     `json:"termination_date,omitempty"`
	Status           string         `json:"status"`
	Coverage         string         `json:"coverage"`
	EmployeePremium  string         `json:"employee_premium"`
	EmployerPremium  string         `json:"employer_premium"`
	PayrollDeduction string         `json:"payroll_deduction"`
	Dependents       []DependentDTO `json:"dependents,omitempty"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
}

// PlanListResult represents a paginated plan list
type PlanListResult struct {
	Plans      []PlanDTO `json:"plans"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// CreatePlan creates a benefit plan for a plan year
func (s *BenefitsService) CreatePlan(ctx context.Context, input CreatePlanInput) (*PlanDTO, error) {
	exists, err := s.planRepo.ExistsByCode(ctx, input.CompanyID, input.Code)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check plan code")
	}
	if exists {
		return nil, shared.NewDomainError("CODE_EXISTS", "A plan with this code already exists")
	}

	plan, err := benefits.NewBenefitPlan(input.CompanyID, input.Name, input.Code,
		benefits.BenefitType(input.Type), input.PlanYear, input.CoverageStart)
	if err != nil {
		return nil, err
	}
	plan.Description = input.Description
	plan.IsMandatory = input.IsMandatory

	plan.SetProvider(benefits.Provider{
		Name:         input.ProviderName,
		Contact:      input.ProviderContact,
		PolicyNumber: input.PolicyNumber,
		GroupNumber:  input.GroupNumber,
	})

	cur := valueobject.Currency(input.Currency)
	if cur == "" {
		cur = valueobject.DefaultCurrency
	}
	employer, err := valueobject.NewMoney(input.EmployerAmount, cur)
	if err != nil {
		return nil, err
	}
	employee, err := valueobject.NewMoney(input.EmployeeAmount, cur)
	if err != nil {
		return nil, err
	}
	annual, err := valueobject.NewMoney(input.AnnualPremium, cur)
	if err != nil {
		return nil, err
	}
	if err := plan.SetContribution(benefits.Contribution{
		EmployerAmount: employer,
		EmployeeAmount: employee,
		AnnualPremium:  annual,
	}); err != nil {
		return nil, err
	}

	if err := plan.SetEligibility(input.WaitingPeriodDays, input.MinHoursPerWeek); err != nil {
		return nil, err
	}
	if err := plan.SetDependentRules(input.AllowsDependents, input.MaxDependents); err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		s.logger.Error("Failed to save benefit plan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save benefit plan")
	}

	s.logger.Info("Benefit plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("code", plan.Code),
		zap.Int("plan_year", plan.PlanYear))

	return toPlanDTO(plan, 0), nil
}

// GetPlan retrieves a plan by ID
func (s *BenefitsService) GetPlan(ctx context.Context, companyID, planID uuid.UUID) (*PlanDTO, error) {
	plan, err := s.findPlan(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}
	return toPlanDTO(plan, 0), nil
}

// ListPlans retrieves plans with enrollment counts
func (s *BenefitsService) ListPlans(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*PlanListResult, error) {
	page, err := s.planRepo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list plans")
	}

	counts, err := s.enrollmentRepo.CountByPlan(ctx, companyID)
	if err != nil {
		counts = map[uuid.UUID]int64{}
	}

	dtos := make([]PlanDTO, len(page.Items))
	for i, p := range page.Items {
		dtos[i] = *toPlanDTO(p, counts[p.ID])
	}
	return &PlanListResult{
		Plans:      dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// SuspendPlan pauses new enrollments
func (s *BenefitsService) SuspendPlan(ctx context.Context, companyID, planID uuid.UUID) (*PlanDTO, error) {
	plan, err := s.findPlan(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}
	if err := plan.Suspend(); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save plan")
	}
	return toPlanDTO(plan, 0), nil
}

// ReactivatePlan resumes a suspended plan
func (s *BenefitsService) ReactivatePlan(ctx context.Context, companyID, planID uuid.UUID) (*PlanDTO, error) {
	plan, err := s.findPlan(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}
	if err := plan.Reactivate(); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save plan")
	}
	return toPlanDTO(plan, 0), nil
}

// ExpirePlan closes a plan at the end of its coverage
func (s *BenefitsService) ExpirePlan(ctx context.Context, companyID, planID uuid.UUID, coverageEnd time.Time) (*PlanDTO, error) {
	plan, err := s.findPlan(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}
	if err := plan.Expire(coverageEnd); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save plan")
	}
	return toPlanDTO(plan, 0), nil
}

// Enroll starts a pending enrollment for an employee. Eligibility follows
// the plan's waiting period from the employee's hire date.
func (s *BenefitsService) Enroll(ctx context.Context, input EnrollInput) (*EnrollmentDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if !employee.Status.IsWorking() {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_ACTIVE", "Only active employees can enroll")
	}

	plan, err := s.findPlan(ctx, input.CompanyID, input.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsOpenForEnrollment() {
		return nil, shared.NewDomainError("PLAN_CLOSED", "Plan is not open for enrollment")
	}

	eligibleAfter := plan.EligibleAfter(employee.HireDate)
	if input.EffectiveDate.Before(eligibleAfter) {
		return nil, shared.NewDomainError("NOT_ELIGIBLE",
			"Employee is eligible from "+eligibleAfter.Format("2006-01-02"))
	}

	existing, err := s.enrollmentRepo.FindActiveByEmployeeAndPlan(ctx, input.CompanyID, input.EmployeeID, input.PlanID)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing enrollment")
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_ENROLLED", "Employee already has an enrollment in this plan")
	}

	enrollment, err := benefits.NewEnrollment(input.CompanyID, input.EmployeeID, input.PlanID,
		input.EffectiveDate, benefits.CoverageLevel(input.Coverage))
	if err != nil {
		return nil, err
	}

	if err := enrollment.SetPremiums(plan.Contribution.EmployeeAmount, plan.Contribution.EmployerAmount,
		plan.Contribution.EmployeeAmount); err != nil {
		return nil, err
	}

	if len(input.Dependents) > 0 && !plan.AllowsDependents {
		return nil, shared.NewDomainError("INVALID_COVERAGE", "Plan does not cover dependents")
	}
	for _, d := range input.Dependents {
		if err := enrollment.AddDependent(d.FullName, d.Relationship, d.DateOfBirth, plan.MaxDependents); err != nil {
			return nil, err
		}
	}

	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		s.logger.Error("Failed to save enrollment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}

	s.logger.Info("Benefit enrollment submitted",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.String("plan_id", input.PlanID.String()))

	return toEnrollmentDTO(enrollment), nil
}

// ApproveEnrollment confirms a pending enrollment
func (s *BenefitsService) ApproveEnrollment(ctx context.Context, companyID, enrollmentID, approverID uuid.UUID) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := enrollment.Approve(approverID); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}
	s.publishDomainEvents(ctx, enrollment)
	return toEnrollmentDTO(enrollment), nil
}

// DeclineEnrollment rejects a pending enrollment
func (s *BenefitsService) DeclineEnrollment(ctx context.Context, companyID, enrollmentID, approverID uuid.UUID, reason string) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := enrollment.Decline(approverID, reason); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}
	return toEnrollmentDTO(enrollment), nil
}

// SuspendEnrollment pauses coverage, e.g. during unpaid leave
func (s *BenefitsService) SuspendEnrollment(ctx context.Context, companyID, enrollmentID uuid.UUID) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := enrollment.Suspend(); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}
	return toEnrollmentDTO(enrollment), nil
}

// ResumeEnrollment reactivates suspended coverage
func (s *BenefitsService) ResumeEnrollment(ctx context.Context, companyID, enrollmentID uuid.UUID) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := enrollment.Resume(); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}
	return toEnrollmentDTO(enrollment), nil
}

// TerminateEnrollment ends coverage
func (s *BenefitsService) TerminateEnrollment(ctx context.Context, companyID, enrollmentID uuid.UUID, terminationDate time.Time) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if terminationDate.IsZero() {
		terminationDate = time.Now()
	}
	if err := enrollment.Terminate(terminationDate); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save enrollment")
	}
	return toEnrollmentDTO(enrollment), nil
}

// TerminateEmployeeEnrollments ends all coverage for an employee, used on exit.
// Returns the number of enrollments terminated.
func (s *BenefitsService) TerminateEmployeeEnrollments(ctx context.Context, companyID, employeeID uuid.UUID, terminationDate time.Time) (int, error) {
	enrollments, err := s.enrollmentRepo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to load enrollments")
	}

	terminated := 0
	for _, enrollment := range enrollments {
		if err := enrollment.Terminate(terminationDate); err != nil {
			continue
		}
		if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
			s.logger.Error("Failed to terminate enrollment",
				zap.String("enrollment_id", enrollment.ID.String()),
				zap.Error(err))
			continue
		}
		terminated++
	}
	return terminated, nil
}

// GetEnrollment retrieves an enrollment by ID
func (s *BenefitsService) GetEnrollment(ctx context.Context, companyID, enrollmentID uuid.UUID) (*EnrollmentDTO, error) {
	enrollment, err := s.findEnrollment(ctx, companyID, enrollmentID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentDTO(enrollment), nil
}

// ListEmployeeEnrollments retrieves an employee's enrollments
func (s *BenefitsService) ListEmployeeEnrollments(ctx context.Context, companyID, employeeID uuid.UUID) ([]EnrollmentDTO, error) {
	enrollments, err := s.enrollmentRepo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list enrollments")
	}

	dtos := make([]EnrollmentDTO, len(enrollments))
	for i, e := range enrollments {
		dtos[i] = *toEnrollmentDTO(e)
	}
	return dtos, nil
}

// PayrollDeductions returns per-employee benefit deductions in force on a
// date, consumed by payroll processing
func (s *BenefitsService) PayrollDeductions(ctx context.Context, companyID uuid.UUID, date time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	enrollments, err := s.enrollmentRepo.FindActiveOn(ctx, companyID, date)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load active enrollments")
	}

	deductions := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range enrollments {
		if !e.IsActiveOn(date) {
			continue
		}
		deductions[e.EmployeeID] = deductions[e.EmployeeID].Add(e.PayrollDeduction.Amount())
	}
	return deductions, nil
}

func (s *BenefitsService) findPlan(ctx context.Context, companyID, id uuid.UUID) (*benefits.BenefitPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("PLAN_NOT_FOUND", "Benefit plan not found")
		}
		s.logger.Error("Failed to find benefit plan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find benefit plan")
	}
	return plan, nil
}

func (s *BenefitsService) findEnrollment(ctx context.Context, companyID, id uuid.UUID) (*benefits.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ENROLLMENT_NOT_FOUND", "Enrollment not found")
		}
		s.logger.Error("Failed to find enrollment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find enrollment")
	}
	return enrollment, nil
}

// publishDomainEvents publishes pending domain events from the enrollment aggregate
func (s *BenefitsService) publishDomainEvents(ctx context.Context, enrollment *benefits.Enrollment) {
	if s.eventPublisher == nil {
		return
	}
	events := enrollment.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	enrollment.ClearDomainEvents()
}

// toPlanDTO converts a domain BenefitPlan to its DTO
func toPlanDTO(p *benefits.BenefitPlan, enrolled int64) *PlanDTO {
	return &PlanDTO{
		ID:                p.ID,
		Name:              p.Name,
		Code:              p.Code,
		Type:              string(p.Type),
		Description:       p.Description,
		PlanYear:          p.PlanYear,
		CoverageStart:     p.CoverageStart.Format("2006-01-02"),
		CoverageEnd:       p.CoverageEnd,
		Status:            string(p.Status),
		ProviderName:      p.Provider.Name,
		PolicyNumber:      p.Provider.PolicyNumber,
		EmployerAmount:    p.Contribution.EmployerAmount.Amount().String(),
		EmployeeAmount:    p.Contribution.EmployeeAmount.Amount().String(),
		AnnualPremium:     p.Contribution.AnnualPremium.Amount().String(),
		WaitingPeriodDays: p.WaitingPeriodDays,
		MinHoursPerWeek:   p.MinHoursPerWeek,
		IsMandatory:       p.IsMandatory,
		AllowsDependents:  p.AllowsDependents,
		MaxDependents:     p.MaxDependents,
		Enrolled:          enrolled,
	}
}

// toEnrollmentDTO converts a domain Enrollment to its DTO
func toEnrollmentDTO(e *benefits.Enrollment) *EnrollmentDTO {
	dto := &EnrollmentDTO{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		PlanID:           e.PlanID,
		EnrollmentDate:   e.EnrollmentDate.Format("2006-01-02"),
		EffectiveDate:    e.EffectiveDate.Format("2006-01-02"),
		TerminationDate:  e.TerminationDate,
		Status:           string(e.Status),
		Coverage:         string(e.Coverage),
		EmployeePremium:  e.EmployeePremium.Amount().String(),
		EmployerPremium:  e.EmployerPremium.Amount().String(),
		PayrollDeduction: e.PayrollDeduction.Amount().String(),
		RejectionReason:  e.RejectionReason,
	}
	if len(e.Dependents) > 0 {
		dto.Dependents = make([]DependentDTO, len(e.Dependents))
		for i := range e.Dependents {
			d := &e.Dependents[i]
			dto.Dependents[i] = DependentDTO{
				ID:           d.ID,
				FullName:     d.FullName,
				Relationship: d.Relationship,
				DateOfBirth:  d.DateOfBirth.Format("2006-01-02"),
			}
		}
	}
	return dto
}
