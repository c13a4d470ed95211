package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// LeaveService handles leave request, balance and policy operations
type LeaveService struct {
	requestRepo    leave.LeaveRequestRepository
	balanceRepo    leave.LeaveBalanceRepository
	policyRepo     leave.LeavePolicyRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewLeaveService creates a new leave service
func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	policyRepo leave.LeavePolicyRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *LeaveService {
	return &LeaveService{
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LeaveService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SubmitRequestInput contains input for submitting a leave request
type SubmitRequestInput struct {
	CompanyID       uuid.UUID
	EmployeeID      uuid.UUID
	Type            string
	StartDate       time.Time
	EndDate         time.Time
	Days            decimal.Decimal
	HalfDayStart    bool
	HalfDayEnd      bool
	Reason          string
	AttachmentURL   string
	CoverEmployeeID *uuid.UUID
}

// DecideRequestInput contains input for approving or rejecting a request
type DecideRequestInput struct {
	CompanyID  uuid.UUID
	RequestID  uuid.UUID
	ApproverID uuid.UUID
	Note       string
}

// LeaveRequestDTO represents a leave request
type LeaveRequestDTO struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	Type            string     `json:"type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Days            string     `json:"days"`
	IsHalfDayStart  bool       `json:"is_half_day_start"`
	IsHalfDayEnd    bool       `json:"is_half_day_end"`
	Reason          string     `json:"reason,omitempty"`
	AttachmentURL   string     `json:"attachment_url,omitempty"`
	CoverEmployeeID *uuid.UUID `json:"cover_employee_id,omitempty"`
	Status          string     `json:"status"`
	ApproverID      *uuid.UUID `json:"approver_id,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	DecisionNote    string     `json:"decision_note,omitempty"`
	AutoApproved    bool       `json:"auto_approved"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LeaveBalanceDTO represents one leave type balance for a year
type LeaveBalanceDTO struct {
	Type           string `json:"type"`
	Year           int    `json:"year"`
	Allocated      string `json:"allocated"`
	CarriedForward string `json:"carried_forward"`
	Used           string `json:"used"`
	Pending        string `json:"pending"`
	Available      string `json:"available"`
}

// LeaveRequestListResult represents a paginated request list
type LeaveRequestListResult struct {
	Requests   []LeaveRequestDTO `json:"requests"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// Submit validates a leave request against policy and balance, reserves the
// days, and auto-approves when the policy threshold allows
func (s *LeaveService) Submit(ctx context.Context, input SubmitRequestInput) (*LeaveRequestDTO, error) {
	s.logger.Info("Submitting leave request",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.String("type", input.Type))

	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if !employee.Status.IsWorking() {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_WORKING", "Employee is not in a working status")
	}

	leaveType := leave.LeaveType(input.Type)

	overlapping, err := s.requestRepo.FindOverlapping(ctx, input.CompanyID, input.EmployeeID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check overlapping requests")
	}
	if len(overlapping) > 0 {
		return nil, shared.NewDomainError("OVERLAPPING_REQUEST", "An overlapping leave request already exists")
	}

	request, err := leave.NewLeaveRequest(input.CompanyID, input.EmployeeID, leaveType,
		input.StartDate, input.EndDate, input.Days, input.Reason)
	if err != nil {
		return nil, err
	}
	request.SetHalfDays(input.HalfDayStart, input.HalfDayEnd)
	if input.CoverEmployeeID != nil {
		if err := request.SetCover(input.CoverEmployeeID); err != nil {
			return nil, err
		}
	}
	if input.AttachmentURL != "" {
		if err := request.SetAttachment(input.AttachmentURL); err != nil {
			return nil, err
		}
	}

	// Policy checks apply when a policy is configured for the type
	var policy *leave.LeavePolicy
	policy, err = s.policyRepo.FindEffective(ctx, input.CompanyID, leaveType, input.StartDate)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave policy")
	}
	if policy != nil {
		serviceMonths := monthsBetween(employee.HireDate, input.StartDate)
		noticeDays := int(time.Until(input.StartDate).Hours() / 24)
		if err := policy.ValidateRequest(input.Days, serviceMonths, noticeDays); err != nil {
			return nil, err
		}
		if policy.RequiresAttachment && request.AttachmentURL == "" {
			return nil, shared.NewDomainError("ATTACHMENT_REQUIRED", "This leave type requires a supporting document")
		}
	}

	// Paid leave draws down the yearly balance
	var balance *leave.LeaveBalance
	if leaveType.IsPaid() {
		balance, err = s.balanceRepo.FindByEmployeeTypeYear(ctx, input.CompanyID, input.EmployeeID, leaveType, request.Year())
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("NO_BALANCE", "No leave balance allocated for this year")
			}
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave balance")
		}
		if err := balance.Reserve(input.Days); err != nil {
			return nil, err
		}
	}

	autoApproved := false
	if policy != nil && policy.ShouldAutoApprove(input.Days) {
		if err := request.Approve(uuid.Nil, "Auto-approved under policy"); err != nil {
			return nil, err
		}
		if balance != nil {
			if err := balance.Consume(input.Days); err != nil {
				return nil, err
			}
		}
		autoApproved = true
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		s.logger.Error("Failed to save leave request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave request")
	}
	if balance != nil {
		if err := s.balanceRepo.Save(ctx, balance); err != nil {
			s.logger.Error("Failed to save leave balance", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave balance")
		}
	}

	s.publishDomainEvents(ctx, request)

	s.logger.Info("Leave request submitted",
		zap.String("request_id", request.ID.String()),
		zap.Bool("auto_approved", autoApproved))

	dto := toLeaveRequestDTO(request)
	dto.AutoApproved = autoApproved
	return dto, nil
}

// Approve approves a pending request and consumes the reserved balance
func (s *LeaveService) Approve(ctx context.Context, input DecideRequestInput) (*LeaveRequestDTO, error) {
	request, err := s.findRequest(ctx, input.CompanyID, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.EmployeeID == input.ApproverID {
		return nil, shared.NewDomainError("SELF_APPROVAL", "Employees cannot approve their own leave")
	}

	if err := request.Approve(input.ApproverID, input.Note); err != nil {
		return nil, err
	}

	if request.Type.IsPaid() {
		balance, err := s.balanceRepo.FindByEmployeeTypeYear(ctx, input.CompanyID, request.EmployeeID, request.Type, request.Year())
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave balance")
		}
		if err := balance.Consume(request.DaysRequested); err != nil {
			return nil, err
		}
		if err := s.balanceRepo.Save(ctx, balance); err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave balance")
		}
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave request")
	}

	s.publishDomainEvents(ctx, request)

	s.logger.Info("Leave request approved",
		zap.String("request_id", input.RequestID.String()),
		zap.String("approver_id", input.ApproverID.String()))

	return toLeaveRequestDTO(request), nil
}

// Reject rejects a pending request and releases the reserved balance
func (s *LeaveService) Reject(ctx context.Context, input DecideRequestInput) (*LeaveRequestDTO, error) {
	request, err := s.findRequest(ctx, input.CompanyID, input.RequestID)
	if err != nil {
		return nil, err
	}

	if err := request.Reject(input.ApproverID, input.Note); err != nil {
		return nil, err
	}

	if err := s.releaseReservation(ctx, request, false); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave request")
	}

	s.publishDomainEvents(ctx, request)

	return toLeaveRequestDTO(request), nil
}

// Withdraw lets the employee withdraw a still-pending request
func (s *LeaveService) Withdraw(ctx context.Context, companyID, requestID, employeeID uuid.UUID) (*LeaveRequestDTO, error) {
	request, err := s.findRequest(ctx, companyID, requestID)
	if err != nil {
		return nil, err
	}
	if request.EmployeeID != employeeID {
		return nil, shared.NewDomainError("NOT_OWNER", "Only the requesting employee can withdraw")
	}

	if err := request.Withdraw(); err != nil {
		return nil, err
	}

	if err := s.releaseReservation(ctx, request, false); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave request")
	}

	s.publishDomainEvents(ctx, request)

	return toLeaveRequestDTO(request), nil
}

// Cancel cancels a pending or not-yet-started approved request,
// refunding consumed days where needed
func (s *LeaveService) Cancel(ctx context.Context, companyID, requestID uuid.UUID) (*LeaveRequestDTO, error) {
	request, err := s.findRequest(ctx, companyID, requestID)
	if err != nil {
		return nil, err
	}

	wasApproved := request.Status == leave.RequestStatusApproved

	if err := request.Cancel(time.Now()); err != nil {
		return nil, err
	}

	if err := s.releaseReservation(ctx, request, wasApproved); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave request")
	}

	s.publishDomainEvents(ctx, request)

	return toLeaveRequestDTO(request), nil
}

// releaseReservation returns days to the balance. Approved requests refund
// consumed days, pending ones release the reservation.
func (s *LeaveService) releaseReservation(ctx context.Context, request *leave.LeaveRequest, wasApproved bool) error {
	if !request.Type.IsPaid() {
		return nil
	}

	balance, err := s.balanceRepo.FindByEmployeeTypeYear(ctx, request.TenantID, request.EmployeeID, request.Type, request.Year())
	if err != nil {
		if err == shared.ErrNotFound {
			return nil
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave balance")
	}

	if wasApproved {
		err = balance.Refund(request.DaysRequested)
	} else {
		err = balance.Release(request.DaysRequested)
	}
	if err != nil {
		return err
	}

	if err := s.balanceRepo.Save(ctx, balance); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save leave balance")
	}
	return nil
}

// GetRequest retrieves a request by ID
func (s *LeaveService) GetRequest(ctx context.Context, companyID, requestID uuid.UUID) (*LeaveRequestDTO, error) {
	request, err := s.findRequest(ctx, companyID, requestID)
	if err != nil {
		return nil, err
	}
	return toLeaveRequestDTO(request), nil
}

// ListByEmployee retrieves an employee's requests, newest first
func (s *LeaveService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID, filter shared.Filter) (*LeaveRequestListResult, error) {
	page, err := s.requestRepo.FindByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list leave requests")
	}
	return toRequestListResult(page), nil
}

// ListPendingForApprover retrieves pending requests awaiting a manager's decision
func (s *LeaveService) ListPendingForApprover(ctx context.Context, companyID, managerID uuid.UUID, filter shared.Filter) (*LeaveRequestListResult, error) {
	page, err := s.requestRepo.FindPendingForApprover(ctx, companyID, managerID, filter)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pending requests")
	}
	return toRequestListResult(page), nil
}

// GetBalances retrieves an employee's balances for a year
func (s *LeaveService) GetBalances(ctx context.Context, companyID, employeeID uuid.UUID, year int) ([]LeaveBalanceDTO, error) {
	balances, err := s.balanceRepo.FindByEmployeeYear(ctx, companyID, employeeID, year)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave balances")
	}

	dtos := make([]LeaveBalanceDTO, len(balances))
	for i, b := range balances {
		dtos[i] = LeaveBalanceDTO{
			Type:           string(b.Type),
			Year:           b.Year,
			Allocated:      b.Allocated.String(),
			CarriedForward: b.CarriedForward.String(),
			Used:           b.Used.String(),
			Pending:        b.Pending.String(),
			Available:      b.Available().String(),
		}
	}
	return dtos, nil
}

// AllocateYearlyBalances creates the yearly balance rows for an employee from
// the active policies and the employee's recorded entitlement. Existing rows
// are left untouched.
func (s *LeaveService) AllocateYearlyBalances(ctx context.Context, companyID, employeeID uuid.UUID, year int) error {
	employee, err := s.employeeRepo.FindByID(ctx, companyID, employeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}

	policies, err := s.policyRepo.FindActive(ctx, companyID)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave policies")
	}

	allocations := map[leave.LeaveType]decimal.Decimal{}
	for _, p := range policies {
		allocations[p.Type] = p.DaysPerYear
	}
	// Employee-level entitlement overrides the policy default
	if employee.Entitlement.VacationDaysPerYear.IsPositive() {
		allocations[leave.LeaveTypeAnnual] = employee.Entitlement.VacationDaysPerYear
	}
	if employee.Entitlement.SickDaysPerYear.IsPositive() {
		allocations[leave.LeaveTypeSick] = employee.Entitlement.SickDaysPerYear
	}

	var created []*leave.LeaveBalance
	for leaveType, days := range allocations {
		exists, err := s.balanceRepo.ExistsForEmployee(ctx, companyID, employeeID, leaveType, year)
		if err != nil {
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing balance")
		}
		if exists {
			continue
		}
		balance, err := leave.NewLeaveBalance(companyID, employeeID, leaveType, year, days)
		if err != nil {
			return err
		}
		created = append(created, balance)
	}

	if len(created) == 0 {
		return nil
	}
	if err := s.balanceRepo.SaveAll(ctx, created); err != nil {
		s.logger.Error("Failed to allocate leave balances", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to allocate leave balances")
	}

	s.logger.Info("Leave balances allocated",
		zap.String("employee_id", employeeID.String()),
		zap.Int("year", year),
		zap.Int("balances", len(created)))

	return nil
}

// CarryForwardBalances rolls unused days into the next year where policy allows
func (s *LeaveService) CarryForwardBalances(ctx context.Context, companyID uuid.UUID, fromYear int) (int, error) {
	policies, err := s.policyRepo.FindActive(ctx, companyID)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave policies")
	}
	policyByType := map[leave.LeaveType]*leave.LeavePolicy{}
	for _, p := range policies {
		policyByType[p.Type] = p
	}

	filter := shared.Filter{Page: 1, PageSize: 1000}
	page, err := s.balanceRepo.FindByYear(ctx, companyID, fromYear, filter)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave balances")
	}

	carried := 0
	for _, old := range page.Items {
		policy := policyByType[old.Type]
		if policy == nil || !policy.AllowCarryForward {
			continue
		}
		amount := policy.CarryForwardAmount(old.Available())
		if !amount.IsPositive() {
			continue
		}

		next, err := s.balanceRepo.FindByEmployeeTypeYear(ctx, companyID, old.EmployeeID, old.Type, fromYear+1)
		if err != nil {
			if err != shared.ErrNotFound {
				return carried, shared.NewDomainError("INTERNAL_ERROR", "Failed to load next-year balance")
			}
			next, err = leave.NewLeaveBalance(companyID, old.EmployeeID, old.Type, fromYear+1, policy.DaysPerYear)
			if err != nil {
				return carried, err
			}
		}
		if err := next.SetCarriedForward(amount); err != nil {
			return carried, err
		}
		if err := s.balanceRepo.Save(ctx, next); err != nil {
			return carried, shared.NewDomainError("INTERNAL_ERROR", "Failed to save next-year balance")
		}
		carried++
	}

	s.logger.Info("Leave balances carried forward",
		zap.String("company_id", companyID.String()),
		zap.Int("from_year", fromYear),
		zap.Int("balances", carried))

	return carried, nil
}

// ApprovedLeaveDates returns the employee-date pairs of approved leave in a range.
// Used by attendance to mark leave days and by payroll for unpaid leave.
func (s *LeaveService) ApprovedLeaveDates(ctx context.Context, companyID uuid.UUID, start, end time.Time) (map[uuid.UUID][]time.Time, error) {
	requests, err := s.requestRepo.FindApprovedInRange(ctx, companyID, start, end)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load approved leave")
	}

	dates := map[uuid.UUID][]time.Time{}
	for _, r := range requests {
		for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
			if d.Before(start) || d.After(end) {
				continue
			}
			dates[r.EmployeeID] = append(dates[r.EmployeeID], d)
		}
	}
	return dates, nil
}

func (s *LeaveService) findRequest(ctx context.Context, companyID, id uuid.UUID) (*leave.LeaveRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("REQUEST_NOT_FOUND", "Leave request not found")
		}
		s.logger.Error("Failed to find leave request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find leave request")
	}
	return request, nil
}

// publishDomainEvents publishes pending domain events from the request aggregate
func (s *LeaveService) publishDomainEvents(ctx context.Context, request *leave.LeaveRequest) {
	if s.eventPublisher == nil {
		return
	}
	events := request.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	request.ClearDomainEvents()
}

// monthsBetween returns whole months between two dates
func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func toRequestListResult(page *shared.Paginated[*leave.LeaveRequest]) *LeaveRequestListResult {
	dtos := make([]LeaveRequestDTO, len(page.Items))
	for i, r := range page.Items {
		dtos[i] = *toLeaveRequestDTO(r)
	}
	return &LeaveRequestListResult{
		Requests:   dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// toLeaveRequestDTO converts a domain LeaveRequest to its DTO
func toLeaveRequestDTO(r *leave.LeaveRequest) *LeaveRequestDTO {
	return &LeaveRequestDTO{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Type:            string(r.Type),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.DaysRequested.String(),
		IsHalfDayStart:  r.IsHalfDayStart,
		IsHalfDayEnd:    r.IsHalfDayEnd,
		Reason:          r.Reason,
		AttachmentURL:   r.AttachmentURL,
		CoverEmployeeID: r.CoverEmployeeID,
		Status:          string(r.Status),
		ApproverID:      r.ApproverID,
		DecidedAt:       r.DecidedAt,
		DecisionNote:    r.DecisionNote,
		CreatedAt:       r.CreatedAt,
	}
}
