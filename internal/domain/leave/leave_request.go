package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveType represents the category of leave
type LeaveType string

const (
	LeaveTypeAnnual      LeaveType = "annual"
	LeaveTypeSick        LeaveType = "sick"
	LeaveTypePersonal    LeaveType = "personal"
	LeaveTypeMaternity   LeaveType = "maternity"
	LeaveTypePaternity   LeaveType = "paternity"
	LeaveTypeBereavement LeaveType = "bereavement"
	LeaveTypeUnpaid      LeaveType = "unpaid"
	LeaveTypeEmergency   LeaveType = "emergency"
)

// IsValid checks if the type is a valid LeaveType
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeMaternity,
		LeaveTypePaternity, LeaveTypeBereavement, LeaveTypeUnpaid, LeaveTypeEmergency:
		return true
	}
	return false
}

// String returns the string representation of LeaveType
func (t LeaveType) String() string {
	return string(t)
}

// IsPaid reports whether the leave type is paid
func (t LeaveType) IsPaid() bool {
	return t != LeaveTypeUnpaid
}

// RequestStatus represents the approval status of a leave request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusWithdrawn RequestStatus = "withdrawn"
)

// IsValid checks if the status is a valid RequestStatus
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected,
		RequestStatusCancelled, RequestStatusWithdrawn:
		return true
	}
	return false
}

// String returns the string representation of RequestStatus
func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the request is in a terminal state
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusRejected || s == RequestStatusCancelled || s == RequestStatusWithdrawn
}

// LeaveRequest is an employee's request for time off
// It is the aggregate root for leave operations
type LeaveRequest struct {
	shared.TenantAggregateRoot
	EmployeeID      uuid.UUID
	Type            LeaveType
	StartDate       time.Time
	EndDate         time.Time
	DaysRequested   decimal.Decimal // Supports half days
	IsHalfDayStart  bool
	IsHalfDayEnd    bool
	Reason          string
	AttachmentURL   string
	CoverEmployeeID *uuid.UUID // Colleague covering during absence
	Status          RequestStatus
	ApproverID      *uuid.UUID
	DecidedAt       *time.Time
	DecisionNote    string
}

// TableName returns the table name for GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// NewLeaveRequest submits a new leave request in pending status
func NewLeaveRequest(companyID, employeeID uuid.UUID, leaveType LeaveType, startDate, endDate time.Time, days decimal.Decimal, reason string) (*LeaveRequest, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if !leaveType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", "Invalid leave type")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATES", "Start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_DATES", "End date cannot be before start date")
	}
	if !days.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DAYS", "Days requested must be positive")
	}
	calendarSpan := decimal.NewFromInt(int64(endDate.Sub(startDate).Hours()/24) + 1)
	if days.GreaterThan(calendarSpan) {
		return nil, shared.NewDomainError("INVALID_DAYS", "Days requested exceed the date range")
	}

	request := &LeaveRequest{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		Type:                leaveType,
		StartDate:           truncateToDate(startDate),
		EndDate:             truncateToDate(endDate),
		DaysRequested:       days,
		Reason:              strings.TrimSpace(reason),
		Status:              RequestStatusPending,
	}

	request.AddDomainEvent(NewLeaveRequestedEvent(request))

	return request, nil
}

// SetHalfDays marks the boundary days as half days
func (r *LeaveRequest) SetHalfDays(halfStart, halfEnd bool) {
	r.IsHalfDayStart = halfStart
	r.IsHalfDayEnd = halfEnd
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetAttachment attaches supporting documentation (e.g. a medical certificate)
func (r *LeaveRequest) SetAttachment(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_URL", "Attachment URL cannot exceed 500 characters")
	}
	r.AttachmentURL = url
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// SetCover assigns a covering colleague
func (r *LeaveRequest) SetCover(coverEmployeeID *uuid.UUID) error {
	if coverEmployeeID != nil && *coverEmployeeID == r.EmployeeID {
		return shared.NewDomainError("INVALID_COVER", "Employee cannot cover their own leave")
	}
	r.CoverEmployeeID = coverEmployeeID
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Approve approves a pending request
func (r *LeaveRequest) Approve(approverID uuid.UUID, note string) error {
	if r.Status != RequestStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be approved")
	}

	now := time.Now()
	r.Status = RequestStatusApproved
	r.ApproverID = &approverID
	r.DecidedAt = &now
	r.DecisionNote = note
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewLeaveApprovedEvent(r))

	return nil
}

// Reject rejects a pending request with a reason
func (r *LeaveRequest) Reject(approverID uuid.UUID, reason string) error {
	if r.Status != RequestStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be rejected")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	r.Status = RequestStatusRejected
	r.ApproverID = &approverID
	r.DecidedAt = &now
	r.DecisionNote = strings.TrimSpace(reason)
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewLeaveRejectedEvent(r))

	return nil
}

// Withdraw lets the employee withdraw their own pending request
func (r *LeaveRequest) Withdraw() error {
	if r.Status != RequestStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending requests can be withdrawn")
	}

	r.Status = RequestStatusWithdrawn
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewLeaveCancelledEvent(r, RequestStatusWithdrawn))

	return nil
}

// Cancel cancels a pending or not-yet-started approved request
func (r *LeaveRequest) Cancel(asOf time.Time) error {
	switch r.Status {
	case RequestStatusPending:
	case RequestStatusApproved:
		if !asOf.Before(r.StartDate) {
			return shared.NewDomainError("INVALID_STATE", "Approved leave can only be cancelled before it starts")
		}
	default:
		return shared.NewDomainError("INVALID_STATE", "Request cannot be cancelled in current state")
	}

	wasApproved := r.Status == RequestStatusApproved
	r.Status = RequestStatusCancelled
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	event := NewLeaveCancelledEvent(r, RequestStatusCancelled)
	event.WasApproved = wasApproved
	r.AddDomainEvent(event)

	return nil
}

// Overlaps reports whether another date range overlaps this request
func (r *LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.EndDate.Before(truncateToDate(start)) && !truncateToDate(end).Before(r.StartDate)
}

// Year returns the calendar year the leave starts in
func (r *LeaveRequest) Year() int {
	return r.StartDate.Year()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
