package leave

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeLeaveRequest = "LeaveRequest"

// Event type constants
const (
	EventTypeLeaveRequested = "LeaveRequested"
	EventTypeLeaveApproved  = "LeaveApproved"
	EventTypeLeaveRejected  = "LeaveRejected"
	EventTypeLeaveCancelled = "LeaveCancelled"
)

// LeaveRequestedEvent is published when an employee submits a leave request
type LeaveRequestedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	LeaveType  LeaveType `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       string    `json:"days"`
}

// NewLeaveRequestedEvent creates a new LeaveRequestedEvent
func NewLeaveRequestedEvent(request *LeaveRequest) *LeaveRequestedEvent {
	return &LeaveRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaveRequested, AggregateTypeLeaveRequest, request.ID, request.TenantID),
		EmployeeID:      request.EmployeeID,
		LeaveType:       request.Type,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		Days:            request.DaysRequested.String(),
	}
}

// LeaveApprovedEvent is published when a leave request is approved
type LeaveApprovedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	LeaveType  LeaveType `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       string    `json:"days"`
}

// NewLeaveApprovedEvent creates a new LeaveApprovedEvent
func NewLeaveApprovedEvent(request *LeaveRequest) *LeaveApprovedEvent {
	return &LeaveApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaveApproved, AggregateTypeLeaveRequest, request.ID, request.TenantID),
		EmployeeID:      request.EmployeeID,
		LeaveType:       request.Type,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		Days:            request.DaysRequested.String(),
	}
}

// LeaveRejectedEvent is published when a leave request is rejected
type LeaveRejectedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	LeaveType  LeaveType `json:"leave_type"`
	Reason     string    `json:"reason"`
}

// NewLeaveRejectedEvent creates a new LeaveRejectedEvent
func NewLeaveRejectedEvent(request *LeaveRequest) *LeaveRejectedEvent {
	return &LeaveRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaveRejected, AggregateTypeLeaveRequest, request.ID, request.TenantID),
		EmployeeID:      request.EmployeeID,
		LeaveType:       request.Type,
		Reason:          request.DecisionNote,
	}
}

// LeaveCancelledEvent is published when a request is cancelled or withdrawn
type LeaveCancelledEvent struct {
	shared.BaseDomainEvent
	EmployeeID  uuid.UUID     `json:"employee_id"`
	LeaveType   LeaveType     `json:"leave_type"`
	FinalStatus RequestStatus `json:"final_status"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Days        string        `json:"days"`
	WasApproved bool          `json:"was_approved"`
}

// NewLeaveCancelledEvent creates a new LeaveCancelledEvent
func NewLeaveCancelledEvent(request *LeaveRequest, finalStatus RequestStatus) *LeaveCancelledEvent {
	return &LeaveCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaveCancelled, AggregateTypeLeaveRequest, request.ID, request.TenantID),
		EmployeeID:      request.EmployeeID,
		LeaveType:       request.Type,
		FinalStatus:     finalStatus,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		Days:            request.DaysRequested.String(),
	}
}
