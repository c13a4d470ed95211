package attendance

import (
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeAttendanceDay = "AttendanceDay"
	AggregateTypeShift         = "Shift"
)

// Event type constants
const (
	EventTypePunchRecorded      = "PunchRecorded"
	EventTypeAttendanceAdjusted = "AttendanceAdjusted"
	EventTypeShiftCreated       = "ShiftCreated"
)

// PunchRecordedEvent is published when an employee punches in or out
type PunchRecordedEvent struct {
	shared.BaseDomainEvent
	EmployeeID         uuid.UUID `json:"employee_id"`
	Date               string    `json:"date"`
	PunchType          PunchType `json:"punch_type"`
	PunchTime          time.Time `json:"punch_time"`
	IsValidLocation    bool      `json:"is_valid_location"`
	DistanceFromOffice float64   `json:"distance_from_office"`
}

// NewPunchRecordedEvent creates a new PunchRecordedEvent
func NewPunchRecordedEvent(day *AttendanceDay, punchType PunchType, at time.Time, punchCtx PunchContext) *PunchRecordedEvent {
	return &PunchRecordedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypePunchRecorded, AggregateTypeAttendanceDay, day.ID, day.TenantID),
		EmployeeID:         day.EmployeeID,
		Date:               day.Date.Format("2006-01-02"),
		PunchType:          punchType,
		PunchTime:          at,
		IsValidLocation:    punchCtx.IsValidLocation,
		DistanceFromOffice: punchCtx.DistanceFromOffice,
	}
}

// AttendanceAdjustedEvent is published when a day is manually adjusted
type AttendanceAdjustedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       string    `json:"date"`
	AdjustedBy uuid.UUID `json:"adjusted_by"`
	Reason     string    `json:"reason"`
}

// NewAttendanceAdjustedEvent creates a new AttendanceAdjustedEvent
func NewAttendanceAdjustedEvent(day *AttendanceDay, adjustedBy uuid.UUID, reason string) *AttendanceAdjustedEvent {
	return &AttendanceAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAttendanceAdjusted, AggregateTypeAttendanceDay, day.ID, day.TenantID),
		EmployeeID:      day.EmployeeID,
		Date:            day.Date.Format("2006-01-02"),
		AdjustedBy:      adjustedBy,
		Reason:          reason,
	}
}

// ShiftCreatedEvent is published when a shift template is created
type ShiftCreatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewShiftCreatedEvent creates a new ShiftCreatedEvent
func NewShiftCreatedEvent(shift *Shift) *ShiftCreatedEvent {
	return &ShiftCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShiftCreated, AggregateTypeShift, shift.ID, shift.TenantID),
		Code:            shift.Code,
		Name:            shift.Name,
	}
}
