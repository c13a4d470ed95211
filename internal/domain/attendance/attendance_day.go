package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// DayStatus represents the attendance status of an employee for one day
type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusLate    DayStatus = "late"
	DayStatusHalfDay DayStatus = "half_day"
	DayStatusOnLeave DayStatus = "on_leave"
	DayStatusHoliday DayStatus = "holiday"
	DayStatusWeekend DayStatus = "weekend"
)

// IsValid checks if the status is a valid DayStatus
func (s DayStatus) IsValid() bool {
	switch s {
	case DayStatusPresent, DayStatusAbsent, DayStatusLate, DayStatusHalfDay,
		DayStatusOnLeave, DayStatusHoliday, DayStatusWeekend:
		return true
	}
	return false
}

// String returns the string representation of DayStatus
func (s DayStatus) String() string {
	return string(s)
}

// CountsAsPresent returns true if the employee attended work that day
func (s DayStatus) CountsAsPresent() bool {
	return s == DayStatusPresent || s == DayStatusLate || s == DayStatusHalfDay
}

// PunchType distinguishes the punch events within a day
type PunchType string

const (
	PunchTypeIn         PunchType = "punch_in"
	PunchTypeOut        PunchType = "punch_out"
	PunchTypeBreakStart PunchType = "break_start"
	PunchTypeBreakEnd   PunchType = "break_end"
)

// IsValid checks if the punch type is valid
func (p PunchType) IsValid() bool {
	switch p {
	case PunchTypeIn, PunchTypeOut, PunchTypeBreakStart, PunchTypeBreakEnd:
		return true
	}
	return false
}

// Punch is an immutable audit record of a single punch event
type Punch struct {
	shared.BaseEntity
	AttendanceDayID    uuid.UUID
	Type               PunchType
	Time               time.Time
	Location           valueobject.GeoPoint
	DeviceInfo         string
	IPAddress          string
	IsValidLocation    bool
	DistanceFromOffice float64 // Meters
	Notes              string
}

// TableName returns the table name for GORM
func (Punch) TableName() string {
	return "attendance_punches"
}

// AttendanceDay is the daily attendance record for one employee.
// There is at most one record per employee per date.
type AttendanceDay struct {
	shared.TenantAggregateRoot
	EmployeeID    uuid.UUID
	Date          time.Time // Date only, midnight in company timezone
	ShiftID       *uuid.UUID
	PunchInTime   *time.Time
	PunchOutTime  *time.Time
	BreakMinutes  int
	TotalHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	Status        DayStatus
	IsLate        bool
	LateMinutes   int
	IsEarlyOut    bool
	EarlyMinutes  int
	Punches       []Punch
	IsAdjusted    bool
	AdjustedBy    *uuid.UUID
	AdjustReason  string
	NeedsApproval bool
	ApprovedBy    *uuid.UUID
	ApprovedAt    *time.Time
	Notes         string
}

// TableName returns the table name for GORM
func (AttendanceDay) TableName() string {
	return "attendance_days"
}

// NewAttendanceDay opens a day record for an employee
func NewAttendanceDay(companyID, employeeID uuid.UUID, date time.Time) (*AttendanceDay, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Date is required")
	}

	return &AttendanceDay{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		Date:                truncateToDate(date),
		Status:              DayStatusAbsent,
		TotalHours:          decimal.Zero,
		OvertimeHours:       decimal.Zero,
		Punches:             make([]Punch, 0),
	}, nil
}

// PunchContext carries the device metadata captured with a punch
type PunchContext struct {
	Location           valueobject.GeoPoint
	DeviceInfo         string
	IPAddress          string
	IsValidLocation    bool
	DistanceFromOffice float64
}

// RecordPunchIn records the punch-in for the day
func (a *AttendanceDay) RecordPunchIn(at time.Time, punchCtx PunchContext, shift *Shift, loc *time.Location) error {
	if a.PunchInTime != nil {
		return shared.NewDomainError("ALREADY_PUNCHED_IN", "Already punched in for this day")
	}
	if !sameDate(at.In(loc), a.Date) {
		return shared.NewDomainError("INVALID_PUNCH_TIME", "Punch time does not fall on this attendance day")
	}

	a.PunchInTime = &at
	a.Status = DayStatusPresent

	if shift != nil && !shift.IsFlexible {
		cutoff := shift.LateCutoff(a.Date, loc)
		if at.After(cutoff) {
			a.IsLate = true
			a.LateMinutes = int(at.Sub(shift.StartTime.On(a.Date, loc)).Minutes())
			a.Status = DayStatusLate
		}
	}

	a.appendPunch(PunchTypeIn, at, punchCtx)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewPunchRecordedEvent(a, PunchTypeIn, at, punchCtx))

	return nil
}

// RecordPunchOut records the punch-out and computes worked hours
func (a *AttendanceDay) RecordPunchOut(at time.Time, punchCtx PunchContext, shift *Shift, loc *time.Location) error {
	if a.PunchInTime == nil {
		return shared.NewDomainError("NOT_PUNCHED_IN", "Cannot punch out without punching in")
	}
	if a.PunchOutTime != nil {
		return shared.NewDomainError("ALREADY_PUNCHED_OUT", "Already punched out for this day")
	}
	if !at.After(*a.PunchInTime) {
		return shared.NewDomainError("INVALID_PUNCH_TIME", "Punch-out must be after punch-in")
	}

	a.PunchOutTime = &at

	if shift != nil && !shift.IsFlexible {
		cutoff := shift.EarlyCutoff(a.Date, loc)
		if at.Before(cutoff) {
			a.IsEarlyOut = true
			end := shift.EndTime.On(a.Date, loc)
			if shift.IsNightShift {
				end = end.AddDate(0, 0, 1)
			}
			a.EarlyMinutes = int(end.Sub(at).Minutes())
		}
	}

	a.appendPunch(PunchTypeOut, at, punchCtx)
	a.recomputeHours(shift)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewPunchRecordedEvent(a, PunchTypeOut, at, punchCtx))

	return nil
}

// recomputeHours derives total and overtime hours from punch times
func (a *AttendanceDay) recomputeHours(shift *Shift) {
	if a.PunchInTime == nil || a.PunchOutTime == nil {
		a.TotalHours = decimal.Zero
		a.OvertimeHours = decimal.Zero
		return
	}

	breakMinutes := a.BreakMinutes
	if breakMinutes == 0 && shift != nil {
		breakMinutes = shift.BreakMinutes
		a.BreakMinutes = breakMinutes
	}

	workedMinutes := a.PunchOutTime.Sub(*a.PunchInTime).Minutes() - float64(breakMinutes)
	if workedMinutes < 0 {
		workedMinutes = 0
	}
	a.TotalHours = decimal.NewFromFloat(workedMinutes / 60).Round(2)

	a.OvertimeHours = decimal.Zero
	if shift != nil {
		scheduled := float64(shift.ScheduledMinutes())
		overtime := workedMinutes - scheduled
		if overtime >= float64(shift.OvertimeThresholdMinutes) {
			a.OvertimeHours = decimal.NewFromFloat(overtime / 60).Round(2)
		}
		if scheduled > 0 && workedMinutes > 0 && workedMinutes < scheduled/2 {
			a.Status = DayStatusHalfDay
		}
	}
}

// appendPunch appends an audit punch record
func (a *AttendanceDay) appendPunch(punchType PunchType, at time.Time, punchCtx PunchContext) {
	a.Punches = append(a.Punches, Punch{
		BaseEntity:         shared.NewBaseEntity(),
		Type:               punchType,
		Time:               at,
		Location:           punchCtx.Location,
		DeviceInfo:         punchCtx.DeviceInfo,
		IPAddress:          punchCtx.IPAddress,
		IsValidLocation:    punchCtx.IsValidLocation,
		DistanceFromOffice: punchCtx.DistanceFromOffice,
	})
}

// Adjust manually overrides punch times. The adjustment needs HR approval.
func (a *AttendanceDay) Adjust(punchIn, punchOut *time.Time, adjustedBy uuid.UUID, reason string, shift *Shift) error {
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_ADJUST_REASON", "Adjustment reason is required")
	}
	if punchIn != nil && punchOut != nil && !punchOut.After(*punchIn) {
		return shared.NewDomainError("INVALID_PUNCH_TIME", "Punch-out must be after punch-in")
	}

	if punchIn != nil {
		a.PunchInTime = punchIn
		if a.Status == DayStatusAbsent {
			a.Status = DayStatusPresent
		}
	}
	if punchOut != nil {
		a.PunchOutTime = punchOut
	}

	a.IsAdjusted = true
	a.AdjustedBy = &adjustedBy
	a.AdjustReason = strings.TrimSpace(reason)
	a.NeedsApproval = true
	a.ApprovedBy = nil
	a.ApprovedAt = nil
	a.recomputeHours(shift)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAttendanceAdjustedEvent(a, adjustedBy, reason))

	return nil
}

// ApproveAdjustment approves a pending manual adjustment
func (a *AttendanceDay) ApproveAdjustment(approverID uuid.UUID) error {
	if !a.NeedsApproval {
		return shared.NewDomainError("INVALID_STATE", "No pending adjustment to approve")
	}
	if a.AdjustedBy != nil && *a.AdjustedBy == approverID {
		return shared.NewDomainError("INVALID_APPROVER", "Adjuster cannot approve their own adjustment")
	}

	now := time.Now()
	a.NeedsApproval = false
	a.ApprovedBy = &approverID
	a.ApprovedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	return nil
}

// MarkOnLeave marks the day as an approved leave day
func (a *AttendanceDay) MarkOnLeave() error {
	if a.PunchInTime != nil {
		return shared.NewDomainError("INVALID_STATE", "Cannot mark a punched day as on leave")
	}
	a.Status = DayStatusOnLeave
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// ClearOnLeave reverts a leave marking after the request was cancelled
func (a *AttendanceDay) ClearOnLeave() error {
	if a.Status != DayStatusOnLeave {
		return shared.NewDomainError("INVALID_STATE", "Day is not marked as on leave")
	}
	a.Status = DayStatusAbsent
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// MarkHoliday marks the day as a company holiday
func (a *AttendanceDay) MarkHoliday() {
	if a.PunchInTime == nil {
		a.Status = DayStatusHoliday
		a.UpdatedAt = time.Now()
		a.IncrementVersion()
	}
}

// MarkWeekend marks the day as a non-working weekend day
func (a *AttendanceDay) MarkWeekend() {
	if a.PunchInTime == nil {
		a.Status = DayStatusWeekend
		a.UpdatedAt = time.Now()
		a.IncrementVersion()
	}
}

// MarkAbsent finalizes the day as absent
func (a *AttendanceDay) MarkAbsent() error {
	if a.PunchInTime != nil {
		return shared.NewDomainError("INVALID_STATE", "Cannot mark a punched day as absent")
	}
	a.Status = DayStatusAbsent
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// IsComplete reports whether both punches are recorded
func (a *AttendanceDay) IsComplete() bool {
	return a.PunchInTime != nil && a.PunchOutTime != nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
