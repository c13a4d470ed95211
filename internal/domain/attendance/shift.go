package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// TimeOfDay is a wall-clock time without a date, stored as minutes from midnight
type TimeOfDay int

// NewTimeOfDay creates a TimeOfDay from hour and minute
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay creates a TimeOfDay and panics on invalid input. For tests and constants.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour component
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes returns total minutes from midnight
func (t TimeOfDay) Minutes() int { return int(t) }

// String returns HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On anchors the time of day onto a calendar date in the given location
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// Shift defines the working hours template assigned to employees
// It is an aggregate root scoped to a company
type Shift struct {
	shared.TenantAggregateRoot
	Code                     string
	Name                     string
	StartTime                TimeOfDay
	EndTime                  TimeOfDay
	BreakMinutes             int
	LateGraceMinutes         int // Punch-in later than start+grace marks the day late
	EarlyGraceMinutes        int // Punch-out earlier than end-grace marks early departure
	OvertimeThresholdMinutes int
	OvertimeMultiplier       decimal.Decimal
	WorkingDays              []time.Weekday `gorm:"serializer:json"`
	IsNightShift             bool // End time falls on the next calendar day
	IsFlexible               bool // No late/early flags, hours-only tracking
	MinHoursPerDay           decimal.Decimal
	MaxHoursPerDay           decimal.Decimal
	IsActive                 bool
}

// TableName returns the table name for GORM
func (Shift) TableName() string {
	return "shifts"
}

// NewShift creates a new shift template
func NewShift(companyID uuid.UUID, code, name string, start, end TimeOfDay) (*Shift, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_SHIFT_CODE", "Shift code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_SHIFT_CODE", "Shift code cannot exceed 50 characters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_SHIFT_NAME", "Shift name cannot be empty")
	}

	shift := &Shift{
		TenantAggregateRoot:      shared.NewTenantAggregateRoot(companyID),
		Code:                     code,
		Name:                     strings.TrimSpace(name),
		StartTime:                start,
		EndTime:                  end,
		BreakMinutes:             60,
		LateGraceMinutes:         15,
		EarlyGraceMinutes:        15,
		OvertimeThresholdMinutes: 30,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		IsNightShift:   end <= start,
		MinHoursPerDay: decimal.NewFromInt(4),
		MaxHoursPerDay: decimal.NewFromInt(12),
		IsActive:       true,
	}

	shift.AddDomainEvent(NewShiftCreatedEvent(shift))

	return shift, nil
}

// Update updates the shift's name and timing
func (s *Shift) Update(name string, start, end TimeOfDay, breakMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_SHIFT_NAME", "Shift name cannot be empty")
	}
	if breakMinutes < 0 {
		return shared.NewDomainError("INVALID_BREAK", "Break minutes cannot be negative")
	}

	s.Name = strings.TrimSpace(name)
	s.StartTime = start
	s.EndTime = end
	s.BreakMinutes = breakMinutes
	s.IsNightShift = end <= start
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetGracePeriods sets the late and early-departure grace windows
func (s *Shift) SetGracePeriods(lateMinutes, earlyMinutes int) error {
	if lateMinutes < 0 || earlyMinutes < 0 {
		return shared.NewDomainError("INVALID_GRACE", "Grace minutes cannot be negative")
	}
	s.LateGraceMinutes = lateMinutes
	s.EarlyGraceMinutes = earlyMinutes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetOvertimeRule sets the overtime threshold and pay multiplier
func (s *Shift) SetOvertimeRule(thresholdMinutes int, multiplier decimal.Decimal) error {
	if thresholdMinutes < 0 {
		return shared.NewDomainError("INVALID_OVERTIME_THRESHOLD", "Overtime threshold cannot be negative")
	}
	if multiplier.LessThan(decimal.NewFromInt(1)) {
		return shared.NewDomainError("INVALID_OVERTIME_MULTIPLIER", "Overtime multiplier must be at least 1")
	}
	s.OvertimeThresholdMinutes = thresholdMinutes
	s.OvertimeMultiplier = multiplier
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetWorkingDays sets which weekdays the shift applies to
func (s *Shift) SetWorkingDays(days []time.Weekday) error {
	if len(days) == 0 {
		return shared.NewDomainError("INVALID_WORKING_DAYS", "At least one working day is required")
	}
	seen := make(map[time.Weekday]bool)
	unique := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return shared.NewDomainError("INVALID_WORKING_DAYS", "Invalid weekday")
		}
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	s.WorkingDays = unique
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetFlexible marks the shift as flexible (hours-only tracking)
func (s *Shift) SetFlexible(flexible bool) {
	s.IsFlexible = flexible
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deactivate retires the shift template
func (s *Shift) Deactivate() error {
	if !s.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Shift is already inactive")
	}
	s.IsActive = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Activate re-enables the shift template
func (s *Shift) Activate() error {
	if s.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Shift is already active")
	}
	s.IsActive = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsWorkingDay reports whether the weekday is a working day for this shift
func (s *Shift) IsWorkingDay(day time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduledMinutes returns the scheduled working minutes excluding breaks
func (s *Shift) ScheduledMinutes() int {
	span := s.EndTime.Minutes() - s.StartTime.Minutes()
	if s.IsNightShift {
		span += 24 * 60
	}
	span -= s.BreakMinutes
	if span < 0 {
		return 0
	}
	return span
}

// LateCutoff returns the punch-in time after which the day counts as late
func (s *Shift) LateCutoff(date time.Time, loc *time.Location) time.Time {
	return s.StartTime.On(date, loc).Add(time.Duration(s.LateGraceMinutes) * time.Minute)
}

// EarlyCutoff returns the punch-out time before which the day counts as early departure
func (s *Shift) EarlyCutoff(date time.Time, loc *time.Location) time.Time {
	end := s.EndTime.On(date, loc)
	if s.IsNightShift {
		end = end.AddDate(0, 0, 1)
	}
	return end.Add(-time.Duration(s.EarlyGraceMinutes) * time.Minute)
}
