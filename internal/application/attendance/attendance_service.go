package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
)

// AttendanceService handles attendance tracking operations
type AttendanceService struct {
	dayRepo        attendance.AttendanceDayRepository
	shiftRepo      attendance.ShiftRepository
	holidayRepo    attendance.HolidayRepository
	employeeRepo   workforce.EmployeeRepository
	companyRepo    identity.CompanyRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	dayRepo attendance.AttendanceDayRepository,
	shiftRepo attendance.ShiftRepository,
	holidayRepo attendance.HolidayRepository,
	employeeRepo workforce.EmployeeRepository,
	companyRepo identity.CompanyRepository,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		dayRepo:      dayRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AttendanceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// PunchInput contains input for recording a punch
type PunchInput struct {
	CompanyID  uuid.UUID
	EmployeeID uuid.UUID
	At         time.Time // Zero means now
	Latitude   float64
	Longitude  float64
	DeviceInfo string
	IPAddress  string
}

// AdjustDayInput contains input for a manual attendance correction
type AdjustDayInput struct {
	CompanyID  uuid.UUID
	DayID      uuid.UUID
	PunchIn    *time.Time
	PunchOut   *time.Time
	AdjustedBy uuid.UUID
	Reason     string
}

// AttendanceDayDTO represents a daily attendance record
type AttendanceDayDTO struct {
	ID            uuid.UUID  `json:"id"`
	EmployeeID    uuid.UUID  `json:"employee_id"`
	Date          string     `json:"date"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty"`
	PunchInTime   *time.Time `json:"punch_in_time,omitempty"`
	PunchOutTime  *time.Time `json:"punch_out_time,omitempty"`
	BreakMinutes  int        `json:"break_minutes"`
	TotalHours    string     `json:"total_hours"`
	OvertimeHours string     `json:"overtime_hours"`
	Status        string     `json:"status"`
	IsLate        bool       `json:"is_late"`
	LateMinutes   int        `json:"late_minutes,omitempty"`
	IsEarlyOut    bool       `json:"is_early_out"`
	EarlyMinutes  int        `json:"early_minutes,omitempty"`
	IsAdjusted    bool       `json:"is_adjusted"`
	NeedsApproval bool       `json:"needs_approval"`
	Notes         string     `json:"notes,omitempty"`
}

// PunchResultDTO is returned after a successful punch
type PunchResultDTO struct {
	Day                AttendanceDayDTO `json:"day"`
	DistanceFromOffice float64          `json:"distance_from_office"`
	LocationValidated  bool             `json:"location_validated"`
}

// AttendanceStatsDTO summarizes attendance for an employee over a range
type AttendanceStatsDTO struct {
	PresentDays        int64   `json:"present_days"`
	AbsentDays         int64   `json:"absent_days"`
	LateDays           int64   `json:"late_days"`
	HalfDays           int64   `json:"half_days"`
	LeaveDays          int64   `json:"leave_days"`
	HolidayDays        int64   `json:"holiday_days"`
	WeekendDays        int64   `json:"weekend_days"`
	WorkedDays         int64   `json:"worked_days"`
	TotalHours         float64 `json:"total_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	PunctualityPercent float64 `json:"punctuality_percent"`
}

// PunchIn records the start-of-day punch for an employee
func (s *AttendanceService) PunchIn(ctx context.Context, input PunchInput) (*PunchResultDTO, error) {
	return s.punch(ctx, input, true)
}

// PunchOut records the end-of-day punch for an employee
func (s *AttendanceService) PunchOut(ctx context.Context, input PunchInput) (*PunchResultDTO, error) {
	return s.punch(ctx, input, false)
}

func (s *AttendanceService) punch(ctx context.Context, input PunchInput, isPunchIn bool) (*PunchResultDTO, error) {
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

	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find company")
	}

	loc, err := time.LoadLocation(company.Settings.Timezone)
	if err != nil {
		loc = time.UTC
	}

	at := input.At
	if at.IsZero() {
		at = time.Now()
	}
	at = at.In(loc)

	punchCtx := attendance.PunchContext{
		DeviceInfo: input.DeviceInfo,
		IPAddress:  input.IPAddress,
	}
	if input.Latitude != 0 || input.Longitude != 0 {
		point, err := valueobject.NewGeoPoint(input.Latitude, input.Longitude)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_LOCATION", err.Error())
		}
		punchCtx.Location = point

		distance, err := company.ValidatePunchLocation(point)
		if err != nil {
			s.logger.Warn("Punch outside allowed radius",
				zap.String("employee_id", input.EmployeeID.String()),
				zap.Float64("distance", distance))
			return nil, err
		}
		punchCtx.IsValidLocation = true
		punchCtx.DistanceFromOffice = distance
	} else if company.Office.IsConfigured() {
		return nil, shared.NewDomainError("LOCATION_REQUIRED", "Punch location is required")
	}

	var shift *attendance.Shift
	if employee.ShiftID != nil {
		shift, err = s.shiftRepo.FindByID(ctx, input.CompanyID, *employee.ShiftID)
		if err != nil && err != shared.ErrNotFound {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find shift")
		}
	}

	day, err := s.dayRepo.FindByEmployeeAndDate(ctx, input.CompanyID, input.EmployeeID, at)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
		}
		day = nil
	}

	// A night-shift punch-out after midnight closes the previous day's record
	if !isPunchIn && shift != nil && shift.IsNightShift && (day == nil || day.PunchInTime == nil) {
		prev, prevErr := s.dayRepo.FindByEmployeeAndDate(ctx, input.CompanyID, input.EmployeeID, at.AddDate(0, 0, -1))
		if prevErr != nil && prevErr != shared.ErrNotFound {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
		}
		if prevErr == nil && prev.PunchInTime != nil && prev.PunchOutTime == nil {
			day = prev
		}
	}

	if day == nil {
		day, err = attendance.NewAttendanceDay(input.CompanyID, input.EmployeeID, at)
		if err != nil {
			return nil, err
		}
		day.ShiftID = employee.ShiftID
	}

	if isPunchIn {
		err = day.RecordPunchIn(at, punchCtx, shift, loc)
	} else {
		err = day.RecordPunchOut(at, punchCtx, shift, loc)
	}
	if err != nil {
		return nil, err
	}

	if err := s.dayRepo.Save(ctx, day); err != nil {
		s.logger.Error("Failed to save attendance record", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save attendance record")
	}

	s.publishDomainEvents(ctx, day)

	return &PunchResultDTO{
		Day:                *toAttendanceDayDTO(day),
		DistanceFromOffice: punchCtx.DistanceFromOffice,
		LocationValidated:  punchCtx.IsValidLocation,
	}, nil
}

// GetDay retrieves an employee's attendance record for a date
func (s *AttendanceService) GetDay(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) (*AttendanceDayDTO, error) {
	day, err := s.dayRepo.FindByEmployeeAndDate(ctx, companyID, employeeID, date)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("RECORD_NOT_FOUND", "No attendance record for this date")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
	}
	return toAttendanceDayDTO(day), nil
}

// ListEmployeeRange retrieves an employee's records within a date range
func (s *AttendanceService) ListEmployeeRange(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) ([]AttendanceDayDTO, error) {
	days, err := s.dayRepo.FindByEmployeeRange(ctx, companyID, employeeID, from, to, shared.DefaultFilter())
	if err != nil {
		s.logger.Error("Failed to list attendance records", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list attendance records")
	}

	dtos := make([]AttendanceDayDTO, len(days))
	for i, d := range days {
		dtos[i] = *toAttendanceDayDTO(&d)
	}
	return dtos, nil
}

// ListByDate retrieves all records for a date, optionally limited to a department
func (s *AttendanceService) ListByDate(ctx context.Context, companyID uuid.UUID, date time.Time, departmentID *uuid.UUID) ([]AttendanceDayDTO, error) {
	days, err := s.dayRepo.FindByDate(ctx, companyID, date, departmentID, shared.DefaultFilter())
	if err != nil {
		s.logger.Error("Failed to list attendance records", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list attendance records")
	}

	dtos := make([]AttendanceDayDTO, len(days))
	for i, d := range days {
		dtos[i] = *toAttendanceDayDTO(&d)
	}
	return dtos, nil
}

// Adjust manually corrects punch times on a record
func (s *AttendanceService) Adjust(ctx context.Context, input AdjustDayInput) (*AttendanceDayDTO, error) {
	day, err := s.findDay(ctx, input.CompanyID, input.DayID)
	if err != nil {
		return nil, err
	}

	var shift *attendance.Shift
	if day.ShiftID != nil {
		shift, err = s.shiftRepo.FindByID(ctx, input.CompanyID, *day.ShiftID)
		if err != nil && err != shared.ErrNotFound {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find shift")
		}
	}

	if err := day.Adjust(input.PunchIn, input.PunchOut, input.AdjustedBy, input.Reason, shift); err != nil {
		return nil, err
	}

	if err := s.dayRepo.Save(ctx, day); err != nil {
		s.logger.Error("Failed to save adjustment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save adjustment")
	}

	s.publishDomainEvents(ctx, day)

	s.logger.Info("Attendance adjusted",
		zap.String("day_id", input.DayID.String()),
		zap.String("adjusted_by", input.AdjustedBy.String()))

	return toAttendanceDayDTO(day), nil
}

// ApproveAdjustment approves a pending manual correction
func (s *AttendanceService) ApproveAdjustment(ctx context.Context, companyID, dayID, approverID uuid.UUID) (*AttendanceDayDTO, error) {
	day, err := s.findDay(ctx, companyID, dayID)
	if err != nil {
		return nil, err
	}

	if err := day.ApproveAdjustment(approverID); err != nil {
		return nil, err
	}

	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save approval")
	}

	return toAttendanceDayDTO(day), nil
}

// ListPendingApprovals retrieves adjusted records awaiting approval
func (s *AttendanceService) ListPendingApprovals(ctx context.Context, companyID uuid.UUID) ([]AttendanceDayDTO, error) {
	days, err := s.dayRepo.FindPendingApproval(ctx, companyID, shared.DefaultFilter())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pending approvals")
	}

	dtos := make([]AttendanceDayDTO, len(days))
	for i, d := range days {
		dtos[i] = *toAttendanceDayDTO(&d)
	}
	return dtos, nil
}

// EmployeeStats aggregates an employee's attendance over a date range
func (s *AttendanceService) EmployeeStats(ctx context.Context, companyID, employeeID uuid.UUID, from, to time.Time) (*AttendanceStatsDTO, error) {
	stats, err := s.dayRepo.Statistics(ctx, companyID, employeeID, from, to)
	if err != nil {
		s.logger.Error("Failed to compute attendance statistics", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute attendance statistics")
	}
	return toStatsDTO(stats), nil
}

// CompanyStats aggregates attendance across the company for one date
func (s *AttendanceService) CompanyStats(ctx context.Context, companyID uuid.UUID, date time.Time) (*AttendanceStatsDTO, error) {
	stats, err := s.dayRepo.StatisticsForCompany(ctx, companyID, date)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute attendance statistics")
	}
	return toStatsDTO(stats), nil
}

// FinalizeDay closes out a past date: every working employee without a record
// gets one marked absent, weekend, holiday, or on leave. Run by the scheduler
// after the day has ended in the company timezone.
func (s *AttendanceService) FinalizeDay(ctx context.Context, companyID uuid.UUID, date time.Time) (int, error) {
	employees, err := s.employeeRepo.FindActive(ctx, companyID)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to list active employees")
	}

	recorded, err := s.dayRepo.EmployeeIDsWithRecord(ctx, companyID, date)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to list recorded employees")
	}
	hasRecord := make(map[uuid.UUID]bool, len(recorded))
	for _, id := range recorded {
		hasRecord[id] = true
	}

	holidays, err := s.holidayRepo.FindByDate(ctx, companyID, date)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to load holidays")
	}
	isHoliday := len(holidays) > 0

	shifts := map[uuid.UUID]*attendance.Shift{}

	created := 0
	for i := range employees {
		employee := &employees[i]
		if hasRecord[employee.ID] {
			continue
		}
		if employee.Status == workforce.EmployeeStatusOnLeave {
			continue
		}

		day, err := attendance.NewAttendanceDay(companyID, employee.ID, date)
		if err != nil {
			continue
		}
		day.ShiftID = employee.ShiftID

		switch {
		case isHoliday:
			day.MarkHoliday()
		case s.isNonWorkingDay(ctx, companyID, employee, date, shifts):
			day.MarkWeekend()
		default:
			if err := day.MarkAbsent(); err != nil {
				continue
			}
		}

		if err := s.dayRepo.Save(ctx, day); err != nil {
			s.logger.Error("Failed to finalize attendance day",
				zap.String("employee_id", employee.ID.String()), zap.Error(err))
			continue
		}
		created++
	}

	s.logger.Info("Attendance day finalized",
		zap.String("company_id", companyID.String()),
		zap.Time("date", date),
		zap.Int("records_created", created))

	return created, nil
}

// isNonWorkingDay checks the employee's shift calendar, falling back to a
// Monday-Friday week when no shift is assigned
func (s *AttendanceService) isNonWorkingDay(ctx context.Context, companyID uuid.UUID, employee *workforce.Employee, date time.Time, cache map[uuid.UUID]*attendance.Shift) bool {
	if employee.ShiftID == nil {
		return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	}

	shift, ok := cache[*employee.ShiftID]
	if !ok {
		found, err := s.shiftRepo.FindByID(ctx, companyID, *employee.ShiftID)
		if err != nil {
			return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		}
		shift = found
		cache[*employee.ShiftID] = shift
	}
	return !shift.IsWorkingDay(date.Weekday())
}

// MarkOnLeave marks an employee's day record as approved leave,
// creating the record when absent
func (s *AttendanceService) MarkOnLeave(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) error {
	day, err := s.dayRepo.FindByEmployeeAndDate(ctx, companyID, employeeID, date)
	if err != nil {
		if err != shared.ErrNotFound {
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
		}
		day, err = attendance.NewAttendanceDay(companyID, employeeID, date)
		if err != nil {
			return err
		}
	}

	if err := day.MarkOnLeave(); err != nil {
		return err
	}

	if err := s.dayRepo.Save(ctx, day); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save attendance record")
	}
	return nil
}

// ClearOnLeave reverts a leave marking after the request was cancelled.
// Days without a record or not marked as on leave are left alone.
func (s *AttendanceService) ClearOnLeave(ctx context.Context, companyID, employeeID uuid.UUID, date time.Time) error {
	day, err := s.dayRepo.FindByEmployeeAndDate(ctx, companyID, employeeID, date)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil
		}
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
	}
	if day.Status != attendance.DayStatusOnLeave {
		return nil
	}

	if err := day.ClearOnLeave(); err != nil {
		return err
	}

	if err := s.dayRepo.Save(ctx, day); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save attendance record")
	}
	return nil
}

func (s *AttendanceService) findDay(ctx context.Context, companyID, id uuid.UUID) (*attendance.AttendanceDay, error) {
	day, err := s.dayRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("RECORD_NOT_FOUND", "Attendance record not found")
		}
		s.logger.Error("Failed to find attendance record", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find attendance record")
	}
	return day, nil
}

// publishDomainEvents publishes pending domain events from the day aggregate
func (s *AttendanceService) publishDomainEvents(ctx context.Context, day *attendance.AttendanceDay) {
	if s.eventPublisher == nil {
		return
	}
	events := day.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	day.ClearDomainEvents()
}

// toAttendanceDayDTO converts a domain AttendanceDay to its DTO
func toAttendanceDayDTO(d *attendance.AttendanceDay) *AttendanceDayDTO {
	return &AttendanceDayDTO{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		Date:          d.Date.Format("2006-01-02"),
		ShiftID:       d.ShiftID,
		PunchInTime:   d.PunchInTime,
		PunchOutTime:  d.PunchOutTime,
		BreakMinutes:  d.BreakMinutes,
		TotalHours:    d.TotalHours.String(),
		OvertimeHours: d.OvertimeHours.String(),
		Status:        string(d.Status),
		IsLate:        d.IsLate,
		LateMinutes:   d.LateMinutes,
		IsEarlyOut:    d.IsEarlyOut,
		EarlyMinutes:  d.EarlyMinutes,
		IsAdjusted:    d.IsAdjusted,
		NeedsApproval: d.NeedsApproval,
		Notes:         d.Notes,
	}
}

func toStatsDTO(stats *attendance.DayStatistics) *AttendanceStatsDTO {
	return &AttendanceStatsDTO{
		PresentDays:        stats.PresentDays,
		AbsentDays:         stats.AbsentDays,
		LateDays:           stats.LateDays,
		HalfDays:           stats.HalfDays,
		LeaveDays:          stats.LeaveDays,
		HolidayDays:        stats.HolidayDays,
		WeekendDays:        stats.WeekendDays,
		WorkedDays:         stats.WorkedDays(),
		TotalHours:         stats.TotalHours,
		OvertimeHours:      stats.OvertimeHours,
		PunctualityPercent: stats.PunctualityPercent(),
	}
}
