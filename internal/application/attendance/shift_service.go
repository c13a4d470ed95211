package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/shared"
)

// ShiftService handles shift template and holiday calendar operations
type ShiftService struct {
	shiftRepo   attendance.ShiftRepository
	holidayRepo attendance.HolidayRepository
	logger      *zap.Logger
}

// NewShiftService creates a new shift service
func NewShiftService(
	shiftRepo attendance.ShiftRepository,
	holidayRepo attendance.HolidayRepository,
	logger *zap.Logger,
) *ShiftService {
	return &ShiftService{
		shiftRepo:   shiftRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// CreateShiftInput contains input for creating a shift template
type CreateShiftInput struct {
	CompanyID         uuid.UUID
	Code              string
	Name              string
	StartHour         int
	StartMinute       int
	EndHour           int
	EndMinute         int
	BreakMinutes      int
	LateGraceMinutes  int
	EarlyGraceMinutes int
	WorkingDays       []int // time.Weekday values
	Flexible          bool
}

// UpdateShiftInput contains input for updating a shift template
type UpdateShiftInput struct {
	CompanyID    uuid.UUID
	ID           uuid.UUID
	Name         string
	StartHour    int
	StartMinute  int
	EndHour      int
	EndMinute    int
	BreakMinutes int
}

// ShiftDTO represents shift data transfer object
type ShiftDTO struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	BreakMinutes      int       `json:"break_minutes"`
	LateGraceMinutes  int       `json:"late_grace_minutes"`
	EarlyGraceMinutes int       `json:"early_grace_minutes"`
	OvertimeThreshold int       `json:"overtime_threshold_minutes"`
	OvertimeRate      string    `json:"overtime_multiplier"`
	WorkingDays       []int     `json:"working_days"`
	IsNightShift      bool      `json:"is_night_shift"`
	IsFlexible        bool      `json:"is_flexible"`
	IsActive          bool      `json:"is_active"`
}

// HolidayInput contains input for creating or updating a holiday
type HolidayInput struct {
	CompanyID   uuid.UUID
	Name        string
	Date        time.Time
	Recurring   bool
	Optional    bool
	Description string
}

// HolidayDTO represents holiday data transfer object
type HolidayDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	IsRecurring bool      `json:"is_recurring"`
	IsOptional  bool      `json:"is_optional"`
	Description string    `json:"description,omitempty"`
}

// CreateShift creates a new shift template
func (s *ShiftService) CreateShift(ctx context.Context, input CreateShiftInput) (*ShiftDTO, error) {
	exists, err := s.shiftRepo.ExistsByCode(ctx, input.CompanyID, input.Code)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check code availability")
	}
	if exists {
		return nil, shared.NewDomainError("CODE_EXISTS", "Shift code already exists")
	}

	start, err := attendance.NewTimeOfDay(input.StartHour, input.StartMinute)
	if err != nil {
		return nil, err
	}
	end, err := attendance.NewTimeOfDay(input.EndHour, input.EndMinute)
	if err != nil {
		return nil, err
	}

	shift, err := attendance.NewShift(input.CompanyID, input.Code, input.Name, start, end)
	if err != nil {
		return nil, err
	}

	if input.BreakMinutes > 0 {
		if err := shift.Update(input.Name, start, end, input.BreakMinutes); err != nil {
			return nil, err
		}
	}
	if input.LateGraceMinutes > 0 || input.EarlyGraceMinutes > 0 {
		if err := shift.SetGracePeriods(input.LateGraceMinutes, input.EarlyGraceMinutes); err != nil {
			return nil, err
		}
	}
	if len(input.WorkingDays) > 0 {
		days := make([]time.Weekday, len(input.WorkingDays))
		for i, d := range input.WorkingDays {
			days[i] = time.Weekday(d)
		}
		if err := shift.SetWorkingDays(days); err != nil {
			return nil, err
		}
	}
	shift.SetFlexible(input.Flexible)

	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		s.logger.Error("Failed to create shift", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create shift")
	}

	s.logger.Info("Shift created",
		zap.String("shift_id", shift.ID.String()),
		zap.String("code", shift.Code))

	return toShiftDTO(shift), nil
}

// UpdateShift updates a shift's timing
func (s *ShiftService) UpdateShift(ctx context.Context, input UpdateShiftInput) (*ShiftDTO, error) {
	shift, err := s.findShift(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	start, err := attendance.NewTimeOfDay(input.StartHour, input.StartMinute)
	if err != nil {
		return nil, err
	}
	end, err := attendance.NewTimeOfDay(input.EndHour, input.EndMinute)
	if err != nil {
		return nil, err
	}

	if err := shift.Update(input.Name, start, end, input.BreakMinutes); err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update shift")
	}

	return toShiftDTO(shift), nil
}

// SetOvertimeRule configures overtime accrual on a shift
func (s *ShiftService) SetOvertimeRule(ctx context.Context, companyID, id uuid.UUID, thresholdMinutes int, multiplier decimal.Decimal) (*ShiftDTO, error) {
	shift, err := s.findShift(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if err := shift.SetOvertimeRule(thresholdMinutes, multiplier); err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update shift")
	}

	return toShiftDTO(shift), nil
}

// GetShift retrieves a shift by ID
func (s *ShiftService) GetShift(ctx context.Context, companyID, id uuid.UUID) (*ShiftDTO, error) {
	shift, err := s.findShift(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toShiftDTO(shift), nil
}

// ListShifts retrieves all shifts of a company
func (s *ShiftService) ListShifts(ctx context.Context, companyID uuid.UUID) ([]ShiftDTO, error) {
	shifts, err := s.shiftRepo.FindAll(ctx, companyID, shared.DefaultFilter())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list shifts")
	}

	dtos := make([]ShiftDTO, len(shifts))
	for i, sh := range shifts {
		dtos[i] = *toShiftDTO(&sh)
	}
	return dtos, nil
}

// DeactivateShift deactivates a shift template
func (s *ShiftService) DeactivateShift(ctx context.Context, companyID, id uuid.UUID) (*ShiftDTO, error) {
	shift, err := s.findShift(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := shift.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate shift")
	}
	return toShiftDTO(shift), nil
}

// CreateHoliday adds a holiday to the company calendar
func (s *ShiftService) CreateHoliday(ctx context.Context, input HolidayInput) (*HolidayDTO, error) {
	holiday, err := attendance.NewHoliday(input.CompanyID, input.Name, input.Date)
	if err != nil {
		return nil, err
	}
	if input.Recurring || input.Optional || input.Description != "" {
		if err := holiday.Update(input.Name, input.Date, input.Recurring, input.Optional, input.Description); err != nil {
			return nil, err
		}
	}

	if err := s.holidayRepo.Save(ctx, holiday); err != nil {
		s.logger.Error("Failed to create holiday", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create holiday")
	}

	return toHolidayDTO(holiday), nil
}

// ListHolidays retrieves holidays for a year
func (s *ShiftService) ListHolidays(ctx context.Context, companyID uuid.UUID, year int) ([]HolidayDTO, error) {
	holidays, err := s.holidayRepo.FindByYear(ctx, companyID, year)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list holidays")
	}

	dtos := make([]HolidayDTO, len(holidays))
	for i, h := range holidays {
		dtos[i] = *toHolidayDTO(&h)
	}
	return dtos, nil
}

// DeleteHoliday removes a holiday from the calendar
func (s *ShiftService) DeleteHoliday(ctx context.Context, companyID, id uuid.UUID) error {
	if err := s.holidayRepo.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("Failed to delete holiday", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete holiday")
	}
	return nil
}

func (s *ShiftService) findShift(ctx context.Context, companyID, id uuid.UUID) (*attendance.Shift, error) {
	shift, err := s.shiftRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("SHIFT_NOT_FOUND", "Shift not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find shift")
	}
	return shift, nil
}

// toShiftDTO converts a domain Shift to its DTO
func toShiftDTO(sh *attendance.Shift) *ShiftDTO {
	days := make([]int, len(sh.WorkingDays))
	for i, d := range sh.WorkingDays {
		days[i] = int(d)
	}
	return &ShiftDTO{
		ID:                sh.ID,
		Code:              sh.Code,
		Name:              sh.Name,
		StartTime:         sh.StartTime.String(),
		EndTime:           sh.EndTime.String(),
		BreakMinutes:      sh.BreakMinutes,
		LateGraceMinutes:  sh.LateGraceMinutes,
		EarlyGraceMinutes: sh.EarlyGraceMinutes,
		OvertimeThreshold: sh.OvertimeThresholdMinutes,
		OvertimeRate:      sh.OvertimeMultiplier.String(),
		WorkingDays:       days,
		IsNightShift:      sh.IsNightShift,
		IsFlexible:        sh.IsFlexible,
		IsActive:          sh.IsActive,
	}
}

func toHolidayDTO(h *attendance.Holiday) *HolidayDTO {
	return &HolidayDTO{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
		IsOptional:  h.IsOptional,
		Description: h.Description,
	}
}
