package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	attendanceapp "github.com/hrms/backend/internal/application/attendance"
)

// ShiftHandler handles shift and holiday API endpoints
type ShiftHandler struct {
	BaseHandler
	shiftService *attendanceapp.ShiftService
}

// NewShiftHandler creates a new ShiftHandler
func NewShiftHandler(shiftService *attendanceapp.ShiftService) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShiftRequest represents a request to create a shift template
// @Description	Request body for creating a shift template
type CreateShiftRequest struct {
	Code              string `json:"code" binding:"required,min=1,max=20" example:"DAY"`
	Name              string `json:"name" binding:"required,min=1,max=100" example:"Day Shift"`
	StartHour         int    `json:"start_hour" binding:"min=0,max=23" example:"9"`
	StartMinute       int    `json:"start_minute" binding:"min=0,max=59" example:"0"`
	EndHour           int    `json:"end_hour" binding:"min=0,max=23" example:"17"`
	EndMinute         int    `json:"end_minute" binding:"min=0,max=59" example:"30"`
	BreakMinutes      int    `json:"break_minutes" binding:"min=0,max=480" example:"60"`
	LateGraceMinutes  int    `json:"late_grace_minutes" binding:"min=0,max=120" example:"10"`
	EarlyGraceMinutes int    `json:"early_grace_minutes" binding:"min=0,max=120" example:"10"`
	WorkingDays       []int  `json:"working_days" example:"1,2,3,4,5"`
	Flexible          bool   `json:"flexible" example:"false"`
}

// UpdateShiftRequest represents a request to update a shift template
type UpdateShiftRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	StartHour    int    `json:"start_hour" binding:"min=0,max=23"`
	StartMinute  int    `json:"start_minute" binding:"min=0,max=59"`
	EndHour      int    `json:"end_hour" binding:"min=0,max=23"`
	EndMinute    int    `json:"end_minute" binding:"min=0,max=59"`
	BreakMinutes int    `json:"break_minutes" binding:"min=0,max=480"`
}

// SetOvertimeRuleRequest represents a request to configure a shift's overtime rule
type SetOvertimeRuleRequest struct {
	ThresholdMinutes int             `json:"threshold_minutes" binding:"min=0" example:"30"`
	Multiplier       decimal.Decimal `json:"multiplier" binding:"required" example:"1.5"`
}

// CreateHolidayRequest represents a request to create a company holiday
type CreateHolidayRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=100" example:"New Year's Day"`
	Date        time.Time `json:"date" binding:"required" example:"2027-01-01T00:00:00Z"`
	Recurring   bool      `json:"recurring" example:"true"`
	Optional    bool      `json:"optional" example:"false"`
	Description string    `json:"description" binding:"max=500"`
}

// CreateShift godoc
// @ID           createShift
//
//	@Summary		Create a shift template
//	@Description	Create a new shift template with working hours and grace rules
//	@Tags			shifts
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			request		body		CreateShiftRequest	true	"Shift creation request"
//	@Success		201			{object}	APIResponse[attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := attendanceapp.CreateShiftInput{
		CompanyID:         companyID,
		Code:              req.Code,
		Name:              req.Name,
		StartHour:         req.StartHour,
		StartMinute:       req.StartMinute,
		EndHour:           req.EndHour,
		EndMinute:         req.EndMinute,
		BreakMinutes:      req.BreakMinutes,
		LateGraceMinutes:  req.LateGraceMinutes,
		EarlyGraceMinutes: req.EarlyGraceMinutes,
		WorkingDays:       req.WorkingDays,
		Flexible:          req.Flexible,
	}

	shift, err := h.shiftService.CreateShift(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shift)
}

// GetShift godoc
// @ID           getShiftById
//
//	@Summary		Get shift by ID
//	@Description	Retrieve a shift template by its ID
//	@Tags			shifts
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Shift ID"	format(uuid)
//	@Success		200			{object}	APIResponse[attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), companyID, shiftID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// ListShifts godoc
// @ID           listShifts
//
//	@Summary		List shifts
//	@Description	Retrieve all shift templates for the company
//	@Tags			shifts
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shifts)
}

// UpdateShift godoc
// @ID           updateShift
//
//	@Summary		Update a shift template
//	@Description	Update a shift template's name and working hours
//	@Tags			shifts
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Shift ID"	format(uuid)
//	@Param			request		body		UpdateShiftRequest	true	"Shift update request"
//	@Success		200			{object}	APIResponse[attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := attendanceapp.UpdateShiftInput{
		CompanyID:    companyID,
		ID:           shiftID,
		Name:         req.Name,
		StartHour:    req.StartHour,
		StartMinute:  req.StartMinute,
		EndHour:      req.EndHour,
		EndMinute:    req.EndMinute,
		BreakMinutes: req.BreakMinutes,
	}

	shift, err := h.shiftService.UpdateShift(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// SetOvertimeRule godoc
// @ID           setShiftOvertimeRule
//
//	@Summary		Set shift overtime rule
//	@Description	Configure the overtime threshold and pay multiplier for a shift
//	@Tags			shifts
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Shift ID"	format(uuid)
//	@Param			request		body		SetOvertimeRuleRequest	true	"Overtime rule request"
//	@Success		200			{object}	APIResponse[attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts/{id}/overtime-rule [put]
func (h *ShiftHandler) SetOvertimeRule(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	var req SetOvertimeRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.SetOvertimeRule(c.Request.Context(), companyID, shiftID, req.ThresholdMinutes, req.Multiplier)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// DeactivateShift godoc
// @ID           deactivateShift
//
//	@Summary		Deactivate a shift template
//	@Description	Deactivate a shift so it can no longer be assigned
//	@Tags			shifts
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Shift ID"	format(uuid)
//	@Success		200			{object}	APIResponse[attendanceapp.ShiftDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/shifts/{id}/deactivate [post]
func (h *ShiftHandler) DeactivateShift(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	shift, err := h.shiftService.DeactivateShift(c.Request.Context(), companyID, shiftID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// CreateHoliday godoc
// @ID           createHoliday
//
//	@Summary		Create a holiday
//	@Description	Add a company holiday, optionally recurring every year
//	@Tags			holidays
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		CreateHolidayRequest	true	"Holiday creation request"
//	@Success		201			{object}	APIResponse[attendanceapp.HolidayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/holidays [post]
func (h *ShiftHandler) CreateHoliday(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := attendanceapp.HolidayInput{
		CompanyID:   companyID,
		Name:        req.Name,
		Date:        req.Date,
		Recurring:   req.Recurring,
		Optional:    req.Optional,
		Description: req.Description,
	}

	holiday, err := h.shiftService.CreateHoliday(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, holiday)
}

// ListHolidays godoc
// @ID           listHolidays
//
//	@Summary		List holidays
//	@Description	Retrieve the company holidays for a year, recurring ones included
//	@Tags			holidays
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			year		query		int		false	"Year (defaults to current year)"
//	@Success		200			{object}	APIResponse[[]attendanceapp.HolidayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/holidays [get]
func (h *ShiftHandler) ListHolidays(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			h.BadRequest(c, "Invalid year")
			return
		}
	}

	holidays, err := h.shiftService.ListHolidays(c.Request.Context(), companyID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, holidays)
}

// DeleteHoliday godoc
// @ID           deleteHoliday
//
//	@Summary		Delete a holiday
//	@Description	Remove a company holiday
//	@Tags			holidays
//	@Produce		json
//	@Param			X-Tenant-ID	header	string	false	"Company ID (optional for dev)"
//	@Param			id			path	string	true	"Holiday ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/holidays/{id} [delete]
func (h *ShiftHandler) DeleteHoliday(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid holiday ID format")
		return
	}

	if err := h.shiftService.DeleteHoliday(c.Request.Context(), companyID, holidayID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
