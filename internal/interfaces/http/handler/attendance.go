package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	attendanceapp "github.com/hrms/backend/internal/application/attendance"
)

// AttendanceHandler handles attendance-related API endpoints
type AttendanceHandler struct {
	BaseHandler
	attendanceService *attendanceapp.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService *attendanceapp.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// PunchRequest represents a punch in or punch out request
// @Description	Request body for recording an attendance punch
type PunchRequest struct {
	EmployeeID uuid.UUID  `json:"employee_id" binding:"required"`
	At         *time.Time `json:"at"` // Defaults to the current time
	Latitude   float64    `json:"latitude" example:"30.0444"`
	Longitude  float64    `json:"longitude" example:"31.2357"`
	DeviceInfo string     `json:"device_info" binding:"max=200" example:"iPhone 15 / app 2.3.0"`
}

// AdjustDayRequest represents a manual attendance correction request
type AdjustDayRequest struct {
	PunchIn  *time.Time `json:"punch_in"`
	PunchOut *time.Time `json:"punch_out"`
	Reason   string     `json:"reason" binding:"required,min=1,max=500" example:"Forgot to punch out"`
}

// toPunchInput converts the request into the application input
func (h *AttendanceHandler) toPunchInput(c *gin.Context, companyID uuid.UUID, req PunchRequest) attendanceapp.PunchInput {
	input := attendanceapp.PunchInput{
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DeviceInfo: req.DeviceInfo,
		IPAddress:  c.ClientIP(),
	}
	if req.At != nil {
		input.At = *req.At
	}
	return input
}

// PunchIn godoc
// @ID           punchIn
//
//	@Summary		Punch in
//	@Description	Record the start-of-day punch for an employee, validated against the office geofence
//	@Tags			attendance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			request		body		PunchRequest	true	"Punch request"
//	@Success		200			{object}	APIResponse[attendanceapp.PunchResultDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/punch-in [post]
func (h *AttendanceHandler) PunchIn(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.attendanceService.PunchIn(c.Request.Context(), h.toPunchInput(c, companyID, req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// PunchOut godoc
// @ID           punchOut
//
//	@Summary		Punch out
//	@Description	Record the end-of-day punch for an employee
//	@Tags			attendance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string			false	"Company ID (optional for dev)"
//	@Param			request		body		PunchRequest	true	"Punch request"
//	@Success		200			{object}	APIResponse[attendanceapp.PunchResultDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/punch-out [post]
func (h *AttendanceHandler) PunchOut(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.attendanceService.PunchOut(c.Request.Context(), h.toPunchInput(c, companyID, req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetDay godoc
// @ID           getAttendanceDay
//
//	@Summary		Get attendance day
//	@Description	Retrieve an employee's attendance record for a date
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			date		query		string	true	"Date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[attendanceapp.AttendanceDayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/employees/{employee_id}/day [get]
func (h *AttendanceHandler) GetDay(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	day, err := h.attendanceService.GetDay(c.Request.Context(), companyID, employeeID, date)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, day)
}

// ListEmployeeRange godoc
// @ID           listEmployeeAttendance
//
//	@Summary		List employee attendance
//	@Description	Retrieve an employee's attendance records over a date range
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			from		query		string	true	"Range start (YYYY-MM-DD)"
//	@Param			to			query		string	true	"Range end (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]attendanceapp.AttendanceDayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/employees/{employee_id} [get]
func (h *AttendanceHandler) ListEmployeeRange(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		h.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		h.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	days, err := h.attendanceService.ListEmployeeRange(c.Request.Context(), companyID, employeeID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, days)
}

// ListByDate godoc
// @ID           listAttendanceByDate
//
//	@Summary		List attendance by date
//	@Description	Retrieve all attendance records for a date, optionally scoped to a department
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID		header		string	false	"Company ID (optional for dev)"
//	@Param			date			query		string	true	"Date (YYYY-MM-DD)"
//	@Param			department_id	query		string	false	"Department ID"	format(uuid)
//	@Success		200				{object}	APIResponse[[]attendanceapp.AttendanceDayDTO]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/days [get]
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var departmentID *uuid.UUID
	if deptStr := c.Query("department_id"); deptStr != "" {
		deptID, err := uuid.Parse(deptStr)
		if err != nil {
			h.BadRequest(c, "Invalid department ID format")
			return
		}
		departmentID = &deptID
	}

	days, err := h.attendanceService.ListByDate(c.Request.Context(), companyID, date, departmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, days)
}

// Adjust godoc
// @ID           adjustAttendanceDay
//
//	@Summary		Adjust attendance day
//	@Description	Manually correct an attendance record; the correction requires approval
//	@Tags			attendance
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Attendance day ID"	format(uuid)
//	@Param			request		body		AdjustDayRequest	true	"Adjustment request"
//	@Success		200			{object}	APIResponse[attendanceapp.AttendanceDayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/days/{id}/adjust [post]
func (h *AttendanceHandler) Adjust(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	dayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attendance day ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req AdjustDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := attendanceapp.AdjustDayInput{
		CompanyID:  companyID,
		DayID:      dayID,
		PunchIn:    req.PunchIn,
		PunchOut:   req.PunchOut,
		AdjustedBy: userID,
		Reason:     req.Reason,
	}

	day, err := h.attendanceService.Adjust(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, day)
}

// ApproveAdjustment godoc
// @ID           approveAttendanceAdjustment
//
//	@Summary		Approve attendance adjustment
//	@Description	Approve a pending manual attendance correction
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Attendance day ID"	format(uuid)
//	@Success		200			{object}	APIResponse[attendanceapp.AttendanceDayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/days/{id}/approve [post]
func (h *AttendanceHandler) ApproveAdjustment(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	dayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attendance day ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	day, err := h.attendanceService.ApproveAdjustment(c.Request.Context(), companyID, dayID, approverID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, day)
}

// ListPendingApprovals godoc
// @ID           listPendingAttendanceApprovals
//
//	@Summary		List pending attendance approvals
//	@Description	Retrieve manual corrections awaiting approval
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]attendanceapp.AttendanceDayDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/approvals [get]
func (h *AttendanceHandler) ListPendingApprovals(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	days, err := h.attendanceService.ListPendingApprovals(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, days)
}

// EmployeeStats godoc
// @ID           getEmployeeAttendanceStats
//
//	@Summary		Get employee attendance statistics
//	@Description	Summarize an employee's attendance over a date range
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Param			from		query		string	true	"Range start (YYYY-MM-DD)"
//	@Param			to			query		string	true	"Range end (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[attendanceapp.AttendanceStatsDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/employees/{employee_id}/stats [get]
func (h *AttendanceHandler) EmployeeStats(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		h.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		h.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	stats, err := h.attendanceService.EmployeeStats(c.Request.Context(), companyID, employeeID, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// CompanyStats godoc
// @ID           getCompanyAttendanceStats
//
//	@Summary		Get company attendance statistics
//	@Description	Summarize company-wide attendance for a date
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			date		query		string	true	"Date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[attendanceapp.AttendanceStatsDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/stats [get]
func (h *AttendanceHandler) CompanyStats(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	stats, err := h.attendanceService.CompanyStats(c.Request.Context(), companyID, date)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// FinalizeDayResponse reports how many absent records a finalize run produced
type FinalizeDayResponse struct {
	MarkedAbsent int `json:"marked_absent" example:"4"`
}

// FinalizeDay godoc
// @ID           finalizeAttendanceDay
//
//	@Summary		Finalize attendance day
//	@Description	Mark employees with no record for the date as absent, skipping holidays and non-working days
//	@Tags			attendance
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			date		query		string	true	"Date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[FinalizeDayResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/attendance/finalize [post]
func (h *AttendanceHandler) FinalizeDay(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	marked, err := h.attendanceService.FinalizeDay(c.Request.Context(), companyID, date)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, FinalizeDayResponse{MarkedAbsent: marked})
}
