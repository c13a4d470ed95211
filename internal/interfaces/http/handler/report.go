package handler

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportapp "github.com/hrms/backend/internal/application/report"
	"github.com/hrms/backend/internal/infrastructure/scheduler"
)

// ReportHandler handles analytics and report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService      *reportapp.ReportService
	aggregationService *reportapp.ReportAggregationService
	cronScheduler      *scheduler.ReportCronScheduler
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// SetAggregationService sets the aggregation service for manual refresh
func (h *ReportHandler) SetAggregationService(aggService *reportapp.ReportAggregationService) {
	h.aggregationService = aggService
}

// SetCronScheduler sets the cron scheduler for status reporting
func (h *ReportHandler) SetCronScheduler(cronScheduler *scheduler.ReportCronScheduler) {
	h.cronScheduler = cronScheduler
}

// WorkforceReportFilterRequest defines the filter for workforce reports
type WorkforceReportFilterRequest struct {
	StartDate    string `form:"start_date" binding:"required" example:"2026-01-01"`
	EndDate      string `form:"end_date" binding:"required" example:"2026-01-31"`
	DepartmentID string `form:"department_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LocationID   string `form:"location_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// AttendanceReportFilterRequest defines the filter for attendance reports
type AttendanceReportFilterRequest struct {
	StartDate    string `form:"start_date" binding:"required" example:"2026-01-01"`
	EndDate      string `form:"end_date" binding:"required" example:"2026-01-31"`
	DepartmentID string `form:"department_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	EmployeeID   string `form:"employee_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TopN         int    `form:"top_n" example:"10"`
}

// PayrollReportFilterRequest defines the filter for payroll cost reports
type PayrollReportFilterRequest struct {
	StartDate    string `form:"start_date" binding:"required" example:"2026-01-01"`
	EndDate      string `form:"end_date" binding:"required" example:"2026-12-31"`
	DepartmentID string `form:"department_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// GetHeadcountSummary godoc
// @ID           getHeadcountSummary
//
//	@Summary		Get headcount summary
//	@Description	Get workforce composition for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID		header		string	false	"Company ID (optional for dev)"
//	@Param			start_date		query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date		query		string	true	"End date (YYYY-MM-DD)"
//	@Param			department_id	query		string	false	"Filter by department ID"
//	@Param			location_id		query		string	false	"Filter by location ID"
//	@Success		200				{object}	APIResponse[reportapp.HeadcountSummaryResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/workforce/headcount-summary [get]
func (h *ReportHandler) GetHeadcountSummary(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindWorkforceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.GetHeadcountSummary(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetDepartmentHeadcount godoc
// @ID           getDepartmentHeadcount
//
//	@Summary		Get headcount by department
//	@Description	Get headcount, hires and exits grouped by department
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.DepartmentHeadcountResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/workforce/headcount-by-department [get]
func (h *ReportHandler) GetDepartmentHeadcount(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindWorkforceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.reportService.GetDepartmentHeadcount(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// GetHeadcountTrend godoc
// @ID           getHeadcountTrend
//
//	@Summary		Get headcount trend
//	@Description	Get monthly headcount, hires and attrition for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.HeadcountTrendResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/workforce/headcount-trend [get]
func (h *ReportHandler) GetHeadcountTrend(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindWorkforceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trend, err := h.reportService.GetHeadcountTrend(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trend)
}

// GetTenureDistribution godoc
// @ID           getTenureDistribution
//
//	@Summary		Get tenure distribution
//	@Description	Get headcount bucketed by years of service
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.TenureDistributionResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/workforce/tenure-distribution [get]
func (h *ReportHandler) GetTenureDistribution(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindWorkforceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	buckets, err := h.reportService.GetTenureDistribution(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, buckets)
}

// GetAttendanceSummary godoc
// @ID           getAttendanceReportSummary
//
//	@Summary		Get attendance summary
//	@Description	Get aggregated attendance rates for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID		header		string	false	"Company ID (optional for dev)"
//	@Param			start_date		query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date		query		string	true	"End date (YYYY-MM-DD)"
//	@Param			department_id	query		string	false	"Filter by department ID"
//	@Param			employee_id		query		string	false	"Filter by employee ID"
//	@Success		200				{object}	APIResponse[reportapp.AttendanceSummaryResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/attendance/summary [get]
func (h *ReportHandler) GetAttendanceSummary(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindAttendanceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.GetAttendanceSummary(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetDailyAttendanceTrend godoc
// @ID           getDailyAttendanceTrend
//
//	@Summary		Get daily attendance trend
//	@Description	Get per-day present, absent and late counts for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.DailyAttendanceTrendResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/attendance/daily-trend [get]
func (h *ReportHandler) GetDailyAttendanceTrend(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindAttendanceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trend, err := h.reportService.GetDailyAttendanceTrend(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trend)
}

// GetAbsenteeismRanking godoc
// @ID           getAbsenteeismRanking
//
//	@Summary		Get absenteeism ranking
//	@Description	Get employees ranked by absence days for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Param			top_n		query		int		false	"Number of employees (default 10)"
//	@Success		200			{object}	APIResponse[[]reportapp.AbsenteeismRankingResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/attendance/absenteeism [get]
func (h *ReportHandler) GetAbsenteeismRanking(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindAttendanceFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ranking, err := h.reportService.GetAbsenteeismRanking(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ranking)
}

// GetLeaveUtilization godoc
// @ID           getLeaveUtilization
//
//	@Summary		Get leave utilization
//	@Description	Get allocated versus used leave per leave type for a year
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			year		query		int		false	"Year (defaults to current year)"
//	@Success		200			{object}	APIResponse[[]reportapp.LeaveUtilizationResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/leave/utilization [get]
func (h *ReportHandler) GetLeaveUtilization(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	utilization, err := h.reportService.GetLeaveUtilization(c.Request.Context(), companyID, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, utilization)
}

// GetPayrollCostSummary godoc
// @ID           getPayrollCostSummary
//
//	@Summary		Get payroll cost summary
//	@Description	Get aggregated payroll cost for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID		header		string	false	"Company ID (optional for dev)"
//	@Param			start_date		query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date		query		string	true	"End date (YYYY-MM-DD)"
//	@Param			department_id	query		string	false	"Filter by department ID"
//	@Success		200				{object}	APIResponse[reportapp.PayrollCostSummaryResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/payroll/cost-summary [get]
func (h *ReportHandler) GetPayrollCostSummary(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindPayrollFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.GetPayrollCostSummary(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetMonthlyPayrollTrend godoc
// @ID           getMonthlyPayrollTrend
//
//	@Summary		Get monthly payroll trend
//	@Description	Get per-month gross, net and tax totals for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.MonthlyPayrollTrendResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/payroll/monthly-trend [get]
func (h *ReportHandler) GetMonthlyPayrollTrend(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindPayrollFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trend, err := h.reportService.GetMonthlyPayrollTrend(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trend)
}

// GetDepartmentPayrollCost godoc
// @ID           getDepartmentPayrollCost
//
//	@Summary		Get payroll cost by department
//	@Description	Get payroll cost grouped by department for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.DepartmentPayrollCostResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/payroll/department-cost [get]
func (h *ReportHandler) GetDepartmentPayrollCost(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindPayrollFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	costs, err := h.reportService.GetDepartmentPayrollCost(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, costs)
}

// GetExpenseBreakdown godoc
// @ID           getExpenseBreakdown
//
//	@Summary		Get expense breakdown
//	@Description	Get reimbursed expense totals grouped by category for the specified period
//	@Tags			reports
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			start_date	query		string	true	"Start date (YYYY-MM-DD)"
//	@Param			end_date	query		string	true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	APIResponse[[]reportapp.ExpenseBreakdownResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/payroll/expense-breakdown [get]
func (h *ReportHandler) GetExpenseBreakdown(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	filter, err := h.bindPayrollFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	breakdown, err := h.reportService.GetExpenseBreakdown(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, breakdown)
}

func (h *ReportHandler) bindWorkforceFilter(c *gin.Context) (reportapp.WorkforceReportFilter, error) {
	var req WorkforceReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return reportapp.WorkforceReportFilter{}, err
	}

	startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return reportapp.WorkforceReportFilter{}, err
	}

	filter := reportapp.WorkforceReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if req.DepartmentID != "" {
		departmentID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return filter, errors.New("department_id: Invalid UUID format")
		}
		filter.DepartmentID = &departmentID
	}

	if req.LocationID != "" {
		locationID, err := uuid.Parse(req.LocationID)
		if err != nil {
			return filter, errors.New("location_id: Invalid UUID format")
		}
		filter.LocationID = &locationID
	}

	return filter, nil
}

func (h *ReportHandler) bindAttendanceFilter(c *gin.Context) (reportapp.AttendanceReportFilter, error) {
	var req AttendanceReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return reportapp.AttendanceReportFilter{}, err
	}

	startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return reportapp.AttendanceReportFilter{}, err
	}

	filter := reportapp.AttendanceReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
		TopN:      req.TopN,
	}

	if req.DepartmentID != "" {
		departmentID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return filter, errors.New("department_id: Invalid UUID format")
		}
		filter.DepartmentID = &departmentID
	}

	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return filter, errors.New("employee_id: Invalid UUID format")
		}
		filter.EmployeeID = &employeeID
	}

	return filter, nil
}

func (h *ReportHandler) bindPayrollFilter(c *gin.Context) (reportapp.PayrollReportFilter, error) {
	var req PayrollReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return reportapp.PayrollReportFilter{}, err
	}

	startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return reportapp.PayrollReportFilter{}, err
	}

	filter := reportapp.PayrollReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if req.DepartmentID != "" {
		departmentID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return filter, errors.New("department_id: Invalid UUID format")
		}
		filter.DepartmentID = &departmentID
	}

	return filter, nil
}

func parseReportPeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start_date: Invalid date format, expected YYYY-MM-DD")
	}

	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end_date: Invalid date format, expected YYYY-MM-DD")
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, errors.New("end_date must not be before start_date")
	}

	// Set end date to end of day
	endDate = endDate.Add(24*time.Hour - time.Second)

	return startDate, endDate, nil
}

// RefreshReportRequest defines the request for manual report refresh
type RefreshReportRequest struct {
	ReportType string `json:"report_type" binding:"required" example:"HEADCOUNT_SUMMARY"`
	StartDate  string `json:"start_date" binding:"required" example:"2026-01-01"`
	EndDate    string `json:"end_date" binding:"required" example:"2026-01-31"`
}

// RefreshAllReportsRequest defines the request for refreshing all reports
type RefreshAllReportsRequest struct {
	StartDate string `json:"start_date" binding:"required" example:"2026-01-01"`
	EndDate   string `json:"end_date" binding:"required" example:"2026-01-31"`
}

// RefreshReportResponse represents the response for report refresh
type RefreshReportResponse struct {
	Message    string `json:"message" example:"Report cache refreshed successfully"`
	ReportType string `json:"report_type,omitempty" example:"HEADCOUNT_SUMMARY"`
}

// RefreshReport godoc
// @ID           refreshReport
//
//	@Summary		Manually refresh a report cache
//	@Description	Triggers manual refresh of a specific report type cache
//	@Tags			reports
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		RefreshReportRequest	true	"Report refresh request"
//	@Success		200			{object}	APIResponse[RefreshReportResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/refresh [post]
func (h *ReportHandler) RefreshReport(c *gin.Context) {
	if h.aggregationService == nil {
		h.InternalError(c, "Report aggregation service not configured")
		return
	}

	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req RefreshReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reportType := scheduler.ReportType(req.ReportType)
	if !slices.Contains(scheduler.AllReportTypes(), reportType) {
		h.BadRequest(c, "Invalid report_type. Valid types: HEADCOUNT_SUMMARY, ATTENDANCE_SUMMARY, ATTENDANCE_DAILY_TREND, PAYROLL_MONTHLY, DEPARTMENT_COST, LEAVE_UTILIZATION")
		return
	}

	if err := h.aggregationService.RefreshReport(c.Request.Context(), companyID, reportType, startDate, endDate); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshReportResponse{
		Message:    "Report cache refreshed successfully",
		ReportType: req.ReportType,
	})
}

// RefreshAllReports godoc
// @ID           refreshAllReports
//
//	@Summary		Refresh all report caches
//	@Description	Triggers manual refresh of every report type cache
//	@Tags			reports
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		RefreshAllReportsRequest	true	"Report refresh request"
//	@Success		200			{object}	APIResponse[RefreshReportResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/refresh/all [post]
func (h *ReportHandler) RefreshAllReports(c *gin.Context) {
	if h.aggregationService == nil {
		h.InternalError(c, "Report aggregation service not configured")
		return
	}

	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req RefreshAllReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.aggregationService.RefreshAllReports(c.Request.Context(), companyID, startDate, endDate); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshReportResponse{
		Message: "All report caches refreshed successfully",
	})
}

// GetSchedulerStatus godoc
// @ID           getReportSchedulerStatus
//
//	@Summary		Get report scheduler status
//	@Description	Returns the current status of the report aggregation scheduler
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	APIResponse[SchedulerStatusData]
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/scheduler/status [get]
func (h *ReportHandler) GetSchedulerStatus(c *gin.Context) {
	status := map[string]any{
		"enabled":            h.aggregationService != nil,
		"available_types":    scheduler.AllReportTypes(),
		"supported_schedule": "Daily",
	}

	if h.cronScheduler != nil {
		maps.Copy(status, h.cronScheduler.GetStatus())
	}

	h.Success(c, status)
}

// TriggerDailyAggregationRequest defines the request for triggering daily aggregation
type TriggerDailyAggregationRequest struct {
	StartDate string `json:"start_date" example:"2026-01-01"`
	EndDate   string `json:"end_date" example:"2026-01-31"`
}

// TriggerDailyAggregation godoc
// @ID           triggerDailyAggregation
//
//	@Summary		Trigger daily report aggregation
//	@Description	Manually triggers the daily report aggregation, optionally for a specific date range
//	@Tags			reports
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string							false	"Company ID (optional for dev)"
//	@Param			request		body		TriggerDailyAggregationRequest	false	"Date range (optional, defaults to yesterday)"
//	@Success		200			{object}	APIResponse[RefreshReportResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/scheduler/trigger [post]
func (h *ReportHandler) TriggerDailyAggregation(c *gin.Context) {
	if h.cronScheduler == nil {
		h.InternalError(c, "Report cron scheduler not configured")
		return
	}

	var req TriggerDailyAggregationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	if req.StartDate != "" && req.EndDate != "" {
		companyID, err := getTenantID(c)
		if err != nil {
			h.BadRequest(c, "Invalid company ID")
			return
		}

		startDate, endDate, err := parseReportPeriod(req.StartDate, req.EndDate)
		if err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		if err := h.cronScheduler.TriggerCompanyAggregation(c.Request.Context(), companyID, startDate, endDate); err != nil {
			h.HandleError(c, err)
			return
		}

		h.Success(c, RefreshReportResponse{
			Message: "Report aggregation triggered for specified date range",
		})
		return
	}

	if err := h.cronScheduler.TriggerManualRun(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshReportResponse{
		Message: "Daily report aggregation triggered for all companies",
	})
}
