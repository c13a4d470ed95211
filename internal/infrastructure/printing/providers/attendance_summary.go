package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/printing"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
	infra "github.com/hrms/backend/internal/infrastructure/printing"
)

// AttendanceSummaryProvider implements DataProvider for the
// ATTENDANCE_SUMMARY document type. It builds a per-employee summary of
// the current calendar month from the attendance day records.
type AttendanceSummaryProvider struct {
	attendanceRepo attendance.AttendanceDayRepository
	employeeRepo   workforce.EmployeeRepository
	departmentRepo identity.DepartmentRepository
	companyRepo    identity.CompanyRepository
}

// NewAttendanceSummaryProvider creates a new AttendanceSummaryProvider.
func NewAttendanceSummaryProvider(
	attendanceRepo attendance.AttendanceDayRepository,
	employeeRepo workforce.EmployeeRepository,
	departmentRepo identity.DepartmentRepository,
	companyRepo identity.CompanyRepository,
) *AttendanceSummaryProvider {
	return &AttendanceSummaryProvider{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		companyRepo:    companyRepo,
	}
}

// GetDocType returns the document type this provider handles.
func (p *AttendanceSummaryProvider) GetDocType() printing.DocType {
	return printing.DocTypeAttendanceSummary
}

// GetData retrieves attendance summary data for rendering.
// An attendance summary has no document of its own, so documentID is the
// employee ID and the period is the current calendar month.
func (p *AttendanceSummaryProvider) GetData(ctx context.Context, tenantID, documentID uuid.UUID) (*infra.DocumentData, error) {
	employee, err := p.employeeRepo.FindByID(ctx, tenantID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	company, err := p.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	now := time.Now()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	periodEnd := periodStart.AddDate(0, 1, -1)

	filter := shared.Filter{Page: 1, PageSize: 31, OrderBy: "date", OrderDir: "asc"}
	days, err := p.attendanceRepo.FindByEmployeeRange(ctx, tenantID, documentID, periodStart, periodEnd, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance days: %w", err)
	}

	stats, err := p.attendanceRepo.Statistics(ctx, tenantID, documentID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance statistics: %w", err)
	}

	docNo := fmt.Sprintf("ATT-%s-%s", periodStart.Format("200601"), employee.Code)
	docData := infra.NewDocumentData(printing.DocTypeAttendanceSummary, docNo)
	docData.Company = buildCompanyInfo(company)

	department := ""
	if employee.DepartmentID != nil {
		if dept, err := p.departmentRepo.FindByID(ctx, *employee.DepartmentID); err == nil {
			department = dept.Name
		}
	}

	hireDate := employee.HireDate
	employeeInfo := infra.EmployeeInfo{
		ID:          employee.ID,
		Code:        employee.Code,
		Name:        employee.Personal.FullName(),
		Department:  department,
		Designation: employee.JobTitle,
		Email:       employee.Contact.WorkEmail,
		JoiningDate: &hireDate,

		JoiningDateFormatted: hireDate.Format("2006-01-02"),
	}

	rows := make([]infra.AttendanceDayData, len(days))
	for i, day := range days {
		row := infra.AttendanceDayData{
			Index:         i + 1,
			Date:          day.Date,
			Weekday:       day.Date.Weekday().String(),
			PunchInTime:   day.PunchInTime,
			PunchOutTime:  day.PunchOutTime,
			TotalHours:    day.TotalHours,
			OvertimeHours: day.OvertimeHours,
			Status:        string(day.Status),
			StatusText:    statusToText(string(day.Status)),
			IsLate:        day.IsLate,
			LateMinutes:   day.LateMinutes,
			Notes:         day.Notes,

			DateFormatted: day.Date.Format("2006-01-02"),
		}
		if day.PunchInTime != nil {
			row.PunchInFormatted = day.PunchInTime.Format("15:04")
		}
		if day.PunchOutTime != nil {
			row.PunchOutFormatted = day.PunchOutTime.Format("15:04")
		}
		rows[i] = row
	}

	totalHours := decimal.NewFromFloat(stats.TotalHours)
	overtimeHours := decimal.NewFromFloat(stats.OvertimeHours)

	summaryData := infra.AttendanceSummaryData{
		Employee:    employeeInfo,
		Period:      periodStart.Format("January 2006"),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Days:        rows,

		TotalDays:    len(rows),
		PresentDays:  int(stats.PresentDays),
		AbsentDays:   int(stats.AbsentDays),
		HalfDays:     int(stats.HalfDays),
		LeaveDays:    int(stats.LeaveDays),
		HolidayDays:  int(stats.HolidayDays),
		WeekendDays:  int(stats.WeekendDays),
		LateArrivals: int(stats.LateDays),

		TotalHours:         totalHours,
		TotalOvertimeHours: overtimeHours,

		TotalHoursFormatted:         totalHours.StringFixed(1),
		TotalOvertimeHoursFormatted: overtimeHours.StringFixed(1),
	}

	docData.Document = summaryData

	return docData, nil
}
