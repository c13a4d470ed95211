package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Common allowed sort fields for entities with base fields
// These are the common fields present in most entities

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"username":      true,
	"email":         true,
	"display_name":  true,
	"status":        true,
	"last_login_at": true,
}

// CompanySortFields contains allowed sort fields for companies
var CompanySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"legal_name": true,
	"status":     true,
	"plan":       true,
	"industry":   true,
	"size_band":  true,
	"expires_at": true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"code":             true,
	"first_name":       true,
	"last_name":        true,
	"work_email":       true,
	"department_id":    true,
	"manager_id":       true,
	"employment_type":  true,
	"status":           true,
	"job_title":        true,
	"job_level":        true,
	"work_location":    true,
	"hire_date":        true,
	"termination_date": true,
	"base_salary":      true,
}

// DepartmentSortFields contains allowed sort fields for departments
var DepartmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"parent_id":  true,
	"level":      true,
	"sort_order": true,
	"status":     true,
}

// ShiftSortFields contains allowed sort fields for shifts
var ShiftSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"start_time": true,
	"end_time":   true,
	"is_active":  true,
}

// AttendanceDaySortFields contains allowed sort fields for attendance days
var AttendanceDaySortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"employee_id":    true,
	"date":           true,
	"status":         true,
	"total_hours":    true,
	"overtime_hours": true,
	"is_late":        true,
	"late_minutes":   true,
}

// LeavePolicySortFields contains allowed sort fields for leave policies
var LeavePolicySortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"type":           true,
	"days_per_year":  true,
	"accrual":        true,
	"effective_from": true,
	"effective_to":   true,
	"is_active":      true,
}

// LeaveRequestSortFields contains allowed sort fields for leave requests
var LeaveRequestSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"employee_id":    true,
	"type":           true,
	"start_date":     true,
	"end_date":       true,
	"days_requested": true,
	"status":         true,
	"decided_at":     true,
}

// LeaveBalanceSortFields contains allowed sort fields for leave balances
var LeaveBalanceSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"employee_id":     true,
	"type":            true,
	"year":            true,
	"allocated":       true,
	"carried_forward": true,
	"used":            true,
	"pending":         true,
}

// PayrollRunSortFields contains allowed sort fields for payroll runs
var PayrollRunSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"number":          true,
	"type":            true,
	"status":          true,
	"period_start":    true,
	"period_end":      true,
	"pay_date":        true,
	"total_employees": true,
	"total_gross_pay": true,
	"total_net_pay":   true,
	"processed_at":    true,
	"approved_at":     true,
	"paid_at":         true,
}

// ExpenseSortFields contains allowed sort fields for expense claims
var ExpenseSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"employee_id":  true,
	"number":       true,
	"category":     true,
	"title":        true,
	"amount":       true,
	"expense_date": true,
	"status":       true,
	"submitted_at": true,
	"approved_at":  true,
}

// AssetSortFields contains allowed sort fields for assets
var AssetSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"tag":           true,
	"serial_number": true,
	"type":          true,
	"name":          true,
	"purchase_date": true,
	"purchase_cost": true,
	"current_value": true,
	"status":        true,
	"condition":     true,
}

// DocumentSortFields contains allowed sort fields for documents
var DocumentSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"employee_id": true,
	"name":        true,
	"type":        true,
	"category":    true,
	"file_size":   true,
	"issue_date":  true,
	"expiry_date": true,
	"status":      true,
}

// PerformanceReviewSortFields contains allowed sort fields for performance reviews
var PerformanceReviewSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"employee_id":   true,
	"reviewer_id":   true,
	"type":          true,
	"status":        true,
	"period_start":  true,
	"period_end":    true,
	"due_date":      true,
	"final_overall": true,
}

// RoleSortFields contains allowed sort fields for roles
var RoleSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"code":           true,
	"name":           true,
	"sort_order":     true,
	"is_enabled":     true,
	"is_system_role": true,
}
