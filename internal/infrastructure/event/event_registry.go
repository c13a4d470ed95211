package event

import (
	"github.com/hrms/backend/internal/domain/asset"
	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/benefits"
	"github.com/hrms/backend/internal/domain/compliance"
	"github.com/hrms/backend/internal/domain/document"
	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/onboarding"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/performance"
	"github.com/hrms/backend/internal/domain/workforce"
)

// RegisterAllEvents registers all domain event types with the serializer
// This is required for the OutboxProcessor to deserialize events from the outbox table
func RegisterAllEvents(serializer *EventSerializer) {
	// Workforce domain - Employee events
	serializer.Register(workforce.EventTypeEmployeeHired, &workforce.EmployeeHiredEvent{})
	serializer.Register(workforce.EventTypeEmployeeStatusChanged, &workforce.EmployeeStatusChangedEvent{})
	serializer.Register(workforce.EventTypeEmployeeTerminated, &workforce.EmployeeTerminatedEvent{})
	serializer.Register(workforce.EventTypeEmployeeDepartmentChanged, &workforce.EmployeeDepartmentChangedEvent{})
	serializer.Register(workforce.EventTypeEmployeeCompensationChanged, &workforce.EmployeeCompensationChangedEvent{})

	// Attendance domain events
	serializer.Register(attendance.EventTypePunchRecorded, &attendance.PunchRecordedEvent{})
	serializer.Register(attendance.EventTypeAttendanceAdjusted, &attendance.AttendanceAdjustedEvent{})
	serializer.Register(attendance.EventTypeShiftCreated, &attendance.ShiftCreatedEvent{})

	// Leave domain events
	serializer.Register(leave.EventTypeLeaveRequested, &leave.LeaveRequestedEvent{})
	serializer.Register(leave.EventTypeLeaveApproved, &leave.LeaveApprovedEvent{})
	serializer.Register(leave.EventTypeLeaveRejected, &leave.LeaveRejectedEvent{})
	serializer.Register(leave.EventTypeLeaveCancelled, &leave.LeaveCancelledEvent{})

	// Payroll domain events
	serializer.Register(payroll.EventTypePayrollRunCreated, &payroll.PayrollRunCreatedEvent{})
	serializer.Register(payroll.EventTypePayrollProcessed, &payroll.PayrollProcessedEvent{})
	serializer.Register(payroll.EventTypePayrollApproved, &payroll.PayrollApprovedEvent{})
	serializer.Register(payroll.EventTypePayrollPaid, &payroll.PayrollPaidEvent{})

	// Expense domain events
	serializer.Register(expense.EventTypeExpenseSubmitted, &expense.ExpenseSubmittedEvent{})
	serializer.Register(expense.EventTypeExpenseApproved, &expense.ExpenseApprovedEvent{})
	serializer.Register(expense.EventTypeExpenseRejected, &expense.ExpenseRejectedEvent{})
	serializer.Register(expense.EventTypeExpenseReimbursed, &expense.ExpenseReimbursedEvent{})

	// Asset domain events
	serializer.Register(asset.EventTypeAssetAssigned, &asset.AssetAssignedEvent{})
	serializer.Register(asset.EventTypeAssetReturned, &asset.AssetReturnedEvent{})

	// Document domain events
	serializer.Register(document.EventTypeDocumentActivated, &document.DocumentActivatedEvent{})
	serializer.Register(document.EventTypeDocumentExpired, &document.DocumentExpiredEvent{})

	// Onboarding domain events
	serializer.Register(onboarding.EventTypeOnboardingCompleted, &onboarding.OnboardingCompletedEvent{})

	// Performance domain events
	serializer.Register(performance.EventTypeReviewCompleted, &performance.ReviewCompletedEvent{})

	// Benefits domain events
	serializer.Register(benefits.EventTypeEnrollmentApproved, &benefits.EnrollmentApprovedEvent{})

	// Compliance domain events
	serializer.Register(compliance.EventTypeNonComplianceFound, &compliance.NonComplianceFoundEvent{})

	// Identity domain - Company events
	serializer.Register(identity.EventTypeCompanyCreated, &identity.CompanyCreatedEvent{})
	serializer.Register(identity.EventTypeCompanyUpdated, &identity.CompanyUpdatedEvent{})
	serializer.Register(identity.EventTypeCompanyStatusChanged, &identity.CompanyStatusChangedEvent{})
	serializer.Register(identity.EventTypeCompanyPlanChanged, &identity.CompanyPlanChangedEvent{})
	serializer.Register(identity.EventTypeCompanyOfficeLocationChanged, &identity.CompanyOfficeLocationChangedEvent{})
	serializer.Register(identity.EventTypeCompanyDeleted, &identity.CompanyDeletedEvent{})

	// Identity domain - Department events
	serializer.Register(identity.EventTypeDepartmentCreated, &identity.DepartmentCreatedEvent{})
	serializer.Register(identity.EventTypeDepartmentUpdated, &identity.DepartmentUpdatedEvent{})
	serializer.Register(identity.EventTypeDepartmentManagerChanged, &identity.DepartmentManagerChangedEvent{})
	serializer.Register(identity.EventTypeDepartmentDeleted, &identity.DepartmentDeletedEvent{})

	// Identity domain - User events
	serializer.Register(identity.EventTypeUserCreated, &identity.UserCreatedEvent{})
	serializer.Register(identity.EventTypeUserDeactivated, &identity.UserDeactivatedEvent{})
	serializer.Register(identity.EventTypeUserPasswordChanged, &identity.UserPasswordChangedEvent{})
	serializer.Register(identity.EventTypeUserRoleAssigned, &identity.UserRoleAssignedEvent{})
	serializer.Register(identity.EventTypeUserRoleRemoved, &identity.UserRoleRemovedEvent{})
	serializer.Register(identity.EventTypeUserStatusChanged, &identity.UserStatusChangedEvent{})

	// Identity domain - Role events
	serializer.Register(identity.EventTypeRoleCreated, &identity.RoleCreatedEvent{})
	serializer.Register(identity.EventTypeRoleUpdated, &identity.RoleUpdatedEvent{})
	serializer.Register(identity.EventTypeRoleDeleted, &identity.RoleDeletedEvent{})
	serializer.Register(identity.EventTypeRoleEnabled, &identity.RoleEnabledEvent{})
	serializer.Register(identity.EventTypeRoleDisabled, &identity.RoleDisabledEvent{})
	serializer.Register(identity.EventTypeRolePermissionGranted, &identity.RolePermissionGrantedEvent{})
	serializer.Register(identity.EventTypeRolePermissionRevoked, &identity.RolePermissionRevokedEvent{})
	serializer.Register(identity.EventTypeRoleDataScopeChanged, &identity.RoleDataScopeChangedEvent{})
	serializer.Register(identity.EventTypeRoleUsersChanged, &identity.RoleUsersChangedEvent{})
}
