package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Maintenance task dependencies
// ---------------------------------------------------------------------------

// AttendanceFinalizer finalizes open attendance days for a company and date
type AttendanceFinalizer interface {
	FinalizeDay(ctx context.Context, companyID uuid.UUID, date time.Time) (int, error)
}

// DocumentExpirer marks documents past their expiry date as expired
type DocumentExpirer interface {
	ExpireDocuments(ctx context.Context, companyID uuid.UUID, asOf time.Time) (int, error)
}

// ComplianceReviewChecker counts compliance requirements due for review
type ComplianceReviewChecker interface {
	ReviewDueCount(ctx context.Context, companyID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// HRMaintenanceExecutor
// ---------------------------------------------------------------------------

// HRMaintenanceExecutor implements MaintenanceExecutor against the
// application services
type HRMaintenanceExecutor struct {
	attendance AttendanceFinalizer
	documents  DocumentExpirer
	compliance ComplianceReviewChecker
	logger     *zap.Logger

	// Callback invoked after each completed job (optional)
	onTaskCompleted func(ctx context.Context, job *MaintenanceJob) error
}

// NewHRMaintenanceExecutor creates a new maintenance executor
func NewHRMaintenanceExecutor(
	attendance AttendanceFinalizer,
	documents DocumentExpirer,
	compliance ComplianceReviewChecker,
	logger *zap.Logger,
) *HRMaintenanceExecutor {
	return &HRMaintenanceExecutor{
		attendance: attendance,
		documents:  documents,
		compliance: compliance,
		logger:     logger,
	}
}

// SetOnTaskCompletedCallback sets the callback for when a task completes
func (e *HRMaintenanceExecutor) SetOnTaskCompletedCallback(cb func(ctx context.Context, job *MaintenanceJob) error) {
	e.onTaskCompleted = cb
}

// Execute runs the maintenance task described by the job
func (e *HRMaintenanceExecutor) Execute(ctx context.Context, job *MaintenanceJob) error {
	select {
	case <-ctx.Done():
		return ErrMaintenanceTimeout
	default:
	}

	var (
		processed int
		err       error
	)

	switch job.Kind {
	case MaintenanceTaskAttendanceFinalize:
		processed, err = e.attendance.FinalizeDay(ctx, job.CompanyID, job.TargetDate)
	case MaintenanceTaskDocumentExpiry:
		processed, err = e.documents.ExpireDocuments(ctx, job.CompanyID, job.TargetDate)
	case MaintenanceTaskComplianceReview:
		processed, err = e.compliance.ReviewDueCount(ctx, job.CompanyID)
		if err == nil && processed > 0 {
			e.logger.Warn("Compliance requirements due for review",
				zap.String("company_id", job.CompanyID.String()),
				zap.Int("due_count", processed),
			)
		}
	case MaintenanceTaskPayrollReminder:
		// Notification only: flag that the payroll period is closing so
		// payroll managers create and process the run in time
		e.logger.Info("Payroll period closing reminder",
			zap.String("company_id", job.CompanyID.String()),
			zap.Time("period_end", job.TargetDate),
		)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMaintenanceTask, job.Kind)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrMaintenanceFailed, err)
	}

	job.Complete(processed)

	if e.onTaskCompleted != nil {
		if err := e.onTaskCompleted(ctx, job); err != nil {
			e.logger.Warn("Maintenance completed callback failed",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// Ensure HRMaintenanceExecutor implements MaintenanceExecutor
var _ MaintenanceExecutor = (*HRMaintenanceExecutor)(nil)
