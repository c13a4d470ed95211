// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the HR system.
// It tracks hiring, leave activity, and payroll volume.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	employeeHiredTotal    *Counter
	leaveRequestTotal     *Counter
	payrollRunTotal       *Counter
	payrollNetAmountTotal *Counter

	// Gauge metrics (point-in-time values)
	headcount         *Gauge
	leavePendingCount *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data providers for periodic collection
	workforceProvider WorkforceMetricsProvider
}

// WorkforceMetricsProvider provides workforce data for periodic metrics collection.
// This interface allows the telemetry layer to query headcount and leave state
// without depending on the workforce domain directly.
type WorkforceMetricsProvider interface {
	// GetHeadcountByDepartment returns active employee count per department for a tenant
	GetHeadcountByDepartment(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]int64, error)

	// GetPendingLeaveCount returns count of leave requests awaiting approval for a tenant
	GetPendingLeaveCount(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter             metric.Meter
	Logger            *zap.Logger
	CollectInterval   time.Duration // Default: 5 minutes
	WorkforceProvider WorkforceMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:             cfg.Meter,
		logger:            logger,
		stopChan:          make(chan struct{}),
		workforceProvider: cfg.WorkforceProvider,
	}

	// Initialize counter metrics
	var err error

	// Hiring metrics
	bm.employeeHiredTotal, err = NewCounter(
		cfg.Meter,
		"hrms_employee_hired_total",
		"Total number of employees hired",
		"{employees}",
	)
	if err != nil {
		return nil, err
	}

	// Leave metrics
	bm.leaveRequestTotal, err = NewCounter(
		cfg.Meter,
		"hrms_leave_request_total",
		"Total number of leave requests submitted",
		"{requests}",
	)
	if err != nil {
		return nil, err
	}

	// Payroll metrics
	bm.payrollRunTotal, err = NewCounter(
		cfg.Meter,
		"hrms_payroll_run_total",
		"Total number of payroll run completions",
		"{runs}",
	)
	if err != nil {
		return nil, err
	}

	bm.payrollNetAmountTotal, err = NewCounter(
		cfg.Meter,
		"hrms_payroll_net_amount_total",
		"Total net pay disbursed in cents",
		"{cents}",
	)
	if err != nil {
		return nil, err
	}

	// Workforce gauge metrics
	bm.headcount, err = NewGauge(
		cfg.Meter,
		"hrms_headcount",
		"Current active employee count",
		"{employees}",
	)
	if err != nil {
		return nil, err
	}

	bm.leavePendingCount, err = NewGauge(
		cfg.Meter,
		"hrms_leave_pending_count",
		"Number of leave requests awaiting approval",
		"{requests}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Hiring Metrics
// =============================================================================

// EmploymentType represents the employment type of a hire for metrics labeling.
type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeContractor EmploymentType = "contractor"
	EmploymentTypeIntern     EmploymentType = "intern"
)

// RecordEmployeeHired records an employee hire event.
// This should be called from the application layer when an employee is hired.
func (bm *BusinessMetrics) RecordEmployeeHired(ctx context.Context, tenantID uuid.UUID, employmentType EmploymentType) {
	bm.employeeHiredTotal.Inc(ctx,
		AttrTenantID.String(tenantID.String()),
		AttrEmploymentType.String(string(employmentType)),
	)
}

// =============================================================================
// Leave Metrics
// =============================================================================

// RecordLeaveRequest records a leave request submission.
// This should be called when a leave request is submitted for approval.
func (bm *BusinessMetrics) RecordLeaveRequest(ctx context.Context, tenantID uuid.UUID, leaveType string) {
	bm.leaveRequestTotal.Inc(ctx,
		AttrTenantID.String(tenantID.String()),
		AttrLeaveType.String(leaveType),
	)
}

// =============================================================================
// Payroll Metrics
// =============================================================================

// PayrollRunStatus represents the outcome of a payroll run for metrics labeling.
type PayrollRunStatus string

const (
	PayrollRunStatusCompleted PayrollRunStatus = "completed"
	PayrollRunStatusFailed    PayrollRunStatus = "failed"
)

// RecordPayrollRun records a payroll run completion.
func (bm *BusinessMetrics) RecordPayrollRun(ctx context.Context, tenantID uuid.UUID, status PayrollRunStatus) {
	bm.payrollRunTotal.Inc(ctx,
		AttrTenantID.String(tenantID.String()),
		AttrPayrollStatus.String(string(status)),
	)
}

// RecordPayrollNetAmount records the net amount disbursed by a payroll run.
// Amount should be in the smallest currency unit (cents).
func (bm *BusinessMetrics) RecordPayrollNetAmount(ctx context.Context, tenantID uuid.UUID, amountCents int64) {
	bm.payrollNetAmountTotal.Add(ctx, amountCents,
		AttrTenantID.String(tenantID.String()),
	)
}

// RecordPayrollRunWithAmount is a convenience method that records both run count and net amount.
func (bm *BusinessMetrics) RecordPayrollRunWithAmount(ctx context.Context, tenantID uuid.UUID, status PayrollRunStatus, netAmount decimal.Decimal) {
	bm.RecordPayrollRun(ctx, tenantID, status)

	// Convert to cents (multiply by 100)
	amountCents := netAmount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.RecordPayrollNetAmount(ctx, tenantID, amountCents)
}

// =============================================================================
// Workforce Metrics
// =============================================================================

// RecordHeadcount records the current active employee count for a department.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordHeadcount(ctx context.Context, tenantID, departmentID uuid.UUID, count int64) {
	bm.headcount.Record(ctx, count,
		AttrTenantID.String(tenantID.String()),
		AttrDepartmentID.String(departmentID.String()),
	)
}

// RecordPendingLeaveCount records the number of leave requests awaiting approval.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordPendingLeaveCount(ctx context.Context, tenantID uuid.UUID, count int64) {
	bm.leavePendingCount.Record(ctx, count,
		AttrTenantID.String(tenantID.String()),
	)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// TenantProvider provides tenant IDs for periodic metrics collection.
type TenantProvider interface {
	GetActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error)
}

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects workforce metrics every interval (default: 5 minutes).
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, tenantProvider TenantProvider, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, tenantProvider, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, tenantProvider TenantProvider, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectWorkforceMetrics(ctx, tenantProvider)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectWorkforceMetrics(ctx, tenantProvider)
		}
	}
}

// collectWorkforceMetrics collects workforce gauge metrics for all tenants.
func (bm *BusinessMetrics) collectWorkforceMetrics(ctx context.Context, tenantProvider TenantProvider) {
	if bm.workforceProvider == nil {
		bm.logger.Debug("No workforce provider configured, skipping workforce metrics collection")
		return
	}

	tenantIDs, err := tenantProvider.GetActiveTenantIDs(ctx)
	if err != nil {
		bm.logger.Error("Failed to get tenant IDs for metrics collection", zap.Error(err))
		return
	}

	for _, tenantID := range tenantIDs {
		bm.collectTenantWorkforceMetrics(ctx, tenantID)
	}
}

// collectTenantWorkforceMetrics collects workforce metrics for a single tenant.
func (bm *BusinessMetrics) collectTenantWorkforceMetrics(ctx context.Context, tenantID uuid.UUID) {
	// Collect headcount by department
	headcountByDept, err := bm.workforceProvider.GetHeadcountByDepartment(ctx, tenantID)
	if err != nil {
		bm.logger.Warn("Failed to get headcount for tenant",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
	} else {
		for departmentID, count := range headcountByDept {
			bm.RecordHeadcount(ctx, tenantID, departmentID, count)
		}
	}

	// Collect pending leave count
	pendingLeave, err := bm.workforceProvider.GetPendingLeaveCount(ctx, tenantID)
	if err != nil {
		bm.logger.Warn("Failed to get pending leave count for tenant",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
	} else {
		bm.RecordPendingLeaveCount(ctx, tenantID, pendingLeave)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// =============================================================================
// Attribute Key Constants
// =============================================================================

// Business metrics attribute keys not already defined in metrics.go
var (
	// Additional business attributes can be added here
	AttrHireSource = attribute.Key("hire_source")
)
