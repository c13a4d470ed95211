package scheduler

import "errors"

var (
	// ErrSchedulerNotRunning is returned when trying to submit a job to a stopped scheduler
	ErrSchedulerNotRunning = errors.New("scheduler is not running")

	// ErrJobQueueFull is returned when the job queue is full
	ErrJobQueueFull = errors.New("job queue is full")

	// ErrInvalidReportType is returned for unknown report types
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrReportComputationFailed is returned when report computation fails
	ErrReportComputationFailed = errors.New("report computation failed")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid scheduler configuration")

	// ---------------------------------------------------------------------------
	// Maintenance Errors
	// ---------------------------------------------------------------------------

	// ErrMaintenanceFailed is returned when a maintenance task fails
	ErrMaintenanceFailed = errors.New("maintenance task failed")

	// ErrMaintenanceTimeout is returned when a maintenance task times out
	ErrMaintenanceTimeout = errors.New("maintenance task timed out")

	// ErrUnknownMaintenanceTask is returned for unknown maintenance task kinds
	ErrUnknownMaintenanceTask = errors.New("unknown maintenance task kind")
)
