package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Maintenance Job Types
// ---------------------------------------------------------------------------

// MaintenanceTaskKind identifies a recurring HR maintenance task
type MaintenanceTaskKind string

const (
	// MaintenanceTaskAttendanceFinalize fills in absent/weekend/holiday/on-leave
	// statuses for attendance days left open on the target date
	MaintenanceTaskAttendanceFinalize MaintenanceTaskKind = "ATTENDANCE_FINALIZE"
	// MaintenanceTaskDocumentExpiry marks documents past their expiry date as expired
	MaintenanceTaskDocumentExpiry MaintenanceTaskKind = "DOCUMENT_EXPIRY"
	// MaintenanceTaskComplianceReview flags compliance requirements due for review
	MaintenanceTaskComplianceReview MaintenanceTaskKind = "COMPLIANCE_REVIEW"
	// MaintenanceTaskPayrollReminder notifies that a payroll period is closing
	MaintenanceTaskPayrollReminder MaintenanceTaskKind = "PAYROLL_REMINDER"
)

// AllMaintenanceTaskKinds returns the task kinds run by the daily sweep
func AllMaintenanceTaskKinds() []MaintenanceTaskKind {
	return []MaintenanceTaskKind{
		MaintenanceTaskAttendanceFinalize,
		MaintenanceTaskDocumentExpiry,
		MaintenanceTaskComplianceReview,
	}
}

// MaintenanceJobStatus represents the status of a maintenance job
type MaintenanceJobStatus string

const (
	MaintenanceJobStatusPending   MaintenanceJobStatus = "PENDING"
	MaintenanceJobStatusRunning   MaintenanceJobStatus = "RUNNING"
	MaintenanceJobStatusSuccess   MaintenanceJobStatus = "SUCCESS"
	MaintenanceJobStatusFailed    MaintenanceJobStatus = "FAILED"
	MaintenanceJobStatusCancelled MaintenanceJobStatus = "CANCELLED"
)

// MaintenanceJob represents one maintenance task run for one company
type MaintenanceJob struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Kind        MaintenanceTaskKind
	TargetDate  time.Time
	Status      MaintenanceJobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time

	// Processed is the number of records the task touched
	Processed int
}

// NewMaintenanceJob creates a new maintenance job
func NewMaintenanceJob(companyID uuid.UUID, kind MaintenanceTaskKind, targetDate time.Time, maxRetries int) *MaintenanceJob {
	return &MaintenanceJob{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Kind:       kind,
		TargetDate: targetDate,
		Status:     MaintenanceJobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *MaintenanceJob) Start() {
	now := time.Now()
	j.Status = MaintenanceJobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *MaintenanceJob) Complete(processed int) {
	now := time.Now()
	j.Processed = processed
	j.CompletedAt = &now
	j.Status = MaintenanceJobStatusSuccess
}

// Fail marks the job as failed
func (j *MaintenanceJob) Fail(err string) {
	now := time.Now()
	j.Status = MaintenanceJobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *MaintenanceJob) ShouldRetry() bool {
	return j.Status == MaintenanceJobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry schedules the job for retry with exponential backoff
func (j *MaintenanceJob) ScheduleRetry(baseDelay time.Duration) {
	j.RetryCount++
	j.Status = MaintenanceJobStatusPending
	// Exponential backoff: baseDelay * 2^(retryCount-1)
	delay := baseDelay * time.Duration(1<<(j.RetryCount-1))
	if delay > 30*time.Minute {
		delay = 30 * time.Minute // Cap at 30 minutes
	}
	nextRetry := time.Now().Add(delay)
	j.NextRetryAt = &nextRetry
	j.Error = ""
}

// ---------------------------------------------------------------------------
// MaintenanceExecutor Interface
// ---------------------------------------------------------------------------

// MaintenanceExecutor executes maintenance jobs
type MaintenanceExecutor interface {
	// Execute runs the maintenance task described by the job
	Execute(ctx context.Context, job *MaintenanceJob) error
}

// ---------------------------------------------------------------------------
// MaintenanceSchedulerConfig
// ---------------------------------------------------------------------------

// MaintenanceSchedulerConfig holds configuration for the maintenance scheduler
type MaintenanceSchedulerConfig struct {
	// Enabled indicates if the scheduler is enabled
	Enabled bool
	// MaxConcurrentJobs is the maximum number of concurrent maintenance jobs
	MaxConcurrentJobs int
	// JobTimeout is the maximum time a job can run
	JobTimeout time.Duration
	// RetryAttempts is the number of retry attempts for failed jobs
	RetryAttempts int
	// RetryDelay is the base delay between retries (with exponential backoff)
	RetryDelay time.Duration
}

// DefaultMaintenanceSchedulerConfig returns default configuration
func DefaultMaintenanceSchedulerConfig() MaintenanceSchedulerConfig {
	return MaintenanceSchedulerConfig{
		Enabled:           true,
		MaxConcurrentJobs: 3,
		JobTimeout:        15 * time.Minute,
		RetryAttempts:     3,
		RetryDelay:        1 * time.Minute,
	}
}

// Validate validates the configuration
func (c *MaintenanceSchedulerConfig) Validate() error {
	if c.MaxConcurrentJobs <= 0 {
		return ErrInvalidConfig
	}
	if c.JobTimeout <= 0 {
		return ErrInvalidConfig
	}
	if c.RetryAttempts < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// ---------------------------------------------------------------------------
// MaintenanceScheduler
// ---------------------------------------------------------------------------

// MaintenanceScheduler manages queued HR maintenance jobs
type MaintenanceScheduler struct {
	config   MaintenanceSchedulerConfig
	executor MaintenanceExecutor
	logger   *zap.Logger

	jobs      chan *MaintenanceJob
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	// Job history for monitoring (in-memory, limited size)
	historyMu  sync.RWMutex
	history    []*MaintenanceJob
	maxHistory int
}

// NewMaintenanceScheduler creates a new maintenance scheduler
func NewMaintenanceScheduler(config MaintenanceSchedulerConfig, executor MaintenanceExecutor, logger *zap.Logger) (*MaintenanceScheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &MaintenanceScheduler{
		config:     config,
		executor:   executor,
		logger:     logger,
		jobs:       make(chan *MaintenanceJob, 100),
		history:    make([]*MaintenanceJob, 0, 100),
		maxHistory: 100,
	}, nil
}

// Start starts the scheduler
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Start worker pool
	for i := 0; i < s.config.MaxConcurrentJobs; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.logger.Info("Maintenance scheduler started",
		zap.Int("workers", s.config.MaxConcurrentJobs),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *MaintenanceScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	// Close job channel
	close(s.jobs)

	// Wait for workers to finish with timeout
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Maintenance scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Maintenance scheduler stop timed out")
		return ctx.Err()
	}
}

// SubmitJob submits a job for execution
func (s *MaintenanceScheduler) SubmitJob(job *MaintenanceJob) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	select {
	case s.jobs <- job:
		s.logger.Debug("Maintenance job submitted",
			zap.String("job_id", job.ID.String()),
			zap.String("company_id", job.CompanyID.String()),
			zap.String("kind", string(job.Kind)),
		)
		return nil
	default:
		return ErrJobQueueFull
	}
}

// worker processes jobs from the queue
func (s *MaintenanceScheduler) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	s.logger.Debug("Maintenance worker started", zap.Int("worker_id", workerID))

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Maintenance worker stopping", zap.Int("worker_id", workerID))
			return
		case job, ok := <-s.jobs:
			if !ok {
				s.logger.Debug("Maintenance job channel closed", zap.Int("worker_id", workerID))
				return
			}
			s.processJob(ctx, job, workerID)
		}
	}
}

// processJob executes a single job
func (s *MaintenanceScheduler) processJob(ctx context.Context, job *MaintenanceJob, workerID int) {
	// Check if job is ready to run (for retries)
	if job.NextRetryAt != nil && time.Now().Before(*job.NextRetryAt) {
		// Re-queue the job
		select {
		case s.jobs <- job:
		default:
			s.logger.Warn("Failed to re-queue maintenance job for retry",
				zap.String("job_id", job.ID.String()),
			)
		}
		return
	}

	job.Start()
	s.logger.Info("Processing maintenance job",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("company_id", job.CompanyID.String()),
		zap.String("kind", string(job.Kind)),
		zap.Time("target_date", job.TargetDate),
	)

	// Create context with timeout
	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	// Execute the job
	err := s.executor.Execute(jobCtx, job)
	if err != nil {
		job.Fail(err.Error())
		s.logger.Error("Maintenance job failed",
			zap.Int("worker_id", workerID),
			zap.String("job_id", job.ID.String()),
			zap.String("company_id", job.CompanyID.String()),
			zap.String("kind", string(job.Kind)),
			zap.Error(err),
		)

		// Check if should retry
		if job.ShouldRetry() {
			job.ScheduleRetry(s.config.RetryDelay)
			s.logger.Info("Maintenance job scheduled for retry",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount),
				zap.Int("max_retries", job.MaxRetries),
				zap.Time("next_retry_at", *job.NextRetryAt),
			)
			// Re-submit job
			select {
			case s.jobs <- job:
			default:
				s.logger.Warn("Failed to re-queue maintenance job for retry",
					zap.String("job_id", job.ID.String()),
				)
			}
		}

		// Add to history
		s.addToHistory(job)
		return
	}

	s.logger.Info("Maintenance job completed",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("company_id", job.CompanyID.String()),
		zap.String("kind", string(job.Kind)),
		zap.String("status", string(job.Status)),
		zap.Int("processed", job.Processed),
	)

	// Add to history
	s.addToHistory(job)
}

// addToHistory adds a completed job to history
func (s *MaintenanceScheduler) addToHistory(job *MaintenanceJob) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	// Add to front
	s.history = append([]*MaintenanceJob{job}, s.history...)

	// Trim if over limit
	if len(s.history) > s.maxHistory {
		s.history = s.history[:s.maxHistory]
	}
}

// GetJobHistory returns recent job history
func (s *MaintenanceScheduler) GetJobHistory(limit int) []*MaintenanceJob {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}

	result := make([]*MaintenanceJob, limit)
	copy(result, s.history[:limit])
	return result
}

// GetJobHistoryByCompany returns job history for a specific company
func (s *MaintenanceScheduler) GetJobHistoryByCompany(companyID uuid.UUID, limit int) []*MaintenanceJob {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()

	result := make([]*MaintenanceJob, 0, limit)
	for _, job := range s.history {
		if job.CompanyID == companyID {
			result = append(result, job)
			if len(result) >= limit {
				break
			}
		}
	}
	return result
}

// ScheduleTask queues a maintenance task for a company
func (s *MaintenanceScheduler) ScheduleTask(companyID uuid.UUID, kind MaintenanceTaskKind, targetDate time.Time) error {
	job := NewMaintenanceJob(companyID, kind, targetDate, s.config.RetryAttempts)
	return s.SubmitJob(job)
}
