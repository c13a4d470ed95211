package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

// ---------------------------------------------------------------------------
// MaintenanceJob Tests
// ---------------------------------------------------------------------------

func TestNewMaintenanceJob(t *testing.T) {
	companyID := uuid.New()
	targetDate := time.Now().AddDate(0, 0, -1)

	job := NewMaintenanceJob(companyID, MaintenanceTaskAttendanceFinalize, targetDate, 3)

	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, companyID, job.CompanyID)
	assert.Equal(t, MaintenanceTaskAttendanceFinalize, job.Kind)
	assert.Equal(t, targetDate, job.TargetDate)
	assert.Equal(t, MaintenanceJobStatusPending, job.Status)
	assert.Equal(t, 3, job.MaxRetries)
	assert.Nil(t, job.StartedAt)
	assert.Nil(t, job.CompletedAt)
}

func TestMaintenanceJob_Start(t *testing.T) {
	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskDocumentExpiry, time.Now(), 3)
	job.Error = "previous error"

	job.Start()

	assert.Equal(t, MaintenanceJobStatusRunning, job.Status)
	assert.NotNil(t, job.StartedAt)
	assert.Empty(t, job.Error)
}

func TestMaintenanceJob_Complete(t *testing.T) {
	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 3)
	job.Start()

	job.Complete(42)

	assert.Equal(t, MaintenanceJobStatusSuccess, job.Status)
	assert.NotNil(t, job.CompletedAt)
	assert.Equal(t, 42, job.Processed)
}

func TestMaintenanceJob_Fail(t *testing.T) {
	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskComplianceReview, time.Now(), 3)
	job.Start()

	job.Fail("database unavailable")

	assert.Equal(t, MaintenanceJobStatusFailed, job.Status)
	assert.NotNil(t, job.CompletedAt)
	assert.Equal(t, "database unavailable", job.Error)
}

func TestMaintenanceJob_ShouldRetry(t *testing.T) {
	tests := []struct {
		name       string
		status     MaintenanceJobStatus
		retryCount int
		maxRetries int
		expected   bool
	}{
		{"Failed with retries available", MaintenanceJobStatusFailed, 0, 3, true},
		{"Failed max retries reached", MaintenanceJobStatusFailed, 3, 3, false},
		{"Success should not retry", MaintenanceJobStatusSuccess, 0, 3, false},
		{"Running should not retry", MaintenanceJobStatusRunning, 0, 3, false},
		{"Cancelled should not retry", MaintenanceJobStatusCancelled, 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &MaintenanceJob{
				Status:     tt.status,
				RetryCount: tt.retryCount,
				MaxRetries: tt.maxRetries,
			}
			assert.Equal(t, tt.expected, job.ShouldRetry())
		})
	}
}

func TestMaintenanceJob_ScheduleRetry_ExponentialBackoff(t *testing.T) {
	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 5)
	job.Status = MaintenanceJobStatusFailed
	baseDelay := time.Minute

	// First retry: 1 minute
	job.ScheduleRetry(baseDelay)
	assert.Equal(t, 1, job.RetryCount)
	assert.Equal(t, MaintenanceJobStatusPending, job.Status)
	assert.NotNil(t, job.NextRetryAt)
	firstDelay := time.Until(*job.NextRetryAt)
	assert.True(t, firstDelay > 50*time.Second && firstDelay <= time.Minute+time.Second)

	// Second retry: 2 minutes
	job.Status = MaintenanceJobStatusFailed
	job.ScheduleRetry(baseDelay)
	assert.Equal(t, 2, job.RetryCount)
	secondDelay := time.Until(*job.NextRetryAt)
	assert.True(t, secondDelay > 110*time.Second && secondDelay <= 2*time.Minute+time.Second)

	// Third retry: 4 minutes
	job.Status = MaintenanceJobStatusFailed
	job.ScheduleRetry(baseDelay)
	assert.Equal(t, 3, job.RetryCount)
	thirdDelay := time.Until(*job.NextRetryAt)
	assert.True(t, thirdDelay > 230*time.Second && thirdDelay <= 4*time.Minute+time.Second)
}

// ---------------------------------------------------------------------------
// MaintenanceSchedulerConfig Tests
// ---------------------------------------------------------------------------

func TestMaintenanceSchedulerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  MaintenanceSchedulerConfig
		wantErr bool
	}{
		{
			name:    "Valid default config",
			config:  DefaultMaintenanceSchedulerConfig(),
			wantErr: false,
		},
		{
			name: "Invalid max concurrent jobs",
			config: MaintenanceSchedulerConfig{
				MaxConcurrentJobs: 0,
				JobTimeout:        time.Minute,
			},
			wantErr: true,
		},
		{
			name: "Invalid job timeout",
			config: MaintenanceSchedulerConfig{
				MaxConcurrentJobs: 3,
				JobTimeout:        0,
			},
			wantErr: true,
		},
		{
			name: "Negative retry attempts",
			config: MaintenanceSchedulerConfig{
				MaxConcurrentJobs: 3,
				JobTimeout:        time.Minute,
				RetryAttempts:     -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// MaintenanceScheduler Tests
// ---------------------------------------------------------------------------

// mockMaintenanceExecutor implements MaintenanceExecutor for testing
type mockMaintenanceExecutor struct {
	executeFunc func(ctx context.Context, job *MaintenanceJob) error
	execCount   int32
}

func (m *mockMaintenanceExecutor) Execute(ctx context.Context, job *MaintenanceJob) error {
	atomic.AddInt32(&m.execCount, 1)
	if m.executeFunc != nil {
		return m.executeFunc(ctx, job)
	}
	job.Complete(10)
	return nil
}

func TestNewMaintenanceScheduler(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)

	require.NoError(t, err)
	assert.NotNil(t, scheduler)
}

func TestNewMaintenanceScheduler_InvalidConfig(t *testing.T) {
	config := MaintenanceSchedulerConfig{MaxConcurrentJobs: 0}
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)

	assert.Error(t, err)
	assert.Nil(t, scheduler)
}

func TestMaintenanceScheduler_StartStop(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()

	// Start scheduler
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	// Start again should be idempotent
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	// Stop scheduler
	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	// Stop again should be idempotent
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)
}

func TestMaintenanceScheduler_SubmitJob_NotRunning(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskDocumentExpiry, time.Now(), 3)
	err = scheduler.SubmitJob(job)

	assert.Equal(t, ErrSchedulerNotRunning, err)
}

func TestMaintenanceScheduler_SubmitJob_Success(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 3)
	err = scheduler.SubmitJob(job)
	require.NoError(t, err)

	// Wait for job to be processed
	time.Sleep(100 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	// Check executor was called
	assert.Equal(t, int32(1), atomic.LoadInt32(&executor.execCount))
}

func TestMaintenanceScheduler_JobRetry(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	config.RetryDelay = 10 * time.Millisecond // Short delay for test
	config.JobTimeout = time.Minute

	callCount := int32(0)
	executor := &mockMaintenanceExecutor{
		executeFunc: func(ctx context.Context, job *MaintenanceJob) error {
			count := atomic.AddInt32(&callCount, 1)
			if count < 3 {
				return errors.New("temporary failure")
			}
			job.Complete(10)
			return nil
		},
	}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 5)
	err = scheduler.SubmitJob(job)
	require.NoError(t, err)

	// Wait for retries
	time.Sleep(500 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	// Should have been called 3 times (2 failures + 1 success)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&callCount), int32(3))
}

func TestMaintenanceScheduler_ScheduleTask(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	err = scheduler.ScheduleTask(uuid.New(), MaintenanceTaskDocumentExpiry, time.Now())
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&executor.execCount))
}

func TestMaintenanceScheduler_GetJobHistory(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	// Submit multiple jobs
	for i := 0; i < 5; i++ {
		job := NewMaintenanceJob(uuid.New(), MaintenanceTaskDocumentExpiry, time.Now(), 3)
		err = scheduler.SubmitJob(job)
		require.NoError(t, err)
	}

	// Wait for jobs to complete
	time.Sleep(200 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	// Get history
	history := scheduler.GetJobHistory(10)
	assert.Len(t, history, 5)

	// Get limited history
	limitedHistory := scheduler.GetJobHistory(3)
	assert.Len(t, limitedHistory, 3)
}

func TestMaintenanceScheduler_GetJobHistoryByCompany(t *testing.T) {
	config := DefaultMaintenanceSchedulerConfig()
	executor := &mockMaintenanceExecutor{}
	logger := newTestLogger()

	scheduler, err := NewMaintenanceScheduler(config, executor, logger)
	require.NoError(t, err)

	ctx := context.Background()
	err = scheduler.Start(ctx)
	require.NoError(t, err)

	companyA := uuid.New()
	companyB := uuid.New()

	// Submit jobs for company A
	for i := 0; i < 3; i++ {
		job := NewMaintenanceJob(companyA, MaintenanceTaskAttendanceFinalize, time.Now(), 3)
		err = scheduler.SubmitJob(job)
		require.NoError(t, err)
	}

	// Submit jobs for company B
	for i := 0; i < 2; i++ {
		job := NewMaintenanceJob(companyB, MaintenanceTaskDocumentExpiry, time.Now(), 3)
		err = scheduler.SubmitJob(job)
		require.NoError(t, err)
	}

	time.Sleep(200 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = scheduler.Stop(stopCtx)
	require.NoError(t, err)

	// Get history by company
	historyA := scheduler.GetJobHistoryByCompany(companyA, 10)
	assert.Len(t, historyA, 3)

	historyB := scheduler.GetJobHistoryByCompany(companyB, 10)
	assert.Len(t, historyB, 2)
}

// ---------------------------------------------------------------------------
// HRMaintenanceExecutor Tests
// ---------------------------------------------------------------------------

type mockAttendanceFinalizer struct {
	count int
	err   error
	calls int32
}

func (m *mockAttendanceFinalizer) FinalizeDay(ctx context.Context, companyID uuid.UUID, date time.Time) (int, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.count, m.err
}

type mockDocumentExpirer struct {
	count int
	err   error
	calls int32
}

func (m *mockDocumentExpirer) ExpireDocuments(ctx context.Context, companyID uuid.UUID, asOf time.Time) (int, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.count, m.err
}

type mockComplianceReviewChecker struct {
	count int
	err   error
	calls int32
}

func (m *mockComplianceReviewChecker) ReviewDueCount(ctx context.Context, companyID uuid.UUID) (int, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.count, m.err
}

func newTestExecutor(att *mockAttendanceFinalizer, doc *mockDocumentExpirer, comp *mockComplianceReviewChecker) *HRMaintenanceExecutor {
	return NewHRMaintenanceExecutor(att, doc, comp, newTestLogger())
}

func TestHRMaintenanceExecutor_AttendanceFinalize(t *testing.T) {
	att := &mockAttendanceFinalizer{count: 17}
	executor := newTestExecutor(att, &mockDocumentExpirer{}, &mockComplianceReviewChecker{})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now().AddDate(0, 0, -1), 3)
	err := executor.Execute(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, MaintenanceJobStatusSuccess, job.Status)
	assert.Equal(t, 17, job.Processed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&att.calls))
}

func TestHRMaintenanceExecutor_DocumentExpiry(t *testing.T) {
	doc := &mockDocumentExpirer{count: 4}
	executor := newTestExecutor(&mockAttendanceFinalizer{}, doc, &mockComplianceReviewChecker{})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskDocumentExpiry, time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, 4, job.Processed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&doc.calls))
}

func TestHRMaintenanceExecutor_ComplianceReview(t *testing.T) {
	comp := &mockComplianceReviewChecker{count: 2}
	executor := newTestExecutor(&mockAttendanceFinalizer{}, &mockDocumentExpirer{}, comp)

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskComplianceReview, time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, 2, job.Processed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&comp.calls))
}

func TestHRMaintenanceExecutor_PayrollReminder(t *testing.T) {
	executor := newTestExecutor(&mockAttendanceFinalizer{}, &mockDocumentExpirer{}, &mockComplianceReviewChecker{})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskPayrollReminder, time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, MaintenanceJobStatusSuccess, job.Status)
}

func TestHRMaintenanceExecutor_TaskFailure(t *testing.T) {
	att := &mockAttendanceFinalizer{err: errors.New("db down")}
	executor := newTestExecutor(att, &mockDocumentExpirer{}, &mockComplianceReviewChecker{})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaintenanceFailed)
}

func TestHRMaintenanceExecutor_UnknownKind(t *testing.T) {
	executor := newTestExecutor(&mockAttendanceFinalizer{}, &mockDocumentExpirer{}, &mockComplianceReviewChecker{})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskKind("VACUUM_CARPETS"), time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMaintenanceTask)
}

func TestHRMaintenanceExecutor_CompletedCallback(t *testing.T) {
	executor := newTestExecutor(&mockAttendanceFinalizer{count: 1}, &mockDocumentExpirer{}, &mockComplianceReviewChecker{})

	var callbackJob *MaintenanceJob
	executor.SetOnTaskCompletedCallback(func(ctx context.Context, job *MaintenanceJob) error {
		callbackJob = job
		return nil
	})

	job := NewMaintenanceJob(uuid.New(), MaintenanceTaskAttendanceFinalize, time.Now(), 3)
	err := executor.Execute(context.Background(), job)

	require.NoError(t, err)
	require.NotNil(t, callbackJob)
	assert.Equal(t, job.ID, callbackJob.ID)
}

// ---------------------------------------------------------------------------
// Error Tests
// ---------------------------------------------------------------------------

func TestErrors(t *testing.T) {
	// Ensure all error variables are defined
	assert.NotNil(t, ErrSchedulerNotRunning)
	assert.NotNil(t, ErrJobQueueFull)
	assert.NotNil(t, ErrInvalidConfig)
	assert.NotNil(t, ErrMaintenanceFailed)
	assert.NotNil(t, ErrMaintenanceTimeout)
	assert.NotNil(t, ErrUnknownMaintenanceTask)
}
