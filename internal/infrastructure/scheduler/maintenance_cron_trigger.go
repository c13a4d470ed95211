package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
)

// ---------------------------------------------------------------------------
// MaintenanceCronTriggerConfig
// ---------------------------------------------------------------------------

// MaintenanceCronTriggerConfig holds configuration for the maintenance cron trigger
type MaintenanceCronTriggerConfig struct {
	// CronHour is the hour (0-23) to run the daily sweep
	CronHour int
	// CronMinute is the minute (0-59) to run the daily sweep
	CronMinute int
	// PayrollReminderDay is the day of month on which the payroll closing
	// reminder fires (monthly payroll preparation)
	PayrollReminderDay int
}

// DefaultMaintenanceCronTriggerConfig returns default configuration
// Defaults to running at 1:30 AM daily, payroll reminder on the 25th
func DefaultMaintenanceCronTriggerConfig() MaintenanceCronTriggerConfig {
	return MaintenanceCronTriggerConfig{
		CronHour:           1,
		CronMinute:         30,
		PayrollReminderDay: 25,
	}
}

// ---------------------------------------------------------------------------
// MaintenanceCronTrigger
// ---------------------------------------------------------------------------

// MaintenanceCronTrigger runs the daily HR maintenance sweep across all
// active companies
type MaintenanceCronTrigger struct {
	config      MaintenanceCronTriggerConfig
	scheduler   *MaintenanceScheduler
	companyRepo identity.CompanyRepository
	logger      *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	lastRunAt *time.Time
	nextRunAt *time.Time
}

// NewMaintenanceCronTrigger creates a new maintenance cron trigger
func NewMaintenanceCronTrigger(
	config MaintenanceCronTriggerConfig,
	scheduler *MaintenanceScheduler,
	companyRepo identity.CompanyRepository,
	logger *zap.Logger,
) *MaintenanceCronTrigger {
	return &MaintenanceCronTrigger{
		config:      config,
		scheduler:   scheduler,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Start starts the cron trigger
func (c *MaintenanceCronTrigger) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = true
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.calculateNextRunTime()

	c.wg.Add(1)
	go c.runLoop(ctx)

	c.logger.Info("Maintenance cron trigger started",
		zap.Int("cron_hour", c.config.CronHour),
		zap.Int("cron_minute", c.config.CronMinute),
		zap.Timep("next_run_at", c.nextRunAt),
	)

	return nil
}

// Stop stops the cron trigger
func (c *MaintenanceCronTrigger) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = false
	c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("Maintenance cron trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop checks every minute whether the daily sweep is due
func (c *MaintenanceCronTrigger) runLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if c.shouldRun(now) {
				c.runDailySweep(ctx)
				c.calculateNextRunTime()
			}
		}
	}
}

// shouldRun checks if the sweep should run at the given time
func (c *MaintenanceCronTrigger) shouldRun(now time.Time) bool {
	return now.Hour() == c.config.CronHour && now.Minute() == c.config.CronMinute
}

// calculateNextRunTime calculates the next run time
func (c *MaintenanceCronTrigger) calculateNextRunTime() {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), c.config.CronHour, c.config.CronMinute, 0, 0, now.Location())

	if now.After(next) {
		next = next.AddDate(0, 0, 1)
	}

	c.mu.Lock()
	c.nextRunAt = &next
	c.mu.Unlock()
}

// runDailySweep schedules the maintenance tasks for every active company
func (c *MaintenanceCronTrigger) runDailySweep(ctx context.Context) {
	c.logger.Info("Starting daily maintenance sweep")

	now := time.Now()
	c.mu.Lock()
	c.lastRunAt = &now
	c.mu.Unlock()

	companies, err := c.companyRepo.FindActive(ctx, shared.Filter{})
	if err != nil {
		c.logger.Error("Failed to fetch active companies for maintenance sweep", zap.Error(err))
		return
	}

	// Attendance finalization targets the previous day; expiry and review
	// sweeps target today
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	scheduled := 0
	for _, company := range companies {
		for _, kind := range AllMaintenanceTaskKinds() {
			targetDate := today
			if kind == MaintenanceTaskAttendanceFinalize {
				targetDate = yesterday
			}
			if err := c.scheduler.ScheduleTask(company.ID, kind, targetDate); err != nil {
				c.logger.Error("Failed to schedule maintenance task",
					zap.String("company_id", company.ID.String()),
					zap.String("kind", string(kind)),
					zap.Error(err),
				)
				continue
			}
			scheduled++
		}

		if now.Day() == c.config.PayrollReminderDay {
			periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, -1)
			if err := c.scheduler.ScheduleTask(company.ID, MaintenanceTaskPayrollReminder, periodEnd); err != nil {
				c.logger.Error("Failed to schedule payroll reminder",
					zap.String("company_id", company.ID.String()),
					zap.Error(err),
				)
				continue
			}
			scheduled++
		}
	}

	c.logger.Info("Daily maintenance sweep scheduled",
		zap.Int("company_count", len(companies)),
		zap.Int("jobs_scheduled", scheduled),
	)
}

// TriggerManualSweep runs the sweep immediately for a single company
func (c *MaintenanceCronTrigger) TriggerManualSweep(ctx context.Context, companyID uuid.UUID, targetDate time.Time) error {
	c.mu.Lock()
	if !c.isRunning {
		c.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	c.mu.Unlock()

	for _, kind := range AllMaintenanceTaskKinds() {
		if err := c.scheduler.ScheduleTask(companyID, kind, targetDate); err != nil {
			return err
		}
	}

	c.logger.Info("Manual maintenance sweep triggered",
		zap.String("company_id", companyID.String()),
		zap.Time("target_date", targetDate),
	)
	return nil
}

// GetStatus returns the current status of the cron trigger
func (c *MaintenanceCronTrigger) GetStatus() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]any{
		"is_running":  c.isRunning,
		"cron_hour":   c.config.CronHour,
		"cron_minute": c.config.CronMinute,
		"last_run_at": c.lastRunAt,
		"next_run_at": c.nextRunAt,
		"task_kinds":  AllMaintenanceTaskKinds(),
	}
}
