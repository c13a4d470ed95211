package attendance

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveCancelledHandler handles LeaveCancelledEvent and reverts the leave
// markings on the employee's attendance records
type LeaveCancelledHandler struct {
	attendanceService *AttendanceService
	logger            *zap.Logger
}

// NewLeaveCancelledHandler creates a new handler for leave cancelled events
func NewLeaveCancelledHandler(
	attendanceService *AttendanceService,
	logger *zap.Logger,
) *LeaveCancelledHandler {
	return &LeaveCancelledHandler{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LeaveCancelledHandler) EventTypes() []string {
	return []string{leave.EventTypeLeaveCancelled}
}

// Handle processes a LeaveCancelledEvent
func (h *LeaveCancelledHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	cancelledEvent, ok := event.(*leave.LeaveCancelledEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", leave.EventTypeLeaveCancelled),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			leave.EventTypeLeaveCancelled, event.EventType())
	}

	// Only approved requests had their days marked on attendance
	if !cancelledEvent.WasApproved {
		return nil
	}

	startDate, err := time.Parse("2006-01-02", cancelledEvent.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", cancelledEvent.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", cancelledEvent.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", cancelledEvent.EndDate, err)
	}

	h.logger.Info("processing leave cancelled event",
		zap.String("request_id", cancelledEvent.AggregateID().String()),
		zap.String("employee_id", cancelledEvent.EmployeeID.String()),
		zap.String("final_status", string(cancelledEvent.FinalStatus)),
		zap.String("start_date", cancelledEvent.StartDate),
		zap.String("end_date", cancelledEvent.EndDate),
	)

	var lastErr error
	clearedCount := 0
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if err := h.attendanceService.ClearOnLeave(ctx, event.TenantID(), cancelledEvent.EmployeeID, date); err != nil {
			h.logger.Error("failed to clear leave marking on attendance day",
				zap.String("request_id", cancelledEvent.AggregateID().String()),
				zap.String("employee_id", cancelledEvent.EmployeeID.String()),
				zap.Time("date", date),
				zap.Error(err),
			)
			lastErr = err
			// Continue clearing the remaining days even if one fails
			continue
		}
		clearedCount++
	}

	h.logger.Info("leave days cleared on attendance",
		zap.String("request_id", cancelledEvent.AggregateID().String()),
		zap.Int("cleared_count", clearedCount),
		zap.Bool("has_errors", lastErr != nil),
	)

	if lastErr != nil {
		return fmt.Errorf("some leave days failed to process: %w", lastErr)
	}

	return nil
}

// Ensure LeaveCancelledHandler implements shared.EventHandler
var _ shared.EventHandler = (*LeaveCancelledHandler)(nil)
