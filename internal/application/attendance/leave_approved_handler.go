package attendance

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
)

// LeaveApprovedHandler handles LeaveApprovedEvent and marks the approved
// days on the employee's attendance records
type LeaveApprovedHandler struct {
	attendanceService *AttendanceService
	logger            *zap.Logger
}

// NewLeaveApprovedHandler creates a new handler for leave approved events
func NewLeaveApprovedHandler(
	attendanceService *AttendanceService,
	logger *zap.Logger,
) *LeaveApprovedHandler {
	return &LeaveApprovedHandler{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LeaveApprovedHandler) EventTypes() []string {
	return []string{leave.EventTypeLeaveApproved}
}

// Handle processes a LeaveApprovedEvent
func (h *LeaveApprovedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	approvedEvent, ok := event.(*leave.LeaveApprovedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", leave.EventTypeLeaveApproved),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			leave.EventTypeLeaveApproved, event.EventType())
	}

	startDate, err := time.Parse("2006-01-02", approvedEvent.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", approvedEvent.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", approvedEvent.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", approvedEvent.EndDate, err)
	}

	h.logger.Info("processing leave approved event",
		zap.String("request_id", approvedEvent.AggregateID().String()),
		zap.String("employee_id", approvedEvent.EmployeeID.String()),
		zap.String("leave_type", string(approvedEvent.LeaveType)),
		zap.String("start_date", approvedEvent.StartDate),
		zap.String("end_date", approvedEvent.EndDate),
	)

	var lastErr error
	markedCount := 0
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if err := h.attendanceService.MarkOnLeave(ctx, event.TenantID(), approvedEvent.EmployeeID, date); err != nil {
			h.logger.Error("failed to mark attendance day as on leave",
				zap.String("request_id", approvedEvent.AggregateID().String()),
				zap.String("employee_id", approvedEvent.EmployeeID.String()),
				zap.Time("date", date),
				zap.Error(err),
			)
			lastErr = err
			// Continue marking the remaining days even if one fails
			continue
		}
		markedCount++
	}

	h.logger.Info("leave days marked on attendance",
		zap.String("request_id", approvedEvent.AggregateID().String()),
		zap.Int("marked_count", markedCount),
		zap.Bool("has_errors", lastErr != nil),
	)

	if lastErr != nil {
		return fmt.Errorf("some leave days failed to process: %w", lastErr)
	}

	return nil
}

// Ensure LeaveApprovedHandler implements shared.EventHandler
var _ shared.EventHandler = (*LeaveApprovedHandler)(nil)
