package leave

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// EmployeeHiredHandler handles EmployeeHiredEvent and allocates the leave
// balances for the new hire's first year
type EmployeeHiredHandler struct {
	leaveService *LeaveService
	logger       *zap.Logger
}

// NewEmployeeHiredHandler creates a new handler for employee hired events
func NewEmployeeHiredHandler(
	leaveService *LeaveService,
	logger *zap.Logger,
) *EmployeeHiredHandler {
	return &EmployeeHiredHandler{
		leaveService: leaveService,
		logger:       logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *EmployeeHiredHandler) EventTypes() []string {
	return []string{workforce.EventTypeEmployeeHired}
}

// Handle processes an EmployeeHiredEvent
func (h *EmployeeHiredHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	hiredEvent, ok := event.(*workforce.EmployeeHiredEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", workforce.EventTypeEmployeeHired),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			workforce.EventTypeEmployeeHired, event.EventType())
	}

	hireDate, err := time.Parse("2006-01-02", hiredEvent.HireDate)
	if err != nil {
		return fmt.Errorf("invalid hire date %q: %w", hiredEvent.HireDate, err)
	}

	h.logger.Info("allocating leave balances for new hire",
		zap.String("employee_id", hiredEvent.AggregateID().String()),
		zap.String("employee_code", hiredEvent.Code),
		zap.Int("year", hireDate.Year()),
	)

	// Allocation skips balances that already exist, so redelivery is safe
	if err := h.leaveService.AllocateYearlyBalances(ctx, event.TenantID(), hiredEvent.AggregateID(), hireDate.Year()); err != nil {
		h.logger.Error("failed to allocate leave balances",
			zap.String("employee_id", hiredEvent.AggregateID().String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to allocate leave balances: %w", err)
	}

	return nil
}

// Ensure EmployeeHiredHandler implements shared.EventHandler
var _ shared.EventHandler = (*EmployeeHiredHandler)(nil)
