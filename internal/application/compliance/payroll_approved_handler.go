package compliance

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
)

// PayrollApprovedHandler handles PayrollApprovedEvent and records the
// statutory remittance obligation the approved run creates
type PayrollApprovedHandler struct {
	complianceService *ComplianceService
	logger            *zap.Logger
}

// NewPayrollApprovedHandler creates a new handler for payroll approved events
func NewPayrollApprovedHandler(
	complianceService *ComplianceService,
	logger *zap.Logger,
) *PayrollApprovedHandler {
	return &PayrollApprovedHandler{
		complianceService: complianceService,
		logger:            logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *PayrollApprovedHandler) EventTypes() []string {
	return []string{payroll.EventTypePayrollApproved}
}

// Handle processes a PayrollApprovedEvent
func (h *PayrollApprovedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	approvedEvent, ok := event.(*payroll.PayrollApprovedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", payroll.EventTypePayrollApproved),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			payroll.EventTypePayrollApproved, event.EventType())
	}

	periodStart, err := time.Parse("2006-01-02", approvedEvent.PeriodStart)
	if err != nil {
		return fmt.Errorf("invalid period start %q: %w", approvedEvent.PeriodStart, err)
	}
	periodEnd, err := time.Parse("2006-01-02", approvedEvent.PeriodEnd)
	if err != nil {
		return fmt.Errorf("invalid period end %q: %w", approvedEvent.PeriodEnd, err)
	}

	h.logger.Info("processing payroll approved event",
		zap.String("run_id", approvedEvent.AggregateID().String()),
		zap.String("number", approvedEvent.Number),
		zap.String("period_start", approvedEvent.PeriodStart),
		zap.String("period_end", approvedEvent.PeriodEnd),
	)

	if err := h.complianceService.RecordPayrollFiling(ctx, event.TenantID(),
		approvedEvent.Number, approvedEvent.ApprovedBy, periodStart, periodEnd); err != nil {
		h.logger.Error("failed to record payroll filing",
			zap.String("run_id", approvedEvent.AggregateID().String()),
			zap.String("number", approvedEvent.Number),
			zap.Error(err),
		)
		return fmt.Errorf("failed to record payroll filing: %w", err)
	}

	return nil
}

// Ensure PayrollApprovedHandler implements shared.EventHandler
var _ shared.EventHandler = (*PayrollApprovedHandler)(nil)
