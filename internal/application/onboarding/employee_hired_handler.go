package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// EmployeeHiredHandler handles EmployeeHiredEvent and creates the default
// onboarding checklist for the new hire
type EmployeeHiredHandler struct {
	onboardingService *OnboardingService
	logger            *zap.Logger
}

// NewEmployeeHiredHandler creates a new handler for employee hired events
func NewEmployeeHiredHandler(
	onboardingService *OnboardingService,
	logger *zap.Logger,
) *EmployeeHiredHandler {
	return &EmployeeHiredHandler{
		onboardingService: onboardingService,
		logger:            logger,
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

	h.logger.Info("processing employee hired event",
		zap.String("employee_id", hiredEvent.AggregateID().String()),
		zap.String("employee_code", hiredEvent.Code),
		zap.String("hire_date", hiredEvent.HireDate),
	)

	startDate, err := time.Parse("2006-01-02", hiredEvent.HireDate)
	if err != nil {
		return fmt.Errorf("invalid hire date %q: %w", hiredEvent.HireDate, err)
	}

	input := CreateChecklistInput{
		CompanyID:  event.TenantID(),
		EmployeeID: hiredEvent.AggregateID(),
		StartDate:  startDate,
	}

	checklist, err := h.onboardingService.CreateChecklist(ctx, input)
	if err != nil {
		// An open checklist may already exist when the event is redelivered
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "CHECKLIST_EXISTS" {
			h.logger.Info("onboarding checklist already exists, skipping",
				zap.String("employee_id", hiredEvent.AggregateID().String()),
			)
			return nil
		}
		h.logger.Error("failed to create onboarding checklist",
			zap.String("employee_id", hiredEvent.AggregateID().String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create onboarding checklist: %w", err)
	}

	h.logger.Info("onboarding checklist created for new hire",
		zap.String("employee_id", hiredEvent.AggregateID().String()),
		zap.String("checklist_id", checklist.ID.String()),
		zap.Int("tasks", len(checklist.Tasks)),
	)

	return nil
}

// Ensure EmployeeHiredHandler implements shared.EventHandler
var _ shared.EventHandler = (*EmployeeHiredHandler)(nil)
