package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/attendance"
	"github.com/hrms/backend/internal/domain/leave"
	"github.com/hrms/backend/internal/domain/shared"
)

func newCancelledEvent(companyID, employeeID uuid.UUID, start, end string, wasApproved bool) *leave.LeaveCancelledEvent {
	return &leave.LeaveCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(leave.EventTypeLeaveCancelled,
			leave.AggregateTypeLeaveRequest, uuid.New(), companyID),
		EmployeeID:  employeeID,
		LeaveType:   leave.LeaveTypeAnnual,
		FinalStatus: leave.RequestStatusCancelled,
		StartDate:   start,
		EndDate:     end,
		WasApproved: wasApproved,
	}
}

func TestLeaveCancelledHandler_ClearsMarkedDays(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	svc, mocks := newAttendanceService()
	handler := NewLeaveCancelledHandler(svc, zap.NewNop())

	assert.Equal(t, []string{leave.EventTypeLeaveCancelled}, handler.EventTypes())

	for day := 6; day <= 8; day++ {
		date := time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
		marked, err := attendance.NewAttendanceDay(companyID, employeeID, date)
		require.NoError(t, err)
		require.NoError(t, marked.MarkOnLeave())

		mocks.dayRepo.On("FindByEmployeeAndDate", ctx, companyID, employeeID, date).Return(marked, nil)
		mocks.dayRepo.On("Save", ctx, marked).Return(nil)
	}

	event := newCancelledEvent(companyID, employeeID, "2024-05-06", "2024-05-08", true)
	err := handler.Handle(ctx, event)

	require.NoError(t, err)
	mocks.dayRepo.AssertExpectations(t)
	mocks.dayRepo.AssertNumberOfCalls(t, "Save", 3)
}

func TestLeaveCancelledHandler_IgnoresUnapprovedRequests(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newAttendanceService()
	handler := NewLeaveCancelledHandler(svc, zap.NewNop())

	event := newCancelledEvent(uuid.New(), uuid.New(), "2024-05-06", "2024-05-08", false)
	err := handler.Handle(ctx, event)

	require.NoError(t, err)
	mocks.dayRepo.AssertNotCalled(t, "FindByEmployeeAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
