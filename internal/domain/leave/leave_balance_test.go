package leave

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/backend/internal/domain/shared"
)

func newTestBalance(t *testing.T, allocated int64) *LeaveBalance {
	t.Helper()
	balance, err := NewLeaveBalance(uuid.New(), uuid.New(), LeaveTypeAnnual, 2024, decimal.NewFromInt(allocated))
	require.NoError(t, err)
	return balance
}

func TestNewLeaveBalance(t *testing.T) {
	t.Run("creates balance", func(t *testing.T) {
		companyID := uuid.New()
		employeeID := uuid.New()

		balance, err := NewLeaveBalance(companyID, employeeID, LeaveTypeAnnual, 2024, decimal.NewFromInt(21))

		require.NoError(t, err)
		assert.Equal(t, companyID, balance.TenantID)
		assert.Equal(t, employeeID, balance.EmployeeID)
		assert.Equal(t, 2024, balance.Year)
		assert.True(t, decimal.NewFromInt(21).Equal(balance.Available()))
	})

	t.Run("fails with negative allocation", func(t *testing.T) {
		_, err := NewLeaveBalance(uuid.New(), uuid.New(), LeaveTypeAnnual, 2024, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("fails with year out of range", func(t *testing.T) {
		_, err := NewLeaveBalance(uuid.New(), uuid.New(), LeaveTypeAnnual, 1995, decimal.NewFromInt(21))
		assert.Error(t, err)
	})
}

func TestLeaveBalance_ReserveLifecycle(t *testing.T) {
	t.Run("reserve moves days to pending", func(t *testing.T) {
		balance := newTestBalance(t, 21)

		err := balance.Reserve(decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(balance.Pending))
		assert.True(t, decimal.NewFromInt(16).Equal(balance.Available()))
	})

	t.Run("reserve fails beyond available", func(t *testing.T) {
		balance := newTestBalance(t, 3)

		err := balance.Reserve(decimal.NewFromInt(5))

		assert.ErrorIs(t, err, shared.ErrInsufficientBalance)
		assert.True(t, balance.Pending.IsZero())
	})

	t.Run("consume converts pending to used", func(t *testing.T) {
		balance := newTestBalance(t, 21)
		require.NoError(t, balance.Reserve(decimal.NewFromInt(5)))

		err := balance.Consume(decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, balance.Pending.IsZero())
		assert.True(t, decimal.NewFromInt(5).Equal(balance.Used))
		assert.True(t, decimal.NewFromInt(16).Equal(balance.Available()))
	})

	t.Run("release returns pending days", func(t *testing.T) {
		balance := newTestBalance(t, 21)
		require.NoError(t, balance.Reserve(decimal.NewFromInt(5)))

		err := balance.Release(decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, balance.Pending.IsZero())
		assert.True(t, decimal.NewFromInt(21).Equal(balance.Available()))
	})

	t.Run("release fails beyond pending", func(t *testing.T) {
		balance := newTestBalance(t, 21)
		require.NoError(t, balance.Reserve(decimal.NewFromInt(2)))

		err := balance.Release(decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("refund returns used days", func(t *testing.T) {
		balance := newTestBalance(t, 21)
		require.NoError(t, balance.Reserve(decimal.NewFromInt(5)))
		require.NoError(t, balance.Consume(decimal.NewFromInt(5)))

		err := balance.Refund(decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, balance.Used.IsZero())
		assert.True(t, decimal.NewFromInt(21).Equal(balance.Available()))
	})

	t.Run("supports half days", func(t *testing.T) {
		balance := newTestBalance(t, 10)
		require.NoError(t, balance.Reserve(decimal.NewFromFloat(0.5)))
		require.NoError(t, balance.Consume(decimal.NewFromFloat(0.5)))

		assert.True(t, decimal.NewFromFloat(9.5).Equal(balance.Available()))
	})
}

func TestLeaveBalance_CarryForwardAndAdjust(t *testing.T) {
	t.Run("carried forward adds to available", func(t *testing.T) {
		balance := newTestBalance(t, 21)

		require.NoError(t, balance.SetCarriedForward(decimal.NewFromInt(4)))

		assert.True(t, decimal.NewFromInt(25).Equal(balance.Available()))
	})

	t.Run("adjust cannot drop below used and pending", func(t *testing.T) {
		balance := newTestBalance(t, 21)
		require.NoError(t, balance.Reserve(decimal.NewFromInt(5)))
		require.NoError(t, balance.Consume(decimal.NewFromInt(5)))
		require.NoError(t, balance.Reserve(decimal.NewFromInt(3)))

		err := balance.Adjust(decimal.NewFromInt(7))
		assert.Error(t, err)

		require.NoError(t, balance.Adjust(decimal.NewFromInt(10)))
		assert.True(t, decimal.NewFromInt(2).Equal(balance.Available()))
	})
}

func TestLeavePolicy(t *testing.T) {
	companyID := uuid.New()
	effectiveFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newPolicy := func(t *testing.T) *LeavePolicy {
		t.Helper()
		policy, err := NewLeavePolicy(companyID, LeaveTypeAnnual, decimal.NewFromInt(21), effectiveFrom)
		require.NoError(t, err)
		return policy
	}

	t.Run("creates active policy", func(t *testing.T) {
		policy := newPolicy(t)
		assert.True(t, policy.IsActive)
		assert.Equal(t, AccrualYearly, policy.Accrual)
		assert.True(t, policy.IsEffective(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, policy.IsEffective(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("validates request against rules", func(t *testing.T) {
		policy := newPolicy(t)
		require.NoError(t, policy.SetRules(3, 10, 7))

		assert.NoError(t, policy.ValidateRequest(decimal.NewFromInt(5), 6, 14))

		err := policy.ValidateRequest(decimal.NewFromInt(5), 2, 14)
		assert.Error(t, err) // service too short

		err = policy.ValidateRequest(decimal.NewFromInt(12), 6, 14)
		assert.Error(t, err) // exceeds max consecutive

		err = policy.ValidateRequest(decimal.NewFromInt(5), 6, 3)
		assert.Error(t, err) // insufficient notice
	})

	t.Run("unlimited consecutive days when zero", func(t *testing.T) {
		policy := newPolicy(t)
		require.NoError(t, policy.SetRules(0, 0, 0))

		assert.NoError(t, policy.ValidateRequest(decimal.NewFromInt(30), 0, 0))
	})

	t.Run("auto approve threshold", func(t *testing.T) {
		policy := newPolicy(t)

		assert.False(t, policy.ShouldAutoApprove(decimal.NewFromInt(1)))

		require.NoError(t, policy.SetAutoApprove(decimal.NewFromInt(2)))
		assert.True(t, policy.ShouldAutoApprove(decimal.NewFromInt(2)))
		assert.False(t, policy.ShouldAutoApprove(decimal.NewFromInt(3)))
	})

	t.Run("carry forward amount is capped", func(t *testing.T) {
		policy := newPolicy(t)

		assert.True(t, policy.CarryForwardAmount(decimal.NewFromInt(6)).IsZero())

		require.NoError(t, policy.SetCarryForward(true, decimal.NewFromInt(5)))
		assert.True(t, decimal.NewFromInt(5).Equal(policy.CarryForwardAmount(decimal.NewFromInt(6))))
		assert.True(t, decimal.NewFromInt(3).Equal(policy.CarryForwardAmount(decimal.NewFromInt(3))))
	})

	t.Run("deactivate ends the policy", func(t *testing.T) {
		policy := newPolicy(t)
		endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

		require.NoError(t, policy.Deactivate(endDate))

		assert.False(t, policy.IsActive)
		assert.False(t, policy.IsEffective(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
		assert.Error(t, policy.Deactivate(endDate))
	})
}
