package asset

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

func newTestAsset(t *testing.T) *Asset {
	t.Helper()
	a, err := NewAsset(uuid.New(), "IT-LT-0042", TypeLaptop, "MacBook Pro 14")
	require.NoError(t, err)
	return a
}

func TestNewAsset(t *testing.T) {
	t.Run("creates available asset", func(t *testing.T) {
		a := newTestAsset(t)
		assert.Equal(t, StatusAvailable, a.Status)
		assert.Equal(t, ConditionNew, a.Condition)
	})

	t.Run("fails with empty tag", func(t *testing.T) {
		_, err := NewAsset(uuid.New(), "  ", TypeLaptop, "MacBook Pro")
		assert.Error(t, err)
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		_, err := NewAsset(uuid.New(), "IT-XX-0001", Type("drone"), "Drone")
		assert.Error(t, err)
	})
}

func TestAsset_AssignmentLifecycle(t *testing.T) {
	t.Run("assign and return", func(t *testing.T) {
		a := newTestAsset(t)
		employeeID := uuid.New()
		assignedDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		require.NoError(t, a.AssignTo(employeeID, uuid.New(), assignedDate, "New hire setup", nil))

		assert.Equal(t, StatusAssigned, a.Status)
		assignment := a.ActiveAssignment()
		require.NotNil(t, assignment)
		assert.Equal(t, employeeID, assignment.EmployeeID)
		assert.Equal(t, ConditionNew, assignment.ConditionAtIssue)

		returnDate := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, a.Return(returnDate, ConditionGood, "Employee exit"))

		assert.Equal(t, StatusAvailable, a.Status)
		assert.Equal(t, ConditionGood, a.Condition)
		assert.Nil(t, a.ActiveAssignment())

		events := a.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeAssetAssigned, events[0].EventType())
		assert.Equal(t, EventTypeAssetReturned, events[1].EventType())
	})

	t.Run("cannot assign twice", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.AssignTo(uuid.New(), uuid.New(), time.Now(), "", nil))

		err := a.AssignTo(uuid.New(), uuid.New(), time.Now(), "", nil)
		assert.Error(t, err)
	})

	t.Run("return before assignment date fails", func(t *testing.T) {
		a := newTestAsset(t)
		assignedDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, a.AssignTo(uuid.New(), uuid.New(), assignedDate, "", nil))

		err := a.Return(assignedDate.AddDate(0, 0, -1), ConditionGood, "")
		assert.Error(t, err)
	})

	t.Run("cannot return unassigned asset", func(t *testing.T) {
		a := newTestAsset(t)
		err := a.Return(time.Now(), ConditionGood, "")
		assert.Error(t, err)
	})
}

func TestAsset_Repair(t *testing.T) {
	t.Run("repair of assigned asset keeps assignment", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.AssignTo(uuid.New(), uuid.New(), time.Now(), "", nil))

		require.NoError(t, a.SendForRepair())
		assert.Equal(t, StatusInRepair, a.Status)
		assert.NotNil(t, a.ActiveAssignment())

		require.NoError(t, a.CompleteRepair(ConditionGood))
		assert.Equal(t, StatusAssigned, a.Status)
	})

	t.Run("repair of available asset returns to available", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.SendForRepair())
		require.NoError(t, a.CompleteRepair(ConditionFair))

		assert.Equal(t, StatusAvailable, a.Status)
		assert.Equal(t, ConditionFair, a.Condition)
	})

	t.Run("cannot repair retired asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Retire())
		assert.Error(t, a.SendForRepair())
	})
}

func TestAsset_TerminalStates(t *testing.T) {
	t.Run("retire available asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Retire())
		assert.Equal(t, StatusRetired, a.Status)
		assert.True(t, a.Status.IsTerminal())
	})

	t.Run("cannot retire assigned asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.AssignTo(uuid.New(), uuid.New(), time.Now(), "", nil))
		assert.Error(t, a.Retire())
	})

	t.Run("report lost closes open assignment", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.AssignTo(uuid.New(), uuid.New(), time.Now(), "", nil))

		require.NoError(t, a.ReportLost(false))

		assert.Equal(t, StatusLost, a.Status)
		assert.Nil(t, a.ActiveAssignment())
	})

	t.Run("report stolen", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.ReportLost(true))
		assert.Equal(t, StatusStolen, a.Status)
	})
}

func TestAsset_Depreciation(t *testing.T) {
	a := newTestAsset(t)
	purchaseDate := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, a.SetPurchaseInfo(PurchaseInfo{
		PurchaseDate:     &purchaseDate,
		PurchaseCost:     valueobject.NewMoneyUSDFromFloat(2400),
		DepreciationRate: decimal.NewFromInt(25),
	}))

	t.Run("initial value matches purchase cost", func(t *testing.T) {
		assert.True(t, valueobject.NewMoneyUSDFromFloat(2400).Equals(a.CurrentValue))
	})

	t.Run("two years at 25 percent", func(t *testing.T) {
		value := a.DepreciatedValue(purchaseDate.AddDate(2, 0, 0))
		assert.InDelta(t, 1200, value.Float64(), 10)
	})

	t.Run("never negative", func(t *testing.T) {
		value := a.DepreciatedValue(purchaseDate.AddDate(10, 0, 0))
		assert.True(t, value.IsZero())
	})

	t.Run("rejects invalid rate", func(t *testing.T) {
		err := a.SetPurchaseInfo(PurchaseInfo{DepreciationRate: decimal.NewFromInt(120)})
		assert.Error(t, err)
	})
}

func TestAsset_Maintenance(t *testing.T) {
	a := newTestAsset(t)

	t.Run("adds service record", func(t *testing.T) {
		err := a.AddMaintenance(MaintenanceRecord{
			MaintenanceType: "repair",
			Description:     "Replaced keyboard",
			Cost:            valueobject.NewMoneyUSDFromFloat(180),
			MaintenanceDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			ServiceProvider: "TechFix Inc",
		})

		require.NoError(t, err)
		require.Len(t, a.MaintenanceRecords, 1)
		assert.Equal(t, a.ID, a.MaintenanceRecords[0].AssetID)
	})

	t.Run("requires type and description", func(t *testing.T) {
		assert.Error(t, a.AddMaintenance(MaintenanceRecord{Description: "x", MaintenanceDate: time.Now()}))
		assert.Error(t, a.AddMaintenance(MaintenanceRecord{MaintenanceType: "repair", MaintenanceDate: time.Now()}))
	})
}
