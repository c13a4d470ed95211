package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

func TestNewBusinessMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  meter,
		Logger: zap.NewNop(),
	})

	require.NoError(t, err)
	require.NotNil(t, bm)
}

func TestNewBusinessMetrics_NilMeter(t *testing.T) {
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  nil,
		Logger: zap.NewNop(),
	})

	require.Error(t, err)
	assert.Nil(t, bm)
	assert.Equal(t, "NewBusinessMetrics: meter cannot be nil", err.Error())
}

func TestBusinessMetrics_RecordEmployeeHired(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()

	// Should not panic
	bm.RecordEmployeeHired(ctx, tenantID, telemetry.EmploymentTypeFullTime)
	bm.RecordEmployeeHired(ctx, tenantID, telemetry.EmploymentTypeContractor)
}

func TestBusinessMetrics_RecordLeaveRequest(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()

	// Should not panic
	bm.RecordLeaveRequest(ctx, tenantID, "annual")
	bm.RecordLeaveRequest(ctx, tenantID, "sick")
}

func TestBusinessMetrics_RecordPayrollRun(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()

	// Should not panic
	bm.RecordPayrollRun(ctx, tenantID, telemetry.PayrollRunStatusCompleted)
	bm.RecordPayrollRun(ctx, tenantID, telemetry.PayrollRunStatusFailed)
}

func TestBusinessMetrics_RecordPayrollNetAmount(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()

	// Should not panic
	bm.RecordPayrollNetAmount(ctx, tenantID, 500000) // 5000.00
	bm.RecordPayrollNetAmount(ctx, tenantID, 1250000)
}

func TestBusinessMetrics_RecordPayrollRunWithAmount(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()
	amount := decimal.NewFromFloat(84250.50)

	// Should not panic and record both count and amount
	bm.RecordPayrollRunWithAmount(ctx, tenantID, telemetry.PayrollRunStatusCompleted, amount)
}

func TestBusinessMetrics_RecordHeadcount(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()
	departmentID := uuid.New()

	// Should not panic
	bm.RecordHeadcount(ctx, tenantID, departmentID, 42)
	bm.RecordHeadcount(ctx, tenantID, departmentID, 43)
}

func TestBusinessMetrics_RecordPendingLeaveCount(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	ctx := context.Background()
	tenantID := uuid.New()

	// Should not panic
	bm.RecordPendingLeaveCount(ctx, tenantID, 5)
	bm.RecordPendingLeaveCount(ctx, tenantID, 10)
}

// Mock implementations for testing periodic collection

type mockTenantProvider struct {
	tenantIDs []uuid.UUID
	err       error
}

func (m *mockTenantProvider) GetActiveTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	return m.tenantIDs, m.err
}

type mockWorkforceProvider struct {
	headcount    map[uuid.UUID]int64
	pendingLeave int64
	err          error
}

func (m *mockWorkforceProvider) GetHeadcountByDepartment(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.headcount, nil
}

func (m *mockWorkforceProvider) GetPendingLeaveCount(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.pendingLeave, nil
}

func TestBusinessMetrics_PeriodicCollection(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	tenantID := uuid.New()
	departmentID := uuid.New()

	workforceProvider := &mockWorkforceProvider{
		headcount: map[uuid.UUID]int64{
			departmentID: 100,
		},
		pendingLeave: 5,
	}

	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:             meter,
		Logger:            zap.NewNop(),
		WorkforceProvider: workforceProvider,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tenantProvider := &mockTenantProvider{
		tenantIDs: []uuid.UUID{tenantID},
	}

	// Start periodic collection with short interval for testing
	bm.StartPeriodicCollection(ctx, tenantProvider, 100*time.Millisecond)

	// Wait for at least one collection cycle
	time.Sleep(150 * time.Millisecond)

	// Stop collection
	bm.Stop()

	// Should complete without error
}

func TestBusinessMetrics_PeriodicCollection_NoProvider(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  meter,
		Logger: zap.NewNop(),
		// No workforce provider
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tenantProvider := &mockTenantProvider{
		tenantIDs: []uuid.UUID{uuid.New()},
	}

	// Should not panic with no workforce provider
	bm.StartPeriodicCollection(ctx, tenantProvider, 50*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	bm.Stop()
}

func TestBusinessMetrics_Stop_Idempotent(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: meter,
	})
	require.NoError(t, err)

	// Calling Stop multiple times should not panic
	bm.Stop()
	bm.Stop()
	bm.Stop()
}

func TestBusinessMetrics_StartPeriodicCollection_OnlyOnce(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  meter,
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tenantProvider := &mockTenantProvider{
		tenantIDs: []uuid.UUID{},
	}

	// Calling StartPeriodicCollection multiple times should only start once
	bm.StartPeriodicCollection(ctx, tenantProvider, time.Hour)
	bm.StartPeriodicCollection(ctx, tenantProvider, time.Minute)
	bm.StartPeriodicCollection(ctx, tenantProvider, time.Second)

	bm.Stop()
}

func TestEmploymentType_Values(t *testing.T) {
	assert.Equal(t, telemetry.EmploymentType("full_time"), telemetry.EmploymentTypeFullTime)
	assert.Equal(t, telemetry.EmploymentType("part_time"), telemetry.EmploymentTypePartTime)
	assert.Equal(t, telemetry.EmploymentType("contractor"), telemetry.EmploymentTypeContractor)
	assert.Equal(t, telemetry.EmploymentType("intern"), telemetry.EmploymentTypeIntern)
}

func TestPayrollRunStatus_Values(t *testing.T) {
	assert.Equal(t, telemetry.PayrollRunStatus("completed"), telemetry.PayrollRunStatusCompleted)
	assert.Equal(t, telemetry.PayrollRunStatus("failed"), telemetry.PayrollRunStatusFailed)
}

func TestMetricsError_Error(t *testing.T) {
	err := &telemetry.MetricsError{
		Op:  "TestOperation",
		Err: "test error message",
	}

	assert.Equal(t, "TestOperation: test error message", err.Error())
}
