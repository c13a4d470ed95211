package compliance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequirement(t *testing.T) *Requirement {
	t.Helper()
	r, err := NewRequirement(uuid.New(), "Overtime pay rules", "FLSA-OT", TypeLaborLaw,
		"Overtime must be paid at 1.5x beyond 40 hours per week",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestNewRequirement(t *testing.T) {
	t.Run("creates active requirement", func(t *testing.T) {
		r := newTestRequirement(t)
		assert.Equal(t, RequirementStatusActive, r.Status)
		assert.Equal(t, RiskMedium, r.RiskLevel)
		assert.True(t, r.IsMandatory)
	})

	t.Run("requires description", func(t *testing.T) {
		_, err := NewRequirement(uuid.New(), "Rule", "R1", TypeLaborLaw, "  ", time.Now())
		assert.Error(t, err)
	})
}

func TestRequirement_ReviewCycle(t *testing.T) {
	r := newTestRequirement(t)
	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.SetReviewCycle(6, first))

	t.Run("due on or after next review date", func(t *testing.T) {
		assert.False(t, r.IsReviewDue(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)))
		assert.True(t, r.IsReviewDue(first))
	})

	t.Run("advance pushes one cycle", func(t *testing.T) {
		require.NoError(t, r.AdvanceReviewDate())
		require.NotNil(t, r.NextReviewDate)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), *r.NextReviewDate)
	})

	t.Run("no cycle configured", func(t *testing.T) {
		fresh := newTestRequirement(t)
		assert.Error(t, fresh.AdvanceReviewDate())
		assert.False(t, fresh.IsReviewDue(time.Now()))
	})
}

func TestRequirement_StatusTransitions(t *testing.T) {
	t.Run("supersede", func(t *testing.T) {
		r := newTestRequirement(t)
		require.NoError(t, r.Supersede())
		assert.Equal(t, RequirementStatusSuperseded, r.Status)
		assert.Error(t, r.Supersede())
	})

	t.Run("deactivate", func(t *testing.T) {
		r := newTestRequirement(t)
		require.NoError(t, r.Deactivate())
		assert.Equal(t, RequirementStatusInactive, r.Status)
	})

	t.Run("risk level", func(t *testing.T) {
		r := newTestRequirement(t)
		require.NoError(t, r.SetRiskLevel(RiskCritical))
		assert.Equal(t, RiskCritical, r.RiskLevel)
		assert.Error(t, r.SetRiskLevel(RiskLevel("extreme")))
	})
}

func TestNewAssessment(t *testing.T) {
	companyID := uuid.New()
	requirementID := uuid.New()
	periodStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	assessedAt := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)

	t.Run("compliant assessment requires no actions", func(t *testing.T) {
		a, err := NewAssessment(companyID, requirementID, uuid.New(), "H1 overtime audit",
			assessedAt, periodStart, periodEnd, AssessmentCompliant, decimal.NewFromInt(98))

		require.NoError(t, err)
		assert.False(t, a.ActionsRequired)
		assert.Empty(t, a.GetDomainEvents())
	})

	t.Run("non-compliant assessment flags actions and emits event", func(t *testing.T) {
		a, err := NewAssessment(companyID, requirementID, uuid.New(), "H1 overtime audit",
			assessedAt, periodStart, periodEnd, AssessmentNonCompliant, decimal.NewFromInt(60))

		require.NoError(t, err)
		assert.True(t, a.ActionsRequired)

		events := a.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeNonComplianceFound, events[0].EventType())
	})

	t.Run("score bounds", func(t *testing.T) {
		_, err := NewAssessment(companyID, requirementID, uuid.New(), "Audit",
			assessedAt, periodStart, periodEnd, AssessmentCompliant, decimal.NewFromInt(120))
		assert.Error(t, err)
	})
}

func TestAssessment_CorrectiveActions(t *testing.T) {
	failed := func(t *testing.T) *Assessment {
		t.Helper()
		a, err := NewAssessment(uuid.New(), uuid.New(), uuid.New(), "Audit",
			time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			AssessmentPartiallyCompliant, decimal.NewFromInt(75))
		require.NoError(t, err)
		return a
	}

	t.Run("plan then complete", func(t *testing.T) {
		a := failed(t)
		target := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)

		require.NoError(t, a.SetActionPlan("Update payroll overtime configuration", target))
		assert.True(t, a.IsOverdue(time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)))

		require.NoError(t, a.CompleteActions(time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)))
		assert.False(t, a.IsOverdue(time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)))
		assert.Error(t, a.CompleteActions(time.Now()))
	})

	t.Run("compliant assessment rejects action plan", func(t *testing.T) {
		a, err := NewAssessment(uuid.New(), uuid.New(), uuid.New(), "Audit",
			time.Now(), time.Now().AddDate(0, -6, 0), time.Now(), AssessmentCompliant, decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.Error(t, a.SetActionPlan("n/a", time.Now()))
	})
}
