package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates company successfully", func(t *testing.T) {
		company, err := NewCompany("ACME001", "Acme Corporation")

		require.NoError(t, err)
		assert.NotNil(t, company)
		assert.Equal(t, "ACME001", company.Code)
		assert.Equal(t, "Acme Corporation", company.Name)
		assert.Equal(t, CompanyStatusActive, company.Status)
		assert.Equal(t, CompanyPlanFree, company.Plan)
		assert.Equal(t, 25, company.Settings.MaxEmployees)
		assert.Equal(t, PayrollFrequencyMonthly, company.Settings.PayrollFrequency)
		assert.Equal(t, "USD", company.Settings.Currency)
		assert.Equal(t, "UTC", company.Settings.Timezone)
		assert.Len(t, company.GetDomainEvents(), 1)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		company, err := NewCompany("acme002", "Acme Corporation")

		require.NoError(t, err)
		assert.Equal(t, "ACME002", company.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		company, err := NewCompany("", "Acme Corporation")

		assert.Error(t, err)
		assert.Nil(t, company)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		company, err := NewCompany("ACME@001", "Acme Corporation")

		assert.Error(t, err)
		assert.Nil(t, company)
		assert.Contains(t, err.Error(), "can only contain")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		company, err := NewCompany("ACME001", "")

		assert.Error(t, err)
		assert.Nil(t, company)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with code exceeding max length", func(t *testing.T) {
		company, err := NewCompany(strings.Repeat("A", 51), "Acme Corporation")

		assert.Error(t, err)
		assert.Nil(t, company)
		assert.Contains(t, err.Error(), "cannot exceed 50 characters")
	})
}

func TestNewTrialCompany(t *testing.T) {
	t.Run("creates trial company successfully", func(t *testing.T) {
		company, err := NewTrialCompany("TRIAL001", "Trial Corp", 14)

		require.NoError(t, err)
		assert.NotNil(t, company)
		assert.Equal(t, CompanyStatusTrial, company.Status)
		assert.NotNil(t, company.TrialEndsAt)
		assert.True(t, company.IsTrial())
	})

	t.Run("fails with zero trial days", func(t *testing.T) {
		company, err := NewTrialCompany("TRIAL001", "Trial Corp", 0)

		assert.Error(t, err)
		assert.Nil(t, company)
		assert.Contains(t, err.Error(), "Trial days must be positive")
	})
}

func TestCompany_Update(t *testing.T) {
	t.Run("updates company successfully", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Original Name")
		company.ClearDomainEvents()
		initialVersion := company.Version

		err := company.Update("Updated Name", "Updated Legal Name Inc.", "Software", "11-50")

		require.NoError(t, err)
		assert.Equal(t, "Updated Name", company.Name)
		assert.Equal(t, "Updated Legal Name Inc.", company.LegalName)
		assert.Equal(t, "Software", company.Industry)
		assert.Equal(t, initialVersion+1, company.Version)
		assert.Len(t, company.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Original Name")

		err := company.Update("", "", "", "")

		assert.Error(t, err)
		assert.Equal(t, "Original Name", company.Name)
	})
}

func TestCompany_SetOfficeLocation(t *testing.T) {
	t.Run("sets office location successfully", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		company.ClearDomainEvents()

		err := company.SetOfficeLocation(37.7749, -122.4194, 150)

		require.NoError(t, err)
		assert.True(t, company.Office.IsConfigured())
		assert.Equal(t, 150.0, company.Office.PunchRadius)
		assert.Len(t, company.GetDomainEvents(), 1)
	})

	t.Run("fails with invalid coordinates", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")

		err := company.SetOfficeLocation(95, 0, 150)

		assert.Error(t, err)
		assert.False(t, company.Office.IsConfigured())
	})

	t.Run("fails with non-positive radius", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")

		err := company.SetOfficeLocation(37.7749, -122.4194, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Punch radius must be positive")
	})
}

func TestCompany_ValidatePunchLocation(t *testing.T) {
	company, _ := NewCompany("ACME001", "Acme Corporation")
	require.NoError(t, company.SetOfficeLocation(37.7749, -122.4194, 150))

	t.Run("accepts punch inside radius", func(t *testing.T) {
		point, err := valueobject.NewGeoPoint(37.7752, -122.4197)
		require.NoError(t, err)

		distance, err := company.ValidatePunchLocation(point)

		require.NoError(t, err)
		assert.Greater(t, distance, 0.0)
		assert.LessOrEqual(t, distance, 150.0)
	})

	t.Run("rejects punch outside radius", func(t *testing.T) {
		point, err := valueobject.NewGeoPoint(37.8044, -122.2712)
		require.NoError(t, err)

		distance, err := company.ValidatePunchLocation(point)

		require.Error(t, err)
		assert.Equal(t, shared.ErrOutsideGeofence, err)
		assert.Greater(t, distance, 150.0)
	})

	t.Run("allows punch when geofence not configured", func(t *testing.T) {
		unconfigured, _ := NewCompany("ACME002", "Remote Corp")
		point, err := valueobject.NewGeoPoint(0, 0)
		require.NoError(t, err)

		distance, err := unconfigured.ValidatePunchLocation(point)

		require.NoError(t, err)
		assert.Equal(t, 0.0, distance)
	})
}

func TestCompany_SetPlan(t *testing.T) {
	t.Run("changes plan and updates employee limit", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		company.ClearDomainEvents()

		err := company.SetPlan(CompanyPlanPro)

		require.NoError(t, err)
		assert.Equal(t, CompanyPlanPro, company.Plan)
		assert.Equal(t, 500, company.Settings.MaxEmployees)
		assert.Len(t, company.GetDomainEvents(), 1)
	})

	t.Run("upgrading trial clears trial status", func(t *testing.T) {
		company, _ := NewTrialCompany("TRIAL001", "Trial Corp", 14)

		err := company.SetPlan(CompanyPlanBasic)

		require.NoError(t, err)
		assert.Equal(t, CompanyStatusActive, company.Status)
		assert.Nil(t, company.TrialEndsAt)
	})

	t.Run("fails with invalid plan", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")

		err := company.SetPlan(CompanyPlan("platinum"))

		assert.Error(t, err)
	})
}

func TestCompany_UpdateSettings(t *testing.T) {
	t.Run("updates settings successfully", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		settings := DefaultCompanySettings()
		settings.Timezone = "America/New_York"
		settings.PayrollFrequency = PayrollFrequencyBiweekly
		settings.PayrollDay = 15

		err := company.UpdateSettings(settings)

		require.NoError(t, err)
		assert.Equal(t, "America/New_York", company.Settings.Timezone)
		assert.Equal(t, PayrollFrequencyBiweekly, company.Settings.PayrollFrequency)
	})

	t.Run("fails with invalid payroll frequency", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		settings := DefaultCompanySettings()
		settings.PayrollFrequency = PayrollFrequency("daily")

		err := company.UpdateSettings(settings)

		assert.Error(t, err)
	})

	t.Run("fails with invalid payroll day", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		settings := DefaultCompanySettings()
		settings.PayrollDay = 32

		err := company.UpdateSettings(settings)

		assert.Error(t, err)
	})

	t.Run("fails with unknown timezone", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		settings := DefaultCompanySettings()
		settings.Timezone = "Mars/Olympus"

		err := company.UpdateSettings(settings)

		assert.Error(t, err)
	})
}

func TestCompany_StatusTransitions(t *testing.T) {
	t.Run("suspend and reactivate", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		company.ClearDomainEvents()

		require.NoError(t, company.Suspend())
		assert.True(t, company.IsSuspended())

		require.NoError(t, company.Activate())
		assert.True(t, company.IsActive())
		assert.Len(t, company.GetDomainEvents(), 2)
	})

	t.Run("fails to activate already active company", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")

		err := company.Activate()

		assert.Error(t, err)
	})

	t.Run("fails to suspend already suspended company", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		require.NoError(t, company.Suspend())

		err := company.Suspend()

		assert.Error(t, err)
	})
}

func TestCompany_ConvertFromTrial(t *testing.T) {
	t.Run("converts trial to paid plan", func(t *testing.T) {
		company, _ := NewTrialCompany("TRIAL001", "Trial Corp", 14)

		err := company.ConvertFromTrial(CompanyPlanPro)

		require.NoError(t, err)
		assert.Equal(t, CompanyPlanPro, company.Plan)
		assert.Equal(t, CompanyStatusActive, company.Status)
	})

	t.Run("fails for non-trial company", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")

		err := company.ConvertFromTrial(CompanyPlanPro)

		assert.Error(t, err)
	})

	t.Run("fails converting to free plan", func(t *testing.T) {
		company, _ := NewTrialCompany("TRIAL001", "Trial Corp", 14)

		err := company.ConvertFromTrial(CompanyPlanFree)

		assert.Error(t, err)
	})
}

func TestCompany_Expiry(t *testing.T) {
	t.Run("subscription expiry", func(t *testing.T) {
		company, _ := NewCompany("ACME001", "Acme Corporation")
		assert.False(t, company.IsSubscriptionExpired())

		company.SetExpiration(time.Now().Add(-time.Hour))
		assert.True(t, company.IsSubscriptionExpired())

		company.ClearExpiration()
		assert.False(t, company.IsSubscriptionExpired())
	})

	t.Run("trial expiry", func(t *testing.T) {
		company, _ := NewTrialCompany("TRIAL001", "Trial Corp", 14)
		assert.False(t, company.IsTrialExpired())

		past := time.Now().Add(-time.Hour)
		company.TrialEndsAt = &past
		assert.True(t, company.IsTrialExpired())
	})
}

func TestCompany_CanAddEmployee(t *testing.T) {
	company, _ := NewCompany("ACME001", "Acme Corporation")

	assert.True(t, company.CanAddEmployee(24))
	assert.False(t, company.CanAddEmployee(25))
	assert.False(t, company.CanAddEmployee(100))
}
