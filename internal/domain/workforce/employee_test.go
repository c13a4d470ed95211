package workforce

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

func newTestEmployee(t *testing.T) *Employee {
	t.Helper()
	employee, err := NewEmployee(uuid.New(), "EMP20240001", PersonalInfo{
		FirstName: "Jordan",
		LastName:  "Reyes",
	}, EmploymentTypeFullTime, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return employee
}

func TestNewEmployee(t *testing.T) {
	t.Run("hires employee into probation", func(t *testing.T) {
		companyID := uuid.New()
		hireDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		employee, err := NewEmployee(companyID, "emp20240001", PersonalInfo{
			FirstName: "Jordan",
			LastName:  "Reyes",
		}, EmploymentTypeFullTime, hireDate)

		require.NoError(t, err)
		assert.Equal(t, "EMP20240001", employee.Code)
		assert.Equal(t, companyID, employee.TenantID)
		assert.Equal(t, EmployeeStatusProbation, employee.Status)
		assert.Equal(t, "Jordan Reyes", employee.Personal.FullName())
		require.NotNil(t, employee.ProbationEndDate)
		assert.Equal(t, hireDate.AddDate(0, 3, 0), *employee.ProbationEndDate)

		events := employee.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*EmployeeHiredEvent)
		assert.True(t, ok)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewEmployee(uuid.New(), "", PersonalInfo{FirstName: "A", LastName: "B"},
			EmploymentTypeFullTime, time.Now())
		assert.Error(t, err)
	})

	t.Run("fails with missing name", func(t *testing.T) {
		_, err := NewEmployee(uuid.New(), "EMP1", PersonalInfo{FirstName: "A"},
			EmploymentTypeFullTime, time.Now())
		assert.Error(t, err)
	})

	t.Run("fails with invalid employment type", func(t *testing.T) {
		_, err := NewEmployee(uuid.New(), "EMP1", PersonalInfo{FirstName: "A", LastName: "B"},
			EmploymentType("gig"), time.Now())
		assert.Error(t, err)
	})

	t.Run("fails with zero hire date", func(t *testing.T) {
		_, err := NewEmployee(uuid.New(), "EMP1", PersonalInfo{FirstName: "A", LastName: "B"},
			EmploymentTypeFullTime, time.Time{})
		assert.Error(t, err)
	})
}

func TestGenerateEmployeeCode(t *testing.T) {
	code := GenerateEmployeeCode(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 17)
	assert.Equal(t, "EMP20240017", code)
}

func TestEmployee_Confirm(t *testing.T) {
	t.Run("confirms probation employee", func(t *testing.T) {
		employee := newTestEmployee(t)
		employee.ClearDomainEvents()
		confirmDate := employee.HireDate.AddDate(0, 3, 0)

		err := employee.Confirm(confirmDate)

		require.NoError(t, err)
		assert.Equal(t, EmployeeStatusActive, employee.Status)
		require.NotNil(t, employee.ConfirmationDate)
		assert.Len(t, employee.GetDomainEvents(), 1)
	})

	t.Run("fails for already active employee", func(t *testing.T) {
		employee := newTestEmployee(t)
		require.NoError(t, employee.Confirm(employee.HireDate.AddDate(0, 3, 0)))

		err := employee.Confirm(time.Now())
		assert.Error(t, err)
	})

	t.Run("fails when confirmation before hire date", func(t *testing.T) {
		employee := newTestEmployee(t)

		err := employee.Confirm(employee.HireDate.AddDate(0, 0, -1))
		assert.Error(t, err)
	})
}

func TestEmployee_LeaveLifecycle(t *testing.T) {
	employee := newTestEmployee(t)
	require.NoError(t, employee.Confirm(employee.HireDate.AddDate(0, 3, 0)))
	employee.ClearDomainEvents()

	require.NoError(t, employee.PlaceOnLeave())
	assert.Equal(t, EmployeeStatusOnLeave, employee.Status)

	require.NoError(t, employee.ReturnFromLeave())
	assert.Equal(t, EmployeeStatusActive, employee.Status)

	t.Run("cannot return when not on leave", func(t *testing.T) {
		err := employee.ReturnFromLeave()
		assert.Error(t, err)
	})

	t.Run("terminated employee cannot go on leave", func(t *testing.T) {
		require.NoError(t, employee.Terminate(time.Now(), time.Now(), "resignation"))
		err := employee.PlaceOnLeave()
		assert.Error(t, err)
	})
}

func TestEmployee_Terminate(t *testing.T) {
	t.Run("terminates employee", func(t *testing.T) {
		employee := newTestEmployee(t)
		employee.ClearDomainEvents()
		termDate := employee.HireDate.AddDate(1, 0, 0)

		err := employee.Terminate(termDate, termDate, "end of contract")

		require.NoError(t, err)
		assert.Equal(t, EmployeeStatusTerminated, employee.Status)
		assert.Equal(t, "end of contract", employee.TerminationNote)

		events := employee.GetDomainEvents()
		require.Len(t, events, 1)
		terminated, ok := events[0].(*EmployeeTerminatedEvent)
		require.True(t, ok)
		assert.Equal(t, EmployeeStatusProbation, terminated.OldStatus)
	})

	t.Run("fails when already terminated", func(t *testing.T) {
		employee := newTestEmployee(t)
		require.NoError(t, employee.Terminate(time.Now(), time.Now(), ""))

		err := employee.Terminate(time.Now(), time.Now(), "")
		assert.Error(t, err)
	})

	t.Run("fails when last working date before hire", func(t *testing.T) {
		employee := newTestEmployee(t)

		err := employee.Terminate(time.Now(), employee.HireDate.AddDate(0, 0, -1), "")
		assert.Error(t, err)
	})
}

func TestEmployee_StartNotice(t *testing.T) {
	employee := newTestEmployee(t)
	require.NoError(t, employee.Confirm(employee.HireDate.AddDate(0, 3, 0)))

	require.NoError(t, employee.StartNotice(time.Now()))
	assert.Equal(t, EmployeeStatusNoticePeriod, employee.Status)

	t.Run("cannot start notice twice", func(t *testing.T) {
		err := employee.StartNotice(time.Now())
		assert.Error(t, err)
	})
}

func TestEmployee_AssignManager(t *testing.T) {
	employee := newTestEmployee(t)

	t.Run("assigns a manager", func(t *testing.T) {
		managerID := uuid.New()
		require.NoError(t, employee.AssignManager(&managerID))
		assert.Equal(t, managerID, *employee.ManagerID)
	})

	t.Run("rejects self as manager", func(t *testing.T) {
		err := employee.AssignManager(&employee.ID)
		assert.Error(t, err)
	})
}

func TestEmployee_SetCompensation(t *testing.T) {
	employee := newTestEmployee(t)
	employee.ClearDomainEvents()

	salary, err := valueobject.NewMoney(decimal.NewFromInt(85000), valueobject.USD)
	require.NoError(t, err)

	err = employee.SetCompensation(Compensation{
		BaseSalary:       salary,
		PayFrequency:     "monthly",
		OvertimeEligible: true,
	})

	require.NoError(t, err)
	assert.True(t, employee.Compensation.BaseSalary.Amount().Equal(decimal.NewFromInt(85000)))
	assert.Len(t, employee.GetDomainEvents(), 1)

	t.Run("rejects negative salary", func(t *testing.T) {
		negative, err := valueobject.NewMoney(decimal.NewFromInt(-1), valueobject.USD)
		require.NoError(t, err)

		err = employee.SetCompensation(Compensation{BaseSalary: negative})
		assert.Error(t, err)
	})
}

func TestEmployee_SetEntitlement(t *testing.T) {
	employee := newTestEmployee(t)

	err := employee.SetEntitlement(LeaveEntitlement{
		VacationDaysPerYear: decimal.NewFromInt(21),
		SickDaysPerYear:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	t.Run("rejects negative entitlement", func(t *testing.T) {
		err := employee.SetEntitlement(LeaveEntitlement{
			VacationDaysPerYear: decimal.NewFromInt(-1),
		})
		assert.Error(t, err)
	})
}

func TestEmployee_YearsOfService(t *testing.T) {
	employee := newTestEmployee(t)

	assert.Equal(t, 0, employee.YearsOfService(employee.HireDate.AddDate(0, 11, 0)))
	assert.Equal(t, 1, employee.YearsOfService(employee.HireDate.AddDate(1, 0, 0)))
	assert.Equal(t, 2, employee.YearsOfService(employee.HireDate.AddDate(2, 5, 0)))
	assert.Equal(t, 0, employee.YearsOfService(employee.HireDate.AddDate(0, 0, -10)))
}
