package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
)

// SalaryStructure is an employee's salary breakdown effective over a period.
// Gross, deductions, net and CTC are derived from the components.
type SalaryStructure struct {
	shared.TenantAggregateRoot
	EmployeeID    uuid.UUID
	Name          string
	EffectiveFrom time.Time
	EffectiveTo   *time.Time

	// Earnings
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	SpecialAllowance   decimal.Decimal
	PerformanceBonus   decimal.Decimal
	AnnualBonus        decimal.Decimal

	// Deductions
	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal

	IsActive bool
}

// TableName returns the table name for GORM
func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// NewSalaryStructure creates a structure with the basic salary; other
// components default to zero and are set afterwards
func NewSalaryStructure(companyID, employeeID uuid.UUID, name string, basicSalary decimal.Decimal, effectiveFrom time.Time) (*SalaryStructure, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Structure name is required")
	}
	if !basicSalary.IsPositive() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Basic salary must be positive")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_DATE", "Effective date is required")
	}

	return &SalaryStructure{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		EmployeeID:          employeeID,
		Name:                name,
		BasicSalary:         basicSalary,
		EffectiveFrom:       effectiveFrom,
		IsActive:            true,
	}, nil
}

// SetEarnings updates the earning components
func (s *SalaryStructure) SetEarnings(hra, transport, medical, special decimal.Decimal) error {
	if hra.IsNegative() || transport.IsNegative() || medical.IsNegative() || special.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Earning components cannot be negative")
	}
	s.HRA = hra
	s.TransportAllowance = transport
	s.MedicalAllowance = medical
	s.SpecialAllowance = special
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetBonuses updates the variable components
func (s *SalaryStructure) SetBonuses(performance, annual decimal.Decimal) error {
	if performance.IsNegative() || annual.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Bonus components cannot be negative")
	}
	s.PerformanceBonus = performance
	s.AnnualBonus = annual
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetDeductions updates the deduction components
func (s *SalaryStructure) SetDeductions(pfEmployee, pfEmployer, esiEmployee, esiEmployer, professionalTax decimal.Decimal) error {
	if pfEmployee.IsNegative() || pfEmployer.IsNegative() || esiEmployee.IsNegative() ||
		esiEmployer.IsNegative() || professionalTax.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Deduction components cannot be negative")
	}
	s.PFEmployee = pfEmployee
	s.PFEmployer = pfEmployer
	s.ESIEmployee = esiEmployee
	s.ESIEmployer = esiEmployer
	s.ProfessionalTax = professionalTax
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetBasicSalary changes the basic salary
func (s *SalaryStructure) SetBasicSalary(basicSalary decimal.Decimal) error {
	if !basicSalary.IsPositive() {
		return shared.NewDomainError("INVALID_SALARY", "Basic salary must be positive")
	}
	s.BasicSalary = basicSalary
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// GrossSalary is the sum of all monthly earning components
func (s *SalaryStructure) GrossSalary() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HRA).
		Add(s.TransportAllowance).
		Add(s.MedicalAllowance).
		Add(s.SpecialAllowance)
}

// TotalDeductions is the sum of the employee-side deductions
func (s *SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.PFEmployee.Add(s.ESIEmployee).Add(s.ProfessionalTax)
}

// NetSalary is gross minus employee deductions
func (s *SalaryStructure) NetSalary() decimal.Decimal {
	return s.GrossSalary().Sub(s.TotalDeductions())
}

// CostToCompany includes employer contributions and annualized bonuses
func (s *SalaryStructure) CostToCompany() decimal.Decimal {
	return s.GrossSalary().
		Add(s.PFEmployer).
		Add(s.ESIEmployer).
		Add(s.PerformanceBonus).
		Add(s.AnnualBonus)
}

// IsEffective reports whether the structure applies on a date
func (s *SalaryStructure) IsEffective(date time.Time) bool {
	if !s.IsActive {
		return false
	}
	if date.Before(s.EffectiveFrom) {
		return false
	}
	if s.EffectiveTo != nil && date.After(*s.EffectiveTo) {
		return false
	}
	return true
}

// Supersede ends this structure the day a replacement takes effect
func (s *SalaryStructure) Supersede(effectiveTo time.Time) error {
	if !s.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Structure is already inactive")
	}
	if effectiveTo.Before(s.EffectiveFrom) {
		return shared.NewDomainError("INVALID_EFFECTIVE_DATE", "End date cannot be before the effective date")
	}
	s.IsActive = false
	s.EffectiveTo = &effectiveTo
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
