package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// SalaryService manages employee salary structures
type SalaryService struct {
	structureRepo payroll.SalaryStructureRepository
	employeeRepo  workforce.EmployeeRepository
	logger        *zap.Logger
}

// NewSalaryService creates a new salary service
func NewSalaryService(
	structureRepo payroll.SalaryStructureRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *SalaryService {
	return &SalaryService{
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

// AssignStructureInput contains input for assigning a salary structure
type AssignStructureInput struct {
	CompanyID     uuid.UUID
	EmployeeID    uuid.UUID
	Name          string
	EffectiveFrom time.Time

	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	SpecialAllowance   decimal.Decimal
	PerformanceBonus   decimal.Decimal
	AnnualBonus        decimal.Decimal

	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
}

// SalaryStructureDTO represents a salary structure
type SalaryStructureDTO struct {
	ID            uuid.UUID  `json:"id"`
	EmployeeID    uuid.UUID  `json:"employee_id"`
	Name          string     `json:"name"`
	EffectiveFrom string     `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`

	BasicSalary        string `json:"basic_salary"`
	HRA                string `json:"hra"`
	TransportAllowance string `json:"transport_allowance"`
	MedicalAllowance   string `json:"medical_allowance"`
	SpecialAllowance   string `json:"special_allowance"`
	PerformanceBonus   string `json:"performance_bonus"`
	AnnualBonus        string `json:"annual_bonus"`

	PFEmployee      string `json:"pf_employee"`
	PFEmployer      string `json:"pf_employer"`
	ESIEmployee     string `json:"esi_employee"`
	ESIEmployer     string `json:"esi_employer"`
	ProfessionalTax string `json:"professional_tax"`

	GrossSalary     string `json:"gross_salary"`
	TotalDeductions string `json:"total_deductions"`
	NetSalary       string `json:"net_salary"`
	CostToCompany   string `json:"cost_to_company"`
	IsActive        bool   `json:"is_active"`
}

// Assign creates a new salary structure for an employee. Any active
// structure is superseded as of the new effective date.
func (s *SalaryService) Assign(ctx context.Context, input AssignStructureInput) (*SalaryStructureDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if employee.Status.IsTerminal() {
		return nil, shared.NewDomainError("EMPLOYEE_TERMINATED", "Cannot assign a structure to a terminated employee")
	}

	structure, err := payroll.NewSalaryStructure(input.CompanyID, input.EmployeeID, input.Name, input.BasicSalary, input.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	if err := structure.SetEarnings(input.HRA, input.TransportAllowance, input.MedicalAllowance, input.SpecialAllowance); err != nil {
		return nil, err
	}
	if err := structure.SetBonuses(input.PerformanceBonus, input.AnnualBonus); err != nil {
		return nil, err
	}
	if err := structure.SetDeductions(input.PFEmployee, input.PFEmployer, input.ESIEmployee, input.ESIEmployer, input.ProfessionalTax); err != nil {
		return nil, err
	}

	existing, err := s.structureRepo.FindActiveByEmployee(ctx, input.CompanyID, input.EmployeeID)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing structure")
	}
	if existing != nil {
		if err := existing.Supersede(input.EffectiveFrom); err != nil {
			return nil, err
		}
		if err := s.structureRepo.Save(ctx, existing); err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to supersede existing structure")
		}
	}

	if err := s.structureRepo.Save(ctx, structure); err != nil {
		s.logger.Error("Failed to save salary structure", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save salary structure")
	}

	s.logger.Info("Salary structure assigned",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.String("structure_id", structure.ID.String()))

	return toStructureDTO(structure), nil
}

// GetActive retrieves the employee's active structure
func (s *SalaryService) GetActive(ctx context.Context, companyID, employeeID uuid.UUID) (*SalaryStructureDTO, error) {
	structure, err := s.structureRepo.FindActiveByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("STRUCTURE_NOT_FOUND", "No active salary structure")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find salary structure")
	}
	return toStructureDTO(structure), nil
}

// GetHistory retrieves all structures for an employee, newest first
func (s *SalaryService) GetHistory(ctx context.Context, companyID, employeeID uuid.UUID) ([]SalaryStructureDTO, error) {
	structures, err := s.structureRepo.FindHistoryByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load salary history")
	}

	dtos := make([]SalaryStructureDTO, len(structures))
	for i, st := range structures {
		dtos[i] = *toStructureDTO(st)
	}
	return dtos, nil
}

// Revise updates the basic salary on the active structure
func (s *SalaryService) Revise(ctx context.Context, companyID, structureID uuid.UUID, basicSalary decimal.Decimal) (*SalaryStructureDTO, error) {
	structure, err := s.structureRepo.FindByID(ctx, companyID, structureID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("STRUCTURE_NOT_FOUND", "Salary structure not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find salary structure")
	}
	if err := structure.SetBasicSalary(basicSalary); err != nil {
		return nil, err
	}
	if err := s.structureRepo.Save(ctx, structure); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save salary structure")
	}
	return toStructureDTO(structure), nil
}

// toStructureDTO converts a domain SalaryStructure to its DTO
func toStructureDTO(st *payroll.SalaryStructure) *SalaryStructureDTO {
	return &SalaryStructureDTO{
		ID:                 st.ID,
		EmployeeID:         st.EmployeeID,
		Name:               st.Name,
		EffectiveFrom:      st.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:        st.EffectiveTo,
		BasicSalary:        st.BasicSalary.String(),
		HRA:                st.HRA.String(),
		TransportAllowance: st.TransportAllowance.String(),
		MedicalAllowance:   st.MedicalAllowance.String(),
		SpecialAllowance:   st.SpecialAllowance.String(),
		PerformanceBonus:   st.PerformanceBonus.String(),
		AnnualBonus:        st.AnnualBonus.String(),
		PFEmployee:         st.PFEmployee.String(),
		PFEmployer:         st.PFEmployer.String(),
		ESIEmployee:        st.ESIEmployee.String(),
		ESIEmployer:        st.ESIEmployer.String(),
		ProfessionalTax:    st.ProfessionalTax.String(),
		GrossSalary:        st.GrossSalary().String(),
		TotalDeductions:    st.TotalDeductions().String(),
		NetSalary:          st.NetSalary().String(),
		CostToCompany:      st.CostToCompany().String(),
		IsActive:           st.IsActive,
	}
}
