package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/printing"
	"github.com/hrms/backend/internal/domain/workforce"
	infra "github.com/hrms/backend/internal/infrastructure/printing"
)

// PayslipProvider implements DataProvider for the PAYSLIP document type.
// It loads a single payslip together with its payroll run for use in
// print templates.
type PayslipProvider struct {
	payrollRepo  payroll.PayrollRunRepository
	employeeRepo workforce.EmployeeRepository
	companyRepo  identity.CompanyRepository
}

// NewPayslipProvider creates a new PayslipProvider.
func NewPayslipProvider(
	payrollRepo payroll.PayrollRunRepository,
	employeeRepo workforce.EmployeeRepository,
	companyRepo identity.CompanyRepository,
) *PayslipProvider {
	return &PayslipProvider{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
	}
}

// GetDocType returns the document type this provider handles.
func (p *PayslipProvider) GetDocType() printing.DocType {
	return printing.DocTypePayslip
}

// GetData retrieves payslip data for rendering.
// documentID is the payslip ID, not the payroll run ID.
func (p *PayslipProvider) GetData(ctx context.Context, tenantID, documentID uuid.UUID) (*infra.DocumentData, error) {
	payslip, err := p.payrollRepo.FindPayslip(ctx, tenantID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payslip: %w", err)
	}

	run, err := p.payrollRepo.FindByID(ctx, tenantID, payslip.PayrollRunID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll run: %w", err)
	}

	employee, err := p.employeeRepo.FindByID(ctx, tenantID, payslip.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	company, err := p.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	docData := infra.NewDocumentData(printing.DocTypePayslip, run.Number)
	docData.Meta.Status = string(run.Status)
	docData.Meta.StatusText = statusToText(string(run.Status))
	docData.Meta.CreatedAt = payslip.CreatedAt
	docData.Meta.UpdatedAt = payslip.UpdatedAt
	docData.Company = buildCompanyInfo(company)

	// Department and designation are snapshotted on the payslip at
	// processing time, so no department lookup is needed here
	employeeInfo := infra.EmployeeInfo{
		ID:          payslip.EmployeeID,
		Code:        payslip.EmployeeCode,
		Name:        payslip.EmployeeName,
		Department:  payslip.Department,
		Designation: payslip.Designation,
		Email:       employee.Contact.WorkEmail,
		JoiningDate: &employee.HireDate,
		BankName:    employee.Bank.BankName,
		BankAccount: maskAccountNumber(employee.Bank.AccountNumber),
		TaxRef:      employee.Bank.TaxReference,
	}
	employeeInfo.JoiningDateFormatted = employee.HireDate.Format("2006-01-02")

	var earnings, deductions []infra.PayslipComponentData
	for _, c := range payslip.Components {
		line := infra.PayslipComponentData{
			Code:            c.Code,
			Name:            c.Name,
			Kind:            string(c.Kind),
			Amount:          c.Amount,
			AmountFormatted: infra.FormatMoneyValue(c.Amount),
		}
		switch c.Kind {
		case payroll.ComponentKindEarning:
			line.Index = len(earnings) + 1
			earnings = append(earnings, line)
		case payroll.ComponentKindDeduction:
			line.Index = len(deductions) + 1
			deductions = append(deductions, line)
		}
	}

	payslipData := infra.PayslipData{
		ID:          payslip.ID,
		RunNumber:   run.Number,
		Period:      run.PeriodStart.Format("January 2006"),
		PeriodStart: run.PeriodStart,
		PeriodEnd:   run.PeriodEnd,
		PayDate:     run.PayDate,
		Employee:    employeeInfo,

		DaysWorked:    payslip.DaysWorked,
		DaysAbsent:    payslip.DaysAbsent,
		OvertimeHours: payslip.OvertimeHours,

		Earnings:   earnings,
		Deductions: deductions,

		GrossPay:        payslip.GrossPay,
		TotalDeductions: payslip.TotalDeductions,
		NetPay:          payslip.NetPay,
		TaxDeducted:     payslip.TaxDeducted,

		IsPaid:           payslip.IsPaid,
		PaymentDate:      payslip.PaymentDate,
		PaymentReference: payslip.PaymentReference,

		GrossPayFormatted:        infra.FormatMoneyValue(payslip.GrossPay),
		TotalDeductionsFormatted: infra.FormatMoneyValue(payslip.TotalDeductions),
		NetPayFormatted:          infra.FormatMoneyValue(payslip.NetPay),
		NetPayWords:              infra.MoneyToWords(payslip.NetPay),
		PayDateFormatted:         run.PayDate.Format("2006-01-02"),
	}
	if payslip.PaymentDate != nil {
		payslipData.PaymentDateFormatted = payslip.PaymentDate.Format("2006-01-02")
	}

	docData.Document = payslipData

	return docData, nil
}

// buildCompanyInfo maps a company aggregate to the printable header info
func buildCompanyInfo(company *identity.Company) infra.CompanyInfo {
	return infra.CompanyInfo{
		ID:      company.ID,
		Name:    company.Name,
		Address: company.Address.String(),
		Phone:   company.ContactPhone,
		Email:   company.ContactEmail,
		Website: company.Website,
		Logo:    company.LogoURL,
		TaxID:   company.TaxID,
	}
}

// statusToText converts a status code to display text
func statusToText(status string) string {
	statusMap := map[string]string{
		"draft":      "Draft",
		"processing": "Processing",
		"processed":  "Processed",
		"approved":   "Approved",
		"paid":       "Paid",
		"cancelled":  "Cancelled",
		"submitted":  "Submitted",
		"rejected":   "Rejected",
		"reimbursed": "Reimbursed",
		"present":    "Present",
		"absent":     "Absent",
		"late":       "Late",
		"half_day":   "Half Day",
		"on_leave":   "On Leave",
		"holiday":    "Holiday",
		"weekend":    "Weekend",
	}
	if text, ok := statusMap[status]; ok {
		return text
	}
	return status
}

// maskAccountNumber hides all but the last four digits of a bank account
func maskAccountNumber(account string) string {
	if len(account) <= 4 {
		return account
	}
	return strings.Repeat("X", len(account)-4) + account[len(account)-4:]
}
