package providers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/expense"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/printing"
	"github.com/hrms/backend/internal/domain/workforce"
	infra "github.com/hrms/backend/internal/infrastructure/printing"
)

// ExpenseClaimProvider implements DataProvider for the EXPENSE_CLAIM document type.
// It loads an expense claim from the repository for use in print templates.
type ExpenseClaimProvider struct {
	expenseRepo    expense.ExpenseRepository
	employeeRepo   workforce.EmployeeRepository
	departmentRepo identity.DepartmentRepository
	userRepo       identity.UserRepository
	companyRepo    identity.CompanyRepository
}

// NewExpenseClaimProvider creates a new ExpenseClaimProvider.
func NewExpenseClaimProvider(
	expenseRepo expense.ExpenseRepository,
	employeeRepo workforce.EmployeeRepository,
	departmentRepo identity.DepartmentRepository,
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
) *ExpenseClaimProvider {
	return &ExpenseClaimProvider{
		expenseRepo:    expenseRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
	}
}

// GetDocType returns the document type this provider handles.
func (p *ExpenseClaimProvider) GetDocType() printing.DocType {
	return printing.DocTypeExpenseClaim
}

// GetData retrieves expense claim data for rendering.
func (p *ExpenseClaimProvider) GetData(ctx context.Context, tenantID, documentID uuid.UUID) (*infra.DocumentData, error) {
	claim, err := p.expenseRepo.FindByID(ctx, tenantID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense claim: %w", err)
	}

	employee, err := p.employeeRepo.FindByID(ctx, tenantID, claim.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	company, err := p.companyRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	docData := infra.NewDocumentData(printing.DocTypeExpenseClaim, claim.Number)
	docData.Meta.Status = string(claim.Status)
	docData.Meta.StatusText = statusToText(string(claim.Status))
	docData.Meta.CreatedAt = claim.CreatedAt
	docData.Meta.UpdatedAt = claim.UpdatedAt
	docData.Company = buildCompanyInfo(company)

	employeeInfo := p.buildEmployeeInfo(ctx, employee)

	// Approver name is resolved best effort; printing should not fail
	// because the approving user was since removed
	approvedBy := ""
	if claim.ApprovedBy != nil {
		if user, err := p.userRepo.FindByID(ctx, *claim.ApprovedBy); err == nil {
			approvedBy = user.DisplayName
		}
	}

	claimData := infra.ExpenseClaimData{
		ID:          claim.ID,
		Number:      claim.Number,
		Employee:    employeeInfo,
		Category:    string(claim.Category),
		Title:       claim.Title,
		Description: claim.Description,
		Amount:      claim.Amount.Amount(),
		Currency:    string(claim.Amount.Currency()),
		ExpenseDate: claim.ExpenseDate,

		ReceiptNumber:     claim.Receipt.Number,
		ReceiptVendorName: claim.Receipt.VendorName,
		ReceiptURL:        claim.Receipt.URL,

		Status:          string(claim.Status),
		SubmittedAt:     claim.SubmittedAt,
		ApprovedAt:      claim.ApprovedAt,
		ApprovedBy:      approvedBy,
		RejectionReason: claim.RejectionReason,

		ReimbursedAt:           claim.ReimbursedAt,
		ReimbursedAmount:       claim.ReimbursedAmount.Amount(),
		ReimbursementReference: claim.ReimbursementReference,

		ClientBillable: claim.ClientBillable,

		AmountFormatted:           infra.FormatMoneyValue(claim.Amount.Amount()),
		AmountWords:               infra.MoneyToWords(claim.Amount.Amount()),
		ReimbursedAmountFormatted: infra.FormatMoneyValue(claim.ReimbursedAmount.Amount()),
		ExpenseDateFormatted:      claim.ExpenseDate.Format("2006-01-02"),

		SignatureAreas: []infra.SignatureArea{
			{Label: "Employee", Name: employeeInfo.Name},
			{Label: "Approved By", Name: approvedBy},
			{Label: "Finance"},
		},
	}
	if claim.SubmittedAt != nil {
		claimData.SubmittedAtFormatted = claim.SubmittedAt.Format("2006-01-02")
	}
	if claim.ApprovedAt != nil {
		claimData.ApprovedAtFormatted = claim.ApprovedAt.Format("2006-01-02")
	}

	docData.Document = claimData

	return docData, nil
}

// buildEmployeeInfo maps an employee aggregate to printable info,
// resolving the department name when one is assigned
func (p *ExpenseClaimProvider) buildEmployeeInfo(ctx context.Context, employee *workforce.Employee) infra.EmployeeInfo {
	department := ""
	if employee.DepartmentID != nil {
		if dept, err := p.departmentRepo.FindByID(ctx, *employee.DepartmentID); err == nil {
			department = dept.Name
		}
	}

	hireDate := employee.HireDate
	return infra.EmployeeInfo{
		ID:          employee.ID,
		Code:        employee.Code,
		Name:        employee.Personal.FullName(),
		Department:  department,
		Designation: employee.JobTitle,
		Email:       employee.Contact.WorkEmail,
		JoiningDate: &hireDate,

		JoiningDateFormatted: hireDate.Format("2006-01-02"),
	}
}
