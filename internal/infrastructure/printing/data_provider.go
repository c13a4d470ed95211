package printing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/printing"
	"github.com/shopspring/decimal"
)

// DataProvider is the interface for providing document data for template rendering.
// Each document type should have its own implementation.
type DataProvider interface {
	// GetDocType returns the document type this provider handles
	GetDocType() printing.DocType
	// GetData retrieves the document data for rendering
	// documentID is the ID of the document to render
	GetData(ctx context.Context, tenantID, documentID uuid.UUID) (*DocumentData, error)
}

// DocumentData is the common structure for all document data used in templates.
// It contains both common metadata and document-specific data.
type DocumentData struct {
	// Common metadata
	Meta DocumentMeta `json:"meta"`

	// Company/Tenant information
	Company CompanyInfo `json:"company"`

	// Document-specific data (varies by document type)
	// This will be one of: PayslipData, ExpenseClaimData, etc.
	Document any `json:"document"`

	// Formatted/computed fields for convenience
	PrintDate     string `json:"printDate"`
	PrintDateTime string `json:"printDateTime"`
	PrintTime     string `json:"printTime"`
}

// DocumentMeta contains common metadata for all documents
type DocumentMeta struct {
	DocType     printing.DocType `json:"docType"`
	DocTypeName string           `json:"docTypeName"` // Display name
	DocNo       string           `json:"docNo"`       // Document number
	Status      string           `json:"status"`
	StatusText  string           `json:"statusText"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	CreatedBy   string           `json:"createdBy"`
	Remark      string           `json:"remark"`
}

// CompanyInfo contains tenant/company information for printing
type CompanyInfo struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Website string    `json:"website"`
	Logo    string    `json:"logo"`  // URL or base64
	TaxID   string    `json:"taxId"` // GSTIN or PAN
}

// EmployeeInfo contains employee information for printing
type EmployeeInfo struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Department  string     `json:"department"`
	Designation string     `json:"designation"`
	Email       string     `json:"email"`
	JoiningDate *time.Time `json:"joiningDate"`
	BankName    string     `json:"bankName"`
	BankAccount string     `json:"bankAccount"` // Masked account number
	TaxRef      string     `json:"taxRef"`      // PAN

	// Formatted fields
	JoiningDateFormatted string `json:"joiningDateFormatted"`
}

// =============================================================================
// Payslip Data
// =============================================================================

// PayslipData represents one employee's payslip for template rendering
type PayslipData struct {
	ID          uuid.UUID    `json:"id"`
	RunNumber   string       `json:"runNumber"`
	Period      string       `json:"period"` // e.g. "January 2024"
	PeriodStart time.Time    `json:"periodStart"`
	PeriodEnd   time.Time    `json:"periodEnd"`
	PayDate     time.Time    `json:"payDate"`
	Employee    EmployeeInfo `json:"employee"`

	DaysWorked    decimal.Decimal `json:"daysWorked"`
	DaysAbsent    decimal.Decimal `json:"daysAbsent"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`

	Earnings   []PayslipComponentData `json:"earnings"`
	Deductions []PayslipComponentData `json:"deductions"`

	GrossPay        decimal.Decimal `json:"grossPay"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
	TaxDeducted     decimal.Decimal `json:"taxDeducted"`

	IsPaid           bool       `json:"isPaid"`
	PaymentDate      *time.Time `json:"paymentDate"`
	PaymentReference string     `json:"paymentReference"`

	// Formatted fields
	GrossPayFormatted        string `json:"grossPayFormatted"`
	TotalDeductionsFormatted string `json:"totalDeductionsFormatted"`
	NetPayFormatted          string `json:"netPayFormatted"`
	NetPayWords              string `json:"netPayWords"`
	PayDateFormatted         string `json:"payDateFormatted"`
	PaymentDateFormatted     string `json:"paymentDateFormatted"`
}

// PayslipComponentData represents a single earning or deduction line
type PayslipComponentData struct {
	Index  int             `json:"index"` // 1-based index
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Kind   string          `json:"kind"` // earning or deduction
	Amount decimal.Decimal `json:"amount"`

	// Formatted fields
	AmountFormatted string `json:"amountFormatted"`
}

// =============================================================================
// Expense Claim Data
// =============================================================================

// ExpenseClaimData represents an expense claim for template rendering
type ExpenseClaimData struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Employee    EmployeeInfo    `json:"employee"`
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ExpenseDate time.Time       `json:"expenseDate"`

	ReceiptNumber     string `json:"receiptNumber"`
	ReceiptVendorName string `json:"receiptVendorName"`
	ReceiptURL        string `json:"receiptUrl"`

	Status          string     `json:"status"`
	SubmittedAt     *time.Time `json:"submittedAt"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	ApprovedBy      string     `json:"approvedBy"`
	RejectionReason string     `json:"rejectionReason"`

	ReimbursedAt           *time.Time      `json:"reimbursedAt"`
	ReimbursedAmount       decimal.Decimal `json:"reimbursedAmount"`
	ReimbursementReference string          `json:"reimbursementReference"`

	ClientBillable bool `json:"clientBillable"`

	// Formatted fields
	AmountFormatted           string `json:"amountFormatted"`
	AmountWords               string `json:"amountWords"`
	ReimbursedAmountFormatted string `json:"reimbursedAmountFormatted"`
	ExpenseDateFormatted      string `json:"expenseDateFormatted"`
	SubmittedAtFormatted      string `json:"submittedAtFormatted"`
	ApprovedAtFormatted       string `json:"approvedAtFormatted"`

	// Signature areas (employee, approver, finance)
	SignatureAreas []SignatureArea `json:"signatureAreas"`
}

// =============================================================================
// Attendance Summary Data
// =============================================================================

// AttendanceSummaryData represents a per-employee attendance summary
// for a period, typically one calendar month
type AttendanceSummaryData struct {
	Employee    EmployeeInfo        `json:"employee"`
	Period      string              `json:"period"` // e.g. "January 2024"
	PeriodStart time.Time           `json:"periodStart"`
	PeriodEnd   time.Time           `json:"periodEnd"`
	Days        []AttendanceDayData `json:"days"`

	// Summary
	TotalDays    int `json:"totalDays"`
	PresentDays  int `json:"presentDays"`
	AbsentDays   int `json:"absentDays"`
	HalfDays     int `json:"halfDays"`
	LeaveDays    int `json:"leaveDays"`
	HolidayDays  int `json:"holidayDays"`
	WeekendDays  int `json:"weekendDays"`
	LateArrivals int `json:"lateArrivals"`

	TotalHours         decimal.Decimal `json:"totalHours"`
	TotalOvertimeHours decimal.Decimal `json:"totalOvertimeHours"`

	// Formatted fields
	TotalHoursFormatted         string `json:"totalHoursFormatted"`
	TotalOvertimeHoursFormatted string `json:"totalOvertimeHoursFormatted"`
}

// AttendanceDayData represents one day row in an attendance summary
type AttendanceDayData struct {
	Index         int             `json:"index"`
	Date          time.Time       `json:"date"`
	Weekday       string          `json:"weekday"`
	PunchInTime   *time.Time      `json:"punchInTime"`
	PunchOutTime  *time.Time      `json:"punchOutTime"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	Status        string          `json:"status"`
	StatusText    string          `json:"statusText"`
	IsLate        bool            `json:"isLate"`
	LateMinutes   int             `json:"lateMinutes"`
	Notes         string          `json:"notes"`

	// Formatted fields
	DateFormatted     string `json:"dateFormatted"`
	PunchInFormatted  string `json:"punchInFormatted"`
	PunchOutFormatted string `json:"punchOutFormatted"`
}

// SignatureArea represents a signature area on a document
type SignatureArea struct {
	Label  string `json:"label"`  // e.g., "Employee", "Approved By", "Finance"
	Name   string `json:"name"`   // Pre-filled name if known
	Date   string `json:"date"`   // Pre-filled date if known
	Signed bool   `json:"signed"` // Whether this has been signed
}

// =============================================================================
// Helper Functions for Data Providers
// =============================================================================

// NewDocumentData creates a new DocumentData with common fields initialized
func NewDocumentData(docType printing.DocType, docNo string) *DocumentData {
	now := time.Now()
	return &DocumentData{
		Meta: DocumentMeta{
			DocType:     docType,
			DocTypeName: docType.DisplayName(),
			DocNo:       docNo,
		},
		PrintDate:     now.Format("2006-01-02"),
		PrintDateTime: now.Format("2006-01-02 15:04:05"),
		PrintTime:     now.Format("15:04:05"),
	}
}

// FormatMoneyValue formats a decimal as money string for data providers
func FormatMoneyValue(d decimal.Decimal) string {
	return "₹" + formatMoneyRaw(d)
}

// MoneyToWords converts a decimal amount to words for data providers
func MoneyToWords(d decimal.Decimal) string {
	return moneyToWords(d)
}
