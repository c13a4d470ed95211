package printing

import (
	"embed"
	"fmt"

	"github.com/hrms/backend/internal/domain/printing"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTemplate represents a default print template configuration
type DefaultTemplate struct {
	DocType     printing.DocType
	Name        string
	Description string
	PaperSize   printing.PaperSize
	Orientation printing.Orientation
	Margins     printing.Margins
	FilePath    string // Path within embed.FS
	IsDefault   bool   // Whether this is the default for its doc type
}

// GetDefaultTemplates returns all default template configurations
func GetDefaultTemplates() []DefaultTemplate {
	return []DefaultTemplate{
		// =============================================================================
		// PAYSLIP templates
		// =============================================================================
		{
			DocType:     printing.DocTypePayslip,
			Name:        "Payslip - A4",
			Description: "Standard A4 payslip with employee details, earnings, deductions and net pay in words",
			PaperSize:   printing.PaperSizeA4,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/payslip_a4.html",
			IsDefault:   true,
		},
		{
			DocType:     printing.DocTypePayslip,
			Name:        "Payslip - A5",
			Description: "Compact A5 payslip with earnings and deductions summary only",
			PaperSize:   printing.PaperSizeA5,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/payslip_a5.html",
			IsDefault:   false,
		},

		// =============================================================================
		// EXPENSE_CLAIM templates
		// =============================================================================
		{
			DocType:     printing.DocTypeExpenseClaim,
			Name:        "Expense Claim - A4",
			Description: "Standard A4 expense claim with receipt details, approval trail and signature areas",
			PaperSize:   printing.PaperSizeA4,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/expense_claim_a4.html",
			IsDefault:   true,
		},
		{
			DocType:     printing.DocTypeExpenseClaim,
			Name:        "Expense Claim - Letter",
			Description: "US Letter expense claim for offices standardized on Letter paper",
			PaperSize:   printing.PaperSizeLetter,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/expense_claim_letter.html",
			IsDefault:   false,
		},

		// =============================================================================
		// ATTENDANCE_SUMMARY templates
		// =============================================================================
		{
			DocType:     printing.DocTypeAttendanceSummary,
			Name:        "Attendance Summary - A4",
			Description: "Monthly attendance summary with a day-by-day register and totals",
			PaperSize:   printing.PaperSizeA4,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/attendance_summary_a4.html",
			IsDefault:   true,
		},
		{
			DocType:     printing.DocTypeAttendanceSummary,
			Name:        "Attendance Summary - A4 Landscape",
			Description: "A4 landscape attendance summary with wider day rows for punch details and notes",
			PaperSize:   printing.PaperSizeA4,
			Orientation: printing.OrientationLandscape,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/attendance_summary_a4_landscape.html",
			IsDefault:   false,
		},
		{
			DocType:     printing.DocTypeAttendanceSummary,
			Name:        "Attendance Summary - Legal",
			Description: "Legal size attendance summary, fits a 31-day month on one page",
			PaperSize:   printing.PaperSizeLegal,
			Orientation: printing.OrientationPortrait,
			Margins:     printing.DefaultMargins(),
			FilePath:    "templates/attendance_summary_legal.html",
			IsDefault:   false,
		},
	}
}

// LoadTemplateContent loads the HTML content for a default template
func LoadTemplateContent(filePath string) (string, error) {
	content, err := templateFS.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}
	return string(content), nil
}

// GetDefaultTemplateByDocTypeAndPaperSize finds a default template configuration
func GetDefaultTemplateByDocTypeAndPaperSize(docType printing.DocType, paperSize printing.PaperSize) *DefaultTemplate {
	templates := GetDefaultTemplates()
	for _, t := range templates {
		if t.DocType == docType && t.PaperSize == paperSize {
			return &t
		}
	}
	return nil
}

// GetDefaultTemplateForDocType finds the default template for a document type
func GetDefaultTemplateForDocType(docType printing.DocType) *DefaultTemplate {
	templates := GetDefaultTemplates()
	for _, t := range templates {
		if t.DocType == docType && t.IsDefault {
			return &t
		}
	}
	return nil
}

// GetTemplatesByDocType returns all templates for a document type
func GetTemplatesByDocType(docType printing.DocType) []DefaultTemplate {
	templates := GetDefaultTemplates()
	var result []DefaultTemplate
	for _, t := range templates {
		if t.DocType == docType {
			result = append(result, t)
		}
	}
	return result
}
