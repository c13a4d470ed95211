package printing

// DocType represents the type of HR document that can be printed
type DocType string

const (
	// Payroll documents
	DocTypePayslip DocType = "PAYSLIP"

	// Expense documents
	DocTypeExpenseClaim DocType = "EXPENSE_CLAIM"

	// Attendance documents
	DocTypeAttendanceSummary DocType = "ATTENDANCE_SUMMARY"
)

// IsValid checks if the DocType is a valid value
func (d DocType) IsValid() bool {
	switch d {
	case DocTypePayslip, DocTypeExpenseClaim, DocTypeAttendanceSummary:
		return true
	}
	return false
}

// String returns the string representation of DocType
func (d DocType) String() string {
	return string(d)
}

// DisplayName returns the human-readable name for DocType
func (d DocType) DisplayName() string {
	switch d {
	case DocTypePayslip:
		return "Payslip"
	case DocTypeExpenseClaim:
		return "Expense Claim"
	case DocTypeAttendanceSummary:
		return "Attendance Summary"
	default:
		return string(d)
	}
}

// AllDocTypes returns all valid DocType values
func AllDocTypes() []DocType {
	return []DocType{
		DocTypePayslip, DocTypeExpenseClaim, DocTypeAttendanceSummary,
	}
}

// PaperSize represents the paper size for printing
type PaperSize string

const (
	PaperSizeA4     PaperSize = "A4"     // 210mm x 297mm
	PaperSizeA5     PaperSize = "A5"     // 148mm x 210mm
	PaperSizeLetter PaperSize = "LETTER" // 216mm x 279mm
	PaperSizeLegal  PaperSize = "LEGAL"  // 216mm x 356mm
)

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA5, PaperSizeLetter, PaperSizeLegal:
		return true
	}
	return false
}

// String returns the string representation of PaperSize
func (p PaperSize) String() string {
	return string(p)
}

// Dimensions returns the paper dimensions in millimeters (width, height)
func (p PaperSize) Dimensions() (width, height int) {
	switch p {
	case PaperSizeA4:
		return 210, 297
	case PaperSizeA5:
		return 148, 210
	case PaperSizeLetter:
		return 216, 279
	case PaperSizeLegal:
		return 216, 356
	default:
		return 210, 297 // Default to A4
	}
}

// AllPaperSizes returns all valid PaperSize values
func AllPaperSizes() []PaperSize {
	return []PaperSize{
		PaperSizeA4, PaperSizeA5, PaperSizeLetter, PaperSizeLegal,
	}
}

// Orientation represents the page orientation for printing
type Orientation string

const (
	OrientationPortrait  Orientation = "PORTRAIT"
	OrientationLandscape Orientation = "LANDSCAPE"
)

// IsValid checks if the Orientation is a valid value
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// TemplateStatus represents the status of a print template
type TemplateStatus string

const (
	TemplateStatusActive   TemplateStatus = "ACTIVE"
	TemplateStatusInactive TemplateStatus = "INACTIVE"
)

// IsValid checks if the TemplateStatus is a valid value
func (s TemplateStatus) IsValid() bool {
	switch s {
	case TemplateStatusActive, TemplateStatusInactive:
		return true
	}
	return false
}

// String returns the string representation of TemplateStatus
func (s TemplateStatus) String() string {
	return string(s)
}

// JobStatus represents the status of a print job
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusRendering JobStatus = "RENDERING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
)

// IsValid checks if the JobStatus is a valid value
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusRendering, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsTerminal returns true if this is a terminal status (no further transitions)
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo checks if the status can transition to the target status
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	switch s {
	case JobStatusPending:
		return target == JobStatusRendering || target == JobStatusFailed
	case JobStatusRendering:
		return target == JobStatusCompleted || target == JobStatusFailed
	case JobStatusCompleted, JobStatusFailed:
		return false // Terminal states
	}
	return false
}
