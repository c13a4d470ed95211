package asset

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// Type classifies a company asset
type Type string

const (
	TypeLaptop          Type = "laptop"
	TypeDesktop         Type = "desktop"
	TypeMobile          Type = "mobile"
	TypeTablet          Type = "tablet"
	TypeMonitor         Type = "monitor"
	TypePrinter         Type = "printer"
	TypePhone           Type = "phone"
	TypeVehicle         Type = "vehicle"
	TypeFurniture       Type = "furniture"
	TypeSoftwareLicense Type = "software_license"
	TypeOther           Type = "other"
)

// IsValid checks if the type is a valid Type
func (t Type) IsValid() bool {
	switch t {
	case TypeLaptop, TypeDesktop, TypeMobile, TypeTablet, TypeMonitor, TypePrinter,
		TypePhone, TypeVehicle, TypeFurniture, TypeSoftwareLicense, TypeOther:
		return true
	}
	return false
}

// Status represents the availability state of an asset
type Status string

const (
	StatusAvailable Status = "available"
	StatusAssigned  Status = "assigned"
	StatusInRepair  Status = "in_repair"
	StatusRetired   Status = "retired"
	StatusLost      Status = "lost"
	StatusStolen    Status = "stolen"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInRepair, StatusRetired, StatusLost, StatusStolen:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if the asset is permanently out of circulation
func (s Status) IsTerminal() bool {
	return s == StatusRetired || s == StatusLost || s == StatusStolen
}

// Condition grades the physical state of an asset
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
	ConditionDamaged Condition = "damaged"
)

// IsValid checks if the condition is a valid Condition
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return true
	}
	return false
}

// PurchaseInfo holds the acquisition details of an asset
type PurchaseInfo struct {
	PurchaseDate     *time.Time
	PurchaseCost     valueobject.Money
	DepreciationRate decimal.Decimal // Percent per year
	WarrantyExpiry   *time.Time
	VendorName       string
	VendorContact    string
	InvoiceNumber    string
}

// Assignment records one handout of the asset to an employee
type Assignment struct {
	shared.BaseEntity
	AssetID            uuid.UUID
	EmployeeID         uuid.UUID
	AssignedDate       time.Time
	ExpectedReturnDate *time.Time
	ReturnDate         *time.Time
	Reason             string
	ReturnReason       string
	ConditionAtIssue   Condition
	ConditionAtReturn  Condition
	AssignedBy         uuid.UUID
	IsActive           bool
}

// TableName returns the table name for GORM
func (Assignment) TableName() string {
	return "asset_assignments"
}

// MaintenanceRecord is one service entry for the asset
type MaintenanceRecord struct {
	shared.BaseEntity
	AssetID             uuid.UUID
	MaintenanceType     string // repair, upgrade, inspection
	Description         string
	Cost                valueobject.Money
	MaintenanceDate     time.Time
	ServiceProvider     string
	TechnicianName      string
	ServiceTicket       string
	IsWarrantyCovered   bool
	NextMaintenanceDate *time.Time
}

// TableName returns the table name for GORM
func (MaintenanceRecord) TableName() string {
	return "asset_maintenance_records"
}

// Asset is a company-owned item tracked through assignment and maintenance
type Asset struct {
	shared.TenantAggregateRoot
	Tag          string
	SerialNumber string
	Type         Type
	Brand        string
	Model        string
	Name         string
	Description  string
	Location     string

	Purchase     PurchaseInfo `gorm:"embedded"`
	CurrentValue valueobject.Money

	Status    Status
	Condition Condition

	Assignments        []Assignment
	MaintenanceRecords []MaintenanceRecord
}

// TableName returns the table name for GORM
func (Asset) TableName() string {
	return "assets"
}

// NewAsset registers an available asset
func NewAsset(companyID uuid.UUID, tag string, assetType Type, name string) (*Asset, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, shared.NewDomainError("INVALID_TAG", "Asset tag is required")
	}
	if !assetType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid asset type")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Asset name is required")
	}

	return &Asset{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Tag:                 tag,
		Type:                assetType,
		Name:                name,
		Status:              StatusAvailable,
		Condition:           ConditionNew,
	}, nil
}

// Update edits the descriptive fields
func (a *Asset) Update(name, description, brand, model, serialNumber, location string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Asset name is required")
	}
	a.Name = name
	a.Description = strings.TrimSpace(description)
	a.Brand = brand
	a.Model = model
	a.SerialNumber = serialNumber
	a.Location = location
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// SetPurchaseInfo records the acquisition details and initial value
func (a *Asset) SetPurchaseInfo(info PurchaseInfo) error {
	if info.PurchaseCost.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Purchase cost cannot be negative")
	}
	if info.DepreciationRate.IsNegative() || info.DepreciationRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Depreciation rate must be between 0 and 100")
	}
	a.Purchase = info
	if a.CurrentValue.IsZero() {
		a.CurrentValue = info.PurchaseCost
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// DepreciatedValue computes straight-line value as of a date
func (a *Asset) DepreciatedValue(asOf time.Time) valueobject.Money {
	if a.Purchase.PurchaseDate == nil || a.Purchase.PurchaseCost.IsZero() || a.Purchase.DepreciationRate.IsZero() {
		return a.CurrentValue
	}
	years := decimal.NewFromFloat(asOf.Sub(*a.Purchase.PurchaseDate).Hours() / (24 * 365.25))
	if years.IsNegative() {
		return a.Purchase.PurchaseCost
	}
	factor := decimal.NewFromInt(1).Sub(a.Purchase.DepreciationRate.Div(decimal.NewFromInt(100)).Mul(years))
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return a.Purchase.PurchaseCost.Multiply(factor).Round(2)
}

// ActiveAssignment returns the open assignment, if any
func (a *Asset) ActiveAssignment() *Assignment {
	for i := range a.Assignments {
		if a.Assignments[i].IsActive {
			return &a.Assignments[i]
		}
	}
	return nil
}

// AssignTo hands the asset to an employee
func (a *Asset) AssignTo(employeeID, assignedBy uuid.UUID, assignedDate time.Time, reason string, expectedReturn *time.Time) error {
	if employeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if a.Status != StatusAvailable {
		return shared.NewDomainError("INVALID_STATE", "Only available assets can be assigned")
	}

	a.Assignments = append(a.Assignments, Assignment{
		BaseEntity:         shared.NewBaseEntity(),
		AssetID:            a.ID,
		EmployeeID:         employeeID,
		AssignedDate:       assignedDate,
		ExpectedReturnDate: expectedReturn,
		Reason:             reason,
		ConditionAtIssue:   a.Condition,
		AssignedBy:         assignedBy,
		IsActive:           true,
	})
	a.Status = StatusAssigned
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAssetAssignedEvent(a, employeeID))

	return nil
}

// Return closes the active assignment and records the returned condition
func (a *Asset) Return(returnDate time.Time, condition Condition, returnReason string) error {
	if a.Status != StatusAssigned {
		return shared.NewDomainError("INVALID_STATE", "Asset is not currently assigned")
	}
	if !condition.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION", "Invalid asset condition")
	}

	assignment := a.ActiveAssignment()
	if assignment == nil {
		return shared.NewDomainError("INVALID_STATE", "Asset has no active assignment")
	}
	if returnDate.Before(assignment.AssignedDate) {
		return shared.NewDomainError("INVALID_DATE", "Return date cannot be before the assignment date")
	}

	assignment.ReturnDate = &returnDate
	assignment.ReturnReason = returnReason
	assignment.ConditionAtReturn = condition
	assignment.IsActive = false
	assignment.UpdatedAt = time.Now()

	a.Condition = condition
	a.Status = StatusAvailable
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAssetReturnedEvent(a, assignment.EmployeeID))

	return nil
}

// SendForRepair moves an available or assigned asset into repair.
// An active assignment stays open; the employee gets the asset back after repair.
func (a *Asset) SendForRepair() error {
	if a.Status != StatusAvailable && a.Status != StatusAssigned {
		return shared.NewDomainError("INVALID_STATE", "Asset cannot be sent for repair in current state")
	}
	a.Status = StatusInRepair
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// CompleteRepair restores the prior availability based on the open assignment
func (a *Asset) CompleteRepair(condition Condition) error {
	if a.Status != StatusInRepair {
		return shared.NewDomainError("INVALID_STATE", "Asset is not in repair")
	}
	if !condition.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION", "Invalid asset condition")
	}
	a.Condition = condition
	if a.ActiveAssignment() != nil {
		a.Status = StatusAssigned
	} else {
		a.Status = StatusAvailable
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// AddMaintenance appends a service record
func (a *Asset) AddMaintenance(record MaintenanceRecord) error {
	if strings.TrimSpace(record.MaintenanceType) == "" {
		return shared.NewDomainError("INVALID_MAINTENANCE", "Maintenance type is required")
	}
	if strings.TrimSpace(record.Description) == "" {
		return shared.NewDomainError("INVALID_MAINTENANCE", "Maintenance description is required")
	}
	if record.MaintenanceDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Maintenance date is required")
	}

	record.BaseEntity = shared.NewBaseEntity()
	record.AssetID = a.ID
	a.MaintenanceRecords = append(a.MaintenanceRecords, record)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Retire permanently removes the asset from circulation
func (a *Asset) Retire() error {
	if a.Status == StatusAssigned {
		return shared.NewDomainError("INVALID_STATE", "Assigned assets must be returned before retirement")
	}
	if a.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Asset is already out of circulation")
	}
	a.Status = StatusRetired
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// ReportLost marks the asset lost and closes any open assignment
func (a *Asset) ReportLost(stolen bool) error {
	if a.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Asset is already out of circulation")
	}
	if assignment := a.ActiveAssignment(); assignment != nil {
		now := time.Now()
		assignment.ReturnDate = &now
		assignment.ReturnReason = "reported lost"
		assignment.IsActive = false
		assignment.UpdatedAt = now
	}
	if stolen {
		a.Status = StatusStolen
	} else {
		a.Status = StatusLost
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}
