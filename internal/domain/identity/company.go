package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// CompanyStatus represents the status of a company tenant
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusInactive  CompanyStatus = "inactive"
	CompanyStatusSuspended CompanyStatus = "suspended" // Suspended due to payment/violation issues
	CompanyStatusTrial     CompanyStatus = "trial"     // Trial period
)

// CompanyPlan represents the subscription plan of a company
type CompanyPlan string

const (
	CompanyPlanFree       CompanyPlan = "free"
	CompanyPlanBasic      CompanyPlan = "basic"
	CompanyPlanPro        CompanyPlan = "pro"
	CompanyPlanEnterprise CompanyPlan = "enterprise"
)

// PayrollFrequency is how often the company runs payroll
type PayrollFrequency string

const (
	PayrollFrequencyWeekly   PayrollFrequency = "weekly"
	PayrollFrequencyBiweekly PayrollFrequency = "biweekly"
	PayrollFrequencyMonthly  PayrollFrequency = "monthly"
)

// CompanySettings holds configurable HR settings for a company
type CompanySettings struct {
	MaxEmployees     int              `json:"max_employees"`
	Timezone         string           `json:"timezone"`
	Currency         string           `json:"currency"`
	PayrollFrequency PayrollFrequency `json:"payroll_frequency"`
	PayrollDay       int              `json:"payroll_day"`       // Day of period payroll is paid
	WeekStartDay     time.Weekday     `json:"week_start_day"`    // First working day of the week
	FiscalYearStart  time.Month       `json:"fiscal_year_start"` // Month the fiscal year begins
	Locale           string           `json:"locale"`
}

// DefaultCompanySettings returns the default settings for a new company
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		MaxEmployees:     25,
		Timezone:         "UTC",
		Currency:         string(valueobject.DefaultCurrency),
		PayrollFrequency: PayrollFrequencyMonthly,
		PayrollDay:       28,
		WeekStartDay:     time.Monday,
		FiscalYearStart:  time.January,
		Locale:           "en-US",
	}
}

// OfficeLocation is the registered office coordinate and allowed punch radius
// for geofenced attendance
type OfficeLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PunchRadius float64 `json:"punch_radius"` // Meters
}

// IsConfigured reports whether geofencing is set up for the office
func (o OfficeLocation) IsConfigured() bool {
	return o.PunchRadius > 0 && !(o.Latitude == 0 && o.Longitude == 0)
}

// Point returns the office coordinate as a GeoPoint
func (o OfficeLocation) Point() (valueobject.GeoPoint, error) {
	return valueobject.NewGeoPoint(o.Latitude, o.Longitude)
}

// Company represents a tenant organization in the multi-tenant system
// It is the aggregate root for company-related operations
type Company struct {
	shared.BaseAggregateRoot
	Code               string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name               string              `gorm:"type:varchar(200);not null"`
	LegalName          string              `gorm:"type:varchar(200)"`
	RegistrationNumber string              `gorm:"type:varchar(100)"`
	TaxID              string              `gorm:"type:varchar(100)"`
	Industry           string              `gorm:"type:varchar(100)"`
	SizeBand           string              `gorm:"type:varchar(20)"` // e.g. 1-10, 11-50, 51-200
	Status             CompanyStatus       `gorm:"type:varchar(20);not null;default:'active'"`
	Plan               CompanyPlan         `gorm:"type:varchar(20);not null;default:'free'"`
	ContactName        string              `gorm:"type:varchar(100)"`
	ContactPhone       string              `gorm:"type:varchar(50)"`
	ContactEmail       string              `gorm:"type:varchar(200)"`
	Website            string              `gorm:"type:varchar(200)"`
	Address            valueobject.Address `gorm:"type:jsonb"`
	Office             OfficeLocation      `gorm:"embedded;embeddedPrefix:office_"`
	LogoURL            string              `gorm:"type:varchar(500)"`
	ExpiresAt          *time.Time          `gorm:"index"` // Subscription expiry date
	TrialEndsAt        *time.Time          // Trial period end date
	Settings           CompanySettings     `gorm:"embedded;embeddedPrefix:settings_"`
	Notes              string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with required fields
func NewCompany(code, name string) (*Company, error) {
	if err := validateCompanyCode(code); err != nil {
		return nil, err
	}
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            CompanyStatusActive,
		Plan:              CompanyPlanFree,
		Settings:          DefaultCompanySettings(),
	}

	company.AddDomainEvent(NewCompanyCreatedEvent(company))

	return company, nil
}

// NewTrialCompany creates a new company in trial status
func NewTrialCompany(code, name string, trialDays int) (*Company, error) {
	if trialDays <= 0 {
		return nil, shared.NewDomainError("INVALID_TRIAL_DAYS", "Trial days must be positive")
	}

	company, err := NewCompany(code, name)
	if err != nil {
		return nil, err
	}

	company.Status = CompanyStatusTrial
	trialEnds := time.Now().AddDate(0, 0, trialDays)
	company.TrialEndsAt = &trialEnds

	return company, nil
}

// Update updates the company's basic information
func (c *Company) Update(name, legalName, industry, sizeBand string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	if legalName != "" && len(legalName) > 200 {
		return shared.NewDomainError("INVALID_LEGAL_NAME", "Legal name cannot exceed 200 characters")
	}

	c.Name = name
	c.LegalName = legalName
	c.Industry = industry
	c.SizeBand = sizeBand
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyUpdatedEvent(c))

	return nil
}

// SetRegistration sets the legal registration identifiers
func (c *Company) SetRegistration(registrationNumber, taxID string) error {
	if len(registrationNumber) > 100 {
		return shared.NewDomainError("INVALID_REGISTRATION", "Registration number cannot exceed 100 characters")
	}
	if len(taxID) > 100 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 100 characters")
	}

	c.RegistrationNumber = registrationNumber
	c.TaxID = taxID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetContact sets the company's contact information
func (c *Company) SetContact(contactName, phone, email, website string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if email != "" && len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	c.ContactName = contactName
	c.ContactPhone = phone
	c.ContactEmail = email
	c.Website = website
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the company's registered address
func (c *Company) SetAddress(address valueobject.Address) {
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetOfficeLocation sets the office coordinate and punch radius used for
// geofenced attendance punches
func (c *Company) SetOfficeLocation(latitude, longitude, punchRadius float64) error {
	if _, err := valueobject.NewGeoPoint(latitude, longitude); err != nil {
		return shared.NewDomainError("INVALID_LOCATION", err.Error())
	}
	if punchRadius <= 0 {
		return shared.NewDomainError("INVALID_PUNCH_RADIUS", "Punch radius must be positive")
	}

	c.Office = OfficeLocation{
		Latitude:    latitude,
		Longitude:   longitude,
		PunchRadius: punchRadius,
	}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyOfficeLocationChangedEvent(c))

	return nil
}

// SetLogoURL sets the company's logo URL
func (c *Company) SetLogoURL(url string) error {
	if url != "" && len(url) > 500 {
		return shared.NewDomainError("INVALID_URL", "Logo URL cannot exceed 500 characters")
	}

	c.LogoURL = url
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetPlan sets the company's subscription plan
func (c *Company) SetPlan(plan CompanyPlan) error {
	if err := validateCompanyPlan(plan); err != nil {
		return err
	}

	oldPlan := c.Plan
	c.Plan = plan
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	// If upgrading from trial, clear trial status
	if c.Status == CompanyStatusTrial && plan != CompanyPlanFree {
		c.Status = CompanyStatusActive
		c.TrialEndsAt = nil
	}

	c.updateLimitsForPlan(plan)

	c.AddDomainEvent(NewCompanyPlanChangedEvent(c, oldPlan, plan))

	return nil
}

// updateLimitsForPlan updates the employee cap based on the plan
func (c *Company) updateLimitsForPlan(plan CompanyPlan) {
	switch plan {
	case CompanyPlanFree:
		c.Settings.MaxEmployees = 25
	case CompanyPlanBasic:
		c.Settings.MaxEmployees = 100
	case CompanyPlanPro:
		c.Settings.MaxEmployees = 500
	case CompanyPlanEnterprise:
		c.Settings.MaxEmployees = 100000
	}
}

// SetExpiration sets the subscription expiration date
func (c *Company) SetExpiration(expiresAt time.Time) {
	c.ExpiresAt = &expiresAt
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// ClearExpiration clears the expiration date
func (c *Company) ClearExpiration() {
	c.ExpiresAt = nil
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// UpdateSettings updates the company's HR settings
func (c *Company) UpdateSettings(settings CompanySettings) error {
	if settings.MaxEmployees < 0 {
		return shared.NewDomainError("INVALID_MAX_EMPLOYEES", "Max employees cannot be negative")
	}
	switch settings.PayrollFrequency {
	case PayrollFrequencyWeekly, PayrollFrequencyBiweekly, PayrollFrequencyMonthly:
	default:
		return shared.NewDomainError("INVALID_PAYROLL_FREQUENCY", "Invalid payroll frequency")
	}
	if settings.PayrollDay < 1 || settings.PayrollDay > 31 {
		return shared.NewDomainError("INVALID_PAYROLL_DAY", "Payroll day must be between 1 and 31")
	}
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return shared.NewDomainError("INVALID_TIMEZONE", "Unknown timezone")
	}

	c.Settings = settings
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the company's notes
func (c *Company) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate activates the company
func (c *Company) Activate() error {
	if c.Status == CompanyStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Company is already active")
	}

	oldStatus := c.Status
	c.Status = CompanyStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyStatusChangedEvent(c, oldStatus, CompanyStatusActive))

	return nil
}

// Deactivate deactivates the company
func (c *Company) Deactivate() error {
	if c.Status == CompanyStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Company is already inactive")
	}

	oldStatus := c.Status
	c.Status = CompanyStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyStatusChangedEvent(c, oldStatus, CompanyStatusInactive))

	return nil
}

// Suspend suspends the company (e.g., due to payment issues)
func (c *Company) Suspend() error {
	if c.Status == CompanyStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Company is already suspended")
	}

	oldStatus := c.Status
	c.Status = CompanyStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyStatusChangedEvent(c, oldStatus, CompanyStatusSuspended))

	return nil
}

// ConvertFromTrial converts a trial company to a paid plan
func (c *Company) ConvertFromTrial(plan CompanyPlan) error {
	if c.Status != CompanyStatusTrial {
		return shared.NewDomainError("NOT_TRIAL", "Company is not in trial status")
	}
	if plan == CompanyPlanFree {
		return shared.NewDomainError("INVALID_PLAN", "Cannot convert to free plan from trial")
	}

	return c.SetPlan(plan)
}

// IsActive returns true if the company is active
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

// IsSuspended returns true if the company is suspended
func (c *Company) IsSuspended() bool {
	return c.Status == CompanyStatusSuspended
}

// IsTrial returns true if the company is in trial period
func (c *Company) IsTrial() bool {
	return c.Status == CompanyStatusTrial
}

// IsTrialExpired returns true if the trial has expired
func (c *Company) IsTrialExpired() bool {
	if c.Status != CompanyStatusTrial {
		return false
	}
	if c.TrialEndsAt == nil {
		return false
	}
	return time.Now().After(*c.TrialEndsAt)
}

// IsSubscriptionExpired returns true if the subscription has expired
func (c *Company) IsSubscriptionExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*c.ExpiresAt)
}

// CanAddEmployee returns true if the company can hire more employees
func (c *Company) CanAddEmployee(currentEmployeeCount int) bool {
	return currentEmployeeCount < c.Settings.MaxEmployees
}

// ValidatePunchLocation checks a punch coordinate against the office geofence.
// It returns the distance from the office in meters. When no office location
// is configured, the punch is allowed and distance is zero.
func (c *Company) ValidatePunchLocation(point valueobject.GeoPoint) (float64, error) {
	if !c.Office.IsConfigured() {
		return 0, nil
	}
	office, err := c.Office.Point()
	if err != nil {
		return 0, shared.NewDomainError("INVALID_LOCATION", "Company office location is invalid")
	}
	distance := office.DistanceTo(point)
	if distance > c.Office.PunchRadius {
		return distance, shared.ErrOutsideGeofence
	}
	return distance, nil
}

// GetCompanyID returns the company ID
func (c *Company) GetCompanyID() uuid.UUID {
	return c.ID
}

// Validation functions

func validateCompanyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Company code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

func validateCompanyPlan(plan CompanyPlan) error {
	switch plan {
	case CompanyPlanFree, CompanyPlanBasic, CompanyPlanPro, CompanyPlanEnterprise:
		return nil
	default:
		return shared.NewDomainError("INVALID_PLAN", "Invalid company plan")
	}
}
