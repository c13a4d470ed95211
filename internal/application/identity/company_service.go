package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
)

// CompanyService handles company (tenant) management operations
type CompanyService struct {
	companyRepo identity.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo identity.CompanyRepository,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// CreateCompanyInput contains input for creating a company
type CreateCompanyInput struct {
	Code         string
	Name         string
	LegalName    string
	Industry     string
	SizeBand     string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Website      string
	LogoURL      string
	Plan         string
	Notes        string
	TrialDays    int // If > 0, creates a trial company
}

// UpdateCompanyInput contains input for updating a company
type UpdateCompanyInput struct {
	ID           uuid.UUID
	Name         *string
	LegalName    *string
	Industry     *string
	SizeBand     *string
	ContactName  *string
	ContactPhone *string
	ContactEmail *string
	Website      *string
	LogoURL      *string
	Notes        *string
}

// CompanyAddressInput contains input for setting the company address
type CompanyAddressInput struct {
	Line1      string
	Line2      string
	City       string
	State      string
	Country    string
	PostalCode string
}

// OfficeLocationInput contains input for configuring geofenced attendance
type OfficeLocationInput struct {
	Latitude    float64
	Longitude   float64
	PunchRadius float64 // Meters
}

// CompanySettingsInput contains input for updating company settings
type CompanySettingsInput struct {
	MaxEmployees     *int
	Timezone         *string
	Currency         *string
	PayrollFrequency *string
	PayrollDay       *int
	WeekStartDay     *int
	FiscalYearStart  *int
	Locale           *string
}

// CompanyDTO represents company data transfer object
type CompanyDTO struct {
	ID                 uuid.UUID          `json:"id"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	LegalName          string             `json:"legal_name,omitempty"`
	RegistrationNumber string             `json:"registration_number,omitempty"`
	TaxID              string             `json:"tax_id,omitempty"`
	Industry           string             `json:"industry,omitempty"`
	SizeBand           string             `json:"size_band,omitempty"`
	Status             string             `json:"status"`
	Plan               string             `json:"plan"`
	ContactName        string             `json:"contact_name,omitempty"`
	ContactPhone       string             `json:"contact_phone,omitempty"`
	ContactEmail       string             `json:"contact_email,omitempty"`
	Website            string             `json:"website,omitempty"`
	Address            string             `json:"address,omitempty"`
	Office             OfficeLocationDTO  `json:"office"`
	LogoURL            string             `json:"logo_url,omitempty"`
	ExpiresAt          *time.Time         `json:"expires_at,omitempty"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at,omitempty"`
	Settings           CompanySettingsDTO `json:"settings"`
	Notes              string             `json:"notes,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// OfficeLocationDTO represents the office geofence configuration
type OfficeLocationDTO struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PunchRadius float64 `json:"punch_radius"`
	Configured  bool    `json:"configured"`
}

// CompanySettingsDTO represents company settings
type CompanySettingsDTO struct {
	MaxEmployees     int    `json:"max_employees"`
	Timezone         string `json:"timezone"`
	Currency         string `json:"currency"`
	PayrollFrequency string `json:"payroll_frequency"`
	PayrollDay       int    `json:"payroll_day"`
	WeekStartDay     int    `json:"week_start_day"`
	FiscalYearStart  int    `json:"fiscal_year_start"`
	Locale           string `json:"locale"`
}

// CompanyFilter represents filter for querying companies
type CompanyFilter struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
	Keyword  string
	Status   string
}

// ToSharedFilter converts CompanyFilter to shared.Filter
func (f CompanyFilter) ToSharedFilter() shared.Filter {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  f.SortBy,
		OrderDir: f.SortDir,
		Search:   f.Keyword,
	}
}

// CompanyListResult represents paginated company list result
type CompanyListResult struct {
	Companies  []CompanyDTO `json:"companies"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Create creates a new company
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*CompanyDTO, error) {
	s.logger.Info("Creating new company",
		zap.String("code", input.Code),
		zap.String("name", input.Name))

	exists, err := s.companyRepo.ExistsByCode(ctx, input.Code)
	if err != nil {
		s.logger.Error("Failed to check company code existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check code availability")
	}
	if exists {
		return nil, shared.NewDomainError("CODE_EXISTS", "Company code already exists")
	}

	var company *identity.Company
	if input.TrialDays > 0 {
		company, err = identity.NewTrialCompany(input.Code, input.Name, input.TrialDays)
	} else {
		company, err = identity.NewCompany(input.Code, input.Name)
	}
	if err != nil {
		return nil, err
	}

	if input.LegalName != "" || input.Industry != "" || input.SizeBand != "" {
		if err := company.Update(input.Name, input.LegalName, input.Industry, input.SizeBand); err != nil {
			return nil, err
		}
	}
	if input.ContactName != "" || input.ContactPhone != "" || input.ContactEmail != "" || input.Website != "" {
		if err := company.SetContact(input.ContactName, input.ContactPhone, input.ContactEmail, input.Website); err != nil {
			return nil, err
		}
	}
	if input.LogoURL != "" {
		if err := company.SetLogoURL(input.LogoURL); err != nil {
			return nil, err
		}
	}
	if input.Plan != "" {
		if err := company.SetPlan(identity.CompanyPlan(input.Plan)); err != nil {
			return nil, err
		}
	}
	if input.Notes != "" {
		company.SetNotes(input.Notes)
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to create company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create company")
	}

	s.logger.Info("Company created successfully",
		zap.String("company_id", company.ID.String()),
		zap.String("code", company.Code))

	return toCompanyDTO(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyDTO(company), nil
}

// GetByCode retrieves a company by code
func (s *CompanyService) GetByCode(ctx context.Context, code string) (*CompanyDTO, error) {
	company, err := s.companyRepo.FindByCode(ctx, code)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
		}
		s.logger.Error("Failed to find company by code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find company")
	}
	return toCompanyDTO(company), nil
}

// List retrieves a paginated list of companies
func (s *CompanyService) List(ctx context.Context, filter CompanyFilter) (*CompanyListResult, error) {
	sharedFilter := filter.ToSharedFilter()

	var companies []identity.Company
	var total int64
	var err error

	if filter.Status != "" {
		status := identity.CompanyStatus(filter.Status)
		companies, err = s.companyRepo.FindByStatus(ctx, status, sharedFilter)
		if err != nil {
			s.logger.Error("Failed to list companies by status", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list companies")
		}
		total, err = s.companyRepo.CountByStatus(ctx, status)
	} else {
		companies, err = s.companyRepo.FindAll(ctx, sharedFilter)
		if err != nil {
			s.logger.Error("Failed to list companies", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list companies")
		}
		total, err = s.companyRepo.Count(ctx, sharedFilter)
	}

	if err != nil {
		s.logger.Error("Failed to count companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to count companies")
	}

	pageSize := sharedFilter.PageSize
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	dtos := make([]CompanyDTO, len(companies))
	for i, company := range companies {
		dtos[i] = *toCompanyDTO(&company)
	}

	return &CompanyListResult{
		Companies:  dtos,
		Total:      total,
		Page:       sharedFilter.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update updates a company's information
func (s *CompanyService) Update(ctx context.Context, input UpdateCompanyInput) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil || input.LegalName != nil || input.Industry != nil || input.SizeBand != nil {
		name := company.Name
		legalName := company.LegalName
		industry := company.Industry
		sizeBand := company.SizeBand
		if input.Name != nil {
			name = *input.Name
		}
		if input.LegalName != nil {
			legalName = *input.LegalName
		}
		if input.Industry != nil {
			industry = *input.Industry
		}
		if input.SizeBand != nil {
			sizeBand = *input.SizeBand
		}
		if err := company.Update(name, legalName, industry, sizeBand); err != nil {
			return nil, err
		}
	}

	if input.ContactName != nil || input.ContactPhone != nil || input.ContactEmail != nil || input.Website != nil {
		contactName := company.ContactName
		contactPhone := company.ContactPhone
		contactEmail := company.ContactEmail
		website := company.Website
		if input.ContactName != nil {
			contactName = *input.ContactName
		}
		if input.ContactPhone != nil {
			contactPhone = *input.ContactPhone
		}
		if input.ContactEmail != nil {
			contactEmail = *input.ContactEmail
		}
		if input.Website != nil {
			website = *input.Website
		}
		if err := company.SetContact(contactName, contactPhone, contactEmail, website); err != nil {
			return nil, err
		}
	}

	if input.LogoURL != nil {
		if err := company.SetLogoURL(*input.LogoURL); err != nil {
			return nil, err
		}
	}

	if input.Notes != nil {
		company.SetNotes(*input.Notes)
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company")
	}

	s.logger.Info("Company updated", zap.String("company_id", input.ID.String()))

	return toCompanyDTO(company), nil
}

// SetAddress updates the company's registered address
func (s *CompanyService) SetAddress(ctx context.Context, id uuid.UUID, input CompanyAddressInput) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	address, err := valueobject.NewAddress(input.Line1, input.City, input.State, input.Country,
		valueobject.WithLine2(input.Line2),
		valueobject.WithPostalCode(input.PostalCode))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	company.SetAddress(address)

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update company address", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company address")
	}

	return toCompanyDTO(company), nil
}

// SetOfficeLocation configures the geofence for attendance punches
func (s *CompanyService) SetOfficeLocation(ctx context.Context, id uuid.UUID, input OfficeLocationInput) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := company.SetOfficeLocation(input.Latitude, input.Longitude, input.PunchRadius); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update office location", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update office location")
	}

	s.logger.Info("Office location updated",
		zap.String("company_id", id.String()),
		zap.Float64("punch_radius", input.PunchRadius))

	return toCompanyDTO(company), nil
}

// UpdateSettings updates a company's HR settings
func (s *CompanyService) UpdateSettings(ctx context.Context, id uuid.UUID, input CompanySettingsInput) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if input.MaxEmployees != nil {
		settings.MaxEmployees = *input.MaxEmployees
	}
	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.PayrollFrequency != nil {
		settings.PayrollFrequency = identity.PayrollFrequency(*input.PayrollFrequency)
	}
	if input.PayrollDay != nil {
		settings.PayrollDay = *input.PayrollDay
	}
	if input.WeekStartDay != nil {
		settings.WeekStartDay = time.Weekday(*input.WeekStartDay)
	}
	if input.FiscalYearStart != nil {
		settings.FiscalYearStart = time.Month(*input.FiscalYearStart)
	}
	if input.Locale != nil {
		settings.Locale = *input.Locale
	}

	if err := company.UpdateSettings(settings); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update company settings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company settings")
	}

	s.logger.Info("Company settings updated", zap.String("company_id", id.String()))

	return toCompanyDTO(company), nil
}

// SetPlan updates a company's subscription plan
func (s *CompanyService) SetPlan(ctx context.Context, id uuid.UUID, plan string) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := company.SetPlan(identity.CompanyPlan(plan)); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to update company plan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company plan")
	}

	s.logger.Info("Company plan updated",
		zap.String("company_id", id.String()),
		zap.String("plan", plan))

	return toCompanyDTO(company), nil
}

// Activate activates a company
func (s *CompanyService) Activate(ctx context.Context, id uuid.UUID) (*CompanyDTO, error) {
	return s.transition(ctx, id, "activate", (*identity.Company).Activate)
}

// Deactivate deactivates a company
func (s *CompanyService) Deactivate(ctx context.Context, id uuid.UUID) (*CompanyDTO, error) {
	return s.transition(ctx, id, "deactivate", (*identity.Company).Deactivate)
}

// Suspend suspends a company
func (s *CompanyService) Suspend(ctx context.Context, id uuid.UUID) (*CompanyDTO, error) {
	return s.transition(ctx, id, "suspend", (*identity.Company).Suspend)
}

// Delete deletes a company
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return err
	}

	// Only inactive companies can be deleted
	if company.Status != identity.CompanyStatusInactive {
		return shared.NewDomainError("COMPANY_NOT_INACTIVE", "Only inactive companies can be deleted")
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete company", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
	}

	s.logger.Info("Company deleted", zap.String("company_id", id.String()))

	return nil
}

// GetStats returns company statistics
func (s *CompanyService) GetStats(ctx context.Context) (*CompanyStatsDTO, error) {
	stats := &CompanyStatsDTO{}

	counts := []struct {
		status identity.CompanyStatus
		target *int64
	}{
		{identity.CompanyStatusActive, &stats.Active},
		{identity.CompanyStatusTrial, &stats.Trial},
		{identity.CompanyStatusInactive, &stats.Inactive},
		{identity.CompanyStatusSuspended, &stats.Suspended},
	}
	for _, c := range counts {
		count, err := s.companyRepo.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to get stats")
		}
		*c.target = count
	}

	total, err := s.companyRepo.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to get stats")
	}
	stats.Total = total

	return stats, nil
}

// CompanyStatsDTO represents company statistics
type CompanyStatsDTO struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Trial     int64 `json:"trial"`
	Inactive  int64 `json:"inactive"`
	Suspended int64 `json:"suspended"`
}

func (s *CompanyService) findCompany(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
		}
		s.logger.Error("Failed to find company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find company")
	}
	return company, nil
}

func (s *CompanyService) transition(ctx context.Context, id uuid.UUID, action string, fn func(*identity.Company) error) (*CompanyDTO, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(company); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		s.logger.Error("Failed to "+action+" company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to "+action+" company")
	}

	s.logger.Info("Company "+action+"d", zap.String("company_id", id.String()))

	return toCompanyDTO(company), nil
}

// toCompanyDTO converts domain Company to CompanyDTO
func toCompanyDTO(company *identity.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:                 company.ID,
		Code:               company.Code,
		Name:               company.Name,
		LegalName:          company.LegalName,
		RegistrationNumber: company.RegistrationNumber,
		TaxID:              company.TaxID,
		Industry:           company.Industry,
		SizeBand:           company.SizeBand,
		Status:             string(company.Status),
		Plan:               string(company.Plan),
		ContactName:        company.ContactName,
		ContactPhone:       company.ContactPhone,
		ContactEmail:       company.ContactEmail,
		Website:            company.Website,
		Address:            company.Address.String(),
		Office: OfficeLocationDTO{
			Latitude:    company.Office.Latitude,
			Longitude:   company.Office.Longitude,
			PunchRadius: company.Office.PunchRadius,
			Configured:  company.Office.IsConfigured(),
		},
		LogoURL:     company.LogoURL,
		ExpiresAt:   company.ExpiresAt,
		TrialEndsAt: company.TrialEndsAt,
		Settings: CompanySettingsDTO{
			MaxEmployees:     company.Settings.MaxEmployees,
			Timezone:         company.Settings.Timezone,
			Currency:         company.Settings.Currency,
			PayrollFrequency: string(company.Settings.PayrollFrequency),
			PayrollDay:       company.Settings.PayrollDay,
			WeekStartDay:     int(company.Settings.WeekStartDay),
			FiscalYearStart:  int(company.Settings.FiscalYearStart),
			Locale:           company.Settings.Locale,
		},
		Notes:     company.Notes,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
