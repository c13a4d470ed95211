package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/hrms/backend/internal/application/identity"
)

// CompanyHandler handles company management API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompanyRequest represents a request to register a new company
type CreateCompanyRequest struct {
	Code         string `json:"code" binding:"required,min=2,max=50" example:"acme"`
	Name         string `json:"name" binding:"required,max=255" example:"Acme Corporation"`
	LegalName    string `json:"legal_name" binding:"max=255" example:"Acme Corporation Pvt Ltd"`
	Industry     string `json:"industry" binding:"max=100" example:"software"`
	SizeBand     string `json:"size_band" binding:"omitempty,oneof=1-10 11-50 51-200 201-500 500+" example:"51-200"`
	ContactName  string `json:"contact_name" binding:"max=100" example:"Jordan Reyes"`
	ContactPhone string `json:"contact_phone" binding:"max=50" example:"+1-202-555-0147"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email" example:"ops@acme.example.com"`
	Website      string `json:"website" binding:"max=255" example:"https://acme.example.com"`
	LogoURL      string `json:"logo_url" binding:"max=500"`
	Plan         string `json:"plan" binding:"omitempty,oneof=free basic pro enterprise" example:"basic"`
	Notes        string `json:"notes" binding:"max=1000"`
	TrialDays    int    `json:"trial_days" binding:"min=0,max=90" example:"14"`
}

// UpdateCompanyRequest represents a request to update company details
type UpdateCompanyRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	LegalName    *string `json:"legal_name" binding:"omitempty,max=255"`
	Industry     *string `json:"industry" binding:"omitempty,max=100"`
	SizeBand     *string `json:"size_band" binding:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Website      *string `json:"website" binding:"omitempty,max=255"`
	LogoURL      *string `json:"logo_url" binding:"omitempty,max=500"`
	Notes        *string `json:"notes" binding:"omitempty,max=1000"`
}

// CompanyAddressRequest represents a request to set the company address
type CompanyAddressRequest struct {
	Line1      string `json:"line1" binding:"required,max=255" example:"500 Market Street"`
	Line2      string `json:"line2" binding:"max=255"`
	City       string `json:"city" binding:"required,max=100" example:"San Francisco"`
	State      string `json:"state" binding:"max=100" example:"CA"`
	Country    string `json:"country" binding:"required,max=100" example:"US"`
	PostalCode string `json:"postal_code" binding:"max=20" example:"94105"`
}

// OfficeLocationRequest represents a request to configure the office geofence
type OfficeLocationRequest struct {
	Latitude    float64 `json:"latitude" binding:"required,gte=-90,lte=90" example:"37.7897"`
	Longitude   float64 `json:"longitude" binding:"required,gte=-180,lte=180" example:"-122.3981"`
	PunchRadius float64 `json:"punch_radius" binding:"required,gt=0" example:"150"`
}

// UpdateCompanySettingsRequest represents a request to update company settings
type UpdateCompanySettingsRequest struct {
	MaxEmployees     *int    `json:"max_employees" binding:"omitempty,min=1"`
	Timezone         *string `json:"timezone" binding:"omitempty,max=64" example:"America/New_York"`
	Currency         *string `json:"currency" binding:"omitempty,len=3" example:"USD"`
	PayrollFrequency *string `json:"payroll_frequency" binding:"omitempty,oneof=monthly biweekly weekly"`
	PayrollDay       *int    `json:"payroll_day" binding:"omitempty,min=1,max=31"`
	WeekStartDay     *int    `json:"week_start_day" binding:"omitempty,min=0,max=6"`
	FiscalYearStart  *int    `json:"fiscal_year_start" binding:"omitempty,min=1,max=12"`
	Locale           *string `json:"locale" binding:"omitempty,max=10" example:"en-US"`
}

// SetCompanyPlanRequest represents a request to change the subscription plan
type SetCompanyPlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free basic pro enterprise" example:"pro"`
}

// Create godoc
// @ID           createCompany
//
//	@Summary		Register company
//	@Description	Register a new company, optionally starting a trial
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCompanyRequest	true	"Company data"
//	@Success		201		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CreateCompanyInput{
		Code:         req.Code,
		Name:         req.Name,
		LegalName:    req.LegalName,
		Industry:     req.Industry,
		SizeBand:     req.SizeBand,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		Plan:         req.Plan,
		Notes:        req.Notes,
		TrialDays:    req.TrialDays,
	}

	company, err := h.companyService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, company)
}

// List godoc
// @ID           listCompanies
//
//	@Summary		List companies
//	@Description	List companies with pagination and filtering
//	@Tags			companies
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			page_size	query		int		false	"Page size (default 20, max 100)"
//	@Param			keyword		query		string	false	"Search by name or code"
//	@Param			status		query		string	false	"Filter by status"	Enums(trial, active, suspended, inactive)
//	@Param			sort_by		query		string	false	"Sort field"
//	@Param			sort_dir	query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]identityapp.CompanyDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	filter := identityapp.CompanyFilter{
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
	}

	result, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Companies, result.Total, result.Page, result.PageSize)
}

// GetStats godoc
// @ID           getCompanyStats
//
//	@Summary		Get company statistics
//	@Description	Get counts of companies grouped by status and plan
//	@Tags			companies
//	@Produce		json
//	@Success		200	{object}	APIResponse[identityapp.CompanyStatsDTO]
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/stats [get]
func (h *CompanyHandler) GetStats(c *gin.Context) {
	stats, err := h.companyService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// GetByCode godoc
// @ID           getCompanyByCode
//
//	@Summary		Get company by code
//	@Description	Get company details by its unique code
//	@Tags			companies
//	@Produce		json
//	@Param			code	path		string	true	"Company code"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/code/{code} [get]
func (h *CompanyHandler) GetByCode(c *gin.Context) {
	company, err := h.companyService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Get godoc
// @ID           getCompany
//
//	@Summary		Get company
//	@Description	Get company details by ID
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Update godoc
// @ID           updateCompany
//
//	@Summary		Update company
//	@Description	Update company profile fields
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Company ID"	format(uuid)
//	@Param			request	body		UpdateCompanyRequest	true	"Fields to update"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.UpdateCompanyInput{
		ID:           id,
		Name:         req.Name,
		LegalName:    req.LegalName,
		Industry:     req.Industry,
		SizeBand:     req.SizeBand,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		Notes:        req.Notes,
	}

	company, err := h.companyService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// SetAddress godoc
// @ID           setCompanyAddress
//
//	@Summary		Set company address
//	@Description	Set the registered address of a company
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Company ID"	format(uuid)
//	@Param			request	body		CompanyAddressRequest	true	"Address data"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/address [put]
func (h *CompanyHandler) SetAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req CompanyAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CompanyAddressInput{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	company, err := h.companyService.SetAddress(c.Request.Context(), id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// SetOfficeLocation godoc
// @ID           setCompanyOfficeLocation
//
//	@Summary		Set office location
//	@Description	Configure the office coordinates and punch radius for geofenced attendance
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Company ID"	format(uuid)
//	@Param			request	body		OfficeLocationRequest	true	"Office geofence data"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/office-location [put]
func (h *CompanyHandler) SetOfficeLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req OfficeLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.OfficeLocationInput{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PunchRadius: req.PunchRadius,
	}

	company, err := h.companyService.SetOfficeLocation(c.Request.Context(), id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// UpdateSettings godoc
// @ID           updateCompanySettings
//
//	@Summary		Update company settings
//	@Description	Update payroll, locale and workweek settings
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Company ID"	format(uuid)
//	@Param			request	body		UpdateCompanySettingsRequest	true	"Settings to update"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/settings [put]
func (h *CompanyHandler) UpdateSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req UpdateCompanySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CompanySettingsInput{
		MaxEmployees:     req.MaxEmployees,
		Timezone:         req.Timezone,
		Currency:         req.Currency,
		PayrollFrequency: req.PayrollFrequency,
		PayrollDay:       req.PayrollDay,
		WeekStartDay:     req.WeekStartDay,
		FiscalYearStart:  req.FiscalYearStart,
		Locale:           req.Locale,
	}

	company, err := h.companyService.UpdateSettings(c.Request.Context(), id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// SetPlan godoc
// @ID           setCompanyPlan
//
//	@Summary		Change subscription plan
//	@Description	Change the subscription plan of a company
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Company ID"	format(uuid)
//	@Param			request	body		SetCompanyPlanRequest	true	"New plan"
//	@Success		200		{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/plan [put]
func (h *CompanyHandler) SetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req SetCompanyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.SetPlan(c.Request.Context(), id, req.Plan)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Activate godoc
// @ID           activateCompany
//
//	@Summary		Activate company
//	@Description	Activate a trial, suspended or inactive company
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/activate [post]
func (h *CompanyHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	company, err := h.companyService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Deactivate godoc
// @ID           deactivateCompany
//
//	@Summary		Deactivate company
//	@Description	Deactivate a company, blocking sign-ins for its users
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/deactivate [post]
func (h *CompanyHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	company, err := h.companyService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Suspend godoc
// @ID           suspendCompany
//
//	@Summary		Suspend company
//	@Description	Suspend a company for non-payment or policy violation
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.CompanyDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id}/suspend [post]
func (h *CompanyHandler) Suspend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	company, err := h.companyService.Suspend(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Delete godoc
// @ID           deleteCompany
//
//	@Summary		Delete company
//	@Description	Soft delete an inactive company
//	@Tags			companies
//	@Produce		json
//	@Param			id	path	string	true	"Company ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
