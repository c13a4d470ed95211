package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	assetapp "github.com/hrms/backend/internal/application/asset"
	"github.com/hrms/backend/internal/domain/shared"
)

// AssetHandler handles company asset API endpoints
type AssetHandler struct {
	BaseHandler
	assetService *assetapp.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *assetapp.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// RegisterAssetRequest represents a request to register an asset
type RegisterAssetRequest struct {
	Tag          string `json:"tag" binding:"required,max=50" example:"LAP-0042"`
	Type         string `json:"type" binding:"required,oneof=laptop desktop monitor phone tablet furniture vehicle access_card software_license other" example:"laptop"`
	Name         string `json:"name" binding:"required,max=200" example:"MacBook Pro 14"`
	Description  string `json:"description" binding:"max=1000"`
	Brand        string `json:"brand" binding:"max=100" example:"Apple"`
	Model        string `json:"model" binding:"max=100" example:"A2918"`
	SerialNumber string `json:"serial_number" binding:"max=100"`
	Location     string `json:"location" binding:"max=200" example:"HQ floor 3"`

	PurchaseDate     *time.Time      `json:"purchase_date"`
	PurchaseCost     decimal.Decimal `json:"purchase_cost" example:"2100"`
	Currency         string          `json:"currency" binding:"omitempty,len=3" example:"USD"`
	DepreciationRate decimal.Decimal `json:"depreciation_rate" example:"25"`
	WarrantyExpiry   *time.Time      `json:"warranty_expiry"`
	VendorName       string          `json:"vendor_name" binding:"max=200"`
	VendorContact    string          `json:"vendor_contact" binding:"max=200"`
	InvoiceNumber    string          `json:"invoice_number" binding:"max=100"`
}

// AssignAssetRequest represents a request to hand an asset to an employee
type AssignAssetRequest struct {
	EmployeeID     uuid.UUID  `json:"employee_id" binding:"required"`
	AssignedDate   time.Time  `json:"assigned_date" binding:"required" example:"2026-08-25T00:00:00Z"`
	Reason         string     `json:"reason" binding:"max=500" example:"New hire equipment"`
	ExpectedReturn *time.Time `json:"expected_return"`
}

// ReturnAssetRequest represents a request to take an asset back
type ReturnAssetRequest struct {
	ReturnDate time.Time `json:"return_date" binding:"required" example:"2026-08-28T00:00:00Z"`
	Condition  string    `json:"condition" binding:"required,oneof=new good fair poor damaged" example:"good"`
	Reason     string    `json:"reason" binding:"max=500"`
}

// CompleteRepairRequest records the post-repair condition
type CompleteRepairRequest struct {
	Condition string `json:"condition" binding:"required,oneof=new good fair poor damaged" example:"good"`
}

// RecordMaintenanceRequest represents a maintenance log entry
type RecordMaintenanceRequest struct {
	MaintenanceType     string          `json:"maintenance_type" binding:"required,oneof=preventive corrective upgrade inspection" example:"corrective"`
	Description         string          `json:"description" binding:"required,max=1000"`
	Cost                decimal.Decimal `json:"cost" example:"120"`
	Currency            string          `json:"currency" binding:"omitempty,len=3" example:"USD"`
	MaintenanceDate     time.Time       `json:"maintenance_date" binding:"required"`
	ServiceProvider     string          `json:"service_provider" binding:"max=200"`
	TechnicianName      string          `json:"technician_name" binding:"max=200"`
	ServiceTicket       string          `json:"service_ticket" binding:"max=100"`
	IsWarrantyCovered   bool            `json:"is_warranty_covered"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date"`
}

// ReportLostRequest marks an asset lost or stolen
type ReportLostRequest struct {
	Stolen bool `json:"stolen" example:"false"`
}

// Register godoc
// @ID           registerAsset
//
//	@Summary		Register asset
//	@Description	Register a new asset in the company inventory
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			request		body		RegisterAssetRequest	true	"Asset data"
//	@Success		201			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets [post]
func (h *AssetHandler) Register(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := assetapp.RegisterAssetInput{
		CompanyID:        companyID,
		Tag:              req.Tag,
		Type:             req.Type,
		Name:             req.Name,
		Description:      req.Description,
		Brand:            req.Brand,
		Model:            req.Model,
		SerialNumber:     req.SerialNumber,
		Location:         req.Location,
		PurchaseDate:     req.PurchaseDate,
		PurchaseCost:     req.PurchaseCost,
		Currency:         req.Currency,
		DepreciationRate: req.DepreciationRate,
		WarrantyExpiry:   req.WarrantyExpiry,
		VendorName:       req.VendorName,
		VendorContact:    req.VendorContact,
		InvoiceNumber:    req.InvoiceNumber,
	}

	item, err := h.assetService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// Assign godoc
// @ID           assignAsset
//
//	@Summary		Assign asset
//	@Description	Hand an available asset to an employee
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Asset ID"	format(uuid)
//	@Param			request		body		AssignAssetRequest	true	"Assignment details"
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/assign [post]
func (h *AssetHandler) Assign(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	assignedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := assetapp.AssignAssetInput{
		CompanyID:      companyID,
		AssetID:        assetID,
		EmployeeID:     req.EmployeeID,
		AssignedBy:     assignedBy,
		AssignedDate:   req.AssignedDate,
		Reason:         req.Reason,
		ExpectedReturn: req.ExpectedReturn,
	}

	item, err := h.assetService.Assign(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Return godoc
// @ID           returnAsset
//
//	@Summary		Return asset
//	@Description	Take an assigned asset back and record its condition
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Asset ID"	format(uuid)
//	@Param			request		body		ReturnAssetRequest	true	"Return details"
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/return [post]
func (h *AssetHandler) Return(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req ReturnAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := assetapp.ReturnAssetInput{
		CompanyID:  companyID,
		AssetID:    assetID,
		ReturnDate: req.ReturnDate,
		Condition:  req.Condition,
		Reason:     req.Reason,
	}

	item, err := h.assetService.Return(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// SendForRepair godoc
// @ID           sendAssetForRepair
//
//	@Summary		Send asset for repair
//	@Description	Move an asset into the repair state
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Asset ID"	format(uuid)
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/repair [post]
func (h *AssetHandler) SendForRepair(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	item, err := h.assetService.SendForRepair(c.Request.Context(), companyID, assetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// CompleteRepair godoc
// @ID           completeAssetRepair
//
//	@Summary		Complete asset repair
//	@Description	Bring a repaired asset back into service
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string					false	"Company ID (optional for dev)"
//	@Param			id			path		string					true	"Asset ID"	format(uuid)
//	@Param			request		body		CompleteRepairRequest	true	"Post-repair condition"
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/repair/complete [post]
func (h *AssetHandler) CompleteRepair(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req CompleteRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.assetService.CompleteRepair(c.Request.Context(), companyID, assetID, req.Condition)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// RecordMaintenance godoc
// @ID           recordAssetMaintenance
//
//	@Summary		Record asset maintenance
//	@Description	Append a maintenance log entry to an asset
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			id			path		string						true	"Asset ID"	format(uuid)
//	@Param			request		body		RecordMaintenanceRequest	true	"Maintenance entry"
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/maintenance [post]
func (h *AssetHandler) RecordMaintenance(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req RecordMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := assetapp.MaintenanceInput{
		CompanyID:           companyID,
		AssetID:             assetID,
		MaintenanceType:     req.MaintenanceType,
		Description:         req.Description,
		Cost:                req.Cost,
		Currency:            req.Currency,
		MaintenanceDate:     req.MaintenanceDate,
		ServiceProvider:     req.ServiceProvider,
		TechnicianName:      req.TechnicianName,
		ServiceTicket:       req.ServiceTicket,
		IsWarrantyCovered:   req.IsWarrantyCovered,
		NextMaintenanceDate: req.NextMaintenanceDate,
	}

	item, err := h.assetService.RecordMaintenance(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Retire godoc
// @ID           retireAsset
//
//	@Summary		Retire asset
//	@Description	Permanently remove an asset from service
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Asset ID"	format(uuid)
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/retire [post]
func (h *AssetHandler) Retire(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	item, err := h.assetService.Retire(c.Request.Context(), companyID, assetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// ReportLost godoc
// @ID           reportAssetLost
//
//	@Summary		Report asset lost
//	@Description	Mark an asset as lost or stolen
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string				false	"Company ID (optional for dev)"
//	@Param			id			path		string				true	"Asset ID"	format(uuid)
//	@Param			request		body		ReportLostRequest	false	"Loss details"
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id}/report-lost [post]
func (h *AssetHandler) ReportLost(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req ReportLostRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.assetService.ReportLost(c.Request.Context(), companyID, assetID, req.Stolen)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Get godoc
// @ID           getAsset
//
//	@Summary		Get asset
//	@Description	Retrieve an asset with its assignment and maintenance history
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			id			path		string	true	"Asset ID"	format(uuid)
//	@Success		200			{object}	APIResponse[assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	item, err := h.assetService.Get(c.Request.Context(), companyID, assetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List godoc
// @ID           listAssets
//
//	@Summary		List assets
//	@Description	Retrieve a paginated list of assets with optional status and type filters
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			status		query		string	false	"Asset status"	Enums(available, assigned, under_repair, retired, lost)
//	@Param			type		query		string	false	"Asset type"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	page, pageSize := parsePagination(c)
	filter := shared.Filter{Page: page, PageSize: pageSize}

	result, err := h.assetService.List(c.Request.Context(), companyID, c.Query("status"), c.Query("type"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Assets, result.Total, result.Page, result.PageSize)
}

// ListByEmployee godoc
// @ID           listEmployeeAssets
//
//	@Summary		List employee assets
//	@Description	Retrieve the assets currently assigned to an employee
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			employee_id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200			{object}	APIResponse[[]assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/employees/{employee_id} [get]
func (h *AssetHandler) ListByEmployee(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	items, err := h.assetService.ListByEmployee(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// WarrantyExpiring godoc
// @ID           listWarrantyExpiringAssets
//
//	@Summary		List assets with expiring warranty
//	@Description	Retrieve assets whose warranty expires within the given window
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Param			within_days	query		int		false	"Window in days"	default(30)
//	@Success		200			{object}	APIResponse[[]assetapp.AssetDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/warranty-expiring [get]
func (h *AssetHandler) WarrantyExpiring(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	withinDays, err := strconv.Atoi(c.DefaultQuery("within_days", "30"))
	if err != nil || withinDays < 1 {
		withinDays = 30
	}

	items, err := h.assetService.WarrantyExpiring(c.Request.Context(), companyID, withinDays)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, items)
}

// StatusCounts godoc
// @ID           getAssetStatusCounts
//
//	@Summary		Asset status counts
//	@Description	Retrieve the number of assets per status
//	@Tags			assets
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[map[string]int64]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/stats/status [get]
func (h *AssetHandler) StatusCounts(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	counts, err := h.assetService.StatusCounts(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, counts)
}
