package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/asset"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/shared/valueobject"
	"github.com/hrms/backend/internal/domain/workforce"
)

// AssetService handles asset registration, assignment and maintenance
type AssetService struct {
	assetRepo      asset.AssetRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(
	assetRepo asset.AssetRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AssetService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RegisterAssetInput contains input for registering an asset
type RegisterAssetInput struct {
	CompanyID    uuid.UUID
	Tag          string
	Type         string
	Name         string
	Description  string
	Brand        string
	Model        string
	SerialNumber string
	Location     string

	PurchaseDate     *time.Time
	PurchaseCost     decimal.Decimal
	Currency         string
	DepreciationRate decimal.Decimal
	WarrantyExpiry   *time.Time
	VendorName       string
	VendorContact    string
	InvoiceNumber    string
}

// AssignAssetInput contains input for assigning an asset
type AssignAssetInput struct {
	CompanyID      uuid.UUID
	AssetID        uuid.UUID
	EmployeeID     uuid.UUID
	AssignedBy     uuid.UUID
	AssignedDate   time.Time
	Reason         string
	ExpectedReturn *time.Time
}

// ReturnAssetInput contains input for returning an assigned asset
type ReturnAssetInput struct {
	CompanyID  uuid.UUID
	AssetID    uuid.UUID
	ReturnDate time.Time
	Condition  string
	Reason     string
}

// MaintenanceInput contains input for recording a maintenance entry
type MaintenanceInput struct {
	CompanyID           uuid.UUID
	AssetID             uuid.UUID
	MaintenanceType     string
	Description         string
	Cost                decimal.Decimal
	Currency            string
	MaintenanceDate     time.Time
	ServiceProvider     string
	TechnicianName      string
	ServiceTicket       string
	IsWarrantyCovered   bool
	NextMaintenanceDate *time.Time
}

// AssignmentDTO represents one handout of an asset
type AssignmentDTO struct {
	EmployeeID         uuid.UUID  `json:"employee_id"`
	AssignedDate       string     `json:"assigned_date"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
	ReturnDate         *time.Time `json:"return_date,omitempty"`
	Reason             string     `json:"reason,omitempty"`
	ReturnReason       string     `json:"return_reason,omitempty"`
	ConditionAtIssue   string     `json:"condition_at_issue,omitempty"`
	ConditionAtReturn  string     `json:"condition_at_return,omitempty"`
	IsActive           bool       `json:"is_active"`
}

// MaintenanceDTO represents one service record
type MaintenanceDTO struct {
	MaintenanceType     string     `json:"maintenance_type"`
	Description         string     `json:"description"`
	Cost                string     `json:"cost"`
	MaintenanceDate     string     `json:"maintenance_date"`
	ServiceProvider     string     `json:"service_provider,omitempty"`
	TechnicianName      string     `json:"technician_name,omitempty"`
	ServiceTicket       string     `json:"service_ticket,omitempty"`
	IsWarrantyCovered   bool       `json:"is_warranty_covered"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
}

// AssetDTO represents an asset
type AssetDTO struct {
	ID           uuid.UUID `json:"id"`
	Tag          string    `json:"tag"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`

	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	PurchaseCost   string     `json:"purchase_cost,omitempty"`
	CurrentValue   string     `json:"current_value,omitempty"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`
	VendorName     string     `json:"vendor_name,omitempty"`

	Status    string `json:"status"`
	Condition string `json:"condition"`

	AssignedTo  *uuid.UUID       `json:"assigned_to,omitempty"`
	Assignments []AssignmentDTO  `json:"assignments,omitempty"`
	Maintenance []MaintenanceDTO `json:"maintenance,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AssetListResult represents a paginated asset list
type AssetListResult struct {
	Assets     []AssetDTO `json:"assets"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// Register registers a new asset in the inventory
func (s *AssetService) Register(ctx context.Context, input RegisterAssetInput) (*AssetDTO, error) {
	exists, err := s.assetRepo.ExistsByTag(ctx, input.CompanyID, input.Tag)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check tag availability")
	}
	if exists {
		return nil, shared.NewDomainError("TAG_EXISTS", "Asset tag already exists")
	}

	item, err := asset.NewAsset(input.CompanyID, input.Tag, asset.Type(input.Type), input.Name)
	if err != nil {
		return nil, err
	}
	if input.Description != "" || input.Brand != "" || input.Model != "" || input.SerialNumber != "" || input.Location != "" {
		if err := item.Update(input.Name, input.Description, input.Brand, input.Model, input.SerialNumber, input.Location); err != nil {
			return nil, err
		}
	}

	if input.PurchaseDate != nil || input.PurchaseCost.IsPositive() {
		cost, err := s.toMoney(input.PurchaseCost, input.Currency)
		if err != nil {
			return nil, err
		}
		info := asset.PurchaseInfo{
			PurchaseDate:     input.PurchaseDate,
			PurchaseCost:     cost,
			DepreciationRate: input.DepreciationRate,
			WarrantyExpiry:   input.WarrantyExpiry,
			VendorName:       input.VendorName,
			VendorContact:    input.VendorContact,
			InvoiceNumber:    input.InvoiceNumber,
		}
		if err := item.SetPurchaseInfo(info); err != nil {
			return nil, err
		}
	}

	if err := s.assetRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to register asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register asset")
	}

	s.logger.Info("Asset registered",
		zap.String("asset_id", item.ID.String()),
		zap.String("tag", item.Tag))

	return toAssetDTO(item, false), nil
}

// Assign hands an asset to a working employee
func (s *AssetService) Assign(ctx context.Context, input AssignAssetInput) (*AssetDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}
	if !employee.Status.IsWorking() {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_WORKING", "Assets can only be assigned to working employees")
	}

	item, err := s.findAsset(ctx, input.CompanyID, input.AssetID)
	if err != nil {
		return nil, err
	}

	assignedDate := input.AssignedDate
	if assignedDate.IsZero() {
		assignedDate = time.Now()
	}
	if err := item.AssignTo(input.EmployeeID, input.AssignedBy, assignedDate, input.Reason, input.ExpectedReturn); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to assign asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign asset")
	}

	s.publishDomainEvents(ctx, item)

	s.logger.Info("Asset assigned",
		zap.String("asset_id", item.ID.String()),
		zap.String("employee_id", input.EmployeeID.String()))

	return toAssetDTO(item, true), nil
}

// Return closes the active assignment
func (s *AssetService) Return(ctx context.Context, input ReturnAssetInput) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, input.CompanyID, input.AssetID)
	if err != nil {
		return nil, err
	}

	returnDate := input.ReturnDate
	if returnDate.IsZero() {
		returnDate = time.Now()
	}
	if err := item.Return(returnDate, asset.Condition(input.Condition), input.Reason); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}

	s.publishDomainEvents(ctx, item)

	return toAssetDTO(item, true), nil
}

// SendForRepair moves the asset into repair
func (s *AssetService) SendForRepair(ctx context.Context, companyID, assetID uuid.UUID) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if err := item.SendForRepair(); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}
	return toAssetDTO(item, false), nil
}

// CompleteRepair brings the asset back from repair
func (s *AssetService) CompleteRepair(ctx context.Context, companyID, assetID uuid.UUID, condition string) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if err := item.CompleteRepair(asset.Condition(condition)); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}
	return toAssetDTO(item, false), nil
}

// RecordMaintenance appends a service record to the asset
func (s *AssetService) RecordMaintenance(ctx context.Context, input MaintenanceInput) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, input.CompanyID, input.AssetID)
	if err != nil {
		return nil, err
	}

	cost, err := s.toMoney(input.Cost, input.Currency)
	if err != nil {
		return nil, err
	}
	record := asset.MaintenanceRecord{
		MaintenanceType:     input.MaintenanceType,
		Description:         input.Description,
		Cost:                cost,
		MaintenanceDate:     input.MaintenanceDate,
		ServiceProvider:     input.ServiceProvider,
		TechnicianName:      input.TechnicianName,
		ServiceTicket:       input.ServiceTicket,
		IsWarrantyCovered:   input.IsWarrantyCovered,
		NextMaintenanceDate: input.NextMaintenanceDate,
	}
	if err := item.AddMaintenance(record); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}
	return toAssetDTO(item, true), nil
}

// Retire permanently removes the asset from circulation
func (s *AssetService) Retire(ctx context.Context, companyID, assetID uuid.UUID) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if err := item.Retire(); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}
	return toAssetDTO(item, false), nil
}

// ReportLost marks the asset lost or stolen
func (s *AssetService) ReportLost(ctx context.Context, companyID, assetID uuid.UUID, stolen bool) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	if err := item.ReportLost(stolen); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, item); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}

	s.logger.Warn("Asset reported lost",
		zap.String("asset_id", assetID.String()),
		zap.Bool("stolen", stolen))

	return toAssetDTO(item, false), nil
}

// Get retrieves an asset with its history
func (s *AssetService) Get(ctx context.Context, companyID, assetID uuid.UUID) (*AssetDTO, error) {
	item, err := s.findAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	return toAssetDTO(item, true), nil
}

// List retrieves assets, optionally filtered by status or type
func (s *AssetService) List(ctx context.Context, companyID uuid.UUID, status, assetType string, filter shared.Filter) (*AssetListResult, error) {
	var page *shared.Paginated[*asset.Asset]
	var err error
	switch {
	case status != "":
		page, err = s.assetRepo.FindByStatus(ctx, companyID, asset.Status(status), filter)
	case assetType != "":
		page, err = s.assetRepo.FindByType(ctx, companyID, asset.Type(assetType), filter)
	default:
		page, err = s.assetRepo.FindAll(ctx, companyID, filter)
	}
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assets")
	}

	dtos := make([]AssetDTO, len(page.Items))
	for i, item := range page.Items {
		dtos[i] = *toAssetDTO(item, false)
	}
	return &AssetListResult{
		Assets:     dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// ListByEmployee retrieves assets currently held by an employee
func (s *AssetService) ListByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]AssetDTO, error) {
	assets, err := s.assetRepo.FindAssignedToEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assigned assets")
	}

	dtos := make([]AssetDTO, len(assets))
	for i, item := range assets {
		dtos[i] = *toAssetDTO(item, false)
	}
	return dtos, nil
}

// WarrantyExpiring lists assets whose warranty ends within the given days
func (s *AssetService) WarrantyExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]AssetDTO, error) {
	before := time.Now().AddDate(0, 0, withinDays)
	assets, err := s.assetRepo.FindWarrantyExpiring(ctx, companyID, before)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list expiring warranties")
	}

	dtos := make([]AssetDTO, len(assets))
	for i, item := range assets {
		dtos[i] = *toAssetDTO(item, false)
	}
	return dtos, nil
}

// StatusCounts returns asset counts per status
func (s *AssetService) StatusCounts(ctx context.Context, companyID uuid.UUID) (map[string]int64, error) {
	counts, err := s.assetRepo.CountByStatus(ctx, companyID)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to count assets")
	}
	result := make(map[string]int64, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return result, nil
}

func (s *AssetService) toMoney(amount decimal.Decimal, currency string) (valueobject.Money, error) {
	cur := valueobject.Currency(currency)
	if cur == "" {
		cur = valueobject.DefaultCurrency
	}
	return valueobject.NewMoney(amount, cur)
}

func (s *AssetService) findAsset(ctx context.Context, companyID, id uuid.UUID) (*asset.Asset, error) {
	item, err := s.assetRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Asset not found")
		}
		s.logger.Error("Failed to find asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find asset")
	}
	return item, nil
}

// publishDomainEvents publishes pending domain events from the asset aggregate
func (s *AssetService) publishDomainEvents(ctx context.Context, item *asset.Asset) {
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	item.ClearDomainEvents()
}

// toAssetDTO converts a domain Asset to its DTO
func toAssetDTO(a *asset.Asset, includeHistory bool) *AssetDTO {
	dto := &AssetDTO{
		ID:             a.ID,
		Tag:            a.Tag,
		SerialNumber:   a.SerialNumber,
		Type:           string(a.Type),
		Brand:          a.Brand,
		Model:          a.Model,
		Name:           a.Name,
		Description:    a.Description,
		Location:       a.Location,
		PurchaseDate:   a.Purchase.PurchaseDate,
		WarrantyExpiry: a.Purchase.WarrantyExpiry,
		VendorName:     a.Purchase.VendorName,
		Status:         string(a.Status),
		Condition:      string(a.Condition),
		CreatedAt:      a.CreatedAt,
	}
	if !a.Purchase.PurchaseCost.IsZero() {
		dto.PurchaseCost = a.Purchase.PurchaseCost.String()
	}
	if !a.CurrentValue.IsZero() {
		dto.CurrentValue = a.CurrentValue.String()
	}
	if assignment := a.ActiveAssignment(); assignment != nil {
		dto.AssignedTo = &assignment.EmployeeID
	}
	if includeHistory {
		dto.Assignments = make([]AssignmentDTO, len(a.Assignments))
		for i, assignment := range a.Assignments {
			dto.Assignments[i] = AssignmentDTO{
				EmployeeID:         assignment.EmployeeID,
				AssignedDate:       assignment.AssignedDate.Format("2006-01-02"),
				ExpectedReturnDate: assignment.ExpectedReturnDate,
				ReturnDate:         assignment.ReturnDate,
				Reason:             assignment.Reason,
				ReturnReason:       assignment.ReturnReason,
				ConditionAtIssue:   string(assignment.ConditionAtIssue),
				ConditionAtReturn:  string(assignment.ConditionAtReturn),
				IsActive:           assignment.IsActive,
			}
		}
		dto.Maintenance = make([]MaintenanceDTO, len(a.MaintenanceRecords))
		for i, record := range a.MaintenanceRecords {
			dto.Maintenance[i] = MaintenanceDTO{
				MaintenanceType:     record.MaintenanceType,
				Description:         record.Description,
				Cost:                record.Cost.String(),
				MaintenanceDate:     record.MaintenanceDate.Format("2006-01-02"),
				ServiceProvider:     record.ServiceProvider,
				TechnicianName:      record.TechnicianName,
				ServiceTicket:       record.ServiceTicket,
				IsWarrantyCovered:   record.IsWarrantyCovered,
				NextMaintenanceDate: record.NextMaintenanceDate,
			}
		}
	}
	return dto
}
