package asset

import (
	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeAsset = "Asset"

// Event type constants
const (
	EventTypeAssetAssigned = "AssetAssigned"
	EventTypeAssetReturned = "AssetReturned"
)

// AssetAssignedEvent is published when an asset is handed to an employee
type AssetAssignedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Tag        string    `json:"tag"`
	AssetType  Type      `json:"asset_type"`
	AssetName  string    `json:"asset_name"`
}

// NewAssetAssignedEvent creates a new AssetAssignedEvent
func NewAssetAssignedEvent(a *Asset, employeeID uuid.UUID) *AssetAssignedEvent {
	return &AssetAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetAssigned, AggregateTypeAsset, a.ID, a.TenantID),
		EmployeeID:      employeeID,
		Tag:             a.Tag,
		AssetType:       a.Type,
		AssetName:       a.Name,
	}
}

// AssetReturnedEvent is published when an asset comes back
type AssetReturnedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	Tag        string    `json:"tag"`
	Condition  Condition `json:"condition"`
}

// NewAssetReturnedEvent creates a new AssetReturnedEvent
func NewAssetReturnedEvent(a *Asset, employeeID uuid.UUID) *AssetReturnedEvent {
	return &AssetReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetReturned, AggregateTypeAsset, a.ID, a.TenantID),
		EmployeeID:      employeeID,
		Tag:             a.Tag,
		Condition:       a.Condition,
	}
}
