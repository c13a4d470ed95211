package identity

import (
	"github.com/hrms/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCompany = "Company"

// Event type constants
const (
	EventTypeCompanyCreated               = "CompanyCreated"
	EventTypeCompanyUpdated               = "CompanyUpdated"
	EventTypeCompanyStatusChanged         = "CompanyStatusChanged"
	EventTypeCompanyPlanChanged           = "CompanyPlanChanged"
	EventTypeCompanyOfficeLocationChanged = "CompanyOfficeLocationChanged"
	EventTypeCompanyDeleted               = "CompanyDeleted"
)

// CompanyCreatedEvent is published when a new company is created
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	Code   string        `json:"code"`
	Name   string        `json:"name"`
	Status CompanyStatus `json:"status"`
	Plan   CompanyPlan   `json:"plan"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		Name:            company.Name,
		Status:          company.Status,
		Plan:            company.Plan,
	}
}

// CompanyUpdatedEvent is published when a company is updated
type CompanyUpdatedEvent struct {
	shared.BaseDomainEvent
	Code      string `json:"code"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name,omitempty"`
	Industry  string `json:"industry,omitempty"`
}

// NewCompanyUpdatedEvent creates a new CompanyUpdatedEvent
func NewCompanyUpdatedEvent(company *Company) *CompanyUpdatedEvent {
	return &CompanyUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyUpdated, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		Name:            company.Name,
		LegalName:       company.LegalName,
		Industry:        company.Industry,
	}
}

// CompanyStatusChangedEvent is published when a company's status changes
type CompanyStatusChangedEvent struct {
	shared.BaseDomainEvent
	Code      string        `json:"code"`
	OldStatus CompanyStatus `json:"old_status"`
	NewStatus CompanyStatus `json:"new_status"`
}

// NewCompanyStatusChangedEvent creates a new CompanyStatusChangedEvent
func NewCompanyStatusChangedEvent(company *Company, oldStatus, newStatus CompanyStatus) *CompanyStatusChangedEvent {
	return &CompanyStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyStatusChanged, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// CompanyPlanChangedEvent is published when a company's subscription plan changes
type CompanyPlanChangedEvent struct {
	shared.BaseDomainEvent
	Code    string      `json:"code"`
	OldPlan CompanyPlan `json:"old_plan"`
	NewPlan CompanyPlan `json:"new_plan"`
}

// NewCompanyPlanChangedEvent creates a new CompanyPlanChangedEvent
func NewCompanyPlanChangedEvent(company *Company, oldPlan, newPlan CompanyPlan) *CompanyPlanChangedEvent {
	return &CompanyPlanChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyPlanChanged, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		OldPlan:         oldPlan,
		NewPlan:         newPlan,
	}
}

// CompanyOfficeLocationChangedEvent is published when the office geofence changes
type CompanyOfficeLocationChangedEvent struct {
	shared.BaseDomainEvent
	Code        string  `json:"code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PunchRadius float64 `json:"punch_radius"`
}

// NewCompanyOfficeLocationChangedEvent creates a new CompanyOfficeLocationChangedEvent
func NewCompanyOfficeLocationChangedEvent(company *Company) *CompanyOfficeLocationChangedEvent {
	return &CompanyOfficeLocationChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyOfficeLocationChanged, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		Latitude:        company.Office.Latitude,
		Longitude:       company.Office.Longitude,
		PunchRadius:     company.Office.PunchRadius,
	}
}

// CompanyDeletedEvent is published when a company is deleted
type CompanyDeletedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCompanyDeletedEvent creates a new CompanyDeletedEvent
func NewCompanyDeletedEvent(company *Company) *CompanyDeletedEvent {
	return &CompanyDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyDeleted, AggregateTypeCompany, company.ID, company.ID),
		Code:            company.Code,
		Name:            company.Name,
	}
}
