package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	TenantAggregateModel
	Username           string              `gorm:"type:varchar(100);not null"`
	Email              string              `gorm:"type:varchar(200)"`
	EmailVerified      bool                `gorm:"not null;default:false"`
	Phone              string              `gorm:"type:varchar(50)"`
	PasswordHash       string              `gorm:"type:varchar(255);not null"`
	DisplayName        string              `gorm:"type:varchar(200)"`
	Avatar             string              `gorm:"type:varchar(500)"`
	Status             identity.UserStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	EmployeeID         *uuid.UUID          `gorm:"type:uuid;index"`
	Timezone           string              `gorm:"type:varchar(50);not null;default:'UTC'"`
	Language           string              `gorm:"type:varchar(10);not null;default:'en'"`
	LastLoginAt        *time.Time          `gorm:"index"`
	LastLoginIP        string              `gorm:"type:varchar(45)"`
	FailedAttempts     int                 `gorm:"not null;default:0"`
	LockedUntil        *time.Time
	PasswordChangedAt  *time.Time
	MustChangePassword bool   `gorm:"not null;default:false"`
	Notes              string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
// Note: RoleIDs must be loaded separately by the repository.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID:  m.TenantID,
			CreatedBy: m.CreatedBy,
		},
		Username:           m.Username,
		Email:              m.Email,
		EmailVerified:      m.EmailVerified,
		Phone:              m.Phone,
		PasswordHash:       m.PasswordHash,
		DisplayName:        m.DisplayName,
		Avatar:             m.Avatar,
		Status:             m.Status,
		EmployeeID:         m.EmployeeID,
		Timezone:           m.Timezone,
		Language:           m.Language,
		RoleIDs:            make([]uuid.UUID, 0), // Loaded separately
		LastLoginAt:        m.LastLoginAt,
		LastLoginIP:        m.LastLoginIP,
		FailedAttempts:     m.FailedAttempts,
		LockedUntil:        m.LockedUntil,
		PasswordChangedAt:  m.PasswordChangedAt,
		MustChangePassword: m.MustChangePassword,
		Notes:              m.Notes,
	}
	return user
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	m.Username = u.Username
	m.Email = u.Email
	m.EmailVerified = u.EmailVerified
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Avatar = u.Avatar
	m.Status = u.Status
	m.EmployeeID = u.EmployeeID
	m.Timezone = u.Timezone
	m.Language = u.Language
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
	m.PasswordChangedAt = u.PasswordChangedAt
	m.MustChangePassword = u.MustChangePassword
	m.Notes = u.Notes
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// UserRoleModel is the persistence model for the UserRole relationship.
type UserRoleModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// ToDomain converts the persistence model to a domain UserRole.
func (m *UserRoleModel) ToDomain() identity.UserRole {
	return identity.UserRole{
		UserID:    m.UserID,
		RoleID:    m.RoleID,
		TenantID:  m.TenantID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain UserRole.
func (m *UserRoleModel) FromDomain(ur identity.UserRole) {
	m.UserID = ur.UserID
	m.RoleID = ur.RoleID
	m.TenantID = ur.TenantID
	m.CreatedAt = ur.CreatedAt
}

// DepartmentModel is the persistence model for the Department domain entity.
type DepartmentModel struct {
	TenantAggregateModel
	Code        string                    `gorm:"type:varchar(50);not null"`
	Name        string                    `gorm:"type:varchar(200);not null"`
	Description string                    `gorm:"type:text"`
	ParentID    *uuid.UUID                `gorm:"type:uuid;index"`
	Path        string                    `gorm:"type:varchar(1000);not null;index"`
	Level       int                       `gorm:"not null;default:0"`
	SortOrder   int                       `gorm:"not null;default:0"`
	ManagerID   *uuid.UUID                `gorm:"type:uuid;index"`
	Status      identity.DepartmentStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Metadata    string                    `gorm:"type:jsonb;default:'{}'"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity.
func (m *DepartmentModel) ToDomain() *identity.Department {
	dept := &identity.Department{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID:  m.TenantID,
			CreatedBy: m.CreatedBy,
		},
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		ParentID:    m.ParentID,
		Path:        m.Path,
		Level:       m.Level,
		SortOrder:   m.SortOrder,
		ManagerID:   m.ManagerID,
		Status:      m.Status,
		Metadata:    make(map[string]string), // Parsed from JSON by repository
	}
	return dept
}

// FromDomain populates the persistence model from a domain Department entity.
// Note: Metadata must be JSON-encoded by the repository.
func (m *DepartmentModel) FromDomain(d *identity.Department, metadataJSON string) {
	m.FromDomainTenantAggregateRoot(d.TenantAggregateRoot)
	m.Code = d.Code
	m.Name = d.Name
	m.Description = d.Description
	m.ParentID = d.ParentID
	m.Path = d.Path
	m.Level = d.Level
	m.SortOrder = d.SortOrder
	m.ManagerID = d.ManagerID
	m.Status = d.Status
	m.Metadata = metadataJSON
}

// DepartmentModelFromDomain creates a new persistence model from a domain Department entity.
func DepartmentModelFromDomain(d *identity.Department, metadataJSON string) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d, metadataJSON)
	return m
}
