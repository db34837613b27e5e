package models

import (
	"github.com/google/uuid"
)

// Tenant is the host account owning properties and teams
type Tenant struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// Team represents a cleaning team inside a tenant
type Team struct {
	BaseModel
	TenantID uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Status   TeamStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsActive reports whether the team may take future-dated work
func (t *Team) IsActive() bool {
	return t.Status == "" || t.Status == TeamStatusActive
}
