package models

import (
	"github.com/google/uuid"
)

// Property is a rental unit owned by a tenant; it is the scope boundary for cleanings
type Property struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name     string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Address  string    `json:"address" gorm:"size:300"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

// PropertyTeam authorizes a team to work on a property
type PropertyTeam struct {
	BaseModel
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_property_teams_pair" validate:"required"`
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_property_teams_pair" validate:"required"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PropertyTeam
func (PropertyTeam) TableName() string {
	return "property_teams"
}

// PropertyMemberAccess grants a single membership direct access to a property
type PropertyMemberAccess struct {
	BaseModel
	PropertyID   uuid.UUID `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_property_member_access_pair" validate:"required"`
	MembershipID uuid.UUID `json:"membership_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_property_member_access_pair" validate:"required"`
}

// TableName returns the table name for PropertyMemberAccess
func (PropertyMemberAccess) TableName() string {
	return "property_member_accesses"
}
