package models

import (
	"github.com/google/uuid"
)

// TeamMembership binds a user to a team with a role and status
type TeamMembership struct {
	BaseModel
	TeamID uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_memberships_team_user" validate:"required"`
	UserID uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_memberships_team_user" validate:"required"`
	Role   MembershipRole   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Status MembershipStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

// LegacyTeamMember is the per-team member identity that predates memberships.
// Rows are still read so that older assignments keep resolving.
type LegacyTeamMember struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsActive bool      `json:"is_active" gorm:"not null;default:true"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LegacyTeamMember
func (LegacyTeamMember) TableName() string {
	return "team_members"
}
