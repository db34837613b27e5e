package models

import (
	"time"

	"github.com/google/uuid"
)

// Cleaning is a scheduled cleaning job for a property
type Cleaning struct {
	BaseModel
	TenantID             uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyID           uuid.UUID        `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID               *uuid.UUID       `json:"team_id,omitempty" gorm:"type:uuid;index"`
	ScheduledDate        time.Time        `json:"scheduled_date" gorm:"type:date;not null;index" validate:"required"`
	Status               CleaningStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AssignmentStatus     AssignmentStatus `json:"assignment_status" gorm:"type:varchar(20);not null;default:'open';index"`
	AssignedMembershipID *uuid.UUID       `json:"assigned_membership_id,omitempty" gorm:"type:uuid;index"`
	AssignedMemberID     *uuid.UUID       `json:"assigned_member_id,omitempty" gorm:"type:uuid;index"`
	NeedsAttention       bool             `json:"needs_attention" gorm:"not null;default:false"`
	AttentionReason      *AttentionReason `json:"attention_reason,omitempty" gorm:"type:varchar(40)"`
	Notes                string           `json:"notes" gorm:"type:text"`
	StartedAt            *time.Time       `json:"started_at,omitempty"`
	CompletedAt          *time.Time       `json:"completed_at,omitempty"`

	Property  *Property          `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Assignees []CleaningAssignee `json:"assignees,omitempty" gorm:"foreignKey:CleaningID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Cleaning
func (Cleaning) TableName() string {
	return "cleanings"
}

// Assignee returns the reference currently owning the job, if any
func (c *Cleaning) Assignee() (AssigneeRef, bool) {
	switch {
	case c.AssignedMembershipID != nil:
		return MembershipRef(*c.AssignedMembershipID), true
	case c.AssignedMemberID != nil:
		return LegacyMemberRef(*c.AssignedMemberID), true
	}
	return AssigneeRef{}, false
}

// IsUnassigned reports whether the job sits in the open pool with no owner
func (c *Cleaning) IsUnassigned() bool {
	return c.AssignmentStatus == AssignmentStatusOpen && c.AssignedMembershipID == nil && c.AssignedMemberID == nil
}

// HasConsistentAssignment checks that assignment status and assignee columns agree:
// assigned means exactly one assignee column is set, open means none are.
func (c *Cleaning) HasConsistentAssignment() bool {
	set := 0
	if c.AssignedMembershipID != nil {
		set++
	}
	if c.AssignedMemberID != nil {
		set++
	}
	switch c.AssignmentStatus {
	case AssignmentStatusAssigned:
		return set == 1
	case AssignmentStatusOpen:
		return set == 0
	}
	return false
}

// CleaningAssignee records claim history for one (cleaning, assignee) pair
type CleaningAssignee struct {
	BaseModel
	CleaningID   uuid.UUID              `json:"cleaning_id" gorm:"type:uuid;not null;index" validate:"required"`
	MembershipID *uuid.UUID             `json:"membership_id,omitempty" gorm:"type:uuid;index"`
	MemberID     *uuid.UUID             `json:"member_id,omitempty" gorm:"type:uuid;index"`
	Status       CleaningAssigneeStatus `json:"status" gorm:"type:varchar(20);not null;default:'assigned'"`
	AssignedAt   time.Time              `json:"assigned_at" gorm:"not null"`
	DeclinedAt   *time.Time             `json:"declined_at,omitempty"`
}

// TableName returns the table name for CleaningAssignee
func (CleaningAssignee) TableName() string {
	return "cleaning_assignees"
}

// InventoryReview is the post-cleaning inventory check of a property
type InventoryReview struct {
	BaseModel
	CleaningID uuid.UUID             `json:"cleaning_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	PropertyID uuid.UUID             `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status     InventoryReviewStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
}

// TableName returns the table name for InventoryReview
func (InventoryReview) TableName() string {
	return "inventory_reviews"
}
