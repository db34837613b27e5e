package models

import (
	"fmt"

	"github.com/google/uuid"
)

// AssigneeKind distinguishes the two identity models a job can be owned through
type AssigneeKind string

const (
	AssigneeKindMembership   AssigneeKind = "membership"
	AssigneeKindLegacyMember AssigneeKind = "legacy_member"
)

// AssigneeRef points at whoever owns a cleaning job: a team membership or,
// for older data, a legacy team member.
type AssigneeRef struct {
	Kind AssigneeKind `json:"kind"`
	ID   uuid.UUID    `json:"id"`
}

// MembershipRef builds a reference to a team membership
func MembershipRef(id uuid.UUID) AssigneeRef {
	return AssigneeRef{Kind: AssigneeKindMembership, ID: id}
}

// LegacyMemberRef builds a reference to a legacy team member
func LegacyMemberRef(id uuid.UUID) AssigneeRef {
	return AssigneeRef{Kind: AssigneeKindLegacyMember, ID: id}
}

// Column is the cleanings column holding this kind of assignee
func (r AssigneeRef) Column() string {
	if r.Kind == AssigneeKindLegacyMember {
		return "assigned_member_id"
	}
	return "assigned_membership_id"
}

// AssigneeColumn is the cleaning_assignees column holding this kind of assignee
func (r AssigneeRef) AssigneeColumn() string {
	if r.Kind == AssigneeKindLegacyMember {
		return "member_id"
	}
	return "membership_id"
}

// IsZero reports whether the reference is empty
func (r AssigneeRef) IsZero() bool {
	return r.ID == uuid.Nil
}

// Matches reports whether the cleaning is currently owned by this reference
func (r AssigneeRef) Matches(c *Cleaning) bool {
	if c == nil || r.IsZero() {
		return false
	}
	switch r.Kind {
	case AssigneeKindMembership:
		return c.AssignedMembershipID != nil && *c.AssignedMembershipID == r.ID
	case AssigneeKindLegacyMember:
		return c.AssignedMemberID != nil && *c.AssignedMemberID == r.ID
	}
	return false
}

// AssignmentColumns returns the cleanings column values that make this
// reference the sole assignee; the other identity column is cleared.
func (r AssigneeRef) AssignmentColumns() map[string]interface{} {
	if r.Kind == AssigneeKindLegacyMember {
		return map[string]interface{}{"assigned_member_id": r.ID, "assigned_membership_id": nil}
	}
	return map[string]interface{}{"assigned_membership_id": r.ID, "assigned_member_id": nil}
}

func (r AssigneeRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}
