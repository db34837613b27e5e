package models

// CleaningStatus is the execution state of a cleaning job
type CleaningStatus string

const (
	CleaningStatusPending    CleaningStatus = "pending"
	CleaningStatusInProgress CleaningStatus = "in_progress"
	CleaningStatusCompleted  CleaningStatus = "completed"
	CleaningStatusCancelled  CleaningStatus = "cancelled"
)

// AssignmentStatus tells whether a cleaning job is in the open pool or owned by an assignee
type AssignmentStatus string

const (
	AssignmentStatusOpen     AssignmentStatus = "open"
	AssignmentStatusAssigned AssignmentStatus = "assigned"
)

// AttentionReason explains why a cleaning job needs host intervention
type AttentionReason string

const (
	AttentionReasonNoAvailableMember  AttentionReason = "no_available_member"
	AttentionReasonDeclinedByAssignee AttentionReason = "declined_by_assignee"
	AttentionReasonAccessIssue        AttentionReason = "access_issue"
	AttentionReasonDamageReported     AttentionReason = "damage_reported"
)

// CleaningAssigneeStatus is the audit state of one (cleaning, member) pair
type CleaningAssigneeStatus string

const (
	CleaningAssigneeStatusAssigned CleaningAssigneeStatus = "assigned"
	CleaningAssigneeStatusDeclined CleaningAssigneeStatus = "declined"
)

// MembershipRole represents the role of a user within a team
type MembershipRole string

const (
	MembershipRoleTeamLeader MembershipRole = "team_leader"
	MembershipRoleMember     MembershipRole = "member"
)

// MembershipStatus represents the lifecycle of a team membership
type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusPending MembershipStatus = "pending"
	MembershipStatusRemoved MembershipStatus = "removed"
)

// TeamStatus tells whether a team currently takes new work
type TeamStatus string

const (
	TeamStatusActive TeamStatus = "active"
	TeamStatusPaused TeamStatus = "paused"
)

// InventoryReviewStatus is the state of an inventory review
type InventoryReviewStatus string

const (
	InventoryReviewStatusDraft     InventoryReviewStatus = "draft"
	InventoryReviewStatusSubmitted InventoryReviewStatus = "submitted"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	return s == TeamStatusActive || s == TeamStatusPaused
}

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	return r == MembershipRoleTeamLeader || r == MembershipRoleMember
}

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusActive, MembershipStatusPending, MembershipStatusRemoved:
		return true
	}
	return false
}
