package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/repository"

	"github.com/google/uuid"
)

// ScopeMode tells which identity models a user is known through
type ScopeMode string

const (
	ScopeModeMembership ScopeMode = "membership"
	ScopeModeLegacy     ScopeMode = "legacy"
	ScopeModeMixed      ScopeMode = "mixed"
)

// TeamScope is everything the engine needs to know about who a user is on the
// cleaning side: identities, teams and the properties reachable through them.
type TeamScope struct {
	UserID        uuid.UUID                 `json:"user_id"`
	Mode          ScopeMode                 `json:"mode"`
	TenantIDs     []uuid.UUID               `json:"tenant_ids"`
	Memberships   []models.TeamMembership   `json:"memberships"`
	LegacyMembers []models.LegacyTeamMember `json:"legacy_members,omitempty"`

	MembershipIDs   []uuid.UUID `json:"membership_ids"`
	LegacyMemberIDs []uuid.UUID `json:"legacy_member_ids,omitempty"`

	AllTeamIDs    []uuid.UUID `json:"all_team_ids"`
	ActiveTeamIDs []uuid.UUID `json:"active_team_ids"`
	PausedTeamIDs []uuid.UUID `json:"paused_team_ids"`

	ActivePropertyIDs  []uuid.UUID `json:"active_property_ids"`
	PausedPropertyIDs  []uuid.UUID `json:"paused_property_ids"`
	VisiblePropertyIDs []uuid.UUID `json:"visible_property_ids"`

	// identity per team the user may currently act through
	activeIdentities map[uuid.UUID]models.AssigneeRef
	pausedIdentities map[uuid.UUID]models.AssigneeRef
	grantIdentities  map[uuid.UUID][]grantIdentity
}

type grantIdentity struct {
	ref    models.AssigneeRef
	teamID uuid.UUID
	active bool
}

// ClaimReach is the reach used for the available list and counts
func (s *TeamScope) ClaimReach(today time.Time) repository.Reach {
	return repository.Reach{
		ActivePropertyIDs: s.ActivePropertyIDs,
		ActiveTeamIDs:     s.ActiveTeamIDs,
		PausedPropertyIDs: s.PausedPropertyIDs,
		PausedTeamIDs:     s.PausedTeamIDs,
		Today:             today,
	}
}

// HistoryReach is the reach used for views of past work, including teams the user left
func (s *TeamScope) HistoryReach(today time.Time) repository.Reach {
	return repository.Reach{
		ActivePropertyIDs: s.VisiblePropertyIDs,
		ActiveTeamIDs:     s.AllTeamIDs,
		Today:             today,
	}
}

// Assignees lists every identity whose assigned jobs belong to the user
func (s *TeamScope) Assignees() []models.AssigneeRef {
	refs := make([]models.AssigneeRef, 0, len(s.MembershipIDs)+len(s.LegacyMemberIDs))
	for _, id := range s.MembershipIDs {
		refs = append(refs, models.MembershipRef(id))
	}
	for _, id := range s.LegacyMemberIDs {
		refs = append(refs, models.LegacyMemberRef(id))
	}
	return refs
}

// Owns reports whether the cleaning is assigned to one of the user's identities
func (s *TeamScope) Owns(c *models.Cleaning) (models.AssigneeRef, bool) {
	for _, ref := range s.Assignees() {
		if ref.Matches(c) {
			return ref, true
		}
	}
	return models.AssigneeRef{}, false
}

// HasActiveTeam reports whether the user can take future work anywhere
func (s *TeamScope) HasActiveTeam() bool {
	return len(s.ActiveTeamIDs) > 0
}

// IdentityInTeam returns the identity the user acts through in teamID and
// whether that team is active. Memberships win over legacy members.
func (s *TeamScope) IdentityInTeam(teamID uuid.UUID) (ref models.AssigneeRef, active bool, ok bool) {
	if ref, ok := s.activeIdentities[teamID]; ok {
		return ref, true, true
	}
	if ref, ok := s.pausedIdentities[teamID]; ok {
		return ref, false, true
	}
	return models.AssigneeRef{}, false, false
}

// GrantOn returns the identity holding a direct grant on the property, active teams first
func (s *TeamScope) GrantOn(propertyID uuid.UUID) (ref models.AssigneeRef, teamID uuid.UUID, active bool, ok bool) {
	grants := s.grantIdentities[propertyID]
	if len(grants) == 0 {
		return models.AssigneeRef{}, uuid.Nil, false, false
	}
	best := grants[0]
	for _, g := range grants[1:] {
		if g.active && !best.active {
			best = g
		}
	}
	return best.ref, best.teamID, best.active, true
}

// TeamScopeService resolves a user's team scope
type TeamScopeService struct {
	memberships repository.MembershipRepositoryInterface
	properties  repository.PropertyRepositoryInterface
}

// NewTeamScopeService creates a new team scope service
func NewTeamScopeService(memberships repository.MembershipRepositoryInterface, properties repository.PropertyRepositoryInterface) *TeamScopeService {
	return &TeamScopeService{memberships: memberships, properties: properties}
}

// Resolve builds the scope for userID. Active and removed memberships count;
// removed ones only widen visibility of past work. Pending invitations are
// ignored. Users with no identity at all get ErrNoMembership.
func (s *TeamScopeService) Resolve(ctx context.Context, userID uuid.UUID) (*TeamScope, error) {
	memberships, err := s.memberships.ListMembershipsByUser(ctx, userID, []models.MembershipStatus{
		models.MembershipStatusActive,
		models.MembershipStatusRemoved,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	legacy, err := s.memberships.ListLegacyMembersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load legacy members: %w", err)
	}
	if len(memberships) == 0 && len(legacy) == 0 {
		return nil, apperrors.ErrNoMembership
	}

	scope := &TeamScope{
		UserID:           userID,
		Memberships:      memberships,
		LegacyMembers:    legacy,
		activeIdentities: map[uuid.UUID]models.AssigneeRef{},
		pausedIdentities: map[uuid.UUID]models.AssigneeRef{},
		grantIdentities:  map[uuid.UUID][]grantIdentity{},
	}
	switch {
	case len(memberships) > 0 && len(legacy) > 0:
		scope.Mode = ScopeModeMixed
	case len(legacy) > 0:
		scope.Mode = ScopeModeLegacy
	default:
		scope.Mode = ScopeModeMembership
	}

	tenants := newIDSet()
	allTeams := newIDSet()
	activeTeams := newIDSet()
	pausedTeams := newIDSet()
	var actingMemberships []models.TeamMembership

	note := func(teamID uuid.UUID, team *models.Team, usable bool, ref models.AssigneeRef) {
		allTeams.add(teamID)
		if team != nil {
			tenants.add(team.TenantID)
		}
		if !usable {
			return
		}
		if team == nil || team.IsActive() {
			activeTeams.add(teamID)
			if _, taken := scope.activeIdentities[teamID]; !taken {
				scope.activeIdentities[teamID] = ref
			}
			return
		}
		pausedTeams.add(teamID)
		if _, taken := scope.pausedIdentities[teamID]; !taken {
			scope.pausedIdentities[teamID] = ref
		}
	}

	for _, m := range memberships {
		scope.MembershipIDs = append(scope.MembershipIDs, m.ID)
		usable := m.Status == models.MembershipStatusActive
		if usable {
			actingMemberships = append(actingMemberships, m)
		}
		note(m.TeamID, m.Team, usable, models.MembershipRef(m.ID))
	}
	for _, lm := range legacy {
		scope.LegacyMemberIDs = append(scope.LegacyMemberIDs, lm.ID)
		note(lm.TeamID, lm.Team, lm.IsActive, models.LegacyMemberRef(lm.ID))
	}
	pausedTeams.remove(activeTeams)

	links, err := s.properties.ListPropertyTeamsByTeams(ctx, allTeams.ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team properties: %w", err)
	}

	activeProps := newIDSet()
	pausedProps := newIDSet()
	visibleProps := newIDSet()
	for _, link := range links {
		visibleProps.add(link.PropertyID)
		switch {
		case activeTeams.has(link.TeamID):
			activeProps.add(link.PropertyID)
		case pausedTeams.has(link.TeamID):
			pausedProps.add(link.PropertyID)
		}
	}

	actingIDs := make([]uuid.UUID, 0, len(actingMemberships))
	byID := make(map[uuid.UUID]models.TeamMembership, len(actingMemberships))
	for _, m := range actingMemberships {
		actingIDs = append(actingIDs, m.ID)
		byID[m.ID] = m
	}
	grants, err := s.properties.ListAccessByMemberships(ctx, actingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load property access: %w", err)
	}
	for _, grant := range grants {
		m, ok := byID[grant.MembershipID]
		if !ok {
			continue
		}
		active := m.Team == nil || m.Team.IsActive()
		visibleProps.add(grant.PropertyID)
		if active {
			activeProps.add(grant.PropertyID)
		} else {
			pausedProps.add(grant.PropertyID)
		}
		scope.grantIdentities[grant.PropertyID] = append(scope.grantIdentities[grant.PropertyID], grantIdentity{
			ref:    models.MembershipRef(m.ID),
			teamID: m.TeamID,
			active: active,
		})
	}
	pausedProps.remove(activeProps)

	scope.TenantIDs = tenants.ids
	scope.AllTeamIDs = allTeams.ids
	scope.ActiveTeamIDs = activeTeams.ids
	scope.PausedTeamIDs = pausedTeams.ids
	scope.ActivePropertyIDs = activeProps.ids
	scope.PausedPropertyIDs = pausedProps.ids
	scope.VisiblePropertyIDs = visibleProps.ids
	return scope, nil
}

// ClaimIdentity is the identity and team a claim is made through
type ClaimIdentity struct {
	Assignee models.AssigneeRef
	TeamID   uuid.UUID
	Active   bool
}

// AuthorizeClaim picks the identity the user claims the cleaning through.
//
// The job's own team wins whenever the user belongs to it. Otherwise the
// user's teams authorized on the property are ordered active first, then by
// earliest property link, then by team id. When no team qualifies a direct
// property grant is used. Future-dated jobs need the chosen team to be active,
// so a job bound to a paused team cannot be taken early through another team.
func (s *TeamScopeService) AuthorizeClaim(ctx context.Context, scope *TeamScope, cleaning *models.Cleaning, window Window) (*ClaimIdentity, error) {
	return authorizeClaim(ctx, s.properties, scope, cleaning, window)
}

func authorizeClaim(ctx context.Context, properties repository.PropertyRepositoryInterface, scope *TeamScope, cleaning *models.Cleaning, window Window) (*ClaimIdentity, error) {
	links, err := properties.ListAuthorizedTeams(ctx, cleaning.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load authorized teams: %w", err)
	}

	type candidate struct {
		ClaimIdentity
		ownTeam bool
		linkAt  time.Time
	}
	var candidates []candidate
	seen := map[uuid.UUID]bool{}

	if cleaning.TeamID != nil {
		if ref, active, ok := scope.IdentityInTeam(*cleaning.TeamID); ok {
			seen[*cleaning.TeamID] = true
			c := candidate{ClaimIdentity: ClaimIdentity{Assignee: ref, TeamID: *cleaning.TeamID, Active: active}, ownTeam: true}
			for _, link := range links {
				if link.TeamID == *cleaning.TeamID {
					c.linkAt = link.CreatedAt
				}
			}
			candidates = append(candidates, c)
		}
	}
	for _, link := range links {
		if seen[link.TeamID] {
			continue
		}
		if ref, active, ok := scope.IdentityInTeam(link.TeamID); ok {
			seen[link.TeamID] = true
			candidates = append(candidates, candidate{
				ClaimIdentity: ClaimIdentity{Assignee: ref, TeamID: link.TeamID, Active: active},
				linkAt:        link.CreatedAt,
			})
		}
	}

	if len(candidates) == 0 {
		ref, teamID, active, ok := scope.GrantOn(cleaning.PropertyID)
		if !ok {
			return nil, apperrors.ErrForbidden
		}
		candidates = append(candidates, candidate{ClaimIdentity: ClaimIdentity{Assignee: ref, TeamID: teamID, Active: active}})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.ownTeam != b.ownTeam {
			return a.ownTeam
		}
		if a.Active != b.Active {
			return a.Active
		}
		if !a.linkAt.Equal(b.linkAt) {
			return a.linkAt.Before(b.linkAt)
		}
		return a.TeamID.String() < b.TeamID.String()
	})

	chosen := candidates[0].ClaimIdentity
	if !chosen.Active && window.IsFuture(cleaning.ScheduledDate) {
		return nil, apperrors.ErrInactiveTeamForFuture
	}
	return &chosen, nil
}

// idSet keeps insertion order so resolved scopes are stable
type idSet struct {
	ids  []uuid.UUID
	seen map[uuid.UUID]struct{}
}

func newIDSet() *idSet {
	return &idSet{ids: []uuid.UUID{}, seen: map[uuid.UUID]struct{}{}}
}

func (s *idSet) add(id uuid.UUID) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) has(id uuid.UUID) bool {
	_, ok := s.seen[id]
	return ok
}

func (s *idSet) remove(other *idSet) {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if other.has(id) {
			delete(s.seen, id)
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
}
