package testutils

import (
	"fmt"
	"testing"
	"time"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Date returns the civil date as UTC midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Host",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates an active test Team
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  uuid.New(),
		Name:      "Crew " + uuid.NewString()[:6],
		Status:    models.TeamStatusActive,
	}
}

// WithTenant creates an active Team in the given tenant
func (f *TeamFactory) WithTenant(tenantID uuid.UUID) *models.Team {
	team := f.Create()
	team.TenantID = tenantID
	return team
}

// MembershipFactory provides methods to create test TeamMembership data
type MembershipFactory struct{}

// Create creates an active test TeamMembership for a fresh user
func (f *MembershipFactory) Create() *models.TeamMembership {
	return &models.TeamMembership{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    uuid.New(),
		UserID:    uuid.New(),
		Role:      models.MembershipRoleMember,
		Status:    models.MembershipStatusActive,
	}
}

// WithTeam creates an active membership of the user in the team
func (f *MembershipFactory) WithTeam(teamID, userID uuid.UUID) *models.TeamMembership {
	membership := f.Create()
	membership.TeamID = teamID
	membership.UserID = userID
	return membership
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	id := uuid.New()
	return &models.Property{
		BaseModel: models.BaseModel{ID: id},
		TenantID:  uuid.New(),
		Name:      fmt.Sprintf("Flat %s", id.String()[:4]),
		Address:   "1 Harbour Street",
	}
}

// CleaningFactory provides methods to create test Cleaning data
type CleaningFactory struct{}

// Create creates an open pending Cleaning
func (f *CleaningFactory) Create() *models.Cleaning {
	return &models.Cleaning{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		TenantID:         uuid.New(),
		PropertyID:       uuid.New(),
		ScheduledDate:    time.Now().UTC().Truncate(24 * time.Hour),
		Status:           models.CleaningStatusPending,
		AssignmentStatus: models.AssignmentStatusOpen,
	}
}

// For creates an open pending Cleaning on the property for the given date
func (f *CleaningFactory) For(property *models.Property, date time.Time) *models.Cleaning {
	cleaning := f.Create()
	cleaning.TenantID = property.TenantID
	cleaning.PropertyID = property.ID
	cleaning.ScheduledDate = date
	return cleaning
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant     *TenantFactory
	Team       *TeamFactory
	Membership *MembershipFactory
	Property   *PropertyFactory
	Cleaning   *CleaningFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:     &TenantFactory{},
		Team:       &TeamFactory{},
		Membership: &MembershipFactory{},
		Property:   &PropertyFactory{},
		Cleaning:   &CleaningFactory{},
	}
}

// Crew is a persisted tenant with one team, one property linked to it and one
// member of the team.
type Crew struct {
	Tenant     *models.Tenant
	Team       *models.Team
	Property   *models.Property
	Membership *models.TeamMembership
	UserID     uuid.UUID
}

// Fixtures persists factory output, failing the test on any error
type Fixtures struct {
	t   testing.TB
	db  *gorm.DB
	Set *FactorySet
}

// NewFixtures creates fixtures writing to db
func NewFixtures(t testing.TB, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db, Set: NewFactorySet()}
}

// Save inserts value
func (x *Fixtures) Save(value interface{}) {
	x.t.Helper()
	require.NoError(x.t, x.db.Create(value).Error)
}

// Tenant persists a tenant
func (x *Fixtures) Tenant() *models.Tenant {
	tenant := x.Set.Tenant.Create()
	x.Save(tenant)
	return tenant
}

// Team persists a team with the given status
func (x *Fixtures) Team(tenantID uuid.UUID, status models.TeamStatus) *models.Team {
	team := x.Set.Team.WithTenant(tenantID)
	team.Status = status
	x.Save(team)
	return team
}

// Membership persists a membership of the user in the team
func (x *Fixtures) Membership(teamID, userID uuid.UUID, status models.MembershipStatus) *models.TeamMembership {
	membership := x.Set.Membership.WithTeam(teamID, userID)
	membership.Status = status
	x.Save(membership)
	return membership
}

// LegacyMember persists a legacy member row of the user in the team
func (x *Fixtures) LegacyMember(teamID, userID uuid.UUID) *models.LegacyTeamMember {
	member := &models.LegacyTeamMember{TeamID: teamID, UserID: userID, IsActive: true}
	x.Save(member)
	return member
}

// Property persists a property of the tenant
func (x *Fixtures) Property(tenantID uuid.UUID) *models.Property {
	property := x.Set.Property.Create()
	property.TenantID = tenantID
	x.Save(property)
	return property
}

// LinkTeam authorizes the team on the property; createdAt orders fallback resolution
func (x *Fixtures) LinkTeam(propertyID, teamID uuid.UUID, createdAt time.Time) *models.PropertyTeam {
	link := &models.PropertyTeam{PropertyID: propertyID, TeamID: teamID}
	link.CreatedAt = createdAt
	x.Save(link)
	return link
}

// GrantAccess gives the membership direct access to the property
func (x *Fixtures) GrantAccess(propertyID, membershipID uuid.UUID) *models.PropertyMemberAccess {
	grant := &models.PropertyMemberAccess{PropertyID: propertyID, MembershipID: membershipID}
	x.Save(grant)
	return grant
}

// Cleaning persists an open pending cleaning on the property
func (x *Fixtures) Cleaning(property *models.Property, teamID *uuid.UUID, date time.Time) *models.Cleaning {
	cleaning := x.Set.Cleaning.For(property, date)
	cleaning.TeamID = teamID
	x.Save(cleaning)
	return cleaning
}

// Crew persists a tenant, a team in the given status, a property linked to the
// team and an active membership for a new user.
func (x *Fixtures) Crew(status models.TeamStatus) *Crew {
	tenant := x.Tenant()
	team := x.Team(tenant.ID, status)
	property := x.Property(tenant.ID)
	x.LinkTeam(property.ID, team.ID, time.Now().UTC())
	userID := uuid.New()
	membership := x.Membership(team.ID, userID, models.MembershipStatusActive)
	return &Crew{Tenant: tenant, Team: team, Property: property, Membership: membership, UserID: userID}
}

// Join adds another active member to the crew's team and returns the new user's membership
func (x *Fixtures) Join(crew *Crew) *models.TeamMembership {
	return x.Membership(crew.Team.ID, uuid.New(), models.MembershipStatusActive)
}
