package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/mocks"
	"cleaning-ops-backend/internal/service"
	"cleaning-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var scopeStatuses = []models.MembershipStatus{models.MembershipStatusActive, models.MembershipStatusRemoved}

// TeamScopeServiceTestSuite tests TeamScopeService
type TeamScopeServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMembership *mocks.MockMembershipRepositoryInterface
	mockProperty   *mocks.MockPropertyRepositoryInterface
	scopeService   *service.TeamScopeService
	ctx            context.Context
	userID         uuid.UUID
	window         service.Window
}

func (suite *TeamScopeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembership = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockProperty = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.scopeService = service.NewTeamScopeService(suite.mockMembership, suite.mockProperty)
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.window = service.NewAvailabilityPolicy(7, 30, false, time.UTC).
		WindowFor(time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC))
}

func (suite *TeamScopeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func team(status models.TeamStatus) *models.Team {
	t := &models.Team{TenantID: uuid.New(), Status: status}
	t.ID = uuid.New()
	return t
}

func membership(t *models.Team, status models.MembershipStatus) models.TeamMembership {
	m := models.TeamMembership{TeamID: t.ID, Status: status, Team: t}
	m.ID = uuid.New()
	return m
}

func link(propertyID uuid.UUID, t *models.Team, createdAt time.Time) models.PropertyTeam {
	l := models.PropertyTeam{PropertyID: propertyID, TeamID: t.ID, Team: t}
	l.ID = uuid.New()
	l.CreatedAt = createdAt
	return l
}

// resolve stubs the repository reads behind Resolve and returns the scope
func (suite *TeamScopeServiceTestSuite) resolve(memberships []models.TeamMembership, links []models.PropertyTeam, grants []models.PropertyMemberAccess) *service.TeamScope {
	suite.mockMembership.EXPECT().
		ListMembershipsByUser(gomock.Any(), suite.userID, scopeStatuses).
		Return(memberships, nil)
	suite.mockMembership.EXPECT().
		ListLegacyMembersByUser(gomock.Any(), suite.userID).
		Return(nil, nil)
	suite.mockProperty.EXPECT().
		ListPropertyTeamsByTeams(gomock.Any(), gomock.Any()).
		Return(links, nil)
	suite.mockProperty.EXPECT().
		ListAccessByMemberships(gomock.Any(), gomock.Any()).
		Return(grants, nil)

	scope, err := suite.scopeService.Resolve(suite.ctx, suite.userID)
	suite.Require().NoError(err)
	return scope
}

func (suite *TeamScopeServiceTestSuite) TestResolveNoMembership() {
	suite.mockMembership.EXPECT().
		ListMembershipsByUser(gomock.Any(), suite.userID, scopeStatuses).
		Return([]models.TeamMembership{}, nil)
	suite.mockMembership.EXPECT().
		ListLegacyMembersByUser(gomock.Any(), suite.userID).
		Return([]models.LegacyTeamMember{}, nil)

	scope, err := suite.scopeService.Resolve(suite.ctx, suite.userID)

	suite.Nil(scope)
	suite.ErrorIs(err, apperrors.ErrNoMembership)
	suite.True(apperrors.IsBenign(err))
}

func (suite *TeamScopeServiceTestSuite) TestResolveRepositoryError() {
	suite.mockMembership.EXPECT().
		ListMembershipsByUser(gomock.Any(), suite.userID, scopeStatuses).
		Return(nil, errors.New("connection refused"))

	_, err := suite.scopeService.Resolve(suite.ctx, suite.userID)

	suite.Error(err)
	suite.False(apperrors.IsBenign(err))
}

func (suite *TeamScopeServiceTestSuite) TestResolveSplitsActivePausedAndHistoricalReach() {
	active, paused, left := team(models.TeamStatusActive), team(models.TeamStatusPaused), team(models.TeamStatusActive)
	mActive := membership(active, models.MembershipStatusActive)
	mPaused := membership(paused, models.MembershipStatusActive)
	mRemoved := membership(left, models.MembershipStatusRemoved)

	shared, pausedOnly, history, granted := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	scope := suite.resolve(
		[]models.TeamMembership{mActive, mPaused, mRemoved},
		[]models.PropertyTeam{
			link(shared, active, now),
			link(pausedOnly, paused, now),
			link(history, left, now),
			link(shared, paused, now),
		},
		[]models.PropertyMemberAccess{{PropertyID: granted, MembershipID: mActive.ID}},
	)

	suite.Equal(service.ScopeModeMembership, scope.Mode)
	suite.Equal([]uuid.UUID{mActive.ID, mPaused.ID, mRemoved.ID}, scope.MembershipIDs)
	suite.Equal([]uuid.UUID{active.ID, paused.ID, left.ID}, scope.AllTeamIDs)
	suite.Equal([]uuid.UUID{active.ID}, scope.ActiveTeamIDs)
	suite.Equal([]uuid.UUID{paused.ID}, scope.PausedTeamIDs)
	suite.Equal([]uuid.UUID{shared, granted}, scope.ActivePropertyIDs)
	suite.Equal([]uuid.UUID{pausedOnly}, scope.PausedPropertyIDs)
	suite.ElementsMatch([]uuid.UUID{shared, pausedOnly, history, granted}, scope.VisiblePropertyIDs)
	suite.Len(scope.TenantIDs, 3)
	suite.True(scope.HasActiveTeam())

	_, _, ok := scope.IdentityInTeam(left.ID)
	suite.False(ok, "removed memberships cannot act")
}

func (suite *TeamScopeServiceTestSuite) TestResolveMixedModeWithLegacyMember() {
	active := team(models.TeamStatusActive)
	legacyTeam := team(models.TeamStatusActive)
	m := membership(active, models.MembershipStatusActive)
	legacy := models.LegacyTeamMember{TeamID: legacyTeam.ID, UserID: suite.userID, IsActive: true, Team: legacyTeam}
	legacy.ID = uuid.New()

	suite.mockMembership.EXPECT().
		ListMembershipsByUser(gomock.Any(), suite.userID, scopeStatuses).
		Return([]models.TeamMembership{m}, nil)
	suite.mockMembership.EXPECT().
		ListLegacyMembersByUser(gomock.Any(), suite.userID).
		Return([]models.LegacyTeamMember{legacy}, nil)
	suite.mockProperty.EXPECT().
		ListPropertyTeamsByTeams(gomock.Any(), []uuid.UUID{active.ID, legacyTeam.ID}).
		Return(nil, nil)
	suite.mockProperty.EXPECT().
		ListAccessByMemberships(gomock.Any(), []uuid.UUID{m.ID}).
		Return(nil, nil)

	scope, err := suite.scopeService.Resolve(suite.ctx, suite.userID)
	suite.Require().NoError(err)

	suite.Equal(service.ScopeModeMixed, scope.Mode)
	suite.Equal([]uuid.UUID{legacy.ID}, scope.LegacyMemberIDs)
	suite.Len(scope.Assignees(), 2)

	ref, isActive, ok := scope.IdentityInTeam(legacyTeam.ID)
	suite.True(ok)
	suite.True(isActive)
	suite.Equal(models.LegacyMemberRef(legacy.ID), ref)
}

func (suite *TeamScopeServiceTestSuite) cleaningOn(propertyID uuid.UUID, teamID *uuid.UUID, date time.Time) *models.Cleaning {
	c := &models.Cleaning{PropertyID: propertyID, TeamID: teamID, ScheduledDate: date}
	c.ID = uuid.New()
	return c
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimFallbackPrefersActiveTeam() {
	pausedTeam, activeTeam := team(models.TeamStatusPaused), team(models.TeamStatusActive)
	mPaused := membership(pausedTeam, models.MembershipStatusActive)
	mActive := membership(activeTeam, models.MembershipStatusActive)
	property := uuid.New()
	earlier, later := time.Now().Add(-time.Hour), time.Now()
	links := []models.PropertyTeam{link(property, pausedTeam, earlier), link(property, activeTeam, later)}

	scope := suite.resolve([]models.TeamMembership{mPaused, mActive}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)

	suite.Require().NoError(err)
	suite.Equal(activeTeam.ID, identity.TeamID)
	suite.Equal(models.MembershipRef(mActive.ID), identity.Assignee)
	suite.True(identity.Active)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimPrefersEarliestLink() {
	first, second := team(models.TeamStatusActive), team(models.TeamStatusActive)
	mFirst := membership(first, models.MembershipStatusActive)
	mSecond := membership(second, models.MembershipStatusActive)
	property := uuid.New()
	links := []models.PropertyTeam{
		link(property, second, time.Now()),
		link(property, first, time.Now().Add(-24*time.Hour)),
	}

	scope := suite.resolve([]models.TeamMembership{mFirst, mSecond}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)

	suite.Require().NoError(err)
	suite.Equal(first.ID, identity.TeamID)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimBreaksTiesByTeamID() {
	a, b := team(models.TeamStatusActive), team(models.TeamStatusActive)
	ma := membership(a, models.MembershipStatusActive)
	mb := membership(b, models.MembershipStatusActive)
	property := uuid.New()
	same := time.Now()
	links := []models.PropertyTeam{link(property, a, same), link(property, b, same)}

	scope := suite.resolve([]models.TeamMembership{ma, mb}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)

	suite.Require().NoError(err)
	want := a.ID
	if b.ID.String() < a.ID.String() {
		want = b.ID
	}
	suite.Equal(want, identity.TeamID)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimPrefersJobTeam() {
	early, own := team(models.TeamStatusActive), team(models.TeamStatusActive)
	mEarly := membership(early, models.MembershipStatusActive)
	mOwn := membership(own, models.MembershipStatusActive)
	property := uuid.New()
	links := []models.PropertyTeam{
		link(property, early, time.Now().Add(-48*time.Hour)),
		link(property, own, time.Now()),
	}

	scope := suite.resolve([]models.TeamMembership{mEarly, mOwn}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, &own.ID, suite.window.Today), suite.window)

	suite.Require().NoError(err)
	suite.Equal(own.ID, identity.TeamID)
	suite.Equal(models.MembershipRef(mOwn.ID), identity.Assignee)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimJobTeamWinsOverActiveTeam() {
	own, other := team(models.TeamStatusPaused), team(models.TeamStatusActive)
	mOwn := membership(own, models.MembershipStatusActive)
	mOther := membership(other, models.MembershipStatusActive)
	property := uuid.New()
	links := []models.PropertyTeam{
		link(property, other, time.Now().Add(-time.Hour)),
		link(property, own, time.Now()),
	}

	scope := suite.resolve([]models.TeamMembership{mOwn, mOther}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil).Times(2)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, &own.ID, suite.window.Today), suite.window)
	suite.Require().NoError(err)
	suite.Equal(own.ID, identity.TeamID)
	suite.Equal(models.MembershipRef(mOwn.ID), identity.Assignee)
	suite.False(identity.Active)

	tomorrow := suite.window.Today.AddDate(0, 0, 1)
	_, err = suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, &own.ID, tomorrow), suite.window)
	suite.ErrorIs(err, apperrors.ErrInactiveTeamForFuture)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimFallsBackToDirectGrant() {
	elsewhere := team(models.TeamStatusActive)
	m := membership(elsewhere, models.MembershipStatusActive)
	property := uuid.New()

	scope := suite.resolve(
		[]models.TeamMembership{m},
		nil,
		[]models.PropertyMemberAccess{{PropertyID: property, MembershipID: m.ID}},
	)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(nil, nil)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)

	suite.Require().NoError(err)
	suite.Equal(models.MembershipRef(m.ID), identity.Assignee)
	suite.Equal(elsewhere.ID, identity.TeamID)
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimForbiddenWithoutAccess() {
	mine, theirs := team(models.TeamStatusActive), team(models.TeamStatusActive)
	m := membership(mine, models.MembershipStatusActive)
	property := uuid.New()

	scope := suite.resolve([]models.TeamMembership{m}, nil, nil)
	suite.mockProperty.EXPECT().
		ListAuthorizedTeams(gomock.Any(), property).
		Return([]models.PropertyTeam{link(property, theirs, time.Now())}, nil)

	_, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *TeamScopeServiceTestSuite) TestAuthorizeClaimPausedTeamOnlyForPastAndToday() {
	paused := team(models.TeamStatusPaused)
	m := membership(paused, models.MembershipStatusActive)
	property := uuid.New()
	links := []models.PropertyTeam{link(property, paused, time.Now())}

	scope := suite.resolve([]models.TeamMembership{m}, links, nil)
	suite.mockProperty.EXPECT().ListAuthorizedTeams(gomock.Any(), property).Return(links, nil).Times(2)

	identity, err := suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, suite.window.Today), suite.window)
	suite.Require().NoError(err)
	suite.False(identity.Active)

	tomorrow := suite.window.Today.AddDate(0, 0, 1)
	_, err = suite.scopeService.AuthorizeClaim(suite.ctx, scope, suite.cleaningOn(property, nil, tomorrow), suite.window)
	suite.ErrorIs(err, apperrors.ErrInactiveTeamForFuture)
	suite.Equal(apperrors.OutcomeForbidden, apperrors.OutcomeOf(err))
}

func (suite *TeamScopeServiceTestSuite) TestClaimReachCarriesToday() {
	active := team(models.TeamStatusActive)
	scope := suite.resolve([]models.TeamMembership{membership(active, models.MembershipStatusActive)}, nil, nil)

	reach := scope.ClaimReach(testutils.Date(2026, time.May, 4))
	suite.Equal(testutils.Date(2026, time.May, 4), reach.Today)
	suite.Equal([]uuid.UUID{active.ID}, reach.ActiveTeamIDs)
}

func TestTeamScopeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamScopeServiceTestSuite))
}
