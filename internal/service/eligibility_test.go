package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/repository"
	"cleaning-ops-backend/internal/service"
	"cleaning-ops-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// memoryStore is an in-process cache.Store
type memoryStore struct {
	mu      sync.Mutex
	gen     int64
	entries map[string][]byte
	failGen bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string][]byte{}}
}

func (s *memoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *memoryStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
	return nil
}

func (s *memoryStore) Generation(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGen {
		return 0, errors.New("connection refused")
	}
	return s.gen, nil
}

func (s *memoryStore) Invalidate(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return nil
}

// EligibilityServiceTestSuite checks list views and counts against SQLite
type EligibilityServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	fx          *testutils.Fixtures
	store       *memoryStore
	eligibility *service.EligibilityService
	assignment  *service.AssignmentService
	ctx         context.Context
	today       time.Time
}

func (suite *EligibilityServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.fx = testutils.NewFixtures(suite.T(), suite.db)
	suite.store = newMemoryStore()
	suite.ctx = context.Background()
	suite.today = testutils.Date(2026, time.May, 4)

	log, _ := test.NewNullLogger()
	cleanings := repository.NewCleaningRepository(suite.db)
	properties := repository.NewPropertyRepository(suite.db)
	scopes := service.NewTeamScopeService(repository.NewMembershipRepository(suite.db), properties)
	policy := service.NewAvailabilityPolicy(7, 30, false, time.UTC)
	clock := func() time.Time { return fixedNow }

	suite.eligibility = service.NewEligibilityService(cleanings, scopes, policy, suite.store, time.Minute, validator.New(), log).
		WithClock(clock)
	suite.assignment = service.NewAssignmentService(
		repository.NewTxManager(suite.db),
		cleanings,
		repository.NewCleaningAssigneeRepository(suite.db),
		properties,
		scopes,
		policy,
		nil,
		suite.store,
		log,
	).WithClock(clock)
}

func (suite *EligibilityServiceTestSuite) days(n int) time.Time {
	return suite.today.AddDate(0, 0, n)
}

func (suite *EligibilityServiceTestSuite) list(userID uuid.UUID, req service.ListCleaningsRequest) *service.CleaningListResponse {
	resp, err := suite.eligibility.ListEligibleCleanings(suite.ctx, userID, &req)
	suite.Require().NoError(err)
	return resp
}

func ids(resp *service.CleaningListResponse) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(resp.Cleanings))
	for _, c := range resp.Cleanings {
		out = append(out, c.ID)
	}
	return out
}

// held persists a cleaning assigned to the membership
func (suite *EligibilityServiceTestSuite) held(crew *testutils.Crew, date time.Time, status models.CleaningStatus) *models.Cleaning {
	c := suite.fx.Set.Cleaning.For(crew.Property, date)
	c.TeamID = &crew.Team.ID
	c.Status = status
	c.AssignmentStatus = models.AssignmentStatusAssigned
	c.AssignedMembershipID = &crew.Membership.ID
	suite.fx.Save(c)
	return c
}

func (suite *EligibilityServiceTestSuite) TestAvailableListsOnlyClaimableWork() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	stranger := suite.fx.Crew(models.TeamStatusActive)

	today := suite.fx.Cleaning(crew.Property, nil, suite.today)
	edge := suite.fx.Cleaning(crew.Property, nil, suite.days(30))
	suite.fx.Cleaning(crew.Property, nil, suite.days(31))
	suite.fx.Cleaning(crew.Property, nil, suite.days(-8))
	suite.held(crew, suite.days(2), models.CleaningStatusPending)
	suite.fx.Cleaning(stranger.Property, nil, suite.days(1))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAvailable})

	suite.Equal([]uuid.UUID{today.ID, edge.ID}, ids(resp))
	suite.Equal(int64(2), resp.Total)
	suite.Equal(50, resp.Limit)
	suite.Equal("2026-05-04", resp.Window.Today)
	for _, c := range resp.Cleanings {
		suite.True(c.Claimable)
		suite.False(c.Lost)
		suite.False(c.Mine)
	}
}

func (suite *EligibilityServiceTestSuite) TestAvailableIncludesJobsOnTeamFromOtherProperty() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	unlinked := suite.fx.Property(crew.Tenant.ID)
	job := suite.fx.Cleaning(unlinked, &crew.Team.ID, suite.days(1))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAvailable})
	suite.Equal([]uuid.UUID{job.ID}, ids(resp))
}

func (suite *EligibilityServiceTestSuite) TestAvailableThroughPausedTeamStopsAtToday() {
	crew := suite.fx.Crew(models.TeamStatusPaused)
	yesterday := suite.fx.Cleaning(crew.Property, nil, suite.days(-1))
	today := suite.fx.Cleaning(crew.Property, nil, suite.today)
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAvailable})
	suite.Equal([]uuid.UUID{yesterday.ID, today.ID}, ids(resp))
}

func (suite *EligibilityServiceTestSuite) TestAvailableDateFilterNarrowsWindow() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))
	inside := suite.fx.Cleaning(crew.Property, nil, suite.days(5))
	suite.fx.Cleaning(crew.Property, nil, suite.days(9))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{
		Kind: service.ListKindAvailable,
		From: "2026-05-08",
		To:   "2026-05-12",
	})
	suite.Equal([]uuid.UUID{inside.ID}, ids(resp))

	resp = suite.list(crew.UserID, service.ListCleaningsRequest{
		Kind: service.ListKindAvailable,
		From: "2026-01-01",
		To:   "2026-12-31",
	})
	suite.Len(resp.Cleanings, 3, "filters never widen the claim window")
}

func (suite *EligibilityServiceTestSuite) TestAvailablePagination() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	for i := 0; i < 5; i++ {
		suite.fx.Cleaning(crew.Property, nil, suite.days(i))
	}

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAvailable, Limit: 2, Offset: 2})
	suite.Len(resp.Cleanings, 2)
	suite.Equal(int64(5), resp.Total)
	suite.Equal("2026-05-06", resp.Cleanings[0].ScheduledDate)
}

func (suite *EligibilityServiceTestSuite) TestAssignedViewAndHistory() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	pending := suite.held(crew, suite.days(3), models.CleaningStatusPending)
	running := suite.held(crew, suite.days(1), models.CleaningStatusInProgress)
	done := suite.held(crew, suite.days(-2), models.CleaningStatusCompleted)
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAssigned})
	suite.Equal([]uuid.UUID{running.ID, pending.ID}, ids(resp))
	for _, c := range resp.Cleanings {
		suite.True(c.Mine)
		suite.False(c.Claimable)
	}

	resp = suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAssigned, History: true})
	suite.Equal([]uuid.UUID{pending.ID, running.ID, done.ID}, ids(resp))

	resp = suite.list(crew.UserID, service.ListCleaningsRequest{
		Kind:     service.ListKindAssigned,
		Statuses: []string{string(models.CleaningStatusCompleted)},
	})
	suite.Equal([]uuid.UUID{done.ID}, ids(resp))
}

func (suite *EligibilityServiceTestSuite) TestAssignedIncludesLegacyAssignments() {
	tenant := suite.fx.Tenant()
	team := suite.fx.Team(tenant.ID, models.TeamStatusActive)
	property := suite.fx.Property(tenant.ID)
	suite.fx.LinkTeam(property.ID, team.ID, time.Now())
	userID := uuid.New()
	legacy := suite.fx.LegacyMember(team.ID, userID)

	job := suite.fx.Set.Cleaning.For(property, suite.days(1))
	job.AssignmentStatus = models.AssignmentStatusAssigned
	job.AssignedMemberID = &legacy.ID
	suite.fx.Save(job)

	resp := suite.list(userID, service.ListCleaningsRequest{Kind: service.ListKindAssigned})
	suite.Equal([]uuid.UUID{job.ID}, ids(resp))
	suite.True(resp.Cleanings[0].Mine)
}

func (suite *EligibilityServiceTestSuite) TestLostListsExpiredOpenWork() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	older := suite.fx.Cleaning(crew.Property, nil, suite.days(-20))
	lost := suite.fx.Cleaning(crew.Property, nil, suite.days(-8))
	suite.fx.Cleaning(crew.Property, nil, suite.days(-7))
	suite.held(crew, suite.days(-9), models.CleaningStatusPending)

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindLost})
	suite.Equal([]uuid.UUID{lost.ID, older.ID}, ids(resp))
	for _, c := range resp.Cleanings {
		suite.True(c.Lost)
		suite.False(c.Claimable)
	}
}

func (suite *EligibilityServiceTestSuite) TestLostVisibleAfterLeavingTeam() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	crew.Membership.Status = models.MembershipStatusRemoved
	suite.Require().NoError(suite.db.Save(crew.Membership).Error)

	lost := suite.fx.Cleaning(crew.Property, nil, suite.days(-10))
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))

	resp := suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindLost})
	suite.Equal([]uuid.UUID{lost.ID}, ids(resp))

	resp = suite.list(crew.UserID, service.ListCleaningsRequest{Kind: service.ListKindAvailable})
	suite.Empty(resp.Cleanings, "a removed membership cannot claim")
}

func (suite *EligibilityServiceTestSuite) TestListValidation() {
	crew := suite.fx.Crew(models.TeamStatusActive)

	cases := []struct {
		name string
		req  service.ListCleaningsRequest
	}{
		{"unknown kind", service.ListCleaningsRequest{Kind: "everything"}},
		{"bad date", service.ListCleaningsRequest{Kind: service.ListKindAvailable, From: "05/04/2026"}},
		{"bad status", service.ListCleaningsRequest{Kind: service.ListKindAssigned, Statuses: []string{"done"}}},
		{"limit too large", service.ListCleaningsRequest{Kind: service.ListKindAvailable, Limit: 500}},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.eligibility.ListEligibleCleanings(suite.ctx, crew.UserID, &tc.req)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}

	_, err := suite.eligibility.ListEligibleCleanings(suite.ctx, crew.UserID, &service.ListCleaningsRequest{
		Kind: service.ListKindAvailable,
		From: "2026-05-10",
		To:   "2026-05-01",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *EligibilityServiceTestSuite) TestListWithoutMembership() {
	_, err := suite.eligibility.ListEligibleCleanings(suite.ctx, uuid.New(), &service.ListCleaningsRequest{Kind: service.ListKindAvailable})
	suite.ErrorIs(err, apperrors.ErrNoMembership)

	_, err = suite.eligibility.CountsFor(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNoMembership)
}

func (suite *EligibilityServiceTestSuite) TestCounts() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))
	suite.fx.Cleaning(crew.Property, nil, suite.days(2))
	suite.fx.Cleaning(crew.Property, nil, suite.days(-9))
	suite.held(crew, suite.days(1), models.CleaningStatusPending)
	suite.held(crew, suite.days(-1), models.CleaningStatusPending)
	suite.held(crew, suite.today, models.CleaningStatusInProgress)
	suite.held(crew, suite.days(-3), models.CleaningStatusCompleted)

	counts, err := suite.eligibility.CountsFor(suite.ctx, crew.UserID)
	suite.Require().NoError(err)
	suite.Equal(service.CountsResponse{
		AvailableCount: 2,
		AssignedCount:  3,
		UpcomingCount:  1,
		LostCount:      1,
	}, *counts)
}

func (suite *EligibilityServiceTestSuite) TestCountsAreCachedUntilTransition() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	job := suite.fx.Cleaning(crew.Property, nil, suite.days(1))

	counts, err := suite.eligibility.CountsFor(suite.ctx, crew.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts.AvailableCount)

	// written behind the service's back, so only a cache miss would see it
	suite.fx.Cleaning(crew.Property, nil, suite.days(2))
	counts, err = suite.eligibility.CountsFor(suite.ctx, crew.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts.AvailableCount)

	_, err = suite.assignment.Claim(suite.ctx, crew.UserID, job.ID)
	suite.Require().NoError(err)

	counts, err = suite.eligibility.CountsFor(suite.ctx, crew.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts.AvailableCount)
	suite.Equal(int64(1), counts.AssignedCount)
}

func (suite *EligibilityServiceTestSuite) TestCountsWorkWhenCacheIsDown() {
	crew := suite.fx.Crew(models.TeamStatusActive)
	suite.fx.Cleaning(crew.Property, nil, suite.days(1))
	suite.store.failGen = true

	counts, err := suite.eligibility.CountsFor(suite.ctx, crew.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts.AvailableCount)
	suite.Empty(suite.store.entries)
}

func (suite *EligibilityServiceTestSuite) TestCurrentWindow() {
	window := suite.eligibility.CurrentWindow()
	suite.Equal("2026-05-04", window.Today)
	suite.Equal("2026-04-27", window.Start)
	suite.Equal("2026-06-03", window.End)
}

func TestEligibilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EligibilityServiceTestSuite))
}
