package service

import (
	"context"
	"fmt"
	"time"

	"cleaning-ops-backend/internal/cache"
	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListKind selects one of the cleaning list views
type ListKind string

const (
	ListKindAvailable ListKind = "available"
	ListKindAssigned  ListKind = "assigned"
	ListKindLost      ListKind = "lost"
)

// ListCleaningsRequest represents the query for a cleaning list view
type ListCleaningsRequest struct {
	Kind             ListKind `json:"kind" form:"-" validate:"required,oneof=available assigned lost"`
	From             string   `json:"from,omitempty" form:"from" validate:"omitempty,datetime=2006-01-02"`
	To               string   `json:"to,omitempty" form:"to" validate:"omitempty,datetime=2006-01-02"`
	Statuses         []string `json:"status,omitempty" form:"status" validate:"omitempty,dive,oneof=pending in_progress completed cancelled"`
	IncludeCompleted bool     `json:"include_completed,omitempty" form:"include_completed"`
	History          bool     `json:"history,omitempty" form:"history"`
	Limit            int      `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=200"`
	Offset           int      `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
}

// CleaningResponse represents a cleaning as shown to a cleaner
type CleaningResponse struct {
	ID                   uuid.UUID               `json:"id"`
	PropertyID           uuid.UUID               `json:"property_id"`
	PropertyName         string                  `json:"property_name,omitempty"`
	TeamID               *uuid.UUID              `json:"team_id,omitempty"`
	ScheduledDate        string                  `json:"scheduled_date"`
	Status               models.CleaningStatus   `json:"status"`
	AssignmentStatus     models.AssignmentStatus `json:"assignment_status"`
	AssignedMembershipID *uuid.UUID              `json:"assigned_membership_id,omitempty"`
	AssignedMemberID     *uuid.UUID              `json:"assigned_member_id,omitempty"`
	NeedsAttention       bool                    `json:"needs_attention"`
	AttentionReason      *models.AttentionReason `json:"attention_reason,omitempty"`
	Notes                string                  `json:"notes,omitempty"`
	StartedAt            *time.Time              `json:"started_at,omitempty"`
	CompletedAt          *time.Time              `json:"completed_at,omitempty"`
	Claimable            bool                    `json:"claimable"`
	Lost                 bool                    `json:"lost"`
	Mine                 bool                    `json:"mine"`
}

// CleaningListResponse represents a page of cleanings
type CleaningListResponse struct {
	Kind      ListKind           `json:"kind"`
	Cleanings []CleaningResponse `json:"cleanings"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	Window    WindowResponse     `json:"window"`
	// NoMembership is set on the empty onboarding payload for users without a team
	NoMembership bool `json:"no_membership,omitempty"`
}

// CountsResponse carries the badge counts of the cleaning views
type CountsResponse struct {
	AvailableCount int64 `json:"available_count"`
	AssignedCount  int64 `json:"assigned_count"`
	UpcomingCount  int64 `json:"upcoming_count"`
	LostCount      int64 `json:"lost_count"`
	NoMembership   bool  `json:"no_membership,omitempty"`
}

// NewCleaningResponse converts a cleaning for the caller. scope may be nil.
func NewCleaningResponse(c *models.Cleaning, window Window, scope *TeamScope) *CleaningResponse {
	resp := &CleaningResponse{
		ID:                   c.ID,
		PropertyID:           c.PropertyID,
		TeamID:               c.TeamID,
		ScheduledDate:        DateOnly(c.ScheduledDate).Format(dateLayout),
		Status:               c.Status,
		AssignmentStatus:     c.AssignmentStatus,
		AssignedMembershipID: c.AssignedMembershipID,
		AssignedMemberID:     c.AssignedMemberID,
		NeedsAttention:       c.NeedsAttention,
		AttentionReason:      c.AttentionReason,
		Notes:                c.Notes,
		StartedAt:            c.StartedAt,
		CompletedAt:          c.CompletedAt,
	}
	if c.Property != nil {
		resp.PropertyName = c.Property.Name
	}
	open := c.IsUnassigned() && c.Status == models.CleaningStatusPending
	resp.Claimable = open && window.Contains(c.ScheduledDate)
	resp.Lost = open && window.IsLost(c.ScheduledDate)
	if scope != nil {
		_, resp.Mine = scope.Owns(c)
	}
	return resp
}

// EligibilityService answers which cleanings a user may see and claim
type EligibilityService struct {
	cleanings *repository.CleaningRepository
	scopes    ScopeResolver
	policy    *AvailabilityPolicy
	cache     cache.Store
	cacheTTL  time.Duration
	validator *validator.Validate
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(cleanings *repository.CleaningRepository, scopes ScopeResolver, policy *AvailabilityPolicy, store cache.Store, cacheTTL time.Duration, validator *validator.Validate, log logrus.FieldLogger) *EligibilityService {
	if store == nil {
		store = cache.Noop{}
	}
	return &EligibilityService{
		cleanings: cleanings,
		scopes:    scopes,
		policy:    policy,
		cache:     store,
		cacheTTL:  cacheTTL,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the time source
func (s *EligibilityService) WithClock(now func() time.Time) *EligibilityService {
	s.now = now
	return s
}

// CurrentWindow returns today's claim window
func (s *EligibilityService) CurrentWindow() WindowResponse {
	return s.policy.WindowFor(s.now()).Response()
}

// ListEligibleCleanings returns one page of the requested view.
//
// available: open pending unassigned jobs in the claim window that the user
// reaches through an active team, a direct grant, or a paused team for jobs
// dated today or earlier. assigned: jobs held by any of the user's
// identities. lost: open jobs whose date fell before the window.
func (s *EligibilityService) ListEligibleCleanings(ctx context.Context, userID uuid.UUID, req *ListCleaningsRequest) (*CleaningListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("query", err.Error())
	}
	from, err := ParseDate(req.From)
	if err != nil {
		return nil, apperrors.NewValidationError("from", "must be YYYY-MM-DD")
	}
	to, err := ParseDate(req.To)
	if err != nil {
		return nil, apperrors.NewValidationError("to", "must be YYYY-MM-DD")
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	page := repository.Page{Limit: limit, Offset: req.Offset}

	scope, err := s.scopes.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	window := s.policy.WindowFor(s.now())

	var rows []models.Cleaning
	var total int64
	switch req.Kind {
	case ListKindAvailable:
		rows, total, err = s.cleanings.ListAvailable(ctx, repository.AvailableQuery{
			Reach:  scope.ClaimReach(window.Today),
			Window: narrow(window.Range(), from, to),
			Page:   page,
		})
	case ListKindAssigned:
		rows, total, err = s.cleanings.ListAssigned(ctx, repository.AssignedQuery{
			MembershipIDs: scope.MembershipIDs,
			MemberIDs:     scope.LegacyMemberIDs,
			Statuses:      assignedStatuses(req),
			Range:         repository.DateRange{From: from, To: to},
			Descending:    req.History,
			Page:          page,
		})
	case ListKindLost:
		rows, total, err = s.cleanings.ListLost(ctx, repository.LostQuery{
			Reach:  scope.HistoryReach(window.Today),
			Before: window.Start,
			Range:  repository.DateRange{From: from, To: to},
			Page:   page,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s cleanings: %w", req.Kind, err)
	}

	resp := &CleaningListResponse{
		Kind:      req.Kind,
		Cleanings: make([]CleaningResponse, 0, len(rows)),
		Total:     total,
		Limit:     limit,
		Offset:    req.Offset,
		Window:    window.Response(),
	}
	for i := range rows {
		resp.Cleanings = append(resp.Cleanings, *NewCleaningResponse(&rows[i], window, scope))
	}
	return resp, nil
}

// CountsFor returns the badge counts for the user. Results are cached per
// user and day until the next successful transition anywhere.
func (s *EligibilityService) CountsFor(ctx context.Context, userID uuid.UUID) (*CountsResponse, error) {
	window := s.policy.WindowFor(s.now())

	key := ""
	if gen, err := s.cache.Generation(ctx); err != nil {
		s.log.WithError(err).Warn("counts cache generation unavailable")
	} else {
		key = fmt.Sprintf("counts:%d:%s:%s", gen, userID, window.Today.Format(dateLayout))
		var cached CountsResponse
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.WithError(err).Warn("counts cache read failed")
		}
		recordCacheRequest(found)
		if found {
			return &cached, nil
		}
	}

	scope, err := s.scopes.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.count(ctx, scope, window)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, counts, s.cacheTTL); err != nil {
			s.log.WithError(err).Warn("counts cache write failed")
		}
	}
	return counts, nil
}

func (s *EligibilityService) count(ctx context.Context, scope *TeamScope, window Window) (*CountsResponse, error) {
	var counts CountsResponse
	var err error

	if counts.AvailableCount, err = s.cleanings.CountAvailable(ctx, scope.ClaimReach(window.Today), window.Range()); err != nil {
		return nil, fmt.Errorf("failed to count available cleanings: %w", err)
	}

	held := repository.AssignedQuery{
		MembershipIDs: scope.MembershipIDs,
		MemberIDs:     scope.LegacyMemberIDs,
		Statuses:      []models.CleaningStatus{models.CleaningStatusPending, models.CleaningStatusInProgress},
	}
	if counts.AssignedCount, err = s.cleanings.CountAssigned(ctx, held); err != nil {
		return nil, fmt.Errorf("failed to count assigned cleanings: %w", err)
	}

	upcoming := held
	upcoming.Statuses = []models.CleaningStatus{models.CleaningStatusPending}
	upcoming.Range = repository.DateRange{From: window.Today, To: window.End}
	if counts.UpcomingCount, err = s.cleanings.CountAssigned(ctx, upcoming); err != nil {
		return nil, fmt.Errorf("failed to count upcoming cleanings: %w", err)
	}

	if counts.LostCount, err = s.cleanings.CountLost(ctx, scope.HistoryReach(window.Today), window.Start); err != nil {
		return nil, fmt.Errorf("failed to count lost cleanings: %w", err)
	}
	return &counts, nil
}

func assignedStatuses(req *ListCleaningsRequest) []models.CleaningStatus {
	if len(req.Statuses) > 0 {
		statuses := make([]models.CleaningStatus, 0, len(req.Statuses))
		for _, st := range req.Statuses {
			statuses = append(statuses, models.CleaningStatus(st))
		}
		return statuses
	}
	statuses := []models.CleaningStatus{models.CleaningStatusPending, models.CleaningStatusInProgress}
	if req.IncludeCompleted || req.History {
		statuses = append(statuses, models.CleaningStatusCompleted)
	}
	return statuses
}

// narrow intersects the window range with optional from/to bounds
func narrow(r repository.DateRange, from, to time.Time) repository.DateRange {
	if !from.IsZero() && (r.From.IsZero() || from.After(r.From)) {
		r.From = from
	}
	if !to.IsZero() && (r.To.IsZero() || to.Before(r.To)) {
		r.To = to
	}
	return r
}
