package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cleaning-ops-backend/internal/cache"
	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Assignment operations, used as log and metric labels
const (
	OperationClaim    = "claim"
	OperationStart    = "start"
	OperationComplete = "complete"
	OperationDecline  = "decline"
)

// TransitionResult is the outcome of a successful assignment operation
type TransitionResult struct {
	Outcome  apperrors.Outcome  `json:"outcome"`
	Assignee models.AssigneeRef `json:"assignee"`
	Cleaning *CleaningResponse  `json:"cleaning"`
}

// AssignmentService drives cleanings through claim, start, complete and decline
type AssignmentService struct {
	tx         *repository.TxManager
	cleanings  *repository.CleaningRepository
	assignees  *repository.CleaningAssigneeRepository
	properties *repository.PropertyRepository
	scopes     ScopeResolver
	policy     *AvailabilityPolicy
	reviews    InventoryReviewBootstrapper
	cache      cache.Store
	log        logrus.FieldLogger
	now        func() time.Time
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	tx *repository.TxManager,
	cleanings *repository.CleaningRepository,
	assignees *repository.CleaningAssigneeRepository,
	properties *repository.PropertyRepository,
	scopes ScopeResolver,
	policy *AvailabilityPolicy,
	reviews InventoryReviewBootstrapper,
	store cache.Store,
	log logrus.FieldLogger,
) *AssignmentService {
	if store == nil {
		store = cache.Noop{}
	}
	return &AssignmentService{
		tx:         tx,
		cleanings:  cleanings,
		assignees:  assignees,
		properties: properties,
		scopes:     scopes,
		policy:     policy,
		reviews:    reviews,
		cache:      store,
		log:        log,
		now:        time.Now,
	}
}

// WithClock replaces the time source
func (s *AssignmentService) WithClock(now func() time.Time) *AssignmentService {
	s.now = now
	return s
}

// Claim assigns an open cleaning to the caller. Exactly one of any number of
// concurrent claims on the same cleaning succeeds; the others get
// ErrAlreadyTaken.
func (s *AssignmentService) Claim(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error) {
	started := time.Now()
	result, err := s.claim(ctx, userID, cleaningID)
	observeClaim(apperrors.OutcomeOf(err), time.Since(started))
	s.finish(ctx, OperationClaim, userID, cleaningID, err)
	return result, err
}

func (s *AssignmentService) claim(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error) {
	scope, err := s.scopes.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	window := s.policy.WindowFor(s.now())

	var claimed *models.Cleaning
	var identity *ClaimIdentity
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		cleanings := s.cleanings.WithTx(tx)

		current, err := cleanings.GetByID(ctx, cleaningID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCleaningNotFound
			}
			return fmt.Errorf("failed to load cleaning: %w", err)
		}
		if !current.IsUnassigned() || current.Status != models.CleaningStatusPending {
			return apperrors.ErrAlreadyTaken
		}
		if !window.Contains(current.ScheduledDate) {
			return apperrors.ErrOutOfWindow
		}

		properties := s.properties.WithTx(tx)
		if _, err := properties.GetByID(ctx, current.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPropertyNotFound
			}
			return fmt.Errorf("failed to load property: %w", err)
		}

		identity, err = authorizeClaim(ctx, properties, scope, current, window)
		if err != nil {
			return err
		}

		rows, err := cleanings.ClaimIfOpen(ctx, cleaningID, window.Range(), identity.Assignee, &identity.TeamID)
		if err != nil {
			return fmt.Errorf("failed to claim cleaning: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrAlreadyTaken
		}

		if _, err := s.assignees.WithTx(tx).MarkAssigned(ctx, cleaningID, identity.Assignee, s.now().UTC()); err != nil {
			return fmt.Errorf("failed to record assignee: %w", err)
		}

		claimed, err = cleanings.GetWithProperty(ctx, cleaningID)
		if err != nil {
			return fmt.Errorf("failed to reload cleaning: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransitionResult{
		Outcome:  apperrors.OutcomeSuccess,
		Assignee: identity.Assignee,
		Cleaning: NewCleaningResponse(claimed, window, scope),
	}, nil
}

// Start moves a claimed cleaning to in progress. A draft inventory review is
// bootstrapped after the transition commits; failing to create it is logged
// and does not undo the start.
func (s *AssignmentService) Start(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error) {
	result, err := s.transition(ctx, userID, cleaningID, lifecycleStep{
		from: []models.CleaningStatus{models.CleaningStatusPending},
		updates: func(now time.Time) map[string]interface{} {
			return map[string]interface{}{
				"status":     models.CleaningStatusInProgress,
				"started_at": now,
			}
		},
	})
	s.finish(ctx, OperationStart, userID, cleaningID, err)
	if err != nil {
		return nil, err
	}

	s.bootstrapReview(ctx, cleaningID)
	return result, nil
}

// Complete finishes a cleaning that is in progress
func (s *AssignmentService) Complete(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error) {
	result, err := s.transition(ctx, userID, cleaningID, lifecycleStep{
		from: []models.CleaningStatus{models.CleaningStatusInProgress},
		updates: func(now time.Time) map[string]interface{} {
			return map[string]interface{}{
				"status":       models.CleaningStatusCompleted,
				"completed_at": now,
			}
		},
	})
	s.finish(ctx, OperationComplete, userID, cleaningID, err)
	return result, err
}

// Decline hands a claimed, not yet started cleaning back to the open pool and
// flags it for attention so it resurfaces to other cleaners and the host.
func (s *AssignmentService) Decline(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error) {
	result, err := s.transition(ctx, userID, cleaningID, lifecycleStep{
		from: []models.CleaningStatus{models.CleaningStatusPending},
		updates: func(time.Time) map[string]interface{} {
			return map[string]interface{}{
				"assignment_status":      models.AssignmentStatusOpen,
				"assigned_membership_id": nil,
				"assigned_member_id":     nil,
				"needs_attention":        true,
				"attention_reason":       models.AttentionReasonDeclinedByAssignee,
			}
		},
		after: func(ctx context.Context, tx *gorm.DB, ref models.AssigneeRef, now time.Time) error {
			if _, err := s.assignees.WithTx(tx).MarkDeclined(ctx, cleaningID, ref, now); err != nil {
				return fmt.Errorf("failed to record decline: %w", err)
			}
			return nil
		},
	})
	s.finish(ctx, OperationDecline, userID, cleaningID, err)
	return result, err
}

type lifecycleStep struct {
	from    []models.CleaningStatus
	updates func(now time.Time) map[string]interface{}
	after   func(ctx context.Context, tx *gorm.DB, ref models.AssigneeRef, now time.Time) error
}

// transition applies step as a conditional update guarded on the caller still
// being the assignee and the status still being one of step.from.
func (s *AssignmentService) transition(ctx context.Context, userID, cleaningID uuid.UUID, step lifecycleStep) (*TransitionResult, error) {
	scope, err := s.scopes.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	window := s.policy.WindowFor(now)

	var updated *models.Cleaning
	var ref models.AssigneeRef
	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		cleanings := s.cleanings.WithTx(tx)

		current, err := cleanings.GetByID(ctx, cleaningID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCleaningNotFound
			}
			return fmt.Errorf("failed to load cleaning: %w", err)
		}

		var owns bool
		ref, owns = scope.Owns(current)
		if !owns {
			return apperrors.ErrNotEligible
		}

		rows, err := cleanings.TransitionIfAssigned(ctx, cleaningID, repository.TransitionGuard{
			Assignee:     ref,
			FromStatuses: step.from,
		}, step.updates(now))
		if err != nil {
			return fmt.Errorf("failed to update cleaning: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrNotEligible
		}

		if step.after != nil {
			if err := step.after(ctx, tx, ref, now); err != nil {
				return err
			}
		}

		updated, err = cleanings.GetWithProperty(ctx, cleaningID)
		if err != nil {
			return fmt.Errorf("failed to reload cleaning: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransitionResult{
		Outcome:  apperrors.OutcomeSuccess,
		Assignee: ref,
		Cleaning: NewCleaningResponse(updated, window, scope),
	}, nil
}

// bootstrapReview runs the post-start side effect. Errors and panics are
// logged and swallowed.
func (s *AssignmentService) bootstrapReview(ctx context.Context, cleaningID uuid.UUID) {
	if s.reviews == nil {
		return
	}
	log := s.log.WithField("cleaning_id", cleaningID)

	defer func() {
		if r := recover(); r != nil {
			bootstrapFailures.Inc()
			log.WithField("panic", r).Warn("inventory review bootstrap panicked")
		}
	}()

	if _, err := s.reviews.BootstrapDraft(ctx, cleaningID); err != nil {
		bootstrapFailures.Inc()
		log.WithError(err).Warn("failed to bootstrap draft inventory review")
	}
}

// finish records metrics and logs for an operation, and invalidates cached
// list counts after a successful one.
func (s *AssignmentService) finish(ctx context.Context, operation string, userID, cleaningID uuid.UUID, err error) {
	outcome := apperrors.OutcomeOf(err)
	recordTransition(operation, outcome)

	log := s.log.WithFields(logrus.Fields{
		"operation":   operation,
		"user_id":     userID,
		"cleaning_id": cleaningID,
		"outcome":     outcome,
	})

	switch {
	case err == nil:
		log.Info("cleaning transition applied")
		if cacheErr := s.cache.Invalidate(ctx); cacheErr != nil {
			log.WithError(cacheErr).Warn("failed to invalidate cleaning list cache")
		}
	case apperrors.IsBenign(err), apperrors.IsNotFound(err):
		log.Debug(err.Error())
	case apperrors.IsAuthorization(err):
		log.Info(err.Error())
	default:
		log.WithError(err).Error("cleaning transition failed")
	}
}
