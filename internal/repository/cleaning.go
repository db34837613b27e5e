package repository

import (
	"context"
	"time"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateRange bounds scheduled dates inclusively; a zero bound is open
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) apply(query *gorm.DB) *gorm.DB {
	if !r.From.IsZero() {
		query = query.Where("scheduled_date >= ?", r.From)
	}
	if !r.To.IsZero() {
		query = query.Where("scheduled_date <= ?", r.To)
	}
	return query
}

// Reach is the set of properties and teams a user can see open work through.
// Paused reach only applies to jobs scheduled on or before Today.
type Reach struct {
	ActivePropertyIDs []uuid.UUID
	ActiveTeamIDs     []uuid.UUID
	PausedPropertyIDs []uuid.UUID
	PausedTeamIDs     []uuid.UUID
	Today             time.Time
}

// IsEmpty reports whether the reach grants nothing
func (r Reach) IsEmpty() bool {
	return len(r.ActivePropertyIDs) == 0 && len(r.ActiveTeamIDs) == 0 &&
		len(r.PausedPropertyIDs) == 0 && len(r.PausedTeamIDs) == 0
}

func (r Reach) apply(query *gorm.DB) *gorm.DB {
	// IN with an empty slice renders as IN (NULL) and matches nothing
	return query.Where(
		"((property_id IN ? OR team_id IN ?) OR (scheduled_date <= ? AND (property_id IN ? OR team_id IN ?)))",
		r.ActivePropertyIDs, r.ActiveTeamIDs, r.Today, r.PausedPropertyIDs, r.PausedTeamIDs,
	)
}

// Page carries limit/offset pagination
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(query *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}
	return query
}

// AvailableQuery selects open unassigned pending jobs inside a window
type AvailableQuery struct {
	Reach  Reach
	Window DateRange
	Page   Page
}

// AssignedQuery selects jobs owned by any of the given identities
type AssignedQuery struct {
	MembershipIDs []uuid.UUID
	MemberIDs     []uuid.UUID
	Statuses      []models.CleaningStatus
	Range         DateRange
	Descending    bool
	Page          Page
}

// LostQuery selects open unassigned pending jobs scheduled before a date
type LostQuery struct {
	Reach  Reach
	Before time.Time
	Range  DateRange
	Page   Page
}

// TransitionGuard is the precondition a lifecycle update must still satisfy
// when it is applied.
type TransitionGuard struct {
	Assignee     models.AssigneeRef
	FromStatuses []models.CleaningStatus
}

// CleaningRepository handles database operations for cleanings
type CleaningRepository struct {
	db *gorm.DB
}

// NewCleaningRepository creates a new cleaning repository
func NewCleaningRepository(db *gorm.DB) *CleaningRepository {
	return &CleaningRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CleaningRepository) WithTx(tx *gorm.DB) *CleaningRepository {
	return &CleaningRepository{db: tx}
}

// Create creates a new cleaning
func (r *CleaningRepository) Create(ctx context.Context, cleaning *models.Cleaning) error {
	return r.db.WithContext(ctx).Create(cleaning).Error
}

// GetByID retrieves a cleaning by ID
func (r *CleaningRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Cleaning, error) {
	var cleaning models.Cleaning
	err := r.db.WithContext(ctx).First(&cleaning, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cleaning, nil
}

// GetWithProperty retrieves a cleaning by ID with its property
func (r *CleaningRepository) GetWithProperty(ctx context.Context, id uuid.UUID) (*models.Cleaning, error) {
	var cleaning models.Cleaning
	err := r.db.WithContext(ctx).Preload("Property").First(&cleaning, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cleaning, nil
}

func (r *CleaningRepository) openPool(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Cleaning{}).
		Where("status = ?", models.CleaningStatusPending).
		Where("assignment_status = ?", models.AssignmentStatusOpen).
		Where("assigned_membership_id IS NULL AND assigned_member_id IS NULL")
}

// ClaimIfOpen assigns the job to the given identity only if it is still open,
// unassigned, pending and scheduled inside window. It returns the number of
// rows changed: zero means another writer got there first or the job no
// longer qualifies.
//
// An existing team_id is kept. Attention is cleared only when it was raised
// for lack of an available member; other reasons survive the claim.
func (r *CleaningRepository) ClaimIfOpen(ctx context.Context, id uuid.UUID, window DateRange, assignee models.AssigneeRef, teamID *uuid.UUID) (int64, error) {
	noMember := models.AttentionReasonNoAvailableMember
	updates := assignee.AssignmentColumns()
	updates["assignment_status"] = models.AssignmentStatusAssigned
	updates["needs_attention"] = gorm.Expr("CASE WHEN attention_reason = ? THEN ? ELSE needs_attention END", noMember, false)
	updates["attention_reason"] = gorm.Expr("CASE WHEN attention_reason = ? THEN NULL ELSE attention_reason END", noMember)
	if teamID != nil {
		updates["team_id"] = gorm.Expr("COALESCE(team_id, ?)", *teamID)
	}

	query := window.apply(r.openPool(ctx).Where("id = ?", id))
	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}

// TransitionIfAssigned applies updates only while the job is still owned by
// guard.Assignee and its status is one of guard.FromStatuses.
func (r *CleaningRepository) TransitionIfAssigned(ctx context.Context, id uuid.UUID, guard TransitionGuard, updates map[string]interface{}) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Cleaning{}).
		Where("id = ?", id).
		Where("assignment_status = ?", models.AssignmentStatusAssigned).
		Where(guard.Assignee.Column()+" = ?", guard.Assignee.ID)
	if len(guard.FromStatuses) > 0 {
		query = query.Where("status IN ?", guard.FromStatuses)
	}
	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}

// ListAvailable returns claimable jobs in the window, oldest first, with the total before paging
func (r *CleaningRepository) ListAvailable(ctx context.Context, q AvailableQuery) ([]models.Cleaning, int64, error) {
	var cleanings []models.Cleaning
	var total int64
	if q.Reach.IsEmpty() {
		return cleanings, 0, nil
	}

	base := q.Window.apply(q.Reach.apply(r.openPool(ctx)))
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Page.apply(base.Preload("Property").Order("scheduled_date ASC").Order("id ASC")).
		Find(&cleanings).Error
	return cleanings, total, err
}

// CountAvailable counts claimable jobs in the window
func (r *CleaningRepository) CountAvailable(ctx context.Context, reach Reach, window DateRange) (int64, error) {
	var total int64
	if reach.IsEmpty() {
		return 0, nil
	}
	err := window.apply(reach.apply(r.openPool(ctx))).Count(&total).Error
	return total, err
}

func (r *CleaningRepository) assigned(ctx context.Context, q AssignedQuery) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Cleaning{}).
		Where("assignment_status = ?", models.AssignmentStatusAssigned).
		Where("(assigned_membership_id IN ? OR assigned_member_id IN ?)", q.MembershipIDs, q.MemberIDs)
	if len(q.Statuses) > 0 {
		query = query.Where("status IN ?", q.Statuses)
	}
	return q.Range.apply(query)
}

// ListAssigned returns jobs owned by the given identities, soonest first unless Descending
func (r *CleaningRepository) ListAssigned(ctx context.Context, q AssignedQuery) ([]models.Cleaning, int64, error) {
	var cleanings []models.Cleaning
	var total int64
	if len(q.MembershipIDs) == 0 && len(q.MemberIDs) == 0 {
		return cleanings, 0, nil
	}

	base := r.assigned(ctx, q)
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "scheduled_date ASC"
	if q.Descending {
		order = "scheduled_date DESC"
	}
	err := q.Page.apply(base.Preload("Property").Order(order).Order("id ASC")).
		Find(&cleanings).Error
	return cleanings, total, err
}

// CountAssigned counts jobs owned by the given identities
func (r *CleaningRepository) CountAssigned(ctx context.Context, q AssignedQuery) (int64, error) {
	var total int64
	if len(q.MembershipIDs) == 0 && len(q.MemberIDs) == 0 {
		return 0, nil
	}
	err := r.assigned(ctx, q).Count(&total).Error
	return total, err
}

// ListLost returns open jobs whose date passed before anyone claimed them, newest first
func (r *CleaningRepository) ListLost(ctx context.Context, q LostQuery) ([]models.Cleaning, int64, error) {
	var cleanings []models.Cleaning
	var total int64
	if q.Reach.IsEmpty() || q.Before.IsZero() {
		return cleanings, 0, nil
	}

	base := q.Range.apply(q.Reach.apply(r.openPool(ctx)).Where("scheduled_date < ?", q.Before))
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Page.apply(base.Preload("Property").Order("scheduled_date DESC").Order("id ASC")).
		Find(&cleanings).Error
	return cleanings, total, err
}

// CountLost counts open jobs scheduled before the given date
func (r *CleaningRepository) CountLost(ctx context.Context, reach Reach, before time.Time) (int64, error) {
	var total int64
	if reach.IsEmpty() || before.IsZero() {
		return 0, nil
	}
	err := reach.apply(r.openPool(ctx)).Where("scheduled_date < ?", before).Count(&total).Error
	return total, err
}
