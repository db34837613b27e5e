package repository

import (
	"context"
	"errors"
	"time"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CleaningAssigneeRepository handles database operations for cleaning claim history
type CleaningAssigneeRepository struct {
	db *gorm.DB
}

// NewCleaningAssigneeRepository creates a new cleaning assignee repository
func NewCleaningAssigneeRepository(db *gorm.DB) *CleaningAssigneeRepository {
	return &CleaningAssigneeRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CleaningAssigneeRepository) WithTx(tx *gorm.DB) *CleaningAssigneeRepository {
	return &CleaningAssigneeRepository{db: tx}
}

// GetByCleaningAndAssignee retrieves the history row for one (cleaning, assignee) pair
func (r *CleaningAssigneeRepository) GetByCleaningAndAssignee(ctx context.Context, cleaningID uuid.UUID, assignee models.AssigneeRef) (*models.CleaningAssignee, error) {
	var row models.CleaningAssignee
	err := r.db.WithContext(ctx).
		Where("cleaning_id = ?", cleaningID).
		Where(assignee.AssigneeColumn()+" = ?", assignee.ID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkAssigned records the assignee as holding the job. An existing row for the
// pair, for example one left declined by an earlier attempt, is reset in place.
func (r *CleaningAssigneeRepository) MarkAssigned(ctx context.Context, cleaningID uuid.UUID, assignee models.AssigneeRef, at time.Time) (*models.CleaningAssignee, error) {
	return r.upsert(ctx, cleaningID, assignee, func(row *models.CleaningAssignee) {
		row.Status = models.CleaningAssigneeStatusAssigned
		row.AssignedAt = at
		row.DeclinedAt = nil
	})
}

// MarkDeclined flags the pair as declined, creating the row when the
// assignment predates claim history.
func (r *CleaningAssigneeRepository) MarkDeclined(ctx context.Context, cleaningID uuid.UUID, assignee models.AssigneeRef, at time.Time) (*models.CleaningAssignee, error) {
	return r.upsert(ctx, cleaningID, assignee, func(row *models.CleaningAssignee) {
		if row.AssignedAt.IsZero() {
			row.AssignedAt = at
		}
		row.Status = models.CleaningAssigneeStatusDeclined
		row.DeclinedAt = &at
	})
}

func (r *CleaningAssigneeRepository) upsert(ctx context.Context, cleaningID uuid.UUID, assignee models.AssigneeRef, mutate func(*models.CleaningAssignee)) (*models.CleaningAssignee, error) {
	row, err := r.GetByCleaningAndAssignee(ctx, cleaningID, assignee)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if row == nil {
		row = &models.CleaningAssignee{CleaningID: cleaningID}
		id := assignee.ID
		if assignee.Kind == models.AssigneeKindLegacyMember {
			row.MemberID = &id
		} else {
			row.MembershipID = &id
		}
	}
	mutate(row)

	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByCleaning retrieves all history rows for a cleaning
func (r *CleaningAssigneeRepository) ListByCleaning(ctx context.Context, cleaningID uuid.UUID) ([]models.CleaningAssignee, error) {
	var rows []models.CleaningAssignee
	err := r.db.WithContext(ctx).Where("cleaning_id = ?", cleaningID).Order("assigned_at ASC").Find(&rows).Error
	return rows, err
}
