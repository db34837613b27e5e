package repository

import (
	"context"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryReviewRepository handles database operations for inventory reviews
type InventoryReviewRepository struct {
	db *gorm.DB
}

// NewInventoryReviewRepository creates a new inventory review repository
func NewInventoryReviewRepository(db *gorm.DB) *InventoryReviewRepository {
	return &InventoryReviewRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *InventoryReviewRepository) WithTx(tx *gorm.DB) *InventoryReviewRepository {
	return &InventoryReviewRepository{db: tx}
}

// GetByCleaningID retrieves the review attached to a cleaning
func (r *InventoryReviewRepository) GetByCleaningID(ctx context.Context, cleaningID uuid.UUID) (*models.InventoryReview, error) {
	var review models.InventoryReview
	err := r.db.WithContext(ctx).First(&review, "cleaning_id = ?", cleaningID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateIfAbsent inserts the review unless one already exists for its cleaning.
// It reports whether a row was inserted.
func (r *InventoryReviewRepository) CreateIfAbsent(ctx context.Context, review *models.InventoryReview) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "cleaning_id"}}, DoNothing: true}).
		Create(review)
	return result.RowsAffected > 0, result.Error
}
