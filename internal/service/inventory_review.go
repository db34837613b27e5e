package service

import (
	"context"
	"errors"
	"fmt"

	"cleaning-ops-backend/internal/database/models"
	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryReviewService creates the draft inventory review a started cleaning needs
type InventoryReviewService struct {
	cleanings *repository.CleaningRepository
	reviews   *repository.InventoryReviewRepository
}

// NewInventoryReviewService creates a new inventory review service
func NewInventoryReviewService(cleanings *repository.CleaningRepository, reviews *repository.InventoryReviewRepository) *InventoryReviewService {
	return &InventoryReviewService{cleanings: cleanings, reviews: reviews}
}

// BootstrapDraft makes sure a review exists for the cleaning. An existing
// review is returned untouched, whatever its status.
func (s *InventoryReviewService) BootstrapDraft(ctx context.Context, cleaningID uuid.UUID) (*models.InventoryReview, error) {
	cleaning, err := s.cleanings.GetByID(ctx, cleaningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCleaningNotFound
		}
		return nil, fmt.Errorf("failed to load cleaning: %w", err)
	}

	review := &models.InventoryReview{
		CleaningID: cleaning.ID,
		PropertyID: cleaning.PropertyID,
		Status:     models.InventoryReviewStatusDraft,
	}
	if _, err := s.reviews.CreateIfAbsent(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create inventory review: %w", err)
	}

	existing, err := s.reviews.GetByCleaningID(ctx, cleaningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryReviewNotFound
		}
		return nil, fmt.Errorf("failed to load inventory review: %w", err)
	}
	return existing, nil
}
