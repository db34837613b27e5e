package service

import (
	"context"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScopeResolver resolves the caller's team scope
type ScopeResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*TeamScope, error)
}

// InventoryReviewBootstrapper ensures a draft inventory review exists for a cleaning
type InventoryReviewBootstrapper interface {
	BootstrapDraft(ctx context.Context, cleaningID uuid.UUID) (*models.InventoryReview, error)
}

// EligibilityServiceInterface defines the interface for the cleaning list views
type EligibilityServiceInterface interface {
	ListEligibleCleanings(ctx context.Context, userID uuid.UUID, req *ListCleaningsRequest) (*CleaningListResponse, error)
	CountsFor(ctx context.Context, userID uuid.UUID) (*CountsResponse, error)
	CurrentWindow() WindowResponse
}

// AssignmentServiceInterface defines the interface for the claim lifecycle
type AssignmentServiceInterface interface {
	Claim(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error)
	Start(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error)
	Complete(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error)
	Decline(ctx context.Context, userID, cleaningID uuid.UUID) (*TransitionResult, error)
}
