package repository

import (
	"context"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	ListMembershipsByUser(ctx context.Context, userID uuid.UUID, statuses []models.MembershipStatus) ([]models.TeamMembership, error)
	ListLegacyMembersByUser(ctx context.Context, userID uuid.UUID) ([]models.LegacyTeamMember, error)
}

// PropertyRepositoryInterface defines the interface for property authorization lookups
type PropertyRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListPropertyTeamsByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.PropertyTeam, error)
	ListAccessByMemberships(ctx context.Context, membershipIDs []uuid.UUID) ([]models.PropertyMemberAccess, error)
	ListAuthorizedTeams(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyTeam, error)
}
