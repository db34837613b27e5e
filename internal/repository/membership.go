package repository

import (
	"context"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team memberships and legacy members
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new team membership
func (r *MembershipRepository) Create(ctx context.Context, membership *models.TeamMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// CreateLegacyMember creates a legacy team member row
func (r *MembershipRepository) CreateLegacyMember(ctx context.Context, member *models.LegacyTeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID retrieves a membership by ID with its team
func (r *MembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := r.db.WithContext(ctx).Preload("Team").First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListMembershipsByUser retrieves a user's memberships in the given statuses, teams preloaded
func (r *MembershipRepository) ListMembershipsByUser(ctx context.Context, userID uuid.UUID, statuses []models.MembershipStatus) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	query := r.db.WithContext(ctx).Preload("Team").Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("created_at ASC").Find(&memberships).Error
	return memberships, err
}

// ListLegacyMembersByUser retrieves a user's legacy member rows, teams preloaded
func (r *MembershipRepository) ListLegacyMembersByUser(ctx context.Context, userID uuid.UUID) ([]models.LegacyTeamMember, error) {
	var members []models.LegacyTeamMember
	err := r.db.WithContext(ctx).Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}
