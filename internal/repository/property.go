package repository

import (
	"context"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties and their team authorizations
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PropertyRepository) WithTx(tx *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: tx}
}

// Create creates a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// AddTeam authorizes a team on a property
func (r *PropertyRepository) AddTeam(ctx context.Context, link *models.PropertyTeam) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// AddMemberAccess grants a membership direct access to a property
func (r *PropertyRepository) AddMemberAccess(ctx context.Context, access *models.PropertyMemberAccess) error {
	return r.db.WithContext(ctx).Create(access).Error
}

// ListPropertyTeamsByTeams retrieves property links for any of the given teams
func (r *PropertyRepository) ListPropertyTeamsByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]models.PropertyTeam, error) {
	var links []models.PropertyTeam
	if len(teamIDs) == 0 {
		return links, nil
	}
	err := r.db.WithContext(ctx).Where("team_id IN ?", teamIDs).Find(&links).Error
	return links, err
}

// ListAccessByMemberships retrieves direct property grants for any of the given memberships
func (r *PropertyRepository) ListAccessByMemberships(ctx context.Context, membershipIDs []uuid.UUID) ([]models.PropertyMemberAccess, error) {
	var grants []models.PropertyMemberAccess
	if len(membershipIDs) == 0 {
		return grants, nil
	}
	err := r.db.WithContext(ctx).Where("membership_id IN ?", membershipIDs).Find(&grants).Error
	return grants, err
}

// ListAuthorizedTeams retrieves the teams authorized on a property, oldest link first
func (r *PropertyRepository) ListAuthorizedTeams(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyTeam, error) {
	var links []models.PropertyTeam
	err := r.db.WithContext(ctx).Preload("Team").
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Order("team_id ASC").
		Find(&links).Error
	return links, err
}
