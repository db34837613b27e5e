// Package seed loads tenants, teams, properties and cleanings from YAML files
// into an empty or partially seeded database. Applying the same data twice
// creates nothing new.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cleaning-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// File is the top-level YAML document
type File struct {
	Tenants []TenantData `yaml:"tenants"`
}

type TenantData struct {
	Name       string         `yaml:"name"`
	Teams      []TeamData     `yaml:"teams"`
	Properties []PropertyData `yaml:"properties"`
}

type TeamData struct {
	Name          string       `yaml:"name"`
	Status        string       `yaml:"status"`
	Members       []MemberData `yaml:"members"`
	LegacyMembers []uuid.UUID  `yaml:"legacy_members,omitempty"`
}

type MemberData struct {
	UserID uuid.UUID `yaml:"user_id"`
	Role   string    `yaml:"role"`
	Status string    `yaml:"status"`
}

type PropertyData struct {
	Name      string         `yaml:"name"`
	Address   string         `yaml:"address"`
	Teams     []string       `yaml:"teams"`
	Grants    []GrantData    `yaml:"grants,omitempty"`
	Cleanings []CleaningData `yaml:"cleanings"`
}

// GrantData gives one team member direct access to the property
type GrantData struct {
	Team   string    `yaml:"team"`
	UserID uuid.UUID `yaml:"user_id"`
}

// CleaningData schedules a cleaning either on a fixed date or relative to the
// day the seed is applied, which keeps demo data inside the claim window.
type CleaningData struct {
	Date       string `yaml:"date,omitempty"`
	OffsetDays *int   `yaml:"offset_days,omitempty"`
	Team       string `yaml:"team,omitempty"`
	Notes      string `yaml:"notes,omitempty"`
}

// Summary counts the rows created by Apply
type Summary struct {
	Tenants     int
	Teams       int
	Memberships int
	Properties  int
	Cleanings   int
}

// Load reads a YAML file, or every .yaml/.yml file under a directory, and
// merges their tenants.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var merged File
	if !info.IsDir() {
		if err := readInto(path, &merged); err != nil {
			return nil, err
		}
		return &merged, nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) {
			return nil
		}
		return readInto(p, &merged)
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func readInto(path string, merged *File) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	merged.Tenants = append(merged.Tenants, file.Tenants...)
	return nil
}

// Apply writes file into db in a single transaction. today anchors offset_days.
func Apply(ctx context.Context, db *gorm.DB, file *File, today time.Time) (*Summary, error) {
	summary := &Summary{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, tenantData := range file.Tenants {
			if err := applyTenant(tx, tenantData, today, summary); err != nil {
				return fmt.Errorf("tenant %s: %w", tenantData.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tenants":     summary.Tenants,
		"teams":       summary.Teams,
		"memberships": summary.Memberships,
		"properties":  summary.Properties,
		"cleanings":   summary.Cleanings,
	}).Info("seed applied")
	return summary, nil
}

func applyTenant(tx *gorm.DB, data TenantData, today time.Time, summary *Summary) error {
	if data.Name == "" {
		return errors.New("name is required")
	}

	tenant := models.Tenant{Name: data.Name}
	created, err := firstOrCreate(tx, &tenant, "name = ?", data.Name)
	if err != nil {
		return err
	}
	if created {
		summary.Tenants++
	}

	teams := make(map[string]*models.Team)
	memberships := make(map[string]uuid.UUID)
	for _, teamData := range data.Teams {
		team, err := applyTeam(tx, tenant.ID, teamData, memberships, summary)
		if err != nil {
			return fmt.Errorf("team %s: %w", teamData.Name, err)
		}
		teams[teamData.Name] = team
	}

	for _, propertyData := range data.Properties {
		if err := applyProperty(tx, tenant.ID, propertyData, teams, memberships, today, summary); err != nil {
			return fmt.Errorf("property %s: %w", propertyData.Name, err)
		}
	}
	return nil
}

func applyTeam(tx *gorm.DB, tenantID uuid.UUID, data TeamData, memberships map[string]uuid.UUID, summary *Summary) (*models.Team, error) {
	status := models.TeamStatus(data.Status)
	if status == "" {
		status = models.TeamStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid team status %q", data.Status)
	}

	team := models.Team{TenantID: tenantID, Name: data.Name, Status: status}
	created, err := firstOrCreate(tx, &team, "tenant_id = ? AND name = ?", tenantID, data.Name)
	if err != nil {
		return nil, err
	}
	if created {
		summary.Teams++
	}

	for _, member := range data.Members {
		if member.UserID == uuid.Nil {
			return nil, errors.New("member user_id is required")
		}
		role := models.MembershipRole(member.Role)
		if role == "" {
			role = models.MembershipRoleMember
		}
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role %q for %s", member.Role, member.UserID)
		}
		status := models.MembershipStatus(member.Status)
		if status == "" {
			status = models.MembershipStatusActive
		}
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid membership status %q for %s", member.Status, member.UserID)
		}

		membership := models.TeamMembership{TeamID: team.ID, UserID: member.UserID, Role: role, Status: status}
		created, err := firstOrCreate(tx, &membership, "team_id = ? AND user_id = ?", team.ID, member.UserID)
		if err != nil {
			return nil, err
		}
		if created {
			summary.Memberships++
		}
		memberships[grantKey(data.Name, member.UserID)] = membership.ID
	}

	for _, userID := range data.LegacyMembers {
		legacy := models.LegacyTeamMember{TeamID: team.ID, UserID: userID, IsActive: true}
		if _, err := firstOrCreate(tx, &legacy, "team_id = ? AND user_id = ?", team.ID, userID); err != nil {
			return nil, err
		}
	}

	return &team, nil
}

func applyProperty(tx *gorm.DB, tenantID uuid.UUID, data PropertyData, teams map[string]*models.Team, memberships map[string]uuid.UUID, today time.Time, summary *Summary) error {
	property := models.Property{TenantID: tenantID, Name: data.Name, Address: data.Address}
	created, err := firstOrCreate(tx, &property, "tenant_id = ? AND name = ?", tenantID, data.Name)
	if err != nil {
		return err
	}
	if created {
		summary.Properties++
	}

	for _, teamName := range data.Teams {
		team, ok := teams[teamName]
		if !ok {
			return fmt.Errorf("unknown team %q", teamName)
		}
		link := models.PropertyTeam{PropertyID: property.ID, TeamID: team.ID}
		if _, err := firstOrCreate(tx, &link, "property_id = ? AND team_id = ?", property.ID, team.ID); err != nil {
			return err
		}
	}

	for _, grant := range data.Grants {
		membershipID, ok := memberships[grantKey(grant.Team, grant.UserID)]
		if !ok {
			return fmt.Errorf("grant for %s references no member of team %q", grant.UserID, grant.Team)
		}
		access := models.PropertyMemberAccess{PropertyID: property.ID, MembershipID: membershipID}
		if _, err := firstOrCreate(tx, &access, "property_id = ? AND membership_id = ?", property.ID, membershipID); err != nil {
			return err
		}
	}

	for _, cleaningData := range data.Cleanings {
		date, err := cleaningData.scheduledDate(today)
		if err != nil {
			return err
		}

		cleaning := models.Cleaning{
			TenantID:         tenantID,
			PropertyID:       property.ID,
			ScheduledDate:    date,
			Status:           models.CleaningStatusPending,
			AssignmentStatus: models.AssignmentStatusOpen,
			Notes:            cleaningData.Notes,
		}
		if cleaningData.Team != "" {
			team, ok := teams[cleaningData.Team]
			if !ok {
				return fmt.Errorf("unknown team %q", cleaningData.Team)
			}
			cleaning.TeamID = &team.ID
		}

		created, err := firstOrCreate(tx, &cleaning, "property_id = ? AND scheduled_date = ?", property.ID, date)
		if err != nil {
			return err
		}
		if created {
			summary.Cleanings++
		}
	}
	return nil
}

func (c CleaningData) scheduledDate(today time.Time) (time.Time, error) {
	switch {
	case c.OffsetDays != nil && c.Date != "":
		return time.Time{}, errors.New("cleaning sets both date and offset_days")
	case c.OffsetDays != nil:
		return today.AddDate(0, 0, *c.OffsetDays), nil
	case c.Date != "":
		date, err := time.Parse(dateLayout, c.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid cleaning date %q: %w", c.Date, err)
		}
		return date, nil
	}
	return time.Time{}, errors.New("cleaning needs a date or offset_days")
}

func grantKey(team string, userID uuid.UUID) string {
	return team + "/" + userID.String()
}

// firstOrCreate loads the row matching the query into value, or inserts value.
// It reports whether a row was inserted.
func firstOrCreate(tx *gorm.DB, value interface{}, query string, args ...interface{}) (bool, error) {
	err := tx.Where(query, args...).First(value).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("query: %w", err)
	}
	if err := tx.Create(value).Error; err != nil {
		return false, fmt.Errorf("create: %w", err)
	}
	return true, nil
}
