package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cleaning-ops-backend/internal/database/models"
	"cleaning-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = testutils.Date(2026, time.May, 4)

func TestLoadFile(t *testing.T) {
	file, err := Load("testdata/harbor.yaml")
	require.NoError(t, err)

	require.Len(t, file.Tenants, 1)
	tenant := file.Tenants[0]
	assert.Equal(t, "Harbor Rentals", tenant.Name)
	require.Len(t, tenant.Teams, 2)
	assert.Equal(t, uuid.MustParse("8d3c1f0e-5b7a-4c52-9d61-0f2a4b6c8e10"), tenant.Teams[0].Members[0].UserID)
	require.Len(t, tenant.Properties, 2)
	require.NotNil(t, tenant.Properties[0].Cleanings[0].OffsetDays)
	assert.Equal(t, 1, *tenant.Properties[0].Cleanings[0].OffsetDays)
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("tenants:\n  - name: A\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("tenants:\n  - name: B\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	file, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, file.Tenants, 2)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tenants: [name: {"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	file, err := Load("testdata/harbor.yaml")
	require.NoError(t, err)

	summary, err := Apply(context.Background(), db, file, today)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Tenants: 1, Teams: 2, Memberships: 3, Properties: 2, Cleanings: 4}, summary)

	again, err := Apply(context.Background(), db, file, today)
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, again)

	var cleanings []models.Cleaning
	require.NoError(t, db.Order("scheduled_date").Find(&cleanings).Error)
	require.Len(t, cleanings, 4)
	assert.True(t, cleanings[0].ScheduledDate.Equal(testutils.Date(2026, time.January, 15)))
	for _, c := range cleanings {
		assert.True(t, c.IsUnassigned())
		assert.Equal(t, models.CleaningStatusPending, c.Status)
	}

	var paused models.Team
	require.NoError(t, db.Where("name = ?", "Winter Crew").First(&paused).Error)
	assert.False(t, paused.IsActive())

	var grants int64
	require.NoError(t, db.Model(&models.PropertyMemberAccess{}).Count(&grants).Error)
	assert.Equal(t, int64(1), grants)

	var legacy int64
	require.NoError(t, db.Model(&models.LegacyTeamMember{}).Count(&legacy).Error)
	assert.Equal(t, int64(1), legacy)
}

func TestApplyRollsBackOnError(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	file := &File{Tenants: []TenantData{{
		Name:  "Broken",
		Teams: []TeamData{{Name: "Only Crew"}},
		Properties: []PropertyData{{
			Name:  "Somewhere",
			Teams: []string{"Missing Crew"},
		}},
	}}}

	_, err := Apply(context.Background(), db, file, today)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing Crew")

	var tenants int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&tenants).Error)
	assert.Zero(t, tenants)
}

func TestApplyRejectsUnknownEnums(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name string
		team TeamData
		want string
	}{
		{name: "team status", team: TeamData{Name: "Crew", Status: "sleeping"}, want: "invalid team status"},
		{name: "role", team: TeamData{Name: "Crew", Members: []MemberData{{UserID: userID, Role: "owner"}}}, want: "invalid role"},
		{name: "membership status", team: TeamData{Name: "Crew", Members: []MemberData{{UserID: userID, Status: "invited"}}}, want: "invalid membership status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.NewSQLiteDB(t)
			file := &File{Tenants: []TenantData{{Name: "Enums", Teams: []TeamData{tt.team}}}}

			_, err := Apply(context.Background(), db, file, today)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var memberships int64
			require.NoError(t, db.Model(&models.TeamMembership{}).Count(&memberships).Error)
			assert.Zero(t, memberships)
		})
	}
}

func TestCleaningDate(t *testing.T) {
	two := 2
	tests := []struct {
		name    string
		data    CleaningData
		want    time.Time
		wantErr bool
	}{
		{name: "offset", data: CleaningData{OffsetDays: &two}, want: testutils.Date(2026, time.May, 6)},
		{name: "fixed", data: CleaningData{Date: "2026-06-01"}, want: testutils.Date(2026, time.June, 1)},
		{name: "both", data: CleaningData{Date: "2026-06-01", OffsetDays: &two}, wantErr: true},
		{name: "neither", data: CleaningData{}, wantErr: true},
		{name: "bad date", data: CleaningData{Date: "01/06/2026"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.data.scheduledDate(today)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
