package database

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/repositories/memory"
	"alertsystem/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTeamsRoster(t *testing.T) {
	teams := SeedTeams(time.Now())

	// 86 districts with six local teams each, 11 NDRF battalions and 6 CRPF units.
	require.Len(t, teams, 533)

	byName := make(map[string]*models.EmergencyTeam, len(teams))
	for _, team := range teams {
		assert.Equal(t, models.TeamAvailable, team.Status)
		byName[team.TeamName] = team
	}

	station := byName["Mysuru Central Fire Station"]
	require.NotNil(t, station)
	assert.Equal(t, models.TeamFire, station.TeamType)
	assert.Equal(t, "101", station.PhoneNumber)
	assert.Equal(t, 25, station.PersonnelCount)

	assert.NotNil(t, byName["NDRF Mumbai Battalion"])
	assert.Nil(t, byName["NDRF Mysuru Battalion"])

	crpf := byName["CRPF Amritsar Unit"]
	require.NotNil(t, crpf)
	assert.Equal(t, models.TeamPolice, crpf.TeamType)
}

func TestRunSeedersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	opts := SeedOptions{
		AdminEmail:    "Admin@Relief.org",
		AdminPassword: "bootstrap-secret",
		Passwords:     utils.NewPasswordServiceWithCost(4),
	}

	require.NoError(t, RunSeeders(ctx, repos, opts))
	require.NoError(t, RunSeeders(ctx, repos, opts))

	count, err := repos.Teams.Count(ctx, interfaces.EmergencyTeamFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 533, count)

	admins, err := repos.Users.Count(ctx, interfaces.UserFilter{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)

	admin, err := repos.Users.GetByEmail(ctx, "admin@relief.org")
	require.NoError(t, err)
	assert.True(t, admin.IsActive)
	assert.True(t, opts.Passwords.Verify(admin.Password, "bootstrap-secret"))
}

func TestRunSeedersSkipsAdminWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	require.NoError(t, RunSeeders(ctx, repos, SeedOptions{Passwords: utils.NewPasswordServiceWithCost(4)}))

	users, err := repos.Users.Count(ctx, interfaces.UserFilter{})
	require.NoError(t, err)
	assert.Zero(t, users)
}

func TestExtractDatabaseName(t *testing.T) {
	assert.Equal(t, "disaster_management", extractDatabaseName("mongodb://localhost:27017/disaster_management"))
	assert.Equal(t, "relief", extractDatabaseName("mongodb://localhost:27017/relief?retryWrites=true"))
	assert.Equal(t, "alertsystem", extractDatabaseName("mongodb://localhost:27017"))
}
