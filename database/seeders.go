package database

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// SeedOptions controls which seeders run.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	Passwords     *utils.PasswordService
}

// Seeder represents a database seeder. Every seeder must be safe to run on
// each start.
type Seeder struct {
	Name        string
	Description string
	Seed        func(ctx context.Context, repos *interfaces.Repositories, opts SeedOptions) (int, error)
}

// seeders contains all database seeders
var seeders = []Seeder{
	{
		Name:        "admin_account",
		Description: "Create the bootstrap admin account",
		Seed:        seedAdminAccount,
	},
	{
		Name:        "emergency_teams",
		Description: "Create fire, ambulance, police, NDRF and CRPF teams per district",
		Seed:        seedEmergencyTeams,
	},
}

// RunSeeders executes all database seeders. A failing seeder is logged and
// the rest still run.
func RunSeeders(ctx context.Context, repos *interfaces.Repositories, opts SeedOptions) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if opts.Passwords == nil {
		opts.Passwords = utils.NewPasswordService()
	}

	logrus.Info("🌱 Running database seeders...")

	var failed int
	for _, seeder := range seeders {
		created, err := seeder.Seed(ctx, repos, opts)
		if err != nil {
			logrus.Errorf("❌ Seeder %s failed: %v", seeder.Name, err)
			failed++
			continue
		}
		logrus.WithFields(logrus.Fields{
			"seeder":  seeder.Name,
			"created": created,
		}).Info("✅ Seeder completed")
	}

	if failed > 0 {
		return fmt.Errorf("%d seeder(s) failed", failed)
	}
	return nil
}

func seedAdminAccount(ctx context.Context, repos *interfaces.Repositories, opts SeedOptions) (int, error) {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		logrus.Debug("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return 0, nil
	}

	email := utils.NormalizeEmail(opts.AdminEmail)
	exists, err := repos.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	hash, err := opts.Passwords.Hash(opts.AdminPassword)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	admin := &models.User{
		Name:      "System Administrator",
		Email:     email,
		Password:  hash,
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.Users.Create(ctx, admin); err != nil {
		return 0, err
	}
	logrus.WithField("email", utils.MaskEmail(email)).Info("Bootstrap admin account created")
	return 1, nil
}

type stateDistricts struct {
	State     string
	Districts []string
}

var teamSeedLocations = []stateDistricts{
	{"Maharashtra", []string{"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur", "Kolhapur"}},
	{"Karnataka", []string{"Bengaluru", "Mysuru", "Mangaluru", "Hubballi", "Belagavi", "Kalaburagi"}},
	{"Tamil Nadu", []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli"}},
	{"Gujarat", []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar"}},
	{"Rajasthan", []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer", "Bikaner"}},
	{"Uttar Pradesh", []string{"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut", "Prayagraj"}},
	{"West Bengal", []string{"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Darjeeling"}},
	{"Madhya Pradesh", []string{"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain", "Sagar"}},
	{"Delhi", []string{"Central Delhi", "North Delhi", "South Delhi", "East Delhi", "West Delhi"}},
	{"Punjab", []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda"}},
	{"Haryana", []string{"Gurgaon", "Faridabad", "Rohtak", "Hisar", "Panipat"}},
	{"Kerala", []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam"}},
	{"Telangana", []string{"Hyderabad", "Warangal", "Nizamabad", "Khammam", "Karimnagar"}},
	{"Andhra Pradesh", []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati"}},
	{"Odisha", []string{"Bhubaneswar", "Cuttack", "Rourkela", "Puri", "Berhampur"}},
}

// NDRF battalions are stationed in major cities only.
var ndrfDistricts = map[string]bool{
	"Mumbai": true, "Delhi": true, "Bengaluru": true, "Chennai": true, "Kolkata": true, "Hyderabad": true,
	"Pune": true, "Ahmedabad": true, "Surat": true, "Jaipur": true, "Lucknow": true, "Kanpur": true,
}

var crpfDistricts = map[string]bool{
	"Mumbai": true, "Delhi": true, "Srinagar": true, "Jammu": true, "Amritsar": true, "Guwahati": true,
	"Imphal": true, "Kolkata": true, "Chennai": true, "Hyderabad": true, "Bengaluru": true,
}

type teamTemplate struct {
	nameFormat    string
	teamType      models.TeamType
	phone         string
	personnel     int
	contactPerson string
	notes         string
}

var districtTeamTemplates = []teamTemplate{
	{"%s Central Fire Station", models.TeamFire, "101", 25, "Fire Officer", "Equipment: 3 Fire Trucks, 2 Water Tenders, Rescue Equipment"},
	{"%s Fire Brigade - Unit 2", models.TeamFire, "101", 18, "Fire Officer", "Equipment: 2 Fire Trucks, Ladder Truck"},
	{"%s Emergency Medical Services", models.TeamAmbulance, "108", 30, "Medical Officer", "Equipment: 10 ALS Ambulances, 5 BLS Ambulances, Cardiac Equipment"},
	{"%s Rapid Response Ambulance", models.TeamAmbulance, "108", 20, "Medical Officer", "Equipment: 5 ALS Ambulances, Trauma Care Equipment"},
	{"%s Police Control Room", models.TeamPolice, "100", 50, "Police Officer", "Equipment: 10 Patrol Vehicles, Communication Systems, Law Enforcement Gear"},
	{"%s Emergency Response Squad", models.TeamPolice, "100", 35, "Police Officer", "Equipment: 5 Rapid Response Vehicles, Tactical Equipment"},
}

var (
	ndrfTemplate = teamTemplate{"NDRF %s Battalion", models.TeamNDRF, "9711077372", 45, "NDRF Commander", "Equipment: Rescue Boats, Helicopters, Search & Rescue Equipment, Medical Kits"}
	crpfTemplate = teamTemplate{"CRPF %s Unit", models.TeamPolice, "011-24363144", 40, "CRPF Commander", "CRPF Unit - Equipment: Armed Vehicles, Communication Systems, Security Equipment"}
)

// SeedTeams builds the default roster without persisting it.
func SeedTeams(now time.Time) []*models.EmergencyTeam {
	var teams []*models.EmergencyTeam
	for _, location := range teamSeedLocations {
		for _, district := range location.Districts {
			for _, tpl := range districtTeamTemplates {
				teams = append(teams, tpl.build(district, now))
			}
			if ndrfDistricts[district] {
				teams = append(teams, ndrfTemplate.build(district, now))
			}
			if crpfDistricts[district] {
				teams = append(teams, crpfTemplate.build(district, now))
			}
		}
	}
	return teams
}

func (t teamTemplate) build(district string, now time.Time) *models.EmergencyTeam {
	return &models.EmergencyTeam{
		TeamName:       fmt.Sprintf(t.nameFormat, district),
		TeamType:       t.teamType,
		District:       district,
		PhoneNumber:    t.phone,
		PersonnelCount: t.personnel,
		ContactPerson:  t.contactPerson,
		Notes:          t.notes,
		Status:         models.TeamAvailable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// seedEmergencyTeams only runs against an empty team collection.
func seedEmergencyTeams(ctx context.Context, repos *interfaces.Repositories, _ SeedOptions) (int, error) {
	count, err := repos.Teams.Count(ctx, interfaces.EmergencyTeamFilter{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logrus.Info("Emergency teams already seeded, skipping...")
		return 0, nil
	}

	teams := SeedTeams(time.Now())
	if err := repos.Teams.CreateMany(ctx, teams); err != nil {
		return 0, err
	}

	var districts int
	for _, location := range teamSeedLocations {
		districts += len(location.Districts)
	}
	logrus.Infof("🚨 Seeded %d emergency teams across %d districts", len(teams), districts)
	return len(teams), nil
}
