package services

import (
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/repositories/memory"
	"alertsystem/utils"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/suite"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	alerts []*models.Alert
}

func (b *recordingBroadcaster) BroadcastAlert(alert *models.Alert) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, alert)
}

func (b *recordingBroadcaster) ConnectedClients() int { return 0 }

func (b *recordingBroadcaster) sent() []*models.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*models.Alert(nil), b.alerts...)
}

type recordingNotifier struct {
	mu         sync.Mutex
	requestIDs []string
	volunteers int
}

func (n *recordingNotifier) NotifyVolunteers(request *models.RescueRequest, volunteers []*models.User) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requestIDs = append(n.requestIDs, request.ID.Hex())
	n.volunteers += len(volunteers)
	return nil
}

type failingAlertRepo struct {
	interfaces.AlertRepository
}

func (failingAlertRepo) Create(context.Context, *models.Alert) error {
	return errors.New("alert store unavailable")
}

type failingUpdateRequestRepo struct {
	interfaces.RescueRequestRepository
}

func (failingUpdateRequestRepo) Update(context.Context, *models.RescueRequest) error {
	return errors.New("request store unavailable")
}

func idList(ids ...string) *models.IDList {
	list := models.IDList(ids)
	return &list
}

// serviceSuite wires every service over the in-memory repositories.
type serviceSuite struct {
	suite.Suite
	ctx context.Context

	repos       *interfaces.Repositories
	broadcaster *recordingBroadcaster
	notifier    *recordingNotifier
	publisher   *events.RecordingPublisher
	metrics     *metrics.Metrics

	auth       *AuthService
	users      *UserService
	alerts     *AlertService
	requests   *RescueRequestService
	operations *RescueOperationService
	tasks      *TaskService
	queries    *CitizenQueryService
	shelters   *ShelterService
	resources  *ResourceService
	disasters  *DisasterService
	areas      *AffectedAreaService
	teams      *EmergencyTeamService
	reports    *ReportService

	admin   *models.User
	officer *models.User
	citizen *models.User
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = memory.NewRepositories()
	s.broadcaster = &recordingBroadcaster{}
	s.notifier = &recordingNotifier{}
	s.publisher = &events.RecordingPublisher{}
	s.metrics = metrics.New()

	passwords := utils.NewPasswordServiceWithCost(4)
	jwtService := utils.NewJWTService("test-secret", time.Hour)

	s.auth = NewAuthService(s.repos.Users, jwtService, passwords, utils.NewMemoryTokenBlacklist())
	s.users = NewUserService(s.repos.Users, passwords)
	s.alerts = NewAlertService(s.repos.Alerts, s.repos.Tasks, s.repos.Disasters, s.broadcaster, s.publisher, s.metrics)
	s.requests = NewRescueRequestService(s.repos.RescueRequests, s.users, s.alerts, s.notifier, s.publisher, s.metrics)
	s.operations = NewRescueOperationService(s.repos.RescueOperations, s.requests, s.publisher, s.metrics)
	s.tasks = NewTaskService(s.repos.Tasks, s.repos.Users, s.repos.Disasters, s.repos.AffectedAreas, s.publisher, s.metrics)
	s.queries = NewCitizenQueryService(s.repos.Queries, s.repos.Users, s.repos.Disasters)
	s.shelters = NewShelterService(s.repos.Shelters, s.repos.Disasters)
	s.resources = NewResourceService(s.repos.Resources, s.repos.Disasters, s.repos.Users)
	s.disasters = NewDisasterService(s.repos.Disasters)
	s.areas = NewAffectedAreaService(s.repos.AffectedAreas, s.repos.Disasters, s.repos.Users)
	s.teams = NewEmergencyTeamService(s.repos.Teams)
	s.reports = NewReportService(s.repos.Reports, s.repos.Disasters)

	s.admin = s.createUser("admin@example.com", models.RoleAdmin, "Karnataka", "Bengaluru Urban")
	s.officer = s.createUser("officer@example.com", models.RoleOfficer, "Karnataka", "Mysuru")
	s.citizen = s.createUser("citizen@example.com", models.RoleCitizen, "Karnataka", "Mysuru")
}

func (s *serviceSuite) createUser(email string, role models.Role, state, district string) *models.User {
	user := &models.User{
		Name:      role.Short() + " user",
		Email:     email,
		Role:      role,
		State:     state,
		District:  district,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.Require().NoError(s.repos.Users.Create(s.ctx, user))
	return user
}

func (s *serviceSuite) createDisaster() *models.Disaster {
	disaster, err := s.disasters.Create(s.ctx, s.admin, models.DisasterRequest{
		Type:     "Flood",
		Severity: "High",
		Region:   "South",
		State:    "Karnataka",
		District: "Mysuru",
	})
	s.Require().NoError(err)
	return disaster
}

func (s *serviceSuite) createRescueRequest(district string) *models.RescueRequest {
	request, err := s.requests.Create(s.ctx, s.citizen, models.CreateRescueRequest{
		District:     district,
		RescueType:   "Flood",
		Location:     "Near river bank",
		UrgencyLevel: "HIGH",
		Description:  "Family stranded on roof",
	})
	s.Require().NoError(err)
	return request
}

func (s *serviceSuite) requireErrorCode(err error, code string, status int) {
	s.Require().Error(err)
	serviceErr, ok := utils.GetServiceError(err)
	s.Require().True(ok, "expected a service error, got %v", err)
	s.Equal(code, serviceErr.Code)
	s.Equal(status, serviceErr.StatusCode)
}
