// routes/routes.go
package routes

import (
	"alertsystem/config"
	"alertsystem/controllers"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/middleware"
	"alertsystem/services"
	"alertsystem/utils"
	"alertsystem/websocket"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Dependencies are the process-wide collaborators built in main.
type Dependencies struct {
	Config       *config.Config
	Repositories *interfaces.Repositories
	Redis        *redis.Client
	Hub          *websocket.Hub
	Publisher    interfaces.EventPublisher
	Notifier     interfaces.VolunteerNotifier
	Metrics      *metrics.Metrics
	Logger       *logrus.Logger
	HealthChecks map[string]controllers.HealthCheck
}

// SetupRoutes initializes all application routes
func SetupRoutes(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Initialize services
	services := initializeServices(deps)

	// Initialize controllers
	controllers := initializeControllers(services, deps)

	authMiddleware := middleware.NewAuthMiddleware(services.Auth)

	// Global middleware
	setupGlobalMiddleware(router, deps)

	// Setup route groups
	setupPublicRoutes(router, controllers, deps)

	api := router.Group("/api")
	SetupAuthRoutes(api, controllers.Auth, authMiddleware, deps.Redis)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		SetupRescueRoutes(protected, controllers.RescueRequest, controllers.RescueOperation, controllers.Task, authMiddleware)
		SetupTaskRoutes(protected, controllers.Task, authMiddleware)
		SetupAlertRoutes(protected, controllers.Alert, authMiddleware)
		SetupQueryRoutes(protected, controllers.Query, authMiddleware)
		SetupReliefRoutes(protected, controllers.Shelter, controllers.Resource, controllers.AffectedArea, authMiddleware)
		SetupEmergencyTeamRoutes(protected, controllers.EmergencyTeam, authMiddleware)
		SetupDisasterRoutes(protected, controllers.Disaster, authMiddleware)
		SetupUserRoutes(protected, controllers.User, controllers.WebSocket, authMiddleware)
	}

	router.NoRoute(middleware.NoRoute)

	return router
}

// Services initialization
type Services struct {
	Auth            *services.AuthService
	User            *services.UserService
	Alert           *services.AlertService
	RescueRequest   *services.RescueRequestService
	RescueOperation *services.RescueOperationService
	Task            *services.TaskService
	Query           *services.CitizenQueryService
	Shelter         *services.ShelterService
	Resource        *services.ResourceService
	Disaster        *services.DisasterService
	AffectedArea    *services.AffectedAreaService
	EmergencyTeam   *services.EmergencyTeamService
	Report          *services.ReportService
}

func initializeServices(deps Dependencies) *Services {
	repos := deps.Repositories
	cfg := deps.Config

	var blacklist interfaces.TokenBlacklist
	if deps.Redis != nil {
		blacklist = utils.NewRedisTokenBlacklist(deps.Redis)
	} else {
		blacklist = utils.NewMemoryTokenBlacklist()
	}

	passwordService := utils.NewPasswordService()
	jwtService := utils.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration())

	var broadcaster interfaces.AlertBroadcaster
	if deps.Hub != nil {
		broadcaster = deps.Hub
	}

	userService := services.NewUserService(repos.Users, passwordService)
	alertService := services.NewAlertService(repos.Alerts, repos.Tasks, repos.Disasters, broadcaster, deps.Publisher, deps.Metrics)
	requestService := services.NewRescueRequestService(repos.RescueRequests, userService, alertService, deps.Notifier, deps.Publisher, deps.Metrics)

	return &Services{
		Auth:            services.NewAuthService(repos.Users, jwtService, passwordService, blacklist),
		User:            userService,
		Alert:           alertService,
		RescueRequest:   requestService,
		RescueOperation: services.NewRescueOperationService(repos.RescueOperations, requestService, deps.Publisher, deps.Metrics),
		Task:            services.NewTaskService(repos.Tasks, repos.Users, repos.Disasters, repos.AffectedAreas, deps.Publisher, deps.Metrics),
		Query:           services.NewCitizenQueryService(repos.Queries, repos.Users, repos.Disasters),
		Shelter:         services.NewShelterService(repos.Shelters, repos.Disasters),
		Resource:        services.NewResourceService(repos.Resources, repos.Disasters, repos.Users),
		Disaster:        services.NewDisasterService(repos.Disasters),
		AffectedArea:    services.NewAffectedAreaService(repos.AffectedAreas, repos.Disasters, repos.Users),
		EmergencyTeam:   services.NewEmergencyTeamService(repos.Teams),
		Report:          services.NewReportService(repos.Reports, repos.Disasters),
	}
}

// Controllers initialization
type Controllers struct {
	Auth            *controllers.AuthController
	User            *controllers.UserController
	Alert           *controllers.AlertController
	RescueRequest   *controllers.RescueRequestController
	RescueOperation *controllers.RescueOperationController
	Task            *controllers.TaskController
	Query           *controllers.CitizenQueryController
	Shelter         *controllers.ShelterController
	Resource        *controllers.ResourceController
	AffectedArea    *controllers.AffectedAreaController
	EmergencyTeam   *controllers.EmergencyTeamController
	Disaster        *controllers.DisasterController
	WebSocket       *controllers.WebSocketController
	Health          *controllers.HealthController
}

func initializeControllers(services *Services, deps Dependencies) *Controllers {
	var wsController *controllers.WebSocketController
	if deps.Hub != nil {
		wsController = controllers.NewWebSocketController(deps.Hub, services.Auth)
	}

	return &Controllers{
		Auth:            controllers.NewAuthController(services.Auth),
		User:            controllers.NewUserController(services.User),
		Alert:           controllers.NewAlertController(services.Alert),
		RescueRequest:   controllers.NewRescueRequestController(services.RescueRequest),
		RescueOperation: controllers.NewRescueOperationController(services.RescueOperation),
		Task:            controllers.NewTaskController(services.Task),
		Query:           controllers.NewCitizenQueryController(services.Query),
		Shelter:         controllers.NewShelterController(services.Shelter),
		Resource:        controllers.NewResourceController(services.Resource),
		AffectedArea:    controllers.NewAffectedAreaController(services.AffectedArea),
		EmergencyTeam:   controllers.NewEmergencyTeamController(services.EmergencyTeam),
		Disaster:        controllers.NewDisasterController(services.Disaster, services.Report),
		WebSocket:       wsController,
		Health:          controllers.NewHealthController(deps.Config.BaseURL, deps.HealthChecks),
	}
}

// Global middleware setup
func setupGlobalMiddleware(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	// Basic middleware
	router.Use(middleware.NewErrorHandler(cfg.Environment, deps.Logger).Handle())
	router.Use(middleware.DefaultLoggerMiddleware())

	// Security middleware
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitRequests, cfg.RateLimitWindow()))

	// Monitoring middleware
	router.Use(middleware.MetricsMiddleware(deps.Metrics))
}

// Public routes (no authentication required)
func setupPublicRoutes(router *gin.Engine, controllers *Controllers, deps Dependencies) {
	router.GET("/", controllers.Health.APIInfo)
	router.GET("/health", controllers.Health.HealthCheck)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if controllers.WebSocket != nil {
		SetupWebSocketRoutes(router, controllers.WebSocket)
	}
}
