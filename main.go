package main

import (
	"alertsystem/config"
	"alertsystem/controllers"
	"alertsystem/database"
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/repositories"
	"alertsystem/repositories/memory"
	"alertsystem/routes"
	"alertsystem/utils"
	"alertsystem/websocket"
	"alertsystem/workers"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := setupLogger(cfg)

	healthChecks := map[string]controllers.HealthCheck{}

	// Storage
	var repos *interfaces.Repositories
	if cfg.UsesMemoryStore() {
		logrus.Warn("Using in-memory store, data will not survive a restart")
		repos = memory.NewRepositories()
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			logrus.Fatal("Failed to connect to database: ", err)
		}
		defer database.Disconnect()

		repos = repositories.NewMongoRepositories(db)
		healthChecks["mongodb"] = database.Ping
	}

	// Redis backs the token blacklist and rate limits when configured
	redisClient := config.InitRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	// Domain events
	var publisher interfaces.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logrus.Infof("📣 Publishing domain events to Kafka topic %s", cfg.KafkaTopic)
	}
	defer publisher.Close()

	m := metrics.New()

	// Volunteer notifications
	channels := config.InitNotificationChannels(context.Background(), cfg)
	var notifier interfaces.VolunteerNotifier
	if channels.SMS != nil || channels.Push != nil {
		workerConfig := workers.DefaultNotificationWorkerConfig()
		workerConfig.WorkerCount = cfg.NotificationWorkers

		notificationWorker := workers.NewNotificationWorker(channels.SMS, channels.Push, m, workerConfig)
		if err := notificationWorker.Start(); err != nil {
			logrus.Fatal("Failed to start notification worker: ", err)
		}
		defer notificationWorker.Stop()
		notifier = notificationWorker
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub(m)
	go hub.Run()
	defer hub.Shutdown()

	if cfg.SeedData {
		err := database.RunSeeders(context.Background(), repos, database.SeedOptions{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
			Passwords:     utils.NewPasswordService(),
		})
		if err != nil {
			logrus.Warnf("Seeder warning: %v", err)
		}
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Config:       cfg,
		Repositories: repos,
		Redis:        redisClient,
		Hub:          hub,
		Publisher:    publisher,
		Notifier:     notifier,
		Metrics:      m,
		Logger:       logger,
		HealthChecks: healthChecks,
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.Info("🚀 Disaster Management & Alerts server starting on port ", cfg.Port)
		logrus.Info("📡 Alert stream: /ws/alerts")
		logrus.Info("📊 Metrics: /metrics")
		logrus.Info("💖 Health Check: /health")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("✅ Server shutdown complete")
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if cfg.Environment == "development" {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	return logrus.StandardLogger()
}
