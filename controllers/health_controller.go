package controllers

import (
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// HealthCheck reports the reachability of one backing service.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	baseURL   string
	startTime time.Time
	checks    map[string]HealthCheck
}

func NewHealthController(baseURL string, checks map[string]HealthCheck) *HealthController {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &HealthController{
		baseURL:   baseURL,
		startTime: time.Now(),
		checks:    checks,
	}
}

// APIInfo is the service banner served at the root path.
func (hc *HealthController) APIInfo(c *gin.Context) {
	utils.SuccessResponse(c, models.APIInfoResponse{
		Message:   "Disaster Management & Alerts System API",
		Version:   apiVersion,
		Status:    "Running",
		BaseURL:   hc.baseURL,
		Endpoints: "Use /api/auth/signin, /api/auth/signup, /api/disasters, /api/alerts, etc.",
	})
}

// HealthCheck returns 503 when any backing service fails its check
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (hc *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(hc.checks)),
		Version:   apiVersion,
		Uptime:    time.Since(hc.startTime).Round(time.Second).String(),
	}

	for name, check := range hc.checks {
		if err := check(ctx); err != nil {
			response.Services[name] = "unhealthy: " + err.Error()
			response.Status = "unhealthy"
			continue
		}
		response.Services[name] = "healthy"
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
