// controllers/alert_controller.go
package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alertService *services.AlertService
}

func NewAlertController(alertService *services.AlertService) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// CreateAlert records a pending alert for a disaster
// @Summary Create disaster alert
// @Tags Alerts
// @Security BearerAuth
// @Param disasterId query string true "Disaster ID"
// @Param message query string true "Alert text"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/alerts/create [post]
func (ac *AlertController) CreateAlert(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	disasterID, ok := requiredQuery(c, "disasterId")
	if !ok {
		return
	}

	if _, err := ac.alertService.CreateForDisaster(c.Request.Context(), admin, disasterID, c.Query("message")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Alert created successfully")
}

// PushNotification sends an alert to the district of one of the caller's tasks
// @Summary Push task notification
// @Tags Alerts
// @Security BearerAuth
// @Param taskId query string true "Task ID"
// @Param message query string true "Alert text"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/alerts/push-notification [post]
func (ac *AlertController) PushNotification(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	taskID, ok := requiredQuery(c, "taskId")
	if !ok {
		return
	}

	_, message, err := ac.alertService.PushTaskNotification(c.Request.Context(), officer, taskID, c.Query("message"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, message)
}

// Broadcast sends an alert to a region, defaulting to the officer's own
// @Summary Broadcast alert
// @Tags Alerts
// @Security BearerAuth
// @Accept json
// @Param request body models.BroadcastAlertRequest true "Alert"
// @Success 200 {object} models.MessageResponse
// @Router /api/alerts/broadcast [post]
func (ac *AlertController) Broadcast(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	var req models.BroadcastAlertRequest
	if !bindJSON(c, &req) {
		return
	}

	_, message, err := ac.alertService.Broadcast(c.Request.Context(), officer, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, message)
}

// GetActiveAlerts lists sent alerts covering the caller's region
// @Summary Active alerts for me
// @Tags Alerts
// @Security BearerAuth
// @Success 200 {array} models.Alert
// @Router /api/alerts/active [get]
func (ac *AlertController) GetActiveAlerts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	alerts, err := ac.alertService.ActiveForUser(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, alerts)
}

// GetMyAlerts lists alerts the caller created
// @Summary My alerts
// @Tags Alerts
// @Security BearerAuth
// @Success 200 {array} models.Alert
// @Router /api/alerts/my-alerts [get]
func (ac *AlertController) GetMyAlerts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	alerts, err := ac.alertService.ListByCreator(c.Request.Context(), user.ID.Hex())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, alerts)
}

// DeleteAlert removes an alert; officers may only remove their own
// @Summary Delete alert
// @Tags Alerts
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.MessageResponse
// @Router /api/alerts/{id} [delete]
func (ac *AlertController) DeleteAlert(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	if err := ac.alertService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Alert deleted successfully")
}
