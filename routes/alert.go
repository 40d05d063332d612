// routes/alert.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupAlertRoutes configures alert creation and delivery routes
func SetupAlertRoutes(router *gin.RouterGroup, alertController *controllers.AlertController, am *middleware.AuthMiddleware) {
	citizen := am.RequireRole(models.RoleCitizen)
	officer := am.RequireRole(models.RoleOfficer)
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)
	admin := am.RequireRole(models.RoleAdmin)

	alerts := router.Group("/alerts")
	{
		alerts.POST("/create", admin, alertController.CreateAlert)
		alerts.POST("/push-notification", officer, alertController.PushNotification)
		alerts.POST("/broadcast", officer, alertController.Broadcast)

		alerts.GET("/active", citizen, alertController.GetActiveAlerts)
		alerts.GET("/my-alerts", staff, alertController.GetMyAlerts)

		alerts.DELETE("/:id", staff, alertController.DeleteAlert)
	}
}
