// routes/disaster.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupDisasterRoutes configures disaster records and field reports
func SetupDisasterRoutes(router *gin.RouterGroup, disasterController *controllers.DisasterController, am *middleware.AuthMiddleware) {
	officer := am.RequireRole(models.RoleOfficer)
	admin := am.RequireRole(models.RoleAdmin)

	disasters := router.Group("/disasters")
	{
		disasters.POST("", admin, disasterController.CreateDisaster)
		disasters.GET("/active", disasterController.GetActive)
		disasters.GET("/region/:region", disasterController.GetByRegion)
		disasters.GET("/:id", disasterController.GetDisaster)
		disasters.PUT("/:id", admin, disasterController.UpdateDisaster)
		disasters.DELETE("/:id", admin, disasterController.DeleteDisaster)
	}

	reports := router.Group("/reports")
	{
		reports.POST("/submit", officer, disasterController.SubmitReport)
		reports.GET("/all", admin, disasterController.GetAllReports)
	}
}
