// routes/emergency_team.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupEmergencyTeamRoutes configures response team routes; officers and admins only
func SetupEmergencyTeamRoutes(router *gin.RouterGroup, teamController *controllers.EmergencyTeamController, am *middleware.AuthMiddleware) {
	teams := router.Group("/emergency-teams")
	teams.Use(am.RequireRole(models.RoleOfficer, models.RoleAdmin))
	{
		teams.POST("", teamController.CreateTeam)
		teams.GET("", teamController.GetAllTeams)
		teams.GET("/all/count", am.RequireRole(models.RoleAdmin), teamController.CountAll)

		district := teams.Group("/district/:district")
		{
			district.GET("", teamController.GetByDistrict)
			district.GET("/available", teamController.GetAvailableByDistrict)
			district.GET("/type/:teamType", teamController.GetByDistrictAndType)
			district.GET("/stats", teamController.GetDistrictStats)
		}

		teams.GET("/:id", teamController.GetTeam)
		teams.PUT("/:id", teamController.UpdateTeam)
		teams.PUT("/:id/status", teamController.UpdateStatus)
		teams.DELETE("/:id", teamController.DeleteTeam)
	}
}
