// routes/user.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures admin officer management and volunteer routes
func SetupUserRoutes(
	router *gin.RouterGroup,
	userController *controllers.UserController,
	wsController *controllers.WebSocketController,
	am *middleware.AuthMiddleware,
) {
	citizen := am.RequireRole(models.RoleCitizen)
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)

	admin := router.Group("/admin")
	admin.Use(am.RequireRole(models.RoleAdmin))
	{
		admin.POST("/create-officer", userController.CreateOfficer)
		admin.GET("/officers", userController.GetMyOfficers)
		admin.PUT("/officers/:id", userController.UpdateOfficer)
		admin.DELETE("/officers/:id", userController.DeleteOfficer)
		admin.PUT("/officers/:id/status", userController.UpdateOfficerStatus)
		admin.PUT("/officers/:id/deactivate", userController.DeactivateOfficer)
		admin.PUT("/officers/:id/activate", userController.ActivateOfficer)

		if wsController != nil {
			admin.GET("/ws/stats", wsController.GetStats)
		}
	}

	volunteers := router.Group("/volunteers")
	{
		volunteers.GET("/district/:district", staff, userController.GetDistrictVolunteers)
		volunteers.GET("/district/:district/count", staff, userController.CountDistrictVolunteers)
		volunteers.GET("/all/count", am.RequireRole(models.RoleAdmin), userController.CountAllVolunteers)
		volunteers.GET("/me", citizen, userController.GetMyVolunteerProfile)
		volunteers.PUT("/me", citizen, userController.UpdateMyVolunteerProfile)
	}
}
