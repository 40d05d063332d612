// routes/query.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupQueryRoutes configures citizen help-desk routes
func SetupQueryRoutes(router *gin.RouterGroup, queryController *controllers.CitizenQueryController, am *middleware.AuthMiddleware) {
	citizen := am.RequireRole(models.RoleCitizen)
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)
	admin := am.RequireRole(models.RoleAdmin)

	queries := router.Group("/queries")
	{
		queries.POST("/create", citizen, queryController.CreateQuery)
		queries.GET("/citizen/my-queries", citizen, queryController.GetMyQueries)

		queries.GET("/officer/:officerId", staff, queryController.GetOfficerQueries)
		queries.GET("/disaster/:disasterId", queryController.GetDisasterQueries)
		queries.GET("/open", staff, queryController.GetOpenQueries)
		queries.GET("/all", admin, queryController.GetAllQueries)

		queries.GET("/:id", queryController.GetQuery)
		queries.PUT("/:id/assign/:officerId", staff, queryController.AssignQuery)
		queries.PUT("/:id/respond", staff, queryController.RespondToQuery)
		queries.DELETE("/:id", admin, queryController.DeleteQuery)
	}
}
