// routes/relief.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupReliefRoutes configures shelters, relief resources and affected areas.
// Reads are open to every authenticated role.
func SetupReliefRoutes(
	router *gin.RouterGroup,
	shelterController *controllers.ShelterController,
	resourceController *controllers.ResourceController,
	areaController *controllers.AffectedAreaController,
	am *middleware.AuthMiddleware,
) {
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)
	admin := am.RequireRole(models.RoleAdmin)

	shelters := router.Group("/shelters")
	{
		shelters.POST("/create", staff, shelterController.CreateShelter)
		shelters.GET("/all", shelterController.GetAllShelters)
		shelters.GET("/state/:state", shelterController.GetByState)
		shelters.GET("/district/:district", shelterController.GetByDistrict)
		shelters.GET("/disaster/:disasterId", shelterController.GetByDisaster)
		shelters.GET("/available", shelterController.GetAvailable)

		shelters.GET("/:id", shelterController.GetShelter)
		shelters.PUT("/:id", staff, shelterController.UpdateShelter)
		shelters.PUT("/:id/occupancy", staff, shelterController.UpdateOccupancy)
		shelters.PUT("/:id/status", staff, shelterController.UpdateStatus)
		shelters.DELETE("/:id", admin, shelterController.DeleteShelter)
	}

	resources := router.Group("/resources")
	{
		resources.POST("/create", staff, resourceController.CreateResource)
		resources.GET("/all", resourceController.GetAllResources)
		resources.GET("/type/:type", resourceController.GetByType)
		resources.GET("/disaster/:disasterId", resourceController.GetByDisaster)
		resources.GET("/available", resourceController.GetAvailable)
		resources.GET("/state/:state", resourceController.GetByState)

		resources.GET("/:id", resourceController.GetResource)
		resources.PUT("/:id", staff, resourceController.UpdateResource)
		resources.PUT("/:id/quantity", staff, resourceController.UpdateQuantity)
		resources.DELETE("/:id", admin, resourceController.DeleteResource)
	}

	areas := router.Group("/affected-areas")
	{
		areas.POST("/create", staff, areaController.CreateArea)
		areas.GET("/all", areaController.GetAllAreas)
		areas.GET("/disaster/:disasterId", areaController.GetByDisaster)
		areas.GET("/state/:state", areaController.GetByLocality)
		areas.GET("/state/:state/district/:district", areaController.GetByLocality)
		areas.GET("/district/:district", areaController.GetByLocality)

		areas.GET("/:id", areaController.GetArea)
		areas.PUT("/:id", staff, areaController.UpdateArea)
		areas.PUT("/:id/assign-officer/:officerId", admin, areaController.AssignOfficer)
		areas.PUT("/:id/status", staff, areaController.UpdateStatus)
		areas.DELETE("/:id", admin, areaController.DeleteArea)
	}
}
