// routes/rescue.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupRescueRoutes configures rescue requests, rescue operations and the legacy
// quick-assignment endpoints
func SetupRescueRoutes(
	router *gin.RouterGroup,
	requestController *controllers.RescueRequestController,
	operationController *controllers.RescueOperationController,
	taskController *controllers.TaskController,
	am *middleware.AuthMiddleware,
) {
	citizen := am.RequireRole(models.RoleCitizen)
	officer := am.RequireRole(models.RoleOfficer)
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)
	admin := am.RequireRole(models.RoleAdmin)

	requests := router.Group("/rescue-requests")
	{
		requests.POST("", citizen, requestController.CreateRequest)
		requests.GET("/my-requests", citizen, requestController.GetMyRequests)
		requests.GET("/all/count", admin, requestController.CountAll)

		requests.GET("/district/:district", staff, requestController.GetByDistrict)
		requests.GET("/district/:district/pending", staff, requestController.GetPendingByDistrict)
		requests.GET("/district/:district/stats", staff, requestController.GetDistrictStats)

		// Citizens may read only their own; the service enforces it.
		requests.GET("/:id", requestController.GetRequest)
		requests.PUT("/:id", staff, requestController.UpdateRequest)
		requests.PUT("/:id/assign", staff, requestController.AssignRequest)
		requests.PUT("/:id/status", staff, requestController.UpdateStatus)
		requests.DELETE("/:id", admin, requestController.DeleteRequest)
	}

	operations := router.Group("/rescue-operations")
	operations.Use(staff)
	{
		operations.POST("", operationController.CreateOperation)
		operations.GET("/district/:district", operationController.GetByDistrict)
		operations.GET("/district/:district/stats", operationController.GetDistrictStats)
		operations.GET("/request/:requestId", operationController.GetByRequest)
		operations.GET("/:id", operationController.GetOperation)
		operations.PUT("/:id", operationController.UpdateOperation)
		operations.PUT("/:id/status", operationController.UpdateStatus)
	}

	legacy := router.Group("/rescue")
	{
		legacy.POST("/assign", admin, taskController.QuickAssign)
		legacy.GET("/tasks", officer, taskController.AssignedTasks)
		legacy.PUT("/update/:taskId", officer, taskController.UpdateOwnTask)
	}
}
