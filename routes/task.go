// routes/task.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"
	"alertsystem/models"

	"github.com/gin-gonic/gin"
)

// SetupTaskRoutes configures officer task routes
func SetupTaskRoutes(router *gin.RouterGroup, taskController *controllers.TaskController, am *middleware.AuthMiddleware) {
	officer := am.RequireRole(models.RoleOfficer)
	staff := am.RequireRole(models.RoleOfficer, models.RoleAdmin)
	admin := am.RequireRole(models.RoleAdmin)

	tasks := router.Group("/tasks")
	{
		tasks.POST("/create", admin, taskController.CreateTask)
		tasks.GET("/my-tasks", officer, taskController.GetMyTasks)
		tasks.GET("/all", admin, taskController.GetAllTasks)

		tasks.GET("/officer/:officerId", staff, taskController.GetOfficerTasks)
		tasks.GET("/officer/:officerId/status/:status", staff, taskController.GetOfficerTasksByStatus)
		tasks.GET("/disaster/:disasterId", taskController.GetDisasterTasks)

		tasks.GET("/:id", taskController.GetTask)
		tasks.PUT("/:id/status", staff, taskController.UpdateStatus)
		tasks.PUT("/:id/progress", officer, taskController.UpdateProgress)
		tasks.DELETE("/:id", admin, taskController.DeleteTask)
	}
}
