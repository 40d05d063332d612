package controllers

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	taskService *services.TaskService
}

func NewTaskController(taskService *services.TaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// CreateTask assigns a new task to an officer
// @Summary Create task
// @Tags Tasks
// @Security BearerAuth
// @Accept json
// @Param request body models.CreateTaskRequest true "Task"
// @Success 200 {object} models.Task
// @Router /api/tasks/create [post]
func (tc *TaskController) CreateTask(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	var req models.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := tc.taskService.Create(c.Request.Context(), admin, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, task)
}

// GetMyTasks lists tasks assigned to the calling officer
// @Summary List my tasks
// @Tags Tasks
// @Security BearerAuth
// @Success 200 {array} models.Task
// @Router /api/tasks/my-tasks [get]
func (tc *TaskController) GetMyTasks(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	tasks, err := tc.taskService.ListByOfficer(c.Request.Context(), officer.ID.Hex())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks)
}

func (tc *TaskController) GetAllTasks(c *gin.Context) {
	tasks, err := tc.taskService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	task, err := tc.taskService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, task)
}

func (tc *TaskController) GetOfficerTasks(c *gin.Context) {
	tasks, err := tc.taskService.ListByOfficer(c.Request.Context(), c.Param("officerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks)
}

func (tc *TaskController) GetOfficerTasksByStatus(c *gin.Context) {
	tasks, err := tc.taskService.ListByOfficerAndStatus(c.Request.Context(), c.Param("officerId"), c.Param("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks)
}

func (tc *TaskController) GetDisasterTasks(c *gin.Context) {
	tasks, err := tc.taskService.ListByDisaster(c.Request.Context(), c.Param("disasterId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks)
}

// UpdateStatus takes the new status from ?status=.
func (tc *TaskController) UpdateStatus(c *gin.Context) {
	status, ok := requiredQuery(c, "status")
	if !ok {
		return
	}

	task, err := tc.taskService.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, task)
}

// UpdateProgress takes ?progress= (0-100) and an optional ?notes=.
func (tc *TaskController) UpdateProgress(c *gin.Context) {
	progress, ok := intQuery(c, "progress")
	if !ok {
		return
	}

	task, err := tc.taskService.UpdateProgress(c.Request.Context(), c.Param("id"), progress, c.Query("notes"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	if err := tc.taskService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Task deleted successfully")
}

// ============== LEGACY RESCUE ENDPOINTS ==============

// QuickAssign creates a task from query parameters alone.
func (tc *TaskController) QuickAssign(c *gin.Context) {
	admin := currentUser(c)
	if admin == nil {
		return
	}

	officerID, ok := requiredQuery(c, "officerId")
	if !ok {
		return
	}
	disasterID, ok := requiredQuery(c, "disasterId")
	if !ok {
		return
	}
	title, ok := requiredQuery(c, "title")
	if !ok {
		return
	}

	if _, err := tc.taskService.QuickAssign(c.Request.Context(), admin, officerID, disasterID, title, c.Query("description")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Task assigned successfully")
}

func (tc *TaskController) AssignedTasks(c *gin.Context) {
	tc.GetMyTasks(c)
}

// UpdateOwnTask lets an officer move one of their own tasks.
func (tc *TaskController) UpdateOwnTask(c *gin.Context) {
	officer := currentUser(c)
	if officer == nil {
		return
	}

	status, ok := requiredQuery(c, "status")
	if !ok {
		return
	}

	if _, err := tc.taskService.UpdateOwnStatus(c.Request.Context(), officer, c.Param("taskId"), status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, http.StatusOK, "Task status updated")
}
