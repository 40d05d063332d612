package services

import (
	"alertsystem/models"
	"alertsystem/utils"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TaskServiceSuite struct {
	serviceSuite
}

func TestTaskServiceSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceSuite))
}

func (s *TaskServiceSuite) newTask() *models.Task {
	task, err := s.tasks.Create(s.ctx, s.admin, models.CreateTaskRequest{
		Title:        "Assess bridge",
		AssignedToID: s.officer.ID.Hex(),
		Priority:     "MEDIUM",
		TaskType:     "ASSESSMENT",
		DueDate:      "2026-11-01T10:00:00",
	})
	s.Require().NoError(err)
	return task
}

func (s *TaskServiceSuite) TestCreate() {
	task := s.newTask()
	s.Equal(models.TaskAssigned, task.Status)
	s.Equal(s.officer.ID, task.AssignedToID)
	s.Equal(s.admin.ID, task.CreatedByID)
	s.Require().NotNil(task.DueDate)
	s.Equal(2026, task.DueDate.Year())

	s.Run("assignee must be an officer", func() {
		_, err := s.tasks.Create(s.ctx, s.admin, models.CreateTaskRequest{
			Title:        "Assess bridge",
			AssignedToID: s.citizen.ID.Hex(),
			Priority:     "MEDIUM",
			TaskType:     "ASSESSMENT",
		})
		s.requireErrorCode(err, utils.ErrCodeInvalidRole, http.StatusBadRequest)
		s.Contains(err.Error(), "User must be an officer")
	})

	s.Run("referenced disaster must exist", func() {
		_, err := s.tasks.Create(s.ctx, s.admin, models.CreateTaskRequest{
			Title:        "Assess bridge",
			AssignedToID: s.officer.ID.Hex(),
			Priority:     "MEDIUM",
			TaskType:     "ASSESSMENT",
			DisasterID:   "64b7f0c2a1b2c3d4e5f60718",
		})
		s.requireErrorCode(err, utils.ErrCodeNotFound, http.StatusNotFound)
	})
}

func (s *TaskServiceSuite) TestUpdateProgress() {
	task := s.newTask()

	s.Run("partial progress moves the task in progress", func() {
		updated, err := s.tasks.UpdateProgress(s.ctx, task.ID.Hex(), 40, "Halfway there")
		s.Require().NoError(err)
		s.Equal(models.TaskInProgress, updated.Status)
		s.Equal(40, updated.ProgressPercentage)
		s.Equal("Halfway there", updated.Notes)
		s.Nil(updated.CompletedAt)
		s.Contains(updated.UpdateLog, "progress=40%")
	})

	s.Run("reaching 100 completes the task", func() {
		updated, err := s.tasks.UpdateProgress(s.ctx, task.ID.Hex(), 100, "Done")
		s.Require().NoError(err)
		s.Equal(models.TaskCompleted, updated.Status)
		s.NotNil(updated.CompletedAt)
		s.Len(strings.Split(updated.UpdateLog, "\n"), 2)
	})

	s.Run("values beyond 100 pass through", func() {
		updated, err := s.tasks.UpdateProgress(s.ctx, task.ID.Hex(), 150, "")
		s.Require().NoError(err)
		s.Equal(150, updated.ProgressPercentage)
		s.Equal(models.TaskCompleted, updated.Status)
	})
}

func (s *TaskServiceSuite) TestUpdateStatus() {
	task := s.newTask()

	_, err := s.tasks.UpdateStatus(s.ctx, task.ID.Hex(), "DONE")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)

	updated, err := s.tasks.UpdateStatus(s.ctx, task.ID.Hex(), "completed")
	s.Require().NoError(err)
	s.Equal(models.TaskCompleted, updated.Status)
	s.NotNil(updated.CompletedAt)

	completed, err := s.tasks.ListByOfficerAndStatus(s.ctx, s.officer.ID.Hex(), "COMPLETED")
	s.Require().NoError(err)
	s.Len(completed, 1)
}

func (s *TaskServiceSuite) TestLegacyQuickAssign() {
	disaster := s.createDisaster()

	task, err := s.tasks.QuickAssign(s.ctx, s.admin, s.officer.ID.Hex(), disaster.ID.Hex(), "Distribute water", "Ward 9")
	s.Require().NoError(err)
	s.Equal(models.TaskAssigned, task.Status)

	_, err = s.tasks.QuickAssign(s.ctx, s.admin, s.citizen.ID.Hex(), disaster.ID.Hex(), "x", "y")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)

	s.Run("only the assignee updates its status", func() {
		other := s.createUser("officer2@example.com", models.RoleOfficer, "Karnataka", "Mandya")
		_, err := s.tasks.UpdateOwnStatus(s.ctx, other, task.ID.Hex(), "IN_PROGRESS")
		s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)

		updated, err := s.tasks.UpdateOwnStatus(s.ctx, s.officer, task.ID.Hex(), "IN_PROGRESS")
		s.Require().NoError(err)
		s.Equal(models.TaskInProgress, updated.Status)
	})

	byDisaster, err := s.tasks.ListByDisaster(s.ctx, disaster.ID.Hex())
	s.Require().NoError(err)
	s.Len(byDisaster, 1)
}
