package services

import (
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type TaskService struct {
	taskRepo     interfaces.TaskRepository
	userRepo     interfaces.UserRepository
	disasterRepo interfaces.DisasterRepository
	areaRepo     interfaces.AffectedAreaRepository
	publisher    interfaces.EventPublisher
	metrics      *metrics.Metrics
	validator    *utils.ValidationService
}

func NewTaskService(
	taskRepo interfaces.TaskRepository,
	userRepo interfaces.UserRepository,
	disasterRepo interfaces.DisasterRepository,
	areaRepo interfaces.AffectedAreaRepository,
	publisher interfaces.EventPublisher,
	m *metrics.Metrics,
) *TaskService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TaskService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		disasterRepo: disasterRepo,
		areaRepo:     areaRepo,
		publisher:    publisher,
		metrics:      m,
		validator:    utils.NewValidationService(),
	}
}

// Create assigns a new task to an officer on behalf of admin.
func (ts *TaskService) Create(ctx context.Context, admin *models.User, req models.CreateTaskRequest) (*models.Task, error) {
	if err := ts.validator.Validate(req); err != nil {
		return nil, err
	}

	officer, err := ts.userRepo.GetByID(ctx, req.AssignedToID)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Officer", "get officer")
	}
	if !officer.IsOfficer() {
		return nil, utils.NewNotOfficerError()
	}

	priority, _ := models.ParseTaskPriority(req.Priority)
	taskType, _ := models.ParseTaskType(req.TaskType)

	now := time.Now()
	task := &models.Task{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		AssignedToID:   officer.ID,
		AssignedToName: officer.Name,
		CreatedByID:    admin.ID,
		CreatedByName:  admin.Name,
		Location:       req.Location,
		District:       req.District,
		State:          req.State,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         models.TaskAssigned,
		Priority:       priority,
		TaskType:       taskType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if req.DisasterID != "" {
		disaster, err := ts.disasterRepo.GetByID(ctx, req.DisasterID)
		if err != nil {
			return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
		}
		task.DisasterID = utils.ObjectIDPtr(disaster.ID)
	}

	if req.AffectedAreaID != "" {
		area, err := ts.areaRepo.GetByID(ctx, req.AffectedAreaID)
		if err != nil {
			return nil, utils.FromRepositoryError(err, "Affected area", "get affected area")
		}
		task.AffectedAreaID = utils.ObjectIDPtr(area.ID)
	}

	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, utils.NewBadRequestError("Invalid dueDate: " + req.DueDate)
		}
		task.DueDate = &due
	}

	if err := ts.taskRepo.Create(ctx, task); err != nil {
		return nil, utils.NewDatabaseError("create task", err)
	}

	ts.publisher.Publish(ctx, events.TaskCreated, task.ID.Hex(), task)
	logrus.WithFields(logrus.Fields{
		"taskId":    task.ID.Hex(),
		"officerId": officer.ID.Hex(),
		"priority":  task.Priority,
	}).Info("Task created")

	return task, nil
}

// QuickAssign is the short form used by the /api/rescue endpoints: title,
// description and a required disaster.
func (ts *TaskService) QuickAssign(ctx context.Context, admin *models.User, officerID, disasterID, title, description string) (*models.Task, error) {
	officer, err := ts.userRepo.GetByID(ctx, officerID)
	if err != nil || !officer.IsOfficer() {
		return nil, utils.NewBadRequestError("Invalid officer")
	}

	disaster, err := ts.disasterRepo.GetByID(ctx, disasterID)
	if err != nil {
		return nil, utils.NewBadRequestError("Disaster not found")
	}

	now := time.Now()
	task := &models.Task{
		Title:          title,
		Description:    description,
		AssignedToID:   officer.ID,
		AssignedToName: officer.Name,
		CreatedByID:    admin.ID,
		CreatedByName:  admin.Name,
		DisasterID:     utils.ObjectIDPtr(disaster.ID),
		District:       disaster.District,
		State:          disaster.State,
		Status:         models.TaskAssigned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := ts.taskRepo.Create(ctx, task); err != nil {
		return nil, utils.NewDatabaseError("create task", err)
	}

	ts.publisher.Publish(ctx, events.TaskCreated, task.ID.Hex(), task)
	return task, nil
}

func (ts *TaskService) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	parsed, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("task status", status)
	}

	task, err := ts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return task, ts.setStatus(ctx, task, parsed)
}

// UpdateOwnStatus changes the status of a task assigned to officer.
func (ts *TaskService) UpdateOwnStatus(ctx context.Context, officer *models.User, id, status string) (*models.Task, error) {
	parsed, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("task status", status)
	}

	task, err := ts.taskRepo.GetByID(ctx, id)
	if err != nil || task.AssignedToID != officer.ID {
		return nil, utils.NewBadRequestError("Task not found or not assigned to you")
	}
	return task, ts.setStatus(ctx, task, parsed)
}

func (ts *TaskService) setStatus(ctx context.Context, task *models.Task, status models.TaskStatus) error {
	wasCompleted := task.Status == models.TaskCompleted
	task.Status = status
	if status == models.TaskCompleted {
		task.CompletedAt = utils.TimePtr(time.Now())
	}
	if err := ts.save(ctx, task); err != nil {
		return err
	}
	if status == models.TaskCompleted && !wasCompleted {
		ts.metrics.TaskCompleted()
	}
	ts.publishUpdate(ctx, task)
	return nil
}

// UpdateProgress records progress and notes. Reaching 100 completes the task;
// any other value moves it to IN_PROGRESS.
func (ts *TaskService) UpdateProgress(ctx context.Context, id string, progress int, notes string) (*models.Task, error) {
	task, err := ts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task.ProgressPercentage = progress
	task.Notes = notes
	task.UpdateLog = appendUpdateLog(task.UpdateLog, now, progress, notes)

	wasCompleted := task.Status == models.TaskCompleted
	if progress >= 100 {
		task.Status = models.TaskCompleted
		task.CompletedAt = utils.TimePtr(now)
	} else if task.Status != models.TaskInProgress {
		task.Status = models.TaskInProgress
	}

	if err := ts.save(ctx, task); err != nil {
		return nil, err
	}
	if task.Status == models.TaskCompleted && !wasCompleted {
		ts.metrics.TaskCompleted()
	}
	ts.publishUpdate(ctx, task)

	logrus.WithFields(logrus.Fields{
		"taskId":   task.ID.Hex(),
		"progress": progress,
		"status":   task.Status,
	}).Info("Task progress updated")

	return task, nil
}

func appendUpdateLog(log string, at time.Time, progress int, notes string) string {
	line := fmt.Sprintf("[%s] progress=%d%%", at.Format(time.RFC3339), progress)
	if notes = strings.TrimSpace(notes); notes != "" {
		line += " " + notes
	}
	if log == "" {
		return line
	}
	return log + "\n" + line
}

func (ts *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := ts.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Task", "get task")
	}
	return task, nil
}

func (ts *TaskService) ListByOfficer(ctx context.Context, officerID string) ([]*models.Task, error) {
	return ts.list(ctx, interfaces.TaskFilter{AssignedToID: officerID})
}

func (ts *TaskService) ListByOfficerAndStatus(ctx context.Context, officerID, status string) ([]*models.Task, error) {
	parsed, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("task status", status)
	}
	return ts.list(ctx, interfaces.TaskFilter{AssignedToID: officerID, Status: parsed})
}

func (ts *TaskService) ListByDisaster(ctx context.Context, disasterID string) ([]*models.Task, error) {
	return ts.list(ctx, interfaces.TaskFilter{DisasterID: disasterID})
}

func (ts *TaskService) ListAll(ctx context.Context) ([]*models.Task, error) {
	return ts.list(ctx, interfaces.TaskFilter{})
}

func (ts *TaskService) Delete(ctx context.Context, id string) error {
	if err := ts.taskRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Task", "delete task")
	}
	return nil
}

func (ts *TaskService) publishUpdate(ctx context.Context, task *models.Task) {
	ts.publisher.Publish(ctx, events.TaskUpdated, task.ID.Hex(), map[string]interface{}{
		"id":                 task.ID.Hex(),
		"status":             task.Status,
		"progressPercentage": task.ProgressPercentage,
	})
}

func (ts *TaskService) list(ctx context.Context, filter interfaces.TaskFilter) ([]*models.Task, error) {
	tasks, err := ts.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list tasks", err)
	}
	return tasks, nil
}

func (ts *TaskService) save(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now()
	if err := ts.taskRepo.Update(ctx, task); err != nil {
		return utils.FromRepositoryError(err, "Task", "update task")
	}
	return nil
}

// parseDueDate accepts RFC 3339 and the zone-less ISO form browsers send.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
}
