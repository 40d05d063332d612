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

// AlertService creates alerts and fans sent ones out to subscribed citizens.
type AlertService struct {
	alertRepo    interfaces.AlertRepository
	taskRepo     interfaces.TaskRepository
	disasterRepo interfaces.DisasterRepository
	broadcaster  interfaces.AlertBroadcaster
	publisher    interfaces.EventPublisher
	metrics      *metrics.Metrics
	validator    *utils.ValidationService
}

func NewAlertService(
	alertRepo interfaces.AlertRepository,
	taskRepo interfaces.TaskRepository,
	disasterRepo interfaces.DisasterRepository,
	broadcaster interfaces.AlertBroadcaster,
	publisher interfaces.EventPublisher,
	m *metrics.Metrics,
) *AlertService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &AlertService{
		alertRepo:    alertRepo,
		taskRepo:     taskRepo,
		disasterRepo: disasterRepo,
		broadcaster:  broadcaster,
		publisher:    publisher,
		metrics:      m,
		validator:    utils.NewValidationService(),
	}
}

// Emit stores alert and, when it is Sent, pushes it to connected clients.
func (as *AlertService) Emit(ctx context.Context, alert *models.Alert) error {
	now := time.Now()
	if alert.BroadcastTime.IsZero() {
		alert.BroadcastTime = now
	}
	alert.CreatedAt = now
	alert.UpdatedAt = now

	if err := as.alertRepo.Create(ctx, alert); err != nil {
		return utils.NewDatabaseError("create alert", err)
	}

	as.metrics.AlertCreated(alert.Status)

	if alert.Status == models.AlertStatusSent {
		if as.broadcaster != nil {
			as.broadcaster.BroadcastAlert(alert)
		}
		as.publisher.Publish(ctx, events.AlertSent, alert.ID.Hex(), alert)
	}

	logrus.WithFields(logrus.Fields{
		"alertId":  alert.ID.Hex(),
		"status":   alert.Status,
		"state":    alert.State,
		"district": alert.District,
	}).Info("Alert created")

	return nil
}

// CreateForDisaster records a Pending alert linked to an existing disaster.
func (as *AlertService) CreateForDisaster(ctx context.Context, admin *models.User, disasterID, message string) (*models.Alert, error) {
	if strings.TrimSpace(message) == "" {
		return nil, utils.NewBadRequestError("Message is required")
	}

	disaster, err := as.disasterRepo.GetByID(ctx, disasterID)
	if err != nil {
		return nil, utils.NewBadRequestError("Disaster not found")
	}

	alert := &models.Alert{
		Message:       message,
		DisasterID:    utils.ObjectIDPtr(disaster.ID),
		CreatedByID:   admin.ID,
		CreatedByName: admin.Name,
		Status:        models.AlertStatusPending,
		State:         disaster.State,
		District:      disaster.District,
	}
	if err := as.Emit(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// PushTaskNotification sends a Sent alert to the task's district. Only the
// officer the task is assigned to may push it.
func (as *AlertService) PushTaskNotification(ctx context.Context, officer *models.User, taskID, message string) (*models.Alert, string, error) {
	if strings.TrimSpace(message) == "" {
		return nil, "", utils.NewBadRequestError("Message is required")
	}

	task, err := as.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, "", utils.NewBadRequestError("Task not found")
	}
	if task.AssignedToID != officer.ID {
		return nil, "", utils.NewBadRequestError("You are not assigned to this task")
	}

	alert := &models.Alert{
		Title:         "Alert from Officer: " + task.Title,
		Message:       message,
		DisasterID:    task.DisasterID,
		CreatedByID:   officer.ID,
		CreatedByName: officer.Name,
		Status:        models.AlertStatusSent,
		State:         task.State,
		District:      task.District,
	}
	if err := as.Emit(ctx, alert); err != nil {
		return nil, "", err
	}
	return alert, fmt.Sprintf("Notification sent to all citizens in %s, %s", task.District, task.State), nil
}

// Broadcast sends an officer alert. Blank state or district target the officer's own.
func (as *AlertService) Broadcast(ctx context.Context, officer *models.User, req models.BroadcastAlertRequest) (*models.Alert, string, error) {
	if err := as.validator.Validate(req); err != nil {
		return nil, "", err
	}

	alert := &models.Alert{
		Title:         req.Title,
		Message:       req.Message,
		CreatedByID:   officer.ID,
		CreatedByName: officer.Name,
		Status:        models.AlertStatusSent,
		State:         utils.FirstNonEmpty(req.State, officer.State),
		District:      utils.FirstNonEmpty(req.District, officer.District),
	}
	if req.DisasterID != "" {
		if disaster, err := as.disasterRepo.GetByID(ctx, req.DisasterID); err == nil {
			alert.DisasterID = utils.ObjectIDPtr(disaster.ID)
		}
	}

	if err := as.Emit(ctx, alert); err != nil {
		return nil, "", err
	}
	return alert, fmt.Sprintf("Alert broadcasted successfully to %s, %s", alert.District, alert.State), nil
}

// ActiveForUser returns the sent alerts targeting user's state and district.
func (as *AlertService) ActiveForUser(ctx context.Context, user *models.User) ([]*models.Alert, error) {
	alerts, err := as.alertRepo.List(ctx, interfaces.AlertFilter{Status: models.AlertStatusSent})
	if err != nil {
		return nil, utils.NewDatabaseError("list alerts", err)
	}
	return models.FilterAlertsForRegion(alerts, user.State, user.District), nil
}

// ListByCreator returns creator's alerts, most recent broadcast first.
func (as *AlertService) ListByCreator(ctx context.Context, creatorID string) ([]*models.Alert, error) {
	alerts, err := as.alertRepo.List(ctx, interfaces.AlertFilter{CreatedByID: creatorID})
	if err != nil {
		return nil, utils.NewDatabaseError("list alerts", err)
	}
	return alerts, nil
}

// Delete removes an alert. Officers may only delete alerts they created.
func (as *AlertService) Delete(ctx context.Context, caller *models.User, id string) error {
	alert, err := as.alertRepo.GetByID(ctx, id)
	if err != nil {
		return utils.FromRepositoryError(err, "Alert", "get alert")
	}
	if alert.CreatedByID != caller.ID && !caller.IsAdmin() {
		return utils.NewForbiddenError("You can only delete your own alerts")
	}
	if err := as.alertRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Alert", "delete alert")
	}
	logrus.WithFields(logrus.Fields{"alertId": id, "userId": caller.ID.Hex()}).Info("Alert deleted")
	return nil
}
