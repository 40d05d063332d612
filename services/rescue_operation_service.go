package services

import (
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type RescueOperationService struct {
	operationRepo  interfaces.RescueOperationRepository
	requestService *RescueRequestService
	publisher      interfaces.EventPublisher
	metrics        *metrics.Metrics
	validator      *utils.ValidationService
}

func NewRescueOperationService(
	operationRepo interfaces.RescueOperationRepository,
	requestService *RescueRequestService,
	publisher interfaces.EventPublisher,
	m *metrics.Metrics,
) *RescueOperationService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &RescueOperationService{
		operationRepo:  operationRepo,
		requestService: requestService,
		publisher:      publisher,
		metrics:        m,
		validator:      utils.NewValidationService(),
	}
}

// Create starts an operation for an existing request and moves the request to IN_PROGRESS.
// The operation is removed again when the request cannot be moved.
// A request may have only one operation that has not reached a terminal status.
func (ros *RescueOperationService) Create(ctx context.Context, officer *models.User, req models.CreateRescueOperationRequest) (*models.RescueOperation, error) {
	if err := ros.validator.Validate(req); err != nil {
		return nil, err
	}

	request, err := ros.requestService.get(ctx, req.RescueRequestID)
	if err != nil {
		return nil, err
	}

	existing, err := ros.list(ctx, interfaces.RescueOperationFilter{RescueRequestID: request.ID.Hex()})
	if err != nil {
		return nil, err
	}
	for _, op := range existing {
		if !op.Status.Terminal() {
			return nil, utils.NewConflictError("An active rescue operation already exists for this request")
		}
	}

	now := time.Now()
	operation := &models.RescueOperation{
		RescueRequestID:     request.ID,
		District:            request.District,
		AssignedTeams:       req.AssignedTeams,
		AssignedVolunteers:  req.AssignedVolunteers,
		OfficerInChargeID:   officer.ID,
		OfficerInChargeName: officer.Name,
		Status:              models.OperationInitiated,
		StartTime:           now,
		Notes:               req.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := ros.operationRepo.Create(ctx, operation); err != nil {
		return nil, utils.NewDatabaseError("create rescue operation", err)
	}

	if err := ros.requestService.setStatus(ctx, request, models.RequestInProgress); err != nil {
		if delErr := ros.operationRepo.Delete(ctx, operation.ID.Hex()); delErr != nil {
			logrus.WithError(delErr).WithField("operationId", operation.ID.Hex()).Error("Failed to roll back rescue operation")
		}
		return nil, err
	}

	ros.metrics.OperationStatusChanged(string(operation.Status))
	ros.publisher.Publish(ctx, events.RescueOperationCreated, operation.ID.Hex(), operation)

	logrus.WithFields(logrus.Fields{
		"operationId": operation.ID.Hex(),
		"requestId":   request.ID.Hex(),
		"officerId":   officer.ID.Hex(),
	}).Info("Rescue operation started")

	return operation, nil
}

// UpdateStatus records endTime on COMPLETED or FAILED and completes the parent request on COMPLETED.
func (ros *RescueOperationService) UpdateStatus(ctx context.Context, id, status string) (*models.RescueOperation, error) {
	parsed, ok := models.ParseOperationStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("status", status)
	}

	operation, err := ros.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	operation.Status = parsed
	if parsed == models.OperationCompleted || parsed == models.OperationFailed {
		operation.EndTime = utils.TimePtr(time.Now())
	}

	if err := ros.save(ctx, operation); err != nil {
		return nil, err
	}

	ros.metrics.OperationStatusChanged(string(parsed))
	ros.publisher.Publish(ctx, events.RescueOperationStatus, operation.ID.Hex(), map[string]interface{}{
		"id":              operation.ID.Hex(),
		"rescueRequestId": operation.RescueRequestID.Hex(),
		"status":          parsed,
	})

	if parsed == models.OperationCompleted {
		request, err := ros.requestService.get(ctx, operation.RescueRequestID.Hex())
		if err != nil {
			return nil, err
		}
		if err := ros.requestService.setStatus(ctx, request, models.RequestCompleted); err != nil {
			return nil, err
		}
	}

	return operation, nil
}

func (ros *RescueOperationService) Update(ctx context.Context, id string, req models.UpdateRescueOperationRequest) (*models.RescueOperation, error) {
	operation, err := ros.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AssignedTeams != nil {
		operation.AssignedTeams = req.AssignedTeams
	}
	if req.AssignedVolunteers != nil {
		operation.AssignedVolunteers = req.AssignedVolunteers
	}
	if req.PeopleRescued != nil {
		operation.PeopleRescued = *req.PeopleRescued
	}
	if req.Notes != "" {
		operation.Notes = req.Notes
	}
	if req.ResourcesUsed != "" {
		operation.ResourcesUsed = req.ResourcesUsed
	}

	if err := ros.save(ctx, operation); err != nil {
		return nil, err
	}
	return operation, nil
}

func (ros *RescueOperationService) Get(ctx context.Context, id string) (*models.RescueOperation, error) {
	operation, err := ros.operationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Rescue operation", "get rescue operation")
	}
	return operation, nil
}

// GetByRequest returns the most recent operation for the request.
func (ros *RescueOperationService) GetByRequest(ctx context.Context, requestID string) (*models.RescueOperation, error) {
	operations, err := ros.list(ctx, interfaces.RescueOperationFilter{RescueRequestID: requestID})
	if err != nil {
		return nil, err
	}
	if len(operations) == 0 {
		return nil, utils.NewNotFoundError("Rescue operation")
	}
	return operations[0], nil
}

func (ros *RescueOperationService) ListByDistrict(ctx context.Context, district string) ([]*models.RescueOperation, error) {
	return ros.list(ctx, interfaces.RescueOperationFilter{District: district})
}

// StatsByDistrict counts only IN_PROGRESS operations as active.
func (ros *RescueOperationService) StatsByDistrict(ctx context.Context, district string) (*models.RescueOperationStats, error) {
	total, err := ros.operationRepo.Count(ctx, interfaces.RescueOperationFilter{District: district})
	if err != nil {
		return nil, utils.NewDatabaseError("count rescue operations", err)
	}
	active, err := ros.operationRepo.Count(ctx, interfaces.RescueOperationFilter{District: district, Status: models.OperationInProgress})
	if err != nil {
		return nil, utils.NewDatabaseError("count rescue operations", err)
	}
	return &models.RescueOperationStats{TotalOperations: total, ActiveOperations: active}, nil
}

func (ros *RescueOperationService) list(ctx context.Context, filter interfaces.RescueOperationFilter) ([]*models.RescueOperation, error) {
	operations, err := ros.operationRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list rescue operations", err)
	}
	return operations, nil
}

func (ros *RescueOperationService) save(ctx context.Context, operation *models.RescueOperation) error {
	operation.UpdatedAt = time.Now()
	if err := ros.operationRepo.Update(ctx, operation); err != nil {
		return utils.FromRepositoryError(err, "Rescue operation", "update rescue operation")
	}
	return nil
}
