package services

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type DisasterService struct {
	disasterRepo interfaces.DisasterRepository
	validator    *utils.ValidationService
}

func NewDisasterService(disasterRepo interfaces.DisasterRepository) *DisasterService {
	return &DisasterService{
		disasterRepo: disasterRepo,
		validator:    utils.NewValidationService(),
	}
}

// Create records a disaster reported by admin. Status defaults to Active.
func (ds *DisasterService) Create(ctx context.Context, admin *models.User, req models.DisasterRequest) (*models.Disaster, error) {
	if err := ds.validator.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	disaster := &models.Disaster{
		Status:      models.DisasterStatusActive,
		Timestamp:   now,
		CreatedByID: utils.ObjectIDPtr(admin.ID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ds.apply(disaster, req)

	if err := ds.disasterRepo.Create(ctx, disaster); err != nil {
		return nil, utils.NewDatabaseError("create disaster", err)
	}

	logrus.WithFields(logrus.Fields{
		"disasterId": disaster.ID.Hex(),
		"type":       disaster.Type,
		"region":     disaster.Region,
	}).Info("Disaster recorded")

	return disaster, nil
}

func (ds *DisasterService) Update(ctx context.Context, id string, req models.DisasterRequest) (*models.Disaster, error) {
	if err := ds.validator.Validate(req); err != nil {
		return nil, err
	}

	disaster, err := ds.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ds.apply(disaster, req)

	disaster.UpdatedAt = time.Now()
	if err := ds.disasterRepo.Update(ctx, disaster); err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "update disaster")
	}
	return disaster, nil
}

func (ds *DisasterService) apply(disaster *models.Disaster, req models.DisasterRequest) {
	disaster.Type = strings.TrimSpace(req.Type)
	disaster.Severity = req.Severity
	disaster.Region = req.Region
	disaster.District = req.District
	disaster.State = req.State
	disaster.Latitude = req.Latitude
	disaster.Longitude = req.Longitude
	disaster.Description = req.Description
	disaster.EstimatedAffectedPopulation = req.EstimatedAffectedPopulation
	if req.Status != "" {
		disaster.Status = req.Status
	}
}

func (ds *DisasterService) Get(ctx context.Context, id string) (*models.Disaster, error) {
	disaster, err := ds.disasterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
	}
	return disaster, nil
}

func (ds *DisasterService) ListActive(ctx context.Context) ([]*models.Disaster, error) {
	return ds.list(ctx, interfaces.DisasterFilter{Status: models.DisasterStatusActive})
}

func (ds *DisasterService) ListByRegion(ctx context.Context, region string) ([]*models.Disaster, error) {
	return ds.list(ctx, interfaces.DisasterFilter{Region: region})
}

func (ds *DisasterService) Delete(ctx context.Context, id string) error {
	if err := ds.disasterRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Disaster", "delete disaster")
	}
	logrus.WithField("disasterId", id).Info("Disaster deleted")
	return nil
}

func (ds *DisasterService) list(ctx context.Context, filter interfaces.DisasterFilter) ([]*models.Disaster, error) {
	disasters, err := ds.disasterRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list disasters", err)
	}
	return disasters, nil
}
