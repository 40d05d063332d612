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

type AffectedAreaService struct {
	areaRepo     interfaces.AffectedAreaRepository
	disasterRepo interfaces.DisasterRepository
	userRepo     interfaces.UserRepository
	validator    *utils.ValidationService
}

func NewAffectedAreaService(
	areaRepo interfaces.AffectedAreaRepository,
	disasterRepo interfaces.DisasterRepository,
	userRepo interfaces.UserRepository,
) *AffectedAreaService {
	return &AffectedAreaService{
		areaRepo:     areaRepo,
		disasterRepo: disasterRepo,
		userRepo:     userRepo,
		validator:    utils.NewValidationService(),
	}
}

// Create maps an area hit by an existing disaster. New areas start IDENTIFIED.
func (as *AffectedAreaService) Create(ctx context.Context, req models.AffectedAreaRequest) (*models.AffectedArea, error) {
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	disaster, err := as.disasterRepo.GetByID(ctx, req.DisasterID)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
	}

	now := time.Now()
	area := &models.AffectedArea{
		DisasterID: disaster.ID,
		Status:     models.AreaIdentified,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyAreaRequest(area, req)

	if err := as.areaRepo.Create(ctx, area); err != nil {
		return nil, utils.NewDatabaseError("create affected area", err)
	}

	logrus.WithFields(logrus.Fields{
		"areaId":     area.ID.Hex(),
		"disasterId": disaster.ID.Hex(),
		"severity":   area.Severity,
	}).Info("Affected area identified")

	return area, nil
}

func (as *AffectedAreaService) Update(ctx context.Context, id string, req models.AffectedAreaRequest) (*models.AffectedArea, error) {
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	area, err := as.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAreaRequest(area, req)

	if err := as.save(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func applyAreaRequest(area *models.AffectedArea, req models.AffectedAreaRequest) {
	area.AreaName = strings.TrimSpace(req.AreaName)
	area.Address = req.Address
	area.District = req.District
	area.State = req.State
	area.Pincode = req.Pincode
	area.Latitude = req.Latitude
	area.Longitude = req.Longitude
	area.Radius = req.Radius
	area.Severity, _ = models.ParseAreaSeverity(req.Severity)
	area.EstimatedAffectedPopulation = req.EstimatedAffectedPopulation
	area.DamageDescription = req.DamageDescription
}

// AssignOfficer puts an officer in charge and moves the area UNDER_ASSESSMENT.
func (as *AffectedAreaService) AssignOfficer(ctx context.Context, id, officerID string) (*models.AffectedArea, error) {
	area, err := as.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	officer, err := as.userRepo.GetByID(ctx, officerID)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Officer", "get officer")
	}
	if !officer.IsOfficer() {
		return nil, utils.NewInvalidRoleError("User is not an officer")
	}

	area.AssignedOfficerID = utils.ObjectIDPtr(officer.ID)
	area.AssignedOfficerName = officer.Name
	area.Status = models.AreaUnderAssessment

	if err := as.save(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (as *AffectedAreaService) UpdateStatus(ctx context.Context, id, status string) (*models.AffectedArea, error) {
	parsed, ok := models.ParseAreaStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("area status", status)
	}

	area, err := as.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	area.Status = parsed

	if err := as.save(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (as *AffectedAreaService) Get(ctx context.Context, id string) (*models.AffectedArea, error) {
	area, err := as.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Affected area", "get affected area")
	}
	return area, nil
}

func (as *AffectedAreaService) ListAll(ctx context.Context) ([]*models.AffectedArea, error) {
	return as.list(ctx, interfaces.AffectedAreaFilter{})
}

func (as *AffectedAreaService) ListByDisaster(ctx context.Context, disasterID string) ([]*models.AffectedArea, error) {
	if _, err := as.disasterRepo.GetByID(ctx, disasterID); err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
	}
	return as.list(ctx, interfaces.AffectedAreaFilter{DisasterID: disasterID})
}

// ListByLocality filters by state and/or district; blank values match everything.
func (as *AffectedAreaService) ListByLocality(ctx context.Context, state, district string) ([]*models.AffectedArea, error) {
	return as.list(ctx, interfaces.AffectedAreaFilter{State: state, District: district})
}

func (as *AffectedAreaService) Delete(ctx context.Context, id string) error {
	if err := as.areaRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Affected area", "delete affected area")
	}
	return nil
}

func (as *AffectedAreaService) list(ctx context.Context, filter interfaces.AffectedAreaFilter) ([]*models.AffectedArea, error) {
	areas, err := as.areaRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list affected areas", err)
	}
	return areas, nil
}

func (as *AffectedAreaService) save(ctx context.Context, area *models.AffectedArea) error {
	area.UpdatedAt = time.Now()
	if err := as.areaRepo.Update(ctx, area); err != nil {
		return utils.FromRepositoryError(err, "Affected area", "update affected area")
	}
	return nil
}
