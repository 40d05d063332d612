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

type ShelterService struct {
	shelterRepo  interfaces.ShelterRepository
	disasterRepo interfaces.DisasterRepository
	validator    *utils.ValidationService
}

func NewShelterService(shelterRepo interfaces.ShelterRepository, disasterRepo interfaces.DisasterRepository) *ShelterService {
	return &ShelterService{
		shelterRepo:  shelterRepo,
		disasterRepo: disasterRepo,
		validator:    utils.NewValidationService(),
	}
}

// Create registers an empty OPERATIONAL shelter.
func (ss *ShelterService) Create(ctx context.Context, req models.ShelterRequest) (*models.Shelter, error) {
	if err := ss.validator.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	shelter := &models.Shelter{
		Status:    models.ShelterOperational,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ss.apply(ctx, shelter, req); err != nil {
		return nil, err
	}

	if err := ss.shelterRepo.Create(ctx, shelter); err != nil {
		return nil, utils.NewDatabaseError("create shelter", err)
	}

	logrus.WithFields(logrus.Fields{
		"shelterId": shelter.ID.Hex(),
		"district":  shelter.District,
		"capacity":  shelter.TotalCapacity,
	}).Info("Shelter created")

	return shelter, nil
}

func (ss *ShelterService) Update(ctx context.Context, id string, req models.ShelterRequest) (*models.Shelter, error) {
	if err := ss.validator.Validate(req); err != nil {
		return nil, err
	}

	shelter, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ss.apply(ctx, shelter, req); err != nil {
		return nil, err
	}

	if err := ss.save(ctx, shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

func (ss *ShelterService) apply(ctx context.Context, shelter *models.Shelter, req models.ShelterRequest) error {
	shelter.Name = strings.TrimSpace(req.Name)
	shelter.Address = req.Address
	shelter.District = req.District
	shelter.State = req.State
	shelter.Pincode = req.Pincode
	shelter.Latitude = req.Latitude
	shelter.Longitude = req.Longitude
	shelter.TotalCapacity = req.TotalCapacity
	shelter.InChargeOfficer = req.InChargeOfficer
	shelter.PhoneNumber = req.PhoneNumber
	shelter.Email = req.Email
	shelter.AdditionalFacilities = req.AdditionalFacilities

	setFlag(&shelter.HasWater, req.HasWater)
	setFlag(&shelter.HasFood, req.HasFood)
	setFlag(&shelter.HasMedical, req.HasMedical)
	setFlag(&shelter.HasElectricity, req.HasElectricity)
	setFlag(&shelter.HasSanitation, req.HasSanitation)

	if req.DisasterID != "" {
		disaster, err := ss.disasterRepo.GetByID(ctx, req.DisasterID)
		if err != nil {
			return utils.FromRepositoryError(err, "Disaster", "get disaster")
		}
		shelter.DisasterID = utils.ObjectIDPtr(disaster.ID)
	}
	return nil
}

func setFlag(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// UpdateOccupancy rejects occupancy above capacity and leaves the shelter as
// it was. A full shelter goes FULL; a FULL one with room goes back to OPERATIONAL.
func (ss *ShelterService) UpdateOccupancy(ctx context.Context, id string, occupancy int) (*models.Shelter, error) {
	shelter, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if occupancy > shelter.TotalCapacity {
		return nil, utils.NewCapacityExceededError()
	}

	shelter.CurrentOccupancy = occupancy
	if occupancy >= shelter.TotalCapacity {
		shelter.Status = models.ShelterFull
	} else if shelter.Status == models.ShelterFull {
		shelter.Status = models.ShelterOperational
	}

	if err := ss.save(ctx, shelter); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"shelterId": shelter.ID.Hex(),
		"occupancy": occupancy,
		"status":    shelter.Status,
	}).Info("Shelter occupancy updated")

	return shelter, nil
}

func (ss *ShelterService) UpdateStatus(ctx context.Context, id, status string) (*models.Shelter, error) {
	parsed, ok := models.ParseShelterStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("shelter status", status)
	}

	shelter, err := ss.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	shelter.Status = parsed

	if err := ss.save(ctx, shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

func (ss *ShelterService) Get(ctx context.Context, id string) (*models.Shelter, error) {
	shelter, err := ss.shelterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Shelter", "get shelter")
	}
	return shelter, nil
}

func (ss *ShelterService) ListAll(ctx context.Context) ([]*models.Shelter, error) {
	return ss.list(ctx, interfaces.ShelterFilter{})
}

func (ss *ShelterService) ListByState(ctx context.Context, state string) ([]*models.Shelter, error) {
	return ss.list(ctx, interfaces.ShelterFilter{State: state})
}

func (ss *ShelterService) ListByDistrict(ctx context.Context, district string) ([]*models.Shelter, error) {
	return ss.list(ctx, interfaces.ShelterFilter{District: district})
}

func (ss *ShelterService) ListByDisaster(ctx context.Context, disasterID string) ([]*models.Shelter, error) {
	if _, err := ss.disasterRepo.GetByID(ctx, disasterID); err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
	}
	return ss.list(ctx, interfaces.ShelterFilter{DisasterID: disasterID})
}

// ListAvailable returns OPERATIONAL shelters with places left, optionally
// narrowed to a state and district.
func (ss *ShelterService) ListAvailable(ctx context.Context, state, district string) ([]*models.Shelter, error) {
	shelters, err := ss.list(ctx, interfaces.ShelterFilter{
		State:    state,
		District: district,
		Status:   models.ShelterOperational,
	})
	if err != nil {
		return nil, err
	}

	available := make([]*models.Shelter, 0, len(shelters))
	for _, s := range shelters {
		if s.AvailableCapacity() > 0 {
			available = append(available, s)
		}
	}
	return available, nil
}

func (ss *ShelterService) Delete(ctx context.Context, id string) error {
	if err := ss.shelterRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Shelter", "delete shelter")
	}
	return nil
}

func (ss *ShelterService) list(ctx context.Context, filter interfaces.ShelterFilter) ([]*models.Shelter, error) {
	shelters, err := ss.shelterRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list shelters", err)
	}
	return shelters, nil
}

func (ss *ShelterService) save(ctx context.Context, shelter *models.Shelter) error {
	shelter.UpdatedAt = time.Now()
	if err := ss.shelterRepo.Update(ctx, shelter); err != nil {
		return utils.FromRepositoryError(err, "Shelter", "update shelter")
	}
	return nil
}
