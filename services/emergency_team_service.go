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

type EmergencyTeamService struct {
	teamRepo  interfaces.EmergencyTeamRepository
	validator *utils.ValidationService
}

func NewEmergencyTeamService(teamRepo interfaces.EmergencyTeamRepository) *EmergencyTeamService {
	return &EmergencyTeamService{
		teamRepo:  teamRepo,
		validator: utils.NewValidationService(),
	}
}

// Create registers a response unit. A blank status means AVAILABLE.
func (es *EmergencyTeamService) Create(ctx context.Context, req models.EmergencyTeamRequest) (*models.EmergencyTeam, error) {
	if err := es.validator.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	team := &models.EmergencyTeam{
		Status:    models.TeamAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyTeamRequest(team, req); err != nil {
		return nil, err
	}

	if err := es.teamRepo.Create(ctx, team); err != nil {
		return nil, utils.NewDatabaseError("create emergency team", err)
	}

	logrus.WithFields(logrus.Fields{
		"teamId":   team.ID.Hex(),
		"type":     team.TeamType,
		"district": team.District,
	}).Info("Emergency team created")

	return team, nil
}

func (es *EmergencyTeamService) Update(ctx context.Context, id string, req models.EmergencyTeamRequest) (*models.EmergencyTeam, error) {
	if err := es.validator.Validate(req); err != nil {
		return nil, err
	}

	team, err := es.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyTeamRequest(team, req); err != nil {
		return nil, err
	}

	if err := es.save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func applyTeamRequest(team *models.EmergencyTeam, req models.EmergencyTeamRequest) error {
	if req.Status != "" {
		status, ok := models.ParseTeamStatus(req.Status)
		if !ok {
			return utils.NewInvalidStatusError("team status", req.Status)
		}
		team.Status = status
	}

	team.TeamName = strings.TrimSpace(req.TeamName)
	team.TeamType, _ = models.ParseTeamType(req.TeamType)
	team.District = req.District
	team.ContactPerson = req.ContactPerson
	team.PhoneNumber = req.PhoneNumber
	team.Email = req.Email
	team.VehicleCount = req.VehicleCount
	team.PersonnelCount = req.PersonnelCount
	team.BaseLocation = req.BaseLocation
	team.Latitude = req.Latitude
	team.Longitude = req.Longitude
	team.Notes = req.Notes
	return nil
}

func (es *EmergencyTeamService) UpdateStatus(ctx context.Context, id, status string) (*models.EmergencyTeam, error) {
	parsed, ok := models.ParseTeamStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("team status", status)
	}

	team, err := es.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Status = parsed

	if err := es.save(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (es *EmergencyTeamService) Get(ctx context.Context, id string) (*models.EmergencyTeam, error) {
	team, err := es.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Team", "get emergency team")
	}
	return team, nil
}

func (es *EmergencyTeamService) ListAll(ctx context.Context) ([]*models.EmergencyTeam, error) {
	return es.list(ctx, interfaces.EmergencyTeamFilter{})
}

func (es *EmergencyTeamService) ListByDistrict(ctx context.Context, district string) ([]*models.EmergencyTeam, error) {
	return es.list(ctx, interfaces.EmergencyTeamFilter{District: district})
}

func (es *EmergencyTeamService) ListAvailableByDistrict(ctx context.Context, district string) ([]*models.EmergencyTeam, error) {
	return es.list(ctx, interfaces.EmergencyTeamFilter{District: district, Status: models.TeamAvailable})
}

func (es *EmergencyTeamService) ListByDistrictAndType(ctx context.Context, district, teamType string) ([]*models.EmergencyTeam, error) {
	parsed, ok := models.ParseTeamType(teamType)
	if !ok {
		return nil, utils.NewInvalidStatusError("team type", teamType)
	}
	return es.list(ctx, interfaces.EmergencyTeamFilter{District: district, Type: parsed})
}

func (es *EmergencyTeamService) StatsByDistrict(ctx context.Context, district string) (*models.TeamStats, error) {
	total, err := es.teamRepo.Count(ctx, interfaces.EmergencyTeamFilter{District: district})
	if err != nil {
		return nil, utils.NewDatabaseError("count emergency teams", err)
	}
	available, err := es.teamRepo.Count(ctx, interfaces.EmergencyTeamFilter{District: district, Status: models.TeamAvailable})
	if err != nil {
		return nil, utils.NewDatabaseError("count emergency teams", err)
	}
	return &models.TeamStats{TotalTeams: total, AvailableTeams: available}, nil
}

func (es *EmergencyTeamService) CountAll(ctx context.Context) (int64, error) {
	count, err := es.teamRepo.Count(ctx, interfaces.EmergencyTeamFilter{})
	if err != nil {
		return 0, utils.NewDatabaseError("count emergency teams", err)
	}
	return count, nil
}

func (es *EmergencyTeamService) Delete(ctx context.Context, id string) error {
	if err := es.teamRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Team", "delete emergency team")
	}
	return nil
}

func (es *EmergencyTeamService) list(ctx context.Context, filter interfaces.EmergencyTeamFilter) ([]*models.EmergencyTeam, error) {
	teams, err := es.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list emergency teams", err)
	}
	return teams, nil
}

func (es *EmergencyTeamService) save(ctx context.Context, team *models.EmergencyTeam) error {
	team.UpdatedAt = time.Now()
	if err := es.teamRepo.Update(ctx, team); err != nil {
		return utils.FromRepositoryError(err, "Team", "update emergency team")
	}
	return nil
}
