package services

import (
	"alertsystem/models"
	"alertsystem/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ReliefServiceSuite covers shelters, resources, affected areas and teams.
type ReliefServiceSuite struct {
	serviceSuite
}

func TestReliefServiceSuite(t *testing.T) {
	suite.Run(t, new(ReliefServiceSuite))
}

func (s *ReliefServiceSuite) newShelter(capacity int) *models.Shelter {
	shelter, err := s.shelters.Create(s.ctx, models.ShelterRequest{
		Name:          "Town hall",
		District:      "Mysuru",
		State:         "Karnataka",
		TotalCapacity: capacity,
	})
	s.Require().NoError(err)
	return shelter
}

func (s *ReliefServiceSuite) TestShelterOccupancy() {
	shelter := s.newShelter(100)
	s.Equal(models.ShelterOperational, shelter.Status)
	s.Equal(0, shelter.CurrentOccupancy)

	s.Run("over capacity is rejected and nothing changes", func() {
		_, err := s.shelters.UpdateOccupancy(s.ctx, shelter.ID.Hex(), 101)
		s.requireErrorCode(err, utils.ErrCodeConflict, http.StatusConflict)
		s.Contains(err.Error(), "Occupancy cannot exceed total capacity")

		stored, err := s.shelters.Get(s.ctx, shelter.ID.Hex())
		s.Require().NoError(err)
		s.Equal(0, stored.CurrentOccupancy)
		s.Equal(models.ShelterOperational, stored.Status)
	})

	s.Run("reaching capacity marks it full", func() {
		updated, err := s.shelters.UpdateOccupancy(s.ctx, shelter.ID.Hex(), 100)
		s.Require().NoError(err)
		s.Equal(models.ShelterFull, updated.Status)
	})

	s.Run("freeing space reverts full to operational", func() {
		updated, err := s.shelters.UpdateOccupancy(s.ctx, shelter.ID.Hex(), 99)
		s.Require().NoError(err)
		s.Equal(models.ShelterOperational, updated.Status)
		s.Equal(1, updated.AvailableCapacity())
	})

	s.Run("other statuses are kept when space frees up", func() {
		_, err := s.shelters.UpdateStatus(s.ctx, shelter.ID.Hex(), "UNDER_MAINTENANCE")
		s.Require().NoError(err)

		updated, err := s.shelters.UpdateOccupancy(s.ctx, shelter.ID.Hex(), 10)
		s.Require().NoError(err)
		s.Equal(models.ShelterUnderMaintenance, updated.Status)
	})
}

func (s *ReliefServiceSuite) TestAvailableShelters() {
	open := s.newShelter(10)
	full := s.newShelter(5)
	_, err := s.shelters.UpdateOccupancy(s.ctx, full.ID.Hex(), 5)
	s.Require().NoError(err)

	available, err := s.shelters.ListAvailable(s.ctx, "Karnataka", "")
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(open.ID, available[0].ID)

	available, err = s.shelters.ListAvailable(s.ctx, "Kerala", "")
	s.Require().NoError(err)
	s.Empty(available)
}

func (s *ReliefServiceSuite) TestResourceQuantity() {
	resource, err := s.resources.Create(s.ctx, models.ResourceRequest{
		ResourceType:  "WATER",
		ResourceName:  "Bottled water",
		TotalQuantity: 500,
		Unit:          "litres",
		State:         "Karnataka",
	})
	s.Require().NoError(err)
	s.Equal(500, resource.AvailableQuantity)
	s.Equal(models.ResourceAvailable, resource.Status)
	s.Equal(models.ResourcePriorityMedium, resource.Priority)

	s.Run("zero depletes", func() {
		updated, err := s.resources.UpdateQuantity(s.ctx, resource.ID.Hex(), 0)
		s.Require().NoError(err)
		s.Equal(models.ResourceDepleted, updated.Status)
	})

	s.Run("restocking makes it available", func() {
		updated, err := s.resources.UpdateQuantity(s.ctx, resource.ID.Hex(), 20)
		s.Require().NoError(err)
		s.Equal(models.ResourceAvailable, updated.Status)
		s.Equal(20, updated.AvailableQuantity)
	})

	s.Run("negative values pass through as depleted", func() {
		updated, err := s.resources.UpdateQuantity(s.ctx, resource.ID.Hex(), -3)
		s.Require().NoError(err)
		s.Equal(-3, updated.AvailableQuantity)
		s.Equal(models.ResourceDepleted, updated.Status)
	})

	byType, err := s.resources.ListByType(s.ctx, "water")
	s.Require().NoError(err)
	s.Len(byType, 1)

	_, err = s.resources.ListByType(s.ctx, "SPACESHIPS")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
}

func (s *ReliefServiceSuite) TestNegativeCapacityRejected() {
	_, err := s.shelters.Create(s.ctx, models.ShelterRequest{
		Name: "Bad", District: "Mysuru", State: "Karnataka", TotalCapacity: -1,
	})
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
}

func (s *ReliefServiceSuite) TestAffectedAreas() {
	disaster := s.createDisaster()

	area, err := s.areas.Create(s.ctx, models.AffectedAreaRequest{
		DisasterID: disaster.ID.Hex(),
		AreaName:   "Low lying ward",
		District:   "Mysuru",
		State:      "Karnataka",
		Severity:   "high",
	})
	s.Require().NoError(err)
	s.Equal(models.AreaIdentified, area.Status)
	s.Equal(models.AreaSeverityHigh, area.Severity)

	_, err = s.areas.AssignOfficer(s.ctx, area.ID.Hex(), s.citizen.ID.Hex())
	s.requireErrorCode(err, utils.ErrCodeInvalidRole, http.StatusBadRequest)

	assigned, err := s.areas.AssignOfficer(s.ctx, area.ID.Hex(), s.officer.ID.Hex())
	s.Require().NoError(err)
	s.Equal(models.AreaUnderAssessment, assigned.Status)

	areas, err := s.areas.ListByLocality(s.ctx, "karnataka", "mysuru")
	s.Require().NoError(err)
	s.Len(areas, 1)

	_, err = s.areas.Create(s.ctx, models.AffectedAreaRequest{
		DisasterID: "64b7f0c2a1b2c3d4e5f60718",
		AreaName:   "Ghost", District: "Mysuru", State: "Karnataka", Severity: "LOW",
	})
	s.requireErrorCode(err, utils.ErrCodeNotFound, http.StatusNotFound)
}

func (s *ReliefServiceSuite) TestEmergencyTeams() {
	for _, teamType := range []string{"FIRE", "AMBULANCE", "FIRE"} {
		_, err := s.teams.Create(s.ctx, models.EmergencyTeamRequest{
			TeamName: teamType + " unit",
			TeamType: teamType,
			District: "Mysuru",
		})
		s.Require().NoError(err)
	}

	fire, err := s.teams.ListByDistrictAndType(s.ctx, "MYSURU", "fire")
	s.Require().NoError(err)
	s.Require().Len(fire, 2)
	s.Equal(models.TeamAvailable, fire[0].Status)

	_, err = s.teams.UpdateStatus(s.ctx, fire[0].ID.Hex(), "DEPLOYED")
	s.Require().NoError(err)

	stats, err := s.teams.StatsByDistrict(s.ctx, "Mysuru")
	s.Require().NoError(err)
	s.Equal(int64(3), stats.TotalTeams)
	s.Equal(int64(2), stats.AvailableTeams)

	_, err = s.teams.UpdateStatus(s.ctx, fire[0].ID.Hex(), "ON_FIRE")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
}

func (s *ReliefServiceSuite) TestCitizenQueries() {
	query, err := s.queries.Create(s.ctx, s.citizen, models.CreateQueryRequest{
		Subject: "Drinking water",
		Message: "Where is the nearest distribution point?",
	})
	s.Require().NoError(err)
	s.Equal(models.QueryOpen, query.Status)
	s.Equal(models.DefaultQueryPriority, query.PriorityLevel)

	other := s.createUser("other@example.com", models.RoleCitizen, "Karnataka", "Mysuru")
	_, err = s.queries.Get(s.ctx, query.ID.Hex(), other)
	s.requireErrorCode(err, utils.ErrCodeAuthorization, http.StatusForbidden)

	_, err = s.queries.Assign(s.ctx, query.ID.Hex(), other.ID.Hex())
	s.requireErrorCode(err, utils.ErrCodeInvalidRole, http.StatusBadRequest)

	assigned, err := s.queries.Assign(s.ctx, query.ID.Hex(), s.officer.ID.Hex())
	s.Require().NoError(err)
	s.Equal(models.QueryAssigned, assigned.Status)

	resolved, err := s.queries.Respond(s.ctx, query.ID.Hex(), "Community hall, 9am")
	s.Require().NoError(err)
	s.Equal(models.QueryResolved, resolved.Status)
	s.NotNil(resolved.ResponseDate)

	open, err := s.queries.ListOpen(s.ctx)
	s.Require().NoError(err)
	s.Empty(open)
}

func (s *ReliefServiceSuite) TestReports() {
	disaster := s.createDisaster()

	report, err := s.reports.Submit(s.ctx, s.officer, disaster.ID.Hex(), "Bridge closed")
	s.Require().NoError(err)
	s.Equal(s.officer.ID, report.ResponderID)

	_, err = s.reports.Submit(s.ctx, s.officer, "64b7f0c2a1b2c3d4e5f60718", "Bridge closed")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
	s.Contains(err.Error(), "Disaster not found")

	all, err := s.reports.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}
