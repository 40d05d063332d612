package services

import (
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/models"
	"alertsystem/utils"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RescueServiceSuite struct {
	serviceSuite
}

func TestRescueServiceSuite(t *testing.T) {
	suite.Run(t, new(RescueServiceSuite))
}

func (s *RescueServiceSuite) TestCreate() {
	s.Run("blank district and state fall back to the citizen's", func() {
		request := s.createRescueRequest("")

		s.Equal("Mysuru", request.District)
		s.Equal("Karnataka", request.State)
		s.Equal(models.RequestPending, request.Status)
		s.Equal(1, request.NumberOfPeople)
		s.Equal(models.UrgencyHigh, request.Urgency)
	})

	s.Run("explicit district wins", func() {
		request := s.createRescueRequest("Mandya")
		s.Equal("Mandya", request.District)
	})

	s.Run("unknown urgency is rejected", func() {
		_, err := s.requests.Create(s.ctx, s.citizen, models.CreateRescueRequest{
			RescueType:   "Flood",
			Location:     "Somewhere",
			UrgencyLevel: "EXTREME",
		})
		s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
	})

	s.Contains(s.publisher.Types(), events.RescueRequestCreated)
}

func (s *RescueServiceSuite) TestGetRestrictsCitizensToOwnRequests() {
	request := s.createRescueRequest("")
	other := s.createUser("other@example.com", models.RoleCitizen, "Karnataka", "Mysuru")

	_, err := s.requests.Get(s.ctx, request.ID.Hex(), other)
	s.requireErrorCode(err, utils.ErrCodeAuthorization, http.StatusForbidden)

	got, err := s.requests.Get(s.ctx, request.ID.Hex(), s.citizen)
	s.Require().NoError(err)
	s.Equal(request.ID, got.ID)

	got, err = s.requests.Get(s.ctx, request.ID.Hex(), s.officer)
	s.Require().NoError(err)
	s.Equal(request.ID, got.ID)
}

func (s *RescueServiceSuite) TestAssignAttachesTeamsAndNotifiesVolunteers() {
	request := s.createRescueRequest("")
	volunteer := s.createUser("volunteer@example.com", models.RoleCitizen, "Karnataka", "Mysuru")

	assigned, err := s.requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{
		TeamIDs:      idList("team-1", "team-2"),
		VolunteerIDs: idList(volunteer.ID.Hex(), "does-not-exist"),
	})
	s.Require().NoError(err)

	s.Equal(models.RequestAssigned, assigned.Status)
	s.Require().NotNil(assigned.AssignedOfficerID)
	s.Equal(s.officer.ID, *assigned.AssignedOfficerID)
	s.NotNil(assigned.RespondedAt)
	s.Equal(models.IDList{"team-1", "team-2"}, assigned.AssignedTeamIDs)

	stored, err := s.repos.RescueRequests.GetByID(s.ctx, request.ID.Hex())
	s.Require().NoError(err)
	s.Equal("team-1,team-2", stored.AssignedTeamIDs.String())

	sent := s.broadcaster.sent()
	s.Require().Len(sent, 1)
	s.Equal("URGENT: Rescue Assistance Needed", sent[0].Title)
	s.Equal("Volunteer assistance requested for Flood at Near river bank. Family stranded on roof", sent[0].Message)
	s.Equal(models.AlertStatusSent, sent[0].Status)
	s.Equal("Mysuru", sent[0].District)
	s.Equal(s.officer.ID, sent[0].CreatedByID)

	s.Equal(1, s.notifier.volunteers)
	s.Equal([]string{request.ID.Hex()}, s.notifier.requestIDs)
}

func (s *RescueServiceSuite) TestAssignWithoutListsLeavesThemEmpty() {
	request := s.createRescueRequest("")

	assigned, err := s.requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{})
	s.Require().NoError(err)

	s.Empty(assigned.AssignedTeamIDs)
	s.Empty(assigned.NotifiedVolunteers)
	s.Empty(s.broadcaster.sent())
	s.Zero(s.notifier.volunteers)
}

func (s *RescueServiceSuite) TestAssignKeepsAbsentListsAndClearsEmptyOnes() {
	request := s.createRescueRequest("")

	_, err := s.requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{
		TeamIDs:      idList("team-1"),
		VolunteerIDs: idList("volunteer-1"),
	})
	s.Require().NoError(err)

	kept, err := s.requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{})
	s.Require().NoError(err)
	s.Equal(models.IDList{"team-1"}, kept.AssignedTeamIDs)
	s.Equal(models.IDList{"volunteer-1"}, kept.NotifiedVolunteers)

	cleared, err := s.requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{
		TeamIDs:      idList(),
		VolunteerIDs: idList(),
	})
	s.Require().NoError(err)
	s.Empty(cleared.AssignedTeamIDs)
	s.Empty(cleared.NotifiedVolunteers)

	stored, err := s.repos.RescueRequests.GetByID(s.ctx, request.ID.Hex())
	s.Require().NoError(err)
	s.Empty(stored.AssignedTeamIDs)
	s.Empty(stored.NotifiedVolunteers)
}

func (s *RescueServiceSuite) TestAssignSurvivesAlertFailure() {
	alerts := NewAlertService(failingAlertRepo{s.repos.Alerts}, s.repos.Tasks, s.repos.Disasters, s.broadcaster, s.publisher, s.metrics)
	requests := NewRescueRequestService(s.repos.RescueRequests, s.users, alerts, s.notifier, s.publisher, s.metrics)
	request := s.createRescueRequest("")
	volunteer := s.createUser("volunteer@example.com", models.RoleCitizen, "Karnataka", "Mysuru")

	assigned, err := requests.Assign(s.ctx, request.ID.Hex(), s.officer, models.AssignRescueRequest{
		VolunteerIDs: idList(volunteer.ID.Hex()),
	})
	s.Require().NoError(err)
	s.Equal(models.RequestAssigned, assigned.Status)

	stored, err := s.repos.RescueRequests.GetByID(s.ctx, request.ID.Hex())
	s.Require().NoError(err)
	s.Equal(models.RequestAssigned, stored.Status)
	s.Require().NotNil(stored.AssignedOfficerID)
	s.Equal(s.officer.ID, *stored.AssignedOfficerID)
	s.NotNil(stored.RespondedAt)

	s.Empty(s.broadcaster.sent())
	s.Equal(1, s.notifier.volunteers)
}

func (s *RescueServiceSuite) TestUpdateStatus() {
	request := s.createRescueRequest("")

	s.Run("unknown status is rejected", func() {
		_, err := s.requests.UpdateStatus(s.ctx, request.ID.Hex(), "ARCHIVED")
		s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
	})

	s.Run("completed records completedAt", func() {
		updated, err := s.requests.UpdateStatus(s.ctx, request.ID.Hex(), "completed")
		s.Require().NoError(err)
		s.Equal(models.RequestCompleted, updated.Status)
		s.NotNil(updated.CompletedAt)
	})

	s.Run("transitions are permissive", func() {
		updated, err := s.requests.UpdateStatus(s.ctx, request.ID.Hex(), "PENDING")
		s.Require().NoError(err)
		s.Equal(models.RequestPending, updated.Status)
	})

	s.Run("missing request is not found", func() {
		_, err := s.requests.UpdateStatus(s.ctx, "64b7f0c2a1b2c3d4e5f60718", "PENDING")
		s.requireErrorCode(err, utils.ErrCodeNotFound, http.StatusNotFound)
	})
}

func (s *RescueServiceSuite) TestStatsByDistrict() {
	s.createRescueRequest("")
	second := s.createRescueRequest("")
	s.createRescueRequest("Mandya")

	_, err := s.requests.UpdateStatus(s.ctx, second.ID.Hex(), "ASSIGNED")
	s.Require().NoError(err)

	stats, err := s.requests.StatsByDistrict(s.ctx, "mysuru")
	s.Require().NoError(err)
	s.Equal(int64(2), stats.TotalRequests)
	s.Equal(int64(1), stats.PendingRequests)

	total, err := s.requests.CountAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
}

func (s *RescueServiceSuite) TestOperationLifecycle() {
	request := s.createRescueRequest("")

	operation, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{
		RescueRequestID: request.ID.Hex(),
		AssignedTeams:   models.IDList{"7"},
	})
	s.Require().NoError(err)
	s.Equal(models.OperationInitiated, operation.Status)
	s.Equal(s.officer.ID, operation.OfficerInChargeID)
	s.Equal("Mysuru", operation.District)

	parent, err := s.requests.get(s.ctx, request.ID.Hex())
	s.Require().NoError(err)
	s.Equal(models.RequestInProgress, parent.Status)

	s.Run("second active operation conflicts", func() {
		_, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{
			RescueRequestID: request.ID.Hex(),
		})
		s.requireErrorCode(err, utils.ErrCodeConflict, http.StatusConflict)
	})

	s.Run("completion cascades to the request", func() {
		completed, err := s.operations.UpdateStatus(s.ctx, operation.ID.Hex(), "COMPLETED")
		s.Require().NoError(err)
		s.Equal(models.OperationCompleted, completed.Status)
		s.NotNil(completed.EndTime)

		parent, err := s.requests.get(s.ctx, request.ID.Hex())
		s.Require().NoError(err)
		s.Equal(models.RequestCompleted, parent.Status)
		s.NotNil(parent.CompletedAt)
	})

	s.Run("lookup by request returns the operation", func() {
		found, err := s.operations.GetByRequest(s.ctx, request.ID.Hex())
		s.Require().NoError(err)
		s.Equal(operation.ID, found.ID)
	})

	s.Run("a new operation is allowed once the previous one ended", func() {
		_, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{
			RescueRequestID: request.ID.Hex(),
		})
		s.NoError(err)
	})
}

func (s *RescueServiceSuite) TestFailedOperationLeavesRequestAlone() {
	request := s.createRescueRequest("")
	operation, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{
		RescueRequestID: request.ID.Hex(),
	})
	s.Require().NoError(err)

	failed, err := s.operations.UpdateStatus(s.ctx, operation.ID.Hex(), "FAILED")
	s.Require().NoError(err)
	s.NotNil(failed.EndTime)

	parent, err := s.requests.get(s.ctx, request.ID.Hex())
	s.Require().NoError(err)
	s.Equal(models.RequestInProgress, parent.Status)
	s.Nil(parent.CompletedAt)

	stats, err := s.operations.StatsByDistrict(s.ctx, "Mysuru")
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalOperations)
	s.Equal(int64(0), stats.ActiveOperations)
}

func (s *RescueServiceSuite) TestOperationStatsCountOnlyInProgressAsActive() {
	initiated := s.createRescueRequest("")
	running := s.createRescueRequest("")

	_, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{RescueRequestID: initiated.ID.Hex()})
	s.Require().NoError(err)
	operation, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{RescueRequestID: running.ID.Hex()})
	s.Require().NoError(err)
	_, err = s.operations.UpdateStatus(s.ctx, operation.ID.Hex(), "IN_PROGRESS")
	s.Require().NoError(err)

	stats, err := s.operations.StatsByDistrict(s.ctx, "Mysuru")
	s.Require().NoError(err)
	s.Equal(int64(2), stats.TotalOperations)
	s.Equal(int64(1), stats.ActiveOperations)
}

func (s *RescueServiceSuite) TestOperationRolledBackWhenRequestUpdateFails() {
	request := s.createRescueRequest("")
	requests := NewRescueRequestService(failingUpdateRequestRepo{s.repos.RescueRequests}, s.users, s.alerts, s.notifier, s.publisher, s.metrics)
	operations := NewRescueOperationService(s.repos.RescueOperations, requests, s.publisher, s.metrics)

	_, err := operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{RescueRequestID: request.ID.Hex()})
	s.Require().Error(err)

	stored, err := s.repos.RescueOperations.List(s.ctx, interfaces.RescueOperationFilter{})
	s.Require().NoError(err)
	s.Empty(stored)

	_, err = s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{RescueRequestID: request.ID.Hex()})
	s.NoError(err)
}

func (s *RescueServiceSuite) TestOperationForMissingRequest() {
	_, err := s.operations.Create(s.ctx, s.officer, models.CreateRescueOperationRequest{
		RescueRequestID: "64b7f0c2a1b2c3d4e5f60718",
	})
	s.requireErrorCode(err, utils.ErrCodeNotFound, http.StatusNotFound)

	operations, err := s.repos.RescueOperations.List(s.ctx, interfaces.RescueOperationFilter{})
	s.Require().NoError(err)
	s.Empty(operations)
}

func TestSortByUrgency(t *testing.T) {
	now := time.Now()
	requests := []*models.RescueRequest{
		{Location: "low", Urgency: models.UrgencyLow, CreatedAt: now},
		{Location: "critical-old", Urgency: models.UrgencyCritical, CreatedAt: now.Add(-time.Hour)},
		{Location: "medium", Urgency: models.UrgencyMedium, CreatedAt: now},
		{Location: "critical-new", Urgency: models.UrgencyCritical, CreatedAt: now},
		{Location: "high", Urgency: models.UrgencyHigh, CreatedAt: now},
	}

	SortByUrgency(requests)

	order := make([]string, 0, len(requests))
	for _, r := range requests {
		order = append(order, r.Location)
	}
	assert.Equal(t, []string{"critical-new", "critical-old", "high", "medium", "low"}, order)
}
