package services

import (
	"alertsystem/events"
	"alertsystem/models"
	"alertsystem/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestAlertMatchesRegion(t *testing.T) {
	alert := &models.Alert{Status: models.AlertStatusSent, State: "Karnataka", District: "Mysuru, Mangaluru"}

	tests := []struct {
		name     string
		state    string
		district string
		want     bool
	}{
		{"first district", "Karnataka", "Mysuru", true},
		{"second district ignoring case", "karnataka", "mangaluru", true},
		{"district not listed", "Karnataka", "Bengaluru", false},
		{"other state", "Kerala", "Mysuru", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alert.MatchesRegion(tt.state, tt.district))
		})
	}

	t.Run("blank district covers the whole state", func(t *testing.T) {
		statewide := &models.Alert{Status: models.AlertStatusSent, State: "Karnataka"}
		assert.True(t, statewide.MatchesRegion("Karnataka", "Bengaluru"))
	})

	t.Run("pending alerts never match", func(t *testing.T) {
		pending := &models.Alert{Status: models.AlertStatusPending, State: "Karnataka"}
		assert.False(t, pending.MatchesRegion("Karnataka", "Mysuru"))
	})
}

type AlertServiceSuite struct {
	serviceSuite
}

func TestAlertServiceSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceSuite))
}

func (s *AlertServiceSuite) TestCreateForDisasterIsPending() {
	disaster := s.createDisaster()

	alert, err := s.alerts.CreateForDisaster(s.ctx, s.admin, disaster.ID.Hex(), "Stay indoors")
	s.Require().NoError(err)
	s.Equal(models.AlertStatusPending, alert.Status)
	s.Require().NotNil(alert.DisasterID)
	s.Equal(disaster.ID, *alert.DisasterID)

	s.Empty(s.broadcaster.sent())
	s.NotContains(s.publisher.Types(), events.AlertSent)

	_, err = s.alerts.CreateForDisaster(s.ctx, s.admin, "64b7f0c2a1b2c3d4e5f60718", "Stay indoors")
	s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
}

func (s *AlertServiceSuite) TestBroadcastDefaultsToOfficerRegion() {
	alert, message, err := s.alerts.Broadcast(s.ctx, s.officer, models.BroadcastAlertRequest{
		Title:   "Flood warning",
		Message: "Move to higher ground",
	})
	s.Require().NoError(err)

	s.Equal("Karnataka", alert.State)
	s.Equal("Mysuru", alert.District)
	s.Equal(models.AlertStatusSent, alert.Status)
	s.Equal("Alert broadcasted successfully to Mysuru, Karnataka", message)
	s.Len(s.broadcaster.sent(), 1)
	s.Contains(s.publisher.Types(), events.AlertSent)
}

func (s *AlertServiceSuite) TestActiveForUser() {
	_, _, err := s.alerts.Broadcast(s.ctx, s.officer, models.BroadcastAlertRequest{
		Message: "Coastal and southern districts", State: "Karnataka", District: "Mysuru,Mangaluru",
	})
	s.Require().NoError(err)
	_, _, err = s.alerts.Broadcast(s.ctx, s.officer, models.BroadcastAlertRequest{
		Message: "Capital only", State: "Karnataka", District: "Bengaluru Urban",
	})
	s.Require().NoError(err)
	_, err = s.alerts.CreateForDisaster(s.ctx, s.admin, s.createDisaster().ID.Hex(), "Not yet sent")
	s.Require().NoError(err)

	alerts, err := s.alerts.ActiveForUser(s.ctx, s.citizen)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal("Coastal and southern districts", alerts[0].Message)

	coastal := s.createUser("coastal@example.com", models.RoleCitizen, "Karnataka", "Mangaluru")
	alerts, err = s.alerts.ActiveForUser(s.ctx, coastal)
	s.Require().NoError(err)
	s.Len(alerts, 1)
}

func (s *AlertServiceSuite) TestPushTaskNotification() {
	task, err := s.tasks.Create(s.ctx, s.admin, models.CreateTaskRequest{
		Title:        "Evacuate ward 4",
		AssignedToID: s.officer.ID.Hex(),
		District:     "Mysuru",
		State:        "Karnataka",
		Priority:     "HIGH",
		TaskType:     "EVACUATION",
	})
	s.Require().NoError(err)

	s.Run("assigned officer can push", func() {
		alert, message, err := s.alerts.PushTaskNotification(s.ctx, s.officer, task.ID.Hex(), "Buses at the school")
		s.Require().NoError(err)
		s.Equal("Alert from Officer: Evacuate ward 4", alert.Title)
		s.Equal("Mysuru", alert.District)
		s.Equal(models.AlertStatusSent, alert.Status)
		s.Equal("Notification sent to all citizens in Mysuru, Karnataka", message)
	})

	s.Run("other officers cannot", func() {
		other := s.createUser("officer2@example.com", models.RoleOfficer, "Karnataka", "Mandya")
		_, _, err := s.alerts.PushTaskNotification(s.ctx, other, task.ID.Hex(), "Hello")
		s.requireErrorCode(err, utils.ErrCodeValidation, http.StatusBadRequest)
	})
}

func (s *AlertServiceSuite) TestDelete() {
	alert, _, err := s.alerts.Broadcast(s.ctx, s.officer, models.BroadcastAlertRequest{Message: "Test"})
	s.Require().NoError(err)

	other := s.createUser("officer2@example.com", models.RoleOfficer, "Karnataka", "Mandya")
	err = s.alerts.Delete(s.ctx, other, alert.ID.Hex())
	s.requireErrorCode(err, utils.ErrCodeAuthorization, http.StatusForbidden)

	s.Require().NoError(s.alerts.Delete(s.ctx, s.officer, alert.ID.Hex()))

	err = s.alerts.Delete(s.ctx, s.admin, alert.ID.Hex())
	s.requireErrorCode(err, utils.ErrCodeNotFound, http.StatusNotFound)

	mine, err := s.alerts.ListByCreator(s.ctx, s.officer.ID.Hex())
	s.Require().NoError(err)
	s.Empty(mine)
}

func (s *AlertServiceSuite) TestAdminCanDeleteAnyAlert() {
	alert, _, err := s.alerts.Broadcast(s.ctx, s.officer, models.BroadcastAlertRequest{Message: "Test"})
	s.Require().NoError(err)
	s.NoError(s.alerts.Delete(s.ctx, s.admin, alert.ID.Hex()))
}
