package services

import (
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/utils"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type RescueRequestService struct {
	requestRepo  interfaces.RescueRequestRepository
	userService  *UserService
	alertService *AlertService
	notifier     interfaces.VolunteerNotifier
	publisher    interfaces.EventPublisher
	metrics      *metrics.Metrics
	validator    *utils.ValidationService
}

func NewRescueRequestService(
	requestRepo interfaces.RescueRequestRepository,
	userService *UserService,
	alertService *AlertService,
	notifier interfaces.VolunteerNotifier,
	publisher interfaces.EventPublisher,
	m *metrics.Metrics,
) *RescueRequestService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &RescueRequestService{
		requestRepo:  requestRepo,
		userService:  userService,
		alertService: alertService,
		notifier:     notifier,
		publisher:    publisher,
		metrics:      m,
		validator:    utils.NewValidationService(),
	}
}

// Create files a PENDING request for citizen. Blank district and state fall back to the citizen's.
func (rs *RescueRequestService) Create(ctx context.Context, citizen *models.User, req models.CreateRescueRequest) (*models.RescueRequest, error) {
	if err := rs.validator.Validate(req); err != nil {
		return nil, err
	}
	urgency, _ := models.ParseUrgencyLevel(req.UrgencyLevel)

	numberOfPeople := req.NumberOfPeople
	if numberOfPeople == 0 {
		numberOfPeople = 1
	}

	now := time.Now()
	request := &models.RescueRequest{
		CitizenID:      citizen.ID,
		CitizenName:    citizen.Name,
		District:       utils.FirstNonEmpty(req.District, citizen.District),
		State:          utils.FirstNonEmpty(req.State, citizen.State),
		RescueType:     req.RescueType,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Urgency:        urgency,
		Description:    req.Description,
		NumberOfPeople: numberOfPeople,
		SpecialNeeds:   req.SpecialNeeds,
		Status:         models.RequestPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := rs.requestRepo.Create(ctx, request); err != nil {
		return nil, utils.NewDatabaseError("create rescue request", err)
	}

	rs.metrics.RescueRequestCreated(string(request.Urgency))
	rs.publisher.Publish(ctx, events.RescueRequestCreated, request.ID.Hex(), request)

	logrus.WithFields(logrus.Fields{
		"requestId": request.ID.Hex(),
		"district":  request.District,
		"urgency":   request.Urgency,
	}).Info("Rescue request created")

	return request, nil
}

// Get returns the request; citizens may only read their own.
func (rs *RescueRequestService) Get(ctx context.Context, id string, caller *models.User) (*models.RescueRequest, error) {
	request, err := rs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller != nil && caller.IsCitizen() && request.CitizenID != caller.ID {
		return nil, utils.ErrAccessDenied
	}
	return request, nil
}

func (rs *RescueRequestService) ListByDistrict(ctx context.Context, district string) ([]*models.RescueRequest, error) {
	return rs.list(ctx, interfaces.RescueRequestFilter{District: district})
}

// ListPendingByDistrict orders by urgency, most urgent first, then newest first.
func (rs *RescueRequestService) ListPendingByDistrict(ctx context.Context, district string) ([]*models.RescueRequest, error) {
	requests, err := rs.list(ctx, interfaces.RescueRequestFilter{District: district, Status: models.RequestPending})
	if err != nil {
		return nil, err
	}
	SortByUrgency(requests)
	return requests, nil
}

func SortByUrgency(requests []*models.RescueRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		ri, rj := requests[i].Urgency.Rank(), requests[j].Urgency.Rank()
		if ri != rj {
			return ri > rj
		}
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

func (rs *RescueRequestService) ListByCitizen(ctx context.Context, citizenID string) ([]*models.RescueRequest, error) {
	return rs.list(ctx, interfaces.RescueRequestFilter{CitizenID: citizenID})
}

func (rs *RescueRequestService) ListByOfficer(ctx context.Context, officerID string) ([]*models.RescueRequest, error) {
	return rs.list(ctx, interfaces.RescueRequestFilter{AssignedOfficerID: officerID})
}

func (rs *RescueRequestService) StatsByDistrict(ctx context.Context, district string) (*models.RescueRequestStats, error) {
	total, err := rs.requestRepo.Count(ctx, interfaces.RescueRequestFilter{District: district})
	if err != nil {
		return nil, utils.NewDatabaseError("count rescue requests", err)
	}
	pending, err := rs.requestRepo.Count(ctx, interfaces.RescueRequestFilter{District: district, Status: models.RequestPending})
	if err != nil {
		return nil, utils.NewDatabaseError("count rescue requests", err)
	}
	return &models.RescueRequestStats{TotalRequests: total, PendingRequests: pending}, nil
}

func (rs *RescueRequestService) CountAll(ctx context.Context) (int64, error) {
	count, err := rs.requestRepo.Count(ctx, interfaces.RescueRequestFilter{})
	if err != nil {
		return 0, utils.NewDatabaseError("count rescue requests", err)
	}
	return count, nil
}

// Assign takes the request on behalf of officer, then attaches teams and notifies
// volunteers when those keys are present, even if empty.
func (rs *RescueRequestService) Assign(ctx context.Context, id string, officer *models.User, req models.AssignRescueRequest) (*models.RescueRequest, error) {
	request, err := rs.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.AssignedOfficerID = utils.ObjectIDPtr(officer.ID)
	request.AssignedOfficerName = officer.Name
	request.Status = models.RequestAssigned
	request.RespondedAt = utils.TimePtr(now)

	if req.TeamIDs != nil {
		request.AssignedTeamIDs = *req.TeamIDs
	}

	var volunteers []*models.User
	if req.VolunteerIDs != nil {
		request.NotifiedVolunteers = *req.VolunteerIDs
		volunteers = rs.userService.ListUsersByIDs(ctx, *req.VolunteerIDs)
	}

	if err := rs.save(ctx, request); err != nil {
		return nil, err
	}

	rs.metrics.RescueStatusChanged(string(request.Status))
	rs.publisher.Publish(ctx, events.RescueRequestAssigned, request.ID.Hex(), request)

	if req.VolunteerIDs != nil {
		rs.notifyVolunteers(ctx, request, officer, volunteers)
	}

	logrus.WithFields(logrus.Fields{
		"requestId":  request.ID.Hex(),
		"officerId":  officer.ID.Hex(),
		"teams":      len(request.AssignedTeamIDs),
		"volunteers": len(request.NotifiedVolunteers),
	}).Info("Rescue request assigned")

	return request, nil
}

// notifyVolunteers emits the volunteer alert and queues SMS/push. Failures are logged only.
func (rs *RescueRequestService) notifyVolunteers(ctx context.Context, request *models.RescueRequest, officer *models.User, volunteers []*models.User) {
	message := fmt.Sprintf("Volunteer assistance requested for %s at %s. %s",
		request.RescueType, request.Location, request.Description)

	alert := &models.Alert{
		Title:         "URGENT: Rescue Assistance Needed",
		Message:       strings.TrimSpace(message),
		CreatedByID:   officer.ID,
		CreatedByName: officer.Name,
		Status:        models.AlertStatusSent,
		State:         request.State,
		District:      request.District,
	}
	if rs.alertService != nil {
		if err := rs.alertService.Emit(ctx, alert); err != nil {
			logrus.WithError(err).WithField("requestId", request.ID.Hex()).Warn("Failed to create volunteer alert")
		}
	}

	if rs.notifier != nil && len(volunteers) > 0 {
		if err := rs.notifier.NotifyVolunteers(request, volunteers); err != nil {
			logrus.WithError(err).WithField("requestId", request.ID.Hex()).Warn("Failed to queue volunteer notifications")
		}
	}
}

// UpdateStatus accepts any known status; COMPLETED records completedAt.
func (rs *RescueRequestService) UpdateStatus(ctx context.Context, id, status string) (*models.RescueRequest, error) {
	parsed, ok := models.ParseRequestStatus(status)
	if !ok {
		return nil, utils.NewInvalidStatusError("status", status)
	}

	request, err := rs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return request, rs.setStatus(ctx, request, parsed)
}

func (rs *RescueRequestService) setStatus(ctx context.Context, request *models.RescueRequest, status models.RequestStatus) error {
	request.Status = status
	if status == models.RequestCompleted {
		request.CompletedAt = utils.TimePtr(time.Now())
	}
	if err := rs.save(ctx, request); err != nil {
		return err
	}

	rs.metrics.RescueStatusChanged(string(status))
	rs.publisher.Publish(ctx, events.RescueRequestStatusChanged, request.ID.Hex(), map[string]interface{}{
		"id":     request.ID.Hex(),
		"status": status,
	})
	return nil
}

func (rs *RescueRequestService) Update(ctx context.Context, id string, req models.UpdateRescueRequest) (*models.RescueRequest, error) {
	if err := rs.validator.Validate(req); err != nil {
		return nil, err
	}

	request, err := rs.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RescueType != "" {
		request.RescueType = req.RescueType
	}
	if req.Location != "" {
		request.Location = req.Location
	}
	if req.Latitude != nil {
		request.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		request.Longitude = req.Longitude
	}
	if req.UrgencyLevel != "" {
		request.Urgency, _ = models.ParseUrgencyLevel(req.UrgencyLevel)
	}
	if req.Description != "" {
		request.Description = req.Description
	}
	if req.NumberOfPeople != nil {
		request.NumberOfPeople = *req.NumberOfPeople
	}
	if req.SpecialNeeds != "" {
		request.SpecialNeeds = req.SpecialNeeds
	}
	if req.Notes != "" {
		request.Notes = req.Notes
	}

	if err := rs.save(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (rs *RescueRequestService) Delete(ctx context.Context, id string) error {
	if err := rs.requestRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Rescue request", "delete rescue request")
	}
	return nil
}

func (rs *RescueRequestService) get(ctx context.Context, id string) (*models.RescueRequest, error) {
	request, err := rs.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Rescue request", "get rescue request")
	}
	return request, nil
}

func (rs *RescueRequestService) list(ctx context.Context, filter interfaces.RescueRequestFilter) ([]*models.RescueRequest, error) {
	requests, err := rs.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list rescue requests", err)
	}
	return requests, nil
}

func (rs *RescueRequestService) save(ctx context.Context, request *models.RescueRequest) error {
	request.UpdatedAt = time.Now()
	if err := rs.requestRepo.Update(ctx, request); err != nil {
		return utils.FromRepositoryError(err, "Rescue request", "update rescue request")
	}
	return nil
}
