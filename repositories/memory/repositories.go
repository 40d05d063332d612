package memory

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"
	"strings"
	"sync"
)

type UserRepository struct {
	*store[models.User, *models.User, interfaces.UserFilter]
	emailMu sync.Mutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{store: newStore[models.User, *models.User](matchUser)}
}

// Create enforces the unique email constraint the Mongo index provides.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.emailMu.Lock()
	defer r.emailMu.Unlock()

	exists, _ := r.ExistsByEmail(ctx, user.Email)
	if exists {
		return interfaces.ErrDuplicate
	}
	return r.store.Create(ctx, user)
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, ok := r.find(func(u *models.User) bool { return u.Email == email })
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func matchUser(f interfaces.UserFilter, u *models.User) bool {
	if f.IsVolunteer != nil && u.IsVolunteer != *f.IsVolunteer {
		return false
	}
	var adminID string
	if u.AssignedAdminID != nil {
		adminID = u.AssignedAdminID.Hex()
	}
	return matchString(string(f.Role), string(u.Role)) &&
		matchFold(f.State, u.State) &&
		matchFold(f.District, u.District) &&
		matchString(f.AssignedAdminID, adminID)
}

type RescueRequestRepository struct {
	*store[models.RescueRequest, *models.RescueRequest, interfaces.RescueRequestFilter]
}

func NewRescueRequestRepository() *RescueRequestRepository {
	return &RescueRequestRepository{newStore[models.RescueRequest, *models.RescueRequest](
		func(f interfaces.RescueRequestFilter, r *models.RescueRequest) bool {
			return matchID(f.CitizenID, r.CitizenID) &&
				matchOptionalID(f.AssignedOfficerID, r.AssignedOfficerID) &&
				matchFold(f.District, r.District) &&
				matchString(string(f.Status), string(r.Status))
		})}
}

type RescueOperationRepository struct {
	*store[models.RescueOperation, *models.RescueOperation, interfaces.RescueOperationFilter]
}

func NewRescueOperationRepository() *RescueOperationRepository {
	return &RescueOperationRepository{newStore[models.RescueOperation, *models.RescueOperation](
		func(f interfaces.RescueOperationFilter, o *models.RescueOperation) bool {
			return matchID(f.RescueRequestID, o.RescueRequestID) &&
				matchFold(f.District, o.District) &&
				matchString(string(f.Status), string(o.Status))
		})}
}

type TaskRepository struct {
	*store[models.Task, *models.Task, interfaces.TaskFilter]
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{newStore[models.Task, *models.Task](
		func(f interfaces.TaskFilter, t *models.Task) bool {
			return matchID(f.AssignedToID, t.AssignedToID) &&
				matchOptionalID(f.DisasterID, t.DisasterID) &&
				matchString(string(f.Status), string(t.Status))
		})}
}

type AlertRepository struct {
	*store[models.Alert, *models.Alert, interfaces.AlertFilter]
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{newStore[models.Alert, *models.Alert](
		func(f interfaces.AlertFilter, a *models.Alert) bool {
			return matchID(f.CreatedByID, a.CreatedByID) && matchString(f.Status, a.Status)
		})}
}

type CitizenQueryRepository struct {
	*store[models.CitizenQuery, *models.CitizenQuery, interfaces.CitizenQueryFilter]
}

func NewCitizenQueryRepository() *CitizenQueryRepository {
	return &CitizenQueryRepository{newStore[models.CitizenQuery, *models.CitizenQuery](
		func(f interfaces.CitizenQueryFilter, q *models.CitizenQuery) bool {
			return matchID(f.CitizenID, q.CitizenID) &&
				matchOptionalID(f.AssignedOfficerID, q.AssignedOfficerID) &&
				matchOptionalID(f.DisasterID, q.DisasterID) &&
				matchString(string(f.Status), string(q.Status))
		})}
}

type ShelterRepository struct {
	*store[models.Shelter, *models.Shelter, interfaces.ShelterFilter]
}

func NewShelterRepository() *ShelterRepository {
	return &ShelterRepository{newStore[models.Shelter, *models.Shelter](
		func(f interfaces.ShelterFilter, s *models.Shelter) bool {
			return matchFold(f.State, s.State) &&
				matchFold(f.District, s.District) &&
				matchOptionalID(f.DisasterID, s.DisasterID) &&
				matchString(string(f.Status), string(s.Status))
		})}
}

type ResourceRepository struct {
	*store[models.Resource, *models.Resource, interfaces.ResourceFilter]
}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{newStore[models.Resource, *models.Resource](
		func(f interfaces.ResourceFilter, r *models.Resource) bool {
			return matchString(string(f.Type), string(r.ResourceType)) &&
				matchOptionalID(f.DisasterID, r.DisasterID) &&
				matchFold(f.State, r.State) &&
				matchString(string(f.Status), string(r.Status))
		})}
}

type DisasterRepository struct {
	*store[models.Disaster, *models.Disaster, interfaces.DisasterFilter]
}

func NewDisasterRepository() *DisasterRepository {
	return &DisasterRepository{newStore[models.Disaster, *models.Disaster](
		func(f interfaces.DisasterFilter, d *models.Disaster) bool {
			return matchString(f.Status, d.Status) && matchFold(f.Region, d.Region)
		})}
}

type AffectedAreaRepository struct {
	*store[models.AffectedArea, *models.AffectedArea, interfaces.AffectedAreaFilter]
}

func NewAffectedAreaRepository() *AffectedAreaRepository {
	return &AffectedAreaRepository{newStore[models.AffectedArea, *models.AffectedArea](
		func(f interfaces.AffectedAreaFilter, a *models.AffectedArea) bool {
			return matchID(f.DisasterID, a.DisasterID) &&
				matchFold(f.State, a.State) &&
				matchFold(f.District, a.District)
		})}
}

type EmergencyTeamRepository struct {
	*store[models.EmergencyTeam, *models.EmergencyTeam, interfaces.EmergencyTeamFilter]
}

func NewEmergencyTeamRepository() *EmergencyTeamRepository {
	return &EmergencyTeamRepository{newStore[models.EmergencyTeam, *models.EmergencyTeam](
		func(f interfaces.EmergencyTeamFilter, t *models.EmergencyTeam) bool {
			return matchFold(f.District, t.District) &&
				matchString(string(f.Type), string(t.TeamType)) &&
				matchString(string(f.Status), string(t.Status))
		})}
}

func (r *EmergencyTeamRepository) CreateMany(ctx context.Context, teams []*models.EmergencyTeam) error {
	for _, team := range teams {
		if err := r.Create(ctx, team); err != nil {
			return err
		}
	}
	return nil
}

type ReportRepository struct {
	*store[models.Report, *models.Report, interfaces.ReportFilter]
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{newStore[models.Report, *models.Report](
		func(f interfaces.ReportFilter, r *models.Report) bool {
			return matchID(f.DisasterID, r.DisasterID) && matchID(f.ResponderID, r.ResponderID)
		})}
}

// NewRepositories returns an empty set of in-memory repositories.
func NewRepositories() *interfaces.Repositories {
	return &interfaces.Repositories{
		Users:            NewUserRepository(),
		RescueRequests:   NewRescueRequestRepository(),
		RescueOperations: NewRescueOperationRepository(),
		Tasks:            NewTaskRepository(),
		Alerts:           NewAlertRepository(),
		Queries:          NewCitizenQueryRepository(),
		Shelters:         NewShelterRepository(),
		Resources:        NewResourceRepository(),
		Disasters:        NewDisasterRepository(),
		AffectedAreas:    NewAffectedAreaRepository(),
		Teams:            NewEmergencyTeamRepository(),
		Reports:          NewReportRepository(),
	}
}
