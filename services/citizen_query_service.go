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

// CitizenQueryService handles questions citizens raise with officers.
type CitizenQueryService struct {
	queryRepo    interfaces.CitizenQueryRepository
	userRepo     interfaces.UserRepository
	disasterRepo interfaces.DisasterRepository
	validator    *utils.ValidationService
}

func NewCitizenQueryService(
	queryRepo interfaces.CitizenQueryRepository,
	userRepo interfaces.UserRepository,
	disasterRepo interfaces.DisasterRepository,
) *CitizenQueryService {
	return &CitizenQueryService{
		queryRepo:    queryRepo,
		userRepo:     userRepo,
		disasterRepo: disasterRepo,
		validator:    utils.NewValidationService(),
	}
}

func (qs *CitizenQueryService) Create(ctx context.Context, citizen *models.User, req models.CreateQueryRequest) (*models.CitizenQuery, error) {
	if err := qs.validator.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	query := &models.CitizenQuery{
		CitizenID:     citizen.ID,
		CitizenName:   citizen.Name,
		Subject:       strings.TrimSpace(req.Subject),
		Message:       req.Message,
		Category:      req.Category,
		Location:      req.Location,
		District:      utils.FirstNonEmpty(req.District, citizen.District),
		State:         utils.FirstNonEmpty(req.State, citizen.State),
		Status:        models.QueryOpen,
		PriorityLevel: models.DefaultQueryPriority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.DisasterID != "" {
		disaster, err := qs.disasterRepo.GetByID(ctx, req.DisasterID)
		if err != nil {
			return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
		}
		query.DisasterID = utils.ObjectIDPtr(disaster.ID)
	}

	if err := qs.queryRepo.Create(ctx, query); err != nil {
		return nil, utils.NewDatabaseError("create query", err)
	}

	logrus.WithFields(logrus.Fields{
		"queryId":   query.ID.Hex(),
		"citizenId": citizen.ID.Hex(),
	}).Info("Citizen query created")

	return query, nil
}

// Get returns the query; citizens may only read their own.
func (qs *CitizenQueryService) Get(ctx context.Context, id string, caller *models.User) (*models.CitizenQuery, error) {
	query, err := qs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller != nil && caller.IsCitizen() && query.CitizenID != caller.ID {
		return nil, utils.ErrAccessDenied
	}
	return query, nil
}

func (qs *CitizenQueryService) ListByCitizen(ctx context.Context, citizenID string) ([]*models.CitizenQuery, error) {
	return qs.list(ctx, interfaces.CitizenQueryFilter{CitizenID: citizenID})
}

func (qs *CitizenQueryService) ListByOfficer(ctx context.Context, officerID string) ([]*models.CitizenQuery, error) {
	return qs.list(ctx, interfaces.CitizenQueryFilter{AssignedOfficerID: officerID})
}

func (qs *CitizenQueryService) ListByDisaster(ctx context.Context, disasterID string) ([]*models.CitizenQuery, error) {
	return qs.list(ctx, interfaces.CitizenQueryFilter{DisasterID: disasterID})
}

func (qs *CitizenQueryService) ListOpen(ctx context.Context) ([]*models.CitizenQuery, error) {
	return qs.list(ctx, interfaces.CitizenQueryFilter{Status: models.QueryOpen})
}

func (qs *CitizenQueryService) ListAll(ctx context.Context) ([]*models.CitizenQuery, error) {
	return qs.list(ctx, interfaces.CitizenQueryFilter{})
}

// Assign hands the query to an officer and marks it ASSIGNED.
func (qs *CitizenQueryService) Assign(ctx context.Context, id, officerID string) (*models.CitizenQuery, error) {
	query, err := qs.get(ctx, id)
	if err != nil {
		return nil, err
	}

	officer, err := qs.userRepo.GetByID(ctx, officerID)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Officer", "get officer")
	}
	if !officer.IsOfficer() {
		return nil, utils.NewInvalidRoleError("User is not an officer")
	}

	query.AssignedOfficerID = utils.ObjectIDPtr(officer.ID)
	query.AssignedOfficerName = officer.Name
	query.Status = models.QueryAssigned

	if err := qs.save(ctx, query); err != nil {
		return nil, err
	}
	return query, nil
}

// Respond records the answer and resolves the query.
func (qs *CitizenQueryService) Respond(ctx context.Context, id, response string) (*models.CitizenQuery, error) {
	if strings.TrimSpace(response) == "" {
		return nil, utils.NewBadRequestError("Response is required")
	}

	query, err := qs.get(ctx, id)
	if err != nil {
		return nil, err
	}

	query.Response = response
	query.ResponseDate = utils.TimePtr(time.Now())
	query.Status = models.QueryResolved

	if err := qs.save(ctx, query); err != nil {
		return nil, err
	}
	return query, nil
}

func (qs *CitizenQueryService) Delete(ctx context.Context, id string) error {
	if err := qs.queryRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Query", "delete query")
	}
	return nil
}

func (qs *CitizenQueryService) get(ctx context.Context, id string) (*models.CitizenQuery, error) {
	query, err := qs.queryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Query", "get query")
	}
	return query, nil
}

func (qs *CitizenQueryService) list(ctx context.Context, filter interfaces.CitizenQueryFilter) ([]*models.CitizenQuery, error) {
	queries, err := qs.queryRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list queries", err)
	}
	return queries, nil
}

func (qs *CitizenQueryService) save(ctx context.Context, query *models.CitizenQuery) error {
	query.UpdatedAt = time.Now()
	if err := qs.queryRepo.Update(ctx, query); err != nil {
		return utils.FromRepositoryError(err, "Query", "update query")
	}
	return nil
}
