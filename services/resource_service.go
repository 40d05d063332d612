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

type ResourceService struct {
	resourceRepo interfaces.ResourceRepository
	disasterRepo interfaces.DisasterRepository
	userRepo     interfaces.UserRepository
	validator    *utils.ValidationService
}

func NewResourceService(
	resourceRepo interfaces.ResourceRepository,
	disasterRepo interfaces.DisasterRepository,
	userRepo interfaces.UserRepository,
) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		disasterRepo: disasterRepo,
		userRepo:     userRepo,
		validator:    utils.NewValidationService(),
	}
}

// Create stocks a resource with its whole quantity available. Priority defaults to MEDIUM.
func (rs *ResourceService) Create(ctx context.Context, req models.ResourceRequest) (*models.Resource, error) {
	if err := rs.validator.Validate(req); err != nil {
		return nil, err
	}

	resourceType, _ := models.ParseResourceType(req.ResourceType)
	priority := models.ResourcePriorityMedium
	if req.Priority != "" {
		p, ok := models.ParseResourcePriority(req.Priority)
		if !ok {
			return nil, utils.NewInvalidStatusError("priority", req.Priority)
		}
		priority = p
	}

	now := time.Now()
	resource := &models.Resource{
		ResourceType:      resourceType,
		AvailableQuantity: req.TotalQuantity,
		Status:            models.ResourceAvailable,
		Priority:          priority,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := rs.apply(ctx, resource, req); err != nil {
		return nil, err
	}

	if err := rs.resourceRepo.Create(ctx, resource); err != nil {
		return nil, utils.NewDatabaseError("create resource", err)
	}

	logrus.WithFields(logrus.Fields{
		"resourceId": resource.ID.Hex(),
		"type":       resource.ResourceType,
		"quantity":   resource.TotalQuantity,
	}).Info("Resource created")

	return resource, nil
}

// Update replaces the descriptive fields. Type, status and available quantity are kept.
func (rs *ResourceService) Update(ctx context.Context, id string, req models.ResourceRequest) (*models.Resource, error) {
	if err := rs.validator.Validate(req); err != nil {
		return nil, err
	}

	resource, err := rs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rs.apply(ctx, resource, req); err != nil {
		return nil, err
	}

	if err := rs.save(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (rs *ResourceService) apply(ctx context.Context, resource *models.Resource, req models.ResourceRequest) error {
	resource.ResourceName = strings.TrimSpace(req.ResourceName)
	resource.Description = req.Description
	resource.TotalQuantity = req.TotalQuantity
	resource.Unit = req.Unit
	resource.Location = req.Location
	resource.Address = req.Address
	resource.District = req.District
	resource.State = req.State
	resource.Pincode = req.Pincode
	resource.Latitude = req.Latitude
	resource.Longitude = req.Longitude
	resource.Manager = req.Manager
	resource.PhoneNumber = req.PhoneNumber
	resource.Email = req.Email

	if req.DisasterID != "" {
		disaster, err := rs.disasterRepo.GetByID(ctx, req.DisasterID)
		if err != nil {
			return utils.FromRepositoryError(err, "Disaster", "get disaster")
		}
		resource.DisasterID = utils.ObjectIDPtr(disaster.ID)
	}

	if req.AssignedOfficerID != "" {
		officer, err := rs.userRepo.GetByID(ctx, req.AssignedOfficerID)
		if err != nil {
			return utils.FromRepositoryError(err, "Officer", "get officer")
		}
		if !officer.IsOfficer() {
			return utils.NewNotOfficerError()
		}
		resource.AssignedOfficerID = utils.ObjectIDPtr(officer.ID)
	}
	return nil
}

// UpdateQuantity sets the available quantity. Zero or less depletes the
// resource; restocking a DEPLETED resource makes it AVAILABLE again.
func (rs *ResourceService) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.Resource, error) {
	resource, err := rs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resource.AvailableQuantity = quantity
	if quantity <= 0 {
		resource.Status = models.ResourceDepleted
	} else if resource.Status == models.ResourceDepleted {
		resource.Status = models.ResourceAvailable
	}

	if err := rs.save(ctx, resource); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"resourceId": resource.ID.Hex(),
		"available":  quantity,
		"status":     resource.Status,
	}).Info("Resource quantity updated")

	return resource, nil
}

func (rs *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := rs.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.FromRepositoryError(err, "Resource", "get resource")
	}
	return resource, nil
}

func (rs *ResourceService) ListAll(ctx context.Context) ([]*models.Resource, error) {
	return rs.list(ctx, interfaces.ResourceFilter{})
}

func (rs *ResourceService) ListByType(ctx context.Context, resourceType string) ([]*models.Resource, error) {
	parsed, ok := models.ParseResourceType(resourceType)
	if !ok {
		return nil, utils.NewInvalidStatusError("resource type", resourceType)
	}
	return rs.list(ctx, interfaces.ResourceFilter{Type: parsed})
}

func (rs *ResourceService) ListByDisaster(ctx context.Context, disasterID string) ([]*models.Resource, error) {
	if _, err := rs.disasterRepo.GetByID(ctx, disasterID); err != nil {
		return nil, utils.FromRepositoryError(err, "Disaster", "get disaster")
	}
	return rs.list(ctx, interfaces.ResourceFilter{DisasterID: disasterID})
}

func (rs *ResourceService) ListAvailable(ctx context.Context) ([]*models.Resource, error) {
	return rs.list(ctx, interfaces.ResourceFilter{Status: models.ResourceAvailable})
}

func (rs *ResourceService) ListByState(ctx context.Context, state string) ([]*models.Resource, error) {
	return rs.list(ctx, interfaces.ResourceFilter{State: state})
}

func (rs *ResourceService) Delete(ctx context.Context, id string) error {
	if err := rs.resourceRepo.Delete(ctx, id); err != nil {
		return utils.FromRepositoryError(err, "Resource", "delete resource")
	}
	return nil
}

func (rs *ResourceService) list(ctx context.Context, filter interfaces.ResourceFilter) ([]*models.Resource, error) {
	resources, err := rs.resourceRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewDatabaseError("list resources", err)
	}
	return resources, nil
}

func (rs *ResourceService) save(ctx context.Context, resource *models.Resource) error {
	resource.UpdatedAt = time.Now()
	if err := rs.resourceRepo.Update(ctx, resource); err != nil {
		return utils.FromRepositoryError(err, "Resource", "update resource")
	}
	return nil
}
