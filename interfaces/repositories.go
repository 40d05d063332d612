package interfaces

import (
	"alertsystem/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
	ErrInvalidID = errors.New("invalid id")
)

// Document is implemented by every persisted entity.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
}

// DocumentPtr constrains a type parameter to a pointer to a Document struct.
type DocumentPtr[T any] interface {
	*T
	Document
}

// Repository is the common storage contract. List results are newest first.
type Repository[T any, F any] interface {
	Create(ctx context.Context, doc *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter F) ([]*T, error)
	Count(ctx context.Context, filter F) (int64, error)
}

// Filters: zero-valued fields do not constrain the result.

type UserFilter struct {
	Role            models.Role
	State           string
	District        string
	AssignedAdminID string
	IsVolunteer     *bool
}

type RescueRequestFilter struct {
	CitizenID         string
	AssignedOfficerID string
	District          string
	Status            models.RequestStatus
}

type RescueOperationFilter struct {
	RescueRequestID string
	District        string
	Status          models.OperationStatus
}

type TaskFilter struct {
	AssignedToID string
	DisasterID   string
	Status       models.TaskStatus
}

type AlertFilter struct {
	CreatedByID string
	Status      string
}

type CitizenQueryFilter struct {
	CitizenID         string
	AssignedOfficerID string
	DisasterID        string
	Status            models.QueryStatus
}

type ShelterFilter struct {
	State      string
	District   string
	DisasterID string
	Status     models.ShelterStatus
}

type ResourceFilter struct {
	Type       models.ResourceType
	DisasterID string
	State      string
	Status     models.ResourceStatus
}

type DisasterFilter struct {
	Status string
	Region string
}

type AffectedAreaFilter struct {
	DisasterID string
	State      string
	District   string
}

type EmergencyTeamFilter struct {
	District string
	Type     models.TeamType
	Status   models.TeamStatus
}

type ReportFilter struct {
	DisasterID  string
	ResponderID string
}

type UserRepository interface {
	Repository[models.User, UserFilter]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type RescueRequestRepository interface {
	Repository[models.RescueRequest, RescueRequestFilter]
}

type RescueOperationRepository interface {
	Repository[models.RescueOperation, RescueOperationFilter]
}

type TaskRepository interface {
	Repository[models.Task, TaskFilter]
}

type AlertRepository interface {
	Repository[models.Alert, AlertFilter]
}

type CitizenQueryRepository interface {
	Repository[models.CitizenQuery, CitizenQueryFilter]
}

type ShelterRepository interface {
	Repository[models.Shelter, ShelterFilter]
}

type ResourceRepository interface {
	Repository[models.Resource, ResourceFilter]
}

type DisasterRepository interface {
	Repository[models.Disaster, DisasterFilter]
}

type AffectedAreaRepository interface {
	Repository[models.AffectedArea, AffectedAreaFilter]
}

type EmergencyTeamRepository interface {
	Repository[models.EmergencyTeam, EmergencyTeamFilter]
	CreateMany(ctx context.Context, teams []*models.EmergencyTeam) error
}

type ReportRepository interface {
	Repository[models.Report, ReportFilter]
}

// Repositories bundles every store the services depend on.
type Repositories struct {
	Users            UserRepository
	RescueRequests   RescueRequestRepository
	RescueOperations RescueOperationRepository
	Tasks            TaskRepository
	Alerts           AlertRepository
	Queries          CitizenQueryRepository
	Shelters         ShelterRepository
	Resources        ResourceRepository
	Disasters        DisasterRepository
	AffectedAreas    AffectedAreaRepository
	Teams            EmergencyTeamRepository
	Reports          ReportRepository
}
