package repositories

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskRepository struct {
	baseRepository[models.Task, *models.Task]
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{
		baseRepository: newBaseRepository[models.Task](db, "tasks", "createdAt"),
	}
}

func (tr *TaskRepository) List(ctx context.Context, f interfaces.TaskFilter) ([]*models.Task, error) {
	return tr.find(ctx, taskQuery(f))
}

func (tr *TaskRepository) Count(ctx context.Context, f interfaces.TaskFilter) (int64, error) {
	return tr.count(ctx, taskQuery(f))
}

func taskQuery(f interfaces.TaskFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "assignedToId", f.AssignedToID)
	objectIDFilter(filter, "disasterId", f.DisasterID)
	stringFilter(filter, "status", string(f.Status))
	return filter
}

type AlertRepository struct {
	baseRepository[models.Alert, *models.Alert]
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{
		baseRepository: newBaseRepository[models.Alert](db, "alerts", "broadcastTime"),
	}
}

func (ar *AlertRepository) List(ctx context.Context, f interfaces.AlertFilter) ([]*models.Alert, error) {
	return ar.find(ctx, alertQuery(f))
}

func (ar *AlertRepository) Count(ctx context.Context, f interfaces.AlertFilter) (int64, error) {
	return ar.count(ctx, alertQuery(f))
}

func alertQuery(f interfaces.AlertFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "createdById", f.CreatedByID)
	stringFilter(filter, "status", f.Status)
	return filter
}

type CitizenQueryRepository struct {
	baseRepository[models.CitizenQuery, *models.CitizenQuery]
}

func NewCitizenQueryRepository(db *mongo.Database) *CitizenQueryRepository {
	return &CitizenQueryRepository{
		baseRepository: newBaseRepository[models.CitizenQuery](db, "citizen_queries", "createdAt"),
	}
}

func (qr *CitizenQueryRepository) List(ctx context.Context, f interfaces.CitizenQueryFilter) ([]*models.CitizenQuery, error) {
	return qr.find(ctx, citizenQueryQuery(f))
}

func (qr *CitizenQueryRepository) Count(ctx context.Context, f interfaces.CitizenQueryFilter) (int64, error) {
	return qr.count(ctx, citizenQueryQuery(f))
}

func citizenQueryQuery(f interfaces.CitizenQueryFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "citizenId", f.CitizenID)
	objectIDFilter(filter, "assignedOfficerId", f.AssignedOfficerID)
	objectIDFilter(filter, "disasterId", f.DisasterID)
	stringFilter(filter, "status", string(f.Status))
	return filter
}
