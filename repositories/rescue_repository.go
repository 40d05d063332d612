package repositories

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RescueRequestRepository struct {
	baseRepository[models.RescueRequest, *models.RescueRequest]
}

func NewRescueRequestRepository(db *mongo.Database) *RescueRequestRepository {
	return &RescueRequestRepository{
		baseRepository: newBaseRepository[models.RescueRequest](db, "rescue_requests", "createdAt"),
	}
}

func (rr *RescueRequestRepository) List(ctx context.Context, f interfaces.RescueRequestFilter) ([]*models.RescueRequest, error) {
	return rr.find(ctx, rescueRequestQuery(f))
}

func (rr *RescueRequestRepository) Count(ctx context.Context, f interfaces.RescueRequestFilter) (int64, error) {
	return rr.count(ctx, rescueRequestQuery(f))
}

func rescueRequestQuery(f interfaces.RescueRequestFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "citizenId", f.CitizenID)
	objectIDFilter(filter, "assignedOfficerId", f.AssignedOfficerID)
	localityFilter(filter, "district", f.District)
	stringFilter(filter, "status", string(f.Status))
	return filter
}

type RescueOperationRepository struct {
	baseRepository[models.RescueOperation, *models.RescueOperation]
}

func NewRescueOperationRepository(db *mongo.Database) *RescueOperationRepository {
	return &RescueOperationRepository{
		baseRepository: newBaseRepository[models.RescueOperation](db, "rescue_operations", "createdAt"),
	}
}

func (or *RescueOperationRepository) List(ctx context.Context, f interfaces.RescueOperationFilter) ([]*models.RescueOperation, error) {
	return or.find(ctx, rescueOperationQuery(f))
}

func (or *RescueOperationRepository) Count(ctx context.Context, f interfaces.RescueOperationFilter) (int64, error) {
	return or.count(ctx, rescueOperationQuery(f))
}

func rescueOperationQuery(f interfaces.RescueOperationFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "rescueRequestId", f.RescueRequestID)
	localityFilter(filter, "district", f.District)
	stringFilter(filter, "status", string(f.Status))
	return filter
}
