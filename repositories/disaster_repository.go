package repositories

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DisasterRepository struct {
	baseRepository[models.Disaster, *models.Disaster]
}

func NewDisasterRepository(db *mongo.Database) *DisasterRepository {
	return &DisasterRepository{
		baseRepository: newBaseRepository[models.Disaster](db, "disasters", "timestamp"),
	}
}

func (dr *DisasterRepository) List(ctx context.Context, f interfaces.DisasterFilter) ([]*models.Disaster, error) {
	return dr.find(ctx, disasterQuery(f))
}

func (dr *DisasterRepository) Count(ctx context.Context, f interfaces.DisasterFilter) (int64, error) {
	return dr.count(ctx, disasterQuery(f))
}

func disasterQuery(f interfaces.DisasterFilter) bson.M {
	filter := bson.M{}
	stringFilter(filter, "status", f.Status)
	localityFilter(filter, "region", f.Region)
	return filter
}

type AffectedAreaRepository struct {
	baseRepository[models.AffectedArea, *models.AffectedArea]
}

func NewAffectedAreaRepository(db *mongo.Database) *AffectedAreaRepository {
	return &AffectedAreaRepository{
		baseRepository: newBaseRepository[models.AffectedArea](db, "affected_areas", "createdAt"),
	}
}

func (ar *AffectedAreaRepository) List(ctx context.Context, f interfaces.AffectedAreaFilter) ([]*models.AffectedArea, error) {
	return ar.find(ctx, affectedAreaQuery(f))
}

func (ar *AffectedAreaRepository) Count(ctx context.Context, f interfaces.AffectedAreaFilter) (int64, error) {
	return ar.count(ctx, affectedAreaQuery(f))
}

func affectedAreaQuery(f interfaces.AffectedAreaFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "disasterId", f.DisasterID)
	localityFilter(filter, "state", f.State)
	localityFilter(filter, "district", f.District)
	return filter
}

type ReportRepository struct {
	baseRepository[models.Report, *models.Report]
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		baseRepository: newBaseRepository[models.Report](db, "reports", "submittedAt"),
	}
}

func (rr *ReportRepository) List(ctx context.Context, f interfaces.ReportFilter) ([]*models.Report, error) {
	return rr.find(ctx, reportQuery(f))
}

func (rr *ReportRepository) Count(ctx context.Context, f interfaces.ReportFilter) (int64, error) {
	return rr.count(ctx, reportQuery(f))
}

func reportQuery(f interfaces.ReportFilter) bson.M {
	filter := bson.M{}
	objectIDFilter(filter, "disasterId", f.DisasterID)
	objectIDFilter(filter, "responderId", f.ResponderID)
	return filter
}
