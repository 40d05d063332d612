package repositories

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShelterRepository struct {
	baseRepository[models.Shelter, *models.Shelter]
}

func NewShelterRepository(db *mongo.Database) *ShelterRepository {
	return &ShelterRepository{
		baseRepository: newBaseRepository[models.Shelter](db, "shelters", "createdAt"),
	}
}

func (sr *ShelterRepository) List(ctx context.Context, f interfaces.ShelterFilter) ([]*models.Shelter, error) {
	return sr.find(ctx, shelterQuery(f))
}

func (sr *ShelterRepository) Count(ctx context.Context, f interfaces.ShelterFilter) (int64, error) {
	return sr.count(ctx, shelterQuery(f))
}

func shelterQuery(f interfaces.ShelterFilter) bson.M {
	filter := bson.M{}
	localityFilter(filter, "state", f.State)
	localityFilter(filter, "district", f.District)
	objectIDFilter(filter, "disasterId", f.DisasterID)
	stringFilter(filter, "status", string(f.Status))
	return filter
}

type ResourceRepository struct {
	baseRepository[models.Resource, *models.Resource]
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{
		baseRepository: newBaseRepository[models.Resource](db, "resources", "createdAt"),
	}
}

func (rr *ResourceRepository) List(ctx context.Context, f interfaces.ResourceFilter) ([]*models.Resource, error) {
	return rr.find(ctx, resourceQuery(f))
}

func (rr *ResourceRepository) Count(ctx context.Context, f interfaces.ResourceFilter) (int64, error) {
	return rr.count(ctx, resourceQuery(f))
}

func resourceQuery(f interfaces.ResourceFilter) bson.M {
	filter := bson.M{}
	stringFilter(filter, "resourceType", string(f.Type))
	objectIDFilter(filter, "disasterId", f.DisasterID)
	localityFilter(filter, "state", f.State)
	stringFilter(filter, "status", string(f.Status))
	return filter
}

type EmergencyTeamRepository struct {
	baseRepository[models.EmergencyTeam, *models.EmergencyTeam]
}

func NewEmergencyTeamRepository(db *mongo.Database) *EmergencyTeamRepository {
	return &EmergencyTeamRepository{
		baseRepository: newBaseRepository[models.EmergencyTeam](db, "emergency_teams", "createdAt"),
	}
}

func (tr *EmergencyTeamRepository) List(ctx context.Context, f interfaces.EmergencyTeamFilter) ([]*models.EmergencyTeam, error) {
	return tr.find(ctx, emergencyTeamQuery(f))
}

func (tr *EmergencyTeamRepository) Count(ctx context.Context, f interfaces.EmergencyTeamFilter) (int64, error) {
	return tr.count(ctx, emergencyTeamQuery(f))
}

// CreateMany inserts teams in one round trip, assigning ids first.
func (tr *EmergencyTeamRepository) CreateMany(ctx context.Context, teams []*models.EmergencyTeam) error {
	if len(teams) == 0 {
		return nil
	}
	docs := make([]interface{}, len(teams))
	for i, team := range teams {
		if team.ID.IsZero() {
			team.SetID(primitive.NewObjectID())
		}
		docs[i] = team
	}
	_, err := tr.collection.InsertMany(ctx, docs)
	return err
}

func emergencyTeamQuery(f interfaces.EmergencyTeamFilter) bson.M {
	filter := bson.M{}
	localityFilter(filter, "district", f.District)
	stringFilter(filter, "teamType", string(f.Type))
	stringFilter(filter, "status", string(f.Status))
	return filter
}
