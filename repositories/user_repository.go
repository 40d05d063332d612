package repositories

import (
	"alertsystem/interfaces"
	"alertsystem/models"
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	baseRepository[models.User, *models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		baseRepository: newBaseRepository[models.User](db, "users", "createdAt"),
	}
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return ur.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (ur *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := ur.collection.CountDocuments(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *UserRepository) List(ctx context.Context, f interfaces.UserFilter) ([]*models.User, error) {
	return ur.find(ctx, userQuery(f))
}

func (ur *UserRepository) Count(ctx context.Context, f interfaces.UserFilter) (int64, error) {
	return ur.count(ctx, userQuery(f))
}

func userQuery(f interfaces.UserFilter) bson.M {
	filter := bson.M{}
	stringFilter(filter, "role", string(f.Role))
	localityFilter(filter, "state", f.State)
	localityFilter(filter, "district", f.District)
	objectIDFilter(filter, "assignedAdminId", f.AssignedAdminID)
	if f.IsVolunteer != nil {
		filter["isVolunteer"] = *f.IsVolunteer
	}
	return filter
}
