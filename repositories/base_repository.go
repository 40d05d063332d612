package repositories

import (
	"alertsystem/interfaces"
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseRepository holds the CRUD operations shared by every collection.
// Entity repositories embed it and add their filter translation.
type baseRepository[T any, PT interfaces.DocumentPtr[T]] struct {
	collection *mongo.Collection
	sortField  string
}

func newBaseRepository[T any, PT interfaces.DocumentPtr[T]](db *mongo.Database, name, sortField string) baseRepository[T, PT] {
	return baseRepository[T, PT]{
		collection: db.Collection(name),
		sortField:  sortField,
	}
}

func (r *baseRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	p := PT(doc)
	if p.GetID().IsZero() {
		p.SetID(primitive.NewObjectID())
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return interfaces.ErrDuplicate
	}
	return err
}

func (r *baseRepository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, interfaces.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *baseRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	id := PT(doc).GetID()
	if id.IsZero() {
		return interfaces.ErrInvalidID
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return err
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *baseRepository[T, PT]) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return interfaces.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *baseRepository[T, PT]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *baseRepository[T, PT]) find(ctx context.Context, filter bson.M) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: r.sortField, Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, &doc)
	}
	return results, cursor.Err()
}

func (r *baseRepository[T, PT]) count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

// objectIDFilter sets key to the parsed id. An unparsable id matches nothing.
func objectIDFilter(filter bson.M, key, id string) {
	if id == "" {
		return
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		filter[key] = primitive.NilObjectID
		return
	}
	filter[key] = objectID
}

func stringFilter(filter bson.M, key, value string) {
	if value != "" {
		filter[key] = value
	}
}

// localityFilter matches state, district and region names ignoring case.
func localityFilter(filter bson.M, key, value string) {
	if value != "" {
		filter[key] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
	}
}
