package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
}

// migrationRecord tracks applied migrations
type migrationRecord struct {
	Version     int       `bson:"version"`
	Description string    `bson:"description"`
	AppliedAt   time.Time `bson:"appliedAt"`
}

// migrations contains all database migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Create users collection with indexes",
		Up:          createUsersCollection,
	},
	{
		Version:     2,
		Description: "Create rescue requests and operations collections with indexes",
		Up:          createRescueCollections,
	},
	{
		Version:     3,
		Description: "Create tasks collection with indexes",
		Up:          createTasksCollection,
	},
	{
		Version:     4,
		Description: "Create alerts collection with indexes",
		Up:          createAlertsCollection,
	},
	{
		Version:     5,
		Description: "Create citizen queries collection with indexes",
		Up:          createCitizenQueriesCollection,
	},
	{
		Version:     6,
		Description: "Create shelters and resources collections with indexes",
		Up:          createReliefCollections,
	},
	{
		Version:     7,
		Description: "Create disasters, affected areas and reports collections with indexes",
		Up:          createDisasterCollections,
	},
	{
		Version:     8,
		Description: "Create emergency teams collection with indexes",
		Up:          createEmergencyTeamsCollection,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsCol := db.Collection("migrations")

	currentVersion := getCurrentMigrationVersion(ctx, migrationsCol)
	logrus.Infof("📋 Current migration version: %d", currentVersion)

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logrus.Infof("🔄 Running migration %d: %s", migration.Version, migration.Description)

		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err := migrationsCol.InsertOne(ctx, migrationRecord{
			Version:     migration.Version,
			Description: migration.Description,
			AppliedAt:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		logrus.Infof("✅ Migration %d completed", migration.Version)
	}

	return nil
}

// getCurrentMigrationVersion returns the current migration version
func getCurrentMigrationVersion(ctx context.Context, col *mongo.Collection) int {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	var record migrationRecord
	err := col.FindOne(ctx, bson.D{}, opts).Decode(&record)
	if err != nil {
		return 0 // No migrations applied yet
	}
	return record.Version
}

func createIndexes(db *mongo.Database, collection string, indexes []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create %s indexes: %w", collection, err)
	}
	return nil
}

func ascending(keys ...string) mongo.IndexModel {
	doc := make(bson.D, 0, len(keys))
	for _, key := range keys {
		doc = append(doc, bson.E{Key: key, Value: 1})
	}
	return mongo.IndexModel{Keys: doc}
}

// Individual migration functions

func createUsersCollection(db *mongo.Database) error {
	return createIndexes(db, "users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		ascending("role", "district"),
		ascending("assignedAdminId"),
		{
			Keys:    bson.D{{Key: "district", Value: 1}, {Key: "isVolunteer", Value: 1}},
			Options: options.Index().SetName("volunteers_by_district"),
		},
	})
}

func createRescueCollections(db *mongo.Database) error {
	err := createIndexes(db, "rescue_requests", []mongo.IndexModel{
		ascending("district", "status"),
		ascending("citizenId"),
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	return createIndexes(db, "rescue_operations", []mongo.IndexModel{
		ascending("district", "status"),
		ascending("rescueRequestId"),
	})
}

func createTasksCollection(db *mongo.Database) error {
	return createIndexes(db, "tasks", []mongo.IndexModel{
		ascending("assignedToId", "status"),
		ascending("disasterId"),
		ascending("createdById"),
	})
}

func createAlertsCollection(db *mongo.Database) error {
	return createIndexes(db, "alerts", []mongo.IndexModel{
		ascending("status"),
		ascending("disasterId"),
		{
			Keys: bson.D{{Key: "broadcastTime", Value: -1}},
		},
	})
}

func createCitizenQueriesCollection(db *mongo.Database) error {
	return createIndexes(db, "citizen_queries", []mongo.IndexModel{
		ascending("citizenId"),
		ascending("assignedOfficerId"),
		ascending("status"),
		ascending("disasterId"),
	})
}

func createReliefCollections(db *mongo.Database) error {
	err := createIndexes(db, "shelters", []mongo.IndexModel{
		ascending("state", "district", "status"),
		ascending("disasterId"),
	})
	if err != nil {
		return err
	}

	return createIndexes(db, "resources", []mongo.IndexModel{
		ascending("resourceType"),
		ascending("state", "status"),
		ascending("disasterId"),
	})
}

func createDisasterCollections(db *mongo.Database) error {
	err := createIndexes(db, "disasters", []mongo.IndexModel{
		ascending("status"),
		ascending("region"),
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	err = createIndexes(db, "affected_areas", []mongo.IndexModel{
		ascending("disasterId"),
		ascending("state", "district"),
	})
	if err != nil {
		return err
	}

	return createIndexes(db, "reports", []mongo.IndexModel{
		ascending("disasterId"),
		ascending("responderId"),
	})
}

func createEmergencyTeamsCollection(db *mongo.Database) error {
	return createIndexes(db, "emergency_teams", []mongo.IndexModel{
		ascending("district", "status"),
		ascending("district", "teamType"),
	})
}
