package repositories

import (
	"alertsystem/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoRepositories wires every collection-backed repository.
func NewMongoRepositories(db *mongo.Database) *interfaces.Repositories {
	return &interfaces.Repositories{
		Users:            NewUserRepository(db),
		RescueRequests:   NewRescueRequestRepository(db),
		RescueOperations: NewRescueOperationRepository(db),
		Tasks:            NewTaskRepository(db),
		Alerts:           NewAlertRepository(db),
		Queries:          NewCitizenQueryRepository(db),
		Shelters:         NewShelterRepository(db),
		Resources:        NewResourceRepository(db),
		Disasters:        NewDisasterRepository(db),
		AffectedAreas:    NewAffectedAreaRepository(db),
		Teams:            NewEmergencyTeamRepository(db),
		Reports:          NewReportRepository(db),
	}
}
