package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DisasterStatusActive = "Active"

type Disaster struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type        string             `json:"type" bson:"type"`
	Severity    string             `json:"severity,omitempty" bson:"severity,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Region      string             `json:"region,omitempty" bson:"region,omitempty"`
	District    string             `json:"district,omitempty" bson:"district,omitempty"`
	State       string             `json:"state,omitempty" bson:"state,omitempty"`
	Latitude    *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude   *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`

	CreatedByID                 *primitive.ObjectID `json:"createdById,omitempty" bson:"createdById,omitempty"`
	EstimatedAffectedPopulation int                 `json:"estimatedAffectedPopulation,omitempty" bson:"estimatedAffectedPopulation,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type DisasterRequest struct {
	Type                        string   `json:"type" validate:"required,max=100"`
	Severity                    string   `json:"severity,omitempty"`
	Status                      string   `json:"status,omitempty"`
	Region                      string   `json:"region,omitempty"`
	District                    string   `json:"district,omitempty"`
	State                       string   `json:"state,omitempty"`
	Latitude                    *float64 `json:"latitude,omitempty"`
	Longitude                   *float64 `json:"longitude,omitempty"`
	Description                 string   `json:"description,omitempty"`
	EstimatedAffectedPopulation int      `json:"estimatedAffectedPopulation,omitempty" validate:"gte=0"`
}

// Affected areas

type AreaSeverity string

const (
	AreaSeverityLow      AreaSeverity = "LOW"
	AreaSeverityModerate AreaSeverity = "MODERATE"
	AreaSeverityHigh     AreaSeverity = "HIGH"
	AreaSeverityCritical AreaSeverity = "CRITICAL"
)

func ParseAreaSeverity(value string) (AreaSeverity, bool) {
	switch s := AreaSeverity(strings.ToUpper(strings.TrimSpace(value))); s {
	case AreaSeverityLow, AreaSeverityModerate, AreaSeverityHigh, AreaSeverityCritical:
		return s, true
	}
	return "", false
}

type AreaStatus string

const (
	AreaIdentified         AreaStatus = "IDENTIFIED"
	AreaUnderAssessment    AreaStatus = "UNDER_ASSESSMENT"
	AreaResponseInProgress AreaStatus = "RESPONSE_IN_PROGRESS"
	AreaStabilized         AreaStatus = "STABILIZED"
	AreaRecovered          AreaStatus = "RECOVERED"
)

func ParseAreaStatus(value string) (AreaStatus, bool) {
	switch s := AreaStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case AreaIdentified, AreaUnderAssessment, AreaResponseInProgress, AreaStabilized, AreaRecovered:
		return s, true
	}
	return "", false
}

type AffectedArea struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DisasterID primitive.ObjectID `json:"disasterId" bson:"disasterId"`
	AreaName   string             `json:"areaName" bson:"areaName"`
	Address    string             `json:"address,omitempty" bson:"address,omitempty"`
	District   string             `json:"district" bson:"district"`
	State      string             `json:"state" bson:"state"`
	Pincode    string             `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Latitude   *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Radius     *float64           `json:"radius,omitempty" bson:"radius,omitempty"` // meters

	Severity                    AreaSeverity `json:"severity" bson:"severity"`
	EstimatedAffectedPopulation int          `json:"estimatedAffectedPopulation" bson:"estimatedAffectedPopulation"`
	DamageDescription           string       `json:"damageDescription,omitempty" bson:"damageDescription,omitempty"`
	Status                      AreaStatus   `json:"status" bson:"status"`

	AssignedOfficerID   *primitive.ObjectID `json:"assignedOfficerId,omitempty" bson:"assignedOfficerId,omitempty"`
	AssignedOfficerName string              `json:"assignedOfficerName,omitempty" bson:"assignedOfficerName,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type AffectedAreaRequest struct {
	DisasterID                  string   `json:"disasterId" validate:"required"`
	AreaName                    string   `json:"areaName" validate:"required,max=200"`
	Address                     string   `json:"address,omitempty"`
	District                    string   `json:"district" validate:"required"`
	State                       string   `json:"state" validate:"required"`
	Pincode                     string   `json:"pincode,omitempty"`
	Latitude                    *float64 `json:"latitude,omitempty"`
	Longitude                   *float64 `json:"longitude,omitempty"`
	Radius                      *float64 `json:"radius,omitempty"`
	Severity                    string   `json:"severity" validate:"required,area_severity"`
	EstimatedAffectedPopulation int      `json:"estimatedAffectedPopulation,omitempty" validate:"gte=0"`
	DamageDescription           string   `json:"damageDescription,omitempty"`
}

// Field reports

type Report struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DisasterID    primitive.ObjectID `json:"disasterId" bson:"disasterId"`
	ResponderID   primitive.ObjectID `json:"responderId" bson:"responderId"`
	ResponderName string             `json:"responderName,omitempty" bson:"responderName,omitempty"`
	Details       string             `json:"details" bson:"details"`
	SubmittedAt   time.Time          `json:"submittedAt" bson:"submittedAt"`
}
