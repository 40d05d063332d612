package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamType string

const (
	TeamAmbulance    TeamType = "AMBULANCE"
	TeamFire         TeamType = "FIRE"
	TeamNDRF         TeamType = "NDRF"
	TeamPolice       TeamType = "POLICE"
	TeamMedical      TeamType = "MEDICAL"
	TeamSearchRescue TeamType = "SEARCH_RESCUE"
	TeamCivilDefense TeamType = "CIVIL_DEFENSE"
	TeamOther        TeamType = "OTHER"
)

func ParseTeamType(value string) (TeamType, bool) {
	switch t := TeamType(strings.ToUpper(strings.TrimSpace(value))); t {
	case TeamAmbulance, TeamFire, TeamNDRF, TeamPolice, TeamMedical, TeamSearchRescue, TeamCivilDefense, TeamOther:
		return t, true
	}
	return "", false
}

type TeamStatus string

const (
	TeamAvailable   TeamStatus = "AVAILABLE"
	TeamDeployed    TeamStatus = "DEPLOYED"
	TeamUnavailable TeamStatus = "UNAVAILABLE"
	TeamMaintenance TeamStatus = "MAINTENANCE"
)

func ParseTeamStatus(value string) (TeamStatus, bool) {
	switch s := TeamStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case TeamAvailable, TeamDeployed, TeamUnavailable, TeamMaintenance:
		return s, true
	}
	return "", false
}

type EmergencyTeam struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeamName       string             `json:"teamName" bson:"teamName"`
	TeamType       TeamType           `json:"teamType" bson:"teamType"`
	District       string             `json:"district" bson:"district"`
	ContactPerson  string             `json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	PhoneNumber    string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	VehicleCount   int                `json:"vehicleCount" bson:"vehicleCount"`
	PersonnelCount int                `json:"personnelCount" bson:"personnelCount"`
	Status         TeamStatus         `json:"status" bson:"status"`
	BaseLocation   string             `json:"baseLocation,omitempty" bson:"baseLocation,omitempty"`
	Latitude       *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude      *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type EmergencyTeamRequest struct {
	TeamName       string   `json:"teamName" validate:"required,max=200"`
	TeamType       string   `json:"teamType" validate:"required,team_type"`
	District       string   `json:"district" validate:"required"`
	ContactPerson  string   `json:"contactPerson,omitempty"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	VehicleCount   int      `json:"vehicleCount,omitempty" validate:"gte=0"`
	PersonnelCount int      `json:"personnelCount,omitempty" validate:"gte=0"`
	Status         string   `json:"status,omitempty"`
	BaseLocation   string   `json:"baseLocation,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

type TeamStats struct {
	TotalTeams     int64 `json:"totalTeams"`
	AvailableTeams int64 `json:"availableTeams"`
}
