package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShelterStatus string

const (
	ShelterOperational      ShelterStatus = "OPERATIONAL"
	ShelterFull             ShelterStatus = "FULL"
	ShelterClosed           ShelterStatus = "CLOSED"
	ShelterUnderMaintenance ShelterStatus = "UNDER_MAINTENANCE"
)

func ParseShelterStatus(value string) (ShelterStatus, bool) {
	switch s := ShelterStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case ShelterOperational, ShelterFull, ShelterClosed, ShelterUnderMaintenance:
		return s, true
	}
	return "", false
}

type Shelter struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	District  string             `json:"district" bson:"district"`
	State     string             `json:"state" bson:"state"`
	Pincode   string             `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Latitude  *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`

	TotalCapacity    int `json:"totalCapacity" bson:"totalCapacity"`
	CurrentOccupancy int `json:"currentOccupancy" bson:"currentOccupancy"`

	InChargeOfficer string `json:"inChargeOfficer,omitempty" bson:"inChargeOfficer,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Email           string `json:"email,omitempty" bson:"email,omitempty"`

	HasWater             bool   `json:"hasWater" bson:"hasWater"`
	HasFood              bool   `json:"hasFood" bson:"hasFood"`
	HasMedical           bool   `json:"hasMedical" bson:"hasMedical"`
	HasElectricity       bool   `json:"hasElectricity" bson:"hasElectricity"`
	HasSanitation        bool   `json:"hasSanitation" bson:"hasSanitation"`
	AdditionalFacilities string `json:"additionalFacilities,omitempty" bson:"additionalFacilities,omitempty"`

	Status     ShelterStatus       `json:"status" bson:"status"`
	DisasterID *primitive.ObjectID `json:"disasterId,omitempty" bson:"disasterId,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// AvailableCapacity is the number of places left.
func (s *Shelter) AvailableCapacity() int {
	return s.TotalCapacity - s.CurrentOccupancy
}

type ShelterRequest struct {
	Name                 string   `json:"name" validate:"required,max=200"`
	Address              string   `json:"address,omitempty"`
	District             string   `json:"district" validate:"required"`
	State                string   `json:"state" validate:"required"`
	Pincode              string   `json:"pincode,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	TotalCapacity        int      `json:"totalCapacity" validate:"gte=0"`
	InChargeOfficer      string   `json:"inChargeOfficer,omitempty"`
	PhoneNumber          string   `json:"phoneNumber,omitempty"`
	Email                string   `json:"email,omitempty" validate:"omitempty,email"`
	HasWater             *bool    `json:"hasWater,omitempty"`
	HasFood              *bool    `json:"hasFood,omitempty"`
	HasMedical           *bool    `json:"hasMedical,omitempty"`
	HasElectricity       *bool    `json:"hasElectricity,omitempty"`
	HasSanitation        *bool    `json:"hasSanitation,omitempty"`
	AdditionalFacilities string   `json:"additionalFacilities,omitempty"`
	DisasterID           string   `json:"disasterId,omitempty"`
}
