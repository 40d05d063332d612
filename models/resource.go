package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResourceType string

const (
	ResourceFood                ResourceType = "FOOD"
	ResourceWater               ResourceType = "WATER"
	ResourceMedical             ResourceType = "MEDICAL"
	ResourceClothing            ResourceType = "CLOTHING"
	ResourceShelterMaterial     ResourceType = "SHELTER_MATERIAL"
	ResourceRescueEquipment     ResourceType = "RESCUE_EQUIPMENT"
	ResourceCommunicationDevice ResourceType = "COMMUNICATION_DEVICE"
	ResourceVehicle             ResourceType = "VEHICLE"
	ResourceFuel                ResourceType = "FUEL"
	ResourceOther               ResourceType = "OTHER"
)

func ParseResourceType(value string) (ResourceType, bool) {
	switch t := ResourceType(strings.ToUpper(strings.TrimSpace(value))); t {
	case ResourceFood, ResourceWater, ResourceMedical, ResourceClothing, ResourceShelterMaterial,
		ResourceRescueEquipment, ResourceCommunicationDevice, ResourceVehicle, ResourceFuel, ResourceOther:
		return t, true
	}
	return "", false
}

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "AVAILABLE"
	ResourceInUse       ResourceStatus = "IN_USE"
	ResourceDistributed ResourceStatus = "DISTRIBUTED"
	ResourceDepleted    ResourceStatus = "DEPLETED"
	ResourceDamaged     ResourceStatus = "DAMAGED"
	ResourceReserved    ResourceStatus = "RESERVED"
)

func ParseResourceStatus(value string) (ResourceStatus, bool) {
	switch s := ResourceStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case ResourceAvailable, ResourceInUse, ResourceDistributed, ResourceDepleted, ResourceDamaged, ResourceReserved:
		return s, true
	}
	return "", false
}

type ResourcePriority string

const (
	ResourcePriorityLow      ResourcePriority = "LOW"
	ResourcePriorityMedium   ResourcePriority = "MEDIUM"
	ResourcePriorityHigh     ResourcePriority = "HIGH"
	ResourcePriorityCritical ResourcePriority = "CRITICAL"
)

func ParseResourcePriority(value string) (ResourcePriority, bool) {
	switch p := ResourcePriority(strings.ToUpper(strings.TrimSpace(value))); p {
	case ResourcePriorityLow, ResourcePriorityMedium, ResourcePriorityHigh, ResourcePriorityCritical:
		return p, true
	}
	return "", false
}

type Resource struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ResourceType      ResourceType       `json:"resourceType" bson:"resourceType"`
	ResourceName      string             `json:"resourceName" bson:"resourceName"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	TotalQuantity     int                `json:"totalQuantity" bson:"totalQuantity"`
	AvailableQuantity int                `json:"availableQuantity" bson:"availableQuantity"`
	Unit              string             `json:"unit,omitempty" bson:"unit,omitempty"`

	Location  string   `json:"location,omitempty" bson:"location,omitempty"`
	Address   string   `json:"address,omitempty" bson:"address,omitempty"`
	District  string   `json:"district,omitempty" bson:"district,omitempty"`
	State     string   `json:"state,omitempty" bson:"state,omitempty"`
	Pincode   string   `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`

	Manager     string `json:"manager,omitempty" bson:"manager,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`

	DisasterID        *primitive.ObjectID `json:"disasterId,omitempty" bson:"disasterId,omitempty"`
	AssignedOfficerID *primitive.ObjectID `json:"assignedOfficerId,omitempty" bson:"assignedOfficerId,omitempty"`
	Status            ResourceStatus      `json:"status" bson:"status"`
	Priority          ResourcePriority    `json:"priority" bson:"priority"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ResourceRequest struct {
	ResourceType      string   `json:"resourceType" validate:"required,resource_type"`
	ResourceName      string   `json:"resourceName" validate:"required,max=200"`
	Description       string   `json:"description,omitempty"`
	TotalQuantity     int      `json:"totalQuantity" validate:"gte=0"`
	Unit              string   `json:"unit,omitempty"`
	Location          string   `json:"location,omitempty"`
	Address           string   `json:"address,omitempty"`
	District          string   `json:"district,omitempty"`
	State             string   `json:"state,omitempty"`
	Pincode           string   `json:"pincode,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Manager           string   `json:"manager,omitempty"`
	PhoneNumber       string   `json:"phoneNumber,omitempty"`
	Email             string   `json:"email,omitempty" validate:"omitempty,email"`
	DisasterID        string   `json:"disasterId,omitempty"`
	AssignedOfficerID string   `json:"assignedOfficerId,omitempty"`
	Priority          string   `json:"priority,omitempty"`
}
