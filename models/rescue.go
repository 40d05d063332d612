package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

var urgencyRank = map[UrgencyLevel]int{
	UrgencyLow:      0,
	UrgencyMedium:   1,
	UrgencyHigh:     2,
	UrgencyCritical: 3,
}

func ParseUrgencyLevel(value string) (UrgencyLevel, bool) {
	u := UrgencyLevel(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := urgencyRank[u]
	return u, ok
}

// Rank orders urgency levels LOW < MEDIUM < HIGH < CRITICAL. Unknown levels rank lowest.
func (u UrgencyLevel) Rank() int {
	if r, ok := urgencyRank[u]; ok {
		return r
	}
	return -1
}

type RequestStatus string

const (
	RequestPending    RequestStatus = "PENDING"
	RequestAssigned   RequestStatus = "ASSIGNED"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
	RequestCancelled  RequestStatus = "CANCELLED"
)

func ParseRequestStatus(value string) (RequestStatus, bool) {
	switch s := RequestStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case RequestPending, RequestAssigned, RequestInProgress, RequestCompleted, RequestCancelled:
		return s, true
	}
	return "", false
}

type RescueRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CitizenID   primitive.ObjectID `json:"citizenId" bson:"citizenId"`
	CitizenName string             `json:"citizenName,omitempty" bson:"citizenName,omitempty"`

	District    string       `json:"district" bson:"district"`
	State       string       `json:"state" bson:"state"`
	RescueType  string       `json:"rescueType" bson:"rescueType"`
	Location    string       `json:"location" bson:"location"`
	Latitude    *float64     `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Urgency     UrgencyLevel `json:"urgencyLevel" bson:"urgencyLevel"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`

	NumberOfPeople int    `json:"numberOfPeople" bson:"numberOfPeople"`
	SpecialNeeds   string `json:"specialNeeds,omitempty" bson:"specialNeeds,omitempty"`

	Status              RequestStatus       `json:"status" bson:"status"`
	AssignedOfficerID   *primitive.ObjectID `json:"assignedOfficerId,omitempty" bson:"assignedOfficerId,omitempty"`
	AssignedOfficerName string              `json:"assignedOfficerName,omitempty" bson:"assignedOfficerName,omitempty"`
	AssignedTeamIDs     IDList              `json:"assignedTeamIds,omitempty" bson:"assignedTeamIds,omitempty"`
	NotifiedVolunteers  IDList              `json:"notifiedVolunteerIds,omitempty" bson:"notifiedVolunteerIds,omitempty"`
	Notes               string              `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type CreateRescueRequest struct {
	District       string   `json:"district,omitempty"`
	State          string   `json:"state,omitempty"`
	RescueType     string   `json:"rescueType" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	UrgencyLevel   string   `json:"urgencyLevel" validate:"required,urgency"`
	Description    string   `json:"description,omitempty"`
	NumberOfPeople int      `json:"numberOfPeople,omitempty"`
	SpecialNeeds   string   `json:"specialNeeds,omitempty"`
}

type UpdateRescueRequest struct {
	RescueType     string   `json:"rescueType,omitempty"`
	Location       string   `json:"location,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	UrgencyLevel   string   `json:"urgencyLevel,omitempty" validate:"omitempty,urgency"`
	Description    string   `json:"description,omitempty"`
	NumberOfPeople *int     `json:"numberOfPeople,omitempty"`
	SpecialNeeds   string   `json:"specialNeeds,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// AssignRescueRequest leaves a list untouched when its key is absent. A
// present but empty list clears the previous value.
type AssignRescueRequest struct {
	TeamIDs      *IDList `json:"teamIds,omitempty"`
	VolunteerIDs *IDList `json:"volunteerIds,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type RescueRequestStats struct {
	TotalRequests   int64 `json:"totalRequests"`
	PendingRequests int64 `json:"pendingRequests"`
}

// Rescue operations

type OperationStatus string

const (
	OperationInitiated  OperationStatus = "INITIATED"
	OperationInProgress OperationStatus = "IN_PROGRESS"
	OperationCompleted  OperationStatus = "COMPLETED"
	OperationFailed     OperationStatus = "FAILED"
	OperationCancelled  OperationStatus = "CANCELLED"
)

func ParseOperationStatus(value string) (OperationStatus, bool) {
	switch s := OperationStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case OperationInitiated, OperationInProgress, OperationCompleted, OperationFailed, OperationCancelled:
		return s, true
	}
	return "", false
}

func (s OperationStatus) Terminal() bool {
	return s == OperationCompleted || s == OperationFailed || s == OperationCancelled
}

type RescueOperation struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RescueRequestID primitive.ObjectID `json:"rescueRequestId" bson:"rescueRequestId"`
	District        string             `json:"district" bson:"district"`

	AssignedTeams      IDList `json:"assignedTeams,omitempty" bson:"assignedTeams,omitempty"`
	AssignedVolunteers IDList `json:"assignedVolunteers,omitempty" bson:"assignedVolunteers,omitempty"`

	OfficerInChargeID   primitive.ObjectID `json:"officerInChargeId" bson:"officerInChargeId"`
	OfficerInChargeName string             `json:"officerInChargeName,omitempty" bson:"officerInChargeName,omitempty"`

	Status        OperationStatus `json:"status" bson:"status"`
	StartTime     time.Time       `json:"startTime" bson:"startTime"`
	EndTime       *time.Time      `json:"endTime,omitempty" bson:"endTime,omitempty"`
	PeopleRescued int             `json:"peopleRescued" bson:"peopleRescued"`
	Notes         string          `json:"notes,omitempty" bson:"notes,omitempty"`
	ResourcesUsed string          `json:"resourcesUsed,omitempty" bson:"resourcesUsed,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateRescueOperationRequest struct {
	RescueRequestID    string `json:"rescueRequestId" validate:"required"`
	AssignedTeams      IDList `json:"assignedTeams,omitempty"`
	AssignedVolunteers IDList `json:"assignedVolunteers,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

type UpdateRescueOperationRequest struct {
	AssignedTeams      IDList `json:"assignedTeams,omitempty"`
	AssignedVolunteers IDList `json:"assignedVolunteers,omitempty"`
	PeopleRescued      *int   `json:"peopleRescued,omitempty"`
	Notes              string `json:"notes,omitempty"`
	ResourcesUsed      string `json:"resourcesUsed,omitempty"`
}

type RescueOperationStats struct {
	TotalOperations  int64 `json:"totalOperations"`
	ActiveOperations int64 `json:"activeOperations"`
}
