package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QueryStatus string

const (
	QueryOpen       QueryStatus = "OPEN"
	QueryAssigned   QueryStatus = "ASSIGNED"
	QueryInProgress QueryStatus = "IN_PROGRESS"
	QueryResolved   QueryStatus = "RESOLVED"
	QueryClosed     QueryStatus = "CLOSED"
)

func ParseQueryStatus(value string) (QueryStatus, bool) {
	switch s := QueryStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case QueryOpen, QueryAssigned, QueryInProgress, QueryResolved, QueryClosed:
		return s, true
	}
	return "", false
}

const DefaultQueryPriority = 3

type CitizenQuery struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CitizenID   primitive.ObjectID `json:"citizenId" bson:"citizenId"`
	CitizenName string             `json:"citizenName,omitempty" bson:"citizenName,omitempty"`

	Subject  string `json:"subject" bson:"subject"`
	Message  string `json:"message" bson:"message"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`

	Status              QueryStatus         `json:"status" bson:"status"`
	AssignedOfficerID   *primitive.ObjectID `json:"assignedOfficerId,omitempty" bson:"assignedOfficerId,omitempty"`
	AssignedOfficerName string              `json:"assignedOfficerName,omitempty" bson:"assignedOfficerName,omitempty"`
	Response            string              `json:"response,omitempty" bson:"response,omitempty"`
	ResponseDate        *time.Time          `json:"responseDate,omitempty" bson:"responseDate,omitempty"`
	DisasterID          *primitive.ObjectID `json:"disasterId,omitempty" bson:"disasterId,omitempty"`
	PriorityLevel       int                 `json:"priorityLevel" bson:"priorityLevel"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateQueryRequest struct {
	Subject    string `json:"subject" validate:"required,max=200"`
	Message    string `json:"message" validate:"required"`
	Category   string `json:"category,omitempty"`
	Location   string `json:"location,omitempty"`
	District   string `json:"district,omitempty"`
	State      string `json:"state,omitempty"`
	DisasterID string `json:"disasterId,omitempty"`
}
