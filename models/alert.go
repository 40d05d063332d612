package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AlertStatusPending = "Pending"
	AlertStatusSent    = "Sent"
)

type Alert struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title         string              `json:"title,omitempty" bson:"title,omitempty"`
	Message       string              `json:"message" bson:"message"`
	DisasterID    *primitive.ObjectID `json:"disasterId,omitempty" bson:"disasterId,omitempty"`
	CreatedByID   primitive.ObjectID  `json:"createdById" bson:"createdById"`
	CreatedByName string              `json:"createdByName,omitempty" bson:"createdByName,omitempty"`
	BroadcastTime time.Time           `json:"broadcastTime" bson:"broadcastTime"`
	Status        string              `json:"status" bson:"status"`
	State         string              `json:"state,omitempty" bson:"state,omitempty"`
	District      string              `json:"district,omitempty" bson:"district,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MatchesRegion reports whether a sent alert targets the given state and district.
// A blank alert district covers the whole state; otherwise any comma separated
// district in the alert must equal the user's district, ignoring case.
func (a *Alert) MatchesRegion(state, district string) bool {
	if a.Status != AlertStatusSent {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(a.State), strings.TrimSpace(state)) {
		return false
	}
	if strings.TrimSpace(a.District) == "" {
		return true
	}
	district = strings.TrimSpace(district)
	for _, d := range strings.Split(a.District, ",") {
		if t := strings.TrimSpace(d); t != "" && strings.EqualFold(t, district) {
			return true
		}
	}
	return false
}

// FilterAlertsForRegion keeps the alerts matching state and district, preserving order.
func FilterAlertsForRegion(alerts []*Alert, state, district string) []*Alert {
	matched := make([]*Alert, 0)
	for _, a := range alerts {
		if a.MatchesRegion(state, district) {
			matched = append(matched, a)
		}
	}
	return matched
}

type BroadcastAlertRequest struct {
	Title      string `json:"title,omitempty" validate:"max=200"`
	Message    string `json:"message" validate:"required"`
	State      string `json:"state,omitempty"`
	District   string `json:"district,omitempty"`
	DisasterID string `json:"disasterId,omitempty"`
}
