package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCitizen Role = "ROLE_CITIZEN"
	RoleOfficer Role = "ROLE_OFFICER"
	RoleAdmin   Role = "ROLE_ADMIN"
)

// ParseRole accepts both "ROLE_OFFICER" and "OFFICER" forms, case-insensitively.
func ParseRole(value string) (Role, bool) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(v, "ROLE_") {
		v = "ROLE_" + v
	}
	switch Role(v) {
	case RoleCitizen, RoleOfficer, RoleAdmin:
		return Role(v), true
	}
	return "", false
}

// Short drops the ROLE_ prefix.
func (r Role) Short() string {
	return strings.TrimPrefix(string(r), "ROLE_")
}

type OfficerStatus string

const (
	OfficerActive   OfficerStatus = "ACTIVE"
	OfficerInactive OfficerStatus = "INACTIVE"
)

func ParseOfficerStatus(value string) (OfficerStatus, bool) {
	switch s := OfficerStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case OfficerActive, OfficerInactive:
		return s, true
	}
	return "", false
}

type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     Role               `json:"role" bson:"role"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`

	// Locality
	Region   string `json:"region,omitempty" bson:"region,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`

	// Officer management
	AssignedAdminID *primitive.ObjectID `json:"assignedAdminId,omitempty" bson:"assignedAdminId,omitempty"`
	Status          OfficerStatus       `json:"status,omitempty" bson:"status,omitempty"`
	IsActive        bool                `json:"isActive" bson:"isActive"`

	// Volunteer profile
	IsVolunteer           bool   `json:"isVolunteer" bson:"isVolunteer"`
	VolunteerSkills       string `json:"volunteerSkills,omitempty" bson:"volunteerSkills,omitempty"`
	VolunteerAvailability string `json:"volunteerAvailability,omitempty" bson:"volunteerAvailability,omitempty"`
	DeviceToken           string `json:"-" bson:"deviceToken,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (u *User) IsOfficer() bool { return u.Role == RoleOfficer }
func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsCitizen() bool { return u.Role == RoleCitizen }

// Officer management requests

type CreateOfficerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone    string `json:"phone,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	Location string `json:"location,omitempty"`
}

type UpdateOfficerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone    string `json:"phone,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	Location string `json:"location,omitempty"`
}

type VolunteerProfile struct {
	IsVolunteer           bool   `json:"isVolunteer"`
	VolunteerSkills       string `json:"volunteerSkills"`
	VolunteerAvailability string `json:"volunteerAvailability"`
}

type UpdateVolunteerRequest struct {
	IsVolunteer           *bool   `json:"isVolunteer,omitempty"`
	VolunteerSkills       *string `json:"volunteerSkills,omitempty"`
	VolunteerAvailability *string `json:"volunteerAvailability,omitempty"`
	DeviceToken           *string `json:"deviceToken,omitempty"`
}
