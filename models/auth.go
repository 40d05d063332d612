// models/auth.go - Auth-related models
package models

// ============== AUTH REQUESTS ==============

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest carries citizen registration data. Role is accepted on the wire
// for compatibility with older clients but never honored.
type SignupRequest struct {
	Name                  string `json:"name" validate:"required,min=2,max=100"`
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=6,max=120"`
	Phone                 string `json:"phone,omitempty"`
	Region                string `json:"region,omitempty"`
	State                 string `json:"state,omitempty"`
	District              string `json:"district,omitempty"`
	Location              string `json:"location,omitempty"`
	Role                  string `json:"role,omitempty"`
	IsVolunteer           bool   `json:"isVolunteer,omitempty"`
	VolunteerSkills       string `json:"volunteerSkills,omitempty"`
	VolunteerAvailability string `json:"volunteerAvailability,omitempty"`
}

// ============== AUTH RESPONSES ==============

type JWTResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	District string   `json:"district"`
	Roles    []string `json:"roles"`
}
