package models

import "time"

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// Health Check Response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
}

type APIInfoResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	BaseURL   string `json:"baseUrl"`
	Endpoints string `json:"endpoints"`
}
