package models

import (
	"time"
)

// WebSocket message types
const (
	WSTypeConnected = "connected"
	WSTypeAlert     = "alert"
	WSTypePing      = "ping"
	WSTypePong      = "pong"
	WSTypeError     = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// WSRequest is what the alert feed accepts from clients; only pings are meaningful.
type WSRequest struct {
	Type string `json:"type"`
}

type WSConnected struct {
	UserID   string `json:"userId"`
	State    string `json:"state"`
	District string `json:"district"`
}

type WSError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
