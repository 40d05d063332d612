package interfaces

import (
	"alertsystem/models"
	"context"
	"time"
)

// AlertBroadcaster pushes sent alerts to connected clients.
type AlertBroadcaster interface {
	BroadcastAlert(alert *models.Alert)
	ConnectedClients() int
}

// EventPublisher emits domain events. Implementations must not block the caller
// on broker availability.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, payload interface{})
	Close() error
}

// VolunteerNotifier delivers out-of-band notifications to volunteers.
type VolunteerNotifier interface {
	NotifyVolunteers(request *models.RescueRequest, volunteers []*models.User) error
}

// TokenBlacklist tracks revoked token ids until they expire.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SMSSender and PushSender are the delivery channels used by the notification worker.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

type PushSender interface {
	SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
