// Package events publishes workflow events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Event types
const (
	RescueRequestCreated       = "rescue_request.created"
	RescueRequestAssigned      = "rescue_request.assigned"
	RescueRequestStatusChanged = "rescue_request.status_changed"
	RescueOperationCreated     = "rescue_operation.created"
	RescueOperationStatus      = "rescue_operation.status_changed"
	AlertSent                  = "alert.sent"
	TaskCreated                = "task.created"
	TaskUpdated                = "task.updated"
)

// Envelope is the JSON value of every message.
type Envelope struct {
	Type      string      `json:"type"`
	Key       string      `json:"key"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// KafkaPublisher writes events asynchronously; delivery failures are logged.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logrus.WithError(err).WithField("count", len(messages)).Warn("Failed to deliver events to Kafka")
			}
		},
	}
	logrus.WithField("topic", topic).Info("Kafka event publisher ready")
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload interface{}) {
	value, err := json.Marshal(Envelope{
		Type:      eventType,
		Key:       key,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		logrus.WithError(err).WithField("type", eventType).Error("Failed to encode event")
		return
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: []kafka.Header{{Key: "type", Value: []byte(eventType)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logrus.WithError(err).WithField("type", eventType).Warn("Failed to publish event")
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, interface{}) {}

func (NoopPublisher) Close() error { return nil }

// RecordingPublisher keeps published envelopes in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []Envelope
}

func (r *RecordingPublisher) Publish(_ context.Context, eventType, key string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Envelope{Type: eventType, Key: key, Timestamp: time.Now().UTC(), Payload: payload})
}

func (r *RecordingPublisher) Close() error { return nil }

// Types lists recorded event types in order.
func (r *RecordingPublisher) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		types = append(types, e.Type)
	}
	return types
}
