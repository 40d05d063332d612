// Package metrics exposes Prometheus collectors for HTTP traffic and the
// rescue workflow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "alertsystem"

// Metrics owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPInFlight        prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RescueRequestsCreated  *prometheus.CounterVec
	RescueStatusChanges    *prometheus.CounterVec
	OperationStatusChanges *prometheus.CounterVec
	AlertsSent             *prometheus.CounterVec
	TasksCompleted         prometheus.Counter
	NotificationsSent      *prometheus.CounterVec
	WebSocketClients       prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		RescueRequestsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rescue_requests_created_total",
			Help:      "Rescue requests submitted by citizens, by urgency.",
		}, []string{"urgency"}),
		RescueStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rescue_request_status_changes_total",
			Help:      "Rescue request status transitions, by target status.",
		}, []string{"status"}),
		OperationStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rescue_operation_status_changes_total",
			Help:      "Rescue operation status transitions, by target status.",
		}, []string{"status"}),
		AlertsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Alerts created, by status.",
		}, []string{"status"}),
		TasksCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_completed_total",
			Help:      "Tasks that reached COMPLETED.",
		}),
		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "volunteer_notifications_total",
			Help:      "Volunteer notifications attempted, by channel and result.",
		}, []string{"channel", "result"}),
		WebSocketClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Connected alert feed clients.",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// The helpers below tolerate a nil receiver so services can run without metrics.

func (m *Metrics) RescueRequestCreated(urgency string) {
	if m != nil {
		m.RescueRequestsCreated.WithLabelValues(urgency).Inc()
	}
}

func (m *Metrics) RescueStatusChanged(status string) {
	if m != nil {
		m.RescueStatusChanges.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) OperationStatusChanged(status string) {
	if m != nil {
		m.OperationStatusChanges.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) AlertCreated(status string) {
	if m != nil {
		m.AlertsSent.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) TaskCompleted() {
	if m != nil {
		m.TasksCompleted.Inc()
	}
}

func (m *Metrics) NotificationSent(channel string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.NotificationsSent.WithLabelValues(channel, result).Inc()
}

func (m *Metrics) SetWebSocketClients(n int) {
	if m != nil {
		m.WebSocketClients.Set(float64(n))
	}
}
