package websocket

import (
	"alertsystem/metrics"
	"alertsystem/models"
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Hub tracks connected citizens and pushes sent alerts to those in the alert's region.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Alerts to fan out
	broadcast chan *models.Alert

	metrics *metrics.Metrics

	// Hub statistics
	stats HubStats

	// Mutex for thread safety
	mutex sync.RWMutex

	// Context for shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

type HubStats struct {
	TotalConnections  int64     `json:"totalConnections"`
	ActiveConnections int       `json:"activeConnections"`
	AlertsBroadcast   int64     `json:"alertsBroadcast"`
	MessagesSent      int64     `json:"messagesSent"`
	StartTime         time.Time `json:"startTime"`
}

func NewHub(m *metrics.Metrics) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *models.Alert, 64),
		metrics:    m,
		stats: HubStats{
			StartTime: time.Now(),
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

func (h *Hub) Run() {
	logrus.Info("WebSocket Hub starting...")

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case alert := <-h.broadcast:
			h.broadcastAlert(alert)

		case <-h.ctx.Done():
			logrus.Info("WebSocket Hub shutting down...")
			h.closeAll()
			return
		}
	}
}

func (h *Hub) Shutdown() {
	h.cancel()
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.stats.ActiveConnections++
	h.stats.TotalConnections++
	active := h.stats.ActiveConnections
	h.mutex.Unlock()

	h.metrics.SetWebSocketClients(active)
	logrus.Infof("Alert feed client registered: %s (Total: %d)", client.userID, active)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.stats.ActiveConnections--
	active := h.stats.ActiveConnections
	h.mutex.Unlock()

	h.metrics.SetWebSocketClients(active)
	logrus.Infof("Alert feed client unregistered: %s (Total: %d)", client.userID, active)
}

func (h *Hub) broadcastAlert(alert *models.Alert) {
	message := models.WSMessage{
		Type:      models.WSTypeAlert,
		Data:      alert,
		Timestamp: time.Now(),
	}

	h.mutex.RLock()
	var sent int64
	for client := range h.clients {
		if alert.MatchesRegion(client.state, client.district) && client.SendMessage(message) {
			sent++
		}
	}
	h.mutex.RUnlock()

	h.mutex.Lock()
	h.stats.AlertsBroadcast++
	h.stats.MessagesSent += sent
	h.mutex.Unlock()
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.stats.ActiveConnections = 0
}

// BroadcastAlert queues a sent alert for delivery. Alerts that are not Sent are ignored.
func (h *Hub) BroadcastAlert(alert *models.Alert) {
	if alert == nil || alert.Status != models.AlertStatusSent {
		return
	}
	snapshot := *alert

	select {
	case h.broadcast <- &snapshot:
	default:
		logrus.Warn("Broadcast channel full, dropping alert")
	}
}

func (h *Hub) ConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) GetStats() HubStats {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.stats
}
