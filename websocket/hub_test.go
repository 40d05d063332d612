package websocket

import (
	"alertsystem/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	go hub.Run()
	t.Cleanup(hub.Shutdown)
	return hub
}

// dial connects a citizen living in state/district to the hub.
func dial(t *testing.T, hub *Hub, state, district string) *websocket.Conn {
	t.Helper()

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleCitizen, State: state, District: district}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.ServeWS(w, r, user); err != nil {
			t.Logf("upgrade failed: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	msg := readMessage(t, conn, time.Second)
	require.Equal(t, models.WSTypeConnected, msg.Type)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn, timeout time.Duration) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg models.WSMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHubDeliversAlertsByRegion(t *testing.T) {
	hub := startHub(t)

	mysuru := dial(t, hub, "Karnataka", "Mysuru")
	chennai := dial(t, hub, "Tamil Nadu", "Chennai")

	require.Eventually(t, func() bool { return hub.ConnectedClients() == 2 }, time.Second, 10*time.Millisecond)

	hub.BroadcastAlert(&models.Alert{
		ID:       primitive.NewObjectID(),
		Message:  "Flood warning for low-lying areas",
		Status:   models.AlertStatusSent,
		State:    "Karnataka",
		District: "Mysuru, Mandya",
	})

	msg := readMessage(t, mysuru, time.Second)
	assert.Equal(t, models.WSTypeAlert, msg.Type)

	require.NoError(t, chennai.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := chennai.ReadMessage()
	assert.Error(t, err, "client outside the alert region must not receive it")

	require.Eventually(t, func() bool { return hub.GetStats().AlertsBroadcast == 1 }, time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, hub.GetStats().MessagesSent)
}

func TestHubIgnoresUnsentAlerts(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub, "Karnataka", "Mysuru")

	hub.BroadcastAlert(&models.Alert{Status: models.AlertStatusPending, State: "Karnataka"})
	hub.BroadcastAlert(nil)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Zero(t, hub.GetStats().AlertsBroadcast)
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub, "Karnataka", "Mysuru")

	require.Eventually(t, func() bool { return hub.ConnectedClients() == 1 }, time.Second, 10*time.Millisecond)
	conn.Close()

	assert.Eventually(t, func() bool { return hub.ConnectedClients() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, hub.GetStats().TotalConnections)
}

func TestClientAnswersPing(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub, "Karnataka", "Mysuru")

	require.NoError(t, conn.WriteJSON(models.WSRequest{Type: models.WSTypePing}))
	assert.Equal(t, models.WSTypePong, readMessage(t, conn, time.Second).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, models.WSTypeError, readMessage(t, conn, time.Second).Type)
}
