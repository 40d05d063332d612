package websocket

import (
	"alertsystem/models"
	"alertsystem/utils"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024

	// Buffer size for client send channel
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one citizen subscribed to the alert feed.
type Client struct {
	conn *websocket.Conn
	hub  *Hub

	userID   string
	state    string
	district string

	connectionID string
	connectedAt  time.Time

	// Buffered channel of outbound messages, closed by the hub
	send chan models.WSMessage
}

// ServeWS upgrades the request and subscribes user to alerts for their region.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, user *models.User) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		conn:         conn,
		hub:          h,
		userID:       user.ID.Hex(),
		state:        user.State,
		district:     user.District,
		connectionID: utils.GenerateUUID(),
		connectedAt:  time.Now(),
		send:         make(chan models.WSMessage, sendBufferSize),
	}

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return nil
	}

	client.SendMessage(models.WSMessage{
		Type: models.WSTypeConnected,
		Data: models.WSConnected{
			UserID:   client.userID,
			State:    client.state,
			District: client.district,
		},
		Timestamp: time.Now(),
	})

	go client.WritePump()
	go client.ReadPump()
	return nil
}

func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.ctx.Done():
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.Errorf("WebSocket error for user %s: %v", c.userID, err)
			}
			return
		}

		var request models.WSRequest
		if err := json.Unmarshal(data, &request); err != nil {
			c.SendMessage(models.WSMessage{
				Type:      models.WSTypeError,
				Data:      models.WSError{Code: "INVALID_MESSAGE", Message: "Invalid message format"},
				Timestamp: time.Now(),
			})
			continue
		}
		if request.Type == models.WSTypePing {
			c.SendMessage(models.WSMessage{Type: models.WSTypePong, Timestamp: time.Now()})
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				logrus.Errorf("Write error for user %s: %v", c.userID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage never blocks; it reports whether the message was queued.
func (c *Client) SendMessage(message models.WSMessage) (queued bool) {
	defer func() {
		// send may already be closed by the hub
		if recover() != nil {
			queued = false
		}
	}()

	select {
	case c.send <- message:
		return true
	default:
		logrus.Warnf("Send channel full for user %s", c.userID)
		return false
	}
}
