package controllers

import (
	"alertsystem/services"
	"alertsystem/utils"
	"alertsystem/websocket"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WebSocketController struct {
	hub         *websocket.Hub
	authService *services.AuthService
}

func NewWebSocketController(hub *websocket.Hub, authService *services.AuthService) *WebSocketController {
	return &WebSocketController{
		hub:         hub,
		authService: authService,
	}
}

// HandleWebSocket subscribes a client to live alerts for their region
// @Summary Alert feed
// @Description Browsers cannot set headers on upgrade requests, so the token may come from ?token=
// @Tags WebSocket
// @Param token query string true "Authentication token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} models.MessageResponse
// @Router /ws/alerts [get]
func (wsc *WebSocketController) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.UnauthorizedResponse(c, "Authentication token is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	user, _, err := wsc.authService.Authenticate(ctx, token)
	cancel()
	if err != nil {
		logrus.Debugf("WebSocket authentication failed: %v", err)
		utils.HandleServiceError(c, err)
		return
	}

	if err := wsc.hub.ServeWS(c.Writer, c.Request, user); err != nil {
		// The upgrader has already replied to the client.
		logrus.Warnf("Failed to upgrade WebSocket connection for user %s: %v", user.ID.Hex(), err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"userId":   user.ID.Hex(),
		"district": user.District,
		"state":    user.State,
	}).Info("WebSocket connection established")
}

// GetStats reports hub counters.
func (wsc *WebSocketController) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, wsc.hub.GetStats())
}
