// routes/websocket.go
package routes

import (
	"alertsystem/controllers"

	"github.com/gin-gonic/gin"
)

// SetupWebSocketRoutes exposes the live alert feed. The controller authenticates
// the ?token= query itself since browsers cannot send headers on upgrade.
func SetupWebSocketRoutes(router *gin.Engine, wsController *controllers.WebSocketController) {
	router.GET("/ws/alerts", wsController.HandleWebSocket)
}
