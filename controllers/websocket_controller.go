package controllers

import (
	"Henteklar/interfaces"
	"Henteklar/websocket"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	WebSocketHub *websocket.Hub
	liveFeed     interfaces.LiveFeed
)

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
	liveFeed = hub
	go WebSocketHub.Run()
}

// ServeWs upgrades to the read-only attendance feed. Staff join the staff
// room, guardians the room of their own account.
func ServeWs(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	hello, _ := json.Marshal(interfaces.WebSocketMessage{
		Type:      interfaces.MessageTypeConnected,
		Data:      gin.H{"room": websocket.RoomFor(session), "role": session.Role},
		Timestamp: time.Now().UTC(),
	})

	if err := websocket.ServeWs(WebSocketHub, c.Writer, c.Request, session, hello); err != nil {
		// The upgrader has already written the error response.
		logger.Info("websocket upgrade failed", zap.String("account", session.AccountID), zap.Error(err))
	}
}
