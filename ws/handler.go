package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Manager *Manager
}

func NewWebSocketHandler(manager *Manager) *WebSocketHandler {
	return &WebSocketHandler{Manager: manager}
}

// ServeWS upgrades the connection. Browsers cannot set an
// Authorization header on the websocket handshake, so the JWT arrives
// in the token query parameter instead.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}

	client := newClient(claims.UserID, conn, h.Manager)
	select {
	case h.Manager.register <- client:
	case <-h.Manager.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
