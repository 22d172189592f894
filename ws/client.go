package ws

import (
	"time"

	"github.com/gorilla/websocket"

	"jobboard_backend/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBufferSize = 256
)

// Client is a single websocket connection owned by one user.
type Client struct {
	UserID  string
	conn    *websocket.Conn
	manager *Manager
	send    chan Event
}

func newClient(userID string, conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		UserID:  userID,
		conn:    conn,
		manager: manager,
		send:    make(chan Event, sendBufferSize),
	}
}

// readPump drains inbound frames. The server never acts on client
// messages; the pump exists to notice disconnects and answer pings.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.manager.unregister <- c:
		case <-c.manager.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "user_id", c.UserID, "error", err)
			}
			return
		}
	}
}

// writePump serializes all writes on the connection, including pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
