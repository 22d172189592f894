package ws

import (
	"context"
	"sync"
	"time"

	"jobboard_backend/internal/logger"
)

// Event is the envelope every push carries on the wire.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NotificationPayload is the data part of a "notification" event.
type NotificationPayload struct {
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// Manager is the connection hub. Clients are grouped by user id: one
// user may hold several simultaneous connections (two tabs, a phone),
// and a push fans out to all of them.
type Manager struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]struct{} // userID -> connection set
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run owns the client maps until ctx is cancelled. Closing done lets
// in-flight register/unregister sends give up instead of blocking on a
// hub that is gone.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			group, ok := m.clients[client.UserID]
			if !ok {
				group = make(map[*Client]struct{})
				m.clients[client.UserID] = group
			}
			group[client] = struct{}{}
			count := len(group)
			m.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID, "connections", count)

		case client := <-m.unregister:
			m.removeClient(client)

		case <-ctx.Done():
			m.closeAll()
			return
		}
	}
}

func (m *Manager) removeClient(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	group, ok := m.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := group[client]; !ok {
		return
	}
	delete(group, client)
	close(client.send)
	if len(group) == 0 {
		delete(m.clients, client.UserID)
	}
	logger.Debug("ws client unregistered", "user_id", client.UserID, "connections", len(group))
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for userID, group := range m.clients {
		for client := range group {
			close(client.send)
		}
		delete(m.clients, userID)
	}
}

// NotifyUser fans a notification out to every connection the user
// holds. No connections is a silent no-op; a full send buffer drops the
// connection rather than blocking the caller.
func (m *Manager) NotifyUser(userID, message string) {
	event := Event{
		Event: "notification",
		Data: NotificationPayload{
			Message: message,
			Date:    time.Now(),
		},
	}

	m.mu.RLock()
	group := m.clients[userID]
	stale := make([]*Client, 0)
	for client := range group {
		select {
		case client.send <- event:
		default:
			stale = append(stale, client)
		}
	}
	m.mu.RUnlock()

	for _, client := range stale {
		logger.Warn("ws send buffer full, dropping connection", "user_id", userID)
		m.removeClient(client)
		client.conn.Close()
	}
}

// ConnectionCount reports how many live connections a user holds.
func (m *Manager) ConnectionCount(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID])
}
