package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the live websocket connection per user. A user has at most one
// connection; a new one replaces the old.
type Hub struct {
	mu    sync.RWMutex
	conns map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.conns[userID]; ok && old != nil {
		_ = old.Close()
	}
	h.conns[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[userID]; ok && conn != nil {
		_ = conn.Close()
		delete(h.conns, userID)
	}
}

// Push delivers a payload to a user if online. A write failure drops the
// connection.
func (h *Hub) Push(userID int64, payload interface{}) bool {
	h.mu.RLock()
	conn, ok := h.conns[userID]
	h.mu.RUnlock()

	if !ok || conn == nil {
		return false
	}
	if err := conn.WriteJSON(payload); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.conns[userID]
	return ok
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conn := range h.conns {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, userID)
	}
}
