package server

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Hub fans session updates out to the connections watching each session
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*Connection]struct{}
	logger *log.Logger
}

// NewHub creates an empty hub
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[*Connection]struct{}),
		logger: logger.WithPrefix("hub"),
	}
}

// Subscribe registers conn for updates of its session
func (h *Hub) Subscribe(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[conn.sessionID]
	if !ok {
		set = make(map[*Connection]struct{})
		h.subs[conn.sessionID] = set
	}
	set[conn] = struct{}{}
	h.logger.Debug("Subscriber joined", "session", conn.sessionID, "watchers", len(set))
}

// Unsubscribe removes conn
func (h *Hub) Unsubscribe(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[conn.sessionID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.subs, conn.sessionID)
	}
}

// Broadcast sends msg to every subscriber of sessionID and returns how many
// accepted it
func (h *Hub) Broadcast(sessionID string, msg *Message) int {
	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.subs[sessionID]))
	for conn := range h.subs[sessionID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	count := 0
	for _, conn := range conns {
		if err := conn.SendMessage(msg); err == nil {
			count++
		}
	}
	h.logger.Debug("Broadcast session update", "session", sessionID, "type", msg.Type, "recipients", count)
	return count
}

// CloseAll disconnects every subscriber
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, set := range h.subs {
		for conn := range set {
			_ = conn.Close()
		}
		delete(h.subs, id)
	}
}
