// Package server exposes the advisor and the scorer over HTTP, with a
// WebSocket stream of session updates.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/flipseven/internal/session"
)

// Server serves the JSON API and session WebSockets
type Server struct {
	addr       string
	sessions   *session.Manager
	hub        *Hub
	clock      quartz.Clock
	upgrader   websocket.Upgrader
	logger     *log.Logger
	httpServer *http.Server

	defaultPlayers []string
	target         float64
}

// Option configures a Server
type Option func(*Server)

// WithSessionDefaults sets the players and target used when a create
// request leaves them out
func WithSessionDefaults(players []string, target float64) Option {
	return func(s *Server) {
		s.defaultPlayers = append([]string(nil), players...)
		s.target = target
	}
}

// NewServer creates a server for addr backed by sessions
func NewServer(addr string, logger *log.Logger, sessions *session.Manager, clock quartz.Clock, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		sessions: sessions,
		hub:      NewHub(logger),
		clock:    clock,
		upgrader: websocket.Upgrader{
			// The API is meant to be called from any local front end
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	sessions.OnExpire(func(ids []string) {
		for _, id := range ids {
			s.publishClosed(id)
		}
	})
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/legend", s.handleLegend)
	mux.HandleFunc("POST /api/advise", s.handleAdvise)
	mux.HandleFunc("POST /api/score", s.handleScore)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/players", s.handleAddPlayer)
	mux.HandleFunc("DELETE /api/sessions/{id}/players", s.handleRemovePlayer)
	mux.HandleFunc("PUT /api/sessions/{id}/inputs", s.handleInputs)
	mux.HandleFunc("POST /api/sessions/{id}/start", s.handleStart)
	mux.HandleFunc("POST /api/sessions/{id}/rounds", s.handleRound)
	mux.HandleFunc("POST /api/sessions/{id}/restart", s.handleRestart)
	mux.HandleFunc("GET /api/sessions/{id}/ws", s.handleWebSocket)
	return mux
}

// Start listens on the configured address. It blocks until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting server", "addr", s.addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting requests and disconnects subscribers
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.httpServer.Shutdown(ctx)
}

// handleWebSocket streams updates of one session
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.sessions.Get(id); err != nil {
		s.writeError(w, err)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := NewConnection(ws, id, s.logger)
	conn.Start()
	s.attach(conn)

	go func() {
		<-conn.Done()
		s.hub.Unsubscribe(conn)
	}()
}

// attach subscribes conn before reading the snapshot it starts from, so no
// update published in between is lost
func (s *Server) attach(conn *Connection) {
	s.hub.Subscribe(conn)

	snap, err := s.sessions.Get(conn.sessionID)
	if err != nil {
		if msg, err := NewMessage(MessageTypeClosed, map[string]string{"id": conn.sessionID}, s.clock.Now()); err == nil {
			_ = conn.SendMessage(msg)
		}
		return
	}
	if msg, err := NewMessage(MessageTypeSession, snap, s.clock.Now()); err == nil {
		_ = conn.SendMessage(msg)
	}
}

func (s *Server) publish(snap session.Snapshot) {
	msg, err := NewMessage(MessageTypeSession, snap, s.clock.Now())
	if err != nil {
		s.logger.Error("Failed to encode session", "error", err, "session", snap.ID)
		return
	}
	s.hub.Broadcast(snap.ID, msg)
}

func (s *Server) publishClosed(id string) {
	msg, err := NewMessage(MessageTypeClosed, map[string]string{"id": id}, s.clock.Now())
	if err != nil {
		return
	}
	s.hub.Broadcast(id, msg)
}
