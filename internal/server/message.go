package server

import (
	"encoding/json"
	"time"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/scoring"
	"github.com/lox/flipseven/internal/session"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// MessageTypeSession carries a session.Snapshot
	MessageTypeSession MessageType = "session"
	// MessageTypeClosed tells subscribers the session is gone
	MessageTypeClosed MessageType = "session_closed"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a message stamped with now
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// AdviseRequest is the body of POST /api/advise. Cards are comma-separated tokens.
type AdviseRequest struct {
	Drawn string `json:"drawn"`
	Seen  string `json:"seen"`
}

// AdviseResponse is the advisory result plus the cards that were understood
type AdviseResponse struct {
	evaluator.Result
	Drawn    []deck.Card `json:"drawn"`
	Seen     []deck.Card `json:"seen"`
	Rejected []string    `json:"rejected,omitempty"`
}

// ScoreRequest is the body of POST /api/score
type ScoreRequest struct {
	Input string `json:"input"`
}

// ScoreResponse reports a parsed round entry
type ScoreResponse = scoring.Parsed

// LegendResponse lists the card vocabulary and shorthand aliases
type LegendResponse struct {
	Cards   []deck.Card       `json:"cards"`
	Aliases map[string]string `json:"aliases"`
}

// CreateSessionRequest is the body of POST /api/sessions
type CreateSessionRequest struct {
	Players []string `json:"players"`
	Target  float64  `json:"target,omitempty"`
}

// PlayerRequest adds a seat to a session
type PlayerRequest struct {
	Name string `json:"name"`
}

// StartRequest starts a game with the given names
type StartRequest struct {
	Players []string `json:"players"`
}

// InputsRequest saves draft entries for the round in progress
type InputsRequest struct {
	Inputs []string `json:"inputs"`
}

// RoundRequest commits one round. Inputs are free text per player; when
// empty the saved drafts are committed.
type RoundRequest struct {
	Inputs []string `json:"inputs"`
}

// RoundResponse is the session after the round plus how each entry was read
type RoundResponse struct {
	Session session.Snapshot `json:"session"`
	Parsed  []scoring.Parsed `json:"parsed"`
}

// ErrorResponse is written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
