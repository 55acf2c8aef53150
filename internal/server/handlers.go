package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/scoring"
	"github.com/lox/flipseven/internal/session"
)

// ErrEmptyHand is returned when an advise request names no valid drawn card
var ErrEmptyHand = errors.New("enter at least one card in your hand")

const maxBodyBytes = 64 << 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, LegendResponse{
		Cards:   deck.Vocabulary(),
		Aliases: deck.Aliases,
	})
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var req AdviseRequest
	if !s.decode(w, r, &req) {
		return
	}

	drawn, rejectedDrawn := deck.ParseCards(req.Drawn)
	seen, rejectedSeen := deck.ParseCards(req.Seen)
	rejected := append(rejectedDrawn, rejectedSeen...)
	if len(rejected) > 0 {
		s.logger.Debug("Dropped unknown card tokens", "tokens", rejected)
	}
	if len(drawn) == 0 {
		s.writeError(w, ErrEmptyHand)
		return
	}

	s.writeJSON(w, http.StatusOK, AdviseResponse{
		Result:   evaluator.AdviseCards(drawn, seen),
		Drawn:    drawn,
		Seen:     seen,
		Rejected: rejected,
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, ScoreResponse(scoring.ParseScoreInput(req.Input)))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength != 0 && !s.decode(w, r, &req) {
		return
	}

	players, target := req.Players, req.Target
	if len(players) == 0 {
		players = s.defaultPlayers
	}
	if target == 0 {
		target = s.target
	}

	snap := s.sessions.Create(players, target)
	s.logger.Info("Session created", "id", snap.ID, "players", len(snap.Players))
	s.writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.Delete(id); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishClosed(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.update(w, r, func(sess *session.Session) error {
		sess.AddPlayer(req.Name)
		return nil
	})
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(sess *session.Session) error {
		sess.RemoveLastPlayer()
		return nil
	})
}

func (s *Server) handleInputs(w http.ResponseWriter, r *http.Request) {
	var req InputsRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.update(w, r, func(sess *session.Session) error {
		return sess.SetInputs(req.Inputs)
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if r.ContentLength != 0 && !s.decode(w, r, &req) {
		return
	}
	s.update(w, r, func(sess *session.Session) error {
		return sess.Start(req.Players)
	})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(sess *session.Session) error {
		sess.Restart()
		return nil
	})
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if r.ContentLength != 0 && !s.decode(w, r, &req) {
		return
	}

	var parsed []scoring.Parsed
	snap, err := s.sessions.Update(r.PathValue("id"), func(sess *session.Session) error {
		var err error
		parsed, err = sess.CommitRoundInputs(req.Inputs)
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.publish(snap)
	s.writeJSON(w, http.StatusOK, RoundResponse{Session: snap, Parsed: parsed})
}

// update applies fn to the session named in the path, publishes the result
// and writes it back
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	snap, err := s.sessions.Update(r.PathValue("id"), fn)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publish(snap)
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNoPlayers), errors.Is(err, ErrEmptyHand):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrNotStarted):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("Failed to write response", "error", err)
	}
}
