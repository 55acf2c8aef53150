// Package session keeps the running scores of a Flip Seven game.
package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lox/flipseven/internal/scoring"
)

const (
	// DefaultPlayerCount is the number of seats a new session starts with
	DefaultPlayerCount = 4

	// DefaultTarget is the total that wins the game
	DefaultTarget = 200
)

var (
	ErrNoPlayers  = errors.New("at least one player name is required")
	ErrNotStarted = errors.New("game has not started")
)

// Session is the scorer state for one game. It is not safe for concurrent
// use; the Manager serialises access.
type Session struct {
	ID        string      `json:"id"`
	Players   []string    `json:"players"`
	Round     int         `json:"round"`
	History   [][]float64 `json:"history"`
	Started   bool        `json:"started"`
	Inputs    []string    `json:"inputs"` // draft entries for the round in progress, one per player
	Target    float64     `json:"target"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// DefaultName returns the placeholder name for seat index i
func DefaultName(i int) string {
	return fmt.Sprintf("Player %d", i+1)
}

// New creates a session with the given players, or DefaultPlayerCount
// placeholder names when none are given.
func New(id string, players []string) *Session {
	s := &Session{
		ID:      id,
		Round:   1,
		History: [][]float64{},
		Target:  DefaultTarget,
	}
	if len(players) == 0 {
		for i := range DefaultPlayerCount {
			s.Players = append(s.Players, DefaultName(i))
		}
	} else {
		s.Players = append([]string(nil), players...)
	}
	s.clearInputs()
	return s
}

// AddPlayer appends a seat. A blank name gets a placeholder.
func (s *Session) AddPlayer(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(len(s.Players))
	}
	s.Players = append(s.Players, name)
	s.Inputs = append(s.Inputs, "")
}

// RemoveLastPlayer drops the last seat, always keeping at least one
func (s *Session) RemoveLastPlayer() {
	if len(s.Players) > 1 {
		s.Players = s.Players[:len(s.Players)-1]
		if len(s.Inputs) > len(s.Players) {
			s.Inputs = s.Inputs[:len(s.Players)]
		}
	}
}

// Start begins a game with the non-blank names given, or with the current
// seats when names is empty.
func (s *Session) Start(names []string) error {
	if len(names) == 0 {
		names = s.Players
	}

	var players []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return ErrNoPlayers
	}

	s.Players = players
	s.History = [][]float64{}
	s.Round = 1
	s.Started = true
	s.clearInputs()
	return nil
}

// CommitRound records one round of scores. Missing trailing scores count
// as 0 and extra scores are kept but ignored by Totals.
func (s *Session) CommitRound(scores []float64) error {
	if !s.Started {
		return ErrNotStarted
	}

	row := make([]float64, max(len(scores), len(s.Players)))
	copy(row, scores)
	s.History = append(s.History, row)
	s.Round++
	s.clearInputs()
	return nil
}

// SetInputs saves draft entries for the round in progress. Entries beyond
// the number of players are dropped and missing ones are left blank.
func (s *Session) SetInputs(inputs []string) error {
	if !s.Started {
		return ErrNotStarted
	}
	s.clearInputs()
	copy(s.Inputs, inputs)
	return nil
}

// CommitRoundInputs parses each player's free-text entry and commits it.
// When inputs is empty the saved drafts are committed instead.
func (s *Session) CommitRoundInputs(inputs []string) ([]scoring.Parsed, error) {
	if len(inputs) == 0 {
		inputs = append([]string(nil), s.Inputs...)
	}
	parsed := scoring.ParseAll(inputs)
	if err := s.CommitRound(scoring.Values(parsed)); err != nil {
		return nil, err
	}
	return parsed, nil
}

// Restart clears the history but keeps the players
func (s *Session) Restart() {
	s.Round = 1
	s.History = [][]float64{}
	s.Started = false
	s.clearInputs()
}

func (s *Session) clearInputs() {
	s.Inputs = make([]string, len(s.Players))
}

// Totals sums each player's committed scores
func (s *Session) Totals() []float64 {
	totals := make([]float64, len(s.Players))
	for _, row := range s.History {
		for i := range totals {
			if i < len(row) {
				totals[i] += row[i]
			}
		}
	}
	return totals
}

// Left returns how many points each player still needs to reach the target
func (s *Session) Left() []float64 {
	totals := s.Totals()
	left := make([]float64, len(totals))
	for i, total := range totals {
		left[i] = max(0, s.Target-total)
	}
	return left
}

// Leaders returns the players that have reached the target, highest first
func (s *Session) Leaders() []string {
	totals := s.Totals()
	var idx []int
	for i, total := range totals {
		if total >= s.Target {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return totals[idx[a]] > totals[idx[b]]
	})

	leaders := make([]string, len(idx))
	for i, p := range idx {
		leaders[i] = s.Players[p]
	}
	return leaders
}

// Snapshot is a read-only copy of a session with derived totals
type Snapshot struct {
	ID        string      `json:"id"`
	Players   []string    `json:"players"`
	Round     int         `json:"round"`
	Started   bool        `json:"started"`
	History   [][]float64 `json:"history"`
	Inputs    []string    `json:"inputs"`
	Totals    []float64   `json:"totals"`
	Left      []float64   `json:"left"`
	Leaders   []string    `json:"leaders"`
	Target    float64     `json:"target"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Snapshot copies the session so it can be handed to other goroutines
func (s *Session) Snapshot() Snapshot {
	history := make([][]float64, len(s.History))
	for i, row := range s.History {
		history[i] = append([]float64(nil), row...)
	}
	return Snapshot{
		ID:        s.ID,
		Players:   append([]string(nil), s.Players...),
		Round:     s.Round,
		Started:   s.Started,
		History:   history,
		Inputs:    append([]string{}, s.Inputs...),
		Totals:    s.Totals(),
		Left:      s.Left(),
		Leaders:   s.Leaders(),
		Target:    s.Target,
		UpdatedAt: s.UpdatedAt,
	}
}
