package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/flipseven/internal/display"
	"github.com/lox/flipseven/internal/server"
	"github.com/lox/flipseven/internal/session"
)

// ScoreboardCmd prints the standings of a session held by a running server
type ScoreboardCmd struct {
	ID     string        `kong:"arg,help='Session ID'"`
	Server string        `kong:"default='http://localhost:8080',help='Server base URL'"`
	Wait   time.Duration `kong:"default='5s',help='How long to wait for the server to become healthy'"`
}

func (c *ScoreboardCmd) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Wait)
	defer cancel()

	snap, err := c.fetch(ctx, quartz.NewReal())
	if err != nil {
		return err
	}
	fmt.Print(display.Scoreboard(snap))
	return nil
}

// fetch waits for the server and reads the session snapshot
func (c *ScoreboardCmd) fetch(ctx context.Context, clock quartz.Clock) (session.Snapshot, error) {
	base := strings.TrimRight(c.Server, "/")
	if err := server.WaitForHealthy(ctx, clock, base, 100*time.Millisecond); err != nil {
		return session.Snapshot{}, fmt.Errorf("server at %s is not healthy: %w", base, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/sessions/"+url.PathEscape(c.ID), nil)
	if err != nil {
		return session.Snapshot{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to fetch session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp server.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return session.Snapshot{}, fmt.Errorf("failed to fetch session %s: %s (%d)", c.ID, errResp.Error, resp.StatusCode)
	}

	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return snap, nil
}
