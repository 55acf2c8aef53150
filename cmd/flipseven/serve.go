package main

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/flipseven/internal/server"
	"github.com/lox/flipseven/internal/session"
)

// ServeCmd runs the scorer and advisor API
type ServeCmd struct {
	Config   string `kong:"default='flipseven.hcl',help='HCL configuration file'"`
	Addr     string `kong:"help='Override the listen address (host:port)'"`
	LogLevel string `kong:"help='Override the log level (debug, info, warn, error)'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	addr := cfg.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	idle, _ := cfg.IdleTimeout()
	sweep, _ := cfg.SweepInterval()

	clock := quartz.NewReal()
	sessions := session.NewManager(logger, clock, idle)
	srv := server.NewServer(addr, logger, sessions, clock,
		server.WithSessionDefaults(cfg.Sessions.DefaultPlayers, float64(cfg.Sessions.Target)))

	logger.Info("Starting flipseven server",
		"address", addr,
		"idle_timeout", idle,
		"sweep_interval", sweep,
		"target", cfg.Sessions.Target)

	ctx, cancel := signalContext(logger)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		return sessions.Run(gctx, sweep)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
