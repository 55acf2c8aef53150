package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete server configuration
type Config struct {
	Server   *ServerSettings  `hcl:"server,block"`
	Sessions *SessionSettings `hcl:"sessions,block"`
}

// ServerSettings contains listener and logging configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SessionSettings controls scorer sessions
type SessionSettings struct {
	IdleTimeout    string   `hcl:"idle_timeout,optional"`
	SweepInterval  string   `hcl:"sweep_interval,optional"`
	Target         int      `hcl:"target,optional"`
	DefaultPlayers []string `hcl:"default_players,optional"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Sessions == nil {
		c.Sessions = &SessionSettings{}
	}

	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	if c.Sessions.IdleTimeout == "" {
		c.Sessions.IdleTimeout = "2h"
	}
	if c.Sessions.SweepInterval == "" {
		c.Sessions.SweepInterval = "1m"
	}
	if c.Sessions.Target == 0 {
		c.Sessions.Target = 200
	}
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if _, err := c.IdleTimeout(); err != nil {
		return err
	}
	if _, err := c.SweepInterval(); err != nil {
		return err
	}
	if c.Sessions.Target < 0 {
		return fmt.Errorf("target must be positive, got %d", c.Sessions.Target)
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// IdleTimeout returns how long an untouched session is kept. "0" disables expiry.
func (c *Config) IdleTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Sessions.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("sessions: invalid idle_timeout %q: %w", c.Sessions.IdleTimeout, err)
	}
	return d, nil
}

// SweepInterval returns how often idle sessions are checked
func (c *Config) SweepInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Sessions.SweepInterval)
	if err != nil {
		return 0, fmt.Errorf("sessions: invalid sweep_interval %q: %w", c.Sessions.SweepInterval, err)
	}
	return d, nil
}
