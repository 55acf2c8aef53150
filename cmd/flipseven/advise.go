package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/display"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/fileutil"
)

var errEmptyHand = errors.New("enter at least one drawn card")

// AdviseCmd prints the recommendation for one hand
type AdviseCmd struct {
	Drawn    string `kong:"required,short='d',help='Cards in your hand, comma separated'"`
	Seen     string `kong:"short='s',help='Cards visible elsewhere, comma separated'"`
	JSON     bool   `kong:"help='Print the result as JSON'"`
	Output   string `kong:"short='o',help='Also write the result as JSON to this file'"`
	LogLevel string `kong:"default='warn',enum='debug,info,warn,error',help='Log level'"`
}

func (c *AdviseCmd) Run() error {
	logger, err := newLogger(c.LogLevel)
	if err != nil {
		return err
	}

	drawn, rejected := deck.ParseCards(c.Drawn)
	seen, rejectedSeen := deck.ParseCards(c.Seen)
	rejected = append(rejected, rejectedSeen...)
	if len(rejected) > 0 {
		logger.Warn("Ignoring unknown cards", "tokens", rejected)
	}
	if len(drawn) == 0 {
		return errEmptyHand
	}

	result := evaluator.AdviseCards(drawn, seen)
	logger.Debug("Advised", "drawn", deck.FormatCards(drawn), "seen", deck.FormatCards(seen))

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, result); err != nil {
			return err
		}
	}
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Print(display.Advice(result))
	return nil
}
