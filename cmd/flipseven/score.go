package main

import (
	"fmt"

	"github.com/lox/flipseven/internal/display"
	"github.com/lox/flipseven/internal/scoring"
)

// ScoreCmd scores round entries the way the scorer reads them
type ScoreCmd struct {
	Inputs []string `kong:"arg,optional,sep='none',help='Round entries such as 2,3,x2 or 42'"`
}

func (c *ScoreCmd) Run() error {
	if len(c.Inputs) == 0 {
		c.Inputs = []string{""}
	}
	for _, parsed := range scoring.ParseAll(c.Inputs) {
		fmt.Println(display.ParsedScore(parsed))
	}
	return nil
}
