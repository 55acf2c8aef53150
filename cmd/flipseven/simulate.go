package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/display"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/fileutil"
	"github.com/lox/flipseven/internal/simulate"
)

// SimulateCmd samples single draws and compares them with the analytic advice
type SimulateCmd struct {
	Drawn      string `kong:"required,short='d',help='Cards in your hand, comma separated'"`
	Seen       string `kong:"short='s',help='Cards visible elsewhere, comma separated'"`
	Iterations int    `kong:"default='100000',help='Number of sampled draws'"`
	Workers    int    `kong:"default='0',help='Worker goroutines (0 = NumCPU)'"`
	Seed       *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Output     string `kong:"short='o',help='Also write the report as JSON to this file'"`
}

func (c *SimulateCmd) Run() error {
	logger, err := newLogger("info")
	if err != nil {
		return err
	}

	drawn, rejected := deck.ParseCards(c.Drawn)
	seen, rejectedSeen := deck.ParseCards(c.Seen)
	if rejected = append(rejected, rejectedSeen...); len(rejected) > 0 {
		logger.Warn("Ignoring unknown cards", "tokens", rejected)
	}
	if len(drawn) == 0 {
		return errEmptyHand
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Simulating", "iterations", c.Iterations, "workers", workers, "seed", seed)

	ctx, cancel := signalContext(logger)
	defer cancel()

	start := time.Now()
	report, err := simulate.Run(ctx, simulate.Config{
		Hand:       drawn,
		Seen:       seen,
		Iterations: c.Iterations,
		Workers:    workers,
		Seed:       seed,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation complete", "duration", time.Since(start))

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Output)
	}

	advice := evaluator.AdviseCards(drawn, seen)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tsampled\tanalytic")
	fmt.Fprintf(w, "expected value\t%.3f\t%.3f\n", report.MeanDelta, advice.ExpectedValue)
	fmt.Fprintf(w, "95%% interval\t%.3f..%.3f\t\n", report.CILow, report.CIHigh)
	fmt.Fprintf(w, "delta range\t%.0f..%.0f\t\n", report.MinDelta, report.MaxDelta)
	fmt.Fprintf(w, "bust chance\t%s\t%s\n", display.Percent(report.BustRate), display.Percent(advice.BustChance))
	fmt.Fprintf(w, "event chance\t%s\t%s\n", display.Percent(report.EventRate), display.Percent(advice.EventChance))
	fmt.Fprintf(w, "draws\t%d\t%d cards\n", report.Iterations, advice.CardsRemaining)
	return w.Flush()
}
