// Package simulate estimates one-draw outcomes by sampling the residual
// deck, as a cross-check of the analytic advice.
package simulate

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/randutil"
	"github.com/lox/flipseven/internal/statistics"
)

// Config describes a simulation run
type Config struct {
	Hand       []deck.Card
	Seen       []deck.Card
	Iterations int
	Workers    int
	Seed       int64
}

// Report summarises the sampled draws
type Report struct {
	Iterations int     `json:"iterations"`
	MeanDelta  float64 `json:"mean_delta"`
	StdError   float64 `json:"std_error"`
	CILow      float64 `json:"ci95_low"`
	CIHigh     float64 `json:"ci95_high"`
	MinDelta   float64 `json:"min_delta"`
	MaxDelta   float64 `json:"max_delta"`
	BustRate   float64 `json:"bust_rate"`
	EventRate  float64 `json:"event_rate"`
}

type tally struct {
	delta  statistics.Sample
	busts  statistics.Proportion
	events statistics.Proportion
}

// Run draws one card Iterations times from the residual deck left after
// removing the hand and the seen cards. Results depend only on Config.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Iterations < 0 {
		return Report{}, errors.New("iterations must not be negative")
	}
	workers := max(cfg.Workers, 1)

	residual := deck.NewDeck()
	residual.Remove(cfg.Hand...)
	residual.Remove(cfg.Seen...)
	if residual.IsEmpty() || cfg.Iterations == 0 {
		return Report{}, nil
	}

	current := evaluator.Score(cfg.Hand)
	wasBust := evaluator.IsBust(cfg.Hand)
	tallies := make([]tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := cfg.Iterations / workers
		if w < cfg.Iterations%workers {
			n++
		}

		g.Go(func() error {
			rng := randutil.Stream(cfg.Seed, w)
			next := make([]deck.Card, len(cfg.Hand)+1)
			copy(next, cfg.Hand)
			t := &tallies[w]

			for i := range n {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				// Draw mutates, so sample from a fresh copy each time
				card, _ := residual.Clone().Draw(rng)
				next[len(cfg.Hand)] = card
				t.delta.Add(float64(evaluator.Score(next) - current))
				t.events.Add(card.IsEvent())
				t.busts.Add(!wasBust && evaluator.IsBust(next))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var total tally
	for _, t := range tallies {
		total.delta.Merge(t.delta)
		total.busts.Merge(t.busts)
		total.events.Merge(t.events)
	}

	lo, hi := total.delta.ConfidenceInterval95()
	return Report{
		Iterations: total.delta.N,
		MeanDelta:  total.delta.Mean(),
		StdError:   total.delta.StdError(),
		CILow:      lo,
		CIHigh:     hi,
		MinDelta:   total.delta.Min,
		MaxDelta:   total.delta.Max,
		BustRate:   total.busts.Rate(),
		EventRate:  total.events.Rate(),
	}, nil
}
