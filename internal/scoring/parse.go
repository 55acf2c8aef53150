// Package scoring turns free-text round entries into numeric scores.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
)

// Strategy records which path produced a parsed score
type Strategy string

const (
	// StrategyBlank is used for empty input, which scores 0
	StrategyBlank Strategy = "blank"
	// StrategyCards means every token was a card and the hand was scored
	StrategyCards Strategy = "cards"
	// StrategyNumeric means the numbers found in the text were summed
	StrategyNumeric Strategy = "numeric"
	// StrategyNone means nothing usable was found; the score is 0
	StrategyNone Strategy = "none"
)

// Parsed is the result of reading one player's round entry
type Parsed struct {
	Value    float64  `json:"value"`
	Strategy Strategy `json:"strategy"`
}

var numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// ParseScoreInput reads a round entry. A comma-separated list of valid card
// tokens is scored as a hand; anything else falls back to summing every
// number in the text, so plain scores like "42" are accepted too.
func ParseScoreInput(input string) Parsed {
	text := strings.TrimSpace(input)
	if text == "" {
		return Parsed{Strategy: StrategyBlank}
	}

	if cards, err := deck.ParseCardsStrict(text); err == nil {
		return Parsed{Value: float64(evaluator.Score(cards)), Strategy: StrategyCards}
	}

	matches := numberPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return Parsed{Strategy: StrategyNone}
	}

	var sum float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		sum += v
	}
	return Parsed{Value: sum, Strategy: StrategyNumeric}
}

// ParseAll parses every entry in order
func ParseAll(inputs []string) []Parsed {
	out := make([]Parsed, len(inputs))
	for i, input := range inputs {
		out[i] = ParseScoreInput(input)
	}
	return out
}

// Values extracts the numeric scores from parsed entries
func Values(parsed []Parsed) []float64 {
	out := make([]float64, len(parsed))
	for i, p := range parsed {
		out[i] = p.Value
	}
	return out
}
