package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScoreInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		value    float64
		strategy Strategy
	}{
		{name: "blank", input: "   ", value: 0, strategy: StrategyBlank},
		{name: "card hand", input: "2, 10, 1, 3, 8, x2", value: 48, strategy: StrategyCards},
		{name: "card hand with aliases", input: "5, !, -4", value: 14, strategy: StrategyCards},
		{name: "busted hand", input: "6, 6", value: 0, strategy: StrategyCards},
		{name: "single small number is a card", input: "9", value: 9, strategy: StrategyCards},
		{name: "plain score", input: "42", value: 42, strategy: StrategyNumeric},
		{name: "numbers with words", input: "round 40 plus 3.5", value: 43.5, strategy: StrategyNumeric},
		{name: "mixed invalid token falls back", input: "13, 2", value: 15, strategy: StrategyNumeric},
		{name: "signed numbers", input: "50 -10", value: 40, strategy: StrategyNumeric},
		{name: "nothing numeric", input: "bust", value: 0, strategy: StrategyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseScoreInput(tt.input)
			assert.Equal(t, tt.strategy, got.Strategy)
			assert.InDelta(t, tt.value, got.Value, 1e-9)
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()
	parsed := ParseAll([]string{"1, 2", "", "100"})
	assert.Equal(t, []float64{3, 0, 100}, Values(parsed))
	assert.Equal(t, StrategyBlank, parsed[1].Strategy)
}
