package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
	"github.com/lox/flipseven/internal/scoring"
	"github.com/lox/flipseven/internal/session"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.50%", Percent(0.125))
	assert.Equal(t, "0.00%", Percent(0))
	assert.Equal(t, "100.00%", Percent(1))
}

func TestSignedDelta(t *testing.T) {
	assert.Equal(t, "+9", SignedDelta(9))
	assert.Equal(t, "0", SignedDelta(0))
	assert.Equal(t, "-12", SignedDelta(-12))
}

func TestEVLine(t *testing.T) {
	line := EVLine(evaluator.CardEV{
		Card:        deck.X2,
		Probability: 0.25,
		Score:       24,
		Delta:       12,
		EV:          3,
	})
	assert.Contains(t, line, "x2")
	assert.Contains(t, line, "25.00%")
	assert.Contains(t, line, "24")
	assert.Contains(t, line, "+12")
	assert.Contains(t, line, "EV:")
	assert.Contains(t, line, "3.00")
}

func TestAdvice(t *testing.T) {
	drawn, _ := deck.ParseCards("2, 10, 1, 3, 8")
	out := Advice(evaluator.AdviseCards(drawn, nil))

	assert.Contains(t, out, "current score")
	assert.Contains(t, out, "24")
	assert.Contains(t, out, "5/7")
	assert.Contains(t, out, "bust chance")
	assert.Contains(t, out, "event chance")
	assert.NotContains(t, out, "No event cards remaining")
}

func TestAdviceEmptyDeck(t *testing.T) {
	drawn, _ := deck.ParseCards("4")
	out := Advice(evaluator.Advise(drawn, &deck.Deck{}))

	assert.Contains(t, out, "STAY")
	assert.Contains(t, out, "No cards remaining")
	assert.Contains(t, out, "No bust cards remaining")
	assert.Contains(t, out, "No event cards remaining")
}

func TestAdviceFlipSeven(t *testing.T) {
	drawn, _ := deck.ParseCards("1, 2, 3, 4, 5, 6, 7")
	out := Advice(evaluator.AdviseCards(drawn, nil))
	assert.Contains(t, out, "7/7")
	assert.Contains(t, out, "43")
}

func TestLegend(t *testing.T) {
	out := Legend()
	assert.Contains(t, out, "sc = second chance")
	assert.Contains(t, out, "+2=-2")
	assert.Contains(t, out, "x2=!")
	assert.Contains(t, out, "f3=@")
}

func TestScoreboard(t *testing.T) {
	s := session.New("id", []string{"Ann", "Bo"})
	require.NoError(t, s.Start(nil))
	require.NoError(t, s.CommitRound([]float64{120, 30}))
	require.NoError(t, s.CommitRound([]float64{90}))

	out := Scoreboard(s.Snapshot())
	assert.Contains(t, out, "player")
	assert.Contains(t, out, "R1")
	assert.Contains(t, out, "R2")
	assert.Contains(t, out, "210")
	assert.Contains(t, out, "170")
	assert.Contains(t, out, "reached 200:")
	assert.Contains(t, out, "Ann")
}

func TestParsedScore(t *testing.T) {
	out := ParsedScore(scoring.Parsed{Value: 42, Strategy: scoring.StrategyNumeric})
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "numeric")
}
