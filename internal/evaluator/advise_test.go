package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/flipseven/internal/deck"
)

// residualOf trims a fresh deck down to exactly the given counts
func residualOf(keep map[deck.Card]int) *deck.Deck {
	d := deck.NewDeck()
	for _, card := range deck.Vocabulary() {
		for d.Count(card) > keep[card] {
			d.Remove(card)
		}
	}
	return d
}

func TestAdvise(t *testing.T) {
	t.Parallel()
	hand := mustCards(t, "5, 7")
	residual := residualOf(map[deck.Card]int{
		deck.NewNumber(5):  1,
		deck.NewNumber(9):  1,
		deck.SecondChance: 1,
		deck.X2:           1,
	})

	result := Advise(hand, residual)

	assert.Equal(t, 12, result.CurrentScore)
	assert.Equal(t, Hit, result.Recommendation)
	assert.InDelta(t, 2.25, result.ExpectedValue, 1e-9)
	assert.Equal(t, 4, result.CardsRemaining)
	assert.Equal(t, 2, result.UniqueNumbers)
	assert.False(t, result.HasFlipSeven)

	require.Len(t, result.ExpectedValues, 4)
	expected := []CardEV{
		{Card: deck.X2, Count: 1, Probability: 0.25, Score: 24, Delta: 12, EV: 3},
		{Card: deck.NewNumber(9), Count: 1, Probability: 0.25, Score: 21, Delta: 9, EV: 2.25},
		{Card: deck.SecondChance, Count: 1, Probability: 0.25, Score: 12, Delta: 0, EV: 0},
		{Card: deck.NewNumber(5), Count: 1, Probability: 0.25, Score: 0, Delta: -12, EV: -3},
	}
	assert.Equal(t, expected, result.ExpectedValues)

	assert.InDelta(t, 0.25, result.BustChance, 1e-9)
	assert.Equal(t, []CardOdds{
		{Card: deck.NewNumber(5), Probability: 0.25},
		{Card: deck.NewNumber(7), Probability: 0},
	}, result.Bustable)

	assert.InDelta(t, 0.25, result.EventChance, 1e-9)
	assert.Equal(t, []CardOdds{
		{Card: deck.SecondChance, Probability: 0.25},
		{Card: deck.FlipThree, Probability: 0},
		{Card: deck.Freeze, Probability: 0},
	}, result.Events)
}

func TestAdviseRecommendation(t *testing.T) {
	t.Parallel()

	t.Run("zero expected value stays", func(t *testing.T) {
		result := Advise(nil, residualOf(map[deck.Card]int{deck.SecondChance: 2}))
		assert.Equal(t, 0.0, result.ExpectedValue)
		assert.Equal(t, Stay, result.Recommendation)
	})

	t.Run("negative expected value stays", func(t *testing.T) {
		result := Advise(mustCards(t, "5"), residualOf(map[deck.Card]int{deck.NewNumber(5): 4}))
		assert.InDelta(t, -5.0, result.ExpectedValue, 1e-9)
		assert.Equal(t, Stay, result.Recommendation)
	})

	t.Run("empty hand hits on a fresh deck", func(t *testing.T) {
		result := AdviseCards(nil, nil)
		assert.Equal(t, 0, result.CurrentScore)
		assert.Equal(t, Hit, result.Recommendation)
		assert.Empty(t, result.Bustable)
	})
}

func TestAdviseEmptyResidual(t *testing.T) {
	t.Parallel()
	result := Advise(mustCards(t, "3, 4"), residualOf(nil))

	assert.Equal(t, 7, result.CurrentScore)
	assert.Equal(t, Stay, result.Recommendation)
	assert.Equal(t, 0.0, result.ExpectedValue)
	assert.Equal(t, 0.0, result.BustChance)
	assert.Equal(t, 0.0, result.EventChance)
	assert.Empty(t, result.ExpectedValues)
	assert.Empty(t, result.Bustable)
	assert.Empty(t, result.Events)
	assert.Equal(t, 0, result.CardsRemaining)
}

func TestAdviseBustCountsModifiers(t *testing.T) {
	t.Parallel()
	// Drawing +4 again would not bust, but it is still counted
	result := Advise(mustCards(t, "3, +4, sc"), residualOf(map[deck.Card]int{
		deck.NewModifier(4): 1,
		deck.NewNumber(6):   1,
	}))

	require.Len(t, result.Bustable, 2)
	assert.Equal(t, deck.NewModifier(4), result.Bustable[0].Card)
	assert.InDelta(t, 0.5, result.Bustable[0].Probability, 1e-9)
	assert.Equal(t, deck.NewNumber(3), result.Bustable[1].Card)
	assert.InDelta(t, 0.5, result.BustChance, 1e-9)
}

func TestAdviseFlipSeven(t *testing.T) {
	t.Parallel()
	result := AdviseCards(mustCards(t, "1, 2, 3, 4, 5, 6, 7"), nil)
	assert.Equal(t, 43, result.CurrentScore)
	assert.Equal(t, 7, result.UniqueNumbers)
	assert.True(t, result.HasFlipSeven)
}

func TestAdviseProbabilitiesSumToOne(t *testing.T) {
	t.Parallel()
	drawn := mustCards(t, "2, 10, 1, 3, 8")
	seen := mustCards(t, "11, 12, x2, sc")
	result := AdviseCards(drawn, seen)

	assert.Equal(t, deck.FullDeckSize-9, result.CardsRemaining)
	sum := 0.0
	ev := 0.0
	for _, row := range result.ExpectedValues {
		sum += row.Probability
		ev += row.EV
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, result.ExpectedValue, ev, 1e-9)

	for i := 1; i < len(result.ExpectedValues); i++ {
		assert.GreaterOrEqual(t, result.ExpectedValues[i-1].EV, result.ExpectedValues[i].EV)
	}
	for i := 1; i < len(result.Bustable); i++ {
		assert.GreaterOrEqual(t, result.Bustable[i-1].Probability, result.Bustable[i].Probability)
	}
}

func TestAdviseIsPure(t *testing.T) {
	t.Parallel()
	drawn := mustCards(t, "4, 9, +6, fr")
	seen := mustCards(t, "9, 9, 12, f3")

	first := AdviseCards(drawn, seen)
	second := AdviseCards(drawn, seen)
	assert.Equal(t, first, second)

	// Advise must not touch its inputs
	residual := deck.NewDeck()
	residual.Remove(drawn...)
	before := residual.Snapshot()
	Advise(drawn, residual)
	assert.Equal(t, before, residual.Snapshot())
	assert.Equal(t, mustCards(t, "4, 9, +6, fr"), drawn)
}
