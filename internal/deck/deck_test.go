package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/flipseven/internal/randutil"
)

func TestNewDeckComposition(t *testing.T) {
	t.Parallel()
	d := NewDeck()

	assert.Equal(t, FullDeckSize, d.CardsRemaining())
	assert.Equal(t, 1, d.Count(NewNumber(0)))
	assert.Equal(t, 1, d.Count(NewNumber(1)))
	for v := 2; v <= 12; v++ {
		assert.Equal(t, v, d.Count(NewNumber(v)), "number %d", v)
	}
	for _, event := range Events() {
		assert.Equal(t, 3, d.Count(event), event.String())
	}
	for bonus := 2; bonus <= 10; bonus += 2 {
		assert.Equal(t, 1, d.Count(NewModifier(bonus)))
	}
	assert.Equal(t, 1, d.Count(X2))

	numbers := 0
	for v := 0; v <= 12; v++ {
		numbers += d.Count(NewNumber(v))
	}
	assert.Equal(t, 79, numbers)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes one instance per occurrence", func(t *testing.T) {
		d := NewDeck()
		d.Remove(NewNumber(12), NewNumber(12), X2)
		assert.Equal(t, 10, d.Count(NewNumber(12)))
		assert.Equal(t, 0, d.Count(X2))
		assert.Equal(t, FullDeckSize-3, d.CardsRemaining())
	})

	t.Run("absent card is ignored", func(t *testing.T) {
		d := NewDeck()
		d.Remove(NewNumber(0))
		before := d.Snapshot()

		d.Remove(NewNumber(0), NewNumber(0))
		assert.Equal(t, before, d.Snapshot())
		assert.Equal(t, 0, d.Count(NewNumber(0)))
	})

	t.Run("unknown card is ignored", func(t *testing.T) {
		d := NewDeck()
		d.Remove(NewNumber(42), Card{Kind: Modifier, Value: 3})
		assert.Equal(t, FullDeckSize, d.CardsRemaining())
	})

	t.Run("drawn and seen removed independently", func(t *testing.T) {
		d := NewDeck()
		d.Remove(NewNumber(1))
		d.Remove(NewNumber(1), NewNumber(2))
		assert.Equal(t, 0, d.Count(NewNumber(1)))
		assert.Equal(t, 1, d.Count(NewNumber(2)))
		assert.Equal(t, FullDeckSize-2, d.CardsRemaining())
	})
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	d.Remove(NewNumber(0), SecondChance)

	s := d.Snapshot()
	assert.Equal(t, FullDeckSize-2, s.Total)
	assert.Equal(t, 0, s.Count(NewNumber(0)))
	assert.Equal(t, 2, s.Count(SecondChance))
	require.Len(t, s.Counts, 21)
	assert.Equal(t, NewNumber(1), s.Counts[0].Card)
	assert.Equal(t, X2, s.Counts[len(s.Counts)-1].Card)

	sum := 0
	for _, cc := range s.Counts {
		sum += cc.Count
	}
	assert.Equal(t, s.Total, sum)
	assert.InDelta(t, 12.0/92.0, s.Probability(NewNumber(12)), 1e-12)
}

func TestEmptyDeck(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	d.Remove(Vocabulary()...)
	for d.CardsRemaining() > 0 {
		d.Remove(d.Snapshot().Counts[0].Card)
	}

	assert.True(t, d.IsEmpty())
	s := d.Snapshot()
	assert.Empty(t, s.Counts)
	assert.Equal(t, 0.0, s.Probability(NewNumber(12)))

	_, ok := d.Draw(randutil.New(1))
	assert.False(t, ok)
}

func TestDrawExhaustsDeck(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	rng := randutil.New(42)

	drawn := make(map[Card]int)
	for i := 0; i < FullDeckSize; i++ {
		card, ok := d.Draw(rng)
		require.True(t, ok)
		drawn[card]++
	}
	assert.True(t, d.IsEmpty())

	fresh := NewDeck()
	for _, card := range Vocabulary() {
		assert.Equal(t, fresh.Count(card), drawn[card], card.String())
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	c := d.Clone()
	c.Remove(NewNumber(5))
	assert.Equal(t, 5, d.Count(NewNumber(5)))
	assert.Equal(t, 4, c.Count(NewNumber(5)))
}
