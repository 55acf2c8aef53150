package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		input        string
		expected     []Card
		wantRejected []string
	}{
		{
			name:     "numbers",
			input:    "2, 10, 1, 3, 8",
			expected: []Card{NewNumber(2), NewNumber(10), NewNumber(1), NewNumber(3), NewNumber(8)},
		},
		{
			name:     "modifiers and events",
			input:    "+4,x2,sc,f3,fr",
			expected: []Card{NewModifier(4), X2, SecondChance, FlipThree, Freeze},
		},
		{
			name:     "aliases",
			input:    "-2, -10, !, $, &, @",
			expected: []Card{NewModifier(2), NewModifier(10), X2, SecondChance, Freeze, FlipThree},
		},
		{
			name:     "case insensitive",
			input:    " X2 , SC,F3 ",
			expected: []Card{X2, SecondChance, FlipThree},
		},
		{
			name:     "empty tokens skipped",
			input:    "5,, ,6,",
			expected: []Card{NewNumber(5), NewNumber(6)},
		},
		{
			name:         "invalid tokens dropped",
			input:        "5, 13, +3, x3, banana, 6",
			expected:     []Card{NewNumber(5), NewNumber(6)},
			wantRejected: []string{"13", "+3", "x3", "banana"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, rejected := ParseCards(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantRejected, rejected)
		})
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	card, err := ParseCard("12")
	require.NoError(t, err)
	assert.Equal(t, NewNumber(12), card)

	card, err = ParseCard("-6")
	require.NoError(t, err)
	assert.Equal(t, NewModifier(6), card)

	_, err = ParseCard("-1")
	assert.True(t, errors.Is(err, ErrUnknownCard))
}

func TestParseCardsStrict(t *testing.T) {
	t.Parallel()

	cards, err := ParseCardsStrict("1, 2, !")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewNumber(1), NewNumber(2), X2}, cards)

	_, err = ParseCardsStrict("1, two")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCard)
	assert.Contains(t, err.Error(), "two")
}

func TestCardString(t *testing.T) {
	t.Parallel()
	// Every token in the vocabulary round trips through ParseCard
	for _, card := range Vocabulary() {
		parsed, err := ParseCard(card.String())
		require.NoError(t, err, card.String())
		assert.Equal(t, card, parsed)
	}

	assert.Equal(t, "0", NewNumber(0).String())
	assert.Equal(t, "+10", NewModifier(10).String())
	assert.Equal(t, "x2", X2.String())
	assert.Equal(t, "fr", Freeze.String())
	assert.Equal(t, "?", Card{Kind: Event, Value: 9}.String())
}

func TestCardTextEncoding(t *testing.T) {
	t.Parallel()

	text, err := FlipThree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "f3", string(text))

	var c Card
	require.NoError(t, c.UnmarshalText([]byte("@")))
	assert.Equal(t, FlipThree, c)

	_, err = NewNumber(13).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestFormatCards(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2, +4, sc", FormatCards([]Card{NewNumber(2), NewModifier(4), SecondChance}))
	assert.Equal(t, "", FormatCards(nil))
}
