// Package evaluator scores Flip Seven hands and computes hit/stay advice
// from the composition of the residual deck.
package evaluator

import "github.com/lox/flipseven/internal/deck"

const (
	// FlipSevenCount is the number of distinct number cards that ends a round
	FlipSevenCount = 7

	// FlipSevenBonus is added to the score of a hand holding FlipSevenCount distinct numbers
	FlipSevenBonus = 15
)

// Score returns the score of hand.
//
// Events are ignored. The first repeated number busts the hand and scores 0.
// Otherwise the score is the sum of numbers, doubled if x2 is held, plus all
// modifier bonuses, plus FlipSevenBonus for seven distinct numbers.
func Score(hand []deck.Card) int {
	var seen [13]bool
	distinct, sum, bonus, multiplier := 0, 0, 0, 1

	for _, card := range hand {
		switch card.Kind {
		case deck.Event:
			continue
		case deck.Multiplier:
			multiplier = 2
		case deck.Modifier:
			bonus += card.Value
		case deck.Number:
			if seen[card.Value] {
				return 0
			}
			seen[card.Value] = true
			distinct++
			sum += card.Value
		}
	}

	if distinct == FlipSevenCount {
		bonus += FlipSevenBonus
	}
	return sum*multiplier + bonus
}

// DistinctNumbers counts the distinct number cards in hand
func DistinctNumbers(hand []deck.Card) int {
	var seen [13]bool
	count := 0
	for _, card := range hand {
		if card.IsNumber() && !seen[card.Value] {
			seen[card.Value] = true
			count++
		}
	}
	return count
}

// IsBust reports whether hand holds the same number card twice
func IsBust(hand []deck.Card) bool {
	var seen [13]bool
	for _, card := range hand {
		if !card.IsNumber() {
			continue
		}
		if seen[card.Value] {
			return true
		}
		seen[card.Value] = true
	}
	return false
}
