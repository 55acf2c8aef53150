package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCard is returned for tokens outside the card vocabulary
var ErrUnknownCard = errors.New("unknown card")

// Aliases maps shorthand tokens to canonical ones. They avoid switching
// keyboards on a phone: "-2" for "+2", "!" for "x2" and so on.
var Aliases = map[string]string{
	"-2":  "+2",
	"-4":  "+4",
	"-6":  "+6",
	"-8":  "+8",
	"-10": "+10",
	"!":   "x2",
	"$":   "sc",
	"&":   "fr",
	"@":   "f3",
}

var byToken = func() map[string]Card {
	m := make(map[string]Card, len(vocabulary))
	for _, card := range vocabulary {
		m[card.String()] = card
	}
	return m
}()

// NormalizeToken trims and lower-cases a token and resolves aliases
func NormalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := Aliases[token]; ok {
		return canonical
	}
	return token
}

// ParseCard parses a single card token such as "7", "+4", "-4", "x2" or "$"
func ParseCard(token string) (Card, error) {
	card, ok := byToken[NormalizeToken(token)]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, strings.TrimSpace(token))
	}
	return card, nil
}

// SplitTokens splits comma-separated input into normalized, non-empty tokens
func SplitTokens(input string) []string {
	var tokens []string
	for _, part := range strings.Split(input, ",") {
		if t := NormalizeToken(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ParseCards parses comma-separated card tokens. Unknown tokens are dropped
// and returned in rejected so callers can report them.
func ParseCards(input string) (cards []Card, rejected []string) {
	cards = []Card{}
	for _, token := range SplitTokens(input) {
		card, ok := byToken[token]
		if !ok {
			rejected = append(rejected, token)
			continue
		}
		cards = append(cards, card)
	}
	return cards, rejected
}

// ParseCardsStrict parses comma-separated card tokens, failing on the first
// unknown token.
func ParseCardsStrict(input string) ([]Card, error) {
	cards, rejected := ParseCards(input)
	if len(rejected) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, rejected[0])
	}
	return cards, nil
}

// FormatCards joins cards as a comma-separated token list
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}
