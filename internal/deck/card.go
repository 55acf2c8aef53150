package deck

import (
	"fmt"
	"strconv"
)

// Kind is the category a card belongs to
type Kind uint8

const (
	Number Kind = iota
	Modifier
	Multiplier
	Event
)

// String returns the name of the card kind
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Modifier:
		return "modifier"
	case Multiplier:
		return "multiplier"
	case Event:
		return "event"
	default:
		return "?"
	}
}

// Event card values. Events carry no score, Value only tells them apart.
const (
	secondChance = iota
	flipThree
	freeze
)

// Card represents a single Flip Seven card.
//
// Number cards carry their face value (0-12), modifiers their bonus (2-10)
// and the multiplier its factor (2).
type Card struct {
	Kind  Kind
	Value int
}

var (
	X2           = Card{Kind: Multiplier, Value: 2}
	SecondChance = Card{Kind: Event, Value: secondChance}
	FlipThree    = Card{Kind: Event, Value: flipThree}
	Freeze       = Card{Kind: Event, Value: freeze}
)

// NewNumber creates a number card
func NewNumber(value int) Card {
	return Card{Kind: Number, Value: value}
}

// NewModifier creates an additive modifier card
func NewModifier(bonus int) Card {
	return Card{Kind: Modifier, Value: bonus}
}

// String returns the canonical token for the card (e.g. "7", "+4", "x2", "sc")
func (c Card) String() string {
	switch c.Kind {
	case Number:
		return strconv.Itoa(c.Value)
	case Modifier:
		return "+" + strconv.Itoa(c.Value)
	case Multiplier:
		return "x" + strconv.Itoa(c.Value)
	case Event:
		switch c.Value {
		case secondChance:
			return "sc"
		case flipThree:
			return "f3"
		case freeze:
			return "fr"
		}
	}
	return "?"
}

// IsNumber returns true for number cards
func (c Card) IsNumber() bool {
	return c.Kind == Number
}

// IsEvent returns true for second chance, flip three and freeze
func (c Card) IsEvent() bool {
	return c.Kind == Event
}

// MarshalText encodes the card as its canonical token
func (c Card) MarshalText() ([]byte, error) {
	if indexOf(c) < 0 {
		return nil, fmt.Errorf("%w: %v/%d", ErrUnknownCard, c.Kind, c.Value)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card token, accepting aliases
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// vocabulary lists every card type in the order the deck is built:
// numbers, events, modifiers, then the multiplier.
var vocabulary = buildVocabulary()

func buildVocabulary() []Card {
	cards := make([]Card, 0, 22)
	for v := 0; v <= 12; v++ {
		cards = append(cards, NewNumber(v))
	}
	cards = append(cards, SecondChance, FlipThree, Freeze)
	for bonus := 2; bonus <= 10; bonus += 2 {
		cards = append(cards, NewModifier(bonus))
	}
	return append(cards, X2)
}

// Vocabulary returns every distinct card type in deck order
func Vocabulary() []Card {
	out := make([]Card, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Events returns the three event cards in deck order
func Events() []Card {
	return []Card{SecondChance, FlipThree, Freeze}
}

// indexOf returns the vocabulary position of c, or -1 when c is not a card
func indexOf(c Card) int {
	switch c.Kind {
	case Number:
		if c.Value >= 0 && c.Value <= 12 {
			return c.Value
		}
	case Event:
		if c.Value >= secondChance && c.Value <= freeze {
			return 13 + c.Value
		}
	case Modifier:
		if c.Value >= 2 && c.Value <= 10 && c.Value%2 == 0 {
			return 16 + c.Value/2 - 1
		}
	case Multiplier:
		if c.Value == 2 {
			return 21
		}
	}
	return -1
}

// copiesOf returns how many copies of c a fresh deck holds
func copiesOf(c Card) int {
	switch c.Kind {
	case Number:
		if c.Value <= 1 {
			return 1
		}
		return c.Value
	case Event:
		return 3
	default:
		return 1
	}
}
