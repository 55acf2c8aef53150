package deck

import (
	rand "math/rand/v2"
)

// FullDeckSize is the number of cards in a fresh Flip Seven deck
const FullDeckSize = 94

// Deck is a multiset of cards not yet known to be out of play.
// Counts are kept per card type in vocabulary order.
type Deck struct {
	counts [22]int
	total  int
}

// NewDeck creates a fresh 94-card Flip Seven deck
func NewDeck() *Deck {
	d := &Deck{}
	for i, card := range vocabulary {
		n := copiesOf(card)
		d.counts[i] = n
		d.total += n
	}
	return d
}

// Remove takes one matching instance out of the deck for every card given.
// Cards that are no longer in the deck are ignored.
func (d *Deck) Remove(cards ...Card) {
	for _, card := range cards {
		i := indexOf(card)
		if i < 0 || d.counts[i] == 0 {
			continue
		}
		d.counts[i]--
		d.total--
	}
}

// Count returns the remaining copies of card
func (d *Deck) Count(card Card) int {
	i := indexOf(card)
	if i < 0 {
		return 0
	}
	return d.counts[i]
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return d.total
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.total == 0
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	c := *d
	return &c
}

// Draw removes and returns a random card, weighted by remaining copies
func (d *Deck) Draw(rng *rand.Rand) (Card, bool) {
	if d.total == 0 {
		return Card{}, false
	}

	n := rng.IntN(d.total)
	for i, count := range d.counts {
		if n < count {
			d.counts[i]--
			d.total--
			return vocabulary[i], true
		}
		n -= count
	}
	return Card{}, false
}

// CardCount pairs a card type with its remaining copies
type CardCount struct {
	Card  Card
	Count int
}

// Snapshot is a frozen view of the deck's composition
type Snapshot struct {
	Counts []CardCount
	Total  int
}

// Snapshot lists every card type still present, in deck order
func (d *Deck) Snapshot() Snapshot {
	s := Snapshot{Total: d.total}
	for i, count := range d.counts {
		if count > 0 {
			s.Counts = append(s.Counts, CardCount{Card: vocabulary[i], Count: count})
		}
	}
	return s
}

// Count returns the copies of card recorded in the snapshot
func (s Snapshot) Count(card Card) int {
	for _, cc := range s.Counts {
		if cc.Card == card {
			return cc.Count
		}
	}
	return 0
}

// Probability returns the chance the next draw is card, or 0 for an empty snapshot
func (s Snapshot) Probability(card Card) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Count(card)) / float64(s.Total)
}
