package evaluator

import (
	"sort"

	"github.com/lox/flipseven/internal/deck"
)

// Recommendation is the advised action for the next turn
type Recommendation string

const (
	Hit  Recommendation = "HIT"
	Stay Recommendation = "STAY"
)

// CardEV is the outcome of drawing one specific card type next
type CardEV struct {
	Card        deck.Card `json:"card"`
	Count       int       `json:"count"`
	Probability float64   `json:"probability"`
	Score       int       `json:"score"`
	Delta       int       `json:"delta"`
	EV          float64   `json:"ev"`
}

// CardOdds is the chance the next draw is a given card
type CardOdds struct {
	Card        deck.Card `json:"card"`
	Probability float64   `json:"probability"`
}

// Result is a read-only snapshot of the advice for one hand
type Result struct {
	CurrentScore   int            `json:"current_score"`
	Recommendation Recommendation `json:"recommendation"`
	ExpectedValue  float64        `json:"expected_value"`
	ExpectedValues []CardEV       `json:"expected_values"`
	BustChance     float64        `json:"bust_chance"`
	Bustable       []CardOdds     `json:"bustable"`
	EventChance    float64        `json:"event_chance"`
	Events         []CardOdds     `json:"events"`
	UniqueNumbers  int            `json:"unique_numbers"`
	HasFlipSeven   bool           `json:"has_flip_seven"`
	CardsRemaining int            `json:"cards_remaining"`
}

// Advise computes the expected value of drawing one more card from residual
// and recommends HIT when it is strictly positive.
//
// The bust chance sums the draw probability of every non-event card held,
// modifiers and x2 included, so it can overstate the true bust probability.
func Advise(hand []deck.Card, residual *deck.Deck) Result {
	unique := DistinctNumbers(hand)
	result := Result{
		CurrentScore:   Score(hand),
		Recommendation: Stay,
		ExpectedValues: []CardEV{},
		Bustable:       []CardOdds{},
		Events:         []CardOdds{},
		UniqueNumbers:  unique,
		HasFlipSeven:   unique == FlipSevenCount,
	}

	snapshot := residual.Snapshot()
	result.CardsRemaining = snapshot.Total
	if snapshot.Total == 0 {
		return result
	}
	total := float64(snapshot.Total)

	next := make([]deck.Card, len(hand)+1)
	copy(next, hand)
	for _, cc := range snapshot.Counts {
		next[len(hand)] = cc.Card
		score := Score(next)
		delta := score - result.CurrentScore
		p := float64(cc.Count) / total
		ev := p * float64(delta)

		result.ExpectedValue += ev
		result.ExpectedValues = append(result.ExpectedValues, CardEV{
			Card:        cc.Card,
			Count:       cc.Count,
			Probability: p,
			Score:       score,
			Delta:       delta,
			EV:          ev,
		})
	}
	sort.SliceStable(result.ExpectedValues, func(i, j int) bool {
		return result.ExpectedValues[i].EV > result.ExpectedValues[j].EV
	})

	if result.ExpectedValue > 0 {
		result.Recommendation = Hit
	}

	for _, card := range hand {
		if card.IsEvent() {
			continue
		}
		p := float64(snapshot.Count(card)) / total
		result.Bustable = append(result.Bustable, CardOdds{Card: card, Probability: p})
		result.BustChance += p
	}
	sortOdds(result.Bustable)

	for _, event := range deck.Events() {
		p := float64(snapshot.Count(event)) / total
		result.Events = append(result.Events, CardOdds{Card: event, Probability: p})
		result.EventChance += p
	}
	sortOdds(result.Events)

	return result
}

func sortOdds(odds []CardOdds) {
	sort.SliceStable(odds, func(i, j int) bool {
		return odds[i].Probability > odds[j].Probability
	})
}

// AdviseCards is the query boundary: it builds a fresh deck, removes the
// drawn cards and then the seen cards, and advises on drawn.
func AdviseCards(drawn, seen []deck.Card) Result {
	residual := deck.NewDeck()
	residual.Remove(drawn...)
	residual.Remove(seen...)
	return Advise(drawn, residual)
}
