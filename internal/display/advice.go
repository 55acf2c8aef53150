// Package display renders advice and scoreboards as terminal text.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/evaluator"
)

// Percent formats a probability as a percentage with two decimals
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// SignedDelta formats a score change with an explicit plus sign
func SignedDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}

// Recommendation renders HIT in green and STAY in red
func Recommendation(r evaluator.Recommendation) string {
	if r == evaluator.Hit {
		return HitStyle.Render(string(r))
	}
	return StayStyle.Render(string(r))
}

// Advice renders a full advisory result
func Advice(r evaluator.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", Recommendation(r.Recommendation))

	progress := fmt.Sprintf("%d/%d", r.UniqueNumbers, evaluator.FlipSevenCount)
	if r.HasFlipSeven {
		progress = FlipSevenStyle.Render("✨ " + progress + " ✨")
	}
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", HeaderStyle.Render("current score"), r.CurrentScore)
	fmt.Fprintf(w, "%s\t%.2f\n", HeaderStyle.Render("expected value"), r.ExpectedValue)
	fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("numbers until flip 7"), progress)
	fmt.Fprintf(w, "%s\t%d\n", HeaderStyle.Render("cards remaining"), r.CardsRemaining)
	_ = w.Flush()

	fmt.Fprintf(&b, "\n%s\n", HeaderStyle.Render("expected values by card"))
	if len(r.ExpectedValues) == 0 {
		fmt.Fprintf(&b, "%s\n", MutedStyle.Render("No cards remaining"))
	}
	for _, row := range r.ExpectedValues {
		fmt.Fprintf(&b, "%s\n", EVLine(row))
	}

	fmt.Fprintf(&b, "\n%s\n", HeaderStyle.Render("bust chance: "+Percent(r.BustChance)))
	b.WriteString(oddsBlock(r.Bustable, "No bust cards remaining"))

	fmt.Fprintf(&b, "\n%s\n", HeaderStyle.Render("event chance: "+Percent(r.EventChance)))
	b.WriteString(oddsBlock(r.Events, "No event cards remaining"))

	return b.String()
}

// EVLine renders one row of the EV table: card (p%) → total (delta) | EV
func EVLine(row evaluator.CardEV) string {
	ev := fmt.Sprintf("%6.2f", row.EV)
	switch {
	case row.EV > 0:
		ev = PositiveStyle.Render(ev)
	case row.EV < 0:
		ev = NegativeStyle.Render(ev)
	}
	return fmt.Sprintf("%s (%6s) → %3d (%4s) | EV: %s",
		CardStyle.Render(fmt.Sprintf("%3s", row.Card)),
		Percent(row.Probability),
		row.Score,
		SignedDelta(row.Delta),
		ev)
}

func oddsBlock(odds []evaluator.CardOdds, empty string) string {
	var b strings.Builder
	shown := 0
	for _, o := range odds {
		if o.Probability == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s (%6s)\n", CardStyle.Render(fmt.Sprintf("%3s", o.Card)), Percent(o.Probability))
		shown++
	}
	if shown == 0 {
		fmt.Fprintf(&b, "%s\n", MutedStyle.Render(empty))
	}
	return b.String()
}

// Legend lists the card types and the shorthand aliases
func Legend() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("cards") + "\n")
	b.WriteString("0-12, +2, +4, +6, +8, +10, x2, sc, f3, fr\n")
	b.WriteString(MutedStyle.Render("sc = second chance, f3 = flip 3, fr = freeze") + "\n")
	b.WriteString(HeaderStyle.Render("aliases") + "\n")

	var aliases []string
	for _, card := range deck.Vocabulary() {
		for alias, canonical := range deck.Aliases {
			if canonical == card.String() {
				aliases = append(aliases, fmt.Sprintf("%s=%s", canonical, alias))
			}
		}
	}
	b.WriteString(strings.Join(aliases, " | ") + "\n")
	return b.String()
}
