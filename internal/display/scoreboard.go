package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/flipseven/internal/scoring"
	"github.com/lox/flipseven/internal/session"
)

// Scoreboard renders players with their total, points left and every round
func Scoreboard(snap session.Snapshot) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	header := []string{"player", "total", "left"}
	for i := range snap.History {
		header = append(header, fmt.Sprintf("R%d", i+1))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for p, name := range snap.Players {
		row := []string{name, formatScore(snap.Totals[p]), formatScore(snap.Left[p])}
		for _, round := range snap.History {
			v := 0.0
			if p < len(round) {
				v = round[p]
			}
			row = append(row, formatScore(v))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()

	if len(snap.Leaders) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", FlipSevenStyle.Render("reached "+formatScore(snap.Target)+":"), strings.Join(snap.Leaders, ", "))
	}
	return b.String()
}

// ParsedScore describes how a round entry was read
func ParsedScore(p scoring.Parsed) string {
	return fmt.Sprintf("%s %s", formatScore(p.Value), MutedStyle.Render("("+string(p.Strategy)+")"))
}

// formatScore prints whole numbers without decimals
func formatScore(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
