package display

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	HitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	StayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	CardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	PositiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	NegativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	FlipSevenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
