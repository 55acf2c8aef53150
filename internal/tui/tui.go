// Package tui is an interactive terminal advisor: type the drawn and seen
// cards, press enter and read the recommendation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/flipseven/internal/deck"
	"github.com/lox/flipseven/internal/display"
	"github.com/lox/flipseven/internal/evaluator"
)

const (
	fieldDrawn = iota
	fieldSeen
	fieldCount
)

// Model is the Bubble Tea model for the advisor
type Model struct {
	logger *log.Logger

	inputs  [fieldCount]textinput.Model
	focused int
	results viewport.Model

	result   *evaluator.Result
	warning  string
	quitting bool

	width  int
	height int
}

// New creates an advisor model with the drawn field focused
func New(logger *log.Logger) *Model {
	vp := viewport.New(60, 20)
	vp.SetContent(display.Legend())

	m := &Model{
		logger:  logger.WithPrefix("tui"),
		results: vp,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 60
		ti.Prompt = "> "
		ti.PromptStyle = LabelStyle
		m.inputs[i] = ti
	}
	m.inputs[fieldDrawn].Placeholder = "your cards, e.g. 2, 10, +4, x2"
	m.inputs[fieldSeen].Placeholder = "cards seen elsewhere, e.g. 11, 12, sc"
	m.inputs[fieldDrawn].Focus()
	return m
}

// Init starts the cursor blinking
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = max(msg.Width-4, 1)
		m.results.Height = max(msg.Height-12, 1)
		m.logger.Debug("Resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			return m, m.moveFocus(1)
		case "shift+tab":
			return m, m.moveFocus(-1)
		case "enter":
			m.advise()
			return m, nil
		case "ctrl+l":
			m.clear()
			return m, nil
		case "pgup":
			m.results.HalfPageUp()
			return m, nil
		case "pgdown":
			m.results.HalfPageDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// moveFocus steps the focused field forwards or backwards, wrapping around
func (m *Model) moveFocus(step int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = ((m.focused+step)%fieldCount + fieldCount) % fieldCount
	return m.inputs[m.focused].Focus()
}

// advise parses both fields and refreshes the results pane
func (m *Model) advise() {
	drawn, rejectedDrawn := deck.ParseCards(m.inputs[fieldDrawn].Value())
	seen, rejectedSeen := deck.ParseCards(m.inputs[fieldSeen].Value())

	m.warning = ""
	if rejected := append(rejectedDrawn, rejectedSeen...); len(rejected) > 0 {
		m.warning = "ignored: " + strings.Join(rejected, ", ")
		m.logger.Debug("Rejected tokens", "tokens", rejected)
	}

	if len(drawn) == 0 {
		m.result = nil
		m.warning = strings.TrimSpace("enter at least one drawn card " + m.warning)
		m.results.SetContent(display.Legend())
		return
	}

	result := evaluator.AdviseCards(drawn, seen)
	m.result = &result
	m.logger.Debug("Advised", "drawn", deck.FormatCards(drawn), "seen", deck.FormatCards(seen), "recommendation", result.Recommendation)
	m.results.SetContent(display.Advice(result))
	m.results.GotoTop()
}

func (m *Model) clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focused = fieldDrawn
	m.inputs[fieldDrawn].Focus()
	m.result = nil
	m.warning = ""
	m.results.SetContent(display.Legend())
}

// Result returns the most recent advice, if any
func (m *Model) Result() (evaluator.Result, bool) {
	if m.result == nil {
		return evaluator.Result{}, false
	}
	return *m.result, true
}

// Warning returns the current input warning
func (m *Model) Warning() string {
	return m.warning
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the inputs above the results pane
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Flip 7 advisor"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"drawn", "seen"}
	for i, in := range m.inputs {
		fmt.Fprintf(&b, "%s\n%s\n", LabelStyle.Render(labels[i]), in.View())
	}
	if m.warning != "" {
		b.WriteString(WarningStyle.Render(m.warning))
		b.WriteString("\n")
	}

	border := blurredBorder
	if m.result != nil {
		border = focusedBorder
	}
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(m.results.View())
	b.WriteString(pane)
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Tab switch field • Enter advise • Ctrl+L clear • PgUp/PgDn scroll • Esc quit"))

	return b.String()
}
