package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/flipseven/internal/tui"
)

// TuiCmd runs the interactive advisor
type TuiCmd struct {
	LogFile string `kong:"help='Write debug logs to this file'"`
}

func (c *TuiCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel})
	if c.LogFile != "" {
		f, err := tea.LogToFile(c.LogFile, "flipseven")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{Level: log.DebugLevel, ReportTimestamp: true})
	}

	_, err := tea.NewProgram(tui.New(logger), tea.WithAltScreen()).Run()
	return err
}
