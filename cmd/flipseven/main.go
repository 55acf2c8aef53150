package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Advise     AdviseCmd        `cmd:"" help:"Recommend hit or stay for a hand"`
	Score      ScoreCmd         `cmd:"" help:"Score a round entry (cards or numbers)"`
	Tui        TuiCmd           `cmd:"" help:"Run the interactive advisor"`
	Simulate   SimulateCmd      `cmd:"" help:"Sample one-card draws to cross-check the advice"`
	Serve      ServeCmd         `cmd:"" help:"Run the HTTP and WebSocket server"`
	Scoreboard ScoreboardCmd    `cmd:"" help:"Print the standings of a session on a running server"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flipseven"),
		kong.Description("Flip 7 scoring and expected-value advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
