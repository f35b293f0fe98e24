package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lox/schafkopf/internal/bot"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"schafkopf.hcl" type:"path" help:"Rules file (HCL), defaults apply when it does not exist"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error), overrides the rules file"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play one game between bots at a live table"`
	Simulate SimulateCmd      `cmd:"" help:"Play bot games and report statistics"`
	Replay   ReplayCmd        `cmd:"" help:"Replay a recorded game"`
	Rules    RulesCmd         `cmd:"" help:"Print the effective rules"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("schafkopf"),
		kong.Description("Schafkopf rules engine, simulator and game records"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"bots":    strings.Join(bot.Kinds(), ", "),
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
