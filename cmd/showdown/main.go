package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Deal random showdowns and decide them"`
	Decide   DecideCmd        `cmd:"" help:"Decide a showdown from given cards"`
	Classify ClassifyCmd      `cmd:"" help:"List every category a hand matches"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many showdowns and tally the results"`
	Audit    AuditCmd         `cmd:"" help:"Compare decisions with a full hand evaluator"`
	Serve    ServeCmd         `cmd:"" help:"Serve showdowns over WebSocket"`
	Play     PlayCmd          `cmd:"" help:"Deal and decide showdowns interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Heads-up Texas Hold'em showdown resolver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
