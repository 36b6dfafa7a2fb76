package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/gomokuarm/cmd/internal/analyze"
	"github.com/nelhage/gomokuarm/cmd/internal/arm"
	"github.com/nelhage/gomokuarm/cmd/internal/gei"
	"github.com/nelhage/gomokuarm/cmd/internal/play"
	"github.com/nelhage/gomokuarm/cmd/internal/selfplay"
	"github.com/nelhage/gomokuarm/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&gei.Command{}, "engine")
	subcommands.Register(&arm.Command{}, "engine")
	subcommands.Register(&serve.Command{}, "engine")
	subcommands.Register(&selfplay.Command{}, "tuning")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
