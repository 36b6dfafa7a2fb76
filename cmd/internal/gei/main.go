package gei

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/gei"
)

type Command struct {
	opt opt.Greedy
}

func (*Command) Name() string     { return "gei" }
func (*Command) Synopsis() string { return "Launch the engine in GEI mode" }
func (*Command) Usage() string {
	return `gei

Launch the engine in GEI mode, a UCI-like protocol suitable for being
driven by an external GUI or arm controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine := gei.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = c.opt.BuildConfig
	engine.DefaultSize = c.opt.LoadConfig().BoardSize
	if err := engine.Run(ctx); err != nil {
		log.Println("gei: ", err.Error())
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
