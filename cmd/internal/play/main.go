package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/cli"
	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

type Command struct {
	white string
	black string
	opt   opt.Greedy

	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Gomoku from the command line" }
func (*Command) Usage() string {
	return `play

Play Gomoku on the command-line, against a human or AI.
Players are "human", "greedy" or "rand[:SEED]".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "greedy", "white player")
	flags.StringVar(&c.black, "black", "human", "black player")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Config: gomoku.Config{Size: c.opt.LoadConfig().BoardSize},
		Out:    os.Stdout,
		White:  c.parsePlayer(in, c.white),
		Black:  c.parsePlayer(in, c.black),
		Glyphs: glyphs(c.unicode),
	}
	b, _, err := st.Play()
	if err != nil {
		log.Println("play: ", err)
		return subcommands.ExitFailure
	}
	log.Printf("final position: %s", notation.FormatPosition(b))

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) cli.Player {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in)
	}
	if s == "greedy" {
		w := c.opt.BuildWeights()
		return &cli.AIPlayer{P: ai.NewGreedy(ai.GreedyConfig{Weights: &w})}
	}
	if strings.HasPrefix(s, "rand") {
		var seed int64
		if len(s) > len("rand") {
			i, err := strconv.Atoi(s[len("rand:"):])
			if err != nil {
				log.Fatal(err)
			}
			seed = int64(i)
		}
		return &cli.AIPlayer{P: ai.NewRandom(seed)}
	}
	log.Fatalf("unparseable player: %s", s)
	return nil
}
