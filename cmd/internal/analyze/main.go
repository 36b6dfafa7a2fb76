package analyze

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/cli"
	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

type Command struct {
	quiet     bool
	top       int
	explain   string
	variation string

	opt opt.Greedy
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Rank the candidate moves of a position" }
func (*Command) Usage() string {
	return `analyze [options] POSITION [SIDE]

Score every empty cell of POSITION for SIDE (by default, the side to
move) and print the best candidates.

Use -variation to play additional moves before analysis, and
-explain to show the pattern matches behind one cell's score.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.IntVar(&c.top, "top", 10, "number of candidates to list")
	flags.StringVar(&c.explain, "explain", "", "explain the score of this cell")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves after the given position")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		log.Println("Must supply a position")
		return subcommands.ExitUsageError
	}
	b, side, err := notation.ParseRequest(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Fatal("parse: ", err)
	}
	if c.variation != "" {
		side = playVariation(b, side, c.variation)
	}

	w := c.opt.BuildWeights()
	cat := ai.DefaultCatalog()
	g := ai.NewGreedy(ai.GreedyConfig{Weights: &w, Catalog: cat})

	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, b)
		fmt.Println()
	}

	if c.explain != "" {
		p, err := notation.ParsePoint(c.explain)
		if err != nil {
			log.Fatal("-explain: ", err)
		}
		if b.At(p) != gomoku.NoColor {
			log.Fatalf("-explain: %s is not an empty cell", c.explain)
		}
		for _, s := range []gomoku.Color{side, side.Flip()} {
			e := ai.Explain(cat, &w, b, p, s)
			fmt.Printf("%s at %s:\n", s, c.explain)
			ai.ExplainScore(os.Stdout, &e)
			fmt.Println()
		}
	}

	cs, err := g.Analyze(b, side)
	if err != nil {
		log.Fatal("analyze: ", err)
	}
	best, err := g.SelectMove(b, side)
	if err != nil {
		log.Fatal("select: ", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 4, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "point\toffense\tdefense\tvalue\t\n")
	for i, cand := range cs {
		if i == c.top {
			break
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n",
			notation.FormatPoint(cand.Point), cand.Offense, cand.Defense, cand.Value)
	}
	tw.Flush()
	fmt.Printf("\n%s plays %s (%d cells evaluated)\n", side, notation.FormatPoint(best), len(cs))

	return subcommands.ExitSuccess
}

func playVariation(b *gomoku.Board, side gomoku.Color, v string) gomoku.Color {
	for _, w := range strings.Fields(v) {
		p, err := notation.ParsePoint(w)
		if err != nil {
			log.Fatalf("-variation: %v", err)
		}
		if b.At(p) != gomoku.NoColor {
			log.Fatalf("-variation: %s is not an empty cell", w)
		}
		b.Set(p, side)
		side = side.Flip()
	}
	return side
}
