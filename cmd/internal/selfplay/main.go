package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/cmd/internal/opt"
	"github.com/nelhage/gomokuarm/results"
)

type Command struct {
	p1   string
	p2   string
	seed int64

	games   int
	swap    bool
	opening int
	threads int
	verbose bool

	results string

	opt opt.Greedy
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two weight sets against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

-p1 and -p2 are JSON objects overlaid on the engine weights.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "", "player1 weights (JSON)")
	flags.StringVar(&c.p2, "p2", "", "player2 weights (JSON)")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.opening, "opening", 2, "random plies before the engines play")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel games")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	flags.StringVar(&c.results, "results", "", "record the run in this sqlite database")
	c.opt.AddFlags(flags)
}

func (c *Command) weights(js string) ai.Weights {
	w := c.opt.BuildWeights()
	if js != "" {
		if err := json.Unmarshal([]byte(js), &w); err != nil {
			log.Fatalf("weights: %v", err)
		}
	}
	return w
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	cfg := &Config{
		Games:   c.games,
		Size:    c.opt.LoadConfig().BoardSize,
		Swap:    c.swap,
		Threads: c.threads,
		Seed:    c.seed,
		Opening: c.opening,
		Verbose: c.verbose,
		P1:      c.weights(c.p1),
		P2:      c.weights(c.p2),
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Println("selfplay: ", err)
		return subcommands.ExitFailure
	}

	log.Printf("done games=%d seed=%d draws=%d black=%d white=%d",
		st.Count(), c.seed, st.Draws, st.Black, st.White)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tblack\twhite\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].BlackWins, st.Players[0].WhiteWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].BlackWins, st.Players[1].WhiteWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	if c.results != "" {
		if err := record(c.results, cfg, &st); err != nil {
			log.Println("recording results: ", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func record(path string, cfg *Config, st *Stats) error {
	repo, err := results.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	p1, err := json.Marshal(cfg.P1)
	if err != nil {
		return err
	}
	p2, err := json.Marshal(cfg.P2)
	if err != nil {
		return err
	}
	run := &results.Run{
		Size:      cfg.Size,
		Seed:      cfg.Seed,
		Player1:   string(p1),
		Player2:   string(p2),
		Games:     st.Count(),
		P1Wins:    st.Players[0].Wins,
		P2Wins:    st.Players[1].Wins,
		BlackWins: st.Black,
		WhiteWins: st.White,
		Draws:     st.Draws,
	}
	var games []results.Game
	for _, g := range st.Games {
		games = append(games, results.Game{
			Index:   g.Index,
			P1Color: g.P1Color.String(),
			Winner:  g.Winner.String(),
			Moves:   g.Moves,
		})
	}
	if err := repo.InsertRun(run, games); err != nil {
		return err
	}
	log.Printf("recorded run %s", run.ID)
	return nil
}
