package selfplay

import (
	"context"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
)

type Config struct {
	Games   int
	Size    int
	Swap    bool
	Threads int
	Seed    int64
	// Opening is the number of random plies played before the
	// engines take over.
	Opening int
	Verbose bool

	P1, P2 ai.Weights
}

type Stats struct {
	Players [2]struct {
		Wins      int
		BlackWins int
		WhiteWins int
	}
	Black, White int
	Draws        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Black + s.White + s.Draws
}

type Result struct {
	Index   int
	P1Color gomoku.Color
	Winner  gomoku.Color
	Moves   int
	Final   *gomoku.Board
}

func (s *Stats) add(r Result) {
	switch r.Winner {
	case gomoku.Black:
		s.Black++
	case gomoku.White:
		s.White++
	default:
		s.Draws++
	}
	if r.Winner != gomoku.NoColor {
		pst := &s.Players[0]
		if r.Winner != r.P1Color {
			pst = &s.Players[1]
		}
		if r.Winner == gomoku.Black {
			pst.BlackWins++
		} else {
			pst.WhiteWins++
		}
		pst.Wins++
	}
	s.Games = append(s.Games, r)
}

// Simulate plays every game of c on a pool of c.Threads workers.
// Each game draws its own seed up front, so results do not depend on
// scheduling.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	n := c.Games
	if c.Swap {
		n *= 2
	}
	r := rand.New(rand.NewSource(c.Seed))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = r.Int63()
	}

	results := make([]Result, n)
	g, ctx := errgroup.WithContext(ctx)
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			res, err := playGame(ctx, c, i, seeds[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, res := range results {
		if c.Verbose {
			log.Printf("game n=%d p1=%s winner=%s moves=%d",
				res.Index, res.P1Color, res.Winner, res.Moves)
		}
		st.add(res)
	}
	return st, nil
}

func playGame(ctx context.Context, c *Config, i int, seed int64) (Result, error) {
	b, err := gomoku.New(gomoku.Config{Size: c.Size})
	if err != nil {
		return Result{}, err
	}
	p1color := gomoku.Black
	if c.Swap && i%2 == 1 {
		p1color = gomoku.White
	}
	p1, p2 := c.P1, c.P2
	var black, white ai.Player = ai.NewGreedy(ai.GreedyConfig{Weights: &p1}),
		ai.NewGreedy(ai.GreedyConfig{Weights: &p2})
	if p1color == gomoku.White {
		black, white = white, black
	}
	opening := ai.NewRandom(seed)

	res := Result{Index: i, P1Color: p1color}
	side := gomoku.Black
	for {
		if over, winner := b.GameOver(); over {
			res.Winner = winner
			res.Final = b
			return res, nil
		}
		var pl ai.Player
		switch {
		case res.Moves < c.Opening:
			pl = opening
		case side == gomoku.Black:
			pl = black
		default:
			pl = white
		}
		p, err := pl.GetMove(ctx, b, side)
		if err != nil {
			return res, err
		}
		b.Set(p, side)
		res.Moves++
		side = side.Flip()
	}
}
