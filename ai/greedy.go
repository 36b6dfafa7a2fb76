package ai

import (
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/context"

	"github.com/nelhage/gomokuarm/gomoku"
)

var ErrNoMove = errors.New("no legal move")

type GreedyConfig struct {
	Weights *Weights
	Catalog *Catalog
	Log     *zap.SugaredLogger
}

type Stats struct {
	Evaluated int
	Elapsed   time.Duration
}

// Candidate is the assessment of one empty cell.
type Candidate struct {
	Point   gomoku.Point
	Offense int64
	Defense int64
	Value   int64
}

// Greedy is a one-ply player: every empty cell is scored for the
// side to move and for its opponent, and the best weighted sum wins.
//
// A Greedy may not be shared between goroutines, and the board must
// not be touched by anyone else while a move is being selected.
type Greedy struct {
	w   Weights
	cat *Catalog
	log *zap.SugaredLogger
	st  Stats
}

func NewGreedy(cfg GreedyConfig) *Greedy {
	g := &Greedy{
		w:   DefaultWeights,
		cat: cfg.Catalog,
		log: cfg.Log,
	}
	if cfg.Weights != nil {
		g.w = *cfg.Weights
	}
	if g.cat == nil {
		g.cat = DefaultCatalog()
	}
	if g.log == nil {
		g.log = zap.NewNop().Sugar()
	}
	return g
}

func (g *Greedy) Weights() Weights {
	return g.w
}

// Stats describes the most recent SelectMove or Analyze call.
func (g *Greedy) Stats() Stats {
	return g.st
}

func (g *Greedy) GetMove(ctx context.Context, b *gomoku.Board, side gomoku.Color) (gomoku.Point, error) {
	if err := ctx.Err(); err != nil {
		return gomoku.Point{}, err
	}
	return g.SelectMove(b, side)
}

// SelectMove returns the best cell for side. An empty board is
// answered with its center; a full one with ErrNoMove. Among equal
// values the first cell in row-major order wins.
func (g *Greedy) SelectMove(b *gomoku.Board, side gomoku.Color) (gomoku.Point, error) {
	if b.Stones() == 0 {
		g.st = Stats{}
		return b.Center(), nil
	}
	var best Candidate
	found := false
	g.scan(b, side, func(c Candidate) {
		if !found || c.Value > best.Value {
			best = c
			found = true
		}
	})
	if !found {
		return gomoku.Point{}, ErrNoMove
	}
	g.log.Debugw("selected move",
		"side", side,
		"row", best.Point.Row,
		"col", best.Point.Col,
		"offense", best.Offense,
		"defense", best.Defense,
		"value", best.Value,
	)
	return best.Point, nil
}

// Analyze scores every empty cell for side and returns them best
// first, keeping row-major order among ties. Unlike SelectMove it
// has no special case for the empty board.
func (g *Greedy) Analyze(b *gomoku.Board, side gomoku.Color) ([]Candidate, error) {
	var out []Candidate
	g.scan(b, side, func(c Candidate) {
		out = append(out, c)
	})
	if len(out) == 0 {
		return nil, ErrNoMove
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

func (g *Greedy) scan(b *gomoku.Board, side gomoku.Color, visit func(Candidate)) {
	start := time.Now()
	g.st = Stats{}
	other := side.Flip()
	attack := g.w.AttackCoefficient(side)
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			p := gomoku.Point{Row: r, Col: c}
			if b.At(p) != gomoku.NoColor {
				continue
			}
			b.Set(p, side)
			offense := ScoreCell(g.cat, &g.w, b, p, side)
			b.Set(p, other)
			defense := ScoreCell(g.cat, &g.w, b, p, other)
			b.Set(p, gomoku.NoColor)

			g.st.Evaluated++
			visit(Candidate{
				Point:   p,
				Offense: offense,
				Defense: defense,
				Value:   int64(float64(offense)*attack) + defense,
			})
		}
	}
	g.st.Elapsed = time.Since(start)
	g.log.Debugw("scanned board",
		"side", side,
		"evaluated", g.st.Evaluated,
		"elapsed", g.st.Elapsed,
	)
}
