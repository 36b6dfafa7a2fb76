// Package server exposes move selection over gRPC and HTTP. Every
// request carries its own position, so requests share nothing but the
// weights and the pattern catalog.
package server

import (
	"errors"

	"go.uber.org/zap"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

// DefaultTop is how many candidates Analyze reports.
const DefaultTop = 10

type Config struct {
	Weights *ai.Weights
	Log     *zap.SugaredLogger
	Top     int
}

type Server struct {
	w   ai.Weights
	cat *ai.Catalog
	log *zap.SugaredLogger
	top int
}

func New(cfg Config) *Server {
	s := &Server{
		w:   ai.DefaultWeights,
		cat: ai.DefaultCatalog(),
		log: cfg.Log,
		top: cfg.Top,
	}
	if cfg.Weights != nil {
		s.w = *cfg.Weights
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}
	if s.top <= 0 {
		s.top = DefaultTop
	}
	return s
}

func (s *Server) player() *ai.Greedy {
	w := s.w
	return ai.NewGreedy(ai.GreedyConfig{Weights: &w, Catalog: s.cat, Log: s.log})
}

type Move struct {
	Side  gomoku.Color `json:"side"`
	Point string       `json:"move"`
}

type Candidate struct {
	Point   string `json:"point"`
	Offense int64  `json:"offense"`
	Defense int64  `json:"defense"`
	Value   int64  `json:"value"`
}

type Analysis struct {
	Side       gomoku.Color `json:"side"`
	Best       string       `json:"best"`
	Value      int64        `json:"value"`
	Evaluated  int          `json:"evaluated"`
	Candidates []Candidate  `json:"candidates"`
}

func (s *Server) selectMove(req string) (*Move, error) {
	b, side, err := notation.ParseRequest(req)
	if err != nil {
		return nil, err
	}
	p, err := s.player().SelectMove(b, side)
	if err != nil {
		return nil, err
	}
	return &Move{Side: side, Point: notation.FormatPoint(p)}, nil
}

// analyze ranks the cells of the requested position. An empty board
// still gets the opening answer as its best move, matching
// selectMove.
func (s *Server) analyze(req string) (*Analysis, error) {
	b, side, err := notation.ParseRequest(req)
	if err != nil {
		return nil, err
	}
	g := s.player()
	cs, err := g.Analyze(b, side)
	if err != nil {
		return nil, err
	}
	out := &Analysis{
		Side:      side,
		Best:      notation.FormatPoint(cs[0].Point),
		Value:     cs[0].Value,
		Evaluated: g.Stats().Evaluated,
	}
	if b.Stones() == 0 {
		center := b.Center()
		out.Best = notation.FormatPoint(center)
		for _, c := range cs {
			if c.Point == center {
				out.Value = c.Value
				break
			}
		}
	}
	for i, c := range cs {
		if i == s.top {
			break
		}
		out.Candidates = append(out.Candidates, Candidate{
			Point:   notation.FormatPoint(c.Point),
			Offense: c.Offense,
			Defense: c.Defense,
			Value:   c.Value,
		})
	}
	return out, nil
}

type errorKind int

const (
	kindInternal errorKind = iota
	kindBadRequest
	kindNoMove
)

func classify(err error) errorKind {
	switch {
	case errors.Is(err, ai.ErrNoMove):
		return kindNoMove
	case errors.Is(err, notation.ErrSyntax), errors.Is(err, gomoku.ErrBoardSize):
		return kindBadRequest
	default:
		return kindInternal
	}
}
