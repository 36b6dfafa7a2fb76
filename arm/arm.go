// Package arm runs a game between the engine and a human across a
// physical board. The camera side reports the human's stones and the
// plotter side places the engine's.
package arm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

var ErrIllegalStone = errors.New("illegal stone")

type Stone struct {
	Point gomoku.Point
	Color gomoku.Color
}

// Vision reports stones the human has put down, one per call.
type Vision interface {
	NextStone(ctx context.Context) (Stone, error)
}

type Actuator interface {
	PlaceStone(ctx context.Context, p gomoku.Point) error
	// WaitForTurn blocks until the human signals that their move is
	// on the board.
	WaitForTurn(ctx context.Context) error
}

type Controller struct {
	Vision   Vision
	Actuator Actuator
	Player   ai.Player
	// Side is the color the engine plays.
	Side  gomoku.Color
	Board *gomoku.Board
	Log   *zap.SugaredLogger
}

type Result struct {
	Winner gomoku.Color
	Moves  int
}

// Run plays until the game ends or ctx is canceled. When the engine
// has White the human moves first.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	log := c.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if !c.Side.IsStone() {
		return Result{}, fmt.Errorf("engine side %v", c.Side)
	}
	var res Result
	turn := gomoku.Black
	if c.Board.Stones() > 0 {
		turn = c.Board.ToMove()
	}
	for {
		if over, winner := c.Board.GameOver(); over {
			res.Winner = winner
			log.Infow("game over", "winner", winner.String(), "moves", res.Moves)
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if turn == c.Side {
			p, err := c.Player.GetMove(ctx, c.Board, c.Side)
			if err != nil {
				return res, fmt.Errorf("select move: %w", err)
			}
			c.Board.Set(p, c.Side)
			log.Infow("engine move", "point", notation.FormatPoint(p))
			if err := c.Actuator.PlaceStone(ctx, p); err != nil {
				return res, fmt.Errorf("place %s: %w", notation.FormatPoint(p), err)
			}
		} else {
			if err := c.Actuator.WaitForTurn(ctx); err != nil {
				return res, fmt.Errorf("wait for turn: %w", err)
			}
			s, err := c.Vision.NextStone(ctx)
			if err != nil {
				return res, fmt.Errorf("vision: %w", err)
			}
			if s.Color != turn || c.Board.At(s.Point) != gomoku.NoColor {
				return res, fmt.Errorf("%s %s: %w", s.Color, notation.FormatPoint(s.Point), ErrIllegalStone)
			}
			c.Board.Set(s.Point, s.Color)
			log.Infow("human move", "point", notation.FormatPoint(s.Point))
		}
		res.Moves++
		turn = turn.Flip()
	}
}
