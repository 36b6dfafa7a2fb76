package ai

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/nelhage/gomokuarm/gomoku"
)

type RandomAI struct {
	r *rand.Rand
}

// GetMove plays a uniformly random empty cell.
func (r *RandomAI) GetMove(ctx context.Context, b *gomoku.Board, side gomoku.Color) (gomoku.Point, error) {
	var empty []gomoku.Point
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if b.Get(row, col) == gomoku.NoColor {
				empty = append(empty, gomoku.Point{Row: row, Col: col})
			}
		}
	}
	if len(empty) == 0 {
		return gomoku.Point{}, ErrNoMove
	}
	return empty[r.r.Intn(len(empty))], nil
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
