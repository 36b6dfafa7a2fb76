package ai

import (
	"github.com/nelhage/gomokuarm/gomoku"
	"golang.org/x/net/context"
)

type Player interface {
	GetMove(ctx context.Context, b *gomoku.Board, side gomoku.Color) (gomoku.Point, error)
}
