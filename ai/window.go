package ai

import "github.com/nelhage/gomokuarm/gomoku"

const (
	WindowLen = 2*reach + 1
	reach     = 4
)

const (
	symEmpty byte = '0'
	symOwn   byte = '1'
	symOther byte = '2'
)

// Window is the line of cells at offsets -4..+4 from a point, seen
// from one side: '0' empty, '1' own stone, '2' opposing stone or off
// the board.
type Window [WindowLen]byte

func (w Window) String() string {
	return string(w[:])
}

// Extract reads the window through p along d. Cells off the board
// read as blocked, so every window has the same length and offset 0
// is always the middle symbol.
func Extract(b *gomoku.Board, p, d gomoku.Point, side gomoku.Color) Window {
	var w Window
	for i := -reach; i <= reach; i++ {
		c := b.At(gomoku.Add(p, gomoku.Scale(d, i)))
		switch {
		case c == gomoku.NoColor:
			w[i+reach] = symEmpty
		case c == side:
			w[i+reach] = symOwn
		default:
			w[i+reach] = symOther
		}
	}
	return w
}
