package gomokutest

import (
	"fmt"
	"strings"

	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

// Board builds a board from a picture: one line per row, cells
// separated by spaces, "B" black, "W" white and "." empty.
func Board(tpl string) *gomoku.Board {
	lines := strings.Split(strings.Trim(tpl, " \n"), "\n")
	b, err := gomoku.New(gomoku.Config{Size: len(lines)})
	if err != nil {
		panic(err)
	}
	for r, l := range lines {
		cells := strings.Fields(l)
		if len(cells) != len(lines) {
			panic(fmt.Sprintf("row %d: %d cells on a %d board", r, len(cells), len(lines)))
		}
		for c, cell := range cells {
			switch cell {
			case "B":
				b.Place(r, c, gomoku.Black)
			case "W":
				b.Place(r, c, gomoku.White)
			case ".":
			default:
				panic(fmt.Sprintf("bad cell: %q", cell))
			}
		}
	}
	return b
}

func Empty(size int) *gomoku.Board {
	b, err := gomoku.New(gomoku.Config{Size: size})
	if err != nil {
		panic(err)
	}
	return b
}

func Point(s string) gomoku.Point {
	p, err := notation.ParsePoint(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Swap returns a copy of b with every black stone made white and
// every white stone made black.
func Swap(b *gomoku.Board) *gomoku.Board {
	out := b.Clone()
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if col := b.Get(r, c); col.IsStone() {
				out.Place(r, c, col.Flip())
			}
		}
	}
	return out
}
