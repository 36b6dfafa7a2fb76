package gomoku

import (
	"errors"
	"fmt"
)

const (
	DefaultSize = 11
	// MinSize is the smallest board on which a ±4 window around the
	// center stays on the grid.
	MinSize = 9
)

var ErrBoardSize = errors.New("board too small")

type Config struct {
	Size int
}

// Board is a square grid of stones. A Board is not safe for
// concurrent use; move selection mutates it temporarily.
type Board struct {
	size  int
	cells []Color
}

func New(cfg Config) (*Board, error) {
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Size < MinSize {
		return nil, fmt.Errorf("size %d: %w", cfg.Size, ErrBoardSize)
	}
	return &Board{
		size:  cfg.Size,
		cells: make([]Color, cfg.Size*cfg.Size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = NoColor
	}
}

func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the stone at p, or OffBoard if p is outside the grid.
func (b *Board) At(p Point) Color {
	if !b.InBounds(p) {
		return OffBoard
	}
	return b.cells[p.Row*b.size+p.Col]
}

func (b *Board) Get(row, col int) Color {
	return b.At(Point{row, col})
}

// Set overwrites the cell at p. Writes outside the grid are
// silently dropped.
func (b *Board) Set(p Point, c Color) {
	if !b.InBounds(p) {
		return
	}
	b.cells[p.Row*b.size+p.Col] = c
}

func (b *Board) Place(row, col int, c Color) {
	b.Set(Point{row, col}, c)
}

func (b *Board) Stones() int {
	n := 0
	for _, c := range b.cells {
		if c != NoColor {
			n++
		}
	}
	return n
}

func (b *Board) Full() bool {
	return b.Stones() == len(b.cells)
}

func (b *Board) Center() Point {
	return Point{b.size / 2, b.size / 2}
}

func (b *Board) Clone() *Board {
	out := &Board{size: b.size, cells: make([]Color, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}
