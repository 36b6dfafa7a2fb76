package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

type Player interface {
	GetMove(b *gomoku.Board, side gomoku.Color) gomoku.Point
}

type Glyphs struct {
	Black, White, Empty string
}

type CLI struct {
	moves []gomoku.Point
	b     *gomoku.Board

	Config gomoku.Config
	Glyphs *Glyphs
	Out    io.Writer
	Black  Player
	White  Player
}

var DefaultGlyphs = Glyphs{
	Black: "X",
	White: "O",
	Empty: ".",
}

var UnicodeGlyphs = Glyphs{
	Black: "●",
	White: "○",
	Empty: "·",
}

// Play runs one game to completion, Black moving first, and returns
// the final board and the winner (NoColor for a draw).
func (c *CLI) Play() (*gomoku.Board, gomoku.Color, error) {
	var err error
	c.moves = nil
	c.b, err = gomoku.New(c.Config)
	if err != nil {
		return nil, gomoku.NoColor, err
	}
	side := gomoku.Black
	for {
		c.render(side)
		if over, winner := c.b.GameOver(); over {
			fmt.Fprintf(c.Out, "Game Over! ")
			if winner == gomoku.NoColor {
				fmt.Fprintf(c.Out, "Draw.\n")
			} else {
				fmt.Fprintf(c.Out, "%s wins after %d moves.\n", winner, len(c.moves))
			}
			return c.b, winner, nil
		}
		var p gomoku.Point
		if side == gomoku.Black {
			p = c.Black.GetMove(c.b, side)
		} else {
			p = c.White.GetMove(c.b, side)
		}
		if c.b.At(p) != gomoku.NoColor {
			fmt.Fprintln(c.Out, "illegal move:", notation.FormatPoint(p))
			continue
		}
		c.b.Set(p, side)
		c.moves = append(c.moves, p)
		fmt.Fprintf(c.Out, "%d. %s %s\n", len(c.moves), side, notation.FormatPoint(p))
		side = side.Flip()
	}
}

func (c *CLI) Moves() []gomoku.Point {
	return c.moves
}

func (c *CLI) render(side gomoku.Color) {
	fmt.Fprintf(c.Out, "\n[%s to play]\n", side)
	RenderBoard(c.Glyphs, c.Out, c.b)
}

func RenderBoard(g *Glyphs, out io.Writer, b *gomoku.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for r := b.Size() - 1; r >= 0; r-- {
		fmt.Fprintf(w, "%d.\t", r+1)
		for c := 0; c < b.Size(); c++ {
			switch b.Get(r, c) {
			case gomoku.Black:
				fmt.Fprintf(w, "%s\t", g.Black)
			case gomoku.White:
				fmt.Fprintf(w, "%s\t", g.White)
			default:
				fmt.Fprintf(w, "%s\t", g.Empty)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for c := 0; c < b.Size(); c++ {
		fmt.Fprintf(w, "%c\t", 'a'+c)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}
