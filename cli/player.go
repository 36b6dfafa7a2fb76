package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b *gomoku.Board, side gomoku.Color) gomoku.Point {
	for {
		fmt.Fprintf(c.out, "%s> ", side)
		line, err := c.in.ReadString('\n')
		if err != nil {
			panic(err)
		}
		p, err := notation.ParsePoint(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		if b.At(p) != gomoku.NoColor {
			fmt.Fprintf(c.out, "%s is not an empty cell\n", notation.FormatPoint(p))
			continue
		}
		return p
	}
}

// AIPlayer adapts an ai.Player for the command line. The game loop
// only asks for a move while the board has an empty cell, so a
// failure here is a bug.
type AIPlayer struct {
	P ai.Player
}

func (a *AIPlayer) GetMove(b *gomoku.Board, side gomoku.Color) gomoku.Point {
	p, err := a.P.GetMove(context.Background(), b, side)
	if err != nil {
		log.Fatalf("ai: %v", err)
	}
	return p
}
