package gei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

// Engine speaks a small UCI-like line protocol on behalf of a greedy
// player. It is the seam between the engine and whatever drives the
// arm: the controller reports stones with "place" and asks for a
// reply with "go".
type Engine struct {
	ConfigFactory func(size int) ai.GreedyConfig
	// DefaultSize is the board size until a "newgame N" says
	// otherwise, and again after a bare "newgame".
	DefaultSize int

	in  *bufio.Reader
	out io.Writer

	player *ai.Greedy
	board  *gomoku.Board
	size   int
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:          bufio.NewReader(in),
		out:         out,
		DefaultSize: gomoku.DefaultSize,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	if e.DefaultSize == 0 {
		e.DefaultSize = gomoku.DefaultSize
	}
	e.size = e.DefaultSize
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "gei":
			fmt.Fprintln(e.out, "id name gomokuarm")
			fmt.Fprintln(e.out, "id author Gomoku Arm")
			fmt.Fprintln(e.out, "geiok")
		case "quit":
			return nil
		case "newgame":
			e.player = nil
			e.board = nil
			e.size = e.DefaultSize
			if len(words) > 1 {
				e.size, err = strconv.Atoi(words[1])
				if err != nil {
					return fmt.Errorf("bad size: %s", words[1])
				}
			}
			if _, err := gomoku.New(gomoku.Config{Size: e.size}); err != nil {
				return err
			}
		case "position":
			e.board, err = parsePosition(e.size, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "place":
			if err := e.place(words); err != nil {
				return fmt.Errorf("place: %w", err)
			}
		case "clear":
			if e.board != nil {
				e.board.Clear()
			}
		case "show":
			if e.board == nil {
				return errors.New("no position provided")
			}
			fmt.Fprintf(e.out, "board %s\n", notation.FormatPosition(e.board))
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Printf("error in go: %v", err)
				fmt.Fprintln(e.out, "bestmove none")
			}
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parsePosition(size int, words []string) (*gomoku.Board, error) {
	var b *gomoku.Board
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		var err error
		b, err = gomoku.New(gomoku.Config{Size: size})
		if err != nil {
			return nil, err
		}
		words = words[1:]
	case "board":
		if len(words) < 2 {
			return nil, errors.New("position board: not enough arguments")
		}
		var err error
		b, err = notation.ParsePosition(words[1])
		if err != nil {
			return nil, err
		}
		if b.Size() != size {
			return nil, fmt.Errorf("board has wrong size: got %d, configured for %d", b.Size(), size)
		}
		words = words[2:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return b, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	color := b.ToMove()
	for _, w := range words[1:] {
		p, err := notation.ParsePoint(w)
		if err != nil {
			return nil, err
		}
		if b.At(p) != gomoku.NoColor {
			return nil, fmt.Errorf("move %q: cell is not empty", w)
		}
		b.Set(p, color)
		color = color.Flip()
	}
	return b, nil
}

func (e *Engine) place(words []string) error {
	if e.board == nil {
		return errors.New("no position provided")
	}
	if len(words) != 3 {
		return errors.New("expected <point> <color>")
	}
	p, err := notation.ParsePoint(words[1])
	if err != nil {
		return err
	}
	c, err := gomoku.ParseColor(words[2])
	if err != nil {
		return err
	}
	if !e.board.InBounds(p) {
		return fmt.Errorf("%s is off the board", words[1])
	}
	e.board.Set(p, c)
	return nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.board == nil {
		return errors.New("no position provided")
	}
	if e.player == nil {
		var cfg ai.GreedyConfig
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory(e.size)
		}
		e.player = ai.NewGreedy(cfg)
	}
	side := e.board.ToMove()
	if len(words) > 1 {
		var err error
		side, err = gomoku.ParseColor(words[1])
		if err != nil || !side.IsStone() {
			return fmt.Errorf("bad side: %q", words[1])
		}
	}

	p, err := e.player.GetMove(ctx, e.board, side)
	if err != nil {
		return err
	}
	st := e.player.Stats()
	fmt.Fprintf(e.out, "info side %s nodes %d time %d\n",
		side, st.Evaluated, st.Elapsed.Milliseconds())
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatPoint(p))
	return nil
}
