package arm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/notation"
)

var ErrUnexpectedReply = errors.New("unexpected reply from plotter")

// Plotter drives a pick-and-place plotter over a line protocol. It
// writes "move <x> <y>" and "pump" commands and expects "done" after
// each one. A "turn" line from the device means the human pressed
// the button to hand the move back.
type Plotter struct {
	Out io.Writer
	In  *bufio.Reader
	Cal Calibration
	// Fetch is the cell over the stone supply, Idle where the head
	// parks between moves. Both may lie off the board.
	Fetch, Idle gomoku.Point
}

func (p *Plotter) PlaceStone(ctx context.Context, pt gomoku.Point) error {
	steps := []func() error{
		func() error { return p.move(ctx, p.Fetch) },
		func() error { return p.pump(ctx) },
		func() error { return p.move(ctx, pt) },
		func() error { return p.pump(ctx) },
		func() error { return p.move(ctx, p.Idle) },
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plotter) WaitForTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.expect(ctx, "turn")
}

func (p *Plotter) move(ctx context.Context, pt gomoku.Point) error {
	x, y := p.Cal.Convert(pt)
	fmt.Fprintf(p.Out, "move %.2f %.2f\n", x, y)
	return p.expect(ctx, "done")
}

func (p *Plotter) pump(ctx context.Context) error {
	fmt.Fprintln(p.Out, "pump")
	return p.expect(ctx, "done")
}

func (p *Plotter) expect(ctx context.Context, want string) error {
	line, err := readLine(ctx, p.In)
	if err != nil {
		return err
	}
	if got := strings.TrimSpace(line); got != want {
		return fmt.Errorf("want %q, got %q: %w", want, got, ErrUnexpectedReply)
	}
	return nil
}

// LineVision reads the human's stones as points in notation, one per
// line. It stands in for the camera when the board is watched by a
// person at a terminal.
type LineVision struct {
	In    *bufio.Reader
	Color gomoku.Color
}

func (v *LineVision) NextStone(ctx context.Context) (Stone, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Stone{}, err
		}
		line, err := readLine(ctx, v.In)
		if err != nil {
			return Stone{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := notation.ParsePoint(line)
		if err != nil {
			return Stone{}, err
		}
		return Stone{Point: p, Color: v.Color}, nil
	}
}

// readLine reads one line from r, giving up when ctx is done. A read
// abandoned that way keeps running in the background and still owns r,
// so r must not be read again after readLine returns ctx.Err().
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := r.ReadString('\n')
		ch <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}
