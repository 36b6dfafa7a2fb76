package arm

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/gomokutest"
)

// firstEmpty plays the first empty cell in row-major order.
type firstEmpty struct {
	b     *gomoku.Board
	color gomoku.Color
	calls int
}

func (v *firstEmpty) NextStone(ctx context.Context) (Stone, error) {
	v.calls++
	for r := 0; r < v.b.Size(); r++ {
		for c := 0; c < v.b.Size(); c++ {
			if v.b.Get(r, c) == gomoku.NoColor {
				return Stone{gomoku.Point{Row: r, Col: c}, v.color}, nil
			}
		}
	}
	return Stone{}, errors.New("board full")
}

type fixedVision struct {
	stones []Stone
}

func (v *fixedVision) NextStone(ctx context.Context) (Stone, error) {
	if len(v.stones) == 0 {
		return Stone{}, errors.New("no more stones")
	}
	s := v.stones[0]
	v.stones = v.stones[1:]
	return s, nil
}

type recorder struct {
	placed []gomoku.Point
	waits  int
}

func (r *recorder) PlaceStone(ctx context.Context, p gomoku.Point) error {
	r.placed = append(r.placed, p)
	return nil
}

func (r *recorder) WaitForTurn(ctx context.Context) error {
	r.waits++
	return nil
}

func TestControllerPlaysGame(t *testing.T) {
	b := gomokutest.Empty(9)
	rec := &recorder{}
	c := &Controller{
		Vision:   &firstEmpty{b: b, color: gomoku.White},
		Actuator: rec,
		Player:   ai.NewGreedy(ai.GreedyConfig{}),
		Side:     gomoku.Black,
		Board:    b,
	}
	res, err := c.Run(context.Background())
	require.NoError(t, err)

	over, winner := b.GameOver()
	assert.True(t, over)
	assert.Equal(t, winner, res.Winner)
	assert.Equal(t, b.Stones(), res.Moves)
	require.NotEmpty(t, rec.placed)
	assert.Equal(t, b.Center(), rec.placed[0])
	for _, p := range rec.placed {
		assert.Equal(t, gomoku.Black, b.At(p))
	}
	assert.Equal(t, res.Moves-len(rec.placed), rec.waits)
}

func TestControllerHumanFirst(t *testing.T) {
	b := gomokutest.Empty(9)
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	v := &fixedVision{stones: []Stone{{b.Center(), gomoku.Black}}}
	c := &Controller{
		Vision:   v,
		Actuator: rec,
		Player:   ai.NewGreedy(ai.GreedyConfig{}),
		Side:     gomoku.White,
		Board:    b,
	}
	_, err := c.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no more stones")
	assert.Equal(t, 2, rec.waits)
	require.Len(t, rec.placed, 1)
	assert.NotEqual(t, b.Center(), rec.placed[0])
	assert.Equal(t, gomoku.White, b.At(rec.placed[0]))
}

func TestControllerRejectsOccupied(t *testing.T) {
	b := gomokutest.Empty(9)
	v := &fixedVision{stones: []Stone{{b.Center(), gomoku.White}}}
	c := &Controller{
		Vision:   v,
		Actuator: &recorder{},
		Player:   ai.NewGreedy(ai.GreedyConfig{}),
		Side:     gomoku.Black,
		Board:    b,
	}
	_, err := c.Run(context.Background())
	assert.True(t, errors.Is(err, ErrIllegalStone), "err=%v", err)
}

func TestControllerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Controller{
		Vision:   &fixedVision{},
		Actuator: &recorder{},
		Player:   ai.NewGreedy(ai.GreedyConfig{}),
		Side:     gomoku.Black,
		Board:    gomokutest.Empty(9),
	}
	_, err := c.Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestCalibration(t *testing.T) {
	cal, err := Fit(
		Sample{X: 10, Y: 20, Point: gomoku.Point{Row: 0, Col: 0}},
		Sample{X: 30, Y: 60, Point: gomoku.Point{Row: 2, Col: 4}},
	)
	require.NoError(t, err)
	assert.Equal(t, Calibration{KX: 10, BX: 10, KY: 10, BY: 20}, cal)
	x, y := cal.Convert(gomoku.Point{Row: 1, Col: 1})
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 30.0, y)

	_, err = Fit(
		Sample{Point: gomoku.Point{Row: 1, Col: 0}},
		Sample{Point: gomoku.Point{Row: 1, Col: 5}},
	)
	assert.Equal(t, ErrDegenerate, err)
}

func TestPlotter(t *testing.T) {
	var out bytes.Buffer
	p := &Plotter{
		Out:   &out,
		In:    bufio.NewReader(strings.NewReader(strings.Repeat("done\n", 5) + "turn\n")),
		Cal:   Calibration{KX: 1, KY: 1},
		Fetch: gomoku.Point{Row: -1, Col: 0},
		Idle:  gomoku.Point{Row: 0, Col: -2},
	}
	require.NoError(t, p.PlaceStone(context.Background(), gomoku.Point{Row: 2, Col: 3}))
	require.NoError(t, p.WaitForTurn(context.Background()))
	assert.Equal(t, "move -1.00 0.00\npump\nmove 2.00 3.00\npump\nmove 0.00 -2.00\n", out.String())

	p.In = bufio.NewReader(strings.NewReader("error\n"))
	err := p.PlaceStone(context.Background(), gomoku.Point{})
	assert.True(t, errors.Is(err, ErrUnexpectedReply))
}

func TestLineVision(t *testing.T) {
	v := &LineVision{In: bufio.NewReader(strings.NewReader("\nc4\n")), Color: gomoku.White}
	s, err := v.NextStone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stone{gomoku.Point{Row: 3, Col: 2}, gomoku.White}, s)
}

func TestReadsStopOnCancel(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	p := &Plotter{Out: io.Discard, In: bufio.NewReader(r)}
	err := p.WaitForTurn(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "err=%v", err)

	r2, w2 := io.Pipe()
	t.Cleanup(func() { w2.Close() })
	ctx, cancel = context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	v := &LineVision{In: bufio.NewReader(r2), Color: gomoku.White}
	_, err = v.NextStone(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "err=%v", err)

	r3, w3 := io.Pipe()
	t.Cleanup(func() { w3.Close() })
	ctx, cancel = context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	p = &Plotter{Out: io.Discard, In: bufio.NewReader(r3)}
	err = p.PlaceStone(ctx, gomoku.Point{Row: 1, Col: 1})
	assert.True(t, errors.Is(err, context.Canceled), "err=%v", err)
}
