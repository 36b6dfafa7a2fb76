package gei

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokuarm/ai"
)

func run(t *testing.T, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(script), &out)
	err := e.Run(context.Background())
	return out.String(), err
}

func bestmoves(out string) []string {
	var moves []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "bestmove ") {
			moves = append(moves, strings.TrimPrefix(l, "bestmove "))
		}
	}
	return moves
}

func TestHandshake(t *testing.T) {
	out, err := run(t, "gei\nisready\nquit\nisready\n")
	require.NoError(t, err)
	assert.Equal(t, "id name gomokuarm\nid author Gomoku Arm\ngeiok\nreadyok\n", out)
}

func TestOpening(t *testing.T) {
	out, err := run(t, "newgame 11\nposition startpos\ngo\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"f6"}, bestmoves(out))
}

func TestPlaceAndGo(t *testing.T) {
	script := strings.Join([]string{
		"newgame 9",
		"position startpos",
		"place e5 black",
		"go white",
		"show",
		"",
	}, "\n")
	out, err := run(t, script)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3"}, bestmoves(out))
	assert.Contains(t, out, "board x9/x9/x9/x9/x4,1,x4/x9/x9/x9/x9\n")
	assert.Contains(t, out, "info side white nodes 80")
}

func TestPositionMoves(t *testing.T) {
	script := "newgame 11\nposition startpos moves f6 g7 f7 g8 f8 g9 f9\ngo\n"
	out, err := run(t, script)
	require.NoError(t, err)
	moves := bestmoves(out)
	require.Len(t, moves, 1)
	assert.Contains(t, []string{"f5", "f10"}, moves[0])
}

func TestFullBoard(t *testing.T) {
	var rows []string
	for r := 0; r < 9; r++ {
		var cells []string
		for c := 0; c < 9; c++ {
			if (r/2+c)%2 == 0 {
				cells = append(cells, "1")
			} else {
				cells = append(cells, "2")
			}
		}
		rows = append(rows, strings.Join(cells, ","))
	}
	out, err := run(t, "newgame 9\nposition board "+strings.Join(rows, "/")+"\ngo black\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"none"}, bestmoves(out))
}

func TestConfigFactory(t *testing.T) {
	var sizes []int
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("newgame 9\nposition startpos\nplace a1 white\ngo\n"), &out)
	e.ConfigFactory = func(size int) ai.GreedyConfig {
		sizes = append(sizes, size)
		return ai.GreedyConfig{}
	}
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, []int{9}, sizes)
}

func TestErrors(t *testing.T) {
	cases := []string{
		"bogus\n",
		"newgame 5\n",
		"newgame nine\n",
		"place a1 black\n",
		"newgame 9\nposition board x9/x9\n",
		"newgame 11\nposition board x9/x9/x9/x9/x9/x9/x9/x9/x9\n",
		"newgame 9\nposition startpos moves e5 e5\n",
		"newgame 9\nposition startpos\nplace z1 black\n",
		"show\n",
	}
	for _, tc := range cases {
		_, err := run(t, tc)
		assert.Error(t, err, "script %q", tc)
	}
}

func TestDefaultSize(t *testing.T) {
	var out bytes.Buffer
	var sizes []int
	e := NewEngine(strings.NewReader("newgame\nposition startpos\nshow\ngo\nnewgame 9\nnewgame\nposition startpos\ngo\n"), &out)
	e.DefaultSize = 15
	e.ConfigFactory = func(size int) ai.GreedyConfig {
		sizes = append(sizes, size)
		return ai.GreedyConfig{}
	}
	require.NoError(t, e.Run(context.Background()))
	rows := strings.TrimSuffix(strings.Repeat("x15/", 15), "/")
	assert.Contains(t, out.String(), "board "+rows+"\n")
	assert.Equal(t, []string{"h8", "h8"}, bestmoves(out.String()))
	assert.Equal(t, []int{15, 15}, sizes)
}

func TestDefaultSizeBeforeNewgame(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("position board x9/x9/x9/x9/x9/x9/x9/x9/x9\n"), &out)
	e.DefaultSize = 9
	assert.NoError(t, e.Run(context.Background()))
}
