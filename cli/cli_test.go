package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/gomokutest"
)

func TestRenderBoard(t *testing.T) {
	b := gomokutest.Board(`
B . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . W . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .`)
	var buf bytes.Buffer
	RenderBoard(nil, &buf, b)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("rendered %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[8], "1.") || !strings.Contains(lines[8], "X") {
		t.Errorf("row 1: %q", lines[8])
	}
	if !strings.Contains(lines[4], "O") {
		t.Errorf("row 5: %q", lines[4])
	}
	if !strings.Contains(lines[9], "a b c d e f g h i") {
		t.Errorf("footer: %q", lines[9])
	}
}

func TestHumanPlayerRetries(t *testing.T) {
	b := gomokutest.Board(`
B . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .
. . . . . . . . .`)
	var out bytes.Buffer
	p := NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("zz\na1\nb2\n")))
	got := p.GetMove(b, gomoku.White)
	if got != (gomoku.Point{Row: 1, Col: 1}) {
		t.Errorf("got %v", got)
	}
	if !strings.Contains(out.String(), "parse error") || !strings.Contains(out.String(), "not an empty cell") {
		t.Errorf("output: %q", out.String())
	}
}

func TestPlayAIGame(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: gomoku.Config{Size: 9},
		Out:    &out,
		Black:  &AIPlayer{ai.NewGreedy(ai.GreedyConfig{})},
		White:  &AIPlayer{ai.NewGreedy(ai.GreedyConfig{})},
	}
	b, winner, err := c.Play()
	if err != nil {
		t.Fatal(err)
	}
	over, w := b.GameOver()
	if !over || w != winner {
		t.Fatalf("over=%v winner=%s reported=%s", over, w, winner)
	}
	if len(c.Moves()) != b.Stones() {
		t.Errorf("moves=%d stones=%d", len(c.Moves()), b.Stones())
	}
	if c.Moves()[0] != b.Center() {
		t.Errorf("first move %v", c.Moves()[0])
	}
	if !strings.Contains(out.String(), "Game Over!") {
		t.Error("no game over banner")
	}
}
