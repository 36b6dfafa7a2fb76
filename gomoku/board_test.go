package gomoku

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != DefaultSize {
		t.Errorf("default size=%d", b.Size())
	}
	if b.Stones() != 0 {
		t.Errorf("new board has %d stones", b.Stones())
	}

	for _, sz := range []int{1, 5, 8} {
		_, err := New(Config{Size: sz})
		if !errors.Is(err, ErrBoardSize) {
			t.Errorf("size=%d: err=%v", sz, err)
		}
	}
	if _, err := New(Config{Size: MinSize}); err != nil {
		t.Errorf("size=%d: %v", MinSize, err)
	}
}

func TestOutOfRange(t *testing.T) {
	b, _ := New(Config{Size: 9})
	for _, p := range []Point{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {-4, 12}} {
		if c := b.At(p); c != OffBoard {
			t.Errorf("At(%v)=%s", p, c)
		}
		b.Set(p, Black)
	}
	if b.Stones() != 0 {
		t.Error("off-board write landed on the board")
	}
	if b.Get(0, 0) != NoColor {
		t.Error("corner not empty")
	}
}

func TestPlaceAndClear(t *testing.T) {
	b, _ := New(Config{Size: 11})
	b.Place(3, 4, Black)
	b.Place(3, 4, White)
	b.Place(10, 10, Black)
	if b.Get(3, 4) != White {
		t.Errorf("overwrite: got %s", b.Get(3, 4))
	}
	if b.Stones() != 2 {
		t.Errorf("stones=%d", b.Stones())
	}
	if b.ToMove() != Black {
		t.Errorf("to move=%s", b.ToMove())
	}
	c := b.Clone()
	b.Clear()
	if b.Stones() != 0 {
		t.Error("clear left stones")
	}
	if c.Stones() != 2 {
		t.Error("clone shares storage")
	}
	if b.Center() != (Point{5, 5}) {
		t.Errorf("center=%v", b.Center())
	}
}

func TestGameOver(t *testing.T) {
	b, _ := New(Config{Size: 9})
	if over, _ := b.GameOver(); over {
		t.Fatal("empty board is over")
	}
	for i := 0; i < 4; i++ {
		b.Place(i+2, i+1, White)
	}
	if over, _ := b.GameOver(); over {
		t.Fatal("four is not five")
	}
	b.Place(6, 5, White)
	over, winner := b.GameOver()
	if !over || winner != White {
		t.Errorf("over=%v winner=%s", over, winner)
	}
	if !b.FiveAt(Point{4, 3}) {
		t.Error("FiveAt from the middle of the line")
	}
}

func TestColor(t *testing.T) {
	if Black.Flip() != White || White.Flip() != Black || NoColor.Flip() != NoColor {
		t.Error("flip")
	}
	for _, s := range []string{"black", "white", "empty"} {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatal(err)
		}
		if c.String() != s {
			t.Errorf("%q round-tripped to %q", s, c.String())
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("parsed red")
	}
}
