package gomoku

import "fmt"

// Color is the raw state of one cell as stored on a Board.
type Color byte

const (
	NoColor Color = 0
	Black   Color = 1
	White   Color = 2

	// OffBoard is returned by reads outside the grid. It is never
	// stored and is not playable.
	OffBoard Color = 0xff
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case NoColor:
		return "empty"
	case OffBoard:
		return "off-board"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// IsStone reports whether c is Black or White.
func (c Color) IsStone() bool {
	return c == Black || c == White
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b", "1":
		return Black, nil
	case "white", "w", "2":
		return White, nil
	case "empty", "none", "x", "0":
		return NoColor, nil
	default:
		return NoColor, fmt.Errorf("bad color: %q", s)
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
