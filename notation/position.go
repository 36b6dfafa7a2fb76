package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/gomokuarm/gomoku"
)

// ParsePosition reads a board written as rows separated by '/',
// first row first. Within a row, cells are separated by ',': "1" is
// a black stone, "2" a white stone, and "x" or "xN" one or N empty
// cells. The board size is the number of rows.
func ParsePosition(s string) (*gomoku.Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	b, err := gomoku.New(gomoku.Config{Size: len(rows)})
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		cells, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+1, err)
		}
		if len(cells) != len(rows) {
			return nil, fmt.Errorf("row %d bad length: %d: %w", r+1, len(cells), ErrSyntax)
		}
		for c, color := range cells {
			b.Place(r, c, color)
		}
	}
	return b, nil
}

func parseRow(row string) ([]gomoku.Color, error) {
	var out []gomoku.Color
	for _, bit := range strings.Split(row, ",") {
		switch {
		case bit == "1":
			out = append(out, gomoku.Black)
		case bit == "2":
			out = append(out, gomoku.White)
		case strings.HasPrefix(bit, "x"):
			count := 1
			if len(bit) > 1 {
				n, err := strconv.Atoi(bit[1:])
				if err != nil || n < 1 {
					return nil, fmt.Errorf("bad run %q: %w", bit, ErrSyntax)
				}
				count = n
			}
			for i := 0; i < count; i++ {
				out = append(out, gomoku.NoColor)
			}
		default:
			return nil, fmt.Errorf("bad cell %q: %w", bit, ErrSyntax)
		}
	}
	return out, nil
}

func FormatPosition(b *gomoku.Board) string {
	rows := make([]string, 0, b.Size())
	for r := 0; r < b.Size(); r++ {
		rows = append(rows, formatRow(b, r))
	}
	return strings.Join(rows, "/")
}

func formatRow(b *gomoku.Board, r int) string {
	var bits []string
	for c := 0; c < b.Size(); {
		var i int
		for i = 0; c+i < b.Size() && b.Get(r, c+i) == gomoku.NoColor; i++ {
		}
		switch i {
		case 0:
			if b.Get(r, c) == gomoku.Black {
				bits = append(bits, "1")
			} else {
				bits = append(bits, "2")
			}
			c++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		c += i
	}
	return strings.Join(bits, ",")
}

// ParseRequest reads a position optionally followed by a space and
// the side to move. Without a side, the side to move is inferred from
// the stone counts.
func ParseRequest(s string) (*gomoku.Board, gomoku.Color, error) {
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 2 {
		return nil, gomoku.NoColor, fmt.Errorf("request %q: wrong number of words: %w", s, ErrSyntax)
	}
	b, err := ParsePosition(words[0])
	if err != nil {
		return nil, gomoku.NoColor, err
	}
	if len(words) == 1 {
		return b, b.ToMove(), nil
	}
	side, err := gomoku.ParseColor(words[1])
	if err != nil || !side.IsStone() {
		return nil, gomoku.NoColor, fmt.Errorf("bad side %q: %w", words[1], ErrSyntax)
	}
	return b, side, nil
}
