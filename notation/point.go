package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/gomokuarm/gomoku"
)

var ErrSyntax = errors.New("syntax error")

// FormatPoint renders p as a column letter followed by a 1-based row
// number, so {Row: 5, Col: 5} is "f6".
func FormatPoint(p gomoku.Point) string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

func ParsePoint(s string) (gomoku.Point, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return gomoku.Point{}, fmt.Errorf("point %q: %w", s, ErrSyntax)
	}
	if s[0] < 'a' || s[0] > 'z' {
		return gomoku.Point{}, fmt.Errorf("point %q: bad column: %w", s, ErrSyntax)
	}
	// Atoi alone would take "a+3" and "a01".
	if s[1] < '1' || s[1] > '9' {
		return gomoku.Point{}, fmt.Errorf("point %q: bad row: %w", s, ErrSyntax)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return gomoku.Point{}, fmt.Errorf("point %q: bad row: %w", s, ErrSyntax)
	}
	return gomoku.Point{Row: row - 1, Col: int(s[0] - 'a')}, nil
}
