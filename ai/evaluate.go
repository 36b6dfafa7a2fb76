package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/gomokuarm/gomoku"
)

// Line is the evaluation of one direction through a cell.
type Line struct {
	Direction gomoku.Point
	Window    Window
	Matched   bool
	Pattern   Pattern
}

type Explanation struct {
	Lines [len(gomoku.Directions)]Line
	Risk  Risk
	Bonus int64
	Score int64
}

// ScoreCell scores p for side as if side had a stone there. It does
// not modify b.
func ScoreCell(cat *Catalog, w *Weights, b *gomoku.Board, p gomoku.Point, side gomoku.Color) int64 {
	e := Explain(cat, w, b, p, side)
	return e.Score
}

// Explain is ScoreCell, keeping the per-direction detail.
func Explain(cat *Catalog, w *Weights, b *gomoku.Board, p gomoku.Point, side gomoku.Color) Explanation {
	var e Explanation
	var open3, forced4, both int
	forcedFour, hasForced := cat.Lookup(ForcedFour)
	for i, d := range gomoku.Directions {
		win := Extract(b, p, d, side)
		win[reach] = symOwn

		l := &e.Lines[i]
		l.Direction = d
		l.Window = win
		l.Pattern, l.Matched = cat.Match(win)
		if !l.Matched {
			continue
		}
		switch l.Pattern.ID {
		case OpenThree:
			open3++
			if hasForced && forcedFour.Matches(win) {
				both++
			}
		case ForcedFour:
			forced4++
		}
		e.Score += l.Pattern.Score
	}
	e.Risk, e.Bonus = w.risk(open3, forced4, both)
	e.Score += e.Bonus
	return e
}

var directionNames = [len(gomoku.Directions)]string{
	"vertical",
	"diagonal",
	"horizontal",
	"anti-diagonal",
}

func ExplainScore(out io.Writer, e *Explanation) {
	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\twindow\tpattern\tscore\n")
	for i, l := range e.Lines {
		if !l.Matched {
			fmt.Fprintf(tw, "%s\t%s\t-\t0\n", directionNames[i], l.Window)
			continue
		}
		pr.Fprintf(tw, "%s\t%s\t%s\t%d\n", directionNames[i], l.Window.String(), l.Pattern.ID.String(), l.Pattern.Score)
	}
	pr.Fprintf(tw, "risk\t\t%s\t%d\n", e.Risk.String(), e.Bonus)
	pr.Fprintf(tw, "total\t\t\t%d\n", e.Score)
	tw.Flush()
}
