package arm

import (
	"errors"

	"github.com/nelhage/gomokuarm/gomoku"
)

var ErrDegenerate = errors.New("calibration points share a row or column")

// Calibration maps board cells to plotter coordinates with an
// independent linear fit per axis.
type Calibration struct {
	KX, BX float64
	KY, BY float64
}

// Sample pairs a plotter position with the cell it sits over.
type Sample struct {
	X, Y  float64
	Point gomoku.Point
}

// Fit solves the calibration from two samples taken over cells that
// differ in both row and column.
func Fit(a, b Sample) (Calibration, error) {
	dr := float64(b.Point.Row - a.Point.Row)
	dc := float64(b.Point.Col - a.Point.Col)
	if dr == 0 || dc == 0 {
		return Calibration{}, ErrDegenerate
	}
	var c Calibration
	c.KX = (b.X - a.X) / dr
	c.KY = (b.Y - a.Y) / dc
	c.BX = a.X - c.KX*float64(a.Point.Row)
	c.BY = a.Y - c.KY*float64(a.Point.Col)
	return c, nil
}

func (c Calibration) Convert(p gomoku.Point) (x, y float64) {
	return c.KX*float64(p.Row) + c.BX, c.KY*float64(p.Col) + c.BY
}
