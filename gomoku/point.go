package gomoku

// Point addresses a cell by row and column. A Point is also used as
// a unit row/col delta when it names a direction.
type Point struct {
	Row, Col int
}

// Directions are the four line axes: vertical, the falling diagonal,
// horizontal and the rising diagonal. Their opposites are covered by
// walking negative offsets.
var Directions = [4]Point{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
}

func Add(p, d Point) Point {
	return Point{p.Row + d.Row, p.Col + d.Col}
}

func Scale(d Point, i int) Point {
	return Point{d.Row * i, d.Col * i}
}
