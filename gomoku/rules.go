package gomoku

// ToMove returns the side to play, assuming Black opened and the
// players alternated.
func (b *Board) ToMove() Color {
	black, white := b.count()
	if black > white {
		return White
	}
	return Black
}

func (b *Board) count() (black, white int) {
	for _, c := range b.cells {
		switch c {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// FiveAt reports whether the stone at p is part of an unbroken line
// of five or more of its color.
func (b *Board) FiveAt(p Point) bool {
	c := b.At(p)
	if !c.IsStone() {
		return false
	}
	for _, d := range Directions {
		n := 1
		for i := 1; b.At(Add(p, Scale(d, i))) == c; i++ {
			n++
		}
		for i := -1; b.At(Add(p, Scale(d, i))) == c; i-- {
			n++
		}
		if n >= 5 {
			return true
		}
	}
	return false
}

// GameOver reports whether either color has five in a row or the
// board is full. winner is NoColor for a draw.
func (b *Board) GameOver() (over bool, winner Color) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			p := Point{r, c}
			if b.FiveAt(p) {
				return true, b.At(p)
			}
		}
	}
	if b.Full() {
		return true, NoColor
	}
	return false, NoColor
}
