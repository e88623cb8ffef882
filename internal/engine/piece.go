package engine

// Shape is a rectangular occupancy matrix, indexed [row][col].
type Shape [][]bool

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r := range s {
		out[r] = make([]bool, len(s[r]))
		copy(out[r], s[r])
	}
	return out
}

// RotateCW returns a new shape turned a quarter clockwise.
// A H×W shape becomes W×H with result[c][H-1-r] = s[r][c].
func (s Shape) RotateCW() Shape {
	h, w := s.Height(), s.Width()
	out := newShape(w, h)
	for r := range h {
		for c := range w {
			out[c][h-1-r] = s[r][c]
		}
	}
	return out
}

// RotateCCW returns a new shape turned a quarter counter-clockwise.
// A H×W shape becomes W×H with result[W-1-c][r] = s[r][c].
func (s Shape) RotateCCW() Shape {
	h, w := s.Height(), s.Width()
	out := newShape(w, h)
	for r := range h {
		for c := range w {
			out[w-1-c][r] = s[r][c]
		}
	}
	return out
}

// Equal reports whether both shapes have identical dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for r := range s {
		for _, filled := range s[r] {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the shape as rows of '#' and '.', mainly for test output.
func (s Shape) String() string {
	b := make([]byte, 0, s.Height()*(s.Width()+1))
	for r := range s {
		if r > 0 {
			b = append(b, '\n')
		}
		for _, filled := range s[r] {
			if filled {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

func newShape(h, w int) Shape {
	out := make(Shape, h)
	for r := range out {
		out[r] = make([]bool, w)
	}
	return out
}

// ActivePiece is the falling piece. X, Y locate the top-left corner of the
// shape's bounding box on the grid.
type ActivePiece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// spawn places a piece at the top-center of the grid.
func spawn(p Piece) ActivePiece {
	return ActivePiece{
		Kind:  p.Kind,
		Shape: p.Shape,
		X:     Cols/2 - p.Shape.Width()/2,
		Y:     0,
	}
}

// Piece strips the position.
func (a ActivePiece) Piece() Piece {
	return Piece{Kind: a.Kind, Shape: a.Shape}
}

// Clone returns a copy that shares no memory with a.
func (a ActivePiece) Clone() ActivePiece {
	a.Shape = a.Shape.Clone()
	return a
}

// Cells calls fn with the grid coordinates of every occupied cell.
func (a ActivePiece) Cells(fn func(row, col int)) {
	for r := range a.Shape {
		for c, filled := range a.Shape[r] {
			if filled {
				fn(a.Y+r, a.X+c)
			}
		}
	}
}
