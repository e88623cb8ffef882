package engine

// Collides reports whether p, placed where it stands, overlaps a wall, the
// floor, or a settled cell. Cells above the top row never collide with grid
// contents, so pieces may spawn and rotate partly above the playfield.
func Collides(g *Grid, p ActivePiece) bool {
	for r := range p.Shape {
		for c, filled := range p.Shape[r] {
			if !filled {
				continue
			}
			x := p.X + c
			y := p.Y + r
			if x < 0 || x >= Cols || y >= Rows {
				return true
			}
			if y >= 0 && g.Occupied(y, x) {
				return true
			}
		}
	}
	return false
}
