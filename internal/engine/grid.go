package engine

// Playfield dimensions. They never change during a game.
const (
	Rows = 20
	Cols = 10
)

// Grid is the playfield. Row 0 is the top, row Rows-1 the floor.
// Each cell is Empty or holds the Kind of the piece that settled there.
type Grid struct {
	cells [Rows][Cols]Kind
}

// inBounds reports whether (row, col) lies on the playfield.
func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Occupied reports whether a settled cell exists at (row, col).
// Out-of-bounds queries return false; bounds are the collision resolver's job.
func (g *Grid) Occupied(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return g.cells[row][col] != Empty
}

// At returns the occupant at (row, col), or Empty when out of bounds.
func (g *Grid) At(row, col int) Kind {
	if !inBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// Set writes an occupant. Out-of-bounds writes are silently ignored.
func (g *Grid) Set(row, col int, k Kind) {
	if !inBounds(row, col) {
		return
	}
	g.cells[row][col] = k
}

// RowFull reports whether every column of row is occupied.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for c := range Cols {
		if g.cells[row][c] == Empty {
			return false
		}
	}
	return true
}

// ClearRow empties every cell of row.
func (g *Grid) ClearRow(row int) {
	if row < 0 || row >= Rows {
		return
	}
	g.cells[row] = [Cols]Kind{}
}

// ShiftDown removes row by copying every row above it down one step.
// Row r takes the contents of row r-1 for r from row down to 1, and row 0
// is left empty.
func (g *Grid) ShiftDown(row int) {
	if row < 0 || row >= Rows {
		return
	}
	for r := row; r > 0; r-- {
		g.cells[r] = g.cells[r-1]
	}
	g.ClearRow(0)
}

// Reset empties the whole grid.
func (g *Grid) Reset() {
	g.cells = [Rows][Cols]Kind{}
}

// Cells returns a copy of the playfield.
func (g *Grid) Cells() [Rows][Cols]Kind {
	return g.cells
}
