package engine

// Snapshot is a read-only copy of the game, safe to keep after further
// commands. Renderers draw from it; tests compare it.
type Snapshot struct {
	Grid    [Rows][Cols]Kind
	Active  ActivePiece
	Next    Piece   // head of the queue
	Queue   []Piece // full lookahead, Queue[0] == Next
	Hold    Piece   // Kind == Empty when nothing is held
	CanSwap bool

	Score          int
	Level          int
	Lines          int // total lines cleared this game
	LastCleared    int // lines cleared by the most recent lock
	Pieces         int // pieces locked this game
	DropIntervalMs int
	Over           bool
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	queue := make([]Piece, len(e.queue))
	for i, p := range e.queue {
		queue[i] = Piece{Kind: p.Kind, Shape: p.Shape.Clone()}
	}
	var next Piece
	if len(queue) > 0 {
		next = queue[0]
	}
	return Snapshot{
		Grid:           e.grid.Cells(),
		Active:         e.active.Clone(),
		Next:           next,
		Queue:          queue,
		Hold:           Piece{Kind: e.hold.Kind, Shape: e.hold.Shape.Clone()},
		CanSwap:        e.canSwap,
		Score:          e.score,
		Level:          e.level,
		Lines:          e.lines,
		LastCleared:    e.lastCleared,
		Pieces:         e.pieces,
		DropIntervalMs: e.dropInterval,
		Over:           e.over,
	}
}

// HasHold reports whether a piece is in the hold slot.
func (s Snapshot) HasHold() bool {
	return s.Hold.Kind != Empty
}

// Occupied reports whether the settled grid has a block at (row, col).
func (s Snapshot) Occupied(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return s.Grid[row][col] != Empty
}

// ActiveAt reports whether the falling piece covers (row, col).
func (s Snapshot) ActiveAt(row, col int) bool {
	r := row - s.Active.Y
	c := col - s.Active.X
	if r < 0 || r >= s.Active.Shape.Height() || c < 0 || c >= s.Active.Shape.Width() {
		return false
	}
	return s.Active.Shape[r][c]
}
