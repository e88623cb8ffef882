package engine

// lock commits the active piece, clears full rows, updates progression and
// brings in the next piece.
func (e *Engine) lock() {
	e.commit()
	e.pieces++

	n := e.clearLines()
	e.lastCleared = n
	e.progress(n)

	e.active = spawn(e.popNext())
	e.canSwap = true
	e.checkSpawn()
}

// commit writes the active piece's cells into the grid.
func (e *Engine) commit() {
	kind := e.active.Kind
	e.active.Cells(func(row, col int) {
		e.grid.Set(row, col, kind)
	})
}

// clearLines scans from the floor up. A full row is removed by shifting
// everything above it down, and the same index is tested again because new
// content has just moved into it.
func (e *Engine) clearLines() int {
	cleared := 0
	for r := Rows - 1; r >= 0; r-- {
		if !e.grid.RowFull(r) {
			continue
		}
		cleared++
		e.grid.ShiftDown(r)
		r++
	}
	return cleared
}

// progress applies the score for n cleared lines. Level rises at most once
// per lock, even when a big clear crosses several thresholds.
func (e *Engine) progress(n int) {
	if n <= 0 {
		return
	}
	e.lines += n
	e.score += n * e.opts.LineScore
	if e.score >= e.level*e.opts.LevelThreshold {
		e.level++
		e.dropInterval = max(e.opts.MinIntervalMs, e.dropInterval-e.opts.IntervalStepMs)
	}
}

// checkSpawn ends the game when the freshly placed active piece already
// overlaps the stack.
func (e *Engine) checkSpawn() {
	if Collides(&e.grid, e.active) {
		e.over = true
	}
}
