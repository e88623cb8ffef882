package engine

// draw picks a catalog piece uniformly at random.
func (e *Engine) draw() Piece {
	return NewPiece(Kind(e.rng.Intn(KindCount)) + KindI)
}

// fillQueue tops the lookahead queue up to the configured preview depth.
func (e *Engine) fillQueue() {
	for len(e.queue) < e.opts.Preview {
		e.queue = append(e.queue, e.draw())
	}
}

// popNext removes the head of the queue and immediately refills it.
func (e *Engine) popNext() Piece {
	e.fillQueue()
	next := e.queue[0]
	e.queue = append(e.queue[:0], e.queue[1:]...)
	e.fillQueue()
	return next
}

// holdActive stashes the active piece. With an empty slot the next piece
// comes in; otherwise the held piece swaps in at a fresh spawn position,
// keeping its shape. Only one hold is allowed between locks.
func (e *Engine) holdActive() {
	if !e.opts.HoldEnabled || !e.canSwap {
		return
	}
	current := e.active.Piece()
	if e.hold.Kind == Empty {
		e.active = spawn(e.popNext())
	} else {
		e.active = spawn(e.hold)
	}
	e.hold = current
	e.canSwap = false
	e.checkSpawn()
}
