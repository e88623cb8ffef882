package engine

import (
	"math/rand"
)

// Options tunes the rules. Zero values fall back to DefaultOptions, except
// IntervalStepMs where 0 is meaningful (speed never increases).
type Options struct {
	HoldEnabled       bool  // allow CmdHold
	Preview           int   // number of queued next pieces (>= 1)
	InitialIntervalMs int   // gravity interval at level 1
	MinIntervalMs     int   // floor for the gravity interval
	IntervalStepMs    int   // interval reduction per level-up
	LineScore         int   // points per cleared line
	LevelThreshold    int   // score needed per level: level-up when score >= level*threshold
	Seed              int64 // RNG seed for piece selection
}

// DefaultOptions returns the classic rules: 1000ms start, -100ms per level
// down to 100ms, 100 points a line, a level every 500 points, hold on.
func DefaultOptions() Options {
	return Options{
		HoldEnabled:       true,
		Preview:           1,
		InitialIntervalMs: 1000,
		MinIntervalMs:     100,
		IntervalStepMs:    100,
		LineScore:         100,
		LevelThreshold:    500,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Preview < 1 {
		o.Preview = d.Preview
	}
	if o.MinIntervalMs <= 0 {
		o.MinIntervalMs = d.MinIntervalMs
	}
	if o.InitialIntervalMs <= 0 {
		o.InitialIntervalMs = d.InitialIntervalMs
	}
	if o.InitialIntervalMs < o.MinIntervalMs {
		o.InitialIntervalMs = o.MinIntervalMs
	}
	if o.IntervalStepMs < 0 {
		o.IntervalStepMs = 0
	}
	if o.LineScore <= 0 {
		o.LineScore = d.LineScore
	}
	if o.LevelThreshold <= 0 {
		o.LevelThreshold = d.LevelThreshold
	}
	return o
}

// Engine owns one game. It is not safe for concurrent use; the driver must
// serialize Apply, Tick and NewGame.
type Engine struct {
	opts Options
	rng  *rand.Rand

	grid    Grid
	active  ActivePiece
	queue   []Piece
	hold    Piece // Kind == Empty when the slot is empty
	canSwap bool

	score        int
	level        int
	lines        int
	lastCleared  int
	pieces       int
	dropInterval int
	dropCounter  int
	over         bool
}

// New creates an engine and starts its first game.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	e := &Engine{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	e.NewGame()
	return e
}

// Options returns the rules in effect.
func (e *Engine) Options() Options {
	return e.opts
}

// NewGame discards the current game and starts a fresh one: empty grid,
// score 0, level 1, initial interval, empty hold and a new queue.
func (e *Engine) NewGame() Snapshot {
	e.grid.Reset()
	e.score = 0
	e.level = 1
	e.lines = 0
	e.lastCleared = 0
	e.pieces = 0
	e.dropInterval = e.opts.InitialIntervalMs
	e.dropCounter = 0
	e.over = false
	e.hold = Piece{}
	e.canSwap = true

	e.active = spawn(e.draw())
	e.queue = e.queue[:0]
	e.fillQueue()
	return e.Snapshot()
}

// Tick advances gravity by elapsedMs. Once the accumulated time exceeds the
// drop interval the piece falls one row and the counter restarts at zero.
func (e *Engine) Tick(elapsedMs int) Snapshot {
	if e.over || elapsedMs <= 0 {
		return e.Snapshot()
	}
	e.dropCounter += elapsedMs
	if e.dropCounter > e.dropInterval {
		e.softDrop()
		e.dropCounter = 0
	}
	return e.Snapshot()
}

// Apply executes one command. Rejected moves and any command issued after
// game over leave the state untouched.
func (e *Engine) Apply(cmd Command) Snapshot {
	if e.over {
		return e.Snapshot()
	}
	switch cmd {
	case CmdMoveLeft:
		e.shift(-1)
	case CmdMoveRight:
		e.shift(1)
	case CmdSoftDrop:
		e.softDrop()
	case CmdHardDrop:
		e.hardDrop()
	case CmdRotateCW:
		e.rotate(e.active.Shape.RotateCW())
	case CmdRotateCCW:
		e.rotate(e.active.Shape.RotateCCW())
	case CmdHold:
		e.holdActive()
	}
	return e.Snapshot()
}

func (e *Engine) shift(dx int) {
	e.active.X += dx
	if Collides(&e.grid, e.active) {
		e.active.X -= dx
	}
}

// rotate swaps in a candidate shape at the same X, Y and keeps it only if
// the placement is legal. There are no wall kicks.
func (e *Engine) rotate(candidate Shape) {
	original := e.active.Shape
	e.active.Shape = candidate
	if Collides(&e.grid, e.active) {
		e.active.Shape = original
	}
}

func (e *Engine) softDrop() {
	e.active.Y++
	if Collides(&e.grid, e.active) {
		e.active.Y--
		e.lock()
	}
}

func (e *Engine) hardDrop() {
	// y strictly increases and the floor collides, so this ends within Rows steps.
	for !Collides(&e.grid, e.active) {
		e.active.Y++
	}
	e.active.Y--
	e.lock()
}
