package blocks

import "github.com/vovakirdan/tui-blocks/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Paused   bool
	TooSmall bool
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:    g.frame,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Engine:   g.eng.Snapshot(),
	}
}
