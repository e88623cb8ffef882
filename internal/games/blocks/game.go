// Package blocks adapts the falling-block engine to the platform's
// fixed-step Game interface: it turns frames into elapsed milliseconds,
// actions into engine commands, and owns pause and restart.
package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Variant selects the rule set a registered game plays with.
type Variant int

const (
	VariantModern  Variant = iota // hold enabled
	VariantClassic                // no hold slot
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	variant Variant
	rules   *config.BlocksConfig // fixed rules; nil loads from disk on Reset

	cfg     config.BlocksConfig
	eng     *engine.Engine
	snap    engine.Snapshot
	clock   frameClock
	runtime core.RuntimeConfig

	frame    uint64
	paused   bool
	tooSmall bool
}

// New creates the default game with hold enabled.
func New() *Game {
	return &Game{variant: VariantModern}
}

// NewClassic creates the game without hold.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithRules creates a game that ignores config files and presets.
func NewWithRules(v Variant, rules config.BlocksConfig) *Game {
	return &Game{variant: v, rules: &rules}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "blocks_classic"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Blocks (Classic)"
	}
	return "Blocks"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Falling blocks without the hold slot"
	}
	return "Falling blocks with hold and preview"
}

// Reset starts a fresh game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = g.loadRules()

	g.eng = engine.New(g.cfg.Options(runtime.Seed))
	g.snap = g.eng.Snapshot()
	g.clock = newFrameClock(runtime.TickRate)
	g.frame = 0
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

func (g *Game) loadRules() config.BlocksConfig {
	var cfg config.BlocksConfig
	if g.rules != nil {
		cfg = *g.rules
	} else {
		loaded, err := config.LoadBlocks(configPath)
		if err != nil {
			loaded = config.DefaultBlocksConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBlocksPreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}
	if g.variant == VariantClassic {
		cfg.Pieces.Hold = false
	}
	return cfg
}

// Resize records the terminal size. A zero size means unknown and never
// counts as too small.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w > 0 && h > 0 && (w < MinWidth || h < MinHeight)
}

// HoldEnabled reports whether the hold command does anything.
func (g *Game) HoldEnabled() bool {
	return g.cfg.Pieces.Hold
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	linesBefore := g.snap.Lines

	// Restart works from any state
	if in.Has(core.ActionRestart) {
		g.snap = g.eng.NewGame()
		g.clock.reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.snap.Over {
		g.paused = !g.paused
	}

	// Paused, finished or unplayable games get neither commands nor time
	if g.paused || g.snap.Over || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd, ok := actionCommands[a]; ok {
			g.snap = g.eng.Apply(cmd)
		}
	}
	g.snap = g.eng.Tick(g.clock.advance())

	return core.StepResult{
		State:   g.State(),
		Cleared: g.snap.Lines - linesBefore,
	}
}

// actionCommands maps platform actions onto engine commands.
var actionCommands = map[core.Action]engine.Command{
	core.ActionLeft:      engine.CmdMoveLeft,
	core.ActionRight:     engine.CmdMoveRight,
	core.ActionSoftDrop:  engine.CmdSoftDrop,
	core.ActionHardDrop:  engine.CmdHardDrop,
	core.ActionRotateCW:  engine.CmdRotateCW,
	core.ActionRotateCCW: engine.CmdRotateCCW,
	core.ActionHold:      engine.CmdHold,
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		Lines:    g.snap.Lines,
		GameOver: g.snap.Over,
		Paused:   g.paused,
	}
}

// DebugState returns a one-line summary for logs.
func (g *Game) DebugState() string {
	return fmt.Sprintf("frame=%d score=%d level=%d lines=%d pieces=%d interval=%dms over=%v paused=%v",
		g.frame, g.snap.Score, g.snap.Level, g.snap.Lines, g.snap.Pieces,
		g.snap.DropIntervalMs, g.snap.Over, g.paused)
}
