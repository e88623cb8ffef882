// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, so the CLI and
// the TUI can list and build them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultGame is the ID used when no game is named on the command line.
const DefaultGame = "blocks"

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every playable variant implements.
// Games hold pure logic and never import Bubble Tea; the platform owns
// input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier, e.g. "blocks" or "blocks_classic".
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, level, lines and the over/paused flags.
	State() core.GameState
}

// Describer is implemented by games that carry a one-line description.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
