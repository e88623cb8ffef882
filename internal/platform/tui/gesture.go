package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Minimum drag distance for a swipe. A terminal cell is about twice as tall
// as it is wide, so horizontal distance needs twice the columns.
const (
	swipeMinCols = 2
	swipeMinRows = 1
)

// Swipe turns a mouse drag over the board into a single action:
// horizontal drags move, a drag down soft-drops and a drag up rotates.
type Swipe struct {
	pressed bool
	x, y    int
}

// Handle consumes one mouse event. It returns ActionNone until a drag
// that started where onBoard holds is released.
func (s *Swipe) Handle(msg tea.MouseMsg, onBoard func(x, y int) bool) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		s.pressed = msg.Button == tea.MouseButtonLeft && onBoard(msg.X, msg.Y)
		s.x, s.y = msg.X, msg.Y
		return core.ActionNone

	case tea.MouseActionRelease:
		if !s.pressed {
			return core.ActionNone
		}
		s.pressed = false
		return swipeAction(msg.X-s.x, msg.Y-s.y)
	}
	return core.ActionNone
}

// swipeAction classifies a drag of dx columns and dy rows.
func swipeAction(dx, dy int) core.Action {
	adx, ady := abs(dx), abs(dy)

	if adx > 2*ady && adx >= swipeMinCols {
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	}
	if ady >= swipeMinRows && 2*ady >= adx {
		if dy > 0 {
			return core.ActionSoftDrop
		}
		return core.ActionRotateCW
	}
	return core.ActionNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
