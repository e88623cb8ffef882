package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
)

// Layout in screen cells. Every board cell is two columns wide so blocks
// look square in a terminal.
const (
	cellW      = 2
	boardW     = engine.Cols*cellW + 2 // + border
	boardH     = engine.Rows + 2
	panelGap   = 2
	panelW     = 16
	pieceSlotH = 3 // two rows of piece plus a spacer

	// MinWidth and MinHeight are the smallest screen the game can draw on.
	MinWidth  = boardW + panelGap + panelW
	MinHeight = boardH + 1 // + title line
)

const blockRune = '█'

// kindColors holds the pastel palette, one color per piece kind.
var kindColors = [...]core.Color{
	engine.Empty: core.ColorDefault,
	engine.KindI: core.ColorPastelRed,
	engine.KindJ: core.ColorPastelPink,
	engine.KindL: core.ColorPastelOrange,
	engine.KindO: core.ColorPastelGreen,
	engine.KindS: core.ColorPastelBlue,
	engine.KindT: core.ColorPastelPurple,
	engine.KindZ: core.ColorPastelGrey,
}

// KindColor returns the block color of a piece kind.
func KindColor(k engine.Kind) core.Color {
	if int(k) >= len(kindColors) {
		return core.ColorDefault
	}
	return kindColors[k]
}

// BoardRect returns where the bordered board is drawn on a w x h screen.
func BoardRect(w, h int) core.Rect {
	ox := max(0, (w-MinWidth)/2)
	oy := max(0, (h-MinHeight)/2)
	return core.NewRect(ox, oy+1, boardW, boardH)
}

// CellAt maps a screen position to a board (row, col). ok is false outside
// the playfield, border included.
func CellAt(board core.Rect, x, y int) (row, col int, ok bool) {
	inner := core.NewRect(board.X+1, board.Y+1, engine.Cols*cellW, engine.Rows)
	if !inner.Contains(x, y) {
		return 0, 0, false
	}
	return y - inner.Y, (x - inner.X) / cellW, true
}

// OnPlayfield reports whether (x, y) on a w x h screen is a board cell.
func (g *Game) OnPlayfield(w, h, x, y int) bool {
	_, _, ok := CellAt(BoardRect(w, h), x, y)
	return ok
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2-1, "Window too small")
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	board := BoardRect(w, h)
	g.renderTitle(dst, board)
	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, board.Y)

	switch {
	case g.snap.Over:
		renderOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score %d", g.snap.Score), "r restart  q quit")
	case g.paused:
		renderOverlay(dst, board, "PAUSED", "p to resume")
	}
}

func (g *Game) renderTitle(dst *core.Screen, board core.Rect) {
	dst.DrawTextColored(board.X, board.Y-1, g.Title(), core.ColorWhite)
	hint := "p pause  q quit"
	dst.DrawTextColored(board.X+MinWidth-len(hint), board.Y-1, hint, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)

	for row := range engine.Rows {
		for col := range engine.Cols {
			x := board.X + 1 + col*cellW
			y := board.Y + 1 + row
			switch k := g.snap.Grid[row][col]; {
			case g.snap.ActiveAt(row, col):
				drawBlock(dst, x, y, KindColor(g.snap.Active.Kind))
			case k != engine.Empty:
				drawBlock(dst, x, y, KindColor(k))
			default:
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "NEXT", core.ColorWhite)
	y++
	for i, p := range g.snap.Queue {
		if i >= g.cfg.Pieces.Preview {
			break
		}
		drawPiece(dst, x, y, p, KindColor(p.Kind))
		y += pieceSlotH
	}

	if g.cfg.Pieces.Hold {
		dst.DrawTextColored(x, y, "HOLD", core.ColorWhite)
		if g.snap.HasHold() {
			c := KindColor(g.snap.Hold.Kind)
			if !g.snap.CanSwap {
				c = core.ColorGray
			}
			drawPiece(dst, x, y+1, g.snap.Hold, c)
		}
		y += pieceSlotH
	}

	stats := []struct {
		label string
		value int
	}{
		{"Score", g.snap.Score},
		{"Level", g.snap.Level},
		{"Lines", g.snap.Lines},
	}
	for _, s := range stats {
		dst.DrawTextColored(x, y, s.label, core.ColorGray)
		dst.DrawText(x+7, y, fmt.Sprintf("%d", s.value))
		y++
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellW {
		dst.SetColored(x+i, y, blockRune, c)
	}
}

func drawPiece(dst *core.Screen, x, y int, p engine.Piece, c core.Color) {
	for r, line := range p.Shape {
		for col, filled := range line {
			if filled {
				drawBlock(dst, x+col*cellW, y+r, c)
			}
		}
	}
}

// renderOverlay draws a boxed message centered on the board.
func renderOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		lx := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, box.Y+1+i, l, core.ColorWhite)
	}
}
