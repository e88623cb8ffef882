package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Piece colors are fixed
// hex pastels; lipgloss degrades them on terminals without true color.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorPastelRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFADAD")),
	core.ColorPastelPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC8DD")),
	core.ColorPastelOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD7A6")),
	core.ColorPastelGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#CAFFC9")),
	core.ColorPastelBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A0D2EB")),
	core.ColorPastelPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("#B5B9FF")),
	core.ColorPastelGrey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2EFEA")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
