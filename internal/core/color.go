package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each value is styled.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray

	// Pastel palette used for piece blocks.
	ColorPastelRed
	ColorPastelPink
	ColorPastelOrange
	ColorPastelGreen
	ColorPastelBlue
	ColorPastelPurple
	ColorPastelGrey
)
