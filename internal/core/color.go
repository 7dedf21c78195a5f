package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used to draw the world.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
