package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
)

// WheelSize is the number of steps in the rainbow color wheel used for titles
// and clear captions.
const WheelSize = 64

// wheelBase is the first Color value of the wheel range.
const wheelBase Color = 64

// WheelColor returns step i (taken modulo WheelSize) of the color wheel.
func WheelColor(i int) Color {
	return wheelBase + Color(Wrap(i, WheelSize))
}

// WheelIndex reports the wheel step of c and whether c belongs to the wheel.
func WheelIndex(c Color) (int, bool) {
	if c < wheelBase || c >= wheelBase+WheelSize {
		return 0, false
	}
	return int(c - wheelBase), true
}
