package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps the named core colors to lipgloss styles.
var colorStyles = buildStyles()

// wheelStyles holds one style per step of the title color wheel.
var wheelStyles = buildWheelStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorPurple:       lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	}
	return styles
}

func buildWheelStyles() [core.WheelSize]lipgloss.Style {
	var styles [core.WheelSize]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(wheelHex(i)))
	}
	return styles
}

// styleFor returns the style for c, falling back to the default style for
// colors outside the palette.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	if i, ok := core.WheelIndex(c); ok {
		return wheelStyles[i]
	}
	return colorStyles[core.ColorDefault]
}

// wheelHex returns step i of a 64-step rainbow: three sines a third of a turn
// apart, brightened with a fourth root.
func wheelHex(i int) string {
	angle := float64(i) * math.Pi / 32
	channel := func(offset float64) int {
		v := 0.5 + math.Sin(angle+offset)/2
		return int(255 * math.Pow(v, 0.25))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(0), channel(2*math.Pi/3), channel(4*math.Pi/3))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
