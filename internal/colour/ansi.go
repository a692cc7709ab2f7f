package colour

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 8

var (
	darkText  = lipgloss.Color("#000000")
	lightText = lipgloss.Color("#FFFFFF")
)

// Swatch returns a solid block of the colour, width characters wide.
// Terminals without colour support get plain spaces.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// SwatchWithText returns a swatch with centred text drawn over it.
// Text is black on light colours and white on dark ones.
func SwatchWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(text) > width {
		text = text[:width]
	}

	fg := lightText
	if c.Lightness() > 60 {
		fg = darkText
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// FormatWithPreview formats a colour with its swatch followed by the rendered value.
func FormatWithPreview(c Colour, f Format, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Format(f))
}
