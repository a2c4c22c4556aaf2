package components

import (
	"strings"

	"howitworks/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// ConnectorColumn renders the connector next to a row of the given height.
// With a dot, the marker replaces the line on the row's middle line.
func ConnectorColumn(height int, withDot bool) string {
	if height <= 0 {
		return ""
	}
	mid := (height - 1) / 2
	lines := make([]string, height)
	for i := range lines {
		if withDot && i == mid {
			lines[i] = connectorCell(design.DotStyle.Render(design.GlyphDot))
			continue
		}
		lines[i] = connectorCell(design.ConnectorStyle.Render(design.GlyphConnector))
	}
	return strings.Join(lines, "\n")
}

func connectorCell(glyph string) string {
	return lipgloss.PlaceHorizontal(design.ConnectorColumns, lipgloss.Center, glyph)
}

// Blank returns a width x height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
