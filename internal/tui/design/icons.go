package design

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glyphs used by the section. The connector deliberately differs from the
// rounded card border so the two never read as one line.
const (
	GlyphConnector = "┃"
	GlyphDot       = "●"
	IconCheck      = "✔"
	IconCross      = "✗"
)

// SafeIcon appends enough trailing space that a wide glyph does not swallow
// the next character.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}
