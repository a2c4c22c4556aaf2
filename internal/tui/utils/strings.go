package utils

import "github.com/mattn/go-runewidth"

// TruncateString truncates a string to the specified display width, adding an
// ellipsis when anything was cut. Wide runes count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
