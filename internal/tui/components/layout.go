package components

import (
	"strings"

	"howitworks/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout splits the available width into columns.
type Layout struct {
	Width int
}

// NewLayout creates a new layout manager
func NewLayout(width int) *Layout {
	return &Layout{Width: width}
}

// SplitColumns splits the width into a left column, a fixed center column
// and a right column. Both sides get at least MinCardWidth; the left side
// takes the smaller half when the remainder is odd.
func (l *Layout) SplitColumns(center int) (left, right int) {
	if center < 0 {
		center = 0
	}
	if l.Width < design.MinCardWidth*2+center {
		l.Width = design.MinCardWidth*2 + center
	}

	left = (l.Width - center) / 2
	right = l.Width - center - left
	return left, right
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
