package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/design"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func lineContaining(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	require.Failf(t, "line not found", "no line contains %q", needle)
	return ""
}

func TestRender_WideAlternatesAroundConnector(t *testing.T) {
	tree := layout.Render(steps.Default())
	out := plain(Render(tree, 120, layout.DefaultBreakpoint()))

	assert.Equal(t, 4, strings.Count(out, design.GlyphDot))
	assert.Contains(t, out, design.GlyphConnector)

	tests := []struct {
		title    string
		wantLeft bool
	}{
		{"Create tasks", true},
		{"Organize and prioritize", false},
		{"Track progress", true},
		{"Accomplish more", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			line := lineContaining(t, out, tt.title)
			titleAt := strings.Index(line, tt.title)
			connectorAt := strings.IndexAny(line, design.GlyphConnector+design.GlyphDot)
			require.GreaterOrEqual(t, connectorAt, 0, "row line should carry the connector: %q", line)
			if tt.wantLeft {
				assert.Less(t, titleAt, connectorAt)
			} else {
				assert.Greater(t, titleAt, connectorAt)
			}
		})
	}
}

func TestRender_WideLinesFitWidth(t *testing.T) {
	for _, width := range []int{80, 81, 100, 143} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			out := Render(layout.Render(steps.Default()), width, layout.DefaultBreakpoint())
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), width, "line %q", plain(line))
			}
		})
	}
}

func TestRender_LowBreakpointStillFitsWidth(t *testing.T) {
	tree := layout.Render(steps.Default())

	tests := []struct {
		name     string
		width    int
		bp       layout.Breakpoint
		wantWide bool
	}{
		{"breakpoint below two cards", 30, layout.Breakpoint{Columns: 20}, false},
		{"exactly two cards", design.MinWideWidth, layout.Breakpoint{Columns: 20}, true},
		{"narrow below default card width", 10, layout.DefaultBreakpoint(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tree, tt.width, tt.bp)
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, ansi.StringWidth(line), tt.width, "line %q", plain(line))
			}
			assert.Equal(t, tt.wantWide, Wide(tt.width, tt.bp))
			if tt.wantWide {
				assert.Equal(t, 4, strings.Count(plain(out), design.GlyphDot))
			} else {
				assert.Zero(t, strings.Count(plain(out), design.GlyphDot))
			}
		})
	}
}

func TestRender_NarrowStacksWithoutConnector(t *testing.T) {
	tree := layout.Render(steps.Default())
	out := plain(Render(tree, 60, layout.DefaultBreakpoint()))

	assert.NotContains(t, out, design.GlyphConnector)
	assert.NotContains(t, out, design.GlyphDot)

	last := -1
	for _, title := range []string{"How It Works", "Create tasks", "Organize and prioritize", "Track progress", "Accomplish more"} {
		at := strings.Index(out, title)
		require.GreaterOrEqual(t, at, 0, "missing %q", title)
		assert.Greater(t, at, last, "%q out of order", title)
		last = at
	}

	// Every card starts at the left edge.
	for _, title := range []string{"Organize and prioritize", "Accomplish more"} {
		line := lineContaining(t, out, title)
		assert.True(t, strings.HasPrefix(line, "│"), "card should not be indented: %q", line)
	}
}

func TestRender_BreakpointIsConfigurable(t *testing.T) {
	tree := layout.Render(steps.Default())

	out := plain(Render(tree, 100, layout.Breakpoint{Columns: 120}))
	assert.NotContains(t, out, design.GlyphDot, "100 columns is narrow for a 120 column breakpoint")

	out = plain(Render(tree, 120, layout.Breakpoint{Columns: 120}))
	assert.Equal(t, 4, strings.Count(out, design.GlyphDot))
}

func TestRender_Empty(t *testing.T) {
	tree := layout.Render(steps.NewSequence())

	for _, width := range []int{40, 120} {
		out := plain(Render(tree, width, layout.DefaultBreakpoint()))
		assert.Contains(t, out, steps.DefaultTitle)
		assert.NotContains(t, out, design.GlyphConnector)
		assert.NotContains(t, out, design.GlyphDot)
	}
}

func TestRender_ZeroWidthUsesDefault(t *testing.T) {
	tree := layout.Render(steps.Default())
	assert.Equal(t,
		Render(tree, design.DefaultWidth, layout.DefaultBreakpoint()),
		Render(tree, 0, layout.DefaultBreakpoint()))
}

func TestRender_GapKeepsConnectorContinuous(t *testing.T) {
	tree := layout.Render(steps.Default())
	out := plain(Render(tree, 100, layout.DefaultBreakpoint()))

	lines := strings.Split(out, "\n")
	first := -1
	lastLine := -1
	for i, line := range lines {
		if strings.ContainsAny(line, design.GlyphConnector+design.GlyphDot) {
			if first < 0 {
				first = i
			}
			lastLine = i
		}
	}
	require.GreaterOrEqual(t, first, 0)
	for i := first; i <= lastLine; i++ {
		assert.True(t, strings.ContainsAny(lines[i], design.GlyphConnector+design.GlyphDot), "gap in connector at line %d", i)
	}
}
