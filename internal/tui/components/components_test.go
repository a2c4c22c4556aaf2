package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"howitworks/internal/tui/design"
)

func TestStepCard_Render(t *testing.T) {
	tests := []struct {
		name      string
		card      *StepCard
		wantWidth int
		contains  []string
	}{
		{
			name:      "default width",
			card:      NewStepCard("01", "Create tasks", "Capture everything."),
			wantWidth: design.MinCardWidth,
			contains:  []string{"01", "Create"},
		},
		{
			name:      "wide card",
			card:      NewStepCard("02", "Organize and prioritize", "Group tasks into projects.").WithWidth(40),
			wantWidth: 40,
			contains:  []string{"02", "Organize and prioritize", "Group tasks into projects."},
		},
		{
			name:      "narrower than the default minimum",
			card:      NewStepCard("03", "Track", "").WithWidth(10),
			wantWidth: 10,
			contains:  []string{"03", "Track"},
		},
		{
			name:      "too narrow for the frame is raised",
			card:      NewStepCard("04", "Done", "").WithWidth(2),
			wantWidth: design.CardStyle.GetHorizontalFrameSize() + 1,
			contains:  []string{"04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.card.Render()
			for _, line := range strings.Split(out, "\n") {
				assert.Equal(t, tt.wantWidth, lipgloss.Width(line))
			}
			plain := ansi.Strip(out)
			for _, s := range tt.contains {
				assert.Contains(t, plain, s)
			}
		})
	}
}

func TestStepCard_AlignRight(t *testing.T) {
	out := ansi.Strip(NewStepCard("01", "Go", "").WithWidth(30).WithAlign(lipgloss.Right).Render())
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Go") {
			assert.True(t, strings.HasSuffix(line, "Go │"), "title should hug the right border: %q", line)
			return
		}
	}
	t.Fatal("title line not found")
}

func TestConnectorColumn(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		withDot bool
		dotLine int
	}{
		{"odd height", 5, true, 2},
		{"even height", 4, true, 1},
		{"single line", 1, true, 0},
		{"no dot", 3, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(ansi.Strip(ConnectorColumn(tt.height, tt.withDot)), "\n")
			assert.Len(t, lines, tt.height)
			for i, line := range lines {
				assert.Equal(t, design.ConnectorColumns, lipgloss.Width(line))
				if i == tt.dotLine {
					assert.Equal(t, " "+design.GlyphDot+" ", line)
				} else {
					assert.Equal(t, " "+design.GlyphConnector+" ", line)
				}
			}
		})
	}

	assert.Empty(t, ConnectorColumn(0, true))
}

func TestBlank(t *testing.T) {
	assert.Equal(t, "   \n   ", Blank(3, 2))
	assert.Empty(t, Blank(0, 2))
	assert.Empty(t, Blank(3, 0))
}

func TestLayout_SplitColumns(t *testing.T) {
	tests := []struct {
		width     int
		center    int
		wantLeft  int
		wantRight int
	}{
		{80, 3, 38, 39},
		{81, 3, 39, 39},
		{120, 3, 58, 59},
		{10, 3, design.MinCardWidth, design.MinCardWidth},
		{50, 0, 25, 25},
	}
	for _, tt := range tests {
		left, right := NewLayout(tt.width).SplitColumns(tt.center)
		assert.Equal(t, tt.wantLeft, left, "width %d", tt.width)
		assert.Equal(t, tt.wantRight, right, "width %d", tt.width)
	}
}

func TestHeader_Render(t *testing.T) {
	out := ansi.Strip(NewHeader("How It Works").
		WithSubtitle("Get organized in four simple steps.").
		WithWidth(60).
		Render())

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "How It Works")
	assert.Equal(t, strings.Index(lines[0], "How"), (60-len("How It Works"))/2)
	assert.Contains(t, out, "Get organized in four simple steps.")
}

func TestStatusBar_Render(t *testing.T) {
	tests := []struct {
		name     string
		bar      *StatusBar
		contains []string
		excludes []string
	}{
		{
			name:     "left and right",
			bar:      NewStatusBar(60).WithLeftText("steps.yaml · 4 steps").WithRightText("two columns"),
			contains: []string{"steps.yaml", "two columns"},
		},
		{
			name:     "message replaces text",
			bar:      NewStatusBar(60).WithLeftText("left").WithRightText("right").WithMessage("Copied", MessageSuccess),
			contains: []string{"Copied"},
			excludes: []string{"left", "right"},
		},
		{
			name:     "long message is truncated",
			bar:      NewStatusBar(20).WithMessage(strings.Repeat("x", 50), MessageError),
			contains: []string{"…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bar.Render()
			assert.LessOrEqual(t, lipgloss.Width(out), tt.bar.Width)
			plain := ansi.Strip(out)
			for _, s := range tt.contains {
				assert.Contains(t, plain, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, plain, s)
			}
		})
	}
}

func TestJoinHorizontal(t *testing.T) {
	assert.Equal(t, "ab", JoinHorizontal(0, "a", "b"))
	assert.Equal(t, "a  b", JoinHorizontal(2, "a", "b"))
	assert.Equal(t, "a", JoinHorizontal(3, "a"))

	joined := JoinHorizontal(1, "x\nx", "y")
	assert.Equal(t, []string{"x y", "x  "}, strings.Split(joined, "\n"))
}

func TestCenterContent(t *testing.T) {
	out := CenterContent(11, 3, "abc")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "    abc    ", lines[1])
	assert.Equal(t, "abc", CenterContent(0, 0, "abc"))
}
