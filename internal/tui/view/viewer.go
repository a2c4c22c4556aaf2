package view

import (
	"fmt"

	"howitworks/internal/tui/components"
	"howitworks/internal/tui/design"
	"howitworks/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderModel renders the whole viewer screen for the current model state.
func RenderModel(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return components.CenterContent(m.Width, m.Height, design.DimStyle.Render(m.QuittingMessage))
	case model.ModeInitializing:
		return components.CenterContent(m.Width, m.Height, design.DimStyle.Render("Initializing... (waiting for window size)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.Viewport.View(),
		renderStatusBar(m),
		m.Help.View(m.Keys),
	)
}

func renderStatusBar(m *model.Model) string {
	source := "built-in content"
	if m.Source != nil && m.Source.Path() != "" {
		source = m.Source.Path()
	}

	mode := "stacked"
	if Wide(m.Width, m.Breakpoint) {
		mode = "two columns"
	}

	return components.NewStatusBar(m.Width).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithLeftText(fmt.Sprintf("%s · %d steps", source, m.Section.Steps.Len())).
		WithRightText(fmt.Sprintf("%s · %3.f%%", mode, m.Viewport.ScrollPercent()*100)).
		Render()
}
