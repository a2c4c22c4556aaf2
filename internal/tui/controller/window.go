package controller

import (
	"howitworks/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg resizes the viewport and re-renders the section, which
// switches between the stacked and two column layouts at the breakpoint.
// The first size message moves the viewer out of ModeInitializing.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	m.Viewport.Width = msg.Width
	m.Viewport.Height = viewportHeight(m)
	refreshContent(m)

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeViewing
	}
	return m, nil
}
