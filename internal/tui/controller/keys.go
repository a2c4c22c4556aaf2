package controller

import (
	"howitworks/internal/tui/components"
	"howitworks/internal/tui/model"
	"howitworks/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsg processes key presses. Keys without a binding of their own
// scroll the viewport.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Bye."
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.Viewport.Height = viewportHeight(m)
		return m, nil

	case key.Matches(msg, m.Keys.Copy):
		if err := clipboardWriteAll(m.PlainText()); err != nil {
			logging.Error(controllerSubsystem, err, "Failed to copy section")
			return m, m.SetStatusMessage("Copy failed", components.MessageError, model.StatusMessageDuration)
		}
		return m, m.SetStatusMessage("Section copied as text", components.MessageSuccess, model.StatusMessageDuration)

	case key.Matches(msg, m.Keys.Reload):
		if m.Source == nil || m.Source.Path() == "" {
			return m, m.SetStatusMessage("Built-in content, nothing to reload", components.MessageInfo, model.StatusMessageDuration)
		}
		return m, model.ReloadContentCmd(m.Source)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// viewportHeight leaves room for the status bar and the help view.
func viewportHeight(m *model.Model) int {
	h := m.ContentHeight() - (helpHeight(m) - 1)
	if h < 1 {
		h = 1
	}
	return h
}

func helpHeight(m *model.Model) int {
	if !m.Help.ShowAll {
		return 1
	}
	maxRows := 0
	for _, group := range m.Keys.FullHelp() {
		if len(group) > maxRows {
			maxRows = len(group)
		}
	}
	return maxRows
}
