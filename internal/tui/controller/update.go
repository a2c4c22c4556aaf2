package controller

import (
	"fmt"

	"howitworks/internal/tui/components"
	"howitworks/internal/tui/model"
	"howitworks/internal/tui/view"
	"howitworks/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Viewer"

// Update is the central message routing function of the viewer.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.NewLogEntryMsg:
		cmd := handleNewLogEntry(m, msg)
		return m, tea.Batch(cmd, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.ContentReloadedMsg:
		cmd := handleContentReloaded(m, msg)
		if msg.Watched {
			cmd = tea.Batch(cmd, model.WaitForReloadCmd(m.ReloadChannel))
		}
		return m, cmd

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil
		return m, nil

	default:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}
}

// refreshContent re-renders the section into the viewport, keeping the
// scroll position where possible.
func refreshContent(m *model.Model) {
	m.Rendered = view.Render(m.Tree(), m.Viewport.Width, m.Breakpoint)
	m.Viewport.SetContent(m.Rendered)
}

func handleContentReloaded(m *model.Model, msg model.ContentReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.SetStatusMessage(fmt.Sprintf("Reload failed: %v", msg.Err), components.MessageError, model.StatusMessageDuration)
	}

	m.Section = msg.Section
	refreshContent(m)
	logging.Debug(controllerSubsystem, "Rendered %d steps after reload", m.Section.Steps.Len())
	return m.SetStatusMessage(fmt.Sprintf("Reloaded %d steps", m.Section.Steps.Len()), components.MessageSuccess, model.StatusMessageDuration)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) tea.Cmd {
	entry := msg.Entry
	if entry.Level < logging.LevelInfo {
		return nil
	}

	line := fmt.Sprintf("[%s] %s", entry.Subsystem, entry.Message)
	kind := components.MessageInfo
	if entry.Level >= logging.LevelWarn {
		kind = components.MessageError
	}
	if entry.Err != nil {
		line = fmt.Sprintf("%s: %v", line, entry.Err)
	}
	return m.SetStatusMessage(line, kind, model.StatusMessageDuration)
}
