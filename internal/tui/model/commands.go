package model

import (
	"howitworks/internal/steps"
	"howitworks/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the
// channel is closed so the listener stops.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// WaitForReloadCmd waits for the watcher to publish a new section.
func WaitForReloadCmd(ch <-chan steps.Section) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		sec, ok := <-ch
		if !ok {
			return nil
		}
		return ContentReloadedMsg{Section: sec, Watched: true}
	}
}

// ReloadContentCmd asks the source to re-read its content.
func ReloadContentCmd(src ContentSource) tea.Cmd {
	return func() tea.Msg {
		err := src.Reload()
		return ContentReloadedMsg{Section: src.Section(), Err: err}
	}
}
