package model

import (
	"howitworks/internal/steps"
	"howitworks/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging TUI channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ContentReloadedMsg reports a reload of the content source. Watched is set
// when the reload came from the file watcher rather than a key press.
type ContentReloadedMsg struct {
	Section steps.Section
	Err     error
	Watched bool
}

type ClearStatusBarMsg struct{}
