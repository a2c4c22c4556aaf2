package model

import (
	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/design"
	"howitworks/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy as text"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload content"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitialModel constructs the viewer model. reloads may be nil when the
// content file is not watched.
func InitialModel(
	src ContentSource,
	bp layout.Breakpoint,
	logChannel <-chan logging.LogEntry,
	reloads <-chan steps.Section,
) *Model {
	return &Model{
		Width:          design.DefaultWidth,
		CurrentAppMode: ModeInitializing,
		Source:         src,
		Section:        src.Section(),
		Breakpoint:     bp,
		Viewport:       viewport.New(design.DefaultWidth, 0),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     logChannel,
		ReloadChannel:  reloads,
	}
}

// Init starts the log and reload listeners.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForLogEntriesCmd(m.LogChannel),
		WaitForReloadCmd(m.ReloadChannel),
	)
}
