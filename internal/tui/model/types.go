package model

import (
	"time"

	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/components"
	"howitworks/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// AppMode represents the current mode of the viewer
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeViewing
	ModeQuitting
)

// ContentSource supplies the section shown by the viewer.
type ContentSource interface {
	Section() steps.Section
	Reload() error
	Path() string
}

// Constants for UI
const (
	StatusMessageDuration = 3 * time.Second
	// ChromeHeight is the number of lines below the viewport (status bar and help).
	ChromeHeight = 2
)

// KeyMap defines all the key bindings for the viewer
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Copy, k.Reload},
		{k.Help, k.Quit},
	}
}

// Model represents the state of the viewer
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	QuittingMessage string

	// Content
	Source     ContentSource
	Section    steps.Section
	Breakpoint layout.Breakpoint
	Rendered   string

	// UI state
	Viewport viewport.Model
	Keys     KeyMap
	Help     help.Model

	StatusBarMessage     string
	StatusBarMessageType components.MessageKind
	StatusBarClearCancel chan struct{}

	LogChannel    <-chan logging.LogEntry
	ReloadChannel <-chan steps.Section
}

// Tree returns the layout tree of the current section.
func (m *Model) Tree() layout.Tree {
	return layout.RenderSection(m.Section)
}

// PlainText returns the last rendering without terminal styling.
func (m *Model) PlainText() string {
	return ansi.Strip(m.Rendered)
}

// ContentHeight returns the lines available to the viewport.
func (m *Model) ContentHeight() int {
	h := m.Height - ChromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// SetStatusMessage shows message in the status bar and clears it after clearAfter.
// A newer message cancels the pending clear of an older one.
func (m *Model) SetStatusMessage(message string, msgType components.MessageKind, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
