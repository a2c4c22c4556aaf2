package controller

import (
	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/model"
	"howitworks/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the viewer program on the alternate screen. reloads may
// be nil when the content file is not watched.
func NewProgram(
	src model.ContentSource,
	bp layout.Breakpoint,
	logChannel <-chan logging.LogEntry,
	reloads <-chan steps.Section,
) *tea.Program {
	m := model.InitialModel(src, bp, logChannel, reloads)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
