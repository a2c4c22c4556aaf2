package components

import (
	"strings"

	"howitworks/internal/tui/design"
	"howitworks/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// MessageKind selects the status bar message styling.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageKind MessageKind
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message that replaces the left/right text
func (s *StatusBar) WithMessage(message string, kind MessageKind) *StatusBar {
	s.Message = message
	s.MessageKind = kind
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	available := s.Width - style.GetHorizontalPadding()

	var content string
	switch {
	case s.ShowMessage:
		content = utils.TruncateString(s.Message, available)
	case s.LeftText != "" && s.RightText != "":
		padding := available - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			// Not enough space, just show left text
			content = utils.TruncateString(s.LeftText, available)
		}
	case s.LeftText != "":
		content = s.LeftText
	default:
		content = s.RightText
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageKind {
	case MessageSuccess:
		return design.StatusBarSuccessStyle
	case MessageError:
		return design.StatusBarErrorStyle
	default:
		return design.StatusBarStyle
	}
}
