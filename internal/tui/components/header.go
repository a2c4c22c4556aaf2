package components

import (
	"howitworks/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// maxSubtitleWidth keeps long subtitles to a readable measure (max-w-2xl).
const maxSubtitleWidth = 64

// Header renders the centered section heading.
type Header struct {
	Title    string
	Subtitle string
	Width    int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: design.DefaultWidth,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header, every line centered in Width.
func (h *Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = design.DefaultWidth
	}

	title := design.SectionTitleStyle.
		Width(width).
		Align(lipgloss.Center).
		Render(h.Title)

	parts := []string{title}
	if h.Subtitle != "" {
		subWidth := width
		if subWidth > maxSubtitleWidth {
			subWidth = maxSubtitleWidth
		}
		subtitle := design.SectionSubtitleStyle.
			Width(subWidth).
			Align(lipgloss.Center).
			Render(h.Subtitle)
		parts = append(parts, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle))
	}

	return design.HeaderBlockStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}
