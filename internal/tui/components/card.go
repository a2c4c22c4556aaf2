package components

import (
	"howitworks/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// StepCard is the bordered content block of one step.
type StepCard struct {
	Number      string
	Title       string
	Description string
	Width       int
	Align       lipgloss.Position
}

// NewStepCard creates a left aligned card with the minimum width.
func NewStepCard(number, title, description string) *StepCard {
	return &StepCard{
		Number:      number,
		Title:       title,
		Description: description,
		Width:       design.MinCardWidth,
		Align:       lipgloss.Left,
	}
}

// WithWidth sets the total card width, border included.
func (c *StepCard) WithWidth(width int) *StepCard {
	c.Width = width
	return c
}

// WithAlign sets the text alignment inside the card.
func (c *StepCard) WithAlign(align lipgloss.Position) *StepCard {
	c.Align = align
	return c
}

// Render returns the styled card. A card is never narrower than its frame
// plus one cell of text; smaller widths are raised to that.
func (c *StepCard) Render() string {
	style := design.CardStyle
	if minWidth := style.GetHorizontalFrameSize() + 1; c.Width < minWidth {
		c.Width = minWidth
	}
	innerWidth := c.Width - style.GetHorizontalFrameSize()

	line := func(s lipgloss.Style, text string) string {
		return s.Width(innerWidth).Align(c.Align).Render(text)
	}

	lines := []string{
		line(design.StepNumberStyle, c.Number),
		line(design.StepTitleStyle, c.Title),
	}
	if c.Description != "" {
		lines = append(lines, line(design.StepDescriptionStyle, c.Description))
	}

	return style.
		Width(c.Width - style.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(c.Align, lines...))
}
