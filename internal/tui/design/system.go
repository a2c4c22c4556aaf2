package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Spacing follows a 4px base unit, one terminal cell per unit step.
const (
	SpaceXS = 1 // 4px
	SpaceSM = 2 // 8px

	// DefaultWidth is used until the terminal reports its size.
	DefaultWidth = 80

	// Component dimensions
	MinCardWidth     = 16
	ConnectorColumns = 3
	// CardGutter separates a card from the connector column (md:pr-12 / md:pl-12).
	CardGutter = 2

	// MinWideWidth is the narrowest width that fits two cards around the connector.
	MinWideWidth = 2*MinCardWidth + ConnectorColumns
)

// Color Palette - Semantic colors with light/dark variants. Which variant is
// used is decided by the terminal background unless Initialize overrides it.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorPrimarySoft = lipgloss.AdaptiveColor{
		Light: "#BFDBFE",
		Dark:  "#1E3A8A",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}

	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1F2937",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#374151",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#4B5563",
		Dark:  "#D1D5DB",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// DimStyle is used for transient screens like startup and shutdown.
var DimStyle = lipgloss.NewStyle().
	Foreground(ColorTextMuted)

// Section Styles
var (
	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	SectionSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	// HeaderBlockStyle spaces the header from the steps (mb-16).
	HeaderBlockStyle = lipgloss.NewStyle().
				MarginBottom(SpaceSM)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	StepNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StepTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	StepDescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	ConnectorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimarySoft)

	DotStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Status Bar Styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceXS).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)
)

// CenterHorizontal centers content within width. Content wider than width is
// returned unchanged.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// CenterVertical pads content to height, keeping it vertically centered.
func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

// Initialize forces the light or dark palette instead of detecting the
// terminal background.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
