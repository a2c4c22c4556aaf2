package view

import (
	"strings"

	"howitworks/internal/layout"
	"howitworks/internal/steps"
	"howitworks/internal/tui/components"
	"howitworks/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the layout tree into width terminal cells. At or above the
// breakpoint the cards alternate around a center connector; below it they
// stack in a single left aligned column without connector or markers.
func Render(tree layout.Tree, width int, bp layout.Breakpoint) string {
	if width <= 0 {
		width = design.DefaultWidth
	}
	wide := Wide(width, bp)

	var sections []string
	if tree.Header.Visibility.Shown(wide) {
		sections = append(sections, components.NewHeader(tree.Header.Title).
			WithSubtitle(tree.Header.Subtitle).
			WithWidth(width).
			Render())
	}

	if len(tree.Rows) > 0 {
		if wide {
			sections = append(sections, renderWide(tree, width))
		} else {
			sections = append(sections, renderNarrow(tree, width))
		}
	}

	return components.JoinVertical(sections...)
}

// Wide reports whether Render uses the two column layout at width. A
// breakpoint configured below design.MinWideWidth still stacks the cards
// when two of them cannot fit.
func Wide(width int, bp layout.Breakpoint) bool {
	return bp.Wide(width) && width >= design.MinWideWidth
}

func renderWide(tree layout.Tree, width int) string {
	leftWidth, rightWidth := components.NewLayout(width).SplitColumns(design.ConnectorColumns)
	showConnector := tree.Connector != nil && tree.Connector.Visibility.Shown(true)

	var lines []string
	for i, row := range tree.Rows {
		if i > 0 && tree.Gap > 0 {
			lines = append(lines, gapLines(leftWidth, rightWidth, tree.Gap, showConnector))
		}
		lines = append(lines, renderRow(row, leftWidth, rightWidth, showConnector))
	}
	return strings.Join(lines, "\n")
}

func renderRow(row layout.Row, leftWidth, rightWidth int, showConnector bool) string {
	sideWidth := leftWidth
	if row.Side == steps.Right {
		sideWidth = rightWidth
	}

	card := components.NewStepCard(row.Card.Number, row.Card.Title, row.Card.Description).
		WithWidth(sideWidth - design.CardGutter).
		WithAlign(position(row.Card.AlignAt(true))).
		Render()
	height := lipgloss.Height(card)

	var left, right string
	if row.Side == steps.Left {
		left = lipgloss.NewStyle().
			Width(leftWidth).
			Align(lipgloss.Right).
			PaddingRight(design.CardGutter).
			Render(card)
		right = components.Blank(rightWidth, height)
	} else {
		left = components.Blank(leftWidth, height)
		right = lipgloss.NewStyle().
			Width(rightWidth).
			PaddingLeft(design.CardGutter).
			Render(card)
	}

	center := components.Blank(design.ConnectorColumns, height)
	if showConnector {
		center = components.ConnectorColumn(height, row.Dot.Visibility.Shown(true))
	}
	return components.JoinHorizontal(0, left, center, right)
}

func gapLines(leftWidth, rightWidth, gap int, showConnector bool) string {
	center := components.Blank(design.ConnectorColumns, gap)
	if showConnector {
		center = components.ConnectorColumn(gap, false)
	}
	return components.JoinHorizontal(0,
		components.Blank(leftWidth, gap),
		center,
		components.Blank(rightWidth, gap))
}

func renderNarrow(tree layout.Tree, width int) string {
	var blocks []string
	for i, row := range tree.Rows {
		if !row.Card.Visibility.Shown(false) {
			continue
		}
		if i > 0 && tree.Gap > 0 {
			blocks = append(blocks, strings.Repeat("\n", tree.Gap-1))
		}
		blocks = append(blocks, components.NewStepCard(row.Card.Number, row.Card.Title, row.Card.Description).
			WithWidth(width).
			WithAlign(position(row.Card.AlignAt(false))).
			Render())
	}
	return components.JoinVertical(blocks...)
}

func position(a layout.Align) lipgloss.Position {
	if a == layout.AlignRight {
		return lipgloss.Right
	}
	return lipgloss.Left
}
