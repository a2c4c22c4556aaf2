package layout

import (
	"howitworks/internal/steps"
)

// HeaderCount is always one: every tree carries its header.
func (t Tree) HeaderCount() int {
	return 1
}

// ConnectorCount returns the number of connector lines in the tree.
func (t Tree) ConnectorCount() int {
	if t.Connector == nil {
		return 0
	}
	return 1
}

// DotCount returns the number of marker dots in the tree.
func (t Tree) DotCount() int {
	return len(t.Rows)
}

// Sides lists the card side of every row in order.
func (t Tree) Sides() []steps.Side {
	sides := make([]steps.Side, len(t.Rows))
	for i, r := range t.Rows {
		sides[i] = r.Side
	}
	return sides
}

// Visible summarizes what a host draws for a tree at one viewport width.
type Visible struct {
	Wide      bool
	Columns   int
	Header    bool
	Connector bool
	Cards     int
	Spacers   int
	Dots      int
}

// VisibleAt resolves the tree's visibility rules for width under bp.
func (t Tree) VisibleAt(bp Breakpoint, width int) Visible {
	wide := bp.Wide(width)
	v := Visible{
		Wide:    wide,
		Columns: 1,
		Header:  t.Header.Visibility.Shown(wide),
	}
	if wide {
		v.Columns = 2
	}
	if t.Connector != nil && t.Connector.Visibility.Shown(wide) {
		v.Connector = true
	}
	for _, r := range t.Rows {
		if r.Card.Visibility.Shown(wide) {
			v.Cards++
		}
		if r.Spacer.Visibility.Shown(wide) {
			v.Spacers++
		}
		if r.Dot.Visibility.Shown(wide) {
			v.Dots++
		}
	}
	return v
}
