package layout

import (
	"howitworks/internal/steps"
)

// Render lays out seq under the default header.
func Render(seq steps.Sequence) Tree {
	return RenderSection(steps.Section{Header: steps.DefaultHeader(), Steps: seq})
}

// RenderSection lays out a section. An empty sequence yields a tree with the
// header only: no connector and no rows.
func RenderSection(sec steps.Section) Tree {
	tree := Tree{
		Header: HeaderBlock{
			Title:      sec.Header.Title,
			Subtitle:   sec.Header.Subtitle,
			Visibility: Always,
		},
		Rows: []Row{},
		Gap:  DefaultGap,
	}

	if sec.Steps.IsEmpty() {
		return tree
	}

	tree.Connector = &Connector{
		Spans:      sec.Steps.Len(),
		Visibility: WideOnly,
	}

	tree.Rows = make([]Row, 0, sec.Steps.Len())
	for i, rec := range sec.Steps.All {
		tree.Rows = append(tree.Rows, layoutRow(i, rec))
	}
	return tree
}

func layoutRow(i int, rec steps.Record) Row {
	side := steps.SideFor(i)
	return Row{
		Index: i,
		Side:  side,
		Card: Card{
			Number:      rec.Number,
			Title:       rec.Title,
			Description: rec.Description,
			Side:        side,
			WideAlign:   mirroredAlign(side),
			NarrowAlign: AlignLeft,
			Z:           ZContent,
			Visibility:  Always,
		},
		Spacer: Spacer{
			Side:       side.Opposite(),
			Visibility: WideOnly,
		},
		Dot: Dot{
			Z:          ZMarker,
			Visibility: WideOnly,
		},
	}
}

// mirroredAlign pushes card text toward the connector: cards on the left
// align right, cards on the right keep the default alignment.
func mirroredAlign(side steps.Side) Align {
	if side == steps.Left {
		return AlignRight
	}
	return AlignLeft
}
