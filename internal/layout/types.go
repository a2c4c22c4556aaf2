package layout

import (
	"fmt"

	"howitworks/internal/steps"
)

// Visibility states at which viewport widths an element is shown.
type Visibility int

const (
	Always Visibility = iota
	WideOnly
)

// Shown reports whether an element with this visibility is drawn.
func (v Visibility) Shown(wide bool) bool {
	return v == Always || wide
}

// String makes Visibility satisfy the fmt.Stringer interface.
func (v Visibility) String() string {
	switch v {
	case Always:
		return "always"
	case WideOnly:
		return "wide-only"
	default:
		return "unknown"
	}
}

// MarshalText renders the visibility by name.
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a visibility name.
func (v *Visibility) UnmarshalText(text []byte) error {
	switch string(text) {
	case "always":
		*v = Always
	case "wide-only":
		*v = WideOnly
	default:
		return fmt.Errorf("invalid visibility %q", text)
	}
	return nil
}

// Align is the horizontal text alignment of a card's content.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// String makes Align satisfy the fmt.Stringer interface.
func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// MarshalText renders the alignment by name.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses "left" or "right".
func (a *Align) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*a = AlignLeft
	case "right":
		*a = AlignRight
	default:
		return fmt.Errorf("invalid alignment %q", text)
	}
	return nil
}

// Stacking order of the elements inside a row.
const (
	ZContent = 0
	ZMarker  = 10
)

// DefaultGap is the uniform spacing between rows, in host units.
const DefaultGap = 1

// HeaderBlock is the centered heading above the steps.
type HeaderBlock struct {
	Title      string     `json:"title" yaml:"title"`
	Subtitle   string     `json:"subtitle" yaml:"subtitle"`
	Visibility Visibility `json:"visibility" yaml:"visibility"`
}

// Connector is the decorative vertical line that links the markers.
type Connector struct {
	// Spans is the number of rows the line runs alongside.
	Spans      int        `json:"spans" yaml:"spans"`
	Visibility Visibility `json:"visibility" yaml:"visibility"`
}

// Card is the content block of one step.
type Card struct {
	Number      string     `json:"number" yaml:"number"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Side        steps.Side `json:"side" yaml:"side"`
	// WideAlign applies at and above the breakpoint, NarrowAlign below it.
	WideAlign   Align      `json:"wideAlign" yaml:"wideAlign"`
	NarrowAlign Align      `json:"narrowAlign" yaml:"narrowAlign"`
	Z           int        `json:"z" yaml:"z"`
	Visibility  Visibility `json:"visibility" yaml:"visibility"`
}

// AlignAt returns the card's text alignment for the given viewport mode.
func (c Card) AlignAt(wide bool) Align {
	if wide {
		return c.WideAlign
	}
	return c.NarrowAlign
}

// Spacer is the empty column opposite a card.
type Spacer struct {
	Side       steps.Side `json:"side" yaml:"side"`
	Visibility Visibility `json:"visibility" yaml:"visibility"`
}

// Dot is the marker centered on the connector for one row.
type Dot struct {
	Z          int        `json:"z" yaml:"z"`
	Visibility Visibility `json:"visibility" yaml:"visibility"`
}

// Row is one step: its card, the spacer on the other side and its marker.
type Row struct {
	Index  int        `json:"index" yaml:"index"`
	Side   steps.Side `json:"side" yaml:"side"`
	Card   Card       `json:"card" yaml:"card"`
	Spacer Spacer     `json:"spacer" yaml:"spacer"`
	Dot    Dot        `json:"dot" yaml:"dot"`
}

// Tree is the complete structural rendering of a section.
type Tree struct {
	Header HeaderBlock `json:"header" yaml:"header"`
	// Connector is nil when there are no rows.
	Connector *Connector `json:"connector,omitempty" yaml:"connector,omitempty"`
	Rows      []Row      `json:"rows" yaml:"rows"`
	Gap       int        `json:"gap" yaml:"gap"`
}
