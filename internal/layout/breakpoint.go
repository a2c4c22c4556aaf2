package layout

// DefaultBreakpointColumns is the terminal width at which the two column
// layout starts.
const DefaultBreakpointColumns = 80

// DefaultBreakpointPrefix is the CSS utility prefix used by the HTML host.
const DefaultBreakpointPrefix = "md"

// Breakpoint is the wide viewport threshold a host injects into rendering.
// Prefix names it for class based hosts; Columns is the character width
// used by terminal hosts.
type Breakpoint struct {
	Prefix  string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Columns int    `yaml:"columns,omitempty" json:"columns,omitempty"`
}

// DefaultBreakpoint returns the md / 80 column breakpoint.
func DefaultBreakpoint() Breakpoint {
	return Breakpoint{Prefix: DefaultBreakpointPrefix, Columns: DefaultBreakpointColumns}
}

// Wide reports whether width is at or above the threshold.
func (b Breakpoint) Wide(width int) bool {
	return width >= b.normalized().Columns
}

// Class prefixes a utility class with the breakpoint, e.g. "md:flex".
func (b Breakpoint) Class(utility string) string {
	return b.normalized().Prefix + ":" + utility
}

func (b Breakpoint) normalized() Breakpoint {
	if b.Prefix == "" {
		b.Prefix = DefaultBreakpointPrefix
	}
	if b.Columns <= 0 {
		b.Columns = DefaultBreakpointColumns
	}
	return b
}
