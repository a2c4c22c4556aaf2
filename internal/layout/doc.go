// Package layout turns a step sequence into the structural tree that every
// host (terminal, HTML, MCP) draws.
//
// Render is a pure function: it performs no I/O, has no error paths and
// returns structurally equal trees for equal input. The tree only describes
// structure and visibility; markup, glyphs and colors belong to the hosts.
//
// # Tree shape
//
//	Tree
//	 ├─ Header           (always visible, centered)
//	 ├─ Connector        (only when there are rows; wide viewports only)
//	 └─ Rows[i]
//	     ├─ Card         (side = SideFor(i), alignment mirrored on wide viewports)
//	     ├─ Spacer       (opposite side; wide viewports only)
//	     └─ Dot          (centered on the connector, above the card; wide viewports only)
//
// Which elements are shown at a given viewport width is decided by a
// Breakpoint supplied by the host.
package layout
