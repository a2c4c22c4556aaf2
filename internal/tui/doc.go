// Package tui holds the interactive terminal viewer for the "How It Works"
// section.
//
// The viewer is split the way Bubble Tea programs usually are:
//
//   - model/: application state, key bindings, messages and commands
//   - controller/: the Update loop, key handling and program setup
//   - view/: turns a layout tree into terminal text, two columns or stacked
//   - components/: cards, connector, header and status bar building blocks
//   - design/: colors, glyphs and shared lipgloss styles
//   - utils/: width aware string helpers
//
// The section text is rendered once per content change or resize and kept in
// a scrollable viewport. Log entries from pkg/logging are shown in the status
// bar instead of being written to the terminal.
package tui
