// Package mcpserver exposes the section to MCP clients: a render tool that
// returns the terminal, HTML or JSON rendering, and read-only resources for
// the HTML fragment and the layout tree.
package mcpserver
