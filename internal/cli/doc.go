// Package cli is the MCP client used by `render --remote` to fetch renderings
// from a running `howitworks serve`.
package cli
