// Package server hosts the section over HTTP.
//
// Routes:
//
//	GET /           full HTML page (?theme=dark|light)
//	GET /section    HTML fragment
//	GET /api/tree   layout tree as JSON (?format=yaml)
//	GET /healthz    liveness
//	/sse, /message  MCP over SSE, when enabled
package server
