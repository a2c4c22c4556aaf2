// Package content loads step content from files and keeps the current
// section available to the hosts.
//
// Content files may be YAML, TOML or JSON and share one shape:
//
//	title: "How It Works"            # optional, defaults to the built-in header
//	subtitle: "..."                  # optional
//	steps:
//	  - number: "01"                 # quoted: an unquoted 01 is a YAML integer
//	    title: "Create tasks"
//	    description: "..."
//
// Every document is checked against an embedded JSON Schema before it is
// accepted, so malformed content is rejected here and never reaches the
// renderer.
package content
