// Package config provides configuration management for howitworks.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/howitworks/config.yaml)
//  3. Project configuration (./.howitworks/config.yaml)
//
// Command line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	content:
//	  path: "./steps.de.yaml"   # optional localized or per-tenant steps
//	layout:
//	  breakpoint:
//	    prefix: "md"            # utility prefix for the HTML host
//	    columns: 80             # terminal width of the wide layout
//	theme:
//	  mode: "auto"              # auto, light or dark
//	server:
//	  host: "localhost"
//	  port: 8090
//	  mcpEnabled: true
//	  watch: false              # reload the content file on change
//	logging:
//	  level: "info"
package config
